package recorder

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/cubenav/cubenav"
	"github.com/cubenav/cubenav/internal/storage"
)

// Session persists one widget run: every recorded move goes to the move
// repository and the event log, tagged with the cube's state fingerprint
// after the move.
type Session struct {
	db     *storage.DB
	logger *Logger

	mu        sync.Mutex
	sessionID string
	moveIndex int

	sessions *storage.SessionRepository
	moves    *storage.MoveRepository
}

// NewSession creates a session manager. The logger is optional.
func NewSession(db *storage.DB, logger *Logger) *Session {
	return &Session{
		db:       db,
		logger:   logger,
		sessions: storage.NewSessionRepository(db),
		moves:    storage.NewMoveRepository(db),
	}
}

// Start opens a new session row.
func (s *Session) Start(appVersion string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.sessions.Create(appVersion)
	if err != nil {
		return err
	}
	s.sessionID = id
	s.moveIndex = 0
	return nil
}

// ID returns the current session id, or "" before Start.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// RecordMove persists one move with the post-move state fingerprint.
func (s *Session) RecordMove(m cubenav.Move, fingerprint uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionID == "" {
		return nil // not recording
	}

	if m.Time.IsZero() {
		m = m.WithTime(time.Now())
	}
	if _, err := s.moves.Create(s.sessionID, s.moveIndex, m); err != nil {
		return err
	}
	s.moveIndex++

	if s.logger != nil {
		return s.logger.Log(LogEvent{
			Type:        EventMove,
			Notation:    m.Notation(),
			Fingerprint: fingerprint,
		})
	}
	return nil
}

// RecordFace logs a face navigation event.
func (s *Session) RecordFace(face int, fingerprint uint64) error {
	if s.logger == nil {
		return nil
	}
	return s.logger.Log(LogEvent{Type: EventFace, Face: face, Fingerprint: fingerprint})
}

// RecordSolved logs a solved transition.
func (s *Session) RecordSolved(fingerprint uint64) error {
	if s.logger == nil {
		return nil
	}
	return s.logger.Log(LogEvent{Type: EventSolved, Fingerprint: fingerprint})
}

// End closes the session row with the final cube state.
func (s *Session) End(cube *cubenav.Cube) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionID == "" {
		return nil
	}

	fp := strconv.FormatUint(cube.Fingerprint(), 16)
	err := s.sessions.End(s.sessionID, s.moveIndex, fp, cube.IsSolved())
	s.sessionID = ""
	return err
}

// VerifyLog replays a session log's moves onto a fresh cube and checks each
// move event's fingerprint against the recomputed state. Returns the number
// of move events verified.
func VerifyLog(log *SessionLog) (int, error) {
	cube := cubenav.NewCube(cubenav.DefaultConfig())
	verified := 0
	for i, ev := range log.Events {
		if ev.Type != EventMove {
			continue
		}
		m, err := cubenav.ParseMove(ev.Notation)
		if err != nil {
			return verified, fmt.Errorf("event %d: %w", i, err)
		}
		cube.ApplyMove(m)
		if ev.Fingerprint != 0 && ev.Fingerprint != cube.Fingerprint() {
			return verified, fmt.Errorf("event %d (%s): fingerprint mismatch", i, ev.Notation)
		}
		verified++
	}
	return verified, nil
}
