package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a widget session in the database.
type Session struct {
	SessionID        string
	StartedAt        time.Time
	EndedAt          *time.Time
	DurationMs       *int64
	MoveCount        int
	FinalFingerprint *string
	Solved           bool
	AppVersion       *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(appVersion string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var appVersionPtr *string
	if appVersion != "" {
		appVersionPtr = &appVersion
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, app_version)
		VALUES (?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), appVersionPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete with its closing state.
func (r *SessionRepository) End(sessionID string, moveCount int, fingerprint string, solved bool) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, move_count = ?, final_fingerprint = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, moveCount, fingerprint, boolToInt(solved), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// List returns sessions ordered newest first, up to limit (0 = all).
// Get returns a single session by id. A missing session is an error.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, duration_ms, move_count, final_fingerprint, solved, app_version
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	var s Session
	var startedAt string
	var endedAt *string
	var solved int
	if err := row.Scan(&s.SessionID, &startedAt, &endedAt, &s.DurationMs, &s.MoveCount, &s.FinalFingerprint, &solved, &s.AppVersion); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session %s not found", sessionID)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var err error
	s.StartedAt, err = time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session time: %w", err)
	}
	if endedAt != nil {
		t, err := time.Parse(time.RFC3339, *endedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse session end time: %w", err)
		}
		s.EndedAt = &t
	}
	s.Solved = solved != 0
	return &s, nil
}

func (r *SessionRepository) List(limit int) ([]Session, error) {
	query := `
		SELECT session_id, started_at, ended_at, duration_ms, move_count, final_fingerprint, solved, app_version
		FROM sessions
		ORDER BY started_at DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = r.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var startedAt string
		var endedAt *string
		var solved int
		if err := rows.Scan(&s.SessionID, &startedAt, &endedAt, &s.DurationMs, &s.MoveCount, &s.FinalFingerprint, &solved, &s.AppVersion); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse session time: %w", err)
		}
		if endedAt != nil {
			t, err := time.Parse(time.RFC3339, *endedAt)
			if err != nil {
				return nil, fmt.Errorf("failed to parse session end time: %w", err)
			}
			s.EndedAt = &t
		}
		s.Solved = solved != 0
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
