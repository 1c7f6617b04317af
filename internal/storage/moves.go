package storage

import (
	"database/sql"
	"fmt"

	"github.com/cubenav/cubenav"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Axis      string
	Slice     int
	Dir       int
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create stores a single move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, move cubenav.Move) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, ts_ms, axis, slice, dir, notation)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, move.Time.UnixMilli(), move.Axis.String(), move.Slice, move.Dir, move.Notation())
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}
	return id, nil
}

// CreateBatch stores multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, moves []cubenav.Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, ts_ms, axis, slice, dir, notation)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, move.Time.UnixMilli(), move.Axis.String(), move.Slice, move.Dir, move.Notation())
			if err != nil {
				return fmt.Errorf("failed to insert move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// ListBySession returns a session's moves in order.
func (r *MoveRepository) ListBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, axis, slice, dir, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}
	defer rows.Close()

	var records []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Axis, &m.Slice, &m.Dir, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

// ToMove converts a stored record back to a cubenav move.
func (m MoveRecord) ToMove() (cubenav.Move, error) {
	var axis cubenav.Axis
	switch m.Axis {
	case "x":
		axis = cubenav.AxisX
	case "y":
		axis = cubenav.AxisY
	case "z":
		axis = cubenav.AxisZ
	default:
		return cubenav.Move{}, fmt.Errorf("unknown axis %q: %w", m.Axis, cubenav.ErrInvalidMove)
	}
	if m.Slice < 0 || m.Slice > 2 || (m.Dir != 1 && m.Dir != -1) {
		return cubenav.Move{}, cubenav.ErrInvalidMove
	}
	return cubenav.Move{Axis: axis, Slice: m.Slice, Dir: m.Dir}, nil
}
