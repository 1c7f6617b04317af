package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cubenav/cubenav"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMigrateTwice(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second migrate should be a no-op: %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("0.1.0")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	recorded := []cubenav.Move{
		cubenav.R.WithTime(time.Now()),
		cubenav.UPrime.WithTime(time.Now()),
		cubenav.F.WithTime(time.Now()),
	}
	if err := moves.CreateBatch(id, recorded, 0); err != nil {
		t.Fatalf("create moves: %v", err)
	}

	if err := sessions.End(id, len(recorded), "deadbeef", false); err != nil {
		t.Fatalf("end session: %v", err)
	}

	list, err := sessions.List(10)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 session, got %d", len(list))
	}
	s := list[0]
	if s.SessionID != id || s.MoveCount != 3 || s.Solved || s.EndedAt == nil {
		t.Errorf("unexpected session: %+v", s)
	}

	stored, err := moves.ListBySession(id)
	if err != nil {
		t.Fatalf("list moves: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 moves, got %d", len(stored))
	}
	for i, rec := range stored {
		m, err := rec.ToMove()
		if err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		if m.Notation() != recorded[i].Notation() {
			t.Errorf("move %d: got %s, want %s", i, m.Notation(), recorded[i].Notation())
		}
	}
}

func TestGetSession(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	// A session that ended without a single move still reads back whole.
	id, err := sessions.Create("0.1.0")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := sessions.End(id, 0, "deadbeef", false); err != nil {
		t.Fatalf("end session: %v", err)
	}

	s, err := sessions.Get(id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if s.SessionID != id || s.MoveCount != 0 || s.EndedAt == nil {
		t.Errorf("unexpected session: %+v", s)
	}

	if _, err := sessions.Get("no-such-session"); err == nil {
		t.Error("missing session should be an error")
	}
}

func TestToMoveRejectsBadRecords(t *testing.T) {
	bad := []MoveRecord{
		{Axis: "w", Slice: 0, Dir: 1},
		{Axis: "x", Slice: 3, Dir: 1},
		{Axis: "x", Slice: 0, Dir: 2},
	}
	for _, rec := range bad {
		if _, err := rec.ToMove(); err == nil {
			t.Errorf("record %+v should not convert", rec)
		}
	}
}
