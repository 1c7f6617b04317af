package recorder

import (
	"testing"

	"github.com/cubenav/cubenav"
)

func TestLogRoundTrip(t *testing.T) {
	dir := t.TempDir()
	logger, err := StartLogger(dir)
	if err != nil {
		t.Fatalf("start logger: %v", err)
	}

	cube := cubenav.NewCube(cubenav.DefaultConfig())
	moves, _ := cubenav.ParseMoves("R U R' U'")
	for _, m := range moves {
		cube.ApplyMove(m)
		if err := logger.Log(LogEvent{
			Type:        EventMove,
			Notation:    m.Notation(),
			Fingerprint: cube.Fingerprint(),
		}); err != nil {
			t.Fatalf("log: %v", err)
		}
	}
	if err := logger.Log(LogEvent{Type: EventFace, Face: 3, Fingerprint: cube.Fingerprint()}); err != nil {
		t.Fatalf("log face: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	log, err := LoadLog(logger.Path())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(log.Events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(log.Events))
	}
	if log.Events[0].Notation != "R" || log.Events[3].Notation != "U'" {
		t.Errorf("unexpected move order: %+v", log.Events)
	}
	if log.Events[4].Type != EventFace || log.Events[4].Face != 3 {
		t.Errorf("unexpected face event: %+v", log.Events[4])
	}
}

func TestVerifyLog(t *testing.T) {
	cube := cubenav.NewCube(cubenav.DefaultConfig())
	moves, _ := cubenav.ParseMoves("R U F' D")

	var log SessionLog
	for _, m := range moves {
		cube.ApplyMove(m)
		log.Events = append(log.Events, LogEvent{
			Type:        EventMove,
			Notation:    m.Notation(),
			Fingerprint: cube.Fingerprint(),
		})
	}

	n, err := VerifyLog(&log)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if n != len(moves) {
		t.Errorf("verified %d moves, want %d", n, len(moves))
	}

	// Corrupt one fingerprint.
	log.Events[2].Fingerprint++
	if _, err := VerifyLog(&log); err == nil {
		t.Error("corrupted log should fail verification")
	}
}
