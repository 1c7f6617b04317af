package cubenav

import (
	"math"
	"testing"
	"time"
)

func TestEngineAnimatesAndSnaps(t *testing.T) {
	c := NewCube(DefaultConfig())
	e := NewEngine(c, WithRotationDuration(400*time.Millisecond), WithEasing(Linear))

	rot := e.RotateSlice(AxisX, 2, 1, true)
	if !rot.Performed() {
		t.Fatal("first rotation should be performed")
	}

	start := time.Unix(0, 0)
	e.Step(start)

	// Halfway through a linear sweep the slice should be off the grid.
	e.Step(start.Add(200 * time.Millisecond))
	offGrid := false
	for _, s := range c.Slice(AxisX, 2) {
		rem := math.Mod(math.Abs(s.Position.Y()), c.Spacing())
		if rem > 1e-6 && math.Abs(rem-c.Spacing()) > 1e-6 {
			offGrid = true
		}
	}
	if !offGrid {
		t.Error("slice should be mid-rotation at t=duration/2")
	}

	// Unaffected slices must not move.
	for _, s := range c.Slice(AxisX, 0) {
		if s.Position != c.positionFor(s.Coord) {
			t.Errorf("sub-cube %d outside the slice moved", s.Index)
		}
	}

	e.Step(start.Add(400 * time.Millisecond))
	if rot.Active() {
		t.Fatal("rotation should have completed")
	}
	select {
	case <-rot.Done():
	default:
		t.Error("completion channel should be closed")
	}

	// Everything back on the grid, permutation intact.
	for _, s := range c.SubCubes() {
		if s.Position != c.positionFor(s.Coord) {
			t.Errorf("sub-cube %d not snapped to grid", s.Index)
		}
	}
	if len(e.History()) != 1 {
		t.Errorf("expected 1 recorded move, got %d", len(e.History()))
	}
}

func TestReentrantRequestDropped(t *testing.T) {
	c := NewCube(DefaultConfig())
	e := NewEngine(c, WithRotationDuration(400*time.Millisecond), WithEasing(Linear))

	first := e.RotateSlice(AxisX, 2, 1, true)
	start := time.Unix(0, 0)
	e.Step(start)
	e.Step(start.Add(100 * time.Millisecond))

	second := e.RotateSlice(AxisY, 2, 1, true)
	if second.Performed() {
		t.Error("second request should be dropped, not performed")
	}
	if second.Active() {
		t.Error("dropped request should complete immediately")
	}
	select {
	case <-second.Done():
	default:
		t.Error("dropped request's completion channel should be closed")
	}

	// Finishing the first rotation must produce exactly the first move's
	// permutation, untouched by the dropped request.
	e.Step(start.Add(400 * time.Millisecond))
	if first.Active() {
		t.Fatal("first rotation should have completed")
	}

	want := NewCube(DefaultConfig())
	want.ApplyMove(Move{Axis: AxisX, Slice: 2, Dir: 1})
	for i, s := range c.SubCubes() {
		if s.Coord != want.SubCubes()[i].Coord {
			t.Errorf("sub-cube %d at %v, want %v", i, s.Coord, want.SubCubes()[i].Coord)
		}
	}

	if len(e.History()) != 1 {
		t.Errorf("dropped request must not be recorded; history has %d moves", len(e.History()))
	}
}

func TestEngineMatchesInstantApply(t *testing.T) {
	animated := NewCube(DefaultConfig())
	instant := NewCube(DefaultConfig())
	e := NewEngine(animated, WithRotationDuration(500*time.Millisecond))

	now := time.Unix(0, 0)
	for _, m := range SexyMove {
		rot := e.Rotate(m, false)
		for rot.Active() {
			now = now.Add(16 * time.Millisecond)
			e.Step(now)
		}
		instant.ApplyMove(m)
	}

	for i := range animated.SubCubes() {
		a, b := animated.SubCubes()[i], instant.SubCubes()[i]
		if a.Coord != b.Coord {
			t.Errorf("sub-cube %d: animated %v, instant %v", i, a.Coord, b.Coord)
		}
		if !sameRotation(a.Orientation, b.Orientation) {
			t.Errorf("sub-cube %d: orientations diverge", i)
		}
	}
}

func TestHistoryDisabled(t *testing.T) {
	c := NewCube(DefaultConfig())
	e := NewEngine(c, WithMoveHistory(false))

	e.RotateSlice(AxisX, 2, 1, true)
	if len(e.History()) != 0 {
		t.Error("history should stay empty when disabled")
	}
}

func TestMoveCallbackFiresOnRecordedMovesOnly(t *testing.T) {
	c := NewCube(DefaultConfig())
	e := NewEngine(c, WithRotationDuration(time.Millisecond))

	var got []Move
	e.SetMoveCallback(func(m Move) { got = append(got, m) })

	rot := e.RotateSlice(AxisX, 2, 1, true)
	now := time.Unix(0, 0)
	for rot.Active() {
		now = now.Add(time.Millisecond)
		e.Step(now)
	}

	rot = e.RotateSlice(AxisY, 2, 1, false)
	for rot.Active() {
		now = now.Add(time.Millisecond)
		e.Step(now)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 callback, got %d", len(got))
	}
	if got[0].Axis != AxisX {
		t.Errorf("callback saw wrong move: %v", got[0])
	}
}
