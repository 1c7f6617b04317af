package cubenav

import "testing"

func TestMarkerGroupsOnSolvedCube(t *testing.T) {
	c := NewCube(DefaultConfig())
	for _, g := range c.markerGroups() {
		if len(g.colors) != 9 {
			t.Errorf("%v group has %d markers, want 9", g.dir, len(g.colors))
		}
		for _, col := range g.colors {
			if col != g.colors[0] {
				t.Errorf("%v group mixes colors", g.dir)
			}
		}
	}
}

func TestSolvedDetectorMismatchedTag(t *testing.T) {
	c := NewCube(DefaultConfig())

	// Repaint one outward marker; the cube's geometry is untouched but one
	// group no longer shares a single color.
	for _, s := range c.SubCubes() {
		if s.Coord.X != 2 {
			continue
		}
		for i := range s.Markers {
			if s.Markers[i].Color == Red {
				s.Markers[i].Color = Green
				if c.IsSolved() {
					t.Error("mismatched color tag should break solved state")
				}
				return
			}
		}
	}
	t.Fatal("no outward +x marker found")
}

func TestSolvedDetectorShortGroup(t *testing.T) {
	c := NewCube(DefaultConfig())

	for _, s := range c.SubCubes() {
		if s.Coord.X != 2 {
			continue
		}
		for i := range s.Markers {
			if s.Markers[i].Color == Red {
				s.Markers = append(s.Markers[:i], s.Markers[i+1:]...)
				if c.IsSolved() {
					t.Error("a group with fewer than 9 markers should not count as solved")
				}
				return
			}
		}
	}
	t.Fatal("no outward +x marker found")
}

func TestSolvedDetectorAfterRoundTrip(t *testing.T) {
	c := NewCube(DefaultConfig())
	c.ApplyMoves([]Move{R, U})
	if c.IsSolved() {
		t.Error("should not be solved mid-scramble")
	}
	c.ApplyMoves([]Move{UPrime, RPrime})
	if !c.IsSolved() {
		t.Error("should be solved after undoing the scramble")
	}
}

func TestTrackerLatch(t *testing.T) {
	c := NewCube(DefaultConfig())
	tr := NewTracker(c)

	// A freshly-built, already-solved cube must not retrigger.
	if tr.CheckSolved() {
		t.Error("solved transition must not fire before any move")
	}

	tr.NoteMove(R)
	c.ApplyMove(R)
	if tr.CheckSolved() {
		t.Error("unsolved cube must not fire")
	}

	tr.NoteMove(RPrime)
	c.ApplyMove(RPrime)

	var fired []bool
	tr.SetSolvedCallback(func(alt bool) { fired = append(fired, alt) })

	if !tr.CheckSolved() {
		t.Fatal("solved transition should fire after moves return to solved")
	}
	if !tr.DisplayAlt() {
		t.Error("display mode should have toggled")
	}
	if len(fired) != 1 || !fired[0] {
		t.Errorf("callback fired %v, want [true]", fired)
	}

	// Latch resets: no second toggle without another move.
	if tr.CheckSolved() {
		t.Error("solved transition must not fire twice without a move")
	}

	// A full round trip toggles back.
	tr.NoteMove(U)
	c.ApplyMove(U)
	tr.NoteMove(UPrime)
	c.ApplyMove(UPrime)
	if !tr.CheckSolved() {
		t.Fatal("second solved transition should fire")
	}
	if tr.DisplayAlt() {
		t.Error("display mode should have toggled back")
	}
}
