package cubenav

import "testing"

func TestNotationRoundTrip(t *testing.T) {
	for _, notation := range []string{"R", "R'", "L", "L'", "U", "U'", "D", "D'", "F", "F'", "B", "B'", "M", "M'", "E", "E'", "S", "S'"} {
		m, err := ParseMove(notation)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", notation, err)
		}
		if got := m.Notation(); got != notation {
			t.Errorf("ParseMove(%q).Notation() = %q", notation, got)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, notation := range []string{"", "X", "R2", "R''", "7"} {
		if _, err := ParseMove(notation); err == nil {
			t.Errorf("ParseMove(%q) should fail", notation)
		}
	}
}

func TestParseMovesSkipsInvalid(t *testing.T) {
	moves, err := ParseMoves("R X U' quux F")
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(moves); got != "R U' F" {
		t.Errorf("got %q, want \"R U' F\"", got)
	}
}

func TestInverseUndoes(t *testing.T) {
	c := NewCube(DefaultConfig())
	for _, m := range []Move{R, U, F, L, D, B, M, E, S} {
		c.ApplyMove(m)
		c.ApplyMove(m.Inverse())
		if !c.IsSolved() {
			t.Fatalf("%v then its inverse should restore the cube", m)
		}
	}
}

func TestMiddleLayerLettersFollowConvention(t *testing.T) {
	// M follows L, E follows D, S follows F.
	if M.Dir != L.Dir || M.Axis != AxisX || M.Slice != 1 {
		t.Errorf("M = %+v", M)
	}
	if E.Dir != D.Dir || E.Axis != AxisY || E.Slice != 1 {
		t.Errorf("E = %+v", E)
	}
	if S.Dir != F.Dir || S.Axis != AxisZ || S.Slice != 1 {
		t.Errorf("S = %+v", S)
	}
}
