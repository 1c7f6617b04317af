package cubenav

// Tracker wraps a Cube and provides solved-state transition detection.
//
// A solved transition only fires after at least one move has been made
// since the last toggle, so a freshly-built, already-solved cube never
// retriggers. Firing toggles the display mode and resets the latch.
type Tracker struct {
	cube             *Cube
	moveCount        int
	movedSinceToggle bool
	displayAlt       bool
	solvedCallback   func(displayAlt bool)
}

// NewTracker creates a tracker over the cube. Hook it to an engine with
// engine.SetMoveCallback(tracker.NoteMove).
func NewTracker(cube *Cube) *Tracker {
	return &Tracker{cube: cube}
}

// SetSolvedCallback sets a callback fired on each solved transition, with
// the new display mode.
func (t *Tracker) SetSolvedCallback(cb func(displayAlt bool)) {
	t.solvedCallback = cb
}

// NoteMove records that a move was made and optimistically marks the puzzle
// unsolved; the actual solved check happens later via CheckSolved.
func (t *Tracker) NoteMove(Move) {
	t.moveCount++
	t.movedSinceToggle = true
}

// MoveCount returns the number of moves noted since creation or Reset.
func (t *Tracker) MoveCount() int {
	return t.moveCount
}

// DisplayAlt reports the current display mode, toggled by each solved
// transition.
func (t *Tracker) DisplayAlt() bool {
	return t.displayAlt
}

// IsSolved reports the current solved state of the cube.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// CheckSolved runs the solved detector and fires the toggle when the cube
// is solved and a move has been made since the last toggle. Returns true
// if the toggle fired.
func (t *Tracker) CheckSolved() bool {
	if !t.movedSinceToggle || !t.cube.IsSolved() {
		return false
	}
	t.displayAlt = !t.displayAlt
	t.movedSinceToggle = false
	if t.solvedCallback != nil {
		t.solvedCallback(t.displayAlt)
	}
	return true
}

// Reset puts the tracker back in its initial state without touching the
// cube.
func (t *Tracker) Reset() {
	t.moveCount = 0
	t.movedSinceToggle = false
	t.displayAlt = false
}
