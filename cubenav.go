// Package cubenav implements an interactive 3x3x3 Rubik's-cube navigation
// widget: a cube of 26 visible sub-cubes whose slices rotate to reveal the
// six sections of a site, with solved-state detection driven by the colored
// face markers.
//
// # Quick Start
//
// Build a cube and turn a slice:
//
//	cube := cubenav.NewCube(cubenav.DefaultConfig())
//	engine := cubenav.NewEngine(cube)
//
//	rot := engine.RotateSlice(cubenav.AxisX, 2, 1, true)
//	for now := start; rot.Active(); now = now.Add(16 * time.Millisecond) {
//	    engine.Step(now)
//	}
//	fmt.Println("Solved:", cube.IsSolved())
//
// Moves can also be expressed in standard outer-layer notation:
//
//	moves, _ := cubenav.ParseMoves("R U R' U'")
//
// # Architecture
//
// The package is deliberately free of rendering concerns. Animation is pure
// data: a Rotation records its move, start time, duration and easing curve,
// and a single driving loop advances it by calling Engine.Step with the
// current time. The Scene type applies the same treatment to whole-cube
// display orientation (drag, momentum, smoothing). Tests step time by hand;
// the TUI in internal/ui steps it from a tick message.
//
// At most one slice rotation is ever in flight. A request made while one is
// running is dropped, not queued: it returns an already-completed Rotation
// whose Performed method reports false.
//
// # Face navigation
//
// The Navigator maps the six logical site sections to preassigned moves and
// display orientations (see Faces). Selecting a face turns its slice, then
// reorients the whole cube toward the viewer; selecting the shown face twice
// within 300ms requests the content overlay for that section.
package cubenav
