package cubenav

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.ApplyMoves([]cubenav.Move{cubenav.R, cubenav.U, cubenav.RPrime, cubenav.UPrime})
var (
	R      = Move{Axis: AxisX, Slice: 2, Dir: 1}  // Right clockwise
	RPrime = Move{Axis: AxisX, Slice: 2, Dir: -1} // Right counter-clockwise

	L      = Move{Axis: AxisX, Slice: 0, Dir: -1} // Left clockwise
	LPrime = Move{Axis: AxisX, Slice: 0, Dir: 1}  // Left counter-clockwise

	U      = Move{Axis: AxisY, Slice: 2, Dir: 1}  // Up clockwise
	UPrime = Move{Axis: AxisY, Slice: 2, Dir: -1} // Up counter-clockwise

	D      = Move{Axis: AxisY, Slice: 0, Dir: -1} // Down clockwise
	DPrime = Move{Axis: AxisY, Slice: 0, Dir: 1}  // Down counter-clockwise

	F      = Move{Axis: AxisZ, Slice: 2, Dir: 1}  // Front clockwise
	FPrime = Move{Axis: AxisZ, Slice: 2, Dir: -1} // Front counter-clockwise

	B      = Move{Axis: AxisZ, Slice: 0, Dir: -1} // Back clockwise
	BPrime = Move{Axis: AxisZ, Slice: 0, Dir: 1}  // Back counter-clockwise

	M = Move{Axis: AxisX, Slice: 1, Dir: -1} // Middle layer, follows L
	E = Move{Axis: AxisY, Slice: 1, Dir: -1} // Equator layer, follows D
	S = Move{Axis: AxisZ, Slice: 1, Dir: 1}  // Standing layer, follows F
)

// Sexy move: R U R' U' - handy for exercising the engine in tests and demos.
var SexyMove = []Move{R, U, RPrime, UPrime}
