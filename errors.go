package cubenav

import "errors"

// Sentinel errors for the cubenav package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubenav: invalid move notation")

	// Model errors
	ErrInvalidMove = errors.New("cubenav: move axis or slice out of range")
	ErrInvalidFace = errors.New("cubenav: face index out of range")
)
