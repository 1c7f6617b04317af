package cubenav

import (
	"math"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Move is a single slice turn: an axis, the slice index along that axis,
// and a direction. Dir +1 is clockwise as seen from the positive end of the
// axis under the widget's convention: +1 about x maps grid (y,z) to (z,2-y).
type Move struct {
	Axis  Axis
	Slice int       // 0..2
	Dir   int       // +1 or -1
	Time  time.Time // when the move occurred (optional)
}

// letterMove maps standard outer/middle layer notation onto the grid.
// Outer letters with slice 2 turn clockwise with Dir +1; their opposite
// faces invert, and the middle layers follow L/D/F convention.
var letterMoves = map[byte]Move{
	'R': {Axis: AxisX, Slice: 2, Dir: 1},
	'L': {Axis: AxisX, Slice: 0, Dir: -1},
	'U': {Axis: AxisY, Slice: 2, Dir: 1},
	'D': {Axis: AxisY, Slice: 0, Dir: -1},
	'F': {Axis: AxisZ, Slice: 2, Dir: 1},
	'B': {Axis: AxisZ, Slice: 0, Dir: -1},
	'M': {Axis: AxisX, Slice: 1, Dir: -1},
	'E': {Axis: AxisY, Slice: 1, Dir: -1},
	'S': {Axis: AxisZ, Slice: 1, Dir: 1},
}

// Quat returns the full 90-degree rotation for the move.
func (m Move) Quat() mgl64.Quat {
	return m.QuatAt(math.Pi / 2)
}

// QuatAt returns the partial rotation after the slice has swept the given
// absolute angle (radians in 0..pi/2).
func (m Move) QuatAt(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(-float64(m.Dir)*angle, m.Axis.Vec())
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	inv := m
	inv.Dir = -m.Dir
	return inv
}

// WithTime returns a copy of the move with the specified timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// Notation returns the standard notation string for this move.
// Examples: R, R', M, E'
func (m Move) Notation() string {
	for letter, lm := range letterMoves {
		if lm.Axis != m.Axis || lm.Slice != m.Slice {
			continue
		}
		if lm.Dir == m.Dir {
			return string(letter)
		}
		return string(letter) + "'"
	}
	return "?"
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a notation string into a Move.
// Examples: R, R', M, S'
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	m, ok := letterMoves[letter]
	if !ok {
		return Move{}, ErrInvalidNotation
	}

	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			m = m.Inverse()
		default:
			return Move{}, ErrInvalidNotation
		}
	}
	return m, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Invalid tokens are skipped.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			continue
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
