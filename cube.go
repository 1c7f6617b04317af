package cubenav

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// Axis identifies one of the three grid axes.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Vec returns the unit vector for the axis.
func (a Axis) Vec() mgl64.Vec3 {
	switch a {
	case AxisX:
		return mgl64.Vec3{1, 0, 0}
	case AxisY:
		return mgl64.Vec3{0, 1, 0}
	default:
		return mgl64.Vec3{0, 0, 1}
	}
}

// Color represents a face marker color.
type Color byte

const (
	White  Color = 0 // +y side when solved
	Yellow Color = 1 // -y side when solved
	Green  Color = 2 // +z side when solved
	Blue   Color = 3 // -z side when solved
	Red    Color = 4 // +x side when solved
	Orange Color = 5 // -x side when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Coord is an integer grid coordinate. Each component is in 0..2 when the
// cube is at rest.
type Coord struct {
	X, Y, Z int
}

// Along returns the coordinate component along the given axis.
func (c Coord) Along(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Marker is a colored decoration attached to one side of a sub-cube. Offset
// is in the sub-cube's local frame; when the cube is solved every marker's
// world offset points outward.
type Marker struct {
	Color  Color
	Offset mgl64.Vec3
}

// SubCube is one of the 26 visible cells of the cube. Its index is its
// identity; Coord tracks its current grid slot and mutates only as the
// atomic result of a completed slice rotation.
type SubCube struct {
	Index       int
	Coord       Coord
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Markers     []Marker
}

// MarkerWorld returns the world-space position of the i-th marker.
func (s *SubCube) MarkerWorld(i int) mgl64.Vec3 {
	return s.Position.Add(s.Orientation.Rotate(s.Markers[i].Offset))
}

// Config controls cube construction.
type Config struct {
	Size    float64 // overall edge length of the assembled cube
	Gap     float64 // spacing between adjacent sub-cubes
	Bevel   float64 // edge bevel radius, carried through to export geometry
	Markers bool    // attach colored face markers to outward sides
}

// DefaultConfig returns the construction parameters used by the widget.
func DefaultConfig() Config {
	return Config{
		Size:    3.0,
		Gap:     0.1,
		Bevel:   0.07,
		Markers: true,
	}
}

// Cube is the full model: the visible 3x3x3 shell of sub-cubes, centered on
// the origin with grid spacing (segment size + gap). The interior cell is
// never instantiated.
type Cube struct {
	cfg     Config
	segment float64
	spacing float64
	subs    []*SubCube
}

// NewCube builds the sub-cube set once. Pure construction, no error paths.
func NewCube(cfg Config) *Cube {
	c := &Cube{
		cfg:     cfg,
		segment: cfg.Size / 3,
	}
	c.spacing = c.segment + cfg.Gap

	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				if x == 1 && y == 1 && z == 1 {
					continue // interior cell is invisible
				}
				coord := Coord{x, y, z}
				sub := &SubCube{
					Index:       len(c.subs),
					Coord:       coord,
					Position:    c.positionFor(coord),
					Orientation: mgl64.QuatIdent(),
				}
				if cfg.Markers {
					sub.Markers = markersFor(coord, c.segment)
				}
				c.subs = append(c.subs, sub)
			}
		}
	}
	return c
}

// markersFor attaches one colored marker per outward-facing side.
func markersFor(coord Coord, segment float64) []Marker {
	half := segment / 2
	var ms []Marker
	if coord.X == 2 {
		ms = append(ms, Marker{Red, mgl64.Vec3{half, 0, 0}})
	}
	if coord.X == 0 {
		ms = append(ms, Marker{Orange, mgl64.Vec3{-half, 0, 0}})
	}
	if coord.Y == 2 {
		ms = append(ms, Marker{White, mgl64.Vec3{0, half, 0}})
	}
	if coord.Y == 0 {
		ms = append(ms, Marker{Yellow, mgl64.Vec3{0, -half, 0}})
	}
	if coord.Z == 2 {
		ms = append(ms, Marker{Green, mgl64.Vec3{0, 0, half}})
	}
	if coord.Z == 0 {
		ms = append(ms, Marker{Blue, mgl64.Vec3{0, 0, -half}})
	}
	return ms
}

// positionFor derives the exact rest position for a grid coordinate.
func (c *Cube) positionFor(coord Coord) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(coord.X-1) * c.spacing,
		float64(coord.Y-1) * c.spacing,
		float64(coord.Z-1) * c.spacing,
	}
}

// coordFor rounds a continuous position back to the nearest grid slot.
func (c *Cube) coordFor(p mgl64.Vec3) Coord {
	round := func(v float64) int {
		n := int(math.Round(v/c.spacing)) + 1
		if n < 0 {
			n = 0
		}
		if n > 2 {
			n = 2
		}
		return n
	}
	return Coord{round(p.X()), round(p.Y()), round(p.Z())}
}

// SubCubes returns the sub-cube set. Callers must not grow or reorder it.
func (c *Cube) SubCubes() []*SubCube {
	return c.subs
}

// Slice returns the sub-cubes whose current grid coordinate along axis
// equals index.
func (c *Cube) Slice(axis Axis, index int) []*SubCube {
	var out []*SubCube
	for _, s := range c.subs {
		if s.Coord.Along(axis) == index {
			out = append(out, s)
		}
	}
	return out
}

// Spacing returns the grid spacing (segment size + gap).
func (c *Cube) Spacing() float64 {
	return c.spacing
}

// Segment returns the edge length of a single sub-cube.
func (c *Cube) Segment() float64 {
	return c.segment
}

// Config returns the construction parameters.
func (c *Cube) Config() Config {
	return c.cfg
}

// Coords returns a snapshot of the current grid coordinates, indexed by
// sub-cube.
func (c *Cube) Coords() []Coord {
	out := make([]Coord, len(c.subs))
	for i, s := range c.subs {
		out[i] = s.Coord
	}
	return out
}

// Reset snaps every sub-cube back to its original slot and orientation.
func (c *Cube) Reset() {
	fresh := NewCube(c.cfg)
	for i, s := range c.subs {
		s.Coord = fresh.subs[i].Coord
		s.Position = fresh.subs[i].Position
		s.Orientation = fresh.subs[i].Orientation
	}
}

// ApplyMove performs a move instantly, without animation: the slice is
// rotated by the full 90 degrees and snapped in one step.
func (c *Cube) ApplyMove(m Move) {
	q := m.Quat()
	for _, s := range c.Slice(m.Axis, m.Slice) {
		s.Position = q.Rotate(s.Position)
		s.Orientation = q.Mul(s.Orientation)
		c.snapSubCube(s)
	}
}

// ApplyMoves applies a sequence of moves instantly.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// Fingerprint hashes the grid coordinates and snapped orientations of every
// sub-cube. Two cubes in the same rest state produce the same value.
func (c *Cube) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, s := range c.subs {
		buf[0] = byte(s.Coord.X)
		buf[1] = byte(s.Coord.Y)
		buf[2] = byte(s.Coord.Z)
		rx, ry, rz := eulerXYZ(s.Orientation)
		buf[3] = byte(quarterTurns(rx))
		buf[4] = byte(quarterTurns(ry))
		buf[5] = byte(quarterTurns(rz))
		buf[6] = byte(s.Index)
		buf[7] = 0
		h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the six outward marker groups, one line per world axis.
func (c *Cube) String() string {
	out := ""
	for _, g := range c.markerGroups() {
		out += g.dir.String() + ":"
		for _, col := range g.colors {
			out += " " + col.String()
		}
		out += "\n"
	}
	return out
}
