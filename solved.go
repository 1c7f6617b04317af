package cubenav

import "github.com/go-gl/mathgl/mgl64"

// direction is one of the six outward world-space axes markers are grouped
// under.
type direction struct {
	name string
	vec  mgl64.Vec3
}

func (d direction) String() string {
	return d.name
}

var outwardDirections = [6]direction{
	{"+x", mgl64.Vec3{1, 0, 0}},
	{"-x", mgl64.Vec3{-1, 0, 0}},
	{"+y", mgl64.Vec3{0, 1, 0}},
	{"-y", mgl64.Vec3{0, -1, 0}},
	{"+z", mgl64.Vec3{0, 0, 1}},
	{"-z", mgl64.Vec3{0, 0, -1}},
}

type markerGroup struct {
	dir    direction
	colors []Color
}

// markerGroups collects, for each outward direction, the color tag of every
// marker whose world position lies beyond the detection threshold from the
// center along that axis. The threshold sits between the outer-layer cell
// centers and their outward marker faces, so only outward-facing markers on
// the shell qualify.
func (c *Cube) markerGroups() [6]markerGroup {
	threshold := c.spacing + c.segment/4

	var groups [6]markerGroup
	for i, d := range outwardDirections {
		groups[i].dir = d
	}
	for _, s := range c.subs {
		for i := range s.Markers {
			w := s.MarkerWorld(i)
			for gi, d := range outwardDirections {
				if w.Dot(d.vec) > threshold {
					groups[gi].colors = append(groups[gi].colors, s.Markers[i].Color)
				}
			}
		}
	}
	return groups
}

// IsSolved reports whether every one of the six outward marker groups
// contains exactly nine markers sharing one color. Recomputed from scratch
// on every call; the model is small enough that incremental tracking would
// not pay for itself.
func (c *Cube) IsSolved() bool {
	for _, g := range c.markerGroups() {
		if len(g.colors) != 9 {
			return false
		}
		for _, col := range g.colors[1:] {
			if col != g.colors[0] {
				return false
			}
		}
	}
	return true
}
