package cubenav

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FaceNone is the Navigator state before any face has been selected.
const FaceNone = -1

// FaceAssignment is the fixed mapping from a logical site section to its
// slice move, whole-cube display orientation, and visual preset. The table
// is static and never mutated.
type FaceAssignment struct {
	Index       int
	Key         string // content template lookup key
	Label       string // button label
	Move        Move
	Orientation mgl64.Quat // presents the face toward the viewer
	Background  string     // background color, hex
	Accent      string     // marker/highlight color, hex
}

// Faces maps the six navigation categories of the site. Each selection
// turns the preassigned slice, then reorients the whole cube so the section
// face points at the viewer.
var Faces = [6]FaceAssignment{
	{
		Index:       0,
		Key:         "home",
		Label:       "Home",
		Move:        F,
		Orientation: mgl64.QuatIdent(),
		Background:  "#10101a",
		Accent:      "#4cc9f0",
	},
	{
		Index:       1,
		Key:         "work",
		Label:       "Work",
		Move:        R,
		Orientation: mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{0, 1, 0}),
		Background:  "#1a1026",
		Accent:      "#f72585",
	},
	{
		Index:       2,
		Key:         "about",
		Label:       "About",
		Move:        U,
		Orientation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0}),
		Background:  "#0d1b1e",
		Accent:      "#80ed99",
	},
	{
		Index:       3,
		Key:         "lab",
		Label:       "Lab",
		Move:        L,
		Orientation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
		Background:  "#1b130d",
		Accent:      "#ffb703",
	},
	{
		Index:       4,
		Key:         "journal",
		Label:       "Journal",
		Move:        D,
		Orientation: mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{1, 0, 0}),
		Background:  "#14141f",
		Accent:      "#b5179e",
	},
	{
		Index:       5,
		Key:         "contact",
		Label:       "Contact",
		Move:        B,
		Orientation: mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0}),
		Background:  "#101418",
		Accent:      "#e0fbfc",
	},
}

// FaceByIndex returns the face assignment for the given index, or
// ErrInvalidFace when the index is outside 0..5.
func FaceByIndex(i int) (FaceAssignment, error) {
	if i < 0 || i >= len(Faces) {
		return FaceAssignment{}, ErrInvalidFace
	}
	return Faces[i], nil
}

// FaceByKey looks up a face assignment by its content key.
func FaceByKey(key string) (FaceAssignment, bool) {
	for _, f := range Faces {
		if f.Key == key {
			return f, true
		}
	}
	return FaceAssignment{}, false
}
