package cubenav

import (
	"errors"
	"testing"
	"time"
)

func newTestNavigator(t *testing.T) (*Navigator, *Engine, *Scene) {
	t.Helper()
	cube := NewCube(DefaultConfig())
	engine := NewEngine(cube, WithRotationDuration(400*time.Millisecond), WithEasing(Linear))
	scene := NewScene()
	tracker := NewTracker(cube)
	return NewNavigator(engine, scene, tracker), engine, scene
}

func settle(e *Engine, rot *Rotation, now time.Time) time.Time {
	for rot.Active() {
		now = now.Add(16 * time.Millisecond)
		e.Step(now)
	}
	return now
}

func TestSelectRotatesAndPresents(t *testing.T) {
	nav, engine, scene := newTestNavigator(t)

	var presets []FaceAssignment
	nav.SetPresetCallback(func(fa FaceAssignment) { presets = append(presets, fa) })

	now := time.Unix(0, 0)
	rot := nav.Select(1, now)
	if rot == nil || !rot.Performed() {
		t.Fatal("select should start a rotation")
	}
	if nav.CurrentFace() != FaceNone {
		t.Error("face must not change before the rotation resolves")
	}

	settle(engine, rot, now)

	if nav.CurrentFace() != 1 {
		t.Errorf("current face = %d, want 1", nav.CurrentFace())
	}
	if len(presets) != 1 || presets[0].Index != 1 {
		t.Errorf("preset callback got %v", presets)
	}
	if !sameRotation(scene.Target(), Faces[1].Orientation) {
		t.Error("scene target should present the selected face")
	}
}

func TestSelectIgnoredWhileAnimating(t *testing.T) {
	nav, engine, _ := newTestNavigator(t)

	now := time.Unix(0, 0)
	rot := nav.Select(1, now)
	engine.Step(now)
	engine.Step(now.Add(100 * time.Millisecond))

	if second := nav.Select(2, now.Add(100*time.Millisecond)); second != nil {
		t.Error("select during an in-flight rotation should be ignored")
	}

	settle(engine, rot, now.Add(100*time.Millisecond))
	if nav.CurrentFace() != 1 {
		t.Errorf("current face = %d, want 1", nav.CurrentFace())
	}
}

func TestDoubleActivationOpensOverlay(t *testing.T) {
	nav, engine, _ := newTestNavigator(t)

	var overlays []string
	nav.SetOverlayCallback(func(fa FaceAssignment) { overlays = append(overlays, fa.Key) })

	now := time.Unix(0, 0)
	rot := nav.Select(2, now)
	now = settle(engine, rot, now)

	// A re-select outside the window turns the slice again.
	later := now.Add(time.Second)
	rot = nav.Select(2, later)
	if rot == nil || !rot.Performed() {
		t.Fatal("slow re-select should rotate, not open the overlay")
	}
	if len(overlays) != 0 {
		t.Fatal("overlay must not open on a slow re-select")
	}

	// The second quick select lands inside the window and opens the
	// overlay, even though the first one's rotation is still in flight.
	if second := nav.Select(2, later.Add(200*time.Millisecond)); second != nil {
		t.Error("overlay path should not start a rotation")
	}
	if len(overlays) != 1 || overlays[0] != Faces[2].Key {
		t.Errorf("overlays = %v, want [%s]", overlays, Faces[2].Key)
	}

	settle(engine, rot, later)
}

func TestDoubleActivationRequiresDisplayedFace(t *testing.T) {
	nav, _, _ := newTestNavigator(t)

	var overlays []string
	nav.SetOverlayCallback(func(fa FaceAssignment) { overlays = append(overlays, fa.Key) })

	// Two quick selects of a face that has never been displayed: the first
	// starts a rotation, the second arrives inside the window but must not
	// open the overlay, since no face is shown yet.
	now := time.Unix(0, 0)
	if rot := nav.Select(3, now); rot == nil || !rot.Performed() {
		t.Fatal("first select should start a rotation")
	}
	if second := nav.Select(3, now.Add(200*time.Millisecond)); second != nil {
		t.Error("second select during the rotation should be dropped")
	}
	if len(overlays) != 0 {
		t.Errorf("overlay opened for a never-displayed face: %v", overlays)
	}
	if nav.CurrentFace() != FaceNone {
		t.Errorf("current face = %d, want none", nav.CurrentFace())
	}
}

func TestSelectOutOfRange(t *testing.T) {
	nav, _, _ := newTestNavigator(t)
	if rot := nav.Select(-1, time.Unix(0, 0)); rot != nil {
		t.Error("face -1 should be ignored")
	}
	if rot := nav.Select(6, time.Unix(0, 0)); rot != nil {
		t.Error("face 6 should be ignored")
	}
}

func TestFaceByIndex(t *testing.T) {
	for i := range Faces {
		fa, err := FaceByIndex(i)
		if err != nil {
			t.Fatalf("FaceByIndex(%d): %v", i, err)
		}
		if fa.Index != i {
			t.Errorf("FaceByIndex(%d).Index = %d", i, fa.Index)
		}
	}
	for _, i := range []int{-1, 6, 100} {
		if _, err := FaceByIndex(i); !errors.Is(err, ErrInvalidFace) {
			t.Errorf("FaceByIndex(%d) error = %v, want ErrInvalidFace", i, err)
		}
	}
}
