package cubenav

import "time"

// doubleSelectWindow is the timestamp delta under which a second select of
// the displayed face counts as a content-overlay request.
const doubleSelectWindow = 300 * time.Millisecond

// Navigator maps UI face selections to rotation moves and follow-on visual
// effects. It is a small state machine over the current face index; all
// requests made while a slice rotation is in flight are ignored.
type Navigator struct {
	engine  *Engine
	scene   *Scene
	tracker *Tracker

	current    int
	lastSelect time.Time

	onPreset  func(FaceAssignment)
	onOverlay func(FaceAssignment)
}

// NewNavigator creates a navigator over the engine and scene. The tracker
// is optional; when present, recorded moves feed its solved latch and the
// solved check runs after each navigation rotation resolves.
func NewNavigator(engine *Engine, scene *Scene, tracker *Tracker) *Navigator {
	n := &Navigator{
		engine:  engine,
		scene:   scene,
		tracker: tracker,
		current: FaceNone,
	}
	if tracker != nil {
		engine.SetMoveCallback(tracker.NoteMove)
	}
	return n
}

// CurrentFace returns the displayed face index, or FaceNone.
func (n *Navigator) CurrentFace() int {
	return n.current
}

// SetPresetCallback sets the callback applied after a navigation rotation
// resolves: background, highlight and any material changes live behind it.
func (n *Navigator) SetPresetCallback(cb func(FaceAssignment)) {
	n.onPreset = cb
}

// SetOverlayCallback sets the callback fired by a double-activation of the
// displayed face.
func (n *Navigator) SetOverlayCallback(cb func(FaceAssignment)) {
	n.onOverlay = cb
}

// Select handles a navigation request for the given face at the given wall
// clock. A repeat select of the currently-displayed face within the
// double-activation window opens the content overlay instead of turning
// anything; this check runs before the in-flight guard so the second of two
// quick selects lands even while a rotation is still animating. Any other
// request made while a rotation is in flight is ignored.
//
// The slice rotation is fire-and-forget for the caller; the face preset,
// whole-cube reorientation and solved check are applied internally once the
// rotation resolves.
func (n *Navigator) Select(face int, now time.Time) *Rotation {
	fa, err := FaceByIndex(face)
	if err != nil {
		return nil
	}

	if face == n.current && now.Sub(n.lastSelect) <= doubleSelectWindow {
		n.lastSelect = now
		if n.onOverlay != nil {
			n.onOverlay(fa)
		}
		return nil
	}
	if n.engine.Busy() {
		return nil
	}
	n.lastSelect = now

	rot := n.engine.Rotate(fa.Move, true)
	rot.whenDone(func(*Rotation) {
		n.current = face
		n.scene.SetTarget(fa.Orientation)
		if n.onPreset != nil {
			n.onPreset(fa)
		}
		if n.tracker != nil {
			n.tracker.CheckSolved()
		}
	})
	return rot
}
