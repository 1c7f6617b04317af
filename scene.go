package cubenav

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// maxFrameDelta caps the per-tick wall-clock delta so a stalled frame never
// produces a large jump.
const maxFrameDelta = 100 * time.Millisecond

// Scene owns the whole-cube display orientation: drag input, velocity-based
// momentum, exponential smoothing toward a target orientation, and the
// intro tween. It is independent of the slice-rotation engine and steps
// unconditionally every frame.
type Scene struct {
	orientation mgl64.Quat
	target      mgl64.Quat

	dragging bool
	velYaw   float64 // rad/s about world y
	velPitch float64 // rad/s about world x

	smoothing float64 // orientation convergence rate, 1/s
	damping   float64 // momentum decay rate, 1/s

	last time.Time

	introStart    time.Time
	introDuration time.Duration
	introActive   bool
	introSpread   float64 // current sub-cube position multiplier
}

// NewScene creates a scene at the identity orientation.
func NewScene() *Scene {
	return &Scene{
		orientation: mgl64.QuatIdent(),
		target:      mgl64.QuatIdent(),
		smoothing:   8,
		damping:     3,
		introSpread: 1,
	}
}

// Orientation returns the current display orientation.
func (sc *Scene) Orientation() mgl64.Quat {
	return sc.orientation
}

// SetTarget sets the orientation the scene smooths toward.
func (sc *Scene) SetTarget(q mgl64.Quat) {
	sc.target = q.Normalize()
}

// Target returns the target orientation.
func (sc *Scene) Target() mgl64.Quat {
	return sc.target
}

// StartDrag begins a drag; momentum decay is suspended until EndDrag.
func (sc *Scene) StartDrag() {
	sc.dragging = true
}

// EndDrag releases the drag; the last velocity carries on as momentum.
func (sc *Scene) EndDrag() {
	sc.dragging = false
}

// Dragging reports whether a drag is active.
func (sc *Scene) Dragging() bool {
	return sc.dragging
}

// Spin sets the angular velocity directly (yaw about world y, pitch about
// world x, radians per second). Drag handlers and the keyboard nudge both
// feed through here.
func (sc *Scene) Spin(yaw, pitch float64) {
	sc.velYaw = yaw
	sc.velPitch = pitch
}

// StartIntro begins the intro tween: the sub-cube spread eases from
// scattered down to the assembled grid while the cube spins in.
func (sc *Scene) StartIntro(d time.Duration) {
	sc.introDuration = d
	sc.introActive = true
	sc.introStart = time.Time{} // stamped on the first Step
	sc.introSpread = introStartSpread
}

const introStartSpread = 2.5

// IntroActive reports whether the intro tween is still running.
func (sc *Scene) IntroActive() bool {
	return sc.introActive
}

// Spread returns the current sub-cube position multiplier; 1 once the
// intro has finished.
func (sc *Scene) Spread() float64 {
	return sc.introSpread
}

// Step advances the scene to the given time: clamp the elapsed delta, run
// the intro tween if active, rotate by the current momentum, decay it when
// not dragging, and smooth the display orientation toward the target with a
// frame-rate-independent exponential.
func (sc *Scene) Step(now time.Time) {
	var dt float64
	if !sc.last.IsZero() {
		d := now.Sub(sc.last)
		if d > maxFrameDelta {
			d = maxFrameDelta
		}
		if d < 0 {
			d = 0
		}
		dt = d.Seconds()
	}
	sc.last = now

	if sc.introActive {
		sc.stepIntro(now)
	}

	if sc.velYaw != 0 || sc.velPitch != 0 {
		spin := mgl64.QuatRotate(sc.velYaw*dt, mgl64.Vec3{0, 1, 0}).
			Mul(mgl64.QuatRotate(sc.velPitch*dt, mgl64.Vec3{1, 0, 0}))
		sc.target = spin.Mul(sc.target).Normalize()
		if sc.dragging {
			// Dragging applies directly; smoothing would feel laggy.
			sc.orientation = spin.Mul(sc.orientation).Normalize()
		} else {
			decay := math.Exp(-sc.damping * dt)
			sc.velYaw *= decay
			sc.velPitch *= decay
			if math.Abs(sc.velYaw) < 1e-3 {
				sc.velYaw = 0
			}
			if math.Abs(sc.velPitch) < 1e-3 {
				sc.velPitch = 0
			}
		}
	}

	f := 1 - math.Exp(-sc.smoothing*dt)
	sc.orientation = mgl64.QuatSlerp(sc.orientation, sc.target, f).Normalize()
}

func (sc *Scene) stepIntro(now time.Time) {
	if sc.introStart.IsZero() {
		sc.introStart = now
	}
	t := float64(now.Sub(sc.introStart)) / float64(sc.introDuration)
	if t >= 1 {
		sc.introActive = false
		sc.introSpread = 1
		return
	}
	e := EaseOutCubic(t)
	sc.introSpread = introStartSpread - (introStartSpread-1)*e
	// One full turn over the course of the intro.
	sc.orientation = mgl64.QuatRotate((1-e)*2*math.Pi, mgl64.Vec3{0, 1, 0}).
		Mul(sc.target).Normalize()
}
