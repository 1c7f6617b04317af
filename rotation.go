package cubenav

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is the animation record for one slice turn: pure data advanced
// by Engine.Step. It doubles as the completion signal handed back to the
// caller.
type Rotation struct {
	move      Move
	duration  time.Duration
	easing    Easing
	start     time.Time
	performed bool
	active    bool
	done      chan struct{}
	onDone    []func(*Rotation)

	// Rest transforms captured when the rotation starts; every step derives
	// the current transform from these and the partial angle, so a stalled
	// frame never accumulates drift.
	subs    []*SubCube
	restPos []mgl64.Vec3
	restRot []mgl64.Quat
}

// Move returns the move being performed.
func (r *Rotation) Move() Move {
	return r.move
}

// Active reports whether the rotation is still in flight.
func (r *Rotation) Active() bool {
	return r.active
}

// Performed reports whether the rotation actually turned a slice. It is
// false for requests that were dropped because another rotation was in
// flight.
func (r *Rotation) Performed() bool {
	return r.performed
}

// Done returns a channel closed when the rotation completes. Dropped
// requests return an already-closed channel.
func (r *Rotation) Done() <-chan struct{} {
	return r.done
}

// whenDone registers a completion callback, invoked synchronously from the
// Step that finishes the rotation. Dropped rotations invoke it immediately.
func (r *Rotation) whenDone(fn func(*Rotation)) {
	if !r.active {
		fn(r)
		return
	}
	r.onDone = append(r.onDone, fn)
}

func (r *Rotation) finish() {
	r.active = false
	close(r.done)
	for _, fn := range r.onDone {
		fn(r)
	}
	r.onDone = nil
}

// droppedRotation builds the completed no-op handed back when a request
// arrives while another rotation is in flight.
func droppedRotation(m Move) *Rotation {
	r := &Rotation{move: m, done: make(chan struct{})}
	close(r.done)
	return r
}

// Engine animates slice rotations on a cube. At most one rotation runs at a
// time; concurrent requests are dropped, never queued.
type Engine struct {
	cube    *Cube
	cfg     *config
	current *Rotation
	history []Move
	onMove  func(Move)
}

// NewEngine creates a rotation engine for the cube.
func NewEngine(cube *Cube, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine{cube: cube, cfg: cfg}
}

// Cube returns the cube the engine animates.
func (e *Engine) Cube() *Cube {
	return e.cube
}

// Busy reports whether a rotation is in flight.
func (e *Engine) Busy() bool {
	return e.current != nil && e.current.active
}

// History returns the recorded moves, oldest first.
func (e *Engine) History() []Move {
	return e.history
}

// ClearHistory drops the recorded moves.
func (e *Engine) ClearHistory() {
	e.history = nil
}

// SetMoveCallback sets a callback fired when a recorded move starts.
func (e *Engine) SetMoveCallback(cb func(Move)) {
	e.onMove = cb
}

// RotateSlice starts animating a 90-degree turn of the given slice. If a
// rotation is already in progress the request is silently dropped and the
// returned Rotation completes immediately without performing the move.
//
// The animation advances when the caller's loop invokes Step; the start
// time is taken from the first Step after the request.
func (e *Engine) RotateSlice(axis Axis, slice, dir int, recordMove bool) *Rotation {
	m := Move{Axis: axis, Slice: slice, Dir: dir}
	if e.Busy() {
		return droppedRotation(m)
	}

	subs := e.cube.Slice(axis, slice)
	r := &Rotation{
		move:      m,
		duration:  e.cfg.rotationDuration,
		easing:    e.cfg.easing,
		performed: true,
		active:    true,
		done:      make(chan struct{}),
		subs:      subs,
		restPos:   make([]mgl64.Vec3, len(subs)),
		restRot:   make([]mgl64.Quat, len(subs)),
	}
	for i, s := range subs {
		r.restPos[i] = s.Position
		r.restRot[i] = s.Orientation
	}
	e.current = r

	if recordMove {
		if e.cfg.moveHistory {
			e.history = append(e.history, m.WithTime(time.Now()))
		}
		if e.onMove != nil {
			e.onMove(m)
		}
	}
	return r
}

// Rotate starts animating a Move. Shorthand for RotateSlice.
func (e *Engine) Rotate(m Move, recordMove bool) *Rotation {
	return e.RotateSlice(m.Axis, m.Slice, m.Dir, recordMove)
}

// Step advances the in-flight rotation to the given time. Each affected
// sub-cube's position is rotated about the cube center by the partial-angle
// quaternion and its orientation rotated likewise. When the sweep reaches
// 90 degrees the slice is snapped back onto the grid and the rotation's
// completion signal fires. Returns true while a rotation is animating.
func (e *Engine) Step(now time.Time) bool {
	r := e.current
	if r == nil || !r.active {
		return false
	}
	if r.start.IsZero() {
		r.start = now
	}

	t := float64(now.Sub(r.start)) / float64(r.duration)
	if t < 0 {
		t = 0
	}
	if t >= 1 {
		e.complete(r)
		return false
	}

	angle := r.easing(t) * (math.Pi / 2)
	q := r.move.QuatAt(angle)
	for i, s := range r.subs {
		s.Position = q.Rotate(r.restPos[i])
		s.Orientation = q.Mul(r.restRot[i])
	}
	return true
}

// complete applies the full rotation and the snap step.
func (e *Engine) complete(r *Rotation) {
	q := r.move.Quat()
	for i, s := range r.subs {
		s.Position = q.Rotate(r.restPos[i])
		s.Orientation = q.Mul(r.restRot[i])
		e.cube.snapSubCube(s)
	}
	e.current = nil
	r.finish()
}
