package cubenav

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSceneConvergesToTarget(t *testing.T) {
	sc := NewScene()
	target := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	sc.SetTarget(target)

	now := time.Unix(0, 0)
	for i := 0; i < 600; i++ { // ten seconds at 60fps
		now = now.Add(16 * time.Millisecond)
		sc.Step(now)
	}

	if !sameRotation(sc.Orientation(), target) {
		t.Error("orientation should converge to the target")
	}
}

func TestSceneClampsStalledFrames(t *testing.T) {
	a := NewScene()
	b := NewScene()
	target := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	a.SetTarget(target)
	b.SetTarget(target)

	now := time.Unix(0, 0)
	a.Step(now)
	b.Step(now)

	// One scene stalls for five seconds, the other for the clamp limit.
	a.Step(now.Add(5 * time.Second))
	b.Step(now.Add(maxFrameDelta))

	av := a.Orientation().Rotate(mgl64.Vec3{0, 0, 1})
	bv := b.Orientation().Rotate(mgl64.Vec3{0, 0, 1})
	if av.Sub(bv).Len() > 1e-9 {
		t.Error("a stalled frame should advance no further than the clamp limit")
	}
}

func TestSceneMomentumDecays(t *testing.T) {
	sc := NewScene()
	sc.Spin(2.0, 0)

	now := time.Unix(0, 0)
	sc.Step(now)

	prev := sc.Orientation()
	moved := false
	for i := 0; i < 600; i++ { // ten seconds
		now = now.Add(16 * time.Millisecond)
		sc.Step(now)
		if !sameRotation(prev, sc.Orientation()) {
			moved = true
		}
		prev = sc.Orientation()
	}
	if !moved {
		t.Fatal("momentum should rotate the scene")
	}
	if sc.velYaw != 0 {
		t.Errorf("yaw velocity should decay to zero, got %v", sc.velYaw)
	}
}

func TestSceneDragSuspendsDecay(t *testing.T) {
	sc := NewScene()
	sc.StartDrag()
	sc.Spin(1.5, 0)

	now := time.Unix(0, 0)
	sc.Step(now)
	for i := 0; i < 60; i++ {
		now = now.Add(16 * time.Millisecond)
		sc.Step(now)
	}
	if sc.velYaw != 1.5 {
		t.Errorf("velocity should hold steady while dragging, got %v", sc.velYaw)
	}

	sc.EndDrag()
	for i := 0; i < 60; i++ {
		now = now.Add(16 * time.Millisecond)
		sc.Step(now)
	}
	if sc.velYaw >= 1.5 {
		t.Error("velocity should decay after the drag ends")
	}
}

func TestIntroTween(t *testing.T) {
	sc := NewScene()
	sc.StartIntro(2 * time.Second)

	if !sc.IntroActive() {
		t.Fatal("intro should be active")
	}
	if sc.Spread() <= 1 {
		t.Error("intro should start with the sub-cubes spread out")
	}

	now := time.Unix(0, 0)
	sc.Step(now)
	sc.Step(now.Add(time.Second))
	if !sc.IntroActive() {
		t.Error("intro should still be running at the midpoint")
	}
	mid := sc.Spread()
	if mid <= 1 || mid >= introStartSpread {
		t.Errorf("midpoint spread %v should be between 1 and %v", mid, introStartSpread)
	}

	// The clamp limits each step to maxFrameDelta, so finishing takes many
	// small steps rather than one big one.
	for i := 0; i < 40; i++ {
		now = now.Add(100 * time.Millisecond)
		sc.Step(now)
	}
	if sc.IntroActive() {
		t.Error("intro should have finished")
	}
	if sc.Spread() != 1 {
		t.Errorf("spread should settle at 1, got %v", sc.Spread())
	}
}
