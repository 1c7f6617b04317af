package cubenav

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const quarter = math.Pi / 2

// snapSubCube forces a sub-cube's continuous transform back onto the
// discrete grid/orientation lattice. Applied once after every completed
// slice rotation; applying it twice yields the same result as once.
func (c *Cube) snapSubCube(s *SubCube) {
	s.Coord = c.coordFor(s.Position)
	s.Position = c.positionFor(s.Coord)
	s.Orientation = snapOrientation(s.Orientation)
}

// snapOrientation rounds an orientation to the nearest axis-aligned
// 90-degree rotation. The quaternion is decomposed through a fixed XYZ
// Euler order, each angle rounded independently to the nearest multiple of
// 90 degrees, and the orientation rebuilt from the rounded angles. The
// Euler order is part of the widget's observable behavior and must not
// change.
func snapOrientation(q mgl64.Quat) mgl64.Quat {
	rx, ry, rz := eulerXYZ(q)
	return quatFromEulerXYZ(snapAngle(rx), snapAngle(ry), snapAngle(rz))
}

// snapAngle rounds an angle to the nearest multiple of 90 degrees.
func snapAngle(a float64) float64 {
	return math.Round(a/quarter) * quarter
}

// quarterTurns normalizes an angle to a turn count in 0..3.
func quarterTurns(a float64) int {
	n := int(math.Round(a/quarter)) % 4
	if n < 0 {
		n += 4
	}
	return n
}

// eulerXYZ decomposes a rotation into XYZ-order Euler angles such that
// quatFromEulerXYZ(rx, ry, rz) reproduces the rotation.
func eulerXYZ(q mgl64.Quat) (rx, ry, rz float64) {
	m := q.Normalize().Mat4()

	sy := -m.At(2, 0)
	if sy > 1 {
		sy = 1
	}
	if sy < -1 {
		sy = -1
	}
	ry = math.Asin(sy)

	if math.Abs(sy) < 0.9999999 {
		rx = math.Atan2(m.At(2, 1), m.At(2, 2))
		rz = math.Atan2(m.At(1, 0), m.At(0, 0))
		return rx, ry, rz
	}

	// Gimbal lock: pitch is +-90 degrees, fold everything into rx.
	rx = math.Atan2(sy*m.At(0, 1), m.At(1, 1))
	rz = 0
	return rx, ry, rz
}

// quatFromEulerXYZ rebuilds a rotation from XYZ-order Euler angles:
// Rz * Ry * Rx applied to column vectors.
func quatFromEulerXYZ(rx, ry, rz float64) mgl64.Quat {
	qx := mgl64.QuatRotate(rx, mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(ry, mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(rz, mgl64.Vec3{0, 0, 1})
	return qz.Mul(qy).Mul(qx).Normalize()
}
