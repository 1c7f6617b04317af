package cubenav

import "math"

// Easing maps an animation progress parameter in [0,1] to an eased value in
// [0,1]. Easing applies to the interpolation parameter, never to the angle
// directly.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// EaseOutCubic decelerates toward the end of the animation. Used by the
// interactive widget.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOutCubic accelerates then decelerates. Used by the auto-shuffle
// demo.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - math.Pow(u, 3)/2
}
