package vmath

// Clamp01 limits t to [0,1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// SmoothStep is the cubic hermite ease 3t²-2t³
func SmoothStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// EaseInOutCubic accelerates through the first half and decelerates through the second
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 0.5*f*f*f + 1
}

// Lerp interpolates scalars, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
