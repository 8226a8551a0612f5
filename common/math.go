package common

// Lerp moves t of the way from a to b.
func Lerp[F ~float32 | ~float64](a, b, t F) F {
	return a + t*(b-a)
}

// Clamp01 limits t to [0, 1].
func Clamp01[F ~float32 | ~float64](t F) F {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
