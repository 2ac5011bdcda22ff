package utils

func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to [lo, hi]. lo must not exceed hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
