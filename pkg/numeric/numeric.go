package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is any floating point type.
type Float interface {
	constraints.Float
}

// Lerp linearly interpolates between a and b. t is not clamped.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs[T Number](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// AlmostEqual reports whether a and b differ by at most tolerance.
// NaN is never almost equal to anything.
func AlmostEqual[T Number](a, b T, tolerance float64) bool {
	fa, fb := float64(a), float64(b)
	if fa == fb {
		return true
	}
	return math.Abs(fa-fb) <= tolerance
}

// Sqrt returns the square root of v converted back into T.
// Integer types truncate.
func Sqrt[T Number](v T) T {
	return T(math.Sqrt(float64(v)))
}
