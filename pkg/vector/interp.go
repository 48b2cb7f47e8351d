package vector

import (
	"math"

	"github.com/zeusync/geomath/pkg/numeric"
)

// Interpolation works in float64 and converts the result back into T.
// t is not clamped to [0, 1].

func toFloat[T numeric.Number](v Vec2[T]) Vec2d {
	return Vec2d{X: float64(v.X), Y: float64(v.Y)}
}

func fromFloat[T numeric.Number](v Vec2d) Vec2[T] {
	return Vec2[T]{X: T(v.X), Y: T(v.Y)}
}

func lerp(a, b Vec2d, t float64) Vec2d {
	return Vec2d{X: numeric.Lerp(a.X, b.X, t), Y: numeric.Lerp(a.Y, b.Y, t)}
}

// Lerp interpolates each component independently.
func Lerp[T numeric.Number](a, b Vec2[T], t float64) Vec2[T] {
	return fromFloat[T](lerp(toFloat(a), toFloat(b), t))
}

// SlerpFast interpolates the direction linearly and the magnitude linearly.
// It approximates Slerp without trigonometry.
func SlerpFast[T numeric.Number](a, b Vec2[T], t float64) Vec2[T] {
	fa, fb := toFloat(a), toFloat(b)
	dir := lerp(fa, fb, t).Normal()
	return fromFloat[T](dir.Scale(numeric.Lerp(fa.Magnitude(), fb.Magnitude(), t)))
}

// TlerpFast is SlerpFast with the squared magnitude interpolated instead.
func TlerpFast[T numeric.Number](a, b Vec2[T], t float64) Vec2[T] {
	fa, fb := toFloat(a), toFloat(b)
	dir := lerp(fa, fb, t).Normal()
	return fromFloat[T](dir.Scale(math.Sqrt(numeric.Lerp(fa.Magnitude2(), fb.Magnitude2(), t))))
}

// Slerp rotates a towards b by t of the angle between them. a and b must be
// unit vectors; the result is not renormalized.
func Slerp[T numeric.Number](a, b Vec2[T], t float64) Vec2[T] {
	fa, fb := toFloat(a), toFloat(b)
	dot := numeric.Clamp(Dot(fa, fb), -1, 1)
	theta := math.Acos(dot) * t
	rel := fb.Sub(fa.Scale(dot)).Normal()
	return fromFloat[T](fa.Scale(math.Cos(theta)).Add(rel.Scale(math.Sin(theta))))
}
