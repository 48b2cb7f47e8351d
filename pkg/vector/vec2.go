// Package vector provides a generic 2D vector for game and simulation code.
//
// Directions follow screen coordinates: Up is (0, -1) and Down is (0, 1).
package vector

import (
	"fmt"
	"math"

	"github.com/zeusync/geomath/pkg/angle"
	"github.com/zeusync/geomath/pkg/numeric"
)

// Vec2 is a pair of numeric components. Integer vectors truncate on every
// operation that goes through floating point (Magnitude, Normal, rotation).
type Vec2[T numeric.Number] struct {
	X, Y T
}

type (
	Vec2i   = Vec2[int]
	Vec2i8  = Vec2[int8]
	Vec2i16 = Vec2[int16]
	Vec2i32 = Vec2[int32]
	Vec2i64 = Vec2[int64]
	Vec2u   = Vec2[uint]
	Vec2u8  = Vec2[uint8]
	Vec2u16 = Vec2[uint16]
	Vec2u32 = Vec2[uint32]
	Vec2u64 = Vec2[uint64]
	Vec2f   = Vec2[float32]
	Vec2d   = Vec2[float64]
)

func New[T numeric.Number](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

// Splat returns (xy, xy).
func Splat[T numeric.Number](xy T) Vec2[T] { return Vec2[T]{X: xy, Y: xy} }

func Right[T numeric.Number]() Vec2[T] { return Vec2[T]{X: 1} }

func Left[T numeric.Number]() Vec2[T] {
	one := T(1)
	return Vec2[T]{X: -one}
}

func Up[T numeric.Number]() Vec2[T] {
	one := T(1)
	return Vec2[T]{Y: -one}
}

func Down[T numeric.Number]() Vec2[T] { return Vec2[T]{Y: 1} }
func Zero[T numeric.Number]() Vec2[T] { return Vec2[T]{} }

func Rr[T numeric.Number]() Vec2[T] { return Right[T]() }
func Ll[T numeric.Number]() Vec2[T] { return Left[T]() }
func Dw[T numeric.Number]() Vec2[T] { return Down[T]() }

func (v Vec2[T]) Magnitude2() T { return v.X*v.X + v.Y*v.Y }
func (v Vec2[T]) Magnitude() T  { return numeric.Sqrt(v.Magnitude2()) }

// Normal returns v scaled to unit length. A zero-length vector is returned
// unchanged instead of dividing by zero.
func (v Vec2[T]) Normal() Vec2[T] {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.DivScalar(m)
}

func (v *Vec2[T]) Normalize() { *v = v.Normal() }

// ToAngle returns the direction of v in [0, 360) as atan2(x, y) in degrees
// shifted by 180. Down maps to 180, Right to 270 and Up to 0.
func (v Vec2[T]) ToAngle() angle.Degree {
	return angle.Degree(math.Atan2(float64(v.X), float64(v.Y))*180/math.Pi + 180).Clamped()
}

func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{X: -v.X, Y: -v.Y} }

// AddLength extends v by n along its direction.
func (v Vec2[T]) AddLength(n T) Vec2[T] { return v.Normal().Scale(v.Magnitude() + n) }

// SubLength shortens v by n along its direction.
func (v Vec2[T]) SubLength(n T) Vec2[T] { return v.Normal().Scale(v.Magnitude() - n) }

// Inc extends v by one unit of length.
func (v *Vec2[T]) Inc() { *v = v.AddLength(1) }

// Dec shortens v by one unit of length.
func (v *Vec2[T]) Dec() { *v = v.SubLength(1) }

// WithLength returns v pointed the same way with magnitude n.
func (v Vec2[T]) WithLength(n T) Vec2[T] { return v.Normal().Scale(n) }

func (v *Vec2[T]) SetLength(n T) { *v = v.WithLength(n) }

func (v Vec2[T]) Scale(n T) Vec2[T]     { return Vec2[T]{X: v.X * n, Y: v.Y * n} }
func (v Vec2[T]) DivScalar(n T) Vec2[T] { return Vec2[T]{X: v.X / n, Y: v.Y / n} }

// Rotate applies the rotation matrix for a to v:
// (x*cos - y*sin, x*sin + y*cos).
func (v Vec2[T]) Rotate(a angle.Angular) Vec2[T] {
	return v.rotate(float64(a.Rad()))
}

// RotateBack rotates v by the opposite of a.
func (v Vec2[T]) RotateBack(a angle.Angular) Vec2[T] {
	return v.rotate(-float64(a.Rad()))
}

func (v Vec2[T]) rotate(rad float64) Vec2[T] {
	sin, cos := math.Sin(rad), math.Cos(rad)
	x, y := float64(v.X), float64(v.Y)
	return Vec2[T]{X: T(x*cos - y*sin), Y: T(x*sin + y*cos)}
}

// WithAngle returns a vector of the same magnitude as v pointing along a.
func (v Vec2[T]) WithAngle(a angle.Angular) Vec2[T] {
	r := a.Rad()
	m := float64(v.Magnitude())
	return Vec2[T]{X: T(r.Cos() * m), Y: T(r.Sin() * m)}
}

func (v *Vec2[T]) SetAngle(a angle.Angular) { *v = v.WithAngle(a) }

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X * o.X, Y: v.Y * o.Y} }
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X / o.X, Y: v.Y / o.Y} }

func (v Vec2[T]) Equal(o Vec2[T]) bool { return v.X == o.X && v.Y == o.Y }

// ApproxEqual compares components with an absolute tolerance.
func (v Vec2[T]) ApproxEqual(o Vec2[T], eps float64) bool {
	return numeric.AlmostEqual(v.X, o.X, eps) && numeric.AlmostEqual(v.Y, o.Y, eps)
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("vec2(%v, %v)", v.X, v.Y)
}

func Dot[T numeric.Number](a, b Vec2[T]) T { return a.X*b.X + a.Y*b.Y }

// Distance is the Euclidean distance between the points a and b.
func Distance[T numeric.Number](a, b Vec2[T]) T {
	return a.Sub(b).Magnitude()
}
