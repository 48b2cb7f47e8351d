package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/geomath/pkg/angle"
)

func requireVec(t *testing.T, want, got Vec2d) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-9, "x of %v", got)
	require.InDelta(t, want.Y, got.Y, 1e-9, "y of %v", got)
}

func TestDirections(t *testing.T) {
	assert.Equal(t, Vec2d{X: 1}, Right[float64]())
	assert.Equal(t, Vec2d{X: -1}, Left[float64]())
	assert.Equal(t, Vec2d{Y: -1}, Up[float64]())
	assert.Equal(t, Vec2d{Y: 1}, Down[float64]())
	assert.Equal(t, Vec2d{}, Zero[float64]())
	assert.Equal(t, Vec2i{X: -1}, Ll[int]())
	assert.Equal(t, Right[int](), Rr[int]())
	assert.Equal(t, Down[int](), Dw[int]())
	assert.Equal(t, Vec2i{X: 3, Y: 3}, Splat(3))
	assert.Equal(t, Vec2f{X: 1, Y: 2}, New[float32](1, 2))
}

func TestMagnitude(t *testing.T) {
	v := New(3.0, 4.0)
	assert.Equal(t, 25.0, v.Magnitude2())
	assert.Equal(t, 5.0, v.Magnitude())
	assert.Equal(t, 2, Vec2i{X: 2, Y: 2}.Magnitude())
}

func TestNormal(t *testing.T) {
	requireVec(t, Vec2d{X: 0.6, Y: 0.8}, New(3.0, 4.0).Normal())

	zero := Vec2d{}
	n := zero.Normal()
	require.Equal(t, zero, n)
	require.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y))

	v := New(0.0, -7.0)
	v.Normalize()
	require.Equal(t, Vec2d{Y: -1}, v)

	// integer vectors truncate
	require.Equal(t, Vec2i{}, Vec2i{X: 3, Y: 4}.Normal())
	require.Equal(t, Vec2i{X: 1}, Vec2i{X: 9}.Normal())
}

func TestToAngle(t *testing.T) {
	tests := []struct {
		v    Vec2d
		want float64
	}{
		{Down[float64](), 180},
		{Right[float64](), 270},
		{Left[float64](), 90},
		{Up[float64](), 0},
		{New(1.0, 1.0), 225},
	}
	for _, tt := range tests {
		got := tt.v.ToAngle()
		assert.InDelta(t, tt.want, got.Value(), 1e-9, "angle of %v", tt.v)
		assert.GreaterOrEqual(t, got.Value(), 0.0)
		assert.Less(t, got.Value(), 360.0)
	}
}

func TestLengthArithmetic(t *testing.T) {
	requireVec(t, Vec2d{X: 6, Y: 8}, New(3.0, 4.0).AddLength(5))
	requireVec(t, Vec2d{}, New(3.0, 4.0).SubLength(5))
	requireVec(t, Vec2d{X: -3, Y: -4}, New(3.0, 4.0).SubLength(10))
	requireVec(t, Vec2d{X: 0, Y: 10}, New(0.0, 2.0).WithLength(10))

	v := New(2.0, 0.0)
	v.Inc()
	require.Equal(t, Vec2d{X: 3}, v)
	v.Dec()
	v.Dec()
	require.Equal(t, Vec2d{X: 1}, v)
	v.SetLength(4)
	require.Equal(t, Vec2d{X: 4}, v)

	// a zero vector has no direction to extend along
	require.Equal(t, Vec2d{}, Vec2d{}.AddLength(3))
}

func TestScalarArithmetic(t *testing.T) {
	assert.Equal(t, Vec2d{X: 2, Y: 4}, New(1.0, 2.0).Scale(2))
	assert.Equal(t, Vec2d{X: 0.5, Y: 1}, New(1.0, 2.0).DivScalar(2))
	assert.Equal(t, Vec2i{X: 3, Y: -3}, Vec2i{X: 7, Y: -7}.DivScalar(2))

	inf := New(1.0, -1.0).DivScalar(0)
	assert.True(t, math.IsInf(inf.X, 1))
	assert.True(t, math.IsInf(inf.Y, -1))
}

func TestVectorArithmetic(t *testing.T) {
	a, b := New(1.0, 2.0), New(3.0, 5.0)
	assert.Equal(t, Vec2d{X: 4, Y: 7}, a.Add(b))
	assert.Equal(t, Vec2d{X: -2, Y: -3}, a.Sub(b))
	assert.Equal(t, Vec2d{X: 3, Y: 10}, a.Mul(b))
	assert.Equal(t, Vec2d{X: 1.0 / 3, Y: 0.4}, a.Div(b))
	assert.Equal(t, Vec2d{X: -1, Y: -2}, a.Neg())
	assert.Equal(t, Vec2i{X: 3, Y: 1}, Vec2i{X: 7, Y: 5}.Div(Vec2i{X: 2, Y: 3}))

	assert.True(t, a.Equal(New(1.0, 2.0)))
	assert.False(t, a.Equal(b))
	assert.True(t, a.ApproxEqual(New(1.0+1e-12, 2.0), 1e-9))
}

func TestRotate(t *testing.T) {
	v := New(1.0, 0.0)
	c, s := math.Cos(math.Pi/2), math.Sin(math.Pi/2)
	require.Equal(t, Vec2d{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}, v.Rotate(angle.Radian(math.Pi/2)))

	requireVec(t, Vec2d{Y: 1}, v.Rotate(angle.Degree(90)))
	requireVec(t, Vec2d{Y: -1}, v.RotateBack(angle.Degree(90)))
	requireVec(t, Vec2d{X: -1}, v.Rotate(angle.FromRadian(math.Pi)))
	requireVec(t, New(2.0, 3.0), New(2.0, 3.0).Rotate(angle.Degree(30)).RotateBack(angle.Degree(30)))

	requireVec(t, Vec2d{X: -2, Y: 1}, New(1.0, 2.0).Rotate(angle.Degree(90)))
	assert.Equal(t, Vec2i{X: 0, Y: 10}, Vec2i{X: 10}.Rotate(angle.Degree(90)))
}

func TestWithAngle(t *testing.T) {
	v := New(3.0, 4.0)
	requireVec(t, Vec2d{X: 5}, v.WithAngle(angle.Degree(0)))
	requireVec(t, Vec2d{Y: 5}, v.WithAngle(angle.Radian(math.Pi/2)))

	v.SetAngle(angle.FromDegree(180))
	requireVec(t, Vec2d{X: -5}, v)
}

func TestDotAndDistance(t *testing.T) {
	assert.Equal(t, 0.0, Dot(New(1.0, 0.0), New(0.0, 1.0)))
	assert.Equal(t, 11, Dot(Vec2i{X: 1, Y: 2}, Vec2i{X: 3, Y: 4}))
	assert.Equal(t, 5.0, Distance(New(0.0, 0.0), New(3.0, 4.0)))
	assert.Equal(t, 5, Distance(Vec2i{X: 1, Y: 1}, Vec2i{X: 4, Y: 5}))
}

func TestString(t *testing.T) {
	assert.Equal(t, "vec2(1, 2.5)", New(1.0, 2.5).String())
	assert.Equal(t, "vec2(-3, 4)", Vec2i{X: -3, Y: 4}.String())
}
