package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	require.Equal(t, Vec2d{X: 5, Y: 5}, Lerp(New(0.0, 0.0), New(10.0, 10.0), 0.5))
	require.Equal(t, Vec2d{X: 0, Y: 0}, Lerp(New(0.0, 0.0), New(10.0, 10.0), 0))
	require.Equal(t, Vec2d{X: 20, Y: -20}, Lerp(New(0.0, 0.0), New(10.0, -10.0), 2))
	require.Equal(t, Vec2i{X: 5, Y: 2}, Lerp(Vec2i{}, Vec2i{X: 10, Y: 5}, 0.5))
}

func TestSlerp(t *testing.T) {
	a, b := Right[float64](), Down[float64]()
	half := math.Sqrt2 / 2
	requireVec(t, Vec2d{X: half, Y: half}, Slerp(a, b, 0.5))
	requireVec(t, a, Slerp(a, b, 0))
	requireVec(t, b, Slerp(a, b, 1))

	// identical inputs have no orthogonal component
	requireVec(t, a, Slerp(a, a, 0.3))

	third := Slerp(a, b, 1.0/3)
	assert.InDelta(t, 1.0, third.Magnitude(), 1e-9)
	assert.InDelta(t, math.Pi/6, math.Atan2(third.Y, third.X), 1e-9)
}

func TestSlerpFast(t *testing.T) {
	a, b := New(2.0, 0.0), New(0.0, 4.0)
	got := SlerpFast(a, b, 0.5)
	assert.InDelta(t, 3.0, got.Magnitude(), 1e-9)
	requireVec(t, New(1.0, 2.0).Normal().Scale(3), got)
	requireVec(t, a, SlerpFast(a, b, 0))
	requireVec(t, b, SlerpFast(a, b, 1))
}

func TestTlerpFast(t *testing.T) {
	a, b := New(2.0, 0.0), New(0.0, 4.0)
	got := TlerpFast(a, b, 0.5)
	assert.InDelta(t, math.Sqrt(10), got.Magnitude(), 1e-9)
	requireVec(t, New(1.0, 2.0).Normal().Scale(math.Sqrt(10)), got)
}
