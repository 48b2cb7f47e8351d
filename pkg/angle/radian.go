package angle

import (
	"math"
	"strconv"
)

// Radian is an angle in radians. The canonical range is [0, 2π).
type Radian float64

func (r Radian) Value() float64 { return float64(r) }

func (r Radian) Deg() Degree { return Degree(RadToDeg(float64(r))) }
func (r Radian) Rad() Radian { return r }

// Clamped returns r wrapped into [0, 2π).
func (r Radian) Clamped() Radian { return Radian(wrap(float64(r), fullTurnRad)) }

// Clamp wraps r into [0, 2π) in place.
func (r *Radian) Clamp() { *r = r.Clamped() }

func (r Radian) Add(o Angular) Radian { return r + o.Rad() }
func (r Radian) Sub(o Angular) Radian { return r - o.Rad() }

func (r Radian) Mul(f float64) Radian { return Radian(float64(r) * f) }
func (r Radian) Div(f float64) Radian { return Radian(float64(r) / f) }

// Neg returns r - π, the opposite direction. This is not a sign flip:
// Radian(0).Neg() is -π, while Degree(0).Neg() is 0.
func (r Radian) Neg() Radian { return r - math.Pi }

// Equal compares the clamped values.
func (r Radian) Equal(o Angular) bool { return r.Clamped() == o.Rad().Clamped() }

// ApproxEqual is Equal with a tolerance in radians.
func (r Radian) ApproxEqual(o Angular, eps float64) bool {
	diff := math.Abs(float64(r.Clamped() - o.Rad().Clamped()))
	return math.Min(diff, fullTurnRad-diff) <= eps
}

func (r Radian) Sin() float64 { return math.Sin(float64(r)) }
func (r Radian) Cos() float64 { return math.Cos(float64(r)) }
func (r Radian) Tan() float64 { return math.Tan(float64(r)) }

func (r Radian) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64) + "r"
}
