package angle

import (
	"math"
	"strconv"
)

// Degree is an angle in degrees. Values are stored as given; the canonical
// range [0, 360) is only applied by Clamped, Clamp and Equal.
type Degree float64

func (d Degree) Value() float64 { return float64(d) }

func (d Degree) Deg() Degree { return d }
func (d Degree) Rad() Radian { return Radian(DegToRad(float64(d))) }

// Clamped returns d wrapped into [0, 360).
func (d Degree) Clamped() Degree { return Degree(wrap(float64(d), 360)) }

// Clamp wraps d into [0, 360) in place.
func (d *Degree) Clamp() { *d = d.Clamped() }

// Add returns d + o in degrees.
func (d Degree) Add(o Angular) Degree { return d + o.Deg() }

// Sub returns d - o in degrees.
func (d Degree) Sub(o Angular) Degree { return d - o.Deg() }

func (d Degree) Mul(f float64) Degree { return Degree(float64(d) * f) }
func (d Degree) Div(f float64) Degree { return Degree(float64(d) / f) }

// Neg flips the sign.
func (d Degree) Neg() Degree { return -d }

// Equal compares the clamped values, so 370d equals 10d.
func (d Degree) Equal(o Angular) bool { return d.Clamped() == o.Deg().Clamped() }

// ApproxEqual is Equal with a tolerance in degrees. 359.9999d is close to 0d.
func (d Degree) ApproxEqual(o Angular, eps float64) bool {
	diff := math.Abs(float64(d.Clamped() - o.Deg().Clamped()))
	return math.Min(diff, 360-diff) <= eps
}

func (d Degree) Sin() float64 { return math.Sin(DegToRad(float64(d))) }
func (d Degree) Cos() float64 { return math.Cos(DegToRad(float64(d))) }
func (d Degree) Tan() float64 { return math.Tan(DegToRad(float64(d))) }

func (d Degree) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 64) + "d"
}
