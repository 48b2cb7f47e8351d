// Package angle provides degree and radian value types and a unit-agnostic
// Angle wrapper that defers the choice of unit to the caller.
package angle

import "math"

const fullTurnRad = 2 * math.Pi

// Angular is implemented by every angle representation. Operands of
// cross-unit arithmetic are converted through it.
type Angular interface {
	Deg() Degree
	Rad() Radian
}

var (
	_ Angular = Degree(0)
	_ Angular = Radian(0)
	_ Angular = Angle{}
)

func DegToRad(d float64) float64 { return d * (math.Pi / 180) }
func RadToDeg(r float64) float64 { return r * (180 / math.Pi) }

// RadPi returns n*π radians.
func RadPi(n float64) Radian { return Radian(n * math.Pi) }

// wrap normalizes v into [0, period).
func wrap(v, period float64) float64 {
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	// a tiny negative remainder rounds up to exactly period
	if v >= period {
		v -= period
	}
	return v
}
