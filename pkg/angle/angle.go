package angle

type unit uint8

const (
	unitDegree unit = iota
	unitRadian
)

// Angle holds either a Degree or a Radian. Arithmetic dispatches on the held
// unit and results keep the unit of the left operand. The zero value is 0d.
type Angle struct {
	unit  unit
	value float64
}

func FromDegree(d Degree) Angle { return Angle{unit: unitDegree, value: float64(d)} }
func FromRadian(r Radian) Angle { return Angle{unit: unitRadian, value: float64(r)} }

// New wraps a keeping its unit. An Angle is copied as is.
func New(a Angular) Angle {
	switch v := a.(type) {
	case Degree:
		return FromDegree(v)
	case Radian:
		return FromRadian(v)
	case Angle:
		return v
	case *Angle:
		return *v
	default:
		return FromRadian(a.Rad())
	}
}

func (a Angle) IsDegree() bool { return a.unit == unitDegree }
func (a Angle) IsRadian() bool { return a.unit == unitRadian }

// Deg returns the angle in degrees without changing the held unit.
func (a Angle) Deg() Degree {
	if a.unit == unitRadian {
		return Radian(a.value).Deg()
	}
	return Degree(a.value)
}

// Rad returns the angle in radians without changing the held unit.
func (a Angle) Rad() Radian {
	if a.unit == unitDegree {
		return Degree(a.value).Rad()
	}
	return Radian(a.value)
}

// GetRad converts the held value to radians, keeps it that way and returns it.
func (a *Angle) GetRad() Radian {
	*a = FromRadian(a.Rad())
	return Radian(a.value)
}

// GetDeg converts the held value to degrees, keeps it that way and returns it.
func (a *Angle) GetDeg() Degree {
	*a = FromDegree(a.Deg())
	return Degree(a.value)
}

func (a Angle) Add(o Angular) Angle {
	if a.unit == unitRadian {
		return FromRadian(Radian(a.value).Add(o))
	}
	return FromDegree(Degree(a.value).Add(o))
}

func (a Angle) Sub(o Angular) Angle {
	if a.unit == unitRadian {
		return FromRadian(Radian(a.value).Sub(o))
	}
	return FromDegree(Degree(a.value).Sub(o))
}

func (a Angle) Mul(f float64) Angle { return Angle{unit: a.unit, value: a.value * f} }
func (a Angle) Div(f float64) Angle { return Angle{unit: a.unit, value: a.value / f} }

// Neg uses the held unit's negation, see Radian.Neg.
func (a Angle) Neg() Angle {
	if a.unit == unitRadian {
		return FromRadian(Radian(a.value).Neg())
	}
	return FromDegree(Degree(a.value).Neg())
}

func (a Angle) Clamped() Angle {
	if a.unit == unitRadian {
		return FromRadian(Radian(a.value).Clamped())
	}
	return FromDegree(Degree(a.value).Clamped())
}

func (a Angle) Equal(o Angular) bool {
	if a.unit == unitRadian {
		return Radian(a.value).Equal(o)
	}
	return Degree(a.value).Equal(o)
}

func (a Angle) ApproxEqual(o Angular, eps float64) bool {
	if a.unit == unitRadian {
		return Radian(a.value).ApproxEqual(o, eps)
	}
	return Degree(a.value).ApproxEqual(o, eps)
}

func (a Angle) Sin() float64 { return a.Rad().Sin() }
func (a Angle) Cos() float64 { return a.Rad().Cos() }
func (a Angle) Tan() float64 { return a.Rad().Tan() }

func AngleAsin(n float64) Angle     { return FromRadian(Asin(n)) }
func AngleAcos(n float64) Angle     { return FromRadian(Acos(n)) }
func AngleAtan(n float64) Angle     { return FromRadian(Atan(n)) }
func AngleAtan2(y, x float64) Angle { return FromRadian(Atan2(y, x)) }

// String formats the angle in degrees.
func (a Angle) String() string { return a.Deg().String() }
