package scenario

import (
	"fmt"
	"strconv"

	"github.com/zeusync/geomath/pkg/angle"
	"github.com/zeusync/geomath/pkg/numeric"
	"github.com/zeusync/geomath/pkg/vector"
)

// Scenario is a named list of steps, each evaluating one op.
type Scenario struct {
	Name      string   `json:"name" yaml:"name"`
	Tolerance *float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	Steps     []Step   `json:"steps" yaml:"steps"`
}

// Step holds the op name and the operands it needs. Unused operands are
// ignored.
type Step struct {
	Op        string      `json:"op" yaml:"op"`
	A         Vec         `json:"a,omitempty" yaml:"a,omitempty"`
	B         Vec         `json:"b,omitempty" yaml:"b,omitempty"`
	Angle     *AngleValue `json:"angle,omitempty" yaml:"angle,omitempty"`
	Other     *AngleValue `json:"other,omitempty" yaml:"other,omitempty"`
	Scalar    *float64    `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	T         *float64    `json:"t,omitempty" yaml:"t,omitempty"`
	Tolerance *float64    `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	Expect    *Expect     `json:"expect,omitempty" yaml:"expect,omitempty"`
}

// Vec is a vector operand written as a two element list.
type Vec []float64

func (v Vec) Vec2() (vector.Vec2d, error) {
	if len(v) != 2 {
		return vector.Vec2d{}, fmt.Errorf("%w: got %d", ErrInvalidVector, len(v))
	}
	return vector.New(v[0], v[1]), nil
}

// AngleValue is an angle operand in one of three notations.
type AngleValue struct {
	Deg *float64 `json:"deg,omitempty" yaml:"deg,omitempty"`
	Rad *float64 `json:"rad,omitempty" yaml:"rad,omitempty"`
	Pi  *float64 `json:"pi,omitempty" yaml:"pi,omitempty"`
}

func (a *AngleValue) Angle() (angle.Angle, error) {
	set := 0
	var out angle.Angle
	if a.Deg != nil {
		set++
		out = angle.FromDegree(angle.Degree(*a.Deg))
	}
	if a.Rad != nil {
		set++
		out = angle.FromRadian(angle.Radian(*a.Rad))
	}
	if a.Pi != nil {
		set++
		out = angle.FromRadian(angle.RadPi(*a.Pi))
	}
	if set != 1 {
		return angle.Angle{}, ErrInvalidAngle
	}
	return out, nil
}

// Expect is the expected result of a step.
type Expect struct {
	Vec    Vec         `json:"vec,omitempty" yaml:"vec,omitempty"`
	Scalar *float64    `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Angle  *AngleValue `json:"angle,omitempty" yaml:"angle,omitempty"`
}

func (e *Expect) Value() (Value, error) {
	set := 0
	var out Value
	if e.Vec != nil {
		set++
		v, err := e.Vec.Vec2()
		if err != nil {
			return Value{}, err
		}
		out = VecValue(v)
	}
	if e.Scalar != nil {
		set++
		out = ScalarValue(*e.Scalar)
	}
	if e.Angle != nil {
		set++
		a, err := e.Angle.Angle()
		if err != nil {
			return Value{}, err
		}
		out = AngleResult(a)
	}
	if set != 1 {
		return Value{}, ErrInvalidExpect
	}
	return out, nil
}

type Kind uint8

const (
	KindVec Kind = iota
	KindScalar
	KindAngle
)

func (k Kind) String() string {
	switch k {
	case KindVec:
		return "vec"
	case KindScalar:
		return "scalar"
	case KindAngle:
		return "angle"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the result of a step.
type Value struct {
	Kind   Kind
	Vec    vector.Vec2d
	Scalar float64
	Angle  angle.Angle
}

func VecValue(v vector.Vec2d) Value    { return Value{Kind: KindVec, Vec: v} }
func ScalarValue(f float64) Value      { return Value{Kind: KindScalar, Scalar: f} }
func AngleResult(a angle.Angle) Value  { return Value{Kind: KindAngle, Angle: a} }
func RadianValue(r angle.Radian) Value { return AngleResult(angle.FromRadian(r)) }
func DegreeValue(d angle.Degree) Value { return AngleResult(angle.FromDegree(d)) }

// Matches compares v with want using an absolute tolerance. Angles compare
// modulo a full turn in the unit of want.
func (v Value) Matches(want Value, tolerance float64) (bool, error) {
	if v.Kind != want.Kind {
		return false, fmt.Errorf("%w: got %s, want %s", ErrExpectKind, v.Kind, want.Kind)
	}
	switch v.Kind {
	case KindVec:
		return v.Vec.ApproxEqual(want.Vec, tolerance), nil
	case KindScalar:
		return numeric.AlmostEqual(v.Scalar, want.Scalar, tolerance), nil
	default:
		return want.Angle.ApproxEqual(v.Angle, tolerance), nil
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindVec:
		return v.Vec.String()
	case KindScalar:
		return strconv.FormatFloat(v.Scalar, 'g', -1, 64)
	default:
		if v.Angle.IsRadian() {
			return v.Angle.Rad().String()
		}
		return v.Angle.String()
	}
}
