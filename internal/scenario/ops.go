package scenario

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zeusync/geomath/pkg/angle"
	"github.com/zeusync/geomath/pkg/vector"
)

// OpFunc evaluates a single step.
type OpFunc func(s *Step) (Value, error)

// Registry maps op names to their implementation. It is safe for concurrent
// use.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]OpFunc
}

func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]OpFunc)}
}

// DefaultRegistry returns a registry with every built-in op.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, fn := range builtinOps {
		r.ops[name] = fn
	}
	return r
}

func (r *Registry) Register(name string, fn OpFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ops[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateOp, name)
	}
	r.ops[name] = fn
	return nil
}

func (r *Registry) Lookup(name string) (OpFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return fn, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Step) vecA() (vector.Vec2d, error) { return s.vecOperand("a", s.A) }
func (s *Step) vecB() (vector.Vec2d, error) { return s.vecOperand("b", s.B) }

func (s *Step) vecOperand(name string, v Vec) (vector.Vec2d, error) {
	if v == nil {
		return vector.Vec2d{}, fmt.Errorf("%w: %s", ErrMissingOperand, name)
	}
	out, err := v.Vec2()
	if err != nil {
		return vector.Vec2d{}, fmt.Errorf("operand %s: %w", name, err)
	}
	return out, nil
}

func (s *Step) angleA() (angle.Angle, error) { return s.angleOperand("angle", s.Angle) }
func (s *Step) angleB() (angle.Angle, error) { return s.angleOperand("other", s.Other) }

func (s *Step) angleOperand(name string, a *AngleValue) (angle.Angle, error) {
	if a == nil {
		return angle.Angle{}, fmt.Errorf("%w: %s", ErrMissingOperand, name)
	}
	out, err := a.Angle()
	if err != nil {
		return angle.Angle{}, fmt.Errorf("operand %s: %w", name, err)
	}
	return out, nil
}

func (s *Step) scalar() (float64, error) {
	if s.Scalar == nil {
		return 0, fmt.Errorf("%w: scalar", ErrMissingOperand)
	}
	return *s.Scalar, nil
}

func (s *Step) t() (float64, error) {
	if s.T == nil {
		return 0, fmt.Errorf("%w: t", ErrMissingOperand)
	}
	return *s.T, nil
}

func unaryVec(fn func(v vector.Vec2d) Value) OpFunc {
	return func(s *Step) (Value, error) {
		a, err := s.vecA()
		if err != nil {
			return Value{}, err
		}
		return fn(a), nil
	}
}

func binaryVec(fn func(a, b vector.Vec2d) Value) OpFunc {
	return func(s *Step) (Value, error) {
		a, err := s.vecA()
		if err != nil {
			return Value{}, err
		}
		b, err := s.vecB()
		if err != nil {
			return Value{}, err
		}
		return fn(a, b), nil
	}
}

func vecScalar(fn func(v vector.Vec2d, n float64) vector.Vec2d) OpFunc {
	return func(s *Step) (Value, error) {
		a, err := s.vecA()
		if err != nil {
			return Value{}, err
		}
		n, err := s.scalar()
		if err != nil {
			return Value{}, err
		}
		return VecValue(fn(a, n)), nil
	}
}

func vecAngle(fn func(v vector.Vec2d, a angle.Angle) vector.Vec2d) OpFunc {
	return func(s *Step) (Value, error) {
		v, err := s.vecA()
		if err != nil {
			return Value{}, err
		}
		a, err := s.angleA()
		if err != nil {
			return Value{}, err
		}
		return VecValue(fn(v, a)), nil
	}
}

func interp(fn func(a, b vector.Vec2d, t float64) vector.Vec2d) OpFunc {
	return func(s *Step) (Value, error) {
		a, err := s.vecA()
		if err != nil {
			return Value{}, err
		}
		b, err := s.vecB()
		if err != nil {
			return Value{}, err
		}
		t, err := s.t()
		if err != nil {
			return Value{}, err
		}
		return VecValue(fn(a, b, t)), nil
	}
}

func unaryAngle(fn func(a angle.Angle) Value) OpFunc {
	return func(s *Step) (Value, error) {
		a, err := s.angleA()
		if err != nil {
			return Value{}, err
		}
		return fn(a), nil
	}
}

func binaryAngle(fn func(a, b angle.Angle) angle.Angle) OpFunc {
	return func(s *Step) (Value, error) {
		a, err := s.angleA()
		if err != nil {
			return Value{}, err
		}
		b, err := s.angleB()
		if err != nil {
			return Value{}, err
		}
		return AngleResult(fn(a, b)), nil
	}
}

func angleScalar(fn func(a angle.Angle, n float64) angle.Angle) OpFunc {
	return func(s *Step) (Value, error) {
		a, err := s.angleA()
		if err != nil {
			return Value{}, err
		}
		n, err := s.scalar()
		if err != nil {
			return Value{}, err
		}
		return AngleResult(fn(a, n)), nil
	}
}

func inverse(fn func(n float64) angle.Radian) OpFunc {
	return func(s *Step) (Value, error) {
		n, err := s.scalar()
		if err != nil {
			return Value{}, err
		}
		return RadianValue(fn(n)), nil
	}
}

var builtinOps = map[string]OpFunc{
	// vector
	"add": binaryVec(func(a, b vector.Vec2d) Value { return VecValue(a.Add(b)) }),
	"sub": binaryVec(func(a, b vector.Vec2d) Value { return VecValue(a.Sub(b)) }),
	"mul": binaryVec(func(a, b vector.Vec2d) Value { return VecValue(a.Mul(b)) }),
	"div": binaryVec(func(a, b vector.Vec2d) Value { return VecValue(a.Div(b)) }),

	"dot":      binaryVec(func(a, b vector.Vec2d) Value { return ScalarValue(vector.Dot(a, b)) }),
	"distance": binaryVec(func(a, b vector.Vec2d) Value { return ScalarValue(vector.Distance(a, b)) }),

	"scale":       vecScalar(func(v vector.Vec2d, n float64) vector.Vec2d { return v.Scale(n) }),
	"div_scalar":  vecScalar(func(v vector.Vec2d, n float64) vector.Vec2d { return v.DivScalar(n) }),
	"add_length":  vecScalar(func(v vector.Vec2d, n float64) vector.Vec2d { return v.AddLength(n) }),
	"sub_length":  vecScalar(func(v vector.Vec2d, n float64) vector.Vec2d { return v.SubLength(n) }),
	"with_length": vecScalar(func(v vector.Vec2d, n float64) vector.Vec2d { return v.WithLength(n) }),

	"neg":        unaryVec(func(v vector.Vec2d) Value { return VecValue(v.Neg()) }),
	"normal":     unaryVec(func(v vector.Vec2d) Value { return VecValue(v.Normal()) }),
	"magnitude":  unaryVec(func(v vector.Vec2d) Value { return ScalarValue(v.Magnitude()) }),
	"magnitude2": unaryVec(func(v vector.Vec2d) Value { return ScalarValue(v.Magnitude2()) }),
	"to_angle":   unaryVec(func(v vector.Vec2d) Value { return DegreeValue(v.ToAngle()) }),

	"rotate":      vecAngle(func(v vector.Vec2d, a angle.Angle) vector.Vec2d { return v.Rotate(a) }),
	"rotate_back": vecAngle(func(v vector.Vec2d, a angle.Angle) vector.Vec2d { return v.RotateBack(a) }),
	"with_angle":  vecAngle(func(v vector.Vec2d, a angle.Angle) vector.Vec2d { return v.WithAngle(a) }),

	"lerp":       interp(vector.Lerp[float64]),
	"slerp":      interp(vector.Slerp[float64]),
	"slerp_fast": interp(vector.SlerpFast[float64]),
	"tlerp_fast": interp(vector.TlerpFast[float64]),

	// angle
	"angle_add":   binaryAngle(func(a, b angle.Angle) angle.Angle { return a.Add(b) }),
	"angle_sub":   binaryAngle(func(a, b angle.Angle) angle.Angle { return a.Sub(b) }),
	"angle_mul":   angleScalar(angle.Angle.Mul),
	"angle_div":   angleScalar(angle.Angle.Div),
	"angle_neg":   unaryAngle(func(a angle.Angle) Value { return AngleResult(a.Neg()) }),
	"angle_clamp": unaryAngle(func(a angle.Angle) Value { return AngleResult(a.Clamped()) }),
	"to_deg":      unaryAngle(func(a angle.Angle) Value { return DegreeValue(a.GetDeg()) }),
	"to_rad":      unaryAngle(func(a angle.Angle) Value { return RadianValue(a.GetRad()) }),
	"sin":         unaryAngle(func(a angle.Angle) Value { return ScalarValue(a.Sin()) }),
	"cos":         unaryAngle(func(a angle.Angle) Value { return ScalarValue(a.Cos()) }),
	"tan":         unaryAngle(func(a angle.Angle) Value { return ScalarValue(a.Tan()) }),

	"asin": inverse(angle.Asin),
	"acos": inverse(angle.Acos),
	"atan": inverse(angle.Atan),

	// atan2 reads the point (x, y) from a.
	"atan2": unaryVec(func(v vector.Vec2d) Value { return RadianValue(angle.Atan2(v.Y, v.X)) }),
}
