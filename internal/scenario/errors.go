package scenario

import "errors"

var (
	ErrEmptyScenario    = errors.New("scenario has no steps")
	ErrUnknownOp        = errors.New("unknown op")
	ErrDuplicateOp      = errors.New("op already registered")
	ErrMissingOperand   = errors.New("missing operand")
	ErrInvalidVector    = errors.New("vector must have exactly two components")
	ErrInvalidAngle     = errors.New("angle must set exactly one of deg, rad or pi")
	ErrInvalidExpect    = errors.New("expect must set exactly one of vec, scalar or angle")
	ErrExpectKind       = errors.New("expectation does not match the result kind")
	ErrUnsupportedInput = errors.New("unsupported scenario file extension")
)
