package math

import (
	stdmath "math"

	"github.com/ajroetker/go-warp/warp"
	"golang.org/x/exp/constraints"
)

// Mod returns the remainder of a/b with the sign of the divisor, so the
// result lies in [0, b) for b > 0 and in (b, 0] for b < 0.
//
//	Mod(7, 3)   = 1
//	Mod(-7, 3)  = 2
//	Mod(7, -3)  = -2
//	Mod(-7, -3) = -1
//
// Like the % operator, it panics when b is zero.
func Mod[T constraints.Integer](a, b T) T {
	r := a % b
	if (r < 0 && b > 0) || (r > 0 && b < 0) {
		r += b
	}
	return r
}

// FmodInt returns the remainder of a/b with the sign of the dividend,
// which is the behavior of Go's % operator.
//
//	FmodInt(-7, 3) = -1
func FmodInt[T constraints.Integer](a, b T) T {
	return a % b
}

// Fmod returns the floating-point remainder of a/b with the sign of a.
// Fmod(-7, 3) = -1. Fmod(x, 0) and Fmod(±Inf, y) are NaN.
func Fmod[T warp.Floats](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		return any(Fmod32Scalar(av, any(b).(float32))).(T)
	case float64:
		return any(stdmath.Mod(av, any(b).(float64))).(T)
	default:
		return warp.Apply2(a, b, Fmod32Scalar)
	}
}
