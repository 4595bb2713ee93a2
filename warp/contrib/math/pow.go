package math

import (
	stdmath "math"

	"github.com/ajroetker/go-warp/warp"
)

// Exponent is the set of exponent types Pow accepts.
type Exponent interface {
	warp.Floats | int32 | int64
}

// Pow returns a**b.
//
// Matching float32 or float64 operands use the routine of that width. A
// Half raised to a Half is computed in float32 and narrowed once. Every
// other combination promotes both operands to float64 and converts the
// result back to T.
func Pow[T warp.Floats, E Exponent](a T, b E) T {
	switch av := any(a).(type) {
	case float32:
		if bv, ok := any(b).(float32); ok {
			return any(float32(stdmath.Pow(float64(av), float64(bv)))).(T)
		}
	case float64:
		if bv, ok := any(b).(float64); ok {
			return any(stdmath.Pow(av, bv)).(T)
		}
	case warp.Half:
		if bv, ok := any(b).(warp.Half); ok {
			f := float32(stdmath.Pow(float64(warp.HalfToFloat32(av)), float64(warp.HalfToFloat32(bv))))
			return any(warp.HalfFromFloat32(f)).(T)
		}
	}
	return warp.FromFloat64[T](stdmath.Pow(warp.ToFloat64(a), exponent64(b)))
}

func exponent64[E Exponent](b E) float64 {
	switch v := any(b).(type) {
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	case float32:
		return float64(v)
	case warp.Half:
		return float64(warp.HalfToFloat32(v))
	case warp.BFloat16:
		return float64(warp.BFloat16ToFloat32(v))
	case warp.Float8E4M3FN:
		return float64(v.Float32())
	case warp.Float8E4M3FNUZ:
		return float64(v.Float32())
	case warp.Float8E5M2:
		return float64(v.Float32())
	case warp.Float8E5M2FNUZ:
		return float64(v.Float32())
	default:
		panic("unsupported exponent type")
	}
}
