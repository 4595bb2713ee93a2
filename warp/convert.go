package warp

import "math"

// Widen converts x to float32. Reduced formats widen exactly; float64 is
// rounded to nearest.
func Widen[T Floats](x T) float32 {
	switch v := any(x).(type) {
	case float32:
		return v
	case float64:
		return float32(v)
	case Half:
		return HalfToFloat32(v)
	case BFloat16:
		return BFloat16ToFloat32(v)
	case Float8E4M3FN:
		return v.Float32()
	case Float8E4M3FNUZ:
		return v.Float32()
	case Float8E5M2:
		return v.Float32()
	case Float8E5M2FNUZ:
		return v.Float32()
	default:
		panic("warp: unsupported float type")
	}
}

// Narrow converts f to T with round-to-nearest-even.
func Narrow[T Floats](f float32) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(f).(T)
	case float64:
		return any(float64(f)).(T)
	case Half:
		return any(HalfFromFloat32(f)).(T)
	case BFloat16:
		return any(BFloat16FromFloat32(f)).(T)
	case Float8E4M3FN:
		return any(Float8E4M3FNFromFloat32(f)).(T)
	case Float8E4M3FNUZ:
		return any(Float8E4M3FNUZFromFloat32(f)).(T)
	case Float8E5M2:
		return any(Float8E5M2FromFloat32(f)).(T)
	case Float8E5M2FNUZ:
		return any(Float8E5M2FNUZFromFloat32(f)).(T)
	default:
		panic("warp: unsupported float type")
	}
}

// ToFloat64 converts x to float64 exactly.
func ToFloat64[T Floats](x T) float64 {
	if v, ok := any(x).(float64); ok {
		return v
	}
	return float64(Widen(x))
}

// FromFloat64 converts f to T. Reduced formats round through float32, which
// stays within one unit of the target's last place.
func FromFloat64[T Floats](f float64) T {
	if _, ok := any(*new(T)).(float64); ok {
		return any(f).(T)
	}
	return Narrow[T](float32(f))
}

// Apply1 evaluates fn in float32 and narrows the result back to T. It is the
// widen-compute-narrow path used for formats without a native instruction.
func Apply1[T Floats](x T, fn func(float32) float32) T {
	return Narrow[T](fn(Widen(x)))
}

// Apply2 is the two-operand form of Apply1.
func Apply2[T Floats](a, b T, fn func(float32, float32) float32) T {
	return Narrow[T](fn(Widen(a), Widen(b)))
}

// Bits returns the raw bit pattern of x, zero-extended to 64 bits.
func Bits[T Floats](x T) uint64 {
	switch v := any(x).(type) {
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	case Half:
		return uint64(v.Bits())
	case BFloat16:
		return uint64(v.Bits())
	case Float8E4M3FN:
		return uint64(v)
	case Float8E4M3FNUZ:
		return uint64(v)
	case Float8E5M2:
		return uint64(v)
	case Float8E5M2FNUZ:
		return uint64(v)
	default:
		panic("warp: unsupported float type")
	}
}

// FromBits reinterprets the low bits of b as a T.
func FromBits[T Floats](b uint64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(math.Float32frombits(uint32(b))).(T)
	case float64:
		return any(math.Float64frombits(b)).(T)
	case Half:
		return any(HalfFromBits(uint16(b))).(T)
	case BFloat16:
		return any(BFloat16FromBits(uint16(b))).(T)
	case Float8E4M3FN:
		return any(Float8E4M3FN(b)).(T)
	case Float8E4M3FNUZ:
		return any(Float8E4M3FNUZ(b)).(T)
	case Float8E5M2:
		return any(Float8E5M2(b)).(T)
	case Float8E5M2FNUZ:
		return any(Float8E5M2FNUZ(b)).(T)
	default:
		panic("warp: unsupported float type")
	}
}

// CanonicalNaN returns the NaN pattern T uses when a NaN has to be produced
// rather than propagated.
func CanonicalNaN[T Floats]() T {
	return FromBits[T](FormatOf[T]().Info().NaNBits)
}
