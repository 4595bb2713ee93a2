package math

import "github.com/ajroetker/go-warp/warp"

// Ceil returns the least integer value greater than or equal to x.
//
// Special cases:
//   - Ceil(±0) = ±0
//   - Ceil(±Inf) = ±Inf
//   - Ceil(NaN) = NaN
//   - Ceil(x) = -0 for -1 < x < 0
func Ceil[T warp.Floats](x T) T { return apply1(&ceilOp, x) }

// Floor returns the greatest integer value less than or equal to x.
func Floor[T warp.Floats](x T) T { return apply1(&floorOp, x) }

// Trunc returns the integer value of x, rounding toward zero.
func Trunc[T warp.Floats](x T) T { return apply1(&truncOp, x) }

// Round returns the nearest integer value to x, rounding ties to even.
// Round(0.5) = 0, Round(1.5) = 2, Round(2.5) = 2.
func Round[T warp.Floats](x T) T { return apply1(&roundOp, x) }

type roundMode uint8

const (
	roundUp roundMode = iota
	roundDown
	roundTowardZero
	roundHalfEven
)

func roundHalf(h warp.Half, mode roundMode) warp.Half {
	return warp.HalfFromBits(uint16(roundBits(uint64(h.Bits()), warp.FormatHalf.Info(), mode)))
}

// roundBits rounds the value encoded by b to an integer without leaving the
// format. It handles IEEE-style layouts (those with infinities).
func roundBits(b uint64, info warp.FormatInfo, mode roundMode) uint64 {
	sign := b & info.SignMask
	mag := b &^ info.SignMask
	if mag >= info.PosInfBits || mag == 0 {
		return b
	}
	mant := uint(info.MantBits)
	e := int(mag>>mant) - info.Bias
	if e >= int(mant) {
		return b
	}
	neg := sign != 0
	one := uint64(info.Bias) << mant

	if e < 0 {
		// 0 < |x| < 1
		switch mode {
		case roundUp:
			if neg {
				return sign
			}
			return one
		case roundDown:
			if neg {
				return sign | one
			}
			return 0
		case roundTowardZero:
			return sign
		default:
			half := uint64(info.Bias-1) << mant
			if e == -1 && mag != half {
				return sign | one
			}
			return sign
		}
	}

	fracBits := mant - uint(e)
	fracMask := uint64(1)<<fracBits - 1
	frac := mag & fracMask
	if frac == 0 {
		return b
	}
	whole := mag &^ fracMask
	var up bool
	switch mode {
	case roundUp:
		up = !neg
	case roundDown:
		up = neg
	case roundTowardZero:
	default:
		halfway := uint64(1) << (fracBits - 1)
		odd := e == 0 || whole&(1<<fracBits) != 0
		up = frac > halfway || (frac == halfway && odd)
	}
	if up {
		// A carry out of the mantissa moves into the exponent, which is
		// exactly the next binade.
		whole += 1 << fracBits
	}
	return sign | whole
}
