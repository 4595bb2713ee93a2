package math

import (
	stdmath "math"

	"github.com/ajroetker/go-warp/warp"
	"github.com/chewxy/math32"
)

// unaryOp carries the per-format implementations of a one-operand primitive.
// A nil half or bf16 entry means the format widens to float32, runs f32 and
// narrows.
type unaryOp struct {
	f32  func(float32) float32
	f64  func(float64) float64
	half func(warp.Half) warp.Half
	bf16 func(warp.BFloat16) warp.BFloat16
}

func apply1[T warp.Floats](op *unaryOp, x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(op.f32(v)).(T)
	case float64:
		return any(op.f64(v)).(T)
	case warp.Half:
		if op.half != nil {
			return any(op.half(v)).(T)
		}
	case warp.BFloat16:
		if op.bf16 != nil {
			return any(op.bf16(v)).(T)
		}
	}
	return warp.Apply1(x, op.f32)
}

var (
	ceilOp     = unaryOp{f32: Ceil32Scalar, f64: stdmath.Ceil}
	floorOp    = unaryOp{f32: Floor32Scalar, f64: stdmath.Floor}
	truncOp    = unaryOp{f32: Trunc32Scalar, f64: stdmath.Trunc}
	roundOp    = unaryOp{f32: Round32Scalar, f64: stdmath.RoundToEven}
	sqrtOp     = unaryOp{f32: Sqrt32Scalar, f64: Sqrt64Scalar}
	rsqrtOp    = unaryOp{f32: Rsqrt32Scalar, f64: Rsqrt64Scalar}
	expOp      = unaryOp{f32: Exp32Scalar, f64: Exp64Scalar}
	logOp      = unaryOp{f32: Log32Scalar, f64: Log64Scalar}
	sinOp      = unaryOp{f32: Sin32Scalar, f64: Sin64Scalar}
	cosOp      = unaryOp{f32: Cos32Scalar, f64: Cos64Scalar}
	tanhOp     = unaryOp{f32: Tanh32Scalar, f64: Tanh64Scalar}
	sigmoidOp  = unaryOp{f32: Sigmoid32Scalar, f64: Sigmoid64Scalar}
	erfOp      = unaryOp{f32: Erf32Scalar, f64: Erf64Scalar}
	normcdfOp  = unaryOp{f32: Normcdf32Scalar, f64: Normcdf64Scalar}
	geluOp     = unaryOp{f32: Gelu32Scalar, f64: Gelu64Scalar, half: geluHalf}
	fastGeluOp = unaryOp{f32: FastGelu32Scalar, f64: FastGelu64Scalar}
	absOp      = unaryOp{f32: Abs32Scalar, f64: stdmath.Abs}
	signOp     = unaryOp{f32: Sign32Scalar, f64: Sign64Scalar}
)

// init installs the native half and bf16 paths the compiled target has.
// The conditions are constants, so the branch not taken is dropped.
func init() {
	if warp.NativeHalf {
		ceilOp.half = func(h warp.Half) warp.Half { return roundHalf(h, roundUp) }
		floorOp.half = func(h warp.Half) warp.Half { return roundHalf(h, roundDown) }
		truncOp.half = func(h warp.Half) warp.Half { return roundHalf(h, roundTowardZero) }
		roundOp.half = func(h warp.Half) warp.Half { return roundHalf(h, roundHalfEven) }
		// A float32 square root of a half rounds to the same half as the
		// exact root, so the single-instruction result is sqrt in float32.
		sqrtOp.half = func(h warp.Half) warp.Half {
			return warp.HalfFromFloat32(math32.Sqrt(warp.HalfToFloat32(h)))
		}
		absOp.half = func(h warp.Half) warp.Half {
			return warp.HalfFromBits(h.Bits() &^ 0x8000)
		}
	}
	if warp.NativeBFloat16 {
		absOp.bf16 = func(b warp.BFloat16) warp.BFloat16 {
			return warp.BFloat16FromBits(b.Bits() &^ 0x8000)
		}
	}
}
