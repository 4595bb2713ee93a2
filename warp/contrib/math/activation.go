package math

import (
	stdmath "math"

	"github.com/ajroetker/go-warp/warp"
)

// Gelu returns x·Φ(x), the exact Gaussian error linear unit.
//
// Half evaluates a·0.5·(1+erf(a/√2)) in float64 and narrows once. Below
// about -4 the sum 1+erf cancels, and float32 loses the subnormal result.
// Every other reduced format narrows the float64 result of x·Φ(x) through
// float32.
func Gelu[T warp.Floats](x T) T { return apply1(&geluOp, x) }

// FastGelu returns the tanh approximation
// 0.5·x·(1 + tanh(√(2/π)·(x + 0.044715·x³))).
func FastGelu[T warp.Floats](x T) T { return apply1(&fastGeluOp, x) }

func geluHalf(h warp.Half) warp.Half {
	a := float64(warp.HalfToFloat32(h))
	return warp.HalfFromFloat32(float32(a * 0.5 * (1 + stdmath.Erf(a/stdmath.Sqrt2))))
}
