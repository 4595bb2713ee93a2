package math

import "github.com/ajroetker/go-warp/warp"

// Abs returns |x| by clearing the sign bit. NaN stays NaN.
func Abs[T warp.Floats](x T) T { return apply1(&absOp, x) }

// Sign returns -1 for negative x, +1 for positive x and 0 otherwise,
// including for ±0 and NaN. The result is always one of those three values
// exactly, in every format.
func Sign[T warp.Floats](x T) T { return apply1(&signOp, x) }
