package math

import "github.com/ajroetker/go-warp/warp"

// Sqrt returns the square root of x. Sqrt(x) = NaN for x < 0.
func Sqrt[T warp.Floats](x T) T { return apply1(&sqrtOp, x) }

// Rsqrt returns 1/sqrt(x). Rsqrt(+0) = +Inf.
func Rsqrt[T warp.Floats](x T) T { return apply1(&rsqrtOp, x) }

// Exp returns e^x.
func Exp[T warp.Floats](x T) T { return apply1(&expOp, x) }

// Log returns the natural logarithm of x.
func Log[T warp.Floats](x T) T { return apply1(&logOp, x) }

// Sin returns the sine of the radian argument x.
func Sin[T warp.Floats](x T) T { return apply1(&sinOp, x) }

// Cos returns the cosine of the radian argument x.
func Cos[T warp.Floats](x T) T { return apply1(&cosOp, x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh[T warp.Floats](x T) T { return apply1(&tanhOp, x) }

// Sigmoid returns 1/(1+e^-x).
func Sigmoid[T warp.Floats](x T) T { return apply1(&sigmoidOp, x) }

// Erf returns the error function of x.
func Erf[T warp.Floats](x T) T { return apply1(&erfOp, x) }

// Normcdf returns the standard normal cumulative distribution function
// Φ(x) = erfc(-x/√2)/2.
//
// Normcdf(-Inf) = 0, Normcdf(0) = 0.5, Normcdf(+Inf) = 1.
func Normcdf[T warp.Floats](x T) T { return apply1(&normcdfOp, x) }
