package math

import (
	stdmath "math"

	"github.com/chewxy/math32"
)

// Scalar routines for the two wide formats. Every primitive bottoms out in
// one of these; the reduced formats reach them through warp.Apply1.
//
// math32 is only used where its result is exactly rounded. Everything else
// is evaluated in float64 and rounded once.

// Exp32Scalar computes e^x for a single float32.
func Exp32Scalar(x float32) float32 { return float32(stdmath.Exp(float64(x))) }

// Exp64Scalar computes e^x for a single float64.
func Exp64Scalar(x float64) float64 { return stdmath.Exp(x) }

// Log32Scalar computes ln(x) for a single float32.
func Log32Scalar(x float32) float32 { return float32(stdmath.Log(float64(x))) }

// Log64Scalar computes ln(x) for a single float64.
func Log64Scalar(x float64) float64 { return stdmath.Log(x) }

// Sin32Scalar computes sin(x) for a single float32.
func Sin32Scalar(x float32) float32 { return float32(stdmath.Sin(float64(x))) }

// Sin64Scalar computes sin(x) for a single float64.
func Sin64Scalar(x float64) float64 { return stdmath.Sin(x) }

// Cos32Scalar computes cos(x) for a single float32.
func Cos32Scalar(x float32) float32 { return float32(stdmath.Cos(float64(x))) }

// Cos64Scalar computes cos(x) for a single float64.
func Cos64Scalar(x float64) float64 { return stdmath.Cos(x) }

// Tanh32Scalar computes tanh(x) for a single float32.
func Tanh32Scalar(x float32) float32 { return float32(stdmath.Tanh(float64(x))) }

// Tanh64Scalar computes tanh(x) for a single float64.
func Tanh64Scalar(x float64) float64 { return stdmath.Tanh(x) }

// Sqrt32Scalar computes sqrt(x) for a single float32.
func Sqrt32Scalar(x float32) float32 { return math32.Sqrt(x) }

// Sqrt64Scalar computes sqrt(x) for a single float64.
func Sqrt64Scalar(x float64) float64 { return stdmath.Sqrt(x) }

// Rsqrt32Scalar computes 1/sqrt(x) for a single float32.
func Rsqrt32Scalar(x float32) float32 { return float32(1 / stdmath.Sqrt(float64(x))) }

// Rsqrt64Scalar computes 1/sqrt(x) for a single float64.
func Rsqrt64Scalar(x float64) float64 { return 1 / stdmath.Sqrt(x) }

// Sigmoid32Scalar computes sigmoid(x) = 1/(1+exp(-x)) for a single float32.
func Sigmoid32Scalar(x float32) float32 { return float32(1.0 / (1.0 + stdmath.Exp(-float64(x)))) }

// Sigmoid64Scalar computes sigmoid(x) = 1/(1+exp(-x)) for a single float64.
func Sigmoid64Scalar(x float64) float64 { return 1.0 / (1.0 + stdmath.Exp(-x)) }

// Erf32Scalar computes the error function for a single float32.
func Erf32Scalar(x float32) float32 { return float32(stdmath.Erf(float64(x))) }

// Erf64Scalar computes the error function for a single float64.
func Erf64Scalar(x float64) float64 { return stdmath.Erf(x) }

// Normcdf32Scalar computes the standard normal CDF for a single float32.
func Normcdf32Scalar(x float32) float32 { return float32(Normcdf64Scalar(float64(x))) }

// Normcdf64Scalar computes Φ(x) = erfc(-x/√2)/2 for a single float64.
func Normcdf64Scalar(x float64) float64 { return 0.5 * stdmath.Erfc(-x/stdmath.Sqrt2) }

// Gelu32Scalar computes x·Φ(x) for a single float32.
func Gelu32Scalar(x float32) float32 { return float32(Gelu64Scalar(float64(x))) }

// Gelu64Scalar computes x·Φ(x) for a single float64.
func Gelu64Scalar(x float64) float64 { return x * Normcdf64Scalar(x) }

// FastGelu32Scalar computes the tanh approximation of Gelu for a single float32.
func FastGelu32Scalar(x float32) float32 { return float32(FastGelu64Scalar(float64(x))) }

// FastGelu64Scalar computes 0.5·x·(1 + tanh(√(2/π)·(x + 0.044715·x³))).
func FastGelu64Scalar(x float64) float64 {
	const sqrt2OverPi = 0.7978845608028654
	return 0.5 * x * (1 + stdmath.Tanh(sqrt2OverPi*(x+0.044715*x*x*x)))
}

// Ceil32Scalar rounds x toward +Inf.
func Ceil32Scalar(x float32) float32 { return math32.Ceil(x) }

// Floor32Scalar rounds x toward -Inf.
func Floor32Scalar(x float32) float32 { return math32.Floor(x) }

// Trunc32Scalar rounds x toward zero.
func Trunc32Scalar(x float32) float32 { return math32.Trunc(x) }

// Round32Scalar rounds x to the nearest integer, ties to even.
func Round32Scalar(x float32) float32 { return float32(stdmath.RoundToEven(float64(x))) }

// Abs32Scalar clears the sign bit of x.
func Abs32Scalar(x float32) float32 { return math32.Abs(x) }

// Sign32Scalar returns -1, 0 or +1. NaN maps to 0.
func Sign32Scalar(x float32) float32 { return float32(Sign64Scalar(float64(x))) }

// Sign64Scalar returns -1, 0 or +1. NaN maps to 0.
func Sign64Scalar(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Fmod32Scalar returns the remainder of a/b with the sign of a.
func Fmod32Scalar(a, b float32) float32 { return math32.Mod(a, b) }
