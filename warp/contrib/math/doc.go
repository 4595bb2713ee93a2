// Copyright 2025 go-warp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package math provides the elementwise primitives inference kernels are
// built from, specialized for every element format in warp.Floats.
//
// Each primitive is a single generic entry point. The element type selects
// one of three algorithms:
//   - float32 and float64 forward to the standard library (or math32 for
//     the exactly rounded routines).
//   - Half and BFloat16 use a native path when the compiled target has the
//     instruction, and otherwise widen to float32, compute, and narrow.
//   - The 8-bit formats always widen, compute, and narrow.
//
// The per-format choice is recorded in a generated descriptor table; see
// Lookup and UsesNative.
//
// # Functions
//
// Rounding:
//   - Ceil, Floor, Trunc: round toward +Inf, -Inf, zero
//   - Round: round half to even
//
// Elementary:
//   - Sqrt, Rsqrt, Exp, Log, Sin, Cos, Tanh, Sigmoid, Erf, Pow
//
// Activations:
//   - Normcdf: standard normal CDF
//   - Gelu: x·Φ(x)
//   - FastGelu: tanh approximation of Gelu
//
// Sign and extrema:
//   - Abs, Sign, Min, Max
//
// Remainders:
//   - Mod: integer remainder with the sign of the divisor
//   - FmodInt: integer remainder with the sign of the dividend
//   - Fmod: floating-point remainder with the sign of the dividend
//
// # NaN handling
//
// Min and Max return the format's canonical NaN when either operand is NaN.
// All other primitives propagate NaN the way the underlying float32 or
// float64 routine does.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-warp/warp"
//	    "github.com/ajroetker/go-warp/warp/contrib/math"
//	)
//
//	func geluKernel(tid warp.ThreadID, in, out []warp.Half) {
//	    id, ok := warp.ElementwiseIndex(tid, len(in))
//	    if !ok {
//	        return
//	    }
//	    out[id] = math.Gelu(in[id])
//	}
package math
