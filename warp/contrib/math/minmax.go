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

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-warp/warp"
)

// Min returns the smaller of a and b.
//
// If either operand is NaN the result is the canonical NaN of T, never the
// NaN operand itself. Otherwise the result is a < b ? a : b, so Min(-0, +0)
// returns +0 and Min(+0, -0) returns -0.
func Min[T warp.Floats](a, b T) T { return minMax(a, b, false) }

// Max returns the larger of a and b with the same NaN rule as Min.
// Otherwise the result is a > b ? a : b.
func Max[T warp.Floats](a, b T) T { return minMax(a, b, true) }

func minMax[T warp.Floats](a, b T, isMax bool) T {
	switch av := any(a).(type) {
	case float32:
		bv := any(b).(float32)
		if stdmath.IsNaN(float64(av)) || stdmath.IsNaN(float64(bv)) {
			return any(stdmath.Float32frombits(0x7FC00000)).(T)
		}
		return any(pick(av, bv, isMax)).(T)
	case float64:
		bv := any(b).(float64)
		if stdmath.IsNaN(av) || stdmath.IsNaN(bv) {
			return any(stdmath.Float64frombits(0x7FF8000000000000)).(T)
		}
		return any(pick(av, bv, isMax)).(T)
	case warp.Half:
		if warp.NativeMinMaxNaN {
			bv := any(b).(warp.Half)
			return any(warp.HalfFromBits(uint16(minMaxBits(uint64(av.Bits()), uint64(bv.Bits()), warp.FormatHalf.Info(), isMax)))).(T)
		}
	case warp.BFloat16:
		if warp.NativeMinMaxNaN {
			bv := any(b).(warp.BFloat16)
			return any(warp.BFloat16FromBits(uint16(minMaxBits(uint64(av.Bits()), uint64(bv.Bits()), warp.FormatBFloat16.Info(), isMax)))).(T)
		}
	}
	// Classify in the operand's own format, then compare widened values.
	// The result is one of the operands, never a re-rounded value.
	if warp.IsNaN(a) || warp.IsNaN(b) {
		return warp.CanonicalNaN[T]()
	}
	wa, wb := warp.Widen(a), warp.Widen(b)
	if (isMax && wa > wb) || (!isMax && wa < wb) {
		return a
	}
	return b
}

func pick[F float32 | float64](a, b F, isMax bool) F {
	if isMax {
		if a > b {
			return a
		}
		return b
	}
	if a < b {
		return a
	}
	return b
}

// minMaxBits is the NaN-propagating min/max instruction on raw patterns.
func minMaxBits(a, b uint64, info warp.FormatInfo, isMax bool) uint64 {
	if a&^info.SignMask > info.PosInfBits || b&^info.SignMask > info.PosInfBits {
		return info.NaNBits
	}
	if isMax {
		if warp.LessBits(b, a, info.SignMask, info.PosInfBits) {
			return a
		}
		return b
	}
	if warp.LessBits(a, b, info.SignMask, info.PosInfBits) {
		return a
	}
	return b
}
