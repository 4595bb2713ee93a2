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

package warp

import "math"

// IsNaN reports whether x is a NaN under the rules of its own format.
//
//   - float32/float64: IEEE classification.
//   - Half, BFloat16: with the sign masked off, the pattern is strictly
//     above the positive infinity pattern.
//   - Float8E4M3FN: S.1111.111.
//   - Float8E5M2: with the sign masked off, above 0x7C.
//   - Float8E4M3FNUZ, Float8E5M2FNUZ: exactly 0x80.
func IsNaN[T Floats](x T) bool {
	switch v := any(x).(type) {
	case float32:
		return math.IsNaN(float64(v))
	case float64:
		return math.IsNaN(v)
	case Half:
		return v.Bits()&^halfSignMask > halfPosInfBits
	case BFloat16:
		return v.Bits()&^bf16SignMask > bf16PosInfBits
	case Float8E4M3FN:
		return v&0x7F == 0x7F
	case Float8E4M3FNUZ:
		return v == 0x80
	case Float8E5M2:
		return v&0x7F > 0x7C
	case Float8E5M2FNUZ:
		return v == 0x80
	default:
		panic("warp: unsupported float type")
	}
}

// IsInfSign reports whether x is an infinity of a selected sign:
//
//   - detectPositive && detectNegative: either infinity
//   - only detectPositive: +Inf
//   - only detectNegative: -Inf
//   - neither: always false
//
// Formats without an infinity encoding always report false.
func IsInfSign[T Floats](x T, detectPositive, detectNegative bool) bool {
	if !detectPositive && !detectNegative {
		return false
	}
	switch v := any(x).(type) {
	case float32:
		return infBits(uint64(math.Float32bits(v)), 0x80000000, 0x7F800000, detectPositive, detectNegative)
	case float64:
		return infBits(math.Float64bits(v), 0x8000000000000000, 0x7FF0000000000000, detectPositive, detectNegative)
	case Half:
		return infBits(uint64(v.Bits()), halfSignMask, halfPosInfBits, detectPositive, detectNegative)
	case BFloat16:
		return infBits(uint64(v.Bits()), bf16SignMask, bf16PosInfBits, detectPositive, detectNegative)
	case Float8E5M2:
		return infBits(uint64(v), 0x80, 0x7C, detectPositive, detectNegative)
	case Float8E4M3FN, Float8E4M3FNUZ, Float8E5M2FNUZ:
		return false
	default:
		panic("warp: unsupported float type")
	}
}

func infBits(b, signMask, posInf uint64, detectPositive, detectNegative bool) bool {
	switch {
	case detectPositive && detectNegative:
		return b&^signMask == posInf
	case detectPositive:
		return b == posInf
	default:
		return b == posInf|signMask
	}
}

// IsInf reports whether x is either infinity.
func IsInf[T Floats](x T) bool { return IsInfSign(x, true, true) }

// IsPosInf reports whether x is +Inf.
func IsPosInf[T Floats](x T) bool { return IsInfSign(x, true, false) }

// IsNegInf reports whether x is -Inf.
func IsNegInf[T Floats](x T) bool { return IsInfSign(x, false, true) }

// IsFinite reports whether x is neither an infinity nor a NaN.
func IsFinite[T Floats](x T) bool { return !IsNaN(x) && !IsInf(x) }

// SignBit reports whether the sign bit of x is set. For the FNUZ formats this
// is only true of their NaN.
func SignBit[T Floats](x T) bool {
	return Bits(x)&FormatOf[T]().Info().SignMask != 0
}
