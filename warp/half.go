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

import (
	"math"

	"github.com/x448/float16"
)

// Half represents an IEEE 754 half-precision (binary16) floating-point number.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Properties:
//   - Exponent bias: 15
//   - Max value: 65504
//   - Min positive normal: ~6.10e-5
type Half = float16.Float16

// Half constants for special values.
const (
	HalfZero    Half = 0x0000
	HalfNegZero Half = 0x8000
	HalfOne     Half = 0x3C00
	HalfNegOne  Half = 0xBC00
	HalfMax     Half = 0x7BFF
	HalfInf     Half = halfPosInfBits
	HalfNegInf  Half = halfNegInfBits
	HalfNaN     Half = halfNaNBits

	halfSignMask   = 0x8000
	halfPosInfBits = 0x7C00
	halfNegInfBits = 0xFC00
	halfNaNBits    = 0x7E00
	halfQuietBit   = 0x0200
)

// HalfFromBits reinterprets a raw bit pattern as a Half.
func HalfFromBits(b uint16) Half {
	return float16.Frombits(b)
}

// HalfToFloat32 widens h. The conversion is exact; NaN payloads are kept.
func HalfToFloat32(h Half) float32 {
	b := h.Bits()
	if b&^halfSignMask > halfPosInfBits {
		// NaN: keep sign and payload, including signaling patterns.
		return math.Float32frombits(uint32(b&halfSignMask)<<16 | 0x7F800000 | uint32(b&0x3FF)<<13)
	}
	return h.Float32()
}

// HalfFromFloat32 narrows f with round-to-nearest-even. Values beyond the
// half range become infinities. NaNs keep their sign and the upper payload
// bits; a payload that would vanish is replaced by the quiet bit.
func HalfFromFloat32(f float32) Half {
	bits := math.Float32bits(f)
	if bits&0x7FFFFFFF > 0x7F800000 {
		mant := uint16(bits>>13) & 0x3FF
		if mant == 0 {
			mant = halfQuietBit
		}
		return float16.Frombits(uint16(bits>>16)&halfSignMask | halfPosInfBits | mant)
	}
	return float16.Fromfloat32(f)
}
