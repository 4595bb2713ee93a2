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

// Float8E4M3FN is an 8-bit float with 4 exponent bits (bias 7) and 3 mantissa
// bits. It has no infinities; S.1111.111 is NaN. Max finite value: 448.
type Float8E4M3FN uint8

// Float8E4M3FNUZ is like Float8E4M3FN with bias 8 and no negative zero. The
// single pattern 0x80 is NaN; there are no infinities. Max finite value: 240.
type Float8E4M3FNUZ uint8

// Float8E5M2 is an 8-bit float with 5 exponent bits (bias 15) and 2 mantissa
// bits, laid out like the upper byte of a Half. Infinities are 0x7C/0xFC.
// Max finite value: 57344.
type Float8E5M2 uint8

// Float8E5M2FNUZ is like Float8E5M2 with bias 16, no infinities and no
// negative zero. The single pattern 0x80 is NaN. Max finite value: 57344.
type Float8E5M2FNUZ uint8

// float8Layout carries what the generic 8-bit codec needs to know.
type float8Layout struct {
	mantBits uint
	bias     int
	hasInf   bool
	fnuz     bool  // no negative zero, 0x80 is the only NaN
	maxBits  uint8 // largest finite magnitude
	infBits  uint8 // positive infinity, if hasInf
}

var (
	layoutE4M3FN   = float8Layout{mantBits: 3, bias: 7, maxBits: 0x7E}
	layoutE4M3FNUZ = float8Layout{mantBits: 3, bias: 8, fnuz: true, maxBits: 0x7F}
	layoutE5M2     = float8Layout{mantBits: 2, bias: 15, hasInf: true, maxBits: 0x7B, infBits: 0x7C}
	layoutE5M2FNUZ = float8Layout{mantBits: 2, bias: 16, fnuz: true, maxBits: 0x7F}
)

func (l float8Layout) isNaN(b uint8) bool {
	switch {
	case l.fnuz:
		return b == 0x80
	case l.hasInf:
		return b&0x7F > l.infBits
	default:
		return b&0x7F == 0x7F
	}
}

// widen decodes b exactly. Every 8-bit value is representable in float32.
func (l float8Layout) widen(b uint8) float32 {
	if l.isNaN(b) {
		if l.fnuz {
			return float32(math.NaN())
		}
		mantMask := uint8(1)<<l.mantBits - 1
		return math.Float32frombits(uint32(b&0x80)<<24 | 0x7F800000 | uint32(b&mantMask)<<(23-l.mantBits))
	}
	neg := b&0x80 != 0
	mag := b & 0x7F
	if l.hasInf && mag == l.infBits {
		if neg {
			return float32(math.Inf(-1))
		}
		return float32(math.Inf(1))
	}
	exp := int(mag >> l.mantBits)
	mant := int(mag & (1<<l.mantBits - 1))
	var v float64
	if exp == 0 {
		v = math.Ldexp(float64(mant), 1-l.bias-int(l.mantBits))
	} else {
		v = math.Ldexp(float64(mant|1<<l.mantBits), exp-l.bias-int(l.mantBits))
	}
	if neg {
		v = -v
	}
	return float32(v)
}

// narrow encodes f with round-to-nearest-even. Finite values beyond the
// format's range saturate to the largest finite magnitude.
func (l float8Layout) narrow(f float32) uint8 {
	bits := math.Float32bits(f)
	sign := uint8(bits>>24) & 0x80
	switch {
	case bits&0x7FFFFFFF > 0x7F800000:
		if l.fnuz {
			return 0x80
		}
		if l.hasInf {
			mant := uint8(bits>>(23-l.mantBits)) & (1<<l.mantBits - 1)
			if mant == 0 {
				mant = 1 << (l.mantBits - 1)
			}
			return sign | l.infBits | mant
		}
		return sign | 0x7F
	case bits&0x7FFFFFFF == 0x7F800000:
		switch {
		case l.hasInf:
			return sign | l.infBits
		case l.fnuz:
			return 0x80
		default:
			return sign | l.maxBits
		}
	case bits&0x7FFFFFFF == 0:
		if l.fnuz {
			return 0
		}
		return sign
	}

	a := math.Abs(float64(f))
	minExp := 1 - l.bias
	_, e := math.Frexp(a)
	e-- // a = m * 2^e with m in [1, 2)
	if e < minExp {
		e = minExp
	}
	quantum := math.Ldexp(1, e-int(l.mantBits))
	q := math.RoundToEven(a / quantum)
	if q*quantum > float64(l.widen(l.maxBits)) {
		return sign | l.maxBits
	}
	// q counts quanta at exponent e; a carry to 2^(mantBits+1) moves up a binade.
	var mag uint8
	if q >= float64(uint(1)<<(l.mantBits+1)) {
		e++
		q /= 2
	}
	if q < float64(uint(1)<<l.mantBits) {
		// Subnormal (only reachable at e == minExp) or zero.
		mag = uint8(q)
	} else {
		mag = uint8(e+l.bias)<<l.mantBits | uint8(q)&(1<<l.mantBits-1)
	}
	if mag == 0 && l.fnuz {
		return 0
	}
	return sign | mag
}

// Float32 widens the value exactly.
func (f Float8E4M3FN) Float32() float32 { return layoutE4M3FN.widen(uint8(f)) }

// Float32 widens the value exactly.
func (f Float8E4M3FNUZ) Float32() float32 { return layoutE4M3FNUZ.widen(uint8(f)) }

// Float32 widens the value exactly.
func (f Float8E5M2) Float32() float32 { return layoutE5M2.widen(uint8(f)) }

// Float32 widens the value exactly.
func (f Float8E5M2FNUZ) Float32() float32 { return layoutE5M2FNUZ.widen(uint8(f)) }

// Bits returns the raw byte.
func (f Float8E4M3FN) Bits() uint8 { return uint8(f) }

// Bits returns the raw byte.
func (f Float8E4M3FNUZ) Bits() uint8 { return uint8(f) }

// Bits returns the raw byte.
func (f Float8E5M2) Bits() uint8 { return uint8(f) }

// Bits returns the raw byte.
func (f Float8E5M2FNUZ) Bits() uint8 { return uint8(f) }

// Float8E4M3FNFromFloat32 narrows f, saturating finite overflow and mapping
// infinities to the largest finite magnitude.
func Float8E4M3FNFromFloat32(f float32) Float8E4M3FN {
	return Float8E4M3FN(layoutE4M3FN.narrow(f))
}

// Float8E4M3FNUZFromFloat32 narrows f, saturating finite overflow and mapping
// infinities and NaN to 0x80.
func Float8E4M3FNUZFromFloat32(f float32) Float8E4M3FNUZ {
	return Float8E4M3FNUZ(layoutE4M3FNUZ.narrow(f))
}

// Float8E5M2FromFloat32 narrows f, saturating finite overflow. Infinities stay
// infinite.
func Float8E5M2FromFloat32(f float32) Float8E5M2 {
	return Float8E5M2(layoutE5M2.narrow(f))
}

// Float8E5M2FNUZFromFloat32 narrows f, saturating finite overflow and mapping
// infinities and NaN to 0x80.
func Float8E5M2FNUZFromFloat32(f float32) Float8E5M2FNUZ {
	return Float8E5M2FNUZ(layoutE5M2FNUZ.narrow(f))
}
