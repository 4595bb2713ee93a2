package warp

import (
	"math"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
)

// BFloat16 represents a brain floating-point number: the upper 16 bits of a
// float32, trading mantissa precision for float32's exponent range.
//
//	S | EEEEEEEE | MMMMMMM
type BFloat16 = bfloat16.BFloat16

// BFloat16 constants for special values.
const (
	BFloat16Zero    BFloat16 = 0x0000
	BFloat16NegZero BFloat16 = 0x8000
	BFloat16One     BFloat16 = 0x3F80
	BFloat16NegOne  BFloat16 = 0xBF80
	BFloat16Max     BFloat16 = 0x7F7F
	BFloat16Inf     BFloat16 = bf16PosInfBits
	BFloat16NegInf  BFloat16 = bf16NegInfBits
	BFloat16NaN     BFloat16 = bf16NaNBits

	bf16SignMask   = 0x8000
	bf16PosInfBits = 0x7F80
	bf16NegInfBits = 0xFF80
	bf16NaNBits    = 0x7FC1
	bf16QuietBit   = 0x0040
)

// BFloat16FromBits reinterprets a raw bit pattern as a BFloat16.
func BFloat16FromBits(b uint16) BFloat16 {
	return bfloat16.FromBits(b)
}

// BFloat16ToFloat32 widens b. The conversion is exact.
func BFloat16ToFloat32(b BFloat16) float32 {
	return b.Float32()
}

// BFloat16FromFloat32 narrows f with round-to-nearest-even. NaNs keep sign and
// upper payload bits; a payload that would vanish is replaced by the quiet bit.
func BFloat16FromFloat32(f float32) BFloat16 {
	bits := math.Float32bits(f)
	if bits&0x7FFFFFFF > 0x7F800000 {
		hi := uint16(bits >> 16)
		if hi&0x7F == 0 {
			hi |= bf16QuietBit
		}
		return bfloat16.FromBits(hi)
	}
	// Round to nearest even on the 16 dropped bits. A carry out of the
	// mantissa bumps the exponent, and the largest finite values round to Inf.
	bits += 0x7FFF + (bits>>16)&1
	return bfloat16.FromBits(uint16(bits >> 16))
}
