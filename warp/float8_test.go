//go:build !warp_nofloat8

package warp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func roundTripFloat8[T Floats](t *testing.T) {
	t.Helper()
	for b := 0; b <= 0xFF; b++ {
		x := FromBits[T](uint64(b))
		got := Bits(Narrow[T](Widen(x)))
		if got != uint64(b) {
			t.Fatalf("%s: 0x%02X widened to %v narrowed to 0x%02X", FormatOf[T](), b, Widen(x), got)
		}
	}
}

func TestFloat8_RoundTrip(t *testing.T) {
	t.Run("e4m3fn", roundTripFloat8[Float8E4M3FN])
	t.Run("e4m3fnuz", roundTripFloat8[Float8E4M3FNUZ])
	t.Run("e5m2", roundTripFloat8[Float8E5M2])
	t.Run("e5m2fnuz", roundTripFloat8[Float8E5M2FNUZ])
}

func classifyFloat8[T Floats](t *testing.T) {
	t.Helper()
	for b := 0; b <= 0xFF; b++ {
		x := FromBits[T](uint64(b))
		f := float64(Widen(x))
		if IsNaN(x) != math.IsNaN(f) {
			t.Fatalf("%s: IsNaN(0x%02X) = %v for %v", FormatOf[T](), b, IsNaN(x), f)
		}
		if IsInf(x) != math.IsInf(f, 0) {
			t.Fatalf("%s: IsInf(0x%02X) = %v for %v", FormatOf[T](), b, IsInf(x), f)
		}
	}
}

func TestFloat8_Classify(t *testing.T) {
	t.Run("e4m3fn", classifyFloat8[Float8E4M3FN])
	t.Run("e4m3fnuz", classifyFloat8[Float8E4M3FNUZ])
	t.Run("e5m2", classifyFloat8[Float8E5M2])
	t.Run("e5m2fnuz", classifyFloat8[Float8E5M2FNUZ])
}

func TestFloat8_Special(t *testing.T) {
	assert.True(t, IsNaN(Float8E4M3FN(0x7F)))
	assert.True(t, IsNaN(Float8E4M3FN(0xFF)))
	assert.False(t, IsNaN(Float8E4M3FN(0x7E)))
	assert.True(t, IsNaN(Float8E4M3FNUZ(0x80)))
	assert.False(t, IsNaN(Float8E4M3FNUZ(0x00)))
	assert.True(t, IsNaN(Float8E5M2(0x7D)))
	assert.True(t, IsPosInf(Float8E5M2(0x7C)))
	assert.True(t, IsNegInf(Float8E5M2(0xFC)))
	assert.False(t, IsInf(Float8E4M3FN(0x7E)))
	assert.True(t, IsNaN(Float8E5M2FNUZ(0x80)))

	assert.Equal(t, float32(448), Float8E4M3FN(0x7E).Float32())
	assert.Equal(t, float32(240), Float8E4M3FNUZ(0x7F).Float32())
	assert.Equal(t, float32(57344), Float8E5M2(0x7B).Float32())
	assert.Equal(t, float32(1), Float8E4M3FN(0x38).Float32())
}

func TestFloat8_Narrow(t *testing.T) {
	inf := float32(math.Inf(1))
	tests := []struct {
		name     string
		got      uint8
		expected uint8
	}{
		{"e4m3fn saturates", Float8E4M3FNFromFloat32(1000).Bits(), 0x7E},
		{"e4m3fn saturates negative", Float8E4M3FNFromFloat32(-1000).Bits(), 0xFE},
		{"e4m3fn halfway past max", Float8E4M3FNFromFloat32(464).Bits(), 0x7E},
		{"e4m3fn inf saturates", Float8E4M3FNFromFloat32(inf).Bits(), 0x7E},
		{"e4m3fn ties to even down", Float8E4M3FNFromFloat32(1.0625).Bits(), 0x38},
		{"e4m3fn ties to even up", Float8E4M3FNFromFloat32(1.1875).Bits(), 0x3A},
		{"e4m3fn negative zero", Float8E4M3FNFromFloat32(float32(math.Copysign(0, -1))).Bits(), 0x80},
		{"e4m3fnuz negative zero", Float8E4M3FNUZFromFloat32(float32(math.Copysign(0, -1))).Bits(), 0x00},
		{"e4m3fnuz inf is nan", Float8E4M3FNUZFromFloat32(inf).Bits(), 0x80},
		{"e4m3fnuz saturates", Float8E4M3FNUZFromFloat32(300).Bits(), 0x7F},
		{"e5m2 inf", Float8E5M2FromFloat32(inf).Bits(), 0x7C},
		{"e5m2 -inf", Float8E5M2FromFloat32(-inf).Bits(), 0xFC},
		{"e5m2 saturates finite", Float8E5M2FromFloat32(1e6).Bits(), 0x7B},
		{"e5m2 one", Float8E5M2FromFloat32(1).Bits(), 0x3C},
		{"e5m2fnuz nan", Float8E5M2FNUZFromFloat32(float32(math.NaN())).Bits(), 0x80},
		{"e5m2fnuz underflow", Float8E5M2FNUZFromFloat32(-1e-30).Bits(), 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got 0x%02X, want 0x%02X", tt.got, tt.expected)
			}
		})
	}
}

// Narrowing is monotone: a larger input never yields a smaller result.
func TestFloat8_NarrowMonotone(t *testing.T) {
	prev := float32(math.Inf(-1))
	for f := float32(-500); f <= 500; f += 0.37 {
		got := Float8E4M3FNFromFloat32(f).Float32()
		if got < prev {
			t.Fatalf("narrow(%v) = %v below previous %v", f, got, prev)
		}
		prev = got
	}
}
