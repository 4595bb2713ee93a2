package math_test

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-warp/warp"
	wmath "github.com/ajroetker/go-warp/warp/contrib/math"
)

func TestSign(t *testing.T) {
	tests := []struct {
		in       float32
		expected float32
	}{
		{-3, -1},
		{2, 1},
		{0, 0},
		{float32(stdmath.Copysign(0, -1)), 0},
		{float32(stdmath.NaN()), 0},
		{float32(stdmath.Inf(-1)), -1},
		{1e-3, 1},
	}
	for _, tt := range tests {
		if got := wmath.Sign(tt.in); got != tt.expected {
			t.Errorf("Sign(%v) = %v, want %v", tt.in, got, tt.expected)
		}
		if got := warp.HalfToFloat32(wmath.Sign(warp.HalfFromFloat32(tt.in))); got != tt.expected {
			t.Errorf("Sign(half %v) = %v, want %v", tt.in, got, tt.expected)
		}
		if got := wmath.Sign(float64(tt.in)); got != float64(tt.expected) {
			t.Errorf("Sign(float64 %v) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

// Sign(x)·|x| reproduces every finite half except the zeros.
func TestSign_TimesAbs(t *testing.T) {
	for b := 0; b <= 0xFFFF; b++ {
		h := warp.HalfFromBits(uint16(b))
		if !warp.IsFinite(h) || b&0x7FFF == 0 {
			continue
		}
		if got := warp.Mul(wmath.Sign(h), wmath.Abs(h)); got != h {
			t.Fatalf("Sign*Abs(0x%04X) = 0x%04X", b, got.Bits())
		}
	}
}

func TestAbs_ClearsSignBit(t *testing.T) {
	for b := 0; b <= 0xFFFF; b++ {
		if got := wmath.Abs(warp.HalfFromBits(uint16(b))).Bits(); got != uint16(b)&0x7FFF {
			t.Fatalf("Abs(half 0x%04X) = 0x%04X", b, got)
		}
		if got := wmath.Abs(warp.BFloat16FromBits(uint16(b))).Bits(); got != uint16(b)&0x7FFF {
			t.Fatalf("Abs(bf16 0x%04X) = 0x%04X", b, got)
		}
	}
	if got := wmath.Abs(-2.5); got != 2.5 {
		t.Errorf("Abs(-2.5) = %v", got)
	}
}
