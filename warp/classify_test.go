package warp

import (
	"math"
	"testing"
)

func TestIsNaN_HalfExhaustive(t *testing.T) {
	for b := 0; b <= 0xFFFF; b++ {
		h := HalfFromBits(uint16(b))
		want := math.IsNaN(float64(HalfToFloat32(h)))
		if got := IsNaN(h); got != want {
			t.Fatalf("IsNaN(half 0x%04X) = %v, want %v", b, got, want)
		}
	}
}

func TestIsNaN_BFloat16Exhaustive(t *testing.T) {
	for b := 0; b <= 0xFFFF; b++ {
		v := BFloat16FromBits(uint16(b))
		want := math.IsNaN(float64(BFloat16ToFloat32(v)))
		if got := IsNaN(v); got != want {
			t.Fatalf("IsNaN(bf16 0x%04X) = %v, want %v", b, got, want)
		}
	}
}

func TestIsNaN_Scenarios(t *testing.T) {
	if !IsNaN(HalfFromBits(0x7E00)) {
		t.Error("half 0x7E00 should be NaN")
	}
	if !IsNaN(HalfFromBits(0xFC01)) {
		t.Error("half 0xFC01 should be NaN")
	}
	if IsNaN(HalfInf) || IsNaN(HalfNegInf) {
		t.Error("half infinities are not NaN")
	}
	if !IsNaN(BFloat16NaN) {
		t.Error("BFloat16NaN should be NaN")
	}
	if IsNaN(float32(1)) || !IsNaN(float32(math.NaN())) {
		t.Error("float32 classification")
	}
	if IsNaN(1.0) || !IsNaN(math.NaN()) {
		t.Error("float64 classification")
	}
}

func TestIsInfSign_Consistency(t *testing.T) {
	for b := 0; b <= 0xFFFF; b++ {
		h := HalfFromBits(uint16(b))
		f := float64(HalfToFloat32(h))
		pos := IsInfSign(h, true, false)
		neg := IsInfSign(h, false, true)
		both := IsInfSign(h, true, true)
		if both != (pos || neg) {
			t.Fatalf("half 0x%04X: both=%v pos=%v neg=%v", b, both, pos, neg)
		}
		if IsInfSign(h, false, false) {
			t.Fatalf("half 0x%04X: no sign selected must be false", b)
		}
		if pos != math.IsInf(f, 1) || neg != math.IsInf(f, -1) {
			t.Fatalf("half 0x%04X: pos=%v neg=%v for %v", b, pos, neg, f)
		}
	}
}

func TestIsInf_Wide(t *testing.T) {
	inf32 := float32(math.Inf(1))
	tests := []struct {
		name     string
		got      bool
		expected bool
	}{
		{"float32 +Inf pos", IsPosInf(inf32), true},
		{"float32 +Inf neg", IsNegInf(inf32), false},
		{"float32 -Inf neg", IsNegInf(-inf32), true},
		{"float32 max", IsInf(float32(math.MaxFloat32)), false},
		{"float32 NaN", IsInf(float32(math.NaN())), false},
		{"float64 +Inf", IsInf(math.Inf(1)), true},
		{"float64 -Inf pos", IsPosInf(math.Inf(-1)), false},
		{"bf16 +Inf", IsPosInf(BFloat16Inf), true},
		{"bf16 -Inf", IsNegInf(BFloat16NegInf), true},
		{"bf16 max", IsInf(BFloat16Max), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(HalfMax) || IsFinite(HalfInf) || IsFinite(HalfNaN) {
		t.Error("half IsFinite")
	}
	if !IsFinite(float32(0)) || IsFinite(float32(math.NaN())) {
		t.Error("float32 IsFinite")
	}
}

func TestSignBit(t *testing.T) {
	if !SignBit(HalfNegZero) || SignBit(HalfZero) {
		t.Error("half SignBit")
	}
	if !SignBit(math.Copysign(0, -1)) || SignBit(0.0) {
		t.Error("float64 SignBit")
	}
	if !SignBit(BFloat16NegOne) {
		t.Error("bf16 SignBit")
	}
}
