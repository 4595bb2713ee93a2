package math_test

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-warp/warp"
	wmath "github.com/ajroetker/go-warp/warp/contrib/math"
)

// withinHalf reports whether got is the correctly rounded half of want, up
// to one unit in the last place.
func withinHalf(got warp.Half, want float64) bool {
	g := float64(warp.HalfToFloat32(got))
	if stdmath.IsNaN(want) {
		return stdmath.IsNaN(g)
	}
	if stdmath.IsInf(want, 0) || stdmath.Abs(want) > 65504 {
		return stdmath.Abs(g) >= 65504 && stdmath.Signbit(g) == stdmath.Signbit(want)
	}
	tol := stdmath.Max(stdmath.Abs(want)*0x1p-10, 0x1p-24)
	return stdmath.Abs(g-want) <= tol
}

func TestHalf_Elementary(t *testing.T) {
	tests := []struct {
		name string
		fn   func(warp.Half) warp.Half
		ref  func(float64) float64
	}{
		{"exp", wmath.Exp[warp.Half], stdmath.Exp},
		{"log", wmath.Log[warp.Half], stdmath.Log},
		{"sin", wmath.Sin[warp.Half], stdmath.Sin},
		{"cos", wmath.Cos[warp.Half], stdmath.Cos},
		{"tanh", wmath.Tanh[warp.Half], stdmath.Tanh},
		{"erf", wmath.Erf[warp.Half], stdmath.Erf},
		{"sqrt", wmath.Sqrt[warp.Half], stdmath.Sqrt},
		{"sigmoid", wmath.Sigmoid[warp.Half], func(x float64) float64 { return 1 / (1 + stdmath.Exp(-x)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for b := 0; b <= 0xFFFF; b++ {
				h := warp.HalfFromBits(uint16(b))
				if !warp.IsFinite(h) {
					continue
				}
				want := tt.ref(float64(warp.HalfToFloat32(h)))
				if got := tt.fn(h); !withinHalf(got, want) {
					t.Fatalf("%s(%v) = %v, want %v", tt.name, warp.HalfToFloat32(h), warp.HalfToFloat32(got), want)
				}
			}
		})
	}
}

func TestSqrt_HalfExact(t *testing.T) {
	// Square roots of perfect squares are exact in every path.
	for i := 0; i <= 45; i++ {
		sq := warp.HalfFromFloat32(float32(i * i))
		if got := warp.HalfToFloat32(wmath.Sqrt(sq)); got != float32(i) {
			t.Fatalf("Sqrt(%d) = %v", i*i, got)
		}
	}
	if !warp.IsNaN(wmath.Sqrt(warp.HalfNegOne)) {
		t.Error("Sqrt(-1) should be NaN")
	}
}

func TestRsqrt(t *testing.T) {
	if got := wmath.Rsqrt(float32(4)); got != 0.5 {
		t.Errorf("Rsqrt(4) = %v", got)
	}
	if got := wmath.Rsqrt(warp.HalfFromFloat32(0.25)); warp.HalfToFloat32(got) != 2 {
		t.Errorf("Rsqrt(half 0.25) = %v", warp.HalfToFloat32(got))
	}
	if got := wmath.Rsqrt(0.0); !stdmath.IsInf(got, 1) {
		t.Errorf("Rsqrt(0) = %v", got)
	}
}

func TestExp_Wide(t *testing.T) {
	testCases := []float32{0, 1, 2, -1, -2, 0.5, -0.5, 10, -10, stdmath.E, stdmath.Ln2}
	for _, x := range testCases {
		got := wmath.Exp(x)
		want := float32(stdmath.Exp(float64(x)))
		if got != want {
			t.Errorf("Exp(%v) = %v, want %v", x, got, want)
		}
		if got64 := wmath.Exp(float64(x)); got64 != stdmath.Exp(float64(x)) {
			t.Errorf("Exp(float64 %v) = %v", x, got64)
		}
	}
}

func TestNormcdf(t *testing.T) {
	if got := wmath.Normcdf(0.0); got != 0.5 {
		t.Errorf("Normcdf(0) = %v", got)
	}
	if got := wmath.Normcdf(stdmath.Inf(-1)); got != 0 {
		t.Errorf("Normcdf(-Inf) = %v", got)
	}
	if got := wmath.Normcdf(stdmath.Inf(1)); got != 1 {
		t.Errorf("Normcdf(+Inf) = %v", got)
	}
	if got := wmath.Normcdf(1.959963984540054); stdmath.Abs(got-0.975) > 1e-12 {
		t.Errorf("Normcdf(1.96) = %v", got)
	}
	// Symmetry: Φ(-x) = 1 - Φ(x).
	for x := -6.0; x <= 6; x += 0.25 {
		if d := wmath.Normcdf(-x) - (1 - wmath.Normcdf(x)); stdmath.Abs(d) > 1e-14 {
			t.Errorf("Normcdf symmetry at %v off by %v", x, d)
		}
	}
}

func TestBFloat16_Elementary(t *testing.T) {
	for b := 0; b <= 0xFFFF; b += 7 {
		v := warp.BFloat16FromBits(uint16(b))
		if !warp.IsFinite(v) {
			continue
		}
		x := warp.BFloat16ToFloat32(v)
		want := warp.BFloat16FromFloat32(float32(stdmath.Tanh(float64(x))))
		if got := wmath.Tanh(v); got != want {
			t.Fatalf("Tanh(bf16 %v) = 0x%04X, want 0x%04X", x, got.Bits(), want.Bits())
		}
	}
}
