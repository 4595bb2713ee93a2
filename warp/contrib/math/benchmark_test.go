package math_test

import (
	"testing"

	"github.com/ajroetker/go-warp/warp"
	wmath "github.com/ajroetker/go-warp/warp/contrib/math"
)

func halfInputs(n int) []warp.Half {
	in := make([]warp.Half, n)
	for i := range in {
		in[i] = warp.HalfFromFloat32(float32(i%200-100) * 0.05)
	}
	return in
}

func BenchmarkGelu_Half(b *testing.B) {
	in := halfInputs(4096)
	out := make([]warp.Half, len(in))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j, x := range in {
			out[j] = wmath.Gelu(x)
		}
	}
}

func BenchmarkRound_Half(b *testing.B) {
	in := halfInputs(4096)
	out := make([]warp.Half, len(in))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j, x := range in {
			out[j] = wmath.Round(x)
		}
	}
}

func BenchmarkMin_Half(b *testing.B) {
	in := halfInputs(4096)
	out := make([]warp.Half, len(in))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := 1; j < len(in); j++ {
			out[j] = wmath.Min(in[j-1], in[j])
		}
	}
}

func BenchmarkExp_Float32(b *testing.B) {
	in := make([]float32, 4096)
	for i := range in {
		in[i] = float32(i%100) * 0.1
	}
	out := make([]float32, len(in))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j, x := range in {
			out[j] = wmath.Exp(x)
		}
	}
}
