package math_test

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-warp/warp"
	wmath "github.com/ajroetker/go-warp/warp/contrib/math"
	"github.com/stretchr/testify/assert"
)

func TestMod(t *testing.T) {
	tests := []struct {
		a, b     int
		expected int
	}{
		{7, 3, 1},
		{-7, 3, 2},
		{7, -3, -2},
		{-7, -3, -1},
		{6, 3, 0},
		{-6, 3, 0},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := wmath.Mod(tt.a, tt.b); got != tt.expected {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
	assert.Equal(t, uint8(1), wmath.Mod(uint8(7), 3))
	assert.Equal(t, int32(0), wmath.Mod(int32(stdmath.MinInt32), -1))
	assert.Panics(t, func() { wmath.Mod(1, 0) })
}

// The result has the sign of the divisor and differs from a by a multiple of b.
func TestMod_Properties(t *testing.T) {
	for a := int64(-50); a <= 50; a++ {
		for _, b := range []int64{-7, -3, -1, 1, 2, 5, 11} {
			r := wmath.Mod(a, b)
			if (a-r)%b != 0 {
				t.Fatalf("Mod(%d, %d) = %d is not congruent", a, b, r)
			}
			if b > 0 && (r < 0 || r >= b) || b < 0 && (r > 0 || r <= b) {
				t.Fatalf("Mod(%d, %d) = %d out of range", a, b, r)
			}
		}
	}
}

func TestFmodInt(t *testing.T) {
	assert.Equal(t, -1, wmath.FmodInt(-7, 3))
	assert.Equal(t, 1, wmath.FmodInt(7, -3))
	assert.Equal(t, int16(1), wmath.FmodInt(int16(7), 3))
}

func TestFmod(t *testing.T) {
	assert.Equal(t, -1.0, wmath.Fmod(-7.0, 3.0))
	assert.Equal(t, float32(-1), wmath.Fmod(float32(-7), 3))
	assert.Equal(t, float32(1.5), wmath.Fmod(float32(7.5), 3))
	assert.Equal(t, warp.HalfFromFloat32(-1), wmath.Fmod(warp.HalfFromFloat32(-7), warp.HalfFromFloat32(3)))
	assert.Equal(t, warp.BFloat16FromFloat32(1), wmath.Fmod(warp.BFloat16FromFloat32(7), warp.BFloat16FromFloat32(-3)))
	assert.True(t, stdmath.IsNaN(wmath.Fmod(1.0, 0.0)))
	assert.True(t, warp.IsNaN(wmath.Fmod(warp.HalfInf, warp.HalfOne)))
}
