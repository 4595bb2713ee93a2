package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-warp/warp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unaryOps = map[Op]*unaryOp{
	OpCeil:     &ceilOp,
	OpFloor:    &floorOp,
	OpRound:    &roundOp,
	OpTrunc:    &truncOp,
	OpSqrt:     &sqrtOp,
	OpRsqrt:    &rsqrtOp,
	OpExp:      &expOp,
	OpLog:      &logOp,
	OpSin:      &sinOp,
	OpCos:      &cosOp,
	OpTanh:     &tanhOp,
	OpSigmoid:  &sigmoidOp,
	OpErf:      &erfOp,
	OpNormcdf:  &normcdfOp,
	OpGelu:     &geluOp,
	OpFastGelu: &fastGeluOp,
	OpAbs:      &absOp,
	OpSign:     &signOp,
}

func TestDescriptors_Complete(t *testing.T) {
	ds := Descriptors()
	require.Len(t, ds, numOps*len(warp.Formats()))
	for op := Op(0); op < numOps; op++ {
		for _, f := range warp.Formats() {
			d, ok := Lookup(op, f)
			require.True(t, ok, "%s/%s missing", op, f)
			if f == warp.FormatFloat32 || f == warp.FormatFloat64 {
				assert.Equal(t, AlgorithmForward, d.Algorithm, d.String())
			}
			if f.IsFloat8() {
				assert.Contains(t, []Algorithm{AlgorithmRoundTrip, AlgorithmPromoted}, d.Algorithm, d.String())
			}
		}
	}
}

// The table must describe what the package actually installs.
func TestDescriptors_MatchDispatch(t *testing.T) {
	for op, impl := range unaryOps {
		d, ok := Lookup(op, warp.FormatHalf)
		require.True(t, ok)
		switch d.Algorithm {
		case AlgorithmNative:
			assert.Equal(t, UsesNative(d), impl.half != nil, d.String())
		case AlgorithmRoundTrip:
			assert.Nil(t, impl.half, d.String())
		case AlgorithmWidened:
			assert.NotNil(t, impl.half, d.String())
		}

		d, ok = Lookup(op, warp.FormatBFloat16)
		require.True(t, ok)
		assert.Equal(t, UsesNative(d), impl.bf16 != nil, d.String())
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup(OpCeil, warp.FormatHalf)
	require.True(t, ok)
	assert.Equal(t, AlgorithmNative, d.Algorithm)
	assert.Equal(t, warp.ArchSM53, d.MinArch)
	assert.Equal(t, warp.NativeHalf, UsesNative(d))
	assert.Equal(t, "ceil/half: native (sm_53)", d.String())

	d, ok = Lookup(OpMin, warp.FormatBFloat16)
	require.True(t, ok)
	assert.Equal(t, 11000, d.MinToolchain)
	assert.Equal(t, warp.NativeMinMaxNaN, UsesNative(d))

	d, _ = Lookup(OpGelu, warp.FormatHalf)
	assert.Equal(t, AlgorithmWidened, d.Algorithm)
	assert.False(t, UsesNative(d))

	d, _ = Lookup(OpPow, warp.FormatBFloat16)
	assert.Equal(t, "pow/bfloat16: promoted", d.String())

	d, _ = Lookup(OpExp, warp.FormatFloat8E5M2)
	assert.Equal(t, "exp/float8e5m2: roundtrip", d.String())

	_, ok = Lookup(Op(200), warp.FormatHalf)
	assert.False(t, ok)
	assert.Equal(t, "fast_gelu", OpFastGelu.String())
	assert.Equal(t, "Op(200)", Op(200).String())
}

// Promoted rows must call the float64 routine, not the float32 one.
func TestDescriptors_PowPromoted(t *testing.T) {
	d, ok := Lookup(OpPow, warp.FormatBFloat16)
	require.True(t, ok)
	require.Equal(t, AlgorithmPromoted, d.Algorithm)

	for a := 0; a <= 0xFFFF; a += 61 {
		x := warp.BFloat16FromBits(uint16(a))
		for _, e := range []float32{-2, -0.5, 0.5, 1.5, 3} {
			y := warp.BFloat16FromFloat32(e)
			want := warp.FromFloat64[warp.BFloat16](stdmath.Pow(warp.ToFloat64(x), warp.ToFloat64(y)))
			got := Pow(x, y)
			if warp.IsNaN(want) {
				assert.True(t, warp.IsNaN(got), "Pow(0x%04X, %v)", a, e)
				continue
			}
			if got.Bits() != want.Bits() {
				t.Fatalf("Pow(0x%04X, %v) = 0x%04X, want 0x%04X", a, e, got.Bits(), want.Bits())
			}
		}
	}
}
