//go:build warp_nofloat8

package warp

// Floats is the set of element formats every primitive is specialized for.
// This build leaves out the 8-bit micro-float formats; instantiating a
// primitive with one of them does not compile.
type Floats interface {
	float32 | float64 | Half | BFloat16
}

// Float8Enabled reports whether the micro-float formats are compiled in.
const Float8Enabled = false
