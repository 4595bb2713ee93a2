//go:build !warp_nofloat8

package warp

// Floats is the set of element formats every primitive is specialized for.
type Floats interface {
	float32 | float64 | Half | BFloat16 |
		Float8E4M3FN | Float8E4M3FNUZ | Float8E5M2 | Float8E5M2FNUZ
}

// Float8Enabled reports whether the micro-float formats are compiled in.
const Float8Enabled = true
