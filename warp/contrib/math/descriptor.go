package math

//go:generate go run ../../../cmd/warpgen --in descriptors.yaml --out zz_descriptors.go

import (
	"fmt"

	"github.com/ajroetker/go-warp/warp"
)

// Op names a primitive in the descriptor table.
type Op uint8

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Algorithm is how a primitive is evaluated for one format.
type Algorithm uint8

const (
	// AlgorithmForward calls the float32 or float64 routine directly.
	AlgorithmForward Algorithm = iota
	// AlgorithmNative uses the format's own instruction when the target
	// has it, and AlgorithmRoundTrip otherwise.
	AlgorithmNative
	// AlgorithmRoundTrip widens to float32, computes, and narrows.
	AlgorithmRoundTrip
	// AlgorithmWidened computes a whole expression in a wider format and
	// narrows the final result once.
	AlgorithmWidened
	// AlgorithmPromoted converts the operands to float64, calls the float64
	// routine and converts the result back.
	AlgorithmPromoted
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmForward:
		return "forward"
	case AlgorithmNative:
		return "native"
	case AlgorithmRoundTrip:
		return "roundtrip"
	case AlgorithmWidened:
		return "widened"
	case AlgorithmPromoted:
		return "promoted"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Descriptor records which algorithm a primitive uses for a format, and
// for native algorithms the minimum target that has the instruction.
type Descriptor struct {
	Op           Op
	Format       warp.Format
	Algorithm    Algorithm
	MinArch      warp.Arch
	MinToolchain int
}

func (d Descriptor) String() string {
	if d.Algorithm != AlgorithmNative {
		return fmt.Sprintf("%s/%s: %s", d.Op, d.Format, d.Algorithm)
	}
	return fmt.Sprintf("%s/%s: %s (%s)", d.Op, d.Format, d.Algorithm, d.MinArch)
}

// Lookup returns the descriptor of op for format f.
func Lookup(op Op, f warp.Format) (Descriptor, bool) {
	for _, d := range descriptors[:] {
		if d.Op == op && d.Format == f {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Descriptors returns a copy of the full table.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors[:])
	return out
}

// UsesNative reports whether d runs the format's own instruction on the
// compiled target.
func UsesNative(d Descriptor) bool {
	return d.Algorithm == AlgorithmNative &&
		warp.TargetArch >= d.MinArch &&
		warp.ToolchainVersion >= d.MinToolchain
}
