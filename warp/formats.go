package warp

// Format identifies a numeric element format.
type Format uint8

const (
	FormatFloat32 Format = iota
	FormatFloat64
	FormatHalf
	FormatBFloat16
	FormatFloat8E4M3FN
	FormatFloat8E4M3FNUZ
	FormatFloat8E5M2
	FormatFloat8E5M2FNUZ
)

// FormatInfo describes the bit layout and special encodings of a format.
//
// PosInfBits and NegInfBits are only meaningful when HasInf is set. NaNBits is
// the canonical pattern an operation produces when it synthesizes a NaN.
type FormatInfo struct {
	Name       string
	Bits       int
	ExpBits    int
	MantBits   int
	Bias       int
	SignMask   uint64
	PosInfBits uint64
	NegInfBits uint64
	HasInf     bool
	NaNBits    uint64
}

var formatInfos = [...]FormatInfo{
	FormatFloat32: {
		Name: "float32", Bits: 32, ExpBits: 8, MantBits: 23, Bias: 127,
		SignMask: 0x80000000, PosInfBits: 0x7F800000, NegInfBits: 0xFF800000,
		HasInf: true, NaNBits: 0x7FC00000,
	},
	FormatFloat64: {
		Name: "float64", Bits: 64, ExpBits: 11, MantBits: 52, Bias: 1023,
		SignMask: 0x8000000000000000, PosInfBits: 0x7FF0000000000000, NegInfBits: 0xFFF0000000000000,
		HasInf: true, NaNBits: 0x7FF8000000000000,
	},
	FormatHalf: {
		Name: "half", Bits: 16, ExpBits: 5, MantBits: 10, Bias: 15,
		SignMask: halfSignMask, PosInfBits: halfPosInfBits, NegInfBits: halfNegInfBits,
		HasInf: true, NaNBits: halfNaNBits,
	},
	FormatBFloat16: {
		Name: "bfloat16", Bits: 16, ExpBits: 8, MantBits: 7, Bias: 127,
		SignMask: bf16SignMask, PosInfBits: bf16PosInfBits, NegInfBits: bf16NegInfBits,
		HasInf: true, NaNBits: bf16NaNBits,
	},
	FormatFloat8E4M3FN: {
		Name: "float8e4m3fn", Bits: 8, ExpBits: 4, MantBits: 3, Bias: 7,
		SignMask: 0x80, NaNBits: 0x7F,
	},
	FormatFloat8E4M3FNUZ: {
		Name: "float8e4m3fnuz", Bits: 8, ExpBits: 4, MantBits: 3, Bias: 8,
		SignMask: 0x80, NaNBits: 0x80,
	},
	FormatFloat8E5M2: {
		Name: "float8e5m2", Bits: 8, ExpBits: 5, MantBits: 2, Bias: 15,
		SignMask: 0x80, PosInfBits: 0x7C, NegInfBits: 0xFC,
		HasInf: true, NaNBits: 0x7F,
	},
	FormatFloat8E5M2FNUZ: {
		Name: "float8e5m2fnuz", Bits: 8, ExpBits: 5, MantBits: 2, Bias: 16,
		SignMask: 0x80, NaNBits: 0x80,
	},
}

// Info returns the layout of f.
func (f Format) Info() FormatInfo {
	if int(f) >= len(formatInfos) {
		return FormatInfo{Name: "unknown"}
	}
	return formatInfos[f]
}

func (f Format) String() string {
	return f.Info().Name
}

// IsFloat8 reports whether f is one of the 8-bit micro-float formats.
func (f Format) IsFloat8() bool {
	return f >= FormatFloat8E4M3FN && f <= FormatFloat8E5M2FNUZ
}

// Formats lists every format in declaration order.
func Formats() []Format {
	return []Format{
		FormatFloat32, FormatFloat64, FormatHalf, FormatBFloat16,
		FormatFloat8E4M3FN, FormatFloat8E4M3FNUZ, FormatFloat8E5M2, FormatFloat8E5M2FNUZ,
	}
}

// FormatOf returns the format of the element type T.
func FormatOf[T Floats]() Format {
	var zero T
	switch any(zero).(type) {
	case float32:
		return FormatFloat32
	case float64:
		return FormatFloat64
	case Half:
		return FormatHalf
	case BFloat16:
		return FormatBFloat16
	case Float8E4M3FN:
		return FormatFloat8E4M3FN
	case Float8E4M3FNUZ:
		return FormatFloat8E4M3FNUZ
	case Float8E5M2:
		return FormatFloat8E5M2
	case Float8E5M2FNUZ:
		return FormatFloat8E5M2FNUZ
	default:
		panic("warp: unsupported float type")
	}
}
