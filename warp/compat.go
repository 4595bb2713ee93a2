package warp

// This file emulates arithmetic and comparison operators for the 16-bit
// formats. Targets without native support widen both operands to float32,
// compute, and narrow back. The float32 result of a single operation on two
// 16-bit values rounds to the same 16-bit value as the exact result, so the
// emulation matches the hardware bit for bit.
//
// On native targets the comparisons and negation work on the raw bit
// patterns and never leave the format.

// Reduced is the set of 16-bit formats the operator layer covers.
type Reduced interface {
	Half | BFloat16
}

// native reports whether T has hardware operators on the compiled target.
func native[T Reduced]() bool {
	var zero T
	switch any(zero).(type) {
	case Half:
		return NativeHalf
	default:
		return NativeBFloat16
	}
}

func reducedInfo[T Reduced]() (signMask, posInf uint64) {
	var zero T
	switch any(zero).(type) {
	case Half:
		return halfSignMask, halfPosInfBits
	default:
		return bf16SignMask, bf16PosInfBits
	}
}

// Add returns a + b.
func Add[T Reduced](a, b T) T { return Narrow[T](Widen(a) + Widen(b)) }

// Sub returns a - b.
func Sub[T Reduced](a, b T) T { return Narrow[T](Widen(a) - Widen(b)) }

// Mul returns a * b.
func Mul[T Reduced](a, b T) T { return Narrow[T](Widen(a) * Widen(b)) }

// Div returns a / b.
func Div[T Reduced](a, b T) T { return Narrow[T](Widen(a) / Widen(b)) }

// Plus returns a unchanged.
func Plus[T Reduced](a T) T { return a }

// Neg returns -a.
func Neg[T Reduced](a T) T {
	if native[T]() {
		signMask, _ := reducedInfo[T]()
		return FromBits[T](Bits(a) ^ signMask)
	}
	return Narrow[T](-Widen(a))
}

// Inc returns a + 1. The constant is added in float32 directly, without
// widening a 16-bit one.
func Inc[T Reduced](a T) T { return Narrow[T](Widen(a) + 1) }

// Dec returns a - 1.
func Dec[T Reduced](a T) T { return Narrow[T](Widen(a) - 1) }

// Equal reports a == b. NaN compares unequal to everything; ±0 are equal.
func Equal[T Reduced](a, b T) bool {
	if native[T]() {
		signMask, posInf := reducedInfo[T]()
		return equalBits(Bits(a), Bits(b), signMask, posInf)
	}
	return Widen(a) == Widen(b)
}

// NotEqual reports a != b.
func NotEqual[T Reduced](a, b T) bool { return !Equal(a, b) }

// Less reports a < b. Any comparison with NaN is false.
func Less[T Reduced](a, b T) bool {
	if native[T]() {
		signMask, posInf := reducedInfo[T]()
		return lessBits(Bits(a), Bits(b), signMask, posInf)
	}
	return Widen(a) < Widen(b)
}

// LessEqual reports a <= b.
func LessEqual[T Reduced](a, b T) bool { return Less(a, b) || Equal(a, b) }

// Greater reports a > b.
func Greater[T Reduced](a, b T) bool { return Less(b, a) }

// GreaterEqual reports a >= b.
func GreaterEqual[T Reduced](a, b T) bool { return Less(b, a) || Equal(a, b) }

// equalBits compares two sign-magnitude patterns.
func equalBits(a, b, signMask, posInf uint64) bool {
	am, bm := a&^signMask, b&^signMask
	if am > posInf || bm > posInf {
		return false
	}
	if am == 0 && bm == 0 {
		return true
	}
	return a == b
}

// lessBits orders two sign-magnitude patterns the way the values order.
func lessBits(a, b, signMask, posInf uint64) bool {
	am, bm := a&^signMask, b&^signMask
	if am > posInf || bm > posInf {
		return false
	}
	if am == 0 && bm == 0 {
		return false
	}
	aNeg, bNeg := a&signMask != 0, b&signMask != 0
	switch {
	case aNeg != bNeg:
		return aNeg
	case aNeg:
		return am > bm
	default:
		return am < bm
	}
}

// LessBits orders two raw patterns of a sign-magnitude format whose positive
// infinity (or largest pattern below NaN) is posInf. NaN is unordered.
func LessBits(a, b, signMask, posInf uint64) bool {
	return lessBits(a, b, signMask, posInf)
}
