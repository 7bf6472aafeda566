package irtypes

// IntegerType is an arbitrary-bit-width integer type.
type IntegerType struct{ handle }

// Width reports the bit width.
func (t IntegerType) Width() uint32 {
	return t.tab.IntegerBitWidth(t.ref)
}

// ConstNull returns the zero constant of this width.
func (t IntegerType) ConstNull() Value {
	return Value{tab: t.tab, ref: t.tab.ConstNull(t.ref)}
}

// AllOnes returns the all-bits-set constant of this width.
func (t IntegerType) AllOnes() Value {
	return Value{tab: t.tab, ref: t.tab.ConstAllOnes(t.ref)}
}

// Const synthesizes an integer constant of this width. signExtend controls
// how the collaborator widens value past 64 bits; the stored pattern is
// always truncated to the width.
func (t IntegerType) Const(value uint64, signExtend bool) Value {
	return Value{tab: t.tab, ref: t.tab.ConstInt(t.ref, value, signExtend)}
}

// FloatType covers every floating precision uniformly. The kind tag alone
// distinguishes half from double from fp128; there is no per-precision
// subtype.
type FloatType struct{ handle }

// ConstNull returns the zero constant of this precision.
func (t FloatType) ConstNull() Value {
	return Value{tab: t.tab, ref: t.tab.ConstNull(t.ref)}
}

// Const synthesizes a constant of this precision from a double-precision
// input, converted per the target precision's rounding.
func (t FloatType) Const(value float64) Value {
	return Value{tab: t.tab, ref: t.tab.ConstReal(t.ref, value)}
}
