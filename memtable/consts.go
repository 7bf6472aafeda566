package memtable

import (
	"fmt"
	"math"
	"strings"

	"github.com/funvibe/irtypes"
)

// Constants are uniqued per context by (type, payload), so the handle of a
// 32-bit -1 and the handle of the 32-bit all-ones constant are the same
// ref.

func (t *Table) scalarConst(typ irtypes.TypeRef, bits uint64) irtypes.ValueRef {
	ctx := t.context(t.record(typ).ctx)
	key := fmt.Sprintf("%d:%x", typ, bits)
	if ref, ok := ctx.consts[key]; ok {
		return ref
	}
	ref := t.addValue(valueRecord{typ: typ, bits: bits})
	ctx.consts[key] = ref
	return ref
}

func (t *Table) aggregateConst(typ irtypes.TypeRef, vals []irtypes.ValueRef) irtypes.ValueRef {
	ctx := t.context(t.record(typ).ctx)
	var key strings.Builder
	fmt.Fprintf(&key, "%d:agg:", typ)
	for _, v := range vals {
		fmt.Fprintf(&key, "%d,", v)
	}
	if ref, ok := ctx.consts[key.String()]; ok {
		return ref
	}
	agg := make([]irtypes.ValueRef, len(vals))
	copy(agg, vals)
	ref := t.addValue(valueRecord{typ: typ, agg: agg})
	ctx.consts[key.String()] = ref
	return ref
}

// ConstNull synthesizes the zero constant of typ. For aggregates every
// element is recursively null.
func (t *Table) ConstNull(typ irtypes.TypeRef) irtypes.ValueRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.constNull(typ)
}

func (t *Table) constNull(typ irtypes.TypeRef) irtypes.ValueRef {
	rec := t.record(typ)
	switch rec.kind {
	case irtypes.KindInteger:
		return t.scalarConst(typ, 0)
	case irtypes.KindPointer:
		return t.scalarConst(typ, 0)
	case irtypes.KindArray, irtypes.KindVector, irtypes.KindScalableVector:
		elems := make([]irtypes.ValueRef, rec.count)
		null := t.constNull(rec.elem)
		for i := range elems {
			elems[i] = null
		}
		return t.aggregateConst(typ, elems)
	case irtypes.KindStruct:
		if rec.opaque {
			panic("memtable: no null constant for an opaque struct")
		}
		elems := make([]irtypes.ValueRef, len(rec.elems))
		for i, e := range rec.elems {
			elems[i] = t.constNull(e)
		}
		return t.aggregateConst(typ, elems)
	default:
		if rec.kind.IsFloat() {
			return t.scalarConst(typ, 0)
		}
	}
	panic(fmt.Sprintf("memtable: kind %v has no null constant", rec.kind))
}

// ConstAllOnes synthesizes the all-bits-set constant of an integer type.
func (t *Table) ConstAllOnes(typ irtypes.TypeRef) irtypes.ValueRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.recordOf(typ, irtypes.KindInteger)
	return t.scalarConst(typ, maskToWidth(^uint64(0), rec.bits))
}

// ConstInt synthesizes an integer constant. The stored pattern is value
// truncated to the type's width; signExtend only matters for widths past
// 64 bits, where the payload is widened by replicating bit 63.
func (t *Table) ConstInt(typ irtypes.TypeRef, value uint64, signExtend bool) irtypes.ValueRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.recordOf(typ, irtypes.KindInteger)
	_ = signExtend // the 64-bit payload carries no extra bits to extend into
	return t.scalarConst(typ, maskToWidth(value, rec.bits))
}

// ConstReal synthesizes a float constant from a double-precision input,
// converted to the target precision's representation. The 64-bit-and-wider
// precisions keep the double payload at this layer.
func (t *Table) ConstReal(typ irtypes.TypeRef, value float64) irtypes.ValueRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.record(typ)
	var bits uint64
	switch rec.kind {
	case irtypes.KindHalf:
		bits = uint64(float16Bits(value))
	case irtypes.KindBFloat:
		bits = uint64(bfloat16Bits(value))
	case irtypes.KindFloat:
		bits = uint64(math.Float32bits(float32(value)))
	case irtypes.KindDouble, irtypes.KindX86FP80, irtypes.KindFP128, irtypes.KindPPCFP128:
		bits = math.Float64bits(value)
	default:
		panic(fmt.Sprintf("memtable: kind %v has no real constant", rec.kind))
	}
	return t.scalarConst(typ, bits)
}

// ConstNamedStruct synthesizes a constant of a named struct type.
func (t *Table) ConstNamedStruct(typ irtypes.TypeRef, vals []irtypes.ValueRef) irtypes.ValueRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.recordOf(typ, irtypes.KindStruct)
	if rec.literal {
		panic("memtable: named-struct constant over a literal struct type")
	}
	return t.aggregateConst(typ, vals)
}

// ConstStruct synthesizes a literal struct constant; the struct type is
// derived from the value types.
func (t *Table) ConstStruct(c irtypes.ContextRef, vals []irtypes.ValueRef, packed bool) irtypes.ValueRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	elems := make([]irtypes.TypeRef, len(vals))
	for i, v := range vals {
		elems[i] = t.value(v).typ
	}
	typ := t.literalStruct(c, elems, packed)
	return t.aggregateConst(typ, vals)
}

func (t *Table) TypeOf(v irtypes.ValueRef) irtypes.TypeRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value(v).typ
}

// ConstBits exposes the stored payload of a scalar constant, for tests and
// diagnostics.
func (t *Table) ConstBits(v irtypes.ValueRef) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value(v).bits
}

func maskToWidth(value uint64, bits uint32) uint64 {
	if bits >= 64 {
		return value
	}
	return value & (1<<bits - 1)
}

// float16Bits converts a double to IEEE 754 binary16 with round to nearest
// even, carrying overflow into infinity.
func float16Bits(f float64) uint16 {
	b := math.Float32bits(float32(f))
	sign := uint16(b>>16) & 0x8000
	if b&0x7fffffff > 0x7f800000 {
		return sign | 0x7e00 // quiet NaN
	}
	exp := int32(b>>23&0xff) - 127 + 15
	mant := b & 0x7fffff
	switch {
	case exp >= 0x1f:
		return sign | 0x7c00
	case exp <= 0:
		if exp < -10 {
			return sign
		}
		mant |= 0x800000
		shift := uint32(14 - exp)
		half := uint16(mant >> shift)
		round := mant >> (shift - 1) & 1
		sticky := mant & (1<<(shift-1) - 1)
		if round == 1 && (sticky != 0 || half&1 == 1) {
			half++
		}
		return sign | half
	default:
		half := sign | uint16(exp)<<10 | uint16(mant>>13)
		round := mant >> 12 & 1
		sticky := mant & 0xfff
		if round == 1 && (sticky != 0 || half&1 == 1) {
			half++ // a carry here rolls into the exponent, which is the correct rounding
		}
		return half
	}
}

// bfloat16Bits converts a double to bfloat16: the top half of the binary32
// form, rounded to nearest even.
func bfloat16Bits(f float64) uint16 {
	b := math.Float32bits(float32(f))
	if b&0x7fffffff > 0x7f800000 {
		return uint16(b>>16) | 0x0040 // quiet NaN
	}
	upper := uint16(b >> 16)
	lower := b & 0xffff
	if lower > 0x8000 || (lower == 0x8000 && upper&1 == 1) {
		upper++
	}
	return upper
}
