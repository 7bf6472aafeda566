package memtable

import (
	"fmt"

	"github.com/funvibe/irtypes"
)

// The layout here is a plain 64-bit data layout: 8-byte pointers, natural
// power-of-two alignment capped at 16 bytes, scalable vectors sized at
// their compile-time minimum. It exists so size and alignment queries have
// deterministic answers; it does not model any particular target ABI.

// SizeOf answers with an i64 constant holding the byte size of typ, or the
// unsized error when typ has no defined storage size.
func (t *Table) SizeOf(typ irtypes.TypeRef) (irtypes.ValueRef, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.sized(typ, make(map[irtypes.TypeRef]bool)) {
		return 0, fmt.Errorf("memtable: %s is unsized", t.print(typ))
	}
	size, _ := t.layout(typ)
	return t.layoutConst(typ, size), nil
}

// AlignOf answers with an i64 constant holding the byte alignment of typ.
func (t *Table) AlignOf(typ irtypes.TypeRef) (irtypes.ValueRef, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.sized(typ, make(map[irtypes.TypeRef]bool)) {
		return 0, fmt.Errorf("memtable: %s is unsized", t.print(typ))
	}
	_, align := t.layout(typ)
	return t.layoutConst(typ, align), nil
}

func (t *Table) layoutConst(typ irtypes.TypeRef, n uint64) irtypes.ValueRef {
	i64 := t.integerType(t.record(typ).ctx, 64)
	return t.scalarConst(i64, n)
}

func (t *Table) layout(typ irtypes.TypeRef) (size, align uint64) {
	rec := t.record(typ)
	switch rec.kind {
	case irtypes.KindInteger:
		raw := uint64(rec.bits+7) / 8
		align = pow2Ceil(raw)
		if align > 16 {
			align = 16
		}
		return roundUp(raw, align), align
	case irtypes.KindHalf, irtypes.KindBFloat:
		return 2, 2
	case irtypes.KindFloat:
		return 4, 4
	case irtypes.KindDouble, irtypes.KindX86MMX:
		return 8, 8
	case irtypes.KindX86FP80, irtypes.KindFP128, irtypes.KindPPCFP128:
		return 16, 16
	case irtypes.KindX86AMX:
		return 1024, 64
	case irtypes.KindPointer:
		return 8, 8
	case irtypes.KindArray:
		esize, ealign := t.layout(rec.elem)
		stride := roundUp(esize, ealign)
		return stride * rec.count, ealign
	case irtypes.KindVector, irtypes.KindScalableVector:
		esize, _ := t.layout(rec.elem)
		size = esize * rec.count
		align = pow2Ceil(size)
		if align > 16 {
			align = 16
		}
		if align == 0 {
			align = 1
		}
		return size, align
	case irtypes.KindStruct:
		if rec.packed {
			for _, e := range rec.elems {
				esize, _ := t.layout(e)
				size += esize
			}
			return size, 1
		}
		align = 1
		for _, e := range rec.elems {
			esize, ealign := t.layout(e)
			size = roundUp(size, ealign) + esize
			if ealign > align {
				align = ealign
			}
		}
		return roundUp(size, align), align
	}
	panic(fmt.Sprintf("memtable: no layout for kind %v", rec.kind))
}

func roundUp(n, align uint64) uint64 {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}

func pow2Ceil(n uint64) uint64 {
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}
