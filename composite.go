package irtypes

// CompositeType is the capability shared by the homogeneous wrappers:
// arrays, vectors, and pointers.
type CompositeType interface {
	Type
	// Count is the variant cardinality: array length, vector lane count,
	// always 1 for pointers.
	Count() uint64
	// Contained is the single element type.
	Contained() Type
	// Elements expands to Contained repeated Count times. It is a derived
	// view; composites store no per-slot structure.
	Elements() []Type
}

type compositeType struct{ handle }

func (t compositeType) Contained() Type {
	return Classify(t.tab, t.tab.ElementType(t.ref))
}

func (t compositeType) elements(n uint64) []Type {
	return children(t.tab, int(n), func(buf []TypeRef) {
		elem := t.tab.ElementType(t.ref)
		for i := range buf {
			buf[i] = elem
		}
	})
}

// ArrayType is a fixed-length sequence of one element type.
type ArrayType struct{ compositeType }

// Len is the array length.
func (t ArrayType) Len() uint64 {
	return t.tab.ArrayLength(t.ref)
}

func (t ArrayType) Count() uint64 { return t.Len() }

func (t ArrayType) Elements() []Type { return t.elements(t.Count()) }

// ConstNull synthesizes the all-zero aggregate of this exact array type.
func (t ArrayType) ConstNull() Value {
	return Value{tab: t.tab, ref: t.tab.ConstNull(t.ref)}
}

// PointerType points at a single pointee in some address space.
type PointerType struct{ compositeType }

// AddressSpace is the target memory domain tag the pointer was built with.
func (t PointerType) AddressSpace() uint32 {
	return t.tab.PointerAddressSpace(t.ref)
}

func (t PointerType) Count() uint64 { return 1 }

func (t PointerType) Elements() []Type { return t.elements(1) }

// FixedVectorType is a vector with a fully fixed lane count.
type FixedVectorType struct{ compositeType }

// Lanes is the lane count.
func (t FixedVectorType) Lanes() uint32 {
	return t.tab.VectorSize(t.ref)
}

func (t FixedVectorType) Count() uint64 { return uint64(t.Lanes()) }

func (t FixedVectorType) Elements() []Type { return t.elements(t.Count()) }

// ScalableVectorType is a vector whose true lane count is a runtime
// multiple of a compile-time minimum.
type ScalableVectorType struct{ compositeType }

// MinLanes is the compile-time minimum lane count.
func (t ScalableVectorType) MinLanes() uint32 {
	return t.tab.VectorSize(t.ref)
}

func (t ScalableVectorType) Count() uint64 { return uint64(t.MinLanes()) }

func (t ScalableVectorType) Elements() []Type { return t.elements(t.Count()) }

var (
	_ CompositeType = ArrayType{}
	_ CompositeType = PointerType{}
	_ CompositeType = FixedVectorType{}
	_ CompositeType = ScalableVectorType{}
)
