package irtypes

// StructType is an aggregate of heterogeneous element types, either named
// (nominal identity) or literal (identified structurally by its element
// list).
type StructType struct{ handle }

// Name returns the struct's name, or "" for a literal struct.
func (t StructType) Name() string {
	return t.tab.StructName(t.ref)
}

// IsLiteral reports whether the struct is identified by its element list
// rather than a name.
func (t StructType) IsLiteral() bool {
	return t.tab.StructIsLiteral(t.ref)
}

// IsPacked reports whether the struct layout has no padding between
// elements.
func (t StructType) IsPacked() bool {
	return t.tab.StructIsPacked(t.ref)
}

// IsOpaque reports whether the struct's body is still undefined.
func (t StructType) IsOpaque() bool {
	return t.tab.StructIsOpaque(t.ref)
}

// ElementCount reports the number of body elements.
func (t StructType) ElementCount() int {
	return t.tab.StructElementCount(t.ref)
}

// Elements reads the struct body in order. Reading the body of an opaque
// struct fails with OpaqueStructError.
func (t StructType) Elements() ([]Type, error) {
	if t.IsOpaque() {
		return nil, NewOpaqueStructError(t.Name())
	}
	elems := children(t.tab, t.ElementCount(), func(buf []TypeRef) {
		t.tab.StructElements(t.ref, buf)
	})
	return elems, nil
}

// DefineBody installs the element list and packed flag on the underlying
// handle. Each call is a full replacement of the body; whether redefining
// an already-defined body is legal is the collaborator's contract, not
// ours. Concurrent body mutation is unsynchronized and must be serialized
// by the caller.
func (t StructType) DefineBody(elems []Type, packed bool) {
	t.tab.StructSetBody(t.ref, refsOf(elems), packed)
}

// Constant synthesizes a constant aggregate of this struct type from the
// given element values. Named structs go through the named-struct constant
// path; literal structs are built in their owning context with the packed
// flag preserved.
func (t StructType) Constant(vals []Value) Value {
	refs := make([]ValueRef, len(vals))
	for i, v := range vals {
		refs[i] = v.ref
	}
	if t.IsLiteral() {
		ctx := t.tab.TypeContext(t.ref)
		return Value{tab: t.tab, ref: t.tab.ConstStruct(ctx, refs, t.IsPacked())}
	}
	return Value{tab: t.tab, ref: t.tab.ConstNamedStruct(t.ref, refs)}
}
