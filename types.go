// Package irtypes is a typed object model over a handle-based IR type
// system. A collaborator table (the Table interface) owns every type; this
// package classifies its opaque handles into a closed hierarchy of variants
// and exposes structural accessors, constant factories, and canonical
// printing on top of them. Types are views: they reference their owning
// context and are never freed from this layer.
package irtypes

// Type is the capability set shared by every variant of the hierarchy.
// Concrete variants are constructed exclusively through Classify.
type Type interface {
	// Ref returns the underlying collaborator handle.
	Ref() TypeRef
	// Kind reports the collaborator tag for this handle. It always matches
	// the concrete variant Classify produced for it.
	Kind() Kind
	// Context returns the owning context, recomputed from the handle on
	// every call rather than stored.
	Context() Context
	// IsSized reports whether the type has a defined storage size. Opaque
	// structs, function types, void and the label/metadata/token stubs do
	// not.
	IsSized() bool
	// Size and Align answer with integer constants. Requesting them on an
	// unsized type surfaces the collaborator's error unmodified.
	Size() (Value, error)
	Align() (Value, error)
	// Pointer constructs a pointer type in the given address space whose
	// pointee is this type. Address space 0 is the default domain.
	Pointer(addrSpace uint32) PointerType
	// String renders the canonical textual form via the collaborator's
	// printer. No variant formats itself.
	String() string

	table() Table
}

// handle is the shared base of every concrete variant: the foreign TypeRef
// plus the table that issued it. Its unexported table method doubles as the
// marker that keeps the hierarchy closed to this package.
type handle struct {
	tab Table
	ref TypeRef
}

func (h handle) table() Table { return h.tab }

func (h handle) Ref() TypeRef { return h.ref }

func (h handle) Kind() Kind {
	return KindByValue(h.tab.TypeKind(h.ref))
}

func (h handle) Context() Context {
	return Context{tab: h.tab, ref: h.tab.TypeContext(h.ref)}
}

func (h handle) IsSized() bool {
	return h.tab.TypeIsSized(h.ref)
}

func (h handle) Size() (Value, error) {
	ref, err := h.tab.SizeOf(h.ref)
	if err != nil {
		return Value{}, err
	}
	return Value{tab: h.tab, ref: ref}, nil
}

func (h handle) Align() (Value, error) {
	ref, err := h.tab.AlignOf(h.ref)
	if err != nil {
		return Value{}, err
	}
	return Value{tab: h.tab, ref: ref}, nil
}

func (h handle) Pointer(addrSpace uint32) PointerType {
	ref := h.tab.PointerType(h.ref, addrSpace)
	return Classify(h.tab, ref).(PointerType)
}

func (h handle) String() string {
	return h.tab.PrintType(h.ref)
}

// The stub variants carry no structure beyond the handle; only the common
// capabilities and printing apply.
type (
	VoidType     struct{ handle }
	LabelType    struct{ handle }
	MetadataType struct{ handle }
	TokenType    struct{ handle }
	X86MMXType   struct{ handle }
)

// Value wraps a collaborator constant handle. Constants come from the
// factories on concrete types; the collaborator uniques them, so handle
// equality is value equality.
type Value struct {
	tab Table
	ref ValueRef
}

// Ref returns the underlying collaborator handle.
func (v Value) Ref() ValueRef { return v.ref }

// Type classifies the constant's type.
func (v Value) Type() Type {
	return Classify(v.tab, v.tab.TypeOf(v.ref))
}

// children is the one extraction algorithm shared by struct bodies,
// composite element views, subtype lists, and function parameters: query
// the count, fill a sized buffer, then classify every slot in order.
func children(tab Table, n int, fill func([]TypeRef)) []Type {
	buf := make([]TypeRef, n)
	fill(buf)
	out := make([]Type, n)
	for i, ref := range buf {
		out[i] = Classify(tab, ref)
	}
	return out
}

func refsOf(types []Type) []TypeRef {
	refs := make([]TypeRef, len(types))
	for i, t := range types {
		refs[i] = t.Ref()
	}
	return refs
}

// Subtypes returns the immediate contained types of t in collaborator
// order: the element type for composites, the body for structs, the return
// type followed by the parameters for functions.
func Subtypes(t Type) []Type {
	tab := t.table()
	return children(tab, tab.SubtypeCount(t.Ref()), func(buf []TypeRef) {
		tab.Subtypes(t.Ref(), buf)
	})
}
