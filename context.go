package irtypes

// Context identifies the collaborator context that owns a set of handles.
// Types reference their context and never own it; contexts outlive every
// view built on top of them.
type Context struct {
	tab Table
	ref ContextRef
}

// NewContext wraps a collaborator context handle.
func NewContext(tab Table, ref ContextRef) Context {
	return Context{tab: tab, ref: ref}
}

// Ref returns the underlying collaborator handle.
func (c Context) Ref() ContextRef { return c.ref }

// Table returns the collaborator the context belongs to.
func (c Context) Table() Table { return c.tab }

func (c Context) primitive(k Kind) Type {
	return Classify(c.tab, c.tab.PrimitiveType(c.ref, k))
}

func (c Context) Void() VoidType { return c.primitive(KindVoid).(VoidType) }

func (c Context) Label() LabelType { return c.primitive(KindLabel).(LabelType) }

func (c Context) Metadata() MetadataType { return c.primitive(KindMetadata).(MetadataType) }

func (c Context) Token() TokenType { return c.primitive(KindToken).(TokenType) }

func (c Context) X86MMX() X86MMXType { return c.primitive(KindX86MMX).(X86MMXType) }

// Float constructs the float variant for one of the precision tags (Half,
// Float, Double, X86_FP80, FP128, PPC_FP128, BFloat, X86_AMX). The tag is
// the only place the precision lives.
func (c Context) Float(k Kind) FloatType {
	return c.primitive(k).(FloatType)
}

// Integer constructs the integer type of the given bit width.
func (c Context) Integer(bits uint32) IntegerType {
	return Classify(c.tab, c.tab.IntegerType(c.ref, bits)).(IntegerType)
}

// Struct constructs a literal struct typed structurally by its element
// list.
func (c Context) Struct(elems []Type, packed bool) StructType {
	return Classify(c.tab, c.tab.StructType(c.ref, refsOf(elems), packed)).(StructType)
}

// NamedStruct declares a named struct with no body. It stays opaque until
// DefineBody installs one.
func (c Context) NamedStruct(name string) StructType {
	return Classify(c.tab, c.tab.NamedStructType(c.ref, name)).(StructType)
}

// ArrayOf constructs the array type of length n over elem, in elem's
// context.
func ArrayOf(elem Type, n uint64) ArrayType {
	tab := elem.table()
	return Classify(tab, tab.ArrayType(elem.Ref(), n)).(ArrayType)
}

// VectorOf constructs the fixed-width vector type with the given lane
// count over elem.
func VectorOf(elem Type, lanes uint32) FixedVectorType {
	tab := elem.table()
	return Classify(tab, tab.VectorType(elem.Ref(), lanes)).(FixedVectorType)
}

// ScalableVectorOf constructs the scalable vector type whose runtime lane
// count is an unknown multiple of minLanes.
func ScalableVectorOf(elem Type, minLanes uint32) ScalableVectorType {
	tab := elem.table()
	return Classify(tab, tab.ScalableVectorType(elem.Ref(), minLanes)).(ScalableVectorType)
}

// PointerTo constructs the pointer type to elem in the given address
// space.
func PointerTo(elem Type, addrSpace uint32) PointerType {
	return elem.Pointer(addrSpace)
}

// FunctionOf constructs the function type with the given return type,
// ordered parameters, and variadic flag.
func FunctionOf(ret Type, params []Type, variadic bool) FunctionType {
	tab := ret.table()
	return Classify(tab, tab.FunctionType(ret.Ref(), refsOf(params), variadic)).(FunctionType)
}
