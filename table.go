package irtypes

// TypeRef is an opaque handle to a type issued by a Table. The referenced
// storage is owned by the table's context; this package only holds views.
type TypeRef uint64

// ContextRef is an opaque handle to a collaborator context.
type ContextRef uint64

// ValueRef is an opaque handle to a constant value.
type ValueRef uint64

// Table is the type-table collaborator this package consumes and never
// reimplements. Every operation is a finite synchronous query over
// already-resident type metadata; the table defines its own uniqueness and
// concurrency rules. Methods that fill a caller-provided buffer write
// exactly len(buf) entries in the table's order.
type Table interface {
	// TypeKind reports the raw kind tag of t.
	TypeKind(t TypeRef) uint32
	// TypeContext reports the context owning t.
	TypeContext(t TypeRef) ContextRef
	// TypeIsSized reports whether t has a defined storage size.
	TypeIsSized(t TypeRef) bool
	// SizeOf and AlignOf answer with integer constants. On an unsized type
	// they fail with the table's own error, surfaced to callers as-is.
	SizeOf(t TypeRef) (ValueRef, error)
	AlignOf(t TypeRef) (ValueRef, error)
	// PrintType renders the canonical textual form of t. The returned
	// string is fully owned by the caller.
	PrintType(t TypeRef) string

	// PrimitiveType constructs the structureless types: the stub kinds
	// (void, label, metadata, token, x86_mmx) and the float precisions.
	PrimitiveType(c ContextRef, k Kind) TypeRef
	IntegerType(c ContextRef, bits uint32) TypeRef
	PointerType(elem TypeRef, addrSpace uint32) TypeRef
	ArrayType(elem TypeRef, length uint64) TypeRef
	VectorType(elem TypeRef, lanes uint32) TypeRef
	ScalableVectorType(elem TypeRef, minLanes uint32) TypeRef
	// StructType constructs a literal struct from its element list.
	StructType(c ContextRef, elems []TypeRef, packed bool) TypeRef
	// NamedStructType declares a named struct with no body yet.
	NamedStructType(c ContextRef, name string) TypeRef
	FunctionType(ret TypeRef, params []TypeRef, variadic bool) TypeRef

	StructName(t TypeRef) string
	StructIsPacked(t TypeRef) bool
	StructIsOpaque(t TypeRef) bool
	StructIsLiteral(t TypeRef) bool
	StructElementCount(t TypeRef) int
	StructElements(t TypeRef, buf []TypeRef)
	// StructSetBody installs the element list and packed flag on t. Each
	// call is a full replacement; whether redefinition is legal is the
	// table's decision.
	StructSetBody(t TypeRef, elems []TypeRef, packed bool)

	ElementType(t TypeRef) TypeRef
	ArrayLength(t TypeRef) uint64
	VectorSize(t TypeRef) uint32
	SubtypeCount(t TypeRef) int
	Subtypes(t TypeRef, buf []TypeRef)
	PointerAddressSpace(t TypeRef) uint32

	ReturnType(t TypeRef) TypeRef
	IsFunctionVarArg(t TypeRef) bool
	ParamCount(t TypeRef) int
	ParamTypes(t TypeRef, buf []TypeRef)

	IntegerBitWidth(t TypeRef) uint32

	ConstNull(t TypeRef) ValueRef
	ConstAllOnes(t TypeRef) ValueRef
	ConstInt(t TypeRef, value uint64, signExtend bool) ValueRef
	ConstReal(t TypeRef, value float64) ValueRef
	ConstNamedStruct(t TypeRef, vals []ValueRef) ValueRef
	ConstStruct(c ContextRef, vals []ValueRef, packed bool) ValueRef
	// TypeOf reports the type of a constant.
	TypeOf(v ValueRef) TypeRef
}
