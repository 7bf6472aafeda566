// Package memtable is an in-memory implementation of the irtypes.Table
// collaborator: a uniquing type store with a canonical printer, constant
// synthesis, and a simple data layout for size and alignment queries.
//
// Handles issued by a Table are canonical: structurally equal construction
// requests return the identical ref, so handle equality is value equality.
// A mutex guards the store; struct body mutation is still expected to be
// serialized by a single owner per context.
package memtable

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/funvibe/irtypes"
)

// MaxIntegerBits is the widest integer type the table will construct.
const MaxIntegerBits = 1 << 23

// Table holds every type, constant, and context it has issued. Refs are
// 1-based indexes into the backing slices; 0 is never a valid handle.
type Table struct {
	mu    sync.Mutex
	types []typeRecord
	vals  []valueRecord
	ctxs  []*contextRecord
}

type typeRecord struct {
	kind irtypes.Kind
	ctx  irtypes.ContextRef

	bits uint32 // integer width

	elem      irtypes.TypeRef // array/vector/pointer element
	count     uint64          // array length / vector lanes
	addrSpace uint32

	name    string // named struct
	packed  bool
	opaque  bool
	literal bool
	elems   []irtypes.TypeRef // struct body / function params

	ret      irtypes.TypeRef
	variadic bool
}

type valueRecord struct {
	typ  irtypes.TypeRef
	bits uint64
	agg  []irtypes.ValueRef
}

type contextRecord struct {
	id      uuid.UUID
	prims   map[irtypes.Kind]irtypes.TypeRef
	ints    map[uint32]irtypes.TypeRef
	derived map[string]irtypes.TypeRef
	named   map[string]irtypes.TypeRef
	consts  map[string]irtypes.ValueRef
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// NewContext creates a fresh context. Every context carries a UUID identity
// token for diagnostics; handles from different contexts are never uniqued
// together.
func (t *Table) NewContext() irtypes.Context {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := &contextRecord{
		id:      uuid.New(),
		prims:   make(map[irtypes.Kind]irtypes.TypeRef),
		ints:    make(map[uint32]irtypes.TypeRef),
		derived: make(map[string]irtypes.TypeRef),
		named:   make(map[string]irtypes.TypeRef),
		consts:  make(map[string]irtypes.ValueRef),
	}
	t.ctxs = append(t.ctxs, c)
	return irtypes.NewContext(t, irtypes.ContextRef(len(t.ctxs)))
}

// ContextID returns the UUID identity token of a context.
func (t *Table) ContextID(c irtypes.ContextRef) uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.context(c).id
}

func (t *Table) context(c irtypes.ContextRef) *contextRecord {
	if c == 0 || int(c) > len(t.ctxs) {
		panic(fmt.Sprintf("memtable: invalid context handle %d", c))
	}
	return t.ctxs[c-1]
}

func (t *Table) record(ref irtypes.TypeRef) *typeRecord {
	if ref == 0 || int(ref) > len(t.types) {
		panic(fmt.Sprintf("memtable: invalid type handle %d", ref))
	}
	return &t.types[ref-1]
}

func (t *Table) recordOf(ref irtypes.TypeRef, want irtypes.Kind) *typeRecord {
	rec := t.record(ref)
	if rec.kind != want {
		panic(fmt.Sprintf("memtable: %v handle where %v expected", rec.kind, want))
	}
	return rec
}

func (t *Table) value(ref irtypes.ValueRef) *valueRecord {
	if ref == 0 || int(ref) > len(t.vals) {
		panic(fmt.Sprintf("memtable: invalid value handle %d", ref))
	}
	return &t.vals[ref-1]
}

func (t *Table) addType(rec typeRecord) irtypes.TypeRef {
	t.types = append(t.types, rec)
	return irtypes.TypeRef(len(t.types))
}

func (t *Table) addValue(rec valueRecord) irtypes.ValueRef {
	t.vals = append(t.vals, rec)
	return irtypes.ValueRef(len(t.vals))
}

// PrimitiveType constructs the structureless types: the stub kinds and the
// float precisions. Each is uniqued per context.
func (t *Table) PrimitiveType(c irtypes.ContextRef, k irtypes.Kind) irtypes.TypeRef {
	switch {
	case k.IsFloat():
	case k == irtypes.KindVoid, k == irtypes.KindLabel, k == irtypes.KindMetadata,
		k == irtypes.KindToken, k == irtypes.KindX86MMX:
	default:
		panic(fmt.Sprintf("memtable: kind %v has no primitive constructor", k))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ctx := t.context(c)
	if ref, ok := ctx.prims[k]; ok {
		return ref
	}
	ref := t.addType(typeRecord{kind: k, ctx: c})
	ctx.prims[k] = ref
	return ref
}

// IntegerType constructs the integer type of the given width, uniqued per
// context. Width zero or wider than MaxIntegerBits is a caller bug.
func (t *Table) IntegerType(c irtypes.ContextRef, bits uint32) irtypes.TypeRef {
	if bits == 0 || bits > MaxIntegerBits {
		panic(fmt.Sprintf("memtable: invalid integer width %d", bits))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.integerType(c, bits)
}

func (t *Table) integerType(c irtypes.ContextRef, bits uint32) irtypes.TypeRef {
	ctx := t.context(c)
	if ref, ok := ctx.ints[bits]; ok {
		return ref
	}
	ref := t.addType(typeRecord{kind: irtypes.KindInteger, ctx: c, bits: bits})
	ctx.ints[bits] = ref
	return ref
}

func (t *Table) derivedType(key string, rec typeRecord) irtypes.TypeRef {
	ctx := t.context(rec.ctx)
	if ref, ok := ctx.derived[key]; ok {
		return ref
	}
	ref := t.addType(rec)
	ctx.derived[key] = ref
	return ref
}

func (t *Table) PointerType(elem irtypes.TypeRef, addrSpace uint32) irtypes.TypeRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.record(elem).ctx
	key := fmt.Sprintf("ptr:%d:%d", elem, addrSpace)
	return t.derivedType(key, typeRecord{
		kind: irtypes.KindPointer, ctx: c, elem: elem, count: 1, addrSpace: addrSpace,
	})
}

func (t *Table) ArrayType(elem irtypes.TypeRef, length uint64) irtypes.TypeRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.record(elem).ctx
	key := fmt.Sprintf("arr:%d:%d", elem, length)
	return t.derivedType(key, typeRecord{
		kind: irtypes.KindArray, ctx: c, elem: elem, count: length,
	})
}

func (t *Table) VectorType(elem irtypes.TypeRef, lanes uint32) irtypes.TypeRef {
	if lanes == 0 {
		panic("memtable: vector lane count must be positive")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.record(elem).ctx
	key := fmt.Sprintf("vec:%d:%d", elem, lanes)
	return t.derivedType(key, typeRecord{
		kind: irtypes.KindVector, ctx: c, elem: elem, count: uint64(lanes),
	})
}

func (t *Table) ScalableVectorType(elem irtypes.TypeRef, minLanes uint32) irtypes.TypeRef {
	if minLanes == 0 {
		panic("memtable: vector lane count must be positive")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.record(elem).ctx
	key := fmt.Sprintf("svec:%d:%d", elem, minLanes)
	return t.derivedType(key, typeRecord{
		kind: irtypes.KindScalableVector, ctx: c, elem: elem, count: uint64(minLanes),
	})
}

// StructType constructs a literal struct, uniqued by its element list and
// packed flag.
func (t *Table) StructType(c irtypes.ContextRef, elems []irtypes.TypeRef, packed bool) irtypes.TypeRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.literalStruct(c, elems, packed)
}

func (t *Table) literalStruct(c irtypes.ContextRef, elems []irtypes.TypeRef, packed bool) irtypes.TypeRef {
	var key strings.Builder
	key.WriteString("struct:")
	if packed {
		key.WriteString("p:")
	}
	for _, e := range elems {
		fmt.Fprintf(&key, "%d,", e)
	}
	body := make([]irtypes.TypeRef, len(elems))
	copy(body, elems)
	return t.derivedType(key.String(), typeRecord{
		kind: irtypes.KindStruct, ctx: c, elems: body, packed: packed, literal: true,
	})
}

// NamedStructType declares a named struct with no body. A taken name gets a
// numeric suffix, the same renaming the native type tables do.
func (t *Table) NamedStructType(c irtypes.ContextRef, name string) irtypes.TypeRef {
	if name == "" {
		panic("memtable: named struct requires a name")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ctx := t.context(c)
	unique := name
	for n := 0; ; n++ {
		if _, taken := ctx.named[unique]; !taken {
			break
		}
		unique = fmt.Sprintf("%s.%d", name, n)
	}
	ref := t.addType(typeRecord{kind: irtypes.KindStruct, ctx: c, name: unique, opaque: true})
	ctx.named[unique] = ref
	return ref
}

func (t *Table) FunctionType(ret irtypes.TypeRef, params []irtypes.TypeRef, variadic bool) irtypes.TypeRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.record(ret).ctx
	var key strings.Builder
	fmt.Fprintf(&key, "fn:%d:", ret)
	if variadic {
		key.WriteString("v:")
	}
	for _, p := range params {
		fmt.Fprintf(&key, "%d,", p)
	}
	ps := make([]irtypes.TypeRef, len(params))
	copy(ps, params)
	return t.derivedType(key.String(), typeRecord{
		kind: irtypes.KindFunction, ctx: c, ret: ret, elems: ps, variadic: variadic,
	})
}

func (t *Table) TypeKind(ref irtypes.TypeRef) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return uint32(t.record(ref).kind)
}

func (t *Table) TypeContext(ref irtypes.TypeRef) irtypes.ContextRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record(ref).ctx
}

func (t *Table) TypeIsSized(ref irtypes.TypeRef) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sized(ref, make(map[irtypes.TypeRef]bool))
}

func (t *Table) sized(ref irtypes.TypeRef, visiting map[irtypes.TypeRef]bool) bool {
	if visiting[ref] {
		return false
	}
	visiting[ref] = true
	defer delete(visiting, ref)

	rec := t.record(ref)
	switch rec.kind {
	case irtypes.KindVoid, irtypes.KindLabel, irtypes.KindMetadata,
		irtypes.KindToken, irtypes.KindFunction:
		return false
	case irtypes.KindStruct:
		if rec.opaque {
			return false
		}
		for _, e := range rec.elems {
			if !t.sized(e, visiting) {
				return false
			}
		}
		return true
	case irtypes.KindArray, irtypes.KindVector, irtypes.KindScalableVector:
		return t.sized(rec.elem, visiting)
	default:
		return true
	}
}

func (t *Table) StructName(ref irtypes.TypeRef) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recordOf(ref, irtypes.KindStruct).name
}

func (t *Table) StructIsPacked(ref irtypes.TypeRef) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recordOf(ref, irtypes.KindStruct).packed
}

func (t *Table) StructIsOpaque(ref irtypes.TypeRef) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recordOf(ref, irtypes.KindStruct).opaque
}

func (t *Table) StructIsLiteral(ref irtypes.TypeRef) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recordOf(ref, irtypes.KindStruct).literal
}

func (t *Table) StructElementCount(ref irtypes.TypeRef) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.recordOf(ref, irtypes.KindStruct).elems)
}

func (t *Table) StructElements(ref irtypes.TypeRef, buf []irtypes.TypeRef) {
	t.mu.Lock()
	defer t.mu.Unlock()
	copy(buf, t.recordOf(ref, irtypes.KindStruct).elems)
}

func (t *Table) StructSetBody(ref irtypes.TypeRef, elems []irtypes.TypeRef, packed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.recordOf(ref, irtypes.KindStruct)
	body := make([]irtypes.TypeRef, len(elems))
	copy(body, elems)
	rec.elems = body
	rec.packed = packed
	rec.opaque = false
}

func (t *Table) ElementType(ref irtypes.TypeRef) irtypes.TypeRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.record(ref)
	switch rec.kind {
	case irtypes.KindArray, irtypes.KindVector, irtypes.KindScalableVector, irtypes.KindPointer:
		return rec.elem
	}
	panic(fmt.Sprintf("memtable: %v handle has no element type", rec.kind))
}

func (t *Table) ArrayLength(ref irtypes.TypeRef) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recordOf(ref, irtypes.KindArray).count
}

func (t *Table) VectorSize(ref irtypes.TypeRef) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.record(ref)
	if rec.kind != irtypes.KindVector && rec.kind != irtypes.KindScalableVector {
		panic(fmt.Sprintf("memtable: %v handle where vector expected", rec.kind))
	}
	return uint32(rec.count)
}

func (t *Table) SubtypeCount(ref irtypes.TypeRef) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.record(ref)
	switch rec.kind {
	case irtypes.KindStruct:
		return len(rec.elems)
	case irtypes.KindFunction:
		return 1 + len(rec.elems)
	case irtypes.KindArray, irtypes.KindVector, irtypes.KindScalableVector, irtypes.KindPointer:
		return 1
	}
	return 0
}

func (t *Table) Subtypes(ref irtypes.TypeRef, buf []irtypes.TypeRef) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.record(ref)
	switch rec.kind {
	case irtypes.KindStruct:
		copy(buf, rec.elems)
	case irtypes.KindFunction:
		if len(buf) > 0 {
			buf[0] = rec.ret
			copy(buf[1:], rec.elems)
		}
	case irtypes.KindArray, irtypes.KindVector, irtypes.KindScalableVector, irtypes.KindPointer:
		if len(buf) > 0 {
			buf[0] = rec.elem
		}
	}
}

func (t *Table) PointerAddressSpace(ref irtypes.TypeRef) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recordOf(ref, irtypes.KindPointer).addrSpace
}

func (t *Table) ReturnType(ref irtypes.TypeRef) irtypes.TypeRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recordOf(ref, irtypes.KindFunction).ret
}

func (t *Table) IsFunctionVarArg(ref irtypes.TypeRef) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recordOf(ref, irtypes.KindFunction).variadic
}

func (t *Table) ParamCount(ref irtypes.TypeRef) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.recordOf(ref, irtypes.KindFunction).elems)
}

func (t *Table) ParamTypes(ref irtypes.TypeRef, buf []irtypes.TypeRef) {
	t.mu.Lock()
	defer t.mu.Unlock()
	copy(buf, t.recordOf(ref, irtypes.KindFunction).elems)
}

func (t *Table) IntegerBitWidth(ref irtypes.TypeRef) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recordOf(ref, irtypes.KindInteger).bits
}

var _ irtypes.Table = (*Table)(nil)
