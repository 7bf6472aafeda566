package memtable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/irtypes"
	"github.com/funvibe/irtypes/memtable"
)

func TestDerivedTypesAreUniqued(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()
	i32 := ctx.Integer(32)

	require.Equal(t, i32.Ref(), ctx.Integer(32).Ref())
	require.Equal(t, i32.Pointer(0).Ref(), i32.Pointer(0).Ref())
	require.NotEqual(t, i32.Pointer(0).Ref(), i32.Pointer(1).Ref())
	require.Equal(t, irtypes.ArrayOf(i32, 4).Ref(), irtypes.ArrayOf(i32, 4).Ref())
	require.NotEqual(t, irtypes.ArrayOf(i32, 4).Ref(), irtypes.ArrayOf(i32, 5).Ref())
	require.Equal(t,
		irtypes.FunctionOf(ctx.Void(), []irtypes.Type{i32}, false).Ref(),
		irtypes.FunctionOf(ctx.Void(), []irtypes.Type{i32}, false).Ref())
	require.NotEqual(t,
		irtypes.FunctionOf(ctx.Void(), []irtypes.Type{i32}, false).Ref(),
		irtypes.FunctionOf(ctx.Void(), []irtypes.Type{i32}, true).Ref())
}

func TestUniquingIsPerContext(t *testing.T) {
	tab := memtable.New()
	a := tab.NewContext()
	b := tab.NewContext()

	require.NotEqual(t, a.Integer(32).Ref(), b.Integer(32).Ref())
	require.NotEqual(t, tab.ContextID(a.Ref()), tab.ContextID(b.Ref()))
}

func TestNamedStructCollisionRenames(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()

	first := ctx.NamedStruct("s")
	second := ctx.NamedStruct("s")
	require.Equal(t, "s", first.Name())
	require.Equal(t, "s.0", second.Name())
	require.NotEqual(t, first.Ref(), second.Ref())
}

func TestLayout(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()
	i8 := ctx.Integer(8)
	i32 := ctx.Integer(32)

	tests := []struct {
		name      string
		typ       irtypes.Type
		size      uint64
		align     uint64
	}{
		{"i8", i8, 1, 1},
		{"i32", i32, 4, 4},
		{"i64", ctx.Integer(64), 8, 8},
		{"half", ctx.Float(irtypes.KindHalf), 2, 2},
		{"x86_fp80", ctx.Float(irtypes.KindX86FP80), 16, 16},
		{"pointer", i8.Pointer(0), 8, 8},
		{"array", irtypes.ArrayOf(i32, 4), 16, 4},
		{"vector", irtypes.VectorOf(i32, 4), 16, 16},
		{"struct", ctx.Struct([]irtypes.Type{i8, i32}, false), 8, 4},
		{"packed struct", ctx.Struct([]irtypes.Type{i8, i32}, true), 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := tt.typ.Size()
			require.NoError(t, err)
			require.Equal(t, tt.size, tab.ConstBits(size.Ref()), "size")

			align, err := tt.typ.Align()
			require.NoError(t, err)
			require.Equal(t, tt.align, tab.ConstBits(align.Ref()), "align")
		})
	}
}

func TestUnsizedTypes(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()

	unsized := []irtypes.Type{
		ctx.Void(),
		ctx.Label(),
		ctx.Metadata(),
		ctx.Token(),
		ctx.NamedStruct("fwd"),
		irtypes.FunctionOf(ctx.Void(), nil, false),
	}
	for _, typ := range unsized {
		require.False(t, typ.IsSized(), "%s", typ)
		_, err := typ.Size()
		require.ErrorContains(t, err, "unsized")
	}

	// A struct is sized once every element is.
	s := ctx.NamedStruct("late")
	s.DefineBody([]irtypes.Type{ctx.Integer(32)}, false)
	require.True(t, s.IsSized())
}

func TestAggregateNullIsUniqued(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()
	i32 := ctx.Integer(32)
	s := ctx.Struct([]irtypes.Type{i32, irtypes.ArrayOf(i32, 2)}, false)

	first := tab.ConstNull(s.Ref())
	require.Equal(t, s.Ref(), tab.TypeOf(first))
	require.Equal(t, first, tab.ConstNull(s.Ref()))

	require.Panics(t, func() { tab.ConstNull(ctx.NamedStruct("fwd2").Ref()) })
}

func TestMisuseOfHandlesPanics(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()
	i32 := ctx.Integer(32)

	require.Panics(t, func() { tab.ArrayLength(i32.Ref()) })
	require.Panics(t, func() { tab.StructName(i32.Ref()) })
	require.Panics(t, func() { tab.ElementType(i32.Ref()) })
	require.Panics(t, func() { tab.TypeKind(0) })
	require.Panics(t, func() { ctx.Integer(0) })
	require.Panics(t, func() { irtypes.VectorOf(i32, 0) })
	require.Panics(t, func() { ctx.Float(irtypes.KindInteger) })
}
