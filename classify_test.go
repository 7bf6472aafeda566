package irtypes_test

import (
	"fmt"
	"testing"

	"github.com/funvibe/irtypes"
	"github.com/funvibe/irtypes/memtable"
)

// corpus builds one representative type per kind tag.
func corpus(ctx irtypes.Context) map[irtypes.Kind]irtypes.Type {
	i32 := ctx.Integer(32)
	return map[irtypes.Kind]irtypes.Type{
		irtypes.KindVoid:           ctx.Void(),
		irtypes.KindHalf:           ctx.Float(irtypes.KindHalf),
		irtypes.KindFloat:          ctx.Float(irtypes.KindFloat),
		irtypes.KindDouble:         ctx.Float(irtypes.KindDouble),
		irtypes.KindX86FP80:        ctx.Float(irtypes.KindX86FP80),
		irtypes.KindFP128:          ctx.Float(irtypes.KindFP128),
		irtypes.KindPPCFP128:       ctx.Float(irtypes.KindPPCFP128),
		irtypes.KindLabel:          ctx.Label(),
		irtypes.KindInteger:        i32,
		irtypes.KindFunction:       irtypes.FunctionOf(ctx.Void(), []irtypes.Type{i32}, false),
		irtypes.KindStruct:         ctx.Struct([]irtypes.Type{i32}, false),
		irtypes.KindArray:          irtypes.ArrayOf(i32, 4),
		irtypes.KindPointer:        i32.Pointer(0),
		irtypes.KindVector:         irtypes.VectorOf(i32, 4),
		irtypes.KindMetadata:       ctx.Metadata(),
		irtypes.KindX86MMX:         ctx.X86MMX(),
		irtypes.KindToken:          ctx.Token(),
		irtypes.KindScalableVector: irtypes.ScalableVectorOf(i32, 4),
		irtypes.KindBFloat:         ctx.Float(irtypes.KindBFloat),
		irtypes.KindX86AMX:         ctx.Float(irtypes.KindX86AMX),
	}
}

func TestClassifyVariants(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()

	for kind, typ := range corpus(ctx) {
		got := irtypes.Classify(tab, typ.Ref())
		var want string
		switch kind {
		case irtypes.KindVoid:
			want = "irtypes.VoidType"
		case irtypes.KindLabel:
			want = "irtypes.LabelType"
		case irtypes.KindMetadata:
			want = "irtypes.MetadataType"
		case irtypes.KindToken:
			want = "irtypes.TokenType"
		case irtypes.KindX86MMX:
			want = "irtypes.X86MMXType"
		case irtypes.KindInteger:
			want = "irtypes.IntegerType"
		case irtypes.KindFunction:
			want = "irtypes.FunctionType"
		case irtypes.KindStruct:
			want = "irtypes.StructType"
		case irtypes.KindArray:
			want = "irtypes.ArrayType"
		case irtypes.KindPointer:
			want = "irtypes.PointerType"
		case irtypes.KindVector:
			want = "irtypes.FixedVectorType"
		case irtypes.KindScalableVector:
			want = "irtypes.ScalableVectorType"
		default:
			want = "irtypes.FloatType"
		}
		if name := fmt.Sprintf("%T", got); name != want {
			t.Errorf("classify of %v handle produced %s, want %s", kind, name, want)
		}
	}
}

func TestClassifyKindMatchesRegistry(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()

	for kind, typ := range corpus(ctx) {
		wrapped := irtypes.Classify(tab, typ.Ref())
		raw := tab.TypeKind(typ.Ref())
		if wrapped.Kind() != irtypes.KindByValue(raw) {
			t.Errorf("%v: wrapped kind %v disagrees with registry %v",
				kind, wrapped.Kind(), irtypes.KindByValue(raw))
		}
		if wrapped.Kind() != kind {
			t.Errorf("handle built as %v classifies as %v", kind, wrapped.Kind())
		}
	}
}

func TestContextIsDerivedFromHandle(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()
	other := tab.NewContext()

	i32 := ctx.Integer(32)
	if i32.Context().Ref() != ctx.Ref() {
		t.Errorf("type reports context %d, want %d", i32.Context().Ref(), ctx.Ref())
	}
	if other.Integer(32).Context().Ref() == ctx.Ref() {
		t.Errorf("types from distinct contexts report the same owner")
	}
}
