package irtypes

import "fmt"

// Classify wraps a collaborator type handle in its concrete variant. It is
// the sole constructor for variants: the registry decodes the raw tag and
// the switch below is total over the closed enumeration. Falling through
// means the collaborator speaks a newer tag dialect than this package, a
// mismatch nothing at runtime can repair.
func Classify(tab Table, ref TypeRef) Type {
	h := handle{tab: tab, ref: ref}
	switch k := KindByValue(tab.TypeKind(ref)); k {
	case KindVoid:
		return VoidType{h}
	case KindLabel:
		return LabelType{h}
	case KindMetadata:
		return MetadataType{h}
	case KindToken:
		return TokenType{h}
	case KindX86MMX:
		return X86MMXType{h}
	case KindHalf, KindFloat, KindDouble, KindX86FP80, KindFP128,
		KindPPCFP128, KindBFloat, KindX86AMX:
		return FloatType{h}
	case KindInteger:
		return IntegerType{h}
	case KindStruct:
		return StructType{h}
	case KindArray:
		return ArrayType{compositeType{h}}
	case KindPointer:
		return PointerType{compositeType{h}}
	case KindVector:
		// The plain vector tag is always fixed-width.
		return FixedVectorType{compositeType{h}}
	case KindScalableVector:
		return ScalableVectorType{compositeType{h}}
	case KindFunction:
		return FunctionType{h}
	default:
		panic(fmt.Sprintf("irtypes: no variant wired for kind %v", k))
	}
}
