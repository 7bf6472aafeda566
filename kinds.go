package irtypes

import "fmt"

// Kind identifies which variant of the type hierarchy a handle belongs to.
// The numeric values match the collaborator's wire encoding exactly and must
// never be reordered or renumbered.
type Kind uint32

const (
	KindVoid Kind = iota
	KindHalf
	KindFloat
	KindDouble
	KindX86FP80
	KindFP128
	KindPPCFP128
	KindLabel
	KindInteger
	KindFunction
	KindStruct
	KindArray
	KindPointer
	KindVector
	KindMetadata
	KindX86MMX
	KindToken
	KindScalableVector
	KindBFloat
	KindX86AMX

	kindCount = iota
)

var allKinds = [kindCount]Kind{
	KindVoid, KindHalf, KindFloat, KindDouble, KindX86FP80, KindFP128,
	KindPPCFP128, KindLabel, KindInteger, KindFunction, KindStruct,
	KindArray, KindPointer, KindVector, KindMetadata, KindX86MMX,
	KindToken, KindScalableVector, KindBFloat, KindX86AMX,
}

var kindNames = map[Kind]string{
	KindVoid:           "void",
	KindHalf:           "half",
	KindFloat:          "float",
	KindDouble:         "double",
	KindX86FP80:        "x86_fp80",
	KindFP128:          "fp128",
	KindPPCFP128:       "ppc_fp128",
	KindLabel:          "label",
	KindInteger:        "integer",
	KindFunction:       "function",
	KindStruct:         "struct",
	KindArray:          "array",
	KindPointer:        "pointer",
	KindVector:         "vector",
	KindMetadata:       "metadata",
	KindX86MMX:         "x86_mmx",
	KindToken:          "token",
	KindScalableVector: "scalable_vector",
	KindBFloat:         "bfloat",
	KindX86AMX:         "x86_amx",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint32(k))
}

// IsFloat reports whether the tag names one of the floating precisions.
// All of them share the FloatType variant; the tag alone carries the
// precision.
func (k Kind) IsFloat() bool {
	switch k {
	case KindHalf, KindFloat, KindDouble, KindX86FP80, KindFP128,
		KindPPCFP128, KindBFloat, KindX86AMX:
		return true
	}
	return false
}

var kindRegistry map[uint32]Kind

func init() {
	kindRegistry = make(map[uint32]Kind, kindCount)
	for _, k := range allKinds {
		raw := uint32(k)
		if _, dup := kindRegistry[raw]; dup {
			panic(fmt.Sprintf("irtypes: duplicate kind value %d", raw))
		}
		kindRegistry[raw] = k
	}
}

// KindByValue maps a raw collaborator tag to its Kind. An unknown tag means
// this enumeration and the collaborator's tag space have diverged, which is
// unrecoverable, so it panics rather than returning an error.
func KindByValue(raw uint32) Kind {
	k, ok := kindRegistry[raw]
	if !ok {
		panic(fmt.Sprintf("irtypes: unknown type kind value %d", raw))
	}
	return k
}
