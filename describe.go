package irtypes

import (
	json "github.com/goccy/go-json"
)

// TypeInfo is the structural summary Describe renders. Canonical text still
// comes from the collaborator's printer; this is the machine-readable form
// used for diagnostics and fixtures.
type TypeInfo struct {
	Kind         string     `json:"kind"`
	Print        string     `json:"print"`
	Width        uint32     `json:"width,omitempty"`
	Count        uint64     `json:"count,omitempty"`
	AddressSpace uint32     `json:"addrspace,omitempty"`
	Name         string     `json:"name,omitempty"`
	Packed       bool       `json:"packed,omitempty"`
	Opaque       bool       `json:"opaque,omitempty"`
	Variadic     bool       `json:"variadic,omitempty"`
	Return       *TypeInfo  `json:"return,omitempty"`
	Elements     []TypeInfo `json:"elements,omitempty"`
}

// Info builds the structural summary of t. Opaque struct bodies are
// reported with the opaque flag rather than failing, and a named struct is
// expanded at most once so self-referential bodies terminate.
func Info(t Type) TypeInfo {
	return buildInfo(t, map[TypeRef]bool{})
}

func buildInfo(t Type, seen map[TypeRef]bool) TypeInfo {
	info := TypeInfo{Kind: t.Kind().String(), Print: t.String()}
	switch v := t.(type) {
	case IntegerType:
		info.Width = v.Width()
	case StructType:
		info.Name = v.Name()
		info.Packed = v.IsPacked()
		info.Opaque = v.IsOpaque()
		if v.IsOpaque() || seen[v.Ref()] {
			return info
		}
		seen[v.Ref()] = true
		elems, err := v.Elements()
		if err != nil {
			return info
		}
		for _, e := range elems {
			info.Elements = append(info.Elements, buildInfo(e, seen))
		}
	case FunctionType:
		ret := buildInfo(v.ReturnType(), seen)
		info.Return = &ret
		info.Variadic = v.IsVarArg()
		for _, p := range v.Params() {
			info.Elements = append(info.Elements, buildInfo(p, seen))
		}
	case PointerType:
		info.Count = 1
		info.AddressSpace = v.AddressSpace()
		info.Elements = []TypeInfo{buildInfo(v.Contained(), seen)}
	case ArrayType:
		info.Count = v.Count()
		info.Elements = []TypeInfo{buildInfo(v.Contained(), seen)}
	case FixedVectorType:
		info.Count = v.Count()
		info.Elements = []TypeInfo{buildInfo(v.Contained(), seen)}
	case ScalableVectorType:
		info.Count = v.Count()
		info.Elements = []TypeInfo{buildInfo(v.Contained(), seen)}
	}
	return info
}

// Describe renders the structural summary of t as indented JSON.
func Describe(t Type) ([]byte, error) {
	return json.MarshalIndent(Info(t), "", "  ")
}
