package memtable

import (
	"fmt"
	"strings"

	"github.com/funvibe/irtypes"
)

var scalarNames = map[irtypes.Kind]string{
	irtypes.KindVoid:     "void",
	irtypes.KindHalf:     "half",
	irtypes.KindBFloat:   "bfloat",
	irtypes.KindFloat:    "float",
	irtypes.KindDouble:   "double",
	irtypes.KindX86FP80:  "x86_fp80",
	irtypes.KindFP128:    "fp128",
	irtypes.KindPPCFP128: "ppc_fp128",
	irtypes.KindLabel:    "label",
	irtypes.KindMetadata: "metadata",
	irtypes.KindToken:    "token",
	irtypes.KindX86MMX:   "x86_mmx",
	irtypes.KindX86AMX:   "x86_amx",
}

// PrintType renders the canonical textual form. The rendering is
// deterministic: equal handles always print identically. Named structs
// print by name; only literal structs spell out their body.
func (t *Table) PrintType(ref irtypes.TypeRef) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.print(ref)
}

func (t *Table) print(ref irtypes.TypeRef) string {
	rec := t.record(ref)
	if name, ok := scalarNames[rec.kind]; ok {
		return name
	}
	switch rec.kind {
	case irtypes.KindInteger:
		return fmt.Sprintf("i%d", rec.bits)
	case irtypes.KindPointer:
		if rec.addrSpace == 0 {
			return t.print(rec.elem) + "*"
		}
		return fmt.Sprintf("%s addrspace(%d)*", t.print(rec.elem), rec.addrSpace)
	case irtypes.KindArray:
		return fmt.Sprintf("[%d x %s]", rec.count, t.print(rec.elem))
	case irtypes.KindVector:
		return fmt.Sprintf("<%d x %s>", rec.count, t.print(rec.elem))
	case irtypes.KindScalableVector:
		return fmt.Sprintf("<vscale x %d x %s>", rec.count, t.print(rec.elem))
	case irtypes.KindStruct:
		if rec.name != "" {
			return "%" + rec.name
		}
		if len(rec.elems) == 0 {
			if rec.packed {
				return "<{}>"
			}
			return "{}"
		}
		parts := make([]string, len(rec.elems))
		for i, e := range rec.elems {
			parts[i] = t.print(e)
		}
		body := strings.Join(parts, ", ")
		if rec.packed {
			return "<{ " + body + " }>"
		}
		return "{ " + body + " }"
	case irtypes.KindFunction:
		parts := make([]string, len(rec.elems))
		for i, p := range rec.elems {
			parts[i] = t.print(p)
		}
		if rec.variadic {
			parts = append(parts, "...")
		}
		return fmt.Sprintf("%s (%s)", t.print(rec.ret), strings.Join(parts, ", "))
	}
	panic(fmt.Sprintf("memtable: no printer for kind %v", rec.kind))
}
