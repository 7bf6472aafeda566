// Package fixture loads declarative type descriptions from YAML and
// materializes them through a type table. It exists for test corpora and
// golden fixtures; it is not a general serialization format for types.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/irtypes"
)

// Corpus is the top-level document: an ordered list of labeled type
// descriptions.
type Corpus struct {
	Types []Entry `yaml:"types"`
}

// Entry is one labeled type description.
type Entry struct {
	Name string `yaml:"name"`
	Type Node   `yaml:"type"`
}

// Node describes a single type. Exactly one selector field (prim, int,
// ptr, array, vector, struct, named, fn) drives the construction; the
// remaining fields qualify it.
type Node struct {
	// Prim names a structureless type: void, half, bfloat, float, double,
	// x86_fp80, fp128, ppc_fp128, x86_amx, label, metadata, token,
	// x86_mmx.
	Prim string `yaml:"prim,omitempty"`

	// Int is an integer bit width.
	Int uint32 `yaml:"int,omitempty"`

	// Ptr is the pointee; AddrSpace qualifies it.
	Ptr       *Node  `yaml:"ptr,omitempty"`
	AddrSpace uint32 `yaml:"addrspace,omitempty"`

	// Array is the element type; Len qualifies it.
	Array *Node  `yaml:"array,omitempty"`
	Len   uint64 `yaml:"len,omitempty"`

	// Vector is the element type; Lanes qualifies it and Scalable selects
	// the scalable variant.
	Vector   *Node  `yaml:"vector,omitempty"`
	Lanes    uint32 `yaml:"lanes,omitempty"`
	Scalable bool   `yaml:"scalable,omitempty"`

	// Struct is a literal struct body unless Named is set, in which case a
	// named struct is declared and the body (if any) installed. Opaque
	// leaves a named struct without a body.
	Struct []Node `yaml:"struct,omitempty"`
	Named  string `yaml:"named,omitempty"`
	Packed bool   `yaml:"packed,omitempty"`
	Opaque bool   `yaml:"opaque,omitempty"`

	// Fn is a function signature.
	Fn *FnNode `yaml:"fn,omitempty"`
}

// FnNode is a function signature description.
type FnNode struct {
	Ret      Node   `yaml:"ret"`
	Params   []Node `yaml:"params,omitempty"`
	Variadic bool   `yaml:"variadic,omitempty"`
}

var primKinds = map[string]irtypes.Kind{
	"void":      irtypes.KindVoid,
	"half":      irtypes.KindHalf,
	"bfloat":    irtypes.KindBFloat,
	"float":     irtypes.KindFloat,
	"double":    irtypes.KindDouble,
	"x86_fp80":  irtypes.KindX86FP80,
	"fp128":     irtypes.KindFP128,
	"ppc_fp128": irtypes.KindPPCFP128,
	"x86_amx":   irtypes.KindX86AMX,
	"label":     irtypes.KindLabel,
	"metadata":  irtypes.KindMetadata,
	"token":     irtypes.KindToken,
	"x86_mmx":   irtypes.KindX86MMX,
}

// Parse decodes a corpus document.
func Parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("fixture: parsing corpus: %w", err)
	}
	for _, e := range c.Types {
		if e.Name == "" {
			return nil, fmt.Errorf("fixture: every entry needs a name")
		}
		if err := validate(&e.Type); err != nil {
			return nil, fmt.Errorf("fixture: entry %q: %w", e.Name, err)
		}
	}
	return &c, nil
}

// Load reads and parses a corpus file.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}
	return Parse(data)
}

func validate(n *Node) error {
	selectors := 0
	if n.Prim != "" {
		if _, ok := primKinds[n.Prim]; !ok {
			return fmt.Errorf("unknown primitive %q", n.Prim)
		}
		selectors++
	}
	if n.Int > 0 {
		selectors++
	}
	if n.Ptr != nil {
		selectors++
		if err := validate(n.Ptr); err != nil {
			return err
		}
	}
	if n.Array != nil {
		selectors++
		if err := validate(n.Array); err != nil {
			return err
		}
	}
	if n.Vector != nil {
		if n.Lanes == 0 {
			return fmt.Errorf("vector needs a positive lane count")
		}
		selectors++
		if err := validate(n.Vector); err != nil {
			return err
		}
	}
	if n.Struct != nil || n.Named != "" {
		if n.Opaque && n.Named == "" {
			return fmt.Errorf("only a named struct can stay opaque")
		}
		selectors++
		for i := range n.Struct {
			if err := validate(&n.Struct[i]); err != nil {
				return err
			}
		}
	}
	if n.Fn != nil {
		selectors++
		if err := validate(&n.Fn.Ret); err != nil {
			return err
		}
		for i := range n.Fn.Params {
			if err := validate(&n.Fn.Params[i]); err != nil {
				return err
			}
		}
	}
	if selectors != 1 {
		return fmt.Errorf("exactly one type selector required, got %d", selectors)
	}
	return nil
}

// Named pairs a corpus label with the type it produced.
type Named struct {
	Name string
	Type irtypes.Type
}

// Materialize builds every entry in order within ctx.
func (c *Corpus) Materialize(ctx irtypes.Context) ([]Named, error) {
	out := make([]Named, 0, len(c.Types))
	for _, e := range c.Types {
		typ, err := Build(ctx, &e.Type)
		if err != nil {
			return nil, fmt.Errorf("fixture: entry %q: %w", e.Name, err)
		}
		out = append(out, Named{Name: e.Name, Type: typ})
	}
	return out, nil
}

// Build materializes a single description within ctx.
func Build(ctx irtypes.Context, n *Node) (irtypes.Type, error) {
	if err := validate(n); err != nil {
		return nil, err
	}
	return build(ctx, n)
}

func build(ctx irtypes.Context, n *Node) (irtypes.Type, error) {
	switch {
	case n.Prim != "":
		k := primKinds[n.Prim]
		if k.IsFloat() {
			return ctx.Float(k), nil
		}
		switch k {
		case irtypes.KindVoid:
			return ctx.Void(), nil
		case irtypes.KindLabel:
			return ctx.Label(), nil
		case irtypes.KindMetadata:
			return ctx.Metadata(), nil
		case irtypes.KindToken:
			return ctx.Token(), nil
		default:
			return ctx.X86MMX(), nil
		}
	case n.Int > 0:
		return ctx.Integer(n.Int), nil
	case n.Ptr != nil:
		elem, err := build(ctx, n.Ptr)
		if err != nil {
			return nil, err
		}
		return irtypes.PointerTo(elem, n.AddrSpace), nil
	case n.Array != nil:
		elem, err := build(ctx, n.Array)
		if err != nil {
			return nil, err
		}
		return irtypes.ArrayOf(elem, n.Len), nil
	case n.Vector != nil:
		elem, err := build(ctx, n.Vector)
		if err != nil {
			return nil, err
		}
		if n.Scalable {
			return irtypes.ScalableVectorOf(elem, n.Lanes), nil
		}
		return irtypes.VectorOf(elem, n.Lanes), nil
	case n.Fn != nil:
		ret, err := build(ctx, &n.Fn.Ret)
		if err != nil {
			return nil, err
		}
		params := make([]irtypes.Type, len(n.Fn.Params))
		for i := range n.Fn.Params {
			if params[i], err = build(ctx, &n.Fn.Params[i]); err != nil {
				return nil, err
			}
		}
		return irtypes.FunctionOf(ret, params, n.Fn.Variadic), nil
	default: // struct
		elems := make([]irtypes.Type, len(n.Struct))
		for i := range n.Struct {
			var err error
			if elems[i], err = build(ctx, &n.Struct[i]); err != nil {
				return nil, err
			}
		}
		if n.Named == "" {
			return ctx.Struct(elems, n.Packed), nil
		}
		s := ctx.NamedStruct(n.Named)
		if !n.Opaque {
			s.DefineBody(elems, n.Packed)
		}
		return s, nil
	}
}
