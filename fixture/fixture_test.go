package fixture_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/irtypes"
	"github.com/funvibe/irtypes/fixture"
	"github.com/funvibe/irtypes/memtable"
)

func TestCorpusCanonicalPrint(t *testing.T) {
	corpus, err := fixture.Load("testdata/corpus.yaml")
	require.NoError(t, err)

	tab := memtable.New()
	named, err := corpus.Materialize(tab.NewContext())
	require.NoError(t, err)

	var buf bytes.Buffer
	for _, n := range named {
		fmt.Fprintf(&buf, "%s: %s\n", n.Name, n.Type)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "corpus", buf.Bytes())
}

func TestParseRejectsAmbiguousNodes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "two selectors",
			doc: `
types:
  - name: bad
    type:
      int: 8
      prim: void
`,
			want: "exactly one type selector",
		},
		{
			name: "no selector",
			doc: `
types:
  - name: bad
    type: {}
`,
			want: "exactly one type selector",
		},
		{
			name: "unknown primitive",
			doc: `
types:
  - name: bad
    type:
      prim: quad
`,
			want: `unknown primitive "quad"`,
		},
		{
			name: "opaque literal",
			doc: `
types:
  - name: bad
    type:
      struct:
        - int: 8
      opaque: true
`,
			want: "only a named struct can stay opaque",
		},
		{
			name: "zero lanes",
			doc: `
types:
  - name: bad
    type:
      vector:
        int: 8
`,
			want: "positive lane count",
		},
		{
			name: "missing name",
			doc: `
types:
  - type:
      int: 8
`,
			want: "needs a name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.Parse([]byte(tt.doc))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestBuildSingleNode(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()

	typ, err := fixture.Build(ctx, &fixture.Node{
		Array: &fixture.Node{Int: 32},
		Len:   4,
	})
	require.NoError(t, err)

	arr, ok := typ.(irtypes.ArrayType)
	require.True(t, ok, "built %T", typ)
	require.EqualValues(t, 4, arr.Count())
	require.Equal(t, "[4 x i32]", arr.String())
}

func TestMaterializeOpaqueNamedStruct(t *testing.T) {
	tab := memtable.New()
	ctx := tab.NewContext()

	typ, err := fixture.Build(ctx, &fixture.Node{Named: "fwd", Opaque: true})
	require.NoError(t, err)

	s, ok := typ.(irtypes.StructType)
	require.True(t, ok)
	require.True(t, s.IsOpaque())

	_, err = s.Elements()
	var opErr *irtypes.OpaqueStructError
	require.ErrorAs(t, err, &opErr)
}
