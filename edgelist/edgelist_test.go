// SPDX-License-Identifier: MIT
// Package: gfp/edgelist

package edgelist_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gfp/builder"
	"github.com/katalvlaran/gfp/core"
	"github.com/katalvlaran/gfp/edgelist"
)

func TestRead_Formats(t *testing.T) {
	t.Parallel()

	const input = `# square with a tail
% matrix-market style comment
a b
b,c,0.5
c	d   extra
d a

e
a a
`
	g, labels, err := edgelist.Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 5, g.EdgeCount())
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, labels.Names())

	id, ok := labels.ID("c")
	require.True(t, ok)
	require.Equal(t, 2, id)
	require.Equal(t, "e", labels.Name(4))
	require.Equal(t, "", labels.Name(5))
	_, ok = labels.ID("zz")
	require.False(t, ok)

	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(3, 0))
	require.Zero(t, g.Degree(4))
	// a: b, d and a loop counted twice.
	require.Equal(t, 4, g.Degree(0))
}

func TestRead_ParallelEdges(t *testing.T) {
	t.Parallel()

	g, _, err := edgelist.Read(strings.NewReader("1 2\n2 1\n1 2\n"))
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, 3, g.Degree(0))
	require.Equal(t, 1, g.SimpleDegree(0))
}

func TestRead_Empty(t *testing.T) {
	t.Parallel()

	g, labels, err := edgelist.Read(strings.NewReader("# nothing\n\n"))
	require.NoError(t, err)
	require.Zero(t, g.VertexCount())
	require.Zero(t, labels.Len())
}

func TestRead_Malformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"a b\n,b\n", "a,,c\n", " , \n", ",\n"} {
		_, _, err := edgelist.Read(strings.NewReader(in))
		require.ErrorIs(t, err, edgelist.ErrMalformedLine, "input %q", in)
	}

	_, _, err := edgelist.Read(strings.NewReader("a b\n,c\n"))
	require.ErrorContains(t, err, "line 2")
}

func TestRead_CommaDeclaration(t *testing.T) {
	t.Parallel()

	g, labels, err := edgelist.Read(strings.NewReader("New York,\nBoston, Chicago\n"))
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, []string{"New York", "Boston", "Chicago"}, labels.Names())
	require.Zero(t, g.Degree(0))
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "triangle.txt")
	require.NoError(t, os.WriteFile(path, []byte("x y\ny z\nz x\n"), 0o600))

	g, _, err := edgelist.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())

	_, _, err = edgelist.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	orig, err := builder.Build(builder.Path(3), builder.Empty(2), builder.Cycle(4))
	require.NoError(t, err)
	// Reverse-ordered endpoints and a loop exercise id preservation.
	orig, err = core.New(orig.VertexCount()+1, append(orig.Edges(), core.Edge{U: 9, V: 0}, core.Edge{U: 6, V: 6}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, orig, nil))

	got, labels, err := edgelist.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, orig.VertexCount(), got.VertexCount())
	require.Equal(t, orig.Edges(), got.Edges())
	for v := 0; v < got.VertexCount(); v++ {
		id, ok := labels.ID(labels.Name(v))
		require.True(t, ok)
		require.Equal(t, v, id)
	}
}

func TestWrite_Labels(t *testing.T) {
	t.Parallel()

	g, labels, err := edgelist.Read(strings.NewReader("b a\nc\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, g, labels))
	require.Equal(t, "b\nb a\nc\n", buf.String())

	require.ErrorIs(t, edgelist.Write(&buf, nil, nil), core.ErrInvalidGraph)
}

// TestWrite_LabelRoundTrip feeds labeled inputs through Write and Read and
// expects the same labels, ids and edges back.
func TestWrite_LabelRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"spaced labels":   "New York, Boston\nBoston, Chicago\n",
		"spaced isolated": "Salt Lake City,\nNew York, Boston\n",
		"spaced later":    "a b\nb, Los Angeles\nLos Angeles, a\n",
		"tabs inside":     "x\ty, z\n",
		"hash inside":     "a b#c\nb#c d\n",
		"loop and repeat": "San Jose, San Jose\nSan Jose, Fresno\nFresno, San Jose\n",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g, labels, err := edgelist.Read(strings.NewReader(in))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, edgelist.Write(&buf, g, labels))

			got, gotLabels, err := edgelist.Read(&buf)
			require.NoError(t, err)
			require.Equal(t, labels.Names(), gotLabels.Names())
			require.Equal(t, g.VertexCount(), got.VertexCount())
			require.Equal(t, g.Edges(), got.Edges())
		})
	}
}

// TestWrite_UnwritableLabels rejects labels that Read would drop or split,
// and leaves the writer untouched.
func TestWrite_UnwritableLabels(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"leading hash":    "a #hash\n",
		"leading percent": "a %pct\n",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g, labels, err := edgelist.Read(strings.NewReader(in))
			require.NoError(t, err)

			var buf bytes.Buffer
			err = edgelist.Write(&buf, g, labels)
			require.ErrorIs(t, err, edgelist.ErrMalformedLine)
			require.ErrorContains(t, err, "vertex 1")
			require.Zero(t, buf.Len())
		})
	}
}
