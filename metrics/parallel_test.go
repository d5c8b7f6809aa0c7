// SPDX-License-Identifier: MIT

package metrics

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gfp/core"
)

// TestForEachChunk_Covers checks every index is visited exactly once for
// both the inline and the fanned-out path.
func TestForEachChunk_Covers(t *testing.T) {
	for _, n := range []int{0, 1, minChunk, 10*minChunk + 7} {
		hits := make([]int32, n)
		err := forEachChunk(context.Background(), n, 4, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		require.NoError(t, err)
		for i, h := range hits {
			require.EqualValues(t, 1, h, "n=%d index %d", n, i)
		}
	}
}

func TestForEachChunk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := forEachChunk(ctx, 10, 2, func(int, int) { called = true })
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}

func TestIntersectCount(t *testing.T) {
	require.Equal(t, 0, intersectCount(nil, []int{1, 2}))
	require.Equal(t, 2, intersectCount([]int{1, 3, 5, 7}, []int{2, 3, 7, 9}))
	require.Equal(t, 3, intersectCount([]int{1, 2, 3}, []int{1, 2, 3}))
}

func TestDisjointSet(t *testing.T) {
	ds := newDisjointSet(5)
	require.True(t, ds.union(0, 1))
	require.True(t, ds.union(3, 4))
	require.False(t, ds.union(1, 0))
	require.True(t, ds.union(1, 4))
	require.Equal(t, 2, ds.sets)
	require.Equal(t, ds.find(0), ds.find(3))
	require.NotEqual(t, ds.find(0), ds.find(2))
}

// TestComponentForest checks loops and parallel edges never over-merge.
func TestComponentForest(t *testing.T) {
	g, err := core.New(5, []core.Edge{{U: 0, V: 1}, {U: 1, V: 0}, {U: 2, V: 2}, {U: 3, V: 4}})
	require.NoError(t, err)

	ds := componentForest(g)
	require.Equal(t, 3, ds.sets)
	require.Equal(t, ds.find(0), ds.find(1))
	require.NotEqual(t, ds.find(2), ds.find(3))

	labels, count := ComponentLabels(g)
	require.Equal(t, []int{0, 0, 1, 2, 2}, labels)
	require.Equal(t, ds.sets, count)
	require.Equal(t, count, ComponentCount(g))
}

// TestExtract_SharedTriangles checks the combined pass reproduces the two
// separate extractions on graphs with triangles, loops and parallel edges.
func TestExtract_SharedTriangles(t *testing.T) {
	edges := []core.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}, {U: 2, V: 3},
		{U: 3, V: 3}, {U: 3, V: 4}, {U: 3, V: 4}, {U: 4, V: 2},
	}
	g, err := core.New(6, edges)
	require.NoError(t, err)
	ctx := context.Background()

	ms, gm, err := Extract(ctx, g, WithWorkers(2))
	require.NoError(t, err)

	wantMs, err := ExtractVertex(ctx, g, WithWorkers(2))
	require.NoError(t, err)
	wantGm, err := ExtractGlobal(ctx, g)
	require.NoError(t, err)

	require.Equal(t, wantMs, ms)
	require.Equal(t, wantGm, gm)
	require.InDelta(t, float64(CountTriangles(g)), gm.TriangleCount, 1e-9)

	_, _, err = Extract(ctx, nil)
	require.ErrorIs(t, err, ErrNilGraph)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = Extract(cancelled, g)
	require.ErrorIs(t, err, context.Canceled)
}
