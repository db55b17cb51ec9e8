// SPDX-License-Identifier: MIT

package mst_test

import (
	"bytes"
	"errors"
	"math/bits"
	"testing"

	"github.com/go-kit/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstforest/builder"
	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/mst"
	"github.com/katalvlaran/mstforest/prim_kruskal"
)

// edgeLit is a compact literal for test graphs.
type edgeLit struct {
	u, v string
	w    int64
}

// newGraph builds a weighted undirected graph from vertices and edges.
func newGraph(t *testing.T, vertices []string, edges []edgeLit) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// randomGraph builds a connected graph with weights drawn from [1, maxW].
func randomGraph(t *testing.T, seed int64, n, extra int, maxW int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeight(1, maxW))},
		builder.RandomConnected(n, extra),
	)
	require.NoError(t, err)

	return g
}

// dsu is a throwaway union-find keyed by vertex ID.
type dsu map[string]string

func (d dsu) find(x string) string {
	for d[x] != x {
		x = d[x]
	}

	return x
}

// union joins the sets of a and b and reports whether they were distinct.
func (d dsu) union(a, b string) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	d[ra] = rb

	return true
}

// assertSpanningTree checks that edges form a spanning tree of g with the given total.
func assertSpanningTree(t *testing.T, g *core.Graph, edges []core.Edge, total int64) {
	t.Helper()
	vertices := g.Vertices()
	require.Len(t, edges, len(vertices)-1)

	d := make(dsu, len(vertices))
	for _, v := range vertices {
		d[v] = v
	}
	var sum int64
	for _, e := range edges {
		assert.True(t, g.HasEdge(e.From, e.To), "edge %s-%s not in graph", e.From, e.To)
		assert.True(t, d.union(e.From, e.To), "edge %s-%s closes a cycle", e.From, e.To)
		sum += e.Weight
	}
	assert.Equal(t, total, sum)
}

// bruteForceMST enumerates every (V-1)-edge subset and returns the lightest spanning one.
func bruteForceMST(g *core.Graph) int64 {
	vertices := g.Vertices()
	edges := g.Edges()
	best := int64(-1)
	for mask := uint(0); mask < 1<<len(edges); mask++ {
		if bits.OnesCount(mask) != len(vertices)-1 {
			continue
		}
		d := make(dsu, len(vertices))
		for _, v := range vertices {
			d[v] = v
		}
		var sum int64
		acyclic := true
		for i, e := range edges {
			if mask&(1<<i) == 0 {
				continue
			}
			if !d.union(e.From, e.To) {
				acyclic = false
				break
			}
			sum += e.Weight
		}
		if acyclic && (best < 0 || sum < best) {
			best = sum
		}
	}

	return best
}

func TestBuild_Scenario(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C", "D"}, []edgeLit{
		{"A", "B", 1}, {"B", "C", 2}, {"C", "D", 3}, {"A", "D", 4}, {"B", "D", 5},
	})

	edges, total, err := mst.Build(g)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assertSpanningTree(t, g, edges, total)

	type pair struct{ From, To string }
	got := make([]pair, len(edges))
	for i, e := range edges {
		got[i] = pair{e.From, e.To}
	}
	want := []pair{{"A", "B"}, {"C", "B"}, {"D", "C"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("acceptance order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_SingleVertex(t *testing.T) {
	g := newGraph(t, []string{"solo"}, nil)

	edges, total, err := mst.Build(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestBuild_TwoIsolatedVertices(t *testing.T) {
	g := newGraph(t, []string{"A", "B"}, nil)

	edges, total, err := mst.Build(g)
	require.ErrorIs(t, err, mst.ErrDisconnected)
	assert.False(t, errors.Is(err, mst.ErrInvariant))
	assert.Nil(t, edges)
	assert.Zero(t, total)
}

func TestBuild_EmptyGraph(t *testing.T) {
	_, _, err := mst.Build(core.NewGraph(core.WithWeighted()))
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestBuild_InvalidGraph(t *testing.T) {
	directed := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, err := directed.AddEdge("A", "B", 1)
	require.NoError(t, err)

	unweighted := core.NewGraph()
	_, err = unweighted.AddEdge("A", "B", 0)
	require.NoError(t, err)

	for name, g := range map[string]*core.Graph{"nil": nil, "directed": directed, "unweighted": unweighted} {
		_, _, err := mst.Build(g)
		assert.ErrorIs(t, err, mst.ErrInvalidGraph, name)
	}
}

func TestBuild_Islands(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		nil,
		builder.Islands(3, 5),
	)
	require.NoError(t, err)

	edges, _, err := mst.Build(g)
	require.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Nil(t, edges)
}

func TestBuild_SelfLoopsSkipped(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	for _, e := range []edgeLit{{"A", "A", 0}, {"A", "B", 3}, {"B", "B", 1}, {"B", "C", 2}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	edges, total, err := mst.Build(g)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assertSpanningTree(t, g, edges, total)
}

func TestBuild_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := randomGraph(t, seed, 6, 6, 20)
		edges, total, err := mst.Build(g)
		require.NoError(t, err, "seed %d", seed)
		assertSpanningTree(t, g, edges, total)
		assert.Equal(t, bruteForceMST(g), total, "seed %d", seed)
	}
}

func TestBuild_MatchesKruskal(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := randomGraph(t, seed, 120, 400, 1_000_000)
		edges, total, err := mst.Build(g)
		require.NoError(t, err, "seed %d", seed)
		assertSpanningTree(t, g, edges, total)

		_, want, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, want, total, "seed %d", seed)
	}
}

func TestBuild_DuplicateWeights(t *testing.T) {
	// Weights in {1,2} force many ties.
	for seed := int64(1); seed <= 10; seed++ {
		g := randomGraph(t, seed, 40, 120, 2)
		edges, total, err := mst.Build(g)
		require.NoError(t, err)
		assertSpanningTree(t, g, edges, total)

		_, want, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, want, total)
	}

	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, builder.Complete(12))
	require.NoError(t, err)
	edges, total, err := mst.Build(g)
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assertSpanningTree(t, g, edges, total)
}

func TestBuild_WorkerParity(t *testing.T) {
	g := randomGraph(t, 42, 200, 600, 50)

	seqEdges, seqTotal, err := mst.Build(g)
	require.NoError(t, err)
	parEdges, parTotal, err := mst.Build(g, mst.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, seqTotal, parTotal)
	if diff := cmp.Diff(seqEdges, parEdges); diff != "" {
		t.Errorf("worker count changed the result (-seq +par):\n%s", diff)
	}
}

func TestBuilder_Reusable(t *testing.T) {
	b := mst.NewBuilder()
	g1 := randomGraph(t, 3, 30, 40, 9)
	g2 := randomGraph(t, 4, 30, 40, 9)

	_, t1, err := b.Run(g1)
	require.NoError(t, err)
	_, t2, err := b.Run(g2)
	require.NoError(t, err)
	_, again, err := b.Run(g1)
	require.NoError(t, err)

	assert.Equal(t, t1, again)
	_, want, err := prim_kruskal.Kruskal(g2)
	require.NoError(t, err)
	assert.Equal(t, want, t2)
}

func TestBuilder_InitializeThenExecute(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []edgeLit{{"A", "B", 2}, {"B", "C", 1}, {"A", "C", 5}})
	b := mst.NewBuilder()

	list, err := b.Initialize(g)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Len())
	for tree := range list.All() {
		assert.Equal(t, 1, tree.Size())
		assert.Equal(t, 2, tree.Arcs().Len())
		assert.True(t, tree.Contains(tree.Root()))
	}

	_, total, err := b.Execute(list)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, 1, list.Len())

	_, _, err = b.Execute(nil)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestBuilder_ExecuteConsumedList(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []edgeLit{{"A", "B", 2}, {"B", "C", 1}, {"A", "C", 5}})
	b := mst.NewBuilder()

	list, err := b.Initialize(g)
	require.NoError(t, err)
	_, _, err = b.Execute(list)
	require.NoError(t, err)

	edges, total, err := b.Execute(list)
	require.ErrorIs(t, err, mst.ErrInvariant)
	assert.ErrorIs(t, err, mst.ErrEmptyList)
	assert.False(t, errors.Is(err, mst.ErrDisconnected))
	assert.Nil(t, edges)
	assert.Zero(t, total)
}

func TestBuilder_Logging(t *testing.T) {
	var buf bytes.Buffer
	g := newGraph(t, []string{"A", "B"}, []edgeLit{{"A", "B", 7}})

	_, _, err := mst.Build(g, mst.WithLogger(log.NewLogfmtLogger(&buf)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="arc accepted"`)
	assert.Contains(t, out, "component=mst")
	assert.Contains(t, out, "weight=7")
	assert.Contains(t, out, `msg="spanning tree complete"`)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { mst.WithLogger(nil) })
	assert.Panics(t, func() { mst.WithWorkers(0) })

	opts := mst.DefaultOptions()
	assert.Equal(t, 1, opts.Workers)
	assert.NotNil(t, opts.Logger)
}
