// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mstforest/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by scanning edges in ascending weight and joining components with a disjoint set.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil, directed, unweighted or carries directed edges.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and the graph is not connected.
//
// Steps:
//  1. Validate the graph.
//  2. Map sorted vertex IDs to dense indices; |V| == 1 is a trivial empty MST.
//  3. Collect non-loop edges and stable-sort them by weight (ties keep edge-ID order).
//  4. Accept every edge whose endpoints lie in different sets; stop at |V|-1 edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Dense indices.
	vertices := graph.Vertices()
	switch len(vertices) {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		return []core.Edge{}, 0, nil
	}
	index := make(map[string]int, len(vertices))
	for i, id := range vertices {
		index[id] = i
	}

	// 3. Candidate edges.
	all := graph.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Union-find scan.
	sets := newDisjointSet(len(vertices))
	want := len(vertices) - 1
	mst := make([]core.Edge, 0, want)
	var total int64
	for _, e := range edges {
		if !sets.union(index[e.From], index[e.To]) {
			continue
		}
		mst = append(mst, *e)
		total += e.Weight
		if len(mst) == want {
			return mst, total, nil
		}
	}

	return nil, 0, ErrDisconnected
}

// disjointSet is an index-based union-find with path compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []uint8
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the representative of x, compressing the path behind it.
func (d *disjointSet) find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}

	return root
}

// union joins the sets of a and b; false means they were already joined.
func (d *disjointSet) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}

	return true
}
