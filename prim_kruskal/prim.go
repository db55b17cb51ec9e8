// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"github.com/katalvlaran/mstforest/arcqueue"
	"github.com/katalvlaran/mstforest/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing a single tree from root. Candidate arcs wait in an arcqueue.Queue;
// arcs whose far endpoint is already in the tree are discarded when popped.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil, directed, unweighted or carries directed edges.
//   - ErrEmptyRoot          : root == "" on a graph with two or more vertices.
//     With exactly one vertex an empty root selects that vertex.
//   - core.ErrVertexNotFound: root is not a vertex of the graph.
//   - ErrDisconnected       : |V| == 0, or some vertex is unreachable from root.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	switch len(vertices) {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		if root != "" && vertices[0] != root {
			return nil, 0, core.ErrVertexNotFound
		}
		return []core.Edge{}, 0, nil
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 2. Dense indices; visited is indexed like vertices.
	index := make(map[string]int, len(vertices))
	for i, id := range vertices {
		index[id] = i
	}
	visited := make([]bool, len(vertices))
	queue := arcqueue.New()

	// visit marks v and queues its arcs towards unvisited neighbors.
	visit := func(v int) error {
		visited[v] = true
		edges, err := graph.Neighbors(vertices[v])
		if err != nil {
			return err
		}
		for _, e := range edges {
			to := index[e.Other(vertices[v])]
			if !visited[to] {
				queue.Insert(arcqueue.Arc{From: v, To: to, Weight: e.Weight, EdgeID: e.ID})
			}
		}

		return nil
	}

	// 3. Grow from root.
	want := len(vertices) - 1
	mst := make([]core.Edge, 0, want)
	var total int64
	if err := visit(index[root]); err != nil {
		return nil, 0, err
	}
	for len(mst) < want {
		a, err := queue.DeleteMin()
		if err != nil {
			// Queue drained before every vertex was reached.
			return nil, 0, ErrDisconnected
		}
		if visited[a.To] {
			continue
		}
		mst = append(mst, core.Edge{ID: a.EdgeID, From: vertices[a.From], To: vertices[a.To], Weight: a.Weight})
		total += a.Weight
		if err = visit(a.To); err != nil {
			return nil, 0, err
		}
	}

	return mst, total, nil
}
