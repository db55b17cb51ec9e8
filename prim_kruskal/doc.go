// SPDX-License-Identifier: MIT

// Package prim_kruskal provides the two textbook Minimum Spanning Tree algorithms on an
// undirected, weighted *core.Graph, and a Compute dispatcher that also reaches the
// partial-tree builder in package mst.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//     Sort all edges by weight and join components with an index-based union-find
//     (path compression, union by rank). Stops once |V|−1 edges are accepted.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g *core.Graph, root string) ([]core.Edge, int64, error)
//     Grow one tree from root. Candidate arcs live in a pairing heap (arcqueue.Queue)
//     and arcs leading back into the tree are dropped lazily on extraction.
//     Time O(E log E), space O(V + E).
//
//   - Compute(g, MSTOptions) selects MethodKruskal, MethodPrim or MethodPartialTree.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil, directed, unweighted or carries directed edges.
//   - ErrEmptyRoot (Prim only): root == "" and |V| ≥ 2.
//   - core.ErrVertexNotFound (Prim only): root is not in the graph.
//   - ErrDisconnected: |V| == 0, or the graph is not connected.
//   - ErrUnknownMethod (Compute only).
//
// Determinism: vertex lists are sorted, graph.Edges() is ordered by edge ID, and
// Kruskal uses a stable sort, so equal weights always resolve the same way.
//
// All three methods return the same total weight on any connected input; the
// package tests use this to cross-check mst.Build.
package prim_kruskal
