// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over a core.Graph and a
// connected-components partition built on it.
//
// Edge weights are ignored: BFS counts hops. Neighbors are visited in edge-ID
// order, so Order and Components are deterministic.
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
//	comps, err := bfs.Components(ctx, g) // len(comps) == 1 ⇔ spanning tree exists
package bfs
