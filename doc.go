// SPDX-License-Identifier: MIT

// Package mstforest computes minimum spanning trees of undirected, weighted
// graphs by repeatedly merging partial trees.
//
// Every vertex starts as its own partial tree holding a priority queue of
// the arcs that leave it. The builder takes the tree at the front of a
// worklist, extracts its cheapest arc that leads outside the tree, merges the
// tree on the other side and sends the result to the back of the worklist.
// Arcs that became internal are dropped lazily when they reach the top.
//
// Layout:
//
//	core/          graph container: vertices, edges, symmetric adjacency
//	arcqueue/      mergeable pairing-heap priority queue of arcs
//	mst/           partial trees, the worklist and the Builder
//	prim_kruskal/  Prim and Kruskal, plus Compute dispatching all three methods
//	builder/       deterministic graph fixtures (path, cycle, complete, random, islands)
//	bfs/           breadth-first traversal and connected components
//	cmd/mstforest/ command-line front end
//
// Quick start:
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	edges, total, err := mst.Build(g)
package mstforest
