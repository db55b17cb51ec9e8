// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory Graph that every algorithm
// in mstforest consumes.
//
// The Graph G = (V,E) keeps:
//
//   - a vertex catalog keyed by string ID (muVert)
//   - an edge catalog keyed by Edge.ID plus a nested adjacency index
//     adjacencyList[from][to][edgeID] = struct{}{} (muEdgeAdj)
//
// Undirected edges are stored once in the catalog and mirrored in the
// adjacency index, so Neighbors(u) and Neighbors(v) both report an edge u–v.
// This is the symmetric adjacency view the spanning-tree builders rely on.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)  default orientation of new edges
//	– WithWeighted()                      permit non-zero weights
//	– WithMultiEdges()                    permit parallel edges
//	– WithLoops()                         permit self-loops
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	Vertices() []string                                         // O(V·log V), sorted
//	VertexCount() int                                           // O(1)
//	AddEdge(from, to string, weight int64) (string, error)      // O(1) amortized
//	HasEdge(from, to string) bool                               // O(1)
//	Edges() []*Edge                                             // O(E·log E), by ID
//	EdgeCount() int                                             // O(1)
//	Neighbors(id string) ([]*Edge, error)                       // O(d·log d), by ID
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// Edge IDs are generated atomically as "e1", "e2", ... and order numerically.
package core
