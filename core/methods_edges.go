// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/HasDirectedEdges,
//       plus nextEdgeID() and the numeric edge-ID ordering.
// Determinism:
//   - Edges() returns edges sorted by numeric Edge.ID ("e2" before "e10").
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under its read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Ensure both endpoints via AddVertex.
//  3. Under muEdgeAdj, enforce the multi-edge policy.
//  4. Store the edge, link from→to and, for undirected non-loops, to→from.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	g.muVert.RLock()
	weighted, loops, multi, directed := g.weighted, g.allowLoops, g.allowMulti, g.directed
	g.muVert.RUnlock()

	if !weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !loops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !multi && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: directed}
	g.edges[eid] = e

	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	// Mirror undirected
	if !directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// For undirected graphs the mirror makes HasEdge symmetric.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns all edges sorted by numeric ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether there exists at least one directed edge.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal).
// Safe for concurrent callers.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// LessEdgeID orders generated edge IDs numerically: shorter IDs first,
// then lexicographically. "e9" < "e10".
func LessEdgeID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// sortEdges sorts edges in place by numeric ID.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return LessEdgeID(es[i].ID, es[j].ID) })
}
