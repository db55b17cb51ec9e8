// SPDX-License-Identifier: MIT

// Package mst computes the Minimum Spanning Tree (MST) of an undirected,
// weighted *core.Graph by merging partial trees.
//
// What & How
//
//   - Initialize: every vertex becomes a single-vertex PartialTree whose
//     arcqueue.Queue holds one arc (vertex → neighbor, weight) per incident edge.
//     All trees go into a PartialTreeList, a ring-buffer worklist.
//   - Execute: take the front tree T, pop its cheapest arc. Arcs whose far end
//     already belongs to T would close a cycle and are discarded. The first arc
//     leaving T is accepted; the tree on the other side is removed from the
//     list, merged into T (re-parent one root, meld two queues) and T goes to
//     the rear of the list. The loop ends after |V|−1 accepted arcs.
//
// Tree membership lives in an owned vertex table (index → parent index).
// Merging re-parents one root, so a merge costs O(1) plus the queue meld,
// never O(size of either tree).
//
// Complexity:
//
//   - Time:  O(E log E + V²). Every arc is inserted once and popped at most
//     once; RemoveContaining scans up to O(V) trees per accepted arc.
//   - Space: O(V + E).
//
// Error Conditions
//
//   - ErrInvalidGraph  nil, directed or unweighted graph.
//   - ErrDisconnected  empty graph, or a tree ran out of outgoing arcs while
//     other trees remained. Never accompanied by a partial result.
//   - ErrInvariant     internal inconsistency, always together with
//     ErrEmptyList or ErrTreeNotFound. Indicates a bug.
//
// The accepted arcs are returned in acceptance order, not weight order.
// With duplicate weights the result is some MST; ties are broken by queue
// insertion order, which follows sorted vertex IDs and ascending edge IDs.
//
// Concurrency: a run is single-threaded except for the optional parallel
// construction of the initial arc queues (WithWorkers). The graph must not be
// mutated while a run is in progress. Debug records are emitted through a
// go-kit logger (WithLogger).
package mst
