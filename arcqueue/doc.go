// SPDX-License-Identifier: MIT

// Package arcqueue provides Arc, a weighted undirected edge candidate between
// two vertex indices, and Queue, a mergeable min-priority queue of arcs.
//
// Queue is a pairing heap:
//
//   - Insert   O(1)
//   - Peek     O(1)
//   - Merge    O(1), consumes the argument
//   - DeleteMin O(log n) amortized (two-pass pairing)
//
// Arcs are ordered ascending by Weight. Equal weights are ordered by insertion
// sequence: within one queue the earlier insert wins. After Merge the surviving
// queue's sequence counter is advanced past both inputs, so later inserts still
// lose ties against everything already queued. The relative order of tied arcs
// that came from different queues is stable but otherwise unspecified.
//
// Repeated DeleteMin calls therefore yield a nondecreasing weight sequence, and
// draining a merged queue yields the sorted concatenation of both inputs.
//
// A Queue is not safe for concurrent use.
package arcqueue
