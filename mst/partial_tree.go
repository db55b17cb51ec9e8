// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/mstforest/arcqueue"
)

// PartialTree is one connected fragment of the spanning tree under
// construction: a root vertex plus the queue of arcs leaving its vertices.
//
// Arcs that became internal after a merge stay queued; they are discarded
// lazily when extracted (see nextExternalArc).
type PartialTree struct {
	table *vertexTable
	root  int
	size  int // number of vertices in the fragment
	arcs  *arcqueue.Queue
}

// newPartialTree creates a single-vertex fragment with an empty arc queue.
func newPartialTree(table *vertexTable, root int) *PartialTree {
	return &PartialTree{
		table: table,
		root:  root,
		size:  1,
		arcs:  arcqueue.New(),
	}
}

// Root returns the ID of the fragment's designated root vertex.
func (t *PartialTree) Root() string { return t.table.ids[t.root] }

// Size returns the number of vertices in the fragment.
func (t *PartialTree) Size() int { return t.size }

// Arcs returns the fragment's arc queue.
func (t *PartialTree) Arcs() *arcqueue.Queue { return t.arcs }

// Contains reports whether vertex id currently belongs to the fragment.
func (t *PartialTree) Contains(id string) bool {
	v, ok := t.table.index[id]

	return ok && t.table.root(v) == t.root
}

// Merge absorbs other into t: other's root is re-parented under t's root and
// other's arcs are melded into t's queue. other must not be used afterwards.
// Merging nil or t itself is a no-op.
//
// Complexity: O(1), independent of either fragment's vertex count.
func (t *PartialTree) Merge(other *PartialTree) {
	if other == nil || other == t {
		return
	}
	t.table.link(other.root, t.root)
	t.arcs.Merge(other.arcs)
	t.size += other.size
	other.size = 0
}

// nextExternalArc pops arcs until one leaves the fragment.
// Arcs whose far endpoint already resolves to t's root would close a cycle
// and are dropped. ok is false once the queue is exhausted.
func (t *PartialTree) nextExternalArc() (arc arcqueue.Arc, discarded int, ok bool) {
	for {
		a, err := t.arcs.DeleteMin()
		if err != nil {
			return arcqueue.Arc{}, discarded, false
		}
		if t.table.root(a.To) != t.root {
			return a, discarded, true
		}
		discarded++
	}
}

// String renders the fragment as "root=<id> size=<n> arcs=<k>".
func (t *PartialTree) String() string {
	return fmt.Sprintf("root=%s size=%d arcs=%d", t.Root(), t.size, t.arcs.Len())
}
