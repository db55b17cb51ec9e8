// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/mstforest/core"
)

// minListCapacity is the smallest ring allocated on first Append.
const minListCapacity = 4

// PartialTreeList is the worklist of partial trees not yet merged into the
// result. It is a ring buffer used as a deque: trees leave from the front and
// re-enter at the rear.
type PartialTreeList struct {
	table *vertexTable
	buf   []*PartialTree
	head  int
	size  int
}

// newPartialTreeList returns an empty list over table with room for capacity trees.
func newPartialTreeList(table *vertexTable, capacity int) *PartialTreeList {
	return &PartialTreeList{
		table: table,
		buf:   make([]*PartialTree, capacity),
	}
}

// Len returns the number of trees in the list.
// Complexity: O(1).
func (l *PartialTreeList) Len() int { return l.size }

// Append adds tree at the rear.
// Complexity: O(1) amortized.
func (l *PartialTreeList) Append(tree *PartialTree) {
	if l.size == len(l.buf) {
		l.grow()
	}
	l.buf[(l.head+l.size)%len(l.buf)] = tree
	l.size++
}

// RemoveFront removes and returns the first tree.
//
// Errors:
//   - ErrEmptyList: if the list has no trees.
//
// Complexity: O(1).
func (l *PartialTreeList) RemoveFront() (*PartialTree, error) {
	if l.size == 0 {
		return nil, ErrEmptyList
	}
	tree := l.buf[l.head]
	l.buf[l.head] = nil
	l.head = (l.head + 1) % len(l.buf)
	l.size--

	return tree, nil
}

// RemoveContaining removes and returns the tree holding vertex id.
//
// Trees examined and rejected are rotated to the rear in their original
// relative order; at most Len() trees are examined.
//
// Errors:
//   - core.ErrVertexNotFound: if id is not a vertex of the underlying graph.
//   - ErrTreeNotFound: if no tree in the list contains id.
//
// Complexity: O(Len()).
func (l *PartialTreeList) RemoveContaining(id string) (*PartialTree, error) {
	v, ok := l.table.index[id]
	if !ok {
		return nil, fmt.Errorf("RemoveContaining(%s): %w", id, core.ErrVertexNotFound)
	}

	return l.removeContaining(v)
}

// removeContaining compares each tree's root against root(v), popping from the
// front and re-appending rejects.
func (l *PartialTreeList) removeContaining(v int) (*PartialTree, error) {
	target := l.table.root(v)
	for n := l.size; n > 0; n-- {
		tree, _ := l.RemoveFront()
		if tree.root == target {
			return tree, nil
		}
		l.Append(tree)
	}

	return nil, fmt.Errorf("vertex %q: %w", l.table.ids[v], ErrTreeNotFound)
}

// All returns a front-to-rear traversal of the trees. The sequence is lazy and
// may be ranged over repeatedly; the list must not be modified while ranging.
func (l *PartialTreeList) All() iter.Seq[*PartialTree] {
	return func(yield func(*PartialTree) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(l.buf[(l.head+i)%len(l.buf)]) {
				return
			}
		}
	}
}

// grow doubles the ring and unrolls it so head is at index 0.
func (l *PartialTreeList) grow() {
	capacity := 2 * len(l.buf)
	if capacity < minListCapacity {
		capacity = minListCapacity
	}
	buf := make([]*PartialTree, capacity)
	for i := 0; i < l.size; i++ {
		buf[i] = l.buf[(l.head+i)%len(l.buf)]
	}
	l.buf = buf
	l.head = 0
}
