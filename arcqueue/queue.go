// SPDX-License-Identifier: MIT

package arcqueue

import "errors"

// ErrEmptyQueue is returned by Peek and DeleteMin when the queue holds no arcs.
var ErrEmptyQueue = errors.New("arcqueue: queue is empty")

// node is a pairing-heap node: leftmost child, next sibling.
type node struct {
	arc     Arc
	seq     uint64
	child   *node
	sibling *node
}

// Queue is a mergeable min-priority queue of arcs ordered by Weight.
// The zero value is an empty queue ready to use.
type Queue struct {
	root *node
	size int
	seq  uint64 // last insertion sequence handed out

	scratch []*node // reused by DeleteMin's pairing pass
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Len returns the number of queued arcs.
// Complexity: O(1).
func (q *Queue) Len() int { return q.size }

// IsEmpty reports whether the queue holds no arcs.
// Complexity: O(1).
func (q *Queue) IsEmpty() bool { return q.size == 0 }

// Insert adds a to the queue.
// Complexity: O(1).
func (q *Queue) Insert(a Arc) {
	q.seq++
	q.root = meld(q.root, &node{arc: a, seq: q.seq})
	q.size++
}

// Peek returns the minimum arc without removing it.
// Complexity: O(1).
func (q *Queue) Peek() (Arc, error) {
	if q.root == nil {
		return Arc{}, ErrEmptyQueue
	}

	return q.root.arc, nil
}

// DeleteMin removes and returns the minimum arc.
//
// Steps:
//  1. Detach the root.
//  2. Pair its children left to right.
//  3. Meld the pairs right to left into the new root.
//
// Complexity: O(log n) amortized.
func (q *Queue) DeleteMin() (Arc, error) {
	if q.root == nil {
		return Arc{}, ErrEmptyQueue
	}
	top := q.root

	// 2. First pass: meld siblings pairwise.
	pairs := q.scratch[:0]
	for c := top.child; c != nil; {
		a := c
		b := a.sibling
		if b == nil {
			a.sibling = nil
			pairs = append(pairs, a)
			break
		}
		next := b.sibling
		a.sibling, b.sibling = nil, nil
		pairs = append(pairs, meld(a, b))
		c = next
	}

	// 3. Second pass: meld from the right.
	var r *node
	for i := len(pairs) - 1; i >= 0; i-- {
		r = meld(pairs[i], r)
		pairs[i] = nil
	}
	q.scratch = pairs[:0]

	q.root = r
	q.size--
	top.child = nil

	return top.arc, nil
}

// Merge melds other into q and leaves other empty.
// Merging a queue into itself, or a nil queue, is a no-op.
// Complexity: O(1).
func (q *Queue) Merge(other *Queue) {
	if other == nil || other == q || other.root == nil {
		return
	}
	q.root = meld(q.root, other.root)
	q.size += other.size
	if other.seq > q.seq {
		q.seq = other.seq
	}

	other.root = nil
	other.size = 0
}

// Drain removes every arc and returns them in ascending order.
// Complexity: O(n log n).
func (q *Queue) Drain() []Arc {
	out := make([]Arc, 0, q.size)
	for q.root != nil {
		a, _ := q.DeleteMin()
		out = append(out, a)
	}

	return out
}

// meld links two heaps: the larger root becomes the leftmost child of the smaller.
func meld(a, b *node) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if less(b, a) {
		a, b = b, a
	}
	b.sibling = a.child
	a.child = b

	return a
}

// less orders by weight, then by insertion sequence.
func less(x, y *node) bool {
	if x.arc.Weight != y.arc.Weight {
		return x.arc.Weight < y.arc.Weight
	}

	return x.seq < y.seq
}
