// SPDX-License-Identifier: MIT

package arcqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstforest/arcqueue"
)

// weightsOf projects a slice of arcs onto their weights.
func weightsOf(arcs []arcqueue.Arc) []int64 {
	out := make([]int64, len(arcs))
	for i, a := range arcs {
		out[i] = a.Weight
	}

	return out
}

// randomQueue fills a queue with n arcs of random weight in [0, maxW) and
// returns the inserted weights as well.
func randomQueue(r *rand.Rand, n int, maxW int64) (*arcqueue.Queue, []int64) {
	q := arcqueue.New()
	ws := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		w := r.Int63n(maxW)
		q.Insert(arcqueue.Arc{From: i, To: i + 1, Weight: w})
		ws = append(ws, w)
	}

	return q, ws
}

func TestQueue_Empty(t *testing.T) {
	q := arcqueue.New()
	assert.True(t, q.IsEmpty())
	assert.Zero(t, q.Len())

	_, err := q.Peek()
	assert.ErrorIs(t, err, arcqueue.ErrEmptyQueue)
	_, err = q.DeleteMin()
	assert.ErrorIs(t, err, arcqueue.ErrEmptyQueue)

	var zero arcqueue.Queue
	zero.Insert(arcqueue.Arc{Weight: 4})
	a, err := zero.DeleteMin()
	require.NoError(t, err)
	assert.EqualValues(t, 4, a.Weight)
}

func TestQueue_DeleteMinNondecreasing(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q, ws := randomQueue(r, 500, 50)
	require.Equal(t, 500, q.Len())

	peek, err := q.Peek()
	require.NoError(t, err)

	got := q.Drain()
	sort.Slice(ws, func(i, j int) bool { return ws[i] < ws[j] })

	assert.Equal(t, peek, got[0])
	if diff := cmp.Diff(ws, weightsOf(got)); diff != "" {
		t.Fatalf("drain order mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueue_TiesFollowInsertionOrder(t *testing.T) {
	q := arcqueue.New()
	q.Insert(arcqueue.Arc{From: 0, To: 1, Weight: 3, EdgeID: "first"})
	q.Insert(arcqueue.Arc{From: 0, To: 2, Weight: 1, EdgeID: "low"})
	q.Insert(arcqueue.Arc{From: 0, To: 3, Weight: 3, EdgeID: "second"})
	q.Insert(arcqueue.Arc{From: 0, To: 4, Weight: 3, EdgeID: "third"})

	var ids []string
	for _, a := range q.Drain() {
		ids = append(ids, a.EdgeID)
	}
	assert.Equal(t, []string{"low", "first", "second", "third"}, ids)
}

// TestQueue_MergeSortedConcatenation checks that draining a merged queue yields
// the sorted concatenation of both inputs.
func TestQueue_MergeSortedConcatenation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		a, wa := randomQueue(r, r.Intn(60), 30)
		b, wb := randomQueue(r, r.Intn(60), 30)

		a.Merge(b)
		assert.True(t, b.IsEmpty(), "merged queue must be consumed")
		assert.Equal(t, len(wa)+len(wb), a.Len())

		want := append(append([]int64{}, wa...), wb...)
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		if diff := cmp.Diff(want, weightsOf(a.Drain())); diff != "" {
			t.Fatalf("round %d: merge order mismatch (-want +got):\n%s", round, diff)
		}
	}
}

func TestQueue_MergeEdgeCases(t *testing.T) {
	q := arcqueue.New()
	q.Insert(arcqueue.Arc{Weight: 2})

	q.Merge(nil)
	q.Merge(q)
	q.Merge(arcqueue.New())
	assert.Equal(t, 1, q.Len())

	empty := arcqueue.New()
	empty.Merge(q)
	assert.Equal(t, 1, empty.Len())
	assert.Zero(t, q.Len())

	// Inserts after a merge lose ties against everything already queued.
	other := arcqueue.New()
	other.Insert(arcqueue.Arc{Weight: 2, EdgeID: "x"})
	other.Insert(arcqueue.Arc{Weight: 2, EdgeID: "y"})
	empty.Merge(other)
	empty.Insert(arcqueue.Arc{Weight: 2, EdgeID: "late"})
	got := empty.Drain()
	require.Len(t, got, 4)
	assert.Equal(t, "late", got[3].EdgeID)
}

func TestArc_EqualSymmetric(t *testing.T) {
	a := arcqueue.Arc{From: 1, To: 2, Weight: 5, EdgeID: "e1"}
	assert.True(t, a.Equal(a.Reversed()))
	assert.True(t, a.Equal(arcqueue.Arc{From: 2, To: 1, Weight: 5}))
	assert.False(t, a.Equal(arcqueue.Arc{From: 1, To: 2, Weight: 6}))
	assert.False(t, a.Equal(arcqueue.Arc{From: 1, To: 3, Weight: 5}))
	assert.Equal(t, "(1 2 5)", a.String())
}
