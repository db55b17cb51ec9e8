// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mstforest/arcqueue"
	"github.com/katalvlaran/mstforest/core"
)

// Builder computes minimum spanning trees by merging partial trees.
// A Builder holds only configuration and may be reused; each Run owns its
// own vertex table, trees and worklist.
type Builder struct {
	opts   Options
	logger log.Logger
}

// NewBuilder returns a Builder configured by opts on top of DefaultOptions.
func NewBuilder(opts ...Option) *Builder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder{
		opts:   o,
		logger: log.With(o.Logger, "component", "mst"),
	}
}

// Build is shorthand for NewBuilder(opts...).Run(g).
func Build(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	return NewBuilder(opts...).Run(g)
}

// Run validates g, seeds one partial tree per vertex and merges them into a
// minimum spanning tree.
//
// Returns the accepted arcs in acceptance order (From is the endpoint inside
// the tree that extracted the arc, ID is the source edge ID) and their total
// weight.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil, directed or unweighted.
//   - ErrDisconnected : |V| == 0, or some tree exhausted its arcs while others remained.
//   - ErrInvariant    : internal bug; wraps ErrEmptyList or ErrTreeNotFound.
//
// Complexity: O(E log E) time, O(V + E) memory.
func (b *Builder) Run(g *core.Graph) ([]core.Edge, int64, error) {
	list, err := b.Initialize(g)
	if err != nil {
		return nil, 0, err
	}

	return b.Execute(list)
}

// Initialize creates a singleton partial tree for every vertex of g (in
// g.Vertices() order) and queues one arc per incident edge, oriented from the
// vertex to its neighbor. Self-loops are skipped.
//
// With Workers > 1 the per-vertex queues are built concurrently; the returned
// list order does not depend on the worker count.
//
// Postcondition: list.Len() == g.VertexCount().
func (b *Builder) Initialize(g *core.Graph) (*PartialTreeList, error) {
	// 1. Validate that graph is non-nil, weighted, undirected and has no directed edges.
	if g == nil || !g.Weighted() || g.Directed() || g.HasDirectedEdges() {
		return nil, ErrInvalidGraph
	}

	// 2. Register vertices in sorted order for determinism.
	ids := g.Vertices()
	table := newVertexTable(ids)
	trees := make([]*PartialTree, len(ids))

	// 3. Build each tree's arc queue from the symmetric adjacency view.
	seed := func(v int) error {
		edges, err := g.Neighbors(ids[v])
		if err != nil {
			return fmt.Errorf("%s: Neighbors(%s): %w", methodInitialize, ids[v], err)
		}
		tree := newPartialTree(table, v)
		for _, e := range edges {
			other := e.Other(ids[v])
			if other == ids[v] {
				continue // self-loop
			}
			to, ok := table.index[other]
			if !ok {
				return fmt.Errorf("%s: neighbor %s of %s: %w", methodInitialize, other, ids[v], core.ErrVertexNotFound)
			}
			tree.arcs.Insert(arcqueue.Arc{From: v, To: to, Weight: e.Weight, EdgeID: e.ID})
		}
		trees[v] = tree

		return nil
	}

	if b.opts.Workers > 1 && len(ids) > 1 {
		var eg errgroup.Group
		eg.SetLimit(b.opts.Workers)
		for v := range ids {
			eg.Go(func() error { return seed(v) })
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for v := range ids {
			if err := seed(v); err != nil {
				return nil, err
			}
		}
	}

	// 4. Append every tree to the worklist.
	list := newPartialTreeList(table, len(trees))
	for _, tree := range trees {
		list.Append(tree)
	}
	level.Debug(b.logger).Log("msg", "partial trees initialized", "vertices", len(ids), "workers", b.opts.Workers)

	return list, nil
}

// Execute runs the merge loop over a list produced by Initialize.
//
// Steps:
//  1. Remove the front tree T.
//  2. Pop T's arcs until one leads outside T; internal arcs are discarded.
//  3. If T has no such arc: ErrDisconnected while other trees remain; a lone
//     exhausted tree short of |V|-1 arcs is an invariant violation.
//  4. Accept the arc, remove the tree holding its far endpoint, merge it into T
//     and append T at the rear.
//  5. Stop once |V|-1 arcs are accepted.
//
// An empty list yields ErrDisconnected, matching the |V| == 0 convention.
// A list is consumed by Execute; running it again, or removing trees from it
// beforehand, yields ErrInvariant.
func (b *Builder) Execute(list *PartialTreeList) ([]core.Edge, int64, error) {
	if list == nil || list.Len() == 0 {
		return nil, 0, ErrDisconnected
	}

	var (
		table     = list.table
		want      = len(table.ids) - 1
		mst       = make([]core.Edge, 0, want)
		total     int64
		discarded int
	)
	for len(mst) < want {
		// 1. Next tree to grow.
		tree, err := list.RemoveFront()
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w: %w", methodExecute, ErrInvariant, err)
		}

		// 2. Cheapest arc leaving the tree.
		arc, skipped, ok := tree.nextExternalArc()
		discarded += skipped
		if !ok {
			// 3. Exhausted tree. A lone tree short of |V|-1 arcs means the
			// list was already consumed or tampered with.
			if list.Len() == 0 {
				return nil, 0, fmt.Errorf("%s: %d of %d arcs accepted: %w: %w",
					methodExecute, len(mst), want, ErrInvariant, ErrEmptyList)
			}
			level.Debug(b.logger).Log("msg", "partial tree exhausted", "root", tree.Root(), "size", tree.Size(), "remaining", list.Len())

			return nil, 0, fmt.Errorf("%s: tree rooted at %s spans %d of %d vertices: %w",
				methodExecute, tree.Root(), tree.Size(), len(table.ids), ErrDisconnected)
		}

		// 4. Accept and merge.
		other, err := list.removeContaining(arc.To)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w: %w", methodExecute, ErrInvariant, err)
		}
		tree.Merge(other)
		list.Append(tree)

		mst = append(mst, core.Edge{
			ID:     arc.EdgeID,
			From:   table.ids[arc.From],
			To:     table.ids[arc.To],
			Weight: arc.Weight,
		})
		total += arc.Weight
		level.Debug(b.logger).Log("msg", "arc accepted", "from", table.ids[arc.From], "to", table.ids[arc.To], "weight", arc.Weight)
	}

	level.Debug(b.logger).Log("msg", "spanning tree complete", "vertices", len(table.ids), "arcs", len(mst), "total", total, "discarded", discarded)

	return mst, total, nil
}
