// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mstforest/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from startID, ignoring edge weights.
// Undirected edges are followed both ways; directed edges only forward.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, context errors and OnVisit errors (wrapped).
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	return newWalker(g, o, nil).run(startID)
}

// newWalker prepares a walker; visited may be shared across runs.
func newWalker(g *core.Graph, o BFSOptions, visited map[string]bool) *walker {
	if visited == nil {
		visited = make(map[string]bool)
	}

	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: visited,
		res: &BFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
}

// run seeds the queue with start and drains it.
func (w *walker) run(start string) (*BFSResult, error) {
	w.enqueue(start, 0, "")
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.res, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return w.res, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// enqueueNeighbors enqueues every unseen neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if nbr := e.Other(item.id); !w.visited[nbr] {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}
