// SPDX-License-Identifier: MIT

package bfs

import (
	"context"

	"github.com/katalvlaran/mstforest/core"
)

// Components partitions the vertices of an undirected graph into connected
// components. Components are ordered by their smallest vertex ID and list
// vertices in BFS order from it.
//
// A graph has a spanning tree iff it has exactly one component.
//
// Complexity: O(V + E).
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	WithContext(ctx)(&o)

	visited := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}
		res, err := newWalker(g, o, visited).run(id)
		if err != nil {
			return nil, err
		}
		out = append(out, res.Order)
	}

	return out, nil
}
