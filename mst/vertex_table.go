// SPDX-License-Identifier: MIT

package mst

// vertexTable owns every vertex record of one builder run.
// Partial trees refer to vertices by index only.
//
// parent[v] == v marks v as the root of its partial tree. Merging re-parents
// exactly one root, so membership changes cost O(1) regardless of tree size.
type vertexTable struct {
	ids    []string       // index → vertex ID
	index  map[string]int // vertex ID → index
	parent []int          // index → parent index
}

// newVertexTable registers ids in order; every vertex starts as its own root.
func newVertexTable(ids []string) *vertexTable {
	t := &vertexTable{
		ids:    ids,
		index:  make(map[string]int, len(ids)),
		parent: make([]int, len(ids)),
	}
	for i, id := range ids {
		t.index[id] = i
		t.parent[i] = i
	}

	return t
}

// root returns the root index of the tree containing v.
// Path halving shortens chains on lookup only.
func (t *vertexTable) root(v int) int {
	for t.parent[v] != v {
		t.parent[v] = t.parent[t.parent[v]]
		v = t.parent[v]
	}

	return v
}

// link re-parents the root child under root.
func (t *vertexTable) link(child, root int) {
	t.parent[child] = root
}
