// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstforest/core"
)

const (
	methodIslands  = "Islands"
	minIslands     = 1
	minIslandNodes = 1
)

// Islands returns a Constructor for k disjoint paths of size vertices each.
// Island i uses indices i*size .. i*size+size-1. With k ≥ 2 the graph is
// disconnected by construction.
// Complexity: O(k·size).
func Islands(k, size int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minIslands {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodIslands, k, minIslands, ErrTooFewVertices)
		}
		if size < minIslandNodes {
			return fmt.Errorf("%s: size=%d < min=%d: %w", methodIslands, size, minIslandNodes, ErrTooFewVertices)
		}

		for i := 0; i < k; i++ {
			ids, err := addVertices(g, cfg, methodIslands, i*size, size)
			if err != nil {
				return err
			}
			if err = addChain(g, cfg, methodIslands, ids); err != nil {
				return err
			}
		}

		return nil
	}
}
