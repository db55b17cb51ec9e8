// SPDX-License-Identifier: MIT
//
// impl_path.go: Path(n) and Cycle(n).
//
// Contract:
//   • Vertices via cfg.idFn in ascending index order.
//   • Edges emitted i → i+1 (Cycle closes n-1 → 0).
//   • Weight: cfg.weightFn(cfg.rng) on weighted graphs, else 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstforest/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, 0, n)
		if err != nil {
			return err
		}

		return addChain(g, cfg, methodPath, ids)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, 0, n)
		if err != nil {
			return err
		}
		if err = addChain(g, cfg, methodCycle, ids); err != nil {
			return err
		}

		// Close the ring.
		return addEdge(g, cfg, methodCycle, ids[n-1], ids[0])
	}
}
