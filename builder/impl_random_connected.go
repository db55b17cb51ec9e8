// SPDX-License-Identifier: MIT
//
// impl_random_connected.go: RandomConnected(n, extra).
//
// Contract:
//   • n ≥ 1, 0 ≤ extra ≤ n(n-1)/2 − (n-1).
//   • A spanning path 0–1–…–(n-1) guarantees connectivity.
//   • extra further edges join distinct, not yet adjacent pairs chosen by cfg.rng.
//   • Sparse requests use rejection sampling; dense requests shuffle the full
//     candidate list so construction always terminates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstforest/core"
)

const (
	methodRandomConnected = "RandomConnected"
	minRandomNodes        = 1
	// rejectionAttempts bounds sampling tries per requested edge.
	rejectionAttempts = 64
)

// RandomConnected returns a Constructor for a connected random graph with
// n vertices and n-1+extra edges.
// Complexity: O(n + extra) expected when sparse, O(n²) when dense.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters.
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomNodes, ErrTooFewVertices)
		}
		maxExtra := n*(n-1)/2 - (n - 1)
		if extra < 0 || extra > maxExtra {
			return fmt.Errorf("%s: extra=%d not in [0,%d]: %w", methodRandomConnected, extra, maxExtra, ErrTooManyEdges)
		}
		if cfg.rng == nil && extra > 0 {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		// 2) Vertices and the spanning path.
		ids, err := addVertices(g, cfg, methodRandomConnected, 0, n)
		if err != nil {
			return err
		}
		if err = addChain(g, cfg, methodRandomConnected, ids); err != nil {
			return err
		}
		if extra == 0 {
			return nil
		}

		// 3) Extra edges.
		if 2*extra <= maxExtra {
			return sampleSparse(g, cfg, ids, extra)
		}

		return sampleDense(g, cfg, ids, extra)
	}
}

// sampleSparse draws random pairs and keeps those not yet adjacent.
func sampleSparse(g *core.Graph, cfg builderConfig, ids []string, extra int) error {
	n := len(ids)
	budget := rejectionAttempts * extra
	for added := 0; added < extra; {
		if budget == 0 {
			return fmt.Errorf("%s: %d of %d extra edges placed: %w", methodRandomConnected, added, extra, ErrConstructFailed)
		}
		budget--

		u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
		if u == v || g.HasEdge(ids[u], ids[v]) {
			continue
		}
		if err := addEdge(g, cfg, methodRandomConnected, ids[u], ids[v]); err != nil {
			return err
		}
		added++
	}

	return nil
}

// sampleDense enumerates every non-adjacent pair and picks extra of them
// with a partial Fisher–Yates shuffle.
func sampleDense(g *core.Graph, cfg builderConfig, ids []string, extra int) error {
	n := len(ids)
	type pair struct{ u, v int }
	candidates := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.HasEdge(ids[i], ids[j]) {
				candidates = append(candidates, pair{i, j})
			}
		}
	}

	for k := 0; k < extra; k++ {
		r := k + cfg.rng.Intn(len(candidates)-k)
		candidates[k], candidates[r] = candidates[r], candidates[k]
		p := candidates[k]
		if err := addEdge(g, cfg, methodRandomConnected, ids[p.u], ids[p.v]); err != nil {
			return err
		}
	}

	return nil
}
