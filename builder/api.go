// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstforest/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves the builder
// configuration from bopts and applies cons in order. The first constructor
// error is wrapped as "BuildGraph: %w" and returned; no cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts ids first..first+n-1 (through cfg.idFn) and returns them.
func addVertices(g *core.Graph, cfg builderConfig, method string, first, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(first + i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge draws a weight and inserts u–v.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// addChain links ids[i]–ids[i+1] for consecutive ids.
func addChain(g *core.Graph, cfg builderConfig, method string, ids []string) error {
	for i := 1; i < len(ids); i++ {
		if err := addEdge(g, cfg, method, ids[i-1], ids[i]); err != nil {
			return err
		}
	}

	return nil
}
