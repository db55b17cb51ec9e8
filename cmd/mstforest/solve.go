// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstforest/bfs"
	"github.com/katalvlaran/mstforest/builder"
	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/mst"
	"github.com/katalvlaran/mstforest/prim_kruskal"
)

// methodAll runs every method and cross-checks the totals.
const methodAll = "all"

// errMethodsDisagree is returned when methods report different totals.
var errMethodsDisagree = errors.New("methods disagree on the minimum total weight")

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Generate a graph and compute its minimum spanning tree",
	Long: `Generates a weighted graph fixture and runs one or all MST methods on it.

  --shape        path, cycle, complete, random, islands
  --vertices     vertex count (islands: total across all islands)
  --extra-edges  edges added on top of the spanning path (random only)
  --islands      number of disjoint islands (islands only)
  --seed         RNG seed for weights and random edges
  --max-weight   weights are drawn uniformly from [1, max-weight]
  --method       partial-tree, prim, kruskal, all
  --workers      goroutines building per-vertex queues (partial-tree only)
  --edges        print every accepted edge

Prints one "method=... total=... arcs=..." line per method.`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().String("shape", "random", "graph shape: path, cycle, complete, random, islands")
	solveCmd.Flags().Int("vertices", 16, "number of vertices")
	solveCmd.Flags().Int("extra-edges", 24, "extra edges beyond the spanning path (random only)")
	solveCmd.Flags().Int("islands", 2, "number of disjoint islands (islands only)")
	solveCmd.Flags().Int64("seed", 1, "RNG seed")
	solveCmd.Flags().Int64("max-weight", 100, "upper bound of edge weights")
	solveCmd.Flags().String("method", prim_kruskal.MethodPartialTree, "method: partial-tree, prim, kruskal, all")
	solveCmd.Flags().Int("workers", 1, "initialization workers for partial-tree")
	solveCmd.Flags().Bool("edges", false, "print accepted edges")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	maxWeight := viper.GetInt64("max-weight")
	if maxWeight < 1 {
		return fmt.Errorf("max-weight must be at least 1, got %d", maxWeight)
	}
	workers := viper.GetInt("workers")
	if workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", workers)
	}
	methods, err := resolveMethods(viper.GetString("method"))
	if err != nil {
		return err
	}
	shape, err := resolveShape(viper.GetString("shape"), viper.GetInt("vertices"), viper.GetInt("extra-edges"), viper.GetInt("islands"))
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithSeed(viper.GetInt64("seed")),
			builder.WithWeightFn(builder.UniformWeight(1, maxWeight)),
		},
		shape,
	)
	if err != nil {
		return fmt.Errorf("generate graph: %w", err)
	}
	level.Info(logger).Log("msg", "graph generated", "shape", viper.GetString("shape"), "vertices", g.VertexCount(), "edges", g.EdgeCount())

	totals := make(map[string]int64, len(methods))
	for _, m := range methods {
		opts := prim_kruskal.MSTOptions{
			Method:  m,
			Builder: []mst.Option{mst.WithLogger(logger), mst.WithWorkers(workers)},
		}
		start := time.Now()
		edges, total, err := prim_kruskal.Compute(g, opts)
		if err != nil {
			if errors.Is(err, prim_kruskal.ErrDisconnected) {
				return disconnectedError(cmd.Context(), g, m, err)
			}
			return fmt.Errorf("%s: %w", m, err)
		}
		level.Info(logger).Log("msg", "spanning tree computed", "method", m, "total", total, "duration", time.Since(start))

		printResult(cmd.OutOrStdout(), m, edges, total, viper.GetBool("edges"))
		totals[m] = total
	}

	for _, m := range methods[1:] {
		if totals[m] != totals[methods[0]] {
			return fmt.Errorf("%w: %s=%d %s=%d", errMethodsDisagree, methods[0], totals[methods[0]], m, totals[m])
		}
	}

	return nil
}

// resolveMethods expands "all" and rejects unknown names.
func resolveMethods(method string) ([]string, error) {
	if method == methodAll {
		return prim_kruskal.Methods, nil
	}
	if !slices.Contains(prim_kruskal.Methods, method) {
		return nil, fmt.Errorf("%w: %q", prim_kruskal.ErrUnknownMethod, method)
	}

	return []string{method}, nil
}

// resolveShape maps a shape name to its builder constructor.
func resolveShape(shape string, vertices, extra, islands int) (builder.Constructor, error) {
	switch shape {
	case "path":
		return builder.Path(vertices), nil
	case "cycle":
		return builder.Cycle(vertices), nil
	case "complete":
		return builder.Complete(vertices), nil
	case "random":
		return builder.RandomConnected(vertices, extra), nil
	case "islands":
		if islands < 1 {
			return nil, fmt.Errorf("islands must be at least 1, got %d", islands)
		}
		return builder.Islands(islands, vertices/islands), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
}

// disconnectedError annotates err with the number of connected components.
func disconnectedError(ctx context.Context, g *core.Graph, method string, err error) error {
	comps, cerr := bfs.Components(ctx, g)
	if cerr != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	level.Warn(logger).Log("msg", "graph is disconnected", "components", len(comps), "largest", largest(comps))

	return fmt.Errorf("%s: %d components: %w", method, len(comps), err)
}

func largest(comps [][]string) int {
	n := 0
	for _, c := range comps {
		n = max(n, len(c))
	}

	return n
}

func printResult(w io.Writer, method string, edges []core.Edge, total int64, withEdges bool) {
	fmt.Fprintf(w, "method=%s total=%d arcs=%d\n", method, total, len(edges))
	if !withEdges {
		return
	}
	for _, e := range edges {
		fmt.Fprintf(w, "  %s %s-%s %d\n", e.ID, e.From, e.To, e.Weight)
	}
}
