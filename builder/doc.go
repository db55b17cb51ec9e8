// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options graph fixtures
// for tests, benchmarks, examples and the mstforest CLI.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves a builderConfig from BuilderOptions and applies Constructors in
// order. Constructors:
//
//   - Path(n)                 P_n, n ≥ 1
//   - Cycle(n)                C_n, n ≥ 3
//   - Complete(n)             K_n, n ≥ 1
//   - RandomConnected(n, m)   spanning path plus m random extra edges (needs rng)
//   - Islands(k, size)        k disjoint paths of size vertices (disconnected, k ≥ 2 for a real split)
//
// Options:
//
//   - WithSeed / WithRand     reproducible randomness
//   - WithIDScheme            index → vertex ID (DecimalID, ExcelColumnID)
//   - WithWeightFn            per-edge weight generator (ConstantWeight, UniformWeight)
//
// Guarantees:
//
//   - Same inputs, options and seed produce identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name. Option constructors panic on nil arguments.
//   - Weights are drawn only when the target graph is weighted.
package builder
