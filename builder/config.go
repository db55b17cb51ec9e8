// SPDX-License-Identifier: MIT
//
// Deterministic defaults:
//   • idFn     = DecimalID            ("0","1","2",...)
//   • rng      = nil                  (stochastic constructors require WithSeed/WithRand)
//   • weightFn = ConstantWeight(1)

package builder

import "math/rand"

// defaultConstWeight is the edge weight used when no WeightFn is configured.
const defaultConstWeight = int64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts in order (last wins) on top of the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DecimalID,
		weightFn: ConstantWeight(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight, or 0 for unweighted graphs.
func (cfg builderConfig) weight(weighted bool) int64 {
	if !weighted {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}
