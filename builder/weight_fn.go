// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeight returns a WeightFn that always yields value.
func ConstantWeight(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeight returns a WeightFn sampling uniformly in [lo, hi] inclusive.
// Panics if hi < lo. With a nil rng it yields lo.
func UniformWeight(lo, hi int64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeight: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}
