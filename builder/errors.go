// SPDX-License-Identifier: MIT
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with "%s: ...: %w" (method tag first).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyEdges indicates more extra edges were requested than a simple graph can hold.
var ErrTooManyEdges = errors.New("builder: too many edges requested")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not complete a topology
// (nil constructor, exhausted sampling attempts).
var ErrConstructFailed = errors.New("builder: construction failed")
