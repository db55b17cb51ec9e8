// SPDX-License-Identifier: MIT

package mst

import (
	"errors"

	"github.com/go-kit/log"
)

// ErrInvalidGraph indicates that the builder requires an undirected, weighted graph.
// Returned when graph is nil, directed, unweighted, or carries directed edges.
var ErrInvalidGraph = errors.New("mst: requires undirected, weighted graph")

// ErrDisconnected indicates that some partial tree ran out of outgoing arcs while
// other trees were still waiting to be merged, so no spanning tree exists.
// It is the one expected, caller-recoverable failure of the builder.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrInvariant marks internal consistency failures. It is always returned
// together with a more specific sentinel (ErrEmptyList, ErrTreeNotFound).
// Seeing it means a bug, not bad input; do not retry.
var ErrInvariant = errors.New("mst: invariant violated")

// ErrEmptyList is returned by PartialTreeList.RemoveFront on an empty list.
var ErrEmptyList = errors.New("mst: partial tree list is empty")

// ErrTreeNotFound is returned by PartialTreeList.RemoveContaining when no tree
// in the list contains the queried vertex.
var ErrTreeNotFound = errors.New("mst: no partial tree contains vertex")

// Method tags used as error context.
const (
	methodInitialize = "Initialize"
	methodExecute    = "Execute"
)

// defaultWorkers keeps initialization sequential unless asked otherwise.
const defaultWorkers = 1

// Options configures a Builder.
//
//	Logger  – go-kit logger receiving debug records; defaults to a no-op logger.
//	Workers – goroutines used to build per-vertex arc queues during Initialize.
//	          The execute phase is always sequential.
type Options struct {
	Logger  log.Logger
	Workers int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a silent, sequential configuration.
func DefaultOptions() Options {
	return Options{
		Logger:  log.NewNopLogger(),
		Workers: defaultWorkers,
	}
}

// WithLogger routes builder debug records to l. Panics on nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("mst: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithWorkers sets the initialization fan-out. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("mst: WithWorkers(n < 1)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}
