// SPDX-License-Identifier: MIT

// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal, Prim and the partial-tree builder via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/mst"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that MSTOptions.Method names no supported algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow one tree from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPartialTree selects mst.Build (merge partial trees round-robin).
const MethodPartialTree = "partial-tree"

// Methods lists every supported Method value.
var Methods = []string{MethodPartialTree, MethodPrim, MethodKruskal}

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method  - one of Methods.
//	Root    - start vertex ID for Prim; ignored otherwise. Empty means the smallest vertex ID.
//	Builder - options forwarded to mst.Build for MethodPartialTree.
type MSTOptions struct {
	Method  string
	Root    string
	Builder []mst.Option
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithBuilderOptions appends options passed to mst.Build.
func WithBuilderOptions(bopts ...mst.Option) Option {
	return func(opts *MSTOptions) {
		opts.Builder = append(opts.Builder, bopts...)
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal:     Kruskal(graph).
//	– MethodPrim:        Prim(graph, opts.Root), root defaulting to the smallest vertex ID.
//	– MethodPartialTree: mst.Build(graph, opts.Builder...); its sentinels are mapped to
//	                     ErrInvalidGraph and ErrDisconnected of this package.
//	– Otherwise:         ErrUnknownMethod.
//
// Returns the MST edges (empty for a single vertex), their total weight and an error.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		root := opts.Root
		if root == "" && graph != nil && graph.VertexCount() > 0 {
			root = graph.Vertices()[0]
		}
		return Prim(graph, root)
	case MethodPartialTree:
		edges, total, err := mst.Build(graph, opts.Builder...)
		switch {
		case errors.Is(err, mst.ErrInvalidGraph):
			return nil, 0, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
		case errors.Is(err, mst.ErrDisconnected):
			return nil, 0, fmt.Errorf("%w: %w", ErrDisconnected, err)
		}
		return edges, total, err
	default:
		return nil, 0, ErrUnknownMethod
	}
}
