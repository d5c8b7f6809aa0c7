// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// api.go - public entry point and the vertex/edge draft constructors write to.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order on
//     a fresh Draft, then freezes it with core.New.
//   - Every constructor appends its own block of vertices, so a composition is the
//     disjoint union of its parts in call order.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gfp/core"
)

// Draft collects vertices and edges before they are frozen into a core.Graph.
type Draft struct {
	n     int
	edges []core.Edge
}

// VertexCount returns the number of vertices added so far.
func (d *Draft) VertexCount() int { return d.n }

// AddVertices appends k vertices and returns the id of the first one.
func (d *Draft) AddVertices(k int) int {
	first := d.n
	d.n += k

	return first
}

// AddEdge appends the undirected edge u—v. Endpoints are validated when the
// draft is frozen.
func (d *Draft) AddEdge(u, v int) {
	d.edges = append(d.edges, core.Edge{U: u, V: v})
}

// Constructor appends one topology to a Draft using the resolved
// builderConfig. Constructors validate parameters before touching the draft
// and return sentinel errors; they never panic.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildGraph resolves bopts, applies all constructors in order and freezes the
// result. Constructor errors are wrapped as "BuildGraph: %w".
//
// Errors:
//   - builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...) from constructors.
//   - ErrConstructFailed for a nil constructor.
//   - core.ErrInvalidGraph if a custom constructor emitted an out-of-range edge.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.New(d.n, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Build is BuildGraph without builder options.
func Build(cons ...Constructor) (*core.Graph, error) {
	return BuildGraph(nil, cons...)
}
