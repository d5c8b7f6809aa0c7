// SPDX-License-Identifier: MIT
// Package: gfp/builder

// Package builder produces reference topologies for fingerprint tests,
// benchmarks and demos. Each constructor appends a block of vertices to a
// shared Draft, so one BuildGraph call with several constructors yields the
// disjoint union of their graphs in call order.
//
// Components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): resolve options, run constructors, freeze
//     the draft into a *core.Graph.
//     – Build(cons...): BuildGraph without options.
//   - Deterministic constructors: Empty, Path, Cycle, Star, Wheel, Complete,
//     CompleteBipartite, Grid, PlatonicSolid.
//   - Stochastic constructors (need WithSeed or WithRand): RandomSparse,
//     RandomRegular, PriceNetwork.
//   - Options: WithSeed, WithRand. Option constructors panic on meaningless
//     input; constructors never panic.
//
// Guarantees:
//
//   - Same options, seed and constructor order give identical graphs.
//   - Parameter errors wrap one of the package sentinels and carry the
//     method name, e.g. "BuildGraph: Cycle: n=2 < min=3: ...".
//   - Every constructor documents its vertex numbering and complexity.
package builder
