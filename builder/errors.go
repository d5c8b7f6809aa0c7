// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with "%s: ...: %w" (method first).
//   • Validation order: sizes (ErrTooFewVertices), then probabilities
//     (ErrInvalidProbability), then RNG presence (ErrNeedRandSource), then
//     construction itself (ErrConstructFailed).

package builder

import "errors"

// ErrTooFewVertices indicates a size or degree parameter below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted its attempts (e.g. stub
// matching for RandomRegular) or was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownSolid indicates a PlatonicName outside the five solids.
var ErrUnknownSolid = errors.New("builder: unknown platonic solid")
