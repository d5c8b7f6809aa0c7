// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// config.go — internal configuration resolved from BuilderOption values.
//
// Deterministic defaults:
//   • rng = nil (deterministic constructors only, unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
