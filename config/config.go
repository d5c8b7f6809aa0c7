// SPDX-License-Identifier: MIT
// Package: gfp/config
//
// config.go — Config schema, defaults and conversions into pipeline options.

package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gfp/compare"
	"github.com/katalvlaran/gfp/metrics"
)

// ErrInvalidConfig wraps every load, parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete settings tree.
type Config struct {
	PageRank    PageRank    `yaml:"pagerank"`
	Eigenvector Eigenvector `yaml:"eigenvector"`
	// Workers bounds goroutines per pass; 0 selects GOMAXPROCS.
	Workers  int    `yaml:"workers" validate:"gte=0"`
	Distance string `yaml:"distance" validate:"distance"`
	Log      Log    `yaml:"log"`
}

// PageRank holds the power-iteration parameters for PageRank.
type PageRank struct {
	Damping       float64 `yaml:"damping" validate:"gte=0,lt=1"`
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"gte=1"`
}

// Eigenvector holds the power-iteration parameters for eigenvector centrality.
type Eigenvector struct {
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"gte=1"`
}

// Log selects the zap preset and level.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		PageRank: PageRank{
			Damping:       metrics.DefaultDamping,
			Tolerance:     metrics.DefaultTolerance,
			MaxIterations: metrics.DefaultMaxIterations,
		},
		Eigenvector: Eigenvector{
			Tolerance:     metrics.DefaultEigenTolerance,
			MaxIterations: metrics.DefaultEigenMaxIterations,
		},
		Distance: compare.MetricCanberra.String(),
		Log:      Log{Level: "info"},
	}
}

// MetricOptions converts c into extraction options. Call Validate first;
// the option constructors panic on out-of-range values.
func (c Config) MetricOptions() []metrics.Option {
	opts := []metrics.Option{
		metrics.WithDamping(c.PageRank.Damping),
		metrics.WithTolerance(c.PageRank.Tolerance),
		metrics.WithMaxIterations(c.PageRank.MaxIterations),
		metrics.WithEigenTolerance(c.Eigenvector.Tolerance),
		metrics.WithEigenMaxIterations(c.Eigenvector.MaxIterations),
	}
	if c.Workers > 0 {
		opts = append(opts, metrics.WithWorkers(c.Workers))
	}

	return opts
}

// DistanceMetric parses the configured distance name.
func (c Config) DistanceMetric() (compare.Metric, error) {
	m, err := compare.ParseMetric(c.Distance)
	if err != nil {
		return m, fmt.Errorf("distance: %w", errors.Join(err, ErrInvalidConfig))
	}

	return m, nil
}

// Logger builds a zap logger writing to stderr. Development selects the
// console encoder; otherwise the JSON production preset is used.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level %q: %w", c.Log.Level, errors.Join(err, ErrInvalidConfig))
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
