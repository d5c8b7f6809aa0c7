// SPDX-License-Identifier: MIT
// Package: gfp/cmd/gfp
//
// main.go — command-line entry point.
//
// Usage:
//
//	gfp [global flags] fingerprint <edges.txt>
//	gfp [global flags] compare <a.txt> <b.txt>
//	gfp [global flags] demo [-n 20000] [-m 2] [-seed-a 1] [-seed-b 2]
//
// Global flags:
//
//	-config path     YAML settings (GFP_* environment variables override it)
//	-distance name   distance metric, overrides the configured one
//	-metrics path    write Prometheus metrics in text format after the run
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/gfp"
	"github.com/katalvlaran/gfp/config"
	"github.com/katalvlaran/gfp/observability"
)

// errUsage marks command-line mistakes; run prints usage and exits 2.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// env carries the wired pipeline into subcommands.
type env struct {
	pipeline *gfp.Pipeline
	logger   *zap.Logger
	out      io.Writer
}

type command func(ctx context.Context, e env, args []string) error

var commands = map[string]command{
	"fingerprint": runFingerprint,
	"compare":     runCompare,
	"demo":        runDemo,
}

// run parses global flags, wires config into a pipeline and dispatches.
// It returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gfp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file")
	distance := fs.String("distance", "", "distance metric (canberra, braycurtis, chebyshev, cityblock, cosine, correlation)")
	metricsOut := fs.String("metrics", "", "write Prometheus text metrics to this file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: gfp [flags] fingerprint <file> | compare <a> <b> | demo [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "gfp: unknown command %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "gfp:", err)
		return 1
	}
	if *distance != "" {
		cfg.Distance = *distance
	}
	metric, err := cfg.DistanceMetric()
	if err != nil {
		fmt.Fprintln(stderr, "gfp:", err)
		return 2
	}
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(stderr, "gfp:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	collector := observability.NewCollector("gfp")
	e := env{
		pipeline: gfp.New(
			gfp.WithMetricOptions(cfg.MetricOptions()...),
			gfp.WithDistance(metric),
			gfp.WithLogger(logger),
			gfp.WithObserver(collector),
		),
		logger: logger,
		out:    stdout,
	}

	err = cmd(ctx, e, fs.Args()[1:])
	if *metricsOut != "" {
		if werr := collector.WriteTextfile(*metricsOut); werr != nil {
			logger.Error("writing metrics failed", zap.String("path", *metricsOut), zap.Error(werr))
		}
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "gfp:", err)
		fs.Usage()
		return 2
	default:
		logger.Error("command failed", zap.String("command", fs.Arg(0)), zap.Error(err))
		fmt.Fprintln(stderr, "gfp:", err)
		return 1
	}
}
