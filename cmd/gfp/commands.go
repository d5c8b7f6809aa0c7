// SPDX-License-Identifier: MIT
// Package: gfp/cmd/gfp
//
// commands.go — fingerprint, compare and demo subcommands.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gfp/builder"
	"github.com/katalvlaran/gfp/core"
	"github.com/katalvlaran/gfp/edgelist"
)

func runFingerprint(ctx context.Context, e env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("fingerprint takes one edge list, got %d args: %w", len(args), errUsage)
	}
	g, _, err := edgelist.ReadFile(args[0])
	if err != nil {
		return err
	}

	res, err := e.pipeline.Fingerprint(ctx, g)
	if err != nil {
		return err
	}

	return writeResult(e.out, args[0], g, res)
}

func runCompare(ctx context.Context, e env, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("compare takes two edge lists, got %d args: %w", len(args), errUsage)
	}

	var a, b *core.Graph
	eg := new(errgroup.Group)
	eg.Go(func() (err error) { a, _, err = edgelist.ReadFile(args[0]); return })
	eg.Go(func() (err error) { b, _, err = edgelist.ReadFile(args[1]); return })
	if err := eg.Wait(); err != nil {
		return err
	}

	cmp, err := e.pipeline.CompareGraphs(ctx, a, b)
	if err != nil {
		return err
	}

	return writeComparison(e.out, args[0], args[1], a, b, cmp)
}

// runDemo compares two independently seeded Price networks, the reference
// workload for the fingerprint method.
func runDemo(ctx context.Context, e env, args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	n := fs.Int("n", 20000, "vertices per network")
	m := fs.Int("m", 2, "edges added per new vertex")
	seedA := fs.Int64("seed-a", 1, "seed of the first network")
	seedB := fs.Int64("seed-b", 2, "seed of the second network")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("demo: %v: %w", err, errUsage)
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("demo takes no positional args: %w", errUsage)
	}

	start := time.Now()
	var a, b *core.Graph
	eg := new(errgroup.Group)
	eg.Go(func() (err error) {
		a, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(*seedA)}, builder.PriceNetwork(*n, *m))
		return
	})
	eg.Go(func() (err error) {
		b, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(*seedB)}, builder.PriceNetwork(*n, *m))
		return
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	e.logger.Info("demo graphs built",
		zap.Int("vertices", *n),
		zap.Int("m", *m),
		zap.Duration("elapsed", time.Since(start)),
	)

	cmp, err := e.pipeline.CompareGraphs(ctx, a, b)
	if err != nil {
		return err
	}

	return writeComparison(e.out,
		fmt.Sprintf("price(seed=%d)", *seedA),
		fmt.Sprintf("price(seed=%d)", *seedB),
		a, b, cmp)
}
