// SPDX-License-Identifier: MIT
// Package: gfp/cmd/gfp
//
// output.go — aligned plain-text reports.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/gfp"
	"github.com/katalvlaran/gfp/core"
	"github.com/katalvlaran/gfp/fingerprint"
	"github.com/katalvlaran/gfp/metrics"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeResult(w io.Writer, name string, g *core.Graph, res gfp.Result) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "graph\t%s\n", name)
	fmt.Fprintf(tw, "vertices\t%d\n", g.VertexCount())
	fmt.Fprintf(tw, "edges\t%d\n", g.EdgeCount())
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "feature\tvalue")
	for i, v := range res.Fingerprint {
		fmt.Fprintf(tw, "%s\t%.6g\n", fingerprint.Label(i), v)
	}
	for i, v := range res.GlobalFeatures() {
		fmt.Fprintf(tw, "%s\t%.6g\n", metrics.GlobalFeatureNames[i], v)
	}

	return tw.Flush()
}

func writeComparison(w io.Writer, nameA, nameB string, a, b *core.Graph, cmp gfp.Comparison) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "run\t%s\n", cmp.RunID)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "\t%s\t%s\n", nameA, nameB)
	fmt.Fprintf(tw, "vertices\t%d\t%d\n", a.VertexCount(), b.VertexCount())
	ga, gb := cmp.A.GlobalFeatures(), cmp.B.GlobalFeatures()
	for i := range ga {
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\n", metrics.GlobalFeatureNames[i], ga[i], gb[i])
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "vertex distance\t%.6f\n", cmp.VertexDistance)
	fmt.Fprintf(tw, "global distance\t%.6f\n", cmp.GlobalDistance)

	return tw.Flush()
}
