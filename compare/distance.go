// SPDX-License-Identifier: MIT
// Package: gfp/compare
//
// distance.go — vector distances between fingerprints.
//
// Contract:
//   • Every distance requires len(a) == len(b); otherwise ErrDimensionMismatch.
//   • Results are ≥ 0, symmetric, and 0 for identical inputs.
//   • A term or ratio with a zero denominator contributes 0, never NaN.

package compare

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrDimensionMismatch is returned when two vectors differ in length.
var ErrDimensionMismatch = errors.New("compare: dimension mismatch")

func checkDims(method string, a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%s: len %d vs %d: %w", method, len(a), len(b), ErrDimensionMismatch)
	}

	return nil
}

// Canberra returns Σ |a_i − b_i| / (|a_i| + |b_i|), skipping positions where
// both values are 0. The result lies in [0, len(a)].
func Canberra(a, b []float64) (float64, error) {
	if err := checkDims("Canberra", a, b); err != nil {
		return 0, err
	}

	var d float64
	for i := range a {
		den := math.Abs(a[i]) + math.Abs(b[i])
		if den == 0 {
			continue
		}
		d += math.Abs(a[i]-b[i]) / den
	}

	return d, nil
}

// BrayCurtis returns Σ |a_i − b_i| / Σ |a_i + b_i|, or 0 when the
// denominator vanishes.
func BrayCurtis(a, b []float64) (float64, error) {
	if err := checkDims("BrayCurtis", a, b); err != nil {
		return 0, err
	}

	var num, den float64
	for i := range a {
		num += math.Abs(a[i] - b[i])
		den += math.Abs(a[i] + b[i])
	}
	if den == 0 {
		return 0, nil
	}

	return num / den, nil
}

// Chebyshev returns max_i |a_i − b_i|.
func Chebyshev(a, b []float64) (float64, error) {
	if err := checkDims("Chebyshev", a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, math.Inf(1)), nil
}

// CityBlock returns Σ |a_i − b_i|.
func CityBlock(a, b []float64) (float64, error) {
	if err := checkDims("CityBlock", a, b); err != nil {
		return 0, err
	}

	return floats.Distance(a, b, 1), nil
}

// Cosine returns 1 − a·b / (‖a‖‖b‖), or 0 when either vector is zero.
func Cosine(a, b []float64) (float64, error) {
	if err := checkDims("Cosine", a, b); err != nil {
		return 0, err
	}
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0, nil
	}

	return clamp(1 - floats.Dot(a, b)/(na*nb)), nil
}

// Correlation returns 1 − Pearson(a, b), or 0 when either vector is constant.
func Correlation(a, b []float64) (float64, error) {
	if err := checkDims("Correlation", a, b); err != nil {
		return 0, err
	}
	if len(a) < 2 {
		return 0, nil
	}
	r := stat.Correlation(a, b, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, nil
	}

	return clamp(1 - r), nil
}

// clamp removes rounding noise that would push a distance below 0.
func clamp(d float64) float64 {
	return math.Max(d, 0)
}
