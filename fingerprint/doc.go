// Package fingerprint reduces per-vertex metric distributions to a fixed
// 48-element vector.
//
// Each of the six metrics produced by metrics.ExtractVertex is summarized by
// eight statistics, always in this order:
//
//	median, mean, stdDev, skewness, kurtosis, variance, max, min
//
// The vector is metric-major: positions 0..7 describe degree, 8..15 local
// clustering, and so on. Fingerprints built by this package are comparable
// with each other and with nothing else.
//
// Statistics use the whole population. Standard deviation, skewness and
// excess kurtosis are the biased moment estimators; variance is the unbiased
// sample variance. See Summary for the degenerate cases.
//
// Errors:
//
//	ErrEmptyGraph – a zero-vertex graph has no statistics.
package fingerprint
