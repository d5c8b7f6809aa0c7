// Package compare measures how far apart two fingerprint vectors are.
//
// Canberra is the reference distance: each position contributes
// |a_i − b_i| / (|a_i| + |b_i|), so positions of very different magnitude
// (degree statistics next to PageRank statistics) weigh equally. The same
// function serves 48-element vertex fingerprints and 6-element global
// feature vectors; only the lengths must match.
//
// Bray–Curtis, Chebyshev, city-block, cosine and correlation distances are
// available through Distance for exploratory comparisons.
//
// Errors:
//
//	ErrDimensionMismatch – vectors of different length.
//	ErrUnknownMetric     – unsupported Metric value or name.
package compare
