// SPDX-License-Identifier: MIT
// Package: gfp/edgelist

// Package edgelist loads graphs from plain-text edge lists.
//
// Format:
//
//	# comment            (lines starting with '#' or '%' are skipped)
//	a b                  (whitespace-separated endpoints)
//	b,c,0.5              (comma-separated; columns after the second are ignored)
//	d                    (a single token declares an isolated vertex)
//	New York, Boston     (comma form keeps spaces inside labels)
//	Salt Lake City,      (a trailing comma declares an isolated vertex)
//
// Vertex labels are arbitrary tokens. They are numbered densely in order of
// first appearance, and the returned Labels maps between the two.
// Self-loops and repeated lines are kept as the multigraph edges they describe.
// Write produces this format and rejects labels Read could not give back.
package edgelist
