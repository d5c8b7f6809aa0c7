// Package core provides the immutable undirected multigraph every fingerprint
// stage reads from.
//
// A Graph G = (V,E) is built once from a vertex count N and an edge list:
//
//   - Vertices are the dense integer ids 0..N-1.
//   - Edges are undirected; self-loops and parallel edges are accepted.
//   - Adjacency is stored twice in compressed (CSR) form:
//     the multigraph view (every edge endpoint, loops twice) and the simple
//     projection (unique neighbors, no loops, sorted ascending).
//
// Construction is the only mutation. After New returns, every method is a
// pure read, so a *Graph may be shared across goroutines without locking.
//
// Core Methods:
//
//	New(vertexCount int, edges []Edge) (*Graph, error) // O(V + E log E)
//
//	VertexCount() int                 // O(1)
//	EdgeCount() int                   // O(1)
//	Degree(v int) int                 // O(1), multiplicity counted, loop = 2
//	Neighbors(v int) iter.Seq[int]    // O(deg(v)), lazy and restartable
//	SimpleNeighbors(v int) []int      // O(1), read-only sorted view
//	SimpleDegree(v int) int           // O(1)
//	HasEdge(u, v int) bool            // O(log deg(u))
//	Edges() []Edge                    // O(E), fresh copy
//
//	Undirected() *simple.UndirectedGraph // gonum projection for interop
//	Directed() *simple.DirectedGraph     // both orientations, for gonum/network
//
// Errors:
//
//	ErrInvalidGraph – negative vertex count or an edge endpoint outside [0, N).
package core
