// Package store implements GraphStore: a cache-aware, immutable compressed
// sparse row (CSR) representation of a directed or undirected graph.
//
// What
//
//   - A Store owns two (three, with weights) packed slices:
//     Offsets (length n+1), Adjacency (length m), and, when weighted,
//     Weights (length m, aligned positionally with Adjacency).
//   - Built once via Assign or Load, then treated as read-only. Derived
//     stores (Inverse, Undirected) are independent values with their own
//     buffers; nothing is shared with the source.
//   - Structural algorithms live here because they are all O(1)-per-node
//     walks over the same two arrays: Degree, ComputeNodeDegrees,
//     AreNeighbors, PageRank, KCore, SortedNodesByDegree.
//
// Why
//
//   - CSR keeps each node's neighbor list contiguous, which is what makes
//     the motif enumerator's repeated neighbor scans (package motif) cheap:
//     no per-edge allocation, no pointer chasing, and AreNeighbors is a
//     binary search over a contiguous, sorted slice.
//   - Treating a Store as immutable after construction means it can be
//     shared across readers (including concurrent motif.Engine instances).
//     Readers never block one another: accessors such as AreNeighbors and
//     Neighbors take only the shared read lock, which Assign and Load's
//     write lock excludes.
//
// Determinism
//
//	Assign, Load, Inverse, Undirected, Degree, ComputeNodeDegrees,
//	AreNeighbors, KCore and SortedNodesByDegree are all deterministic given
//	identical input. PageRank is deterministic only for a fixed random seed
//	(see rank.go).
//
// Complexity
//
//	Assign/Load: O(n+m). Inverse: O(n+m). Undirected: O(n+m). Degree: O(1).
//	AreNeighbors: O(log deg(p)). KCore: O((n+m)·k_max) worst case (naive
//	peeling, acceptable for the target workload per spec). PageRank:
//	O(T·(n+m)) for T iterations.
package store
