// Package motif implements MotifEngine: a degree-ordered enumeration of
// connected k-node induced subgraphs rooted at each node of a
// store.Store, classified via a variation.Table into an isomorphism
// class, with per-node class counts accumulated into a features map.
//
// What
//
//   - For k=3 (the required case, spec §4.3): for each root r, walk the
//     two-hop out-neighborhood of r, enumerating every connected 3-node
//     induced subgraph {r, n1, n2} exactly once, using a canonical-root
//     rule (the root is always the member with the smallest
//     "removal index", its rank in the graph's ascending-degree
//     permutation) to guarantee no triple is counted twice.
//   - For k=4 this module additionally implements the extension spec §9
//     leaves as a design point: the same canonical-root principle, walked
//     one hop further (see motif4.go).
//   - Classification (GetGroupNumber) builds an integer "group signature"
//     from a fixed, documented ordering of pairwise store.AreNeighbors
//     tests, looked up in a variation.Table; an unassigned signature
//     silently drops the candidate (it is not a tracked motif).
//
// Why
//
//   - Counting every connected k-subgraph naively (e.g. from every
//     ordered starting point) triple- or worse-counts; fixing the
//     canonical root to "smallest removal index" and restricting
//     enumeration to nodes with removal index >= the root's lets each
//     subgraph be discovered from exactly one root, in one pass, with no
//     bookkeeping beyond a per-root scratch table.
//
// State machine
//
//	Configured (level/directedness fixed, no graph bound) -> Bound
//	(Engine.Bind attaches a store.View and builds the removal-index and
//	zeroed feature tables) -> Completed (Calculate has returned). Calling
//	Bind again rebuilds the Bound state from scratch (transiently passing
//	through Configured, per spec §4.3) even if the engine was Completed.
//
// Determinism
//
//	Motif counts are deterministic regardless of root processing order,
//	because each connected subgraph is credited at exactly one root.
package motif
