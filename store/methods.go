// File: methods.go
// Role: construction (Assign), validation, and the cheap per-node
// accessors (Degree, ComputeNodeDegrees, NodeCount, EdgeCount, Neighbors).
//
// Determinism:
//   - Assign does not sort neighbor lists; sortedness is a precondition on
//     the caller, exactly as spec §4.1 requires.
// Concurrency:
//   - Assign takes the write lock so a concurrent reader never observes a
//     half-replaced Store.

package store

import "fmt"

// Assign takes ownership of packed copies of offsets and adjacency (and,
// optionally, weights), validating their lengths first. It does not sort
// neighbor lists. Reassignment atomically replaces any prior contents.
//
// offsets must have length n+1 for some n, be non-negative and
// non-decreasing, start at 0, and end at len(adjacency). weights, when
// supplied, must have the same length as adjacency.
func (s *Store) Assign(offsets []int64, adjacency []NodeID, weights ...[]float64) error {
	if len(offsets) == 0 {
		return fmt.Errorf("store: Assign: %w: offsets must have length n+1", ErrLengthMismatch)
	}
	n := len(offsets) - 1
	m := offsets[n]
	if m < 0 || int(m) != len(adjacency) {
		return fmt.Errorf("store: Assign: %w: offsets[n]=%d, len(adjacency)=%d", ErrLengthMismatch, m, len(adjacency))
	}

	var w []float64
	weighted := false
	if len(weights) > 0 && weights[0] != nil {
		if len(weights[0]) != len(adjacency) {
			return fmt.Errorf("store: Assign: %w: len(weights)=%d, len(adjacency)=%d", ErrLengthMismatch, len(weights[0]), len(adjacency))
		}
		w = make([]float64, len(weights[0]))
		copy(w, weights[0])
		weighted = true
	}

	offCopy := make([]int64, len(offsets))
	copy(offCopy, offsets)
	adjCopy := make([]NodeID, len(adjacency))
	copy(adjCopy, adjacency)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = uint32(n)
	s.m = uint64(m)
	s.offsets = offCopy
	s.adjacency = adjCopy
	s.weights = w
	s.weighted = weighted

	return nil
}

// SetDirected sets the directedness tag. It is a lightweight setter kept
// separate from Assign so callers building a Store from a directed edge
// list (the common case) and callers symmetrizing it (Undirected, which
// always produces an undirected Store) can both construct a Store without
// threading an extra bool through every call.
func (s *Store) SetDirected(directed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directed = directed
}

// Directed reports whether this Store's edges are directed.
func (s *Store) Directed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directed
}

// Weighted reports whether this Store carries a Weights slice.
func (s *Store) Weighted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weighted
}

// NodeCount returns n, the number of nodes.
func (s *Store) NodeCount() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.n
}

// EdgeCount returns m, the number of directed edge entries in Adjacency
// (for an undirected Store, reciprocal edges are each counted once here).
func (s *Store) EdgeCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m
}

// Degree returns offsets[u+1] - offsets[u], the out-degree of u.
// Degree panics if u is out of range; callers that accept untrusted input
// should check u < NodeCount() first (or use Validate at load time).
func (s *Store) Degree(u NodeID) uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint32(s.offsets[u+1] - s.offsets[u])
}

// Neighbors returns the (read-only) out-neighbor slice of u, sorted
// ascending. The returned slice aliases the Store's internal buffer and
// must not be mutated by the caller.
func (s *Store) Neighbors(u NodeID) []NodeID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adjacency[s.offsets[u]:s.offsets[u+1]]
}

// Weight returns the weight of the edge at position idx within u's
// neighbor slice (i.e. the weight of the edge to Neighbors(u)[idx]), and
// false if the Store is unweighted.
func (s *Store) Weight(u NodeID, idx int) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.weighted {
		return 0, false
	}
	return s.weights[int(s.offsets[u])+idx], true
}

// ComputeNodeDegrees returns an ordered slice of length n holding the
// out-degree of every node in ascending node-id order.
func (s *Store) ComputeNodeDegrees() []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	degrees := make([]uint32, s.n)
	for u := uint32(0); u < s.n; u++ {
		degrees[u] = uint32(s.offsets[u+1] - s.offsets[u])
	}
	return degrees
}

// Validate checks every structural invariant spec §3/§8 requires:
// Offsets[0]==0, Offsets[n]==m, Offsets monotone non-decreasing, every
// adjacency id in [0,n), and every neighbor slice strictly ascending with
// no duplicates. It returns ErrInvariantViolation (wrapped with context)
// on the first violation found.
func (s *Store) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.offsets) != int(s.n)+1 {
		return fmt.Errorf("store: Validate: %w: len(offsets)=%d, n=%d", ErrInvariantViolation, len(s.offsets), s.n)
	}
	if s.offsets[0] != 0 {
		return fmt.Errorf("store: Validate: %w: offsets[0]=%d, want 0", ErrInvariantViolation, s.offsets[0])
	}
	if uint64(s.offsets[s.n]) != s.m {
		return fmt.Errorf("store: Validate: %w: offsets[n]=%d, m=%d", ErrInvariantViolation, s.offsets[s.n], s.m)
	}
	for u := uint32(0); u < s.n; u++ {
		if s.offsets[u+1] < s.offsets[u] {
			return fmt.Errorf("store: Validate: %w: offsets[%d]=%d > offsets[%d]=%d", ErrInvariantViolation, u, s.offsets[u], u+1, s.offsets[u+1])
		}
		nbrs := s.adjacency[s.offsets[u]:s.offsets[u+1]]
		for i, v := range nbrs {
			if v >= s.n {
				return fmt.Errorf("store: Validate: %w: node %d has out-of-range neighbor %d", ErrInvariantViolation, u, v)
			}
			if i > 0 && nbrs[i-1] >= v {
				return fmt.Errorf("store: Validate: %w: node %d neighbor slice not strictly ascending at index %d", ErrInvariantViolation, u, i)
			}
		}
	}
	return nil
}
