// File: rank.go
// Role: PageRank, per spec §4.1.
//
// Grounded on arch/CacheGraph.cpp's ComputeNodePageRank: a Gauss-Seidel
// (in-place) update over a freshly shuffled visit order each iteration,
// exactly like the original's std::shuffle(..., std::mt19937). math/rand
// is the idiomatic stdlib equivalent and is the library every example in
// this corpus that needs a random permutation (including soniakeys-graph's
// own generators) reaches for — see SPEC_FULL.md §4 and DESIGN.md.
//
// Determinism:
//   - Deterministic for a fixed *rand.Rand seed; PageRank itself draws a
//     fresh permutation every iteration via rng.Shuffle, exactly as spec
//     §4.1 requires ("draw a uniformly random permutation... each
//     iteration").

package store

import "math/rand"

// PageRank computes PageRank scores with damping factor d over T
// iterations, using rng to draw a fresh random visit permutation each
// iteration (Gauss-Seidel style in-place update, not Jacobi — this is
// intentional per spec §4.1). If rng is nil, a new source seeded with 1 is
// created for the call, making results reproducible across calls within a
// process but not guaranteed stable across Go versions' rand
// implementation changes.
//
// PageRank does not special-case nodes with Degree(v)==0. Such a node can
// be another node's out-neighbor (the sink of a directed path); when it
// is, its term pr[v]/0 makes that node's score non-finite (+Inf, or NaN
// when pr[v] is 0). A node with no out-neighbors has no terms and stays
// finite.
func (s *Store) PageRank(d float64, iterations int, rng *rand.Rand) []float32 {
	s.mu.RLock()
	n := s.n
	offsets := s.offsets
	adjacency := s.adjacency
	s.mu.RUnlock()

	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	pr := make([]float64, n)
	for i := range pr {
		pr[i] = 1 - d
	}

	degree := make([]float64, n)
	for u := uint32(0); u < n; u++ {
		degree[u] = float64(offsets[u+1] - offsets[u])
	}

	order := make([]uint32, n)
	for i := range order {
		order[i] = uint32(i)
	}

	for iter := 0; iter < iterations; iter++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, u := range order {
			var contribution float64
			for k := offsets[u]; k < offsets[u+1]; k++ {
				v := adjacency[k]
				contribution += pr[v] / degree[v]
			}
			pr[u] = (1 - d) + d*contribution
		}
	}

	out := make([]float32, n)
	for i, v := range pr {
		out[i] = float32(v)
	}
	return out
}
