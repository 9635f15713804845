// File: transform.go
// Role: structural transforms that produce an independent derived Store:
// Inverse (reverse every edge) and Undirected (symmetrize).
//
// Grounded on arch/CacheGraph.cpp's InverseGraph/CureateUndirectedGraph:
// in-degree counting pass + prefix sum + write-cursor scatter for Inverse;
// sorted two-pointer merge for Undirected.

package store

// Inverse returns a new Store with every edge (a,b) replaced by (b,a).
// The source Store is not mutated. The result is directed regardless of
// the source's Directed() tag (inversion is meaningful for either; callers
// inverting an undirected store get back an isomorphic copy).
//
// Algorithm (spec §4.1):
//  1. Count in-degrees with a single pass over Adjacency.
//  2. Prefix-sum in-degrees into out.Offsets[1:n+1], out.Offsets[0]=0.
//  3. Copy out.Offsets[0:n] into a separate write-cursor array.
//  4. Second pass: for each source u and neighbor v, write u into the
//     slot cursor[v] and advance cursor[v] by one. out.Offsets itself is
//     never modified, so no second prefix sum is needed.
//
// Neighbor lists in the result are sorted because sources are visited in
// ascending order. Cost: O(n+m).
func (s *Store) Inverse() *Store {
	s.mu.RLock()
	n := s.n
	m := s.m
	offsets := s.offsets
	adjacency := s.adjacency
	s.mu.RUnlock()

	inDegree := make([]uint32, n)
	for _, v := range adjacency {
		inDegree[v]++
	}

	outOffsets := make([]int64, n+1)
	for u := uint32(0); u < n; u++ {
		outOffsets[u+1] = outOffsets[u] + int64(inDegree[u])
	}

	outAdjacency := make([]NodeID, m)
	cursor := make([]int64, n)
	copy(cursor, outOffsets[:n])
	for u := uint32(0); u < n; u++ {
		for k := offsets[u]; k < offsets[u+1]; k++ {
			v := adjacency[k]
			outAdjacency[cursor[v]] = u
			cursor[v]++
		}
	}

	out := New()
	out.n = n
	out.m = m
	out.offsets = outOffsets
	out.adjacency = outAdjacency
	out.directed = true
	return out
}

// Undirected merges, per node, the out-neighbor list of s with the
// out-neighbor list of inv (which must be s.Inverse(), or something with
// the same shape — typically the caller computes inv once and reuses it).
// Since both lists are sorted ascending, a linear two-pointer merge
// deduplicates reciprocal edges into a single entry. The result is an
// independent Store tagged Directed()==false. Self-loops and pre-existing
// mutual edges collapse to a single entry. Cost: O(n+m).
func (s *Store) Undirected(inv *Store) *Store {
	s.mu.RLock()
	n := s.n
	offsets := s.offsets
	adjacency := s.adjacency
	s.mu.RUnlock()

	inv.mu.RLock()
	invOffsets := inv.offsets
	invAdjacency := inv.adjacency
	inv.mu.RUnlock()

	outOffsets := make([]int64, n+1)
	merged := make([]NodeID, 0, len(adjacency)+len(invAdjacency))

	for u := uint32(0); u < n; u++ {
		a := adjacency[offsets[u]:offsets[u+1]]
		b := invAdjacency[invOffsets[u]:invOffsets[u+1]]
		i, j := 0, 0
		for i < len(a) && j < len(b) {
			switch {
			case a[i] == b[j]:
				merged = append(merged, a[i])
				i++
				j++
			case a[i] < b[j]:
				merged = append(merged, a[i])
				i++
			default:
				merged = append(merged, b[j])
				j++
			}
		}
		merged = append(merged, a[i:]...)
		merged = append(merged, b[j:]...)
		outOffsets[u+1] = int64(len(merged))
	}

	out := New()
	out.n = n
	out.offsets = outOffsets
	out.adjacency = merged
	out.m = uint64(len(merged))
	out.directed = false
	return out
}
