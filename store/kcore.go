// File: kcore.go
// Role: k-core shell assignment by naive peeling, per spec §4.1.
//
// Grounded on arch/CacheGraph.cpp's ComputeKCore, with the UNSET_K_CORE
// sentinel replaced by a github.com/soniakeys/bits bitset of still-
// unassigned nodes — the same bits.New/SetBit/Bit idiom
// soniakeys-graph/dir_RO.go uses for its visited/path traversal bitmaps
// (see DESIGN.md).

package store

import "github.com/soniakeys/bits"

// KCore returns shell, an ordered slice of length n of k-core shell ids.
// shell[u] is the largest k such that u survives in the subgraph obtained
// by iteratively removing all nodes of residual degree <= k-1 (equivalently:
// the largest k for which u belongs to a subgraph where every node has
// degree >= k). Nodes of degree 0 are assigned shell 0 immediately.
//
// Algorithm: standard peeling. unassigned tracks, as a bitset, which nodes
// still lack a shell id. For increasing k starting at 1, repeatedly scan
// all still-unassigned nodes; any whose current residual degree is <= k
// gets shell[u]=k and every still-unassigned neighbor's residual degree is
// decremented. The inner scan repeats until a full pass makes no
// decrements; k then advances. The outer loop stops once every node has a
// shell id (a k at which no node is peeled does not stop it).
//
// Cost: O((n+m)*k_max) worst case, acceptable for the target workload.
func (s *Store) KCore() []uint16 {
	s.mu.RLock()
	n := s.n
	offsets := s.offsets
	adjacency := s.adjacency
	s.mu.RUnlock()

	shell := make([]uint16, n)
	degree := make([]uint32, n)
	unassigned := bits.New(int(n))
	remaining := n
	for u := uint32(0); u < n; u++ {
		degree[u] = uint32(offsets[u+1] - offsets[u])
		unassigned.SetBit(int(u), 1)
		if degree[u] == 0 {
			shell[u] = 0
			unassigned.SetBit(int(u), 0)
			remaining--
		}
	}

	for k := uint16(1); remaining > 0; k++ {
		for {
			changed := false
			for u := uint32(0); u < n; u++ {
				if unassigned.Bit(int(u)) == 0 {
					continue
				}
				if degree[u] > uint32(k) {
					continue
				}
				shell[u] = k
				unassigned.SetBit(int(u), 0)
				remaining--
				for _, v := range adjacency[offsets[u]:offsets[u+1]] {
					if unassigned.Bit(int(v)) == 1 {
						degree[v]--
						changed = true
					}
				}
			}
			if !changed {
				break
			}
		}
		if k == ^uint16(0) {
			break
		}
	}

	return shell
}
