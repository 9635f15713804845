// File: sorted.go
// Role: the degree-ascending node permutation motif.Engine uses to assign
// removal indices (spec §3, §4.3).

package store

import "sort"

// SortedNodesByDegree returns a permutation of [0, n) ordered by ascending
// degree, ties broken by ascending node id (stable on the (degree, id)
// pair).
func (s *Store) SortedNodesByDegree() []NodeID {
	degrees := s.ComputeNodeDegrees()
	nodes := make([]NodeID, len(degrees))
	for i := range nodes {
		nodes[i] = NodeID(i)
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return degrees[nodes[i]] < degrees[nodes[j]]
	})
	return nodes
}
