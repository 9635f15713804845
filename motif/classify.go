// File: classify.go
// Role: GetGroupNumber — build the group signature of spec §4.3 and look
// it up in the bound variation.Table.
//
// AI-HINT (file):
//   - Bit order is fixed and must match the convention the external
//     variation-table generator used: pairs are tested in the order
//     listed below, least-significant bit first, one bit per pair per
//     permutation.

package motif

import "github.com/katalvlaran/graphfeatures/store"

// permutations3 lists all 6 orderings of {0,1,2}, used only for directed
// classification (spec §4.3).
var permutations3 = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// groupSignature builds the integer described in spec §4.3 "Classification
// (GetGroupNumber)" for the ordered triple members.
func (e *Engine) groupSignature(members [3]store.NodeID) int {
	signature := 0
	bit := uint(0)

	testPair := func(a, b store.NodeID) {
		if e.graph.AreNeighbors(a, b) {
			signature |= 1 << bit
		}
		bit++
	}

	if e.directed {
		for _, perm := range permutations3 {
			p0, p1, p2 := members[perm[0]], members[perm[1]], members[perm[2]]
			testPair(p0, p1)
			testPair(p0, p2)
			testPair(p1, p2)
		}
		return signature
	}

	p0, p1, p2 := members[0], members[1], members[2]
	testPair(p0, p1)
	testPair(p0, p2)
	testPair(p1, p2)
	return signature
}

// classifyTriple computes members' group signature, looks it up, and
// credits all three nodes on a hit. An unassigned signature is silently
// dropped per spec §7.
func (e *Engine) classifyTriple(members [3]store.NodeID) {
	signature := e.groupSignature(members)
	class, ok := e.table.Lookup(signature)
	if !ok {
		return
	}
	e.credit(class, members[0], members[1], members[2])
}
