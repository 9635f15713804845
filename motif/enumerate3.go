// File: enumerate3.go
// Role: the required level-3 enumeration of spec §4.3, verbatim in
// structure: seed, path-through-neighbor, co-neighbor-pair.

package motif

import "github.com/katalvlaran/graphfeatures/store"

// enumerateLevel3 enumerates every connected 3-node induced subgraph
// rooted at root exactly once and hands each to classifyTriple.
func (e *Engine) enumerateLevel3(root store.NodeID) {
	e.scratch.visit(root) // visited[root] = 0

	rootNeighbors := e.graph.Neighbors(root)

	// Step 1: seed. Fix a discovery order among root's eligible
	// out-neighbors.
	var eligibleNeighbors []store.NodeID
	for _, n1 := range rootNeighbors {
		if !e.eligible(root, n1) {
			continue
		}
		e.scratch.visit(n1)
		eligibleNeighbors = append(eligibleNeighbors, n1)
	}

	// Step 2: path-through-neighbor triples.
	for _, n1 := range eligibleNeighbors {
		rank1, _ := e.scratch.rankOf(n1)
		for _, n2 := range e.graph.Neighbors(n1) {
			if !e.eligible(root, n2) {
				continue
			}
			rank2, seen := e.scratch.rankOf(n2)
			if seen {
				if rank1 < rank2 {
					e.classifyTriple([3]store.NodeID{root, n1, n2})
				}
				continue
			}
			e.scratch.visit(n2)
			e.classifyTriple([3]store.NodeID{root, n1, n2})
		}
	}

	// Step 3: co-neighbor pairs of root with no mutual edge ("V-shape").
	for i := 0; i < len(eligibleNeighbors); i++ {
		n1 := eligibleNeighbors[i]
		rank1, _ := e.scratch.rankOf(n1)
		for j := i + 1; j < len(eligibleNeighbors); j++ {
			n2 := eligibleNeighbors[j]
			rank2, _ := e.scratch.rankOf(n2)
			if rank1 >= rank2 {
				continue
			}
			if e.graph.AreNeighbors(n1, n2) || e.graph.AreNeighbors(n2, n1) {
				continue
			}
			e.classifyTriple([3]store.NodeID{root, n1, n2})
		}
	}
}
