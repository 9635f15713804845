// File: bind.go
// Role: the Configured -> Bound -> Completed lifecycle of spec §4.3.

package motif

import "github.com/katalvlaran/graphfeatures/store"

// Bind attaches g to the engine, building sorted_nodes and removal_index
// (spec §3) and a zeroed features table, one entry per node, over
// table.Classes(). Bind may be called more than once, including after
// Completed; each call rebuilds the Bound state from scratch, transiently
// passing back through Configured per spec §4.3.
func (e *Engine) Bind(g store.View) error {
	if g == nil {
		return ErrNilGraph
	}

	e.state = StateConfigured
	e.graph = g

	n := g.NodeCount()
	e.sortedNodes = g.SortedNodesByDegree()
	e.removalIndex = make([]uint32, n)
	for i, node := range e.sortedNodes {
		e.removalIndex[node] = uint32(i)
	}

	e.allMotifs = e.table.Classes()
	e.features = make([]map[int]uint32, n)
	for i := range e.features {
		m := make(map[int]uint32, len(e.allMotifs))
		for _, class := range e.allMotifs {
			m[class] = 0
		}
		e.features[i] = m
	}

	e.scratch = newRootScratch(n)
	e.state = StateBound

	return nil
}

// Calculate runs the enumeration over every root in sorted_nodes order and
// returns the accumulated per-node features (spec §4.3's "Output"). The
// engine must be Bound; on success it transitions to Completed. The
// returned slice is indexed by NodeID and is the engine's own storage —
// callers must not mutate it after a subsequent Bind.
func (e *Engine) Calculate() ([]map[int]uint32, error) {
	if e.state != StateBound {
		return nil, ErrNotBound
	}

	for _, root := range e.sortedNodes {
		e.scratch.reset()
		switch e.level {
		case 3:
			e.enumerateLevel3(root)
		case 4:
			e.enumerateLevel4(root)
		}
	}

	e.state = StateCompleted
	return e.features, nil
}

// eligible reports whether candidate's removal index is >= root's, per
// spec §4.3's "eligible node" definition.
func (e *Engine) eligible(root, candidate store.NodeID) bool {
	return e.removalIndex[candidate] >= e.removalIndex[root]
}

// credit increments class's count for every member of triple/quad.
func (e *Engine) credit(class int, members ...store.NodeID) {
	for _, node := range members {
		e.features[node][class]++
	}
}
