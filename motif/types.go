// File: types.go
// Role: State, Engine, and the per-root scratch structure used by the
// level-3 enumerator (the level-4 enumerator keeps its own bitset).
//
// AI-HINT (file):
//   - rootScratch is an epoch-stamped dense array (spec §9's preferred
//     alternative to a general-purpose hash map for the per-root
//     "visited" mapping): reset() bumps an epoch counter in O(1) instead
//     of clearing the backing arrays, so it is reused across every root
//     of a Calculate() call with a single allocation.

package motif

import (
	"github.com/katalvlaran/graphfeatures/store"
	"github.com/katalvlaran/graphfeatures/variation"
)

// State is one of the three MotifEngine lifecycle states of spec §4.3.
type State int

const (
	// StateConfigured: level and directedness are fixed, no graph bound.
	StateConfigured State = iota
	// StateBound: a graph is attached; removal indices and feature
	// tables have been built.
	StateBound
	// StateCompleted: Calculate has returned.
	StateCompleted
)

// String renders State for diagnostics/tests.
func (s State) String() string {
	switch s {
	case StateConfigured:
		return "Configured"
	case StateBound:
		return "Bound"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Engine is MotifEngine: consumes a store.View, enumerates connected
// k-node induced subgraphs per root, classifies each via a
// variation.Table, and accumulates per-node motif class counts.
//
// An Engine is configured once (NewEngine) for a fixed level and
// directedness, then bound to one or more graphs in turn (Bind);
// Calculate consumes the currently bound graph and transitions to
// Completed.
type Engine struct {
	level    int
	directed bool
	table    *variation.Table

	state State

	graph        store.View
	sortedNodes  []store.NodeID
	removalIndex []uint32
	allMotifs    []int
	features     []map[int]uint32

	scratch *rootScratch
}

// NewEngine constructs a Configured Engine for the given level (3 or 4)
// and directedness, backed by table. table should have been loaded with a
// matching variation.Key; NewEngine does not itself re-validate that the
// key matches (Calculate classifies using table.Lookup regardless of the
// key it was loaded under).
func NewEngine(level int, directed bool, table *variation.Table) (*Engine, error) {
	if level != 3 && level != 4 {
		return nil, ErrInvalidLevel
	}
	if table == nil {
		return nil, ErrNilTable
	}
	return &Engine{
		level:    level,
		directed: directed,
		table:    table,
		state:    StateConfigured,
	}, nil
}

// State returns the engine's current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Level returns the configured motif size (3 or 4).
func (e *Engine) Level() int {
	return e.level
}

// Directed returns the configured directedness.
func (e *Engine) Directed() bool {
	return e.directed
}

// rootScratch is the per-root "visited" bookkeeping of spec §4.3: a
// mapping from node id to an insertion-order rank, valid only for the
// root currently being processed.
type rootScratch struct {
	rank  []int32
	epoch []int32
	cur   int32
	next  int32
}

func newRootScratch(n uint32) *rootScratch {
	return &rootScratch{rank: make([]int32, n), epoch: make([]int32, n)}
}

// reset starts a new root: bumps the epoch so every previous visit()
// becomes invisible to rankOf, in O(1).
func (rs *rootScratch) reset() {
	rs.cur++
	rs.next = 0
}

// visit assigns the next insertion-order rank to node and returns it.
func (rs *rootScratch) visit(node store.NodeID) int32 {
	rs.rank[node] = rs.next
	rs.epoch[node] = rs.cur
	rs.next++
	return rs.rank[node]
}

// rankOf reports node's insertion-order rank for the current root, and
// whether node has been visited at all this root.
func (rs *rootScratch) rankOf(node store.NodeID) (int32, bool) {
	if rs.epoch[node] != rs.cur {
		return 0, false
	}
	return rs.rank[node], true
}
