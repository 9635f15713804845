// SPDX-License-Identifier: MIT
package motif

import (
	"testing"

	"github.com/katalvlaran/graphfeatures/store"
	"github.com/stretchr/testify/require"
)

// directedTriangleStore builds 0->1->2->0 with no reverse edges.
func directedTriangleStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	require.NoError(t, s.Assign([]int64{0, 1, 2, 3}, []store.NodeID{1, 2, 0}))
	s.SetDirected(true)
	return s
}

func TestGroupSignature_DirectedCycle_RotationInvariant(t *testing.T) {
	// The classifier tests all 6 permutations internally, so feeding the
	// same cyclic triple in any of its 3 rotations must land on the same
	// signature: whichever root discovers a pure 3-cycle, it is
	// classified identically.
	s := directedTriangleStore(t)
	e := &Engine{directed: true, graph: s}

	a := e.groupSignature([3]store.NodeID{0, 1, 2})
	b := e.groupSignature([3]store.NodeID{1, 2, 0})
	c := e.groupSignature([3]store.NodeID{2, 0, 1})
	require.Equal(t, a, b)
	require.Equal(t, a, c)
	require.NotZero(t, a)
}

func TestGroupSignature_Undirected_NaturalOrderOnly(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Assign([]int64{0, 2, 4, 6}, []store.NodeID{1, 2, 0, 2, 0, 1}))
	e := &Engine{directed: false, graph: s}

	// All three pairs of a triangle are adjacent: every bit set.
	require.Equal(t, 0b111, e.groupSignature([3]store.NodeID{0, 1, 2}))
}

func TestGroupSignature_NoEdges_IsZero(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Assign([]int64{0, 0, 0, 0}, nil))
	e := &Engine{directed: false, graph: s}
	require.Equal(t, 0, e.groupSignature([3]store.NodeID{0, 1, 2}))
}
