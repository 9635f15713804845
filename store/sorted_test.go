// SPDX-License-Identifier: MIT
package store_test

import (
	"testing"

	"github.com/katalvlaran/graphfeatures/store"
	"github.com/stretchr/testify/require"
)

func TestSortedNodesByDegree_TiesBrokenByID(t *testing.T) {
	// all nodes degree 0
	s := store.New()
	require.NoError(t, s.Assign([]int64{0, 0, 0, 0}, nil))
	require.Equal(t, []store.NodeID{0, 1, 2}, s.SortedNodesByDegree())
}

func TestSortedNodesByDegree_TriangleDirected(t *testing.T) {
	s := triangleDirected(t)
	got := s.SortedNodesByDegree()
	require.ElementsMatch(t, []store.NodeID{0, 1, 2}, got)
}
