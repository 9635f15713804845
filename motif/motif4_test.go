// SPDX-License-Identifier: MIT
package motif_test

import (
	"testing"

	"github.com/katalvlaran/graphfeatures/motif"
	"github.com/katalvlaran/graphfeatures/store"
	"github.com/katalvlaran/graphfeatures/variation"
	"github.com/stretchr/testify/require"
)

// completeGraphK4 builds the undirected complete graph on 4 nodes.
func completeGraphK4(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	offsets := []int64{0, 3, 6, 9, 12}
	adjacency := []store.NodeID{
		1, 2, 3,
		0, 2, 3,
		0, 1, 3,
		0, 1, 2,
	}
	require.NoError(t, s.Assign(offsets, adjacency))
	return s
}

func TestCalculate_Level4_K4_OneQuadCreditedToAllFour(t *testing.T) {
	tbl := loadTable(t, "63 0\n", variation.Key{Level: 4, Directed: false})
	e, err := motif.NewEngine(4, false, tbl)
	require.NoError(t, err)
	require.NoError(t, e.Bind(completeGraphK4(t)))

	features, err := e.Calculate()
	require.NoError(t, err)

	for u := store.NodeID(0); u < 4; u++ {
		require.Equal(t, uint32(1), features[u][0], "node %d", u)
	}
}

func TestCalculate_Level4_TriangleHasNoQuad(t *testing.T) {
	tbl := loadTable(t, "63 0\n", variation.Key{Level: 4, Directed: false})
	e, err := motif.NewEngine(4, false, tbl)
	require.NoError(t, err)
	require.NoError(t, e.Bind(triangleUndirected(t)))

	features, err := e.Calculate()
	require.NoError(t, err)
	for u := store.NodeID(0); u < 3; u++ {
		require.Equal(t, uint32(0), features[u][0])
	}
}
