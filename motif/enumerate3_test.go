// SPDX-License-Identifier: MIT
package motif_test

import (
	"testing"

	"github.com/katalvlaran/graphfeatures/motif"
	"github.com/katalvlaran/graphfeatures/store"
	"github.com/katalvlaran/graphfeatures/variation"
	"github.com/stretchr/testify/require"
)

// triangleUndirected builds the symmetric 3-cycle 0-1-2.
func triangleUndirected(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	offsets := []int64{0, 2, 4, 6}
	adjacency := []store.NodeID{1, 2, 0, 2, 0, 1}
	require.NoError(t, s.Assign(offsets, adjacency))
	return s
}

// starUndirected builds center 0 with leaves 1,2,3 and no leaf-leaf edges.
func starUndirected(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	offsets := []int64{0, 3, 4, 5, 6}
	adjacency := []store.NodeID{1, 2, 3, 0, 0, 0}
	require.NoError(t, s.Assign(offsets, adjacency))
	return s
}

// twoDisjointTriangles builds {0,1,2} and {3,4,5}, each a 3-cycle.
func twoDisjointTriangles(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	offsets := []int64{0, 2, 4, 6, 8, 10, 12}
	adjacency := []store.NodeID{
		1, 2, 0, 2, 0, 1, // triangle {0,1,2}
		4, 5, 3, 5, 3, 4, // triangle {3,4,5}
	}
	require.NoError(t, s.Assign(offsets, adjacency))
	return s
}

func TestCalculate_Triangle_OneTripleCreditedToAllThree(t *testing.T) {
	tbl := loadTable(t, "7 0\n", variation.Key{Level: 3, Directed: false})
	e, err := motif.NewEngine(3, false, tbl)
	require.NoError(t, err)
	require.NoError(t, e.Bind(triangleUndirected(t)))

	features, err := e.Calculate()
	require.NoError(t, err)
	for u := store.NodeID(0); u < 3; u++ {
		require.Equal(t, uint32(1), features[u][0], "node %d", u)
	}
}

func TestCalculate_Star_VShapesNoTriangle(t *testing.T) {
	// Leaf pairs (1,2) (1,3) (2,3) around center 0 each form a V-shape.
	// The center has the highest removal index, so each V is found from a
	// leaf root through 0 as (leaf, 0, leaf): natural-order signature 5.
	// A V-shape's natural-order encodings are 3, 5 and 6, all mapped to
	// class 9; the triangle signature (7) never occurs.
	tbl := loadTable(t, "3 9\n5 9\n6 9\n7 1\n", variation.Key{Level: 3, Directed: false})
	e, err := motif.NewEngine(3, false, tbl)
	require.NoError(t, err)
	require.NoError(t, e.Bind(starUndirected(t)))

	features, err := e.Calculate()
	require.NoError(t, err)

	var totalVShapes uint32
	var totalTriangles uint32
	for u := store.NodeID(0); u < 4; u++ {
		totalVShapes += features[u][9]
		totalTriangles += features[u][1]
	}
	require.Equal(t, uint32(0), totalTriangles)
	require.Equal(t, uint32(9), totalVShapes) // 3 V-shapes * 3 members
}

func TestCalculate_TwoDisjointTriangles_SixTotalCredits(t *testing.T) {
	tbl := loadTable(t, "7 0\n", variation.Key{Level: 3, Directed: false})
	e, err := motif.NewEngine(3, false, tbl)
	require.NoError(t, err)
	require.NoError(t, e.Bind(twoDisjointTriangles(t)))

	features, err := e.Calculate()
	require.NoError(t, err)

	var total uint32
	for u := store.NodeID(0); u < 6; u++ {
		total += features[u][0]
	}
	require.Equal(t, uint32(6), total)
}

func TestCalculate_UnassignedSignatureIsSkipped(t *testing.T) {
	// Table has no entry at all for signature 7 (the triangle): the
	// classifier must silently skip it rather than crediting anything.
	tbl := loadTable(t, "0 0\n", variation.Key{Level: 3, Directed: false})
	e, err := motif.NewEngine(3, false, tbl)
	require.NoError(t, err)
	require.NoError(t, e.Bind(triangleUndirected(t)))

	features, err := e.Calculate()
	require.NoError(t, err)
	for u := store.NodeID(0); u < 3; u++ {
		require.Equal(t, uint32(0), features[u][0])
	}
}
