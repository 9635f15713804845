// SPDX-License-Identifier: MIT
package store_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphfeatures/store"
	"github.com/stretchr/testify/require"
)

// TestPageRank_ThreeCycleConvergesToOne exercises spec §8 #6: on a
// symmetric 3-cycle, pr ≡ 1 is the fixed point of the update formula for
// any damping factor, since every node has exactly one out-neighbor of
// degree 1.
func TestPageRank_ThreeCycleConvergesToOne(t *testing.T) {
	s := triangleDirected(t)
	pr := s.PageRank(0.85, 20, rand.New(rand.NewSource(42)))
	require.Len(t, pr, 3)
	for i, v := range pr {
		require.InDelta(t, 1.0, float64(v), 1e-4, "node %d", i)
	}
}

func TestPageRank_EmptyGraph(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Assign([]int64{0}, nil))
	pr := s.PageRank(0.85, 5, nil)
	require.Empty(t, pr)
}

func TestPageRank_DeterministicForFixedSeed(t *testing.T) {
	s := triangleDirected(t)
	a := s.PageRank(0.85, 10, rand.New(rand.NewSource(7)))
	b := s.PageRank(0.85, 10, rand.New(rand.NewSource(7)))
	require.Equal(t, a, b)
}

func TestPageRank_NoNaNOnIsolatedNode(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Assign([]int64{0, 0}, nil))
	pr := s.PageRank(0.85, 3, nil)
	require.Len(t, pr, 1)
	require.False(t, math.IsNaN(float64(pr[0])))
}
