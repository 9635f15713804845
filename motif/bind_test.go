// SPDX-License-Identifier: MIT
package motif_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/graphfeatures/motif"
	"github.com/katalvlaran/graphfeatures/store"
	"github.com/katalvlaran/graphfeatures/variation"
	"github.com/stretchr/testify/require"
)

func loadTable(t *testing.T, contents string, key variation.Key) *variation.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	tbl, err := variation.Load(path, key)
	require.NoError(t, err)
	return tbl
}

func emptyStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	require.NoError(t, s.Assign([]int64{0}, nil))
	return s
}

func TestNewEngine_RejectsBadLevel(t *testing.T) {
	tbl := loadTable(t, "0 0\n", variation.Key{Level: 3, Directed: false})
	_, err := motif.NewEngine(5, false, tbl)
	require.ErrorIs(t, err, motif.ErrInvalidLevel)
}

func TestNewEngine_RejectsNilTable(t *testing.T) {
	_, err := motif.NewEngine(3, false, nil)
	require.ErrorIs(t, err, motif.ErrNilTable)
}

func TestEngine_StateMachine(t *testing.T) {
	tbl := loadTable(t, "7 0\n", variation.Key{Level: 3, Directed: false})
	e, err := motif.NewEngine(3, false, tbl)
	require.NoError(t, err)
	require.Equal(t, motif.StateConfigured, e.State())

	_, err = e.Calculate()
	require.ErrorIs(t, err, motif.ErrNotBound)

	require.ErrorIs(t, e.Bind(nil), motif.ErrNilGraph)

	require.NoError(t, e.Bind(emptyStore(t)))
	require.Equal(t, motif.StateBound, e.State())

	features, err := e.Calculate()
	require.NoError(t, err)
	require.Empty(t, features)
	require.Equal(t, motif.StateCompleted, e.State())

	require.NoError(t, e.Bind(emptyStore(t)))
	require.Equal(t, motif.StateBound, e.State())
}
