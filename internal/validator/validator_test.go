package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

func TestValidateCleanGrid(t *testing.T) {
	g, err := domain.ParseLine("530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	require.NoError(t, err)

	ok, conf, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conf)
}

func TestValidateFindsDuplicates(t *testing.T) {
	var g domain.Grid
	g.SetAt(0, 0, 5)
	g.SetAt(0, 8, 5) // row duplicate
	g.SetAt(4, 4, 3)
	g.SetAt(8, 4, 3) // column duplicate

	ok, conf, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, conf, domain.CellCoord{Row: 0, Col: 8})
	require.Contains(t, conf, domain.CellCoord{Row: 8, Col: 4})
}

func TestValidateBoxDuplicate(t *testing.T) {
	var g domain.Grid
	g.SetAt(0, 0, 7)
	g.SetAt(2, 2, 7) // same box, different row and column

	ok, conf, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, []domain.CellCoord{{Row: 2, Col: 2}}, conf)
}
