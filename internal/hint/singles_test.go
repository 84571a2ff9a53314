package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	// row 0 missing only the 4 at (0,2)
	g, err := domain.ParseLine("53.678912672195348198342567859761423426853791713924856961537284287419365345286179")
	require.NoError(t, err)

	h, found, err := New().Hint(context.Background(), &g)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, domain.CellCoord{Row: 0, Col: 2}, h.Cell)
	require.Equal(t, uint8(4), h.Digit)
}

func TestHintNoneOnEmptyGrid(t *testing.T) {
	var g domain.Grid
	_, found, err := New().Hint(context.Background(), &g)
	require.NoError(t, err)
	require.False(t, found)
}

func TestHintRejectsContradictoryGrid(t *testing.T) {
	var g domain.Grid
	g.SetAt(0, 0, 5)
	g.SetAt(0, 1, 5)

	_, _, err := New().Hint(context.Background(), &g)
	require.ErrorIs(t, err, domain.ErrInvalidPuzzle)
}
