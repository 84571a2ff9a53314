package engine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillProducesValidSolvedGrid(t *testing.T) {
	g, st, err := Fill(context.Background(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Zero(t, g.FreeCells())
	requireValidSolution(t, g)
	t.Logf("nodes=%d dur=%v", st.Nodes, st.Duration)
}

func TestFillReproducibleForSeed(t *testing.T) {
	a, _, err := Fill(context.Background(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, _, err := Fill(context.Background(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, _, err := Fill(context.Background(), rand.New(rand.NewSource(43)))
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestFillCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Fill(ctx, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, context.Canceled)
}
