package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

func TestSaveAssignsIDAndRoundTrips(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	g, err := domain.ParseLine("530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	require.NoError(t, err)
	p := &domain.Puzzle{Seed: 7, FreeCells: g.FreeCells(), Grid: g, CreatedAt: 1}

	require.NoError(t, s.Save(ctx, p))
	require.NotEmpty(t, p.ID)

	back, err := s.Load(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.Grid, back.Grid)
	require.Equal(t, p.Seed, back.Seed)
	require.Equal(t, p.FreeCells, back.FreeCells)
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	require.Error(t, err)
}

func TestListSkipsGarbage(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	var g domain.Grid
	require.NoError(t, s.Save(ctx, &domain.Puzzle{Grid: g, FreeCells: 81, CreatedAt: 2, Name: "blank"}))
	require.NoError(t, s.Save(ctx, &domain.Puzzle{Grid: g, FreeCells: 81, CreatedAt: 3}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	for _, m := range metas {
		require.NotEmpty(t, m.ID)
		require.Equal(t, 81, m.FreeCells)
	}
}

func TestListEmptyDirIsNotAnError(t *testing.T) {
	s := NewFS("/nonexistent/path/for/sure")
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	require.Nil(t, metas)
}
