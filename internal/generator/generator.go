// Package generator produces minimal-clue puzzles with a guaranteed unique
// solution: a randomized fill of the empty grid followed by a reduce phase
// that clears cells while the solution count stays at one.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/engine"
	"svw.info/sudoku-engine/internal/ports"
)

// UniqueGenerator drives the engine's randomized fill and verifies every cell
// removal through the provided counter, which may be the sequential or the
// parallel one.
type UniqueGenerator struct {
	Counter ports.Counter
}

func NewUniqueGenerator(c ports.Counter) *UniqueGenerator {
	return &UniqueGenerator{Counter: c}
}

// Generate builds a puzzle with at most freeCells blank cells and exactly one
// solution. The target is best-effort: when no further cell can be cleared
// without losing uniqueness, the puzzle is returned with the achieved count
// in Puzzle.FreeCells. All randomness flows from the seed, so runs are
// reproducible.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, freeCells int) (*domain.Puzzle, ports.Stats, error) {
	if freeCells < 0 || freeCells > 81 {
		return nil, ports.Stats{}, fmt.Errorf("free cells out of range: %d", freeCells)
	}
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full, stats, err := engine.Fill(ctx, rng)
	if err != nil {
		return nil, stats, err
	}

	grid := full
	positions := rng.Perm(81)
	cleared := 0
	for _, pos := range positions {
		if cleared >= freeCells {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		old := grid[pos]
		grid[pos] = 0
		count, st, err := g.Counter.CountUpToTwo(ctx, grid)
		stats.Add(st)
		if err != nil {
			return nil, stats, err
		}
		if count != domain.One {
			// restore; this cell stays ineligible for the rest of the run
			grid[pos] = old
			continue
		}
		cleared++
	}

	stats.Duration = time.Since(start)
	return &domain.Puzzle{
		Seed:      seed,
		FreeCells: cleared,
		Grid:      grid,
		CreatedAt: time.Now().UnixNano(),
	}, stats, nil
}
