package engine

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Counter counts solutions with the same engine as Solver, continuing past
// each solved state instead of stopping. It exits early at two: the exact
// count beyond that is never needed.
type Counter struct{}

func NewCounter() *Counter { return &Counter{} }

func (c *Counter) CountUpToTwo(ctx context.Context, g domain.Grid) (domain.SolutionCount, ports.Stats, error) {
	start := time.Now()
	b, ok := NewBoard(&g)
	if !ok {
		return domain.Zero, ports.Stats{Duration: time.Since(start)}, nil
	}
	nodes, count := 0, 0
	search(ctx, &b, &nodes, func(*Board) bool {
		count++
		return count >= 2
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return domain.Zero, st, err
	}
	switch {
	case count == 0:
		return domain.Zero, st, nil
	case count == 1:
		return domain.One, st, nil
	default:
		return domain.TwoOrMore, st, nil
	}
}
