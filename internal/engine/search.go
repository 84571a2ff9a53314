package engine

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// visitor receives each solved board; returning true stops the search.
type visitor func(*Board) bool

// search runs propagation and fewest-candidates-first backtracking over b.
// Candidates are tried in ascending digit order on struct-copied boards, so
// results are deterministic. Cancellation is checked once per node.
func search(ctx context.Context, b *Board, nodes *int, visit visitor) bool {
	if ctx.Err() != nil {
		return true
	}
	if !b.Propagate() {
		return false
	}
	if b.unresolved == 0 {
		return visit(b)
	}
	i, _ := b.MinCell()
	cand := b.cells[i]
	for d := uint8(1); d <= 9; d++ {
		if cand&(1<<d) == 0 {
			continue
		}
		*nodes++
		child := *b
		if !child.Set(i, d) {
			continue
		}
		if search(ctx, &child, nodes, visit) {
			return true
		}
	}
	return false
}

// Solver is the sequential propagation/backtracking engine.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

// Solve returns the first solution in deterministic order, ErrUnsolvable
// after exhausting the search space, or the context error on cancellation.
func (s *Solver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	b, ok := NewBoard(&g)
	if !ok {
		return domain.Grid{}, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsolvable
	}
	nodes := 0
	var solution domain.Grid
	found := false
	search(ctx, &b, &nodes, func(solved *Board) bool {
		solution = solved.Grid()
		found = true
		return true
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !found {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, st, err
		}
		return domain.Grid{}, st, domain.ErrUnsolvable
	}
	return solution, st, nil
}
