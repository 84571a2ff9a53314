package engine

import (
	"context"
	"math/bits"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Fill solves the empty grid with randomized branching: a random cell among
// those with fewest candidates, candidate digits in random order. With the
// propagation engine underneath this terminates quickly in a full random
// solution, reproducible for a given rng state.
func Fill(ctx context.Context, rng *rand.Rand) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	var empty domain.Grid
	b, _ := NewBoard(&empty)
	nodes := 0
	var solution domain.Grid
	found := false
	fillSearch(ctx, &b, rng, &nodes, func(solved *Board) bool {
		solution = solved.Grid()
		found = true
		return true
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !found {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, st, err
		}
		// the empty grid always has solutions
		return domain.Grid{}, st, domain.ErrUnsolvable
	}
	return solution, st, nil
}

func fillSearch(ctx context.Context, b *Board, rng *rand.Rand, nodes *int, visit visitor) bool {
	if ctx.Err() != nil {
		return true
	}
	if !b.Propagate() {
		return false
	}
	if b.unresolved == 0 {
		return visit(b)
	}
	i := randomMinCell(b, rng)
	var digits [9]uint8
	n := 0
	for d := uint8(1); d <= 9; d++ {
		if b.cells[i]&(1<<d) != 0 {
			digits[n] = d
			n++
		}
	}
	rng.Shuffle(n, func(x, y int) { digits[x], digits[y] = digits[y], digits[x] })
	for _, d := range digits[:n] {
		*nodes++
		child := *b
		if !child.Set(i, d) {
			continue
		}
		if fillSearch(ctx, &child, rng, nodes, visit) {
			return true
		}
	}
	return false
}

// randomMinCell picks uniformly among the unresolved cells that share the
// minimum candidate count.
func randomMinCell(b *Board, rng *rand.Rand) int {
	bestCount := 10
	var ties [81]uint8
	n := 0
	for i := 0; i < 81; i++ {
		if b.done[i] {
			continue
		}
		c := bits.OnesCount16(b.cells[i])
		if c < bestCount {
			bestCount = c
			ties[0] = uint8(i)
			n = 1
		} else if c == bestCount {
			ties[n] = uint8(i)
			n++
		}
	}
	return int(ties[rng.Intn(n)])
}
