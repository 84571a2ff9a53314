package engine

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// ParallelSolver runs one propagation and one branching step sequentially,
// then hands each candidate of the branch cell to a fixed worker pool as an
// independent subtree root. Workers own their Board copies outright; the only
// shared state is the cancellation context and the aggregated counters.
// It satisfies the same contracts as Solver and Counter, selected by
// configuration in the CLI layer.
type ParallelSolver struct {
	workers int
}

func NewParallelSolver(workers int) *ParallelSolver {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ParallelSolver{workers: workers}
}

type subtreeResult struct {
	grid  domain.Grid
	found bool
}

// branchRoot propagates the initial board and selects the first branch cell.
// solved is true when propagation alone finishes the grid.
func branchRoot(g *domain.Grid) (root Board, cell int, digits []uint8, solved, ok bool) {
	root, ok = NewBoard(g)
	if !ok {
		return root, 0, nil, false, false
	}
	if !root.Propagate() {
		return root, 0, nil, false, false
	}
	if root.unresolved == 0 {
		return root, 0, nil, true, true
	}
	cell, _ = root.MinCell()
	for d := uint8(1); d <= 9; d++ {
		if root.cells[cell]&(1<<d) != 0 {
			digits = append(digits, d)
		}
	}
	return root, cell, digits, false, true
}

// fanOut feeds the branch digits through a bounded pool. Each worker clones
// the root, assigns its digit and runs the sequential engine; visit is shared
// across workers and must be safe for concurrent use. Cancellation is
// cooperative: workers notice it at node boundaries inside search.
func (p *ParallelSolver) fanOut(ctx context.Context, root *Board, cell int, digits []uint8, nodes *int64, visit visitor) []subtreeResult {
	workChan := make(chan uint8, len(digits))
	resultChan := make(chan subtreeResult, len(digits))

	workers := p.workers
	if workers > len(digits) {
		workers = len(digits)
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range workChan {
				var res subtreeResult
				if ctx.Err() == nil {
					child := *root
					n := 1
					if child.Set(cell, d) {
						search(ctx, &child, &n, func(solved *Board) bool {
							res.grid = solved.Grid()
							res.found = true
							return visit(solved)
						})
					}
					atomic.AddInt64(nodes, int64(n))
				}
				resultChan <- res
			}
		}()
	}
	for _, d := range digits {
		workChan <- d
	}
	close(workChan)
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]subtreeResult, 0, len(digits))
	for res := range resultChan {
		results = append(results, res)
	}
	return results
}

// Solve returns the first solution any worker reports. For valid puzzles the
// solution is unique, so the nondeterministic finish order is unobservable.
func (p *ParallelSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	root, cell, digits, solved, ok := branchRoot(&g)
	if !ok {
		return domain.Grid{}, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsolvable
	}
	if solved {
		return root.Grid(), ports.Stats{Duration: time.Since(start)}, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	var nodes int64
	results := p.fanOut(runCtx, &root, cell, digits, &nodes, func(*Board) bool {
		cancel() // first solution wins; peers stop at their next node
		return true
	})

	st := ports.Stats{Nodes: int(nodes), Duration: time.Since(start)}
	for _, res := range results {
		if res.found {
			return res.grid, st, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return domain.Grid{}, st, err
	}
	return domain.Grid{}, st, domain.ErrUnsolvable
}

// CountUpToTwo aggregates solutions across workers into a shared atomic
// counter and cancels the pool once it reaches two. The resulting class is
// independent of scheduling even though the visit order is not.
func (p *ParallelSolver) CountUpToTwo(ctx context.Context, g domain.Grid) (domain.SolutionCount, ports.Stats, error) {
	start := time.Now()
	root, cell, digits, solved, ok := branchRoot(&g)
	if !ok {
		return domain.Zero, ports.Stats{Duration: time.Since(start)}, nil
	}
	if solved {
		return domain.One, ports.Stats{Duration: time.Since(start)}, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	var nodes int64
	var total int32
	p.fanOut(runCtx, &root, cell, digits, &nodes, func(*Board) bool {
		if atomic.AddInt32(&total, 1) >= 2 {
			cancel()
			return true
		}
		return false
	})

	st := ports.Stats{Nodes: int(nodes), Duration: time.Since(start)}
	count := atomic.LoadInt32(&total)
	if err := ctx.Err(); err != nil && count < 2 {
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
