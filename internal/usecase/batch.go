package usecase

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// LineStatus classifies the outcome of one puzzle line in a batch run.
type LineStatus string

const (
	StatusSolved    LineStatus = "solved"
	StatusMalformed LineStatus = "malformed"
	StatusInvalid   LineStatus = "invalid"
	StatusNoSolve   LineStatus = "no solution"
	StatusMultiSol  LineStatus = "multiple solutions"
	StatusZero      LineStatus = "zero"
	StatusOne       LineStatus = "one"
	StatusMultiple  LineStatus = "multiple"
)

// LineResult is the per-item status of a batch operation. A failed line never
// aborts the batch; subsequent lines are still processed.
type LineResult struct {
	Index    int
	Input    string
	Status   LineStatus
	Solution string // 81-char line, set only for StatusSolved
	Detail   string // parse or validation detail for failed lines
}

// SolveLines reads one puzzle per line and solves each, reporting a status
// per item. A line with zero or several solutions gets a status instead of a
// grid, so the count runs first. Blank lines are skipped. Context cancellation
// aborts the batch.
func (u *Service) SolveLines(ctx context.Context, r io.Reader) ([]LineResult, ports.Stats, error) {
	return u.eachLine(ctx, r, func(ctx context.Context, g domain.Grid) (LineResult, ports.Stats) {
		count, total, err := u.Counter.CountUpToTwo(ctx, g)
		if err != nil {
			return LineResult{Status: StatusInvalid, Detail: err.Error()}, total
		}
		switch count {
		case domain.Zero:
			return LineResult{Status: StatusNoSolve}, total
		case domain.TwoOrMore:
			return LineResult{Status: StatusMultiSol, Detail: domain.ErrMultipleSolutions.Error()}, total
		}
		solved, st, err := u.Solver.Solve(ctx, g)
		total.Add(st)
		switch {
		case err == nil:
			return LineResult{Status: StatusSolved, Solution: solved.Line()}, total
		case errors.Is(err, domain.ErrUnsolvable):
			return LineResult{Status: StatusNoSolve}, total
		default:
			return LineResult{Status: StatusInvalid, Detail: err.Error()}, total
		}
	})
}

// CountLines reads one puzzle per line and reports the capped solution count
// per item.
func (u *Service) CountLines(ctx context.Context, r io.Reader) ([]LineResult, ports.Stats, error) {
	return u.eachLine(ctx, r, func(ctx context.Context, g domain.Grid) (LineResult, ports.Stats) {
		count, st, err := u.Counter.CountUpToTwo(ctx, g)
		if err != nil {
			return LineResult{Status: StatusInvalid, Detail: err.Error()}, st
		}
		switch count {
		case domain.Zero:
			return LineResult{Status: StatusZero}, st
		case domain.One:
			return LineResult{Status: StatusOne}, st
		default:
			return LineResult{Status: StatusMultiple}, st
		}
	})
}

func (u *Service) eachLine(ctx context.Context, r io.Reader, run func(context.Context, domain.Grid) (LineResult, ports.Stats)) ([]LineResult, ports.Stats, error) {
	if u.Solver == nil || u.Counter == nil || u.Validator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	var (
		results []LineResult
		total   ports.Stats
		index   int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return results, total, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		res := LineResult{Index: index, Input: line}
		g, err := domain.ParseLine(line)
		if err != nil {
			res.Status = StatusMalformed
			res.Detail = err.Error()
		} else if ok, conflicts, _ := u.Validator.Validate(ctx, &g); !ok {
			res.Status = StatusInvalid
			res.Detail = conflictDetail(conflicts)
		} else {
			out, st := run(ctx, g)
			res.Status = out.Status
			res.Solution = out.Solution
			res.Detail = out.Detail
			total.Add(st)
		}
		results = append(results, res)
		index++
	}
	if err := scanner.Err(); err != nil {
		return results, total, err
	}
	return results, total, nil
}

func conflictDetail(conflicts []domain.CellCoord) string {
	if len(conflicts) == 0 {
		return "duplicate value in a unit"
	}
	var sb strings.Builder
	sb.WriteString("duplicate value at")
	for _, c := range conflicts {
		sb.WriteString(" (")
		sb.WriteByte('0' + byte(c.Row))
		sb.WriteByte(',')
		sb.WriteByte('0' + byte(c.Col))
		sb.WriteByte(')')
	}
	return sb.String()
}
