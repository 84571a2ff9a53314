package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Service is the facade the CLI and HTTP adapters consume. The solver and
// counter slots take either the sequential or the parallel engine; nothing
// above this layer knows which.
type Service struct {
	Solver    ports.Solver
	Counter   ports.Counter
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, c ports.Counter, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Counter: c, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve validates the grid first, so duplicate givens surface as
// ErrInvalidPuzzle instead of a search-space exhaustion.
func (u *Service) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil || u.Validator == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	ok, conflicts, err := u.Validator.Validate(ctx, &g)
	if err != nil {
		return domain.Grid{}, ports.Stats{}, err
	}
	if !ok {
		return domain.Grid{}, ports.Stats{}, fmt.Errorf("%w: %d conflicting cells", domain.ErrInvalidPuzzle, len(conflicts))
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) CountSolutions(ctx context.Context, g domain.Grid) (domain.SolutionCount, ports.Stats, error) {
	if u.Counter == nil || u.Validator == nil {
		return domain.Zero, ports.Stats{}, errNotConfigured
	}
	ok, _, err := u.Validator.Validate(ctx, &g)
	if err != nil {
		return domain.Zero, ports.Stats{}, err
	}
	if !ok {
		return domain.Zero, ports.Stats{}, domain.ErrInvalidPuzzle
	}
	return u.Counter.CountUpToTwo(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64, freeCells int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, freeCells)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
