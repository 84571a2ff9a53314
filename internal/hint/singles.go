package hint

import (
	"context"
	"fmt"
	"math/bits"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/engine"
)

// Singles suggests the first naked single, read straight off the engine's
// candidate masks instead of rescanning units per digit.
type Singles struct{}

func New() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	masks, ok := engine.CandidateMasks(g)
	if !ok {
		return domain.Hint{}, false, domain.ErrInvalidPuzzle
	}
	for i, m := range masks {
		if g[i] != 0 {
			continue
		}
		if bits.OnesCount16(m) == 1 {
			d := uint8(bits.TrailingZeros16(m))
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %d fits here", d),
				Cell:    domain.CellCoord{Row: i / 9, Col: i % 9},
				Digit:   d,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
