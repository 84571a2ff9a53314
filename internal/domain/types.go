package domain

// Grid is a 9x9 Sudoku grid in row-major order; 0 marks a free cell.
type Grid [81]uint8

// At returns the value at row r, column c.
func (g *Grid) At(r, c int) uint8 { return g[r*9+c] }

// SetAt writes the value at row r, column c.
func (g *Grid) SetAt(r, c int, v uint8) { g[r*9+c] = v }

// FreeCells counts the cells still unknown.
func (g *Grid) FreeCells() int {
	n := 0
	for _, v := range g {
		if v == 0 {
			n++
		}
	}
	return n
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolutionCount is the result of counting solutions capped at two.
type SolutionCount int

const (
	Zero SolutionCount = iota
	One
	TwoOrMore
)

func (c SolutionCount) String() string {
	switch c {
	case Zero:
		return "zero"
	case One:
		return "one"
	default:
		return "multiple"
	}
}

// Hint describes a suggested next placement.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Digit   uint8     `json:"digit"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	FreeCells int    `json:"freeCells"`
	Grid      Grid   `json:"grid"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	FreeCells int    `json:"freeCells"`
	CreatedAt int64  `json:"createdAt"`
}
