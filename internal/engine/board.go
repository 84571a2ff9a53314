package engine

import (
	"math/bits"

	"svw.info/sudoku-engine/internal/domain"
)

// fullMask has one bit per digit, using the value-bit convention bit d = 1<<d.
const fullMask uint16 = 0x3FE

// peers[i] lists the 20 cells sharing a row, column or box with cell i.
var peers [81][20]uint8

// boxOf maps a cell index to its 3x3 box index.
var boxOf [81]uint8

func init() {
	for i := 0; i < 81; i++ {
		r, c := i/9, i%9
		boxOf[i] = uint8((r/3)*3 + c/3)
		n := 0
		add := func(j int) {
			if j == i {
				return
			}
			for k := 0; k < n; k++ {
				if peers[i][k] == uint8(j) {
					return
				}
			}
			peers[i][n] = uint8(j)
			n++
		}
		for k := 0; k < 9; k++ {
			add(r*9 + k)
			add(k*9 + c)
		}
		br, bc := (r/3)*3, (c/3)*3
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				add((br+dr)*9 + bc + dc)
			}
		}
	}
}

// Board is the in-flight solving state: per-cell candidate bitmasks, per-unit
// used-value masks, and a work list of cells that just became naked singles.
// It contains only arrays, so a struct copy is an independent clone.
type Board struct {
	cells      [81]uint16
	rows       [9]uint16
	cols       [9]uint16
	boxes      [9]uint16
	done       [81]bool
	unresolved int8

	// pending naked singles; each cell is enqueued at most once
	queue        [81]uint8
	qhead, qtail int8
}

// NewBoard builds a Board from a grid. It reports false when the givens
// contradict each other (a candidate set empties while applying them).
func NewBoard(g *domain.Grid) (Board, bool) {
	b := Board{unresolved: 81}
	for i := range b.cells {
		b.cells[i] = fullMask
	}
	for i, v := range g {
		if v == 0 {
			continue
		}
		if !b.Set(i, v) {
			return b, false
		}
	}
	return b, true
}

// Set assigns digit d to cell i and strips d from all peers. It reports false
// on contradiction: d is not a candidate of i, or a peer's candidates empty.
// Newly created naked singles are queued for Propagate.
func (b *Board) Set(i int, d uint8) bool {
	bit := uint16(1) << d
	if b.done[i] {
		return b.cells[i] == bit
	}
	if b.cells[i]&bit == 0 {
		return false
	}
	b.cells[i] = bit
	b.done[i] = true
	b.unresolved--
	b.rows[i/9] |= bit
	b.cols[i%9] |= bit
	b.boxes[boxOf[i]] |= bit
	for _, p := range peers[i] {
		m := b.cells[p]
		if m&bit == 0 {
			continue
		}
		if m == bit {
			// peer is already this digit, or it was its last candidate
			return false
		}
		m &^= bit
		b.cells[p] = m
		if bits.OnesCount16(m) == 1 {
			b.queue[b.qtail] = p
			b.qtail++
		}
	}
	return true
}

// Propagate resolves queued naked singles to a fixpoint. Resolving one single
// may queue more; only affected cells are ever examined. Reports false on
// contradiction.
func (b *Board) Propagate() bool {
	for b.qhead != b.qtail {
		i := b.queue[b.qhead]
		b.qhead++
		if b.done[i] {
			continue
		}
		m := b.cells[i]
		if m == 0 {
			return false
		}
		if !b.Set(int(i), uint8(bits.TrailingZeros16(m))) {
			return false
		}
	}
	return true
}

// Solved reports whether all cells are resolved and every unit is complete.
func (b *Board) Solved() bool {
	if b.unresolved != 0 {
		return false
	}
	for u := 0; u < 9; u++ {
		if b.rows[u] != fullMask || b.cols[u] != fullMask || b.boxes[u] != fullMask {
			return false
		}
	}
	return true
}

// MinCell picks the unresolved cell with the fewest candidates, ties broken
// by lowest index. Reports false when every cell is resolved.
func (b *Board) MinCell() (int, bool) {
	best, bestCount := -1, 10
	for i := 0; i < 81; i++ {
		if b.done[i] {
			continue
		}
		n := bits.OnesCount16(b.cells[i])
		if n < bestCount {
			best, bestCount = i, n
			if n <= 2 {
				break
			}
		}
	}
	return best, best >= 0
}

// Candidates returns the candidate bitmask of cell i.
func (b *Board) Candidates(i int) uint16 { return b.cells[i] }

// Resolved reports whether cell i has been assigned.
func (b *Board) Resolved(i int) bool { return b.done[i] }

// Grid converts the board back to the plain grid form; unresolved cells
// come back as 0.
func (b *Board) Grid() domain.Grid {
	var g domain.Grid
	for i := range g {
		if b.done[i] {
			g[i] = uint8(bits.TrailingZeros16(b.cells[i]))
		}
	}
	return g
}

// CandidateMasks exposes the candidate sets a grid induces before any search.
// Used by the hinter; reports false when the givens contradict each other.
func CandidateMasks(g *domain.Grid) ([81]uint16, bool) {
	b, ok := NewBoard(g)
	return b.cells, ok
}
