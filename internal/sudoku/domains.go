package sudoku

import "math/bits"

// Candidate sets are bitmasks: bit v set means value v is still possible.
const fullDomain uint16 = 0x3FE // bits 1..9

// propagator tracks the candidate set of every cell and keeps them in sync
// with the grid through assign/undo pairs (forward checking). It is owned by
// exactly one search and never shared across calls.
type propagator struct {
	grid    *Grid
	domains [Cells]uint16
}

// undoRecord captures everything an assignment changed, so that undo can
// restore the exact prior state without recomputation.
type undoRecord struct {
	cell    int
	value   int
	prev    uint16
	removed []int
}

// newPropagator derives initial domains from g: a filled cell keeps only its
// own value, an empty cell keeps {1..9} minus the values of its filled peers.
func newPropagator(g *Grid) *propagator {
	p := &propagator{grid: g}
	for i := range Cells {
		if v := g.At(i); v != 0 {
			p.domains[i] = 1 << v
			continue
		}
		d := fullDomain
		for _, j := range peers[i] {
			if v := g.At(j); v != 0 {
				d &^= 1 << v
			}
		}
		p.domains[i] = d
	}
	return p
}

// assign writes v into cell i and removes v from the domain of every empty
// peer. The returned record is the exact input undo expects.
func (p *propagator) assign(i, v int) (undoRecord, error) {
	bit := uint16(1) << v
	if p.domains[i]&bit == 0 {
		return undoRecord{}, InvalidAssignmentError{
			Row: i / Size, Col: i % Size, Value: v,
		}
	}
	rec := undoRecord{cell: i, value: v, prev: p.domains[i]}
	p.grid.set(i, v)
	p.domains[i] = bit
	for _, j := range peers[i] {
		if p.grid.At(j) == 0 && p.domains[j]&bit != 0 {
			p.domains[j] &^= bit
			rec.removed = append(rec.removed, j)
		}
	}
	return rec, nil
}

// undo reverts the matching assign: the cell becomes empty again and every
// domain entry removed by the assignment is restored.
func (p *propagator) undo(rec undoRecord) {
	bit := uint16(1) << rec.value
	for _, j := range rec.removed {
		p.domains[j] |= bit
	}
	p.domains[rec.cell] = rec.prev
	p.grid.set(rec.cell, 0)
}

// selectCell picks the empty cell with the fewest remaining candidates,
// breaking ties towards the lowest row*9+col index. ok is false when the
// grid is complete.
func (p *propagator) selectCell() (cell, width int, ok bool) {
	cell, width = -1, Size+1
	for i := range Cells {
		if p.grid.At(i) != 0 {
			continue
		}
		if n := bits.OnesCount16(p.domains[i]); n < width {
			cell, width = i, n
			if n == 0 {
				break
			}
		}
	}
	return cell, width, cell >= 0
}

// candidates lists the values still possible for cell i, ascending.
func (p *propagator) candidates(i int) []int {
	vals := make([]int, 0, Size)
	for v := 1; v <= Size; v++ {
		if p.domains[i]&(1<<v) != 0 {
			vals = append(vals, v)
		}
	}
	return vals
}
