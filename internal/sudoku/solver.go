package sudoku

import "math/rand/v2"

// maxAssignments bounds the total number of assign calls per solve. A 9x9
// grid is solved in well under a thousand nodes in practice; the budget only
// exists so a contradictory input fails instead of looping.
const maxAssignments = 1 << 20

// Solve completes g via backtracking search with forward checking and the
// minimum-remaining-values heuristic. Candidate values are tried in
// ascending order and MRV ties break towards the lowest row*9+col index, so
// the result is deterministic for a given input. Returns ErrUnsolvable when
// no completion exists.
func Solve(g Grid) (Grid, error) {
	if !g.Consistent() {
		return Grid{}, ErrUnsolvable
	}
	p := newPropagator(&g)
	budget := maxAssignments
	ok, err := search(p, &budget, nil)
	if err != nil {
		return Grid{}, err
	}
	if !ok {
		return Grid{}, ErrUnsolvable
	}
	return g, nil
}

// solveRandom is Solve with shuffled candidate order, used by the generator
// to produce a different full grid on every call. Mutates g in place.
func solveRandom(g *Grid, rnd *rand.Rand) error {
	if !g.Consistent() {
		return ErrUnsolvable
	}
	p := newPropagator(g)
	budget := maxAssignments
	ok, err := search(p, &budget, rnd)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnsolvable
	}
	return nil
}

// search is the depth-first core shared by Solve and solveRandom. It returns
// false when every candidate of the selected cell fails, which triggers
// backtracking in the caller. Exhausting the budget also fails the branch.
func search(p *propagator, budget *int, rnd *rand.Rand) (bool, error) {
	cell, width, ok := p.selectCell()
	if !ok {
		return true, nil // no empty cells left
	}
	if width == 0 {
		return false, nil
	}
	vals := p.candidates(cell)
	if rnd != nil {
		rnd.Shuffle(len(vals), func(i, j int) {
			vals[i], vals[j] = vals[j], vals[i]
		})
	}
	for _, v := range vals {
		if *budget <= 0 {
			return false, nil
		}
		*budget--
		rec, err := p.assign(cell, v)
		if err != nil {
			return false, err
		}
		solved, err := search(p, budget, rnd)
		if err != nil {
			return false, err
		}
		if solved {
			return true, nil
		}
		p.undo(rec)
	}
	return false, nil
}

// countSolutions counts distinct completions of g, stopping as soon as limit
// is reached. When the node budget runs out before the search space is
// exhausted the count is pessimistically reported as limit, so callers that
// test for uniqueness reject rather than trust an unfinished search.
func countSolutions(g Grid, limit int) int {
	if !g.Consistent() {
		return 0
	}
	p := newPropagator(&g)
	budget := maxAssignments
	n := countSearch(p, limit, &budget)
	if budget <= 0 && n < limit {
		return limit
	}
	return n
}

func countSearch(p *propagator, limit int, budget *int) int {
	cell, width, ok := p.selectCell()
	if !ok {
		return 1
	}
	if width == 0 {
		return 0
	}
	found := 0
	for _, v := range p.candidates(cell) {
		if *budget <= 0 {
			break
		}
		*budget--
		rec, err := p.assign(cell, v)
		if err != nil {
			break // unreachable: v comes from the domain
		}
		found += countSearch(p, limit-found, budget)
		p.undo(rec)
		if found >= limit {
			break
		}
	}
	return found
}
