package retro

import "fmt"

// Propagate assigns the outcome and the optimal move set to every non-terminal position.
//
// The table must come from Build: positions are visited in reverse discovery order,
// which guarantees each child is already resolved when its parent is reached
// (children are always discovered after their parents). This is checked explicitly,
// a child still undetermined or discovered before its parent aborts with an *InconsistencyError.
func Propagate(t *Table) error {
	for i := len(t.Positions) - 1; i >= 0; i-- {
		p := &t.Positions[i]
		if p.Terminal {
			continue
		}

		if err := resolve(t, i); err != nil {
			return err
		}
	}
	return nil
}

// Minimax rule with draw fallback for a single position
func resolve(t *Table, i int) error {
	p := &t.Positions[i]
	me := p.Turn
	opp := me.Opponent()

	var winning, drawing []Edge
	allLost := true

	for _, e := range p.Children {
		if e.Index <= i {
			return &InconsistencyError{Index: i, Board: p.Board,
				Reason: fmt.Sprintf("child %d was discovered before its parent", e.Index)}
		}

		outcome := t.Positions[e.Index].Outcome
		switch outcome {
		case Undetermined:
			return &InconsistencyError{Index: i, Board: p.Board,
				Reason: fmt.Sprintf("child %d is still undetermined", e.Index)}
		case WonBy(me):
			winning = append(winning, e)
		case Draw:
			drawing = append(drawing, e)
		}

		if outcome != WonBy(opp) {
			allLost = false
		}
	}

	switch {
	case len(winning) > 0:
		p.Outcome = WonBy(me)
		p.Optimal = winning
	case allLost:
		// Every move loses, none is better than the other
		p.Outcome = WonBy(opp)
		p.Optimal = nil
	case len(drawing) > 0:
		p.Outcome = Draw
		p.Optimal = drawing
	default:
		return &InconsistencyError{Index: i, Board: p.Board, Reason: "no child outcome matches the minimax rule"}
	}
	return nil
}
