package retro

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-ttt-retro/pkg/ttt"
)

// Stop collecting violations after this many, the rest is only counted
const maxReportedViolations = 20

// Boards with a known value, one per kind of line
var KnownWins = []ttt.Board{
	{1, 1, 1, 2, 0, 0, 2, 0, 0}, // top row
	{1, 2, 0, 1, 0, 2, 1, 0, 0}, // left column
	{1, 2, 0, 2, 1, 0, 0, 0, 1}, // main diagonal
}

type violations struct {
	errs  []error
	extra int
}

func (v *violations) add(index int, board ttt.Board, format string, args ...any) {
	if len(v.errs) >= maxReportedViolations {
		v.extra++
		return
	}
	v.errs = append(v.errs, fmt.Errorf("position %d (%s): %s", index, board.Notation(), fmt.Sprintf(format, args...)))
}

func (v *violations) err() error {
	if v.extra > 0 {
		v.errs = append(v.errs, fmt.Errorf("... and %d more", v.extra))
	}
	return errors.Join(v.errs...)
}

// Verify checks a labeled table against the properties a correct analysis must have:
// completeness, graph structure, soundness of terminal values and minimax consistency.
// All violations found are joined into the returned error
func Verify(t *Table) error {
	v := &violations{}

	if t.Len() != ReachablePositions {
		v.errs = append(v.errs, fmt.Errorf("table has %d positions, want %d", t.Len(), ReachablePositions))
	}
	if t.Len() == 0 {
		return v.err()
	}

	root := t.Root()
	if root.Board != (ttt.Board{}) || !root.IsRoot() {
		v.add(RootIndex, root.Board, "root must be the empty board without parents")
	}

	for i := range t.Positions {
		p := &t.Positions[i]
		if idx, ok := t.IndexOf(p.Board); !ok || idx != i {
			v.add(i, p.Board, "board indexed at %d", idx)
		}
		verifyLinks(t, v, i)
		verifyTerminal(v, i, p)
		if !p.Terminal {
			verifyMinimax(t, v, i)
		}
	}

	for _, board := range KnownWins {
		p, ok := t.Lookup(board)
		if !ok {
			v.add(-1, board, "known board missing")
		} else if p.Outcome != WonByCross {
			v.add(-1, board, "known board has outcome %v, want %v", p.Outcome, WonByCross)
		}
	}

	return v.err()
}

func verifyLinks(t *Table, v *violations, i int) {
	p := &t.Positions[i]

	if i != RootIndex && len(p.Parents) == 0 {
		v.add(i, p.Board, "non-root position without parents")
	}
	if p.Turn != p.Board.Turn() {
		v.add(i, p.Board, "turn %v, board parity says %v", p.Turn, p.Board.Turn())
	}

	for _, parent := range p.Parents {
		if parent >= i {
			v.add(i, p.Board, "parent %d discovered after the child", parent)
			continue
		}
		pp := &t.Positions[parent]
		if pp.Turn == p.Turn {
			v.add(i, p.Board, "parent %d has the same turn", parent)
		}
		if !hasEdgeTo(pp, i) {
			v.add(i, p.Board, "parent %d has no edge to it", parent)
		}
	}

	if p.Terminal {
		if len(p.Children) != 0 {
			v.add(i, p.Board, "terminal position with %d children", len(p.Children))
		}
		return
	}

	moves := p.Board.GenerateMoves().Slice()
	if len(moves) != len(p.Children) {
		v.add(i, p.Board, "%d children for %d empty cells", len(p.Children), len(moves))
		return
	}
	for k, e := range p.Children {
		if e.Move != moves[k] {
			v.add(i, p.Board, "child %d has move %v, want %v", k, e.Move, moves[k])
			continue
		}
		if t.Positions[e.Index].Board != p.Board.Place(e.Move, p.Turn) {
			v.add(i, p.Board, "child %d board doesn't match move %v", e.Index, e.Move)
		}
	}
}

func hasEdgeTo(p *Position, index int) bool {
	for _, e := range p.Children {
		if e.Index == index {
			return true
		}
	}
	return false
}

func verifyTerminal(v *violations, i int, p *Position) {
	term := p.Board.Termination()
	wantTerminal := term != ttt.TerminationNone
	if p.Terminal != wantTerminal {
		v.add(i, p.Board, "terminal=%v, board termination is %v", p.Terminal, term)
		return
	}
	if !p.Terminal {
		return
	}

	switch p.Outcome {
	case WonByCross, WonByCircle:
		if !ttt.Won(p.Board, p.Outcome.Winner()) {
			v.add(i, p.Board, "outcome %v without a line", p.Outcome)
		}
	case Draw:
		if term != ttt.TerminationDraw {
			v.add(i, p.Board, "draw on a board terminated by %v", term)
		}
	default:
		v.add(i, p.Board, "terminal position with outcome %v", p.Outcome)
	}
	if p.Optimal != nil {
		v.add(i, p.Board, "terminal position with an optimal set")
	}
}

func verifyMinimax(t *Table, v *violations, i int) {
	p := &t.Positions[i]
	me, opp := WonBy(p.Turn), WonBy(p.Turn.Opponent())

	wins, draws, losses := 0, 0, 0
	for _, e := range p.Children {
		switch t.Positions[e.Index].Outcome {
		case me:
			wins++
		case opp:
			losses++
		case Draw:
			draws++
		}
	}

	for _, e := range p.Optimal {
		if !hasEdgeTo(p, e.Index) {
			v.add(i, p.Board, "optimal edge %v isn't a child", e)
		} else if t.Positions[e.Index].Outcome != p.Outcome {
			v.add(i, p.Board, "optimal move %v leads to %v, position is %v", e.Move, t.Positions[e.Index].Outcome, p.Outcome)
		}
	}

	switch p.Outcome {
	case me:
		if wins == 0 {
			v.add(i, p.Board, "won for the mover without a winning child")
		}
		if len(p.Optimal) != wins {
			v.add(i, p.Board, "%d optimal moves, %d winning children", len(p.Optimal), wins)
		}
	case opp:
		if losses != len(p.Children) {
			v.add(i, p.Board, "lost for the mover, but %d of %d children aren't lost", len(p.Children)-losses, len(p.Children))
		}
	case Draw:
		if wins > 0 || draws == 0 || losses == len(p.Children) {
			v.add(i, p.Board, "draw with %d winning, %d drawing, %d losing children", wins, draws, losses)
		}
		if len(p.Optimal) != draws {
			v.add(i, p.Board, "%d optimal moves, %d drawing children", len(p.Optimal), draws)
		}
	default:
		v.add(i, p.Board, "non-terminal position left %v", p.Outcome)
	}
}
