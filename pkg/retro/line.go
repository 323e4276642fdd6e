package retro

import (
	"fmt"

	"github.com/IlikeChooros/go-ttt-retro/pkg/ttt"
)

// Line returns a principal line from 'board': the first optimal move is played
// on every ply until the game ends. In a forced loss every move is equally bad,
// the first legal one is taken.
func (t *Table) Line(board ttt.Board) ([]ttt.PosType, error) {
	nodes, err := t.LineNodes(board)
	if err != nil {
		return nil, err
	}

	moves := make([]ttt.PosType, 0, len(nodes))
	for i := 1; i < len(nodes); i++ {
		moves = append(moves, lastMove(nodes[i-1].Board, nodes[i].Board))
	}
	return moves, nil
}

// Same as Line, but returns visited positions (including the starting one)
func (t *Table) LineNodes(board ttt.Board) ([]*Position, error) {
	idx, ok := t.IndexOf(board)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBoard, board.Notation())
	}

	node := &t.Positions[idx]
	line := make([]*Position, 0, 10-node.Depth)
	line = append(line, node)

	for !node.Terminal {
		edges := node.Optimal
		if len(edges) == 0 {
			edges = node.Children
		}
		node = &t.Positions[edges[0].Index]
		line = append(line, node)
	}
	return line, nil
}

// Cell where the two boards differ
func lastMove(from, to ttt.Board) ttt.PosType {
	for i := range from {
		if from[i] != to[i] {
			return ttt.PosType(i)
		}
	}
	return ttt.PosIllegal
}
