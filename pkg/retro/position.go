package retro

import "github.com/IlikeChooros/go-ttt-retro/pkg/ttt"

// One ply: placing the mark at Move leads to the position at Index in the table
type Edge struct {
	Move  ttt.PosType `json:"move"`
	Index int         `json:"index"`
}

// Position is a unique reachable board, together with the graph links
// discovered by the builder and the value assigned by the propagator.
type Position struct {
	Board ttt.Board
	Turn  ttt.PlayerType // player to move
	Depth int            // number of marks on the board, also the BFS level

	// Table indices of every position that reaches this one in a single ply,
	// the discovering parent comes first
	Parents []int

	// One edge per empty cell, in ascending cell order
	Children []Edge

	Outcome  Outcome
	Terminal bool

	// Children realizing the outcome for the player to move.
	// Nil for terminal positions and for forced losses, where every move is equally bad
	Optimal []Edge
}

func (p *Position) IsRoot() bool {
	return len(p.Parents) == 0
}

// Find the child edge reached with given move
func (p *Position) Child(move ttt.PosType) (Edge, bool) {
	for _, e := range p.Children {
		if e.Move == move {
			return e, true
		}
	}
	return Edge{}, false
}

func (p *Position) IsOptimal(move ttt.PosType) bool {
	for _, e := range p.Optimal {
		if e.Move == move {
			return true
		}
	}
	return false
}

// Moves of the optimal set
func (p *Position) OptimalMoves() []ttt.PosType {
	moves := make([]ttt.PosType, len(p.Optimal))
	for i, e := range p.Optimal {
		moves[i] = e.Move
	}
	return moves
}
