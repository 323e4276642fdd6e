package report

import (
	"github.com/IlikeChooros/go-ttt-retro/pkg/retro"
	"github.com/IlikeChooros/go-ttt-retro/pkg/ttt"
)

// JSON form of a single looked up position
type PositionInfo struct {
	Board    string        `json:"board"`
	Turn     string        `json:"turn"`
	Depth    int           `json:"depth"`
	Terminal bool          `json:"terminal"`
	Outcome  retro.Outcome `json:"outcome"`
	Optimal  []string      `json:"optimal"`
	Parents  int           `json:"parents"`
	Children int           `json:"children"`
}

func NewPositionInfo(pos *retro.Position) PositionInfo {
	optimal := make([]string, 0, len(pos.Optimal))
	for _, mv := range pos.OptimalMoves() {
		optimal = append(optimal, mv.String())
	}
	return PositionInfo{
		Board:    pos.Board.Notation(),
		Turn:     pos.Turn.String(),
		Depth:    pos.Depth,
		Terminal: pos.Terminal,
		Outcome:  pos.Outcome,
		Optimal:  optimal,
		Parents:  len(pos.Parents),
		Children: len(pos.Children),
	}
}

// JSON form of a principal line
type LineInfo struct {
	Start  string        `json:"start"`
	Moves  []string      `json:"moves"`
	Result retro.Outcome `json:"result"`
}

func NewLineInfo(start ttt.Board, nodes []*retro.Position, moves []ttt.PosType) LineInfo {
	info := LineInfo{Start: start.Notation(), Moves: make([]string, len(moves))}
	for i, mv := range moves {
		info.Moves[i] = mv.String()
	}
	if len(nodes) > 0 {
		info.Result = nodes[len(nodes)-1].Outcome
	}
	return info
}
