package retro

import (
	"fmt"

	"github.com/IlikeChooros/go-ttt-retro/pkg/ttt"
)

const (
	// The empty board is always discovered first
	RootIndex = 0

	// Number of distinct boards reachable with alternating play from the empty board,
	// terminal ones included
	ReachablePositions = 5478
)

// Table is the append-only arena of positions, indexed by discovery order.
// Boards are deduplicated by value, through the index map.
type Table struct {
	Positions []Position
	index     map[ttt.Board]int
}

func newTable(capacity int) *Table {
	return &Table{
		Positions: make([]Position, 0, capacity),
		index:     make(map[ttt.Board]int, capacity),
	}
}

// Insert the position, if its board isn't known yet.
// Returns index of the position holding that board and whether it was just created
func (t *Table) insertOrFind(p Position) (int, bool) {
	if idx, ok := t.index[p.Board]; ok {
		return idx, false
	}
	idx := len(t.Positions)
	t.Positions = append(t.Positions, p)
	t.index[p.Board] = idx
	return idx, true
}

func (t *Table) Len() int {
	return len(t.Positions)
}

func (t *Table) Root() *Position {
	return &t.Positions[RootIndex]
}

func (t *Table) At(index int) *Position {
	return &t.Positions[index]
}

func (t *Table) IndexOf(board ttt.Board) (int, bool) {
	idx, ok := t.index[board]
	return idx, ok
}

// Find the position with exactly this board
func (t *Table) Lookup(board ttt.Board) (*Position, bool) {
	idx, ok := t.index[board]
	if !ok {
		return nil, false
	}
	return &t.Positions[idx], true
}

func (t *Table) String() string {
	if t.Len() == 0 {
		return "Table={Size=0}"
	}
	return fmt.Sprintf("Table={Size=%d, Root=%v}", t.Len(), t.Root().Outcome)
}
