package ttt

import "fmt"

// Enum for the squares, row-major starting from the top row
const (
	A3 PosType = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

const (
	PosIllegal PosType = 255
)

var _posNames = [9]string{"a3", "b3", "c3", "a2", "b2", "c2", "a1", "b1", "c1"}

func (pos PosType) Row() int { return int(pos) / 3 }
func (pos PosType) Col() int { return int(pos) % 3 }

func (pos PosType) String() string {
	if int(pos) < len(_posNames) {
		return _posNames[pos]
	}
	return fmt.Sprintf("illegal(%d)", uint8(pos))
}

type MoveList struct {
	Moves [9]PosType
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv PosType) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

// Get the valid part of the move list
func (ml *MoveList) Slice() []PosType {
	return ml.Moves[:ml.Size]
}
