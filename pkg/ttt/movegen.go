package ttt

import "math/bits"

// Empty cells of the board, in ascending index order
func (b Board) GenerateMoves() *MoveList {
	movelist := NewMoveList()

	free := uint(_fullMask ^ (b.Bitboard(Cross) | b.Bitboard(Circle)))
	for free != 0 {
		movelist.AppendMove(PosType(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}
