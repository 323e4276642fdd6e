package ttt

import (
	"fmt"
	"strings"
)

const _fullMask uint16 = 0b111111111

// Board is the whole game state, cells indexed in row-major order.
// It is a plain value, two boards with the same cells are equal (and hash equally as map keys).
type Board [9]PlayerType

// Returns a copy of the board with 'player' mark at 'pos',
// panics if the cell is already taken
func (b Board) Place(pos PosType, player PlayerType) Board {
	if b[pos] != None {
		panic(fmt.Sprintf("ttt: cell %v already taken by %v", pos, b[pos]))
	}
	b[pos] = player
	return b
}

// Bitboard of the given player's marks, bit i is cell i
func (b Board) Bitboard(player PlayerType) uint16 {
	var bb uint16
	for i, v := range b {
		if v == player {
			bb |= 1 << i
		}
	}
	return bb
}

// Number of non-empty cells
func (b Board) Filled() int {
	n := 0
	for _, v := range b {
		if v != None {
			n++
		}
	}
	return n
}

func (b Board) Full() bool {
	return b.Filled() == len(b)
}

// Player to move, derived from the filled-cell parity
func (b Board) Turn() PlayerType {
	if b.Filled()%2 == 0 {
		return Cross
	}
	return Circle
}

// 9 digit form, same as the tuple notation: 0 empty, 1 cross, 2 circle
func (b Board) Compact() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, v := range b {
		sb.WriteByte('0' + byte(v))
	}
	return sb.String()
}

// 3 rows separated by newlines
func (b Board) String() string {
	var sb strings.Builder
	for row := range 3 {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range 3 {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b[3*row+col].String())
		}
	}
	return sb.String()
}
