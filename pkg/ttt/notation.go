package ttt

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadNotation = errors.New("ttt: bad board notation")

// ParseBoard reads a board written as 9 cells in row-major order.
//
// Each cell is one of:
//
//	x X 1  - cross
//	o O 2  - circle
//	. - _ 0 - empty
//
// Slashes, commas, parentheses and whitespace are ignored, so all of these
// describe the same board:
//
//	"xxx/o../o.."
//	"(1,1,1,2,0,0,2,0,0)"
//	"111200200"
func ParseBoard(notation string) (Board, error) {
	var board Board
	n := 0

	for _, r := range notation {
		var cell PlayerType
		switch r {
		case '/', ',', '(', ')', ' ', '\t', '\n':
			continue
		case 'x', 'X', '1':
			cell = Cross
		case 'o', 'O', '2':
			cell = Circle
		case '.', '-', '_', '0':
			cell = None
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", ErrBadNotation, r)
		}

		if n >= len(board) {
			return Board{}, fmt.Errorf("%w: more than %d cells in %q", ErrBadNotation, len(board), notation)
		}
		board[n] = cell
		n++
	}

	if n != len(board) {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrBadNotation, n, len(board))
	}
	return board, nil
}

// Notation returns the board in the slash separated form accepted by ParseBoard
func (b Board) Notation() string {
	var sb strings.Builder
	for row := range 3 {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range 3 {
			sb.WriteString(b[3*row+col].String())
		}
	}
	return sb.String()
}
