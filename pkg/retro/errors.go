package retro

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-ttt-retro/pkg/ttt"
)

var (
	// The builder produced a position breaking the graph invariants
	ErrInvariant = errors.New("retro: state graph invariant violated")

	// The backward pass reached a position it couldn't resolve
	ErrInconsistent = errors.New("retro: position left undetermined")

	ErrUnknownBoard = errors.New("retro: board is not reachable")
)

type InvariantError struct {
	Parent int // index of the position being expanded
	Board  ttt.Board
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s (parent %d, board %s)", ErrInvariant, e.Reason, e.Parent, e.Board.Notation())
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

type InconsistencyError struct {
	Index  int
	Board  ttt.Board
	Reason string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%v: %s (position %d, board %s)", ErrInconsistent, e.Reason, e.Index, e.Board.Notation())
}

func (e *InconsistencyError) Unwrap() error {
	return ErrInconsistent
}
