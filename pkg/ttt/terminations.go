package ttt

type Termination int

const (
	TerminationNone            Termination = 0
	TerminationCircleWon       Termination = 1
	TerminationCrossWon        Termination = 2
	TerminationDraw            Termination = 4
	TerminationIllegalPosition Termination = 16
)

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "none"
	case TerminationCircleWon:
		return "circle-won"
	case TerminationCrossWon:
		return "cross-won"
	case TerminationDraw:
		return "draw"
	case TerminationIllegalPosition:
		return "illegal"
	}
	return "unknown"
}

// horizontal, vertical and diagonal patterns as bitboards
var _winningBitboardPatterns = [8]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

func hasLine(bb uint16) bool {
	for _, pattern := range _winningBitboardPatterns {
		if bb&pattern == pattern {
			return true
		}
	}
	return false
}

// Won reports whether any row, column or diagonal is fully taken by 'player'
func Won(b Board, player PlayerType) bool {
	if player == None {
		return false
	}
	return hasLine(b.Bitboard(player))
}

// Evaluate how the game on this board ended (if it did).
// A board where both players completed a line can't come from legal play,
// it's reported as TerminationIllegalPosition
func (b Board) Termination() Termination {
	crossWon := hasLine(b.Bitboard(Cross))
	circleWon := hasLine(b.Bitboard(Circle))

	switch {
	case crossWon && circleWon:
		return TerminationIllegalPosition
	case crossWon:
		return TerminationCrossWon
	case circleWon:
		return TerminationCircleWon
	case b.Full():
		return TerminationDraw
	}
	return TerminationNone
}
