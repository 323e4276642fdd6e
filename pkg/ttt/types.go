package ttt

type PosType uint8
type PlayerType uint8

const (
	None   PlayerType = 0
	Cross  PlayerType = 1 // always moves first
	Circle PlayerType = 2
)

// Returns the other player, None has no opponent
func (p PlayerType) Opponent() PlayerType {
	switch p {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

func (p PlayerType) String() string {
	switch p {
	case Cross:
		return "x"
	case Circle:
		return "o"
	}
	return "."
}
