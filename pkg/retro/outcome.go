package retro

import (
	"fmt"

	"github.com/IlikeChooros/go-ttt-retro/pkg/ttt"
)

// Game-theoretic value of a position under optimal play by both sides
type Outcome uint8

const (
	Undetermined Outcome = iota
	Draw
	WonByCross
	WonByCircle
)

// Outcome where 'player' wins, None maps to Undetermined
func WonBy(player ttt.PlayerType) Outcome {
	switch player {
	case ttt.Cross:
		return WonByCross
	case ttt.Circle:
		return WonByCircle
	}
	return Undetermined
}

// Winning player, None for draws and undetermined outcomes
func (o Outcome) Winner() ttt.PlayerType {
	switch o {
	case WonByCross:
		return ttt.Cross
	case WonByCircle:
		return ttt.Circle
	}
	return ttt.None
}

func (o Outcome) Decided() bool {
	return o != Undetermined
}

func (o Outcome) String() string {
	switch o {
	case Undetermined:
		return "undetermined"
	case Draw:
		return "draw"
	case WonByCross:
		return "won-by-x"
	case WonByCircle:
		return "won-by-o"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for _, candidate := range []Outcome{Undetermined, Draw, WonByCross, WonByCircle} {
		if candidate.String() == string(text) {
			*o = candidate
			return nil
		}
	}
	return fmt.Errorf("retro: unknown outcome %q", text)
}
