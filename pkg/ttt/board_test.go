package ttt

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, notation string) Board {
	t.Helper()
	b, err := ParseBoard(notation)
	require.NoError(t, err)
	return b
}

func TestWon(t *testing.T) {
	tests := []struct {
		board  string
		player PlayerType
		want   bool
	}{
		{"111200200", Cross, true},  // top row
		{"120102100", Cross, true},  // left column
		{"120210001", Cross, true},  // main diagonal
		{"001010100", Cross, true},  // anti diagonal
		{"000000222", Circle, true}, // bottom row
		{"020020020", Circle, true}, // middle column
		{"111200200", Circle, false},
		{"000000000", Cross, false},
		{"121212212", Cross, false},
		{"110220000", Cross, false},
		{"111000000", None, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s-%v", tt.board, tt.player), func(t *testing.T) {
			b := mustParse(t, tt.board)
			if got := Won(b, tt.player); got != tt.want {
				t.Fatalf("Won(%s, %v) = %v, want %v", tt.board, tt.player, got, tt.want)
			}
		})
	}
}

func TestTermination(t *testing.T) {
	assert.Equal(t, TerminationNone, mustParse(t, ".........").Termination())
	assert.Equal(t, TerminationCrossWon, mustParse(t, "xxx/oo./...").Termination())
	assert.Equal(t, TerminationCircleWon, mustParse(t, "xx./ooo/x..").Termination())
	assert.Equal(t, TerminationDraw, mustParse(t, "xox/xox/oxo").Termination())
	assert.Equal(t, TerminationIllegalPosition, mustParse(t, "xxx/ooo/...").Termination())
}

func TestGenerateMoves(t *testing.T) {
	empty := Board{}
	moves := empty.GenerateMoves()
	require.Equal(t, uint8(9), moves.Size)
	for i, mv := range moves.Slice() {
		assert.Equal(t, PosType(i), mv)
	}

	b := mustParse(t, "x.o/.x./o..")
	assert.Equal(t, []PosType{B3, A2, C2, B1, C1}, b.GenerateMoves().Slice())

	full := mustParse(t, "xox/xox/oxo")
	assert.Zero(t, full.GenerateMoves().Size)
}

func TestPlaceAndTurn(t *testing.T) {
	var b Board
	assert.Equal(t, Cross, b.Turn())

	b2 := b.Place(B2, Cross)
	assert.Equal(t, None, b[B2], "Place must not modify the receiver")
	assert.Equal(t, Cross, b2[B2])
	assert.Equal(t, Circle, b2.Turn())
	assert.Equal(t, 1, b2.Filled())

	assert.Panics(t, func() { b2.Place(B2, Circle) })
}

func TestRandomPlayout(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		var b Board
		turn := Cross
		for b.Termination() == TerminationNone {
			moves := b.GenerateMoves()
			if moves.Size == 0 {
				t.Fatalf("no legal moves on a non terminated board\n%v", b)
			}
			b = b.Place(moves.Slice()[r.Intn(int(moves.Size))], turn)
			turn = turn.Opponent()
		}
		if b.Termination() == TerminationIllegalPosition {
			t.Fatalf("legal playout ended in an illegal position\n%v", b)
		}
	}
}

func TestParseBoard(t *testing.T) {
	want := Board{Cross, Cross, Cross, Circle, None, None, Circle, None, None}

	for _, notation := range []string{
		"xxx/o../o..",
		"(1,1,1,2,0,0,2,0,0)",
		"111200200",
		"XXX O-- O__",
	} {
		got, err := ParseBoard(notation)
		require.NoError(t, err, notation)
		assert.Equal(t, want, got, notation)
	}

	assert.Equal(t, "xxx/o../o..", want.Notation())
	assert.Equal(t, "111200200", want.Compact())
	assert.Equal(t, "x x x\no . .\no . .", want.String())

	for _, bad := range []string{"", "xxx", "xxxxxxxxxx", "xxx/o../o.z"} {
		_, err := ParseBoard(bad)
		assert.ErrorIs(t, err, ErrBadNotation, bad)
	}
}

func TestSymmetriesPreserveWins(t *testing.T) {
	b := mustParse(t, "xxx/oo./...")
	seen := make(map[Board]bool)
	for _, s := range b.Symmetries() {
		seen[s] = true
		assert.True(t, Won(s, Cross), "\n%v", s)
		assert.Equal(t, b.Filled(), s.Filled())
	}
	assert.Len(t, seen, 8)

	center := mustParse(t, "..../x..../")
	for _, s := range center.Symmetries() {
		assert.Equal(t, center, s)
	}
}

func BenchmarkWon(b *testing.B) {
	board := Board{Cross, Circle, None, Circle, Cross, None, None, None, Cross}
	var r bool
	for i := 0; i < b.N; i++ {
		r = Won(board, Cross)
	}
	_ = r
}
