package retro

import (
	"context"
	"errors"
	"testing"

	"github.com/IlikeChooros/go-ttt-retro/pkg/ttt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeTable(t testing.TB) *Table {
	t.Helper()
	table, err := Analyze(context.Background(), nil)
	require.NoError(t, err)
	return table
}

func lookup(t *testing.T, table *Table, notation string) *Position {
	t.Helper()
	board, err := ttt.ParseBoard(notation)
	require.NoError(t, err)
	p, ok := table.Lookup(board)
	require.True(t, ok, "board %s not in the table", notation)
	return p
}

func TestKnownWins(t *testing.T) {
	table := analyzeTable(t)

	for _, board := range KnownWins {
		t.Run(board.Compact(), func(t *testing.T) {
			p, ok := table.Lookup(board)
			require.True(t, ok)
			assert.Equal(t, WonByCross, p.Outcome)
			assert.True(t, p.Terminal)
			assert.True(t, ttt.Won(board, ttt.Cross))
		})
	}
}

func TestRootIsDraw(t *testing.T) {
	table := analyzeTable(t)
	root := table.Root()

	assert.Equal(t, Draw, root.Outcome)
	assert.False(t, root.Terminal)

	// every opening keeps the draw, edges included
	require.Len(t, root.Optimal, 9)
	assert.Equal(t, root.Children, root.Optimal)
}

func TestOptimalReplies(t *testing.T) {
	table := analyzeTable(t)

	tests := []struct {
		board   string
		outcome Outcome
		optimal []ttt.PosType
	}{
		// center opening, only corner replies hold the draw
		{".../.x./...", Draw, []ttt.PosType{ttt.A3, ttt.C3, ttt.A1, ttt.C1}},
		// corner opening, only the center holds
		{"x../.../...", Draw, []ttt.PosType{ttt.B2}},
		// cross completes the top row
		{"xx./oo./...", WonByCross, nil},
		// circle to move, cross threatens the top row and the left column
		{"xx./xo./..o", WonByCross, nil},
	}

	for _, tt := range tests {
		t.Run(tt.board, func(t *testing.T) {
			p := lookup(t, table, tt.board)
			assert.Equal(t, tt.outcome, p.Outcome)
			if tt.optimal != nil {
				assert.Equal(t, tt.optimal, p.OptimalMoves())
			}
		})
	}

	// immediate win is among the optimal moves
	p := lookup(t, table, "xx./oo./...")
	assert.True(t, p.IsOptimal(ttt.C3))

	// circle can't avoid the loss, no move is preferred
	lost := lookup(t, table, "xx./xo./..o")
	assert.Equal(t, ttt.Circle, lost.Turn)
	assert.Nil(t, lost.Optimal)
}

func TestMinimaxConsistency(t *testing.T) {
	table := analyzeTable(t)

	for i := range table.Positions {
		p := table.At(i)
		if p.Terminal {
			assert.Nil(t, p.Optimal)
			continue
		}

		me, opp := WonBy(p.Turn), WonBy(p.Turn.Opponent())
		outcomes := make(map[Outcome]int)
		for _, e := range p.Children {
			outcomes[table.At(e.Index).Outcome]++
		}

		switch p.Outcome {
		case me:
			require.NotZero(t, outcomes[me], "position %d", i)
			for _, e := range p.Optimal {
				require.Equal(t, me, table.At(e.Index).Outcome, "position %d", i)
			}
		case opp:
			require.Equal(t, len(p.Children), outcomes[opp], "position %d", i)
		case Draw:
			require.Zero(t, outcomes[me], "position %d", i)
			require.NotZero(t, outcomes[Draw], "position %d", i)
			require.Len(t, p.Optimal, outcomes[Draw], "position %d", i)
		default:
			t.Fatalf("position %d left %v", i, p.Outcome)
		}
	}
}

func TestSymmetricBoardsShareOutcome(t *testing.T) {
	table := analyzeTable(t)

	for i := range table.Positions {
		p := table.At(i)
		for _, image := range p.Board.Symmetries() {
			q, ok := table.Lookup(image)
			if !ok {
				t.Fatalf("image of a reachable board is unreachable:\n%v\n\n%v", p.Board, image)
			}
			if q.Outcome != p.Outcome {
				t.Fatalf("symmetric boards differ: %v vs %v\n%v\n\n%v", p.Outcome, q.Outcome, p.Board, image)
			}
		}
	}
}

func TestPropagateDeterministic(t *testing.T) {
	a := analyzeTable(t)
	b := analyzeTable(t)

	require.Equal(t, a.Len(), b.Len())
	for i := range a.Positions {
		if a.At(i).Board != b.At(i).Board || a.At(i).Outcome != b.At(i).Outcome {
			t.Fatalf("run differs at %d", i)
		}
	}
	assert.Equal(t, Summarize(a), Summarize(b))
}

// hand made tables breaking the discovery order
func TestPropagateInconsistent(t *testing.T) {
	t.Run("child before parent", func(t *testing.T) {
		table := newTable(2)
		table.insertOrFind(Position{Turn: ttt.Cross, Children: []Edge{{Move: ttt.A3, Index: 1}}})
		table.insertOrFind(Position{
			Board:    ttt.Board{}.Place(ttt.A3, ttt.Cross),
			Turn:     ttt.Circle,
			Children: []Edge{{Move: ttt.B3, Index: 0}},
		})

		err := Propagate(table)
		var incErr *InconsistencyError
		require.True(t, errors.As(err, &incErr), "got %v", err)
		assert.Equal(t, 1, incErr.Index)
		assert.ErrorIs(t, err, ErrInconsistent)
	})

	t.Run("undetermined child", func(t *testing.T) {
		table := newTable(2)
		table.insertOrFind(Position{Turn: ttt.Cross, Children: []Edge{{Move: ttt.A3, Index: 1}}})
		table.insertOrFind(Position{
			Board:    ttt.Board{}.Place(ttt.A3, ttt.Cross),
			Turn:     ttt.Circle,
			Terminal: true,
		})

		err := Propagate(table)
		var incErr *InconsistencyError
		require.True(t, errors.As(err, &incErr), "got %v", err)
		assert.Equal(t, RootIndex, incErr.Index)
		assert.Contains(t, err.Error(), "still undetermined")
	})
}

func TestSummary(t *testing.T) {
	table := analyzeTable(t)
	s := Summarize(table)

	assert.Equal(t, ReachablePositions, s.Positions)
	assert.Equal(t, s.Positions, s.Draws+s.CrossWins+s.CircleWins)
	assert.Zero(t, s.Undetermined)
	assert.Equal(t, 958, s.Terminal)
	assert.Equal(t, 626, s.TerminalCrossWins)
	assert.Equal(t, 316, s.TerminalCircleWins)
	assert.Equal(t, 16, s.TerminalDraws)
	assert.Equal(t, []int{1, 9, 72, 252, 756, 1260, 1520, 1140, 390, 78}, s.PerDepth)
	assert.Equal(t, Draw, s.RootOutcome)
	assert.Equal(t, 9, s.RootOptimal)
	assert.Greater(t, s.AvgOptimalReplies, 1.0)

	t.Logf("%+v", s)
}

func BenchmarkPropagate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		table := buildTable(b, 1)
		b.StartTimer()
		if err := Propagate(table); err != nil {
			b.Fatal(err)
		}
	}
}
