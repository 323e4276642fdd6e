package retro

import (
	"context"
	"fmt"

	"github.com/IlikeChooros/go-ttt-retro/pkg/ttt"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// A board generated from a parent, before it's merged into the table
type candidate struct {
	move  ttt.PosType
	board ttt.Board
	// the mover completed a line
	won bool
	// the player who just moved can't complete the opponent's line,
	// so this is only set for boards no legal game reaches
	opponentWon bool
}

// Generate every child board of 'board', 'turn' being the player to move.
// Pure function, safe to call from multiple goroutines
func expand(board ttt.Board, turn ttt.PlayerType) []candidate {
	moves := board.GenerateMoves()
	out := make([]candidate, moves.Size)
	for i, mv := range moves.Slice() {
		child := board.Place(mv, turn)
		won := ttt.Won(child, turn)
		out[i] = candidate{
			move:        mv,
			board:       child,
			won:         won,
			opponentWon: ttt.Won(child, turn.Opponent()),
		}
	}
	return out
}

type builder struct {
	table   *Table
	workers int
	log     zerolog.Logger
	lis     *Listener
	timer   *_Timer
}

// Build discovers every position reachable from the empty board, Cross to move.
//
// The positions are stored in breadth-first discovery order, so every child
// has a greater index than each of its parents. Propagate depends on that.
// With opts.Workers > 1 children of one level are generated concurrently,
// but merged into the table in the same order as the sequential build, the result is identical.
func Build(ctx context.Context, opts *Options) (*Table, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	b := &builder{
		table:   newTable(ReachablePositions),
		workers: max(1, opts.Workers),
		log:     opts.Logger,
		lis:     opts.Listener,
		timer:   _NewTimer(),
	}

	if err := b.run(ctx); err != nil {
		return nil, err
	}
	return b.table, nil
}

func (b *builder) run(ctx context.Context) error {
	var root ttt.Board
	b.table.insertOrFind(Position{
		Board: root,
		Turn:  root.Turn(),
	})

	// FIFO queue, consumed one BFS level at a time
	queue := []int{RootIndex}
	for depth := 0; len(queue) > 0; depth++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		level := queue
		queue = nil

		children, err := b.expandLevel(ctx, level)
		if err != nil {
			return err
		}

		sizeBefore := b.table.Len()
		terminal := 0
		for i, parent := range level {
			next, nTerminal, err := b.merge(parent, children[i])
			if err != nil {
				return err
			}
			queue = append(queue, next...)
			terminal += nTerminal
		}

		stats := LevelStats{
			Depth:      depth,
			Expanded:   len(level),
			Discovered: b.table.Len() - sizeBefore,
			Terminal:   terminal,
			Total:      b.table.Len(),
			TimeMs:     b.timer.Deltatime(),
		}
		b.log.Debug().
			Int("depth", stats.Depth).
			Int("expanded", stats.Expanded).
			Int("discovered", stats.Discovered).
			Int("terminal", stats.Terminal).
			Int("total", stats.Total).
			Msg("level-expanded")
		b.lis.invokeLevel(stats)
	}

	return nil
}

// Generate children for every position of the level, result is indexed like 'level'
func (b *builder) expandLevel(ctx context.Context, level []int) ([][]candidate, error) {
	out := make([][]candidate, len(level))

	if b.workers <= 1 {
		for i, idx := range level {
			p := b.table.At(idx)
			out[i] = expand(p.Board, p.Turn)
		}
		return out, nil
	}

	// Table isn't modified until the whole level is generated
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, idx := range level {
		board, turn := b.table.At(idx).Board, b.table.At(idx).Turn
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = expand(board, turn)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Attach generated children to the parent, creating positions for unseen boards.
// Returns the non-terminal newly created positions (to be expanded next)
// and the number of terminal ones
func (b *builder) merge(parent int, children []candidate) ([]int, int, error) {
	turn := b.table.At(parent).Turn
	opponent := turn.Opponent()
	edges := make([]Edge, 0, len(children))
	next := make([]int, 0, len(children))
	terminal := 0

	for _, c := range children {
		if c.opponentWon {
			return nil, 0, &InvariantError{Parent: parent, Board: c.board, Reason: "opponent of the mover has a line"}
		}

		idx, created := b.table.insertOrFind(newPosition(c, turn, b.table.At(parent).Depth+1, parent))
		child := b.table.At(idx)

		if created {
			if err := checkDiscovered(child, parent); err != nil {
				return nil, 0, err
			}
			if child.Terminal {
				terminal++
			} else {
				next = append(next, idx)
			}
		} else {
			// Reached again through another move order
			if child.Turn != opponent {
				return nil, 0, &InvariantError{
					Parent: parent,
					Board:  c.board,
					Reason: fmt.Sprintf("known position has turn %v, expected %v", child.Turn, opponent),
				}
			}
			child.Parents = append(child.Parents, parent)
		}

		edges = append(edges, Edge{Move: c.move, Index: idx})
	}

	b.table.At(parent).Children = edges
	return next, terminal, nil
}

func newPosition(c candidate, mover ttt.PlayerType, depth, parent int) Position {
	p := Position{
		Board:   c.board,
		Turn:    mover.Opponent(),
		Depth:   depth,
		Parents: []int{parent},
	}

	if c.won {
		p.Outcome = WonBy(mover)
	}
	p.Terminal = p.Outcome.Decided() || c.board.Full()
	if p.Terminal && !p.Outcome.Decided() {
		p.Outcome = Draw
	}
	return p
}

// Assertions on a freshly created position
func checkDiscovered(p *Position, parent int) error {
	if p.Turn != p.Board.Turn() {
		return &InvariantError{
			Parent: parent,
			Board:  p.Board,
			Reason: fmt.Sprintf("turn %v doesn't match the filled-cell parity", p.Turn),
		}
	}
	if p.Terminal && !p.Outcome.Decided() {
		return &InvariantError{Parent: parent, Board: p.Board, Reason: "terminal position without an outcome"}
	}
	if !p.Terminal && p.Outcome.Decided() {
		return &InvariantError{Parent: parent, Board: p.Board, Reason: "non-terminal position with an outcome"}
	}
	return nil
}
