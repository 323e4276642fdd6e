package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/IlikeChooros/go-ttt-retro/pkg/retro"
	"github.com/IlikeChooros/go-ttt-retro/pkg/ttt"
	"github.com/muesli/termenv"
)

// Cell marker for optimal moves when printing a position
const optimalMarker = "*"

// Printer renders analysis results as styled text, the profile decides
// which escape codes are emitted (termenv.Ascii for none)
type Printer struct {
	out *termenv.Output
}

func NewPrinter(w io.Writer, profile termenv.Profile) *Printer {
	return &Printer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

func (p *Printer) bold(s string) string {
	return p.out.String(s).Bold().String()
}

func (p *Printer) faint(s string) string {
	return p.out.String(s).Faint().String()
}

func (p *Printer) player(pl ttt.PlayerType) string {
	switch pl {
	case ttt.Cross:
		return p.out.String(pl.String()).Foreground(p.out.Color("4")).Bold().String()
	case ttt.Circle:
		return p.out.String(pl.String()).Foreground(p.out.Color("1")).Bold().String()
	}
	return p.faint(pl.String())
}

func (p *Printer) outcome(o retro.Outcome) string {
	switch o {
	case retro.Draw:
		return p.out.String(o.String()).Foreground(p.out.Color("3")).String()
	case retro.WonByCross:
		return p.out.String(o.String()).Foreground(p.out.Color("4")).String()
	case retro.WonByCircle:
		return p.out.String(o.String()).Foreground(p.out.Color("1")).String()
	}
	return p.faint(o.String())
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Summary prints the aggregate numbers of a labeled table
func (p *Printer) Summary(s retro.Summary) {
	p.printf("%s\n", p.bold("Tic-tac-toe retrograde analysis"))
	p.printf("Total number of positions: %d\n", s.Positions)
	p.printf("Total number of drawn positions: %d\n", s.Draws)
	p.printf("Total number of won positions for player 1 (%s): %d\n", p.player(ttt.Cross), s.CrossWins)
	p.printf("Total number of won positions for player 2 (%s): %d\n", p.player(ttt.Circle), s.CircleWins)
	if s.Undetermined > 0 {
		p.printf("Undetermined positions: %d\n", s.Undetermined)
	}
	p.printf("Terminal positions: %d (%d won by %s, %d won by %s, %d drawn)\n",
		s.Terminal, s.TerminalCrossWins, p.player(ttt.Cross), s.TerminalCircleWins, p.player(ttt.Circle), s.TerminalDraws)

	depths := make([]string, len(s.PerDepth))
	for i, n := range s.PerDepth {
		depths[i] = fmt.Sprintf("%d:%d", i, n)
	}
	p.printf("Positions per depth: %s\n", p.faint(strings.Join(depths, " ")))

	p.printf("Root position: %s\n", p.outcome(s.RootOutcome))
	p.printf("Number of optimal moves in root position: %d\n", s.RootOptimal)
	p.printf("Avg. number of optimal replies one ply deeper: %.2f\n", s.AvgOptimalReplies)
}

// Position prints the board, with optimal empty cells marked, and its value
func (p *Printer) Position(pos *retro.Position) {
	for row := range 3 {
		cells := make([]string, 3)
		for col := range 3 {
			cell := ttt.PosType(3*row + col)
			switch {
			case pos.Board[cell] != ttt.None:
				cells[col] = p.player(pos.Board[cell])
			case pos.IsOptimal(cell):
				cells[col] = p.bold(optimalMarker)
			default:
				cells[col] = p.faint(".")
			}
		}
		p.printf("%s\n", strings.Join(cells, " "))
	}

	if pos.Terminal {
		p.printf("terminal, %s\n", p.outcome(pos.Outcome))
		return
	}

	p.printf("to move: %s, outcome: %s\n", p.player(pos.Turn), p.outcome(pos.Outcome))
	if len(pos.Optimal) == 0 {
		p.printf("optimal: %s\n", p.faint("none, every move loses"))
		return
	}
	p.printf("optimal: %s\n", joinMoves(pos.OptimalMoves()))
}

// Line prints a principal line, 'nodes' as returned by Table.LineNodes
func (p *Printer) Line(nodes []*retro.Position, moves []ttt.PosType) {
	if len(nodes) == 0 {
		return
	}
	for i, mv := range moves {
		p.printf("%d. %s %s\n", nodes[i].Depth+1, p.player(nodes[i].Turn), mv)
	}
	last := nodes[len(nodes)-1]
	p.printf("result: %s\n", p.outcome(last.Outcome))
}

// Level prints a progress line of the state graph builder
func (p *Printer) Level(stats retro.LevelStats) {
	p.printf("%s depth %d: expanded %d, discovered %d (%d terminal), total %d, %dms\n",
		p.faint("[build]"), stats.Depth, stats.Expanded, stats.Discovered, stats.Terminal, stats.Total, stats.TimeMs)
}

func joinMoves(moves []ttt.PosType) string {
	names := make([]string, len(moves))
	for i, mv := range moves {
		names[i] = mv.String()
	}
	return strings.Join(names, " ")
}

// JSON writes 'v' as indented JSON
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
