package retro

// Aggregate numbers of a labeled table
type Summary struct {
	Positions  int `json:"positions"`
	Draws      int `json:"draws"`
	CrossWins  int `json:"cross_wins"`
	CircleWins int `json:"circle_wins"`
	// positions the propagation left without a value, always 0 for a correct table
	Undetermined int `json:"undetermined"`

	Terminal           int `json:"terminal"`
	TerminalDraws      int `json:"terminal_draws"`
	TerminalCrossWins  int `json:"terminal_cross_wins"`
	TerminalCircleWins int `json:"terminal_circle_wins"`

	// Number of positions with given count of marks
	PerDepth []int `json:"per_depth"`

	RootOutcome Outcome `json:"root_outcome"`
	RootOptimal int     `json:"root_optimal"`
	// Mean size of the optimal set over the root's optimal children
	AvgOptimalReplies float64 `json:"avg_optimal_replies"`
}

func Summarize(t *Table) Summary {
	s := Summary{
		Positions: t.Len(),
		PerDepth:  make([]int, 10),
	}

	for i := range t.Positions {
		p := &t.Positions[i]
		s.PerDepth[p.Depth]++

		switch p.Outcome {
		case Draw:
			s.Draws++
		case WonByCross:
			s.CrossWins++
		case WonByCircle:
			s.CircleWins++
		default:
			s.Undetermined++
		}

		if !p.Terminal {
			continue
		}
		s.Terminal++
		switch p.Outcome {
		case Draw:
			s.TerminalDraws++
		case WonByCross:
			s.TerminalCrossWins++
		case WonByCircle:
			s.TerminalCircleWins++
		}
	}

	if t.Len() == 0 {
		return s
	}

	root := t.Root()
	s.RootOutcome = root.Outcome
	s.RootOptimal = len(root.Optimal)
	if s.RootOptimal > 0 {
		replies := 0
		for _, e := range root.Optimal {
			replies += len(t.Positions[e.Index].Optimal)
		}
		s.AvgOptimalReplies = float64(replies) / float64(s.RootOptimal)
	}
	return s
}
