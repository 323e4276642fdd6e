package retro

// Statistics of a single finished BFS level
type LevelStats struct {
	Depth      int // level being expanded, its children are at Depth+1
	Expanded   int // positions expanded on this level
	Discovered int // new positions found at Depth+1
	Terminal   int // how many of the discovered ones are terminal
	Total      int // table size after the level
	TimeMs     int // since the build started
}

type LevelFunc func(LevelStats)
type StopFunc func(Summary)

type Listener struct {
	// called after each BFS level, by the building goroutine
	onLevel LevelFunc

	// called once, after propagation finished
	onStop StopFunc
}

func NewListener() *Listener {
	return &Listener{}
}

// Attach new 'level expanded' callback
func (listener *Listener) OnLevel(onLevel LevelFunc) *Listener {
	listener.onLevel = onLevel
	return listener
}

// Attach 'analysis finished' callback, receives the summary of the labeled table
func (listener *Listener) OnStop(onStop StopFunc) *Listener {
	listener.onStop = onStop
	return listener
}

func (listener *Listener) invokeLevel(stats LevelStats) {
	if listener != nil && listener.onLevel != nil {
		listener.onLevel(stats)
	}
}

func (listener *Listener) invokeStop(summary Summary) {
	if listener != nil && listener.onStop != nil {
		listener.onStop(summary)
	}
}
