package retro

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
)

type Options struct {
	// Number of goroutines generating children within one BFS level,
	// 1 means fully sequential build
	Workers  int
	Listener *Listener     `json:"-"`
	Logger   zerolog.Logger `json:"-"`
}

const DefaultWorkers = 1

func DefaultOptions() *Options {
	return &Options{
		Workers:  DefaultWorkers,
		Listener: NewListener(),
		Logger:   zerolog.Nop(),
	}
}

func (o Options) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(o)
	return builder.String()
}

// Set the number of expansion workers, at least 1
func (o *Options) SetWorkers(workers int) *Options {
	o.Workers = max(1, workers)
	return o
}

func (o *Options) SetListener(listener *Listener) *Options {
	if listener == nil {
		listener = NewListener()
	}
	o.Listener = listener
	return o
}

func (o *Options) SetLogger(logger zerolog.Logger) *Options {
	o.Logger = logger
	return o
}
