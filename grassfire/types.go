package grassfire

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/costgrid/grid"
)

// Sentinel errors for grassfire operations.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("grassfire: grid is nil")

	// ErrBrokenChain is returned when PathTo cannot descend back to the source.
	ErrBrokenChain = errors.New("grassfire: no descending neighbor toward the source")
)

// Option configures Propagate via functional arguments.
type Option func(*Options)

// Options holds parameters for one propagation run.
type Options struct {
	// Logger receives a debug record per run. Defaults to a discard logger.
	Logger *slog.Logger
}

var discard = sync.OnceValue(func() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
})

// DefaultOptions returns Options with a silent logger.
func DefaultOptions() Options {
	return Options{Logger: discard()}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats counts the work done by one propagation run.
type Stats struct {
	// Pops is the number of cells taken off the worklist.
	Pops int
	// Relaxations is the number of strict cost improvements.
	Relaxations int
}

// Result is a completed propagation. It reads the accumulated costs stored in
// the grid, so it is only valid until the next search on the same grid.
type Result struct {
	Source grid.Coordinate
	Stats  Stats

	g *grid.Grid
}
