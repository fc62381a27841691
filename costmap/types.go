package costmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for cost-map construction.
var (
	// ErrEmptyMap indicates a map with no rows or no columns.
	ErrEmptyMap = errors.New("costmap: map must have at least one row and one column")
	// ErrRaggedMap indicates rows of differing lengths.
	ErrRaggedMap = errors.New("costmap: all rows must have the same length")
	// ErrBadToken indicates a cell that is neither a non-negative number nor X.
	ErrBadToken = errors.New("costmap: invalid cell token")
)

// Defaults for Random.
const (
	DefaultObstacles      = 50
	DefaultMaxObstacle    = 20
	DefaultCrossableRatio = 0.2

	// defaultSeed replaces seed 0 so the zero value stays reproducible.
	defaultSeed int64 = 1

	crossableMin  = 2.0
	crossableSpan = 8.0
)

// Option customizes Random.
type Option func(*randomConfig)

type randomConfig struct {
	seed      int64
	obstacles int
	maxSize   int
	crossable float64
	clear     [][2]int
}

func newRandomConfig(opts ...Option) randomConfig {
	cfg := randomConfig{
		seed:      defaultSeed,
		obstacles: DefaultObstacles,
		maxSize:   DefaultMaxObstacle,
		crossable: DefaultCrossableRatio,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed fixes the random source. Seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.seed = seed
	}
}

// WithObstacles sets the number of obstacles. Panics on a negative count.
func WithObstacles(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("costmap: WithObstacles(%d)", n))
	}
	return func(c *randomConfig) { c.obstacles = n }
}

// WithMaxObstacleSize bounds obstacle side length. Panics if n < 1.
func WithMaxObstacleSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("costmap: WithMaxObstacleSize(%d)", n))
	}
	return func(c *randomConfig) { c.maxSize = n }
}

// WithCrossableRatio sets the probability that an obstacle is crossable
// rather than impassable. Panics outside [0,1].
func WithCrossableRatio(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("costmap: WithCrossableRatio(%v)", p))
	}
	return func(c *randomConfig) { c.crossable = p }
}

// WithClearCells keeps the given (x,y) cells at cost 1 regardless of
// obstacles, typically the source and goal of a planned search.
func WithClearCells(cells ...[2]int) Option {
	return func(c *randomConfig) { c.clear = append(c.clear, cells...) }
}
