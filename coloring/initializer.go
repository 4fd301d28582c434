package coloring

import (
	"fmt"
	"math/rand"
	"strings"
)

// Strategy selects how Assign produces the initial colours.
type Strategy int

const (
	// Random draws each node's colour independently and uniformly from [1, K].
	Random Strategy = iota
	// Clustered gives node i the colour ((i div clusterSize) mod K) + 1.
	Clustered
)

// Defaults used when no option overrides them.
const (
	// DefaultSeed seeds the Random strategy when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
	// DefaultClusterSize is the run length of the Clustered strategy.
	DefaultClusterSize = 5
)

const methodAssign = "Assign"

// String returns the lower-case strategy name used by config files and flags.
func (s Strategy) String() string {
	switch s {
	case Random:
		return "random"
	case Clustered:
		return "clustered"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a (case-insensitive) name to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return Random, nil
	case "clustered", "cluster":
		return Clustered, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}

// Option customizes Assign.
type Option func(*assignConfig)

// assignConfig aggregates the knobs Assign reads. Passed by value.
type assignConfig struct {
	rng         *rand.Rand
	clusterSize int
}

// WithRand supplies the generator used by the Random strategy.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("coloring: WithRand(nil)")
	}
	return func(c *assignConfig) { c.rng = r }
}

// WithSeed creates a fresh *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *assignConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithClusterSize sets the run length of the Clustered strategy.
// Non-positive values are reported by Assign as ErrInvalidClusterSize.
func WithClusterSize(size int) Option {
	return func(c *assignConfig) { c.clusterSize = size }
}

// newAssignConfig applies opts over the defaults, last option wins.
func newAssignConfig(opts ...Option) assignConfig {
	cfg := assignConfig{clusterSize: DefaultClusterSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// Assign overwrites every colour of c according to strategy, using colours 1…k.
//
// Validation happens before any mutation; on error c is left untouched:
//   - ErrNilColoring if c is nil.
//   - ErrInvalidColorCount if k < 1.
//   - ErrInvalidClusterSize if strategy is Clustered and the cluster size ≤ 0.
//   - ErrUnknownStrategy for any other Strategy value.
//
// Complexity: O(V).
func Assign(c *Coloring, k int, strategy Strategy, opts ...Option) error {
	if c == nil {
		return fmt.Errorf("%s: %w", methodAssign, ErrNilColoring)
	}
	if k < 1 {
		return fmt.Errorf("%s: k=%d: %w", methodAssign, k, ErrInvalidColorCount)
	}
	cfg := newAssignConfig(opts...)

	switch strategy {
	case Random:
		assignRandom(c, k, cfg.rng)
	case Clustered:
		if cfg.clusterSize <= 0 {
			return fmt.Errorf("%s: clusterSize=%d: %w", methodAssign, cfg.clusterSize, ErrInvalidClusterSize)
		}
		assignClustered(c, k, cfg.clusterSize)
	default:
		return fmt.Errorf("%s: %v: %w", methodAssign, strategy, ErrUnknownStrategy)
	}

	return nil
}

// assignRandom draws every colour from rng in node order.
func assignRandom(c *Coloring, k int, rng *rand.Rand) {
	for i := range c.colors {
		c.colors[i] = rng.Intn(k) + 1
	}
}

// assignClustered colours contiguous index runs, cycling through 1…k.
func assignClustered(c *Coloring, k, size int) {
	for i := range c.colors {
		c.colors[i] = (i/size)%k + 1
	}
}
