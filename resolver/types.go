package resolver

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridcolor/coloring"
)

// Sentinel errors for Resolve.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("resolver: invalid option supplied")

	// ErrInvalidColorCount aliases coloring.ErrInvalidColorCount so callers
	// can match either name.
	ErrInvalidColorCount = coloring.ErrInvalidColorCount

	// ErrNilColoring aliases coloring.ErrNilColoring.
	ErrNilColoring = coloring.ErrNilColoring
)

// Defaults used when no option overrides them.
const (
	// DefaultMaxIterations caps the number of repair iterations.
	DefaultMaxIterations = 1000
	// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
)

// Schedule selects when recolourings computed during a pass become visible.
type Schedule int

const (
	// Snapshot computes every reassignment from the start-of-iteration state
	// and applies them after the full scan.
	Snapshot Schedule = iota
	// InPlace recolours each node as soon as it is visited.
	InPlace
)

// String returns the lower-case schedule name.
func (s Schedule) String() string {
	switch s {
	case Snapshot:
		return "snapshot"
	case InPlace:
		return "inplace"
	default:
		return fmt.Sprintf("Schedule(%d)", int(s))
	}
}

// ParseSchedule maps a name ("snapshot", "inplace"/"in-place") to its Schedule.
func ParseSchedule(name string) (Schedule, error) {
	switch name {
	case "snapshot", "":
		return Snapshot, nil
	case "inplace", "in-place", "in_place":
		return InPlace, nil
	default:
		return 0, fmt.Errorf("%w: unknown schedule %q", ErrOptionViolation, name)
	}
}

// IterationStats describes one completed iteration.
type IterationStats struct {
	// Iteration is 1 for the first completed iteration.
	Iteration int
	// Conflicts is the number of conflicting nodes at the start of the iteration.
	Conflicts int
	// Recolored counts nodes that drew a new colour (possibly equal to the old one).
	Recolored int
	// Deferred counts conflicting nodes with no available colour.
	Deferred int
}

// Result is the outcome of Resolve.
type Result struct {
	// Iterations is the number of completed repair iterations.
	Iterations int
	// Converged is true iff the run ended because no conflicts remained.
	Converged bool
	// Remaining is the number of conflicting nodes at termination (0 when Converged).
	Remaining int
	// Recolored is the total number of draws over all iterations.
	Recolored int
	// Deferred is the total number of deferrals over all iterations.
	Deferred int
	// Schedule is the schedule the run used.
	Schedule Schedule
}

// Option configures Resolve via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Resolve is invoked.
type Option func(*Options)

// Options holds the resolved Resolve parameters.
type Options struct {
	// Rand is the single source of all colour draws.
	Rand *rand.Rand
	// Schedule selects snapshot-then-apply or apply-as-you-go.
	Schedule Schedule
	// MaxIterations caps the run; 0 only checks the initial state.
	MaxIterations int
	// Workers splits the snapshot scan across goroutines (1 = sequential).
	Workers int
	// OnIteration, if set, is called after every completed iteration.
	OnIteration func(IterationStats)

	err error
}

// DefaultOptions returns Options with a DefaultSeed generator, Snapshot
// schedule, DefaultMaxIterations, one worker and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Rand:          rand.New(rand.NewSource(DefaultSeed)),
		Schedule:      Snapshot,
		MaxIterations: DefaultMaxIterations,
		Workers:       1,
		OnIteration:   func(IterationStats) {},
	}
}

// WithSeed creates a fresh generator with the given seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the generator; nil is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSchedule selects Snapshot or InPlace.
func WithSchedule(s Schedule) Option {
	return func(o *Options) {
		if s != Snapshot && s != InPlace {
			o.err = fmt.Errorf("%w: unknown schedule %v", ErrOptionViolation, s)
			return
		}
		o.Schedule = s
	}
}

// WithMaxIterations sets the iteration cap.
//
//	n > 0: at most n iterations
//	n == 0: only check the initial state
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithWorkers splits the Snapshot scan across n goroutines. n < 1 is an
// option violation; n > 1 combined with InPlace is rejected by Resolve.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnIteration registers a callback run after every completed iteration.
func WithOnIteration(fn func(IterationStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}
