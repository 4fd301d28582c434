package resolver

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridcolor/coloring"
	"github.com/katalvlaran/gridcolor/gridgraph"
)

// Resolve repairs c in place until no two neighbours share a colour or the
// iteration cap is reached.
//
// Validation happens before any mutation:
//   - c == nil       → ErrNilColoring
//   - k < 1          → ErrInvalidColorCount
//   - invalid Option → ErrOptionViolation
//
// Reaching the cap is reported through Result.Converged, never as an error.
func Resolve(c *coloring.Coloring, k int, opts ...Option) (*Result, error) {
	if c == nil {
		return nil, fmt.Errorf("Resolve: %w", ErrNilColoring)
	}
	if k < 1 {
		return nil, fmt.Errorf("Resolve: k=%d: %w", k, ErrInvalidColorCount)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("Resolve: %w", o.err)
	}
	if o.Schedule == InPlace && o.Workers > 1 {
		return nil, fmt.Errorf("Resolve: %w: in-place schedule cannot use %d workers", ErrOptionViolation, o.Workers)
	}

	r := &runner{
		c:    c,
		grid: c.Grid(),
		k:    k,
		rng:  o.Rand,
		opts: o,
		seen: make([]bool, k+1),
		buf:  make([]int, 0, k),
	}

	return r.run(), nil
}

// runner carries the per-call state of one Resolve.
type runner struct {
	c    *coloring.Coloring
	grid *gridgraph.Grid
	k    int
	rng  *rand.Rand
	opts Options

	// scratch for the sequential available-set computation
	seen []bool
	buf  []int
}

func (r *runner) run() *Result {
	res := &Result{Schedule: r.opts.Schedule}

	for {
		snap := r.c.Colors()
		conflicts := r.scan(snap)
		if len(conflicts) == 0 {
			res.Converged = true
			return res
		}
		if res.Iterations >= r.opts.MaxIterations {
			res.Remaining = len(conflicts)
			return res
		}

		var st IterationStats
		if r.opts.Schedule == InPlace {
			st = r.passInPlace()
		} else {
			st = r.passSnapshot(snap, conflicts)
		}
		res.Iterations++
		st.Iteration = res.Iterations
		st.Conflicts = len(conflicts)
		res.Recolored += st.Recolored
		res.Deferred += st.Deferred
		r.opts.OnIteration(st)
	}
}

// passSnapshot draws every reassignment from snap and applies them once all
// conflicting nodes have been decided.
func (r *runner) passSnapshot(snap []int, conflicts []int) IterationStats {
	var st IterationStats
	pending := make([]int, len(conflicts))

	if r.opts.Workers > 1 {
		cands := r.candidatesParallel(snap, conflicts)
		for x, avail := range cands {
			pending[x] = r.draw(snap[conflicts[x]], avail, &st)
		}
	} else {
		for x, i := range conflicts {
			pending[x] = r.draw(snap[i], r.available(snap, i), &st)
		}
	}

	for x, i := range conflicts {
		r.c.SetColor(i, pending[x])
	}

	return st
}

// passInPlace visits every node in index order and recolours conflicting
// nodes immediately, reading live colours.
func (r *runner) passInPlace() IterationStats {
	var st IterationStats
	live := r.c.Colors()
	for i := range live {
		if !conflicted(r.grid, live, i) {
			continue
		}
		live[i] = r.draw(live[i], r.available(live, i), &st)
		r.c.SetColor(i, live[i])
	}

	return st
}

// draw picks uniformly from avail, or keeps old when avail is empty.
func (r *runner) draw(old int, avail []int, st *IterationStats) int {
	if len(avail) == 0 {
		st.Deferred++
		return old
	}
	st.Recolored++

	return avail[r.rng.Intn(len(avail))]
}

// available returns {1..k} minus the colours of i's neighbours in colors,
// ascending. The slice aliases r.buf and is only valid until the next call.
func (r *runner) available(colors []int, i int) []int {
	for c := range r.seen {
		r.seen[c] = false
	}
	for _, j := range r.grid.Neighbors(i) {
		if c := colors[j]; c >= 1 && c <= r.k {
			r.seen[c] = true
		}
	}
	r.buf = r.buf[:0]
	for c := 1; c <= r.k; c++ {
		if !r.seen[c] {
			r.buf = append(r.buf, c)
		}
	}

	return r.buf
}

// scan returns the nodes in conflict under colors, ascending.
func (r *runner) scan(colors []int) []int {
	if r.opts.Workers > 1 {
		return r.scanParallel(colors)
	}

	var out []int
	for i := range colors {
		if conflicted(r.grid, colors, i) {
			out = append(out, i)
		}
	}

	return out
}

// scanParallel splits [0,V) into contiguous row-major chunks, one per worker.
func (r *runner) scanParallel(colors []int) []int {
	flags := make([]bool, len(colors))
	var g errgroup.Group
	for _, span := range chunks(len(colors), r.opts.Workers) {
		lo, hi := span[0], span[1]
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				flags[i] = conflicted(r.grid, colors, i)
			}
			return nil
		})
	}
	_ = g.Wait()

	var out []int
	for i, f := range flags {
		if f {
			out = append(out, i)
		}
	}

	return out
}

// candidatesParallel computes the available set of every conflicting node
// from snap. Each worker owns its own scratch.
func (r *runner) candidatesParallel(snap []int, conflicts []int) [][]int {
	out := make([][]int, len(conflicts))
	var g errgroup.Group
	for _, span := range chunks(len(conflicts), r.opts.Workers) {
		lo, hi := span[0], span[1]
		g.Go(func() error {
			w := &runner{grid: r.grid, k: r.k, seen: make([]bool, r.k+1)}
			for x := lo; x < hi; x++ {
				w.buf = make([]int, 0, r.k)
				out[x] = w.available(snap, conflicts[x])
			}
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func conflicted(grid *gridgraph.Grid, colors []int, i int) bool {
	for _, j := range grid.Neighbors(i) {
		if colors[j] == colors[i] {
			return true
		}
	}

	return false
}

// chunks splits [0,n) into at most parts half-open spans of near-equal size.
func chunks(n, parts int) [][2]int {
	if parts > n {
		parts = n
	}
	out := make([][2]int, 0, parts)
	for p := 0; p < parts; p++ {
		lo := p * n / parts
		hi := (p + 1) * n / parts
		out = append(out, [2]int{lo, hi})
	}

	return out
}
