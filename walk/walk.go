package walk

import (
	"context"
	"fmt"
)

// checkMask sets how often the search polls its context: once per 4096 nodes.
const checkMask = 4095

// walker holds the search state for one top-level call.
// cells is shared with the Grid it was built from.
type walker struct {
	cells  []bool
	delta  [4]int
	target int

	ctx    context.Context
	done   <-chan struct{} // nil when ctx can never be cancelled
	events int
	err    error
}

func newWalker(ctx context.Context, g *Grid, target int) *walker {
	return &walker{
		cells:  g.cells,
		delta:  g.delta,
		target: target,
		ctx:    ctx,
		done:   ctx.Done(),
	}
}

// Count returns the number of n-step self-avoiding walks from the origin.
// Count(0) is 1: the empty walk.
//
// With default options only walks starting with FirstStep are searched and
// the result is multiplied by 4.
func Count(n int, opts ...Option) (uint64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validateSteps(n); err != nil {
		return 0, err
	}
	if err := validateStrategy(o.Strategy); err != nil {
		return 0, err
	}
	if n == 0 {
		return 1, nil
	}

	if !o.Symmetry {
		return search(n, Directions[:], o)
	}
	c, err := search(n, []Direction{FirstStep}, o)
	if err != nil {
		return 0, err
	}

	return 4 * c, nil
}

// CountFirstStep returns the number of n-step walks whose first step is d.
// For n == 0 there is no first step and the result is 0.
func CountFirstStep(n int, d Direction, opts ...Option) (uint64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validateSteps(n); err != nil {
		return 0, err
	}
	if err := validateStrategy(o.Strategy); err != nil {
		return 0, err
	}
	if !d.Valid() {
		return 0, ErrUnknownDirection
	}
	if n == 0 {
		return 0, nil
	}

	return search(n, []Direction{d}, o)
}

// search allocates a fresh grid for n and counts walks whose first step is in firsts.
func search(n int, firsts []Direction, o Options) (uint64, error) {
	g, err := NewGrid(n)
	if err != nil {
		return 0, err
	}

	return newWalker(o.Ctx, g, n).run(g.Center(), firsts, o.Strategy)
}

// run marks origin, searches every first step in firsts, and clears all marks
// before returning. A cancelled search returns the context error, never a
// partial count.
func (w *walker) run(origin int, firsts []Direction, s Strategy) (uint64, error) {
	w.cells[origin] = true
	var total uint64
	for _, d := range firsts {
		next := origin + w.delta[d]
		w.cells[next] = true
		if s == Iterative {
			total += w.countIterative(next, 1)
		} else {
			total += w.count(next, 1)
		}
		w.cells[next] = false
	}
	w.cells[origin] = false

	if w.err != nil {
		return 0, fmt.Errorf("walk: search for n=%d interrupted: %w", w.target, w.err)
	}

	return total, nil
}

// count returns the number of completions of a walk that has taken step
// steps and currently ends at idx. idx is already marked by the caller.
func (w *walker) count(idx, step int) uint64 {
	if step == w.target {
		return 1
	}
	if w.done != nil && w.interrupted() {
		return 0
	}

	var total uint64
	for _, d := range w.delta {
		next := idx + d
		if w.cells[next] {
			continue
		}
		w.cells[next] = true
		total += w.count(next, step+1)
		w.cells[next] = false
	}

	return total
}

// interrupted polls the context every checkMask+1 calls. Once cancellation
// has been seen it stays set so the search unwinds without further work.
func (w *walker) interrupted() bool {
	if w.err != nil {
		return true
	}
	w.events++
	if w.events&checkMask != 0 {
		return false
	}
	select {
	case <-w.done:
		w.err = w.ctx.Err()
		return true
	default:
		return false
	}
}

func validateSteps(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeSteps, n)
	}
	if n > MaxSteps {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManySteps, n, MaxSteps)
	}

	return nil
}

func validateStrategy(s Strategy) error {
	if s != Recursive && s != Iterative {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return nil
}
