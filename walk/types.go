// Package walk defines directions, search strategies, options and sentinel
// errors for self-avoiding walk counting.
package walk

import (
	"context"
	"errors"
)

// MaxSteps is the largest step count accepted. Walk counts grow like 2.638^n,
// and past roughly 45 steps the exact count no longer fits in a uint64.
const MaxSteps = 40

var (
	// ErrNegativeSteps is returned for a negative step count.
	ErrNegativeSteps = errors.New("walk: step count must be non-negative")

	// ErrTooManySteps is returned when n exceeds MaxSteps.
	ErrTooManySteps = errors.New("walk: step count exceeds MaxSteps")

	// ErrUnknownStrategy is returned for a Strategy outside Recursive/Iterative.
	ErrUnknownStrategy = errors.New("walk: unknown search strategy")

	// ErrUnknownDirection is returned for a Direction outside Up..Left.
	ErrUnknownDirection = errors.New("walk: unknown direction")
)

// Direction is one of the four lattice moves.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all four moves in exploration order.
var Directions = [4]Direction{Up, Right, Down, Left}

// FirstStep is the direction the symmetry reduction fixes for step one.
const FirstStep = Right

// offsets holds (dx, dy) per Direction; y grows downward.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Valid reports whether d is one of Up, Right, Down, Left.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Offset returns the unit displacement of d. It panics if d is not Valid.
func (d Direction) Offset() (dx, dy int) {
	return offsets[d][0], offsets[d][1]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}

	return "unknown"
}

// Strategy selects how the backtracking search is driven.
type Strategy int

const (
	// Recursive walks the tree with native recursion (depth == n).
	Recursive Strategy = iota
	// Iterative walks the tree with an explicit frame stack.
	Iterative
)

func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	}

	return "unknown"
}

// Option configures a Count or CountFirstStep call.
type Option func(*Options)

// Options holds the per-call search settings.
type Options struct {
	// Ctx is polled for cancellation during the search; defaults to context.Background().
	Ctx context.Context

	// Strategy selects the search driver. Default Recursive.
	Strategy Strategy

	// Symmetry enables the ×4 first-step reduction in Count. Default true.
	Symmetry bool
}

// DefaultOptions returns Options with a background context, the Recursive
// strategy and the symmetry reduction enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: Recursive,
		Symmetry: true,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the search driver.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithoutSymmetry makes Count search all four first steps instead of one.
func WithoutSymmetry() Option {
	return func(o *Options) {
		o.Symmetry = false
	}
}
