package bench

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNoImplementations is returned when Run is given no implementations.
	ErrNoImplementations = errors.New("bench: at least one implementation is required")
	// ErrInvalidImplementation is returned for an implementation without a name or Count.
	ErrInvalidImplementation = errors.New("bench: implementation needs a name and a Count function")
	// ErrInvalidTimeout is returned for a non-positive timeout.
	ErrInvalidTimeout = errors.New("bench: timeout must be positive")
	// ErrInvalidWorkers is returned when fewer than one worker is requested.
	ErrInvalidWorkers = errors.New("bench: workers must be at least 1")
	// ErrInvalidCase is returned for a negative step count in the case list.
	ErrInvalidCase = errors.New("bench: step counts must be non-negative")
)

// CountFunc counts n-step walks. It should return promptly once ctx is done,
// but the harness does not rely on it.
type CountFunc func(ctx context.Context, n int) (uint64, error)

// Implementation is one counter under test.
type Implementation struct {
	Name  string
	Count CountFunc
	// MaxN skips step counts above it; 0 means no limit.
	MaxN int
}

// Status is the outcome of one call.
type Status int

const (
	StatusOK Status = iota
	StatusMatch
	StatusMismatch
	StatusTimeout
	StatusSkipped
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusMatch:
		return "MATCH"
	case StatusMismatch:
		return "DIFF!"
	case StatusTimeout:
		return "TIMEOUT"
	case StatusSkipped:
		return "SKIPPED"
	case StatusError:
		return "ERROR"
	}

	return "UNKNOWN"
}

// Result is one row of a run: implementation Impl at step count N.
type Result struct {
	N       int
	Impl    string
	Value   uint64        // valid for OK, MATCH, DIFF!
	Elapsed time.Duration // the timeout itself for TIMEOUT
	Status  Status
	Err     error // set for ERROR
}

// Option configures Run.
type Option func(*Options)

// Options holds the harness settings.
type Options struct {
	Cases   []int
	Timeout time.Duration
	Workers int
}

// DefaultOptions returns the case list and timeout of the classic benchmark:
// n = 3, 10, 12, 13, 15, 18, 20 with five seconds per call, one worker.
func DefaultOptions() Options {
	return Options{
		Cases:   []int{3, 10, 12, 13, 15, 18, 20},
		Timeout: 5 * time.Second,
		Workers: 1,
	}
}

// WithCases replaces the list of step counts.
func WithCases(ns []int) Option {
	return func(o *Options) {
		o.Cases = append([]int(nil), ns...)
	}
}

// WithTimeout sets the per-call budget.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithWorkers sets how many step counts are measured at once.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}
