package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run measures every implementation at every step count and returns the
// results grouped by step count, in case order, implementations in the order
// given.
func Run(ctx context.Context, impls []Implementation, opts ...Option) ([]Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validate(impls, o); err != nil {
		return nil, err
	}

	rows := make([][]Result, len(o.Cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, n := range o.Cases {
		i, n := i, n
		g.Go(func() error {
			row, err := runCase(gctx, impls, n, o.Timeout)
			if err != nil {
				return err
			}
			rows[i] = row

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("bench: run aborted: %w", err)
	}

	out := make([]Result, 0, len(o.Cases)*len(impls))
	for _, row := range rows {
		out = append(out, row...)
	}

	return out, nil
}

func validate(impls []Implementation, o Options) error {
	if len(impls) == 0 {
		return ErrNoImplementations
	}
	for i, impl := range impls {
		if impl.Name == "" || impl.Count == nil {
			return fmt.Errorf("%w: index %d", ErrInvalidImplementation, i)
		}
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidTimeout, o.Timeout)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.Workers)
	}
	for _, n := range o.Cases {
		if n < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidCase, n)
		}
	}

	return nil
}

// runCase measures all implementations at n and compares them to the first.
// It fails only when the parent context is done.
func runCase(ctx context.Context, impls []Implementation, n int, timeout time.Duration) ([]Result, error) {
	row := make([]Result, len(impls))
	for i, impl := range impls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row[i] = measure(ctx, impl, n, timeout)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	base := row[0]
	for i := 1; i < len(row); i++ {
		if base.Status != StatusOK || row[i].Status != StatusOK {
			continue
		}
		if row[i].Value == base.Value {
			row[i].Status = StatusMatch
		} else {
			row[i].Status = StatusMismatch
		}
	}

	return row, nil
}

type outcome struct {
	value   uint64
	err     error
	elapsed time.Duration
}

// measure runs one call in its own goroutine and waits at most timeout.
// The result channel is buffered so an abandoned call can still finish and exit.
func measure(ctx context.Context, impl Implementation, n int, timeout time.Duration) Result {
	res := Result{N: n, Impl: impl.Name}
	if impl.MaxN > 0 && n > impl.MaxN {
		res.Status = StatusSkipped
		return res
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan outcome, 1)
	start := time.Now()
	go func() {
		v, err := impl.Count(cctx, n)
		done <- outcome{value: v, err: err, elapsed: time.Since(start)}
	}()

	select {
	case out := <-done:
		res.Elapsed = out.elapsed
		switch {
		case out.err == nil:
			res.Value = out.value
			res.Status = StatusOK
		case errors.Is(out.err, context.DeadlineExceeded):
			res.Elapsed = timeout
			res.Status = StatusTimeout
		default:
			res.Status = StatusError
			res.Err = out.err
		}
	case <-cctx.Done():
		res.Elapsed = timeout
		res.Status = StatusTimeout
	}

	return res
}
