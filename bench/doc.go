// Package bench runs several self-avoiding walk counters over a list of step
// counts under a per-call timeout and reports how long each took and whether
// they agree.
//
// What:
//
//   - Run(ctx, impls, opts...): for every n in the case list, call each
//     Implementation once. The first implementation is the baseline; the
//     others are marked MATCH or DIFF! against it.
//   - WriteTable(w, results): render results as a fixed-width table.
//
// Timeouts:
//
//   - Every call runs in its own goroutine with a context that expires after
//     Options.Timeout. If the deadline passes first the call is reported as
//     TIMEOUT and abandoned. Counters keep no shared state, so an abandoned
//     call cannot disturb later ones; counters that honour the context stop
//     early.
//
// Options:
//
//   - WithCases(ns)       step counts to run, in order. Default 3,10,12,13,15,18,20.
//   - WithTimeout(d)      per-call budget. Default 5s.
//   - WithWorkers(k)      number of step counts measured concurrently. Default 1,
//     which keeps timings free of CPU contention.
//
// Errors:
//
//   - ErrNoImplementations, ErrInvalidImplementation, ErrInvalidTimeout,
//     ErrInvalidWorkers, ErrInvalidCase: rejected before anything runs.
//   - ctx.Err() if the parent context is cancelled mid-run.
package bench
