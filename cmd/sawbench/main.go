// Command sawbench times the self-avoiding walk counters against each other.
//
// The recursive engine is the baseline; the iterative engine and the
// hash-set reference counter are compared with it for every step count.
// Defaults can be set through SAWBENCH_CASES, SAWBENCH_TIMEOUT and
// SAWBENCH_WORKERS, either in the environment or in a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/sawcount/bench"
	"github.com/katalvlaran/sawcount/walk"
)

const (
	Version = "1.0.0"
	AppName = "sawbench"
)

// referenceMaxN keeps the slow reference counter out of the large cases.
const referenceMaxN = 14

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	defaults := bench.DefaultOptions()
	var (
		cases   = flag.String("cases", envOr("SAWBENCH_CASES", joinInts(defaults.Cases)), "comma-separated step counts")
		timeout = flag.Duration("timeout", envDuration("SAWBENCH_TIMEOUT", defaults.Timeout), "per-call time budget")
		workers = flag.Int("workers", envInt("SAWBENCH_WORKERS", defaults.Workers), "step counts measured concurrently")
		version = flag.Bool("version", false, "show version information")
	)
	flag.Parse()

	if *version {
		fmt.Printf("%s v%s\n", AppName, Version)
		return
	}

	ns, err := parseInts(*cases)
	if err != nil {
		log.Fatalf("Invalid -cases: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := bench.Run(ctx, implementations(),
		bench.WithCases(ns), bench.WithTimeout(*timeout), bench.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}
	if err := bench.WriteTable(os.Stdout, results); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
}

func implementations() []bench.Implementation {
	return []bench.Implementation{
		{
			Name: "recursive",
			Count: func(ctx context.Context, n int) (uint64, error) {
				return walk.Count(n, walk.WithContext(ctx))
			},
		},
		{
			Name: "iterative",
			Count: func(ctx context.Context, n int) (uint64, error) {
				return walk.Count(n, walk.WithContext(ctx), walk.WithStrategy(walk.Iterative))
			},
		},
		{
			Name: "reference",
			Count: func(_ context.Context, n int) (uint64, error) {
				return walk.CountReference(n)
			},
			MaxN: referenceMaxN,
		},
	}
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no step counts in %q", s)
	}

	return out, nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}

	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}

	return v
}
