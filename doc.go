// Package sawcount counts self-avoiding walks on the square lattice, and
// times competing counters against each other.
//
// A self-avoiding walk of n steps starts at the origin, moves one unit up,
// down, left or right per step, and never enters a cell twice. The number of
// such walks grows roughly like 2.638^n, so the work is all in the search:
//
//	walk/          the counter: pre-sized occupancy grid, backtracking,
//	               ×4 first-step symmetry, recursive and iterative drivers,
//	               plus an independent reference counter
//	bench/         run counters per n under a timeout and compare results
//	cmd/sawbench/  command-line front end for bench
//
// Quick picture, the 12 two-step walks from O (4 first steps × 3 second steps):
//
//	    ·
//	  · ↑ ·
//	· ← O → ·
//	  · ↓ ·
//	    ·
//
//	go get github.com/katalvlaran/sawcount/walk
package sawcount
