// Package walk counts self-avoiding walks (SAWs) on the square lattice.
//
// What:
//
//   - Count(n): the exact number of n-step walks that start at the origin,
//     move one unit up, down, left or right per step, and never revisit a cell.
//     All rotations and reflections are counted separately.
//   - CountFirstStep(n, d): the number of those walks whose first step is d.
//   - CountReference(n): an independent, deliberately plain counter used to
//     cross-check the fast engines.
//   - Grid: the occupancy grid the engines search over.
//
// How:
//
//   - The grid is square with side 2n+1 and the walk starts at its center
//     (n, n). No walk of n steps can leave it, so the search never tests
//     bounds: a move is one addition of a precomputed index delta.
//   - Backtracking marks a cell when the walk enters it and clears the mark
//     when the search returns, so the marked cells are always exactly the
//     cells of the current partial walk.
//   - Symmetry reduction: the lattice is invariant under 90° rotation, so only
//     walks whose first step is FirstStep are searched and the result is
//     multiplied by 4. The reduction is applied at the first step only.
//
// Caveat: the ×4 reduction holds only for the unobstructed square lattice.
// Obstacles or other lattice shapes break it; WithoutSymmetry searches all
// four first steps and stays correct in that case.
//
// Options:
//
//   - WithContext(ctx)   cooperative cancellation, polled every 4096 nodes.
//   - WithStrategy(s)    Recursive (default) or Iterative (explicit stack).
//   - WithoutSymmetry()  disable the ×4 reduction.
//
// Complexity:
//
//   - Time:   O(c_n) where c_n ≈ 2.638^n is the number of walks.
//   - Memory: O(n²) for the grid, O(n) for the search stack.
//
// Errors:
//
//   - ErrNegativeSteps     n < 0.
//   - ErrTooManySteps      n > MaxSteps; the count would not fit in uint64.
//   - ErrUnknownStrategy   WithStrategy got a value other than Recursive/Iterative.
//   - ErrUnknownDirection  CountFirstStep got an invalid Direction.
//   - context errors       the search was cancelled (wrapped, test with errors.Is).
//
// Known values (OEIS A001411): 1, 4, 12, 36, 100, 284, 780, 2172, 5916, ...
package walk
