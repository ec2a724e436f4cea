// Package dfs computes the minimum number of moves from a start cell to the
// nearest reachable exit of a grid.Grid by exhaustive depth-first search
// with backtracking.
//
// What:
//
//   - From the start, recurse into the four neighbours in the fixed order
//     north, west, east, south.
//   - A Clear cell is marked "on path" while its subtree is explored and
//     unmarked afterwards, so sibling branches may cross it again through a
//     different prefix. Every simple path is therefore considered and the
//     shortest one wins.
//   - A Blocked cell is marked the first time it is examined and stays marked
//     for the rest of the call; it is never examined twice.
//   - An Exit cell ends its branch with length pathLen+1.
//   - Result.Steps counts examined cells (those past the bounds and
//     visited checks) across the whole call.
//
// Why:
//
//   - Cross-check for bfs: on mazes with a single nearest exit both
//     packages agree on the distance.
//   - Walks the same cells in the same order every run, so Steps is
//     reproducible.
//
// Complexity:
//
//   - Time:   exponential in the number of Clear cells in the worst case
//     (every simple path is enumerated); use WithMaxDepth or WithContext
//     to bound large open mazes.
//   - Memory: O(R×C) for the visited matrix and the recursion stack, whose
//     depth grid.MaxDimension keeps below 256×256 frames.
//
// Options:
//
//   - WithContext(ctx)       allows cancellation via context.Context.
//   - WithOnVisit(fn)        hook on every examined cell.
//   - WithMaxDepth(limit)    drop branches longer than limit moves (>0).
//
// Errors:
//
//   - ErrGridNil             if g is nil.
//   - ErrOptionViolation     if an Option is invalid.
//   - context.Canceled       if ctx is done.
package dfs
