// Package bfs computes the minimum number of moves from a start cell to the
// nearest reachable exit of a grid.Grid using breadth-first search.
//
// What
//
//   - Explore cells level by level from the start, four directions only
//     (up, left, down, right, in that enqueue order).
//   - Returns a Result holding:
//   - Distance: moves to the nearest exit, or grid.Unreachable (-1)
//   - Steps: number of dequeue iterations performed (diagnostic)
//   - Supports functional hooks:
//   - OnEnqueue (when a cell is first discovered)
//   - OnDequeue (when a cell is taken from the queue)
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Discovery rule
//
//	A cell's distance is fixed the first time it is discovered and it is
//	enqueued at most once. Blocked neighbours are discovered and enqueued
//	like any other cell; they are discarded when dequeued, without expanding
//	their neighbours. An exit ends the search when it is dequeued.
//
// Start cell
//
//	A start outside the grid (negative, or at or beyond Rows()/Columns())
//	yields Distance == grid.Unreachable without searching. A start on an
//	exit yields Distance == 0 and Steps == 0.
//
// Complexity (R×C = grid size)
//
//   - Time:   O(R×C)   (each cell enqueued at most once)
//   - Memory: O(R×C)   (queue and distance map)
//
// Usage
//
//	res, err := bfs.MinimumSpaces(g, row, column)
//	if err != nil {
//		// ErrGridNil, ErrOptionViolation or a context error
//	}
//	if res.Reachable() {
//		fmt.Println("moves:", res.Distance)
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):      set a custom context for cancellation.
//   - WithMaxDepth(d):       never discover cells deeper than d (>0).
//   - WithOnEnqueue(fn):     hook when a cell is discovered.
//   - WithOnDequeue(fn):     hook when a cell is dequeued.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           if the context is cancelled mid-search.
package bfs
