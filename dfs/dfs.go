// Package dfs implements the backtracking depth-first exit search on
// grid.Grid.
//
// Key features:
//   - MinimumSpaces(g, row, column, opts...): shortest of all discovered paths
//   - Backtracking visited matrix, fresh per call
//   - Hook: OnVisit on every examined cell
//   - Limits: MaxDepth; cancellation via context.Context
package dfs

import (
	"github.com/katalvlaran/mazefinder/grid"
)

// exploreOrder lists the neighbour offsets (row, column) in recursion order:
// north, west, east, south.
var exploreOrder = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// dfsWalker encapsulates state during one MinimumSpaces call.
type dfsWalker struct {
	grid    *grid.Grid // maze being searched, read-only
	opts    DFSOptions // traversal options
	visited [][]bool   // cells on the current path, plus every blocked cell seen
	res     *Result    // result collector
}

// MinimumSpaces performs the backtracking search on g from
// (startRow, startColumn) and reports the shortest distance to an exit.
// An out-of-grid start is not an error: it yields Distance == grid.Unreachable.
// Only an Exit start is short-circuited; any other start, Blocked included,
// has its four neighbours explored.
func MinimumSpaces(g *grid.Grid, startRow, startColumn int, opts ...Option) (*Result, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Start checks
	res := &Result{Distance: grid.Unreachable}
	if !g.InBounds(startRow, startColumn) {
		return res, nil
	}
	if g.Cell(startRow, startColumn) == grid.Exit {
		res.Distance = 0
		return res, nil
	}

	// 4. Fresh visited matrix, start on the path
	visited := make([][]bool, g.Rows())
	for r := range visited {
		visited[r] = make([]bool, g.Columns())
	}
	visited[startRow][startColumn] = true

	w := &dfsWalker{grid: g, opts: dopts, visited: visited, res: res}

	// 5. Explore the four top-level branches
	d, err := w.branches(startRow, startColumn, 0)
	if err != nil {
		return res, err
	}
	res.Distance = d

	return res, nil
}

// branches explores the neighbours of (row, column) with pathLen moves
// already taken and returns the smallest positive branch result.
func (w *dfsWalker) branches(row, column, pathLen int) (int, error) {
	best := grid.Unreachable
	for _, off := range exploreOrder {
		d, err := w.explore(row+off[0], column+off[1], pathLen)
		if err != nil {
			return grid.Unreachable, err
		}
		if d > 0 && (best == grid.Unreachable || d < best) {
			best = d
		}
	}

	return best, nil
}

// explore examines (row, column), reached after pathLen moves, and returns
// the length of the shortest exit path through it or grid.Unreachable.
func (w *dfsWalker) explore(row, column, pathLen int) (int, error) {
	// 1. Bounds and visited checks; neither counts as a step
	if !w.grid.InBounds(row, column) || w.visited[row][column] {
		return grid.Unreachable, nil
	}

	// 2. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return grid.Unreachable, w.opts.Ctx.Err()
	default:
	}

	w.res.Steps++
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(row, column, pathLen)
	}

	// 3. Terminal cells
	switch w.grid.Cell(row, column) {
	case grid.Blocked:
		// stays marked for the rest of the call
		w.visited[row][column] = true
		return grid.Unreachable, nil
	case grid.Exit:
		return pathLen + 1, nil
	}

	// 4. Depth limit: the nearest exit below this cell is pathLen+2 moves away
	if w.opts.MaxDepth > 0 && pathLen+2 > w.opts.MaxDepth {
		return grid.Unreachable, nil
	}

	// 5. Clear cell: on path while its subtree is explored
	w.visited[row][column] = true
	defer func() { w.visited[row][column] = false }()

	return w.branches(row, column, pathLen+1)
}
