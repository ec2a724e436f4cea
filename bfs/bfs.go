// Package bfs computes nearest-exit distances on a grid.Grid by
// breadth-first search.
package bfs

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/mazefinder/grid"
)

// enqueueOrder lists the neighbour offsets (row, column) in the order they
// are discovered: up, left, down, right.
var enqueueOrder = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// queueItem is a cell waiting to be dequeued.
type queueItem struct {
	row, column int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid     *grid.Grid
	opts     BFSOptions
	queue    *queue.Queue[queueItem]
	distance map[int]int // row-major index → discovered distance
	res      *Result
}

// MinimumSpaces runs breadth-first search on g from (startRow, startColumn)
// and reports the distance to the nearest reachable exit.
// An out-of-grid start is not an error: it yields Distance == grid.Unreachable.
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// or the context error if the search was cancelled.
func MinimumSpaces(g *grid.Grid, startRow, startColumn int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{Distance: grid.Unreachable}
	if !g.InBounds(startRow, startColumn) {
		return res, nil
	}
	if g.Cell(startRow, startColumn) == grid.Exit {
		res.Distance = 0
		return res, nil
	}

	w := &walker{
		grid:     g,
		opts:     o,
		queue:    queue.New[queueItem](),
		distance: make(map[int]int, g.Rows()*g.Columns()),
		res:      res,
	}
	w.discover(startRow, startColumn, 0)

	return res, w.loop()
}

// discover records the distance of a newly reached cell and enqueues it.
func (w *walker) discover(row, column, d int) {
	w.distance[w.grid.Index(row, column)] = d
	w.opts.OnEnqueue(row, column, d)
	w.queue.Enqueue(queueItem{row: row, column: column})
}

// loop processes the queue until an exit is dequeued, the queue drains,
// or the context is cancelled.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue.Dequeue()
		w.res.Steps++
		d := w.distance[w.grid.Index(item.row, item.column)]
		w.opts.OnDequeue(item.row, item.column, d)

		switch w.grid.Cell(item.row, item.column) {
		case grid.Blocked:
			continue
		case grid.Exit:
			w.res.Distance = d
			return nil
		}

		w.discoverNeighbors(item, d+1)
	}
	return nil
}

// discoverNeighbors enqueues every in-bounds, undiscovered neighbour of item
// at distance next, honoring MaxDepth.
func (w *walker) discoverNeighbors(item queueItem, next int) {
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, off := range enqueueOrder {
		r, c := item.row+off[0], item.column+off[1]
		if !w.grid.InBounds(r, c) {
			continue
		}
		// first time seen?
		if _, seen := w.distance[w.grid.Index(r, c)]; !seen {
			w.discover(r, c, next)
		}
	}
}
