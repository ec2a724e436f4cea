// Package dfs defines types and options for the backtracking exit search,
// including cancellation, a per-cell hook, depth limiting, and diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazefinder/grid"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to MinimumSpaces.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with MinimumSpaces(g, row, column, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked for every examined cell with the
	// number of moves taken before entering it.
	OnVisit func(row, column, pathLen int)

	// MaxDepth, if positive, drops every branch that would report more
	// than MaxDepth moves. Zero means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook
//   - No depth limit (MaxDepth = 0)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as the per-cell hook.
func WithOnVisit(fn func(row, column, pathLen int)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits reported distances to limit.
// A limit of 0 disables the limit; a negative limit is an ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// Result captures the outcome of a DFS run.
type Result struct {
	// Distance is the fewest moves to an exit, or grid.Unreachable.
	Distance int

	// Steps counts cells examined during the call (diagnostic).
	Steps int
}

// Reachable reports whether an exit was found.
func (r *Result) Reachable() bool {
	return r.Distance != grid.Unreachable
}
