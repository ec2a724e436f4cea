package bfs_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazefinder/bfs"
	"github.com/katalvlaran/mazefinder/grid"
)

// ring is the 3×3 maze with a blocked centre and the exit in the far corner.
const ring = "3,3\n0 0 0\n0 1 0\n0 0 2\n"

func mustGrid(t testing.TB, src string) *grid.Grid {
	t.Helper()
	g := grid.New()
	require.NoError(t, g.Read(strings.NewReader(src)))
	return g
}

// TestMinimumSpaces_Errors verifies that invalid inputs and options are rejected.
func TestMinimumSpaces_Errors(t *testing.T) {
	_, err := bfs.MinimumSpaces(nil, 0, 0)
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	g := mustGrid(t, ring)
	_, err = bfs.MinimumSpaces(g, 0, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestMinimumSpaces_Ring pins both the distance and the dequeue count.
func TestMinimumSpaces_Ring(t *testing.T) {
	g := mustGrid(t, ring)
	res, err := bfs.MinimumSpaces(g, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Distance)
	assert.Equal(t, 9, res.Steps)
	assert.True(t, res.Reachable())
}

func TestMinimumSpaces_ExitAtStart(t *testing.T) {
	g := mustGrid(t, ring)
	res, err := bfs.MinimumSpaces(g, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Distance)
	assert.Equal(t, 0, res.Steps)
}

// TestMinimumSpaces_OutOfBounds covers negative starts and the starts equal to
// the grid size, all of which report Unreachable instead of panicking.
func TestMinimumSpaces_OutOfBounds(t *testing.T) {
	g := mustGrid(t, ring)
	starts := [][2]int{{3, 0}, {0, 3}, {3, 3}, {4, 1}, {-1, 0}, {0, -1}}
	for _, s := range starts {
		var res *bfs.Result
		var err error
		require.NotPanics(t, func() { res, err = bfs.MinimumSpaces(g, s[0], s[1]) })
		require.NoError(t, err)
		assert.Equal(t, grid.Unreachable, res.Distance, "start %v", s)
		assert.Equal(t, 0, res.Steps, "start %v", s)
	}
}

func TestMinimumSpaces_NotLoaded(t *testing.T) {
	res, err := bfs.MinimumSpaces(grid.New(), 0, 0)
	require.NoError(t, err)
	assert.False(t, res.Reachable())
}

func TestMinimumSpaces_Walled(t *testing.T) {
	g := mustGrid(t, "3,3\n0 0 0\n0 1 1\n0 1 2\n")
	res, err := bfs.MinimumSpaces(g, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Unreachable, res.Distance)
}

// TestMinimumSpaces_NoExit checks every start on a maze without exits.
func TestMinimumSpaces_NoExit(t *testing.T) {
	g := mustGrid(t, "3,2\n010\n001\n")
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			res, err := bfs.MinimumSpaces(g, r, c)
			require.NoError(t, err)
			assert.Equal(t, grid.Unreachable, res.Distance, "start (%d,%d)", r, c)
		}
	}
}

// TestMinimumSpaces_BlockedStart shows a blocked start is dequeued once and discarded.
func TestMinimumSpaces_BlockedStart(t *testing.T) {
	g := mustGrid(t, "3,1\n1 0 2\n")
	res, err := bfs.MinimumSpaces(g, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Unreachable, res.Distance)
	assert.Equal(t, 1, res.Steps)
}

// TestMinimumSpaces_NearestExit picks the closer of two exits.
func TestMinimumSpaces_NearestExit(t *testing.T) {
	g := mustGrid(t, "5,1\n2 0 0 0 2\n")
	res, err := bfs.MinimumSpaces(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Distance)
}

// TestMinimumSpaces_Hooks asserts the dequeue sequence on the ring maze,
// blocked centre included.
func TestMinimumSpaces_Hooks(t *testing.T) {
	g := mustGrid(t, ring)
	var enq, deq []string
	entry := func(r, c, d int) string { return fmt.Sprintf("(%d,%d)@%d", r, c, d) }

	_, err := bfs.MinimumSpaces(g, 0, 0,
		bfs.WithOnEnqueue(func(r, c, d int) { enq = append(enq, entry(r, c, d)) }),
		bfs.WithOnDequeue(func(r, c, d int) { deq = append(deq, entry(r, c, d)) }),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"(0,0)@0", "(1,0)@1", "(0,1)@1", "(2,0)@2", "(1,1)@2",
		"(0,2)@2", "(2,1)@3", "(1,2)@3", "(2,2)@4",
	}, deq)
	assert.Len(t, enq, 9)
	assert.Equal(t, "(0,0)@0", enq[0])
}

func TestMinimumSpaces_MaxDepth(t *testing.T) {
	g := mustGrid(t, ring)

	res, err := bfs.MinimumSpaces(g, 0, 0, bfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, grid.Unreachable, res.Distance)

	res, err = bfs.MinimumSpaces(g, 0, 0, bfs.WithMaxDepth(4))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Distance)

	res, err = bfs.MinimumSpaces(g, 0, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Distance)
}

// TestMinimumSpaces_Cancellation verifies that a cancelled context halts BFS.
func TestMinimumSpaces_Cancellation(t *testing.T) {
	g := mustGrid(t, ring)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bfs.MinimumSpaces(g, 0, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, grid.Unreachable, res.Distance)
}

// TestMinimumSpaces_ConcurrentSafety runs searches in parallel on one grid.
func TestMinimumSpaces_ConcurrentSafety(t *testing.T) {
	g := mustGrid(t, ring)
	type out struct {
		d   int
		err error
	}
	results := make(chan out, 8)
	for i := 0; i < 8; i++ {
		go func() {
			res, err := bfs.MinimumSpaces(g, 0, 0)
			if err != nil {
				results <- out{err: err}
				return
			}
			results <- out{d: res.Distance}
		}()
	}
	for i := 0; i < 8; i++ {
		o := <-results
		assert.NoError(t, o.err)
		assert.Equal(t, 4, o.d)
	}
}
