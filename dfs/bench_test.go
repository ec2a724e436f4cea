package dfs_test

import (
	"testing"

	"github.com/katalvlaran/mazefinder/dfs"
)

// BenchmarkMinimumSpaces_Open5 enumerates every simple path of a 5×5 open maze.
func BenchmarkMinimumSpaces_Open5(b *testing.B) {
	g := mustGrid(b, "5,5\n00000\n00000\n00000\n00000\n00002\n")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.MinimumSpaces(g, 0, 0)
	}
}

// BenchmarkMinimumSpaces_Serpentine walks a single corridor, so the search is linear.
func BenchmarkMinimumSpaces_Serpentine(b *testing.B) {
	g := mustGrid(b, "5,5\n00000\n11110\n00000\n01111\n00002\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.MinimumSpaces(g, 0, 0)
	}
}
