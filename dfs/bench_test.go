package dfs_test

import (
	"testing"

	"github.com/katalvlaran/structviz/builder"
	"github.com/katalvlaran/structviz/dfs"
)

// BenchmarkDFS_Grid measures DFS on a 30×30 grid.
func BenchmarkDFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "1")
	}
}

// BenchmarkDetectCycles_Complete measures cycle detection on K_40.
func BenchmarkDetectCycles_Complete(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(40))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dfs.DetectCycles(g)
	}
}
