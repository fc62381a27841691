package astar_test

import (
	"testing"

	"github.com/katalvlaran/costgrid/astar"
)

func benchmarkSearch(b *testing.B, h astar.Heuristic) {
	src, goal := xy(0, 0), xy(199, 199)
	g := randomGrid(b, 200, 7, src, goal)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(g, src, goal, astar.WithHeuristic(h)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Dijkstra(b *testing.B) { benchmarkSearch(b, astar.Zero{}) }
func BenchmarkSearch_L2(b *testing.B)       { benchmarkSearch(b, astar.L2{}) }
func BenchmarkSearch_Octile(b *testing.B)   { benchmarkSearch(b, astar.Octile{}) }
func BenchmarkSearch_WeightedL2(b *testing.B) {
	benchmarkSearch(b, astar.Weighted{Epsilon: 1.5, Base: astar.L2{}})
}
