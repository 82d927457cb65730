package dijkstra_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/louisbouvier/perturbedpath/dijkstra"
	"github.com/louisbouvier/perturbedpath/gridgraph"
)

// BenchmarkSolve measures the heap-based oracle on a randomly weighted
// 100×100 grid, the call that dominates a perturbed forward pass.
// Complexity: O((V+E) log V)
func BenchmarkSolve(b *testing.B) {
	const n = 100
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64() * 10
	}
	g, err := gridgraph.New(mat.NewDense(n, n, data), gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup gridgraph.New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}
