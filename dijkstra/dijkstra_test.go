// Package dijkstra_test validates the grid shortest-path oracle:
// input validation, optimal costs on fixed grids, path validity, and
// the maximizer adapter contract.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/louisbouvier/perturbedpath/dijkstra"
	"github.com/louisbouvier/perturbedpath/gridgraph"
)

func TestSolve_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Solve(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestSolve_NegativeWeightDetectedEarly(t *testing.T) {
	g, err := gridgraph.New(mat.NewDense(2, 2, []float64{1, -3, 1, 1}), gridgraph.Conn4)
	require.NoError(t, err)
	_, _, err = dijkstra.Solve(g)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestSolve_UniformThreeByThree(t *testing.T) {
	// Unit-weight 3×3 grid under rook moves: any monotone staircase of
	// 4 hops is optimal. Cost excludes the source cell, so it is 4, and
	// the path visits height+width-1 = 5 cells.
	g, err := gridgraph.New(mat.NewDense(3, 3, []float64{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}), gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := dijkstra.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cost, "4 unit hops from (0,0) to (2,2)")
	assert.Len(t, path, 5, "monotone rook path marks height+width-1 cells")
	assert.Equal(t, g.Source(), path[0])
	assert.Equal(t, g.Sink(), path[len(path)-1])
}

func TestSolve_PrefersCheapDetour(t *testing.T) {
	// Straight diagonal routes cross the expensive middle column; the
	// optimal route hugs the cheap rim: down the first column, then
	// across the bottom row.
	g, err := gridgraph.New(mat.NewDense(3, 3, []float64{
		0, 9, 9,
		1, 9, 9,
		1, 1, 1,
	}), gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := dijkstra.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cost)
	assert.Equal(t, gridgraph.Path{0, 3, 6, 7, 8}, path)
}

func TestSolve_PathIsValidWalk(t *testing.T) {
	g, err := gridgraph.New(mat.NewDense(4, 4, []float64{
		1, 2, 3, 4,
		4, 3, 2, 1,
		1, 2, 3, 4,
		4, 3, 2, 1,
	}), gridgraph.Conn8)
	require.NoError(t, err)

	path, _, err := dijkstra.Solve(g)
	require.NoError(t, err)

	// Consecutive vertices must be grid-adjacent, no vertex repeated.
	seen := map[int]bool{}
	for i, v := range path {
		if seen[v] {
			t.Fatalf("vertex %d repeated in path %v", v, path)
		}
		seen[v] = true
		if i > 0 && !g.Adjacent(path[i-1], v) {
			t.Fatalf("vertices %d and %d not adjacent in path %v", path[i-1], v, path)
		}
	}
}

func TestSolve_SingleCellGrid(t *testing.T) {
	g, err := gridgraph.New(mat.NewDense(1, 1, []float64{7}), gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := dijkstra.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{0}, path, "source equals sink")
	assert.Equal(t, 0.0, cost, "no hop is charged")
}

func TestMaximizer_ReturnsIncidenceOfOptimum(t *testing.T) {
	// Scores are non-positive (their negation is the cost grid of
	// TestSolve_PrefersCheapDetour), so the argmax path is the rim route.
	theta := mat.NewDense(3, 3, []float64{
		0, -9, -9,
		-1, -9, -9,
		-1, -1, -1,
	})
	maximize := dijkstra.Maximizer(gridgraph.Conn4)
	y, err := maximize(theta)
	require.NoError(t, err)

	want := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		1, 0, 0,
		1, 1, 1,
	})
	assert.True(t, mat.Equal(want, y), "got:\n%v", mat.Formatted(y))
}

// TestMaximizer_OutputsValidIncidence is the structural property: on
// random grids the oracle's incidence matrix always decodes back into
// a connected, repetition-free source→sink walk.
func TestMaximizer_OutputsValidIncidence(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for trial := 0; trial < 30; trial++ {
		conn := gridgraph.Conn4
		if trial%2 == 1 {
			conn = gridgraph.Conn8
		}
		data := make([]float64, 25)
		for i := range data {
			data[i] = -rng.Float64() * 10
		}
		theta := mat.NewDense(5, 5, data)

		maximize := dijkstra.Maximizer(conn)
		y, err := maximize(theta)
		require.NoError(t, err)
		path, err := gridgraph.PathFromIncidence(y, conn)
		require.NoError(t, err, "trial %d: incidence must decode", trial)
		assert.Equal(t, 0, path[0])
		assert.Equal(t, 24, path[len(path)-1])
	}
}

func TestMaximizer_RejectsPositiveScores(t *testing.T) {
	// Positive θ entries negate into negative costs: a precondition
	// violation, not a recoverable condition.
	maximize := dijkstra.Maximizer(gridgraph.Conn4)
	_, err := maximize(mat.NewDense(2, 2, []float64{0, 1, 0, 0}))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestMaximizer_NilTheta(t *testing.T) {
	maximize := dijkstra.Maximizer(gridgraph.Conn4)
	_, err := maximize(nil)
	assert.ErrorIs(t, err, gridgraph.ErrNilWeights)
}
