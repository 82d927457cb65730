package bellman

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/louisbouvier/perturbedpath/gridgraph"
)

// Solve computes the minimum-cost path from g.Source() to g.Sink()
// using at most MaxLength hops, charging each hop the weight of its
// destination vertex. Weights may be negative.
//
// Returns:
//
//   - path: ordered vertex sequence from source to sink.
//   - cost: total path cost (source cell excluded).
//   - err:  ErrNilGraph, ErrBadMaxLength, or ErrNoPath.
//
// Complexity: O(V·L·d) time, O(V·L) memory.
func Solve(g *gridgraph.GridGraph, opts ...Option) (gridgraph.Path, float64, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	V := g.Order()
	L := cfg.MaxLength
	if L == 0 {
		L = V // worst case: every cell visited once
	}
	if L < 0 {
		return nil, 0, ErrBadMaxLength
	}

	// 2) Allocate DP and predecessor tables.
	//    dist[k][v] = min cost to reach v in exactly k hops;
	//    pred[k][v] = in-neighbor of v on that optimal k-hop route.
	inf := math.Inf(1)
	dist := make([][]float64, L+1)
	pred := make([][]int, L+1)
	for k := 0; k <= L; k++ {
		dist[k] = make([]float64, V)
		pred[k] = make([]int, V)
		for v := 0; v < V; v++ {
			dist[k][v] = inf
			pred[k][v] = -1
		}
	}
	dist[0][g.Source()] = 0

	// 3) Fill the table hop by hop. For each vertex v we scan its
	//    neighbors as in-neighbors: adjacency is symmetric on the grid.
	offsets := g.NeighborOffsets()
	for k := 0; k < L; k++ {
		for v := 0; v < V; v++ {
			vr, vc := g.Coordinate(v)
			wv := g.Weight(v)
			for _, d := range offsets {
				ur, uc := vr+d[0], vc+d[1]
				if !g.InBounds(ur, uc) {
					continue
				}
				u := g.Index(ur, uc)
				if math.IsInf(dist[k][u], 1) {
					continue
				}
				// Charge the destination vertex v, not the edge.
				if nd := dist[k][u] + wv; nd < dist[k+1][v] {
					dist[k+1][v] = nd
					pred[k+1][v] = u
				}
			}
		}
	}

	// 4) Pick the hop count with the cheapest arrival at the sink.
	sink := g.Sink()
	best := 0
	for k := 1; k <= L; k++ {
		if dist[k][sink] < dist[best][sink] {
			best = k
		}
	}
	if math.IsInf(dist[best][sink], 1) {
		return nil, 0, ErrNoPath
	}

	// 5) Backtrack from (sink, best) to (source, 0). A dangling
	//    predecessor means reconstruction failed: report no path
	//    rather than a truncated walk.
	path := make(gridgraph.Path, best+1)
	at := sink
	for k := best; k > 0; k-- {
		path[k] = at
		at = pred[k][at]
		if at < 0 {
			return nil, 0, ErrNoPath
		}
	}
	path[0] = at
	if at != g.Source() {
		return nil, 0, ErrNoPath
	}

	return path, dist[best][sink], nil
}

// Maximizer adapts Solve into the oracle contract consumed by the
// perturbed layer: argmax over source→sink paths y of ⟨θ, y⟩, solved
// as a bounded-hop shortest-path problem on the negated score matrix
// −θ. Scores of either sign are accepted. An unreachable sink yields
// the all-zero incidence matrix and a nil error.
func Maximizer(conn gridgraph.Connectivity, opts ...Option) func(theta *mat.Dense) (*mat.Dense, error) {
	return func(theta *mat.Dense) (*mat.Dense, error) {
		if theta == nil {
			return nil, gridgraph.ErrNilWeights
		}
		h, w := theta.Dims()

		costs := mat.NewDense(h, w, nil)
		costs.Scale(-1, theta)

		g, err := gridgraph.New(costs, conn)
		if err != nil {
			return nil, err
		}
		path, _, err := Solve(g, opts...)
		if errors.Is(err, ErrNoPath) {
			return mat.NewDense(h, w, nil), nil
		}
		if err != nil {
			return nil, err
		}

		return path.Incidence(h, w), nil
	}
}
