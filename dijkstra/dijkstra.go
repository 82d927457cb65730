package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/louisbouvier/perturbedpath/gridgraph"
)

// Solve computes the minimum-cost path from g.Source() to g.Sink()
// over non-negative vertex weights, charging each hop the weight of
// its destination vertex.
//
// Returns:
//
//   - path: ordered vertex sequence from source to sink.
//   - cost: total path cost (source cell excluded).
//   - err:  ErrNilGraph, ErrNegativeWeight, or ErrNoPath.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Solve(g *gridgraph.GridGraph) (gridgraph.Path, float64, error) {
	// 1) Validate graph is non-nil.
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// 2) Pre-scan all vertex weights to detect negatives. Fail fast.
	if min := g.MinWeight(); min < 0 {
		return nil, 0, fmt.Errorf("%w: min weight %v", ErrNegativeWeight, min)
	}

	// 3) Prepare dense per-vertex state. Let V = number of vertices.
	V := g.Order()
	dist := make([]float64, V)
	prev := make([]int, V)
	visited := make([]bool, V)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	// The source cell itself is free: cost is charged on arrival only.
	dist[g.Source()] = 0

	// 4) Initialize the min-heap with the source at distance 0.
	pq := make(nodePQ, 0, V)
	heap.Init(&pq)
	heap.Push(&pq, nodeItem{id: g.Source(), dist: 0})

	// 5) Main loop: extract the closest unfinalized vertex and relax
	//    its outgoing neighbors.
	offsets := g.NeighborOffsets()
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.id

		// Skip stale heap entries (lazy decrease-key).
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == g.Sink() {
			break // sink distance finalized, no need to explore further
		}

		ur, uc := g.Coordinate(u)
		for _, d := range offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !g.InBounds(vr, vc) {
				continue
			}
			v := g.Index(vr, vc)
			if visited[v] {
				continue
			}
			// Relax u→v, charging the destination vertex weight.
			nd := dist[u] + g.Weight(v)
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			prev[v] = u
			heap.Push(&pq, nodeItem{id: v, dist: nd})
		}
	}

	// 6) Unreachable sink: structurally impossible on a full grid, but
	//    checked so callers never observe an infinite cost.
	if math.IsInf(dist[g.Sink()], 1) {
		return nil, 0, ErrNoPath
	}

	// 7) Reconstruct the path sink→source via predecessors, then
	//    reverse in place.
	var path gridgraph.Path
	for at := g.Sink(); at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, dist[g.Sink()], nil
}

// Maximizer adapts Solve into the oracle contract consumed by the
// perturbed layer: argmax over source→sink paths y of ⟨θ, y⟩, solved
// as a shortest-path problem on the negated score matrix −θ.
//
// Precondition: −θ must be elementwise non-negative (θ ≤ 0); a
// violation surfaces as ErrNegativeWeight. An unreachable sink yields
// the all-zero incidence matrix and a nil error.
func Maximizer(conn gridgraph.Connectivity) func(theta *mat.Dense) (*mat.Dense, error) {
	return func(theta *mat.Dense) (*mat.Dense, error) {
		if theta == nil {
			return nil, gridgraph.ErrNilWeights
		}
		h, w := theta.Dims()

		// Negate: maximizing ⟨θ, y⟩ is minimizing the −θ path cost.
		costs := mat.NewDense(h, w, nil)
		costs.Scale(-1, theta)

		g, err := gridgraph.New(costs, conn)
		if err != nil {
			return nil, err
		}
		path, _, err := Solve(g)
		if errors.Is(err, ErrNoPath) {
			return mat.NewDense(h, w, nil), nil
		}
		if err != nil {
			return nil, err
		}

		return path.Incidence(h, w), nil
	}
}
