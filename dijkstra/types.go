// Package dijkstra defines sentinel errors and the heap type backing
// the non-negative-weight shortest-path oracle.
package dijkstra

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative vertex weight was
	// detected. Dijkstra requires non-negative weights; use package
	// bellman for arbitrary-sign grids.
	ErrNegativeWeight = errors.New("dijkstra: negative vertex weight encountered")

	// ErrNoPath indicates the bottom-right vertex is unreachable from
	// the top-left vertex.
	ErrNoPath = errors.New("dijkstra: no path from source to sink")
)

// nodeItem is a (vertex, distance) pair stored in the priority queue.
type nodeItem struct {
	id   int     // linear vertex index
	dist float64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending. Shorter
// rediscoveries push duplicates (lazy decrease-key); stale entries are
// ignored on pop via the visited set.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
