// Package dijkstra implements the non-negative-weight shortest-path
// oracle over a gridgraph.GridGraph.
//
// Solve computes the minimum-cost path from the top-left vertex to the
// bottom-right vertex of a vertex-weighted grid. It processes vertices
// in order of increasing distance using a min-heap priority queue with
// the lazy-decrease-key strategy: shorter rediscoveries push duplicate
// heap entries, stale entries are skipped on extraction.
//
// The traversal cost of a hop u→v is the weight of the destination
// vertex v; the source cell is never charged. All weights must be
// non-negative — Solve fails fast with ErrNegativeWeight otherwise
// (use package bellman for arbitrary-sign weights).
//
// Maximizer adapts Solve into the oracle contract used by the
// perturbed layer: given a score matrix θ it maximizes ⟨θ, y⟩ over
// source→sink paths y by running Solve on the negated matrix −θ, and
// returns the optimal path as a binary incidence matrix. A grid with
// no source→sink connection yields the all-zero matrix, not an error.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = Height×Width, E ≤ V·d (d = 4 or 8).
//   - Space: O(V + E) for distances, predecessors, and the heap.
//
// Errors:
//
//   - ErrNilGraph:       nil *gridgraph.GridGraph.
//   - ErrNegativeWeight: a negative vertex weight was detected.
//   - ErrNoPath:         sink unreachable from source (cannot happen on
//     a full grid, checked regardless).
package dijkstra
