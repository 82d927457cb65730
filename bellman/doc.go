// Package bellman implements the bounded-hop Bellman-Ford shortest-path
// oracle over a gridgraph.GridGraph. Unlike package dijkstra it accepts
// vertex weights of arbitrary sign and supports an explicit cap on the
// number of hops.
//
// Algorithm Outline:
//  1. Let V = Height×Width, L = MaxLength. Allocate the (L+1)×V DP
//     table dist, where dist[k][v] = minimum cost of reaching v from
//     the source in exactly k hops.
//  2. Initialize dist[0][source] = 0, +∞ everywhere else.
//  3. For k = 0..L-1, for every vertex v and in-neighbor u of v:
//     dist[k+1][v] = min(dist[k+1][v], dist[k][u] + weight(v))
//     The cost charged is the weight of the destination vertex v —
//     per-cell traversal cost, not per-edge cost.
//  4. k* = argmin over k of dist[k][sink]. An infinite dist[k*][sink]
//     means no path exists within the hop bound.
//  5. Backtrack from (sink, k*) through the per-(hop, vertex)
//     predecessor table down to (source, 0).
//
// The hop bound makes the table finite, so negative weights (and even
// negative cycles) cannot cause divergence.
//
// Complexity:
//
//	Time   = O(V·L·d), d = 4 or 8 neighbors
//	Memory = O(V·L) for the DP and predecessor tables
//
// Errors:
//
//   - ErrNilGraph:     nil *gridgraph.GridGraph.
//   - ErrBadMaxLength: non-positive hop bound.
//   - ErrNoPath:       sink unreachable within MaxLength hops, or the
//     predecessor walk dangled before reaching the source.
package bellman
