// Package gridgraph models a rectangular grid of cells as a directed
// graph with per-cell scalar traversal costs.
//
// What:
//
//   - GridGraph wraps a dense Height×Width weight matrix; each cell is a
//     vertex, adjacency follows Conn4 (rook) or Conn8 (queen) moves with
//     no wraparound.
//   - Vertices carry a row-major linear index in 0..Height*Width-1;
//     Source() is the top-left cell, Sink() the bottom-right one.
//   - Path is an ordered vertex-index sequence; Incidence renders it as
//     a binary Height×Width matrix, PathFromIncidence inverts that.
//
// Why:
//
//   - Shortest-path oracles (dijkstra, bellman) consume GridGraph and
//     produce Paths; losses and metrics consume incidence matrices.
//   - The grid is deep-copied at construction and never mutated, so a
//     fresh instance per oracle call is safe without locking.
//
// Conventions:
//
//   - Cost is charged at the destination vertex of each hop: the cost of
//     a path is the sum of its cell weights excluding the source cell.
//
// Complexity:
//
//   - New:               O(W×H) time and memory (deep copy).
//   - Index/Coordinate:  O(1).
//   - Incidence:         O(W×H).
//   - PathFromIncidence: O(k·d) expected for k marked cells, d = 4 or 8.
//
// Errors:
//
//   - ErrNilWeights: nil weight matrix.
//   - ErrEmptyGrid:  zero rows or zero columns.
//   - ErrBadCell:    incidence matrix entries outside {0,1}.
//   - ErrNotAPath:   marked cells do not form a simple source→sink walk.
package gridgraph
