// Package gridgraph defines core types and sentinel errors for the
// grid-graph model of github.com/louisbouvier/perturbedpath.
package gridgraph

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilWeights indicates a nil weight matrix was supplied.
	ErrNilWeights = errors.New("gridgraph: weight matrix is nil")
	// ErrEmptyGrid indicates the weight matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrBadCell indicates an incidence matrix entry outside {0, 1}.
	ErrBadCell = errors.New("gridgraph: incidence entries must be 0 or 1")
	// ErrNotAPath indicates marked incidence cells do not form a simple
	// source-to-sink walk under the requested connectivity.
	ErrNotAPath = errors.New("gridgraph: incidence cells do not form a path")
)

// Connectivity selects neighbor connectivity: orthogonal moves only
// (Conn4, "rook") or orthogonal plus diagonal moves (Conn8, "queen").
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Path is an ordered sequence of row-major linear vertex indices.
// A nil or empty Path denotes "no path found" and renders as an
// all-zero incidence matrix.
type Path []int

// GridGraph is a rectangular grid of weighted cells. It is immutable
// once built: the weight matrix is deep-copied at construction and
// neighbor offsets are precomputed for adjacency traversals.
type GridGraph struct {
	Height, Width   int
	weights         *mat.Dense
	conn            Connectivity
	neighborOffsets [][2]int
}
