package gridgraph

import "gonum.org/v1/gonum/mat"

// connOffsets returns the (dr, dc) neighbor offsets for conn.
// Offsets are listed in a fixed order so adjacency traversals are
// deterministic across calls.
func connOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	}

	return [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
}

// New constructs a GridGraph from a non-empty weight matrix.
// The matrix is deep-copied to guarantee immutability of the graph.
// Returns ErrNilWeights for a nil matrix and ErrEmptyGrid when either
// dimension is zero.
// Complexity: O(W×H) time and memory.
func New(weights mat.Matrix, conn Connectivity) (*GridGraph, error) {
	if weights == nil {
		return nil, ErrNilWeights
	}
	h, w := weights.Dims()
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	return &GridGraph{
		Height:          h,
		Width:           w,
		weights:         mat.DenseCopyOf(weights),
		conn:            conn,
		neighborOffsets: connOffsets(conn),
	}, nil
}

// Conn reports the connectivity pattern the graph was built with.
func (gg *GridGraph) Conn() Connectivity { return gg.conn }

// Order returns the number of vertices, Height×Width.
func (gg *GridGraph) Order() int { return gg.Height * gg.Width }

// Source returns the linear index of the top-left vertex.
func (gg *GridGraph) Source() int { return 0 }

// Sink returns the linear index of the bottom-right vertex.
func (gg *GridGraph) Sink() int { return gg.Order() - 1 }

// InBounds reports whether cell (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(r, c int) bool {
	return r >= 0 && r < gg.Height && c >= 0 && c < gg.Width
}

// Index maps (r,c) to its row-major linear index: r*Width + c.
// Complexity: O(1).
func (gg *GridGraph) Index(r, c int) int {
	return r*gg.Width + c
}

// Coordinate converts a row-major linear index back to (r,c).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (r, c int) {
	return idx / gg.Width, idx % gg.Width
}

// Weight returns the traversal cost of the vertex at linear index idx.
// Complexity: O(1).
func (gg *GridGraph) Weight(idx int) float64 {
	return gg.weights.At(idx/gg.Width, idx%gg.Width)
}

// MinWeight returns the smallest vertex weight in the grid.
// Used by callers that must fail fast on negative weights.
// Complexity: O(W×H).
func (gg *GridGraph) MinWeight() float64 {
	min := gg.weights.At(0, 0)
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			if v := gg.weights.At(r, c); v < min {
				min = v
			}
		}
	}

	return min
}

// NeighborOffsets returns the precomputed (dr, dc) offsets matching the
// graph's connectivity. Should be used in all adjacency traversals.
// Callers must not mutate the returned slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Adjacent reports whether vertices u and v are neighbors under the
// graph's connectivity. Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Adjacent(u, v int) bool {
	ur, uc := gg.Coordinate(u)
	vr, vc := gg.Coordinate(v)
	for _, d := range gg.neighborOffsets {
		if ur+d[0] == vr && uc+d[1] == vc {
			return true
		}
	}

	return false
}
