package gridgraph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Incidence renders the path as a binary height×width matrix with 1.0
// at every visited cell. An empty path yields the all-zero matrix,
// which is the canonical "no path found" result.
// Complexity: O(W×H).
func (p Path) Incidence(height, width int) *mat.Dense {
	y := mat.NewDense(height, width, nil)
	for _, idx := range p {
		y.Set(idx/width, idx%width, 1)
	}

	return y
}

// Cost returns the traversal cost of the path under the given weight
// matrix: the sum of cell weights along the path excluding the source
// cell (cost is charged at the destination vertex of each hop).
// An empty path costs 0.
// Complexity: O(len(p)).
func (p Path) Cost(weights mat.Matrix) float64 {
	if len(p) == 0 {
		return 0
	}
	_, w := weights.Dims()
	var total float64
	for _, idx := range p[1:] {
		total += weights.At(idx/w, idx%w)
	}

	return total
}

// PathFromIncidence reconstructs the ordered source→sink vertex
// sequence from a binary incidence matrix. The marked cells must form
// a simple walk from the top-left cell to the bottom-right cell that
// visits every marked cell exactly once under the given connectivity.
//
// An all-zero matrix decodes to the empty path (no path found).
// Returns ErrBadCell for entries outside {0,1} and ErrNotAPath when no
// valid ordering of the marked cells exists.
// Complexity: O(k·d) expected for k marked cells; degenerate blob-like
// markings may trigger backtracking.
func PathFromIncidence(m mat.Matrix, conn Connectivity) (Path, error) {
	h, w := m.Dims()
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	// 1) Collect the marked cell set, validating entries on the way.
	marked := make(map[int]bool, h+w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			switch v := m.At(r, c); v {
			case 0:
				// unmarked
			case 1:
				marked[r*w+c] = true
			default:
				return nil, fmt.Errorf("%w: cell (%d,%d)=%v", ErrBadCell, r, c, v)
			}
		}
	}
	if len(marked) == 0 {
		return nil, nil
	}

	source, sink := 0, h*w-1
	if !marked[source] || !marked[sink] {
		return nil, fmt.Errorf("%w: source or sink cell unmarked", ErrNotAPath)
	}

	// 2) Depth-first search for an ordering of the marked cells that
	//    starts at the source, ends at the sink, and steps only between
	//    adjacent cells. Backtracking handles ambiguous branchings.
	offsets := connOffsets(conn)
	visited := make(map[int]bool, len(marked))
	path := make(Path, 0, len(marked))

	var walk func(u int) bool
	walk = func(u int) bool {
		visited[u] = true
		path = append(path, u)
		if u == sink {
			if len(path) == len(marked) {
				return true
			}
		} else {
			ur, uc := u/w, u%w
			for _, d := range offsets {
				vr, vc := ur+d[0], uc+d[1]
				if vr < 0 || vr >= h || vc < 0 || vc >= w {
					continue
				}
				v := vr*w + vc
				if marked[v] && !visited[v] && walk(v) {
					return true
				}
			}
		}
		// Dead end: undo and backtrack.
		visited[u] = false
		path = path[:len(path)-1]

		return false
	}

	if !walk(source) {
		return nil, ErrNotAPath
	}

	return path, nil
}
