// File: floydwarshall.go
// Role: Dense all-pairs shortest paths: distance-matrix seeding from a
//       core.Graph and the in-place Floyd-Warshall closure.
// Contract:
//   - +Inf means "no path" off-diagonal; the diagonal is 0 before closure.
//   - Loop order is fixed (k -> i -> j) for deterministic accumulation.

package matrix

import (
	"math"

	"github.com/arborlib/arbor/core"
)

// NewDistanceMatrix seeds a V x V distance matrix from g: 0 on the
// diagonal, the direct edge weight where a record u->v exists, and +Inf
// elsewhere. Undirected edges appear symmetrically because core mirrors
// their adjacency records.
//
// Complexity: O(V^2 + E).
func NewDistanceMatrix(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			if i != j {
				d.data[base+j] = inf
			}
		}
	}
	for u := 0; u < n; u++ {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			d.data[u*n+nb.To] = float64(nb.Weight)
		}
	}

	return d, nil
}

// FloydWarshall runs the all-pairs shortest-path closure on d in place.
//
// Contract: d must be square, seeded with 0 on the diagonal and +Inf for
// missing paths (NewDistanceMatrix produces exactly this shape). For each
// intermediate vertex k in increasing order, every (i, j) pair is relaxed
// through k whenever both legs are finite; ties never overwrite, so the
// accumulation order is deterministic.
//
// Correct for negative edge weights in the absence of negative cycles;
// behavior under a negative cycle is unspecified.
//
// Complexity: O(V^3) time, O(1) extra space.
func FloydWarshall(d *Dense) error {
	if err := validateSquare(d); err != nil {
		return err
	}

	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				// i cannot reach k: no path via k can improve i->j.
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// AllPairsShortestPaths composes NewDistanceMatrix and FloydWarshall:
// the returned matrix holds the shortest distance between every ordered
// vertex pair, +Inf where no path exists.
func AllPairsShortestPaths(g *core.Graph) (*Dense, error) {
	d, err := NewDistanceMatrix(g)
	if err != nil {
		return nil, err
	}
	if err = FloydWarshall(d); err != nil {
		return nil, err
	}

	return d, nil
}
