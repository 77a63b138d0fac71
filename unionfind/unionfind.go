// Package unionfind implements a disjoint-set (union-find) structure over
// the dense element range 0..n-1, with iterative path compression and union
// by rank.
//
// What
//
//   - New(n) creates one singleton set per element.
//   - Find(x) returns the representative root of x's set, compressing the
//     path it walks.
//   - Union(x, y) merges two sets by rank and reports whether a merge
//     happened; sets are never split.
//   - Connected(x, y) and Count() answer same-set and partition-size
//     queries.
//
// Why
//
//	Kruskal and reverse-delete style algorithms need near-constant
//	"same component?" queries while accepting edges; the rank + compression
//	pair gives amortized inverse-Ackermann cost per operation.
//
// Elements are slice indices; passing an element outside [0, n) panics like
// any out-of-range slice access. The structure is not safe for concurrent
// use.
package unionfind

// DisjointSet maintains a partition of 0..n-1.
//
// Invariant: following parent links from any element terminates at a root r
// with parent[r] == r; rank[r] bounds the height of r's tree before
// compression.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int // number of disjoint sets remaining
}

// New creates a DisjointSet with one singleton set per element of 0..n-1.
// A non-positive n yields an empty structure.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len reports the number of elements in the partition.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count reports the number of disjoint sets remaining.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative root of x's set.
// Iterative grandparent rewriting compresses the walked path, so a sequence
// of operations costs amortized near-constant (inverse-Ackermann) time.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // path compression
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y, attaching the lower-rank root
// under the higher-rank root. Equal ranks attach y's root under x's and
// increment the survivor's rank. Reports whether a merge happened (false
// when x and y were already in the same set).
func (d *DisjointSet) Union(x, y int) bool {
	rootX, rootY := d.Find(x), d.Find(y)
	if rootX == rootY {
		return false
	}
	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
	default:
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}
	d.count--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
