// Package cluster implements agglomerative hierarchical clustering with
// complete linkage over a precomputed distance matrix.
package cluster

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidK reports a cut request outside [1, number of leaves].
var ErrInvalidK = errors.New("cluster count out of range")

// Merge is one step of the agglomeration. A and B are dendrogram node ids:
// ids below the leaf count are leaves; the merge at index m creates node
// leaves+m. Dist is the complete-linkage distance at which A and B merged.
type Merge struct {
	A, B int
	Dist float64
}

// Dendrogram is the binary merge tree of an agglomerative clustering run:
// exactly Leaves-1 merges for Leaves initial singletons.
type Dendrogram struct {
	Leaves int
	Merges []Merge
}

// Distances returns the pairwise Euclidean distance between the rows of corr,
// treating each row as that term's feature vector of correlations.
func Distances(corr *mat.SymDense) *mat.SymDense {
	n := corr.SymmetricDim()
	dist := mat.NewSymDense(n, nil)
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = mat.Row(nil, i, corr)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist.SetSym(i, j, floats.Distance(rows[i], rows[j], 2))
		}
	}
	return dist
}

// Agglomerate builds the full dendrogram. Every element starts as its own
// singleton; on each step the two closest clusters merge, with the distance
// between clusters defined as the maximum pairwise member distance (complete
// linkage). Ties are broken by the smallest (A, B) node-id pair, so the
// result is deterministic for identical input.
func Agglomerate(dist *mat.SymDense) *Dendrogram {
	n := dist.SymmetricDim()
	if n == 0 {
		return &Dendrogram{}
	}

	// Working distances indexed by node id; grows as internal nodes appear.
	total := 2*n - 1
	d := make([][]float64, total)
	for i := range d {
		d[i] = make([]float64, total)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d[i][j] = dist.At(i, j)
		}
	}

	// Active node ids, kept in ascending order. Scanning pairs in this
	// order with a strict < comparison realizes the tie-break rule.
	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	merges := make([]Merge, 0, n-1)
	for next := n; next < total; next++ {
		bi, bj := -1, -1
		best := math.Inf(1)
		for x := 0; x < len(active); x++ {
			for y := x + 1; y < len(active); y++ {
				i, j := active[x], active[y]
				if d[i][j] < best {
					best, bi, bj = d[i][j], i, j
				}
			}
		}

		// Complete linkage: the merged cluster sits as far from every
		// other cluster as its farther half did.
		for _, o := range active {
			if o == bi || o == bj {
				continue
			}
			m := math.Max(d[bi][o], d[bj][o])
			d[next][o] = m
			d[o][next] = m
		}

		merges = append(merges, Merge{A: bi, B: bj, Dist: best})
		active = drop(active, bi, bj)
		active = append(active, next)
	}

	return &Dendrogram{Leaves: n, Merges: merges}
}

// Cut partitions the leaves into exactly k clusters by replaying the first
// Leaves-k merges. Cluster ids run 1..k and are numbered by each cluster's
// smallest leaf index. The returned slice maps leaf index to cluster id.
func (dg *Dendrogram) Cut(k int) ([]int, error) {
	n := dg.Leaves
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d with %d elements", ErrInvalidK, k, n)
	}

	parent := make([]int, 2*n-1)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	for m, merge := range dg.Merges[:n-k] {
		node := n + m
		parent[find(merge.A)] = node
		parent[find(merge.B)] = node
	}

	ids := make(map[int]int, k)
	assign := make([]int, n)
	for leaf := 0; leaf < n; leaf++ {
		root := find(leaf)
		id, ok := ids[root]
		if !ok {
			id = len(ids) + 1
			ids[root] = id
		}
		assign[leaf] = id
	}
	return assign, nil
}

func drop(active []int, a, b int) []int {
	out := active[:0]
	for _, id := range active {
		if id != a && id != b {
			out = append(out, id)
		}
	}
	return out
}
