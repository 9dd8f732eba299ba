// Package cluster builds the guide tree for progressive multiple
// sequence alignment: pairwise Euclidean distances between the rows of
// a distance matrix, then hierarchical agglomerative clustering with
// Ward linkage.
package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/moltools/versalign-go/internal/matrix"
)

// Merge is one agglomeration step of the guide tree: the two cluster
// ids merged and the id assigned to the result. Leaves are numbered
// 0..n-1; internal nodes continue from n in merge order.
type Merge struct {
	Left     int
	Right    int
	ID       int
	Distance float64
	Size     int
}

// RowDistances returns the pairwise Euclidean distances between the
// rows of m as a symmetric square matrix with a zero diagonal.
func RowDistances(m *matrix.Matrix) *matrix.Matrix {
	n := m.Rows()
	out := matrix.New(n, n, 0)

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = m.Row(i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := floats.Distance(rows[i], rows[j], 2)
			out.Set(i, j, d)
			out.Set(j, i, d)
		}
	}
	return out
}

// Ward runs agglomerative clustering with Ward linkage over a symmetric
// distance matrix and returns the n-1 merges in order. Ties on the
// minimum distance resolve to the lowest (left, right) id pair under
// ascending scan, which keeps guide trees deterministic.
func Ward(d *matrix.Matrix) ([]Merge, error) {
	if d.Rows() != d.Cols() {
		return nil, fmt.Errorf("cluster: distance matrix must be square, got %dx%d", d.Rows(), d.Cols())
	}

	n := d.Rows()
	active := make([]int, n)
	size := make(map[int]int, 2*n)
	dist := make(map[[2]int]float64, n*n)
	for i := 0; i < n; i++ {
		active[i] = i
		size[i] = 1
		for j := i + 1; j < n; j++ {
			dist[pairKey(i, j)] = d.Get(i, j)
		}
	}

	merges := make([]Merge, 0, n-1)
	for stepIdx := 0; len(active) > 1; stepIdx++ {
		left, right, best := -1, -1, math.Inf(1)
		for x := 0; x < len(active); x++ {
			for y := x + 1; y < len(active); y++ {
				if v := dist[pairKey(active[x], active[y])]; v < best {
					left, right, best = active[x], active[y], v
				}
			}
		}

		newID := n + stepIdx
		nl, nr := size[left], size[right]

		// Lance-Williams update for Ward linkage, matching the
		// standard condensed-matrix formulation.
		for _, k := range active {
			if k == left || k == right {
				continue
			}
			nk := size[k]
			dkl := dist[pairKey(k, left)]
			dkr := dist[pairKey(k, right)]
			num := float64(nl+nk)*dkl*dkl + float64(nr+nk)*dkr*dkr - float64(nk)*best*best
			dist[pairKey(k, newID)] = math.Sqrt(num / float64(nl+nr+nk))
		}

		kept := active[:0]
		for _, id := range active {
			if id != left && id != right {
				kept = append(kept, id)
			}
		}
		active = append(kept, newID)
		size[newID] = nl + nr

		merges = append(merges, Merge{
			Left:     left,
			Right:    right,
			ID:       newID,
			Distance: best,
			Size:     nl + nr,
		})
	}
	return merges, nil
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
