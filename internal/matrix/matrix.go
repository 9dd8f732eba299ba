// Package matrix provides the dense numeric grid used as the dynamic
// programming table by the pairwise aligners and as the distance matrix
// feeding guide-tree construction.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense float64 grid with fixed dimensions and mutable
// cells. Out-of-bounds access panics with the offending coordinates;
// bounds violations are programmer errors, not recoverable conditions.
type Matrix struct {
	rows, cols int
	data       *mat.Dense
}

// New creates a rows x cols matrix with every cell set to fill.
func New(rows, cols int, fill float64) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", rows, cols))
	}

	d := mat.NewDense(rows, cols, nil)
	if fill != 0 {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				d.Set(r, c, fill)
			}
		}
	}
	return &Matrix{rows: rows, cols: cols, data: d}
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Get returns the cell at (row, col).
func (m *Matrix) Get(row, col int) float64 {
	m.check(row, col)
	return m.data.At(row, col)
}

// Set assigns the cell at (row, col).
func (m *Matrix) Set(row, col int, v float64) {
	m.check(row, col)
	m.data.Set(row, col, v)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	m.check(i, 0)
	return mat.Row(nil, i, m.data)
}

// Transpose returns a new matrix with swapped dimensions and values
// copied accordingly.
func (m *Matrix) Transpose() *Matrix {
	return &Matrix{
		rows: m.cols,
		cols: m.rows,
		data: mat.DenseCopyOf(m.data.T()),
	}
}

// Min returns the minimum cell value.
func (m *Matrix) Min() float64 { return mat.Min(m.data) }

// Max returns the maximum cell value.
func (m *Matrix) Max() float64 { return mat.Max(m.data) }

// ToDistances returns a new matrix with every cell mapped to
// 1 - (v-min)/(max-min), turning a similarity matrix into a normalized
// distance matrix. When max == min there is no spread to normalize and
// all distances are defined as 0.
func (m *Matrix) ToDistances() *Matrix {
	out := New(m.rows, m.cols, 0)

	lo, hi := m.Min(), m.Max()
	if hi == lo {
		return out
	}

	span := hi - lo
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data.Set(r, c, 1-(m.data.At(r, c)-lo)/span)
		}
	}
	return out
}

func (m *Matrix) check(row, col int) {
	if row < 0 || row >= m.rows {
		panic(fmt.Sprintf("matrix: row index %d out of bounds [0, %d)", row, m.rows))
	}
	if col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix: column index %d out of bounds [0, %d)", col, m.cols))
	}
}
