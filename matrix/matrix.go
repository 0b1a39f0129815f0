// Package matrix provides a small dense float64 matrix and an inversion
// routine, the worked-example computation for a memocell slot.
package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare is returned when an operation requires a square matrix.
	ErrNotSquare = errors.New("matrix: not square")
	// ErrShape is returned when operand dimensions do not line up.
	ErrShape = errors.New("matrix: dimension mismatch")
)

// Dense is a row-major dense matrix. The zero value is an empty 0x0 matrix.
// Dense values share their backing data when copied; use Clone for an
// independent copy.
type Dense struct {
	rows, cols int
	data       []float64
}

// New returns a zero-filled rows x cols matrix.
func New(rows, cols int) Dense {
	return Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromRows builds a Dense from row slices. All rows must have equal length.
func FromRows(rows [][]float64) (Dense, error) {
	if len(rows) == 0 {
		return Dense{}, nil
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return Dense{}, fmt.Errorf("matrix: row %d has %d cols, want %d: %w", i, len(r), cols, ErrShape)
		}
		copy(m.data[i*cols:(i+1)*cols], r)
	}
	return m, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) Dense {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

func (m Dense) Rows() int { return m.rows }
func (m Dense) Cols() int { return m.cols }

// At returns the element at row r, column c.
func (m Dense) At(r, c int) float64 { return m.data[r*m.cols+c] }

// Set assigns the element at row r, column c.
func (m Dense) Set(r, c int, v float64) { m.data[r*m.cols+c] = v }

// Clone returns a copy with independent backing data.
func (m Dense) Clone() Dense {
	out := Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Mul returns m*b.
func Mul(m, b Dense) (Dense, error) {
	if m.cols != b.rows {
		return Dense{}, fmt.Errorf("matrix: mul %dx%d by %dx%d: %w", m.rows, m.cols, b.rows, b.cols, ErrShape)
	}
	out := New(m.rows, b.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			v := m.data[i*m.cols+k]
			if v == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*b.cols+j] += v * b.data[k*b.cols+j]
			}
		}
	}
	return out, nil
}
