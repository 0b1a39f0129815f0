package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular is returned when no nonzero pivot is available during
// inversion.
var ErrSingular = errors.New("matrix: singular")

// Inverse returns the inverse of the square matrix m via Gauss-Jordan
// elimination with partial pivoting. The input is not modified.
//
// Time O(n^3), memory O(n^2). The signature matches
// memocell.ComputeFunc[Dense, Dense].
func Inverse(m Dense) (Dense, error) {
	if m.rows != m.cols {
		return Dense{}, fmt.Errorf("matrix: inverse of %dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}

	n := m.rows
	a := m.Clone()
	inv := Identity(n)

	for k := 0; k < n; k++ {
		// partial pivot: largest |a[i][k]| on or below the diagonal
		p := k
		best := math.Abs(a.data[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > best {
				best, p = v, i
			}
		}
		if best == 0 {
			return Dense{}, fmt.Errorf("matrix: zero pivot in column %d: %w", k, ErrSingular)
		}
		if p != k {
			swapRows(a.data, n, p, k)
			swapRows(inv.data, n, p, k)
		}

		piv := a.data[k*n+k]
		for j := 0; j < n; j++ {
			a.data[k*n+j] /= piv
			inv.data[k*n+j] /= piv
		}

		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			f := a.data[i*n+k]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
				inv.data[i*n+j] -= f * inv.data[k*n+j]
			}
		}
	}

	return inv, nil
}

func swapRows(data []float64, cols, r1, r2 int) {
	a := data[r1*cols : (r1+1)*cols]
	b := data[r2*cols : (r2+1)*cols]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}
