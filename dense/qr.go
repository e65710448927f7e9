// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"math"

	"github.com/dense-go/lattice/strided"
)

// QR is the Householder QR decomposition of an m×n matrix with m >= n:
// A = QR, Q orthogonal m×m (stored implicitly as a sequence of Householder
// reflectors), R upper triangular m×n.
type QR struct {
	qr    *Matrix // packed: R above and on the diagonal, reflector vectors below
	rdiag []float64
	rows  int
	cols  int
}

// FactorizeQR computes the Householder QR decomposition of a, which must
// have at least as many rows as columns.
func FactorizeQR(a *Matrix) (QR, error) {
	m, n := a.Dims()
	if m < n {
		panic(ErrInvalidArgument)
	}
	qr := a.Clone()
	rdiag := make([]float64, n)

	for k := 0; k < n; k++ {
		// Norm of the k-th column, from row k down.
		var norm float64
		for i := k; i < m; i++ {
			norm = math.Hypot(norm, qr.At(i, k))
		}
		if norm != 0 {
			if qr.At(k, k) < 0 {
				norm = -norm
			}
			for i := k; i < m; i++ {
				qr.Set(i, k, qr.At(i, k)/norm)
			}
			qr.Set(k, k, qr.At(k, k)+1)

			for j := k + 1; j < n; j++ {
				var sum float64
				for i := k; i < m; i++ {
					sum += qr.At(i, k) * qr.At(i, j)
				}
				sum = -sum / qr.At(k, k)
				for i := k; i < m; i++ {
					qr.Set(i, j, qr.At(i, j)+sum*qr.At(i, k))
				}
			}
		}
		rdiag[k] = -norm
	}
	return QR{qr: qr, rdiag: rdiag, rows: m, cols: n}, nil
}

// IsFullRank reports whether R has a nonzero diagonal entry at every
// column, i.e. a has full column rank.
func (f QR) IsFullRank() bool {
	for _, d := range f.rdiag {
		if strided.IsZero(d) {
			return false
		}
	}
	return true
}

// R returns the n×n upper triangular factor.
func (f QR) R() *Matrix {
	n := f.cols
	r := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		r.Set(i, i, f.rdiag[i])
		for j := i + 1; j < n; j++ {
			r.Set(i, j, f.qr.At(i, j))
		}
	}
	return r
}

// Q returns the m×n factor with orthonormal columns (the economy-size Q).
func (f QR) Q() *Matrix {
	m, n := f.rows, f.cols
	q := NewMatrix(m, n)
	for k := n - 1; k >= 0; k-- {
		for i := 0; i < m; i++ {
			q.Set(i, k, 0)
		}
		q.Set(k, k, 1)
		for j := k; j < n; j++ {
			if qr := f.qr.At(k, k); qr != 0 {
				var sum float64
				for i := k; i < m; i++ {
					sum += f.qr.At(i, k) * q.At(i, j)
				}
				sum = -sum / qr
				for i := k; i < m; i++ {
					q.Set(i, j, q.At(i, j)+sum*f.qr.At(i, k))
				}
			}
		}
	}
	return q
}

// Solve solves the least-squares problem min ||A x - b|| for x, where A is
// the matrix this QR factorizes (requires full column rank) and b has one
// column per right-hand side.
func (f QR) Solve(b *Matrix) (*Matrix, error) {
	if !f.IsFullRank() {
		return nil, ErrSingular
	}
	m, n := f.rows, f.cols
	br, bc := b.Dims()
	if br != m {
		panic(ErrShapeMismatch)
	}

	y := b.Clone()
	// Apply Qᵀ to y, one reflector at a time.
	for k := 0; k < n; k++ {
		for col := 0; col < bc; col++ {
			var sum float64
			for i := k; i < m; i++ {
				sum += f.qr.At(i, k) * y.At(i, col)
			}
			if qr := f.qr.At(k, k); qr != 0 {
				sum = -sum / qr
				for i := k; i < m; i++ {
					y.Set(i, col, y.At(i, col)+sum*f.qr.At(i, k))
				}
			}
		}
	}

	r := f.R()
	x := NewMatrix(n, bc)
	for col := 0; col < bc; col++ {
		rhs := y.View(0, col, n, 1).Col(0).Copy()
		SolveUpperTriangular(r, rhs)
		x.Col(col).Assign(rhs)
	}
	return x, nil
}
