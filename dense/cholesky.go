// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import "math"

// Cholesky is the Cholesky decomposition of a symmetric positive definite
// matrix: A = LLᵀ, L lower triangular with positive diagonal entries.
type Cholesky struct {
	chol *Matrix
	n    int
	ok   bool
}

// FactorizeCholesky computes the Cholesky decomposition of a, which must
// be square. It does not check symmetry explicitly (only the lower
// triangle of a is read), but it returns ok=false the first time the running
// decomposition would require the square root of a non-positive value,
// which also rejects any non-SPD matrix. The same flag is stored on the
// returned Cholesky, so Solve can fail with ErrNotSPD instead of acting on
// a bogus factor.
func FactorizeCholesky(a *Matrix) (chol Cholesky, ok bool) {
	n, c := a.Dims()
	if n != c {
		panic(ErrInvalidArgument)
	}
	l := NewMatrix(n, n)
	ok = true
	for j := 0; j < n; j++ {
		var d float64
		for k := 0; k < j; k++ {
			var sum float64
			for i := 0; i < k; i++ {
				sum += l.At(k, i) * l.At(j, i)
			}
			v := (a.At(j, k) - sum) / l.At(k, k)
			l.Set(j, k, v)
			d += v * v
		}
		d = a.At(j, j) - d
		if d <= 0 {
			ok = false
		}
		l.Set(j, j, math.Sqrt(math.Max(d, 0)))
	}
	return Cholesky{chol: l, n: n, ok: ok}, ok
}

// L returns the lower triangular factor.
func (f Cholesky) L() *Matrix { return f.chol }

// Det returns the determinant of the original matrix, det(L)^2.
func (f Cholesky) Det() float64 {
	var logDiag float64
	for i := 0; i < f.n; i++ {
		logDiag += math.Log(f.chol.At(i, i))
	}
	return math.Exp(2 * logDiag)
}

// Solve solves A x = b for x, where A is the SPD matrix this Cholesky
// factorizes and b has one column per right-hand side. It fails with
// ErrNotSPD if the factorization found a is not symmetric positive
// definite.
func (f Cholesky) Solve(b *Matrix) (*Matrix, error) {
	if !f.ok {
		return nil, ErrNotSPD
	}
	br, bc := b.Dims()
	if br != f.n {
		panic(ErrShapeMismatch)
	}
	x := NewMatrix(f.n, bc)
	lt := f.chol.T()
	for col := 0; col < bc; col++ {
		y := b.Col(col).Copy()
		SolveLowerTriangular(f.chol, y, false)
		SolveUpperTriangular(lt, y)
		x.Col(col).Assign(y)
	}
	return x, nil
}

// Inverse returns the inverse of the original SPD matrix.
func (f Cholesky) Inverse() *Matrix {
	id := Identity(f.n)
	inv, err := f.Solve(id)
	if err != nil {
		panic(err)
	}
	return inv
}

