// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import "github.com/dense-go/lattice/strided"

// LU is the LU decomposition with partial pivoting of a square matrix:
// PA = LU, where L is unit lower triangular, U is upper triangular and P
// is the row permutation recorded in Pivot. The factors are stored packed
// into a single n×n matrix, L below the diagonal (implicit unit diagonal)
// and U on and above it, exactly as the factorization computes them in
// place.
type LU struct {
	lu    *Matrix
	pivot []int
	sign  float64
}

// FactorizeLU computes the LU decomposition of a, which must be square. It
// never modifies a.
func FactorizeLU(a *Matrix) (LU, error) {
	r, c := a.Dims()
	if r != c {
		panic(ErrInvalidArgument)
	}
	lu := a.Clone()
	pivot := make([]int, r)
	for i := range pivot {
		pivot[i] = i
	}
	sign := 1.0

	for k := 0; k < r; k++ {
		// Find the pivot row: the largest magnitude entry in column k at
		// or below the diagonal.
		p := k
		max := strided.AbsFloat(lu.At(k, k))
		for i := k + 1; i < r; i++ {
			if v := strided.AbsFloat(lu.At(i, k)); v > max {
				max, p = v, i
			}
		}
		if p != k {
			lu.Row(k).Swap(lu.Row(p))
			pivot[k], pivot[p] = pivot[p], pivot[k]
			sign = -sign
		}

		pivotVal := lu.At(k, k)
		if strided.IsZero(pivotVal) {
			continue // singular at this column; Det will report zero
		}
		for i := k + 1; i < r; i++ {
			factor := lu.At(i, k) / pivotVal
			lu.Set(i, k, factor)
			if factor == 0 {
				continue
			}
			for j := k + 1; j < c; j++ {
				lu.Set(i, j, lu.At(i, j)-factor*lu.At(k, j))
			}
		}
	}

	return LU{lu: lu, pivot: pivot, sign: sign}, nil
}

// L returns the unit lower triangular factor.
func (f LU) L() *Matrix {
	n, _ := f.lu.Dims()
	l := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		l.Set(i, i, 1)
		for j := 0; j < i; j++ {
			l.Set(i, j, f.lu.At(i, j))
		}
	}
	return l
}

// U returns the upper triangular factor.
func (f LU) U() *Matrix {
	n, _ := f.lu.Dims()
	u := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			u.Set(i, j, f.lu.At(i, j))
		}
	}
	return u
}

// Pivot returns the row permutation applied during factorization: pivot[i]
// is the row of the original matrix now in row i of P*A.
func (f LU) Pivot() []int {
	p := make([]int, len(f.pivot))
	copy(p, f.pivot)
	return p
}

// Det returns the determinant of the original matrix.
func (f LU) Det() float64 {
	n, _ := f.lu.Dims()
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu.At(i, i)
	}
	return det
}

// IsSingular reports whether the factorization found a zero pivot.
func (f LU) IsSingular() bool {
	n, _ := f.lu.Dims()
	for i := 0; i < n; i++ {
		if strided.IsZero(f.lu.At(i, i)) {
			return true
		}
	}
	return false
}

// Solve solves A x = b for x, where A is the matrix this LU factorizes and
// b has one column per right-hand side.
func (f LU) Solve(b *Matrix) (*Matrix, error) {
	n, _ := f.lu.Dims()
	br, bc := b.Dims()
	if br != n {
		panic(ErrShapeMismatch)
	}
	if f.IsSingular() {
		return nil, ErrSingular
	}

	x := NewMatrix(n, bc)
	permuted := b.Clone()
	ApplyRowPermutation(permuted, f.pivot)

	for col := 0; col < bc; col++ {
		y := permuted.Col(col).Copy()
		SolveLowerTriangular(f.L(), y, true)
		SolveUpperTriangular(f.U(), y)
		x.Col(col).Assign(y)
	}
	return x, nil
}
