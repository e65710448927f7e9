// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"github.com/dense-go/lattice/internal/asm/f64"
	"github.com/dense-go/lattice/strided"
)

// blockSize is the row-panel height the Mul kernel tiles over. Each row of
// the result is accumulated by AxpyUnitary updates, one per column of
// op(a).
const blockSize = 64

// Mul computes dst = alpha*op(a)*op(b) + beta*dst, where op(a) is a or aᵀ
// depending on transA (similarly for b). dst must not alias a or b. This is
// the core GEMM-style kernel that every higher-level product in the
// package routes through.
func Mul(dst *Matrix, alpha float64, a *Matrix, transA bool, b *Matrix, transB bool, beta float64) {
	ar, ac := a.Dims()
	if transA {
		ar, ac = ac, ar
	}
	br, bc := b.Dims()
	if transB {
		br, bc = bc, br
	}
	if ac != br {
		panic(ErrShapeMismatch)
	}
	dr, dc := dst.Dims()
	if dr != ar || dc != bc {
		panic(ErrShapeMismatch)
	}

	if beta == 0 {
		dst.Fill(0)
	} else if beta != 1 {
		scaleInPlace(dst, beta)
	}
	if alpha == 0 {
		return
	}

	aT, bT := a, b
	if transA {
		aT = a.T()
	}
	if transB {
		bT = b.T()
	}

	for i0 := 0; i0 < ar; i0 += blockSize {
		i1 := i0 + blockSize
		if i1 > ar {
			i1 = ar
		}
		for i := i0; i < i1; i++ {
			arow := rowSlice(aT, i)
			drow := rowSlice(dst, i)
			for k := 0; k < ac; k++ {
				aik := arow[k]
				if aik == 0 {
					continue
				}
				brow := rowSlice(bT, k)
				f64.AxpyUnitary(alpha*aik, brow, drow)
			}
			writeRow(dst, i, drow)
		}
	}
}

// MulVec computes dst = alpha*op(a)*x + beta*dst where op(a) is a or aᵀ.
func MulVec(dst strided.Grid1d, alpha float64, a *Matrix, transA bool, x strided.Grid1d, beta float64) {
	ar, ac := a.Dims()
	if transA {
		ar, ac = ac, ar
	}
	if ac != x.Len() || ar != dst.Len() {
		panic(ErrShapeMismatch)
	}
	aT := a
	if transA {
		aT = a.T()
	}
	xs := denseVec(x)
	for i := 0; i < ar; i++ {
		arow := rowSlice(aT, i)
		sum := f64.DotUnitary(arow, xs)
		if beta == 0 {
			dst.SetAt(i, alpha*sum)
		} else {
			dst.SetAt(i, alpha*sum+beta*dst.At(i))
		}
	}
}

// RankOne performs the rank-one update dst += alpha * x * yᵀ.
func RankOne(dst *Matrix, alpha float64, x, y strided.Grid1d) {
	r, c := dst.Dims()
	if r != x.Len() || c != y.Len() {
		panic(ErrShapeMismatch)
	}
	data, stride, ok := dst.rawRowMajor()
	if ok {
		f64.Ger(r, c, alpha, denseVec(x), denseVec(y), data[dst.offsetRowMajor():], stride)
		return
	}
	ys := denseVec(y)
	for i := 0; i < r; i++ {
		xi := x.At(i)
		if xi == 0 {
			continue
		}
		for j := 0; j < c; j++ {
			dst.Set(i, j, dst.At(i, j)+alpha*xi*ys[j])
		}
	}
}

// SolveLowerTriangular solves the triangular system Lx = b in place, where
// l is lower triangular (unitDiag controls whether the diagonal is taken
// to be implicitly 1) and b holds x on return.
func SolveLowerTriangular(l *Matrix, b strided.Grid1d, unitDiag bool) {
	n, _ := l.Dims()
	if b.Len() != n {
		panic(ErrShapeMismatch)
	}
	for i := 0; i < n; i++ {
		sum := b.At(i)
		for j := 0; j < i; j++ {
			sum -= l.At(i, j) * b.At(j)
		}
		if !unitDiag {
			d := l.At(i, i)
			if strided.IsZero(d) {
				panic(ErrSingular)
			}
			sum /= d
		}
		b.SetAt(i, sum)
	}
}

// SolveUpperTriangular solves the triangular system Ux = b in place, where
// u is upper triangular.
func SolveUpperTriangular(u *Matrix, b strided.Grid1d) {
	n, _ := u.Dims()
	if b.Len() != n {
		panic(ErrShapeMismatch)
	}
	for i := n - 1; i >= 0; i-- {
		sum := b.At(i)
		for j := i + 1; j < n; j++ {
			sum -= u.At(i, j) * b.At(j)
		}
		d := u.At(i, i)
		if strided.IsZero(d) {
			panic(ErrSingular)
		}
		b.SetAt(i, sum/d)
	}
}

// ApplyRowPermutation reorders the rows of m in place according to pivot,
// where pivot[i] is the source row moved into row i — the same convention
// LU factorization produces for partial pivoting.
func ApplyRowPermutation(m *Matrix, pivot []int) {
	r, _ := m.Dims()
	if len(pivot) != r {
		panic(ErrShapeMismatch)
	}
	result := m.Clone()
	for i, from := range pivot {
		result.Row(i).Assign(m.Row(from))
	}
	m.Assign(result)
}

func scaleInPlace(m *Matrix, alpha float64) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		row := m.Row(i)
		row.AssignFunc(func(v float64) float64 { return v * alpha })
	}
}

// rowSlice returns row i of m as a dense []float64, copying only when the
// row view is not already contiguous.
func rowSlice(m *Matrix, i int) []float64 {
	_, c := m.Dims()
	row := m.Row(i)
	if strided.IsContiguous1d(row.Structure.Layout) {
		start := row.Structure.Layout.Start
		return row.Storage.Raw()[start : start+c]
	}
	out := make([]float64, c)
	for j := 0; j < c; j++ {
		out[j] = row.At(j)
	}
	return out
}

// writeRow copies a dense row buffer back into m's row i when the row view
// was not contiguous (rowSlice returned a fresh copy); a no-op when it
// aliased m's storage directly.
func writeRow(m *Matrix, i int, row []float64) {
	dstRow := m.Row(i)
	if strided.IsContiguous1d(dstRow.Structure.Layout) {
		return
	}
	for j, v := range row {
		dstRow.SetAt(j, v)
	}
}

func denseVec(v strided.Grid1d) []float64 {
	if strided.IsContiguous1d(v.Structure.Layout) {
		start := v.Structure.Layout.Start
		return v.Storage.Raw()[start : start+v.Len()]
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

func (m *Matrix) offsetRowMajor() int {
	return m.grid.Structure.Layout.Start
}
