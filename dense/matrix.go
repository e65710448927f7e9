// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dense implements the dense double matrix kernels and
// factorizations — GEMM-style multiply, LU, QR, Cholesky, eigen and
// singular value decompositions, and the solver dispatcher — built on
// top of the strided view model in package strided.
package dense

import "github.com/dense-go/lattice/strided"

// Matrix is a grid specialized with factorization-ready operations: a
// window onto a Float64Storage through a Structure2d, the same aliasing
// rules as strided.Grid2d apply. A factorization (LU, QR, Cholesky, Eigen,
// SVD) always allocates its own storage for its result matrices.
type Matrix struct {
	grid strided.Grid2d
}

// NewMatrix allocates a fresh, zeroed r×c matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{grid: strided.DenseGrid2d(strided.NewExtent2d(r, c))}
}

// NewMatrixFrom builds an r×c matrix from row-major data. If data is nil a
// fresh zeroed buffer is allocated; otherwise it is used directly (no
// copy) and must have exactly r*c elements.
func NewMatrixFrom(r, c int, data []float64) *Matrix {
	if data == nil {
		return NewMatrix(r, c)
	}
	if len(data) != r*c {
		panic(ErrShapeMismatch)
	}
	return &Matrix{grid: strided.NewGrid2d(
		strided.NewStructure2d(strided.NewExtent2d(r, c)),
		strided.WrapFloat64Storage(data),
	)}
}

// FromGrid adapts a strided.Grid2d view — e.g. one produced by range,
// stride, transpose or dice — into a Matrix sharing its storage.
func FromGrid(g strided.Grid2d) *Matrix { return &Matrix{grid: g} }

// Grid exposes the underlying strided view for callers in package strided
// or another collaborator that needs raw view-algebra access.
func (m *Matrix) Grid() strided.Grid2d { return m.grid }

// Dims returns the row and column counts.
func (m *Matrix) Dims() (r, c int) { return m.grid.Dims() }

// At returns the element at (i,j).
func (m *Matrix) At(i, j int) float64 { return m.grid.At(i, j) }

// Set assigns v to the element at (i,j).
func (m *Matrix) Set(i, j int, v float64) { m.grid.SetAt(i, j, v) }

// T returns the transposed view of m, sharing its storage — the transpose
// is a view transform, never a copy.
func (m *Matrix) T() *Matrix { return &Matrix{grid: m.grid.T()} }

// View returns the r×c submatrix view starting at (i,j), sharing m's
// storage.
func (m *Matrix) View(i, j, r, c int) *Matrix {
	return &Matrix{grid: m.grid.View(strided.Index2d{I0: i, I1: j}, strided.NewExtent2d(r, c))}
}

// Row returns the 1-d view of row i.
func (m *Matrix) Row(i int) strided.Grid1d { return m.grid.Row(i) }

// Col returns the 1-d view of column j.
func (m *Matrix) Col(j int) strided.Grid1d { return m.grid.Col(j) }

// Clone returns a deep, independent copy of m.
func (m *Matrix) Clone() *Matrix { return &Matrix{grid: m.grid.Copy()} }

// Assign copies src's elements into m; m and src must have equal shape.
func (m *Matrix) Assign(src *Matrix) { m.grid.Assign(src.grid) }

// Fill sets every element of m to v.
func (m *Matrix) Fill(v float64) { m.grid.Fill(v) }

// Equals reports whether m and o have equal shape and every element
// agrees under ctx.
func (m *Matrix) Equals(o *Matrix, ctx strided.Context) bool { return m.grid.Equals(o.grid, ctx) }

// IsSquare reports whether m has equal row and column counts.
func (m *Matrix) IsSquare() bool {
	r, c := m.Dims()
	return r == c
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// rawRowMajor returns the dense row-major slice backing m and its
// stride, and whether m is laid out contiguously enough for the kernels'
// fast paths (column stride 1 and row stride equal to the column count,
// or at most one row).
func (m *Matrix) rawRowMajor() (data []float64, stride int, contiguous bool) {
	layout := m.grid.Structure.Layout
	extent := m.grid.Structure.Extent
	if layout.Stride.S1 != 1 {
		return nil, 0, false
	}
	return m.grid.Storage.Raw(), layout.Stride.S0, layout.Stride.S0 == extent.N1 || extent.N0 <= 1
}
