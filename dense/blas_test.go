// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"testing"

	"github.com/dense-go/lattice/strided"
)

func TestMulBasic(t *testing.T) {
	a := NewMatrixFrom(2, 2, []float64{1, 2, 3, 4})
	b := NewMatrixFrom(2, 2, []float64{5, 6, 7, 8})
	c := NewMatrix(2, 2)
	Mul(c, 1, a, false, b, false, 0)
	want := []float64{19, 22, 43, 50}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := c.At(i, j); got != want[i*2+j] {
				t.Fatalf("c(%d,%d) = %v, want %v", i, j, got, want[i*2+j])
			}
		}
	}
}

func TestMulWithBetaAndPrefilled(t *testing.T) {
	a := NewMatrixFrom(2, 2, []float64{1, 2, 3, 4})
	b := NewMatrixFrom(2, 2, []float64{5, 6, 7, 8})
	c := NewMatrixFrom(2, 2, []float64{1, 1, 1, 1})
	Mul(c, 1, a, false, b, false, 0.5)
	want := []float64{19.5, 22.5, 43.5, 50.5}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := c.At(i, j); got != want[i*2+j] {
				t.Fatalf("c(%d,%d) = %v, want %v", i, j, got, want[i*2+j])
			}
		}
	}
}

func TestMulTransposeProducesSymmetricGram(t *testing.T) {
	a := NewMatrixFrom(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	viaFlag := NewMatrix(4, 4)
	Mul(viaFlag, 1, a, true, a, false, 0)

	viaExplicitTranspose := NewMatrix(4, 4)
	Mul(viaExplicitTranspose, 1, a.T(), false, a, false, 0)

	ctx := strided.Context{Epsilon: 1e-9}
	if !viaFlag.Equals(viaExplicitTranspose, ctx) {
		t.Fatal("gemm(A,A,transA=true) should equal gemm(transpose(A),A)")
	}
	r, c := viaFlag.Dims()
	if r != 4 || c != 4 {
		t.Fatalf("AᵀA dims = (%d,%d), want (4,4)", r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !ctx.Equal(viaFlag.At(i, j), viaFlag.At(j, i)) {
				t.Fatalf("AᵀA(%d,%d)=%v != AᵀA(%d,%d)=%v, want symmetric", i, j, viaFlag.At(i, j), j, i, viaFlag.At(j, i))
			}
		}
	}
}

func TestSolveTriangular(t *testing.T) {
	l := NewMatrixFrom(2, 2, []float64{2, 0, 6, 1})
	b := strided.DenseGrid1d(strided.NewExtent1d(2))
	b.SetAt(0, 4)
	b.SetAt(1, 26)
	SolveLowerTriangular(l, b, false)
	ctx := strided.Context{Epsilon: 1e-9}
	if !ctx.Equal(b.At(0), 2) || !ctx.Equal(b.At(1), 14) {
		t.Fatalf("solved x = [%v,%v], want [2,14]", b.At(0), b.At(1))
	}
}

func TestApplyRowPermutation(t *testing.T) {
	m := NewMatrixFrom(3, 1, []float64{10, 20, 30})
	ApplyRowPermutation(m, []int{2, 0, 1})
	want := []float64{30, 10, 20}
	for i, w := range want {
		if m.At(i, 0) != w {
			t.Fatalf("row %d = %v, want %v", i, m.At(i, 0), w)
		}
	}
}

func TestRankOneUpdate(t *testing.T) {
	dst := NewMatrix(2, 2)
	x := strided.DenseGrid1d(strided.NewExtent1d(2))
	y := strided.DenseGrid1d(strided.NewExtent1d(2))
	x.SetAt(0, 1)
	x.SetAt(1, 2)
	y.SetAt(0, 3)
	y.SetAt(1, 4)
	RankOne(dst, 1, x, y)
	want := []float64{3, 4, 6, 8}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := dst.At(i, j); got != want[i*2+j] {
				t.Fatalf("dst(%d,%d) = %v, want %v", i, j, got, want[i*2+j])
			}
		}
	}
}
