// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"testing"

	"github.com/dense-go/lattice/strided"
)

func TestCholeskyFactorScenario(t *testing.T) {
	a := NewMatrixFrom(3, 3, []float64{
		4, 12, -16,
		12, 37, -43,
		-16, -43, 98,
	})
	chol, ok := FactorizeCholesky(a)
	if !ok {
		t.Fatal("expected SPD matrix to factorize")
	}
	want := NewMatrixFrom(3, 3, []float64{
		2, 0, 0,
		6, 1, 0,
		-8, 5, 3,
	})
	ctx := strided.Context{Epsilon: 1e-9}
	if !chol.L().Equals(want, ctx) {
		t.Fatalf("L = %v, want %v", chol.L(), want)
	}
}

func TestCholeskyReconstructsMatrix(t *testing.T) {
	a := NewMatrixFrom(3, 3, []float64{
		4, 12, -16,
		12, 37, -43,
		-16, -43, 98,
	})
	chol, ok := FactorizeCholesky(a)
	if !ok {
		t.Fatal("expected SPD matrix to factorize")
	}
	product := NewMatrix(3, 3)
	Mul(product, 1, chol.L(), false, chol.L(), true, 0)
	ctx := strided.Context{Epsilon: 1e-9}
	if !product.Equals(a, ctx) {
		t.Fatalf("L*Lᵀ = %v, want %v", product, a)
	}
}

func TestCholeskySolveScenario(t *testing.T) {
	a := NewMatrixFrom(3, 3, []float64{
		4, 12, -16,
		12, 37, -43,
		-16, -43, 98,
	})
	b := NewMatrixFrom(3, 1, []float64{1, 2, 3})
	chol, ok := FactorizeCholesky(a)
	if !ok {
		t.Fatal("expected SPD matrix to factorize")
	}
	x, err := chol.Solve(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{28 + 7.0/12, -7 - 2.0/3, 1 + 8.0/9}
	ctx := strided.Context{Epsilon: 1e-6}
	for i, w := range want {
		if !ctx.Equal(x.At(i, 0), w) {
			t.Fatalf("x[%d] = %v, want %v", i, x.At(i, 0), w)
		}
	}
}

func TestCholeskyRejectsNonSPD(t *testing.T) {
	a := NewMatrixFrom(2, 2, []float64{1, 2, 2, 1})
	_, ok := FactorizeCholesky(a)
	if ok {
		t.Fatal("expected non-SPD matrix to be rejected")
	}
}

func TestCholeskySolveRejectsNonSPD(t *testing.T) {
	a := NewMatrixFrom(2, 2, []float64{1, 2, 2, 1})
	chol, ok := FactorizeCholesky(a)
	if ok {
		t.Fatal("expected non-SPD matrix to be rejected")
	}
	b := NewMatrixFrom(2, 1, []float64{1, 1})
	if _, err := chol.Solve(b); err != ErrNotSPD {
		t.Fatalf("Solve() error = %v, want %v", err, ErrNotSPD)
	}
}

func TestCholesky1x1(t *testing.T) {
	a := NewMatrixFrom(1, 1, []float64{9})
	chol, ok := FactorizeCholesky(a)
	if !ok {
		t.Fatal("expected positive scalar to factorize")
	}
	if got := chol.L().At(0, 0); got != 3 {
		t.Fatalf("L(0,0) = %v, want 3", got)
	}
}
