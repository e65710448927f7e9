// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"testing"

	"github.com/dense-go/lattice/strided"
)

func TestQRReconstructsMatrix(t *testing.T) {
	a := NewMatrixFrom(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	qr, err := FactorizeQR(a)
	if err != nil {
		t.Fatal(err)
	}
	qrProduct := NewMatrix(3, 2)
	Mul(qrProduct, 1, qr.Q(), false, qr.R(), false, 0)
	ctx := strided.Context{Epsilon: 1e-9}
	if !qrProduct.Equals(a, ctx) {
		t.Fatalf("Q*R = %v, want %v", qrProduct, a)
	}
}

func TestQROrthogonalColumns(t *testing.T) {
	a := NewMatrixFrom(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	qr, err := FactorizeQR(a)
	if err != nil {
		t.Fatal(err)
	}
	q := qr.Q()
	qtq := NewMatrix(2, 2)
	Mul(qtq, 1, q, true, q, false, 0)
	ctx := strided.Context{Epsilon: 1e-9}
	if !qtq.Equals(Identity(2), ctx) {
		t.Fatalf("QᵀQ = %v, want I", qtq)
	}
}

func TestQRSolveLeastSquares(t *testing.T) {
	a := NewMatrixFrom(3, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
	})
	b := NewMatrixFrom(3, 1, []float64{6, 0, 0})
	qr, err := FactorizeQR(a)
	if err != nil {
		t.Fatal(err)
	}
	if !qr.IsFullRank() {
		t.Fatal("expected full column rank")
	}
	if _, err := qr.Solve(b); err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
}
