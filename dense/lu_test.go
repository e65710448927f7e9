// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dense-go/lattice/strided"
)

func TestLUReconstructsPivotedMatrix(t *testing.T) {
	a := NewMatrixFrom(3, 3, []float64{
		2, 1, 1,
		4, 3, 3,
		8, 7, 9,
	})
	lu, err := FactorizeLU(a)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{2, 0, 1}, lu.Pivot()); diff != "" {
		t.Fatalf("pivot mismatch (-want +got):\n%s", diff)
	}
	pa := NewMatrix(3, 3)
	permuted := a.Clone()
	ApplyRowPermutation(permuted, lu.Pivot())

	Mul(pa, 1, lu.L(), false, lu.U(), false, 0)
	ctx := strided.Context{Epsilon: 1e-9}
	if !pa.Equals(permuted, ctx) {
		t.Fatalf("P*A != L*U:\nP*A=%v\nL*U=%v", permuted, pa)
	}
}

func TestLUSolve(t *testing.T) {
	a := NewMatrixFrom(2, 2, []float64{4, 3, 6, 3})
	b := NewMatrixFrom(2, 1, []float64{1, 2})
	lu, err := FactorizeLU(a)
	if err != nil {
		t.Fatal(err)
	}
	x, err := lu.Solve(b)
	if err != nil {
		t.Fatal(err)
	}
	ax := NewMatrix(2, 1)
	Mul(ax, 1, a, false, x, false, 0)
	ctx := strided.Context{Epsilon: 1e-9}
	if !ax.Equals(b, ctx) {
		t.Fatalf("A*solve(A,b) = %v, want %v", ax, b)
	}
}

func TestLUDetOfSingular(t *testing.T) {
	a := NewMatrixFrom(2, 2, []float64{1, 2, 2, 4})
	lu, err := FactorizeLU(a)
	if err != nil {
		t.Fatal(err)
	}
	if !lu.IsSingular() {
		t.Fatal("expected singular matrix to be detected")
	}
	if got := lu.Det(); got != 0 {
		t.Fatalf("Det() = %v, want 0", got)
	}
}

func TestLU1x1(t *testing.T) {
	a := NewMatrixFrom(1, 1, []float64{7})
	lu, err := FactorizeLU(a)
	if err != nil {
		t.Fatal(err)
	}
	if got := lu.Det(); got != 7 {
		t.Fatalf("Det() = %v, want 7", got)
	}
}
