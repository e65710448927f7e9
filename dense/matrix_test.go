// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"testing"

	"github.com/dense-go/lattice/strided"
)

func TestMatrixAtSet(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(1, 2, 5)
	if got := m.At(1, 2); got != 5 {
		t.Fatalf("At(1,2) = %v, want 5", got)
	}
}

func TestMatrixTransposeIsView(t *testing.T) {
	m := NewMatrixFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr := m.T()
	if got := tr.At(2, 1); got != 6 {
		t.Fatalf("transpose At(2,1) = %v, want 6", got)
	}
	tr.Set(0, 0, 100)
	if m.At(0, 0) != 100 {
		t.Fatal("transpose view mutation should be visible in the parent matrix")
	}
}

func TestMatrixCloneIndependent(t *testing.T) {
	m := NewMatrixFrom(2, 2, []float64{1, 2, 3, 4})
	clone := m.Clone()
	clone.Set(0, 0, 99)
	if m.At(0, 0) == 99 {
		t.Fatal("clone should not alias the original storage")
	}
}

func TestIdentity(t *testing.T) {
	id := Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if got := id.At(i, j); got != want {
				t.Fatalf("identity(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestMatrixEquals(t *testing.T) {
	a := NewMatrixFrom(2, 2, []float64{1, 2, 3, 4})
	b := NewMatrixFrom(2, 2, []float64{1, 2, 3, 4})
	if !a.Equals(b, strided.Context{}) {
		t.Fatal("matrices with identical elements should be equal")
	}
}
