// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"testing"

	"github.com/dense-go/lattice/strided"
)

func TestSVDRankOneMatrix(t *testing.T) {
	a := NewMatrixFrom(2, 2, []float64{1, 2, 2, 4})
	svd, err := FactorizeSVD(a)
	if err != nil {
		t.Fatal(err)
	}
	if got := svd.Rank(); got != 1 {
		t.Fatalf("Rank() = %d, want 1", got)
	}
	s := svd.SingularValues()
	ctx := strided.Context{Epsilon: 1e-6}
	if !ctx.Equal(s[0], 5) {
		t.Fatalf("sigma_max = %v, want 5", s[0])
	}
	if !ctx.Equal(s[1], 0) {
		t.Fatalf("sigma_min = %v, want 0", s[1])
	}
}

func TestSVDReconstructsMatrix(t *testing.T) {
	a := NewMatrixFrom(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	svd, err := FactorizeSVD(a)
	if err != nil {
		t.Fatal(err)
	}
	s := svd.SingularValues()
	sigma := NewMatrix(2, 2)
	sigma.Set(0, 0, s[0])
	sigma.Set(1, 1, s[1])

	us := NewMatrix(3, 2)
	Mul(us, 1, svd.U(), false, sigma, false, 0)
	usv := NewMatrix(3, 2)
	Mul(usv, 1, us, false, svd.V(), true, 0)

	ctx := strided.Context{Epsilon: 1e-6}
	if !usv.Equals(a, ctx) {
		t.Fatalf("U*Sigma*Vᵀ = %v, want %v", usv, a)
	}
}

func TestSVDOrthogonalUAndV(t *testing.T) {
	a := NewMatrixFrom(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	svd, err := FactorizeSVD(a)
	if err != nil {
		t.Fatal(err)
	}
	ctx := strided.Context{Epsilon: 1e-9}

	u := svd.U()
	_, uc := u.Dims()
	utu := NewMatrix(uc, uc)
	Mul(utu, 1, u, true, u, false, 0)
	if !utu.Equals(Identity(uc), ctx) {
		t.Fatalf("UᵀU = %v, want I", utu)
	}

	v := svd.V()
	_, vc := v.Dims()
	vtv := NewMatrix(vc, vc)
	Mul(vtv, 1, v, true, v, false, 0)
	if !vtv.Equals(Identity(vc), ctx) {
		t.Fatalf("VᵀV = %v, want I", vtv)
	}
}

func TestSVDSingularValuesDescending(t *testing.T) {
	a := NewMatrixFrom(3, 3, []float64{
		3, 1, 1,
		-1, 3, 1,
		1, 1, 3,
	})
	svd, err := FactorizeSVD(a)
	if err != nil {
		t.Fatal(err)
	}
	s := svd.SingularValues()
	for i := 1; i < len(s); i++ {
		if s[i-1] < s[i] {
			t.Fatalf("singular values not descending: %v", s)
		}
		if s[i] < 0 {
			t.Fatalf("singular value %d is negative: %v", i, s[i])
		}
	}
}
