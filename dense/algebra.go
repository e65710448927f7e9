// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"math"

	"github.com/dense-go/lattice/strided"
)

// Solve returns x such that A x = b: square A dispatches to LU, a
// rectangular A (more rows than columns) dispatches to the least-squares
// QR solve.
func Solve(a, b *Matrix) (*Matrix, error) {
	r, c := a.Dims()
	if r == c {
		lu, err := FactorizeLU(a)
		if err != nil {
			return nil, err
		}
		return lu.Solve(b)
	}
	qr, err := FactorizeQR(a)
	if err != nil {
		return nil, err
	}
	return qr.Solve(b)
}

// Inverse returns the inverse of the square matrix a, computed as
// Solve(a, I).
func Inverse(a *Matrix) (*Matrix, error) {
	r, c := a.Dims()
	if r != c {
		panic(ErrInvalidArgument)
	}
	return Solve(a, Identity(r))
}

// Det returns the determinant of the square matrix a, via LU.
func Det(a *Matrix) float64 {
	lu, err := FactorizeLU(a)
	if err != nil {
		panic(err)
	}
	return lu.Det()
}

// Rank returns the count of singular values of a that exceed
// max(rows,cols) * sigmaMax * machine epsilon.
func Rank(a *Matrix) int {
	svd, err := FactorizeSVD(a)
	if err != nil {
		panic(err)
	}
	return svd.Rank()
}

// Cond returns the condition number of a, sigmaMax/sigmaMin, via SVD.
func Cond(a *Matrix) float64 {
	svd, err := FactorizeSVD(a)
	if err != nil {
		panic(err)
	}
	return svd.Cond()
}

// Norm1 returns the maximum absolute column sum of a.
func Norm1(a *Matrix) float64 {
	r, c := a.Dims()
	max := 0.0
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += math.Abs(a.At(i, j))
		}
		if sum > max {
			max = sum
		}
	}
	return max
}

// NormInf returns the maximum absolute row sum of a.
func NormInf(a *Matrix) float64 {
	r, c := a.Dims()
	max := 0.0
	for i := 0; i < r; i++ {
		var sum float64
		for j := 0; j < c; j++ {
			sum += math.Abs(a.At(i, j))
		}
		if sum > max {
			max = sum
		}
	}
	return max
}

// NormFrobenius returns sqrt(Σ |a[i,j]|²).
func NormFrobenius(a *Matrix) float64 {
	r, c := a.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := a.At(i, j)
			sum += v * v
		}
	}
	return math.Sqrt(sum)
}

// Norm2 returns the largest singular value of a, via SVD.
func Norm2(a *Matrix) float64 {
	svd, err := FactorizeSVD(a)
	if err != nil {
		panic(err)
	}
	return svd.Norm2()
}

// Trace returns Σ a[i,i] for i up to min(rows,cols).
func Trace(a *Matrix) float64 {
	r, c := a.Dims()
	n := r
	if c < n {
		n = c
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += a.At(i, i)
	}
	return sum
}

// IsSymmetric reports whether a is square and symmetric to within ctx.
func IsSymmetric(a *Matrix, ctx strided.Context) bool {
	return isSymmetric(a, ctx)
}
