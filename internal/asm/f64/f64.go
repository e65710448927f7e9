// Copyright ©2019 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package f64 provides float64 vector primitives shared by the blocked
// dense kernels in package dense. The routines here are intentionally
// written in plain Go: no cgo, no assembly stubs, so they build on every
// platform the toolchain supports.
package f64

import "math"

// AxpyUnitary computes y += alpha*x for unit-strided x and y of equal length.
func AxpyUnitary(alpha float64, x, y []float64) {
	for i, v := range x {
		y[i] = math.FMA(alpha, v, y[i])
	}
}

// AxpyUnitaryTo computes dst = alpha*x + y for unit-strided x and y.
func AxpyUnitaryTo(dst []float64, alpha float64, x, y []float64) {
	for i, v := range x {
		dst[i] = math.FMA(alpha, v, y[i])
	}
}

// DotUnitary returns the dot product of unit-strided x and y.
func DotUnitary(x, y []float64) (sum float64) {
	for i, v := range x {
		sum = math.FMA(v, y[i], sum)
	}
	return sum
}

// ScalUnitary scales x in place by alpha.
func ScalUnitary(alpha float64, x []float64) {
	for i, v := range x {
		x[i] = alpha * v
	}
}

// Ger performs the rank-one update A += alpha * x * y^T where A is an m×n
// row-major dense matrix with leading dimension lda.
func Ger(m, n int, alpha float64, x, y []float64, a []float64, lda int) {
	for i := 0; i < m; i++ {
		row := a[i*lda : i*lda+n]
		AxpyUnitary(alpha*x[i], y, row)
	}
}

// L2NormUnitary is the Euclidean norm of x.
func L2NormUnitary(x []float64) float64 {
	var scale float64
	var sumSquares float64 = 1
	for _, v := range x {
		if v == 0 {
			continue
		}
		absxi := math.Abs(v)
		if math.IsNaN(absxi) {
			return math.NaN()
		}
		if scale < absxi {
			s := scale / absxi
			sumSquares = 1 + sumSquares*s*s
			scale = absxi
		} else {
			s := absxi / scale
			sumSquares += s * s
		}
	}
	if math.IsInf(scale, 1) {
		return math.Inf(1)
	}
	return scale * math.Sqrt(sumSquares)
}
