// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dense implements dense double matrix kernels — a GEMM-style
// multiply, triangular solves and rank-one updates — and the LU, QR,
// Cholesky, eigenvalue and singular value factorizations built on top of
// them, plus the Solve/Inverse/Det/Rank/Cond/Norm/Trace dispatch in
// algebra.go.
package dense
