// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

// Error represents a dense package level error.
type Error string

func (e Error) Error() string { return string(e) }

// Sentinel errors raised by the kernels, factorizations and algebra
// façade. The core performs no silent recovery: every one of these
// surfaces to the caller.
const (
	// ErrShapeMismatch is raised when a kernel receives matrices whose
	// shapes forbid the requested operation.
	ErrShapeMismatch = Error("dense: dimension mismatch")

	// ErrSingular is raised by Solve when LU factorization finds a zero
	// pivot under the active tolerance.
	ErrSingular = Error("dense: matrix is singular")

	// ErrNotSPD is raised by Cholesky Solve when the matrix is not
	// symmetric positive definite.
	ErrNotSPD = Error("dense: matrix is not symmetric positive definite")

	// ErrNoConvergence is raised when an eigen or SVD iteration exceeds
	// its iteration cap without converging. It is terminal: the core
	// performs no fallback.
	ErrNoConvergence = Error("dense: iteration failed to converge")

	// ErrInvalidArgument is raised when a documented precondition is
	// violated, such as passing a non-square matrix to a square-only
	// routine.
	ErrInvalidArgument = Error("dense: invalid argument")
)
