// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

// A loop strategy is a pure iterator over the dimensional indices of an
// Extent; it allocates nothing and differs from its siblings only in
// traversal order. visit returning false stops the traversal early, which
// is how AnyMatch/AllMatch/NonMatch on a Grid get their short-circuit
// behaviour from a single shared walk.

// Visit1d, Visit2d and Visit3d are the callback shapes a loop strategy
// invokes per index. Returning false stops the walk.
type (
	Visit1d func(Index1d) bool
	Visit2d func(Index2d) bool
	Visit3d func(Index3d) bool
)

// RowMajor2d walks e with the outer axis (rows) varying slowest: this is
// the default loop for a 2-d lattice.
func RowMajor2d(e Extent2d, visit Visit2d) {
	for i := 0; i < e.N0; i++ {
		for j := 0; j < e.N1; j++ {
			if !visit(Index2d{I0: i, I1: j}) {
				return
			}
		}
	}
}

// ColumnMajor2d walks e with the inner axis (columns) varying slowest.
func ColumnMajor2d(e Extent2d, visit Visit2d) {
	for j := 0; j < e.N1; j++ {
		for i := 0; i < e.N0; i++ {
			if !visit(Index2d{I0: i, I1: j}) {
				return
			}
		}
	}
}

// Backward2d walks e with the outer axis descending; reduce uses this
// order so that non-associative reducers are reproducible.
func Backward2d(e Extent2d, visit Visit2d) {
	for i := e.N0 - 1; i >= 0; i-- {
		for j := e.N1 - 1; j >= 0; j-- {
			if !visit(Index2d{I0: i, I1: j}) {
				return
			}
		}
	}
}

// RowMajor1d walks e ascending.
func RowMajor1d(e Extent1d, visit Visit1d) {
	for i := 0; i < e.N0; i++ {
		if !visit(Index1d{I0: i}) {
			return
		}
	}
}

// Backward1d walks e descending.
func Backward1d(e Extent1d, visit Visit1d) {
	for i := e.N0 - 1; i >= 0; i-- {
		if !visit(Index1d{I0: i}) {
			return
		}
	}
}

// RowMajor3d walks e with axis 0 slowest, axis 2 fastest.
func RowMajor3d(e Extent3d, visit Visit3d) {
	for i := 0; i < e.N0; i++ {
		for j := 0; j < e.N1; j++ {
			for k := 0; k < e.N2; k++ {
				if !visit(Index3d{I0: i, I1: j, I2: k}) {
					return
				}
			}
		}
	}
}

// ColumnMajor3d walks e with axis 2 slowest, axis 0 fastest.
func ColumnMajor3d(e Extent3d, visit Visit3d) {
	for k := 0; k < e.N2; k++ {
		for j := 0; j < e.N1; j++ {
			for i := 0; i < e.N0; i++ {
				if !visit(Index3d{I0: i, I1: j, I2: k}) {
					return
				}
			}
		}
	}
}

// Backward3d walks e with every axis descending, axis 0 slowest.
func Backward3d(e Extent3d, visit Visit3d) {
	for i := e.N0 - 1; i >= 0; i-- {
		for j := e.N1 - 1; j >= 0; j-- {
			for k := e.N2 - 1; k >= 0; k-- {
				if !visit(Index3d{I0: i, I1: j, I2: k}) {
					return
				}
			}
		}
	}
}
