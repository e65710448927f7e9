// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

// Layout1d, Layout2d and Layout3d map a dimensional index to a flat offset
// in a Storage: offset = Start + Σ Stride_j * idx_j. Layouts are value
// types; every view transform in structure.go returns a new one rather
// than mutating the receiver.
type (
	Layout1d struct {
		Start  int
		Stride Stride1d
	}
	Layout2d struct {
		Start  int
		Stride Stride2d
	}
	Layout3d struct {
		Start  int
		Stride Stride3d
	}
)

// RowMajorLayout1d returns the contiguous layout for extent e starting at
// offset 0.
func RowMajorLayout1d(e Extent1d) Layout1d {
	return Layout1d{Start: 0, Stride: Stride1d{S0: 1}}
}

// RowMajorLayout2d returns the contiguous, row-major layout for extent e
// starting at offset 0: the last axis (column) varies fastest, and
// channels, if any, are the innermost run within a cell.
func RowMajorLayout2d(e Extent2d) Layout2d {
	return Layout2d{
		Start: 0,
		Stride: Stride2d{
			S0: e.N1 * e.Channels,
			S1: e.Channels,
		},
	}
}

// RowMajorLayout3d returns the contiguous, row-major layout for extent e
// starting at offset 0.
func RowMajorLayout3d(e Extent3d) Layout3d {
	return Layout3d{
		Start: 0,
		Stride: Stride3d{
			S0: e.N1 * e.N2,
			S1: e.N2,
			S2: 1,
		},
	}
}

// Offset returns the flat storage offset addressed by idx.
func (l Layout1d) Offset(idx Index1d) int {
	return l.Start + l.Stride.S0*idx.I0
}

// Offset returns the flat storage offset addressed by idx.
func (l Layout2d) Offset(idx Index2d) int {
	return l.Start + l.Stride.S0*idx.I0 + l.Stride.S1*idx.I1
}

// Offset returns the flat storage offset addressed by idx.
func (l Layout3d) Offset(idx Index3d) int {
	return l.Start + l.Stride.S0*idx.I0 + l.Stride.S1*idx.I1 + l.Stride.S2*idx.I2
}

// IsContiguous2d reports whether l addresses e in a single contiguous
// row-major run — the fast path assign/swap/copy operations test for this.
func IsContiguous2d(l Layout2d, e Extent2d) bool {
	return l.Stride.S1 == 1 && l.Stride.S0 == e.N1
}

// IsContiguous1d reports whether l has unit stride, so that consecutive
// indices address consecutive storage elements.
func IsContiguous1d(l Layout1d) bool {
	return l.Stride.S0 == 1
}
