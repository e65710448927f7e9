// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

// Structure1d, Structure2d and Structure3d pair an Extent with a Layout.
// View transforms on a Structure return a new Structure sharing whatever
// storage the caller combines it with; they never touch element data.
//
// Composition laws (see the package tests for the executable form):
//
//	Range ∘ Range   == Range with combined starts
//	Stride ∘ Stride == Stride with elementwise-multiplied strides
//	Transpose ∘ Transpose == identity
type (
	Structure1d struct {
		Extent Extent1d
		Layout Layout1d
	}
	Structure2d struct {
		Extent Extent2d
		Layout Layout2d
	}
	Structure3d struct {
		Extent Extent3d
		Layout Layout3d
	}
)

// NewStructure1d returns the contiguous structure for extent e.
func NewStructure1d(e Extent1d) Structure1d {
	return Structure1d{Extent: e, Layout: RowMajorLayout1d(e)}
}

// NewStructure2d returns the contiguous, row-major structure for extent e.
func NewStructure2d(e Extent2d) Structure2d {
	return Structure2d{Extent: e, Layout: RowMajorLayout2d(e)}
}

// NewStructure3d returns the contiguous, row-major structure for extent e.
func NewStructure3d(e Extent3d) Structure3d {
	return Structure3d{Extent: e, Layout: RowMajorLayout3d(e)}
}

// Range restricts s to the sub-box of size extent starting at start.
func (s Structure1d) Range(start int, extent Extent1d) Structure1d {
	if start < 0 || start+extent.N0 > s.Extent.N0 {
		panic(ErrIndexOutOfBounds)
	}
	return Structure1d{
		Extent: extent,
		Layout: Layout1d{
			Start:  s.Layout.Start + s.Layout.Stride.S0*start,
			Stride: s.Layout.Stride,
		},
	}
}

// Stride keeps every n-th element of s along its one axis.
func (s Structure1d) Stride(n int) Structure1d {
	return Structure1d{
		Extent: Extent1d{N0: strideExtent(s.Extent.N0, n)},
		Layout: Layout1d{
			Start:  s.Layout.Start,
			Stride: Stride1d{S0: s.Layout.Stride.S0 * n},
		},
	}
}

// Range restricts s to the sub-box of size extent starting at start.
func (s Structure2d) Range(start Index2d, extent Extent2d) Structure2d {
	if start.I0 < 0 || start.I1 < 0 ||
		start.I0+extent.N0 > s.Extent.N0 || start.I1+extent.N1 > s.Extent.N1 ||
		extent.Channels != s.Extent.Channels {
		panic(ErrIndexOutOfBounds)
	}
	return Structure2d{
		Extent: extent,
		Layout: Layout2d{
			Start:  s.Layout.Start + s.Layout.Stride.S0*start.I0 + s.Layout.Stride.S1*start.I1,
			Stride: s.Layout.Stride,
		},
	}
}

// Stride keeps every (s0,s1)-th element of s along each axis.
func (s Structure2d) Stride(s0, s1 int) Structure2d {
	return Structure2d{
		Extent: Extent2d{
			N0:       strideExtent(s.Extent.N0, s0),
			N1:       strideExtent(s.Extent.N1, s1),
			Channels: s.Extent.Channels,
		},
		Layout: Layout2d{
			Start: s.Layout.Start,
			Stride: Stride2d{
				S0: s.Layout.Stride.S0 * s0,
				S1: s.Layout.Stride.S1 * s1,
			},
		},
	}
}

// Transpose swaps the two axes of s: extent and stride axes both reverse.
// No storage is touched. Transpose∘Transpose is the identity structure.
func (s Structure2d) Transpose() Structure2d {
	return Structure2d{
		Extent: Extent2d{N0: s.Extent.N1, N1: s.Extent.N0, Channels: s.Extent.Channels},
		Layout: Layout2d{
			Start:  s.Layout.Start,
			Stride: Stride2d{S0: s.Layout.Stride.S1, S1: s.Layout.Stride.S0},
		},
	}
}

// SliceRow projects s onto the 1-d structure of row i, reducing rank by
// fixing axis 0.
func (s Structure2d) SliceRow(i int) Structure1d {
	if i < 0 || i >= s.Extent.N0 {
		panic(ErrIndexOutOfBounds)
	}
	return Structure1d{
		Extent: Extent1d{N0: s.Extent.N1},
		Layout: Layout1d{
			Start:  s.Layout.Start + s.Layout.Stride.S0*i,
			Stride: Stride1d{S0: s.Layout.Stride.S1},
		},
	}
}

// SliceCol projects s onto the 1-d structure of column j, reducing rank by
// fixing axis 1.
func (s Structure2d) SliceCol(j int) Structure1d {
	if j < 0 || j >= s.Extent.N1 {
		panic(ErrIndexOutOfBounds)
	}
	return Structure1d{
		Extent: Extent1d{N0: s.Extent.N0},
		Layout: Layout1d{
			Start:  s.Layout.Start + s.Layout.Stride.S1*j,
			Stride: Stride1d{S0: s.Layout.Stride.S0},
		},
	}
}

// Range restricts s to the sub-box of size extent starting at start.
func (s Structure3d) Range(start Index3d, extent Extent3d) Structure3d {
	if start.I0 < 0 || start.I1 < 0 || start.I2 < 0 ||
		start.I0+extent.N0 > s.Extent.N0 ||
		start.I1+extent.N1 > s.Extent.N1 ||
		start.I2+extent.N2 > s.Extent.N2 {
		panic(ErrIndexOutOfBounds)
	}
	return Structure3d{
		Extent: extent,
		Layout: Layout3d{
			Start: s.Layout.Start +
				s.Layout.Stride.S0*start.I0 +
				s.Layout.Stride.S1*start.I1 +
				s.Layout.Stride.S2*start.I2,
			Stride: s.Layout.Stride,
		},
	}
}

// Stride keeps every (s0,s1,s2)-th element of s along each axis.
func (s Structure3d) Stride(s0, s1, s2 int) Structure3d {
	return Structure3d{
		Extent: Extent3d{
			N0: strideExtent(s.Extent.N0, s0),
			N1: strideExtent(s.Extent.N1, s1),
			N2: strideExtent(s.Extent.N2, s2),
		},
		Layout: Layout3d{
			Start: s.Layout.Start,
			Stride: Stride3d{
				S0: s.Layout.Stride.S0 * s0,
				S1: s.Layout.Stride.S1 * s1,
				S2: s.Layout.Stride.S2 * s2,
			},
		},
	}
}

// Dice permutes the three axes of s according to perm, a permutation of
// {0,1,2}. Dice({1,0,2}, ...) is the generalization of 2-d transpose to
// swapping the first two axes while leaving the third untouched.
func (s Structure3d) Dice(perm [3]int) Structure3d {
	extents := [3]int{s.Extent.N0, s.Extent.N1, s.Extent.N2}
	strides := [3]int{s.Layout.Stride.S0, s.Layout.Stride.S1, s.Layout.Stride.S2}
	return Structure3d{
		Extent: Extent3d{N0: extents[perm[0]], N1: extents[perm[1]], N2: extents[perm[2]]},
		Layout: Layout3d{
			Start:  s.Layout.Start,
			Stride: Stride3d{S0: strides[perm[0]], S1: strides[perm[1]], S2: strides[perm[2]]},
		},
	}
}

// Slice fixes the given axis (0, 1 or 2) at value, projecting s onto the
// 2-d structure of the remaining two axes in their original order.
func (s Structure3d) Slice(axis, value int) Structure2d {
	extents := [3]int{s.Extent.N0, s.Extent.N1, s.Extent.N2}
	strides := [3]int{s.Layout.Stride.S0, s.Layout.Stride.S1, s.Layout.Stride.S2}
	if axis < 0 || axis > 2 || value < 0 || value >= extents[axis] {
		panic(ErrIndexOutOfBounds)
	}
	var rem [2]int
	k := 0
	for i := 0; i < 3; i++ {
		if i != axis {
			rem[k] = i
			k++
		}
	}
	return Structure2d{
		Extent: Extent2d{N0: extents[rem[0]], N1: extents[rem[1]], Channels: 1},
		Layout: Layout2d{
			Start:  s.Layout.Start + strides[axis]*value,
			Stride: Stride2d{S0: strides[rem[0]], S1: strides[rem[1]]},
		},
	}
}

// strideExtent computes the element count left along an axis of size n
// after keeping every s-th element.
func strideExtent(n, s int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/s + 1
}
