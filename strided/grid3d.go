// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

// Grid3d is a 3-d window onto a Float64Storage. It mirrors Grid2d's
// operations at rank 3; the core's kernels are all rank ≤ 2, so Grid3d
// exists for completeness of the view model rather than for the matrix
// factorizations.
type Grid3d struct {
	Structure Structure3d
	Storage   *Float64Storage
}

// DenseGrid3d allocates a fresh, contiguous Grid3d of the given extent.
func DenseGrid3d(e Extent3d) Grid3d {
	return Grid3d{Structure: NewStructure3d(e), Storage: NewFloat64Storage(e.Size())}
}

// Get returns the element at idx.
func (g Grid3d) Get(idx Index3d) float64 {
	if !g.Structure.Extent.Contains(idx) {
		panic(ErrIndexOutOfBounds)
	}
	return g.Storage.Get(g.Structure.Layout.Offset(idx))
}

// Set assigns v to the element at idx.
func (g Grid3d) Set(idx Index3d, v float64) {
	if !g.Structure.Extent.Contains(idx) {
		panic(ErrIndexOutOfBounds)
	}
	g.Storage.Set(g.Structure.Layout.Offset(idx), v)
}

func requireExtentEqual3d(a, b Grid3d) {
	ae, be := a.Structure.Extent, b.Structure.Extent
	if ae.N0 != be.N0 || ae.N1 != be.N1 || ae.N2 != be.N2 {
		panic(ErrExtentMismatch)
	}
}

// Fill sets every element of g to v.
func (g Grid3d) Fill(v float64) {
	RowMajor3d(g.Structure.Extent, func(idx Index3d) bool {
		g.Set(idx, v)
		return true
	})
}

// Assign copies src's elements into g element-wise.
func (g Grid3d) Assign(src Grid3d) {
	requireExtentEqual3d(g, src)
	RowMajor3d(g.Structure.Extent, func(idx Index3d) bool {
		g.Set(idx, src.Get(idx))
		return true
	})
}

// AssignFunc applies f to every element of g in place.
func (g Grid3d) AssignFunc(f func(float64) float64) {
	RowMajor3d(g.Structure.Extent, func(idx Index3d) bool {
		g.Set(idx, f(g.Get(idx)))
		return true
	})
}

// AssignWith combines g and src element-wise with f, storing into g.
func (g Grid3d) AssignWith(src Grid3d, f func(a, b float64) float64) {
	requireExtentEqual3d(g, src)
	RowMajor3d(g.Structure.Extent, func(idx Index3d) bool {
		g.Set(idx, f(g.Get(idx), src.Get(idx)))
		return true
	})
}

// Reduce right-folds unary over g's elements in backward order.
func (g Grid3d) Reduce(binary func(a, b float64) float64, unary func(float64) float64) (result float64, ok bool) {
	first := true
	Backward3d(g.Structure.Extent, func(idx Index3d) bool {
		v := unary(g.Get(idx))
		if first {
			result = v
			first = false
		} else {
			result = binary(result, v)
		}
		return true
	})
	return result, !first
}

// Equals reports whether g and o are extent-equal and every element agrees
// under ctx.
func (g Grid3d) Equals(o Grid3d, ctx Context) bool {
	oe, ge := o.Structure.Extent, g.Structure.Extent
	if ge.N0 != oe.N0 || ge.N1 != oe.N1 || ge.N2 != oe.N2 {
		return false
	}
	equal := true
	RowMajor3d(g.Structure.Extent, func(idx Index3d) bool {
		if !ctx.Equal(g.Get(idx), o.Get(idx)) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// Copy returns a deep, independent copy of g.
func (g Grid3d) Copy() Grid3d {
	dst := DenseGrid3d(g.Structure.Extent)
	dst.Assign(g)
	return dst
}

// View applies a Range view transform.
func (g Grid3d) View(start Index3d, extent Extent3d) Grid3d {
	return Grid3d{Structure: g.Structure.Range(start, extent), Storage: g.Storage}
}

// Dice permutes g's axes; see Structure3d.Dice.
func (g Grid3d) Dice(perm [3]int) Grid3d {
	return Grid3d{Structure: g.Structure.Dice(perm), Storage: g.Storage}
}

// Slice fixes one axis, projecting g onto a Grid2d view of the remaining
// two axes.
func (g Grid3d) Slice(axis, value int) Grid2d {
	return Grid2d{Structure: g.Structure.Slice(axis, value), Storage: g.Storage}
}
