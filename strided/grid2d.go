// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

// Grid2d is a window onto a Float64Storage: a Structure2d describing the
// shape and a Storage holding the elements. Mutation through any Grid2d
// sharing the same Storage is visible to every other Grid2d sharing it.
type Grid2d struct {
	Structure Structure2d
	Storage   *Float64Storage
}

// DenseGrid2d allocates a fresh, contiguous Grid2d of the given extent.
func DenseGrid2d(e Extent2d) Grid2d {
	return Grid2d{
		Structure: NewStructure2d(e),
		Storage:   NewFloat64Storage(e.Size()),
	}
}

// NewGrid2d wraps an existing structure and storage without copying.
func NewGrid2d(s Structure2d, storage *Float64Storage) Grid2d {
	return Grid2d{Structure: s, Storage: storage}
}

// Dims returns the row and column counts.
func (g Grid2d) Dims() (rows, cols int) { return g.Structure.Extent.N0, g.Structure.Extent.N1 }

// Get returns the element at idx.
func (g Grid2d) Get(idx Index2d) float64 {
	if !g.Structure.Extent.Contains(idx) {
		panic(ErrIndexOutOfBounds)
	}
	return g.Storage.Get(g.Structure.Layout.Offset(idx))
}

// At is the row/column convenience form of Get.
func (g Grid2d) At(i, j int) float64 { return g.Get(Index2d{I0: i, I1: j}) }

// Set assigns v to the element at idx.
func (g Grid2d) Set(idx Index2d, v float64) {
	if !g.Structure.Extent.Contains(idx) {
		panic(ErrIndexOutOfBounds)
	}
	g.Storage.Set(g.Structure.Layout.Offset(idx), v)
}

// SetAt is the row/column convenience form of Set.
func (g Grid2d) SetAt(i, j int, v float64) { g.Set(Index2d{I0: i, I1: j}, v) }

func (g Grid2d) extentEqual(o Grid2d) bool {
	return g.Structure.Extent.N0 == o.Structure.Extent.N0 &&
		g.Structure.Extent.N1 == o.Structure.Extent.N1 &&
		g.Structure.Extent.Channels == o.Structure.Extent.Channels
}

func requireExtentEqual2d(a, b Grid2d) {
	if !a.extentEqual(b) {
		panic(ErrExtentMismatch)
	}
}

// Fill sets every element of g to v.
func (g Grid2d) Fill(v float64) {
	e := g.Structure.Extent
	if IsContiguous2d(g.Structure.Layout, e) {
		raw := g.Storage.Raw()[g.Structure.Layout.Start : g.Structure.Layout.Start+e.Size()]
		for i := range raw {
			raw[i] = v
		}
		return
	}
	RowMajor2d(e, func(idx Index2d) bool {
		g.Set(idx, v)
		return true
	})
}

// Assign copies src's elements into g element-wise. The fast path triggers
// when both structures are contiguous row-major runs over the same dense
// kind; otherwise elements are visited one at a time via the default loop
// strategy.
func (g Grid2d) Assign(src Grid2d) {
	requireExtentEqual2d(g, src)
	e := g.Structure.Extent
	if IsContiguous2d(g.Structure.Layout, e) && IsContiguous2d(src.Structure.Layout, e) {
		dst := g.Storage.Raw()[g.Structure.Layout.Start : g.Structure.Layout.Start+e.Size()]
		from := src.Storage.Raw()[src.Structure.Layout.Start : src.Structure.Layout.Start+e.Size()]
		copy(dst, from)
		return
	}
	RowMajor2d(e, func(idx Index2d) bool {
		g.Set(idx, src.Get(idx))
		return true
	})
}

// AssignFunc applies f to every element of g in place.
func (g Grid2d) AssignFunc(f func(float64) float64) {
	e := g.Structure.Extent
	RowMajor2d(e, func(idx Index2d) bool {
		g.Set(idx, f(g.Get(idx)))
		return true
	})
}

// AssignWith combines g and src element-wise with f, storing the result
// back into g: g[i] = f(g[i], src[i]).
func (g Grid2d) AssignWith(src Grid2d, f func(a, b float64) float64) {
	requireExtentEqual2d(g, src)
	e := g.Structure.Extent
	RowMajor2d(e, func(idx Index2d) bool {
		g.Set(idx, f(g.Get(idx), src.Get(idx)))
		return true
	})
}

// Swap exchanges every element of g with the corresponding element of o.
func (g Grid2d) Swap(o Grid2d) {
	requireExtentEqual2d(g, o)
	e := g.Structure.Extent
	if IsContiguous2d(g.Structure.Layout, e) && IsContiguous2d(o.Structure.Layout, e) {
		a := g.Storage.Raw()[g.Structure.Layout.Start : g.Structure.Layout.Start+e.Size()]
		b := o.Storage.Raw()[o.Structure.Layout.Start : o.Structure.Layout.Start+e.Size()]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
		return
	}
	RowMajor2d(e, func(idx Index2d) bool {
		av, bv := g.Get(idx), o.Get(idx)
		g.Set(idx, bv)
		o.Set(idx, av)
		return true
	})
}

// Reduce right-folds unary over every element of g in backward order and
// combines partial results with binary: acc(n-1) = unary(x[n-1]),
// acc(i) = binary(acc(i+1), unary(x[i])). It returns ok == false if g has
// no elements.
func (g Grid2d) Reduce(binary func(a, b float64) float64, unary func(float64) float64) (result float64, ok bool) {
	first := true
	Backward2d(g.Structure.Extent, func(idx Index2d) bool {
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

// AnyMatch reports whether any element satisfies pred, short-circuiting on
// the first match.
func (g Grid2d) AnyMatch(pred func(float64) bool) bool {
	found := false
	RowMajor2d(g.Structure.Extent, func(idx Index2d) bool {
		if pred(g.Get(idx)) {
			found = true
			return false
		}
		return true
	})
	return found
}

// AllMatch reports whether every element satisfies pred, short-circuiting
// on the first failure.
func (g Grid2d) AllMatch(pred func(float64) bool) bool {
	all := true
	RowMajor2d(g.Structure.Extent, func(idx Index2d) bool {
		if !pred(g.Get(idx)) {
			all = false
			return false
		}
		return true
	})
	return all
}

// NonMatch reports whether no element satisfies pred.
func (g Grid2d) NonMatch(pred func(float64) bool) bool {
	return !g.AnyMatch(pred)
}

// Equals reports whether g and o are extent-equal and every element agrees
// under ctx.
func (g Grid2d) Equals(o Grid2d, ctx Context) bool {
	if !g.extentEqual(o) {
		return false
	}
	equal := true
	RowMajor2d(g.Structure.Extent, func(idx Index2d) bool {
		if !ctx.Equal(g.Get(idx), o.Get(idx)) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// Copy returns a deep, independent copy of g: a fresh dense Grid2d with the
// same elements and extent.
func (g Grid2d) Copy() Grid2d {
	dst := DenseGrid2d(g.Structure.Extent)
	dst.Assign(g)
	return dst
}

// Row returns the 1-d grid view of row i, sharing g's storage.
func (g Grid2d) Row(i int) Grid1d {
	return Grid1d{Structure: g.Structure.SliceRow(i), Storage: g.Storage}
}

// Col returns the 1-d grid view of column j, sharing g's storage.
func (g Grid2d) Col(j int) Grid1d {
	return Grid1d{Structure: g.Structure.SliceCol(j), Storage: g.Storage}
}

// View applies a Range view transform, returning a new Grid2d over the
// same storage.
func (g Grid2d) View(start Index2d, extent Extent2d) Grid2d {
	return Grid2d{Structure: g.Structure.Range(start, extent), Storage: g.Storage}
}

// T returns the transposed view of g, sharing its storage.
func (g Grid2d) T() Grid2d {
	return Grid2d{Structure: g.Structure.Transpose(), Storage: g.Storage}
}
