// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

// Grid1d is a 1-d window onto a Float64Storage. It backs both standalone
// vectors and the row/column views sliced out of a Grid2d.
type Grid1d struct {
	Structure Structure1d
	Storage   *Float64Storage
}

// DenseGrid1d allocates a fresh, contiguous Grid1d of the given extent.
func DenseGrid1d(e Extent1d) Grid1d {
	return Grid1d{Structure: NewStructure1d(e), Storage: NewFloat64Storage(e.Size())}
}

// Len returns the number of elements in g.
func (g Grid1d) Len() int { return g.Structure.Extent.N0 }

// Get returns the element at idx.
func (g Grid1d) Get(idx Index1d) float64 {
	if !g.Structure.Extent.Contains(idx) {
		panic(ErrIndexOutOfBounds)
	}
	return g.Storage.Get(g.Structure.Layout.Offset(idx))
}

// At is the plain-int convenience form of Get.
func (g Grid1d) At(i int) float64 { return g.Get(Index1d{I0: i}) }

// Set assigns v to the element at idx.
func (g Grid1d) Set(idx Index1d, v float64) {
	if !g.Structure.Extent.Contains(idx) {
		panic(ErrIndexOutOfBounds)
	}
	g.Storage.Set(g.Structure.Layout.Offset(idx), v)
}

// SetAt is the plain-int convenience form of Set.
func (g Grid1d) SetAt(i int, v float64) { g.Set(Index1d{I0: i}, v) }

func requireExtentEqual1d(a, b Grid1d) {
	if a.Structure.Extent.N0 != b.Structure.Extent.N0 {
		panic(ErrExtentMismatch)
	}
}

// Fill sets every element of g to v.
func (g Grid1d) Fill(v float64) {
	e := g.Structure.Extent
	if IsContiguous1d(g.Structure.Layout) {
		raw := g.Storage.Raw()[g.Structure.Layout.Start : g.Structure.Layout.Start+e.N0]
		for i := range raw {
			raw[i] = v
		}
		return
	}
	RowMajor1d(e, func(idx Index1d) bool {
		g.Set(idx, v)
		return true
	})
}

// Assign copies src's elements into g element-wise, using a block copy
// when both are contiguous.
func (g Grid1d) Assign(src Grid1d) {
	requireExtentEqual1d(g, src)
	e := g.Structure.Extent
	if IsContiguous1d(g.Structure.Layout) && IsContiguous1d(src.Structure.Layout) {
		dst := g.Storage.Raw()[g.Structure.Layout.Start : g.Structure.Layout.Start+e.N0]
		from := src.Storage.Raw()[src.Structure.Layout.Start : src.Structure.Layout.Start+e.N0]
		copy(dst, from)
		return
	}
	RowMajor1d(e, func(idx Index1d) bool {
		g.Set(idx, src.Get(idx))
		return true
	})
}

// AssignFunc applies f to every element of g in place.
func (g Grid1d) AssignFunc(f func(float64) float64) {
	RowMajor1d(g.Structure.Extent, func(idx Index1d) bool {
		g.Set(idx, f(g.Get(idx)))
		return true
	})
}

// AssignWith combines g and src element-wise with f, storing into g.
func (g Grid1d) AssignWith(src Grid1d, f func(a, b float64) float64) {
	requireExtentEqual1d(g, src)
	RowMajor1d(g.Structure.Extent, func(idx Index1d) bool {
		g.Set(idx, f(g.Get(idx), src.Get(idx)))
		return true
	})
}

// Swap exchanges every element of g with the corresponding element of o.
func (g Grid1d) Swap(o Grid1d) {
	requireExtentEqual1d(g, o)
	e := g.Structure.Extent
	if IsContiguous1d(g.Structure.Layout) && IsContiguous1d(o.Structure.Layout) {
		a := g.Storage.Raw()[g.Structure.Layout.Start : g.Structure.Layout.Start+e.N0]
		b := o.Storage.Raw()[o.Structure.Layout.Start : o.Structure.Layout.Start+e.N0]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
		return
	}
	RowMajor1d(e, func(idx Index1d) bool {
		av, bv := g.Get(idx), o.Get(idx)
		g.Set(idx, bv)
		o.Set(idx, av)
		return true
	})
}

// Reduce right-folds unary over g's elements in backward order, as
// Grid2d.Reduce does.
func (g Grid1d) Reduce(binary func(a, b float64) float64, unary func(float64) float64) (result float64, ok bool) {
	first := true
	Backward1d(g.Structure.Extent, func(idx Index1d) bool {
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

// AnyMatch reports whether any element satisfies pred.
func (g Grid1d) AnyMatch(pred func(float64) bool) bool {
	found := false
	RowMajor1d(g.Structure.Extent, func(idx Index1d) bool {
		if pred(g.Get(idx)) {
			found = true
			return false
		}
		return true
	})
	return found
}

// AllMatch reports whether every element satisfies pred.
func (g Grid1d) AllMatch(pred func(float64) bool) bool {
	all := true
	RowMajor1d(g.Structure.Extent, func(idx Index1d) bool {
		if !pred(g.Get(idx)) {
			all = false
			return false
		}
		return true
	})
	return all
}

// NonMatch reports whether no element satisfies pred.
func (g Grid1d) NonMatch(pred func(float64) bool) bool { return !g.AnyMatch(pred) }

// Equals reports whether g and o are extent-equal and every element agrees
// under ctx.
func (g Grid1d) Equals(o Grid1d, ctx Context) bool {
	if g.Structure.Extent.N0 != o.Structure.Extent.N0 {
		return false
	}
	equal := true
	RowMajor1d(g.Structure.Extent, func(idx Index1d) bool {
		if !ctx.Equal(g.Get(idx), o.Get(idx)) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// Copy returns a deep, independent copy of g.
func (g Grid1d) Copy() Grid1d {
	dst := DenseGrid1d(g.Structure.Extent)
	dst.Assign(g)
	return dst
}

// View applies a Range view transform.
func (g Grid1d) View(start int, extent Extent1d) Grid1d {
	return Grid1d{Structure: g.Structure.Range(start, extent), Storage: g.Storage}
}
