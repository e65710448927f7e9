// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

import "testing"

func TestGridSetGet(t *testing.T) {
	g := DenseGrid2d(NewExtent2d(3, 3))
	g.SetAt(1, 2, 5.5)
	if got := g.At(1, 2); got != 5.5 {
		t.Fatalf("At(1,2) = %v, want 5.5", got)
	}
}

func TestGridFillAndEquals(t *testing.T) {
	a := DenseGrid2d(NewExtent2d(2, 2))
	a.Fill(3)
	b := DenseGrid2d(NewExtent2d(2, 2))
	b.Fill(3)
	if !a.Equals(b, Context{}) {
		t.Fatal("filled grids of equal extent and value should be equal")
	}
}

func TestGridCopyIsIndependent(t *testing.T) {
	a := DenseGrid2d(NewExtent2d(2, 2))
	a.Fill(1)
	b := a.Copy()
	b.SetAt(0, 0, 9)
	if a.At(0, 0) == 9 {
		t.Fatal("copy should not alias the original storage")
	}
	if !b.Equals(b.Copy(), Context{}) {
		t.Fatal("copy(g).Equals(g) should hold")
	}
}

func TestGridAssignIsNoOp(t *testing.T) {
	a := DenseGrid2d(NewExtent2d(3, 3))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a.SetAt(i, j, float64(i*3+j))
		}
	}
	before := a.Copy()
	a.Assign(a)
	if !a.Equals(before, Context{}) {
		t.Fatal("a.Assign(a) should be a no-op")
	}
}

func TestGridViewSharesStorage(t *testing.T) {
	a := DenseGrid2d(NewExtent2d(4, 4))
	view := a.View(Index2d{I0: 1, I1: 1}, NewExtent2d(2, 2))
	view.SetAt(0, 0, 42)
	if a.At(1, 1) != 42 {
		t.Fatal("view mutation should be visible through the parent grid")
	}
}

func TestGridTransposeView(t *testing.T) {
	a := DenseGrid2d(NewExtent2d(2, 3))
	a.SetAt(0, 2, 7)
	tr := a.T()
	if got := tr.At(2, 0); got != 7 {
		t.Fatalf("transposed view At(2,0) = %v, want 7", got)
	}
}

func TestGridReduceIsBackwardAndDeterministic(t *testing.T) {
	a := DenseGrid1d(NewExtent1d(4))
	for i := 0; i < 4; i++ {
		a.SetAt(i, float64(i+1))
	}
	// Non-associative reducer: a(i) = reducer(a(i+1), unary(x[i])) = x[i] - a(i+1).
	sub := func(acc, v float64) float64 { return v - acc }
	ident := func(v float64) float64 { return v }
	got, ok := a.Reduce(sub, ident)
	if !ok {
		t.Fatal("reduce over non-empty grid should produce a result")
	}
	// x = [1,2,3,4]; acc(3)=4; acc(2)=3-4=-1; acc(1)=2-(-1)=3; acc(0)=1-3=-2.
	if got != -2 {
		t.Fatalf("reduce = %v, want -2", got)
	}
}

func TestZeroExtentGridBoundary(t *testing.T) {
	g := DenseGrid2d(NewExtent2d(0, 0))
	rows, cols := g.Dims()
	if rows != 0 || cols != 0 {
		t.Fatalf("Dims() = (%d,%d), want (0,0)", rows, cols)
	}
	if _, ok := g.Reduce(func(a, b float64) float64 { return a + b }, func(v float64) float64 { return v }); ok {
		t.Fatal("reduce over zero-extent grid should report ok=false")
	}
	visited := false
	RowMajor2d(g.Structure.Extent, func(Index2d) bool { visited = true; return true })
	if visited {
		t.Fatal("forEach over zero-extent grid should be a no-op")
	}
	other := DenseGrid2d(NewExtent2d(0, 0))
	if !g.Equals(other, Context{}) {
		t.Fatal("two zero-extent grids of matching extent should be equal")
	}
}

func TestGridExtentMismatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on extent mismatch")
		} else if r != ErrExtentMismatch {
			t.Fatalf("expected ErrExtentMismatch, got %v", r)
		}
	}()
	a := DenseGrid2d(NewExtent2d(2, 2))
	b := DenseGrid2d(NewExtent2d(3, 3))
	a.Assign(b)
}

func TestGridRowColViews(t *testing.T) {
	a := DenseGrid2d(NewExtent2d(3, 3))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a.SetAt(i, j, float64(i*3+j))
		}
	}
	row := a.Row(1)
	if row.At(2) != 5 {
		t.Fatalf("row(1).At(2) = %v, want 5", row.At(2))
	}
	col := a.Col(2)
	if col.At(1) != 5 {
		t.Fatalf("col(2).At(1) = %v, want 5", col.At(1))
	}
	row.SetAt(0, 100)
	if a.At(1, 0) != 100 {
		t.Fatal("row view mutation should be visible in the parent grid")
	}
}
