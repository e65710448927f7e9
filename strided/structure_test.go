// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

import "testing"

func TestRangeThenStride(t *testing.T) {
	// A structure with extent (10,10), range((2,3),(5,5)) then
	// stride((2,1)): resulting extent (3,5), element at view index (0,0)
	// equals storage offset 2*10+3 = 23 (row-major, stride row=10, col=1).
	s := NewStructure2d(NewExtent2d(10, 10))
	ranged := s.Range(Index2d{I0: 2, I1: 3}, NewExtent2d(5, 5))
	strided := ranged.Stride(2, 1)

	if strided.Extent.N0 != 3 || strided.Extent.N1 != 5 {
		t.Fatalf("extent = %v, want (3,5)", strided.Extent)
	}
	off := strided.Layout.Offset(Index2d{I0: 0, I1: 0})
	if off != 23 {
		t.Fatalf("offset at (0,0) = %d, want 23", off)
	}
}

func TestTransposeInvolution(t *testing.T) {
	s := NewStructure2d(NewExtent2d(3, 4))
	got := s.Transpose().Transpose()
	if got != s {
		t.Fatalf("transpose∘transpose = %+v, want identity %+v", got, s)
	}
}

func TestRangeComposesWithCombinedStart(t *testing.T) {
	s := NewStructure2d(NewExtent2d(20, 20))
	a := s.Range(Index2d{I0: 2, I1: 3}, NewExtent2d(10, 10))
	b := a.Range(Index2d{I0: 1, I1: 1}, NewExtent2d(5, 5))
	direct := s.Range(Index2d{I0: 3, I1: 4}, NewExtent2d(5, 5))
	if b.Layout.Start != direct.Layout.Start {
		t.Fatalf("composed range start = %d, want %d", b.Layout.Start, direct.Layout.Start)
	}
}

func TestStrideComposesMultiplicatively(t *testing.T) {
	s := NewStructure1d(NewExtent1d(100))
	a := s.Stride(2)
	b := a.Stride(3)
	direct := s.Stride(6)
	if b.Layout.Stride.S0 != direct.Layout.Stride.S0 {
		t.Fatalf("composed stride = %d, want %d", b.Layout.Stride.S0, direct.Layout.Stride.S0)
	}
}

func TestSliceRowAndCol(t *testing.T) {
	s := NewStructure2d(NewExtent2d(4, 5))
	row := s.SliceRow(2)
	if row.Extent.N0 != 5 {
		t.Fatalf("row extent = %d, want 5", row.Extent.N0)
	}
	if off := row.Layout.Offset(Index1d{I0: 0}); off != 10 {
		t.Fatalf("row(2) offset at 0 = %d, want 10", off)
	}
	col := s.SliceCol(1)
	if col.Extent.N0 != 4 {
		t.Fatalf("col extent = %d, want 4", col.Extent.N0)
	}
	if off := col.Layout.Offset(Index1d{I0: 2}); off != 11 {
		t.Fatalf("col(1) offset at 2 = %d, want 11", off)
	}
}

func TestDiceOnStructure3d(t *testing.T) {
	s := NewStructure3d(NewExtent3d(2, 3, 4))
	swapped := s.Dice([3]int{1, 0, 2})
	if swapped.Extent.N0 != 3 || swapped.Extent.N1 != 2 || swapped.Extent.N2 != 4 {
		t.Fatalf("diced extent = %v, want (3,2,4)", swapped.Extent)
	}
}

func TestZeroExtentContains(t *testing.T) {
	e := NewExtent2d(0, 0)
	if e.Size() != 0 {
		t.Fatalf("size = %d, want 0", e.Size())
	}
	if e.Contains(Index2d{}) {
		t.Fatal("zero extent should contain no index")
	}
}
