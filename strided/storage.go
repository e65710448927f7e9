// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

// Storage is a flat, contiguous, zero-based buffer of one typed element
// kind. It is the single point at which a Grid touches real memory; the
// structure/layout machinery never allocates.
//
// Storage is generic over the element kind so that a new backing kind
// (double, int, long, or an arbitrary object type) can be plugged in by
// implementing this interface. The kernels in package dense do not go
// through this interface: they work on *Float64Storage and use its Raw
// slice for their fast paths. The core instantiates it for float64
// only — Float64Storage below — mirroring the reification the design
// calls for without any runtime dispatch cost.
type Storage[T any] interface {
	// Len returns the number of elements in the buffer.
	Len() int
	// Get returns the element at i. It panics if i is out of range.
	Get(i int) T
	// Set assigns v to the element at i. It panics if i is out of range.
	Set(i int, v T)
	// Copy returns a deep copy of the buffer, independent of the receiver.
	Copy() Storage[T]
	// CopyRange copies n elements from src (in the argument buffer) to
	// dst (in the receiver).
	CopyRange(dst, src int, n int, from Storage[T])
	// Like returns a freshly allocated buffer of the same kind and the
	// given length, zero-valued.
	Like(size int) Storage[T]
}

// Float64Storage is the dense, contiguous float64 Storage used throughout
// the core. It is the only storage kind the core needs to implement in
// full; int/long/object storages are structurally identical and are left
// to a caller that needs them.
type Float64Storage struct {
	data []float64
}

// NewFloat64Storage allocates a zeroed buffer of the given length.
func NewFloat64Storage(length int) *Float64Storage {
	return &Float64Storage{data: make([]float64, length)}
}

// WrapFloat64Storage wraps an existing slice without copying it.
func WrapFloat64Storage(data []float64) *Float64Storage {
	return &Float64Storage{data: data}
}

// Len implements Storage.
func (s *Float64Storage) Len() int { return len(s.data) }

// Get implements Storage.
func (s *Float64Storage) Get(i int) float64 {
	return s.data[i]
}

// Set implements Storage.
func (s *Float64Storage) Set(i int, v float64) {
	s.data[i] = v
}

// Copy implements Storage.
func (s *Float64Storage) Copy() Storage[float64] {
	cp := make([]float64, len(s.data))
	copy(cp, s.data)
	return &Float64Storage{data: cp}
}

// CopyRange implements Storage.
func (s *Float64Storage) CopyRange(dst, src int, n int, from Storage[float64]) {
	o, ok := from.(*Float64Storage)
	if !ok {
		for i := 0; i < n; i++ {
			s.data[dst+i] = from.Get(src + i)
		}
		return
	}
	copy(s.data[dst:dst+n], o.data[src:src+n])
}

// Like implements Storage.
func (s *Float64Storage) Like(size int) Storage[float64] {
	return NewFloat64Storage(size)
}

// Raw exposes the backing slice directly; the dense kernels use it for the
// block-copy and BLAS fast paths where going through Get/Set per element
// would dominate the cost of the operation.
func (s *Float64Storage) Raw() []float64 { return s.data }
