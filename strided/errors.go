// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

// Error represents a package level error. Values of this type can be
// recovered with Maybe.
type Error string

func (e Error) Error() string { return string(e) }

// Sentinel errors raised by the structure and grid layers. Each names a
// distinct failure kind; none is recovered silently.
const (
	// ErrExtentOutOfBounds is raised when an Extent constructor receives a
	// negative axis size or a product of axes that overflows int32.
	ErrExtentOutOfBounds = Error("strided: extent out of bounds")

	// ErrIndexOutOfBounds is raised when a dimensional index is negative or
	// not less than the extent along some axis.
	ErrIndexOutOfBounds = Error("strided: index out of bounds")

	// ErrExtentMismatch is raised when a binary lattice operation receives
	// operands whose extents do not agree.
	ErrExtentMismatch = Error("strided: extent mismatch")

	// ErrInvalidArgument is raised when a documented precondition of an
	// operation is violated.
	ErrInvalidArgument = Error("strided: invalid argument")
)

// A Panicker is a function that may panic.
type Panicker func()

// Maybe will recover a panic with a strided.Error from fn and return it as
// an error. Any other panic value is re-raised.
func Maybe(fn Panicker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	fn()
	return
}
