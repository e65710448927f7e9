// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strided implements the strided, multidimensional view model that
// the dense kernels in package dense are built on: Extent describes a
// shape, Layout maps a dimensional index to a flat offset, Structure pairs
// the two, and Grid windows a Storage through a Structure.
//
// View transforms — Range, Stride, Transpose/Dice, Slice — are pure
// functions from Structure to Structure. They never touch Storage, so
// slicing, transposing, diced axis permutation and stride reduction all
// run in O(1) and share the underlying buffer with the grid they were
// derived from.
package strided
