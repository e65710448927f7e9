// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strided

import (
	"math"
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

// Context is a tolerance-aware numerical context: equality and zero tests
// are defined relative to Epsilon. A Context is a value type; callers that
// need a local tolerance pass one explicitly instead of relying on the
// process-wide default.
type Context struct {
	Epsilon float64
}

// Equal reports whether a and b agree to within c.Epsilon.
func (c Context) Equal(a, b float64) bool {
	return math.Abs(a-b) <= c.Epsilon
}

// IsZero reports whether a is within c.Epsilon of zero.
func (c Context) IsZero(a float64) bool {
	return math.Abs(a) <= c.Epsilon
}

// defaultContext is installed once at program start (a Context with
// Epsilon 0, stored by init) and is read by every package-level Equal/IsZero call
// that is not given an explicit Context. It is never mutated concurrently
// with reads: Install is expected to run during program bootstrap, before
// other goroutines start calling into the package.
var defaultContext atomic.Value // holds Context

func init() {
	defaultContext.Store(Context{Epsilon: 0})
}

// Install replaces the process-wide default numerical context. It is meant
// to be called once, at program start; the core never calls it itself.
func Install(c Context) {
	defaultContext.Store(c)
}

// Default returns the current process-wide numerical context.
func Default() Context {
	return defaultContext.Load().(Context)
}

// Equal reports whether a and b agree under the process-wide default
// context.
func Equal(a, b float64) bool { return Default().Equal(a, b) }

// IsZero reports whether a is zero under the process-wide default context.
func IsZero(a float64) bool { return Default().IsZero(a) }

// AbsFloat is a small generic helper that returns |x| for any real
// floating-point kind, not just float64. The LU pivot search in package
// dense uses it.
func AbsFloat[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
