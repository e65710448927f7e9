// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// Based on the SingularValueDecomposition class from Jama 1.0.3.

package dense

import "math"

// SVD is the singular value decomposition of an m×n matrix A: A = U·Σ·Vᵀ,
// with singular values non-negative and sorted descending.
type SVD struct {
	m, n int
	s    []float64
	u, v *Matrix
}

// FactorizeSVD computes the singular value decomposition of a via Golub-Kahan
// bidiagonalization followed by implicit-shift QR sweeps on the bidiagonal
// form. It returns ErrNoConvergence if any single singular value takes
// more than 30*max(m,n) iterations to deflate; the count restarts after
// each deflation.
func FactorizeSVD(a *Matrix) (SVD, error) {
	m, n := a.Dims()
	work := a.Clone()

	nu := min(m, n)
	s := make([]float64, min(m+1, n))
	u := NewMatrix(m, nu)
	v := NewMatrix(n, n)
	e := make([]float64, n)
	wvec := make([]float64, m)

	nct := min(m-1, n)
	nrt := max(0, min(n-2, m))

	for k := 0; k < max(nct, nrt); k++ {
		if k < nct {
			s[k] = 0
			for i := k; i < m; i++ {
				s[k] = math.Hypot(s[k], work.At(i, k))
			}
			if s[k] != 0 {
				if work.At(k, k) < 0 {
					s[k] = -s[k]
				}
				for i := k; i < m; i++ {
					work.Set(i, k, work.At(i, k)/s[k])
				}
				work.Set(k, k, work.At(k, k)+1)
			}
			s[k] = -s[k]
		}
		for j := k + 1; j < n; j++ {
			if k < nct && s[k] != 0 {
				var t float64
				for i := k; i < m; i++ {
					t += work.At(i, k) * work.At(i, j)
				}
				t = -t / work.At(k, k)
				for i := k; i < m; i++ {
					work.Set(i, j, work.At(i, j)+t*work.At(i, k))
				}
			}
			e[j] = work.At(k, j)
		}
		if k < nct {
			for i := k; i < m; i++ {
				u.Set(i, k, work.At(i, k))
			}
		}
		if k < nrt {
			e[k] = 0
			for i := k + 1; i < n; i++ {
				e[k] = math.Hypot(e[k], e[i])
			}
			if e[k] != 0 {
				if e[k+1] < 0 {
					e[k] = -e[k]
				}
				for i := k + 1; i < n; i++ {
					e[i] /= e[k]
				}
				e[k+1] += 1
			}
			e[k] = -e[k]
			if k+1 < m && e[k] != 0 {
				for i := k + 1; i < m; i++ {
					wvec[i] = 0
				}
				for j := k + 1; j < n; j++ {
					for i := k + 1; i < m; i++ {
						wvec[i] += e[j] * work.At(i, j)
					}
				}
				for j := k + 1; j < n; j++ {
					t := -e[j] / e[k+1]
					for i := k + 1; i < m; i++ {
						work.Set(i, j, work.At(i, j)+t*wvec[i])
					}
				}
			}
			for i := k + 1; i < n; i++ {
				v.Set(i, k, e[i])
			}
		}
	}

	p := min(n, m+1)
	if nct < n {
		s[nct] = work.At(nct, nct)
	}
	if m < p {
		s[p-1] = 0
	}
	if nrt+1 < p {
		e[nrt] = work.At(nrt, p-1)
	}
	e[p-1] = 0

	for j := nct; j < nu; j++ {
		for i := 0; i < m; i++ {
			u.Set(i, j, 0)
		}
		u.Set(j, j, 1)
	}
	for k := nct - 1; k >= 0; k-- {
		if s[k] != 0 {
			for j := k + 1; j < nu; j++ {
				var t float64
				for i := k; i < m; i++ {
					t += u.At(i, k) * u.At(i, j)
				}
				t = -t / u.At(k, k)
				for i := k; i < m; i++ {
					u.Set(i, j, u.At(i, j)+t*u.At(i, k))
				}
			}
			for i := k; i < m; i++ {
				u.Set(i, k, -u.At(i, k))
			}
			u.Set(k, k, 1+u.At(k, k))
			for i := 0; i < k-1; i++ {
				u.Set(i, k, 0)
			}
		} else {
			for i := 0; i < m; i++ {
				u.Set(i, k, 0)
			}
			u.Set(k, k, 1)
		}
	}

	for k := n - 1; k >= 0; k-- {
		if k < nrt && e[k] != 0 {
			for j := k + 1; j < n; j++ {
				var t float64
				for i := k + 1; i < n; i++ {
					t += v.At(i, k) * v.At(i, j)
				}
				t = -t / v.At(k+1, k)
				for i := k + 1; i < n; i++ {
					v.Set(i, j, v.At(i, j)+t*v.At(i, k))
				}
			}
		}
		for i := 0; i < n; i++ {
			v.Set(i, k, 0)
		}
		v.Set(k, k, 1)
	}

	pp := p - 1
	eps := math.Pow(2, -52)
	tiny := math.Pow(2, -966)
	iter := 0
	maxIter := 30 * max(m, n)
	for p > 0 {
		iter++
		if iter > maxIter {
			return SVD{}, ErrNoConvergence
		}
		var kase, k int
		for k = p - 2; k >= -1; k-- {
			if k == -1 {
				break
			}
			if math.Abs(e[k]) <= tiny+eps*(math.Abs(s[k])+math.Abs(s[k+1])) {
				e[k] = 0
				break
			}
		}
		if k == p-2 {
			kase = 4
		} else {
			var ks int
			for ks = p - 1; ks >= k; ks-- {
				if ks == k {
					break
				}
				t := 0.0
				if ks != p {
					t += math.Abs(e[ks])
				}
				if ks != k+1 {
					t += math.Abs(e[ks-1])
				}
				if math.Abs(s[ks]) <= tiny+eps*t {
					s[ks] = 0
					break
				}
			}
			switch {
			case ks == k:
				kase = 3
			case ks == p-1:
				kase = 1
			default:
				kase = 2
				k = ks
			}
		}
		k++

		switch kase {
		case 1:
			f := e[p-2]
			e[p-2] = 0
			for j := p - 2; j >= k; j-- {
				t := math.Hypot(s[j], f)
				cs := s[j] / t
				sn := f / t
				s[j] = t
				if j != k {
					f = -sn * e[j-1]
					e[j-1] = cs * e[j-1]
				}
				for i := 0; i < n; i++ {
					t = cs*v.At(i, j) + sn*v.At(i, p-1)
					v.Set(i, p-1, -sn*v.At(i, j)+cs*v.At(i, p-1))
					v.Set(i, j, t)
				}
			}
		case 2:
			f := e[k-1]
			e[k-1] = 0
			for j := k; j < p; j++ {
				t := math.Hypot(s[j], f)
				cs := s[j] / t
				sn := f / t
				s[j] = t
				f = -sn * e[j]
				e[j] = cs * e[j]
				for i := 0; i < m; i++ {
					t = cs*u.At(i, j) + sn*u.At(i, k-1)
					u.Set(i, k-1, -sn*u.At(i, j)+cs*u.At(i, k-1))
					u.Set(i, j, t)
				}
			}
		case 3:
			scale := math.Max(math.Max(math.Max(math.Max(math.Abs(s[p-1]), math.Abs(s[p-2])), math.Abs(e[p-2])), math.Abs(s[k])), math.Abs(e[k]))
			sp := s[p-1] / scale
			spm1 := s[p-2] / scale
			epm1 := e[p-2] / scale
			sk := s[k] / scale
			ek := e[k] / scale
			b := ((spm1+sp)*(spm1-sp) + epm1*epm1) / 2
			c := (sp * epm1) * (sp * epm1)
			var shift float64
			if b != 0 || c != 0 {
				shift = math.Sqrt(b*b + c)
				if b < 0 {
					shift = -shift
				}
				shift = c / (b + shift)
			}
			f := (sk+sp)*(sk-sp) + shift
			g := sk * ek

			for j := k; j < p-1; j++ {
				t := math.Hypot(f, g)
				cs := f / t
				sn := g / t
				if j != k {
					e[j-1] = t
				}
				f = cs*s[j] + sn*e[j]
				e[j] = cs*e[j] - sn*s[j]
				g = sn * s[j+1]
				s[j+1] = cs * s[j+1]
				for i := 0; i < n; i++ {
					t = cs*v.At(i, j) + sn*v.At(i, j+1)
					v.Set(i, j+1, -sn*v.At(i, j)+cs*v.At(i, j+1))
					v.Set(i, j, t)
				}

				t = math.Hypot(f, g)
				cs = f / t
				sn = g / t
				s[j] = t
				f = cs*e[j] + sn*s[j+1]
				s[j+1] = -sn*e[j] + cs*s[j+1]
				g = sn * e[j+1]
				e[j+1] = cs * e[j+1]
				if j < m-1 {
					for i := 0; i < m; i++ {
						t = cs*u.At(i, j) + sn*u.At(i, j+1)
						u.Set(i, j+1, -sn*u.At(i, j)+cs*u.At(i, j+1))
						u.Set(i, j, t)
					}
				}
			}
			e[p-2] = f
		case 4:
			if s[k] <= 0 {
				if s[k] < 0 {
					s[k] = -s[k]
				} else {
					s[k] = 0
				}
				for i := 0; i <= pp; i++ {
					v.Set(i, k, -v.At(i, k))
				}
			}
			for k < pp {
				if s[k] >= s[k+1] {
					break
				}
				s[k], s[k+1] = s[k+1], s[k]
				swapCols(v, k, k+1, n)
				if k < m {
					swapCols(u, k, k+1, m)
				}
				k++
			}
			p--
			iter = 0
		}
	}

	return SVD{m: m, n: n, s: s[:min(m, n)], u: u, v: v}, nil
}

func swapCols(m *Matrix, a, b, rows int) {
	for i := 0; i < rows; i++ {
		va, vb := m.At(i, a), m.At(i, b)
		m.Set(i, a, vb)
		m.Set(i, b, va)
	}
}

// SingularValues returns the singular values, non-negative and sorted
// descending.
func (f SVD) SingularValues() []float64 {
	s := make([]float64, len(f.s))
	copy(s, f.s)
	return s
}

// U returns the left singular vectors.
func (f SVD) U() *Matrix { return f.u }

// V returns the right singular vectors.
func (f SVD) V() *Matrix { return f.v }

// Rank returns the count of singular values exceeding
// max(m,n) * sigmaMax * machine epsilon.
func (f SVD) Rank() int {
	if len(f.s) == 0 {
		return 0
	}
	eps := math.Pow(2, -52)
	tol := float64(max(f.m, f.n)) * f.s[0] * eps
	r := 0
	for _, v := range f.s {
		if v > tol {
			r++
		}
	}
	return r
}

// Cond returns the condition number sigmaMax/sigmaMin.
func (f SVD) Cond() float64 {
	n := len(f.s)
	if n == 0 || f.s[n-1] == 0 {
		return math.Inf(1)
	}
	return f.s[0] / f.s[n-1]
}

// Norm2 returns the spectral norm, the largest singular value.
func (f SVD) Norm2() float64 {
	if len(f.s) == 0 {
		return 0
	}
	return f.s[0]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
