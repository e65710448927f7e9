// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// Based on the EigenvalueDecomposition class from Jama 1.0.3.

package dense

import (
	"math"

	"github.com/dense-go/lattice/strided"
)

// Eigen is the eigenvalue decomposition of a square matrix A: A·V = V·D.
// For a symmetric A, D is diagonal and real, and V is orthogonal. For a
// general A, D may carry 2×2 blocks on its diagonal encoding a pair of
// complex-conjugate eigenvalues, whose real and imaginary parts are given
// by RealParts and ImagParts; V's corresponding columns then encode the
// complex eigenvector pair.
type Eigen struct {
	n         int
	symmetric bool
	d, e      []float64 // d: real parts (diagonal of D); e: imaginary parts
	v         *Matrix
}

// FactorizeEigen computes the eigendecomposition of a, which must be
// square. Symmetry is tested against ctx; a matrix found symmetric takes
// the tridiagonalize-then-QL path, otherwise Hessenberg reduction followed
// by double-shift QR iteration.
func FactorizeEigen(a *Matrix, ctx strided.Context) (Eigen, error) {
	n, c := a.Dims()
	if n != c {
		panic(ErrInvalidArgument)
	}
	f := Eigen{n: n, symmetric: isSymmetric(a, ctx), d: make([]float64, n), e: make([]float64, n)}
	f.v = a.Clone()

	if f.symmetric {
		f.tred2()
		if err := f.tql2(); err != nil {
			return Eigen{}, err
		}
	} else {
		hess := NewMatrix(n, n)
		hess.Assign(a)
		f.orthes(hess)
		if err := f.hqr2(hess); err != nil {
			return Eigen{}, err
		}
	}
	return f, nil
}

func isSymmetric(a *Matrix, ctx strided.Context) bool {
	n, c := a.Dims()
	if n != c {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !ctx.Equal(a.At(i, j), a.At(j, i)) {
				return false
			}
		}
	}
	return true
}

// RealParts returns the real part of each eigenvalue.
func (f Eigen) RealParts() []float64 {
	d := make([]float64, len(f.d))
	copy(d, f.d)
	return d
}

// ImagParts returns the imaginary part of each eigenvalue (all zero for a
// symmetric matrix).
func (f Eigen) ImagParts() []float64 {
	e := make([]float64, len(f.e))
	copy(e, f.e)
	return e
}

// V returns the eigenvector matrix.
func (f Eigen) V() *Matrix { return f.v }

// D returns the block-diagonal matrix with the real eigenvalues (or the
// 2×2 rotation blocks of a complex-conjugate pair) on its diagonal.
func (f Eigen) D() *Matrix {
	d := NewMatrix(f.n, f.n)
	for i := 0; i < f.n; i++ {
		d.Set(i, i, f.d[i])
		if f.e[i] > 0 {
			d.Set(i, i+1, f.e[i])
		} else if f.e[i] < 0 {
			d.Set(i, i-1, f.e[i])
		}
	}
	return d
}

// Symmetric tridiagonal reduction by Householder reflections (tred2).
func (f Eigen) tred2() {
	n := f.n
	d, e, v := f.d, f.e, f.v
	for j := 0; j < n; j++ {
		d[j] = v.At(n-1, j)
	}
	for i := n - 1; i > 0; i-- {
		var scale, h float64
		for k := 0; k < i; k++ {
			scale += math.Abs(d[k])
		}
		if scale == 0 {
			e[i] = d[i-1]
			for j := 0; j < i; j++ {
				d[j] = v.At(i-1, j)
				v.Set(i, j, 0)
				v.Set(j, i, 0)
			}
		} else {
			for k := 0; k < i; k++ {
				d[k] /= scale
				h += d[k] * d[k]
			}
			f0 := d[i-1]
			g := math.Sqrt(h)
			if f0 > 0 {
				g = -g
			}
			e[i] = scale * g
			h -= f0 * g
			d[i-1] = f0 - g
			for j := 0; j < i; j++ {
				e[j] = 0
			}
			for j := 0; j < i; j++ {
				f0 := d[j]
				v.Set(j, i, f0)
				g := e[j] + v.At(j, j)*f0
				for k := j + 1; k <= i-1; k++ {
					g += v.At(k, j) * d[k]
					e[k] += v.At(k, j) * f0
				}
				e[j] = g
			}
			var hh float64
			for j := 0; j < i; j++ {
				e[j] /= h
				hh += e[j] * d[j]
			}
			hh /= 2 * h
			for j := 0; j < i; j++ {
				e[j] -= hh * d[j]
			}
			for j := 0; j < i; j++ {
				f0, g := d[j], e[j]
				for k := j; k <= i-1; k++ {
					v.Set(k, j, v.At(k, j)-(f0*e[k]+g*d[k]))
				}
				d[j] = v.At(i-1, j)
				v.Set(i, j, 0)
			}
		}
		d[i] = h
	}
	for i := 0; i < n-1; i++ {
		v.Set(n-1, i, v.At(i, i))
		v.Set(i, i, 1)
		h := d[i+1]
		if h != 0 {
			for k := 0; k <= i; k++ {
				d[k] = v.At(k, i+1) / h
			}
			for j := 0; j <= i; j++ {
				var g float64
				for k := 0; k <= i; k++ {
					g += v.At(k, i+1) * v.At(k, j)
				}
				for k := 0; k <= i; k++ {
					v.Set(k, j, v.At(k, j)-g*d[k])
				}
			}
		}
		for k := 0; k <= i; k++ {
			v.Set(k, i+1, 0)
		}
	}
	for j := 0; j < n; j++ {
		d[j] = v.At(n-1, j)
		v.Set(n-1, j, 0)
	}
	v.Set(n-1, n-1, 1)
	e[0] = 0
}

// Symmetric tridiagonal QL with implicit Wilkinson shifts (tql2).
func (f Eigen) tql2() error {
	n := f.n
	d, e, v := f.d, f.e, f.v
	for i := 1; i < n; i++ {
		e[i-1] = e[i]
	}
	e[n-1] = 0

	var f0, tst1 float64
	eps := math.Pow(2, -52)
	for l := 0; l < n; l++ {
		tst1 = math.Max(tst1, math.Abs(d[l])+math.Abs(e[l]))
		m := l
		for m < n {
			if math.Abs(e[m]) <= eps*tst1 {
				break
			}
			m++
		}
		if m > l {
			iter := 0
			for {
				iter++
				if iter > 50 {
					return ErrNoConvergence
				}
				g := d[l]
				p := (d[l+1] - g) / (2 * e[l])
				r := math.Hypot(p, 1)
				if p < 0 {
					r = -r
				}
				d[l] = e[l] / (p + r)
				d[l+1] = e[l] * (p + r)
				dl1 := d[l+1]
				h := g - d[l]
				for i := l + 2; i < n; i++ {
					d[i] -= h
				}
				f0 += h

				p = d[m]
				c := 1.0
				c2, c3 := c, c
				el1 := e[l+1]
				var s, s2 float64
				for i := m - 1; i >= l; i-- {
					c3, c2 = c2, c
					s2 = s
					g = c * e[i]
					h = c * p
					r = math.Hypot(p, e[i])
					e[i+1] = s * r
					s = e[i] / r
					c = p / r
					p = c*d[i] - s*g
					d[i+1] = h + s*(c*g+s*d[i])
					for k := 0; k < n; k++ {
						h = v.At(k, i+1)
						v.Set(k, i+1, s*v.At(k, i)+c*h)
						v.Set(k, i, c*v.At(k, i)-s*h)
					}
				}
				p = -s * s2 * c3 * el1 * e[l] / dl1
				e[l] = s * p
				d[l] = c * p

				if math.Abs(e[l]) <= eps*tst1 {
					break
				}
			}
		}
		d[l] += f0
		e[l] = 0
	}

	for i := 0; i < n-1; i++ {
		k := i
		p := d[i]
		for j := i + 1; j < n; j++ {
			if d[j] < p {
				k = j
				p = d[j]
			}
		}
		if k != i {
			d[k] = d[i]
			d[i] = p
			for j := 0; j < n; j++ {
				p = v.At(j, i)
				v.Set(j, i, v.At(j, k))
				v.Set(j, k, p)
			}
		}
	}
	return nil
}

// orthes reduces hess to upper Hessenberg form by Householder similarity
// transforms, accumulating the orthogonal transform directly into f.v so
// hqr2 can back-transform eigenvectors once it completes.
func (f Eigen) orthes(hess *Matrix) {
	n := f.n
	ort := make([]float64, n)

	low, high := 0, n-1
	for m := low + 1; m <= high-1; m++ {
		var scale float64
		for i := m; i <= high; i++ {
			scale += math.Abs(hess.At(i, m-1))
		}
		if scale != 0 {
			var h float64
			for i := high; i >= m; i-- {
				ort[i] = hess.At(i, m-1) / scale
				h += ort[i] * ort[i]
			}
			g := math.Sqrt(h)
			if ort[m] > 0 {
				g = -g
			}
			h -= ort[m] * g
			ort[m] -= g

			for j := m; j < n; j++ {
				var f0 float64
				for i := high; i >= m; i-- {
					f0 += ort[i] * hess.At(i, j)
				}
				f0 /= h
				for i := m; i <= high; i++ {
					hess.Set(i, j, hess.At(i, j)-f0*ort[i])
				}
			}
			for i := 0; i <= high; i++ {
				var f0 float64
				for j := high; j >= m; j-- {
					f0 += ort[j] * hess.At(i, j)
				}
				f0 /= h
				for j := m; j <= high; j++ {
					hess.Set(i, j, hess.At(i, j)-f0*ort[j])
				}
			}
			ort[m] = scale * ort[m]
			hess.Set(m, m-1, scale*g)
		}
	}

	v := f.v
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				v.Set(i, j, 1)
			} else {
				v.Set(i, j, 0)
			}
		}
	}
	for m := high - 1; m >= low+1; m-- {
		if hess.At(m, m-1) != 0 {
			for i := m + 1; i <= high; i++ {
				ort[i] = hess.At(i, m-1)
			}
			for j := m; j <= high; j++ {
				var g float64
				for i := m; i <= high; i++ {
					g += ort[i] * v.At(i, j)
				}
				g = (g / ort[m]) / hess.At(m, m-1)
				for i := m; i <= high; i++ {
					v.Set(i, j, v.At(i, j)+g*ort[i])
				}
			}
		}
	}
}

// hqr2 is the nonsymmetric double-shift (Francis) QR algorithm, producing
// real/imaginary eigenvalue parts in f.d/f.e and back-transforming
// eigenvectors into f.v.
func (f Eigen) hqr2(hess *Matrix) error {
	n := f.n
	d, e, v := f.d, f.e, f.v
	nn := n
	low, high := 0, n-1
	eps := math.Pow(2, -52)
	var exshift, p, q, r, s, z, t, w, x, y float64
	var l int

	norm := 0.0
	for i := 0; i < nn; i++ {
		if i > 0 {
			for j := i - 1; j < nn; j++ {
				norm += math.Abs(hess.At(i, j))
			}
		} else {
			for j := i; j < nn; j++ {
				norm += math.Abs(hess.At(i, j))
			}
		}
	}

	n2 := nn - 1
	iter := 0
	for n2 >= low {
		l = n2
		for l > low {
			s = math.Abs(hess.At(l-1, l-1)) + math.Abs(hess.At(l, l))
			if s == 0 {
				s = norm
			}
			if math.Abs(hess.At(l, l-1)) < eps*s {
				break
			}
			l--
		}

		if l == n2 {
			hess.Set(n2, n2, hess.At(n2, n2)+exshift)
			d[n2] = hess.At(n2, n2)
			e[n2] = 0
			n2--
			iter = 0
		} else if l == n2-1 {
			w = hess.At(n2, n2-1) * hess.At(n2-1, n2)
			p = (hess.At(n2-1, n2-1) - hess.At(n2, n2)) / 2
			q = p*p + w
			z = math.Sqrt(math.Abs(q))
			hess.Set(n2, n2, hess.At(n2, n2)+exshift)
			hess.Set(n2-1, n2-1, hess.At(n2-1, n2-1)+exshift)
			x = hess.At(n2, n2)
			if q >= 0 {
				if p >= 0 {
					z = p + z
				} else {
					z = p - z
				}
				d[n2-1] = x + z
				d[n2] = d[n2-1]
				if z != 0 {
					d[n2] = x - w/z
				}
				e[n2-1] = 0
				e[n2] = 0
				x = hess.At(n2, n2-1)
				s = math.Abs(x) + math.Abs(z)
				p = x / s
				q = z / s
				r = math.Sqrt(p*p + q*q)
				p /= r
				q /= r
				for j := n2 - 1; j < nn; j++ {
					zz := hess.At(n2-1, j)
					hess.Set(n2-1, j, q*zz+p*hess.At(n2, j))
					hess.Set(n2, j, q*hess.At(n2, j)-p*zz)
				}
				for i := 0; i <= n2; i++ {
					zz := hess.At(i, n2-1)
					hess.Set(i, n2-1, q*zz+p*hess.At(i, n2))
					hess.Set(i, n2, q*hess.At(i, n2)-p*zz)
				}
				for i := low; i <= high; i++ {
					zz := v.At(i, n2-1)
					v.Set(i, n2-1, q*zz+p*v.At(i, n2))
					v.Set(i, n2, q*v.At(i, n2)-p*zz)
				}
			} else {
				d[n2-1] = x + p
				d[n2] = x + p
				e[n2-1] = z
				e[n2] = -z
			}
			n2 -= 2
			iter = 0
		} else {
			x = hess.At(n2, n2)
			y = 0.0
			w = 0.0
			if l < n2 {
				y = hess.At(n2-1, n2-1)
				w = hess.At(n2, n2-1) * hess.At(n2-1, n2)
			}

			if iter == 10 {
				exshift += x
				for i := low; i <= n2; i++ {
					hess.Set(i, i, hess.At(i, i)-x)
				}
				s = math.Abs(hess.At(n2, n2-1)) + math.Abs(hess.At(n2-1, n2-2))
				x, y = 0.75*s, 0.75*s
				w = -0.4375 * s * s
			}
			if iter == 30 {
				s = (y - x) / 2
				s = s*s + w
				if s > 0 {
					s = math.Sqrt(s)
					if y < x {
						s = -s
					}
					s = x - w/((y-x)/2+s)
					for i := low; i <= n2; i++ {
						hess.Set(i, i, hess.At(i, i)-s)
					}
					exshift += s
					x, y, w = 0.964, 0.964, 0.964
				}
			}

			iter++
			if iter > 200 {
				return ErrNoConvergence
			}

			m := n2 - 2
			for m >= l {
				z = hess.At(m, m)
				r = x - z
				s = y - z
				p = (r*s-w)/hess.At(m+1, m) + hess.At(m, m+1)
				q = hess.At(m+1, m+1) - z - r - s
				r = hess.At(m+2, m+1)
				s = math.Abs(p) + math.Abs(q) + math.Abs(r)
				p /= s
				q /= s
				r /= s
				if m == l {
					break
				}
				if math.Abs(hess.At(m, m-1))*(math.Abs(q)+math.Abs(r)) <
					eps*(math.Abs(p)*(math.Abs(hess.At(m-1, m-1))+math.Abs(z)+math.Abs(hess.At(m+1, m+1)))) {
					break
				}
				m--
			}

			for i := m + 2; i <= n2; i++ {
				hess.Set(i, i-2, 0)
				if i > m+2 {
					hess.Set(i, i-3, 0)
				}
			}

			for k := m; k <= n2-1; k++ {
				notlast := k != n2-1
				if k != m {
					p = hess.At(k, k-1)
					q = hess.At(k+1, k-1)
					r = 0.0
					if notlast {
						r = hess.At(k+2, k-1)
					}
					x = math.Abs(p) + math.Abs(q) + math.Abs(r)
					if x != 0 {
						p /= x
						q /= x
						r /= x
					}
				}
				if x == 0 {
					break
				}
				s = math.Sqrt(p*p + q*q + r*r)
				if p < 0 {
					s = -s
				}
				if s != 0 {
					if k != m {
						hess.Set(k, k-1, -s*x)
					} else if l != m {
						hess.Set(k, k-1, -hess.At(k, k-1))
					}
					p += s
					x = p / s
					y = q / s
					z = r / s
					q /= p
					r /= p

					for j := k; j < nn; j++ {
						p = hess.At(k, j) + q*hess.At(k+1, j)
						if notlast {
							p += r * hess.At(k+2, j)
							hess.Set(k+2, j, hess.At(k+2, j)-p*z)
						}
						hess.Set(k, j, hess.At(k, j)-p*x)
						hess.Set(k+1, j, hess.At(k+1, j)-p*y)
					}

					limit := n2
					if k+3 < n2 {
						limit = k + 3
					}
					for i := 0; i <= limit; i++ {
						p = x*hess.At(i, k) + y*hess.At(i, k+1)
						if notlast {
							p += z * hess.At(i, k+2)
							hess.Set(i, k+2, hess.At(i, k+2)-p*r)
						}
						hess.Set(i, k, hess.At(i, k)-p)
						hess.Set(i, k+1, hess.At(i, k+1)-p*q)
					}

					for i := low; i <= high; i++ {
						p = x*v.At(i, k) + y*v.At(i, k+1)
						if notlast {
							p += z * v.At(i, k+2)
							v.Set(i, k+2, v.At(i, k+2)-p*r)
						}
						v.Set(i, k, v.At(i, k)-p)
						v.Set(i, k+1, v.At(i, k+1)-p*q)
					}
				}
			}
		}
	}

	if norm == 0 {
		return nil
	}
	for n2 = nn - 1; n2 >= 0; n2-- {
		p = d[n2]
		q = e[n2]
		if q == 0 {
			l = n2
			hess.Set(n2, n2, 1)
			for i := n2 - 1; i >= 0; i-- {
				w = hess.At(i, i) - p
				r = 0.0
				for j := l; j <= n2; j++ {
					r += hess.At(i, j) * hess.At(j, n2)
				}
				if e[i] < 0 {
					z = w
					s = r
				} else {
					l = i
					if e[i] == 0 {
						if w != 0 {
							hess.Set(i, n2, -r/w)
						} else {
							hess.Set(i, n2, -r/(eps*norm))
						}
					} else {
						x = hess.At(i, i+1)
						y = hess.At(i+1, i)
						q = (d[i]-p)*(d[i]-p) + e[i]*e[i]
						t = (x*s - z*r) / q
						hess.Set(i, n2, t)
						if math.Abs(x) > math.Abs(z) {
							hess.Set(i+1, n2, (-r-w*t)/x)
						} else {
							hess.Set(i+1, n2, (-s-y*t)/z)
						}
					}
					t = math.Abs(hess.At(i, n2))
					if eps*t*t > 1 {
						for j := i; j <= n2; j++ {
							hess.Set(j, n2, hess.At(j, n2)/t)
						}
					}
				}
			}
		} else if q < 0 {
			l = n2 - 1
			if math.Abs(hess.At(n2, n2-1)) > math.Abs(hess.At(n2-1, n2)) {
				hess.Set(n2-1, n2-1, q/hess.At(n2, n2-1))
				hess.Set(n2-1, n2, -(hess.At(n2, n2)-p)/hess.At(n2, n2-1))
			} else {
				cdivr, cdivi := cdiv(0, -hess.At(n2-1, n2), hess.At(n2-1, n2-1)-p, q)
				hess.Set(n2-1, n2-1, cdivr)
				hess.Set(n2-1, n2, cdivi)
			}
			hess.Set(n2, n2-1, 0)
			hess.Set(n2, n2, 1)
			for i := n2 - 2; i >= 0; i-- {
				var ra, sa float64
				for j := l; j <= n2; j++ {
					ra += hess.At(i, j) * hess.At(j, n2-1)
					sa += hess.At(i, j) * hess.At(j, n2)
				}
				w = hess.At(i, i) - p
				if e[i] < 0 {
					z = w
					r = ra
					s = sa
				} else {
					l = i
					if e[i] == 0 {
						cdivr, cdivi := cdiv(-ra, -sa, w, q)
						hess.Set(i, n2-1, cdivr)
						hess.Set(i, n2, cdivi)
					} else {
						x = hess.At(i, i+1)
						y = hess.At(i+1, i)
						vr := (d[i]-p)*(d[i]-p) + e[i]*e[i] - q*q
						vi := (d[i] - p) * 2 * q
						if vr == 0 && vi == 0 {
							vr = eps * norm * (math.Abs(w) + math.Abs(q) + math.Abs(x) + math.Abs(y) + math.Abs(z))
						}
						cdivr, cdivi := cdiv(x*r-z*ra+q*sa, x*s-z*sa-q*ra, vr, vi)
						hess.Set(i, n2-1, cdivr)
						hess.Set(i, n2, cdivi)
						if math.Abs(x) > math.Abs(z)+math.Abs(q) {
							hess.Set(i+1, n2-1, (-ra-w*hess.At(i, n2-1)+q*hess.At(i, n2))/x)
							hess.Set(i+1, n2, (-sa-w*hess.At(i, n2)-q*hess.At(i, n2-1))/x)
						} else {
							cdivr, cdivi = cdiv(-r-y*hess.At(i, n2-1), -s-y*hess.At(i, n2), z, q)
							hess.Set(i+1, n2-1, cdivr)
							hess.Set(i+1, n2, cdivi)
						}
					}
					t = math.Max(math.Abs(hess.At(i, n2-1)), math.Abs(hess.At(i, n2)))
					if eps*t*t > 1 {
						for j := i; j <= n2; j++ {
							hess.Set(j, n2-1, hess.At(j, n2-1)/t)
							hess.Set(j, n2, hess.At(j, n2)/t)
						}
					}
				}
			}
		}
	}

	for i := 0; i < nn; i++ {
		if i < low || i > high {
			for j := i; j < nn; j++ {
				v.Set(i, j, hess.At(i, j))
			}
		}
	}

	for j := nn - 1; j >= low; j-- {
		for i := low; i <= high; i++ {
			z = 0.0
			for k := low; k <= min(j, high); k++ {
				z += v.At(i, k) * hess.At(k, j)
			}
			v.Set(i, j, z)
		}
	}
	return nil
}

func cdiv(xr, xi, yr, yi float64) (float64, float64) {
	if math.Abs(yr) > math.Abs(yi) {
		r := yi / yr
		d := yr + r*yi
		return (xr + r*xi) / d, (xi - r*xr) / d
	}
	r := yr / yi
	d := yi + r*yr
	return (r*xr + xi) / d, (r*xi - xr) / d
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
