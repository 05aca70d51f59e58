// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dense implements small dense linear algebra routines used at integration points.
// The routines never panic: singular or ill-conditioned systems are reported to the caller.
package dense

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// LU holds the LU factorisation with partial pivoting of a small square matrix
type LU struct {
	N    int         // dimension
	A    [][]float64 // factors (L below diagonal with unit diagonal; U on and above)
	Perm []int       // row permutation
	Tol  float64     // relative pivot tolerance
}

// NewLU allocates a new LU structure
func NewLU(n int, tol float64) *LU {
	perm := make([]int, n)
	return &LU{N: n, A: utl.Alloc(n, n), Perm: perm, Tol: tol}
}

// Factor computes the factorisation of a (a is not modified).
// It returns false if a pivot is smaller than Tol times the largest entry of a
func (o *LU) Factor(a [][]float64) (ok bool) {
	n := o.N
	amax := 0.0
	for i := 0; i < n; i++ {
		o.Perm[i] = i
		for j := 0; j < n; j++ {
			o.A[i][j] = a[i][j]
			amax = math.Max(amax, math.Abs(a[i][j]))
		}
	}
	if amax == 0 {
		return false
	}
	for k := 0; k < n; k++ {

		// pivot
		p := k
		for i := k + 1; i < n; i++ {
			if math.Abs(o.A[i][k]) > math.Abs(o.A[p][k]) {
				p = i
			}
		}
		if math.Abs(o.A[p][k]) <= o.Tol*amax {
			return false
		}
		if p != k {
			o.A[p], o.A[k] = o.A[k], o.A[p]
			o.Perm[p], o.Perm[k] = o.Perm[k], o.Perm[p]
		}

		// eliminate
		for i := k + 1; i < n; i++ {
			o.A[i][k] /= o.A[k][k]
			for j := k + 1; j < n; j++ {
				o.A[i][j] -= o.A[i][k] * o.A[k][j]
			}
		}
	}
	return true
}

// Solve solves a⋅x = b using the current factorisation; x and b may not share memory
func (o *LU) Solve(x, b []float64) {
	n := o.N
	for i := 0; i < n; i++ {
		x[i] = b[o.Perm[i]]
		for j := 0; j < i; j++ {
			x[i] -= o.A[i][j] * x[j]
		}
	}
	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			x[i] -= o.A[i][j] * x[j]
		}
		x[i] /= o.A[i][i]
	}
}

// Inverse computes ai = inv(a) for any n. It returns false if a is singular
func Inverse(ai, a [][]float64, tol float64) (ok bool) {
	n := len(a)
	switch n {
	case 1:
		if math.Abs(a[0][0]) == 0 {
			return false
		}
		ai[0][0] = 1.0 / a[0][0]
		return true
	case 3:
		_, ok = Inv3(ai, a, tol)
		return
	}
	lu := NewLU(n, tol)
	if !lu.Factor(a) {
		return false
	}
	e := make([]float64, n)
	x := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			e[i] = 0
		}
		e[j] = 1
		lu.Solve(x, e)
		for i := 0; i < n; i++ {
			ai[i][j] = x[i]
		}
	}
	return true
}

// Inv3 computes the inverse of a 3x3 matrix by cofactors. It returns false if
// |det(a)| ≤ tol ‖a‖³ where ‖a‖ is the largest absolute entry of a
func Inv3(ai, a [][]float64, tol float64) (det float64, ok bool) {
	amax := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			amax = math.Max(amax, math.Abs(a[i][j]))
		}
	}
	det = Det3(a)
	if amax == 0 || math.Abs(det) <= tol*amax*amax*amax {
		return det, false
	}
	ai[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	ai[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	ai[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	ai[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	ai[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	ai[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	ai[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	ai[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	ai[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
	return det, true
}

// Det3 returns the determinant of a 3x3 matrix
func Det3(a [][]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Cholesky checks whether the symmetric matrix a is positive definite
func Cholesky(a [][]float64) (positive bool) {
	n := len(a)
	l := utl.Alloc(n, n)
	for j := 0; j < n; j++ {
		s := a[j][j]
		for k := 0; k < j; k++ {
			s -= l[j][k] * l[j][k]
		}
		if s <= 0 {
			return false
		}
		l[j][j] = math.Sqrt(s)
		for i := j + 1; i < n; i++ {
			t := a[i][j]
			for k := 0; k < j; k++ {
				t -= l[i][k] * l[j][k]
			}
			l[i][j] = t / l[j][j]
		}
	}
	return true
}
