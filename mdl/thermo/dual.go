// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"math"

	"github.com/souravmat-git/gibbs-sub001/mdl/dense"
)

// Bounded defines models whose compositions are restricted to an interval
type Bounded interface {
	Bounds() (lo, hi float64)
}

// Inverse implements the dual of any free-energy model by inversion of μ(x). With one
// solute and a bounded domain, the roots of μ(x) = μ are bracketed on a grid, refined by
// safeguarded Newton steps and the stable root with lowest ω is selected; otherwise
// Newton's method starts from X0
type Inverse struct {
	Mdl   Model     // free-energy model
	X0    []float64 // initial guess
	Tol   float64   // tolerance on |μ(x) - μ|
	MaxIt int       // maximum number of iterations
	Nscan int       // number of grid intervals used to bracket roots of binary models
}

// NewDual returns the dual representation of a model; closed-form duals are used when available
func NewDual(mdl Model) Dual {
	if d, ok := mdl.(Dual); ok {
		return d
	}
	n := mdl.Ncomp()
	o := &Inverse{Mdl: mdl, X0: make([]float64, n), Tol: 1e-12, MaxIt: 100, Nscan: 200}
	lo, hi := 0.0, 1.0
	if b, ok := mdl.(Bounded); ok {
		lo, hi = b.Bounds()
	}
	for i := 0; i < n; i++ {
		o.X0[i] = lo + (hi-lo)/float64(n+1)
	}
	return o
}

// Ncomp returns the number of independent solutes
func (o Inverse) Ncomp() int { return o.Mdl.Ncomp() }

// CalcDual computes ω, x, χ and ∂χ/∂μ
func (o Inverse) CalcDual(r *Grand, mu []float64) {

	// auxiliary
	n := o.Mdl.Ncomp()
	chem := NewChem(n)
	lu := dense.NewLU(n, 1e-14)
	res := make([]float64, n)
	δx := make([]float64, n)
	xnew := make([]float64, n)
	lo, hi := math.Inf(-1), math.Inf(1)
	if b, ok := o.Mdl.(Bounded); ok {
		lo, hi = b.Bounds()
	}
	scale := 1.0
	for i := 0; i < n; i++ {
		scale = math.Max(scale, math.Abs(mu[i]))
	}

	// binary models: bracketed roots
	_, bounded := o.Mdl.(Bounded)
	if n == 1 && bounded && o.Nscan > 0 {
		r.X[0], r.Degenerate = o.root1d(chem, mu[0], lo, hi, o.Tol*scale)
		o.finish(r, chem, mu)
		return
	}

	// Newton iterations with step halving to keep x inside the bounds
	copy(r.X, o.X0)
	r.Degenerate = true
	for it := 0; it < o.MaxIt; it++ {
		o.Mdl.Calc(chem, r.X)
		rnorm := 0.0
		for i := 0; i < n; i++ {
			res[i] = chem.Mu[i] - mu[i]
			rnorm = math.Max(rnorm, math.Abs(res[i]))
		}
		if rnorm < o.Tol*scale {
			r.Degenerate = false
			break
		}
		if !lu.Factor(chem.B) {
			break
		}
		lu.Solve(δx, res)
		α := 1.0
		for k := 0; k < 60; k++ {
			inside := true
			for i := 0; i < n; i++ {
				xnew[i] = r.X[i] - α*δx[i]
				if xnew[i] <= lo || xnew[i] >= hi {
					inside = false
				}
			}
			if inside {
				break
			}
			α /= 2.0
		}
		copy(r.X, xnew)
	}

	o.finish(r, chem, mu)
}

// finish computes ω, χ and ∂χ/∂μ @ r.X
func (o Inverse) finish(r *Grand, chem *Chem, mu []float64) {
	n := len(mu)
	o.Mdl.Calc(chem, r.X)
	r.Omega = chem.F
	for i := 0; i < n; i++ {
		r.Omega -= mu[i] * r.X[i]
	}
	if !dense.Inverse(r.Chi, chem.B, 1e-14) {
		r.Degenerate = true
		zeroChi(r)
		return
	}

	// ∂χ/∂μ_k = -χ (∂B/∂x⋅χ_k) χ
	//   ∂χ_ij/∂μ_k = -Σ_abc χ_ia ∂B_ab/∂x_c χ_ck χ_bj
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				s := 0.0
				for a := 0; a < n; a++ {
					for b := 0; b < n; b++ {
						for c := 0; c < n; c++ {
							s += r.Chi[i][a] * chem.DB[a][b][c] * r.Chi[c][k] * r.Chi[b][j]
						}
					}
				}
				r.DChi[i][j][k] = -s
			}
		}
	}
}

// root1d returns the stable root of μ(x) = μ in [lo, hi] with lowest ω; unstable roots
// are used only if no stable one exists. If μ is outside the range of μ(x), the bound
// with smallest residual is returned and degenerate is true
func (o Inverse) root1d(chem *Chem, mu, lo, hi, tol float64) (x float64, degenerate bool) {
	g := func(v float64) float64 { o.Mdl.Calc(chem, []float64{v}); return chem.Mu[0] - mu }
	best, bestω, stable := 0.0, math.Inf(1), false
	found := false
	xa, ga := lo, g(lo)
	x, rmin := lo, math.Abs(ga)
	for i := 1; i <= o.Nscan; i++ {
		xb := lo + (hi-lo)*float64(i)/float64(o.Nscan)
		gb := g(xb)
		if math.Abs(gb) < rmin {
			x, rmin = xb, math.Abs(gb)
		}
		if ga*gb <= 0 {
			v := o.refine(chem, mu, xa, xb, ga, tol)
			o.Mdl.Calc(chem, []float64{v})
			ω := chem.F - mu*v
			s := chem.B[0][0] > 0
			if !found || (s && !stable) || (s == stable && ω < bestω) {
				best, bestω, stable, found = v, ω, s, true
			}
		}
		xa, ga = xb, gb
	}
	if !found {
		return x, true
	}
	return best, false
}

// refine finds a root of μ(x) = μ in [a, b] with g(a) = ga by Newton steps; steps leaving
// the bracket are replaced by bisection
func (o Inverse) refine(chem *Chem, mu, a, b, ga, tol float64) (x float64) {
	if ga == 0 {
		return a
	}
	x = 0.5 * (a + b)
	for it := 0; it < o.MaxIt; it++ {
		o.Mdl.Calc(chem, []float64{x})
		gx := chem.Mu[0] - mu
		if math.Abs(gx) < tol {
			if xn := x - gx/chem.B[0][0]; xn > a && xn < b {
				x = xn // polish
			}
			return
		}
		if ga*gx < 0 {
			b = x
		} else {
			a, ga = x, gx
		}
		xn := x - gx/chem.B[0][0]
		if chem.B[0][0] == 0 || xn <= a || xn >= b {
			xn = 0.5 * (a + b)
		}
		if b-a < 1e-15 {
			return xn
		}
		x = xn
	}
	return
}

// zeroChi sets susceptibility and its derivatives to zero
func zeroChi(r *Grand) {
	n := len(r.X)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r.Chi[i][j] = 0
			for k := 0; k < n; k++ {
				r.DChi[i][j][k] = 0
			}
		}
	}
}
