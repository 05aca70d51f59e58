// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"github.com/souravmat-git/gibbs-sub001/mdl/dense"
)

// Parabolic implements the parabolic free energy
//
//   f(x) = ½ (x - xe)ᵀ A (x - xe) + k
//
//   μ = A (x - xe)      B = A
//
// and its closed-form dual
//
//   x(μ) = A⁻¹ μ + xe    ω(μ) = -½ μᵀ A⁻¹ μ - μ⋅xe + k
//
type Parabolic struct {
	N    int         // number of independent solutes
	A    [][]float64 // curvature matrix
	Ainv [][]float64 // inverse of curvature matrix
	Xe   []float64   // composition shift (equilibrium composition)
	K    float64     // energy shift
}

// add model to factory
func init() {
	allocators["parabolic"] = func() Model { return new(Parabolic) }
}

// Init initialises this structure
//  Parameters: A_B, A_C, A_D, A_BC, A_BD, A_CD, xe_B, xe_C, xe_D, k
//  Binary aliases: A (= A_B), xe (= xe_B)
func (o *Parabolic) Init(ncomp int, prms dbf.Params) (err error) {

	// check
	err = checkNcomp("parabolic", ncomp, MaxComps)
	if err != nil {
		return
	}
	o.N = ncomp
	o.A = utl.Alloc(ncomp, ncomp)
	o.Ainv = utl.Alloc(ncomp, ncomp)
	o.Xe = make([]float64, ncomp)
	o.K = 0

	// parameters
	found := make([]bool, ncomp)
	for _, p := range prms {
		if p.N == "k" {
			o.K = p.V
			continue
		}
		if ncomp == 1 {
			switch p.N {
			case "A":
				o.A[0][0], found[0] = p.V, true
				continue
			case "xe":
				o.Xe[0] = p.V
				continue
			}
		}
		ok := false
		for i := 0; i < ncomp; i++ {
			ci := Components[i]
			if p.N == "A_"+ci {
				o.A[i][i], found[i], ok = p.V, true, true
			}
			if p.N == "xe_"+ci {
				o.Xe[i], ok = p.V, true
			}
			for j := i + 1; j < ncomp; j++ {
				if p.N == "A_"+ci+Components[j] {
					o.A[i][j], o.A[j][i], ok = p.V, p.V, true
				}
			}
		}
		if !ok {
			return chk.Err("parabolic model with %d solute(s): parameter %q is not available", ncomp, p.N)
		}
	}
	for i := 0; i < ncomp; i++ {
		if !found[i] {
			return chk.Err("parabolic model: curvature parameter A_%s must be given", Components[i])
		}
	}

	// inverse
	if !dense.Cholesky(o.A) {
		return chk.Err("parabolic model: curvature matrix must be positive definite. A=%v is invalid", o.A)
	}
	if !dense.Inverse(o.Ainv, o.A, 1e-14) {
		return chk.Err("parabolic model: cannot invert curvature matrix A=%v", o.A)
	}
	return
}

// Ncomp returns the number of independent solutes
func (o Parabolic) Ncomp() int { return o.N }

// Calc computes f, μ, B and ∂B/∂x
func (o Parabolic) Calc(r *Chem, x []float64) {
	r.F = o.K
	for i := 0; i < o.N; i++ {
		r.Mu[i] = 0
		for j := 0; j < o.N; j++ {
			r.Mu[i] += o.A[i][j] * (x[j] - o.Xe[j])
			r.B[i][j] = o.A[i][j]
			for k := 0; k < o.N; k++ {
				r.DB[i][j][k] = 0
			}
		}
		r.F += 0.5 * (x[i] - o.Xe[i]) * r.Mu[i]
	}
	r.OutOfDomain = false
}

// CalcDual computes ω, x, χ and ∂χ/∂μ
func (o Parabolic) CalcDual(r *Grand, mu []float64) {
	r.Omega = o.K
	for i := 0; i < o.N; i++ {
		r.X[i] = o.Xe[i]
		for j := 0; j < o.N; j++ {
			r.X[i] += o.Ainv[i][j] * mu[j]
			r.Chi[i][j] = o.Ainv[i][j]
			for k := 0; k < o.N; k++ {
				r.DChi[i][j][k] = 0
			}
		}
	}
	for i := 0; i < o.N; i++ {
		r.Omega -= mu[i] * (0.5*(r.X[i]-o.Xe[i]) + o.Xe[i])
	}
	r.Degenerate = false
}
