// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// NormSquare implements the normalised-square switching functions of N order parameters
//
//          φ_k²               1
//   h_k = ─────  = φ_k² s,   s = ───
//          Σφ²                Σφ²
//
//   ∂h_k/∂φ_k = 2 φ_k (1 - h_k) s
//   ∂h_k/∂φ_j = -2 h_k φ_j s            (j ≠ k)
//
type NormSquare struct {
	N   int     // number of phases
	Tol float64 // tolerance on Σφ² below which the uniform fallback is used
}

// add model to factory
func init() {
	allocators["normsquare"] = func() Model { return new(NormSquare) }
}

// Init initialises this structure
func (o *NormSquare) Init(nphases int, prms dbf.Params) (err error) {
	if nphases < 2 {
		return chk.Err("normsquare switching function requires at least 2 phases. nphases=%d is invalid", nphases)
	}
	o.N = nphases
	o.Tol = 1e-14
	for _, p := range prms {
		switch p.N {
		case "tol":
			o.Tol = p.V
		default:
			return chk.Err("normsquare: parameter %q is not available", p.N)
		}
	}
	if o.Tol <= 0 {
		return chk.Err("normsquare: tolerance must be positive. tol=%g is invalid", o.Tol)
	}
	return
}

// Nphases returns the number of phases
func (o NormSquare) Nphases() int { return o.N }

// Nvars returns the number of order parameters
func (o NormSquare) Nvars() int { return o.N }

// Calc computes weights and derivatives
func (o NormSquare) Calc(w *Weights, phi []float64) {

	// denominator
	den := 0.0
	for _, φ := range phi[:o.N] {
		den += φ * φ
	}

	// fallback: uniform weights
	if den < o.Tol {
		for k := 0; k < o.N; k++ {
			w.H[k] = 1.0 / float64(o.N)
			for i := 0; i < o.N; i++ {
				w.DH[k][i] = 0
				for j := 0; j < o.N; j++ {
					w.D2H[k][i][j] = 0
				}
			}
		}
		w.Degenerate = true
		return
	}
	w.Degenerate = false
	s := 1.0 / den

	// weights and first derivatives
	for k := 0; k < o.N; k++ {
		w.H[k] = phi[k] * phi[k] * s
	}
	for k := 0; k < o.N; k++ {
		for j := 0; j < o.N; j++ {
			if j == k {
				w.DH[k][j] = 2.0 * phi[k] * (1.0 - w.H[k]) * s
			} else {
				w.DH[k][j] = -2.0 * w.H[k] * phi[j] * s
			}
		}
	}

	// second derivatives
	//   ∂²h_k/∂φ_i∂φ_j = 2 (δ_ki δ_kj - h_k δ_ij) s - 2 (∂h_k/∂φ_j φ_i + ∂h_k/∂φ_i φ_j) s
	for k := 0; k < o.N; k++ {
		for i := 0; i < o.N; i++ {
			for j := i; j < o.N; j++ {
				v := -2.0 * (w.DH[k][j]*phi[i] + w.DH[k][i]*phi[j]) * s
				if i == j {
					v -= 2.0 * w.H[k] * s
					if i == k {
						v += 2.0 * s
					}
				}
				w.D2H[k][i][j] = v
				w.D2H[k][j][i] = v
			}
		}
	}
}
