// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// SteadyDiffusion computes the steady composition of a single phase bar with fixed
// compositions at both ends
//
//   x(X) = x0 + (x1 - x0) X / L       μ(X) = A (x(X) - xe)
//
//   x0 o=================o x1
//      0                 L
type SteadyDiffusion struct {
	X0, X1 float64 // compositions @ left and right ends
	L      float64 // length
	A, Xe  float64 // parabolic free energy of the phase
}

// Calc computes the composition and diffusion potential @ X
func (o SteadyDiffusion) Calc(X float64) (x, mu float64) {
	x = o.X0 + (o.X1-o.X0)*X/o.L
	mu = o.A * (x - o.Xe)
	return
}

// Amount returns ∫ x dX
func (o SteadyDiffusion) Amount() float64 {
	return 0.5 * (o.X0 + o.X1) * o.L
}

// CheckProfile checks compositions and potentials @ nodes
func (o SteadyDiffusion) CheckProfile(tst *testing.T, X, x, mu []float64, tol float64) {
	xana := make([]float64, len(X))
	muana := make([]float64, len(X))
	for i, s := range X {
		xana[i], muana[i] = o.Calc(s)
	}
	chk.Array(tst, "x", tol, x, xana)
	chk.Array(tst, "μ", tol, mu, muana)
}
