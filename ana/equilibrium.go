// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// TwoParabolas computes the two-phase equilibrium of a binary system whose phases have
// parabolic free energies
//
//   f_α(x) = ½ A_α (x - xe_α)² + k_α
//   f_β(x) = ½ A_β (x - xe_β)² + k_β
//
//        f
//        |  \    α          β   /
//        |   \_           _/   /
//        |     ‾‾‾‾‾‾‾‾‾‾‾ ‾‾‾‾     common tangent: μ_α = μ_β and ω_α = ω_β
//        +-----------------------> x
//             x_α         x_β
type TwoParabolas struct {

	// input
	Aa, Xa, Ka float64 // α phase: curvature, shift and energy shift
	Ab, Xb, Kb float64 // β phase: curvature, shift and energy shift

	// derived
	Mu    float64 // equilibrium diffusion potential
	Omega float64 // equilibrium grand potential
	XA    float64 // equilibrium composition of α
	XB    float64 // equilibrium composition of β
}

// Init initialises this structure
//  Parameters: Aa, xa, ka, Ab, xb, kb
func (o *TwoParabolas) Init(prms dbf.Params) (err error) {

	// default values
	o.Aa, o.Xa, o.Ka = 1, 0, 0
	o.Ab, o.Xb, o.Kb = 1, 1, 0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Aa":
			o.Aa = p.V
		case "xa":
			o.Xa = p.V
		case "ka":
			o.Ka = p.V
		case "Ab":
			o.Ab = p.V
		case "xb":
			o.Xb = p.V
		case "kb":
			o.Kb = p.V
		default:
			return chk.Err("two-parabolas solution: parameter %q is not available", p.N)
		}
	}
	if o.Aa <= 0 || o.Ab <= 0 {
		return chk.Err("two-parabolas solution: curvatures must be positive. Aa=%g, Ab=%g are invalid", o.Aa, o.Ab)
	}

	// ω_α(μ) = ω_β(μ)  =>  a μ² + b μ + c = 0
	a := 0.5/o.Ab - 0.5/o.Aa
	b := o.Xb - o.Xa
	c := o.Ka - o.Kb
	D := b*b - 4.0*a*c
	if D < 0 {
		return chk.Err("two-parabolas solution: grand potentials do not intersect")
	}
	q := -0.5 * (b + math.Copysign(math.Sqrt(D), b))
	if q == 0 {
		return chk.Err("two-parabolas solution: phases are identical")
	}

	// derived
	o.Mu = c / q
	o.XA = o.Xa + o.Mu/o.Aa
	o.XB = o.Xb + o.Mu/o.Ab
	o.Omega = -0.5*o.Mu*o.Mu/o.Aa - o.Mu*o.Xa + o.Ka
	return
}

// Fraction returns the equilibrium fraction of β in a system with average composition x0
// (lever rule)
func (o TwoParabolas) Fraction(x0 float64) float64 {
	return (x0 - o.XA) / (o.XB - o.XA)
}

// Params returns the parameters of the free energies of both phases in the format used
// by the "parabolic" chemistry model
func (o TwoParabolas) Params() (alpha, beta dbf.Params) {
	alpha = dbf.Params{&dbf.P{N: "A", V: o.Aa}, &dbf.P{N: "xe", V: o.Xa}, &dbf.P{N: "k", V: o.Ka}}
	beta = dbf.Params{&dbf.P{N: "A", V: o.Ab}, &dbf.P{N: "xe", V: o.Xb}, &dbf.P{N: "k", V: o.Kb}}
	return
}

// CheckPhases checks the compositions of both phases
func (o TwoParabolas) CheckPhases(tst *testing.T, xa, xb, tol float64) {
	chk.Float64(tst, "x_α", tol, xa, o.XA)
	chk.Float64(tst, "x_β", tol, xb, o.XB)
}
