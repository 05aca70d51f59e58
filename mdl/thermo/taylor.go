// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Taylor implements the second-order expansion of the grand potential of a phase about an
// equilibrium state (xe, μe, ωe) with thermodynamic factor Be; energies are scaled by Ec
//
//   δ = μ - μe/Ec
//   ω(μ) = ωe/Ec - xe⋅δ - ½ δᵀ (Be/Ec)⁻¹ δ
//   x(μ) = xe + (Be/Ec)⁻¹ δ        χ = (Be/Ec)⁻¹
//
// whose primal is f(x) = ωe/Ec + (μe/Ec)⋅x + ½ (x - xe)ᵀ (Be/Ec) (x - xe)
type Taylor struct {
	Parabolic           // curvature Be/Ec about xe with k = ωe/Ec
	MuE       []float64 // scaled equilibrium diffusion potentials μe/Ec
}

// add model to factory
func init() {
	allocators["taylor"] = func() Model { return new(Taylor) }
}

// Init initialises this structure
//  Parameters: xe_B, xe_C, xe_D, tf_B, tf_C, tf_D, tf_BC, tf_BD, tf_CD, mue_B, mue_C, mue_D,
//              omega_e, Ec (default 1)
//  Binary aliases: xe, tf, mue
func (o *Taylor) Init(ncomp int, prms dbf.Params) (err error) {
	err = checkNcomp("taylor", ncomp, MaxComps)
	if err != nil {
		return
	}
	ec := 1.0
	for _, p := range prms {
		if p.N == "Ec" {
			ec = p.V
		}
	}
	if ec <= 0 {
		return chk.Err("taylor model: characteristic energy must be positive. Ec=%g is invalid", ec)
	}

	// translate into parabolic parameters
	o.MuE = make([]float64, ncomp)
	var par dbf.Params
	for _, p := range prms {
		name := p.N
		if ncomp == 1 {
			switch name {
			case "xe", "tf", "mue":
				name += "_B"
			}
		}
		switch {
		case name == "Ec":
		case name == "omega_e":
			par = append(par, &dbf.P{N: "k", V: p.V / ec})
		case len(name) > 3 && name[:3] == "tf_":
			par = append(par, &dbf.P{N: "A_" + name[3:], V: p.V / ec})
		case len(name) > 3 && name[:3] == "xe_":
			par = append(par, &dbf.P{N: name, V: p.V})
		case len(name) > 4 && name[:4] == "mue_":
			i := compIndex(name[4:], ncomp)
			if i < 0 {
				return chk.Err("taylor model with %d solute(s): parameter %q is not available", ncomp, p.N)
			}
			o.MuE[i] = p.V / ec
		default:
			return chk.Err("taylor model with %d solute(s): parameter %q is not available", ncomp, p.N)
		}
	}
	if err = o.Parabolic.Init(ncomp, par); err != nil {
		return chk.Err("taylor model: %v", err)
	}
	return
}

// Calc computes f, μ, B and ∂B/∂x
func (o Taylor) Calc(r *Chem, x []float64) {
	o.Parabolic.Calc(r, x)
	for i := 0; i < o.N; i++ {
		r.F += o.MuE[i] * x[i]
		r.Mu[i] += o.MuE[i]
	}
}

// CalcDual computes ω, x, χ and ∂χ/∂μ
func (o Taylor) CalcDual(r *Grand, mu []float64) {
	δ := make([]float64, o.N)
	for i := 0; i < o.N; i++ {
		δ[i] = mu[i] - o.MuE[i]
	}
	o.Parabolic.CalcDual(r, δ)
}

// compIndex returns the index of the solute labelled c or -1
func compIndex(c string, ncomp int) int {
	for i := 0; i < ncomp; i++ {
		if Components[i] == c {
			return i
		}
	}
	return -1
}
