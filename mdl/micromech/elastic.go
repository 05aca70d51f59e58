// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package micromech implements elastic phases and the strain-jump homogenization of
// diffuse interfaces
package micromech

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Model defines elastic phase models
type Model interface {
	Init(prms dbf.Params) error // initialises model
	GetElastic() *Elastic       // returns stiffness and eigenstrain
}

// Elastic holds the stiffness and eigenstrain of a linear elastic phase
type Elastic struct {
	C  [][][][]float64 // [3][3][3][3] stiffness tensor
	E0 [][]float64     // [3][3] eigenstrain
}

// GetElastic returns this structure
func (o *Elastic) GetElastic() *Elastic { return o }

// alloc allocates C and E0
func (o *Elastic) alloc() {
	o.C = utl.Deep4alloc(3, 3, 3, 3)
	o.E0 = utl.Alloc(3, 3)
}

// eigenNames holds the names of eigenstrain parameters and the (i,j) they set
var eigenNames = map[string][2]int{
	"e0_11": {0, 0}, "e0_22": {1, 1}, "e0_33": {2, 2},
	"e0_12": {0, 1}, "e0_13": {0, 2}, "e0_23": {1, 2},
}

// setEigen sets an eigenstrain component; returns false if p is not an eigenstrain parameter
func (o *Elastic) setEigen(p *dbf.P) bool {
	ij, ok := eigenNames[p.N]
	if !ok {
		return false
	}
	o.E0[ij[0]][ij[1]] = p.V
	o.E0[ij[1]][ij[0]] = p.V
	return true
}

// Stress computes σ = C:(ε-ε*)
func (o *Elastic) Stress(sig, eps [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sig[i][j] = 0
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					sig[i][j] += o.C[i][j][k][l] * (eps[k][l] - o.E0[k][l])
				}
			}
		}
	}
}

// Energy computes ψ = ½ (ε-ε*):σ where σ = C:(ε-ε*)
func (o *Elastic) Energy(eps, sig [][]float64) (psi float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			psi += 0.5 * (eps[i][j] - o.E0[i][j]) * sig[i][j]
		}
	}
	return
}

// Modulus returns C_cccc
func (o *Elastic) Modulus(c int) float64 { return o.C[c][c][c][c] }

// Isotropic implements an isotropic linear elastic phase
type Isotropic struct {
	Elastic
	Lambda float64 // Lamé's first parameter
	Mu     float64 // shear modulus
}

// Cubic implements a linear elastic phase with cubic symmetry
type Cubic struct {
	Elastic
	C11, C12, C44 float64 // independent moduli
}

// add models to factory
func init() {
	allocators["isotropic"] = func() Model { return new(Isotropic) }
	allocators["cubic"] = func() Model { return new(Cubic) }
}

// Init initialises this structure
//  Parameters: lambda and mu, or E and nu; eigenstrain e0_11, e0_22, e0_33, e0_12, e0_13, e0_23
func (o *Isotropic) Init(prms dbf.Params) (err error) {
	o.alloc()
	var E, ν float64
	var hasL, hasM, hasE, hasN bool
	for _, p := range prms {
		switch p.N {
		case "lambda":
			o.Lambda, hasL = p.V, true
		case "mu", "G":
			o.Mu, hasM = p.V, true
		case "E":
			E, hasE = p.V, true
		case "nu":
			ν, hasN = p.V, true
		default:
			if !o.setEigen(p) {
				return chk.Err("isotropic elastic phase: parameter %q is not available", p.N)
			}
		}
	}
	switch {
	case hasL && hasM && !hasE && !hasN:
	case hasE && hasN && !hasL && !hasM:
		if ν <= -1 || ν >= 0.5 {
			return chk.Err("isotropic elastic phase: Poisson's coefficient must be in (-1, 0.5). nu=%g is invalid", ν)
		}
		o.Lambda = E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
		o.Mu = E / (2.0 * (1.0 + ν))
	default:
		return chk.Err("isotropic elastic phase: either {lambda, mu} or {E, nu} must be given")
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					o.C[i][j][k][l] = o.Lambda*δ(i, j)*δ(k, l) + o.Mu*(δ(i, k)*δ(j, l)+δ(i, l)*δ(j, k))
				}
			}
		}
	}
	return
}

// Init initialises this structure
//  Parameters: C11, C12, C44; eigenstrain e0_11, e0_22, e0_33, e0_12, e0_13, e0_23
func (o *Cubic) Init(prms dbf.Params) (err error) {
	o.alloc()
	var has11, has12, has44 bool
	for _, p := range prms {
		switch p.N {
		case "C11":
			o.C11, has11 = p.V, true
		case "C12":
			o.C12, has12 = p.V, true
		case "C44":
			o.C44, has44 = p.V, true
		default:
			if !o.setEigen(p) {
				return chk.Err("cubic elastic phase: parameter %q is not available", p.N)
			}
		}
	}
	if !has11 || !has12 || !has44 {
		return chk.Err("cubic elastic phase: C11, C12 and C44 must be given")
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			switch {
			case i == j:
				o.C[i][i][i][i] = o.C11
			default:
				o.C[i][i][j][j] = o.C12
				o.C[i][j][i][j] = o.C44
				o.C[i][j][j][i] = o.C44
			}
		}
	}
	return
}

// New returns new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'micromech' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// δ is Kronecker's delta
func δ(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}
