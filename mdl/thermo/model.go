// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermo implements chemical free-energy models of phases and their
// dual (grand-potential) representation
package thermo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Components holds the labels of the independent solutes
var Components = []string{"B", "C", "D"}

// MaxComps is the maximum number of independent solutes
const MaxComps = 3

// Model defines free-energy models f(x) of one phase with ncomp independent solutes
type Model interface {
	Init(ncomp int, prms dbf.Params) error // Init initialises this structure
	Ncomp() int                            // number of independent solutes
	Calc(r *Chem, x []float64)             // computes f, μ, B and ∂B/∂x @ x
}

// Dual defines the grand-potential representation ω(μ) of a phase
type Dual interface {
	Ncomp() int                      // number of independent solutes
	CalcDual(r *Grand, mu []float64) // computes ω, x, χ and ∂χ/∂μ @ μ
}

// Conjugate defines grand-potential models given directly as functions of μ
type Conjugate interface {
	Init(ncomp int, prms dbf.Params) error // Init initialises this structure
	Dual
}

// Loader defines models whose data are read from a file before Init is called
type Loader interface {
	Load(fn string) error
}

// Chem holds the chemical state of a phase as a function of composition
//
//   F        = f(x)
//   Mu[i]    = ∂f/∂x_i           (diffusion potential)
//   B[i][j]  = ∂²f/∂x_i∂x_j      (thermodynamic factor)
//   DB[i][j][k] = ∂B_ij/∂x_k
//
type Chem struct {
	F           float64
	Mu          []float64
	B           [][]float64
	DB          [][][]float64
	OutOfDomain bool // x was outside the model's domain and has been clamped
}

// NewChem allocates a new Chem structure
func NewChem(ncomp int) *Chem {
	return &Chem{
		Mu: make([]float64, ncomp),
		B:  utl.Alloc(ncomp, ncomp),
		DB: utl.Deep3alloc(ncomp, ncomp, ncomp),
	}
}

// Grand holds the chemical state of a phase as a function of diffusion potentials
//
//   Omega         = ω(μ) = f(x(μ)) - μ⋅x(μ)
//   X[i]          = x_i(μ) = -∂ω/∂μ_i
//   Chi[i][j]     = ∂x_i/∂μ_j  (susceptibility = inverse of thermodynamic factor)
//   DChi[i][j][k] = ∂χ_ij/∂μ_k
//
type Grand struct {
	Omega      float64
	X          []float64
	Chi        [][]float64
	DChi       [][][]float64
	Degenerate bool // inversion failed; values hold the last iterate
}

// NewGrand allocates a new Grand structure
func NewGrand(ncomp int) *Grand {
	return &Grand{
		X:    make([]float64, ncomp),
		Chi:  utl.Alloc(ncomp, ncomp),
		DChi: utl.Deep3alloc(ncomp, ncomp, ncomp),
	}
}

// New allocates a new free-energy model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'thermo' database", name)
	}
	return allocator(), nil
}

// NewConjugate allocates a new grand-potential model
func NewConjugate(name string) (model Conjugate, err error) {
	allocator, ok := conjugates[name]
	if !ok {
		return nil, chk.Err("grand-potential model %q is not available in 'thermo' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// conjugates holds all available grand-potential models
var conjugates = map[string]func() Conjugate{}

// checkNcomp checks the number of independent solutes
func checkNcomp(model string, ncomp, max int) (err error) {
	if ncomp < 1 || ncomp > max {
		return chk.Err("%s model: number of independent solutes must be in [1, %d]. ncomp=%d is invalid", model, max, ncomp)
	}
	return
}
