// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mobility implements Onsager mobility matrices relating gradients of diffusion
// potentials to fluxes of independent solutes
package mobility

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Components holds the labels of independent solutes
var Components = []string{"B", "C", "D"}

// MaxComps is the maximum number of independent solutes
const MaxComps = 3

// Model defines mobility models
type Model interface {
	Init(ncomp int, prms dbf.Params) error // initialises model
	Ncomp() int                            // number of independent solutes
	Calc(r *Result, s []float64)           // computes L(s) and ∂L/∂s
}

// Result holds a mobility matrix and its derivatives
type Result struct {
	L       [][]float64   // [ncomp][ncomp] symmetric mobility matrix
	DL      [][][]float64 // [ncomp][ncomp][ncomp] ∂L_ij/∂s_k
	Clamped bool          // sample was outside of the tabulated domain
}

// NewResult allocates a new structure
func NewResult(ncomp int) *Result {
	return &Result{
		L:  utl.Alloc(ncomp, ncomp),
		DL: utl.Deep3alloc(ncomp, ncomp, ncomp),
	}
}

// Pairs returns the independent coefficients (i,j) of an ncomp×ncomp symmetric matrix
//  the diagonal comes first, followed by the upper triangle row by row; e.g. for three
//  solutes: BB, CC, DD, BC, BD, CD
func Pairs(ncomp int) (I, J []int) {
	for i := 0; i < ncomp; i++ {
		I = append(I, i)
		J = append(J, i)
	}
	for i := 0; i < ncomp; i++ {
		for j := i + 1; j < ncomp; j++ {
			I = append(I, i)
			J = append(J, j)
		}
	}
	return
}

// PairName returns the name of coefficient (i,j); e.g. "L_BC"
func PairName(i, j int) string {
	return "L_" + Components[i] + Components[j]
}

// New returns new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mobility' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// checkNcomp checks the number of independent solutes
func checkNcomp(model string, ncomp int) (err error) {
	if ncomp < 1 || ncomp > MaxComps {
		return chk.Err("%s mobility: number of independent solutes must be in [1, %d]. ncomp=%d is invalid", model, MaxComps, ncomp)
	}
	return
}
