// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package interp implements switching (interpolation) functions and barrier
// functions of phase order parameters
package interp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Model defines switching functions h_k(φ) mapping order parameters to phase weights
type Model interface {
	Init(nphases int, prms dbf.Params) error // Init initialises this structure
	Nphases() int                            // number of phases (weights)
	Nvars() int                              // number of order parameters consumed by Calc
	Calc(w *Weights, phi []float64)          // computes weights and derivatives
}

// Weights holds phase weights and their derivatives w.r.t. the order parameters
//
//   H[k]         = h_k
//   DH[k][j]     = ∂h_k/∂φ_j
//   D2H[k][i][j] = ∂²h_k/∂φ_i∂φ_j
//
type Weights struct {
	H          []float64     // [nphases]
	DH         [][]float64   // [nphases][nvars]
	D2H        [][][]float64 // [nphases][nvars][nvars]
	Degenerate bool          // fallback values were used
}

// NewWeights allocates weights for a model
func NewWeights(mdl Model) *Weights {
	np, nv := mdl.Nphases(), mdl.Nvars()
	return &Weights{
		H:   make([]float64, np),
		DH:  utl.Alloc(np, nv),
		D2H: utl.Deep3alloc(np, nv, nv),
	}
}

// New allocates a new switching model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'interp' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
