// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Smoothstep implements the quintic two-phase switching function of one order parameter η
//
//   h(η) = η³ (6η² - 15η + 10)
//
//   weights: h_α = 1 - h(η),  h_β = h(η)
//
type Smoothstep struct{}

// add model to factory
func init() {
	allocators["smoothstep"] = func() Model { return new(Smoothstep) }
}

// Init initialises this structure
func (o *Smoothstep) Init(nphases int, prms dbf.Params) (err error) {
	if nphases != 2 {
		return chk.Err("smoothstep switching function works with 2 phases only. nphases=%d is invalid", nphases)
	}
	if len(prms) > 0 {
		return chk.Err("smoothstep: parameter %q is not available", prms[0].N)
	}
	return
}

// Nphases returns the number of phases
func (o Smoothstep) Nphases() int { return 2 }

// Nvars returns the number of order parameters
func (o Smoothstep) Nvars() int { return 1 }

// Calc computes weights and derivatives
func (o Smoothstep) Calc(w *Weights, phi []float64) {
	h, dh, d2h := SmoothstepH(phi[0])
	w.H[0], w.H[1] = 1.0-h, h
	w.DH[0][0], w.DH[1][0] = -dh, dh
	w.D2H[0][0][0], w.D2H[1][0][0] = -d2h, d2h
	w.Degenerate = false
}

// SmoothstepH computes h(η), h'(η) and h''(η)
func SmoothstepH(η float64) (h, dh, d2h float64) {
	h = η * η * η * (6.0*η*η - 15.0*η + 10.0)
	dh = 30.0 * η * η * (1.0 - η) * (1.0 - η)
	d2h = 60.0 * η * (1.0 - η) * (1.0 - 2.0*η)
	return
}
