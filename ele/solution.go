// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Solution holds the solution data @ nodes
type Solution struct {

	// current state
	T    float64   // current time
	Y    []float64 // DOFs (solution variables)
	Dydt []float64 // dy/dt

	// auxiliary
	Dt     float64 // current time increment
	DotDu  float64 // ∂(dy/dt)/∂y; e.g. 1/Δt for backward Euler
	Steady bool    // steady simulation: dy/dt = 0
}

// NewSolution allocates a new structure
func NewSolution(neq int, steady bool) *Solution {
	o := &Solution{Y: make([]float64, neq), Steady: steady}
	if !steady {
		o.Dydt = make([]float64, neq)
	}
	return o
}

// Reset clear values
func (o *Solution) Reset() {
	o.T, o.Dt, o.DotDu = 0, 0, 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
	}
	for i := 0; i < len(o.Dydt); i++ {
		o.Dydt[i] = 0
	}
}

// BackwardEuler sets dy/dt = (y - yold) / Δt and ∂(dy/dt)/∂y = 1/Δt
func (o *Solution) BackwardEuler(yold []float64, dt float64) (err error) {
	if o.Steady {
		return chk.Err("time rates cannot be computed for steady simulations")
	}
	if dt <= 0 {
		return chk.Err("time increment must be positive. Δt=%g is invalid", dt)
	}
	if len(yold) != len(o.Y) {
		return chk.Err("previous solution must have %d entries. %d is invalid", len(o.Y), len(yold))
	}
	o.Dt = dt
	o.DotDu = 1.0 / dt
	for i := 0; i < len(o.Y); i++ {
		o.Dydt[i] = (o.Y[i] - yold[i]) / dt
	}
	return
}
