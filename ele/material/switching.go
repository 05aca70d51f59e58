// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package material implements providers of phase-field properties
package material

import (
	"github.com/cpmech/gosl/chk"
	"github.com/souravmat-git/gibbs-sub001/ele"
	"github.com/souravmat-git/gibbs-sub001/mdl/interp"
)

// Switching computes interpolation weights of phases
//  Desc: Model = smoothstep | normsquare; Vars["phases"]; Prms of model
//  Output: <name> *ele.Switching
type Switching struct {
	name  string
	mdl   interp.Model
	vars  []int
	nvars int
	key   ele.Key[*ele.Switching]
}

// Barrier computes a multi-well barrier
//  Desc: Model = doublewell | multiwell | crossterm; Vars["phases"]; Prms of model
//  Output: <name> *ele.Barrier
type Barrier struct {
	name  string
	mdl   interp.Barrier
	vars  []int
	nvars int
	key   ele.Key[*ele.Barrier]
}

// register providers
func init() {
	ele.SetProvider("switching", func(d *ele.Desc, sys *ele.System) (ele.Provider, error) {
		mdl, err := interp.New(d.Model)
		if err != nil {
			return nil, chk.Err("switching %q: %v", d.Name, err)
		}
		vars, err := d.VarIds(sys.Lay, "phases", 0)
		if err != nil {
			return nil, err
		}
		nphases := len(vars)
		if len(vars) == 1 {
			nphases = 2
		}
		if err = mdl.Init(nphases, d.Prms); err != nil {
			return nil, chk.Err("switching %q: %v", d.Name, err)
		}
		if mdl.Nvars() != len(vars) {
			return nil, chk.Err("switching %q: model %q requires %d phase variable(s). %d is invalid", d.Name, d.Model, mdl.Nvars(), len(vars))
		}
		return &Switching{name: d.Name, mdl: mdl, vars: vars, nvars: sys.Lay.Nvars()}, nil
	})
	ele.SetProvider("barrier", func(d *ele.Desc, sys *ele.System) (ele.Provider, error) {
		vars, err := d.VarIds(sys.Lay, "phases", 0)
		if err != nil {
			return nil, err
		}
		mdl, err := interp.NewBarrier(d.Model)
		if err != nil {
			return nil, chk.Err("barrier %q: %v", d.Name, err)
		}
		if err = mdl.Init(len(vars), d.Prms); err != nil {
			return nil, chk.Err("barrier %q: %v", d.Name, err)
		}
		return &Barrier{name: d.Name, mdl: mdl, vars: vars, nvars: sys.Lay.Nvars()}, nil
	})
}

// Outputs returns the produced properties
func (o *Switching) Outputs() []ele.Prop {
	return []ele.Prop{{Name: o.name, Alloc: func() interface{} {
		return ele.NewSwitching(o.mdl.Nphases(), o.nvars, o.vars)
	}}}
}

// Inputs returns the consumed properties
func (o *Switching) Inputs() []string { return nil }

// Bind resolves keys
func (o *Switching) Bind(sys *ele.System) (err error) {
	o.key, err = ele.OutputKey[*ele.Switching](sys, o.name)
	return
}

// Compute computes h_k and their derivatives
func (o *Switching) Compute(c *ele.Context) {
	r := o.key.Get(c)
	w := interp.NewWeights(o.mdl)
	phi := make([]float64, len(o.vars))
	for i, id := range o.vars {
		phi[i] = c.U[id]
	}
	o.mdl.Calc(w, phi)
	r.Degenerate = w.Degenerate
	for k := range r.H {
		r.H[k] = w.H[k]
		for i, I := range o.vars {
			r.DH[k][I] = w.DH[k][i]
			for j, J := range o.vars {
				r.D2H[k][I][J] = w.D2H[k][i][j]
			}
		}
	}
}

// Outputs returns the produced properties
func (o *Barrier) Outputs() []ele.Prop {
	return []ele.Prop{{Name: o.name, Alloc: func() interface{} {
		return ele.NewBarrier(o.nvars, o.vars)
	}}}
}

// Inputs returns the consumed properties
func (o *Barrier) Inputs() []string { return nil }

// Bind resolves keys
func (o *Barrier) Bind(sys *ele.System) (err error) {
	o.key, err = ele.OutputKey[*ele.Barrier](sys, o.name)
	return
}

// Compute computes g and its derivatives
func (o *Barrier) Compute(c *ele.Context) {
	r := o.key.Get(c)
	b := interp.NewBarrierValues(o.mdl)
	phi := make([]float64, len(o.vars))
	for i, id := range o.vars {
		phi[i] = c.U[id]
	}
	o.mdl.Calc(b, phi)
	r.G = b.G
	for i, I := range o.vars {
		r.DG[I] = b.DG[i]
		for j, J := range o.vars {
			r.D2G[I][J] = b.D2G[i][j]
		}
	}
}
