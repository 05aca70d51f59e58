// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/gosl/chk"
	"github.com/souravmat-git/gibbs-sub001/ele"
	"github.com/souravmat-git/gibbs-sub001/mdl/mobility"
)

// Mobility computes an Onsager mobility matrix
//  Desc: Model = constant | tabulated; Vars["s"] (arguments; one per independent solute);
//        Extra = table file (tabulated)
//  Output: <name> *ele.Matrix; degenerate if the sample was clamped to the table
type Mobility struct {
	name  string
	mdl   mobility.Model
	vars  []int
	nvars int
	key   ele.Key[*ele.Matrix]
}

// register provider
func init() {
	ele.SetProvider("mobility", func(d *ele.Desc, sys *ele.System) (ele.Provider, error) {
		vars, err := d.VarIds(sys.Lay, "s", 0)
		if err != nil {
			return nil, err
		}
		mdl, err := mobility.New(d.Model)
		if err != nil {
			return nil, chk.Err("mobility %q: %v", d.Name, err)
		}
		if tab, ok := mdl.(*mobility.Tabulated); ok {
			if d.Extra == "" {
				return nil, chk.Err("mobility %q: table file must be given in 'extra'", d.Name)
			}
			if err = tab.Load(d.Extra); err != nil {
				return nil, err
			}
		}
		if err = mdl.Init(len(vars), d.Prms); err != nil {
			return nil, chk.Err("mobility %q: %v", d.Name, err)
		}
		return &Mobility{name: d.Name, mdl: mdl, vars: vars, nvars: sys.Lay.Nvars()}, nil
	})
}

// Outputs returns the produced properties
func (o *Mobility) Outputs() []ele.Prop {
	return []ele.Prop{{Name: o.name, Alloc: func() interface{} {
		return ele.NewMatrix(len(o.vars), o.nvars, o.vars)
	}}}
}

// Inputs returns the consumed properties
func (o *Mobility) Inputs() []string { return nil }

// Bind resolves keys
func (o *Mobility) Bind(sys *ele.System) (err error) {
	o.key, err = ele.OutputKey[*ele.Matrix](sys, o.name)
	return
}

// Compute computes L and ∂L/∂s
func (o *Mobility) Compute(c *ele.Context) {
	n := len(o.vars)
	s := make([]float64, n)
	for i, id := range o.vars {
		s[i] = c.U[id]
	}
	r := mobility.NewResult(n)
	o.mdl.Calc(r, s)
	L := o.key.Get(c)
	L.Degenerate = r.Clamped
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			L.V[i][j] = r.L[i][j]
			for k, K := range o.vars {
				L.D[i][j][K] = r.DL[i][j][k]
			}
		}
	}
}
