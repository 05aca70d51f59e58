// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/gosl/chk"
	"github.com/souravmat-git/gibbs-sub001/ele"
	"github.com/souravmat-git/gibbs-sub001/mdl/thermo"
)

// Chemistry computes the free energy of a phase as a function of its composition
//  Desc: Model = parabolic | redlich-kister | taylor | tabulated; Vars["x"] (one per
//        independent solute); Extra = table file (tabulated)
//  Outputs: <name>:f, <name>:omega (f - μ⋅x) *ele.Scalar; <name>:mu *ele.Vector;
//           <name>:tf (thermodynamic factor ∂²f/∂x²) *ele.Matrix
//  Outputs are degenerate if the composition was outside the domain of the model
type Chemistry struct {
	name  string
	mdl   thermo.Model
	vars  []int
	nvars int
	f     ele.Key[*ele.Scalar]
	omega ele.Key[*ele.Scalar]
	mu    ele.Key[*ele.Vector]
	tf    ele.Key[*ele.Matrix]
}

// Dual computes the grand potential of a phase as a function of diffusion potentials
//  Desc: Model = any free-energy model of Chemistry, inverted unless its dual is known in
//        closed form; or tabulated-dual; Vars["mu"] (one per independent solute);
//        Extra = table file (tabulated, tabulated-dual)
//  Outputs: <name>:omega *ele.Scalar; <name>:x *ele.Vector;
//           <name>:chi (susceptibility ∂x/∂μ) *ele.Matrix
//  Outputs are degenerate if the inversion of μ(x) failed
type Dual struct {
	name  string
	dual  thermo.Dual
	vars  []int
	nvars int
	omega ele.Key[*ele.Scalar]
	x     ele.Key[*ele.Vector]
	chi   ele.Key[*ele.Matrix]
}

// Variables exposes variables as a vector property
//  Desc: Vars["vars"]
//  Output: <name> *ele.Vector
type Variables struct {
	name  string
	vars  []int
	nvars int
	key   ele.Key[*ele.Vector]
}

// register providers
func init() {
	ele.SetProvider("chemistry", func(d *ele.Desc, sys *ele.System) (ele.Provider, error) {
		vars, mdl, err := thermoModel(d, sys, "x")
		if err != nil {
			return nil, err
		}
		return &Chemistry{name: d.Name, mdl: mdl, vars: vars, nvars: sys.Lay.Nvars()}, nil
	})
	ele.SetProvider("dual", func(d *ele.Desc, sys *ele.System) (ele.Provider, error) {
		vars, err := d.VarIds(sys.Lay, "mu", 0)
		if err != nil {
			return nil, err
		}
		if cnj, e := thermo.NewConjugate(d.Model); e == nil {
			if err = load(d, cnj); err != nil {
				return nil, err
			}
			if err = cnj.Init(len(vars), d.Prms); err != nil {
				return nil, chk.Err("%s %q: %v", d.Type, d.Name, err)
			}
			return &Dual{name: d.Name, dual: cnj, vars: vars, nvars: sys.Lay.Nvars()}, nil
		}
		vars, mdl, err := thermoModel(d, sys, "mu")
		if err != nil {
			return nil, err
		}
		return &Dual{name: d.Name, dual: thermo.NewDual(mdl), vars: vars, nvars: sys.Lay.Nvars()}, nil
	})
	ele.SetProvider("variables", func(d *ele.Desc, sys *ele.System) (ele.Provider, error) {
		vars, err := d.VarIds(sys.Lay, "vars", 0)
		if err != nil {
			return nil, err
		}
		return &Variables{name: d.Name, vars: vars, nvars: sys.Lay.Nvars()}, nil
	})
}

// thermoModel allocates and initialises a thermodynamic model
func thermoModel(d *ele.Desc, sys *ele.System, group string) (vars []int, mdl thermo.Model, err error) {
	vars, err = d.VarIds(sys.Lay, group, 0)
	if err != nil {
		return
	}
	mdl, err = thermo.New(d.Model)
	if err != nil {
		return nil, nil, chk.Err("%s %q: %v", d.Type, d.Name, err)
	}
	if err = load(d, mdl); err != nil {
		return nil, nil, err
	}
	if err = mdl.Init(len(vars), d.Prms); err != nil {
		return nil, nil, chk.Err("%s %q: %v", d.Type, d.Name, err)
	}
	return
}

// load reads the table of models that need one
func load(d *ele.Desc, mdl interface{}) (err error) {
	ld, ok := mdl.(thermo.Loader)
	if !ok {
		return
	}
	if d.Extra == "" {
		return chk.Err("%s %q: table file must be given in 'extra'", d.Type, d.Name)
	}
	if err = ld.Load(d.Extra); err != nil {
		return chk.Err("%s %q: %v", d.Type, d.Name, err)
	}
	return
}

// Outputs returns the produced properties
func (o *Chemistry) Outputs() []ele.Prop {
	n := len(o.vars)
	return []ele.Prop{
		{Name: o.name + ":f", Alloc: func() interface{} { return ele.NewScalar(o.nvars, o.vars) }},
		{Name: o.name + ":omega", Alloc: func() interface{} { return ele.NewScalar(o.nvars, o.vars) }},
		{Name: o.name + ":mu", Alloc: func() interface{} { return ele.NewVector(n, o.nvars, o.vars) }},
		{Name: o.name + ":tf", Alloc: func() interface{} { return ele.NewMatrix(n, o.nvars, o.vars) }},
	}
}

// Inputs returns the consumed properties
func (o *Chemistry) Inputs() []string { return nil }

// Bind resolves keys
func (o *Chemistry) Bind(sys *ele.System) (err error) {
	if o.f, err = ele.OutputKey[*ele.Scalar](sys, o.name+":f"); err != nil {
		return
	}
	if o.omega, err = ele.OutputKey[*ele.Scalar](sys, o.name+":omega"); err != nil {
		return
	}
	if o.mu, err = ele.OutputKey[*ele.Vector](sys, o.name+":mu"); err != nil {
		return
	}
	o.tf, err = ele.OutputKey[*ele.Matrix](sys, o.name+":tf")
	return
}

// Compute computes f, ω, μ and ∂²f/∂x² with their derivatives
func (o *Chemistry) Compute(c *ele.Context) {
	n := len(o.vars)
	x := make([]float64, n)
	for i, id := range o.vars {
		x[i] = c.U[id]
	}
	r := thermo.NewChem(n)
	o.mdl.Calc(r, x)
	f, omega, mu, tf := o.f.Get(c), o.omega.Get(c), o.mu.Get(c), o.tf.Get(c)
	f.Degenerate, omega.Degenerate, mu.Degenerate, tf.Degenerate = r.OutOfDomain, r.OutOfDomain, r.OutOfDomain, r.OutOfDomain
	f.V = r.F
	omega.V = r.F
	for i, I := range o.vars {
		f.D[I] = r.Mu[i]
		omega.V -= r.Mu[i] * x[i]
		mu.V[i] = r.Mu[i]
		// ∂ω/∂x_i = -Σ_k x_k B_ki
		omega.D[I] = 0
		for k := 0; k < n; k++ {
			omega.D[I] -= x[k] * r.B[k][i]
		}
		for j, J := range o.vars {
			mu.D[i][J] = r.B[i][j]
			tf.V[i][j] = r.B[i][j]
			for k, K := range o.vars {
				tf.D[i][j][K] = r.DB[i][j][k]
			}
		}
	}
}

// Outputs returns the produced properties
func (o *Dual) Outputs() []ele.Prop {
	n := len(o.vars)
	return []ele.Prop{
		{Name: o.name + ":omega", Alloc: func() interface{} { return ele.NewScalar(o.nvars, o.vars) }},
		{Name: o.name + ":x", Alloc: func() interface{} { return ele.NewVector(n, o.nvars, o.vars) }},
		{Name: o.name + ":chi", Alloc: func() interface{} { return ele.NewMatrix(n, o.nvars, o.vars) }},
	}
}

// Inputs returns the consumed properties
func (o *Dual) Inputs() []string { return nil }

// Bind resolves keys
func (o *Dual) Bind(sys *ele.System) (err error) {
	if o.omega, err = ele.OutputKey[*ele.Scalar](sys, o.name+":omega"); err != nil {
		return
	}
	if o.x, err = ele.OutputKey[*ele.Vector](sys, o.name+":x"); err != nil {
		return
	}
	o.chi, err = ele.OutputKey[*ele.Matrix](sys, o.name+":chi")
	return
}

// Compute computes ω, x and χ with their derivatives
func (o *Dual) Compute(c *ele.Context) {
	n := len(o.vars)
	mu := make([]float64, n)
	for i, id := range o.vars {
		mu[i] = c.U[id]
	}
	r := thermo.NewGrand(n)
	o.dual.CalcDual(r, mu)
	omega, x, chi := o.omega.Get(c), o.x.Get(c), o.chi.Get(c)
	omega.Degenerate, x.Degenerate, chi.Degenerate = r.Degenerate, r.Degenerate, r.Degenerate
	omega.V = r.Omega
	for i, I := range o.vars {
		omega.D[I] = -r.X[i]
		x.V[i] = r.X[i]
		for j, J := range o.vars {
			x.D[i][J] = r.Chi[i][j]
			chi.V[i][j] = r.Chi[i][j]
			for k, K := range o.vars {
				chi.D[i][j][K] = r.DChi[i][j][k]
			}
		}
	}
}

// Outputs returns the produced properties
func (o *Variables) Outputs() []ele.Prop {
	return []ele.Prop{{Name: o.name, Alloc: func() interface{} {
		v := ele.NewVector(len(o.vars), o.nvars, o.vars)
		for i, id := range o.vars {
			v.D[i][id] = 1
		}
		return v
	}}}
}

// Inputs returns the consumed properties
func (o *Variables) Inputs() []string { return nil }

// Bind resolves keys
func (o *Variables) Bind(sys *ele.System) (err error) {
	o.key, err = ele.OutputKey[*ele.Vector](sys, o.name)
	return
}

// Compute copies the values of variables
func (o *Variables) Compute(c *ele.Context) {
	v := o.key.Get(c)
	for i, id := range o.vars {
		v.V[i] = c.U[id]
	}
}
