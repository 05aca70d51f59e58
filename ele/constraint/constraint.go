// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package constraint implements kernels of algebraic constraints between phases
package constraint

import (
	"github.com/cpmech/gosl/chk"
	"github.com/souravmat-git/gibbs-sub001/ele"
)

// Mixture implements the mixture rule of a component
//
//   R = ψ (Σ_k h_k V_k,c - W_c)
//
// e.g. KKS phase compositions (V_k = x_k, W = x), Grand-Potential compositions
// (V_k = x_k(μ), W = x) or the WBM diffusion potential (V_k = μ_k(x), W = μ)
//  Desc: Var; Props["phases"] (one Vector per phase); Props["total"] (Vector);
//        Props["switching"] (if more than one phase); Prms: component (c)
type Mixture struct {
	ele.Coupling
	comp  int                  // component c
	phase ele.Mix[*ele.Vector] // phase values
	total ele.Key[*ele.Vector] // overall value
}

// EqualPotential implements the equality of a component of two vectors
//
//   R = ψ (V_a,c - V_b,c)
//
// e.g. equal diffusion potentials of two phases, or of a phase and the potential variable
//  Desc: Var; Props["a"], Props["b"] (Vectors); Prms: component (c)
type EqualPotential struct {
	ele.Coupling
	comp int                  // component c
	a, b ele.Key[*ele.Vector] // compared values
}

// PhaseSum implements the constraint on order parameters
//
//   R = ψ (1 - Σ_k φ_k)
//
//  Desc: Var; Vars["phases"]
type PhaseSum struct {
	ele.Coupling
	phases []int // order parameters
}

// register kernels
func init() {
	ele.SetKernel("mixture", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(Mixture)
		var err error
		if o.V, err = d.VarId(sys.Lay); err != nil {
			return nil, err
		}
		if o.phase, err = ele.NewMix[*ele.Vector](d, sys, "phases"); err != nil {
			return nil, err
		}
		name, err := d.PropName("total")
		if err != nil {
			return nil, err
		}
		if o.total, err = ele.Resolve[*ele.Vector](sys, name); err != nil {
			return nil, chk.Err("mixture on %q: %v", d.Var, err)
		}
		n := len(o.total.Sample(sys).V)
		for _, k := range o.phase.Keys {
			if m := len(k.Sample(sys).V); m != n {
				return nil, chk.Err("mixture on %q: %q has %d components but %q has %d", d.Var, k.Name, m, name, n)
			}
		}
		if o.comp, err = component(d, n); err != nil {
			return nil, err
		}
		o.Add(o.phase.Depends(sys)...)
		o.Add(ele.Depends(sys, o.total)...)
		return o, nil
	})
	ele.SetKernel("equal-potential", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(EqualPotential)
		var err error
		if o.V, err = d.VarId(sys.Lay); err != nil {
			return nil, err
		}
		for _, p := range []struct {
			group string
			key   *ele.Key[*ele.Vector]
		}{{"a", &o.a}, {"b", &o.b}} {
			name, err := d.PropName(p.group)
			if err != nil {
				return nil, err
			}
			if *p.key, err = ele.Resolve[*ele.Vector](sys, name); err != nil {
				return nil, chk.Err("equal-potential on %q: %v", d.Var, err)
			}
		}
		n := len(o.a.Sample(sys).V)
		if m := len(o.b.Sample(sys).V); m != n {
			return nil, chk.Err("equal-potential on %q: %q has %d components but %q has %d", d.Var, o.a.Name, n, o.b.Name, m)
		}
		if o.comp, err = component(d, n); err != nil {
			return nil, err
		}
		o.Add(ele.Depends(sys, o.a, o.b)...)
		return o, nil
	})
	ele.SetKernel("phase-sum", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(PhaseSum)
		var err error
		if o.V, err = d.VarId(sys.Lay); err != nil {
			return nil, err
		}
		if o.phases, err = d.VarIds(sys.Lay, "phases", 0); err != nil {
			return nil, err
		}
		if err = d.CheckParams(); err != nil {
			return nil, err
		}
		o.Add(o.phases...)
		return o, nil
	})
}

// component returns the component index
func component(d *ele.Desc, n int) (comp int, err error) {
	if err = d.CheckParams("component"); err != nil {
		return
	}
	return d.Index("component", n)
}

// Residual computes R
func (o *Mixture) Residual(c *ele.Context) (res float64) {
	for k := 0; k < o.phase.Len(); k++ {
		h, _ := o.phase.Weight(c, k, 0)
		res += h * o.phase.Get(c, k).V[o.comp]
	}
	return c.Test.S * (res - o.total.Get(c).V[o.comp])
}

// Jacobian computes ∂R/∂u
func (o *Mixture) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *Mixture) OffDiagJacobian(c *ele.Context, j int) (res float64) {
	for k := 0; k < o.phase.Len(); k++ {
		h, dh := o.phase.Weight(c, k, j)
		V := o.phase.Get(c, k)
		res += dh*V.V[o.comp] + h*V.D[o.comp][j]
	}
	return c.Test.S * (res - o.total.Get(c).D[o.comp][j]) * c.Trial.S
}

// Residual computes R
func (o *EqualPotential) Residual(c *ele.Context) float64 {
	return c.Test.S * (o.a.Get(c).V[o.comp] - o.b.Get(c).V[o.comp])
}

// Jacobian computes ∂R/∂u
func (o *EqualPotential) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *EqualPotential) OffDiagJacobian(c *ele.Context, j int) float64 {
	return c.Test.S * (o.a.Get(c).D[o.comp][j] - o.b.Get(c).D[o.comp][j]) * c.Trial.S
}

// Residual computes R
func (o *PhaseSum) Residual(c *ele.Context) float64 {
	res := 1.0
	for _, id := range o.phases {
		res -= c.U[id]
	}
	return c.Test.S * res
}

// Jacobian computes ∂R/∂u
func (o *PhaseSum) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *PhaseSum) OffDiagJacobian(c *ele.Context, j int) (res float64) {
	for _, id := range o.phases {
		if id == j {
			res -= c.Test.S * c.Trial.S
		}
	}
	return
}
