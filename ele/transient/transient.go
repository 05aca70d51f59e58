// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package transient implements kernels of time derivatives
package transient

import (
	"github.com/cpmech/gosl/chk"
	"github.com/souravmat-git/gibbs-sub001/ele"
)

// TimeDerivative implements
//
//   R = ψ a u̇
//
//  Desc: Var; Prms: coef (a)
type TimeDerivative struct {
	ele.Coupling
	Coef float64 // coefficient a
}

// SusceptibilityRate implements the rate of composition in terms of diffusion potentials
//
//   R = ψ Σ_k h_k Σ_d χ_k,cd μ̇_d
//
//  Desc: Var; Vars["mu"] (one per independent solute); Props["susceptibilities"] (one
//        Matrix per phase or a single one); Props["switching"] (if more than one);
//        Prms: component (c)
type SusceptibilityRate struct {
	ele.Coupling
	comp int                  // component c
	mu   []int                // potential variables
	chi  ele.Mix[*ele.Matrix] // susceptibilities
}

// register kernels
func init() {
	ele.SetKernel("time-derivative", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(TimeDerivative)
		var err error
		if o.V, err = d.VarId(sys.Lay); err != nil {
			return nil, err
		}
		if err = d.CheckParams("coef"); err != nil {
			return nil, err
		}
		o.Coef = d.Param("coef", 1)
		return o, nil
	})
	ele.SetKernel("susceptibility-rate", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(SusceptibilityRate)
		var err error
		if o.V, err = d.VarId(sys.Lay); err != nil {
			return nil, err
		}
		if o.mu, err = d.VarIds(sys.Lay, "mu", 0); err != nil {
			return nil, err
		}
		if err = d.CheckParams("component"); err != nil {
			return nil, err
		}
		if o.comp, err = d.Index("component", len(o.mu)); err != nil {
			return nil, err
		}
		if o.chi, err = ele.NewMix[*ele.Matrix](d, sys, "susceptibilities"); err != nil {
			return nil, err
		}
		for _, k := range o.chi.Keys {
			if n := len(k.Sample(sys).V); n != len(o.mu) {
				return nil, chk.Err("susceptibility-rate on %q: matrix %q has size %d but %d solute(s) are given", d.Var, k.Name, n, len(o.mu))
			}
		}
		o.Add(o.mu...)
		o.Add(o.chi.Depends(sys)...)
		return o, nil
	})
}

// Residual computes R
func (o *TimeDerivative) Residual(c *ele.Context) float64 {
	return c.Test.S * o.Coef * c.Dot[o.V]
}

// Jacobian computes ∂R/∂u
func (o *TimeDerivative) Jacobian(c *ele.Context) float64 {
	return c.Test.S * o.Coef * c.DotDu * c.Trial.S
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *TimeDerivative) OffDiagJacobian(c *ele.Context, j int) float64 {
	if j == o.V {
		return o.Jacobian(c)
	}
	return 0
}

// Residual computes R
func (o *SusceptibilityRate) Residual(c *ele.Context) (res float64) {
	for k := 0; k < o.chi.Len(); k++ {
		h, _ := o.chi.Weight(c, k, 0)
		χ := o.chi.Get(c, k)
		for d, id := range o.mu {
			res += h * χ.V[o.comp][d] * c.Dot[id]
		}
	}
	return c.Test.S * res
}

// Jacobian computes ∂R/∂u
func (o *SusceptibilityRate) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *SusceptibilityRate) OffDiagJacobian(c *ele.Context, j int) (res float64) {
	for k := 0; k < o.chi.Len(); k++ {
		h, dh := o.chi.Weight(c, k, j)
		χ := o.chi.Get(c, k)
		for d, id := range o.mu {
			res += (dh*χ.V[o.comp][d] + h*χ.D[o.comp][d][j]) * c.Trial.S * c.Dot[id]
			if id == j {
				res += h * χ.V[o.comp][d] * c.DotDu * c.Trial.S
			}
		}
	}
	return c.Test.S * res
}
