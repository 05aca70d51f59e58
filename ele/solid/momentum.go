// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements kernels of the momentum balance
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/souravmat-git/gibbs-sub001/ele"
)

// Momentum implements the weak divergence of the homogenized stress
//
//   R = Σ_d ∂ψ/∂x_d σ_cd
//
//  Desc: Var (u_c); Props["homogenized"]; Prms: component (c)
type Momentum struct {
	ele.Coupling
	comp int                       // component c
	hom  ele.Key[*ele.Homogenized] // elastic response
}

// register kernel
func init() {
	ele.SetKernel("momentum", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(Momentum)
		var err error
		if o.V, err = d.VarId(sys.Lay); err != nil {
			return nil, err
		}
		if err = d.CheckParams("component"); err != nil {
			return nil, err
		}
		if o.comp, err = d.Index("component", sys.Ndim); err != nil {
			return nil, err
		}
		name, err := d.PropName("homogenized")
		if err != nil {
			return nil, err
		}
		if o.hom, err = ele.Resolve[*ele.Homogenized](sys, name); err != nil {
			return nil, chk.Err("momentum on %q: %v", d.Var, err)
		}
		if u := o.hom.Sample(sys).Uvars; u[o.comp] != o.V {
			return nil, chk.Err("momentum on %q: component %d of the displacement of %q is %q", d.Var, o.comp, name, sys.Lay.Names[u[o.comp]])
		}
		o.Add(ele.Depends(sys, o.hom)...)
		return o, nil
	})
}

// Residual computes R
func (o *Momentum) Residual(c *ele.Context) float64 {
	return c.GradTest(o.hom.Get(c).S[o.comp])
}

// Jacobian computes ∂R/∂u_c
func (o *Momentum) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *Momentum) OffDiagJacobian(c *ele.Context, j int) (res float64) {
	r := o.hom.Get(c)
	for d := 0; d < c.Ndim; d++ {
		res += c.Test.G[d] * r.Deriv(r.DS[o.comp][d], c, j)
	}
	return
}
