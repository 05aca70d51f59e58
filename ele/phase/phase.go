// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase implements kernels of Allen-Cahn phase evolution equations
package phase

import (
	"github.com/cpmech/gosl/chk"
	"github.com/souravmat-git/gibbs-sub001/ele"
)

// DrivingForce implements the chemical driving force on order parameter q
//
//   R = ψ L Σ_k ∂h_k/∂φ_q E_k
//
//  Desc: Var (φ_q); Props["energies"] (one Scalar per phase; grand potentials or free
//        energies); Props["switching"]; Prms: L
type DrivingForce struct {
	ele.Coupling
	L   float64                 // mobility
	sw  ele.Key[*ele.Switching] // weights
	eng []ele.Key[*ele.Scalar]  // phase energies
}

// ElasticDrivingForce implements the elastic driving force on order parameter q
//
//   R = ψ L Σ_k ∂h_k/∂φ_q F_k
//
// where F_k = ∂ψ̄/∂h_k are the driving forces of the homogenized elastic response
//  Desc: Var (φ_q); Props["homogenized"]; Prms: L
type ElasticDrivingForce struct {
	ele.Coupling
	L   float64                   // mobility
	hom ele.Key[*ele.Homogenized] // elastic response
}

// BarrierTerm implements the derivative of a multi-well barrier
//
//   R = ψ L w ∂g/∂φ_q
//
//  Desc: Var (φ_q); Props["barrier"]; Prms: L, w
type BarrierTerm struct {
	ele.Coupling
	L, W float64               // mobility and barrier height
	bar  ele.Key[*ele.Barrier] // barrier
}

// Gradient implements the gradient energy term
//
//   R = L κ ∇ψ⋅∇φ_q
//
//  Desc: Var (φ_q); Prms: L, kappa
type Gradient struct {
	ele.Coupling
	L, Kappa float64 // mobility and gradient energy coefficient
}

// Lagrange implements the Lagrange multiplier term enforcing Σφ = 1
//
//   R = -ψ L λ
//
//  Desc: Var (φ_q); Vars["lambda"]; Prms: L
type Lagrange struct {
	ele.Coupling
	L      float64 // mobility
	lambda int     // multiplier variable
}

// register kernels
func init() {
	ele.SetKernel("driving-force", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(DrivingForce)
		var err error
		if o.V, err = varAndParams(d, sys, "L"); err != nil {
			return nil, err
		}
		o.L = d.Param("L", 1)
		if o.sw, err = switching(d, sys, o.V); err != nil {
			return nil, err
		}
		names, err := d.PropNames("energies", o.sw.Sample(sys).Nphases())
		if err != nil {
			return nil, err
		}
		if o.eng, err = ele.ResolveAll[*ele.Scalar](sys, names); err != nil {
			return nil, chk.Err("driving-force on %q: %v", d.Var, err)
		}
		o.Add(ele.Depends(sys, o.sw)...)
		o.Add(ele.Depends(sys, o.eng...)...)
		return o, nil
	})
	ele.SetKernel("elastic-driving-force", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(ElasticDrivingForce)
		var err error
		if o.V, err = varAndParams(d, sys, "L"); err != nil {
			return nil, err
		}
		o.L = d.Param("L", 1)
		name, err := d.PropName("homogenized")
		if err != nil {
			return nil, err
		}
		if o.hom, err = ele.Resolve[*ele.Homogenized](sys, name); err != nil {
			return nil, chk.Err("elastic-driving-force on %q: %v", d.Var, err)
		}
		if !contains(o.hom.Sample(sys).Hvars, o.V) {
			return nil, chk.Err("elastic-driving-force on %q: variable is not a phase variable of %q", d.Var, name)
		}
		o.Add(ele.Depends(sys, o.hom)...)
		return o, nil
	})
	ele.SetKernel("barrier", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(BarrierTerm)
		var err error
		if o.V, err = varAndParams(d, sys, "L", "w"); err != nil {
			return nil, err
		}
		o.L, o.W = d.Param("L", 1), d.Param("w", 1)
		name, err := d.PropName("barrier")
		if err != nil {
			return nil, err
		}
		if o.bar, err = ele.Resolve[*ele.Barrier](sys, name); err != nil {
			return nil, chk.Err("barrier on %q: %v", d.Var, err)
		}
		if !contains(o.bar.Sample(sys).Vars, o.V) {
			return nil, chk.Err("barrier on %q: variable is not a phase variable of %q", d.Var, name)
		}
		o.Add(ele.Depends(sys, o.bar)...)
		return o, nil
	})
	ele.SetKernel("gradient", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(Gradient)
		var err error
		if o.V, err = varAndParams(d, sys, "L", "kappa"); err != nil {
			return nil, err
		}
		o.L, o.Kappa = d.Param("L", 1), d.Param("kappa", 1)
		return o, nil
	})
	ele.SetKernel("lagrange", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(Lagrange)
		var err error
		if o.V, err = varAndParams(d, sys, "L"); err != nil {
			return nil, err
		}
		o.L = d.Param("L", 1)
		lambda, err := d.VarIds(sys.Lay, "lambda", 1)
		if err != nil {
			return nil, err
		}
		o.lambda = lambda[0]
		o.Add(o.lambda)
		return o, nil
	})
}

// varAndParams returns the kernel variable and checks parameter names
func varAndParams(d *ele.Desc, sys *ele.System, names ...string) (id int, err error) {
	if id, err = d.VarId(sys.Lay); err != nil {
		return
	}
	err = d.CheckParams(names...)
	return
}

// switching resolves the switching property whose phase variables include q
func switching(d *ele.Desc, sys *ele.System, q int) (k ele.Key[*ele.Switching], err error) {
	name, err := d.PropName("switching")
	if err != nil {
		return
	}
	if k, err = ele.Resolve[*ele.Switching](sys, name); err != nil {
		return k, chk.Err("%s on %q: %v", d.Type, d.Var, err)
	}
	if !contains(k.Sample(sys).Vars, q) {
		return k, chk.Err("%s on %q: variable is not a phase variable of %q", d.Type, d.Var, name)
	}
	return
}

// contains tells whether ids contains id
func contains(ids []int, id int) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}

// Residual computes R
func (o *DrivingForce) Residual(c *ele.Context) (res float64) {
	sw := o.sw.Get(c)
	for k, key := range o.eng {
		res += sw.DH[k][o.V] * key.Get(c).V
	}
	return c.Test.S * o.L * res
}

// Jacobian computes ∂R/∂φ_q
func (o *DrivingForce) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *DrivingForce) OffDiagJacobian(c *ele.Context, j int) (res float64) {
	sw := o.sw.Get(c)
	for k, key := range o.eng {
		E := key.Get(c)
		res += sw.D2H[k][o.V][j]*E.V + sw.DH[k][o.V]*E.D[j]
	}
	return c.Test.S * o.L * res * c.Trial.S
}

// Residual computes R
func (o *ElasticDrivingForce) Residual(c *ele.Context) (res float64) {
	r := o.hom.Get(c)
	for k, F := range r.F {
		res += r.Sw.DH[k][o.V] * F
	}
	return c.Test.S * o.L * res
}

// Jacobian computes ∂R/∂φ_q
func (o *ElasticDrivingForce) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *ElasticDrivingForce) OffDiagJacobian(c *ele.Context, j int) (res float64) {
	r := o.hom.Get(c)
	for k, F := range r.F {
		res += r.Sw.D2H[k][o.V][j]*F*c.Trial.S + r.Sw.DH[k][o.V]*r.Deriv(r.DF[k], c, j)
	}
	return c.Test.S * o.L * res
}

// Residual computes R
func (o *BarrierTerm) Residual(c *ele.Context) float64 {
	return c.Test.S * o.L * o.W * o.bar.Get(c).DG[o.V]
}

// Jacobian computes ∂R/∂φ_q
func (o *BarrierTerm) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *BarrierTerm) OffDiagJacobian(c *ele.Context, j int) float64 {
	return c.Test.S * o.L * o.W * o.bar.Get(c).D2G[o.V][j] * c.Trial.S
}

// Residual computes R
func (o *Gradient) Residual(c *ele.Context) float64 {
	return o.L * o.Kappa * c.GradTest(c.G[o.V])
}

// Jacobian computes ∂R/∂φ_q
func (o *Gradient) Jacobian(c *ele.Context) float64 {
	return o.L * o.Kappa * c.GradTest(c.Trial.G)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *Gradient) OffDiagJacobian(c *ele.Context, j int) float64 {
	if j == o.V {
		return o.Jacobian(c)
	}
	return 0
}

// Residual computes R
func (o *Lagrange) Residual(c *ele.Context) float64 {
	return -c.Test.S * o.L * c.U[o.lambda]
}

// Jacobian computes ∂R/∂φ_q
func (o *Lagrange) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *Lagrange) OffDiagJacobian(c *ele.Context, j int) float64 {
	if j == o.lambda {
		return -c.Test.S * o.L * c.Trial.S
	}
	return 0
}
