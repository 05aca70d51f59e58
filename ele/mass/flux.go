// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mass implements kernels of mass conservation
package mass

import (
	"github.com/cpmech/gosl/chk"
	"github.com/souravmat-git/gibbs-sub001/ele"
)

// PotentialFlux implements the divergence of a flux driven by diffusion potentials
//
//   R = ∇ψ ⋅ Σ_d L̄_cd ∇μ_d      L̄ = Σ_k h_k L_k
//
//  Desc: Var; Vars["mu"] (one per independent solute); Props["mobilities"] (one Matrix per
//        phase or a single one); Props["switching"] (if more than one mobility);
//        Prms: component (c)
type PotentialFlux struct {
	ele.Coupling
	comp int                  // component c
	mu   []int                // potential variables
	mob  ele.Mix[*ele.Matrix] // mobilities
}

// CompositionFlux implements the divergence of a flux driven by compositions and phase
// weights (one shared composition; WBM)
//
//   R = ∇ψ ⋅ Σ_d M̄_cd G_d      G_d = Σ_k [h_k Σ_e B_k,de ∇x_e + μ_k,d ∇h_k]
//
//  Desc: Var; Vars["x"] (one per independent solute); Props["mobilities"];
//        Props["potentials"] (one Vector per phase); Props["factors"] (one Matrix per
//        phase); Props["switching"]; Prms: component (c)
type CompositionFlux struct {
	ele.Coupling
	comp int                  // component c
	x    []int                // composition variables
	mob  ele.Mix[*ele.Matrix] // mobilities
	mu   ele.Mix[*ele.Vector] // phase potentials
	tf   ele.Mix[*ele.Matrix] // phase thermodynamic factors
}

// register kernels
func init() {
	ele.SetKernel("potential-flux", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(PotentialFlux)
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
		if o.mob, err = ele.NewMix[*ele.Matrix](d, sys, "mobilities"); err != nil {
			return nil, err
		}
		if err = checkSize(d, sys, o.mob.Keys, len(o.mu)); err != nil {
			return nil, err
		}
		o.Add(o.mu...)
		o.Add(o.mob.Depends(sys)...)
		return o, nil
	})
	ele.SetKernel("composition-flux", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(CompositionFlux)
		var err error
		if o.V, err = d.VarId(sys.Lay); err != nil {
			return nil, err
		}
		if o.x, err = d.VarIds(sys.Lay, "x", 0); err != nil {
			return nil, err
		}
		if err = d.CheckParams("component"); err != nil {
			return nil, err
		}
		if o.comp, err = d.Index("component", len(o.x)); err != nil {
			return nil, err
		}
		if o.mob, err = ele.NewMix[*ele.Matrix](d, sys, "mobilities"); err != nil {
			return nil, err
		}
		if o.mu, err = ele.NewMix[*ele.Vector](d, sys, "potentials"); err != nil {
			return nil, err
		}
		if o.tf, err = ele.NewMix[*ele.Matrix](d, sys, "factors"); err != nil {
			return nil, err
		}
		if !o.mu.HasSw || o.mu.Len() != o.tf.Len() {
			return nil, chk.Err("composition-flux on %q: one potential and one factor per phase and a switching property must be given", d.Var)
		}
		if err = checkSize(d, sys, o.mob.Keys, len(o.x)); err != nil {
			return nil, err
		}
		if err = checkSize(d, sys, o.tf.Keys, len(o.x)); err != nil {
			return nil, err
		}
		o.Add(o.x...)
		o.Add(o.mob.Depends(sys)...)
		o.Add(o.mu.Depends(sys)...)
		o.Add(o.tf.Depends(sys)...)
		return o, nil
	})
}

// checkSize checks that matrices have one row per independent solute
func checkSize(d *ele.Desc, sys *ele.System, keys []ele.Key[*ele.Matrix], n int) (err error) {
	for _, k := range keys {
		if m := len(k.Sample(sys).V); m != n {
			return chk.Err("%s on %q: matrix %q has size %d but %d solute(s) are given", d.Type, d.Var, k.Name, m, n)
		}
	}
	return
}

// mixed returns M̄_cd = Σ_k h_k M_k,cd and its derivative w.r.t. u_j
func mixed(mob ele.Mix[*ele.Matrix], c *ele.Context, cc, d, j int) (m, dm float64) {
	for k := 0; k < mob.Len(); k++ {
		h, dh := mob.Weight(c, k, j)
		M := mob.Get(c, k)
		m += h * M.V[cc][d]
		dm += dh*M.V[cc][d] + h*M.D[cc][d][j]
	}
	return
}

// Residual computes R
func (o *PotentialFlux) Residual(c *ele.Context) (res float64) {
	for d, id := range o.mu {
		L, _ := mixed(o.mob, c, o.comp, d, 0)
		res += L * c.GradTest(c.G[id])
	}
	return
}

// Jacobian computes ∂R/∂u
func (o *PotentialFlux) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *PotentialFlux) OffDiagJacobian(c *ele.Context, j int) (res float64) {
	for d, id := range o.mu {
		L, dL := mixed(o.mob, c, o.comp, d, j)
		res += dL * c.Trial.S * c.GradTest(c.G[id])
		if id == j {
			res += L * c.GradTest(c.Trial.G)
		}
	}
	return
}

// Residual computes R
func (o *CompositionFlux) Residual(c *ele.Context) (res float64) {
	G := make([]float64, 3)
	for d := range o.x {
		M, _ := mixed(o.mob, c, o.comp, d, 0)
		o.grad(G, c, d)
		res += M * c.GradTest(G)
	}
	return
}

// Jacobian computes ∂R/∂u
func (o *CompositionFlux) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *CompositionFlux) OffDiagJacobian(c *ele.Context, j int) (res float64) {
	G, dG := make([]float64, 3), make([]float64, 3)
	for d := range o.x {
		M, dM := mixed(o.mob, c, o.comp, d, j)
		o.grad(G, c, d)
		o.gradDeriv(dG, c, d, j)
		res += dM*c.Trial.S*c.GradTest(G) + M*c.GradTest(dG)
	}
	return
}

// grad computes G_d = Σ_k [h_k Σ_e B_k,de ∇x_e + μ_k,d ∇h_k]
func (o *CompositionFlux) grad(G []float64, c *ele.Context, d int) {
	sw := o.mu.Sw.Get(c)
	gh := make([]float64, 3)
	G[0], G[1], G[2] = 0, 0, 0
	for k := 0; k < o.mu.Len(); k++ {
		B := o.tf.Get(c, k)
		mu := o.mu.Get(c, k)
		sw.Grad(gh, c, k)
		for i := 0; i < 3; i++ {
			for e, id := range o.x {
				G[i] += sw.H[k] * B.V[d][e] * c.G[id][i]
			}
			G[i] += mu.V[d] * gh[i]
		}
	}
}

// gradDeriv computes the derivative of G_d in the direction of the trial function of u_j
func (o *CompositionFlux) gradDeriv(dG []float64, c *ele.Context, d, j int) {
	sw := o.mu.Sw.Get(c)
	gh, dgh := make([]float64, 3), make([]float64, 3)
	φ, gφ := c.Trial.S, c.Trial.G
	dG[0], dG[1], dG[2] = 0, 0, 0
	for k := 0; k < o.mu.Len(); k++ {
		B := o.tf.Get(c, k)
		mu := o.mu.Get(c, k)
		h, dh := sw.H[k], sw.DH[k][j]
		sw.Grad(gh, c, k)
		sw.GradDeriv(dgh, c, k, j)
		for i := 0; i < 3; i++ {
			for e, id := range o.x {
				dG[i] += (dh*B.V[d][e] + h*B.D[d][e][j]) * φ * c.G[id][i]
				if id == j {
					dG[i] += h * B.V[d][e] * gφ[i]
				}
			}
			dG[i] += mu.D[d][j]*φ*gh[i] + mu.V[d]*dgh[i]
		}
	}
}
