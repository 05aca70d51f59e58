// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package jump implements kernels of traction continuity and strain compatibility across
// sharp interfaces represented by phase fields
package jump

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/souravmat-git/gibbs-sub001/ele"
	"github.com/souravmat-git/gibbs-sub001/mdl/micromech"
)

// Traction implements the continuity of traction at interface m (jump variables)
//
//   R = ψ [(σ_{m+1} - σ_m)⋅n_m]_c
//
//  Desc: Var (a_m,c); Props["homogenized"] (with jump variables); Prms: interface (m),
//        component (c)
type Traction struct {
	ele.Coupling
	m, comp int                       // interface and component
	hom     ele.Key[*ele.Homogenized] // elastic response
}

// NormalTraction implements the axis-wise continuity of traction between two phases
//
//   R = ψ (M_β (e_β - e*_β) - M_α (e_α - e*_α)) n_c
//
//  Desc: Var; Vars["strains"] (e_α, e_β); Vars["normal"]; Prms: M_alpha, M_beta,
//        eT_alpha, eT_beta, component (c)
type NormalTraction struct {
	ele.Coupling
	comp     int     // component c
	ea, eb   int     // phase strains
	nrm      int     // variable defining the normal
	Ma, Mb   float64 // moduli
	eTa, eTb float64 // eigenstrains
}

// StrainCompatibility implements the axis-wise compatibility of phase strains
//
//   R = ψ n_c (Σ_k h_k e_k - ∂u_c/∂x_c)
//
// without n_c if normal = 0
//  Desc: Var; Vars["strains"] (one per phase); Vars["u"]; Vars["normal"] (if normal ≠ 0);
//        Props["switching"]; Prms: component (c), normal
type StrainCompatibility struct {
	ele.Coupling
	comp    int                     // component c
	strains []int                   // phase strains
	u       int                     // displacement component c
	nrm     int                     // variable defining the normal; -1 if not used
	sw      ele.Key[*ele.Switching] // weights
}

// register kernels
func init() {
	ele.SetKernel("traction", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(Traction)
		var err error
		if o.V, err = d.VarId(sys.Lay); err != nil {
			return nil, err
		}
		if err = d.CheckParams("interface", "component"); err != nil {
			return nil, err
		}
		name, err := d.PropName("homogenized")
		if err != nil {
			return nil, err
		}
		if o.hom, err = ele.Resolve[*ele.Homogenized](sys, name); err != nil {
			return nil, chk.Err("traction on %q: %v", d.Var, err)
		}
		r := o.hom.Sample(sys)
		if r.Jumps == nil {
			return nil, chk.Err("traction on %q: %q must have jump variables", d.Var, name)
		}
		if o.m, err = d.Index("interface", r.Hom.Nint); err != nil {
			return nil, err
		}
		if o.comp, err = d.Index("component", 3); err != nil {
			return nil, err
		}
		o.Add(ele.Depends(sys, o.hom)...)
		return o, nil
	})
	ele.SetKernel("normal-traction", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(NormalTraction)
		var err error
		if o.V, err = d.VarId(sys.Lay); err != nil {
			return nil, err
		}
		if err = d.CheckParams("M_alpha", "M_beta", "eT_alpha", "eT_beta", "component"); err != nil {
			return nil, err
		}
		strains, err := d.VarIds(sys.Lay, "strains", 2)
		if err != nil {
			return nil, err
		}
		o.ea, o.eb = strains[0], strains[1]
		if o.nrm, err = normal(d, sys); err != nil {
			return nil, err
		}
		if o.comp, err = d.Index("component", sys.Ndim); err != nil {
			return nil, err
		}
		if o.Ma, err = d.ReqParam("M_alpha"); err != nil {
			return nil, err
		}
		if o.Mb, err = d.ReqParam("M_beta"); err != nil {
			return nil, err
		}
		o.eTa, o.eTb = d.Param("eT_alpha", 0), d.Param("eT_beta", 0)
		o.Add(o.ea, o.eb, o.nrm)
		return o, nil
	})
	ele.SetKernel("strain-compatibility", func(d *ele.Desc, sys *ele.System) (ele.Kernel, error) {
		o := new(StrainCompatibility)
		var err error
		if o.V, err = d.VarId(sys.Lay); err != nil {
			return nil, err
		}
		if err = d.CheckParams("component", "normal"); err != nil {
			return nil, err
		}
		if o.comp, err = d.Index("component", sys.Ndim); err != nil {
			return nil, err
		}
		o.nrm = -1
		if d.Param("normal", 1) != 0 {
			if o.nrm, err = normal(d, sys); err != nil {
				return nil, err
			}
		}
		u, err := d.VarIds(sys.Lay, "u", 1)
		if err != nil {
			return nil, err
		}
		o.u = u[0]
		name, err := d.PropName("switching")
		if err != nil {
			return nil, err
		}
		if o.sw, err = ele.Resolve[*ele.Switching](sys, name); err != nil {
			return nil, chk.Err("strain-compatibility on %q: %v", d.Var, err)
		}
		if o.strains, err = d.VarIds(sys.Lay, "strains", o.sw.Sample(sys).Nphases()); err != nil {
			return nil, err
		}
		o.Add(o.strains...)
		o.Add(o.u, o.nrm)
		o.Add(ele.Depends(sys, o.sw)...)
		return o, nil
	})
}

// normal returns the variable defining the normal
func normal(d *ele.Desc, sys *ele.System) (id int, err error) {
	ids, err := d.VarIds(sys.Lay, "normal", 1)
	if err != nil {
		return -1, err
	}
	return ids[0], nil
}

// normalComp computes n_c = -g_c/|g| with g = ∇u_id and its derivative in the direction of
// the trial function of u_j
func normalComp(c *ele.Context, id, comp, j int) (n, dn float64) {
	nv := make([]float64, 3)
	dnv := utl.Alloc(3, 3)
	micromech.NormalDeriv(dnv, c.G[id])
	micromech.Normal(nv, c.G[id])
	if j == id {
		for l := 0; l < c.Ndim; l++ {
			dn += dnv[comp][l] * c.Trial.G[l]
		}
	}
	return nv[comp], dn
}

// Residual computes R
func (o *Traction) Residual(c *ele.Context) float64 {
	return c.Test.S * o.hom.Get(c).T[o.m][o.comp]
}

// Jacobian computes ∂R/∂a_m,c
func (o *Traction) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *Traction) OffDiagJacobian(c *ele.Context, j int) float64 {
	r := o.hom.Get(c)
	return c.Test.S * r.Deriv(r.DT[o.m][o.comp], c, j)
}

// stress returns M_β (e_β - e*_β) - M_α (e_α - e*_α)
func (o *NormalTraction) stress(c *ele.Context) float64 {
	return o.Mb*(c.U[o.eb]-o.eTb) - o.Ma*(c.U[o.ea]-o.eTa)
}

// Residual computes R
func (o *NormalTraction) Residual(c *ele.Context) float64 {
	n, _ := normalComp(c, o.nrm, o.comp, -1)
	return c.Test.S * o.stress(c) * n
}

// Jacobian computes ∂R/∂u
func (o *NormalTraction) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *NormalTraction) OffDiagJacobian(c *ele.Context, j int) float64 {
	n, dn := normalComp(c, o.nrm, o.comp, j)
	ds := 0.0
	if j == o.eb {
		ds += o.Mb
	}
	if j == o.ea {
		ds -= o.Ma
	}
	return c.Test.S * (ds*c.Trial.S*n + o.stress(c)*dn)
}

// mismatch returns Σ_k h_k e_k - ∂u_c/∂x_c
func (o *StrainCompatibility) mismatch(c *ele.Context) (res float64) {
	sw := o.sw.Get(c)
	for k, id := range o.strains {
		res += sw.H[k] * c.U[id]
	}
	return res - c.G[o.u][o.comp]
}

// normal returns n_c (or 1) and its derivative
func (o *StrainCompatibility) normal(c *ele.Context, j int) (n, dn float64) {
	if o.nrm < 0 {
		return 1, 0
	}
	return normalComp(c, o.nrm, o.comp, j)
}

// Residual computes R
func (o *StrainCompatibility) Residual(c *ele.Context) float64 {
	n, _ := o.normal(c, -1)
	return c.Test.S * n * o.mismatch(c)
}

// Jacobian computes ∂R/∂u
func (o *StrainCompatibility) Jacobian(c *ele.Context) float64 {
	return o.OffDiagJacobian(c, o.V)
}

// OffDiagJacobian computes ∂R/∂u_j
func (o *StrainCompatibility) OffDiagJacobian(c *ele.Context, j int) float64 {
	sw := o.sw.Get(c)
	n, dn := o.normal(c, j)
	dm := 0.0
	for k, id := range o.strains {
		dm += sw.DH[k][j] * c.U[id] * c.Trial.S
		if id == j {
			dm += sw.H[k] * c.Trial.S
		}
	}
	if j == o.u {
		dm -= c.Trial.G[o.comp]
	}
	return c.Test.S * (n*dm + dn*o.mismatch(c))
}
