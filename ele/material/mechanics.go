// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/souravmat-git/gibbs-sub001/ele"
	"github.com/souravmat-git/gibbs-sub001/mdl/micromech"
)

// Strain computes the small strain tensor
//  Desc: Vars["u"] (one displacement per dimension)
//  Output: <name> *ele.Strain
type Strain struct {
	name string
	u    []int
	key  ele.Key[*ele.Strain]
}

// Homogenization computes the homogenized elastic response of a multi-phase point
//  Desc: Model = rank-one | voigt; Sub = elastic phases (Model = isotropic | cubic);
//        Props["switching"], Props["strain"]; Vars["normals"] (one per interface);
//        Vars["jumps"] (optional; three per interface; amplitudes are solved if absent)
//  Output: <name> *ele.Homogenized
type Homogenization struct {
	name    string
	hom     *micromech.Homogenizer
	swName  string
	epsName string
	normals []int
	jumps   [][]int
	uvars   []int
	hvars   []int
	sw      ele.Key[*ele.Switching]
	eps     ele.Key[*ele.Strain]
	key     ele.Key[*ele.Homogenized]
}

// register providers
func init() {
	ele.SetProvider("strain", func(d *ele.Desc, sys *ele.System) (ele.Provider, error) {
		u, err := d.VarIds(sys.Lay, "u", sys.Ndim)
		if err != nil {
			return nil, err
		}
		return &Strain{name: d.Name, u: u}, nil
	})
	ele.SetProvider("homogenization", func(d *ele.Desc, sys *ele.System) (ele.Provider, error) {
		return newHomogenization(d, sys)
	})
}

// newHomogenization allocates a homogenization provider
func newHomogenization(d *ele.Desc, sys *ele.System) (o *Homogenization, err error) {

	// phases
	phases := make([]*micromech.Elastic, len(d.Sub))
	for i, sub := range d.Sub {
		mdl, e := micromech.New(sub.Model)
		if e != nil {
			return nil, chk.Err("homogenization %q: phase %d: %v", d.Name, i, e)
		}
		if e = mdl.Init(sub.Prms); e != nil {
			return nil, chk.Err("homogenization %q: phase %d: %v", d.Name, i, e)
		}
		phases[i] = mdl.GetElastic()
	}

	// properties
	o = &Homogenization{name: d.Name}
	if o.swName, err = d.PropName("switching"); err != nil {
		return nil, err
	}
	if o.epsName, err = d.PropName("strain"); err != nil {
		return nil, err
	}

	// variables
	jumps, err := d.OptVarIds(sys.Lay, "jumps")
	if err != nil {
		return nil, err
	}
	o.hom, err = micromech.NewHomogenizer(phases, d.Model, jumps != nil)
	if err != nil {
		return nil, chk.Err("homogenization %q: %v", d.Name, err)
	}
	if o.normals, err = d.VarIds(sys.Lay, "normals", o.hom.Nint); err != nil {
		return nil, err
	}
	if jumps != nil {
		if len(jumps) != 3*o.hom.Nint {
			return nil, chk.Err("homogenization %q: %d jump variables (3 per interface) must be given. %d is invalid", d.Name, 3*o.hom.Nint, len(jumps))
		}
		o.jumps = make([][]int, o.hom.Nint)
		for m := range o.jumps {
			o.jumps[m] = jumps[3*m : 3*m+3]
		}
	}
	return
}

// Outputs returns the produced properties
func (o *Strain) Outputs() []ele.Prop {
	return []ele.Prop{{Name: o.name, Alloc: func() interface{} { return ele.NewStrain(o.u) }}}
}

// Inputs returns the consumed properties
func (o *Strain) Inputs() []string { return nil }

// Bind resolves keys
func (o *Strain) Bind(sys *ele.System) (err error) {
	o.key, err = ele.OutputKey[*ele.Strain](sys, o.name)
	return
}

// Compute computes ε = sym(∇u)
func (o *Strain) Compute(c *ele.Context) {
	eps := o.key.Get(c)
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			eps.V[i][k] = 0
			if i < len(o.u) {
				eps.V[i][k] += 0.5 * c.G[o.u[i]][k]
			}
			if k < len(o.u) {
				eps.V[i][k] += 0.5 * c.G[o.u[k]][i]
			}
		}
	}
}

// Outputs returns the produced properties
func (o *Homogenization) Outputs() []ele.Prop {
	return []ele.Prop{{Name: o.name, Alloc: func() interface{} {
		return ele.NewHomogenized(o.hom, o.uvars, o.hvars, o.normals, o.jumps)
	}}}
}

// Inputs returns the consumed properties
func (o *Homogenization) Inputs() []string { return []string{o.swName, o.epsName} }

// Bind resolves keys
func (o *Homogenization) Bind(sys *ele.System) (err error) {
	if o.sw, err = ele.Resolve[*ele.Switching](sys, o.swName); err != nil {
		return
	}
	if o.eps, err = ele.Resolve[*ele.Strain](sys, o.epsName); err != nil {
		return
	}
	sw := o.sw.Sample(sys)
	if sw.Nphases() != o.hom.N {
		return chk.Err("homogenization %q: switching %q has %d phases but %d elastic phases are given", o.name, o.swName, sw.Nphases(), o.hom.N)
	}
	o.hvars = sw.Vars
	o.uvars = o.eps.Sample(sys).U
	o.key, err = ele.OutputKey[*ele.Homogenized](sys, o.name)
	return
}

// Compute computes the homogenized response
func (o *Homogenization) Compute(c *ele.Context) {
	r := o.key.Get(c)
	r.Sw = o.sw.Get(c)
	r.Eps = o.eps.Get(c)
	g := utl.Alloc(o.hom.Nint, 3)
	a := utl.Alloc(o.hom.Nint, 3)
	for m, id := range o.normals {
		copy(g[m], c.G[id])
		if o.jumps != nil {
			for l, jd := range o.jumps[m] {
				a[m][l] = c.U[jd]
			}
		}
	}
	o.hom.Calc(r.State, r.Eps.V, r.Sw.H, g, a)
}
