// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the assembly of phase-field systems from model files and a 1D
// implicit solver
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/souravmat-git/gibbs-sub001/ele"
	"github.com/souravmat-git/gibbs-sub001/ele/solid"
	"github.com/souravmat-git/gibbs-sub001/inp"

	// kernels and providers
	_ "github.com/souravmat-git/gibbs-sub001/ele/constraint"
	_ "github.com/souravmat-git/gibbs-sub001/ele/jump"
	_ "github.com/souravmat-git/gibbs-sub001/ele/mass"
	_ "github.com/souravmat-git/gibbs-sub001/ele/material"
	_ "github.com/souravmat-git/gibbs-sub001/ele/phase"
	_ "github.com/souravmat-git/gibbs-sub001/ele/transient"
)

// NewSystem allocates the system of a model: providers are bound and sorted; then kernels
// are allocated
func NewSystem(mdl *inp.Model, verbose bool) (sys *ele.System, err error) {

	// variables
	lay, err := ele.NewLayout(mdl.Variables...)
	if err != nil {
		return
	}
	sys, err = ele.NewSystem(lay, mdl.Ndim)
	if err != nil {
		return
	}
	sys.Verbose = verbose

	// providers
	for _, d := range mdl.Providers {
		p, err := ele.NewProvider(d, sys)
		if err != nil {
			return nil, err
		}
		if err = sys.AddProvider(p); err != nil {
			return nil, err
		}
	}
	if err = sys.Setup(); err != nil {
		return nil, err
	}

	// kernels
	for i, d := range mdl.Kernels {
		k, err := ele.NewKernel(d, sys)
		if err != nil {
			return nil, chk.Err("kernel %d:\n%v", i, err)
		}
		if err = sys.AddKernel(k); err != nil {
			return nil, err
		}
	}

	// message
	if verbose {
		io.Pf("kernels = %d\n", len(sys.Kernels))
		if unused := sys.Unused(); len(unused) > 0 {
			io.Pfred("properties not used by any kernel or provider = %v\n", unused)
		}
	}
	return
}

// Probe evaluates all properties and the point residuals (ψ = 1 and ∇ψ = 0) of all kernels
// @ the point of a model. Residuals are saved with keys "R<i>:<Go type>:<var>" and the
// overall stresses of homogenized properties with keys "<name>:sx", "<name>:sy", ...
func Probe(sys *ele.System, pt *inp.PointData) (M *ele.IpsMap, err error) {
	c := sys.NewContext()
	copy(c.X, pt.X)
	for name, u := range pt.U {
		id, err := sys.Lay.Id(name)
		if err != nil {
			return nil, err
		}
		c.U[id] = u
	}
	for name, g := range pt.G {
		id, err := sys.Lay.Id(name)
		if err != nil {
			return nil, err
		}
		copy(c.G[id], g)
	}
	sys.Eval(c)
	M = ele.NewIpsMap()
	M.SetProps(c.Store, 0, 1)
	keys := solid.StressKeys(sys.Ndim)
	for i, name := range c.Store.Names {
		if h, ok := c.Store.Vals[i].(*ele.Homogenized); ok {
			for k, σ := range solid.StressValues(h.S, sys.Ndim) {
				M.Set(name+":"+keys[k], 0, 1, σ)
			}
		}
	}
	for i, k := range sys.Kernels {
		M.Set(io.Sf("R%d:%T:%s", i, k, sys.Lay.Names[k.Var()]), 0, 1, k.Residual(c))
	}
	return
}
