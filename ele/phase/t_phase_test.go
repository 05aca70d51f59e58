// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/souravmat-git/gibbs-sub001/ele"
	_ "github.com/souravmat-git/gibbs-sub001/ele/material"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// prm returns a parameter
func prm(name string, value float64) *dbf.P { return &dbf.P{N: name, V: value} }

// threePhases returns a grand-potential system with three phases
func threePhases(tst *testing.T) *ele.System {
	etas := map[string][]string{"phases": {"eta1", "eta2", "eta3"}}
	mu := map[string][]string{"mu": {"mu"}}
	return ele.NewTestSystem(tst, 2, []string{"eta1", "eta2", "eta3", "mu", "lambda"},
		&ele.Desc{Type: "switching", Name: "h", Model: "normsquare", Vars: etas},
		&ele.Desc{Type: "barrier", Name: "g", Model: "multiwell", Vars: etas, Prms: dbf.Params{prm("gamma", 1.5)}},
		&ele.Desc{Type: "dual", Name: "a", Model: "parabolic", Vars: mu, Prms: dbf.Params{prm("A", 2), prm("xe", 0.1)}},
		&ele.Desc{Type: "dual", Name: "b", Model: "parabolic", Vars: mu, Prms: dbf.Params{prm("A", 2), prm("xe", 0.9)}},
		&ele.Desc{Type: "dual", Name: "c", Model: "parabolic", Vars: mu, Prms: dbf.Params{prm("A", 5), prm("xe", 0.5), prm("k", 0.1)}},
	)
}

func Test_drivforce01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drivforce01. grand-potential driving force with three phases")

	sys := threePhases(tst)
	for _, v := range []string{"eta1", "eta2", "eta3"} {
		k := ele.NewTestKernel(tst, sys, &ele.Desc{Type: "driving-force", Var: v,
			Props: map[string][]string{"energies": {"a:omega", "b:omega", "c:omega"}, "switching": {"h"}},
			Prms:  dbf.Params{prm("L", 2)},
		})
		c := sys.NewContext()
		ele.SetTestState(c, 0.7, 0.4, 0.2, 0.3, 0.05)
		ele.CheckKernel(tst, "drivforce01 "+v, sys, k, c, 1e-6, 1e-6, chk.Verbose)
	}
}

func Test_drivforce02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drivforce02. KKS driving force with two phases")

	sys := ele.NewTestSystem(tst, 1, []string{"phi", "xa", "xb"},
		&ele.Desc{Type: "switching", Name: "h", Model: "smoothstep", Vars: map[string][]string{"phases": {"phi"}}},
		&ele.Desc{Type: "chemistry", Name: "alpha", Model: "parabolic", Vars: map[string][]string{"x": {"xa"}}, Prms: dbf.Params{prm("A", 2), prm("xe", 0.1)}},
		&ele.Desc{Type: "chemistry", Name: "beta", Model: "redlich-kister", Vars: map[string][]string{"x": {"xb"}},
			Prms: dbf.Params{prm("GA", 1000), prm("GB", -500), prm("L0", 8000)}},
	)
	k := ele.NewTestKernel(tst, sys, &ele.Desc{Type: "driving-force", Var: "phi",
		Props: map[string][]string{"energies": {"alpha:omega", "beta:omega"}, "switching": {"h"}},
	})
	chk.Ints(tst, "coupled", k.Coupled(), []int{1, 2})
	c := sys.NewContext()
	ele.SetTestState(c, 0.35, 0.2, 0.7)
	sys.Eval(c)

	// R = ψ h'(φ) (ω_β - ω_α)
	φ := 0.35
	dh := 30 * φ * φ * (1 - φ) * (1 - φ)
	wa := c.Store.Get("alpha:omega").(*ele.Scalar).V
	wb := c.Store.Get("beta:omega").(*ele.Scalar).V
	chk.Float64(tst, "R", 1e-14, k.Residual(c), c.Test.S*dh*(wb-wa))

	ele.CheckKernel(tst, "drivforce02", sys, k, c, 1e-6, 1e-6, chk.Verbose)
}

func Test_barrier01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("barrier01. barrier, gradient and lagrange terms")

	sys := threePhases(tst)
	descs := []*ele.Desc{
		{Type: "barrier", Var: "eta2", Props: map[string][]string{"barrier": {"g"}}, Prms: dbf.Params{prm("L", 2), prm("w", 0.5)}},
		{Type: "gradient", Var: "eta1", Prms: dbf.Params{prm("L", 2), prm("kappa", 0.3)}},
		{Type: "lagrange", Var: "eta3", Vars: map[string][]string{"lambda": {"lambda"}}, Prms: dbf.Params{prm("L", 2)}},
	}
	for _, d := range descs {
		k := ele.NewTestKernel(tst, sys, d)
		c := sys.NewContext()
		ele.SetTestState(c, 0.7, 0.4, 0.2, 0.3, 0.05)
		ele.CheckKernel(tst, "barrier01 "+d.Type, sys, k, c, 1e-6, 1e-6, chk.Verbose)
	}
}

// elastic returns an elastic two-phase system
func elastic(tst *testing.T, jumps []string) *ele.System {
	names := append([]string{"ux", "uy", "phi"}, jumps...)
	hom := &ele.Desc{Type: "homogenization", Name: "hom", Model: "rank-one",
		Props: map[string][]string{"switching": {"h"}, "strain": {"eps"}},
		Vars:  map[string][]string{"normals": {"phi"}},
		Sub: []*ele.Desc{
			{Model: "isotropic", Prms: dbf.Params{prm("lambda", 1), prm("mu", 1)}},
			{Model: "cubic", Prms: dbf.Params{prm("C11", 5), prm("C12", 2), prm("C44", 1.5), prm("e0_11", 0.02), prm("e0_12", 0.01)}},
		},
	}
	if jumps != nil {
		hom.Vars["jumps"] = jumps
	}
	return ele.NewTestSystem(tst, 2, names,
		&ele.Desc{Type: "switching", Name: "h", Model: "smoothstep", Vars: map[string][]string{"phases": {"phi"}}},
		&ele.Desc{Type: "strain", Name: "eps", Vars: map[string][]string{"u": {"ux", "uy"}}},
		hom,
	)
}

func Test_elastic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elastic01. elastic driving force")

	for _, jumps := range [][]string{nil, {"a1", "a2", "a3"}} {
		sys := elastic(tst, jumps)
		k := ele.NewTestKernel(tst, sys, &ele.Desc{Type: "elastic-driving-force", Var: "phi",
			Props: map[string][]string{"homogenized": {"hom"}}, Prms: dbf.Params{prm("L", 3)},
		})
		c := sys.NewContext()
		ele.SetTestState(c, 0.1, -0.1, 0.45, 0.01, -0.005, 0.002)
		ele.CheckKernel(tst, io.Sf("elastic01 jumps=%v", jumps), sys, k, c, 1e-6, 1e-6, chk.Verbose)
	}
}

func Test_phaseErr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phaseErr01. configuration errors")

	sys := threePhases(tst)
	energies := map[string][]string{"energies": {"a:omega", "b:omega", "c:omega"}, "switching": {"h"}}
	for name, d := range map[string]*ele.Desc{
		"notphase": {Type: "driving-force", Var: "mu", Props: energies},
		"count":    {Type: "driving-force", Var: "eta1", Props: map[string][]string{"energies": {"a:omega", "b:omega"}, "switching": {"h"}}},
		"type":     {Type: "driving-force", Var: "eta1", Props: map[string][]string{"energies": {"a:x", "b:x", "c:x"}, "switching": {"h"}}},
		"param":    {Type: "driving-force", Var: "eta1", Props: energies, Prms: dbf.Params{prm("kappa", 1)}},
		"barrier":  {Type: "barrier", Var: "mu", Props: map[string][]string{"barrier": {"g"}}},
		"lambda":   {Type: "lagrange", Var: "eta1"},
		"homog":    {Type: "elastic-driving-force", Var: "eta1", Props: map[string][]string{"homogenized": {"h"}}},
		"kernel":   {Type: "cahn-hilliard", Var: "eta1"},
	} {
		_, err := ele.NewKernel(d, sys)
		if err == nil {
			tst.Errorf("%s: error should have happened\n", name)
			return
		}
		io.Pforan("%s: %v\n", name, err)
	}
}
