// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mass

import (
	"os"
	"path/filepath"
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

// binaryTable writes the table of L = 1 + 2x
func binaryTable(tst *testing.T) (fn string) {
	fn = filepath.Join(tst.TempDir(), "mobility.dat")
	err := os.WriteFile(fn, []byte("# L = 1 + 2x\nx_B L_BB dL_BB_xB\n0 1 2\n0.5 2 2\n1 3 2\n"), 0644)
	if err != nil {
		tst.Fatalf("%v\n", err)
	}
	return
}

func Test_potflux01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("potflux01. two-phase binary potential flux")

	sys := ele.NewTestSystem(tst, 2, []string{"mu", "x", "phi"},
		&ele.Desc{Type: "switching", Name: "h", Model: "smoothstep", Vars: map[string][]string{"phases": {"phi"}}},
		&ele.Desc{Type: "mobility", Name: "La", Model: "constant", Vars: map[string][]string{"s": {"x"}},
			Prms: dbf.Params{&dbf.P{N: "L", V: 1.5}}},
		&ele.Desc{Type: "mobility", Name: "Lb", Model: "tabulated", Vars: map[string][]string{"s": {"x"}}, Extra: binaryTable(tst)},
	)
	k := ele.NewTestKernel(tst, sys, &ele.Desc{Type: "potential-flux", Var: "mu",
		Vars:  map[string][]string{"mu": {"mu"}},
		Props: map[string][]string{"mobilities": {"La", "Lb"}, "switching": {"h"}},
	})
	chk.Int(tst, "var", k.Var(), 0)
	chk.Ints(tst, "coupled", k.Coupled(), []int{1, 2})

	c := sys.NewContext()
	ele.SetTestState(c, 0.2, 0.3, 0.6)
	sys.Eval(c)

	// R = ∇ψ⋅L̄∇μ
	x, h := 0.3, 0.6*0.6*0.6*(6*0.36-15*0.6+10)
	L := (1-h)*1.5 + h*(1+2*x)
	chk.Float64(tst, "R", 1e-14, k.Residual(c), L*c.GradTest(c.G[0]))

	ele.CheckKernel(tst, "potflux01", sys, k, c, 1e-6, 1e-6, chk.Verbose)
}

func Test_potflux02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("potflux02. single-phase ternary potential flux")

	sys := ele.NewTestSystem(tst, 3, []string{"muB", "muC"},
		&ele.Desc{Type: "mobility", Name: "L", Model: "constant", Vars: map[string][]string{"s": {"muB", "muC"}},
			Prms: dbf.Params{&dbf.P{N: "L_BB", V: 2}, &dbf.P{N: "L_CC", V: 3}, &dbf.P{N: "L_BC", V: -0.5}}},
	)
	for comp, v := range []string{"muB", "muC"} {
		k := ele.NewTestKernel(tst, sys, &ele.Desc{Type: "potential-flux", Var: v,
			Vars:  map[string][]string{"mu": {"muB", "muC"}},
			Props: map[string][]string{"mobilities": {"L"}},
			Prms:  dbf.Params{&dbf.P{N: "component", V: float64(comp)}},
		})
		c := sys.NewContext()
		ele.SetTestState(c, 0.1, -0.3)
		ele.CheckKernel(tst, io.Sf("potflux02 %s", v), sys, k, c, 1e-6, 1e-6, chk.Verbose)
	}
}

func Test_compflux01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compflux01. WBM composition flux")

	sys := ele.NewTestSystem(tst, 2, []string{"x", "phi"},
		&ele.Desc{Type: "switching", Name: "h", Model: "smoothstep", Vars: map[string][]string{"phases": {"phi"}}},
		&ele.Desc{Type: "chemistry", Name: "alpha", Model: "redlich-kister", Vars: map[string][]string{"x": {"x"}},
			Prms: dbf.Params{&dbf.P{N: "GA", V: 1000}, &dbf.P{N: "GB", V: -500}, &dbf.P{N: "L0", V: 8000}, &dbf.P{N: "L1", V: -2000}}},
		&ele.Desc{Type: "chemistry", Name: "beta", Model: "parabolic", Vars: map[string][]string{"x": {"x"}},
			Prms: dbf.Params{&dbf.P{N: "A", V: 3}, &dbf.P{N: "xe", V: 0.9}}},
		&ele.Desc{Type: "mobility", Name: "M", Model: "tabulated", Vars: map[string][]string{"s": {"x"}}, Extra: binaryTable(tst)},
	)
	k := ele.NewTestKernel(tst, sys, &ele.Desc{Type: "composition-flux", Var: "x",
		Vars: map[string][]string{"x": {"x"}},
		Props: map[string][]string{
			"mobilities": {"M"},
			"potentials": {"alpha:mu", "beta:mu"},
			"factors":    {"alpha:tf", "beta:tf"},
			"switching":  {"h"},
		},
	})
	chk.Ints(tst, "coupled", k.Coupled(), []int{1})
	c := sys.NewContext()
	ele.SetTestState(c, 0.3, 0.45)
	ele.CheckKernel(tst, "compflux01", sys, k, c, 1e-6, 1e-6, chk.Verbose)
}

func Test_massErr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("massErr01. configuration errors")

	sys := ele.NewTestSystem(tst, 2, []string{"muB", "muC", "phi"},
		&ele.Desc{Type: "switching", Name: "h", Model: "smoothstep", Vars: map[string][]string{"phases": {"phi"}}},
		&ele.Desc{Type: "mobility", Name: "L1", Model: "constant", Vars: map[string][]string{"s": {"muB"}},
			Prms: dbf.Params{&dbf.P{N: "L", V: 1}}},
		&ele.Desc{Type: "mobility", Name: "L2", Model: "constant", Vars: map[string][]string{"s": {"muB", "muC"}},
			Prms: dbf.Params{&dbf.P{N: "L_BB", V: 1}, &dbf.P{N: "L_CC", V: 1}}},
	)
	mu := map[string][]string{"mu": {"muB", "muC"}}
	for name, d := range map[string]*ele.Desc{
		"var":       {Type: "potential-flux", Var: "muD", Vars: mu, Props: map[string][]string{"mobilities": {"L2"}}},
		"size":      {Type: "potential-flux", Var: "muB", Vars: mu, Props: map[string][]string{"mobilities": {"L1"}}},
		"component": {Type: "potential-flux", Var: "muB", Vars: mu, Props: map[string][]string{"mobilities": {"L2"}}, Prms: dbf.Params{&dbf.P{N: "component", V: 2}}},
		"param":     {Type: "potential-flux", Var: "muB", Vars: mu, Props: map[string][]string{"mobilities": {"L2"}}, Prms: dbf.Params{&dbf.P{N: "L", V: 2}}},
		"missing":   {Type: "potential-flux", Var: "muB", Vars: mu, Props: map[string][]string{"mobilities": {"L3"}}},
		"type":      {Type: "potential-flux", Var: "muB", Vars: mu, Props: map[string][]string{"mobilities": {"h"}}},
		"switching": {Type: "potential-flux", Var: "muB", Vars: mu, Props: map[string][]string{"mobilities": {"L2", "L2", "L2"}, "switching": {"h"}}},
		"nosw":      {Type: "potential-flux", Var: "muB", Vars: mu, Props: map[string][]string{"mobilities": {"L2", "L2"}}},
		"wbm":       {Type: "composition-flux", Var: "muB", Vars: map[string][]string{"x": {"muB", "muC"}}, Props: map[string][]string{"mobilities": {"L2"}, "potentials": {"L2"}, "factors": {"L2"}}},
	} {
		_, err := ele.NewKernel(d, sys)
		if err == nil {
			tst.Errorf("%s: error should have happened\n", name)
			return
		}
		io.Pforan("%s: %v\n", name, err)
	}
}
