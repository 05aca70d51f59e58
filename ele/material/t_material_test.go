// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/souravmat-git/gibbs-sub001/ele"
	"github.com/souravmat-git/gibbs-sub001/mdl/micromech"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// params returns parameters from name/value pairs
func params(nv ...interface{}) (prms dbf.Params) {
	for i := 0; i < len(nv); i += 2 {
		prms = append(prms, &dbf.P{N: nv[i].(string), V: nv[i+1].(float64)})
	}
	return
}

func Test_chem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chem01. chemistry and dual providers")

	sys := ele.NewTestSystem(tst, 1, []string{"x", "mu"},
		&ele.Desc{Type: "chemistry", Name: "alpha", Model: "parabolic", Vars: map[string][]string{"x": {"x"}},
			Prms: params("A", 2.0, "xe", 0.1, "k", 0.01)},
		&ele.Desc{Type: "dual", Name: "beta", Model: "parabolic", Vars: map[string][]string{"mu": {"mu"}},
			Prms: params("A", 4.0, "xe", 0.9)},
	)
	c := sys.NewContext()
	ele.SetTestState(c, 0.5, 0.2)
	sys.Eval(c)

	f := c.Store.Get("alpha:f").(*ele.Scalar)
	omega := c.Store.Get("alpha:omega").(*ele.Scalar)
	mu := c.Store.Get("alpha:mu").(*ele.Vector)
	tf := c.Store.Get("alpha:tf").(*ele.Matrix)
	chk.Float64(tst, "f", 1e-14, f.V, 0.17)
	chk.Float64(tst, "μ", 1e-14, mu.V[0], 0.8)
	chk.Float64(tst, "ω", 1e-14, omega.V, 0.17-0.8*0.5)
	chk.Float64(tst, "B", 1e-15, tf.V[0][0], 2.0)
	chk.Ints(tst, "vars", f.Vars, []int{0})

	wb := c.Store.Get("beta:omega").(*ele.Scalar)
	xb := c.Store.Get("beta:x").(*ele.Vector)
	chi := c.Store.Get("beta:chi").(*ele.Matrix)
	chk.Float64(tst, "x_β", 1e-14, xb.V[0], 0.95)
	chk.Float64(tst, "χ_β", 1e-15, chi.V[0][0], 0.25)
	chk.Float64(tst, "ω_β", 1e-14, wb.V, -0.185)

	h := 1e-6
	c.Trial.S = 1
	ele.CheckDeriv(tst, "f", sys, c, 1e-8, h, chk.Verbose, func() float64 { return f.V }, func(j int) float64 { return f.D[j] })
	ele.CheckDeriv(tst, "ω", sys, c, 1e-8, h, chk.Verbose, func() float64 { return omega.V }, func(j int) float64 { return omega.D[j] })
	ele.CheckDeriv(tst, "μ", sys, c, 1e-8, h, chk.Verbose, func() float64 { return mu.V[0] }, func(j int) float64 { return mu.D[0][j] })
	ele.CheckDeriv(tst, "ω_β", sys, c, 1e-8, h, chk.Verbose, func() float64 { return wb.V }, func(j int) float64 { return wb.D[j] })
	ele.CheckDeriv(tst, "x_β", sys, c, 1e-8, h, chk.Verbose, func() float64 { return xb.V[0] }, func(j int) float64 { return xb.D[0][j] })
}

func Test_chem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chem02. redlich-kister derivatives and errors")

	sys := ele.NewTestSystem(tst, 2, []string{"x"},
		&ele.Desc{Type: "chemistry", Name: "alpha", Model: "redlich-kister", Vars: map[string][]string{"x": {"x"}},
			Prms: params("GA", 1000.0, "GB", -500.0, "L0", 8000.0, "L1", -2000.0)},
		&ele.Desc{Type: "dual", Name: "beta", Model: "redlich-kister", Vars: map[string][]string{"mu": {"x"}},
			Prms: params("GA", 1000.0, "GB", -500.0, "L0", 2000.0)},
	)
	c := sys.NewContext()
	ele.SetTestState(c, 0.3)
	c.Trial.S = 1
	sys.Eval(c)
	tf := c.Store.Get("alpha:tf").(*ele.Matrix)
	chi := c.Store.Get("beta:chi").(*ele.Matrix)
	h := 1e-6
	ele.CheckDeriv(tst, "B", sys, c, 1e-6, h, chk.Verbose, func() float64 { return tf.V[0][0] }, func(j int) float64 { return tf.D[0][0][j] })
	ele.CheckDeriv(tst, "χ", sys, c, 1e-6, h, chk.Verbose, func() float64 { return chi.V[0][0] }, func(j int) float64 { return chi.D[0][0][j] })

	// errors
	lay, _ := ele.NewLayout("x", "y")
	s, _ := ele.NewSystem(lay, 1)
	for name, d := range map[string]*ele.Desc{
		"model":  {Type: "chemistry", Name: "a", Model: "ideal", Vars: map[string][]string{"x": {"x"}}},
		"vars":   {Type: "chemistry", Name: "a", Model: "parabolic"},
		"var":    {Type: "dual", Name: "a", Model: "parabolic", Vars: map[string][]string{"mu": {"z"}}},
		"prm":    {Type: "chemistry", Name: "a", Model: "parabolic", Vars: map[string][]string{"x": {"x"}}, Prms: params("B", 1.0)},
		"noname": {Type: "variables", Vars: map[string][]string{"vars": {"x"}}},
		"type":   {Type: "entropy", Name: "a"},
	} {
		_, err := ele.NewProvider(d, s)
		if err == nil {
			tst.Errorf("%s: error should have happened\n", name)
			return
		}
		io.Pforan("%s: %v\n", name, err)
	}
}

func Test_chem03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chem03. tabulated and Taylor phases; cross-term barrier")

	dir := tst.TempDir()
	primal := filepath.Join(dir, "alpha.dat")
	grand := filepath.Join(dir, "gamma.dat")
	err := os.WriteFile(primal, []byte("x_B f mu_B tf_B\n0 0 0 2\n0.5 0.25 1 2\n1 1 2 2\n"), 0644)
	if err == nil {
		err = os.WriteFile(grand, []byte("mu_B omega x_B chi_B\n-1 -0.1 0.2 0.2\n0 0 0.4 0.2\n1 -0.9 0.6 0.2\n"), 0644)
	}
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	sys := ele.NewTestSystem(tst, 1, []string{"x", "mu", "eta1", "eta2"},
		&ele.Desc{Type: "chemistry", Name: "alpha", Model: "tabulated", Vars: map[string][]string{"x": {"x"}}, Extra: primal},
		&ele.Desc{Type: "dual", Name: "beta", Model: "taylor", Vars: map[string][]string{"mu": {"mu"}},
			Prms: params("xe", 0.3, "tf", 4000.0, "mue", 100.0, "omega_e", -50.0, "Ec", 1000.0)},
		&ele.Desc{Type: "dual", Name: "gamma", Model: "tabulated-dual", Vars: map[string][]string{"mu": {"mu"}}, Extra: grand},
		&ele.Desc{Type: "barrier", Name: "g", Model: "crossterm", Vars: map[string][]string{"phases": {"eta1", "eta2"}},
			Prms: params("W_01", 3.0)},
	)
	c := sys.NewContext()
	ele.SetTestState(c, 0.25, 0.3, 0.6, 0.3)
	c.Trial.S = 1
	sys.Eval(c)
	chk.Strings(tst, "fallbacks", c.Store.Fallbacks(), nil)

	mu := c.Store.Get("alpha:mu").(*ele.Vector)
	f := c.Store.Get("alpha:f").(*ele.Scalar)
	chk.Float64(tst, "f_α", 1e-15, f.V, 0.125)
	chk.Float64(tst, "μ_α", 1e-15, mu.V[0], 0.5)
	chk.Float64(tst, "∂μ_α", 1e-15, mu.D[0][0], 2)

	wb := c.Store.Get("beta:omega").(*ele.Scalar)
	xb := c.Store.Get("beta:x").(*ele.Vector)
	chk.Float64(tst, "x_β", 1e-14, xb.V[0], 0.35)
	chk.Float64(tst, "ω_β", 1e-14, wb.V, -0.05-0.3*0.2-0.5*0.2*0.2/4)

	xg := c.Store.Get("gamma:x").(*ele.Vector)
	chi := c.Store.Get("gamma:chi").(*ele.Matrix)
	chk.Float64(tst, "x_γ", 1e-15, xg.V[0], 0.46)
	chk.Float64(tst, "χ_γ", 1e-15, chi.V[0][0], 0.2)

	bar := c.Store.Get("g").(*ele.Barrier)
	chk.Float64(tst, "g", 1e-15, bar.G, 3*0.36*0.09)

	h := 1e-6
	ele.CheckDeriv(tst, "μ_α", sys, c, 1e-8, h, chk.Verbose, func() float64 { return mu.V[0] }, func(j int) float64 { return mu.D[0][j] })
	ele.CheckDeriv(tst, "ω_β", sys, c, 1e-8, h, chk.Verbose, func() float64 { return wb.V }, func(j int) float64 { return wb.D[j] })
	ele.CheckDeriv(tst, "x_β", sys, c, 1e-8, h, chk.Verbose, func() float64 { return xb.V[0] }, func(j int) float64 { return xb.D[0][j] })
	ele.CheckDeriv(tst, "x_γ", sys, c, 1e-8, h, chk.Verbose, func() float64 { return xg.V[0] }, func(j int) float64 { return xg.D[0][j] })
	ele.CheckDeriv(tst, "g", sys, c, 1e-8, h, chk.Verbose, func() float64 { return bar.G }, func(j int) float64 { return bar.DG[j] })

	// outside the grand-potential table
	ele.SetTestState(c, 0.25, 1.5, 0.6, 0.3)
	sys.Eval(c)
	fallbacks := c.Store.Fallbacks()
	sort.Strings(fallbacks)
	chk.Strings(tst, "fallbacks", fallbacks, []string{"gamma:chi", "gamma:omega", "gamma:x"})

	// errors
	lay, _ := ele.NewLayout("x")
	s, _ := ele.NewSystem(lay, 1)
	for name, d := range map[string]*ele.Desc{
		"primal":  {Type: "chemistry", Name: "a", Model: "tabulated", Vars: map[string][]string{"x": {"x"}}},
		"grand":   {Type: "dual", Name: "a", Model: "tabulated-dual", Vars: map[string][]string{"mu": {"x"}}},
		"missing": {Type: "dual", Name: "a", Model: "tabulated-dual", Vars: map[string][]string{"mu": {"x"}}, Extra: filepath.Join(dir, "none.dat")},
		"axes":    {Type: "dual", Name: "a", Model: "tabulated-dual", Vars: map[string][]string{"mu": {"x"}}, Extra: primal},
		"prm":     {Type: "dual", Name: "a", Model: "tabulated-dual", Vars: map[string][]string{"mu": {"x"}}, Extra: grand, Prms: params("T", 1.0)},
	} {
		_, err := ele.NewProvider(d, s)
		if err == nil {
			tst.Errorf("%s: error should have happened\n", name)
			return
		}
		io.Pforan("%s: %v\n", name, err)
	}
}

func Test_fallback01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fallback01. clamped and failed computations are flagged")

	fn := filepath.Join(tst.TempDir(), "binary.dat")
	err := os.WriteFile(fn, []byte("x_B L_BB dL_BB_xB\n0 1 2\n0.5 2 2\n1 3 2\n"), 0644)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	sys := ele.NewTestSystem(tst, 1, []string{"x", "mu"},
		&ele.Desc{Type: "chemistry", Name: "alpha", Model: "redlich-kister", Vars: map[string][]string{"x": {"x"}},
			Prms: params("GA", 1000.0, "GB", -500.0, "L0", 2000.0)},
		&ele.Desc{Type: "dual", Name: "beta", Model: "redlich-kister", Vars: map[string][]string{"mu": {"mu"}},
			Prms: params("GA", 1000.0, "GB", -500.0, "L0", 2000.0)},
		&ele.Desc{Type: "mobility", Name: "L", Model: "tabulated", Vars: map[string][]string{"s": {"x"}}, Extra: fn},
	)
	c := sys.NewContext()
	names := []string{"alpha:f", "alpha:omega", "alpha:mu", "alpha:tf", "beta:omega", "beta:x", "beta:chi", "L"}

	// inside
	ele.SetTestState(c, 0.3, 0.01)
	sys.Eval(c)
	chk.Strings(tst, "fallbacks", c.Store.Fallbacks(), nil)

	// outside
	ele.SetTestState(c, 1.5, 1e3)
	sys.Eval(c)
	fallbacks := c.Store.Fallbacks()
	sort.Strings(fallbacks)
	sort.Strings(names)
	chk.Strings(tst, "fallbacks", fallbacks, names)
	tf := c.Store.Get("alpha:tf").(*ele.Matrix)
	chk.Float64(tst, "B", 1e-17, tf.V[0][0], 0)
	M := ele.NewIpsMap()
	M.SetProps(c.Store, 0, 1)
	for _, name := range names {
		chk.Float64(tst, name+":degenerate", 1e-17, M.Get(name+":degenerate", 0), 1)
	}
}

func Test_switching01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("switching01. switching, barrier and variables providers")

	sys := ele.NewTestSystem(tst, 2, []string{"eta1", "eta2", "eta3", "phi"},
		&ele.Desc{Type: "switching", Name: "h", Model: "normsquare", Vars: map[string][]string{"phases": {"eta1", "eta2", "eta3"}}},
		&ele.Desc{Type: "switching", Name: "h2", Model: "smoothstep", Vars: map[string][]string{"phases": {"phi"}}},
		&ele.Desc{Type: "barrier", Name: "g", Model: "multiwell", Vars: map[string][]string{"phases": {"eta1", "eta2", "eta3"}}},
		&ele.Desc{Type: "variables", Name: "etas", Vars: map[string][]string{"vars": {"eta1", "eta3"}}},
	)
	c := sys.NewContext()
	ele.SetTestState(c, 0.6, 0.3, 0.2, 0.7)
	c.Trial.S = 1
	sys.Eval(c)

	sw := c.Store.Get("h").(*ele.Switching)
	sum := 0.0
	for _, v := range sw.H {
		sum += v
	}
	chk.Float64(tst, "Σh", 1e-15, sum, 1)
	chk.Ints(tst, "vars", sw.Vars, []int{0, 1, 2})
	sw2 := c.Store.Get("h2").(*ele.Switching)
	chk.Int(tst, "nphases", sw2.Nphases(), 2)
	chk.Float64(tst, "h2₀+h2₁", 1e-15, sw2.H[0]+sw2.H[1], 1)

	h := 1e-6
	for k := 0; k < 3; k++ {
		ele.CheckDeriv(tst, io.Sf("h%d", k), sys, c, 1e-8, h, chk.Verbose, func() float64 { return sw.H[k] }, func(j int) float64 { return sw.DH[k][j] })
		for i := 0; i < 3; i++ {
			ele.CheckDeriv(tst, io.Sf("∂h%d/∂η%d", k, i), sys, c, 1e-7, h, chk.Verbose, func() float64 { return sw.DH[k][i] }, func(j int) float64 { return sw.D2H[k][i][j] })
		}
	}

	// gradients of weights
	g, dg := make([]float64, 3), make([]float64, 3)
	for k := 0; k < 3; k++ {
		for l := 0; l < 2; l++ {
			ele.CheckDeriv(tst, io.Sf("∇h%d[%d]", k, l), sys, c, 1e-7, h, chk.Verbose, func() float64 {
				sw.Grad(g, c, k)
				return g[l]
			}, func(j int) float64 {
				sw.GradDeriv(dg, c, k, j)
				return dg[l]
			})
		}
	}

	bar := c.Store.Get("g").(*ele.Barrier)
	ele.CheckDeriv(tst, "g", sys, c, 1e-8, h, chk.Verbose, func() float64 { return bar.G }, func(j int) float64 { return bar.DG[j] })

	etas := c.Store.Get("etas").(*ele.Vector)
	chk.Array(tst, "etas", 1e-15, etas.V, []float64{0.6, 0.2})
	chk.Deep2(tst, "∂etas", 1e-15, etas.D, [][]float64{{1, 0, 0, 0}, {0, 0, 1, 0}})
}

func Test_mobility01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mobility01. constant and tabulated mobilities")

	fn := filepath.Join(tst.TempDir(), "binary.dat")
	err := os.WriteFile(fn, []byte("x_B L_BB dL_BB_xB\n0 1 2\n0.5 2 2\n1 3 2\n"), 0644)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	sys := ele.NewTestSystem(tst, 1, []string{"s"},
		&ele.Desc{Type: "mobility", Name: "L1", Model: "constant", Vars: map[string][]string{"s": {"s"}}, Prms: params("L", 1.5)},
		&ele.Desc{Type: "mobility", Name: "L2", Model: "tabulated", Vars: map[string][]string{"s": {"s"}}, Extra: fn},
	)
	c := sys.NewContext()
	ele.SetTestState(c, 0.25)
	c.Trial.S = 1
	sys.Eval(c)

	L1 := c.Store.Get("L1").(*ele.Matrix)
	L2 := c.Store.Get("L2").(*ele.Matrix)
	chk.Float64(tst, "L1", 1e-15, L1.V[0][0], 1.5)
	chk.Float64(tst, "∂L1", 1e-15, L1.D[0][0][0], 0)
	chk.Float64(tst, "L2", 1e-15, L2.V[0][0], 1.5)
	chk.Float64(tst, "∂L2", 1e-15, L2.D[0][0][0], 2)

	// missing table
	lay, _ := ele.NewLayout("s")
	s, _ := ele.NewSystem(lay, 1)
	_, err = ele.NewProvider(&ele.Desc{Type: "mobility", Name: "L", Model: "tabulated", Vars: map[string][]string{"s": {"s"}}}, s)
	if err == nil {
		tst.Errorf("missing table: error should have happened\n")
		return
	}
	io.Pforan("%v\n", err)
}

// twoPhaseDescs returns the descriptions of providers for a two-phase elastic system
func twoPhaseDescs(jumps []string) []*ele.Desc {
	hom := &ele.Desc{Type: "homogenization", Name: "hom", Model: "rank-one",
		Props: map[string][]string{"switching": {"h"}, "strain": {"eps"}},
		Vars:  map[string][]string{"normals": {"phi"}},
		Sub: []*ele.Desc{
			{Model: "isotropic", Prms: params("lambda", 1.0, "mu", 1.0)},
			{Model: "isotropic", Prms: params("lambda", 2.0, "mu", 3.0, "e0_11", 0.01, "e0_22", 0.01)},
		},
	}
	if jumps != nil {
		hom.Vars["jumps"] = jumps
	}
	return []*ele.Desc{
		{Type: "switching", Name: "h", Model: "smoothstep", Vars: map[string][]string{"phases": {"phi"}}},
		{Type: "strain", Name: "eps", Vars: map[string][]string{"u": {"ux", "uy"}}},
		hom,
	}
}

func Test_strain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strain01. small strain")

	sys := ele.NewTestSystem(tst, 2, []string{"ux", "uy"},
		&ele.Desc{Type: "strain", Name: "eps", Vars: map[string][]string{"u": {"ux", "uy"}}})
	c := sys.NewContext()
	c.G[0][0], c.G[0][1] = 1, 2
	c.G[1][0], c.G[1][1] = 4, 3
	sys.Eval(c)
	eps := c.Store.Get("eps").(*ele.Strain)
	chk.Deep2(tst, "ε", 1e-15, eps.V, [][]float64{{1, 3, 0}, {3, 3, 0}, {0, 0, 0}})

	// derivatives along the trial function
	ele.SetTestState(c)
	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			ele.CheckDeriv(tst, io.Sf("ε%d%d", i, k), sys, c, 1e-9, 1e-6, chk.Verbose, func() float64 {
				return eps.V[i][k]
			}, func(j int) float64 {
				return eps.Deriv(func(a, b int) float64 {
					if a == i && b == k {
						return 1
					}
					return 0
				}, c, j)
			})
		}
	}

	// wrong number of displacements
	lay, _ := ele.NewLayout("ux")
	s, _ := ele.NewSystem(lay, 2)
	_, err := ele.NewProvider(&ele.Desc{Type: "strain", Name: "eps", Vars: map[string][]string{"u": {"ux"}}}, s)
	if err == nil {
		tst.Errorf("error should have happened\n")
		return
	}
	io.Pforan("%v\n", err)
}

func Test_homog01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("homog01. homogenization provider")

	sys := ele.NewTestSystem(tst, 2, []string{"ux", "uy", "phi"}, twoPhaseDescs(nil)...)
	c := sys.NewContext()
	ele.SetTestState(c, 0.1, -0.2, 0.4)
	sys.Eval(c)
	r := c.Store.Get("hom").(*ele.Homogenized)
	chk.Ints(tst, "depends", r.Depends(), []int{0, 1, 2})

	// compare with homogenizer
	e0 := &micromech.Isotropic{}
	e0.Init(params("lambda", 1.0, "mu", 1.0))
	e1 := &micromech.Isotropic{}
	e1.Init(params("lambda", 2.0, "mu", 3.0, "e0_11", 0.01, "e0_22", 0.01))
	hom, err := micromech.NewHomogenizer([]*micromech.Elastic{e0.GetElastic(), e1.GetElastic()}, "rank-one", false)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	s := hom.NewState()
	g := utl.Alloc(1, 3)
	copy(g[0], c.G[2])
	hom.Calc(s, r.Eps.V, r.Sw.H, g, utl.Alloc(1, 3))
	chk.Array(tst, "F", 1e-15, r.F, s.F)
	chk.Deep2(tst, "S", 1e-15, r.S, s.S)
	for m := 0; m < 3; m++ {
		chk.Float64(tst, io.Sf("T%d", m), 1e-10, r.T[0][m], 0)
	}

	// derivatives
	h := 1e-6
	for k := 0; k < 2; k++ {
		ele.CheckDeriv(tst, io.Sf("F%d", k), sys, c, 1e-6, h, chk.Verbose, func() float64 { return r.F[k] }, func(j int) float64 { return r.Deriv(r.DF[k], c, j) })
	}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			ele.CheckDeriv(tst, io.Sf("S%d%d", a, b), sys, c, 1e-6, h, chk.Verbose, func() float64 { return r.S[a][b] }, func(j int) float64 { return r.Deriv(r.DS[a][b], c, j) })
		}
	}
}

func Test_homog02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("homog02. homogenization with jump variables")

	sys := ele.NewTestSystem(tst, 2, []string{"ux", "uy", "phi", "a1", "a2", "a3"}, twoPhaseDescs([]string{"a1", "a2", "a3"})...)
	c := sys.NewContext()
	ele.SetTestState(c, 0.1, -0.2, 0.4, 0.01, -0.02, 0.005)
	sys.Eval(c)
	r := c.Store.Get("hom").(*ele.Homogenized)
	chk.Ints(tst, "depends", r.Depends(), []int{0, 1, 2, 3, 4, 5})
	chk.Array(tst, "a", 1e-15, r.A[0], []float64{0.01, -0.02, 0.005})

	h := 1e-6
	for l := 0; l < 3; l++ {
		ele.CheckDeriv(tst, io.Sf("T%d", l), sys, c, 1e-6, h, chk.Verbose, func() float64 { return r.T[0][l] }, func(j int) float64 { return r.Deriv(r.DT[0][l], c, j) })
	}
	ele.CheckDeriv(tst, "F1", sys, c, 1e-6, h, chk.Verbose, func() float64 { return r.F[1] }, func(j int) float64 { return r.Deriv(r.DF[1], c, j) })

	// errors
	for name, descs := range map[string][]*ele.Desc{
		"jumps": twoPhaseDescs([]string{"a1", "a2"}),
		"props": {{Type: "homogenization", Name: "hom", Model: "rank-one", Vars: map[string][]string{"normals": {"phi"}}}},
	} {
		lay, _ := ele.NewLayout("ux", "uy", "phi", "a1", "a2", "a3")
		s, _ := ele.NewSystem(lay, 2)
		var err error
		for _, d := range descs {
			if _, err = ele.NewProvider(d, s); err != nil {
				break
			}
		}
		if err == nil {
			tst.Errorf("%s: error should have happened\n", name)
			return
		}
		io.Pforan("%s: %v\n", name, err)
	}
}
