// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"
	"github.com/souravmat-git/gibbs-sub001/tests"
)

func Test_parab01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parab01. binary parabolic phases")

	alpha := newModel(tst, "parabolic", 1, dbf.Params{
		&dbf.P{N: "A", V: 2},
		&dbf.P{N: "xe", V: 0.1},
	})
	beta := newModel(tst, "parabolic", 1, dbf.Params{
		&dbf.P{N: "A_B", V: 2},
		&dbf.P{N: "xe_B", V: 0.9},
	})
	if alpha == nil || beta == nil {
		return
	}

	// energy and potential
	r := NewChem(1)
	alpha.Calc(r, []float64{0.5})
	chk.Float64(tst, "f_α(0.5)", 1e-15, r.F, 0.16)
	chk.Float64(tst, "μ_α(0.5)", 1e-15, r.Mu[0], 0.8)
	chk.Float64(tst, "B_α", 1e-15, r.B[0][0], 2)

	// dual at μ = 0
	g := NewGrand(1)
	NewDual(alpha).CalcDual(g, []float64{0})
	chk.Float64(tst, "x_α(0)", 1e-15, g.X[0], 0.1)
	NewDual(beta).CalcDual(g, []float64{0})
	chk.Float64(tst, "x_β(0)", 1e-15, g.X[0], 0.9)
	chk.Float64(tst, "χ_β", 1e-15, g.Chi[0][0], 0.5)

	// round trip and ω derivative
	for _, x := range utl.LinSpace(0.05, 0.95, 7) {
		beta.Calc(r, []float64{x})
		mu := r.Mu[0]
		NewDual(beta).CalcDual(g, []float64{mu})
		chk.Float64(tst, io.Sf("x(μ(%g))", x), 1e-14, g.X[0], x)
		chk.Float64(tst, "ω = f - μx", 1e-14, g.Omega, r.F-mu*x)
		tests.Deriv(tst, "dω/dμ = -x", 1e-9, -g.X[0], mu, 1e-3, chk.Verbose, func(m float64) float64 {
			tmp := NewGrand(1)
			NewDual(beta).CalcDual(tmp, []float64{m})
			return tmp.Omega
		})
	}
}

func Test_parab02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parab02. quaternary parabolic phase")

	mdl := newModel(tst, "parabolic", 3, dbf.Params{
		&dbf.P{N: "A_B", V: 3},
		&dbf.P{N: "A_C", V: 2},
		&dbf.P{N: "A_D", V: 4},
		&dbf.P{N: "A_BC", V: 0.5},
		&dbf.P{N: "A_BD", V: -0.3},
		&dbf.P{N: "A_CD", V: 0.2},
		&dbf.P{N: "xe_B", V: 0.2},
		&dbf.P{N: "xe_C", V: 0.1},
		&dbf.P{N: "xe_D", V: 0.05},
		&dbf.P{N: "k", V: -0.7},
	})
	if mdl == nil {
		return
	}
	x := []float64{0.3, 0.15, 0.12}
	r := NewChem(3)
	mdl.Calc(r, x)
	for i := 0; i < 3; i++ {
		tests.Deriv(tst, io.Sf("μ%d", i), 1e-9, r.Mu[i], x[i], 1e-3, chk.Verbose, func(v float64) float64 {
			tmp := NewChem(3)
			xx := append([]float64{}, x...)
			xx[i] = v
			mdl.Calc(tmp, xx)
			return tmp.F
		})
	}

	// round trip
	g := NewGrand(3)
	NewDual(mdl).CalcDual(g, r.Mu)
	chk.Array(tst, "x(μ(x))", 1e-14, g.X, x)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0.0
			for k := 0; k < 3; k++ {
				s += g.Chi[i][k] * r.B[k][j]
			}
			if i == j {
				chk.Float64(tst, "χ⋅B", 1e-14, s, 1)
			} else {
				chk.Float64(tst, "χ⋅B", 1e-14, s, 0)
			}
		}
	}

	// errors
	err := mdl.Init(2, dbf.Params{&dbf.P{N: "A_B", V: 1}})
	if err == nil {
		tst.Errorf("missing A_C should have been detected\n")
	}
	err = mdl.Init(2, dbf.Params{&dbf.P{N: "A_B", V: 1}, &dbf.P{N: "A_C", V: 1}, &dbf.P{N: "A_BC", V: 2}})
	if err == nil {
		tst.Errorf("non positive-definite curvature should have been detected\n")
	}
	err = mdl.Init(1, dbf.Params{&dbf.P{N: "A_B", V: 1}, &dbf.P{N: "A_C", V: 1}})
	if err == nil {
		tst.Errorf("unknown parameter should have been detected\n")
	}
}

func Test_rk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rk01. Redlich-Kister binary solution")

	names := []string{"L0", "L1", "L2"}
	values := []float64{-2000, 1500, 300}
	prms, err := InteractionParams(names, values)
	if err != nil {
		tst.Errorf("InteractionParams failed: %v\n", err)
		return
	}
	prms = append(prms, &dbf.P{N: "GA", V: -1000}, &dbf.P{N: "GB", V: 500}, &dbf.P{N: "T", V: 800})
	mdl := newModel(tst, "redlich-kister", 1, prms)
	if mdl == nil {
		return
	}
	rk := mdl.(*RedlichKister)
	chk.Array(tst, "L", 1e-17, rk.L, values)

	// derivatives
	r := NewChem(1)
	tmp := NewChem(1)
	for _, x := range []float64{0.05, 0.2, 0.5, 0.73, 0.95} {
		mdl.Calc(r, []float64{x})
		f := func(v float64) *Chem { mdl.Calc(tmp, []float64{v}); return tmp }
		tests.DerivRel(tst, io.Sf("μ(%g)", x), 1e-8, r.Mu[0], x, 1e-4, chk.Verbose, func(v float64) float64 { return f(v).F })
		tests.DerivRel(tst, io.Sf("B(%g)", x), 1e-8, r.B[0][0], x, 1e-4, chk.Verbose, func(v float64) float64 { return f(v).Mu[0] })
		tests.DerivRel(tst, io.Sf("dB(%g)", x), 1e-7, r.DB[0][0][0], x, 1e-4, chk.Verbose, func(v float64) float64 { return f(v).B[0][0] })
	}

	// value
	x := 0.3
	mdl.Calc(r, []float64{x})
	y := 1.0 - 2.0*x
	G := (1-x)*(-1000) + x*500 + 8.314*800*(x*math.Log(x)+(1-x)*math.Log(1-x)) + x*(1-x)*(-2000+1500*y+300*y*y)
	chk.Float64(tst, "f", 1e-12, r.F, G/(1e-5*1e9))

	// duality round trip by Newton's inversion
	dual := NewDual(mdl)
	g := NewGrand(1)
	for _, x := range []float64{0.02, 0.3, 0.6, 0.97} {
		mdl.Calc(r, []float64{x})
		dual.CalcDual(g, r.Mu)
		if g.Degenerate {
			tst.Errorf("inversion failed for x=%g\n", x)
			return
		}
		chk.Float64(tst, io.Sf("x(μ(%g))", x), 1e-10, g.X[0], x)
		chk.Float64(tst, "χ", 1e-10, g.Chi[0][0], 1.0/r.B[0][0])
		mu := r.Mu[0]
		tests.DerivRel(tst, "dχ/dμ", 1e-6, g.DChi[0][0][0], mu, 1e-3*math.Abs(mu)+1e-6, chk.Verbose, func(m float64) float64 {
			tg := NewGrand(1)
			dual.CalcDual(tg, []float64{m})
			return tg.Chi[0][0]
		})
	}

	// clamping: linear extension with zero curvature
	xmin := rk.Xmin
	bound := NewChem(1)
	mdl.Calc(bound, []float64{xmin})
	mdl.Calc(r, []float64{-0.1})
	if !r.OutOfDomain {
		tst.Errorf("out-of-domain composition should have been flagged\n")
	}
	chk.Float64(tst, "f(-0.1)", 1e-12, r.F, bound.F+bound.Mu[0]*(-0.1-xmin))
	chk.Float64(tst, "μ(-0.1)", 1e-15, r.Mu[0], bound.Mu[0])
	chk.Float64(tst, "B(-0.1)", 1e-17, r.B[0][0], 0)
	chk.Float64(tst, "dB(-0.1)", 1e-17, r.DB[0][0][0], 0)
	tests.DerivRel(tst, "μ(-0.1)", 1e-8, r.Mu[0], -0.1, 1e-4, chk.Verbose, func(v float64) float64 {
		mdl.Calc(tmp, []float64{v})
		return tmp.F
	})
	mdl.Calc(r, []float64{1.2})
	if !r.OutOfDomain || r.B[0][0] != 0 {
		tst.Errorf("composition above 1-xmin should have been clamped with B=0\n")
	}
	mdl.Calc(r, []float64{0.5})
	if r.OutOfDomain {
		tst.Errorf("flag should have been reset\n")
	}
}

func Test_rk03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rk03. inversion across a miscibility gap")

	// L0 > 2RT: μ(x) is not monotonic and Newton's method started inside the spinodal fails
	mdl := newModel(tst, "redlich-kister", 1, dbf.Params{
		&dbf.P{N: "GA", V: 1000}, &dbf.P{N: "GB", V: -500}, &dbf.P{N: "L0", V: 8000}, &dbf.P{N: "L1", V: -2000},
	})
	if mdl == nil {
		return
	}
	dual := NewDual(mdl)
	g := NewGrand(1)
	r := NewChem(1)
	rnd.Init(4321)
	mus := []float64{0.05, 0.05 + 4e-7}
	for i := 0; i < 30; i++ {
		mus = append(mus, rnd.Float64(-0.5, 0.5))
	}
	for _, mu := range mus {
		dual.CalcDual(g, []float64{mu})
		if g.Degenerate {
			tst.Errorf("inversion failed for μ=%g\n", mu)
			return
		}
		mdl.Calc(r, g.X)
		chk.Float64(tst, io.Sf("μ(x(%g))", mu), 1e-12, r.Mu[0], mu)
		if r.B[0][0] <= 0 {
			tst.Errorf("unstable root x=%g selected for μ=%g\n", g.X[0], mu)
			return
		}
		tests.DerivRel(tst, io.Sf("χ(%g)", mu), 1e-6, g.Chi[0][0], mu, 1e-6, chk.Verbose, func(m float64) float64 {
			tg := NewGrand(1)
			dual.CalcDual(tg, []float64{m})
			return tg.X[0]
		})
		tests.DerivRel(tst, io.Sf("dχ/dμ(%g)", mu), 1e-6, g.DChi[0][0][0], mu, 1e-6, chk.Verbose, func(m float64) float64 {
			tg := NewGrand(1)
			dual.CalcDual(tg, []float64{m})
			return tg.Chi[0][0]
		})
	}

	// potentials outside the range of μ(x)
	dual.CalcDual(g, []float64{1e3})
	if !g.Degenerate {
		tst.Errorf("potential outside the range of μ(x) should have been flagged\n")
	}
}

func Test_rk02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rk02. configuration errors")

	_, err := InteractionParams([]string{"L0", "L1"}, []float64{1})
	if err == nil {
		tst.Errorf("mismatched names and values should have been detected\n")
	}
	_, err = InteractionParams([]string{"Lx"}, []float64{1})
	if err == nil {
		tst.Errorf("invalid name should have been detected\n")
	}
	mdl, _ := New("redlich-kister")
	err = mdl.Init(1, dbf.Params{&dbf.P{N: "L0", V: 1}, &dbf.P{N: "L2", V: 1}})
	if err == nil {
		tst.Errorf("gap in interaction terms should have been detected\n")
	}
	err = mdl.Init(2, nil)
	if err == nil {
		tst.Errorf("ternary Redlich-Kister should have been rejected\n")
	}
	err = mdl.Init(1, dbf.Params{&dbf.P{N: "W", V: 1}})
	if err == nil {
		tst.Errorf("unknown parameter should have been detected\n")
	}
	_, err = New("ideal-gas")
	if err == nil {
		tst.Errorf("unknown model should have been detected\n")
	}
}

func newModel(tst *testing.T, name string, ncomp int, prms dbf.Params) Model {
	mdl, err := New(name)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	err = mdl.Init(ncomp, prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return nil
	}
	return mdl
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
