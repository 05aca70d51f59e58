// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/souravmat-git/gibbs-sub001/tests"
)

// CheckKernel compares the Jacobians of a kernel with central differences of its residual
// perturbing the value, gradient and rate of each variable along the trial function.
// Derivatives w.r.t. variables that are not coupled must be zero
//  c -- context with variables, test and trial functions already set
//  h -- step size
func CheckKernel(tst *testing.T, msg string, sys *System, k Kernel, c *Context, tol, h float64, verbose bool) {
	sys.Eval(c)
	if verbose {
		io.Pf("\n%s: R = %v\n", msg, k.Residual(c))
	}
	own := k.Jacobian(c)
	chk.Float64(tst, io.Sf("%s: Jacobian equals OffDiagJacobian(own)", msg), 1e-15, own, k.OffDiagJacobian(c, k.Var()))
	CheckDeriv(tst, msg+": R", sys, c, tol, h, verbose, func() float64 {
		return k.Residual(c)
	}, func(j int) float64 {
		switch {
		case j == k.Var():
			return k.Jacobian(c)
		case isCoupled(k, j):
			return k.OffDiagJacobian(c, j)
		}
		return 0
	})
}

// CheckDeriv compares the derivatives df(j) of a function f of the state with central
// differences perturbing the value, gradient and rate of each variable along the trial
// function; properties are evaluated before each call to f and df
func CheckDeriv(tst *testing.T, msg string, sys *System, c *Context, tol, h float64, verbose bool, f func() float64, df func(j int) float64) {
	defer sys.Eval(c)
	for j := 0; j < c.Nvars; j++ {
		sys.Eval(c)
		ana := df(j)
		num := tests.DerivCen5(0, h, func(ε float64) float64 {
			u, dot := c.U[j], c.Dot[j]
			g := []float64{c.G[j][0], c.G[j][1], c.G[j][2]}
			c.U[j] += ε * c.Trial.S
			c.Dot[j] += ε * c.DotDu * c.Trial.S
			for i := 0; i < c.Ndim; i++ {
				c.G[j][i] += ε * c.Trial.G[i]
			}
			sys.Eval(c)
			r := f()
			c.U[j], c.Dot[j] = u, dot
			copy(c.G[j], g)
			return r
		})
		chk.AnaNum(tst, io.Sf("%s: ∂/∂%s", msg, sys.Lay.Names[j]), tests.RelTol(tol, ana), ana, num, verbose)
	}
}

// NewTestSystem allocates a system with the given providers and calls Setup; errors stop
// the test
func NewTestSystem(tst *testing.T, ndim int, names []string, providers ...*Desc) (sys *System) {
	lay, err := NewLayout(names...)
	if err != nil {
		tst.Fatalf("%v\n", err)
	}
	sys, err = NewSystem(lay, ndim)
	if err != nil {
		tst.Fatalf("%v\n", err)
	}
	for _, d := range providers {
		p, err := NewProvider(d, sys)
		if err != nil {
			tst.Fatalf("%v\n", err)
		}
		if err = sys.AddProvider(p); err != nil {
			tst.Fatalf("%v\n", err)
		}
	}
	if err = sys.Setup(); err != nil {
		tst.Fatalf("%v\n", err)
	}
	return
}

// NewTestKernel allocates a kernel and adds it to a system; errors stop the test
func NewTestKernel(tst *testing.T, sys *System, d *Desc) (k Kernel) {
	k, err := NewKernel(d, sys)
	if err != nil {
		tst.Fatalf("%v\n", err)
	}
	if err = sys.AddKernel(k); err != nil {
		tst.Fatalf("%v\n", err)
	}
	return
}

// SetTestState sets the values, gradients and rates of all variables in a context from a
// smooth deterministic pattern around the given values; the trial function is set as well
func SetTestState(c *Context, vals ...float64) {
	for j := 0; j < c.Nvars; j++ {
		if j < len(vals) {
			c.U[j] = vals[j]
		}
		c.Dot[j] = 0.1 * float64(j+1)
		for i := 0; i < c.Ndim; i++ {
			c.G[j][i] = 0.3*float64(j+1) - 0.2*float64(i) + 0.05*float64(i*j)
		}
	}
	c.DotDu = 2.0
	c.Test.S, c.Trial.S = 0.7, 0.4
	for i := 0; i < c.Ndim; i++ {
		c.Test.G[i] = 0.5 - 0.3*float64(i)
		c.Trial.G[i] = -0.4 + 0.6*float64(i)
	}
}

// SetRandomState sets the value of variable j to a random number in [lo[j], hi[j]); the
// values of the remaining variables are unchanged. Gradients, rates, ∂(du/dt)/∂u and the test and trial
// functions are random as well. rnd.Init must be called beforehand
func SetRandomState(c *Context, lo, hi []float64) {
	vals := make([]float64, len(lo))
	for j := range lo {
		vals[j] = rnd.Float64(lo[j], hi[j])
	}
	SetTestState(c, vals...)
	for j := 0; j < c.Nvars; j++ {
		c.Dot[j] = rnd.Float64(-1, 1)
		for i := 0; i < c.Ndim; i++ {
			c.G[j][i] = rnd.Float64(-1, 1)
		}
	}
	c.DotDu = rnd.Float64(0.5, 5)
	c.Test.S, c.Trial.S = rnd.Float64(0.1, 1), rnd.Float64(0.1, 1)
	for i := 0; i < c.Ndim; i++ {
		c.Test.G[i] = rnd.Float64(-1, 1)
		c.Trial.G[i] = rnd.Float64(-1, 1)
	}
}

// isCoupled tells whether variable j is coupled to kernel k
func isCoupled(k Kernel, j int) bool {
	for _, id := range k.Coupled() {
		if id == j {
			return true
		}
	}
	return false
}

// CheckElement compares the local Jacobian of an element with central differences of its
// local residual
func CheckElement(tst *testing.T, msg string, e *Element, sol *Solution, tol, h float64, verbose bool) {
	e.Jacobian(sol)
	nvars := e.Ctx.Nvars
	n := e.Nnodes * nvars
	K := make([][]float64, n)
	for I := 0; I < n; I++ {
		K[I] = append([]float64{}, e.K[I]...)
	}
	for J := 0; J < n; J++ {
		eq := e.Eqs[J/nvars][J%nvars]
		res := make([][]float64, 4)
		for s, ε := range []float64{-2 * h, -h, h, 2 * h} {
			y, dydt := sol.Y[eq], 0.0
			sol.Y[eq] += ε
			if sol.Dydt != nil {
				dydt = sol.Dydt[eq]
				sol.Dydt[eq] += ε * sol.DotDu
			}
			e.Residual(sol)
			res[s] = append([]float64{}, e.Fb...)
			sol.Y[eq] = y
			if sol.Dydt != nil {
				sol.Dydt[eq] = dydt
			}
		}
		for I := 0; I < n; I++ {
			num := (res[0][I] - 8*res[1][I] + 8*res[2][I] - res[3][I]) / (12 * h)
			chk.AnaNum(tst, io.Sf("%s: K[%d][%d]", msg, I, J), tests.RelTol(tol, K[I][J]), K[I][J], num, verbose)
		}
	}
	e.Residual(sol)
}
