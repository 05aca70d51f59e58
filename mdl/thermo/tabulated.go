// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/souravmat-git/gibbs-sub001/mdl/grid"
)

// Tabulated implements a free energy interpolated from a table sampled on a structured
// grid of compositions. Values are divided by the molar volume Vm and the characteristic
// energy Ec
//  Columns: axes x_B[, x_C[, x_D]]; f; mu_B[, mu_C[, mu_D]]; tf_B[, tf_C[, tf_D]] and the
//  off-diagonal tf_BC, tf_BD, tf_CD; any order after the axes.
//  If a column mu_A is present, the mu columns are chemical potentials and diffusion
//  potentials are computed as μ_i - μ_A.
//  Outside the grid, f is extended linearly with the diffusion potentials at the boundary
type Tabulated struct {
	Tab   *grid.Grid // table
	Scale float64    // 1 / (Vm Ec)
	f     int        // column of f
	mu    []int      // columns of μ_i
	muA   int        // column of μ_A; -1 if absent
	tf    [][]int    // columns of B_ij
}

// add model to factory
func init() {
	allocators["tabulated"] = func() Model { return new(Tabulated) }
}

// Load reads the table; it must be called before Init
func (o *Tabulated) Load(fn string) (err error) {
	o.Tab, err = readGrid(fn, "x_")
	return
}

// Init initialises this structure
//  Parameters: Vm (default 1), Ec (default 1)
func (o *Tabulated) Init(ncomp int, prms dbf.Params) (err error) {

	// check
	if o.Tab == nil {
		return chk.Err("tabulated model: table must be loaded before initialisation")
	}
	if err = checkNcomp("tabulated", ncomp, MaxComps); err != nil {
		return
	}
	if ncomp != o.Tab.Naxes {
		return chk.Err("tabulated model: table %q has %d axes but %d solute(s) were requested", o.Tab.Fn, o.Tab.Naxes, ncomp)
	}

	// parameters
	vm, ec, err := scales("tabulated", prms)
	if err != nil {
		return
	}
	o.Scale = 1.0 / (vm * ec)

	// columns
	o.mu = make([]int, ncomp)
	o.tf = make([][]int, ncomp)
	if o.f, err = o.Tab.Col("f"); err != nil {
		return
	}
	o.muA = -1
	if c, e := o.Tab.Col("mu_A"); e == nil {
		o.muA = c
	}
	for i := 0; i < ncomp; i++ {
		o.tf[i] = make([]int, ncomp)
		if o.mu[i], err = o.Tab.Col("mu_" + Components[i]); err != nil {
			return
		}
	}
	for i := 0; i < ncomp; i++ {
		for j := i; j < ncomp; j++ {
			key := "tf_" + Components[i]
			if j > i {
				key += Components[j]
			}
			if o.tf[i][j], err = o.Tab.Col(key); err != nil {
				return
			}
			o.tf[j][i] = o.tf[i][j]
		}
	}
	return
}

// Ncomp returns the number of independent solutes
func (o Tabulated) Ncomp() int { return o.Tab.Naxes }

// Bounds returns the interval shared by all axes of the table
func (o Tabulated) Bounds() (lo, hi float64) {
	lo, hi = math.Inf(-1), math.Inf(1)
	for _, axis := range o.Tab.Axes {
		lo = math.Max(lo, axis[0])
		hi = math.Min(hi, axis[len(axis)-1])
	}
	return
}

// Calc computes f, μ, B and ∂B/∂x
func (o Tabulated) Calc(r *Chem, x []float64) {
	t := o.Tab
	n := t.Naxes
	c := t.NewCell()
	t.Locate(c, x)
	r.OutOfDomain = c.Clamped
	r.F = t.Interp(c, o.f, nil) * o.Scale
	muA := 0.0
	if o.muA >= 0 {
		muA = t.Interp(c, o.muA, nil)
	}
	for i := 0; i < n; i++ {
		r.Mu[i] = (t.Interp(c, o.mu[i], nil) - muA) * o.Scale
	}
	dv := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := t.Interp(c, o.tf[i][j], dv) * o.Scale
			r.B[i][j], r.B[j][i] = v, v
			for k := 0; k < n; k++ {
				r.DB[i][j][k], r.DB[j][i][k] = dv[k]*o.Scale, dv[k]*o.Scale
			}
		}
	}

	// linear extension
	for a := 0; a < n; a++ {
		if c.Out[a] {
			axis := t.Axes[a]
			xc := math.Min(math.Max(x[a], axis[0]), axis[len(axis)-1])
			r.F += r.Mu[a] * (x[a] - xc)
		}
	}
}

// TabulatedDual implements a grand potential interpolated from a table sampled on a
// structured grid of diffusion potentials
//  Columns: axes mu_B[, mu_C[, mu_D]]; omega; x_B[, x_C[, x_D]]; chi_B[, chi_C[, chi_D]]
//  and the off-diagonal chi_BC, chi_BD, chi_CD; any order after the axes. ω is divided by
//  the molar volume Vm and the characteristic energy Ec; x and χ are not scaled.
//  Outside the grid, ω is extended linearly with the compositions at the boundary and
//  the result is degenerate
type TabulatedDual struct {
	Tab   *grid.Grid // table
	Scale float64    // 1 / (Vm Ec)
	omega int        // column of ω
	x     []int      // columns of x_i
	chi   [][]int    // columns of χ_ij
}

// add model to factory
func init() {
	conjugates["tabulated-dual"] = func() Conjugate { return new(TabulatedDual) }
}

// Load reads the table; it must be called before Init
func (o *TabulatedDual) Load(fn string) (err error) {
	o.Tab, err = readGrid(fn, "mu_")
	return
}

// Init initialises this structure
//  Parameters: Vm (default 1), Ec (default 1)
func (o *TabulatedDual) Init(ncomp int, prms dbf.Params) (err error) {
	if o.Tab == nil {
		return chk.Err("tabulated grand potential: table must be loaded before initialisation")
	}
	if err = checkNcomp("tabulated grand potential", ncomp, MaxComps); err != nil {
		return
	}
	if ncomp != o.Tab.Naxes {
		return chk.Err("tabulated grand potential: table %q has %d axes but %d solute(s) were requested", o.Tab.Fn, o.Tab.Naxes, ncomp)
	}
	vm, ec, err := scales("tabulated grand potential", prms)
	if err != nil {
		return
	}
	o.Scale = 1.0 / (vm * ec)
	if o.omega, err = o.Tab.Col("omega"); err != nil {
		return
	}
	o.x = make([]int, ncomp)
	o.chi = make([][]int, ncomp)
	for i := 0; i < ncomp; i++ {
		o.chi[i] = make([]int, ncomp)
		if o.x[i], err = o.Tab.Col("x_" + Components[i]); err != nil {
			return
		}
	}
	for i := 0; i < ncomp; i++ {
		for j := i; j < ncomp; j++ {
			key := "chi_" + Components[i]
			if j > i {
				key += Components[j]
			}
			if o.chi[i][j], err = o.Tab.Col(key); err != nil {
				return
			}
			o.chi[j][i] = o.chi[i][j]
		}
	}
	return
}

// Ncomp returns the number of independent solutes
func (o TabulatedDual) Ncomp() int { return o.Tab.Naxes }

// CalcDual computes ω, x, χ and ∂χ/∂μ
func (o TabulatedDual) CalcDual(r *Grand, mu []float64) {
	t := o.Tab
	n := t.Naxes
	c := t.NewCell()
	t.Locate(c, mu)
	r.Degenerate = c.Clamped
	r.Omega = t.Interp(c, o.omega, nil) * o.Scale
	for i := 0; i < n; i++ {
		r.X[i] = t.Interp(c, o.x[i], nil)
	}
	dv := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := t.Interp(c, o.chi[i][j], dv)
			r.Chi[i][j], r.Chi[j][i] = v, v
			for k := 0; k < n; k++ {
				r.DChi[i][j][k], r.DChi[j][i][k] = dv[k], dv[k]
			}
		}
	}
	for a := 0; a < n; a++ {
		if c.Out[a] {
			axis := t.Axes[a]
			mc := math.Min(math.Max(mu[a], axis[0]), axis[len(axis)-1])
			r.Omega -= r.X[a] * (mu[a] - mc)
		}
	}
}

// readGrid reads a table whose axes are the leading columns named prefix+B, prefix+C, ...
func readGrid(fn, prefix string) (g *grid.Grid, err error) {
	keys, T, err := grid.ReadColumns(fn)
	if err != nil {
		return nil, chk.Err("thermo: %v", err)
	}
	naxes := 0
	for naxes < MaxComps && naxes < len(keys) && keys[naxes] == prefix+Components[naxes] {
		naxes++
	}
	if naxes == 0 {
		return nil, chk.Err("thermo table %q: first column must be %q. %q is invalid", fn, prefix+Components[0], keys[0])
	}
	g, err = grid.New(fn, keys, T, naxes)
	if err != nil {
		return nil, chk.Err("thermo: %v", err)
	}
	if io.Verbose {
		io.Pf("thermo table %q: %d axes with %v nodes\n", fn, naxes, g.Shape())
	}
	return
}

// scales returns the molar volume and the characteristic energy
func scales(model string, prms dbf.Params) (vm, ec float64, err error) {
	vm, ec = 1, 1
	for _, p := range prms {
		switch p.N {
		case "Vm":
			vm = p.V
		case "Ec":
			ec = p.V
		default:
			return 0, 0, chk.Err("%s model: parameter %q is not available", model, p.N)
		}
	}
	if vm <= 0 || ec <= 0 {
		return 0, 0, chk.Err("%s model: molar volume and characteristic energy must be positive. Vm=%g and Ec=%g are invalid", model, vm, ec)
	}
	return
}
