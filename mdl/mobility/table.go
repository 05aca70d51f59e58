// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobility

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/souravmat-git/gibbs-sub001/mdl/grid"
)

// Table holds a mobility table sampled on a structured grid of compositions
//  The file is read by grid.ReadColumns. Columns: ncomp axes x_B[, x_C[, x_D]]; npair
//  coefficients (see Pairs); then, for each axis, the derivatives of the npair
//  coefficients w.r.t. that axis
type Table struct {
	*grid.Grid
	Ncomp int // number of axes
	Npair int // number of independent coefficients
}

// ncompFromCols returns the number of axes matching a number of columns
func ncompFromCols(ncol int) (ncomp int, ok bool) {
	for n := 1; n <= MaxComps; n++ {
		if n+n*(n+1)/2*(1+n) == ncol {
			return n, true
		}
	}
	return 0, false
}

// ReadTable reads a mobility table
func ReadTable(fn string) (o *Table, err error) {
	keys, T, err := grid.ReadColumns(fn)
	if err != nil {
		return nil, chk.Err("mobility: %v", err)
	}
	ncomp, ok := ncompFromCols(len(keys))
	if !ok {
		return nil, chk.Err("mobility table %q: header has %d columns; valid tables have 3, 11 or 27 columns", fn, len(keys))
	}
	for i := 0; i < ncomp; i++ {
		if keys[i] != "x_"+Components[i] {
			return nil, chk.Err("mobility table %q: column %d must be %q. %q is invalid", fn, i, "x_"+Components[i], keys[i])
		}
	}
	g, err := grid.New(fn, keys, T, ncomp)
	if err != nil {
		return nil, chk.Err("mobility: %v", err)
	}
	o = &Table{Grid: g, Ncomp: ncomp, Npair: ncomp * (ncomp + 1) / 2}
	if io.Verbose {
		io.Pf("mobility table %q: %d axes with %v nodes\n", fn, o.Ncomp, o.Shape())
	}
	return
}

// Tabulated implements a mobility matrix interpolated from a table
type Tabulated struct {
	Tab   *Table // table
	Exact bool   // differentiate the interpolant instead of interpolating derivative columns
}

// add model to factory
func init() {
	allocators["tabulated"] = func() Model { return new(Tabulated) }
}

// Load reads the table; it must be called before Init
func (o *Tabulated) Load(fn string) (err error) {
	o.Tab, err = ReadTable(fn)
	return
}

// Init initialises this structure
//  Parameters: exact (0 or 1)
func (o *Tabulated) Init(ncomp int, prms dbf.Params) (err error) {
	if o.Tab == nil {
		return chk.Err("tabulated mobility: table must be loaded before initialisation")
	}
	err = checkNcomp("tabulated", ncomp)
	if err != nil {
		return
	}
	if ncomp != o.Tab.Ncomp {
		return chk.Err("tabulated mobility: table %q has %d axes but %d solute(s) were requested", o.Tab.Fn, o.Tab.Ncomp, ncomp)
	}
	o.Exact = false
	for _, p := range prms {
		switch p.N {
		case "exact":
			o.Exact = p.V > 0
		default:
			return chk.Err("tabulated mobility: parameter %q is not available", p.N)
		}
	}
	return
}

// Ncomp returns the number of independent solutes
func (o Tabulated) Ncomp() int { return o.Tab.Ncomp }

// Calc computes L and ∂L/∂s
func (o Tabulated) Calc(r *Result, s []float64) {
	t := o.Tab
	c := t.NewCell()
	t.Locate(c, s)
	r.Clamped = c.Clamped
	I, J := Pairs(t.Ncomp)
	var dv []float64
	if o.Exact {
		dv = make([]float64, t.Ncomp)
	}
	for p := range I {
		i, j := I[p], J[p]
		v := t.Interp(c, p, dv)
		r.L[i][j], r.L[j][i] = v, v
		for k := 0; k < t.Ncomp; k++ {
			var d float64
			if o.Exact {
				d = dv[k]
			} else if !c.Out[k] {
				d = t.Interp(c, t.Npair*(1+k)+p, nil)
			}
			r.DL[i][j][k], r.DL[j][i][k] = d, d
		}
	}
}
