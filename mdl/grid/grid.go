// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements tables of values sampled on structured grids and their
// multilinear interpolation
package grid

import (
	"math"
	"os"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Grid holds columns of values sampled at the nodes of a structured grid
//  The first Naxes columns hold the coordinates of the nodes; the remaining columns hold
//  the values. Rows may appear in any order but must cover every node exactly once
type Grid struct {
	Fn     string      // file name
	Naxes  int         // number of axes
	Header []string    // column names
	Axes   [][]float64 // [naxes][nnodes_on_axis] sorted unique node coordinates
	Data   [][]float64 // [ncol-naxes][nnodes] values at nodes; node index: see node
}

// ReadColumns reads a table with a header row using io.ReadTable. Missing files, rows
// with a wrong number of columns and repeated column names are returned as errors
//  Format: a header row with column names followed by rows of numbers separated by
//  spaces or tabs; lines starting with "# " are comments
func ReadColumns(fn string) (keys []string, T map[string][]float64, err error) {
	if _, err = os.Stat(os.ExpandEnv(fn)); err != nil {
		return nil, nil, chk.Err("cannot read table %q:\n%v", fn, err)
	}
	defer func() {
		if r := recover(); r != nil {
			keys, T, err = nil, nil, chk.Err("cannot read table %q:\n%v", fn, r)
		}
	}()
	keys, T = io.ReadTable(fn)
	if len(keys) == 0 {
		return nil, nil, chk.Err("table %q: header is missing", fn)
	}
	if len(T) != len(keys) {
		return nil, nil, chk.Err("table %q: column names %v must be unique", fn, keys)
	}
	for _, key := range keys {
		if len(T[key]) != len(T[keys[0]]) {
			return nil, nil, chk.Err("table %q: column %q has %d rows but column %q has %d", fn, key, len(T[key]), keys[0], len(T[keys[0]]))
		}
	}
	return
}

// Read reads a table and places its rows on a grid with naxes axes
func Read(fn string, naxes int) (o *Grid, err error) {
	keys, T, err := ReadColumns(fn)
	if err != nil {
		return
	}
	return New(fn, keys, T, naxes)
}

// New places the rows of columns T on a grid whose axes are the first naxes columns
func New(fn string, keys []string, T map[string][]float64, naxes int) (o *Grid, err error) {

	// check
	if naxes < 1 || naxes >= len(keys) {
		return nil, chk.Err("table %q: %d columns cannot hold %d axes and some values", fn, len(keys), naxes)
	}
	o = &Grid{Fn: fn, Naxes: naxes, Header: keys}
	nrows := len(T[keys[0]])

	// axes: sort and remove duplicates
	o.Axes = make([][]float64, naxes)
	nnodes := 1
	for a := 0; a < naxes; a++ {
		vals := append([]float64{}, T[keys[a]]...)
		sort.Float64s(vals)
		for i, v := range vals {
			if i == 0 || v != vals[i-1] {
				o.Axes[a] = append(o.Axes[a], v)
			}
		}
		nnodes *= len(o.Axes[a])
	}
	if nrows == 0 || nrows != nnodes {
		return nil, chk.Err("table %q: number of rows (%d) must be equal to the number of grid nodes (%d)", fn, nrows, nnodes)
	}

	// place rows by axis lookup
	ndat := len(keys) - naxes
	o.Data = make([][]float64, ndat)
	for c := 0; c < ndat; c++ {
		o.Data[c] = make([]float64, nnodes)
	}
	filled := make([]bool, nnodes)
	idx := make([]int, naxes)
	at := make([]float64, naxes)
	for r := 0; r < nrows; r++ {
		for a := 0; a < naxes; a++ {
			at[a] = T[keys[a]][r]
			idx[a] = sort.SearchFloat64s(o.Axes[a], at[a])
		}
		n := o.node(idx)
		if filled[n] {
			return nil, chk.Err("table %q: node %v is given more than once", fn, at)
		}
		filled[n] = true
		for c := 0; c < ndat; c++ {
			o.Data[c][n] = T[keys[naxes+c]][r]
		}
	}
	return
}

// Col returns the index in Data of the column named key
func (o Grid) Col(key string) (col int, err error) {
	for i := o.Naxes; i < len(o.Header); i++ {
		if o.Header[i] == key {
			return i - o.Naxes, nil
		}
	}
	return -1, chk.Err("table %q: column %q is missing", o.Fn, key)
}

// Shape returns the number of nodes along each axis
func (o Grid) Shape() (s []int) {
	for _, axis := range o.Axes {
		s = append(s, len(axis))
	}
	return
}

// node returns the index of the node with axis indices idx; the last axis runs fastest
func (o Grid) node(idx []int) (n int) {
	for a := 0; a < o.Naxes; a++ {
		n = n*len(o.Axes[a]) + idx[a]
	}
	return
}

// Cell holds the location of a sample in the grid
type Cell struct {
	I       []int     // lower node index along each axis
	T       []float64 // local coordinate in [0,1] along each axis
	Inv     []float64 // 1/Δ along each axis; zero along clamped or single-node axes
	Out     []bool    // sample was outside the grid along each axis
	Clamped bool      // sample was outside the grid along some axis
	corner  []int     // scratchpad: node indices of a corner
}

// NewCell allocates a new structure
func (o Grid) NewCell() *Cell {
	return &Cell{
		I:      make([]int, o.Naxes),
		T:      make([]float64, o.Naxes),
		Inv:    make([]float64, o.Naxes),
		Out:    make([]bool, o.Naxes),
		corner: make([]int, o.Naxes),
	}
}

// Locate finds the cell containing s; coordinates outside the grid are clamped
func (o Grid) Locate(c *Cell, s []float64) {
	c.Clamped = false
	for a := 0; a < o.Naxes; a++ {
		g := o.Axes[a]
		n := len(g)
		c.T[a], c.Inv[a], c.Out[a] = 0, 0, false
		if n == 1 {
			c.I[a] = 0
			if s[a] != g[0] {
				c.Out[a], c.Clamped = true, true
			}
			continue
		}
		x := s[a]
		if x < g[0] || x > g[n-1] {
			c.Out[a], c.Clamped = true, true
			x = math.Min(math.Max(x, g[0]), g[n-1])
		} else {
			c.Inv[a] = 1
		}
		i := sort.SearchFloat64s(g, x) - 1
		if i < 0 {
			i = 0
		}
		if i > n-2 {
			i = n - 2
		}
		Δ := g[i+1] - g[i]
		c.I[a] = i
		c.T[a] = (x - g[i]) / Δ
		c.Inv[a] /= Δ
	}
}

// Interp computes the multilinear interpolant of column col and, if dv != nil, its
// derivatives w.r.t. each axis
func (o Grid) Interp(c *Cell, col int, dv []float64) (v float64) {
	for a := range dv {
		dv[a] = 0
	}
	ncorners := 1 << uint(o.Naxes)
	for m := 0; m < ncorners; m++ {
		w := 1.0
		for a := 0; a < o.Naxes; a++ {
			up := m&(1<<uint(a)) != 0
			c.corner[a] = c.I[a]
			if up {
				c.corner[a]++
				w *= c.T[a]
			} else {
				w *= 1.0 - c.T[a]
			}
		}
		if w == 0 && dv == nil {
			continue
		}
		for a := 0; a < o.Naxes; a++ {
			if c.corner[a] >= len(o.Axes[a]) {
				c.corner[a] = len(o.Axes[a]) - 1
			}
		}
		val := o.Data[col][o.node(c.corner)]
		v += w * val
		for a := range dv {
			if c.Inv[a] == 0 {
				continue
			}
			wa := c.Inv[a]
			if m&(1<<uint(a)) == 0 {
				wa = -wa
			}
			for b := 0; b < o.Naxes; b++ {
				if b == a {
					continue
				}
				if m&(1<<uint(b)) != 0 {
					wa *= c.T[b]
				} else {
					wa *= 1.0 - c.T[b]
				}
			}
			dv[a] += wa * val
		}
	}
	return
}
