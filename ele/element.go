// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the property graph, the kernel contract and the element-level
// assembly of phase-field problems
package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Assembler defines global matrices receiving element contributions; e.g. *la.Triplet or
// *la.Equations (which drops rows of prescribed equations)
type Assembler interface {
	Put(I, J int, value float64)
}

// Element assembles all kernels of a system over the integration points of one cell
//  Local equations are ordered by node and then by variable: I = n⋅nvars + v
type Element struct {

	// basic data
	Id     int           // cell Id
	Sys    *System       // system
	Nnodes int           // number of nodes
	Eqs    [][]int       // [nnodes][nvars] global equation numbers
	Xip    [][]float64   // [nip][3] coordinates of integration points
	S      [][]float64   // [nip][nnodes] shape functions @ integration points
	G      [][][]float64 // [nip][nnodes][3] gradients of shape functions @ integration points
	W      []float64     // [nip] integration weights times det(J)

	// scratchpad
	Ctx       *Context    // context @ integration point
	Fb        []float64   // local residual
	K         [][]float64 // local Jacobian
	Nfallback int         // integration points with properties computed by a fallback in the last Residual
}

// NewElement returns a new element
//  xip -- [nip][3] coordinates of integration points; may be nil
func NewElement(id int, sys *System, eqs [][]int, xip, S [][]float64, G [][][]float64, W []float64) (o *Element, err error) {
	nip := len(W)
	if nip == 0 || len(S) != nip || len(G) != nip {
		return nil, chk.Err("element %d: S, G and W must have the same number (>0) of integration points", id)
	}
	nnodes := len(eqs)
	nvars := sys.Lay.Nvars()
	for n := 0; n < nnodes; n++ {
		if len(eqs[n]) != nvars {
			return nil, chk.Err("element %d: node %d must have %d equations", id, n, nvars)
		}
	}
	for p := 0; p < nip; p++ {
		if len(S[p]) != nnodes || len(G[p]) != nnodes {
			return nil, chk.Err("element %d: shape functions @ ip %d must have %d entries", id, p, nnodes)
		}
	}
	if xip == nil {
		xip = utl.Alloc(nip, 3)
	}
	o = &Element{Id: id, Sys: sys, Nnodes: nnodes, Eqs: eqs, Xip: xip, S: S, G: G, W: W}
	o.Ctx = sys.NewContext()
	n := nnodes * nvars
	o.Fb = make([]float64, n)
	o.K = utl.Alloc(n, n)
	return
}

// ipState sets the context @ integration point idx
func (o *Element) ipState(idx int, sol *Solution) {
	c := o.Ctx
	copy(c.X, o.Xip[idx])
	c.DotDu = sol.DotDu
	for v := 0; v < c.Nvars; v++ {
		c.U[v], c.Dot[v] = 0, 0
		c.G[v][0], c.G[v][1], c.G[v][2] = 0, 0, 0
		for n := 0; n < o.Nnodes; n++ {
			y := sol.Y[o.Eqs[n][v]]
			c.U[v] += o.S[idx][n] * y
			if sol.Dydt != nil {
				c.Dot[v] += o.S[idx][n] * sol.Dydt[o.Eqs[n][v]]
			}
			for i := 0; i < c.Ndim; i++ {
				c.G[v][i] += o.G[idx][n][i] * y
			}
		}
	}
	o.Sys.Eval(c)
}

// setShape sets a test or trial function from node n @ integration point idx
func (o *Element) setShape(s *Shape, idx, n int) {
	s.S = o.S[idx][n]
	for i := 0; i < 3; i++ {
		s.G[i] = 0
	}
	for i := 0; i < o.Ctx.Ndim; i++ {
		s.G[i] = o.G[idx][n][i]
	}
}

// Residual computes the local residual Fb
func (o *Element) Residual(sol *Solution) {
	nvars := o.Ctx.Nvars
	for I := range o.Fb {
		o.Fb[I] = 0
	}
	o.Nfallback = 0
	for idx, w := range o.W {
		o.ipState(idx, sol)
		if o.Ctx.Store.HasFallback() {
			o.Nfallback++
		}
		for n := 0; n < o.Nnodes; n++ {
			o.setShape(&o.Ctx.Test, idx, n)
			for _, k := range o.Sys.Kernels {
				o.Fb[n*nvars+k.Var()] += w * k.Residual(o.Ctx)
			}
		}
	}
}

// Jacobian computes the local Jacobian K
func (o *Element) Jacobian(sol *Solution) {
	nvars := o.Ctx.Nvars
	for I := range o.K {
		for J := range o.K[I] {
			o.K[I][J] = 0
		}
	}
	for idx, w := range o.W {
		o.ipState(idx, sol)
		for n := 0; n < o.Nnodes; n++ {
			o.setShape(&o.Ctx.Test, idx, n)
			for m := 0; m < o.Nnodes; m++ {
				o.setShape(&o.Ctx.Trial, idx, m)
				for _, k := range o.Sys.Kernels {
					I := n*nvars + k.Var()
					o.K[I][m*nvars+k.Var()] += w * k.Jacobian(o.Ctx)
					for _, j := range k.Coupled() {
						o.K[I][m*nvars+j] += w * k.OffDiagJacobian(o.Ctx, j)
					}
				}
			}
		}
	}
}

// AddToRhs adds -R to global residual vector fb
func (o *Element) AddToRhs(fb []float64, sol *Solution) (err error) {
	o.Residual(sol)
	nvars := o.Ctx.Nvars
	for n := 0; n < o.Nnodes; n++ {
		for v := 0; v < nvars; v++ {
			fb[o.Eqs[n][v]] -= o.Fb[n*nvars+v]
		}
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *Element) AddToKb(Kb Assembler, sol *Solution) (err error) {
	o.Jacobian(sol)
	nvars := o.Ctx.Nvars
	for n := 0; n < o.Nnodes; n++ {
		for v := 0; v < nvars; v++ {
			for m := 0; m < o.Nnodes; m++ {
				for j := 0; j < nvars; j++ {
					Kb.Put(o.Eqs[n][v], o.Eqs[m][j], o.K[n*nvars+v][m*nvars+j])
				}
			}
		}
	}
	return
}

// Nnz returns the number of non-zero entries added by AddToKb
func (o *Element) Nnz() int {
	n := o.Nnodes * o.Ctx.Nvars
	return n * n
}

// OutIpCoords returns the coordinates of integration points
func (o *Element) OutIpCoords() [][]float64 { return o.Xip }

// OutIpVals saves scalar and vector properties @ integration points
func (o *Element) OutIpVals(M *IpsMap, sol *Solution) {
	nip := len(o.W)
	for idx := range o.W {
		o.ipState(idx, sol)
		M.SetProps(o.Ctx.Store, idx, nip)
	}
}
