// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// RedlichKister implements the free energy of a binary substitutional solution A-B
//
//   G(x) = (1-x) G_A + x G_B + R T [x ln x + (1-x) ln(1-x)] + x (1-x) Σ_k L_k (1-2x)^k
//
//   f(x) = G(x) / (Vm Ec)
//
// G is given in J/mol; Vm is the molar volume and Ec a characteristic energy density
// used to non-dimensionalise f. Outside [xmin, 1-xmin], f is extended linearly from the
// nearest bound: μ is frozen and B = ∂B/∂x = 0
type RedlichKister struct {
	GA, GB float64   // reference energies of pure A and pure B
	R, T   float64   // gas constant and temperature
	Vm, Ec float64   // molar volume and characteristic energy density
	L      []float64 // interaction terms L_0 ... L_{n-1}
	Xmin   float64   // compositions are clamped to [Xmin, 1-Xmin]
}

// add model to factory
func init() {
	allocators["redlich-kister"] = func() Model { return new(RedlichKister) }
}

// Init initialises this structure
//  Parameters: GA, GB, R, T, Vm, Ec, xmin and interaction terms L0, L1, ..., Ln
func (o *RedlichKister) Init(ncomp int, prms dbf.Params) (err error) {

	// check
	err = checkNcomp("redlich-kister", ncomp, 1)
	if err != nil {
		return
	}

	// defaults
	o.GA, o.GB = 0, 0
	o.R, o.T = 8.314, 298.0
	o.Vm, o.Ec = 1e-5, 1e9
	o.Xmin = 1e-12
	o.L = nil

	// parameters
	terms := make(map[int]float64)
	for _, p := range prms {
		switch p.N {
		case "GA":
			o.GA = p.V
		case "GB":
			o.GB = p.V
		case "R":
			o.R = p.V
		case "T":
			o.T = p.V
		case "Vm":
			o.Vm = p.V
		case "Ec":
			o.Ec = p.V
		case "xmin":
			o.Xmin = p.V
		default:
			k, ok := InteractionOrder(p.N)
			if !ok {
				return chk.Err("redlich-kister model: parameter %q is not available", p.N)
			}
			if _, dup := terms[k]; dup {
				return chk.Err("redlich-kister model: interaction term %q is given more than once", p.N)
			}
			terms[k] = p.V
		}
	}

	// interaction terms must be L0, L1, ... without gaps
	o.L = make([]float64, len(terms))
	for k := 0; k < len(terms); k++ {
		v, ok := terms[k]
		if !ok {
			return chk.Err("redlich-kister model: interaction terms must be numbered 0, 1, ..., %d without gaps. L%d is missing", len(terms)-1, k)
		}
		o.L[k] = v
	}
	if o.Vm <= 0 || o.Ec <= 0 {
		return chk.Err("redlich-kister model: Vm and Ec must be positive. Vm=%g, Ec=%g are invalid", o.Vm, o.Ec)
	}
	if o.Xmin <= 0 || o.Xmin >= 0.5 {
		return chk.Err("redlich-kister model: xmin must be in (0, 0.5). xmin=%g is invalid", o.Xmin)
	}
	return
}

// InteractionOrder returns k for an interaction term named "Lk"
func InteractionOrder(name string) (k int, ok bool) {
	if !strings.HasPrefix(name, "L") || len(name) < 2 {
		return
	}
	k, err := strconv.Atoi(name[1:])
	if err != nil || k < 0 {
		return 0, false
	}
	return k, true
}

// InteractionParams builds the parameters of interaction terms from matched lists of
// names and values
func InteractionParams(names []string, values []float64) (prms dbf.Params, err error) {
	if len(names) != len(values) {
		return nil, chk.Err("redlich-kister model: number of interaction term names (%d) and values (%d) must be equal", len(names), len(values))
	}
	for i, name := range names {
		if _, ok := InteractionOrder(name); !ok {
			return nil, chk.Err("redlich-kister model: interaction term name %q is invalid; names must be L0, L1, ...", name)
		}
		prms = append(prms, &dbf.P{N: name, V: values[i]})
	}
	return
}

// Ncomp returns the number of independent solutes
func (o RedlichKister) Ncomp() int { return 1 }

// Bounds returns the domain of compositions
func (o RedlichKister) Bounds() (lo, hi float64) { return o.Xmin, 1.0 - o.Xmin }

// Calc computes f, μ, B and ∂B/∂x
func (o RedlichKister) Calc(r *Chem, xx []float64) {

	// clamp
	x := xx[0]
	r.OutOfDomain = false
	if x < o.Xmin {
		x, r.OutOfDomain = o.Xmin, true
	}
	if x > 1.0-o.Xmin {
		x, r.OutOfDomain = 1.0-o.Xmin, true
	}

	// interaction polynomial S(y) with y = 1 - 2x and its derivatives w.r.t y
	y := 1.0 - 2.0*x
	var S, dS, d2S, d3S float64
	for k := len(o.L) - 1; k >= 0; k-- {
		d3S = d3S*y + 3.0*d2S
		d2S = d2S*y + 2.0*dS
		dS = dS*y + S
		S = S*y + o.L[k]
	}

	// G and its derivatives; p = x(1-x), p' = y, p'' = -2, dy/dx = -2
	p := x * (1.0 - x)
	rt := o.R * o.T
	G := (1.0-x)*o.GA + x*o.GB + rt*(x*math.Log(x)+(1.0-x)*math.Log(1.0-x)) + p*S
	dG := o.GB - o.GA + rt*math.Log(x/(1.0-x)) + y*S - 2.0*p*dS
	d2G := rt/p - 2.0*S - 4.0*y*dS + 4.0*p*d2S
	d3G := rt*(1.0/((1.0-x)*(1.0-x))-1.0/(x*x)) + 12.0*dS + 12.0*y*d2S - 8.0*p*d3S

	// scale
	c := 1.0 / (o.Vm * o.Ec)
	r.F = G * c
	r.Mu[0] = dG * c
	r.B[0][0] = d2G * c
	r.DB[0][0][0] = d3G * c

	// linear extension
	if r.OutOfDomain {
		r.F += r.Mu[0] * (xx[0] - x)
		r.B[0][0], r.DB[0][0][0] = 0, 0
	}
}
