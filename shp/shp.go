// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions of 1D line elements and their integration points
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ShpFunc defines the shape functions and derivatives @ natural coordinate r
type ShpFunc func(S, dSdR []float64, r float64, derivs bool)

// Ipoint holds the natural coordinate and weight of an integration point
type Ipoint struct {
	R float64 // natural coordinate
	W float64 // weight
}

// Shape holds the shape functions of a line element
//  Vertices are ordered with the end points first: r = -1, +1, then interior nodes
type Shape struct {

	// geometry
	Type      string    // name; e.g. "lin2"
	Nverts    int       // number of vertices
	NatCoords []float64 // [nverts] natural coordinates of vertices
	Func      ShpFunc   // shape functions and derivatives
	Ips       []Ipoint  // default integration points

	// scratchpad: @ natural coordinate
	S    []float64 // [nverts] shape functions
	DSdR []float64 // [nverts] derivatives of S w.r.t natural coordinate

	// scratchpad: @ integration point (see CalcAtIp)
	J float64   // Jacobian dx/dr
	G []float64 // [nverts] derivatives of S w.r.t real coordinate
}

// factory holds all shapes
var factory = map[string]func() *Shape{
	"lin2": func() *Shape {
		return newShape("lin2", []float64{-1, 1}, lin2, gauss(2))
	},
	"lin3": func() *Shape {
		return newShape("lin3", []float64{-1, 1, 0}, lin3, gauss(3))
	},
}

// Get returns a new shape structure
func Get(name string) (o *Shape, err error) {
	allocator, ok := factory[name]
	if !ok {
		return nil, chk.Err("shape %q is not available; options are \"lin2\" and \"lin3\"", name)
	}
	return allocator(), nil
}

// newShape allocates a new shape
func newShape(name string, r []float64, fcn ShpFunc, ips []Ipoint) *Shape {
	n := len(r)
	return &Shape{Type: name, Nverts: n, NatCoords: r, Func: fcn, Ips: ips,
		S: make([]float64, n), DSdR: make([]float64, n), G: make([]float64, n)}
}

// CalcAtR computes S and dSdR @ natural coordinate r
func (o *Shape) CalcAtR(r float64, derivs bool) {
	o.Func(o.S, o.DSdR, r, derivs)
}

// CalcAtIp computes S, J and G @ natural coordinate r of an element with vertex coordinates x
func (o *Shape) CalcAtIp(x []float64, r float64) (err error) {
	o.Func(o.S, o.DSdR, r, true)
	o.J = 0
	for n := 0; n < o.Nverts; n++ {
		o.J += o.DSdR[n] * x[n]
	}
	if o.J < 1e-14 {
		return chk.Err("%s: Jacobian dx/dr must be positive. J=%g is invalid", o.Type, o.J)
	}
	for n := 0; n < o.Nverts; n++ {
		o.G[n] = o.DSdR[n] / o.J
	}
	return
}

// Xfromr returns x(r) of an element with vertex coordinates x
func (o *Shape) Xfromr(x []float64, r float64) (res float64) {
	o.Func(o.S, nil, r, false)
	for n := 0; n < o.Nverts; n++ {
		res += o.S[n] * x[n]
	}
	return
}

// InvMap returns the natural coordinate r such that x(r) = xp using Newton's method
func (o *Shape) InvMap(x []float64, xp float64) (r float64, err error) {
	for it := 0; it < 20; it++ {
		if err = o.CalcAtIp(x, r); err != nil {
			return
		}
		δr := (xp - o.Xfromr(x, r)) / o.J
		r += δr
		if math.Abs(δr) < 1e-14 {
			return
		}
	}
	return r, chk.Err("%s: inverse mapping of x=%g did not converge", o.Type, xp)
}

// lin2 implements the linear line element
//   -1     +1
//    0-----1-> r
func lin2(S, dSdR []float64, r float64, derivs bool) {
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)
	if !derivs {
		return
	}
	dSdR[0] = -0.5
	dSdR[1] = 0.5
}

// lin3 implements the quadratic line element
//   -1     0     +1
//    0-----2-----1-> r
func lin3(S, dSdR []float64, r float64, derivs bool) {
	S[0] = 0.5 * (r*r - r)
	S[1] = 0.5 * (r*r + r)
	S[2] = 1.0 - r*r
	if !derivs {
		return
	}
	dSdR[0] = r - 0.5
	dSdR[1] = r + 0.5
	dSdR[2] = -2.0 * r
}

// gauss returns the Gauss-Legendre points over [-1, 1]
func gauss(n int) []Ipoint {
	switch n {
	case 1:
		return []Ipoint{{0, 2}}
	case 2:
		a := 1.0 / math.Sqrt(3.0)
		return []Ipoint{{-a, 1}, {a, 1}}
	}
	a := math.Sqrt(3.0 / 5.0)
	return []Ipoint{{-a, 5.0 / 9.0}, {0, 8.0 / 9.0}, {a, 5.0 / 9.0}}
}
