// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/utl"

// Shape holds the value and gradient of a test or trial function @ point
type Shape struct {
	S float64   // value
	G []float64 // [3] gradient
}

// Context holds the state of all variables @ one point, the current test and trial
// functions and the properties computed by providers. A context must not be shared
// between goroutines
type Context struct {
	Ndim  int         // space dimension
	Nvars int         // number of variables
	X     []float64   // [3] coordinates
	U     []float64   // [nvars] values
	G     [][]float64 // [nvars][3] gradients; components beyond ndim are zero
	Dot   []float64   // [nvars] time rates
	DotDu float64     // ∂(du/dt)/∂u; e.g. 1/Δt for backward Euler
	Test  Shape       // test function ψ
	Trial Shape       // trial function φ
	Store *Store      // properties
}

// NewContext returns a new context
func NewContext(ndim, nvars int) (o *Context) {
	o = new(Context)
	o.Ndim = ndim
	o.Nvars = nvars
	o.X = make([]float64, 3)
	o.U = make([]float64, nvars)
	o.G = utl.Alloc(nvars, 3)
	o.Dot = make([]float64, nvars)
	o.Test = Shape{S: 1, G: make([]float64, 3)}
	o.Trial = Shape{S: 1, G: make([]float64, 3)}
	return
}

// Dot3 returns a⋅b over the first ndim components
func (o *Context) Dot3(a, b []float64) (res float64) {
	for i := 0; i < o.Ndim; i++ {
		res += a[i] * b[i]
	}
	return
}

// GradTest returns ∇ψ⋅v
func (o *Context) GradTest(v []float64) float64 { return o.Dot3(o.Test.G, v) }

// GradTrial returns ∇φ⋅v
func (o *Context) GradTrial(v []float64) float64 { return o.Dot3(o.Trial.G, v) }
