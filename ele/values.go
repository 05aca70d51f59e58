// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/utl"

// Scalar holds a scalar property and its derivatives w.r.t. the values of all variables
type Scalar struct {
	V          float64   // value
	D          []float64 // [nvars] ∂V/∂u_j
	Vars       []int     // ids of variables with non-zero derivatives
	Degenerate bool      // value was computed by a fallback; e.g. a clamped argument
}

// NewScalar returns a new Scalar
func NewScalar(nvars int, vars []int) *Scalar {
	return &Scalar{D: make([]float64, nvars), Vars: vars}
}

// Depends returns the ids of variables with non-zero derivatives
func (o *Scalar) Depends() []int { return o.Vars }

// Vector holds a vector property and its derivatives w.r.t. the values of all variables
type Vector struct {
	V          []float64   // [n] values
	D          [][]float64 // [n][nvars] ∂V_i/∂u_j
	Vars       []int       // ids of variables with non-zero derivatives
	Degenerate bool        // values were computed by a fallback
}

// NewVector returns a new Vector
func NewVector(n, nvars int, vars []int) *Vector {
	return &Vector{V: make([]float64, n), D: utl.Alloc(n, nvars), Vars: vars}
}

// Depends returns the ids of variables with non-zero derivatives
func (o *Vector) Depends() []int { return o.Vars }

// Matrix holds a matrix property and its derivatives w.r.t. the values of all variables
type Matrix struct {
	V          [][]float64   // [n][n] values
	D          [][][]float64 // [n][n][nvars] ∂V_ik/∂u_j
	Vars       []int         // ids of variables with non-zero derivatives
	Degenerate bool          // values were computed by a fallback
}

// NewMatrix returns a new Matrix
func NewMatrix(n, nvars int, vars []int) *Matrix {
	return &Matrix{V: utl.Alloc(n, n), D: utl.Deep3alloc(n, n, nvars), Vars: vars}
}

// Depends returns the ids of variables with non-zero derivatives
func (o *Matrix) Depends() []int { return o.Vars }

// Switching holds interpolation weights of phases and their derivatives
type Switching struct {
	H          []float64     // [nphases] h_k
	DH         [][]float64   // [nphases][nvars] ∂h_k/∂u_j
	D2H        [][][]float64 // [nphases][nvars][nvars] ∂²h_k/∂u_i∂u_j
	Vars       []int         // ids of phase variables
	Degenerate bool          // weights were computed by a fallback
}

// NewSwitching returns a new Switching
func NewSwitching(nphases, nvars int, vars []int) *Switching {
	return &Switching{
		H:    make([]float64, nphases),
		DH:   utl.Alloc(nphases, nvars),
		D2H:  utl.Deep3alloc(nphases, nvars, nvars),
		Vars: vars,
	}
}

// Depends returns the ids of phase variables
func (o *Switching) Depends() []int { return o.Vars }

// Nphases returns the number of phases
func (o *Switching) Nphases() int { return len(o.H) }

// Grad computes ∇h_k = Σ_j ∂h_k/∂u_j ∇u_j
func (o *Switching) Grad(g []float64, c *Context, k int) {
	g[0], g[1], g[2] = 0, 0, 0
	for _, j := range o.Vars {
		for i := 0; i < 3; i++ {
			g[i] += o.DH[k][j] * c.G[j][i]
		}
	}
}

// GradDeriv computes the derivative of ∇h_k in the direction of the trial function of u_j
func (o *Switching) GradDeriv(dg []float64, c *Context, k, j int) {
	for i := 0; i < 3; i++ {
		dg[i] = o.DH[k][j] * c.Trial.G[i]
		for _, m := range o.Vars {
			dg[i] += o.D2H[k][m][j] * c.Trial.S * c.G[m][i]
		}
	}
}

// Barrier holds a multi-well barrier and its derivatives
type Barrier struct {
	G    float64     // value
	DG   []float64   // [nvars] ∂g/∂u_j
	D2G  [][]float64 // [nvars][nvars] ∂²g/∂u_i∂u_j
	Vars []int       // ids of phase variables
}

// NewBarrier returns a new Barrier
func NewBarrier(nvars int, vars []int) *Barrier {
	return &Barrier{DG: make([]float64, nvars), D2G: utl.Alloc(nvars, nvars), Vars: vars}
}

// Depends returns the ids of phase variables
func (o *Barrier) Depends() []int { return o.Vars }

// Strain holds the small strain tensor ε = sym(∇u)
type Strain struct {
	V [][]float64 // [3][3] strain
	U []int       // ids of displacement variables; one per dimension
}

// NewStrain returns a new Strain
func NewStrain(u []int) *Strain {
	return &Strain{V: utl.Alloc(3, 3), U: u}
}

// Depends returns the ids of displacement variables
func (o *Strain) Depends() []int { return o.U }

// Deriv contracts ∂y/∂ε_ik (dy[i][k]) with the derivative of ε in the direction of the trial
// function of u_j
func (o *Strain) Deriv(dy func(i, k int) float64, c *Context, j int) (res float64) {
	for comp, id := range o.U {
		if id != j {
			continue
		}
		// ∂ε_ik = ½ (δ_i,comp ∂φ/∂x_k + δ_k,comp ∂φ/∂x_i)
		for k := 0; k < 3; k++ {
			res += 0.5 * (dy(comp, k) + dy(k, comp)) * c.Trial.G[k]
		}
	}
	return
}
