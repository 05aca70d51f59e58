// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Barrier defines barrier (multi-well) functions g(φ) of the order parameters
type Barrier interface {
	Init(nvars int, prms dbf.Params) error // Init initialises this structure
	Nvars() int                            // number of order parameters
	Calc(b *BarrierValues, phi []float64)  // computes g and derivatives
}

// BarrierValues holds a barrier function and its derivatives
type BarrierValues struct {
	G   float64     // g
	DG  []float64   // ∂g/∂φ_i
	D2G [][]float64 // ∂²g/∂φ_i∂φ_j
}

// NewBarrierValues allocates values for a barrier function
func NewBarrierValues(mdl Barrier) *BarrierValues {
	n := mdl.Nvars()
	return &BarrierValues{DG: make([]float64, n), D2G: utl.Alloc(n, n)}
}

// NewBarrier allocates a new barrier function
func NewBarrier(name string) (model Barrier, err error) {
	allocator, ok := barriers[name]
	if !ok {
		return nil, chk.Err("barrier %q is not available in 'interp' database", name)
	}
	return allocator(), nil
}

// barriers holds all available barrier functions
var barriers = map[string]func() Barrier{}

// add models to factory
func init() {
	barriers["doublewell"] = func() Barrier { return new(DoubleWell) }
	barriers["multiwell"] = func() Barrier { return new(MultiWell) }
	barriers["crossterm"] = func() Barrier { return new(CrossTerm) }
}

// DoubleWell implements the two-phase double well
//
//   g(η) = η² (1 - η)²
//
type DoubleWell struct{}

// Init initialises this structure
func (o *DoubleWell) Init(nvars int, prms dbf.Params) (err error) {
	if nvars != 1 {
		return chk.Err("doublewell works with one order parameter. nvars=%d is invalid", nvars)
	}
	if len(prms) > 0 {
		return chk.Err("doublewell: parameter %q is not available", prms[0].N)
	}
	return
}

// Nvars returns the number of order parameters
func (o DoubleWell) Nvars() int { return 1 }

// Calc computes g and derivatives
func (o DoubleWell) Calc(b *BarrierValues, phi []float64) {
	η := phi[0]
	b.G = η * η * (1.0 - η) * (1.0 - η)
	b.DG[0] = 2.0 * η * (1.0 - η) * (1.0 - 2.0*η)
	b.D2G[0][0] = 2.0 * (1.0 - 6.0*η + 6.0*η*η)
}

// MultiWell implements the multi-well function of N order parameters
//
//   g = Σ_i (φ_i⁴/4 - φ_i²/2) + γ Σ_i Σ_{j>i} φ_i² φ_j² + 1/4
//
type MultiWell struct {
	N     int     // number of order parameters
	Gamma float64 // cross-term coefficient γ
}

// Init initialises this structure
func (o *MultiWell) Init(nvars int, prms dbf.Params) (err error) {
	if nvars < 2 {
		return chk.Err("multiwell requires at least 2 order parameters. nvars=%d is invalid", nvars)
	}
	o.N = nvars
	o.Gamma = 1.5
	for _, p := range prms {
		switch p.N {
		case "gamma":
			o.Gamma = p.V
		default:
			return chk.Err("multiwell: parameter %q is not available", p.N)
		}
	}
	return
}

// Nvars returns the number of order parameters
func (o MultiWell) Nvars() int { return o.N }

// Calc computes g and derivatives
func (o MultiWell) Calc(b *BarrierValues, phi []float64) {
	b.G = 0.25
	for i := 0; i < o.N; i++ {
		φi := phi[i]
		b.G += φi*φi*φi*φi/4.0 - φi*φi/2.0
		others := 0.0
		for j := 0; j < o.N; j++ {
			if j != i {
				others += phi[j] * phi[j]
				if j > i {
					b.G += o.Gamma * φi * φi * phi[j] * phi[j]
				}
			}
		}
		b.DG[i] = φi*φi*φi - φi + 2.0*o.Gamma*φi*others
		for j := 0; j < o.N; j++ {
			if j == i {
				b.D2G[i][i] = 3.0*φi*φi - 1.0 + 2.0*o.Gamma*others
			} else {
				b.D2G[i][j] = 4.0 * o.Gamma * φi * phi[j]
			}
		}
	}
}

// CrossTerm implements the barrier made of pairwise cross terms with heights W_ij
//
//   order 2:  g = Σ_i Σ_{j>i} W_ij φ_i² φ_j²
//   order 1:  g = Σ_i Σ_{j>i} W_ij φ_i φ_j
//
type CrossTerm struct {
	N     int         // number of order parameters
	Order int         // 1 (low) or 2
	W     [][]float64 // symmetric barrier heights with zero diagonal
}

// Init initialises this structure
//  Parameters: W (default height of all pairs; 1), W_ij with 0 ≤ i < j < nvars, order (1 or 2; default 2)
func (o *CrossTerm) Init(nvars int, prms dbf.Params) (err error) {
	if nvars < 2 || nvars > 10 {
		return chk.Err("crossterm requires between 2 and 10 order parameters. nvars=%d is invalid", nvars)
	}
	o.N = nvars
	o.Order = 2
	o.W = utl.Alloc(nvars, nvars)
	w := 1.0
	for _, p := range prms {
		if p.N == "W" {
			w = p.V
		}
	}
	for i := 0; i < nvars; i++ {
		for j := 0; j < nvars; j++ {
			if i != j {
				o.W[i][j] = w
			}
		}
	}
	for _, p := range prms {
		switch {
		case p.N == "W":
		case p.N == "order":
			o.Order = int(p.V)
			if o.Order != 1 && o.Order != 2 {
				return chk.Err("crossterm: order must be 1 or 2. order=%g is invalid", p.V)
			}
		case len(p.N) == 4 && p.N[:2] == "W_":
			i, erri := strconv.Atoi(p.N[2:3])
			j, errj := strconv.Atoi(p.N[3:4])
			if erri != nil || errj != nil || i >= j || j >= nvars {
				return chk.Err("crossterm with %d order parameters: parameter %q is not available", nvars, p.N)
			}
			o.W[i][j], o.W[j][i] = p.V, p.V
		default:
			return chk.Err("crossterm: parameter %q is not available", p.N)
		}
	}
	return
}

// Nvars returns the number of order parameters
func (o CrossTerm) Nvars() int { return o.N }

// Calc computes g and derivatives
func (o CrossTerm) Calc(b *BarrierValues, phi []float64) {
	b.G = 0
	for i := 0; i < o.N; i++ {
		φi := phi[i]
		b.DG[i] = 0
		b.D2G[i][i] = 0
		for j := 0; j < o.N; j++ {
			if j == i {
				continue
			}
			w, φj := o.W[i][j], phi[j]
			if o.Order == 1 {
				if j > i {
					b.G += w * φi * φj
				}
				b.DG[i] += w * φj
				b.D2G[i][j] = w
				continue
			}
			if j > i {
				b.G += w * φi * φi * φj * φj
			}
			b.DG[i] += 2.0 * w * φi * φj * φj
			b.D2G[i][i] += 2.0 * w * φj * φj
			b.D2G[i][j] = 4.0 * w * φi * φj
		}
	}
}
