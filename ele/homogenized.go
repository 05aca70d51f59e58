// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/souravmat-git/gibbs-sub001/mdl/micromech"

// Homogenized holds the homogenized elastic response @ point; see micromech.Homogenizer
type Homogenized struct {
	*micromech.State                        // response and derivatives w.r.t. homogenizer inputs
	Hom              *micromech.Homogenizer // homogenizer
	Sw               *Switching             // phase weights used in the last computation
	Eps              *Strain                // overall strain used in the last computation
	Uvars            []int                  // ids of displacement variables
	Hvars            []int                  // ids of phase variables
	Normals          []int                  // [nint] ids of variables whose gradients define the normals
	Jumps            [][]int                // [nint][3] ids of amplitude variables; nil if amplitudes are solved
}

// NewHomogenized returns a new structure
func NewHomogenized(hom *micromech.Homogenizer, uvars, hvars, normals []int, jumps [][]int) *Homogenized {
	return &Homogenized{State: hom.NewState(), Hom: hom, Uvars: uvars, Hvars: hvars, Normals: normals, Jumps: jumps}
}

// Deriv contracts d (derivatives w.r.t. homogenizer inputs) with the derivatives of the
// inputs in the direction of the trial function of u_j
func (o *Homogenized) Deriv(d []float64, c *Context, j int) (res float64) {
	h := o.Hom

	// strain
	res = o.Eps.Deriv(func(i, k int) float64 { return d[h.IdxEps(i, k)] }, c, j)

	// phase weights
	for r := 0; r < h.N; r++ {
		res += d[h.IdxH(r)] * o.Sw.DH[r][j] * c.Trial.S
	}

	// normals and amplitudes
	for m := 0; m < h.Nint; m++ {
		if o.Normals[m] == j {
			for l := 0; l < c.Ndim; l++ {
				res += d[h.IdxG(m, l)] * c.Trial.G[l]
			}
		}
		if o.Jumps == nil {
			continue
		}
		for l := 0; l < 3; l++ {
			if o.Jumps[m][l] == j {
				res += d[h.IdxA(m, l)] * c.Trial.S
			}
		}
	}
	return
}

// Depends returns the ids of all variables the response depends on without repetitions
func (o *Homogenized) Depends() (ids []int) {
	seen := make(map[int]bool)
	add := func(vars []int) {
		for _, id := range vars {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	add(o.Uvars)
	add(o.Hvars)
	add(o.Normals)
	for _, a := range o.Jumps {
		add(a)
	}
	return
}
