// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobility

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Constant implements a constant mobility matrix
type Constant struct {
	N int         // number of independent solutes
	L [][]float64 // mobility matrix
}

// add model to factory
func init() {
	allocators["constant"] = func() Model { return new(Constant) }
}

// Init initialises this structure
//  Parameters: L_BB, L_CC, L_DD, L_BC, L_BD, L_CD; binary alias: L
//  Diagonal coefficients are required; off-diagonal ones default to zero
func (o *Constant) Init(ncomp int, prms dbf.Params) (err error) {
	err = checkNcomp("constant", ncomp)
	if err != nil {
		return
	}
	o.N = ncomp
	o.L = utl.Alloc(ncomp, ncomp)
	found := make([]bool, ncomp)
	I, J := Pairs(ncomp)
	for _, p := range prms {
		if ncomp == 1 && p.N == "L" {
			o.L[0][0], found[0] = p.V, true
			continue
		}
		ok := false
		for k := range I {
			i, j := I[k], J[k]
			if p.N == PairName(i, j) {
				o.L[i][j], o.L[j][i], ok = p.V, p.V, true
				if i == j {
					found[i] = true
				}
			}
		}
		if !ok {
			return chk.Err("constant mobility with %d solute(s): parameter %q is not available", ncomp, p.N)
		}
	}
	for i := 0; i < ncomp; i++ {
		if !found[i] {
			return chk.Err("constant mobility: diagonal coefficient %s must be given", PairName(i, i))
		}
	}
	return
}

// Ncomp returns the number of independent solutes
func (o Constant) Ncomp() int { return o.N }

// Calc computes L and ∂L/∂s
func (o Constant) Calc(r *Result, s []float64) {
	for i := 0; i < o.N; i++ {
		for j := 0; j < o.N; j++ {
			r.L[i][j] = o.L[i][j]
			for k := 0; k < o.N; k++ {
				r.DL[i][j][k] = 0
			}
		}
	}
	r.Clamped = false
}
