// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/souravmat-git/gibbs-sub001/inp"
)

// EssentialBc holds a prescribed value of one equation
type EssentialBc struct {
	Key string  // variable name
	Eq  int     // equation number
	Val float64 // prescribed value
}

// EssentialBcs implements essential boundary conditions by elimination: prescribed values
// are set in y and the constrained equations form the known part of the linear system
// with δy_eq = 0
type EssentialBcs struct {
	Bcs []*EssentialBc // constrained equations sorted by equation number
}

// Init initialises this structure; the same equation cannot be constrained twice
func (o *EssentialBcs) Init(dom *Domain, bcs []*inp.BcData) (err error) {
	o.Bcs = nil
	seen := make(map[int]bool)
	for _, bc := range bcs {
		id, err := dom.Sys.Lay.Id(bc.Var)
		if err != nil {
			return err
		}
		node := 0
		if bc.Side == "right" {
			node = dom.Nnodes() - 1
		}
		eq := dom.Eq(node, id)
		if seen[eq] {
			return chk.Err("essential boundary condition on %q @ %s side is given more than once", bc.Var, bc.Side)
		}
		seen[eq] = true
		o.Bcs = append(o.Bcs, &EssentialBc{Key: bc.Var, Eq: eq, Val: bc.V})
	}
	sort.Slice(o.Bcs, func(i, j int) bool { return o.Bcs[i].Eq < o.Bcs[j].Eq })
	return
}

// Apply sets prescribed values in y
func (o *EssentialBcs) Apply(y []float64) {
	for _, bc := range o.Bcs {
		y[bc.Eq] = bc.Val
	}
}
