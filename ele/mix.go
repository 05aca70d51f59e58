// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Dependent defines properties that know the variables they depend on
type Dependent interface {
	Depends() []int
}

// Depends returns the union of the variables of sampled properties
func Depends[T Dependent](sys *System, keys ...Key[T]) (ids []int) {
	seen := make(map[int]bool)
	for _, k := range keys {
		for _, id := range k.Sample(sys).Depends() {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return
}

// Mix holds phase-wise values of a property combined with switching weights
//
//   P̄ = Σ_k h_k P_k
//
// A single value is used as is (h = 1)
type Mix[T Dependent] struct {
	Keys  []Key[T]        // phase-wise values
	Sw    Key[*Switching] // weights; valid if HasSw
	HasSw bool            // weights are used
}

// NewMix resolves the properties in group and, if more than one, the property in group
// "switching"
func NewMix[T Dependent](d *Desc, sys *System, group string) (o Mix[T], err error) {
	names, err := d.PropNames(group, 0)
	if err != nil {
		return
	}
	if o.Keys, err = ResolveAll[T](sys, names); err != nil {
		return o, chk.Err("%s: %v", d.what(), err)
	}
	if len(names) == 1 {
		return
	}
	swName, err := d.PropName("switching")
	if err != nil {
		return
	}
	if o.Sw, err = Resolve[*Switching](sys, swName); err != nil {
		return o, chk.Err("%s: %v", d.what(), err)
	}
	o.HasSw = true
	if n := o.Sw.Sample(sys).Nphases(); n != len(names) {
		return o, chk.Err("%s: switching %q has %d phases but %d properties %q are given", d.what(), swName, n, len(names), group)
	}
	return
}

// Len returns the number of phases
func (o Mix[T]) Len() int { return len(o.Keys) }

// Get returns the value of phase k
func (o Mix[T]) Get(c *Context, k int) T { return o.Keys[k].Get(c) }

// Weight returns h_k and ∂h_k/∂u_j
func (o Mix[T]) Weight(c *Context, k, j int) (h, dh float64) {
	if !o.HasSw {
		return 1, 0
	}
	sw := o.Sw.Get(c)
	return sw.H[k], sw.DH[k][j]
}

// Depends returns the variables of the weights and of all values
func (o Mix[T]) Depends(sys *System) (ids []int) {
	ids = Depends(sys, o.Keys...)
	if o.HasSw {
		for _, id := range o.Sw.Sample(sys).Vars {
			ids = appendNew(ids, id)
		}
	}
	return
}

// appendNew appends id if not present
func appendNew(ids []int, id int) []int {
	for _, i := range ids {
		if i == id {
			return ids
		}
	}
	return append(ids, id)
}
