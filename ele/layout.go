// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Layout holds the names of nonlinear variables and their ids
type Layout struct {
	Names []string       // variable names; id = index in Names
	ids   map[string]int // name => id
}

// NewLayout returns a new layout; names must be unique and not empty
func NewLayout(names ...string) (o *Layout, err error) {
	o = &Layout{ids: make(map[string]int)}
	for _, name := range names {
		if name == "" {
			return nil, chk.Err("variable name cannot be empty")
		}
		if _, ok := o.ids[name]; ok {
			return nil, chk.Err("variable %q is given more than once", name)
		}
		o.ids[name] = len(o.Names)
		o.Names = append(o.Names, name)
	}
	if len(o.Names) == 0 {
		return nil, chk.Err("at least one variable must be given")
	}
	return
}

// Nvars returns the number of variables
func (o *Layout) Nvars() int { return len(o.Names) }

// Id returns the id of variable
func (o *Layout) Id(name string) (id int, err error) {
	id, ok := o.ids[name]
	if !ok {
		return -1, chk.Err("variable %q is not available in layout %v", name, o.Names)
	}
	return
}

// Ids returns the ids of variables
func (o *Layout) Ids(names []string) (ids []int, err error) {
	ids = make([]int, len(names))
	for i, name := range names {
		ids[i], err = o.Id(name)
		if err != nil {
			return
		}
	}
	return
}
