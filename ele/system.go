// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Prop describes a property produced by a provider
type Prop struct {
	Name  string             // property name
	Alloc func() interface{} // allocates the value; e.g. *Scalar
}

// Provider defines objects that compute properties @ points
type Provider interface {
	Outputs() []Prop        // produced properties
	Inputs() []string       // consumed properties
	Bind(sys *System) error // resolves keys of outputs and inputs; called by Setup
	Compute(c *Context)     // computes outputs using variables and inputs in c
}

// System holds the variables, providers and kernels of a problem
type System struct {
	Lay       *Layout         // variables
	Ndim      int             // space dimension
	Providers []Provider      // providers sorted such that inputs are computed before use
	Kernels   []Kernel        // kernels
	Verbose   bool            // show messages
	props     []Prop          // all properties
	index     map[string]int  // property name => index in props
	producer  []int           // property index => provider index
	used      map[string]bool // properties resolved by kernels or providers
	sorted    bool            // providers are sorted
}

// NewSystem returns a new system
func NewSystem(lay *Layout, ndim int) (o *System, err error) {
	if ndim < 1 || ndim > 3 {
		return nil, chk.Err("space dimension must be 1, 2 or 3. ndim=%d is invalid", ndim)
	}
	o = &System{Lay: lay, Ndim: ndim, index: make(map[string]int), used: make(map[string]bool)}
	return
}

// AddProvider adds a provider; each property must have exactly one producer
func (o *System) AddProvider(p Provider) (err error) {
	for _, prop := range p.Outputs() {
		if _, ok := o.index[prop.Name]; ok {
			return chk.Err("property %q is produced by more than one provider", prop.Name)
		}
		o.index[prop.Name] = len(o.props)
		o.props = append(o.props, prop)
		o.producer = append(o.producer, len(o.Providers))
	}
	o.Providers = append(o.Providers, p)
	o.sorted = false
	return
}

// AddKernel adds a kernel
func (o *System) AddKernel(k Kernel) (err error) {
	if !o.sorted {
		return chk.Err("kernels must be added after Setup")
	}
	o.Kernels = append(o.Kernels, k)
	return
}

// Setup binds and sorts providers topologically; missing producers and cycles are errors.
// Kernels must be added after Setup
func (o *System) Setup() (err error) {

	// dependencies
	np := len(o.Providers)
	for _, p := range o.Providers {
		if err = p.Bind(o); err != nil {
			return
		}
	}
	deps := make([][]int, np)
	for i, p := range o.Providers {
		for _, name := range p.Inputs() {
			idx, ok := o.index[name]
			if !ok {
				return chk.Err("property %q required by provider %d is not produced by any provider", name, i)
			}
			o.used[name] = true
			deps[i] = append(deps[i], o.producer[idx])
		}
	}

	// depth-first search
	const (
		white = iota
		grey
		black
	)
	colour := make([]int, np)
	order := make([]int, 0, np)
	var visit func(i int) error
	visit = func(i int) error {
		switch colour[i] {
		case grey:
			return chk.Err("properties of provider %d depend on themselves: %s", i, strings.Join(o.outputNames(i), ", "))
		case black:
			return nil
		}
		colour[i] = grey
		for _, j := range deps[i] {
			if e := visit(j); e != nil {
				return e
			}
		}
		colour[i] = black
		order = append(order, i)
		return nil
	}
	for i := 0; i < np; i++ {
		if err = visit(i); err != nil {
			return
		}
	}

	// reorder
	providers := make([]Provider, np)
	newIdx := make([]int, np)
	for k, i := range order {
		providers[k] = o.Providers[i]
		newIdx[i] = k
	}
	for idx := range o.producer {
		o.producer[idx] = newIdx[o.producer[idx]]
	}
	o.Providers = providers
	o.sorted = true

	// message
	if o.Verbose {
		io.Pf("variables = %v\n", o.Lay.Names)
		io.Pf("properties (in evaluation order) = %v\n", o.PropNames())
	}
	return
}

// outputNames returns the names of properties produced by provider i
func (o *System) outputNames(i int) (names []string) {
	for _, prop := range o.Providers[i].Outputs() {
		names = append(names, prop.Name)
	}
	return
}

// PropNames returns the names of all properties in evaluation order
func (o *System) PropNames() (names []string) {
	for i := range o.Providers {
		names = append(names, o.outputNames(i)...)
	}
	return
}

// Unused returns the sorted names of properties that no kernel or provider consumes
func (o *System) Unused() (names []string) {
	for name := range o.index {
		if !o.used[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return
}

// NewContext allocates a context with all properties
func (o *System) NewContext() (c *Context) {
	c = NewContext(o.Ndim, o.Lay.Nvars())
	c.Store = &Store{Names: make([]string, len(o.props)), Vals: make([]interface{}, len(o.props))}
	for i, prop := range o.props {
		c.Store.Names[i] = prop.Name
		c.Store.Vals[i] = prop.Alloc()
	}
	return
}

// Eval computes all properties @ point
func (o *System) Eval(c *Context) {
	if !o.sorted {
		chk.Panic("Setup must be called before Eval")
	}
	for _, p := range o.Providers {
		p.Compute(c)
	}
}
