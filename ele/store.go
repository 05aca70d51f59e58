// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Store holds the properties of one context
type Store struct {
	Names []string      // property names
	Vals  []interface{} // property values; e.g. *Scalar
}

// Get returns the value of a property by name; nil if not found
func (o *Store) Get(name string) interface{} {
	for i, n := range o.Names {
		if n == name {
			return o.Vals[i]
		}
	}
	return nil
}

// Key is a typed handle to a property resolved at setup
type Key[T any] struct {
	Name string // property name
	id   int    // index in store
}

// Get returns the value of a property in a context
func (k Key[T]) Get(c *Context) T {
	return c.Store.Vals[k.id].(T)
}

// Sample allocates a value of a property; e.g. to inspect the variables it depends on
func (k Key[T]) Sample(sys *System) T {
	return sys.props[k.id].Alloc().(T)
}

// Resolve returns the key of a consumed property with type T; e.g. Resolve[*Scalar](sys, "alpha:f")
func Resolve[T any](sys *System, name string) (k Key[T], err error) {
	k, err = OutputKey[T](sys, name)
	if err == nil {
		sys.used[name] = true
	}
	return
}

// OutputKey returns the key of a property with type T without marking it as consumed
func OutputKey[T any](sys *System, name string) (k Key[T], err error) {
	idx, ok := sys.index[name]
	if !ok {
		return k, chk.Err("property %q is not produced by any provider", name)
	}
	sample := sys.props[idx].Alloc()
	if _, ok := sample.(T); !ok {
		var zero T
		return k, chk.Err("property %q has type %T but %T is required", name, sample, zero)
	}
	return Key[T]{Name: name, id: idx}, nil
}

// ResolveAll returns the keys of a list of properties with type T
func ResolveAll[T any](sys *System, names []string) (keys []Key[T], err error) {
	keys = make([]Key[T], len(names))
	for i, name := range names {
		keys[i], err = Resolve[T](sys, name)
		if err != nil {
			return
		}
	}
	return
}
