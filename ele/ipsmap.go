// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/io"

// IpsMap defines a map to hold results @ integration points
type IpsMap map[string][]float64

// NewIpsMap returns a new IpsMap
func NewIpsMap() *IpsMap {
	var M IpsMap
	M = make(map[string][]float64)
	return &M
}

// Set sets item in map by key and ip-index. The slice is resized with nip in case it's empty
//  Input:
//   idx -- index of integration point
//   nip -- number of integration points (to resize if necessary)
//   val -- value of 'key' @ integration point 'idx'
func (o *IpsMap) Set(key string, idx, nip int, val float64) {
	if slice, ok := (*o)[key]; ok {
		slice[idx] = val
		return
	}
	slice := make([]float64, nip)
	slice[idx] = val
	(*o)[key] = slice
}

// Get returns item corresponding to 'key' and integration point 'idx'
//  Note: this function returns 0 if 'key' is not found. It also does not check for out-of-bound errors
func (o *IpsMap) Get(key string, idx int) float64 {
	if slice, ok := (*o)[key]; ok {
		return slice[idx]
	}
	return 0
}

// SetProps saves properties @ integration point idx
//  Scalars are saved with their names; vectors and switching weights with name[i];
//  homogenized states with name:F[k] (driving forces) and name:s[i,j] (overall stress).
//  Values computed by a fallback are marked with name:degenerate = 1
func (o *IpsMap) SetProps(store *Store, idx, nip int) {
	for i, name := range store.Names {
		if flag, ok := Degenerate(store.Vals[i]); ok {
			o.Set(name+":degenerate", idx, nip, float64(io.Btoi(flag)))
		}
		switch v := store.Vals[i].(type) {
		case *Scalar:
			o.Set(name, idx, nip, v.V)
		case *Vector:
			for k, val := range v.V {
				o.Set(io.Sf("%s[%d]", name, k), idx, nip, val)
			}
		case *Switching:
			for k, val := range v.H {
				o.Set(io.Sf("%s[%d]", name, k), idx, nip, val)
			}
		case *Homogenized:
			for k, val := range v.F {
				o.Set(io.Sf("%s:F[%d]", name, k), idx, nip, val)
			}
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					o.Set(io.Sf("%s:s[%d,%d]", name, a, b), idx, nip, v.S[a][b])
				}
			}
		}
	}
}

// Degenerate tells whether a property value was computed by a fallback; ok is false for
// values without this flag
func Degenerate(val interface{}) (flag, ok bool) {
	switch v := val.(type) {
	case *Scalar:
		return v.Degenerate, true
	case *Vector:
		return v.Degenerate, true
	case *Matrix:
		return v.Degenerate, true
	case *Switching:
		return v.Degenerate, true
	case *Homogenized:
		return v.State.Degenerate, true
	}
	return
}

// HasFallback tells whether some property was computed by a fallback
func (o *Store) HasFallback() bool {
	for _, val := range o.Vals {
		if flag, _ := Degenerate(val); flag {
			return true
		}
	}
	return false
}

// Fallbacks returns the names of properties computed by a fallback
func (o *Store) Fallbacks() (names []string) {
	for i, name := range o.Names {
		if flag, _ := Degenerate(o.Vals[i]); flag {
			names = append(names, name)
		}
	}
	return
}
