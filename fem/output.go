// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
)

// Results holds nodal values saved @ output times
type Results struct {
	Key  string        `json:"key"`  // filename key of model
	Vars []string      `json:"vars"` // variable names
	X    []float64     `json:"x"`    // [nnodes] coordinates of nodes
	T    []float64     `json:"t"`    // [nout] output times
	Y    [][][]float64 `json:"y"`    // [nout][nvars][nnodes] nodal values
	Nit  []int         `json:"nit"`  // [nout] number of iterations of the last step before output
}

// NewResults returns a new structure
func NewResults(key string, dom *Domain) *Results {
	return &Results{Key: key, Vars: dom.Sys.Lay.Names, X: dom.X}
}

// Add saves the current solution
func (o *Results) Add(dom *Domain, nit int) {
	y := make([][]float64, len(o.Vars))
	for v := range o.Vars {
		y[v] = dom.Values(v)
	}
	o.T = append(o.T, dom.Sol.T)
	o.Y = append(o.Y, y)
	o.Nit = append(o.Nit, nit)
}

// Last returns the last saved values of a variable
func (o *Results) Last(name string) []float64 {
	for v, n := range o.Vars {
		if n == name && len(o.Y) > 0 {
			return o.Y[len(o.Y)-1][v]
		}
	}
	return nil
}

// Save writes results to dirout/key.json
func (o *Results) Save(dirout string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode results:\n%v", err)
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create directory for output results (%s):\n%v", dirout, err)
	}
	return os.WriteFile(filepath.Join(dirout, o.Key+".json"), b, 0644)
}
