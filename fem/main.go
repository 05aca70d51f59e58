// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/souravmat-git/gibbs-sub001/ele"
	"github.com/souravmat-git/gibbs-sub001/inp"
)

// Main holds all data for a simulation
type Main struct {
	Model   *inp.Model  // model data
	Sys     *ele.System // system
	Dom     *Domain     // domain; nil if the model has no mesh
	Res     *Results    // results; nil if the model has no mesh
	Probed  *ele.IpsMap // properties and residuals @ point; nil if the model has no point
	ShowMsg bool        // show messages
}

// NewMain returns a new Main structure
//  Input:
//   modelpath -- model file (.json, .yaml or .yml) including full path
//   verbose   -- show messages
func NewMain(modelpath string, verbose bool) (o *Main, err error) {

	// read input data
	o = &Main{ShowMsg: verbose}
	o.Model, err = inp.ReadModel(modelpath)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Model file read: %s\n", o.Model.Desc)
	}

	// system
	o.Sys, err = NewSystem(o.Model, verbose)
	if err != nil {
		return nil, err
	}

	// domain
	if o.Model.Mesh != nil {
		o.Dom, err = NewDomain(o.Sys, o.Model.Mesh, o.Model.Bcs, o.Model.Control.Steady)
		if err != nil {
			return nil, err
		}
		if err = o.Dom.SetIniVals(o.Model.Ini); err != nil {
			return nil, err
		}
		o.Res = NewResults(o.Model.Key, o.Dom)
	}
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
	}
	return
}

// Run probes the point and runs the time loop
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() {
		if o.ShowMsg && err == nil {
			io.Pfcyan("cpu time = %v\n", time.Now().Sub(cputime))
		}
	}()

	// point
	if o.Model.Point != nil {
		o.Probed, err = Probe(o.Sys, o.Model.Point)
		if err != nil {
			return
		}
		if o.ShowMsg {
			keys := make([]string, 0, len(*o.Probed))
			for key := range *o.Probed {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				io.Pf("%-40s = %23.15e\n", key, o.Probed.Get(key, 0))
			}
		}
	}
	if o.Dom == nil {
		return
	}
	defer o.Dom.Free()

	// time loop
	ctl := &o.Model.Control
	o.Res.Add(o.Dom, 0)
	tout := ctl.DtOut
	nit := 0
	for o.Dom.Sol.T < ctl.Tf-1e-10 {
		dt := math.Min(ctl.Dt, ctl.Tf-o.Dom.Sol.T)
		nit, err = o.Dom.Step(dt, ctl, false)
		if err != nil {
			return chk.Err("step failed:\n%v", err)
		}
		if o.Dom.Sol.Steady {
			break
		}
		if o.Dom.Sol.T >= tout-1e-10 {
			o.Res.Add(o.Dom, nit)
			tout += ctl.DtOut
			if o.ShowMsg {
				io.Pf("t = %12.6f  nit = %d\n", o.Dom.Sol.T, nit)
			}
		}
	}
	if o.Dom.Sol.Steady || o.Res.T[len(o.Res.T)-1] < o.Dom.Sol.T {
		o.Res.Add(o.Dom, nit)
	}
	if o.ShowMsg {
		io.Pf("> Results saved to %s/%s.json\n", o.Model.DirOut, o.Model.Key)
	}
	return o.Res.Save(o.Model.DirOut)
}
