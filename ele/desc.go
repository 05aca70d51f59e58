// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Desc describes a provider or a kernel
type Desc struct {
	Type  string              `json:"type"  yaml:"type"`  // registered type; e.g. "chemistry", "potential-flux"
	Name  string              `json:"name"  yaml:"name"`  // name of provider (prefix of its properties)
	Var   string              `json:"var"   yaml:"var"`   // kernel variable
	Vars  map[string][]string `json:"vars"  yaml:"vars"`  // groups of variables; e.g. "phases": ["eta1", "eta2"]
	Props map[string][]string `json:"props" yaml:"props"` // groups of properties; e.g. "switching": ["h"]
	Model string              `json:"model" yaml:"model"` // model name; e.g. "parabolic"
	Prms  dbf.Params          `json:"prms"  yaml:"prms"`  // parameters
	Extra string              `json:"extra" yaml:"extra"` // extra information; e.g. table file
	Sub   []*Desc             `json:"sub"   yaml:"sub"`   // sub-models; e.g. elastic phases
}

// what returns a short description of this Desc for messages
func (o *Desc) what() string {
	if o.Name != "" {
		return o.Type + " " + o.Name
	}
	if o.Var != "" {
		return o.Type + " on " + o.Var
	}
	return o.Type
}

// VarId returns the id of the kernel variable
func (o *Desc) VarId(lay *Layout) (id int, err error) {
	if o.Var == "" {
		return -1, chk.Err("%s: variable must be given", o.what())
	}
	id, err = lay.Id(o.Var)
	if err != nil {
		return -1, chk.Err("%s: %v", o.what(), err)
	}
	return
}

// VarIds returns the ids of a group of variables; the group must have n entries if n > 0
func (o *Desc) VarIds(lay *Layout, group string, n int) (ids []int, err error) {
	names, ok := o.Vars[group]
	if !ok || len(names) == 0 {
		return nil, chk.Err("%s: variables %q must be given", o.what(), group)
	}
	if n > 0 && len(names) != n {
		return nil, chk.Err("%s: %d variable(s) %q must be given. %v is invalid", o.what(), n, group, names)
	}
	ids, err = lay.Ids(names)
	if err != nil {
		return nil, chk.Err("%s: %v", o.what(), err)
	}
	return
}

// OptVarIds returns the ids of a group of variables that may be absent
func (o *Desc) OptVarIds(lay *Layout, group string) (ids []int, err error) {
	if len(o.Vars[group]) == 0 {
		return
	}
	return o.VarIds(lay, group, 0)
}

// PropNames returns a group of property names; the group must have n entries if n > 0
func (o *Desc) PropNames(group string, n int) (names []string, err error) {
	names, ok := o.Props[group]
	if !ok || len(names) == 0 {
		return nil, chk.Err("%s: properties %q must be given", o.what(), group)
	}
	if n > 0 && len(names) != n {
		return nil, chk.Err("%s: %d propert(ies) %q must be given. %v is invalid", o.what(), n, group, names)
	}
	return
}

// PropName returns a single property name
func (o *Desc) PropName(group string) (name string, err error) {
	names, err := o.PropNames(group, 1)
	if err != nil {
		return
	}
	return names[0], nil
}

// Param returns the value of a parameter or a default value if absent
func (o *Desc) Param(name string, dflt float64) float64 {
	if p := o.Prms.Find(name); p != nil {
		return p.V
	}
	return dflt
}

// ReqParam returns the value of a required parameter
func (o *Desc) ReqParam(name string) (v float64, err error) {
	p := o.Prms.Find(name)
	if p == nil {
		return 0, chk.Err("%s: parameter %q must be given", o.what(), name)
	}
	return p.V, nil
}

// Index returns an integer parameter in [0, n)
func (o *Desc) Index(name string, n int) (idx int, err error) {
	v := o.Param(name, 0)
	idx = int(v)
	if float64(idx) != v || idx < 0 || idx >= n {
		return 0, chk.Err("%s: parameter %q must be an integer in [0, %d). %g is invalid", o.what(), name, n, v)
	}
	return
}

// CheckParams checks that only the given parameter names are used
func (o *Desc) CheckParams(names ...string) (err error) {
	for _, p := range o.Prms {
		ok := false
		for _, name := range names {
			if p.N == name {
				ok = true
				break
			}
		}
		if !ok {
			return chk.Err("%s: parameter %q is not available; valid parameters are %v", o.what(), p.N, names)
		}
	}
	return
}
