// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a model file in JSON or YAML format
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/souravmat-git/gibbs-sub001/ele"
	"gopkg.in/yaml.v3"
)

// MeshData holds data of a uniform 1D mesh of line elements over [0, Length]
type MeshData struct {
	Type   string  `json:"type"   yaml:"type"`   // shape of elements: "lin2" (default) or "lin3"
	Length float64 `json:"length" yaml:"length"` // length of domain
	Nelem  int     `json:"nelem"  yaml:"nelem"`  // number of elements
}

// GetType returns the shape of elements
func (o MeshData) GetType() string {
	if o.Type == "" {
		return "lin2"
	}
	return o.Type
}

// IniData holds the initial profile of one variable
//  constant: u = V
//  step:     u = L if x < X0; otherwise u = R
//  tanh:     u = L + (R - L) ½ [1 + tanh((x - X0) / W)]
type IniData struct {
	Var  string  `json:"var"  yaml:"var"`  // variable
	Type string  `json:"type" yaml:"type"` // "constant", "step" or "tanh"
	V    float64 `json:"v"    yaml:"v"`    // constant value
	L    float64 `json:"l"    yaml:"l"`    // value on the left
	R    float64 `json:"r"    yaml:"r"`    // value on the right
	X0   float64 `json:"x0"   yaml:"x0"`   // position of interface
	W    float64 `json:"w"    yaml:"w"`    // width of interface
}

// BcData holds an essential boundary condition
type BcData struct {
	Var  string  `json:"var"  yaml:"var"`  // variable
	Side string  `json:"side" yaml:"side"` // "left" or "right"
	V    float64 `json:"v"    yaml:"v"`    // prescribed value
}

// Control holds data for time stepping and Newton iterations
type Control struct {
	Steady bool    `json:"steady" yaml:"steady"` // steady simulation
	Tf     float64 `json:"tf"     yaml:"tf"`     // final time
	Dt     float64 `json:"dt"     yaml:"dt"`     // time increment
	DtOut  float64 `json:"dtout"  yaml:"dtout"`  // time increment for output
	NmaxIt int     `json:"nmaxit" yaml:"nmaxit"` // max number of Newton iterations
	Atol   float64 `json:"atol"   yaml:"atol"`   // absolute tolerance
	Rtol   float64 `json:"rtol"   yaml:"rtol"`   // relative tolerance
}

// PointData holds the state of variables @ one point to probe properties and kernels
type PointData struct {
	X []float64            `json:"x" yaml:"x"` // coordinates
	U map[string]float64   `json:"u" yaml:"u"` // values
	G map[string][]float64 `json:"g" yaml:"g"` // gradients
}

// Model holds all data read from a model file
type Model struct {

	// problem definition
	Desc      string      `json:"desc"      yaml:"desc"`      // description of model
	Ndim      int         `json:"ndim"      yaml:"ndim"`      // space dimension; default = 1
	Variables []string    `json:"variables" yaml:"variables"` // nonlinear variables
	Providers []*ele.Desc `json:"providers" yaml:"providers"` // property providers
	Kernels   []*ele.Desc `json:"kernels"   yaml:"kernels"`   // kernels

	// simulation
	Mesh    *MeshData  `json:"mesh"    yaml:"mesh"`    // 1D mesh; nil if not solving
	Ini     []*IniData `json:"ini"     yaml:"ini"`     // initial values
	Bcs     []*BcData  `json:"bcs"     yaml:"bcs"`     // essential boundary conditions
	Control Control    `json:"control" yaml:"control"` // time stepping
	Point   *PointData `json:"point"   yaml:"point"`   // point to probe; nil if not probing
	DirOut  string     `json:"dirout"  yaml:"dirout"`  // directory for output; e.g. /tmp/gibbs

	// derived
	Dir string `json:"-" yaml:"-"` // directory of model file
	Key string `json:"-" yaml:"-"` // filename key; e.g. kks for kks.yaml
}

// ReadModel reads a model file. Files with extension .yaml or .yml are decoded as YAML;
// all other files are decoded as JSON. Paths in Extra fields of providers (tables) are
// taken relative to the directory of the model file
func ReadModel(path string) (o *Model, err error) {

	// read file
	b, err := readFile(path)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", path, err)
	}

	// decode
	o = new(Model)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal model file %q:\n%v", path, err)
	}

	// derived
	o.Dir = os.ExpandEnv(filepath.Dir(path))
	o.Key = io.FnKey(filepath.Base(path))
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "gibbs", o.Key)
	}
	for _, d := range o.Providers {
		o.fixPaths(d)
	}
	o.Control.SetDefault()

	// check
	if err = o.Check(); err != nil {
		return nil, chk.Err("model file %q is invalid:\n%v", path, err)
	}
	return
}

// fixPaths joins relative table paths with the directory of the model file
func (o *Model) fixPaths(d *ele.Desc) {
	if d.Extra != "" {
		d.Extra = os.ExpandEnv(d.Extra)
		if !filepath.IsAbs(d.Extra) {
			d.Extra = filepath.Join(o.Dir, d.Extra)
		}
	}
	for _, sub := range d.Sub {
		o.fixPaths(sub)
	}
}

// Check checks the consistency of data that does not require allocating the system
func (o *Model) Check() (err error) {
	if o.Ndim == 0 {
		o.Ndim = 1
	}
	if o.Ndim < 1 || o.Ndim > 3 {
		return chk.Err("space dimension must be 1, 2 or 3. ndim=%d is invalid", o.Ndim)
	}
	if len(o.Variables) == 0 {
		return chk.Err("at least one variable must be given")
	}
	vars := make(map[string]bool)
	for _, v := range o.Variables {
		vars[v] = true
	}
	for i, d := range o.Providers {
		if d.Type == "" || d.Name == "" {
			return chk.Err("provider %d must have type and name", i)
		}
	}
	for i, d := range o.Kernels {
		if d.Type == "" || d.Var == "" {
			return chk.Err("kernel %d must have type and var", i)
		}
	}
	if o.Mesh != nil {
		if o.Ndim != 1 {
			return chk.Err("mesh is only available for ndim=1. ndim=%d is invalid", o.Ndim)
		}
		if o.Mesh.Nelem < 1 || o.Mesh.Length <= 0 {
			return chk.Err("mesh must have nelem > 0 and length > 0. nelem=%d and length=%g are invalid", o.Mesh.Nelem, o.Mesh.Length)
		}
		if t := o.Mesh.GetType(); t != "lin2" && t != "lin3" {
			return chk.Err("mesh type must be \"lin2\" or \"lin3\". %q is invalid", t)
		}
	}
	for _, ini := range o.Ini {
		if !vars[ini.Var] {
			return chk.Err("initial values: variable %q is not available", ini.Var)
		}
		switch ini.Type {
		case "constant", "step":
		case "tanh":
			if ini.W <= 0 {
				return chk.Err("initial values of %q: width must be positive. w=%g is invalid", ini.Var, ini.W)
			}
		default:
			return chk.Err("initial values of %q: type %q is invalid; options are \"constant\", \"step\" and \"tanh\"", ini.Var, ini.Type)
		}
	}
	for _, bc := range o.Bcs {
		if !vars[bc.Var] {
			return chk.Err("boundary condition: variable %q is not available", bc.Var)
		}
		if bc.Side != "left" && bc.Side != "right" {
			return chk.Err("boundary condition on %q: side must be \"left\" or \"right\". %q is invalid", bc.Var, bc.Side)
		}
	}
	if o.Point != nil {
		for name := range o.Point.U {
			if !vars[name] {
				return chk.Err("point: variable %q is not available", name)
			}
		}
		for name, g := range o.Point.G {
			if !vars[name] {
				return chk.Err("point: variable %q is not available", name)
			}
			if len(g) > 3 {
				return chk.Err("point: gradient of %q must have at most 3 components", name)
			}
		}
		if len(o.Point.X) > 3 {
			return chk.Err("point: coordinates must have at most 3 components")
		}
	}
	c := &o.Control
	if !c.Steady && (c.Tf <= 0 || c.Dt <= 0) {
		return chk.Err("control: tf and dt must be positive. tf=%g and dt=%g are invalid", c.Tf, c.Dt)
	}
	return
}

// Value returns the initial value @ x
func (o *IniData) Value(x float64) float64 {
	switch o.Type {
	case "step":
		if x < o.X0 {
			return o.L
		}
		return o.R
	case "tanh":
		return o.L + (o.R-o.L)*0.5*(1.0+math.Tanh((x-o.X0)/o.W))
	}
	return o.V
}

// SetDefault sets default values
func (o *Control) SetDefault() {
	if o.Steady {
		o.Tf, o.Dt = 1, 1
	}
	if o.DtOut < o.Dt {
		o.DtOut = o.Dt
	}
	if o.NmaxIt < 1 {
		o.NmaxIt = 20
	}
	if o.Atol <= 0 {
		o.Atol = 1e-10
	}
	if o.Rtol <= 0 {
		o.Rtol = 1e-10
	}
}

// readFile reads a file with io.ReadFile; missing files and directories are reported as
// errors instead of panics
func readFile(path string) (b []byte, err error) {
	info, err := os.Stat(os.ExpandEnv(path))
	if err != nil {
		return
	}
	if info.IsDir() {
		return nil, chk.Err("%q is a directory", path)
	}
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("%v", r)
		}
	}()
	b = io.ReadFile(path)
	return
}
