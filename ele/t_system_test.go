// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// sum computes name = a u² + Σ inputs; values with u > umax are flagged if umax > 0
type sum struct {
	name string
	a    float64
	id   int
	ins  []string
	out  Key[*Scalar]
	keys []Key[*Scalar]
	nv   int
	umax float64
}

func newSum(sys *System, name string, a float64, id int, ins ...string) *sum {
	return &sum{name: name, a: a, id: id, ins: ins, nv: sys.Lay.Nvars()}
}

func (o *sum) Outputs() []Prop {
	return []Prop{{Name: o.name, Alloc: func() interface{} { return NewScalar(o.nv, []int{o.id}) }}}
}

func (o *sum) Inputs() []string { return o.ins }

func (o *sum) Bind(sys *System) (err error) {
	o.out, err = OutputKey[*Scalar](sys, o.name)
	if err != nil {
		return
	}
	o.keys, err = ResolveAll[*Scalar](sys, o.ins)
	return
}

func (o *sum) Compute(c *Context) {
	r := o.out.Get(c)
	u := c.U[o.id]
	r.Degenerate = o.umax > 0 && u > o.umax
	r.V = o.a * u * u
	for j := range r.D {
		r.D[j] = 0
	}
	r.D[o.id] = 2 * o.a * u
	for _, k := range o.keys {
		in := k.Get(c)
		r.V += in.V
		for j := range r.D {
			r.D[j] += in.D[j]
		}
	}
}

func Test_layout01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("layout01")

	lay, err := NewLayout("x", "mu", "phi")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "nvars", lay.Nvars(), 3)
	ids, err := lay.Ids([]string{"phi", "x"})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Ints(tst, "ids", ids, []int{2, 0})

	_, err = lay.Id("eta")
	if err == nil {
		tst.Errorf("unknown variable should fail\n")
	}
	for _, names := range [][]string{{}, {"x", ""}, {"x", "mu", "x"}} {
		_, err = NewLayout(names...)
		if err == nil {
			tst.Errorf("layout %v should fail\n", names)
			return
		}
		io.Pforan("%v\n", err)
	}
}

func Test_system01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system01")

	lay, _ := NewLayout("u", "v")
	sys, err := NewSystem(lay, 2)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// added in reverse order of evaluation
	sys.AddProvider(newSum(sys, "c", 1, 0, "b", "a"))
	sys.AddProvider(newSum(sys, "b", 2, 1, "a"))
	sys.AddProvider(newSum(sys, "a", 3, 0))
	err = sys.AddKernel(nil)
	if err == nil {
		tst.Errorf("AddKernel before Setup should fail\n")
		return
	}
	if err = sys.Setup(); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.String(tst, io.Sf("%v", sys.PropNames()), "[a b c]")
	chk.String(tst, io.Sf("%v", sys.Unused()), "[c]")

	// evaluation
	c := sys.NewContext()
	c.U[0], c.U[1] = 0.5, 2.0
	sys.Eval(c)
	a := 3 * 0.25
	b := 2*4.0 + a
	chk.Float64(tst, "a", 1e-15, c.Store.Get("a").(*Scalar).V, a)
	chk.Float64(tst, "b", 1e-15, c.Store.Get("b").(*Scalar).V, b)
	chk.Float64(tst, "c", 1e-15, c.Store.Get("c").(*Scalar).V, 0.25+a+b)
	chk.Array(tst, "∂c/∂u", 1e-15, c.Store.Get("c").(*Scalar).D, []float64{1 + 3 + 3, 8})
	if c.Store.Get("d") != nil {
		tst.Errorf("unknown property should be nil\n")
	}

	// keys
	kc, err := Resolve[*Scalar](sys, "c")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Ints(tst, "c depends", kc.Sample(sys).Depends(), []int{0})
	chk.Int(tst, "unused", len(sys.Unused()), 0)
	_, err = Resolve[*Vector](sys, "c")
	if err == nil {
		tst.Errorf("wrong type should fail\n")
	}
	_, err = Resolve[*Scalar](sys, "d")
	if err == nil {
		tst.Errorf("unknown property should fail\n")
	}

	// derivatives of c w.r.t u and v along the trial function
	SetTestState(c, 0.5, 2.0)
	CheckDeriv(tst, "c", sys, c, 1e-9, 1e-4, chk.Verbose, func() float64 {
		return kc.Get(c).V
	}, func(j int) float64 {
		return kc.Get(c).D[j] * c.Trial.S
	})
}

func Test_system02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system02")

	lay, _ := NewLayout("u")
	_, err := NewSystem(lay, 4)
	if err == nil {
		tst.Errorf("ndim=4 should fail\n")
		return
	}

	// duplicated producer
	sys, _ := NewSystem(lay, 1)
	sys.AddProvider(newSum(sys, "a", 1, 0))
	err = sys.AddProvider(newSum(sys, "a", 2, 0))
	if err == nil {
		tst.Errorf("duplicated producer should fail\n")
		return
	}
	io.Pforan("%v\n", err)

	// missing producer
	sys, _ = NewSystem(lay, 1)
	sys.AddProvider(newSum(sys, "a", 1, 0, "b"))
	err = sys.Setup()
	if err == nil {
		tst.Errorf("missing producer should fail\n")
		return
	}
	io.Pforan("%v\n", err)

	// cycle
	sys, _ = NewSystem(lay, 1)
	sys.AddProvider(newSum(sys, "a", 1, 0, "c"))
	sys.AddProvider(newSum(sys, "b", 1, 0, "a"))
	sys.AddProvider(newSum(sys, "c", 1, 0, "b"))
	err = sys.Setup()
	if err == nil {
		tst.Errorf("cycle should fail\n")
		return
	}
	io.Pforan("%v\n", err)

	// factory
	_, err = NewProvider(&Desc{Type: "none", Name: "a"}, sys)
	if err == nil {
		tst.Errorf("unknown provider should fail\n")
	}
	_, err = NewKernel(&Desc{Type: "none", Var: "u"}, sys)
	if err == nil {
		tst.Errorf("unknown kernel should fail\n")
	}

	// Eval before Setup
	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("Eval before Setup should panic\n")
		}
	}()
	sys, _ = NewSystem(lay, 1)
	sys.Eval(sys.NewContext())
}

func Test_desc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("desc01")

	lay, _ := NewLayout("x", "mu", "eta1", "eta2")
	d := &Desc{
		Type:  "test",
		Var:   "mu",
		Vars:  map[string][]string{"phases": {"eta1", "eta2"}, "bad": {"eta3"}},
		Props: map[string][]string{"switching": {"h"}, "energies": {"alpha:f", "beta:f"}},
		Prms:  dbf.Params{&dbf.P{N: "L", V: 2}, &dbf.P{N: "component", V: 1}, &dbf.P{N: "half", V: 0.5}},
	}
	id, err := d.VarId(lay)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "var", id, 1)
	ids, err := d.VarIds(lay, "phases", 2)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Ints(tst, "phases", ids, []int{2, 3})
	ids, err = d.OptVarIds(lay, "normals")
	if err != nil || ids != nil {
		tst.Errorf("absent optional group should give nil ids\n")
		return
	}
	name, err := d.PropName("switching")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.String(tst, name, "h")
	chk.Float64(tst, "L", 1e-15, d.Param("L", 1), 2)
	chk.Float64(tst, "w", 1e-15, d.Param("w", 3), 3)
	idx, err := d.Index("component", 2)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "component", idx, 1)
	if err = d.CheckParams("L", "component", "half"); err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// errors
	errs := []error{}
	_, err = d.VarIds(lay, "phases", 3)
	errs = append(errs, err)
	_, err = d.VarIds(lay, "bad", 0)
	errs = append(errs, err)
	_, err = d.VarIds(lay, "none", 0)
	errs = append(errs, err)
	_, err = d.PropName("energies")
	errs = append(errs, err)
	_, err = d.ReqParam("w")
	errs = append(errs, err)
	_, err = d.Index("half", 2)
	errs = append(errs, err)
	_, err = d.Index("component", 1)
	errs = append(errs, err)
	errs = append(errs, d.CheckParams("L"))
	_, err = (&Desc{Type: "test"}).VarId(lay)
	errs = append(errs, err)
	for i, err := range errs {
		if err == nil {
			tst.Errorf("case %d should fail\n", i)
			continue
		}
		io.Pforan("%v\n", err)
	}
}
