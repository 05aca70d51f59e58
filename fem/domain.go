// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"github.com/souravmat-git/gibbs-sub001/ele"
	"github.com/souravmat-git/gibbs-sub001/inp"
	"github.com/souravmat-git/gibbs-sub001/shp"
)

// Domain holds a uniform 1D mesh of line elements, the system and the solution @ nodes
//  Equations are ordered by node and then by variable: eq = n⋅nvars + v
type Domain struct {

	// mesh
	Sys   *ele.System    // system
	Msh   *inp.MeshData  // mesh data
	Shp   *shp.Shape     // shape of all elements
	X     []float64      // [nnodes] coordinates of nodes
	Conn  [][]int        // [nelem][nverts] connectivity
	Elems []*ele.Element // elements

	// solution
	Ny       int           // number of equations
	Sol      *ele.Solution // solution state
	Yold     []float64     // solution @ beginning of time step
	EssenBcs EssentialBcs  // constrained equations

	// linear system: prescribed equations are the known part of Kb
	Kb       *la.Equations   // Jacobian == dR/dy partitioned into unknown and known equations
	Fb       []float64       // [ny] residual == -R
	Wb       []float64       // [ny] increments δy
	LinSol   la.SparseSolver // linear solver
	InitLSol bool            // linear solver needs to be initialised prior to any further call
}

// NewDomain allocates a new domain
func NewDomain(sys *ele.System, msh *inp.MeshData, bcs []*inp.BcData, steady bool) (o *Domain, err error) {
	if sys.Ndim != 1 {
		return nil, chk.Err("domain requires ndim=1. ndim=%d is invalid", sys.Ndim)
	}
	o = &Domain{Sys: sys, Msh: msh}
	if o.Shp, err = shp.Get(msh.GetType()); err != nil {
		return nil, err
	}
	nvars := sys.Lay.Nvars()
	nv := o.Shp.Nverts
	nnodes := msh.Nelem*(nv-1) + 1
	o.X = utl.LinSpace(0, msh.Length, nnodes)

	// connectivity
	o.Conn = make([][]int, msh.Nelem)
	for e := 0; e < msh.Nelem; e++ {
		o.Conn[e] = make([]int, nv)
		for i, r := range o.Shp.NatCoords {
			o.Conn[e][i] = e*(nv-1) + int(math.Round((r+1)*float64(nv-1)/2))
		}
	}

	// elements
	nip := len(o.Shp.Ips)
	o.Elems = make([]*ele.Element, msh.Nelem)
	for e, verts := range o.Conn {
		x := o.coords(e)
		eqs := make([][]int, nv)
		for i, n := range verts {
			eqs[i] = make([]int, nvars)
			for v := 0; v < nvars; v++ {
				eqs[i][v] = o.Eq(n, v)
			}
		}
		xip := utl.Alloc(nip, 3)
		S := utl.Alloc(nip, nv)
		G := utl.Deep3alloc(nip, nv, 3)
		W := make([]float64, nip)
		for p, ip := range o.Shp.Ips {
			if err = o.Shp.CalcAtIp(x, ip.R); err != nil {
				return nil, chk.Err("element %d:\n%v", e, err)
			}
			for i := 0; i < nv; i++ {
				S[p][i] = o.Shp.S[i]
				G[p][i][0] = o.Shp.G[i]
				xip[p][0] += o.Shp.S[i] * x[i]
			}
			W[p] = ip.W * o.Shp.J
		}
		o.Elems[e], err = ele.NewElement(e, sys, eqs, xip, S, G, W)
		if err != nil {
			return nil, err
		}
	}

	// solution
	o.Ny = nnodes * nvars
	o.Sol = ele.NewSolution(o.Ny, steady)
	o.Yold = make([]float64, o.Ny)
	if err = o.EssenBcs.Init(o, bcs); err != nil {
		return nil, err
	}

	// linear system
	kx := make([]int, len(o.EssenBcs.Bcs))
	for i, bc := range o.EssenBcs.Bcs {
		kx[i] = bc.Eq
	}
	if len(kx) >= o.Ny {
		return nil, chk.Err("at least one equation must be free. ny=%d and %d are prescribed", o.Ny, len(kx))
	}
	nnz := 0
	for _, e := range o.Elems {
		nnz += e.Nnz()
	}
	o.Kb = la.NewEquations(o.Ny, kx)
	o.Kb.Alloc([]int{nnz, nnz, 0, 0}, false, true)
	o.Fb = make([]float64, o.Ny)
	o.Wb = make([]float64, o.Ny)
	o.LinSol = la.NewSparseSolver("umfpack")
	o.InitLSol = true
	return
}

// coords returns the coordinates of vertices of element e
func (o *Domain) coords(e int) (x []float64) {
	x = make([]float64, len(o.Conn[e]))
	for i, n := range o.Conn[e] {
		x[i] = o.X[n]
	}
	return
}

// Nnodes returns the number of nodes
func (o *Domain) Nnodes() int { return len(o.X) }

// Eq returns the equation number of variable id @ node n
func (o *Domain) Eq(n, id int) int { return n*o.Sys.Lay.Nvars() + id }

// SetIniVals sets initial values; variables without data start from zero.
// Essential boundary conditions override initial values
func (o *Domain) SetIniVals(ini []*inp.IniData) (err error) {
	o.Sol.Reset()
	for _, d := range ini {
		id, err := o.Sys.Lay.Id(d.Var)
		if err != nil {
			return err
		}
		for n, x := range o.X {
			o.Sol.Y[o.Eq(n, id)] = d.Value(x)
		}
	}
	o.EssenBcs.Apply(o.Sol.Y)
	return
}

// Integral returns ∫ u dx of variable id using the integration points of elements
func (o *Domain) Integral(id int) (res float64) {
	for e, verts := range o.Conn {
		x := o.coords(e)
		for _, ip := range o.Shp.Ips {
			o.Shp.CalcAtIp(x, ip.R)
			u := 0.0
			for i, n := range verts {
				u += o.Shp.S[i] * o.Sol.Y[o.Eq(n, id)]
			}
			res += u * ip.W * o.Shp.J
		}
	}
	return
}

// Values returns the nodal values of variable id
func (o *Domain) Values(id int) (u []float64) {
	u = make([]float64, len(o.X))
	for n := range o.X {
		u[n] = o.Sol.Y[o.Eq(n, id)]
	}
	return
}

// Fallbacks returns the number of integration points with properties computed by a
// fallback (e.g. clamped tables) during the last assembly
func (o *Domain) Fallbacks() (n int) {
	for _, e := range o.Elems {
		n += e.Nfallback
	}
	return
}

// Free releases the memory allocated by the linear solver
func (o *Domain) Free() {
	o.LinSol.Free()
}

// assemble computes the global residual Fb and the unknown part of the Jacobian Kb
func (o *Domain) assemble() (err error) {
	for i := range o.Fb {
		o.Fb[i] = 0
	}
	o.Kb.Start()
	for _, e := range o.Elems {
		if err = e.AddToRhs(o.Fb, o.Sol); err != nil {
			return
		}
		if err = e.AddToKb(o.Kb, o.Sol); err != nil {
			return
		}
	}
	return
}

// solve computes the increments Wb of unknown equations; prescribed increments are zero
func (o *Domain) solve() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("linear solver failed:\n%v", r)
		}
	}()
	if o.InitLSol {
		o.LinSol.Init(o.Kb.Auu, &la.SpArgs{})
		o.InitLSol = false
	}
	o.LinSol.Fact()
	o.Kb.SplitVector(o.Kb.Bu, o.Kb.Bk, o.Fb)
	o.LinSol.Solve(o.Kb.Xu, o.Kb.Bu, false)
	o.Kb.Xk.Fill(0)
	o.Kb.JoinVector(o.Wb, o.Kb.Xu, o.Kb.Xk)
	return
}
