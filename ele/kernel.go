// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Kernel defines one term of a weak form evaluated @ a point for the current test
// function (residual) and trial function (Jacobian)
type Kernel interface {
	Var() int                                     // id of the variable whose equation receives this term
	Coupled() []int                               // ids of other variables this term depends on
	Residual(c *Context) float64                  // residual for test function c.Test
	Jacobian(c *Context) float64                  // ∂R/∂Var for trial function c.Trial
	OffDiagJacobian(c *Context, jvar int) float64 // ∂R/∂u_jvar for trial function c.Trial
}

// Coupling collects ids of coupled variables excluding the kernel variable
type Coupling struct {
	V    int   // kernel variable
	Cpld []int // coupled variables
}

// Var returns the kernel variable
func (o *Coupling) Var() int { return o.V }

// Coupled returns the coupled variables
func (o *Coupling) Coupled() []int { return o.Cpld }

// Add adds coupled variables, skipping the kernel variable and repeated ids
func (o *Coupling) Add(ids ...int) {
	for _, id := range ids {
		if id < 0 || id == o.V {
			continue
		}
		found := false
		for _, c := range o.Cpld {
			if c == id {
				found = true
				break
			}
		}
		if !found {
			o.Cpld = append(o.Cpld, id)
		}
	}
}
