// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/souravmat-git/gibbs-sub001/tests"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	for n := 0; n < shape.Nverts; n++ {

		// compute function
		shape.CalcAtR(shape.NatCoords[n], false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR checks dSdR derivatives of shape structures
func CheckDSdR(tst *testing.T, shape *Shape, r, tol float64, verbose bool) {
	shape.CalcAtR(r, true)
	ana := append([]float64{}, shape.DSdR...)
	for n := 0; n < shape.Nverts; n++ {
		tests.Deriv(tst, io.Sf("%s: dS%d/dR", shape.Type, n), tol, ana[n], r, 1e-3, verbose, func(x float64) float64 {
			shape.CalcAtR(x, false)
			return shape.S[n]
		})
	}
}

// CheckDSdx checks G=dSdx derivatives of shape structures @ real coordinate xp
func CheckDSdx(tst *testing.T, shape *Shape, x []float64, xp, tol float64, verbose bool) {
	r, err := shape.InvMap(x, xp)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}
	if err = shape.CalcAtIp(x, r); err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	G := append([]float64{}, shape.G...)
	for n := 0; n < shape.Nverts; n++ {
		tests.Deriv(tst, io.Sf("%s: dS%d/dx", shape.Type, n), tol, G[n], xp, 1e-3, verbose, func(s float64) float64 {
			r, _ := shape.InvMap(x, s)
			shape.CalcAtR(r, false)
			return shape.S[n]
		})
	}
}
