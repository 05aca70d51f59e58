// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements helpers to check analytical derivatives against finite differences
package tests

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// DerivCen5 approximates df/dx @ x using the 5-point central rule
func DerivCen5(x, h float64, f func(x float64) float64) float64 {
	return (f(x-2.0*h) - 8.0*f(x-h) + 8.0*f(x+h) - f(x+2.0*h)) / (12.0 * h)
}

// DerivCen approximates df/dx @ x using the 3-point central rule
func DerivCen(x, h float64, f func(x float64) float64) float64 {
	return (f(x+h) - f(x-h)) / (2.0 * h)
}

// Deriv compares an analytical derivative with the 5-point numerical one
func Deriv(tst *testing.T, msg string, tol, ana, x, h float64, verbose bool, f func(x float64) float64) {
	chk.AnaNum(tst, msg, tol, ana, DerivCen5(x, h, f), verbose)
}

// DerivRel compares an analytical derivative with the 5-point numerical one using a
// tolerance relative to max(1, |ana|)
func DerivRel(tst *testing.T, msg string, tol, ana, x, h float64, verbose bool, f func(x float64) float64) {
	chk.AnaNum(tst, msg, RelTol(tol, ana), ana, DerivCen5(x, h, f), verbose)
}

// RelTol returns tol scaled by max(1, |ref|)
func RelTol(tol, ref float64) float64 {
	return tol * math.Max(1.0, math.Abs(ref))
}
