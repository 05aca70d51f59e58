// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micromech

import (
	"math"

	"github.com/souravmat-git/gibbs-sub001/mdl/dense"
)

// NormalTol is the smallest squared gradient norm defining an interface normal
var NormalTol = 1e-24

// Normal computes n = -g / |g|; n = 0 and ok = false if |g|² < NormalTol
func Normal(n, g []float64) (ok bool) {
	g2 := g[0]*g[0] + g[1]*g[1] + g[2]*g[2]
	if g2 < NormalTol {
		n[0], n[1], n[2] = 0, 0, 0
		return false
	}
	gn := math.Sqrt(g2)
	for i := 0; i < 3; i++ {
		n[i] = -g[i] / gn
	}
	return true
}

// NormalDeriv computes dn_i/dg_j = -(δ_ij - n_i n_j) / |g|; zero if the normal is undefined
func NormalDeriv(dn [][]float64, g []float64) (ok bool) {
	n := make([]float64, 3)
	ok = Normal(n, g)
	gn := math.Sqrt(g[0]*g[0] + g[1]*g[1] + g[2]*g[2])
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if ok {
				dn[i][j] = -(δ(i, j) - n[i]*n[j]) / gn
			} else {
				dn[i][j] = 0
			}
		}
	}
	return
}

// AcousticTensor computes K_il = n1_k C_kilm n2_m
func AcousticTensor(K [][]float64, C [][][][]float64, n1, n2 []float64) {
	for i := 0; i < 3; i++ {
		for l := 0; l < 3; l++ {
			K[i][l] = 0
			for k := 0; k < 3; k++ {
				for m := 0; m < 3; m++ {
					K[i][l] += n1[k] * C[k][i][l][m] * n2[m]
				}
			}
		}
	}
}

// Invert3 inverts a 3×3 tensor; returns false if |det K| ≤ tol max|K_ij|³
func Invert3(Ki, K [][]float64, tol float64) (ok bool) {
	_, ok = dense.Inv3(Ki, K, tol)
	return
}
