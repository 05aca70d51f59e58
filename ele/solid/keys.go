// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

// StressKeys returns the names of the independent stress components
func StressKeys(ndim int) []string {
	switch ndim {
	case 1:
		return []string{"sx"}
	case 2:
		return []string{"sx", "sy", "sz", "sxy"}
	}
	return []string{"sx", "sy", "sz", "sxy", "syz", "szx"}
}

// StressValues returns the independent components of σ in the order of StressKeys
func StressValues(σ [][]float64, ndim int) []float64 {
	switch ndim {
	case 1:
		return []float64{σ[0][0]}
	case 2:
		return []float64{σ[0][0], σ[1][1], σ[2][2], σ[0][1]}
	}
	return []float64{σ[0][0], σ[1][1], σ[2][2], σ[0][1], σ[1][2], σ[2][0]}
}
