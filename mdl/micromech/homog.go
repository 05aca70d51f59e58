// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micromech

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/souravmat-git/gibbs-sub001/mdl/dense"
)

// Homogenizer computes the effective response of a chain of elastic phases joined by
// sharp interfaces; interface m separates phases m and m+1
//
//   phase strains:  ε_k = ε + Σ_m c_km J_m    c_km = [m<k] - H_m    H_m = Σ_{j>m} h_j
//   jumps:          J_m = sym(a_m ⊗ n_m)      n_m = -g_m / |g_m|
//   stresses:       σ_k = C_k:(ε_k - ε*_k)    σ = Σ h_k σ_k
//   energies:       ψ_k = ½ (ε_k - ε*_k):σ_k  ψ = Σ h_k ψ_k
//   driving forces: F_r = ψ_r - σ:Σ_{m<r} J_m
//   tractions:      T_m = (σ_{m+1} - σ_m)⋅n_m
//
// With the rank-one scheme, the amplitudes a_m are either solved from T_m = 0 or given
// (jump variables). The voigt scheme uses J_m = 0. Inactive interfaces (undefined normal)
// have T_m = a_m. Derivatives are taken w.r.t. the inputs x = (ε, h, g, a); see Idx*
type Homogenizer struct {
	Phases []*Elastic // elastic phases
	Voigt  bool       // use J = 0
	Given  bool       // amplitudes are given instead of solved
	Tol    float64    // relative tolerance to detect singular systems
	N      int        // number of phases
	Nint   int        // number of interfaces
	Np     int        // number of inputs
}

// NewHomogenizer returns a new structure
//  scheme -- "rank-one" or "voigt"
//  given  -- amplitudes are given (rank-one only)
func NewHomogenizer(phases []*Elastic, scheme string, given bool) (o *Homogenizer, err error) {
	if len(phases) < 2 {
		return nil, chk.Err("homogenization requires at least 2 phases. %d is invalid", len(phases))
	}
	o = &Homogenizer{Phases: phases, Given: given, Tol: 1e-10}
	switch scheme {
	case "rank-one":
	case "voigt":
		if given {
			return nil, chk.Err("homogenization: given amplitudes cannot be used with the voigt scheme")
		}
		o.Voigt = true
	default:
		return nil, chk.Err("homogenization scheme %q is not available; use \"rank-one\" or \"voigt\"", scheme)
	}
	o.N = len(phases)
	o.Nint = o.N - 1
	o.Np = 9 + o.N + 6*o.Nint
	return
}

// IdxEps returns the input index of ε_ij
func (o Homogenizer) IdxEps(i, j int) int { return 3*i + j }

// IdxH returns the input index of h_r
func (o Homogenizer) IdxH(r int) int { return 9 + r }

// IdxG returns the input index of g_m,l (gradient defining the normal of interface m)
func (o Homogenizer) IdxG(m, l int) int { return 9 + o.N + 3*m + l }

// IdxA returns the input index of a_m,l (amplitude of the jump at interface m)
func (o Homogenizer) IdxA(m, l int) int { return 9 + o.N + 3*o.Nint + 3*m + l }

// State holds the homogenized response and its derivatives w.r.t. the inputs
type State struct {
	Active     []bool        // [nint] interface normal is defined
	Degenerate bool          // the traction system is singular; jumps are zero
	Nrm        [][]float64   // [nint][3] normals
	A          [][]float64   // [nint][3] amplitudes
	J          [][][]float64 // [nint][3][3] strain jumps
	Eps        [][][]float64 // [nphases][3][3] phase strains
	Sig        [][][]float64 // [nphases][3][3] phase stresses
	Psi        []float64     // [nphases] phase energies
	S          [][]float64   // [3][3] overall stress
	Energy     float64       // overall energy
	F          []float64     // [nphases] driving forces
	T          [][]float64   // [nint][3] traction jumps

	// derivatives; the last index is the input index
	DA   [][][]float64   // [nint][3][np]
	DJ   [][][][]float64 // [nint][3][3][np]
	DEps [][][][]float64 // [nphases][3][3][np]
	DSig [][][][]float64 // [nphases][3][3][np]
	DS   [][][]float64   // [3][3][np]
	DF   [][]float64     // [nphases][np]
	DT   [][][]float64   // [nint][3][np]
	dn   [][][]float64   // [nint][3][3] dn_m,i/dg_m,j
	c    [][]float64     // [nphases][nint] c_km
	da   [][]float64     // [3nint][np] da/dx
}

// NewState allocates a new structure
func (o Homogenizer) NewState() *State {
	n, ni, np := o.N, o.Nint, o.Np
	return &State{
		Active: make([]bool, ni),
		Nrm:    utl.Alloc(ni, 3),
		A:      utl.Alloc(ni, 3),
		J:      utl.Deep3alloc(ni, 3, 3),
		Eps:    utl.Deep3alloc(n, 3, 3),
		Sig:    utl.Deep3alloc(n, 3, 3),
		Psi:    make([]float64, n),
		S:      utl.Alloc(3, 3),
		F:      make([]float64, n),
		T:      utl.Alloc(ni, 3),
		DA:     utl.Deep3alloc(ni, 3, np),
		DJ:     utl.Deep4alloc(ni, 3, 3, np),
		DEps:   utl.Deep4alloc(n, 3, 3, np),
		DSig:   utl.Deep4alloc(n, 3, 3, np),
		DS:     utl.Deep3alloc(3, 3, np),
		DF:     utl.Alloc(n, np),
		DT:     utl.Deep3alloc(ni, 3, np),
		dn:     utl.Deep3alloc(ni, 3, 3),
		c:      utl.Alloc(n, ni),
		da:     utl.Alloc(3*ni, np),
	}
}

// Calc computes the homogenized response
//  eps -- [3][3] overall strain
//  h   -- [nphases] phase weights
//  g   -- [nint][3] gradients defining the interface normals
//  a   -- [nint][3] given amplitudes; ignored unless Given
func (o Homogenizer) Calc(s *State, eps [][]float64, h []float64, g, a [][]float64) {

	// normals
	for m := 0; m < o.Nint; m++ {
		s.Active[m] = NormalDeriv(s.dn[m], g[m])
		Normal(s.Nrm[m], g[m])
	}

	// given amplitudes
	s.Degenerate = false
	if o.Given {
		for m := 0; m < o.Nint; m++ {
			copy(s.A[m], a[m])
		}
		o.evaluate(s, eps, h)
		for m := 0; m < o.Nint; m++ {
			for i := 0; i < 3; i++ {
				zero(s.DA[m][i])
				s.DA[m][i][o.IdxA(m, i)] = 1
			}
		}
		return
	}

	// state with zero jumps
	for m := 0; m < o.Nint; m++ {
		s.A[m][0], s.A[m][1], s.A[m][2] = 0, 0, 0
	}
	o.evaluate(s, eps, h)
	if o.Voigt {
		o.zeroJumps(s)
		o.chain(s, false)
		return
	}

	// traction system over active interfaces: T(a) = T(0) + (∂T/∂a) a = 0
	var act []int
	for m := 0; m < o.Nint; m++ {
		if s.Active[m] {
			act = append(act, m)
		}
	}
	if len(act) == 0 {
		o.zeroJumps(s)
		o.chain(s, false)
		return
	}
	n := 3 * len(act)
	mat, inv := utl.Alloc(n, n), utl.Alloc(n, n)
	rhs := make([]float64, n)
	for I, m := range act {
		for i := 0; i < 3; i++ {
			rhs[3*I+i] = -s.T[m][i]
			for J, p := range act {
				for k := 0; k < 3; k++ {
					mat[3*I+i][3*J+k] = s.DT[m][i][o.IdxA(p, k)]
				}
			}
		}
	}
	if !dense.Inverse(inv, mat, o.Tol) {
		s.Degenerate = true
		o.zeroJumps(s)
		o.chain(s, false)
		return
	}
	for I, m := range act {
		for i := 0; i < 3; i++ {
			s.A[m][i] = 0
			for J := 0; J < n; J++ {
				s.A[m][i] += inv[3*I+i][J] * rhs[J]
			}
		}
	}

	// state at solution and implicit derivatives da/dx = -(∂T/∂a)⁻¹ ∂T/∂x
	o.evaluate(s, eps, h)
	for I := range s.da {
		zero(s.da[I])
	}
	for I, m := range act {
		for i := 0; i < 3; i++ {
			da := s.da[3*m+i]
			for q := 0; q < o.IdxA(0, 0); q++ {
				for J, p := range act {
					for k := 0; k < 3; k++ {
						da[q] -= inv[3*I+i][3*J+k] * s.DT[p][k][q]
					}
				}
			}
		}
	}
	o.chain(s, true)
}

// zeroJumps sets amplitudes, jumps and their derivatives to zero
func (o Homogenizer) zeroJumps(s *State) {
	for m := 0; m < o.Nint; m++ {
		for i := 0; i < 3; i++ {
			s.A[m][i] = 0
			zero(s.DA[m][i])
			for j := 0; j < 3; j++ {
				s.J[m][i][j] = 0
				zero(s.DJ[m][i][j])
			}
		}
	}
	for I := range s.da {
		zero(s.da[I])
	}
}

// chain applies dy/dx = ∂y/∂x + ∂y/∂a da/dx to all outputs and removes the amplitude inputs
func (o Homogenizer) chain(s *State, solved bool) {
	apply := func(d []float64) {
		if solved {
			for I := 0; I < 3*o.Nint; I++ {
				dyda := d[o.IdxA(0, 0)+I]
				if dyda == 0 {
					continue
				}
				for q := 0; q < o.IdxA(0, 0); q++ {
					d[q] += dyda * s.da[I][q]
				}
			}
		}
		for q := o.IdxA(0, 0); q < o.Np; q++ {
			d[q] = 0
		}
	}
	for m := 0; m < o.Nint; m++ {
		for i := 0; i < 3; i++ {
			copy(s.DA[m][i], s.da[3*m+i])
			apply(s.DT[m][i])
			for j := 0; j < 3; j++ {
				apply(s.DJ[m][i][j])
			}
		}
	}
	for k := 0; k < o.N; k++ {
		apply(s.DF[k])
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				apply(s.DEps[k][i][j])
				apply(s.DSig[k][i][j])
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			apply(s.DS[i][j])
		}
	}
}

// evaluate computes all outputs and their partial derivatives at fixed amplitudes
func (o Homogenizer) evaluate(s *State, eps [][]float64, h []float64) {

	// coefficients c_km = [m<k] - H_m
	for m := 0; m < o.Nint; m++ {
		H := 0.0
		for j := m + 1; j < o.N; j++ {
			H += h[j]
		}
		for k := 0; k < o.N; k++ {
			s.c[k][m] = -H
			if m < k {
				s.c[k][m] += 1
			}
		}
	}

	// jumps J_m = sym(a_m ⊗ n_m)
	for m := 0; m < o.Nint; m++ {
		a, n := s.A[m], s.Nrm[m]
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				s.J[m][i][j] = 0.5 * (a[i]*n[j] + a[j]*n[i])
				d := s.DJ[m][i][j]
				zero(d)
				for l := 0; l < 3; l++ {
					d[o.IdxG(m, l)] = 0.5 * (a[i]*s.dn[m][j][l] + a[j]*s.dn[m][i][l])
					d[o.IdxA(m, l)] = 0.5 * (δ(i, l)*n[j] + δ(j, l)*n[i])
				}
			}
		}
	}

	// phase strains, stresses and energies
	for k := 0; k < o.N; k++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				s.Eps[k][i][j] = eps[i][j]
				d := s.DEps[k][i][j]
				zero(d)
				d[o.IdxEps(i, j)] = 1
				for m := 0; m < o.Nint; m++ {
					s.Eps[k][i][j] += s.c[k][m] * s.J[m][i][j]
					for q, v := range s.DJ[m][i][j] {
						d[q] += s.c[k][m] * v
					}
					// ∂c_km/∂h_r = -1 for r > m
					for r := m + 1; r < o.N; r++ {
						d[o.IdxH(r)] -= s.J[m][i][j]
					}
				}
			}
		}
		C := o.Phases[k].C
		o.Phases[k].Stress(s.Sig[k], s.Eps[k])
		s.Psi[k] = o.Phases[k].Energy(s.Eps[k], s.Sig[k])
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				d := s.DSig[k][i][j]
				zero(d)
				for p := 0; p < 3; p++ {
					for r := 0; r < 3; r++ {
						if C[i][j][p][r] == 0 {
							continue
						}
						for q, v := range s.DEps[k][p][r] {
							d[q] += C[i][j][p][r] * v
						}
					}
				}
			}
		}
	}

	// overall stress and energy
	s.Energy = 0
	for k := 0; k < o.N; k++ {
		s.Energy += h[k] * s.Psi[k]
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s.S[i][j] = 0
			d := s.DS[i][j]
			zero(d)
			for k := 0; k < o.N; k++ {
				s.S[i][j] += h[k] * s.Sig[k][i][j]
				for q, v := range s.DSig[k][i][j] {
					d[q] += h[k] * v
				}
				d[o.IdxH(k)] += s.Sig[k][i][j]
			}
		}
	}

	// driving forces F_r = ψ_r - σ:Q_r with Q_r = Σ_{m<r} J_m
	for r := 0; r < o.N; r++ {
		s.F[r] = s.Psi[r]
		d := s.DF[r]
		zero(d)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				for q, v := range s.DEps[r][i][j] {
					d[q] += s.Sig[r][i][j] * v
				}
				for m := 0; m < r; m++ {
					s.F[r] -= s.S[i][j] * s.J[m][i][j]
					for q := range d {
						d[q] -= s.DS[i][j][q]*s.J[m][i][j] + s.S[i][j]*s.DJ[m][i][j][q]
					}
				}
			}
		}
	}

	// traction jumps
	for m := 0; m < o.Nint; m++ {
		for i := 0; i < 3; i++ {
			d := s.DT[m][i]
			zero(d)
			if !s.Active[m] {
				s.T[m][i] = s.A[m][i]
				d[o.IdxA(m, i)] = 1
				continue
			}
			s.T[m][i] = 0
			for j := 0; j < 3; j++ {
				jump := s.Sig[m+1][i][j] - s.Sig[m][i][j]
				s.T[m][i] += jump * s.Nrm[m][j]
				for q := range d {
					d[q] += (s.DSig[m+1][i][j][q] - s.DSig[m][i][j][q]) * s.Nrm[m][j]
				}
				for l := 0; l < 3; l++ {
					d[o.IdxG(m, l)] += jump * s.dn[m][j][l]
				}
			}
		}
	}
}

// zero sets all entries of v to zero
func zero(v []float64) {
	for i := range v {
		v[i] = 0
	}
}
