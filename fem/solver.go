// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/souravmat-git/gibbs-sub001/inp"
)

// Step advances the solution by dt with backward Euler and Newton-Raphson iterations; the
// current solution is the initial guess. Steady domains ignore dt
//  Convergence: max|δy| < atol + rtol max|y|
func (o *Domain) Step(dt float64, ctl *inp.Control, verbose bool) (nit int, err error) {

	// backup
	copy(o.Yold, o.Sol.Y)
	if !o.Sol.Steady {
		o.Sol.T += dt
	}

	// message
	if verbose {
		io.Pf("%8s%23s%23s\n", "it", "max|R|", "max|δy|")
	}

	// iterations
	for it := 0; it < ctl.NmaxIt; it++ {

		// rates
		if !o.Sol.Steady {
			if err = o.Sol.BackwardEuler(o.Yold, dt); err != nil {
				return
			}
		}

		// residual and Jacobian
		if err = o.assemble(); err != nil {
			return
		}
		largFb := 0.0
		for _, I := range o.Kb.UtoF {
			largFb = math.Max(largFb, math.Abs(o.Fb[I]))
		}

		// solve
		if err = o.solve(); err != nil {
			return it + 1, chk.Err("cannot solve linear system @ iteration %d (t=%g):\n%v", it, o.Sol.T, err)
		}
		largDy, largY := 0.0, 0.0
		for i, δy := range o.Wb {
			o.Sol.Y[i] += δy
			largDy = math.Max(largDy, math.Abs(δy))
			largY = math.Max(largY, math.Abs(o.Sol.Y[i]))
		}
		if math.IsNaN(largDy) {
			return it + 1, chk.Err("NaN found @ iteration %d (t=%g)", it, o.Sol.T)
		}
		if verbose {
			io.Pf("%8d%23.15e%23.15e\n", it, largFb, largDy)
		}

		// converged
		if largDy < ctl.Atol+ctl.Rtol*largY {
			if n := o.Fallbacks(); n > 0 && verbose {
				io.Pfyel("%d integration point(s) with fallback properties (t=%g)\n", n, o.Sol.T)
			}
			if !o.Sol.Steady {
				err = o.Sol.BackwardEuler(o.Yold, dt)
			}
			return it + 1, err
		}
	}
	return ctl.NmaxIt, chk.Err("Newton-Raphson did not converge after %d iterations (t=%g)", ctl.NmaxIt, o.Sol.T)
}
