// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecsw

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// ConvergenceError reports that the greedy selection hit its iteration cap
// (or stagnated) before reaching the requested tolerance. It carries the
// best residual ratio ‖G・ξ − b‖/‖b‖ achieved.
type ConvergenceError struct {
	BestRatio  float64
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return io.Sf("sparse weighting did not converge after %d iterations. best residual ratio = %g", e.Iterations, e.BestRatio)
}

// SNNLS greedily solves the sparse nonnegative least-squares problem
//
//	min |E|  subject to  ‖G・ξ − b‖₂ ≤ tau・‖b‖₂,  ξ ≥ 0,  ξ_j = 0 for j ∉ E
//
// Each iteration adds the column most correlated with the residual (lowest
// index on ties) to the candidate set E and restores nonnegativity with a
// Lawson-Hanson inner loop. Columns the inner loop drives to zero leave the
// weighted set but stay in E, so they are never selected again; every
// iteration therefore grows E by one and the loop runs at most n times. On
// failure the returned error is a *ConvergenceError carrying the best
// residual ratio.
//
// G has one column per element; its rows stack, snapshot by snapshot, the
// reduced per-element force contributions. Returns the full-length weight
// vector xi (zero outside the selection) and the sorted selection etilde.
func SNNLS(Gmat [][]float64, b []float64, tau float64) (xi []float64, etilde []int, err error) {

	// setup
	m := len(Gmat)
	if m == 0 || len(Gmat[0]) == 0 {
		return nil, nil, chk.Err("training matrix is empty")
	}
	n := len(Gmat[0])
	if len(b) != m {
		return nil, nil, chk.Err("right-hand side has %d entries. %d are required", len(b), m)
	}
	G := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		G.SetRow(i, Gmat[i])
	}
	normb := la.VecNorm(b)
	xi = make([]float64, n)
	if normb == 0 {
		return xi, nil, nil
	}

	// residual r = G・ξ − b, starting from ξ = 0
	r := make([]float64, m)
	for i := range r {
		r[i] = -b[i]
	}
	var cols []int
	var xiE []float64
	inE := make([]bool, n)
	nE := 0
	best := 1.0

	for iter := 0; ; iter++ {
		ratio := la.VecNorm(r) / normb
		if ratio < best {
			best = ratio
		}
		if ratio <= tau {
			break
		}
		if nE == n {
			return nil, nil, &ConvergenceError{BestRatio: best, Iterations: iter}
		}

		// most correlated column: mu = Gᵗ・(b − G・ξ) = −Gᵗ・r
		jbest, mubest := -1, 0.0
		for j := 0; j < n; j++ {
			if inE[j] {
				continue
			}
			mu := 0.0
			for i := 0; i < m; i++ {
				mu -= G.At(i, j) * r[i]
			}
			if mu > mubest {
				jbest, mubest = j, mu
			}
		}
		if jbest < 0 {
			return nil, nil, &ConvergenceError{BestRatio: best, Iterations: iter}
		}
		cols = append(cols, jbest)
		xiE = append(xiE, 0)
		inE[jbest] = true
		nE++

		// nonnegative least squares on the selection
		z, err := lsqCols(G, cols, b)
		if err != nil {
			return nil, nil, err
		}
		cols, xiE, err = restoreFeasibility(G, cols, xiE, z, b)
		if err != nil {
			return nil, nil, err
		}

		// updated residual
		for i := 0; i < m; i++ {
			r[i] = -b[i]
			for k, j := range cols {
				r[i] += G.At(i, j) * xiE[k]
			}
		}
	}

	for k, j := range cols {
		xi[j] = xiE[k]
	}
	for j, w := range xi {
		if w > 0 {
			etilde = append(etilde, j)
		}
	}
	sort.Ints(etilde)
	return xi, etilde, nil
}
