// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ecsw selects a sparse nonnegative element weighting that
// approximates the assembled reduced internal force over a set of training
// snapshots (energy-conserving sampling and weighting)
package ecsw

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// dropping threshold for weights driven to the boundary in the inner loop
const ZERO_WEIGHT = 1e-12

// lsqCols solves the unconstrained least-squares problem restricted to the
// given columns of G: min ‖G[:,cols]・z − b‖₂
func lsqCols(G *mat.Dense, cols []int, b []float64) (z []float64, err error) {
	m, _ := G.Dims()
	A := mat.NewDense(m, len(cols), nil)
	for k, j := range cols {
		for i := 0; i < m; i++ {
			A.Set(i, k, G.At(i, j))
		}
	}
	var x mat.VecDense
	if err := x.SolveVec(A, mat.NewVecDense(m, b)); err != nil {
		return nil, chk.Err("least-squares solve on %d columns failed: %v", len(cols), err)
	}
	z = make([]float64, len(cols))
	for k := range cols {
		z[k] = x.AtVec(k)
	}
	return
}

// restoreFeasibility is the Lawson-Hanson inner loop: given the current
// feasible weights xiE over the active columns and an unconstrained
// least-squares solution z with negative entries, it steps from xiE toward z
// as far as feasibility allows, drops the columns driven to zero, and
// re-solves, until the restricted solution is strictly positive. It returns
// the surviving columns and their weights.
func restoreFeasibility(G *mat.Dense, cols []int, xiE, z, b []float64) ([]int, []float64, error) {
	for {
		neg := false
		for _, v := range z {
			if v <= 0 {
				neg = true
				break
			}
		}
		if !neg {
			return cols, z, nil
		}

		// largest feasible step alpha in direction z - xiE
		alpha := 1.0
		for k, v := range z {
			if v <= 0 {
				if a := xiE[k] / (xiE[k] - v); a < alpha {
					alpha = a
				}
			}
		}
		for k := range xiE {
			xiE[k] += alpha * (z[k] - xiE[k])
		}

		// drop columns at the boundary
		var ncols []int
		var nxi []float64
		for k, j := range cols {
			if xiE[k] > ZERO_WEIGHT {
				ncols = append(ncols, j)
				nxi = append(nxi, xiE[k])
			}
		}
		if len(ncols) == 0 {
			return nil, nil, chk.Err("all weights were driven to zero")
		}
		cols, xiE = ncols, nxi
		var err error
		z, err = lsqCols(G, cols, b)
		if err != nil {
			return nil, nil, err
		}
	}
}
