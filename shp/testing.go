// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

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

// CheckPartitionOfUnity checks that shape functions sum to 1.0 at all integration points
func CheckPartitionOfUnity(tst *testing.T, shape *Shape, tol float64, verbose bool) {
	for _, ip := range shape.Ips {
		shape.Func(shape.S, shape.DSdR, ip, false)
		sum := 0.0
		for m := 0; m < shape.Nverts; m++ {
			sum += shape.S[m]
		}
		if verbose {
			io.Pf("Σ S = %v\n", sum)
		}
		if math.Abs(sum-1.0) > tol {
			tst.Errorf("%s failed partition of unity with err = %g\n", shape.Type, math.Abs(sum-1.0))
			return
		}
	}
}

// CheckDSdR checks dSdR derivatives of shape structures
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	n := shape.Gndim
	chk.DerivVecVec(tst, "dS/dR", tol, shape.DSdR, r[:n], 1e-1, verbose, func(f, x []float64) error {
		shape.Func(f, nil, x, false) // f := S
		return nil
	})
}

// CheckDSdx checks G=dSdx derivatives of shape structures
func CheckDSdx(tst *testing.T, shape *Shape, xmat [][]float64, x []float64, tol float64, verbose bool) {

	// find r corresponding to x
	r := make([]float64, 3)
	err := shape.InvMap(r, x, xmat)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}

	// analytical
	err = shape.CalcAtR(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtR failed:\n%v", err)
		return
	}

	// numerical
	chk.DerivVecVec(tst, "dS/dx", tol, shape.G, x, 1e-1, verbose, func(f, x []float64) error {
		e := shape.InvMap(r, x, xmat)
		if e != nil {
			return e
		}
		e = shape.CalcAtR(xmat, r, false)
		copy(f, shape.S)
		return e
	})
}
