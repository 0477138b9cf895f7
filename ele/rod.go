// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Rod is a structural rod kernel (axial loads only) with 2 nodes and constant
// stiffness matrix; no numerical integration is needed
type Rod struct {

	// basic data
	X    [][]float64 // matrix of nodal coordinates [ndim][2]
	Nu   int         // total number of unknowns == ndim * 2
	Ndim int         // space dimension
	Mat  *Material   // E, A and Rho parameters
	L    float64     // length of rod

	// lumped switches the mass matrix from consistent to lumped
	lumped bool

	// constant matrices
	T [][]float64 // [2][nu] transformation: global to rod-aligned system
	K [][]float64 // [nu][nu] stiffness matrix
	M [][]float64 // [nu][nu] mass matrix

	// scratchpad
	ua []float64 // [2] local axial displacements
}

// register kernels
func init() {
	Register("rod", func(x [][]float64, mat *Material) (Kernel, error) {
		return newRod(x, mat, false)
	})
	Register("rod-lumped", func(x [][]float64, mat *Material) (Kernel, error) {
		return newRod(x, mat, true)
	})
}

func newRod(x [][]float64, mat *Material, lumped bool) (*Rod, error) {

	// check
	ndim := len(x)
	if ndim != 2 {
		return nil, chk.Err("rod kernel is not implemented for %dD", ndim)
	}
	if len(x[0]) != 2 {
		return nil, chk.Err("rod kernel requires 2 nodes. %d were given", len(x[0]))
	}

	// basic data
	var o Rod
	o.X = x
	o.Ndim = ndim
	o.Nu = ndim * 2
	o.Mat = mat
	o.lumped = lumped
	o.ua = make([]float64, 2)

	// geometry
	dx := x[0][1] - x[0][0]
	dy := x[1][1] - x[1][0]
	o.L = math.Sqrt(dx*dx + dy*dy)
	if o.L < 1e-14 {
		return nil, chk.Err("rod has zero length")
	}

	// global-to-local transformation matrix
	c := dx / o.L
	s := dy / o.L
	o.T = [][]float64{
		{c, s, 0, 0},
		{0, 0, c, s},
	}

	// K and M matrices
	α := mat.E * mat.A / o.L
	o.K = [][]float64{
		{+α * c * c, +α * c * s, -α * c * c, -α * c * s},
		{+α * c * s, +α * s * s, -α * c * s, -α * s * s},
		{-α * c * c, -α * c * s, +α * c * c, +α * c * s},
		{-α * c * s, -α * s * s, +α * c * s, +α * s * s},
	}
	if lumped {
		μ := mat.Rho * mat.A * o.L / 2.0
		o.M = [][]float64{
			{μ, 0, 0, 0},
			{0, μ, 0, 0},
			{0, 0, μ, 0},
			{0, 0, 0, μ},
		}
	} else {
		β := mat.Rho * mat.A * o.L / 6.0
		o.M = [][]float64{
			{2.0 * β, 0.0, 1.0 * β, 0.0},
			{0.0, 2.0 * β, 0.0, 1.0 * β},
			{1.0 * β, 0.0, 2.0 * β, 0.0},
			{0.0, 1.0 * β, 0.0, 2.0 * β},
		}
	}
	return &o, nil
}

// Ndof returns the number of local unknowns
func (o *Rod) Ndof() int { return o.Nu }

// Evaluate fills the local matrices and the internal force vector
func (o *Rod) Evaluate(l *Local, ue, due []float64, t float64) (err error) {
	la.MatCopy(l.M, 1, o.M)
	la.MatCopy(l.K, 1, o.K)
	for i := 0; i < o.Nu; i++ {
		l.F[i] = 0
		for j := 0; j < o.Nu; j++ {
			l.F[i] += o.K[i][j] * ue[j]
		}
	}
	return
}

// AxialStress computes the axial stress for given local displacements
func (o *Rod) AxialStress(ue []float64) float64 {
	for i := 0; i < 2; i++ {
		o.ua[i] = 0
		for j := 0; j < o.Nu; j++ {
			o.ua[i] += o.T[i][j] * ue[j]
		}
	}
	εa := (o.ua[1] - o.ua[0]) / o.L // axial strain
	return o.Mat.E * εa
}
