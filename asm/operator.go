// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "github.com/cpmech/gosl/la"

// Operator is a matrix seen by solvers: sparse for full-order systems, dense
// for reduced ones
type Operator interface {
	Size() (m, n int)
	ToDense() [][]float64
	MulVecAdd(y []float64, alp float64, x []float64) // y += alp*A*x
}

// Dense is a dense Operator
type Dense struct {
	A [][]float64
}

// NewDense returns a new zeroed (m x n) dense operator
func NewDense(m, n int) *Dense {
	return &Dense{A: la.MatAlloc(m, n)}
}

// Size returns the dimensions of this matrix
func (o *Dense) Size() (m, n int) {
	m = len(o.A)
	if m > 0 {
		n = len(o.A[0])
	}
	return
}

// ToDense returns the underlying matrix
func (o *Dense) ToDense() [][]float64 { return o.A }

// MulVecAdd computes y += alp * A * x
func (o *Dense) MulVecAdd(y []float64, alp float64, x []float64) {
	for i := range o.A {
		for j, v := range o.A[i] {
			y[i] += alp * v * x[j]
		}
	}
}
