// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package asm implements DOF numbering and the assembly of element
// contributions into global sparse operators
package asm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// SpMat is a sparse matrix with a fixed nonzero pattern. The pattern is laid
// out once, before numeric assembly, and accumulation happens in-place at O(1)
// per entry; assembly never creates new nonzero structure.
type SpMat struct {
	m, n int
	i, j []int
	v    []float64
	pos  map[int]int // i*n+j => slot in v
}

// NewSpMat returns a new (m x n) sparse matrix with an empty pattern
func NewSpMat(m, n int) *SpMat {
	return &SpMat{m: m, n: n, pos: make(map[int]int)}
}

// Size returns the dimensions of this matrix
func (o *SpMat) Size() (m, n int) { return o.m, o.n }

// Nnz returns the number of entries in the pattern
func (o *SpMat) Nnz() int { return len(o.v) }

// AddToPattern inserts position (i,j) into the pattern, ignoring duplicates
func (o *SpMat) AddToPattern(i, j int) {
	if i < 0 || i >= o.m || j < 0 || j >= o.n {
		chk.Panic("position (%d,%d) is outside (%d x %d) matrix", i, j, o.m, o.n)
	}
	key := i*o.n + j
	if _, ok := o.pos[key]; ok {
		return
	}
	o.pos[key] = len(o.v)
	o.i = append(o.i, i)
	o.j = append(o.j, j)
	o.v = append(o.v, 0)
}

// Pattern returns a new matrix sharing this matrix's pattern with all values
// set to zero. The pattern maps are shared, so the clone must not call
// AddToPattern.
func (o *SpMat) Pattern() *SpMat {
	return &SpMat{m: o.m, n: o.n, i: o.i, j: o.j, v: make([]float64, len(o.v)), pos: o.pos}
}

// Start zeroes all values, keeping the pattern
func (o *SpMat) Start() {
	for k := range o.v {
		o.v[k] = 0
	}
}

// Put accumulates v at position (i,j), which must be part of the pattern
func (o *SpMat) Put(i, j int, v float64) {
	slot, ok := o.pos[i*o.n+j]
	if !ok {
		chk.Panic("position (%d,%d) is not in the preallocated pattern", i, j)
	}
	o.v[slot] += v
}

// Get returns the value at position (i,j); zero if outside the pattern
func (o *SpMat) Get(i, j int) float64 {
	slot, ok := o.pos[i*o.n+j]
	if !ok {
		return 0
	}
	return o.v[slot]
}

// Each calls fcn for every entry in the pattern
func (o *SpMat) Each(fcn func(i, j int, v float64)) {
	for k := range o.v {
		fcn(o.i[k], o.j[k], o.v[k])
	}
}

// ToDense returns a dense version of this matrix
func (o *SpMat) ToDense() (a [][]float64) {
	a = la.MatAlloc(o.m, o.n)
	for k := range o.v {
		a[o.i[k]][o.j[k]] += o.v[k]
	}
	return
}

// ToTriplet copies this matrix into a triplet, ready for sparse solvers
func (o *SpMat) ToTriplet(t *la.Triplet) {
	t.Init(o.m, o.n, len(o.v))
	for k := range o.v {
		t.Put(o.i[k], o.j[k], o.v[k])
	}
}

// MulVecAdd computes y += alp * A * x
func (o *SpMat) MulVecAdd(y []float64, alp float64, x []float64) {
	for k := range o.v {
		y[o.i[k]] += alp * o.v[k] * x[o.j[k]]
	}
}

// TrMulVecAdd computes y += alp * transpose(A) * x
func (o *SpMat) TrMulVecAdd(y []float64, alp float64, x []float64) {
	for k := range o.v {
		y[o.j[k]] += alp * o.v[k] * x[o.i[k]]
	}
}
