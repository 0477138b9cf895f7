// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bcs implements boundary conditions: Dirichlet elimination with
// general linear tying constraints, mesh tying and natural (load) conditions
package bcs

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gorom/asm"
)

// Bentry is one entry of a row of the constraint operator B
type Bentry struct {
	J int     // constrained-space column
	W float64 // weight
}

// Tie expresses one slave DOF as a linear combination of master DOFs
type Tie struct {
	Masters []int
	Weights []float64
}

// Dirichlet derives the constraint operator B mapping constrained
// (eliminated) DOF space to the unconstrained space:
//
//	u_unconstrained = B・u_constrained + prescribed(t)
//
// with constrain_matrix(A) = Bᵗ・A・B and constrain_vec(v) = Bᵗ・v.
// Update must be called after any constraint change before using the
// constrain/unconstrain operations.
type Dirichlet struct {

	// input
	Nu         int              // number of unconstrained DOFs
	prescribed map[int]fun.Func // eliminated DOF => value function; nil means zero
	ties       map[int]*Tie     // slave DOF => tie row

	// derived by Update
	Free  []int      // free DOF indices, ascending
	Cmap  []int      // [Nu] full DOF => constrained index; -1 if eliminated or slave
	Brows [][]Bentry // [Nu] rows of B; empty row for eliminated DOFs
	Nc    int        // number of constrained-space (free) DOFs

	updated bool
}

// NewDirichlet returns a new manager for a system with nu unconstrained DOFs
func NewDirichlet(nu int) *Dirichlet {
	return &Dirichlet{
		Nu:         nu,
		prescribed: make(map[int]fun.Func),
		ties:       make(map[int]*Tie),
	}
}

// ConstrainDofs eliminates DOFs with zero prescribed values
func (o *Dirichlet) ConstrainDofs(dofs ...int) {
	for _, d := range dofs {
		o.prescribed[d] = nil
	}
	o.updated = false
}

// PrescribeDof eliminates one DOF with a time-dependent prescribed value
func (o *Dirichlet) PrescribeDof(dof int, fcn fun.Func) {
	o.prescribed[dof] = fcn
	o.updated = false
}

// AddLinearConstraint ties a slave DOF to a linear combination of master DOFs
func (o *Dirichlet) AddLinearConstraint(slave int, masters []int, weights []float64) (err error) {
	if len(masters) != len(weights) {
		return chk.Err("masters and weights must have the same length: %d != %d", len(masters), len(weights))
	}
	if len(masters) == 0 {
		return chk.Err("tie for DOF %d has no masters", slave)
	}
	o.ties[slave] = &Tie{Masters: masters, Weights: weights}
	o.updated = false
	return
}

// Update rebuilds B from the current set of constraints and ties
func (o *Dirichlet) Update() (err error) {

	// classify DOFs
	o.Free = o.Free[:0]
	o.Cmap = make([]int, o.Nu)
	for I := 0; I < o.Nu; I++ {
		o.Cmap[I] = -1
	}
	for I := 0; I < o.Nu; I++ {
		_, pres := o.prescribed[I]
		_, tied := o.ties[I]
		if pres && tied {
			return chk.Err("DOF %d cannot be prescribed and tied at the same time", I)
		}
		if !pres && !tied {
			o.Free = append(o.Free, I)
		}
	}
	for d := range o.prescribed {
		if d < 0 || d >= o.Nu {
			return chk.Err("prescribed DOF %d is out of range", d)
		}
	}
	sort.Ints(o.Free)
	o.Nc = len(o.Free)
	for c, I := range o.Free {
		o.Cmap[I] = c
	}

	// rows of B
	o.Brows = make([][]Bentry, o.Nu)
	for _, I := range o.Free {
		o.Brows[I] = []Bentry{{o.Cmap[I], 1}}
	}
	for slave, tie := range o.ties {
		if slave < 0 || slave >= o.Nu {
			return chk.Err("tied DOF %d is out of range", slave)
		}
		row := make([]Bentry, len(tie.Masters))
		for k, m := range tie.Masters {
			if m < 0 || m >= o.Nu {
				return chk.Err("master DOF %d is out of range", m)
			}
			c := o.Cmap[m]
			if c < 0 {
				return chk.Err("master DOF %d of slave %d must be free (chained or eliminated masters are not supported)", m, slave)
			}
			row[k] = Bentry{c, tie.Weights[k]}
		}
		o.Brows[slave] = row
	}
	o.updated = true
	return
}

// check returns an error if Update was not called after the last change
func (o *Dirichlet) check() error {
	if !o.updated {
		return chk.Err("constraints changed. Update must be called before using the constraint operator")
	}
	return nil
}

// Nfree returns the constrained-space size
func (o *Dirichlet) Nfree() int { return o.Nc }

// ConstrainVec computes Bᵗ・v, mapping an unconstrained vector to the
// constrained space
func (o *Dirichlet) ConstrainVec(v []float64) (vc []float64, err error) {
	if err = o.check(); err != nil {
		return
	}
	if len(v) != o.Nu {
		return nil, chk.Err("vector has length %d. %d is required", len(v), o.Nu)
	}
	vc = make([]float64, o.Nc)
	for I := 0; I < o.Nu; I++ {
		for _, e := range o.Brows[I] {
			vc[e.J] += e.W * v[I]
		}
	}
	return
}

// UnconstrainVec computes B・u and injects prescribed values at time t,
// mapping a constrained vector back to the full unconstrained space
func (o *Dirichlet) UnconstrainVec(u []float64, t float64) (v []float64, err error) {
	if err = o.check(); err != nil {
		return
	}
	if len(u) != o.Nc {
		return nil, chk.Err("vector has length %d. %d is required", len(u), o.Nc)
	}
	v = make([]float64, o.Nu)
	for I := 0; I < o.Nu; I++ {
		for _, e := range o.Brows[I] {
			v[I] += e.W * u[e.J]
		}
	}
	for d, fcn := range o.prescribed {
		if fcn != nil {
			v[d] = fcn.F(t, nil)
		}
	}
	return
}

// UnconstrainMat computes B・Q columnwise, lifting a constrained-space basis
// (Nc x k) to the unconstrained space (Nu x k). Prescribed values are not
// injected.
func (o *Dirichlet) UnconstrainMat(Q [][]float64) (P [][]float64, err error) {
	if err = o.check(); err != nil {
		return
	}
	if len(Q) != o.Nc {
		return nil, chk.Err("matrix has %d rows. %d are required", len(Q), o.Nc)
	}
	k := 0
	if o.Nc > 0 {
		k = len(Q[0])
	}
	P = make([][]float64, o.Nu)
	for I := 0; I < o.Nu; I++ {
		P[I] = make([]float64, k)
		for _, e := range o.Brows[I] {
			for r := 0; r < k; r++ {
				P[I][r] += e.W * Q[e.J][r]
			}
		}
	}
	return
}

// ConstrainMatrix computes Bᵗ・A・B for a sparse unconstrained operator,
// preserving symmetry of A
func (o *Dirichlet) ConstrainMatrix(A *asm.SpMat) (Ac *asm.SpMat, err error) {
	if err = o.check(); err != nil {
		return
	}
	m, n := A.Size()
	if m != o.Nu || n != o.Nu {
		return nil, chk.Err("matrix is (%d x %d). (%d x %d) is required", m, n, o.Nu, o.Nu)
	}
	Ac = asm.NewSpMat(o.Nc, o.Nc)
	A.Each(func(I, J int, v float64) {
		for _, ei := range o.Brows[I] {
			for _, ej := range o.Brows[J] {
				Ac.AddToPattern(ei.J, ej.J)
			}
		}
	})
	A.Each(func(I, J int, v float64) {
		for _, ei := range o.Brows[I] {
			for _, ej := range o.Brows[J] {
				Ac.Put(ei.J, ej.J, ei.W*ej.W*v)
			}
		}
	})
	return
}
