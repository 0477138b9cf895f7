// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gorom/asm"
)

// HyperReduced evaluates the nonlinear terms of a reduced system on a
// weighted subset of elements only:
//
//	K_red ≈ Σ_{e∈Ẽ} ξ_e・(BV_e)ᵗ・K_e・BV_e   f_red ≈ Σ_{e∈Ẽ} ξ_e・(BV_e)ᵗ・f_e
//
// The subset Ẽ and the weights ξ typically come from ECSW training. Mass,
// damping and external forces are linear and keep the exact projection of the
// wrapped reduced system.
type HyperReduced struct {
	Red    *Reduced  // delegate; must use direct assembly
	Etilde []int     // selected element ids
	Xi     []float64 // nonnegative weights, aligned with Etilde
}

// NewHyperReduced wraps a direct-assembly reduced system with an element
// subset and weights
func NewHyperReduced(red *Reduced, etilde []int, xi []float64) (o *HyperReduced, err error) {
	if red.Typ != ASM_DIRECT {
		return nil, chk.Err("hyper-reduction requires %q assembly. %q given", ASM_DIRECT, red.Typ)
	}
	if len(etilde) != len(xi) {
		return nil, chk.Err("element subset and weights differ in length. %d != %d", len(etilde), len(xi))
	}
	if len(etilde) == 0 {
		return nil, chk.Err("element subset is empty")
	}
	for k, w := range xi {
		if w < 0 {
			return nil, chk.Err("weight ξ[%d] = %g is negative", k, w)
		}
	}
	return &HyperReduced{Red: red, Etilde: etilde, Xi: xi}, nil
}

// Ndof returns the reduced dimension
func (o *HyperReduced) Ndof() int { return o.Red.Nred }

// M returns the exactly-projected mass matrix of the wrapped reduced system
func (o *HyperReduced) M(force bool) (asm.Operator, error) { return o.Red.M(force) }

// D returns the exactly-projected damping matrix of the wrapped reduced system
func (o *HyperReduced) D(force bool) (asm.Operator, error) { return o.Red.D(force) }

// K returns the hyper-reduced tangential stiffness at reduced state q
func (o *HyperReduced) K(q []float64, t float64) (op asm.Operator, err error) {
	op, _, err = o.KandF(q, t)
	return
}

// Fint returns the hyper-reduced internal force at reduced state q
func (o *HyperReduced) Fint(q []float64, t float64) (f []float64, err error) {
	_, f, err = o.KandF(q, t)
	return
}

// KandF assembles stiffness and internal force over the weighted subset
func (o *HyperReduced) KandF(q []float64, t float64) (op asm.Operator, f []float64, err error) {
	return o.Red.kandfDirect(q, t, o.Etilde, o.Xi)
}

// Fext returns the exactly-projected external force
func (o *HyperReduced) Fext(q, dq []float64, t float64) ([]float64, error) {
	return o.Red.Fext(q, dq, t)
}

// SandRes returns the iteration matrix and residual with the nonlinear terms
// evaluated on the weighted subset
func (o *HyperReduced) SandRes(q, dq, ddq []float64, dt, t, beta, gamma float64) (S asm.Operator, res, fext []float64, err error) {
	M, err := o.M(false)
	if err != nil {
		return
	}
	D, err := o.D(false)
	if err != nil {
		return
	}
	Kr, fint, err := o.KandF(q, t)
	if err != nil {
		return
	}
	fext, err = o.Fext(q, dq, t)
	if err != nil {
		return
	}
	nred := o.Red.Nred
	cd := gamma / (beta * dt)
	cm := 1.0 / (beta * dt * dt)
	Sd := asm.NewDense(nred, nred)
	Kd, Md, Dd := Kr.ToDense(), M.ToDense(), D.ToDense()
	for i := 0; i < nred; i++ {
		for j := 0; j < nred; j++ {
			Sd.A[i][j] = Kd[i][j] + cd*Dd[i][j] + cm*Md[i][j]
		}
	}
	res = make([]float64, nred)
	copy(res, fint)
	D.MulVecAdd(res, 1, dq)
	M.MulVecAdd(res, 1, ddq)
	for i := range res {
		res[i] -= fext[i]
	}
	return Sd, res, fext, nil
}

// Unconstrain lifts reduced coordinates to the full unconstrained mesh space
func (o *HyperReduced) Unconstrain(q []float64, t float64) ([]float64, error) {
	return o.Red.Unconstrain(q, t)
}
