// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gorom/asm"
)

// QM is a quadratic-manifold reduced system. The constrained displacement is
//
//	u = V・q + ½・(Θ・q)・q
//
// with Θ[k][i][j] symmetric in (i,j). The velocity projector is P = V + Θ・q,
// giving u̇ = P・q̇ and ü = P・q̈ + (Θ・q̇)・q̇; the tangential stiffness gains the
// basis-derivative term K2[i][j] = Σ_k Θ[k][i][j]・f_k on top of Pᵗ・K・P.
type QM struct {

	// composed state
	Full  *Full
	V     [][]float64   // [nc][nred] linear basis
	Theta [][][]float64 // [nc][nred][nred] quadratic term

	Nred int

	// memoized projected operators at the reference configuration q=0
	mRed *asm.Dense
	dRed *asm.Dense

	// scratchpad
	p [][]float64 // [nc][nred] projector at current q
}

// NewQM wraps a full-order system with a quadratic-manifold basis
func NewQM(full *Full, V [][]float64, Theta [][][]float64) (o *QM, err error) {
	if V == nil || Theta == nil {
		return nil, chk.Err("quadratic-manifold basis (V, Θ) is missing")
	}
	nc := full.Ndof()
	if len(V) != nc || len(Theta) != nc {
		return nil, chk.Err("basis has %d/%d rows. %d are required", len(V), len(Theta), nc)
	}
	nred := len(V[0])
	for k := 0; k < nc; k++ {
		if len(Theta[k]) != nred || (nred > 0 && len(Theta[k][0]) != nred) {
			return nil, chk.Err("Θ row %d is not (%d x %d)", k, nred, nred)
		}
	}
	o = &QM{Full: full, V: V, Theta: Theta, Nred: nred}
	o.p = la.MatAlloc(nc, nred)
	return
}

// Ndof returns the reduced dimension
func (o *QM) Ndof() int { return o.Nred }

// lift computes u = V・q + ½・(Θ・q)・q
func (o *QM) lift(q []float64) (u []float64) {
	nc := o.Full.Ndof()
	u = make([]float64, nc)
	for k := 0; k < nc; k++ {
		for i := 0; i < o.Nred; i++ {
			u[k] += o.V[k][i] * q[i]
			for j := 0; j < o.Nred; j++ {
				u[k] += 0.5 * o.Theta[k][i][j] * q[i] * q[j]
			}
		}
	}
	return
}

// projector computes P = V + Θ・q into the scratchpad
func (o *QM) projector(q []float64) [][]float64 {
	nc := o.Full.Ndof()
	for k := 0; k < nc; k++ {
		for i := 0; i < o.Nred; i++ {
			o.p[k][i] = o.V[k][i]
			for j := 0; j < o.Nred; j++ {
				o.p[k][i] += o.Theta[k][i][j] * q[j]
			}
		}
	}
	return o.p
}

// thetaDot computes (Θ・a)・b in the constrained space
func (o *QM) thetaDot(a, b []float64) (v []float64) {
	nc := o.Full.Ndof()
	v = make([]float64, nc)
	for k := 0; k < nc; k++ {
		for i := 0; i < o.Nred; i++ {
			for j := 0; j < o.Nred; j++ {
				v[k] += o.Theta[k][i][j] * a[i] * b[j]
			}
		}
	}
	return
}

// M returns the memoized projected mass matrix at the reference configuration
func (o *QM) M(force bool) (op asm.Operator, err error) {
	if o.mRed != nil && !force {
		return o.mRed, nil
	}
	Mc, err := o.Full.M(force)
	if err != nil {
		return
	}
	o.mRed = asm.NewDense(o.Nred, o.Nred)
	la.MatTrMul3(o.mRed.A, 1, o.V, Mc.ToDense(), o.V)
	return o.mRed, nil
}

// D returns the memoized projected damping matrix at the reference
// configuration
func (o *QM) D(force bool) (op asm.Operator, err error) {
	if o.dRed != nil && !force {
		return o.dRed, nil
	}
	Dc, err := o.Full.D(force)
	if err != nil {
		return
	}
	o.dRed = asm.NewDense(o.Nred, o.Nred)
	la.MatTrMul3(o.dRed.A, 1, o.V, Dc.ToDense(), o.V)
	return o.dRed, nil
}

// K returns the projected tangential stiffness at reduced state q
func (o *QM) K(q []float64, t float64) (op asm.Operator, err error) {
	op, _, err = o.KandF(q, t)
	return
}

// Fint returns the projected internal force at reduced state q
func (o *QM) Fint(q []float64, t float64) (f []float64, err error) {
	_, f, err = o.KandF(q, t)
	return
}

// KandF returns the projected stiffness K = Pᵗ・K・P + Θᵗ・f and the projected
// internal force f_red = Pᵗ・f
func (o *QM) KandF(q []float64, t float64) (op asm.Operator, f []float64, err error) {
	Kc, fc, err := o.Full.KandF(o.lift(q), t)
	if err != nil {
		return
	}
	P := o.projector(q)
	Kr := asm.NewDense(o.Nred, o.Nred)
	la.MatTrMul3(Kr.A, 1, P, Kc.ToDense(), P)
	for i := 0; i < o.Nred; i++ {
		for j := 0; j < o.Nred; j++ {
			for k := 0; k < o.Full.Ndof(); k++ {
				Kr.A[i][j] += o.Theta[k][i][j] * fc[k]
			}
		}
	}
	return Kr, project(P, fc, o.Nred), nil
}

// Fext returns the external force projected with P at the current state
func (o *QM) Fext(q, dq []float64, t float64) (f []float64, err error) {
	fc, err := o.Full.Fext(o.lift(q), nil, t)
	if err != nil {
		return
	}
	return project(o.projector(q), fc, o.Nred), nil
}

// SandRes returns the iteration matrix and residual. The quadratic kinematics
// carry the configuration-dependent projector through the dynamic terms:
// u̇ = P・q̇ and ü = P・q̈ + (Θ・q̇)・q̇, so the inertia and damping forces are
//
//	Pᵗ・Mc・(P・q̈ + (Θ・q̇)・q̇)   and   Pᵗ・Dc・(P・q̇)
//
// and S gains the gyroscopic coupling Pᵗ・Mc・(Θ・q̇) on the velocity slot.
func (o *QM) SandRes(q, dq, ddq []float64, dt, t, beta, gamma float64) (S asm.Operator, res, fext []float64, err error) {
	Kr, fint, err := o.KandF(q, t)
	if err != nil {
		return
	}
	fext, err = o.Fext(q, dq, t)
	if err != nil {
		return
	}
	Mc, err := o.Full.M(false)
	if err != nil {
		return
	}
	Dc, err := o.Full.D(false)
	if err != nil {
		return
	}
	nc := o.Full.Ndof()
	P := o.projector(q)
	Mcd, Dcd := Mc.ToDense(), Dc.ToDense()

	// projections at the current configuration
	Mr := la.MatAlloc(o.Nred, o.Nred)
	Dr := la.MatAlloc(o.Nred, o.Nred)
	la.MatTrMul3(Mr, 1, P, Mcd, P)
	la.MatTrMul3(Dr, 1, P, Dcd, P)

	// gyroscopic coupling G = Pᵗ・Mc・(Θ・dq)
	Td := la.MatAlloc(nc, o.Nred)
	for k := 0; k < nc; k++ {
		for i := 0; i < o.Nred; i++ {
			for j := 0; j < o.Nred; j++ {
				Td[k][i] += o.Theta[k][i][j] * dq[j]
			}
		}
	}
	G := la.MatAlloc(o.Nred, o.Nred)
	la.MatTrMul3(G, 1, P, Mcd, Td)

	cd := gamma / (beta * dt)
	cm := 1.0 / (beta * dt * dt)
	Sd := asm.NewDense(o.Nred, o.Nred)
	Kd := Kr.ToDense()
	for i := 0; i < o.Nred; i++ {
		for j := 0; j < o.Nred; j++ {
			Sd.A[i][j] = Kd[i][j] + cd*(Dr[i][j]+G[i][j]) + cm*Mr[i][j]
		}
	}

	// res = f_int + Pᵗ・Dc・(P・dq) + Pᵗ・Mc・(P・ddq + (Θ・dq)・dq) - f_ext
	res = make([]float64, o.Nred)
	copy(res, fint)
	udot := make([]float64, nc)
	la.MatVecMul(udot, 1, P, dq)
	uddot := make([]float64, nc)
	la.MatVecMul(uddot, 1, P, ddq)
	for k, v := range o.thetaDot(dq, dq) {
		uddot[k] += v
	}
	dyn := make([]float64, nc)
	Dc.MulVecAdd(dyn, 1, udot)
	Mc.MulVecAdd(dyn, 1, uddot)
	la.MatTrVecMulAdd(res, 1, P, dyn)
	for i := range res {
		res[i] -= fext[i]
	}
	return Sd, res, fext, nil
}

// Unconstrain lifts reduced coordinates through the quadratic manifold to the
// full unconstrained mesh space
func (o *QM) Unconstrain(q []float64, t float64) ([]float64, error) {
	return o.Full.Bcs.UnconstrainVec(o.lift(q), t)
}
