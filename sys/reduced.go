// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gorom/asm"
	"github.com/cpmech/gorom/ele"
)

// assembly strategies for reduced systems
const (
	ASM_INDIRECT = "indirect" // assemble full operators, then project
	ASM_DIRECT   = "direct"   // project each element contribution before accumulation
)

// Reduced is a linearly-reduced system: every quantity of the wrapped
// full-order system is Galerkin-projected onto the basis V:
//
//	M_red = Vᵗ・M・V   K_red = Vᵗ・K(V・q)・V   f_red = Vᵗ・f(V・q)
type Reduced struct {

	// composed state
	Full *Full       // delegate for shared computation
	V    [][]float64 // [nc][nred] reduction basis, constrained space
	BV   [][]float64 // [nu][nred] basis lifted to the unconstrained space
	Typ  string      // assembly strategy

	Nred int // reduced dimension

	// memoized projected operators
	mRed *asm.Dense
	dRed *asm.Dense
}

// NewReduced wraps a full-order system with a reduction basis. The basis must
// have the constrained-space row count. An unknown assembly type is a
// configuration error reported immediately.
func NewReduced(full *Full, V [][]float64, assemblyType string) (o *Reduced, err error) {
	if assemblyType != ASM_DIRECT && assemblyType != ASM_INDIRECT {
		return nil, chk.Err("unknown assembly type %q. %q or %q are available", assemblyType, ASM_DIRECT, ASM_INDIRECT)
	}
	if V == nil {
		return nil, chk.Err("reduction basis is missing")
	}
	if len(V) != full.Ndof() {
		return nil, chk.Err("basis has %d rows. %d are required", len(V), full.Ndof())
	}
	o = &Reduced{Full: full, V: V, Typ: assemblyType, Nred: len(V[0])}
	o.BV, err = full.Bcs.UnconstrainMat(V)
	if err != nil {
		return nil, err
	}
	return
}

// Ndof returns the reduced dimension
func (o *Reduced) Ndof() int { return o.Nred }

// lift computes u_constrained = V・q
func (o *Reduced) lift(q []float64) (u []float64) {
	u = make([]float64, o.Full.Ndof())
	la.MatVecMul(u, 1, o.V, q)
	return
}

// project computes aᵗ・f for a basis a
func project(a [][]float64, f []float64, nred int) (fr []float64) {
	fr = make([]float64, nred)
	la.MatTrVecMulAdd(fr, 1, a, f)
	return
}

// M returns the memoized projected mass matrix
func (o *Reduced) M(force bool) (op asm.Operator, err error) {
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

// D returns the memoized projected damping matrix
func (o *Reduced) D(force bool) (op asm.Operator, err error) {
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
func (o *Reduced) K(q []float64, t float64) (op asm.Operator, err error) {
	op, _, err = o.KandF(q, t)
	return
}

// Fint returns the projected internal force at reduced state q
func (o *Reduced) Fint(q []float64, t float64) (f []float64, err error) {
	_, f, err = o.KandF(q, t)
	return
}

// KandF returns projected stiffness and internal force, using the configured
// assembly strategy
func (o *Reduced) KandF(q []float64, t float64) (op asm.Operator, f []float64, err error) {
	if o.Typ == ASM_INDIRECT {
		Kc, fc, err := o.Full.KandF(o.lift(q), t)
		if err != nil {
			return nil, nil, err
		}
		Kr := asm.NewDense(o.Nred, o.Nred)
		la.MatTrMul3(Kr.A, 1, o.V, Kc.ToDense(), o.V)
		return Kr, project(o.V, fc, o.Nred), nil
	}
	return o.kandfDirect(q, t, nil, nil)
}

// kandfDirect performs the element-level projection
//
//	K_red += (BV_e)ᵗ・K_e・BV_e   f_red += (BV_e)ᵗ・f_e
//
// optionally restricted to the element subset ids with per-element weights
func (o *Reduced) kandfDirect(q []float64, t float64, ids []int, wgts []float64) (op asm.Operator, f []float64, err error) {

	// lifted full-mesh state (with prescribed values)
	ufull, err := o.Full.Bcs.UnconstrainVec(o.lift(q), t)
	if err != nil {
		return
	}

	pos := make(map[int]int, len(ids))
	for k, ie := range ids {
		pos[ie] = k
	}
	Kr := asm.NewDense(o.Nred, o.Nred)
	f = make([]float64, o.Nred)
	err = o.Full.Asm.VisitElements(ufull, t, ids, func(ie int, umap []int, l *ele.Local) error {
		w := 1.0
		if wgts != nil {
			w = wgts[pos[ie]]
		}
		// a = rows of BV at this element's DOFs [nu_local][nred]
		for i, I := range umap {
			ai := o.BV[I]
			for r := 0; r < o.Nred; r++ {
				f[r] += w * ai[r] * l.F[i]
			}
			for j, J := range umap {
				aj := o.BV[J]
				kij := w * l.K[i][j]
				for r := 0; r < o.Nred; r++ {
					for s := 0; s < o.Nred; s++ {
						Kr.A[r][s] += ai[r] * kij * aj[s]
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return Kr, f, nil
}

// Fext returns the projected external force
func (o *Reduced) Fext(q, dq []float64, t float64) (f []float64, err error) {
	fc, err := o.Full.Fext(o.lift(q), nil, t)
	if err != nil {
		return
	}
	return project(o.V, fc, o.Nred), nil
}

// SandRes returns the dense iteration matrix and residual in reduced space
func (o *Reduced) SandRes(q, dq, ddq []float64, dt, t, beta, gamma float64) (S asm.Operator, res, fext []float64, err error) {
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
	cd := gamma / (beta * dt)
	cm := 1.0 / (beta * dt * dt)
	Sd := asm.NewDense(o.Nred, o.Nred)
	Kd, Md, Dd := Kr.ToDense(), M.ToDense(), D.ToDense()
	for i := 0; i < o.Nred; i++ {
		for j := 0; j < o.Nred; j++ {
			Sd.A[i][j] = Kd[i][j] + cd*Dd[i][j] + cm*Md[i][j]
		}
	}
	res = make([]float64, o.Nred)
	copy(res, fint)
	D.MulVecAdd(res, 1, dq)
	M.MulVecAdd(res, 1, ddq)
	for i := range res {
		res[i] -= fext[i]
	}
	return Sd, res, fext, nil
}

// Unconstrain lifts reduced coordinates to the full unconstrained mesh space
func (o *Reduced) Unconstrain(q []float64, t float64) ([]float64, error) {
	return o.Full.Bcs.UnconstrainVec(o.lift(q), t)
}
