// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gorom/asm"
	"github.com/cpmech/gorom/bcs"
)

// Full is the full-order mechanical system operating on constrained DOFs.
// Damping is Rayleigh: D = RayAlpha・M + RayBeta・K(0).
type Full struct {

	// composed state
	Asm *asm.Assembler // assembler over the unconstrained mesh
	Bcs *bcs.Dirichlet // constraint operator
	Neu *bcs.Neumann   // natural conditions; may be nil
	Fp  ForceProvider  // extra external force; may be nil

	// Rayleigh damping coefficients
	RayAlpha, RayBeta float64

	// memoized constrained operators
	mConstr *asm.SpMat
	dConstr *asm.SpMat
}

// NewFull builds a full-order system. The constraint manager must be updated
// already.
func NewFull(a *asm.Assembler, d *bcs.Dirichlet) (o *Full, err error) {
	if a.Nu() != d.Nu {
		return nil, chk.Err("assembler has %d DOFs but constraint manager was built for %d", a.Nu(), d.Nu)
	}
	return &Full{Asm: a, Bcs: d}, nil
}

// SetNeumann attaches natural boundary conditions
func (o *Full) SetNeumann(n *bcs.Neumann) { o.Neu = n }

// SetForceProvider injects an extra external-force capability
func (o *Full) SetForceProvider(fp ForceProvider) { o.Fp = fp }

// Ndof returns the number of constrained (free) DOFs
func (o *Full) Ndof() int { return o.Bcs.Nfree() }

// M returns the memoized constrained mass matrix
func (o *Full) M(force bool) (op asm.Operator, err error) {
	if o.mConstr != nil && !force {
		return o.mConstr, nil
	}
	Mraw, err := o.Asm.Mass(nil, 0)
	if err != nil {
		return
	}
	o.mConstr, err = o.Bcs.ConstrainMatrix(Mraw)
	if err != nil {
		return
	}
	return o.mConstr, nil
}

// D returns the memoized constrained Rayleigh damping matrix
func (o *Full) D(force bool) (op asm.Operator, err error) {
	if o.dConstr != nil && !force {
		return o.dConstr, nil
	}
	Mraw, err := o.Asm.Mass(nil, 0)
	if err != nil {
		return
	}
	Kraw, _, err := o.Asm.KandF(make([]float64, o.Asm.Nu()), 0)
	if err != nil {
		return
	}
	Draw := o.Asm.NewOperator()
	Mraw.Each(func(i, j int, v float64) { Draw.Put(i, j, o.RayAlpha*v) })
	Kraw.Each(func(i, j int, v float64) { Draw.Put(i, j, o.RayBeta*v) })
	o.dConstr, err = o.Bcs.ConstrainMatrix(Draw)
	if err != nil {
		return
	}
	return o.dConstr, nil
}

// K returns the constrained tangential stiffness at state u, time t
func (o *Full) K(u []float64, t float64) (op asm.Operator, err error) {
	op, _, err = o.KandF(u, t)
	return
}

// Fint returns the constrained internal force at state u, time t
func (o *Full) Fint(u []float64, t float64) (f []float64, err error) {
	_, f, err = o.KandF(u, t)
	return
}

// KandF assembles at the lifted full-mesh state and constrains the results
func (o *Full) KandF(u []float64, t float64) (op asm.Operator, f []float64, err error) {
	ufull, err := o.Bcs.UnconstrainVec(u, t)
	if err != nil {
		return
	}
	Kraw, Fraw, err := o.Asm.KandF(ufull, t)
	if err != nil {
		return
	}
	Kc, err := o.Bcs.ConstrainMatrix(Kraw)
	if err != nil {
		return
	}
	f, err = o.Bcs.ConstrainVec(Fraw)
	if err != nil {
		return
	}
	return Kc, f, nil
}

// FextRaw computes the unconstrained external force (natural conditions plus
// the injected provider)
func (o *Full) FextRaw(ufull []float64, t float64) (f []float64, err error) {
	f = make([]float64, o.Asm.Nu())
	if o.Neu != nil {
		fn, err := o.Neu.Fext(t)
		if err != nil {
			return nil, err
		}
		copy(f, fn)
	}
	if o.Fp != nil {
		fp, err := o.Fp.Evaluate(ufull, t)
		if err != nil {
			return nil, err
		}
		if len(fp) != o.Asm.Nu() {
			return nil, chk.Err("force provider returned %d values. %d are required", len(fp), o.Asm.Nu())
		}
		for i, v := range fp {
			f[i] += v
		}
	}
	return
}

// Fext returns the constrained external force
func (o *Full) Fext(u, du []float64, t float64) (f []float64, err error) {
	ufull, err := o.Bcs.UnconstrainVec(u, t)
	if err != nil {
		return
	}
	fraw, err := o.FextRaw(ufull, t)
	if err != nil {
		return
	}
	return o.Bcs.ConstrainVec(fraw)
}

// SandRes returns the iteration matrix, residual and external force for the
// generalized-α family
func (o *Full) SandRes(u, du, ddu []float64, dt, t, beta, gamma float64) (S asm.Operator, res, fext []float64, err error) {

	// operators
	M, err := o.M(false)
	if err != nil {
		return
	}
	D, err := o.D(false)
	if err != nil {
		return
	}
	Kc, fint, err := o.KandF(u, t)
	if err != nil {
		return
	}
	fext, err = o.Fext(u, du, t)
	if err != nil {
		return
	}

	// S = K + γ/(β・dt)・D + 1/(β・dt²)・M
	cd := gamma / (beta * dt)
	cm := 1.0 / (beta * dt * dt)
	Ssp := asm.NewSpMat(o.Ndof(), o.Ndof())
	addPat := func(i, j int, v float64) { Ssp.AddToPattern(i, j) }
	Kc.(*asm.SpMat).Each(addPat)
	M.(*asm.SpMat).Each(addPat)
	D.(*asm.SpMat).Each(addPat)
	Kc.(*asm.SpMat).Each(func(i, j int, v float64) { Ssp.Put(i, j, v) })
	D.(*asm.SpMat).Each(func(i, j int, v float64) { Ssp.Put(i, j, cd*v) })
	M.(*asm.SpMat).Each(func(i, j int, v float64) { Ssp.Put(i, j, cm*v) })

	// res = f_int + D・du + M・ddu - f_ext
	res = make([]float64, o.Ndof())
	copy(res, fint)
	D.MulVecAdd(res, 1, du)
	M.MulVecAdd(res, 1, ddu)
	for i := range res {
		res[i] -= fext[i]
	}
	return Ssp, res, fext, nil
}

// Unconstrain lifts a constrained displacement to the full mesh space
func (o *Full) Unconstrain(u []float64, t float64) ([]float64, error) {
	return o.Bcs.UnconstrainVec(u, t)
}

// StressRecovery assembles at the lifted state and recovers nodal-averaged
// stresses and strains
func (o *Full) StressRecovery(u []float64, t float64) (SigN, EpsN [][]float64, err error) {
	ufull, err := o.Bcs.UnconstrainVec(u, t)
	if err != nil {
		return
	}
	_, _, SigN, EpsN, err = o.Asm.KandFandStress(ufull, t)
	return
}
