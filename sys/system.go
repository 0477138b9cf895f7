// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sys implements the mechanical system façade: full-order, reduced,
// quadratic-manifold and hyper-reduced variants behind one interface
package sys

import (
	"github.com/cpmech/gorom/asm"
)

// ForceProvider evaluates an additional external force (e.g. gravity or a
// follower load) in the unconstrained space. It is injected at construction
// time.
type ForceProvider interface {
	Evaluate(u []float64, t float64) ([]float64, error)
}

// System is the uniform mathematical interface exposed to time-integration
// solvers by all façade variants. Displacements u live in the system's own
// DOF space: constrained DOFs for the full variant, reduced coordinates for
// the projected ones.
//
// M and D are memoized; they are recomputed only when force is true. Callers
// mutating constraints or the basis must force recomputation.
type System interface {

	// Ndof returns the dimension of this system's DOF space
	Ndof() int

	// M returns the (memoized) mass matrix
	M(force bool) (asm.Operator, error)

	// D returns the (memoized) damping matrix
	D(force bool) (asm.Operator, error)

	// K returns the tangential stiffness at state u, time t
	K(u []float64, t float64) (asm.Operator, error)

	// Fint returns the internal force at state u, time t
	Fint(u []float64, t float64) ([]float64, error)

	// Fext returns the external force at state u, velocity du, time t
	Fext(u, du []float64, t float64) ([]float64, error)

	// KandF returns stiffness and internal force together (one assembly pass)
	KandF(u []float64, t float64) (asm.Operator, []float64, error)

	// SandRes returns the generalized-α family iteration matrix
	//
	//	S = K + γ/(β・dt)・D + 1/(β・dt²)・M
	//
	// the residual res = f_int + D・du + M・ddu - f_ext, and f_ext
	SandRes(u, du, ddu []float64, dt, t, beta, gamma float64) (S asm.Operator, res, fext []float64, err error)

	// Unconstrain lifts a displacement from this system's DOF space to the
	// full unconstrained mesh space, injecting prescribed values at time t
	Unconstrain(u []float64, t float64) ([]float64, error)
}
