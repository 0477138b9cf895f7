// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

func Test_rod01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rod01. horizontal rod: closed-form stiffness and mass")

	mat := &Material{Name: "steel", E: 200, A: 0.5, Rho: 3}
	x := [][]float64{
		{0, 2}, // x0, x1
		{0, 0}, // y0, y1
	}
	k, err := New("rod", x, mat)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.IntAssert(k.Ndof(), 4)

	l := NewLocal(4, 0, 0)
	ue := []float64{0, 0, 0.1, 0}
	err = k.Evaluate(l, ue, nil, 0)
	if err != nil {
		tst.Errorf("Evaluate failed:\n%v", err)
		return
	}

	// axial stiffness EA/L = 200*0.5/2 = 50
	α := 50.0
	chk.Matrix(tst, "K", 1e-14, l.K, [][]float64{
		{+α, 0, -α, 0},
		{0, 0, 0, 0},
		{-α, 0, +α, 0},
		{0, 0, 0, 0},
	})

	// internal force for axial stretch
	chk.Vector(tst, "F", 1e-14, l.F, []float64{-α * 0.1, 0, α * 0.1, 0})

	// consistent mass: β = ρAL/6 = 3*0.5*2/6 = 0.5
	β := 0.5
	chk.Matrix(tst, "M", 1e-14, l.M, [][]float64{
		{2 * β, 0, 1 * β, 0},
		{0, 2 * β, 0, 1 * β},
		{1 * β, 0, 2 * β, 0},
		{0, 1 * β, 0, 2 * β},
	})

	// axial stress
	rod := k.(*Rod)
	chk.Scalar(tst, "sig", 1e-14, rod.AxialStress(ue), 200*0.1/2.0)
}

func Test_rod02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rod02. lumped mass and inclined rod")

	mat := &Material{Name: "steel", E: 100, A: 1, Rho: 6}
	x := [][]float64{
		{0, 3},
		{0, 4},
	}
	k, err := New("rod-lumped", x, mat)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}

	// L = 5; lumped mass μ = ρAL/2 = 15 on the diagonal
	l := NewLocal(4, 0, 0)
	err = k.Evaluate(l, make([]float64, 4), nil, 0)
	if err != nil {
		tst.Errorf("Evaluate failed:\n%v", err)
		return
	}
	for i := 0; i < 4; i++ {
		chk.Scalar(tst, io.Sf("M[%d][%d]", i, i), 1e-14, l.M[i][i], 15)
	}

	// stiffness stays symmetric and rotation-consistent: c=3/5, s=4/5
	α := 100.0 / 5.0
	c, s := 3.0/5.0, 4.0/5.0
	chk.Scalar(tst, "K00", 1e-14, l.K[0][0], α*c*c)
	chk.Scalar(tst, "K01", 1e-14, l.K[0][1], α*c*s)
	chk.Scalar(tst, "K11", 1e-14, l.K[1][1], α*s*s)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			chk.Scalar(tst, io.Sf("K[%d][%d] sym", i, j), 1e-15, l.K[i][j], l.K[j][i])
		}
	}

	// zero-length rod must fail
	if _, err := New("rod", [][]float64{{1, 1}, {2, 2}}, mat); err == nil {
		tst.Errorf("zero-length rod must fail")
	}

	// unknown kernel must fail
	if _, err := New("nosuch", x, mat); err == nil {
		tst.Errorf("unknown kernel must fail")
	}
}

func Test_solid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid01. qua4: mass total, symmetry and uniform strain")

	// unit square, plane stress
	mat := &Material{Name: "soft", E: 10, Nu: 0.25, Rho: 2, Thick: 0.5, Pstress: true}
	x := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	}
	k, err := New("solid", x, mat)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	nu := k.Ndof()
	chk.IntAssert(nu, 8)
	sp := k.(StressProducer)
	nip := len(sp.Ips())

	// uniform axial strain εxx = 0.01: ux = 0.01*x
	ue := make([]float64, nu)
	for m := 0; m < 4; m++ {
		ue[2*m] = 0.01 * x[0][m]
	}
	l := NewLocal(nu, nip, sp.Ncomp())
	err = k.Evaluate(l, ue, nil, 0)
	if err != nil {
		tst.Errorf("Evaluate failed:\n%v", err)
		return
	}

	// K symmetry
	for i := 0; i < nu; i++ {
		for j := i + 1; j < nu; j++ {
			chk.Scalar(tst, io.Sf("K[%d][%d] sym", i, j), 1e-13, l.K[i][j], l.K[j][i])
		}
	}

	// total mass = ρ * area * thickness = 2*1*0.5 = 1
	tot := 0.0
	for i := 0; i < nu; i++ {
		for j := 0; j < nu; j++ {
			tot += l.M[i][j]
		}
	}
	chk.Scalar(tst, "total mass (x+y)", 1e-13, tot, 2.0)

	// uniform strain and stress @ all ips: plane stress
	// σxx = E/(1-ν²) εxx, σyy = ν σxx
	c := mat.E / (1.0 - mat.Nu*mat.Nu)
	for i := 0; i < nip; i++ {
		chk.Vector(tst, io.Sf("eps@ip%d", i), 1e-14, l.Eps[i], []float64{0.01, 0, 0})
		chk.Vector(tst, io.Sf("sig@ip%d", i), 1e-13, l.Sig[i], []float64{c * 0.01, c * mat.Nu * 0.01, 0})
	}

	// rigid-body translation gives zero internal force
	for m := 0; m < 4; m++ {
		ue[2*m], ue[2*m+1] = 0.3, -0.2
	}
	err = k.Evaluate(l, ue, nil, 0)
	if err != nil {
		tst.Errorf("Evaluate failed:\n%v", err)
		return
	}
	for i := 0; i < nu; i++ {
		chk.Scalar(tst, io.Sf("F[%d]", i), 1e-12, l.F[i], 0)
	}
}

func Test_solid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid02. tri3 and plane strain moduli")

	mat := &Material{Name: "stiff", E: 12, Nu: 0.2, Rho: 1}
	x := [][]float64{
		{0, 2, 0},
		{0, 0, 2},
	}
	k, err := New("solid", x, mat)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	s := k.(*Solid)

	// plane strain moduli
	c := mat.E / ((1.0 + mat.Nu) * (1.0 - 2.0*mat.Nu))
	chk.Scalar(tst, "D00", 1e-14, s.Dmat[0][0], c*(1.0-mat.Nu))
	chk.Scalar(tst, "D01", 1e-14, s.Dmat[0][1], c*mat.Nu)
	chk.Scalar(tst, "D22", 1e-14, s.Dmat[2][2], c*(1.0-2.0*mat.Nu)/2.0)

	// total mass = ρ * area * 1 = 2
	nu := k.Ndof()
	l := NewLocal(nu, len(s.Ips()), s.Ncomp())
	err = k.Evaluate(l, make([]float64, nu), nil, 0)
	if err != nil {
		tst.Errorf("Evaluate failed:\n%v", err)
		return
	}
	tot := 0.0
	for i := 0; i < nu; i++ {
		for j := 0; j < nu; j++ {
			tot += l.M[i][j]
		}
	}
	chk.Scalar(tst, "total mass (x+y)", 1e-13, tot, 4.0)
}

func Test_tangent01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tangent01. stiffness vs numerical derivative of force")

	mat := &Material{Name: "soft", E: 10, Nu: 0.25, Rho: 2, Pstress: true}
	x := [][]float64{
		{0, 1.2, 1, 0},
		{0, 0.1, 1, 0.9},
	}
	k, err := New("solid", x, mat)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	nu := k.Ndof()
	l := NewLocal(nu, 4, 3)
	ue := []float64{0.01, 0, -0.02, 0.005, 0, 0.01, 0.003, 0}
	if err := k.Evaluate(l, ue, nil, 0); err != nil {
		tst.Errorf("Evaluate failed:\n%v", err)
		return
	}
	Kana := la.MatAlloc(nu, nu)
	la.MatCopy(Kana, 1, l.K)

	for i := 0; i < nu; i++ {
		for j := 0; j < nu; j++ {
			dnum, _ := num.DerivCentral(func(v float64, args ...interface{}) float64 {
				up := make([]float64, nu)
				copy(up, ue)
				up[j] = v
				lp := NewLocal(nu, 4, 3)
				if e := k.Evaluate(lp, up, nil, 0); e != nil {
					tst.Errorf("Evaluate failed:\n%v", e)
				}
				return lp.F[i]
			}, ue[j], 1e-4)
			chk.Scalar(tst, io.Sf("K%d%d", i, j), 1e-8, Kana[i][j], dnum)
		}
	}
}
