// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gorom/ele"
	"github.com/cpmech/gorom/msh"
)

// twoRodMesh builds a horizontal chain of two rods: 0--1--2
func twoRodMesh(tst *testing.T) (*msh.Mesh, *DofMap, *Assembler) {
	m := msh.New(2)
	for id, c := range [][]float64{{0, 0}, {2, 0}, {4, 0}} {
		if _, err := m.AddNode(id, c); err != nil {
			tst.Fatalf("AddNode failed:\n%v", err)
		}
	}
	for _, verts := range [][]int{{0, 1}, {1, 2}} {
		if _, err := m.AddElement("lin2", verts, false); err != nil {
			tst.Fatalf("AddElement failed:\n%v", err)
		}
	}
	dm, err := NewDofMap(m, 2)
	if err != nil {
		tst.Fatalf("NewDofMap failed:\n%v", err)
	}
	mat := &ele.Material{Name: "steel", E: 100, A: 1, Rho: 3}
	a, err := New(m, dm, func(e *msh.Elem) (string, *ele.Material) {
		return "rod", mat
	})
	if err != nil {
		tst.Fatalf("New assembler failed:\n%v", err)
	}
	return m, dm, a
}

func Test_dofmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap01. numbering and element DOF maps")

	m, dm, _ := twoRodMesh(tst)
	chk.IntAssert(dm.Nu, 6)
	chk.Ints(tst, "umap elem 0", dm.Umaps[0], []int{0, 1, 2, 3})
	chk.Ints(tst, "umap elem 1", dm.Umaps[1], []int{2, 3, 4, 5})
	chk.IntAssert(dm.Dof(2, 1), 5)
	n, d := dm.NodeOfDof(5)
	chk.IntAssert(n, 2)
	chk.IntAssert(d, 1)

	// deterministic: rebuilding gives identical numbering
	dm2, err := NewDofMap(m, 2)
	if err != nil {
		tst.Fatalf("NewDofMap failed:\n%v", err)
	}
	for ie := range dm.Umaps {
		chk.Ints(tst, "umap rebuild", dm2.Umaps[ie], dm.Umaps[ie])
	}
}

func Test_assemble01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble01. two-rod chain: K, F and M")

	_, dm, a := twoRodMesh(tst)

	// middle-node stretch: u = [0,0, 0.1,0, 0,0]
	u := make([]float64, dm.Nu)
	u[2] = 0.1
	K, F, err := a.KandF(u, 0)
	if err != nil {
		tst.Errorf("KandF failed:\n%v", err)
		return
	}

	// axial stiffness per rod: EA/L = 100/2 = 50; shared DOF accumulates
	α := 50.0
	Kd := K.ToDense()
	chk.Scalar(tst, "K22", 1e-14, Kd[2][2], 2*α)
	chk.Scalar(tst, "K02", 1e-14, Kd[0][2], -α)
	chk.Scalar(tst, "K24", 1e-14, Kd[2][4], -α)
	chk.Scalar(tst, "K04 (no coupling)", 1e-17, Kd[0][4], 0)

	// F = K*u
	chk.Vector(tst, "F", 1e-13, F, []float64{-α * 0.1, 0, 2 * α * 0.1, 0, -α * 0.1, 0})

	// mass: total = 2 * ρAL = 2*3*1*2 = 12; sum over x-rows = 12
	M, err := a.Mass(nil, 0)
	if err != nil {
		tst.Errorf("Mass failed:\n%v", err)
		return
	}
	Md := M.ToDense()
	tot := 0.0
	for i := 0; i < dm.Nu; i += 2 {
		for j := 0; j < dm.Nu; j += 2 {
			tot += Md[i][j]
		}
	}
	chk.Scalar(tst, "total mass", 1e-13, tot, 12.0)

	// sparsity: two 4x4 blocks overlapping in a 2x2 block
	chk.IntAssert(K.Nnz(), 16+16-4)
}

func Test_assemble02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble02. weighted subset and staleness")

	m, dm, a := twoRodMesh(tst)

	// weighted subset: element 1 only, weight 2
	u := make([]float64, dm.Nu)
	u[2] = 0.1
	K, F, err := a.KandFWeighted(u, 0, []int{1}, []float64{2})
	if err != nil {
		tst.Errorf("KandFWeighted failed:\n%v", err)
		return
	}
	α := 50.0
	Kd := K.ToDense()
	chk.Scalar(tst, "K22 weighted", 1e-14, Kd[2][2], 2*α)
	chk.Scalar(tst, "K00 untouched", 1e-17, Kd[0][0], 0)
	chk.Scalar(tst, "F2 weighted", 1e-13, F[2], 2*α*0.1)

	// all-ones weights reproduce the full assembly
	Kw, Fw, err := a.KandFWeighted(u, 0, []int{0, 1}, []float64{1, 1})
	if err != nil {
		tst.Errorf("KandFWeighted failed:\n%v", err)
		return
	}
	Kfull, Ffull, err := a.KandF(u, 0)
	if err != nil {
		tst.Errorf("KandF failed:\n%v", err)
		return
	}
	chk.Matrix(tst, "K all-ones", 1e-14, Kw.ToDense(), Kfull.ToDense())
	chk.Vector(tst, "F all-ones", 1e-14, Fw, Ffull)

	// mismatched weights
	if _, _, err := a.KandFWeighted(u, 0, []int{0}, []float64{1, 1}); err == nil {
		tst.Errorf("mismatched subset/weights must fail")
	}

	// topology change invalidates the assembler
	if _, err := m.AddNode(99, []float64{9, 9}); err != nil {
		tst.Fatalf("AddNode failed:\n%v", err)
	}
	if _, _, err := a.KandF(u, 0); err == nil {
		tst.Errorf("stale assembler must fail")
	}
	if !dm.Stale() {
		tst.Errorf("DOF map must report staleness after mesh change")
	}
}

func Test_assemble03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble03. stress recovery on two qua4")

	// 1-----3-----5
	// |  0  |  1  |
	// 0-----2-----4
	m := msh.New(2)
	for id, c := range [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}} {
		if _, err := m.AddNode(id, c); err != nil {
			tst.Fatalf("AddNode failed:\n%v", err)
		}
	}
	for _, verts := range [][]int{{0, 2, 3, 1}, {2, 4, 5, 3}} {
		if _, err := m.AddElement("qua4", verts, false); err != nil {
			tst.Fatalf("AddElement failed:\n%v", err)
		}
	}
	dm, err := NewDofMap(m, 2)
	if err != nil {
		tst.Fatalf("NewDofMap failed:\n%v", err)
	}
	mat := &ele.Material{Name: "soft", E: 10, Nu: 0.25, Rho: 1, Pstress: true}
	a, err := New(m, dm, func(e *msh.Elem) (string, *ele.Material) {
		return "solid", mat
	})
	if err != nil {
		tst.Fatalf("New assembler failed:\n%v", err)
	}

	// uniform strain εxx = 0.01: ux = 0.01*x at every node
	u := make([]float64, dm.Nu)
	for idx, n := range m.Nodes {
		u[2*idx] = 0.01 * n.C[0]
	}
	_, _, SigN, EpsN, err := a.KandFandStress(u, 0)
	if err != nil {
		tst.Errorf("KandFandStress failed:\n%v", err)
		return
	}

	// the uniform field must be recovered exactly at every node
	c := mat.E / (1.0 - mat.Nu*mat.Nu)
	for idx := range m.Nodes {
		chk.Vector(tst, "eps@node", 1e-13, EpsN[idx], []float64{0.01, 0, 0})
		chk.Vector(tst, "sig@node", 1e-12, SigN[idx], []float64{c * 0.01, c * mat.Nu * 0.01, 0})
	}
}
