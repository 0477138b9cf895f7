// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gorom/asm"
	"github.com/cpmech/gorom/ele"
	"github.com/cpmech/gorom/msh"
)

func Test_dirichlet01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dirichlet01. elimination and round trip")

	d := NewDirichlet(6)
	d.ConstrainDofs(0, 1)
	if _, err := d.ConstrainVec(make([]float64, 6)); err == nil {
		tst.Errorf("operators must fail before Update")
	}
	if err := d.Update(); err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.IntAssert(d.Nfree(), 4)
	chk.Ints(tst, "Free", d.Free, []int{2, 3, 4, 5})

	// round trip: unconstrain(constrain(v)) is identity on free DOFs
	v := []float64{9, 9, 1, 2, 3, 4}
	vc, err := d.ConstrainVec(v)
	if err != nil {
		tst.Errorf("ConstrainVec failed:\n%v", err)
		return
	}
	chk.Vector(tst, "vc", 1e-17, vc, []float64{1, 2, 3, 4})
	vf, err := d.UnconstrainVec(vc, 0)
	if err != nil {
		tst.Errorf("UnconstrainVec failed:\n%v", err)
		return
	}
	chk.Vector(tst, "vf", 1e-17, vf, []float64{0, 0, 1, 2, 3, 4})

	// prescribed values are injected at the given time
	d.PrescribeDof(1, &fun.Cte{C: 7})
	if err := d.Update(); err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	vf, err = d.UnconstrainVec([]float64{1, 2, 3, 4}, 0.5)
	if err != nil {
		tst.Errorf("UnconstrainVec failed:\n%v", err)
		return
	}
	chk.Vector(tst, "vf with prescribed", 1e-17, vf, []float64{0, 7, 1, 2, 3, 4})
}

func Test_dirichlet02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dirichlet02. ties, BᵗAB and symmetry")

	// dof 3 tied to dofs 0 and 1: u3 = 0.5*u0 + 0.5*u1; dof 2 eliminated
	d := NewDirichlet(4)
	d.ConstrainDofs(2)
	if err := d.AddLinearConstraint(3, []int{0, 1}, []float64{0.5, 0.5}); err != nil {
		tst.Errorf("AddLinearConstraint failed:\n%v", err)
		return
	}
	if err := d.Update(); err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.IntAssert(d.Nfree(), 2)
	chk.Ints(tst, "Free", d.Free, []int{0, 1})

	// unconstrain applies the tie
	vf, err := d.UnconstrainVec([]float64{2, 4}, 0)
	if err != nil {
		tst.Errorf("UnconstrainVec failed:\n%v", err)
		return
	}
	chk.Vector(tst, "vf", 1e-17, vf, []float64{2, 4, 0, 3})

	// BᵗAB for a symmetric sparse A
	A := asm.NewSpMat(4, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			A.AddToPattern(i, j)
		}
	}
	vals := [][]float64{
		{4, 1, 0, 2},
		{1, 5, 1, 0},
		{0, 1, 6, 1},
		{2, 0, 1, 7},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			A.Put(i, j, vals[i][j])
		}
	}
	Ac, err := d.ConstrainMatrix(A)
	if err != nil {
		tst.Errorf("ConstrainMatrix failed:\n%v", err)
		return
	}
	Acd := Ac.ToDense()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			chk.Scalar(tst, io.Sf("Ac[%d][%d] sym", i, j), 1e-14, Acd[i][j], Acd[j][i])
		}
	}
	// closed form: B = [[1,0],[0,1],[0,0],[.5,.5]]
	chk.Scalar(tst, "Ac00", 1e-14, Acd[0][0], 4+0.5*2+2*0.5+0.25*7)
	chk.Scalar(tst, "Ac01", 1e-14, Acd[0][1], 1+0.5*0+2*0.5+0.25*7)
	chk.Scalar(tst, "Ac11", 1e-14, Acd[1][1], 5+0.5*0+0*0.5+0.25*7)

	// master must be free
	d2 := NewDirichlet(4)
	d2.ConstrainDofs(0)
	if err := d2.AddLinearConstraint(3, []int{0}, []float64{1}); err != nil {
		tst.Errorf("AddLinearConstraint failed:\n%v", err)
		return
	}
	if err := d2.Update(); err == nil {
		tst.Errorf("Update must fail when a master DOF is eliminated")
	}
}

func Test_dirichlet03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dirichlet03. constrained bar reproduces EA/L")

	// single rod along x, node 0 fixed in both coordinates
	m := msh.New(2)
	for id, c := range [][]float64{{0, 0}, {2, 0}} {
		if _, err := m.AddNode(id, c); err != nil {
			tst.Fatalf("AddNode failed:\n%v", err)
		}
	}
	if _, err := m.AddElement("lin2", []int{0, 1}, false); err != nil {
		tst.Fatalf("AddElement failed:\n%v", err)
	}
	dm, err := asm.NewDofMap(m, 2)
	if err != nil {
		tst.Fatalf("NewDofMap failed:\n%v", err)
	}
	mat := &ele.Material{Name: "steel", E: 200, A: 0.5, Rho: 1}
	a, err := asm.New(m, dm, func(e *msh.Elem) (string, *ele.Material) {
		return "rod", mat
	})
	if err != nil {
		tst.Fatalf("New assembler failed:\n%v", err)
	}
	K, _, err := a.KandF(make([]float64, dm.Nu), 0)
	if err != nil {
		tst.Errorf("KandF failed:\n%v", err)
		return
	}

	d := NewDirichlet(dm.Nu)
	d.ConstrainDofs(dm.Dof(0, 0), dm.Dof(0, 1))
	if err := d.Update(); err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	Kc, err := d.ConstrainMatrix(K)
	if err != nil {
		tst.Errorf("ConstrainMatrix failed:\n%v", err)
		return
	}
	chk.IntAssert(d.Nfree(), 2)
	Kcd := Kc.ToDense()
	chk.Scalar(tst, "Kc00 = EA/L", 1e-14, Kcd[0][0], 200*0.5/2.0)
	chk.Scalar(tst, "Kc01", 1e-17, Kcd[0][1], 0)
	chk.Scalar(tst, "Kc11 (no lateral stiffness)", 1e-17, Kcd[1][1], 0)
}

func Test_tie01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tie01. mesh tying with boundary-inclusive containment")

	//  1-------3
	//  |       |     slave nodes: 4 (interior), 5 (on right edge), 6 (far away)
	//  0-------2
	m := msh.New(2)
	coords := [][]float64{
		{0, 0}, {0, 1}, {2, 0}, {2, 1}, // master qua4
		{1.0, 0.5}, // interior
		{2.0, 0.5}, // exactly on the right edge
		{9.0, 9.0}, // outside
	}
	for id, c := range coords {
		if _, err := m.AddNode(id, c); err != nil {
			tst.Fatalf("AddNode failed:\n%v", err)
		}
	}
	if _, err := m.AddElement("qua4", []int{0, 2, 3, 1}, false); err != nil {
		tst.Fatalf("AddElement failed:\n%v", err)
	}
	dm, err := asm.NewDofMap(m, 2)
	if err != nil {
		tst.Fatalf("NewDofMap failed:\n%v", err)
	}

	// interior point: all shape weights = 1/4
	d := NewDirichlet(dm.Nu)
	if err := d.TieMesh(m, dm, []int{4}, []int{0}); err != nil {
		tst.Errorf("TieMesh failed:\n%v", err)
		return
	}
	if err := d.Update(); err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	// set masters to a linear field ux = x: slave must interpolate to x=1
	uc := make([]float64, d.Nfree())
	for c, I := range d.Free {
		nidx, off := dm.NodeOfDof(I)
		if off == 0 {
			uc[c] = m.Nodes[nidx].C[0]
		}
	}
	vf, err := d.UnconstrainVec(uc, 0)
	if err != nil {
		tst.Errorf("UnconstrainVec failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "interpolated ux at slave", 1e-10, vf[dm.Dof(4, 0)], 1.0)

	// boundary point must not fail
	d2 := NewDirichlet(dm.Nu)
	if err := d2.TieMesh(m, dm, []int{5}, []int{0}); err != nil {
		tst.Errorf("TieMesh must accept a slave exactly on the master boundary:\n%v", err)
		return
	}
	if err := d2.Update(); err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}

	// unresolvable point is a hard error
	d3 := NewDirichlet(dm.Nu)
	if err := d3.TieMesh(m, dm, []int{6}, []int{0}); err == nil {
		tst.Errorf("TieMesh must fail for a slave point outside the master region")
	}
}

func Test_neumann01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("neumann01. point loads and edge tractions")

	// one qua4 with a lin2 boundary element on the right edge (nodes 2-3)
	m := msh.New(2)
	for id, c := range [][]float64{{0, 0}, {0, 1}, {2, 0}, {2, 1}} {
		if _, err := m.AddNode(id, c); err != nil {
			tst.Fatalf("AddNode failed:\n%v", err)
		}
	}
	if _, err := m.AddElement("qua4", []int{0, 2, 3, 1}, false); err != nil {
		tst.Fatalf("AddElement failed:\n%v", err)
	}
	bryId, err := m.AddElement("lin2", []int{2, 3}, true)
	if err != nil {
		tst.Fatalf("AddElement failed:\n%v", err)
	}
	dm, err := asm.NewDofMap(m, 2)
	if err != nil {
		tst.Fatalf("NewDofMap failed:\n%v", err)
	}
	nm := NewNeumann(m, dm)

	// point load fy = -20 at node 3
	if err := nm.AddPointLoad(3, 1, &fun.Cte{C: -20}); err != nil {
		tst.Errorf("AddPointLoad failed:\n%v", err)
		return
	}

	// constant traction qx = 3 on the right edge (length 1)
	if err := nm.AddTraction(bryId, 0, &fun.Cte{C: 3}); err != nil {
		tst.Errorf("AddTraction failed:\n%v", err)
		return
	}

	// tractions on volume elements are rejected
	if err := nm.AddTraction(0, 0, &fun.Cte{C: 3}); err == nil {
		tst.Errorf("AddTraction must fail for volume elements")
	}

	f, err := nm.Fext(2.0)
	if err != nil {
		tst.Errorf("Fext failed:\n%v", err)
		return
	}

	chk.Scalar(tst, "fy node 3", 1e-14, f[dm.Dof(3, 1)], -20.0)

	// total edge force = q*L = 3, split equally between the two edge nodes
	chk.Scalar(tst, "fx node 2", 1e-14, f[dm.Dof(2, 0)], 1.5)
	chk.Scalar(tst, "fx node 3", 1e-14, f[dm.Dof(3, 0)], 1.5)
}
