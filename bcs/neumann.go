// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gorom/asm"
	"github.com/cpmech/gorom/msh"
	"github.com/cpmech/gorom/shp"
)

// PointLoad is a concentrated load on one DOF
type PointLoad struct {
	Dof int      // unconstrained DOF index
	Fcn fun.Func // load value over time
}

// TractionLoad is a distributed load on a boundary element, integrated with
// the element's shape functions into equivalent nodal forces
type TractionLoad struct {
	ElemId int      // boundary element id
	Dir    int      // local DOF offset the traction acts on
	Fcn    fun.Func // traction value over time (per unit length/area)
}

// Neumann accumulates natural boundary conditions into the unconstrained
// external force vector
type Neumann struct {
	Msh    *msh.Mesh
	Dm     *asm.DofMap
	points []*PointLoad
	tracs  []*TractionLoad
}

// NewNeumann returns a new natural-conditions manager
func NewNeumann(m *msh.Mesh, dm *asm.DofMap) *Neumann {
	return &Neumann{Msh: m, Dm: dm}
}

// AddPointLoad adds a concentrated load at (node id, local DOF offset)
func (o *Neumann) AddPointLoad(nodeId, dofOffset int, fcn fun.Func) (err error) {
	idx, err := o.Msh.NodeIndex(nodeId)
	if err != nil {
		return
	}
	if dofOffset < 0 || dofOffset >= o.Dm.Ndpn {
		return chk.Err("DOF offset %d is out of range. ndpn=%d", dofOffset, o.Dm.Ndpn)
	}
	o.points = append(o.points, &PointLoad{Dof: o.Dm.Dof(idx, dofOffset), Fcn: fcn})
	return
}

// AddTraction adds a distributed load over a boundary element
func (o *Neumann) AddTraction(elemId, dofOffset int, fcn fun.Func) (err error) {
	ie, err := o.Msh.ElemIndex(elemId)
	if err != nil {
		return
	}
	if !o.Msh.Elems[ie].Bry {
		return chk.Err("tractions can only be applied to boundary elements. element %d is a volume element", elemId)
	}
	if dofOffset < 0 || dofOffset >= o.Dm.Ndpn {
		return chk.Err("DOF offset %d is out of range. ndpn=%d", dofOffset, o.Dm.Ndpn)
	}
	o.tracs = append(o.tracs, &TractionLoad{ElemId: elemId, Dir: dofOffset, Fcn: fcn})
	return
}

// Fext computes the unconstrained external force vector at time t
func (o *Neumann) Fext(t float64) (f []float64, err error) {
	f = make([]float64, o.Dm.Nu)

	// concentrated loads
	for _, p := range o.points {
		f[p.Dof] += p.Fcn.F(t, nil)
	}

	// tractions: fm += ∫ Sm q dΓ over the boundary element
	for _, tr := range o.tracs {
		ie, err := o.Msh.ElemIndex(tr.ElemId)
		if err != nil {
			return nil, err
		}
		e := o.Msh.Elems[ie]
		s := shp.Get(e.Type)
		x := o.Msh.CoordsMatrix(e)
		q := tr.Fcn.F(t, nil)
		for _, ip := range s.Ips {
			err = s.CalcAtIp(x, ip, true)
			if err != nil {
				return nil, err
			}
			coef := s.J * ip[3] * q
			for l, idx := range e.Verts {
				f[o.Dm.Dof(idx, tr.Dir)] += coef * s.S[l]
			}
		}
	}
	return
}
