// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"

	"github.com/cpmech/gorom/asm"
	"github.com/cpmech/gorom/msh"
	"github.com/cpmech/gorom/shp"
)

// TIE_TOL is the natural-coordinate containment tolerance for mesh tying.
// Slave points exactly on a master element boundary are accepted.
const TIE_TOL = 1e-8

// TieMesh couples a slave node set to a master element region: for each slave
// node it finds the enclosing master element, computes interpolation weights
// from the master's shape functions at the slave position, and injects one
// linear constraint row per DOF. The master region must geometrically embrace
// every slave node; an unresolved slave point is a hard error.
func (o *Dirichlet) TieMesh(m *msh.Mesh, dm *asm.DofMap, slaveNodeIds, masterElemIds []int) (err error) {

	if len(masterElemIds) == 0 {
		return chk.Err("mesh tying requires at least one master element")
	}

	// bin master element centroids for fast candidate lookup
	var bins gm.Bins
	xi := []float64{m.Xmin, m.Ymin, m.Zmin}[:m.Ndim]
	xf := []float64{m.Xmax, m.Ymax, m.Zmax}[:m.Ndim]
	err = bins.Init(xi, xf, 20)
	if err != nil {
		return chk.Err("cannot initialise bins for mesh tying:\n%v", err)
	}
	centroid := make([]float64, m.Ndim)
	for k, eid := range masterElemIds {
		ie, err := m.ElemIndex(eid)
		if err != nil {
			return err
		}
		e := m.Elems[ie]
		for i := 0; i < m.Ndim; i++ {
			centroid[i] = 0
			for _, idx := range e.Verts {
				centroid[i] += m.Nodes[idx].C[i]
			}
			centroid[i] /= float64(len(e.Verts))
		}
		err = bins.Append(centroid, k)
		if err != nil {
			return chk.Err("cannot append master centroid to bins:\n%v", err)
		}
	}

	// resolve each slave node
	R := make([]float64, 3)
	for _, nid := range slaveNodeIds {
		nidx, err := m.NodeIndex(nid)
		if err != nil {
			return err
		}
		y := m.Nodes[nidx].C

		// try nearest candidate first, then scan all masters
		found := false
		var host *msh.Elem
		var hostShp *shp.Shape
		try := func(eid int) bool {
			ie, ferr := m.ElemIndex(eid)
			if ferr != nil {
				return false
			}
			elem := m.Elems[ie]
			s := shp.Get(elem.Type)
			x := m.CoordsMatrix(elem)
			if s.InvMap(R, y, x) != nil {
				return false
			}
			if s.CellBryDist(R) < -TIE_TOL {
				return false
			}
			host, hostShp = elem, s
			return true
		}
		if k := bins.Find(y); k >= 0 {
			found = try(masterElemIds[k])
		}
		if !found {
			for _, eid := range masterElemIds {
				if try(eid) {
					found = true
					break
				}
			}
		}
		if !found {
			return chk.Err("mesh tying cannot resolve slave node %d at %v: no master element embraces it", nid, y)
		}

		// interpolation weights from shape functions at the slave position
		hostShp.Func(hostShp.S, hostShp.DSdR, R, false)
		for d := 0; d < dm.Ndpn; d++ {
			slaveDof := dm.Dof(nidx, d)
			masters := make([]int, 0, hostShp.Nverts)
			weights := make([]float64, 0, hostShp.Nverts)
			for l, midx := range host.Verts {
				if midx == nidx {
					return chk.Err("slave node %d belongs to master element %d", nid, host.Id)
				}
				if hostShp.S[l] == 0 {
					continue
				}
				masters = append(masters, dm.Dof(midx, d))
				weights = append(weights, hostShp.S[l])
			}
			if err := o.AddLinearConstraint(slaveDof, masters, weights); err != nil {
				return err
			}
		}
	}
	return
}
