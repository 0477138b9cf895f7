// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gorom/msh"
)

// DofMap holds the global unconstrained DOF numbering of a mesh and the
// element-to-DOF lookup tables used by assembly. DOFs are assigned in
// node-index order so that two maps built on the same mesh produce identical
// numbering.
type DofMap struct {
	Msh   *msh.Mesh // mesh reference (not a copy)
	Ndpn  int       // number of DOFs per node
	Nu    int       // total number of unconstrained DOFs
	Umaps [][]int   // [nelems][nu_local] element => global DOF indices

	version int // mesh topology version at build time
}

// NewDofMap builds the DOF numbering for a mesh with ndpn DOFs per node
func NewDofMap(m *msh.Mesh, ndpn int) (o *DofMap, err error) {
	if ndpn < 1 {
		return nil, chk.Err("number of DOFs per node must be at least 1. ndpn=%d is invalid", ndpn)
	}
	o = &DofMap{
		Msh:     m,
		Ndpn:    ndpn,
		Nu:      ndpn * len(m.Nodes),
		Umaps:   make([][]int, len(m.Elems)),
		version: m.Version(),
	}
	for ie, e := range m.Elems {
		umap := make([]int, ndpn*len(e.Verts))
		for l, idx := range e.Verts {
			for d := 0; d < ndpn; d++ {
				umap[l*ndpn+d] = idx*ndpn + d
			}
		}
		o.Umaps[ie] = umap
	}
	return
}

// Dof returns the global DOF index of (node index, local DOF offset)
func (o *DofMap) Dof(nodeIdx, offset int) int {
	return nodeIdx*o.Ndpn + offset
}

// NodeOfDof returns the (node index, local DOF offset) pair of a global DOF
func (o *DofMap) NodeOfDof(dof int) (nodeIdx, offset int) {
	return dof / o.Ndpn, dof % o.Ndpn
}

// Stale tells whether the mesh topology changed after this map was built
func (o *DofMap) Stale() bool {
	return o.version != o.Msh.Version()
}
