// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gorom/ele"
	"github.com/cpmech/gorom/msh"
	"github.com/cpmech/gorom/shp"
)

// KernelSelector returns the kernel name and material of one element. An
// empty name skips the element (e.g. boundary elements handled as loads).
type KernelSelector func(e *msh.Elem) (kernelName string, mat *ele.Material)

// Assembler iterates elements and scatter-accumulates their local
// contributions into global sparse operators with a preallocated pattern
type Assembler struct {

	// references
	Msh *msh.Mesh // mesh reference
	Dm  *DofMap   // DOF numbering

	// per-element data
	Kernels []ele.Kernel // kernel per element; nil for skipped elements
	Locals  []*ele.Local // local scratchpads

	// preallocated sparsity
	proto *SpMat // prototype pattern for all global matrices

	version int // mesh topology version at build time
}

// New builds an assembler: allocates one kernel per element via the selector
// and preallocates the global sparsity pattern implied by all element DOF
// blocks
func New(m *msh.Mesh, dm *DofMap, selector KernelSelector) (o *Assembler, err error) {

	if dm.Stale() {
		return nil, chk.Err("DOF map is stale. it must be rebuilt after mesh changes")
	}

	o = &Assembler{
		Msh:     m,
		Dm:      dm,
		Kernels: make([]ele.Kernel, len(m.Elems)),
		Locals:  make([]*ele.Local, len(m.Elems)),
		proto:   NewSpMat(dm.Nu, dm.Nu),
		version: m.Version(),
	}

	// kernels
	for ie, e := range m.Elems {
		name, mat := selector(e)
		if name == "" {
			continue
		}
		x := m.CoordsMatrix(e)
		k, err := ele.New(name, x, mat)
		if err != nil {
			return nil, chk.Err("cannot allocate kernel for element %d:\n%v", e.Id, err)
		}
		if k.Ndof() != len(o.Dm.Umaps[ie]) {
			return nil, chk.Err("kernel %q has %d unknowns but element %d has %d DOFs", name, k.Ndof(), e.Id, len(o.Dm.Umaps[ie]))
		}
		o.Kernels[ie] = k
		nip, ncomp := 0, 0
		if sp, ok := k.(ele.StressProducer); ok {
			nip, ncomp = len(sp.Ips()), sp.Ncomp()
		}
		o.Locals[ie] = ele.NewLocal(k.Ndof(), nip, ncomp)
	}

	// preallocate sparsity: union of all dense local DOF blocks
	for ie := range m.Elems {
		if o.Kernels[ie] == nil {
			continue
		}
		umap := o.Dm.Umaps[ie]
		for _, I := range umap {
			for _, J := range umap {
				o.proto.AddToPattern(I, J)
			}
		}
	}
	return
}

// Nu returns the number of unconstrained DOFs
func (o *Assembler) Nu() int { return o.Dm.Nu }

// NewOperator returns a new zeroed global matrix sharing the preallocated
// pattern
func (o *Assembler) NewOperator() *SpMat { return o.proto.Pattern() }

// check returns an error if the mesh topology changed after this assembler
// was built
func (o *Assembler) check() error {
	if o.version != o.Msh.Version() {
		return chk.Err("assembler is stale. it must be rebuilt after mesh changes")
	}
	return nil
}

// localState extracts local displacements/velocities of one element
func (o *Assembler) localState(ie int, u, du []float64) (ue, due []float64) {
	umap := o.Dm.Umaps[ie]
	ue = make([]float64, len(umap))
	due = make([]float64, len(umap))
	for i, I := range umap {
		if u != nil {
			ue[i] = u[I]
		}
		if du != nil {
			due[i] = du[I]
		}
	}
	return
}

// VisitElements evaluates the kernel of every element in ids (all elements if
// ids is nil) at state u,t and calls fcn with the element index, its DOF map
// and the filled local structure. Kernel failures abort the visit.
func (o *Assembler) VisitElements(u []float64, t float64, ids []int, fcn func(ie int, umap []int, l *ele.Local) error) (err error) {
	if err = o.check(); err != nil {
		return
	}
	visit := func(ie int) error {
		k := o.Kernels[ie]
		if k == nil {
			return nil
		}
		ue, due := o.localState(ie, u, nil)
		l := o.Locals[ie]
		if e := k.Evaluate(l, ue, due, t); e != nil {
			return chk.Err("kernel of element %d failed:\n%v", o.Msh.Elems[ie].Id, e)
		}
		return fcn(ie, o.Dm.Umaps[ie], l)
	}
	if ids == nil {
		for ie := range o.Msh.Elems {
			if err = visit(ie); err != nil {
				return
			}
		}
		return
	}
	for _, ie := range ids {
		if ie < 0 || ie >= len(o.Msh.Elems) {
			return chk.Err("element index %d is out of range", ie)
		}
		if err = visit(ie); err != nil {
			return
		}
	}
	return
}

// Mass assembles the global unconstrained mass matrix
func (o *Assembler) Mass(u []float64, t float64) (M *SpMat, err error) {
	M = o.NewOperator()
	err = o.VisitElements(u, t, nil, func(ie int, umap []int, l *ele.Local) error {
		for i, I := range umap {
			for j, J := range umap {
				M.Put(I, J, l.M[i][j])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}

// KandF assembles the global unconstrained stiffness matrix and internal
// force vector
func (o *Assembler) KandF(u []float64, t float64) (K *SpMat, F []float64, err error) {
	K = o.NewOperator()
	F = make([]float64, o.Dm.Nu)
	err = o.VisitElements(u, t, nil, func(ie int, umap []int, l *ele.Local) error {
		for i, I := range umap {
			F[I] += l.F[i]
			for j, J := range umap {
				K.Put(I, J, l.K[i][j])
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return
}

// KandFWeighted assembles stiffness and internal force over the element
// subset ids only, scaling each element contribution by its weight
func (o *Assembler) KandFWeighted(u []float64, t float64, ids []int, wgts []float64) (K *SpMat, F []float64, err error) {
	if len(ids) != len(wgts) {
		return nil, nil, chk.Err("element subset and weights must have the same length: %d != %d", len(ids), len(wgts))
	}
	K = o.NewOperator()
	F = make([]float64, o.Dm.Nu)
	pos := make(map[int]int, len(ids))
	for k, ie := range ids {
		pos[ie] = k
	}
	err = o.VisitElements(u, t, ids, func(ie int, umap []int, l *ele.Local) error {
		w := wgts[pos[ie]]
		for i, I := range umap {
			F[I] += w * l.F[i]
			for j, J := range umap {
				K.Put(I, J, w*l.K[i][j])
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return
}

// KandFandStress assembles stiffness and internal force and additionally
// recovers nodal-averaged stresses and strains by extrapolating
// integration-point values to nodes
func (o *Assembler) KandFandStress(u []float64, t float64) (K *SpMat, F []float64, SigN, EpsN [][]float64, err error) {

	// extrapolation matrices, one per shape
	emats := make(map[*shp.Shape][][]float64)
	ncomp := 0
	for ie, k := range o.Kernels {
		sp, ok := k.(ele.StressProducer)
		if !ok {
			continue
		}
		if ncomp == 0 {
			ncomp = sp.Ncomp()
		}
		if sp.Ncomp() != ncomp {
			return nil, nil, nil, nil, chk.Err("element %d has %d stress components. %d are required", o.Msh.Elems[ie].Id, sp.Ncomp(), ncomp)
		}
		s := sp.Shape()
		if _, ok := emats[s]; !ok {
			E := la.MatAlloc(s.Nverts, len(sp.Ips()))
			if err = s.Extrapolator(E, sp.Ips()); err != nil {
				return nil, nil, nil, nil, err
			}
			emats[s] = E
		}
	}
	if ncomp == 0 {
		return nil, nil, nil, nil, chk.Err("no element kernel produces stresses")
	}

	// assemble and accumulate nodal values
	nnodes := len(o.Msh.Nodes)
	SigN = la.MatAlloc(nnodes, ncomp)
	EpsN = la.MatAlloc(nnodes, ncomp)
	counts := make([]float64, nnodes)
	K = o.NewOperator()
	F = make([]float64, o.Dm.Nu)
	err = o.VisitElements(u, t, nil, func(ie int, umap []int, l *ele.Local) error {
		for i, I := range umap {
			F[I] += l.F[i]
			for j, J := range umap {
				K.Put(I, J, l.K[i][j])
			}
		}
		sp, ok := o.Kernels[ie].(ele.StressProducer)
		if !ok {
			return nil
		}
		E := emats[sp.Shape()]
		for m, idx := range o.Msh.Elems[ie].Verts {
			counts[idx]++
			for c := 0; c < ncomp; c++ {
				for p := range l.Sig {
					SigN[idx][c] += E[m][p] * l.Sig[p][c]
					EpsN[idx][c] += E[m][p] * l.Eps[p][c]
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}

	// average between adjacent elements
	for idx := 0; idx < nnodes; idx++ {
		if counts[idx] > 0 {
			for c := 0; c < ncomp; c++ {
				SigN[idx][c] /= counts[idx]
				EpsN[idx][c] /= counts[idx]
			}
		}
	}
	return
}
