// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements a mesh store: node coordinates, element connectivity
// and named groups for region selection
package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gorom/shp"
)

// Node holds vertex data
type Node struct {
	Id int       // external id
	C  []float64 // coordinates (size==2 or 3)
}

// Elem holds element data
type Elem struct {
	Id    int    // external id
	Type  string // geometry type; e.g. "qua4"
	Verts []int  // node indices (positions in Nodes), ordered per shape convention
	Bry   bool   // boundary (surface) element as opposed to volume element
	Ci    int    // start position in the flat connectivity store
}

// Group maps a region name to sets of node and element ids
type Group struct {
	NodeIds []int
	ElemIds []int
}

// Mesh holds nodes, elements and groups for FE analyses
type Mesh struct {

	// data
	Ndim  int               // space dimension
	Nodes []*Node           // nodes
	Elems []*Elem           // elements
	Conn  []int             // flat connectivity store; Elems[i].Verts copies Conn[Ci:Ci+nverts]
	Grps  map[string]*Group // named groups

	// limits
	Xmin, Xmax float64
	Ymin, Ymax float64
	Zmin, Zmax float64

	// derived maps
	id2node map[int]int // node id => index in Nodes
	id2elem map[int]int // elem id => index in Elems

	// version increases on every topology mutation; derived caches
	// (DOF maps, sparsity patterns) compare against it to detect staleness
	version int
}

// New returns a new empty mesh
func New(ndim int) *Mesh {
	if ndim < 2 || ndim > 3 {
		chk.Panic("space dimension must be 2 or 3. ndim=%d is invalid", ndim)
	}
	return &Mesh{
		Ndim:    ndim,
		Grps:    make(map[string]*Group),
		id2node: make(map[int]int),
		id2elem: make(map[int]int),
	}
}

// Version returns the topology version of this mesh
func (o *Mesh) Version() int { return o.version }

// AddNode adds a new node and returns its index
func (o *Mesh) AddNode(id int, c []float64) (idx int, err error) {
	if _, ok := o.id2node[id]; ok {
		return -1, chk.Err("node with id=%d exists already", id)
	}
	if len(c) != o.Ndim {
		return -1, chk.Err("node %d has %d coordinates. ndim=%d is required", id, len(c), o.Ndim)
	}
	idx = len(o.Nodes)
	cc := make([]float64, o.Ndim)
	copy(cc, c)
	o.Nodes = append(o.Nodes, &Node{Id: id, C: cc})
	o.id2node[id] = idx
	if idx == 0 {
		o.Xmin, o.Xmax = c[0], c[0]
		o.Ymin, o.Ymax = c[1], c[1]
		if o.Ndim > 2 {
			o.Zmin, o.Zmax = c[2], c[2]
		}
	} else {
		o.Xmin, o.Xmax = utl.Min(o.Xmin, c[0]), utl.Max(o.Xmax, c[0])
		o.Ymin, o.Ymax = utl.Min(o.Ymin, c[1]), utl.Max(o.Ymax, c[1])
		if o.Ndim > 2 {
			o.Zmin, o.Zmax = utl.Min(o.Zmin, c[2]), utl.Max(o.Zmax, c[2])
		}
	}
	o.version++
	return
}

// AddElement adds a new element given its geometry type and the ids of its
// nodes, and returns the element id. The shape determines the required number
// of nodes exactly.
func (o *Mesh) AddElement(geoType string, nodeIds []int, bry bool) (elemId int, err error) {

	// check shape
	s := shp.Get(geoType)
	if s == nil {
		return -1, chk.Err("unknown geometry type %q", geoType)
	}
	if len(nodeIds) != s.Nverts {
		return -1, chk.Err("geometry type %q requires %d nodes. %d were given", geoType, s.Nverts, len(nodeIds))
	}

	// map ids to indices
	verts := make([]int, s.Nverts)
	for m, id := range nodeIds {
		idx, ok := o.id2node[id]
		if !ok {
			return -1, chk.Err("element references nonexistent node id=%d", id)
		}
		verts[m] = idx
	}

	// add element
	ci := len(o.Conn)
	o.Conn = append(o.Conn, verts...)
	elemId = len(o.Elems)
	o.Elems = append(o.Elems, &Elem{
		Id:    elemId,
		Type:  geoType,
		Verts: verts,
		Bry:   bry,
		Ci:    ci,
	})
	o.id2elem[elemId] = elemId
	o.version++
	return
}

// NodeIndex returns the index of the node with the given id, or an error
func (o *Mesh) NodeIndex(id int) (idx int, err error) {
	idx, ok := o.id2node[id]
	if !ok {
		return -1, chk.Err("node with id=%d does not exist", id)
	}
	return
}

// ElemIndex returns the index of the element with the given id, or an error
func (o *Mesh) ElemIndex(id int) (idx int, err error) {
	idx, ok := o.id2elem[id]
	if !ok {
		return -1, chk.Err("element with id=%d does not exist", id)
	}
	return
}

// SetGroup defines a named group with the given node and element ids
func (o *Mesh) SetGroup(name string, nodeIds, elemIds []int) (err error) {
	for _, id := range nodeIds {
		if _, ok := o.id2node[id]; !ok {
			return chk.Err("group %q references nonexistent node id=%d", name, id)
		}
	}
	for _, id := range elemIds {
		if _, ok := o.id2elem[id]; !ok {
			return chk.Err("group %q references nonexistent element id=%d", name, id)
		}
	}
	o.Grps[name] = &Group{NodeIds: nodeIds, ElemIds: elemIds}
	return
}

// SelectByGroup returns the node and element ids of a named group
func (o *Mesh) SelectByGroup(name string) (nodeIds, elemIds []int, err error) {
	g, ok := o.Grps[name]
	if !ok {
		return nil, nil, chk.Err("group %q does not exist", name)
	}
	return g.NodeIds, g.ElemIds, nil
}

// CoordsMatrix builds the coordinates matrix x[ndim][nverts] of one element
func (o *Mesh) CoordsMatrix(e *Elem) (x [][]float64) {
	x = make([][]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		x[i] = make([]float64, len(e.Verts))
		for m, idx := range e.Verts {
			x[i][m] = o.Nodes[idx].C[i]
		}
	}
	return
}

// Deflate removes nodes referenced by no element, renumbering the remaining
// ones. It returns the old-to-new index mapping with -1 marking dropped nodes.
// Groups are filtered to drop removed node ids.
func (o *Mesh) Deflate() (old2new []int) {

	// find referenced nodes
	used := make([]bool, len(o.Nodes))
	for _, idx := range o.Conn {
		used[idx] = true
	}

	// renumber
	old2new = make([]int, len(o.Nodes))
	var nodes []*Node
	for i, n := range o.Nodes {
		if used[i] {
			old2new[i] = len(nodes)
			nodes = append(nodes, n)
		} else {
			old2new[i] = -1
			delete(o.id2node, n.Id)
		}
	}
	if len(nodes) == len(o.Nodes) {
		return // nothing to do; caches remain valid
	}
	o.Nodes = nodes
	for i, n := range o.Nodes {
		o.id2node[n.Id] = i
	}

	// remap connectivity
	for i, idx := range o.Conn {
		o.Conn[i] = old2new[idx]
	}
	for _, e := range o.Elems {
		for i, idx := range e.Verts {
			e.Verts[i] = old2new[idx]
		}
	}

	// filter groups
	for _, g := range o.Grps {
		var kept []int
		for _, id := range g.NodeIds {
			if _, ok := o.id2node[id]; ok {
				kept = append(kept, id)
			}
		}
		g.NodeIds = kept
	}
	o.version++
	return
}
