// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"encoding/json"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// jsonVert, jsonCell and jsonGroup mirror the JSON mesh file layout
type jsonVert struct {
	Id int       `json:"id"`
	C  []float64 `json:"c"`
}

type jsonCell struct {
	Id    int    `json:"id"`
	Type  string `json:"type"`
	Verts []int  `json:"verts"`
	Bry   bool   `json:"bry"`
}

type jsonGroup struct {
	Nids []int `json:"nids"`
	Eids []int `json:"eids"`
}

type jsonMesh struct {
	Ndim  int                  `json:"ndim"`
	Verts []jsonVert           `json:"verts"`
	Cells []jsonCell           `json:"cells"`
	Grps  map[string]jsonGroup `json:"groups"`
}

// ReadJSON reads a mesh from a JSON file
func ReadJSON(fn string) (o *Mesh, err error) {

	// read and decode
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", fn, err)
	}
	var jm jsonMesh
	err = json.Unmarshal(b, &jm)
	if err != nil {
		return nil, chk.Err("cannot decode mesh file %q:\n%v", fn, err)
	}

	// build mesh
	o = New(jm.Ndim)
	for _, v := range jm.Verts {
		_, err = o.AddNode(v.Id, v.C)
		if err != nil {
			return nil, err
		}
	}
	for _, c := range jm.Cells {
		_, err = o.AddElement(c.Type, c.Verts, c.Bry)
		if err != nil {
			return nil, err
		}
	}
	for name, g := range jm.Grps {
		err = o.SetGroup(name, g.Nids, g.Eids)
		if err != nil {
			return nil, err
		}
	}
	return
}

// ReadCSV reads a mesh from paired node and element CSV files.
//  Node lines:    id, x, y [, z]
//  Element lines: id, type, bry, nodeId0, nodeId1, ...
// Lines starting with '#' and blank lines are skipped. The element id column
// is accepted for readability but ids are assigned in file order.
func ReadCSV(ndim int, nodesFn, elemsFn string) (o *Mesh, err error) {

	o = New(ndim)

	// nodes
	lines, err := csvLines(nodesFn)
	if err != nil {
		return nil, err
	}
	for _, f := range lines {
		if len(f) != 1+ndim {
			return nil, chk.Err("node line in %q must have %d fields. %d were found", nodesFn, 1+ndim, len(f))
		}
		id := io.Atoi(f[0])
		c := make([]float64, ndim)
		for i := 0; i < ndim; i++ {
			c[i] = io.Atof(f[1+i])
		}
		_, err = o.AddNode(id, c)
		if err != nil {
			return nil, err
		}
	}

	// elements
	lines, err = csvLines(elemsFn)
	if err != nil {
		return nil, err
	}
	for _, f := range lines {
		if len(f) < 4 {
			return nil, chk.Err("element line in %q must have at least 4 fields. %d were found", elemsFn, len(f))
		}
		geoType := f[1]
		bry := io.Atob(f[2])
		ids := make([]int, len(f)-3)
		for i := range ids {
			ids[i] = io.Atoi(f[3+i])
		}
		_, err = o.AddElement(geoType, ids, bry)
		if err != nil {
			return nil, err
		}
	}
	return
}

// csvLines reads a file and splits it into comma-separated trimmed fields
func csvLines(fn string) (lines [][]string, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read file %q:\n%v", fn, err)
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		lines = append(lines, fields)
	}
	return
}
