// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"encoding/json"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// fixed dataset paths for reduction data
const (
	DSET_V     = "reduction/V"
	DSET_THETA = "reduction/Theta"
	DSET_XI    = "hyperreduction/xi"
)

// Dataset is a named auxiliary field attached to a results recorder: an
// array of any shape plus free-form metadata
type Dataset struct {
	Data interface{}       `json:"data"`
	Meta map[string]string `json:"meta,omitempty"`
}

// Recorder accumulates time-indexed unconstrained displacements (and
// optionally nodal stress/strain) plus named auxiliary datasets for export
type Recorder struct {
	T    []float64     // output times
	U    [][]float64   // unconstrained displacement per time
	SigN [][][]float64 // nodal stresses per time (optional)
	EpsN [][][]float64 // nodal strains per time (optional)

	aux map[string]*Dataset
}

// NewRecorder returns a new, empty results recorder
func NewRecorder() *Recorder {
	return &Recorder{aux: make(map[string]*Dataset)}
}

// WriteTimestep appends one output frame. u must be in the unconstrained
// space (use System.Unconstrain first). sigN and epsN are optional; once
// given they must be given for every subsequent frame.
func (o *Recorder) WriteTimestep(t float64, u []float64, sigN, epsN [][]float64) error {
	if len(o.U) > 0 && len(u) != len(o.U[0]) {
		return chk.Err("displacement has %d entries. %d are required", len(u), len(o.U[0]))
	}
	if len(o.SigN) > 0 && sigN == nil {
		return chk.Err("stress output started at t=%g but is missing at t=%g", o.T[0], t)
	}
	if len(o.EpsN) > 0 && epsN == nil {
		return chk.Err("strain output started at t=%g but is missing at t=%g", o.T[0], t)
	}
	uc := make([]float64, len(u))
	copy(uc, u)
	o.T = append(o.T, t)
	o.U = append(o.U, uc)
	if sigN != nil {
		o.SigN = append(o.SigN, matCopy(sigN))
	}
	if epsN != nil {
		o.EpsN = append(o.EpsN, matCopy(epsN))
	}
	return nil
}

// SetDataset attaches (or replaces) a named auxiliary field
func (o *Recorder) SetDataset(path string, data interface{}, meta map[string]string) {
	o.aux[path] = &Dataset{Data: data, Meta: meta}
}

// Dataset returns a named auxiliary field, or nil if absent
func (o *Recorder) Dataset(path string) *Dataset {
	return o.aux[path]
}

// Paths returns the sorted list of attached dataset paths
func (o *Recorder) Paths() (paths []string) {
	for p := range o.aux {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return
}

// RecordBasis attaches the reduction data of a system variant at the fixed
// dataset paths. Variants without reduction data attach nothing.
func (o *Recorder) RecordBasis(s System) {
	switch v := s.(type) {
	case *Reduced:
		o.SetDataset(DSET_V, v.V, map[string]string{"assembly": v.Typ})
	case *QM:
		o.SetDataset(DSET_V, v.V, nil)
		o.SetDataset(DSET_THETA, v.Theta, nil)
	case *HyperReduced:
		o.SetDataset(DSET_V, v.Red.V, map[string]string{"assembly": v.Red.Typ})
		o.SetDataset(DSET_XI, v.Xi, map[string]string{"elements": io.Sf("%v", v.Etilde)})
	}
}

// recorderFile is the on-disk layout
type recorderFile struct {
	T    []float64           `json:"t"`
	U    [][]float64         `json:"u"`
	SigN [][][]float64       `json:"signodal,omitempty"`
	EpsN [][][]float64       `json:"epsnodal,omitempty"`
	Aux  map[string]*Dataset `json:"datasets,omitempty"`
}

// Export writes the accumulated series and auxiliary datasets as one JSON
// file in dirout
func (o *Recorder) Export(dirout, filename string) error {
	b, err := json.MarshalIndent(&recorderFile{
		T: o.T, U: o.U, SigN: o.SigN, EpsN: o.EpsN, Aux: o.aux,
	}, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal results: %v", err)
	}
	io.WriteFileSD(dirout, filename, string(b))
	return nil
}

// ReadRecorder loads a previously exported results file
func ReadRecorder(path string) (*Recorder, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f recorderFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, chk.Err("cannot parse results file %q: %v", path, err)
	}
	o := &Recorder{T: f.T, U: f.U, SigN: f.SigN, EpsN: f.EpsN, aux: f.Aux}
	if o.aux == nil {
		o.aux = make(map[string]*Dataset)
	}
	return o, nil
}

func matCopy(a [][]float64) (b [][]float64) {
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = make([]float64, len(a[i]))
		copy(b[i], a[i])
	}
	return
}
