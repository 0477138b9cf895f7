// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions for the supported element geometries
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// MINDET is the minimum determinant allowed for dxdR
const MINDET = 1.0e-14

// Ipoint holds integration point data: natural coordinates and weight [r, s, t, w]
type Ipoint []float64

// ShpFunc is the shape/derivatives callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data and a scratchpad for computations at one point
type Shape struct {

	// geometry
	Type      string      // name; e.g. "lin2"
	BasicType string      // geometry of basic element; e.g. "qua8" => "qua4"
	Gndim     int         // geometry dimension; e.g. "lin3" => 1 (even in 2D analyses)
	Nverts    int         // number of vertices; e.g. "qua8" => 8
	Func      ShpFunc     // shape/derivs callback
	NatCoords [][]float64 // natural coordinates of vertices [gndim][nverts]
	Ips       []Ipoint    // default integration points

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] inverse(dxdR)
	G    [][]float64 // [nverts][gndim] G == dSdx
	J    float64     // Jacobian: determinant of dxdR

	// scratchpad: line
	Jvec3d []float64 // Jacobian vector for line elements
	Gvec   []float64 // [nverts] dSdx for line elements
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// register adds a new shape to the factory
func register(s *Shape) {
	if _, ok := factory[s.Type]; ok {
		chk.Panic("cannot register shape %q twice", s.Type)
	}
	s.S = make([]float64, s.Nverts)
	s.DSdR = la.MatAlloc(s.Nverts, s.Gndim)
	s.DxdR = la.MatAlloc(s.Gndim, s.Gndim)
	s.DRdx = la.MatAlloc(s.Gndim, s.Gndim)
	s.G = la.MatAlloc(s.Nverts, s.Gndim)
	s.Jvec3d = make([]float64, 3)
	s.Gvec = make([]float64, s.Nverts)
	factory[s.Type] = s
}

// Get returns an existent Shape structure or nil
func Get(geoType string) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s
}

// IpRealCoords returns the real coordinates (y) of an integration point
//  x[ndim][nverts] -- coordinates matrix of element
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates S, G and J at the natural coordinates of one integration point
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   ip              -- integration point (or natural coordinates)
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// line elements: Jacobian is the norm of the tangent vector
	if o.Gndim == 1 {
		for i := 0; i < len(x); i++ {
			o.Jvec3d[i] = 0.0
			for m := 0; m < o.Nverts; m++ {
				o.Jvec3d[i] += x[i][m] * o.DSdR[m][0] // dxdR := x * dSdR
			}
		}
		o.J = la.VecNorm(o.Jvec3d)
		for m := 0; m < o.Nverts; m++ {
			o.Gvec[m] = o.DSdR[m][0] / o.J
		}
		return
	}

	// dxdR := sum_n x * dSdR  =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	o.J, err = la.MatInv(o.DRdx, o.DxdR, MINDET)
	if err != nil {
		return
	}

	// G == dSdx := dSdR * dRdx
	la.MatMul(o.G, 1, o.DSdR, o.DRdx)
	return
}

// CalcAtR calculates S, G and J at natural coordinates R
func (o *Shape) CalcAtR(x [][]float64, R []float64, derivs bool) (err error) {
	return o.CalcAtIp(x, R, derivs)
}
