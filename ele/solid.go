// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gorom/shp"
)

// Solid is a 2D small-strain linear-elastic solid kernel working on any plane
// geometry from the shp factory (tri3, tri6, qua4, qua8)
type Solid struct {

	// basic data
	X    [][]float64 // matrix of nodal coordinates [2][nverts]
	Shp  *shp.Shape  // shape structure
	Nu   int         // total number of unknowns == 2 * nverts
	Mat  *Material   // E, Nu, Rho, Thick and Pstress parameters
	Dmat [][]float64 // [3][3] elastic moduli (plane stress or plane strain)

	// scratchpad
	B   [][]float64 // [3][nu] strain-displacement matrix @ one ip
	eps []float64   // [3] strains @ one ip
}

// stress/strain components are {xx, yy, xy} with engineering shear strain
const solidNcomp = 3

func init() {
	Register("solid", func(x [][]float64, mat *Material) (Kernel, error) {
		return newSolid(x, mat)
	})
}

func newSolid(x [][]float64, mat *Material) (*Solid, error) {

	// check
	if len(x) != 2 {
		return nil, chk.Err("solid kernel is 2D only. ndim=%d was given", len(x))
	}

	// find shape by number of vertices
	var s *shp.Shape
	switch len(x[0]) {
	case 3:
		s = shp.Get("tri3")
	case 4:
		s = shp.Get("qua4")
	case 6:
		s = shp.Get("tri6")
	case 8:
		s = shp.Get("qua8")
	default:
		return nil, chk.Err("cannot find 2D solid shape with %d vertices", len(x[0]))
	}

	// basic data
	var o Solid
	o.X = x
	o.Shp = s
	o.Nu = 2 * s.Nverts
	o.Mat = mat
	o.B = la.MatAlloc(solidNcomp, o.Nu)
	o.eps = make([]float64, solidNcomp)

	// elastic moduli
	E, ν := mat.E, mat.Nu
	o.Dmat = la.MatAlloc(solidNcomp, solidNcomp)
	if mat.Pstress {
		c := E / (1.0 - ν*ν)
		o.Dmat[0][0], o.Dmat[0][1] = c, c*ν
		o.Dmat[1][0], o.Dmat[1][1] = c*ν, c
		o.Dmat[2][2] = c * (1.0 - ν) / 2.0
	} else {
		c := E / ((1.0 + ν) * (1.0 - 2.0*ν))
		o.Dmat[0][0], o.Dmat[0][1] = c*(1.0-ν), c*ν
		o.Dmat[1][0], o.Dmat[1][1] = c*ν, c*(1.0-ν)
		o.Dmat[2][2] = c * (1.0 - 2.0*ν) / 2.0
	}
	return &o, nil
}

// Ndof returns the number of local unknowns
func (o *Solid) Ndof() int { return o.Nu }

// Shape returns the element geometry
func (o *Solid) Shape() *shp.Shape { return o.Shp }

// Ips returns the integration points used for stress output
func (o *Solid) Ips() []shp.Ipoint { return o.Shp.Ips }

// Ncomp returns the number of stress components
func (o *Solid) Ncomp() int { return solidNcomp }

// Evaluate fills the local matrices, the internal force vector and the
// stresses/strains at integration points
func (o *Solid) Evaluate(l *Local, ue, due []float64, t float64) (err error) {

	// clear
	la.MatFill(l.M, 0)
	la.MatFill(l.K, 0)
	la.VecFill(l.F, 0)

	// thickness
	th := o.Mat.Thick
	if th == 0 {
		th = 1.0
	}

	// loop over integration points
	for idx, ip := range o.Shp.Ips {

		// interpolation functions and gradients
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3] * th

		// strain-displacement matrix
		for m := 0; m < o.Shp.Nverts; m++ {
			gx := o.Shp.G[m][0]
			gy := o.Shp.G[m][1]
			o.B[0][2*m], o.B[0][2*m+1] = gx, 0
			o.B[1][2*m], o.B[1][2*m+1] = 0, gy
			o.B[2][2*m], o.B[2][2*m+1] = gy, gx
		}

		// K += coef * Bᵗ * D * B
		for i := 0; i < o.Nu; i++ {
			for j := 0; j < o.Nu; j++ {
				for k := 0; k < solidNcomp; k++ {
					for r := 0; r < solidNcomp; r++ {
						l.K[i][j] += coef * o.B[k][i] * o.Dmat[k][r] * o.B[r][j]
					}
				}
			}
		}

		// M += coef * ρ * Nᵗ * N
		ρ := o.Mat.Rho
		for m := 0; m < o.Shp.Nverts; m++ {
			for n := 0; n < o.Shp.Nverts; n++ {
				v := coef * ρ * o.Shp.S[m] * o.Shp.S[n]
				l.M[2*m][2*n] += v
				l.M[2*m+1][2*n+1] += v
			}
		}

		// strains and stresses @ ip
		if l.Sig != nil {
			for k := 0; k < solidNcomp; k++ {
				o.eps[k] = 0
				for j := 0; j < o.Nu; j++ {
					o.eps[k] += o.B[k][j] * ue[j]
				}
				l.Eps[idx][k] = o.eps[k]
			}
			for k := 0; k < solidNcomp; k++ {
				l.Sig[idx][k] = 0
				for r := 0; r < solidNcomp; r++ {
					l.Sig[idx][k] += o.Dmat[k][r] * o.eps[r]
				}
			}
		}
	}

	// internal force: F = K * ue (linear kinematics)
	for i := 0; i < o.Nu; i++ {
		for j := 0; j < o.Nu; j++ {
			l.F[i] += l.K[i][j] * ue[j]
		}
	}
	return
}
