// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements element kernels returning local mass, stiffness and
// force contributions for the assembly of global operators
package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gorom/shp"
)

// Material holds material parameters
type Material struct {
	Name    string  // material name
	E       float64 // Young's modulus
	Nu      float64 // Poisson's coefficient
	Rho     float64 // density
	A       float64 // cross-sectional area (rods)
	Thick   float64 // out-of-plane thickness (2D solids)
	Pstress bool    // plane stress instead of plane strain
}

// Local holds the element-local matrices and vectors filled by a Kernel.
// The assembler owns one instance per element and reuses it across calls.
type Local struct {
	M   [][]float64 // [nu][nu] mass matrix
	K   [][]float64 // [nu][nu] tangential stiffness matrix
	F   []float64   // [nu] internal force vector
	Sig [][]float64 // [nip][ncomp] stresses @ integration points (optional)
	Eps [][]float64 // [nip][ncomp] strains @ integration points (optional)
}

// NewLocal allocates a Local structure for nu unknowns, nip integration points
// and ncomp stress components. nip may be zero for kernels without stress output.
func NewLocal(nu, nip, ncomp int) *Local {
	l := &Local{
		M: la.MatAlloc(nu, nu),
		K: la.MatAlloc(nu, nu),
		F: make([]float64, nu),
	}
	if nip > 0 {
		l.Sig = la.MatAlloc(nip, ncomp)
		l.Eps = la.MatAlloc(nip, ncomp)
	}
	return l
}

// Kernel computes element-local contributions for one element
type Kernel interface {

	// Ndof returns the number of local unknowns
	Ndof() int

	// Evaluate fills l with the local mass and tangential stiffness matrices
	// and the internal force vector, for local displacements ue and
	// velocities due at time t. Kernels with stress output also fill
	// l.Sig and l.Eps.
	Evaluate(l *Local, ue, due []float64, t float64) error
}

// StressProducer is implemented by kernels that compute stresses at
// integration points, enabling nodal extrapolation of stress/strain fields
type StressProducer interface {
	Shape() *shp.Shape // element geometry
	Ips() []shp.Ipoint // integration points used for stress output
	Ncomp() int        // number of stress components
}

// Allocator defines a function that allocates a kernel given the element
// coordinates matrix x[ndim][nverts] and a material
type Allocator func(x [][]float64, mat *Material) (Kernel, error)

// allocators holds all kernel allocators
var allocators = make(map[string]Allocator)

// Register sets a new kernel allocator
func Register(kernelName string, fcn Allocator) {
	if _, ok := allocators[kernelName]; ok {
		chk.Panic("cannot register allocator %q twice", kernelName)
	}
	allocators[kernelName] = fcn
}

// New allocates a kernel from the factory
func New(kernelName string, x [][]float64, mat *Material) (Kernel, error) {
	fcn, ok := allocators[kernelName]
	if !ok {
		return nil, chk.Err("cannot find kernel allocator %q", kernelName)
	}
	return fcn(x, mat)
}
