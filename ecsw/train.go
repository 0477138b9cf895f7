// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecsw

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gorom/ele"
	"github.com/cpmech/gorom/sys"
)

// ReduceSnapshots computes the basis coordinates of training snapshots by
// least squares: q_s = (Vᵗ・V)⁻¹・Vᵗ・u_s. U holds one snapshot per row, in
// the constrained space; the result holds one coordinate vector per row.
func ReduceSnapshots(V [][]float64, U [][]float64) (Q [][]float64, err error) {
	if len(V) == 0 || len(U) == 0 {
		return nil, chk.Err("basis or snapshot set is empty")
	}
	nc, nred := len(V), len(V[0])
	Vm := mat.NewDense(nc, nred, nil)
	for i := 0; i < nc; i++ {
		Vm.SetRow(i, V[i])
	}
	Q = make([][]float64, len(U))
	for s, u := range U {
		if len(u) != nc {
			return nil, chk.Err("snapshot %d has %d entries. %d are required", s, len(u), nc)
		}
		var q mat.VecDense
		if err := q.SolveVec(Vm, mat.NewVecDense(nc, u)); err != nil {
			return nil, chk.Err("snapshot %d cannot be projected: %v", s, err)
		}
		Q[s] = make([]float64, nred)
		for i := 0; i < nred; i++ {
			Q[s][i] = q.AtVec(i)
		}
	}
	return
}

// ProjectSnapshots maps snapshots onto the span of the basis: V・q_s with q_s
// from ReduceSnapshots
func ProjectSnapshots(V [][]float64, U [][]float64) (Up [][]float64, err error) {
	Q, err := ReduceSnapshots(V, U)
	if err != nil {
		return
	}
	nc, nred := len(V), len(V[0])
	Up = make([][]float64, len(Q))
	for s, q := range Q {
		Up[s] = make([]float64, nc)
		for k := 0; k < nc; k++ {
			for i := 0; i < nred; i++ {
				Up[s][k] += V[k][i] * q[i]
			}
		}
	}
	return
}

// BuildTraining assembles the training system for the sparse weighting. For
// each snapshot s (reduced coordinates Q[s] at time ts[s]) and element e, the
// reduced internal-force contribution g_se = (BV_e)ᵗ・f_e is a column block
// of G:
//
//	G[s・nred+i][e] = g_se[i]      b = G・1
//
// so that ξ = 1 reproduces the full assembly exactly.
func BuildTraining(red *sys.Reduced, Q [][]float64, ts []float64) (G [][]float64, b []float64, err error) {
	if len(Q) == 0 {
		return nil, nil, chk.Err("no training snapshots given")
	}
	if len(ts) != len(Q) {
		return nil, nil, chk.Err("snapshot and time counts differ. %d != %d", len(Q), len(ts))
	}
	nred := red.Nred
	nele := len(red.Full.Asm.Msh.Elems)
	m := len(Q) * nred
	G = make([][]float64, m)
	for i := range G {
		G[i] = make([]float64, nele)
	}
	b = make([]float64, m)
	for s, q := range Q {
		ufull, err := red.Unconstrain(q, ts[s])
		if err != nil {
			return nil, nil, err
		}
		row := s * nred
		err = red.Full.Asm.VisitElements(ufull, ts[s], nil, func(ie int, umap []int, l *ele.Local) error {
			for loc, I := range umap {
				ai := red.BV[I]
				for i := 0; i < nred; i++ {
					G[row+i][ie] += ai[i] * l.F[loc]
				}
			}
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}
	for i := 0; i < m; i++ {
		for e := 0; e < nele; e++ {
			b[i] += G[i][e]
		}
	}
	return
}

// Train runs the complete hyper-reduction training: build G and b from the
// snapshots, solve the sparse weighting, and return the selection with its
// weights aligned as consumed by the hyper-reduced system variant.
func Train(red *sys.Reduced, Q [][]float64, ts []float64, tau float64) (etilde []int, wgts []float64, err error) {
	G, b, err := BuildTraining(red, Q, ts)
	if err != nil {
		return
	}
	xi, etilde, err := SNNLS(G, b, tau)
	if err != nil {
		return nil, nil, err
	}
	wgts = make([]float64, len(etilde))
	for k, j := range etilde {
		wgts[k] = xi[j]
	}
	return etilde, wgts, nil
}
