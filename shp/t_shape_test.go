// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. shape functions and derivatives")

	r := []float64{0.15, 0.22, 0.1}
	verb := chk.Verbose
	for name, shape := range factory {

		io.Pfyel("--------------------------------- %-6s---------------------------------\n", name)

		// check S @ nodes
		tol := 1e-15
		CheckShape(tst, shape, tol, verb)

		// check Σ S == 1 @ integration points
		CheckPartitionOfUnity(tst, shape, 1e-14, verb)

		// check dSdR
		tol = 1e-9
		CheckDSdR(tst, shape, r, tol, verb)

		io.PfGreen("OK\n")
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. Jacobian and dSdx for stretched qua4")

	xmat := [][]float64{
		{10, 13, 13, 10},
		{8, 8, 9, 9},
	}
	dx, dy := 3.0, 1.0
	dr, ds := 2.0, 2.0
	r := []float64{0, 0, 0}
	shape := Get("qua4")
	err := shape.CalcAtR(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtR failed:\n%v", err)
		return
	}
	io.Pforan("J = %v\n", shape.J)
	chk.Scalar(tst, "J", 1e-17, shape.J, (dx/dr)*(dy/ds))

	tol := 1e-9
	x := []float64{12.0, 8.5}
	CheckDSdx(tst, shape, xmat, x, tol, chk.Verbose)
}

func Test_invmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invmap01. inverse mapping round trip")

	// distorted qua4
	xmat := [][]float64{
		{0, 4, 5, 1},
		{0, 1, 4, 3},
	}
	shape := Get("qua4")
	R := []float64{0.3, -0.6, 0}
	y := shape.IpRealCoords(xmat, R)
	r := make([]float64, 3)
	err := shape.InvMap(r, y, xmat)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}
	chk.Vector(tst, "r", 1e-9, r[:2], R[:2])

	// point on the boundary must be contained
	Rb := []float64{1.0, 0.2, 0}
	yb := shape.IpRealCoords(xmat, Rb)
	err = shape.InvMap(r, yb, xmat)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}
	d := shape.CellBryDist(r)
	io.Pforan("d = %v\n", d)
	if d < -1e-8 {
		tst.Errorf("boundary point classified as outside: d = %g", d)
	}
}

func Test_bdist01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bdist01. signed distance to cell boundary")

	tri := Get("tri3")
	chk.Scalar(tst, "tri centre", 1e-15, tri.CellBryDist([]float64{1.0 / 3.0, 1.0 / 3.0, 0}), 1.0/3.0)
	chk.Scalar(tst, "tri edge", 1e-15, tri.CellBryDist([]float64{0.5, 0.5, 0}), 0)
	chk.Scalar(tst, "tri outside", 1e-15, tri.CellBryDist([]float64{0.75, 0.5, 0}), -0.25)

	hex := Get("hex8")
	chk.Scalar(tst, "hex centre", 1e-15, hex.CellBryDist([]float64{0, 0, 0}), 1)
	chk.Scalar(tst, "hex face", 1e-15, hex.CellBryDist([]float64{1, 0, 0}), 0)
	chk.Scalar(tst, "hex outside", 1e-15, hex.CellBryDist([]float64{0, -1.5, 0}), -0.5)
}

func Test_extrap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("extrap01. extrapolation of linear fields is exact")

	// qua4 over its own natural space: x == r
	shape := Get("qua4")
	xmat := [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}
	nip := len(shape.Ips)
	E := make([][]float64, shape.Nverts)
	for i := range E {
		E[i] = make([]float64, nip)
	}
	err := shape.Extrapolator(E, shape.Ips)
	if err != nil {
		tst.Errorf("Extrapolator failed:\n%v", err)
		return
	}

	// linear field f = 1 + 2x + 3y evaluated at ips, extrapolated to nodes
	fip := make([]float64, nip)
	for k, ip := range shape.Ips {
		y := shape.IpRealCoords(xmat, ip)
		fip[k] = 1.0 + 2.0*y[0] + 3.0*y[1]
	}
	fno := make([]float64, shape.Nverts)
	for m := 0; m < shape.Nverts; m++ {
		for k := 0; k < nip; k++ {
			fno[m] += E[m][k] * fip[k]
		}
	}
	fcorrect := make([]float64, shape.Nverts)
	for m := 0; m < shape.Nverts; m++ {
		fcorrect[m] = 1.0 + 2.0*xmat[0][m] + 3.0*xmat[1][m]
	}
	chk.Vector(tst, "fno", 1e-13, fno, fcorrect)
}
