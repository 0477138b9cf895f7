// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// qua4 and qua8 shapes: 2D quadrilaterals with 4 and 8 nodes
//
//      3-----------2         3-----6-----2
//      |     s     |         |     s     |
//      |     |     |         |     |     |
//      |     +--r  |         7     +--r  5
//      |           |         |           |
//      |           |         |           |
//      0-----------1         0-----4-----1

func init() {

	// natural coordinates of corners
	rc := []float64{-1, 1, 1, -1}
	sc := []float64{-1, -1, 1, 1}

	// 2 x 2 Gauss points
	g := 1.0 / math.Sqrt(3.0)
	ips4 := []Ipoint{
		{-g, -g, 0, 1},
		{+g, -g, 0, 1},
		{+g, +g, 0, 1},
		{-g, +g, 0, 1},
	}

	// 3 x 3 Gauss points
	h := math.Sqrt(3.0 / 5.0)
	p := []float64{-h, 0, h}
	w := []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	var ips9 []Ipoint
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			ips9 = append(ips9, Ipoint{p[i], p[j], 0, w[i] * w[j]})
		}
	}

	register(&Shape{
		Type:      "qua4",
		BasicType: "qua4",
		Gndim:     2,
		Nverts:    4,
		NatCoords: [][]float64{rc, sc},
		Ips:       ips4,
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			for m := 0; m < 4; m++ {
				S[m] = 0.25 * (1.0 + r[0]*rc[m]) * (1.0 + r[1]*sc[m])
			}
			if !derivs {
				return
			}
			for m := 0; m < 4; m++ {
				dSdR[m][0] = 0.25 * rc[m] * (1.0 + r[1]*sc[m])
				dSdR[m][1] = 0.25 * sc[m] * (1.0 + r[0]*rc[m])
			}
		},
	})

	register(&Shape{
		Type:      "qua8",
		BasicType: "qua4",
		Gndim:     2,
		Nverts:    8,
		NatCoords: [][]float64{
			{-1, 1, 1, -1, 0, 1, 0, -1},
			{-1, -1, 1, 1, -1, 0, 1, 0},
		},
		Ips: ips9,
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			// corners
			for m := 0; m < 4; m++ {
				S[m] = 0.25 * (1.0 + r[0]*rc[m]) * (1.0 + r[1]*sc[m]) * (r[0]*rc[m] + r[1]*sc[m] - 1.0)
			}
			// mid-side nodes
			S[4] = 0.5 * (1.0 - r[0]*r[0]) * (1.0 - r[1])
			S[5] = 0.5 * (1.0 + r[0]) * (1.0 - r[1]*r[1])
			S[6] = 0.5 * (1.0 - r[0]*r[0]) * (1.0 + r[1])
			S[7] = 0.5 * (1.0 - r[0]) * (1.0 - r[1]*r[1])
			if !derivs {
				return
			}
			for m := 0; m < 4; m++ {
				dSdR[m][0] = 0.25 * rc[m] * (1.0 + r[1]*sc[m]) * (2.0*r[0]*rc[m] + r[1]*sc[m])
				dSdR[m][1] = 0.25 * sc[m] * (1.0 + r[0]*rc[m]) * (r[0]*rc[m] + 2.0*r[1]*sc[m])
			}
			dSdR[4][0] = -r[0] * (1.0 - r[1])
			dSdR[4][1] = -0.5 * (1.0 - r[0]*r[0])
			dSdR[5][0] = 0.5 * (1.0 - r[1]*r[1])
			dSdR[5][1] = -r[1] * (1.0 + r[0])
			dSdR[6][0] = -r[0] * (1.0 + r[1])
			dSdR[6][1] = 0.5 * (1.0 - r[0]*r[0])
			dSdR[7][0] = -0.5 * (1.0 - r[1]*r[1])
			dSdR[7][1] = -r[1] * (1.0 - r[0])
		},
	})
}
