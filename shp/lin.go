// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// lin2 and lin3 shapes: 1D line elements with 2 and 3 nodes
//
//   lin2:  0-----------1      lin3:  0-----2-----1
//         -1           1            -1     0     1

func init() {

	g := math.Sqrt(3.0 / 5.0)

	register(&Shape{
		Type:      "lin2",
		BasicType: "lin2",
		Gndim:     1,
		Nverts:    2,
		NatCoords: [][]float64{{-1, 1}},
		Ips: []Ipoint{
			{-1.0 / math.Sqrt(3.0), 0, 0, 1},
			{+1.0 / math.Sqrt(3.0), 0, 0, 1},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			S[0] = 0.5 * (1.0 - r[0])
			S[1] = 0.5 * (1.0 + r[0])
			if !derivs {
				return
			}
			dSdR[0][0] = -0.5
			dSdR[1][0] = +0.5
		},
	})

	register(&Shape{
		Type:      "lin3",
		BasicType: "lin2",
		Gndim:     1,
		Nverts:    3,
		NatCoords: [][]float64{{-1, 1, 0}},
		Ips: []Ipoint{
			{-g, 0, 0, 5.0 / 9.0},
			{0, 0, 0, 8.0 / 9.0},
			{+g, 0, 0, 5.0 / 9.0},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			S[0] = 0.5 * r[0] * (r[0] - 1.0)
			S[1] = 0.5 * r[0] * (r[0] + 1.0)
			S[2] = 1.0 - r[0]*r[0]
			if !derivs {
				return
			}
			dSdR[0][0] = r[0] - 0.5
			dSdR[1][0] = r[0] + 0.5
			dSdR[2][0] = -2.0 * r[0]
		},
	})
}
