// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// tri3 and tri6 shapes: 2D triangles with 3 and 6 nodes
//
//      s                          s
//      |                          |
//      2                          2
//      | \                        | \
//      |   \                      5   4
//      |     \                    |     \
//      0-------1 --r              0---3---1 --r

func init() {

	ips := []Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	}

	register(&Shape{
		Type:      "tri3",
		BasicType: "tri3",
		Gndim:     2,
		Nverts:    3,
		NatCoords: [][]float64{
			{0, 1, 0},
			{0, 0, 1},
		},
		Ips: ips,
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			S[0] = 1.0 - r[0] - r[1]
			S[1] = r[0]
			S[2] = r[1]
			if !derivs {
				return
			}
			dSdR[0][0], dSdR[0][1] = -1.0, -1.0
			dSdR[1][0], dSdR[1][1] = 1.0, 0.0
			dSdR[2][0], dSdR[2][1] = 0.0, 1.0
		},
	})

	register(&Shape{
		Type:      "tri6",
		BasicType: "tri3",
		Gndim:     2,
		Nverts:    6,
		NatCoords: [][]float64{
			{0, 1, 0, 0.5, 0.5, 0.0},
			{0, 0, 1, 0.0, 0.5, 0.5},
		},
		Ips: ips,
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			w := 1.0 - r[0] - r[1] // first area coordinate
			S[0] = w * (2.0*w - 1.0)
			S[1] = r[0] * (2.0*r[0] - 1.0)
			S[2] = r[1] * (2.0*r[1] - 1.0)
			S[3] = 4.0 * w * r[0]
			S[4] = 4.0 * r[0] * r[1]
			S[5] = 4.0 * r[1] * w
			if !derivs {
				return
			}
			dSdR[0][0], dSdR[0][1] = 1.0-4.0*w, 1.0-4.0*w
			dSdR[1][0], dSdR[1][1] = 4.0*r[0]-1.0, 0.0
			dSdR[2][0], dSdR[2][1] = 0.0, 4.0*r[1]-1.0
			dSdR[3][0], dSdR[3][1] = 4.0*(w-r[0]), -4.0*r[0]
			dSdR[4][0], dSdR[4][1] = 4.0*r[1], 4.0*r[0]
			dSdR[5][0], dSdR[5][1] = -4.0*r[1], 4.0*(w-r[1])
		},
	})
}
