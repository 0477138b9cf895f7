// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// tet10: 3D tetrahedron with 10 nodes (quadratic). Corner nodes 0..3 as in tet4;
// mid-edge nodes: 4:(0,1) 5:(1,2) 6:(2,0) 7:(0,3) 8:(1,3) 9:(2,3)

func init() {

	a := (5.0 + 3.0*math.Sqrt(5.0)) / 20.0
	b := (5.0 - math.Sqrt(5.0)) / 20.0

	register(&Shape{
		Type:      "tet10",
		BasicType: "tet4",
		Gndim:     3,
		Nverts:    10,
		NatCoords: [][]float64{
			{0, 1, 0, 0, 0.5, 0.5, 0, 0, 0.5, 0},
			{0, 0, 1, 0, 0, 0.5, 0.5, 0, 0, 0.5},
			{0, 0, 0, 1, 0, 0, 0, 0.5, 0.5, 0.5},
		},
		Ips: []Ipoint{
			{b, b, b, 1.0 / 24.0},
			{a, b, b, 1.0 / 24.0},
			{b, a, b, 1.0 / 24.0},
			{b, b, a, 1.0 / 24.0},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			R, s, t := r[0], r[1], r[2]
			u := 1.0 - R - s - t
			S[0] = u * (2.0*u - 1.0)
			S[1] = R * (2.0*R - 1.0)
			S[2] = s * (2.0*s - 1.0)
			S[3] = t * (2.0*t - 1.0)
			S[4] = 4.0 * u * R
			S[5] = 4.0 * R * s
			S[6] = 4.0 * s * u
			S[7] = 4.0 * u * t
			S[8] = 4.0 * R * t
			S[9] = 4.0 * s * t
			if !derivs {
				return
			}
			dSdR[0][0] = 1.0 - 4.0*u
			dSdR[0][1] = 1.0 - 4.0*u
			dSdR[0][2] = 1.0 - 4.0*u
			dSdR[1][0] = 4.0*R - 1.0
			dSdR[1][1] = 0.0
			dSdR[1][2] = 0.0
			dSdR[2][0] = 0.0
			dSdR[2][1] = 4.0*s - 1.0
			dSdR[2][2] = 0.0
			dSdR[3][0] = 0.0
			dSdR[3][1] = 0.0
			dSdR[3][2] = 4.0*t - 1.0
			dSdR[4][0] = 4.0 * (u - R)
			dSdR[4][1] = -4.0 * R
			dSdR[4][2] = -4.0 * R
			dSdR[5][0] = 4.0 * s
			dSdR[5][1] = 4.0 * R
			dSdR[5][2] = 0.0
			dSdR[6][0] = -4.0 * s
			dSdR[6][1] = 4.0 * (u - s)
			dSdR[6][2] = -4.0 * s
			dSdR[7][0] = -4.0 * t
			dSdR[7][1] = -4.0 * t
			dSdR[7][2] = 4.0 * (u - t)
			dSdR[8][0] = 4.0 * t
			dSdR[8][1] = 0.0
			dSdR[8][2] = 4.0 * R
			dSdR[9][0] = 0.0
			dSdR[9][1] = 4.0 * t
			dSdR[9][2] = 4.0 * s
		},
	})
}
