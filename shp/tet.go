// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// tet4 shape: 3D tetrahedron with 4 nodes
//
//                t
//                |
//                3
//               /|`.
//              / |  `.
//             /  |    `.
//            /   0------`2---s
//           /   /    .'
//          /  /  . '
//         / /. '
//        1'
//       /
//      r

func init() {

	a := (5.0 + 3.0*2.2360679774997896) / 20.0 // (5+3*sqrt(5))/20
	b := (5.0 - 2.2360679774997896) / 20.0     // (5-sqrt(5))/20

	register(&Shape{
		Type:      "tet4",
		BasicType: "tet4",
		Gndim:     3,
		Nverts:    4,
		NatCoords: [][]float64{
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		Ips: []Ipoint{
			{a, b, b, 1.0 / 24.0},
			{b, a, b, 1.0 / 24.0},
			{b, b, a, 1.0 / 24.0},
			{b, b, b, 1.0 / 24.0},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			S[0] = 1.0 - r[0] - r[1] - r[2]
			S[1] = r[0]
			S[2] = r[1]
			S[3] = r[2]
			if !derivs {
				return
			}
			dSdR[0][0], dSdR[0][1], dSdR[0][2] = -1.0, -1.0, -1.0
			dSdR[1][0], dSdR[1][1], dSdR[1][2] = 1.0, 0.0, 0.0
			dSdR[2][0], dSdR[2][1], dSdR[2][2] = 0.0, 1.0, 0.0
			dSdR[3][0], dSdR[3][1], dSdR[3][2] = 0.0, 0.0, 1.0
		},
	})
}
