// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// hex8 shape: 3D hexahedron with 8 nodes
//
//           4________________7
//         ,'|              ,'|
//       ,'  |            ,'  |
//     ,'    |          ,'    |
//   5'______________6'       |
//   |       |       |        |
//   |       |       |        |
//   |       0_______|________3
//   |     ,'        |      ,'
//   |   ,'          |    ,'
//   | ,'            |  ,'
//   1'______________2'

func init() {

	rc := []float64{-1, 1, 1, -1, -1, 1, 1, -1}
	sc := []float64{-1, -1, 1, 1, -1, -1, 1, 1}
	tc := []float64{-1, -1, -1, -1, 1, 1, 1, 1}

	g := 1.0 / math.Sqrt(3.0)
	var ips []Ipoint
	for m := 0; m < 8; m++ {
		ips = append(ips, Ipoint{g * rc[m], g * sc[m], g * tc[m], 1})
	}

	register(&Shape{
		Type:      "hex8",
		BasicType: "hex8",
		Gndim:     3,
		Nverts:    8,
		NatCoords: [][]float64{rc, sc, tc},
		Ips:       ips,
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			for m := 0; m < 8; m++ {
				S[m] = 0.125 * (1.0 + r[0]*rc[m]) * (1.0 + r[1]*sc[m]) * (1.0 + r[2]*tc[m])
			}
			if !derivs {
				return
			}
			for m := 0; m < 8; m++ {
				dSdR[m][0] = 0.125 * rc[m] * (1.0 + r[1]*sc[m]) * (1.0 + r[2]*tc[m])
				dSdR[m][1] = 0.125 * sc[m] * (1.0 + r[0]*rc[m]) * (1.0 + r[2]*tc[m])
				dSdR[m][2] = 0.125 * tc[m] * (1.0 + r[0]*rc[m]) * (1.0 + r[1]*sc[m])
			}
		},
	})
}
