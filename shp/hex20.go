// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// hex20: 3D hexahedron with 20 nodes (serendipity). Corner nodes 0..7 as in hex8;
// mid-edge nodes: 8:(0,1) 9:(1,2) 10:(2,3) 11:(3,0) 12:(4,5) 13:(5,6) 14:(6,7)
// 15:(7,4) 16:(0,4) 17:(1,5) 18:(2,6) 19:(3,7)

func init() {

	g := math.Sqrt(3.0 / 5.0)
	w0, w1 := 5.0/9.0, 8.0/9.0
	gs := []float64{-g, 0, g}
	ws := []float64{w0, w1, w0}
	var ips []Ipoint
	for k := 0; k < 3; k++ {
		for j := 0; j < 3; j++ {
			for i := 0; i < 3; i++ {
				ips = append(ips, Ipoint{gs[i], gs[j], gs[k], ws[i] * ws[j] * ws[k]})
			}
		}
	}

	rc := []float64{-1, 1, 1, -1, -1, 1, 1, -1, 0, 1, 0, -1, 0, 1, 0, -1, -1, 1, 1, -1}
	sc := []float64{-1, -1, 1, 1, -1, -1, 1, 1, -1, 0, 1, 0, -1, 0, 1, 0, -1, -1, 1, 1}
	tc := []float64{-1, -1, -1, -1, 1, 1, 1, 1, -1, -1, -1, -1, 1, 1, 1, 1, 0, 0, 0, 0}

	register(&Shape{
		Type:      "hex20",
		BasicType: "hex8",
		Gndim:     3,
		Nverts:    20,
		NatCoords: [][]float64{rc, sc, tc},
		Ips:       ips,
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			R, s, t := r[0], r[1], r[2]
			for m := 0; m < 20; m++ {
				a, b, c := rc[m], sc[m], tc[m]
				switch {
				case m < 8: // corner
					S[m] = (1.0 + a*R) * (1.0 + b*s) * (1.0 + c*t) * (a*R + b*s + c*t - 2.0) / 8.0
					if derivs {
						dSdR[m][0] = a * (1.0 + b*s) * (1.0 + c*t) * (2.0*a*R + b*s + c*t - 1.0) / 8.0
						dSdR[m][1] = b * (1.0 + a*R) * (1.0 + c*t) * (a*R + 2.0*b*s + c*t - 1.0) / 8.0
						dSdR[m][2] = c * (1.0 + a*R) * (1.0 + b*s) * (a*R + b*s + 2.0*c*t - 1.0) / 8.0
					}
				case a == 0: // mid-edge along r
					S[m] = (1.0 - R*R) * (1.0 + b*s) * (1.0 + c*t) / 4.0
					if derivs {
						dSdR[m][0] = -R * (1.0 + b*s) * (1.0 + c*t) / 2.0
						dSdR[m][1] = b * (1.0 - R*R) * (1.0 + c*t) / 4.0
						dSdR[m][2] = c * (1.0 - R*R) * (1.0 + b*s) / 4.0
					}
				case b == 0: // mid-edge along s
					S[m] = (1.0 + a*R) * (1.0 - s*s) * (1.0 + c*t) / 4.0
					if derivs {
						dSdR[m][0] = a * (1.0 - s*s) * (1.0 + c*t) / 4.0
						dSdR[m][1] = -s * (1.0 + a*R) * (1.0 + c*t) / 2.0
						dSdR[m][2] = c * (1.0 + a*R) * (1.0 - s*s) / 4.0
					}
				default: // mid-edge along t
					S[m] = (1.0 + a*R) * (1.0 + b*s) * (1.0 - t*t) / 4.0
					if derivs {
						dSdR[m][0] = a * (1.0 + b*s) * (1.0 - t*t) / 4.0
						dSdR[m][1] = b * (1.0 + a*R) * (1.0 - t*t) / 4.0
						dSdR[m][2] = -t * (1.0 + a*R) * (1.0 + b*s) / 2.0
					}
				}
			}
		},
	})
}
