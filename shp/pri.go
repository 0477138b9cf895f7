// Copyright 2017 The Gorom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// pri6: 3D prism (wedge) with 6 nodes. Triangular coordinates (r,s) as in tri3,
// thickness coordinate t in [-1,1]. Nodes 0,1,2 at t=-1; nodes 3,4,5 at t=+1.

func init() {

	g := 1.0 / math.Sqrt(3.0)
	tri := [][]float64{
		{1.0 / 6.0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0},
	}
	var ips []Ipoint
	for _, tv := range []float64{-g, g} {
		for _, p := range tri {
			ips = append(ips, Ipoint{p[0], p[1], tv, 1.0 / 6.0})
		}
	}

	register(&Shape{
		Type:      "pri6",
		BasicType: "pri6",
		Gndim:     3,
		Nverts:    6,
		NatCoords: [][]float64{
			{0, 1, 0, 0, 1, 0},
			{0, 0, 1, 0, 0, 1},
			{-1, -1, -1, 1, 1, 1},
		},
		Ips: ips,
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			R, s, t := r[0], r[1], r[2]
			u := 1.0 - R - s
			S[0] = u * (1.0 - t) / 2.0
			S[1] = R * (1.0 - t) / 2.0
			S[2] = s * (1.0 - t) / 2.0
			S[3] = u * (1.0 + t) / 2.0
			S[4] = R * (1.0 + t) / 2.0
			S[5] = s * (1.0 + t) / 2.0
			if !derivs {
				return
			}
			dSdR[0][0] = -(1.0 - t) / 2.0
			dSdR[0][1] = -(1.0 - t) / 2.0
			dSdR[0][2] = -u / 2.0
			dSdR[1][0] = (1.0 - t) / 2.0
			dSdR[1][1] = 0.0
			dSdR[1][2] = -R / 2.0
			dSdR[2][0] = 0.0
			dSdR[2][1] = (1.0 - t) / 2.0
			dSdR[2][2] = -s / 2.0
			dSdR[3][0] = -(1.0 + t) / 2.0
			dSdR[3][1] = -(1.0 + t) / 2.0
			dSdR[3][2] = u / 2.0
			dSdR[4][0] = (1.0 + t) / 2.0
			dSdR[4][1] = 0.0
			dSdR[4][2] = R / 2.0
			dSdR[5][0] = 0.0
			dSdR[5][1] = (1.0 + t) / 2.0
			dSdR[5][2] = s / 2.0
		},
	})
}
