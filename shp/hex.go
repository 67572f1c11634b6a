// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Hex8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of hex8
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//           4________________7
//         ,'|              ,'|
//       ,'  |            ,'  |
//     ,'    |          ,'    |
//   5'______________6,'      |
//   |       |      |         |
//   |       |      |         |
//   |       0_________|______3
//   |     ,'       |      ,'
//   |   ,'         |    ,'
//   | ,'           |  ,'
//   1'_____________|2'
func Hex8(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	s, t := r[1], r[2]
	S[0] = 0.125 * (1.0 - r[0]) * (1.0 - s) * (1.0 - t)
	S[1] = 0.125 * (1.0 + r[0]) * (1.0 - s) * (1.0 - t)
	S[2] = 0.125 * (1.0 + r[0]) * (1.0 + s) * (1.0 - t)
	S[3] = 0.125 * (1.0 - r[0]) * (1.0 + s) * (1.0 - t)
	S[4] = 0.125 * (1.0 - r[0]) * (1.0 - s) * (1.0 + t)
	S[5] = 0.125 * (1.0 + r[0]) * (1.0 - s) * (1.0 + t)
	S[6] = 0.125 * (1.0 + r[0]) * (1.0 + s) * (1.0 + t)
	S[7] = 0.125 * (1.0 - r[0]) * (1.0 + s) * (1.0 + t)

	if !derivs {
		return
	}

	dSdR[0][0] = -0.125 * (1.0 - s) * (1.0 - t)
	dSdR[0][1] = -0.125 * (1.0 - r[0]) * (1.0 - t)
	dSdR[0][2] = -0.125 * (1.0 - r[0]) * (1.0 - s)
	dSdR[1][0] = 0.125 * (1.0 - s) * (1.0 - t)
	dSdR[1][1] = -0.125 * (1.0 + r[0]) * (1.0 - t)
	dSdR[1][2] = -0.125 * (1.0 + r[0]) * (1.0 - s)
	dSdR[2][0] = 0.125 * (1.0 + s) * (1.0 - t)
	dSdR[2][1] = 0.125 * (1.0 + r[0]) * (1.0 - t)
	dSdR[2][2] = -0.125 * (1.0 + r[0]) * (1.0 + s)
	dSdR[3][0] = -0.125 * (1.0 + s) * (1.0 - t)
	dSdR[3][1] = 0.125 * (1.0 - r[0]) * (1.0 - t)
	dSdR[3][2] = -0.125 * (1.0 - r[0]) * (1.0 + s)
	dSdR[4][0] = -0.125 * (1.0 - s) * (1.0 + t)
	dSdR[4][1] = -0.125 * (1.0 - r[0]) * (1.0 + t)
	dSdR[4][2] = 0.125 * (1.0 - r[0]) * (1.0 - s)
	dSdR[5][0] = 0.125 * (1.0 - s) * (1.0 + t)
	dSdR[5][1] = -0.125 * (1.0 + r[0]) * (1.0 + t)
	dSdR[5][2] = 0.125 * (1.0 + r[0]) * (1.0 - s)
	dSdR[6][0] = 0.125 * (1.0 + s) * (1.0 + t)
	dSdR[6][1] = 0.125 * (1.0 + r[0]) * (1.0 + t)
	dSdR[6][2] = 0.125 * (1.0 + r[0]) * (1.0 + s)
	dSdR[7][0] = -0.125 * (1.0 + s) * (1.0 + t)
	dSdR[7][1] = 0.125 * (1.0 - r[0]) * (1.0 + t)
	dSdR[7][2] = 0.125 * (1.0 - r[0]) * (1.0 + s)
}

// register shape
func init() {
	var o Shape
	o.Type = "hex8"
	o.Func = Hex8
	o.FaceFunc = Qua4
	o.FaceType = "qua4"
	o.Gndim = 3
	o.Nverts = 8
	o.FaceNvertsMax = 4
	o.FaceLocalV = [][]int{
		{0, 4, 7, 3},
		{1, 2, 6, 5},
		{0, 1, 5, 4},
		{2, 3, 7, 6},
		{0, 3, 2, 1},
		{4, 5, 6, 7},
	}
	o.NatCoords = [][]float64{
		{-1, 1, 1, -1, -1, 1, 1, -1},
		{-1, -1, 1, 1, -1, -1, 1, 1},
		{-1, -1, -1, -1, 1, 1, 1, 1},
	}
	o.init_scratchpad()
	factory["hex8"] = &o
}
