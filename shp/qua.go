// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//     3-----------2
//     |     s     |
//     |     |     |
//     |     +--r  |
//     |           |
//     |           |
//     0-----------1
func Qua4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	s := r[1]
	S[0] = 0.25 * (1.0 - r[0]) * (1.0 - s)
	S[1] = 0.25 * (1.0 + r[0]) * (1.0 - s)
	S[2] = 0.25 * (1.0 + r[0]) * (1.0 + s)
	S[3] = 0.25 * (1.0 - r[0]) * (1.0 + s)

	if !derivs {
		return
	}

	dSdR[0][0] = -0.25 * (1.0 - s)
	dSdR[0][1] = -0.25 * (1.0 - r[0])
	dSdR[1][0] = 0.25 * (1.0 - s)
	dSdR[1][1] = -0.25 * (1.0 + r[0])
	dSdR[2][0] = 0.25 * (1.0 + s)
	dSdR[2][1] = 0.25 * (1.0 + r[0])
	dSdR[3][0] = -0.25 * (1.0 + s)
	dSdR[3][1] = 0.25 * (1.0 - r[0])
}

// register shape
func init() {
	var o Shape
	o.Type = "qua4"
	o.Func = Qua4
	o.FaceFunc = Lin2
	o.FaceType = "lin2"
	o.Gndim = 2
	o.Nverts = 4
	o.FaceNvertsMax = 2
	o.FaceLocalV = [][]int{
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 0},
	}
	o.NatCoords = [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}
	o.init_scratchpad()
	factory["qua4"] = &o
}
