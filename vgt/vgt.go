// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vgt implements Voigt-notation utilities to convert stress/strain
// vectors and tangent operators between the full 3D representation and the
// reduced uniaxial/plane representations.
//
// The component order is {xx, yy, zz, xy, xz, yz} with engineering shear
// strains. Plane problems keep the components {xx, yy, xy}.
package vgt

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const (
	Nsig   = 6       // number of components of stress/strain vectors in full Voigt notation
	MINDET = 1.0e-14 // minimum determinant allowed when inverting tangent operators
)

// PlaneIdx holds the full-Voigt indices of the in-plane components
var PlaneIdx = []int{0, 1, 3}

// PlaneToVoigt expands the plane vector vp = {xx, yy, xy} into the full
// vector v6, zero-filling the out-of-plane components
func PlaneToVoigt(v6, vp []float64) {
	la.VecFill(v6, 0)
	for k, i := range PlaneIdx {
		v6[i] = vp[k]
	}
}

// VoigtToPlane extracts the in-plane components of v6 into vp = {xx, yy, xy}
func VoigtToPlane(vp, v6 []float64) {
	for k, i := range PlaneIdx {
		vp[k] = v6[i]
	}
}

// UniaxialToVoigt expands the axial component e into the full vector v6,
// zero-filling all other components
func UniaxialToVoigt(v6 []float64, e float64) {
	la.VecFill(v6, 0)
	v6[0] = e
}

// PlaneStrainTangent reduces the full tangent operator D [6][6] to the plane
// form Dp [3][3] for plane-strain problems; i.e. it extracts the in-plane
// rows and columns, since the out-of-plane strain components are zero
func PlaneStrainTangent(Dp, D [][]float64) {
	for a, i := range PlaneIdx {
		for b, j := range PlaneIdx {
			Dp[a][b] = D[i][j]
		}
	}
}

// PlaneStressTangent reduces the full tangent operator D [6][6] to the plane
// form Dp [3][3] for plane-stress problems by static condensation of the
// out-of-plane components; i.e. the in-plane block of the compliance inv(D)
// is extracted and inverted back
func PlaneStressTangent(Dp, D [][]float64) (err error) {
	Di := la.MatAlloc(Nsig, Nsig)
	err = la.MatInvG(Di, D, MINDET)
	if err != nil {
		return chk.Err("full tangent operator is singular:\n%v", err)
	}
	Cp := la.MatAlloc(3, 3)
	for a, i := range PlaneIdx {
		for b, j := range PlaneIdx {
			Cp[a][b] = Di[i][j]
		}
	}
	_, err = la.MatInv(Dp, Cp, MINDET)
	if err != nil {
		return chk.Err("in-plane compliance block is singular:\n%v", err)
	}
	return
}

// UniaxialStressTangent reduces the full tangent operator D [6][6] to the
// scalar axial stiffness by static condensation of all non-axial components
func UniaxialStressTangent(D [][]float64) (dee float64, err error) {
	Di := la.MatAlloc(Nsig, Nsig)
	err = la.MatInvG(Di, D, MINDET)
	if err != nil {
		return 0, chk.Err("full tangent operator is singular:\n%v", err)
	}
	if Di[0][0] < MINDET && Di[0][0] > -MINDET {
		return 0, chk.Err("axial compliance component is zero")
	}
	return 1.0 / Di[0][0], nil
}
