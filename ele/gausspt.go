// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/MAteRialMOdelingToolbox/DisplacementFiniteElement/msolid"
)

// GaussPt is the unit of numerical integration. It owns one material model
// instance, views over the persistent stress/strain state and a geometry
// snapshot computed once at initialisation.
type GaussPt struct {

	// position (immutable)
	Xi []float64 // natural coordinates
	W  float64   // integration weight

	// material model instance (owned; created exactly once)
	Mdl msolid.Model

	// state: views into the caller-owned persistent buffer
	Sig []float64 // [6] stress in full Voigt form
	Eps []float64 // [6] strain in full Voigt form

	// geometry cache
	Geo *Geometry
}

// Geometry holds the one-time geometry snapshot of a Gauss point. It is not
// recomputed after initialisation (small-strain, fixed reference configuration).
type Geometry struct {
	J      [][]float64 // [ndim][ndim] Jacobian dx/dξ
	Jinv   [][]float64 // [ndim][ndim] inverse of Jacobian
	DetJ   float64     // determinant of Jacobian
	DNdXi  [][]float64 // [nverts][ndim] shape derivatives in reference space
	DNdX   [][]float64 // [nverts][ndim] shape derivatives in physical space
	B      [][]float64 // [nsig][nu] strain-displacement operator
	IntVol float64     // integrated volume: weight · detJ · section factor
}

// NsigReduced returns the number of stress/strain components in the reduced
// (dimension-specific) Voigt form
func NsigReduced(ndim int) int {
	switch ndim {
	case 1:
		return 1
	case 2:
		return 3
	}
	return 6
}

// IpBmatrix computes the strain-displacement matrix B [nsig][nu] from the
// physical shape derivatives G [nverts][ndim]. B must be zeroed on entry
// for the locations this function does not touch; it is therefore meant to
// fill freshly allocated matrices.
func IpBmatrix(B [][]float64, ndim, nverts int, G [][]float64) {
	switch ndim {
	case 1:
		for m := 0; m < nverts; m++ {
			B[0][m] = G[m][0]
		}
	case 2:
		for m := 0; m < nverts; m++ {
			c := 2 * m
			B[0][c] = G[m][0]
			B[1][c+1] = G[m][1]
			B[2][c] = G[m][1]
			B[2][c+1] = G[m][0]
		}
	case 3:
		for m := 0; m < nverts; m++ {
			c := 3 * m
			B[0][c] = G[m][0]
			B[1][c+1] = G[m][1]
			B[2][c+2] = G[m][2]
			B[3][c] = G[m][1]
			B[3][c+1] = G[m][0]
			B[4][c] = G[m][2]
			B[4][c+2] = G[m][0]
			B[5][c+1] = G[m][2]
			B[5][c+2] = G[m][1]
		}
	}
}
