// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants for the sub-space stress drivers
const (
	ZEROSIG  = 1.0e-10 // tolerance to consider out-of-plane stresses zero
	SUBMAXIT = 10      // maximum number of sub-space Newton iterations
	SUBCUT   = 0.25    // suggested time-step fraction upon driver failure
)

// PlaneStressUpdate drives the out-of-plane normal stress to zero by
// adjusting the zz strain increment, calling the model's full 3D update at
// each trial. Stress and internal variables are restored before every trial
// so the accepted update corresponds to a single increment application.
// On lack of convergence a time-step fraction smaller than one is returned,
// requesting the caller to retry with a smaller increment.
func PlaneStressUpdate(mdl Model, σ []float64, D [][]float64, Δε []float64, t, Δt float64) (Δtf float64, err error) {

	// backups and trial increment
	σ0 := la.VecClone(σ)
	svs0 := la.VecClone(mdl.StateVars())
	dε := la.VecClone(Δε)

	// tolerance relative to the stress scale
	tol := ZEROSIG * (1.0 + la.VecLargest(σ0, 1))

	// sub-space Newton iterations
	for it := 0; it < SUBMAXIT; it++ {

		// restore state and apply trial increment
		copy(σ, σ0)
		copy(mdl.StateVars(), svs0)
		Δtf, err = mdl.Update(σ, D, dε, t, Δt)
		if err != nil || Δtf < 1.0 {
			return
		}

		// converged?
		if math.Abs(σ[2]) <= tol {
			return
		}

		// correct out-of-plane strain increment
		if math.Abs(D[2][2]) < ZEROSIG {
			return 0, chk.Err("plane-stress driver: zz tangent component is zero")
		}
		dε[2] -= σ[2] / D[2][2]
	}

	// no convergence: request a smaller increment
	return SUBCUT, nil
}

// UniaxialStressUpdate drives both lateral normal stresses to zero by
// adjusting the yy and zz strain increments, calling the model's full 3D
// update at each trial. See PlaneStressUpdate regarding restoring and the
// returned time-step fraction.
func UniaxialStressUpdate(mdl Model, σ []float64, D [][]float64, Δε []float64, t, Δt float64) (Δtf float64, err error) {

	// backups and trial increment
	σ0 := la.VecClone(σ)
	svs0 := la.VecClone(mdl.StateVars())
	dε := la.VecClone(Δε)

	// tolerance relative to the stress scale
	tol := ZEROSIG * (1.0 + la.VecLargest(σ0, 1))

	// sub-space Newton iterations
	for it := 0; it < SUBMAXIT; it++ {

		// restore state and apply trial increment
		copy(σ, σ0)
		copy(mdl.StateVars(), svs0)
		Δtf, err = mdl.Update(σ, D, dε, t, Δt)
		if err != nil || Δtf < 1.0 {
			return
		}

		// converged?
		if math.Abs(σ[1]) <= tol && math.Abs(σ[2]) <= tol {
			return
		}

		// correct lateral strain increments: solve the {yy,zz} sub-system
		det := D[1][1]*D[2][2] - D[1][2]*D[2][1]
		if math.Abs(det) < ZEROSIG {
			return 0, chk.Err("uniaxial driver: lateral tangent sub-matrix is singular")
		}
		dε[1] += (-σ[1]*D[2][2] + σ[2]*D[1][2]) / det
		dε[2] += (-σ[2]*D[1][1] + σ[1]*D[2][1]) / det
	}

	// no convergence: request a smaller increment
	return SUBCUT, nil
}
