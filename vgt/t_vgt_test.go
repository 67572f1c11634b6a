// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgt

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// elasticD returns the isotropic elastic tangent operator for given E and ν
func elasticD(E, ν float64) (D [][]float64) {
	λ := E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
	μ := E / (2.0 * (1.0 + ν))
	D = la.MatAlloc(Nsig, Nsig)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = λ
		}
		D[i][i] = λ + 2.0*μ
		D[3+i][3+i] = μ
	}
	return
}

func Test_vgt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vgt01. vector expansion/reduction")

	v6 := make([]float64, Nsig)
	vp := []float64{1, 2, 3}
	PlaneToVoigt(v6, vp)
	chk.Vector(tst, "v6", 1e-17, v6, []float64{1, 2, 0, 3, 0, 0})

	vpb := make([]float64, 3)
	VoigtToPlane(vpb, v6)
	chk.Vector(tst, "vp", 1e-17, vpb, vp)

	UniaxialToVoigt(v6, 4)
	chk.Vector(tst, "v6", 1e-17, v6, []float64{4, 0, 0, 0, 0, 0})
}

func Test_vgt02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vgt02. plane-strain tangent extraction")

	E, ν := 1000.0, 0.3
	D := elasticD(E, ν)
	Dp := la.MatAlloc(3, 3)
	PlaneStrainTangent(Dp, D)

	q := E / ((1.0 + ν) * (1.0 - 2.0*ν))
	μ := E / (2.0 * (1.0 + ν))
	Dref := [][]float64{
		{q * (1.0 - ν), q * ν, 0},
		{q * ν, q * (1.0 - ν), 0},
		{0, 0, μ},
	}
	io.Pforan("Dp = %v\n", Dp)
	chk.Matrix(tst, "Dp", 1e-11, Dp, Dref)
}

func Test_vgt03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vgt03. plane-stress tangent condensation")

	E, ν := 1000.0, 0.3
	D := elasticD(E, ν)
	Dp := la.MatAlloc(3, 3)
	err := PlaneStressTangent(Dp, D)
	if err != nil {
		tst.Errorf("PlaneStressTangent failed:\n%v", err)
		return
	}

	q := E / (1.0 - ν*ν)
	μ := E / (2.0 * (1.0 + ν))
	Dref := [][]float64{
		{q, q * ν, 0},
		{q * ν, q, 0},
		{0, 0, μ},
	}
	io.Pforan("Dp = %v\n", Dp)
	chk.Matrix(tst, "Dp", 1e-10, Dp, Dref)
}

func Test_vgt04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vgt04. uniaxial tangent condensation")

	E, ν := 1500.0, 0.25
	D := elasticD(E, ν)
	dee, err := UniaxialStressTangent(D)
	if err != nil {
		tst.Errorf("UniaxialStressTangent failed:\n%v", err)
		return
	}
	io.Pforan("dee = %v\n", dee)
	chk.Scalar(tst, "dee", 1e-10, dee, E)

	// for a strain state with zero out-of-plane components, the plane-strain
	// extraction of the 3D operator must match the direct plane form
	Dp := la.MatAlloc(3, 3)
	PlaneStrainTangent(Dp, D)
	εp := []float64{1e-3, -2e-3, 5e-4}
	ε6 := make([]float64, Nsig)
	PlaneToVoigt(ε6, εp)
	σ6 := make([]float64, Nsig)
	la.MatVecMul(σ6, 1, D, ε6)
	σp := make([]float64, 3)
	la.MatVecMul(σp, 1, Dp, εp)
	σ6red := make([]float64, 3)
	VoigtToPlane(σ6red, σ6)
	chk.Vector(tst, "σ", 1e-12, σ6red, σp)
}
