// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_loads01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads01. pressure on qua4 faces")

	th := 0.5
	o, _ := newTestElement(tst, 0, "qua4", 0, PlaneStrain, elastSec(1000, 0.25), []float64{th}, squareCoords())

	// pressure on the right face (vertices 1 and 2) pushes in -x
	p := 2.0
	nu := o.NdofsPerElement()
	pe := make([]float64, nu)
	err := o.AddDistLoad(pe, 1, "pressure", []float64{p})
	if err != nil {
		tst.Errorf("AddDistLoad failed:\n%v", err)
		return
	}
	F := p * th // total force over the unit-length edge
	chk.Vector(tst, "pe", 1e-15, pe, []float64{0, 0, -F / 2.0, 0, -F / 2.0, 0, 0, 0})

	// bottom face (vertices 0 and 1) pushes in +y
	pe = make([]float64, nu)
	err = o.AddDistLoad(pe, 0, "pressure", []float64{p})
	if err != nil {
		tst.Errorf("AddDistLoad failed:\n%v", err)
		return
	}
	chk.Vector(tst, "pe", 1e-15, pe, []float64{0, F / 2.0, 0, F / 2.0, 0, 0, 0, 0})

	// the total load on any face balances p * edge * thickness
	for idxface := 0; idxface < 4; idxface++ {
		pe = make([]float64, nu)
		err = o.AddDistLoad(pe, idxface, "pressure", []float64{p})
		if err != nil {
			tst.Errorf("AddDistLoad failed:\n%v", err)
			return
		}
		sum := 0.0
		for i := 0; i < nu; i++ {
			sum += pe[i] * pe[i]
		}
		chk.Scalar(tst, io.Sf("|pe| @ face %d", idxface), 1e-14, sum, F*F/2.0)
	}

	// unsupported load kinds fail and leave the output untouched
	pe = []float64{1, 2, 3, 4, 5, 6, 7, 8}
	err = o.AddDistLoad(pe, 0, "thermal-flux", []float64{p})
	if err == nil {
		tst.Errorf("unsupported load kind must fail")
		return
	}
	chk.Vector(tst, "pe untouched", 1e-17, pe, []float64{1, 2, 3, 4, 5, 6, 7, 8})

	// bad face index and empty payload fail
	if err = o.AddDistLoad(pe, 9, "pressure", []float64{p}); err == nil {
		tst.Errorf("out-of-range face index must fail")
		return
	}
	if err = o.AddDistLoad(pe, 0, "pressure", nil); err == nil {
		tst.Errorf("empty load payload must fail")
		return
	}
}

func Test_loads02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads02. body force")

	th := 2.0
	ρg := -9.81
	o, _ := newTestElement(tst, 0, "qua4", 0, PlaneStrain, elastSec(1000, 0.25), []float64{th}, squareCoords())

	nu := o.NdofsPerElement()
	pe := make([]float64, nu)
	err := o.AddBodyForce(pe, []float64{0, ρg})
	if err != nil {
		tst.Errorf("AddBodyForce failed:\n%v", err)
		return
	}

	// symmetric element: each node carries a quarter of the total weight
	W := ρg * 1.0 * th // volume of the unit square times thickness
	for m := 0; m < 4; m++ {
		chk.Scalar(tst, io.Sf("pe[%d] (x)", 2*m), 1e-15, pe[2*m], 0)
		chk.Scalar(tst, io.Sf("pe[%d] (y)", 2*m+1), 1e-14, pe[2*m+1], W/4.0)
	}

	// accumulation: a second call doubles the forces
	err = o.AddBodyForce(pe, []float64{0, ρg})
	if err != nil {
		tst.Errorf("AddBodyForce failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "pe[1] doubled", 1e-14, pe[1], W/2.0)

	// wrong number of components fails
	if err = o.AddBodyForce(pe, []float64{0, ρg, 0}); err == nil {
		tst.Errorf("wrong body force dimension must fail")
		return
	}
}

func Test_loads03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loads03. geostatic stress seeding")

	// square column from y=0 to y=2
	x := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 2, 2},
	}
	o, _ := newTestElement(tst, 0, "qua4", 0, PlaneStrain, elastSec(1000, 0.25), []float64{1}, x)

	// σyy varies from -10 at the bottom to 0 at the top
	σy1, y1 := -10.0, 0.0
	σy2, y2 := 0.0, 2.0
	kx, kz := 0.5, 0.4
	err := o.SetIniConds("geostatic", []float64{σy1, y1, σy2, y2, kx, kz})
	if err != nil {
		tst.Errorf("SetIniConds failed:\n%v", err)
		return
	}
	coords := o.Ipoints()
	for idx := range o.Gps {
		σ, err := o.ResultPointer("stress", idx)
		if err != nil {
			tst.Errorf("ResultPointer failed:\n%v", err)
			return
		}
		y := coords[idx][1]
		σyy := σy1 + (σy2-σy1)*(y-y1)/(y2-y1)
		chk.Scalar(tst, io.Sf("σyy @ ip %d", idx), 1e-14, σ[1], σyy)
		chk.Scalar(tst, io.Sf("σxx @ ip %d", idx), 1e-14, σ[0], kx*σyy)
		chk.Scalar(tst, io.Sf("σzz @ ip %d", idx), 1e-14, σ[2], kz*σyy)
		chk.Vector(tst, io.Sf("shear @ ip %d", idx), 1e-17, σ[3:], []float64{0, 0, 0})
	}

	// incomplete payload fails
	if err = o.SetIniConds("geostatic", []float64{σy1, y1}); err == nil {
		tst.Errorf("incomplete geostatic payload must fail")
		return
	}

	// unknown kinds are ignored and do not disturb the state
	σ0, _ := o.ResultPointer("stress", 0)
	before := la.VecClone(σ0)
	if err = o.SetIniConds("swelling", []float64{1, 2, 3}); err != nil {
		tst.Errorf("unknown kinds must be ignored:\n%v", err)
		return
	}
	chk.Vector(tst, "state untouched", 1e-17, σ0, before)

	// geostatic seeding has no effect on 1D elements
	bar, _ := newTestElement(tst, 1, "lin2", 0, UniaxialStress, elastSec(1000, 0.25), []float64{1}, [][]float64{{0, 1}})
	err = bar.SetIniConds("geostatic", []float64{σy1, y1, σy2, y2, kx, kz})
	if err != nil {
		tst.Errorf("SetIniConds failed:\n%v", err)
		return
	}
	σbar, _ := bar.ResultPointer("stress", 0)
	chk.Vector(tst, "bar stress untouched", 1e-17, σbar, []float64{0, 0, 0, 0, 0, 0})
}
