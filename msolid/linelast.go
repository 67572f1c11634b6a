// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// LinElast implements a linear elastic model
type LinElast struct {

	// parameters
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density

	// derived
	lam float64     // Lamé's first parameter
	mu  float64     // shear modulus
	D   [][]float64 // [6][6] constant tangent operator

	// auxiliary
	le   float64   // characteristic element length
	svs  []float64 // bound internal variables (none required)
	eid  int       // element label (for messages)
	ipid int       // integration point index (for messages)
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(prms fun.Prms, eid, ipid int) (err error) {

	// parse parameters
	o.eid, o.ipid = eid, ipid
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("lin-elast: parameter named %q is incorrect", p.N)
		}
	}
	if o.E <= 0 {
		return chk.Err("lin-elast: Young's modulus must be positive. E=%g is incorrect", o.E)
	}

	// derived and constant tangent operator
	o.lam = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	o.mu = o.E / (2.0 * (1.0 + o.Nu))
	o.D = la.MatAlloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.D[i][j] = o.lam
		}
		o.D[i][i] = o.lam + 2.0*o.mu
		o.D[3+i][3+i] = o.mu
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 2.0e+08},
		&fun.Prm{N: "nu", V: 0.25},
		&fun.Prm{N: "rho", V: 7.85},
	}
}

// NstateVars returns the number of required state variables
func (o LinElast) NstateVars() int { return 0 }

// AssignStateVars binds the internal variables to a caller-owned buffer
func (o *LinElast) AssignStateVars(svs []float64) (err error) {
	o.svs = svs
	return
}

// StateVars returns the bound internal variables
func (o LinElast) StateVars() []float64 { return o.svs }

// SetCharLength sets the characteristic element length
func (o *LinElast) SetCharLength(le float64) { o.le = le }

// Update computes σ += D·Δε and fills the constant tangent operator
func (o *LinElast) Update(σ []float64, D [][]float64, Δε []float64, t, Δt float64) (Δtf float64, err error) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			σ[i] += o.D[i][j] * Δε[j]
		}
	}
	la.MatCopy(D, 1, o.D)
	return 1.0, nil
}

// UpdatePlaneStress updates σ and D enforcing zero out-of-plane stress
func (o *LinElast) UpdatePlaneStress(σ []float64, D [][]float64, Δε []float64, t, Δt float64) (Δtf float64, err error) {
	return PlaneStressUpdate(o, σ, D, Δε, t, Δt)
}

// UpdateUniaxial updates σ and D enforcing zero lateral stresses
func (o *LinElast) UpdateUniaxial(σ []float64, D [][]float64, Δε []float64, t, Δt float64) (Δtf float64, err error) {
	return UniaxialStressUpdate(o, σ, D, Δε, t, Δt)
}

// ResultPointer returns a view onto a named permanent result
func (o *LinElast) ResultPointer(name string) (vals []float64, err error) {
	return nil, chk.Err("lin-elast: result named %q is not available (eid=%d, ip=%d)", name, o.eid, o.ipid)
}

// Calc_K_from_Enu returns the bulk modulus given Young's modulus and Poisson's coefficient
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu returns the shear modulus given Young's modulus and Poisson's coefficient
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}
