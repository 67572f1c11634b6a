// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msolid implements hypoelastic material models for solid elements.
//
// Models work on stress/strain vectors in full 3D Voigt notation with
// components ordered as {xx, yy, zz, xy, xz, yz} and engineering shear
// strains. Internal (state) variables are views into a caller-owned buffer,
// bound via AssignStateVars; models never allocate persistent state.
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface for hypoelastic material models.
//
// The Update* methods update the stress vector σ (in place, full Voigt form)
// due to a strain increment Δε and fill the consistent tangent operator
// D [6][6]. They return a suggested time-step fraction: a value smaller than
// one is a cooperative request to retry the whole increment with a smaller
// Δt; it is not an error.
type Model interface {
	Init(prms fun.Prms, eid, ipid int) (err error) // initialises model from parameters
	GetPrms() fun.Prms                             // gets (an example) of parameters
	NstateVars() int                               // returns the number of required state variables
	AssignStateVars(svs []float64) (err error)     // binds the internal variables to a caller-owned buffer
	StateVars() []float64                          // returns the bound internal variables
	SetCharLength(le float64)                      // sets the characteristic element length

	// Update updates σ and D for the full 3D (and plane-strain) path
	Update(σ []float64, D [][]float64, Δε []float64, t, Δt float64) (Δtf float64, err error)

	// UpdatePlaneStress updates σ and D enforcing zero out-of-plane stress
	UpdatePlaneStress(σ []float64, D [][]float64, Δε []float64, t, Δt float64) (Δtf float64, err error)

	// UpdateUniaxial updates σ and D enforcing zero lateral stresses
	UpdateUniaxial(σ []float64, D [][]float64, Δε []float64, t, Δt float64) (Δtf float64, err error)

	// ResultPointer returns a view onto a named permanent result
	ResultPointer(name string) (vals []float64, err error)
}

// MatSection holds the data defining the constitutive response of an
// element section: the model name and the material parameters
type MatSection struct {
	Model string   // model name; e.g. "lin-elast"
	Prms  fun.Prms // material parameters
}

// allocators holds all available model allocators; modelname => allocator
var allocators = make(map[string]func() Model)

// Register registers a new model allocator. It panics if the name is taken.
func Register(modelname string, allocator func() Model) {
	if _, ok := allocators[modelname]; ok {
		chk.Panic("model named %q is already registered", modelname)
	}
	allocators[modelname] = allocator
}

// New allocates and initialises a new instance of a material model
//  modelname -- model name; e.g. "lin-elast"
//  prms      -- material parameters
//  eid, ipid -- element label and integration point index owning this instance
func New(modelname string, prms fun.Prms, eid, ipid int) (mdl Model, err error) {
	allocator, ok := allocators[modelname]
	if !ok {
		return nil, chk.Err("cannot find model named %q", modelname)
	}
	mdl = allocator()
	err = mdl.Init(prms, eid, ipid)
	if err != nil {
		return nil, chk.Err("model %q initialisation failed:\n%v", modelname, err)
	}
	return
}
