// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele implements a displacement-based solid element that integrates
// a hypoelastic constitutive response over a fixed set of Gauss points,
// producing the internal-force residual vector and the consistent tangent
// (stiffness) matrix of one element.
//
// The element is single-threaded and side-effect local: it mutates only its
// own Gauss-point state and the caller-supplied output buffers. Distinct
// elements bound to disjoint state/output regions may be evaluated in
// parallel by an external scheduler without synchronisation.
package ele

import (
	"math"

	"github.com/MAteRialMOdelingToolbox/DisplacementFiniteElement/msolid"
	"github.com/MAteRialMOdelingToolbox/DisplacementFiniteElement/shp"
	"github.com/MAteRialMOdelingToolbox/DisplacementFiniteElement/vgt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// SectionType defines how integration weight is converted into integrated
// volume and which material path the computation kernel dispatches to
type SectionType int

const (
	UniaxialStress SectionType = iota // 1D bar scaled by cross-section area
	PlaneStress                       // 2D scaled by thickness; zero out-of-plane stress
	PlaneStrain                       // 2D scaled by thickness; zero out-of-plane strain
	Solid                             // full 3D
)

// String returns the name of this section type
func (o SectionType) String() string {
	switch o {
	case UniaxialStress:
		return "uniaxial-stress"
	case PlaneStress:
		return "plane-stress"
	case PlaneStrain:
		return "plane-strain"
	case Solid:
		return "solid"
	}
	return "unknown"
}

// number of doubles reserved per Gauss point in the persistent state buffer
// for stress (6) and strain (6)
const gpStateVars = 12

// Displacement represents a solid element with displacements as primary
// variables. Stress/strain states live in a caller-owned persistent buffer
// (see SetStateVars); the element only rebinds views onto it.
type Displacement struct {

	// basic data
	Label int         // element label
	Shp   *shp.Shape  // shape structure (private copy)
	Ndim  int         // space dimension
	Nu    int         // total number of unknowns
	Sec   SectionType // section type

	// external views. Props[0] holds the thickness (plane problems) or
	// the cross-section area (uniaxial)
	Props []float64 // element-level section properties

	// coordinates
	X [][]float64 // matrix of nodal coordinates [ndim][nverts]

	// integration points
	Gps     []*GaussPt   // Gauss points of element (fixed length)
	IpsFace []shp.Ipoint // integration points corresponding to faces

	// persistent state buffer views
	svs    []float64 // bound region of the state buffer
	svsBkp []float64 // backup copy for restore

	// scratchpad. computed @ each ip
	fi   []float64   // [nu] internal forces
	K    [][]float64 // [nu][nu] consistent tangent (stiffness) matrix
	dE   []float64   // [nsig] strain increment in reduced form
	dE6  []float64   // [6] strain increment in full Voigt form
	S    []float64   // [nsig] stress in reduced form
	D66  [][]float64 // [6][6] material tangent operator
	Dred [][]float64 // [nsig][nsig] reduced tangent operator
}

// New returns a new displacement element
//  label   -- element label
//  geoType -- shape name; e.g. "lin2", "qua4" or "hex8"
//  nip     -- number of integration points; use 0 for the default rule
//  sec     -- section type
func New(label int, geoType string, nip int, sec SectionType) (o *Displacement, err error) {

	// basic data
	o = new(Displacement)
	o.Label = label
	o.Sec = sec
	o.Shp = shp.Get(geoType, 1) // private copy: elements may run in parallel
	if o.Shp == nil {
		return nil, chk.Err("element %d: shape %q is not available", label, geoType)
	}
	o.Ndim = o.Shp.Gndim
	o.Nu = o.Ndim * o.Shp.Nverts

	// check shape dimension against section type
	ok := false
	switch sec {
	case UniaxialStress:
		ok = o.Ndim == 1
	case PlaneStress, PlaneStrain:
		ok = o.Ndim == 2
	case Solid:
		ok = o.Ndim == 3
	}
	if !ok {
		return nil, chk.Err("element %d: section type %q cannot be used with %dD shape %q", label, sec, o.Ndim, geoType)
	}

	// integration points
	ips, err := shp.GetIps(geoType, nip)
	if err != nil {
		return nil, chk.Err("element %d: cannot allocate integration points:\n%v", label, err)
	}
	o.Gps = make([]*GaussPt, len(ips))
	for i, ip := range ips {
		o.Gps[i] = &GaussPt{Xi: ip.Coords(), W: ip.W}
	}
	if o.Ndim > 1 {
		o.IpsFace, err = shp.GetIps(o.Shp.FaceType, 0)
		if err != nil {
			return nil, chk.Err("element %d: cannot allocate face integration points:\n%v", label, err)
		}
	}

	// scratchpad
	nsig := NsigReduced(o.Ndim)
	o.fi = make([]float64, o.Nu)
	o.K = la.MatAlloc(o.Nu, o.Nu)
	o.dE = make([]float64, nsig)
	o.dE6 = make([]float64, 6)
	o.S = make([]float64, nsig)
	o.D66 = la.MatAlloc(6, 6)
	o.Dred = la.MatAlloc(nsig, nsig)
	return
}

// SetProps binds a read-only view over the element-level section properties;
// it does not allocate. Props[0] must hold the thickness for plane problems
// or the cross-section area for uniaxial ones.
func (o *Displacement) SetProps(props []float64) {
	o.Props = props
}

// SetMaterial instantiates exactly one material model per Gauss point via
// the model factory. Instances are owned by the Gauss points and are never
// replaced.
func (o *Displacement) SetMaterial(sec *msolid.MatSection) (err error) {
	for i, gp := range o.Gps {
		if gp.Mdl != nil {
			return chk.Err("element %d: material is already set @ ip %d", o.Label, i)
		}
		gp.Mdl, err = msolid.New(sec.Model, sec.Prms, o.Label, i)
		if err != nil {
			return chk.Err("element %d: cannot create material @ ip %d:\n%v", o.Label, i, err)
		}
	}
	return
}

// NstateVars returns the required length of the persistent state buffer:
// (material state variables + 12) x number of Gauss points
func (o *Displacement) NstateVars() int {
	o.mustHaveMaterial("NstateVars")
	return (o.Gps[0].Mdl.NstateVars() + gpStateVars) * len(o.Gps)
}

// SetStateVars partitions the caller-owned buffer svs evenly across Gauss
// points, binds the material state variables of each point onto its block
// and rebinds the stress/strain views onto the trailing 12 doubles of each
// block. The layout per Gauss point is [material vars..., stress(6),
// strain(6)]. Violating the partition preconditions is a programming error
// and panics.
func (o *Displacement) SetStateVars(svs []float64) {
	o.mustHaveMaterial("SetStateVars")
	ngp := len(o.Gps)
	if len(svs)%ngp != 0 {
		chk.Panic("element %d: state buffer length %d is not a multiple of the number of Gauss points %d", o.Label, len(svs), ngp)
	}
	nvsMat := len(svs)/ngp - gpStateVars
	if nvsMat < o.Gps[0].Mdl.NstateVars() {
		chk.Panic("element %d: state buffer with %d doubles per Gauss point cannot hold %d material variables plus %d stress/strain components",
			o.Label, len(svs)/ngp, o.Gps[0].Mdl.NstateVars(), gpStateVars)
	}
	for i, gp := range o.Gps {
		blk := svs[i*(nvsMat+gpStateVars) : (i+1)*(nvsMat+gpStateVars)]
		if err := gp.Mdl.AssignStateVars(blk[:nvsMat]); err != nil {
			chk.Panic("element %d: cannot assign material state variables @ ip %d:\n%v", o.Label, i, err)
		}
		gp.Sig = blk[nvsMat : nvsMat+6]
		gp.Eps = blk[nvsMat+6 : nvsMat+12]
	}
	o.svs = svs
	o.svsBkp = make([]float64, len(svs))
}

// BackupIvs creates a copy of the bound state region
func (o *Displacement) BackupIvs() {
	o.mustHaveState("BackupIvs")
	copy(o.svsBkp, o.svs)
}

// RestoreIvs restores the bound state region from the backup copy
func (o *Displacement) RestoreIvs() {
	o.mustHaveState("RestoreIvs")
	copy(o.svs, o.svsBkp)
}

// InitGeometry stores the nodal coordinates and computes the one-time
// geometry cache of every Gauss point: Jacobian, its inverse and
// determinant, shape derivatives in reference and physical space, the
// strain-displacement operator B and the integrated volume. The
// characteristic element length is forwarded to each material model.
//  x -- matrix of nodal coordinates [ndim][nverts]
func (o *Displacement) InitGeometry(x [][]float64) (err error) {

	// check
	o.mustHaveMaterial("InitGeometry")
	if len(x) != o.Ndim || len(x[0]) != o.Shp.Nverts {
		return chk.Err("element %d: coordinates matrix must be [%d][%d]", o.Label, o.Ndim, o.Shp.Nverts)
	}
	o.X = la.MatClone(x)

	// for each Gauss point
	nsig := NsigReduced(o.Ndim)
	for idx, gp := range o.Gps {

		// shape functions and derivatives
		err = o.Shp.CalcAtR(o.X, gp.Xi, true)
		if err != nil {
			return chk.Err("element %d: geometry computation failed @ ip %d:\n%v", o.Label, idx, err)
		}
		if o.Shp.J < 0 {
			return chk.Err("element %d: Jacobian is negative = %g @ ip %d", o.Label, o.Shp.J, idx)
		}

		// geometry snapshot
		g := new(Geometry)
		g.J = la.MatClone(o.Shp.DxdR)
		g.Jinv = la.MatClone(o.Shp.DRdx)
		g.DetJ = o.Shp.J
		g.DNdXi = la.MatClone(o.Shp.DSdR)
		g.DNdX = la.MatClone(o.Shp.G)
		g.B = la.MatAlloc(nsig, o.Nu)
		IpBmatrix(g.B, o.Ndim, o.Shp.Nverts, g.DNdX)

		// integrated volume and characteristic length
		var le float64
		switch o.Sec {
		case Solid:
			g.IntVol = gp.W * g.DetJ
			le = math.Cbrt(8.0 * g.DetJ)
		case PlaneStress, PlaneStrain:
			g.IntVol = gp.W * g.DetJ * o.sectionProp("thickness")
			le = math.Sqrt(4.0 * g.DetJ)
		case UniaxialStress:
			g.IntVol = gp.W * g.DetJ * o.sectionProp("cross-section")
			le = 2.0 * g.DetJ
		}
		gp.Geo = g
		gp.Mdl.SetCharLength(le)
	}
	return
}

// Compute computes the contribution of this element due to one load
// increment: the strain increments dE = B·Δq at every Gauss point are
// dispatched to the material model path selected by the dimension and
// section type, the stress/strain states are updated in place and the
// outputs are accumulated as
//  ke += Bᵀ·D·B·intVol    pe -= Bᵀ·S·intVol
// pe and ke must be zero-initialised (or hold values to accumulate onto) by
// the caller.
//
// The returned time-step fraction propagates the material's cut-back
// advisory: if it is smaller than one, pe and ke are left untouched for all
// Gauss points, including the ones already processed in this call, and the
// caller should retry with a smaller Δt. Stress/strain/material state
// mutated before the cut-back is not rolled back; use BackupIvs/RestoreIvs
// (or the persistent buffer) to checkpoint around attempts.
func (o *Displacement) Compute(q, Δq, pe []float64, ke [][]float64, t, Δt float64) (Δtf float64, err error) {

	// check and clear scratchpad
	o.mustBeReady("Compute")
	la.VecFill(o.fi, 0)
	la.MatFill(o.K, 0)

	// for each Gauss point
	Δtf = 1.0
	for idx, gp := range o.Gps {

		// strain increment (reduced form)
		B := gp.Geo.B
		la.MatVecMul(o.dE, 1, B, Δq)

		// expand increment, dispatch to material and reduce outputs
		switch {

		// uniaxial path
		case o.Ndim == 1:
			vgt.UniaxialToVoigt(o.dE6, o.dE[0])
			Δtf, err = gp.Mdl.UpdateUniaxial(gp.Sig, o.D66, o.dE6, t, Δt)
			if err != nil {
				return 0, chk.Err("element %d: material update failed @ ip %d:\nΔε=%v\n%v", o.Label, idx, o.dE, err)
			}
			o.addStrain(gp)
			if Δtf < 1.0 {
				return
			}
			o.Dred[0][0], err = vgt.UniaxialStressTangent(o.D66)
			if err != nil {
				return 0, chk.Err("element %d: tangent reduction failed @ ip %d:\n%v", o.Label, idx, err)
			}
			o.S[0] = gp.Sig[0]

		// plane-stress path
		case o.Sec == PlaneStress:
			vgt.PlaneToVoigt(o.dE6, o.dE)
			Δtf, err = gp.Mdl.UpdatePlaneStress(gp.Sig, o.D66, o.dE6, t, Δt)
			if err != nil {
				return 0, chk.Err("element %d: material update failed @ ip %d:\nΔε=%v\n%v", o.Label, idx, o.dE, err)
			}
			o.addStrain(gp)
			if Δtf < 1.0 {
				return
			}
			err = vgt.PlaneStressTangent(o.Dred, o.D66)
			if err != nil {
				return 0, chk.Err("element %d: tangent reduction failed @ ip %d:\n%v", o.Label, idx, err)
			}
			vgt.VoigtToPlane(o.S, gp.Sig)

		// plane-strain path: full 3D call with the padded increment
		case o.Sec == PlaneStrain:
			vgt.PlaneToVoigt(o.dE6, o.dE)
			Δtf, err = gp.Mdl.Update(gp.Sig, o.D66, o.dE6, t, Δt)
			if err != nil {
				return 0, chk.Err("element %d: material update failed @ ip %d:\nΔε=%v\n%v", o.Label, idx, o.dE, err)
			}
			o.addStrain(gp)
			if Δtf < 1.0 {
				return
			}
			vgt.PlaneStrainTangent(o.Dred, o.D66)
			vgt.VoigtToPlane(o.S, gp.Sig)

		// solid path: no reduction
		default:
			copy(o.dE6, o.dE)
			Δtf, err = gp.Mdl.Update(gp.Sig, o.D66, o.dE6, t, Δt)
			if err != nil {
				return 0, chk.Err("element %d: material update failed @ ip %d:\nΔε=%v\n%v", o.Label, idx, o.dE, err)
			}
			o.addStrain(gp)
			if Δtf < 1.0 {
				return
			}
			la.MatCopy(o.Dred, 1, o.D66)
			copy(o.S, gp.Sig)
		}

		// add contribution to consistent tangent matrix and internal forces
		la.MatTrMulAdd3(o.K, gp.Geo.IntVol, B, o.Dred, B) // K += intVol * tr(B) * D * B
		la.MatTrVecMulAdd(o.fi, gp.Geo.IntVol, B, o.S)    // fi += intVol * tr(B) * S
	}

	// assemble outputs only after all Gauss points have been accepted
	for i := 0; i < o.Nu; i++ {
		pe[i] -= o.fi[i]
		for j := 0; j < o.Nu; j++ {
			ke[i][j] += o.K[i][j]
		}
	}
	return
}

// ResultPointer returns a view onto persistent state for named results:
// "stress" and "strain" (length 6), "sdv" (the material state-variable
// block) or any result the material model itself provides
func (o *Displacement) ResultPointer(name string, ipIdx int) (vals []float64, err error) {
	if ipIdx < 0 || ipIdx >= len(o.Gps) {
		return nil, chk.Err("element %d: ip index %d is out of range", o.Label, ipIdx)
	}
	gp := o.Gps[ipIdx]
	if gp.Mdl == nil || gp.Sig == nil {
		return nil, chk.Err("element %d: material and state variables must be set before accessing results", o.Label)
	}
	switch name {
	case "stress":
		return gp.Sig, nil
	case "strain":
		return gp.Eps, nil
	case "sdv":
		return gp.Mdl.StateVars(), nil
	}
	return gp.Mdl.ResultPointer(name)
}

// Ipoints returns the real coordinates of integration points [nip][ndim]
func (o *Displacement) Ipoints() (coords [][]float64) {
	coords = la.MatAlloc(len(o.Gps), o.Ndim)
	for idx, gp := range o.Gps {
		coords[idx] = o.Shp.IpRealCoords(o.X, gp.Xi)
	}
	return
}

// Nnodes returns the number of nodes
func (o *Displacement) Nnodes() int { return o.Shp.Nverts }

// NdofsPerElement returns the total number of degrees of freedom
func (o *Displacement) NdofsPerElement() int { return o.Nu }

// ShapeName returns the name of the underlying shape; e.g. "qua4"
func (o *Displacement) ShapeName() string { return o.Shp.Type }

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// addStrain accumulates the expanded strain increment into the total strain
func (o *Displacement) addStrain(gp *GaussPt) {
	for i := 0; i < 6; i++ {
		gp.Eps[i] += o.dE6[i]
	}
}

// sectionProp returns Props[0], panicking with a descriptive message if the
// section properties were not set
func (o *Displacement) sectionProp(name string) float64 {
	if len(o.Props) < 1 {
		chk.Panic("element %d: section properties with %s @ position 0 must be set", o.Label, name)
	}
	return o.Props[0]
}

// mustHaveMaterial panics if the material models were not created yet
func (o *Displacement) mustHaveMaterial(op string) {
	if o.Gps[0].Mdl == nil {
		chk.Panic("element %d: %s requires the material to be set", o.Label, op)
	}
}

// mustHaveState panics if the state buffer views were not bound yet
func (o *Displacement) mustHaveState(op string) {
	if o.svs == nil {
		chk.Panic("element %d: %s requires the state variables to be assigned", o.Label, op)
	}
}

// mustBeReady panics unless material, state views and geometry cache are all available
func (o *Displacement) mustBeReady(op string) {
	o.mustHaveMaterial(op)
	o.mustHaveState(op)
	if o.Gps[0].Geo == nil {
		chk.Panic("element %d: %s requires the geometry to be initialised", o.Label, op)
	}
}
