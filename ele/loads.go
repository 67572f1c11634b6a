// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
)

// SetIniConds seeds the Gauss-point states with an initial condition before
// the first load increment. Supported kinds:
//  "geostatic" -- values = {σy1, y1, σy2, y2, kx, kz}: the vertical stress
//                 σyy is interpolated linearly between (y1,σy1) and (y2,σy2)
//                 at the physical height of each Gauss point, and the lateral
//                 components follow as σxx = kx·σyy and σzz = kz·σyy.
//                 It has no effect on 1D elements.
// Unknown kinds are ignored so that drivers may broadcast conditions meant
// for other element families.
func (o *Displacement) SetIniConds(kind string, values []float64) (err error) {
	o.mustBeReady("SetIniConds")
	switch kind {
	case "geostatic":
		if o.Ndim == 1 {
			return
		}
		if len(values) < 6 {
			return chk.Err("element %d: geostatic initial condition needs 6 values {σy1, y1, σy2, y2, kx, kz}; got %d", o.Label, len(values))
		}
		σy1, y1 := values[0], values[1]
		σy2, y2 := values[2], values[3]
		for _, gp := range o.Gps {
			x := o.Shp.IpRealCoords(o.X, gp.Xi)
			gp.Sig[1] = linInterp(x[1], y1, y2, σy1, σy2)
			gp.Sig[0] = values[4] * gp.Sig[1]
			gp.Sig[2] = values[5] * gp.Sig[1]
		}
	}
	return
}

// AddDistLoad accumulates the consistent nodal forces of a distributed load
// applied to one face of the element into pe. Supported kinds:
//  "pressure" -- load[0] is the pressure magnitude, positive when pushing
//                against the outward face normal
// For plane elements the contribution is scaled by the thickness. pe is left
// untouched when the kind is not supported.
func (o *Displacement) AddDistLoad(pe []float64, idxface int, kind string, load []float64) (err error) {
	o.mustBeReady("AddDistLoad")
	if kind != "pressure" {
		return chk.Err("element %d: distributed load kind %q is not available", o.Label, kind)
	}
	if idxface < 0 || idxface >= len(o.Shp.FaceLocalV) {
		return chk.Err("element %d: face index %d is out of range", o.Label, idxface)
	}
	if len(load) < 1 {
		return chk.Err("element %d: pressure load needs 1 value; got %d", o.Label, len(load))
	}
	p := load[0]
	thickness := 1.0
	if o.Ndim == 2 {
		thickness = o.sectionProp("thickness")
	}
	lverts := o.Shp.FaceLocalV[idxface]
	for _, ipf := range o.IpsFace {
		err = o.Shp.CalcAtFaceIp(o.X, ipf, idxface)
		if err != nil {
			return chk.Err("element %d: face computation failed @ face %d:\n%v", o.Label, idxface, err)
		}
		coef := -p * ipf.W * thickness
		for m, v := range lverts {
			for i := 0; i < o.Ndim; i++ {
				pe[o.Ndim*v+i] += coef * o.Shp.Sf[m] * o.Shp.Fnvec[i]
			}
		}
	}
	return
}

// AddBodyForce accumulates the consistent nodal forces of a constant body
// force density f [ndim] (e.g. gravity times mass density) into pe
func (o *Displacement) AddBodyForce(pe, f []float64) (err error) {
	o.mustBeReady("AddBodyForce")
	if len(f) != o.Ndim {
		return chk.Err("element %d: body force vector must have %d components; got %d", o.Label, o.Ndim, len(f))
	}
	for idx, gp := range o.Gps {
		err = o.Shp.CalcAtR(o.X, gp.Xi, false)
		if err != nil {
			return chk.Err("element %d: shape computation failed @ ip %d:\n%v", o.Label, idx, err)
		}
		for m := 0; m < o.Shp.Nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				pe[o.Ndim*m+i] += o.Shp.S[m] * f[i] * gp.Geo.IntVol
			}
		}
	}
	return
}

// linInterp interpolates linearly between (x1,y1) and (x2,y2)
func linInterp(x, x1, x2, y1, y2 float64) float64 {
	if x2 == x1 {
		return y1
	}
	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}
