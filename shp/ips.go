// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/chk"

// Ipoint holds the natural coordinates and weight of an integration point
type Ipoint struct {
	R, S, T float64 // natural coordinates
	W       float64 // weight
}

// Coords returns the natural coordinates of this integration point
func (o Ipoint) Coords() []float64 {
	return []float64{o.R, o.S, o.T}
}

// Gauss quadrature rules
var (
	ipsLin1 = []Ipoint{
		{0, 0, 0, 2},
	}
	ipsLin2 = []Ipoint{
		{-1.0 / SQ3, 0, 0, 1},
		{1.0 / SQ3, 0, 0, 1},
	}
	ipsLin3 = []Ipoint{
		{-SQ3of5, 0, 0, 5.0 / 9.0},
		{0, 0, 0, 8.0 / 9.0},
		{SQ3of5, 0, 0, 5.0 / 9.0},
	}
	ipsQua1 = []Ipoint{
		{0, 0, 0, 4},
	}
	ipsQua4 = []Ipoint{
		{-1.0 / SQ3, -1.0 / SQ3, 0, 1},
		{1.0 / SQ3, -1.0 / SQ3, 0, 1},
		{-1.0 / SQ3, 1.0 / SQ3, 0, 1},
		{1.0 / SQ3, 1.0 / SQ3, 0, 1},
	}
	ipsHex1 = []Ipoint{
		{0, 0, 0, 8},
	}
	ipsHex8 = []Ipoint{
		{-1.0 / SQ3, -1.0 / SQ3, -1.0 / SQ3, 1},
		{1.0 / SQ3, -1.0 / SQ3, -1.0 / SQ3, 1},
		{-1.0 / SQ3, 1.0 / SQ3, -1.0 / SQ3, 1},
		{1.0 / SQ3, 1.0 / SQ3, -1.0 / SQ3, 1},
		{-1.0 / SQ3, -1.0 / SQ3, 1.0 / SQ3, 1},
		{1.0 / SQ3, -1.0 / SQ3, 1.0 / SQ3, 1},
		{-1.0 / SQ3, 1.0 / SQ3, 1.0 / SQ3, 1},
		{1.0 / SQ3, 1.0 / SQ3, 1.0 / SQ3, 1},
	}
)

// constants
const (
	SQ3    = 1.7320508075688772935274463415058723669428052538103806 // sqrt(3)
	SQ3of5 = 0.7745966692414833770358530799564799221665843410583151 // sqrt(3/5)
)

// GetIps returns the integration points of a shape
//  nip -- number of integration points; use 0 for the default rule
func GetIps(geoType string, nip int) (ips []Ipoint, err error) {
	switch geoType {
	case "lin2":
		switch nip {
		case 0, 2:
			return ipsLin2, nil
		case 1:
			return ipsLin1, nil
		case 3:
			return ipsLin3, nil
		}
	case "qua4":
		switch nip {
		case 0, 4:
			return ipsQua4, nil
		case 1:
			return ipsQua1, nil
		}
	case "hex8":
		switch nip {
		case 0, 8:
			return ipsHex8, nil
		case 1:
			return ipsHex1, nil
		}
	default:
		return nil, chk.Err("shape %q is not available", geoType)
	}
	return nil, chk.Err("cannot get integration points for %q with nip=%d", geoType, nip)
}
