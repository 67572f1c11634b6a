// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_shp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp01. shape functions and derivatives")

	r := []float64{0, 0, 0}
	verb := false
	for name, shape := range factory {

		io.Pfyel("--------------------------------- %-6s---------------------------------\n", name)

		// check S
		tol := 1e-17
		CheckShape(tst, shape, tol, verb)

		// check dSdR
		tol = 1e-14
		CheckDSdR(tst, shape, r, tol, verb)

		io.PfGreen("OK\n")
	}
}

func Test_shp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp02. qua4. Jacobian of stretched rectangle")

	xmat := [][]float64{
		{10, 13, 13, 10},
		{8, 8, 9, 9},
	}
	dx, dy := 3.0, 1.0
	dr, ds := 2.0, 2.0
	r := []float64{0, 0, 0}
	shape := factory["qua4"]
	err := shape.CalcAtR(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtR failed:\n%v", err)
		return
	}
	io.Pforan("J = %v\n", shape.J)
	chk.Scalar(tst, "J", 1e-17, shape.J, (dx/dr)*(dy/ds))

	// partition of unity and zero-sum of gradients
	sumS, sumG := 0.0, 0.0
	for m := 0; m < shape.Nverts; m++ {
		sumS += shape.S[m]
		for i := 0; i < shape.Gndim; i++ {
			sumG += shape.G[m][i]
		}
	}
	chk.Scalar(tst, "Σ S", 1e-15, sumS, 1.0)
	chk.Scalar(tst, "Σ G", 1e-15, sumG, 0.0)
}

func Test_shp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp03. hex8. Jacobian of unit cube")

	xmat := [][]float64{
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 0, 1, 1, 0, 0, 1, 1},
		{0, 0, 0, 0, 1, 1, 1, 1},
	}
	r := []float64{0, 0, 0}
	shape := factory["hex8"]
	err := shape.CalcAtR(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtR failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "J", 1e-15, shape.J, 1.0/8.0)

	// volume by quadrature
	ips, err := GetIps("hex8", 0)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	vol := 0.0
	for _, ip := range ips {
		err = shape.CalcAtR(xmat, ip.Coords(), true)
		if err != nil {
			tst.Errorf("CalcAtR failed:\n%v", err)
			return
		}
		vol += ip.W * shape.J
	}
	chk.Scalar(tst, "vol", 1e-15, vol, 1.0)
}

func Test_shp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp04. qua4. face normal vectors")

	// unit square
	xmat := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	}
	shape := factory["qua4"]
	ipsf, err := GetIps(shape.FaceType, 0)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}

	// outward normals, scaled by the face Jacobian (half edge length)
	nvecs := [][]float64{
		{0, -0.5},
		{0.5, 0},
		{0, 0.5},
		{-0.5, 0},
	}
	for idxface, nvec := range nvecs {
		for _, ipf := range ipsf {
			err = shape.CalcAtFaceIp(xmat, ipf, idxface)
			if err != nil {
				tst.Errorf("CalcAtFaceIp failed:\n%v", err)
				return
			}
			io.Pforan("face %d: Fnvec = %v\n", idxface, shape.Fnvec)
			chk.Vector(tst, io.Sf("nvec%d", idxface), 1e-15, shape.Fnvec, nvec)
		}
	}
}

func Test_shp05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp05. integration point weights")

	for _, geoType := range []string{"lin2", "qua4", "hex8"} {
		ips, err := GetIps(geoType, 0)
		if err != nil {
			tst.Errorf("GetIps failed:\n%v", err)
			return
		}
		sum := 0.0
		for _, ip := range ips {
			sum += ip.W
		}
		shape := factory[geoType]
		chk.Scalar(tst, geoType, 1e-15, sum, math.Pow(2, float64(shape.Gndim)))
	}

	// unknown shape and wrong rule
	if _, err := GetIps("tet4", 0); err == nil {
		tst.Errorf("GetIps should have failed for unknown shape\n")
		return
	}
	if _, err := GetIps("qua4", 3); err == nil {
		tst.Errorf("GetIps should have failed for wrong rule\n")
		return
	}
}
