// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/fermi2018/inkstone/cla"
	"github.com/fermi2018/inkstone/eig"
	"github.com/fermi2018/inkstone/layer"
	"github.com/fermi2018/inkstone/material"
	"github.com/fermi2018/inkstone/rsp"
)

func vacuumLayer(t *testing.T, thickness float64) *layer.Layer {
	reg := material.NewRegistry()
	vac, err := reg.Get(material.VacuumName)
	if err != nil {
		t.Fatalf("vacuum: %v", err)
	}
	l := layer.New("L", thickness, vac)
	ctx := eig.Context{Kx: []float64{0}, Ky: []float64{0}, Omega: complex(1, 0)}
	solver := &eig.Homogeneous{Epsilon: 1, Mu: 1}
	modes, err := solver.Solve(ctx)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	l.Modes = modes
	l.Al = []complex128{1, 0}
	l.Bl = []complex128{0, 0}
	return l
}

func TestAtDepthNoBackwardWave(t *testing.T) {
	chk.PrintTitle("field components: no backward wave at normal incidence")
	l := vacuumLayer(t, 1.0)
	ctx := eig.Context{Kx: []float64{0}, Ky: []float64{0}, Omega: complex(1, 0)}
	c, err := AtDepth(l, ctx, 0.5)
	if err != nil {
		t.Fatalf("AtDepth: %v", err)
	}
	for _, v := range append(append([]complex128{}, c.ExB...), c.EyB...) {
		if v != 0 {
			t.Fatalf("expected zero backward field, got %v", v)
		}
	}
}

func TestSynthesizeNormalIncidenceIsUniform(t *testing.T) {
	chk.PrintTitle("real-space synthesis: zeroth order is spatially uniform")
	f := []complex128{2 + 1i}
	kx := []float64{0}
	ky := []float64{0}
	v1 := Synthesize(f, kx, ky, 0, 0, false)
	v2 := Synthesize(f, kx, ky, 3.7, -1.2, false)
	if v1 != v2 {
		t.Fatalf("zeroth-order field should not depend on (x,y): %v vs %v", v1, v2)
	}
}

func TestGetSMatrixDetVacuumIdentity(t *testing.T) {
	chk.PrintTitle("channel-subset determinant on a vacuum identity S-matrix")
	g := 2
	id := cla.Identity(g)
	zero := cla.NewMatrix(g, g, nil)
	sm := &rsp.SMatrix{S11: zero, S12: id, S21: id, S22: zero}
	sign, logAbsDet, err := GetSMatrixDet(sm, ChannelSelection{}, []int{0, 1}, []int{0, 1})
	if err != nil {
		t.Fatalf("GetSMatrixDet: %v", err)
	}
	// det of the antidiagonal block permutation matrix [[0,I],[I,0]] has
	// magnitude 1, so ln|det| should be ~0.
	if math.Abs(logAbsDet) > 1e-9 {
		t.Fatalf("expected ln|det|=0 for a unitary permutation, got %v (sign %v)", logAbsDet, sign)
	}
}

func TestChannelsInOutRequireBoth(t *testing.T) {
	chk.PrintTitle("channels_in without channels_out is a usage error")
	sel := ChannelSelection{ChannelsIn: []int{0}}
	_, _, err := sel.resolve(4, nil, nil)
	if err == nil {
		t.Fatalf("expected a usage error when channels_out is omitted")
	}
}
