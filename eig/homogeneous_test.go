// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestHomogeneousVacuumNormalIncidence(tst *testing.T) {

	chk.PrintTitle("HomogeneousVacuumNormalIncidence")

	s := &Homogeneous{Epsilon: 1, Mu: 1}
	ctx := Context{Kx: []float64{0}, Ky: []float64{0}, Omega: complex(0.8*2*3.141592653589793, 0)}
	modes, err := s.Solve(ctx)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	if len(modes.RadCha) != 1 {
		tst.Errorf("expected 1 radiative channel at normal incidence in vacuum, got %d", len(modes.RadCha))
	}
	if cmplx.Abs(modes.Q[0]-ctx.Omega) > 1e-9 {
		tst.Errorf("q[0] = %v, want omega = %v", modes.Q[0], ctx.Omega)
	}
	if cmplx.Abs(modes.Q[1]-ctx.Omega) > 1e-9 {
		tst.Errorf("q[1] = %v, want omega = %v", modes.Q[1], ctx.Omega)
	}
}

func TestHomogeneousEvanescentHighOrder(tst *testing.T) {

	chk.PrintTitle("HomogeneousEvanescentHighOrder")

	s := &Homogeneous{Epsilon: 1, Mu: 1}
	omega := complex(0.5, 0)
	// a harmonic with |kx| > omega is evanescent in vacuum
	ctx := Context{Kx: []float64{0, 10}, Ky: []float64{0, 0}, Omega: omega}
	modes, err := s.Solve(ctx)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	if len(modes.RadCha) != 1 || modes.RadCha[0] != 0 {
		tst.Errorf("expected only harmonic 0 to be radiative, got %v", modes.RadCha)
	}
	if imag(modes.Q[1]) <= 0 {
		tst.Errorf("evanescent q should have positive imaginary part, got %v", modes.Q[1])
	}
}
