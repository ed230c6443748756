// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inkstone

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/fermi2018/inkstone/field"
)

// buildVacuumSim returns a configured, unsolved simulation: a 1D lattice,
// a single retained harmonic, normal incidence at omega=1, and n all-vacuum
// layers (the first and last zero-thickness half-spaces).
func buildVacuumSim(t *testing.T, n int, thickness float64) *Inkstone {
	ik := New()
	ik.SetLattice1D(1.0)
	ik.SetNumG(1)
	ik.SetFrequency(1.0 / (2 * 3.141592653589793))
	for i := 0; i < n; i++ {
		th := thickness
		if i == 0 || i == n-1 {
			th = 0
		}
		if _, err := ik.AddLayer(layerName(i), th, "vacuum"); err != nil {
			t.Fatalf("AddLayer: %v", err)
		}
	}
	if err := ik.SetExcitationPlanar(0, 0, 1, 0); err != nil {
		t.Fatalf("SetExcitationPlanar: %v", err)
	}
	return ik
}

func layerName(i int) string {
	return string(rune('A' + i))
}

func TestSolveVacuumStackConservesPower(t *testing.T) {
	chk.PrintTitle("inkstone: normal-incidence vacuum stack transmits with no loss")
	ik := buildVacuumSim(t, 4, 0.3)
	sf, sb, err := ik.GetPowerFlux("B", 0)
	if err != nil {
		t.Fatalf("GetPowerFlux: %v", err)
	}
	// unit E amplitude with unit admittance: (1/2) Re(E x H*) = 1/2
	if sf < 0.5-1e-9 {
		t.Fatalf("expected forward flux 1/2 at the start of an interior vacuum layer, got %v", sf)
	}
	if sb > 1e-9 {
		t.Fatalf("expected zero backward flux in an all-vacuum stack, got %v", sb)
	}
}

func TestGetAmplitudesByOrderNoReflectionInVacuumStack(t *testing.T) {
	chk.PrintTitle("inkstone: incident layer has no backward wave in an all-vacuum stack")
	ik := buildVacuumSim(t, 3, 0.5)
	amp, err := ik.GetAmplitudesByOrder("A", 0, []int{0})
	if err != nil {
		t.Fatalf("GetAmplitudesByOrder: %v", err)
	}
	if cmplx.Abs(amp.ExB[0]) > 1e-9 || cmplx.Abs(amp.EyB[0]) > 1e-9 {
		t.Fatalf("expected zero backward E field, got ExB=%v EyB=%v", amp.ExB[0], amp.EyB[0])
	}
}

func TestGetSMatrixDetChannelsInOutRequireBoth(t *testing.T) {
	chk.PrintTitle("inkstone: get_smatrix_det rejects a lone channels_in/out")
	ik := buildVacuumSim(t, 3, 0.5)
	_, _, err := ik.GetSMatrixDet(field.ChannelSelection{ChannelsIn: []int{0}})
	if err == nil {
		t.Fatalf("expected an error when only channels_in is supplied")
	}
}

func TestGetSMatrixDetFullStackIsNonzero(t *testing.T) {
	chk.PrintTitle("inkstone: get_smatrix_det over the full channel set")
	ik := buildVacuumSim(t, 3, 0.5)
	sign, logAbsDet, err := ik.GetSMatrixDet(field.ChannelSelection{})
	if err != nil {
		t.Fatalf("GetSMatrixDet: %v", err)
	}
	if cmplx.Abs(sign) < 1e-9 {
		t.Fatalf("expected a nonzero determinant sign, got %v (log|det|=%v)", sign, logAbsDet)
	}
}

func TestSetOmegaIsIdempotentWhenUnchanged(t *testing.T) {
	chk.PrintTitle("inkstone: set_omega is a true no-op when the value is unchanged")
	ik := buildVacuumSim(t, 3, 0.5)
	if _, _, err := ik.GetPowerFlux("B", 0); err != nil {
		t.Fatalf("GetPowerFlux: %v", err)
	}
	solvedBefore := ik.solved
	ik.SetOmega(ik.omega)
	if !ik.solved || solvedBefore != ik.solved {
		t.Fatalf("expected SetOmega with an unchanged value to leave solved state untouched")
	}
}
