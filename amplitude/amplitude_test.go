// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amplitude

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/fermi2018/inkstone/eig"
	"github.com/fermi2018/inkstone/layer"
	"github.com/fermi2018/inkstone/material"
	"github.com/fermi2018/inkstone/stack"
)

// buildVacuumStack returns an n-layer all-vacuum stack (normal incidence,
// single harmonic) with excitation a_0 = e_0 (unit amplitude in the zeroth
// order), b_N = 0.
func buildVacuumStack(t *testing.T, n int, thickness float64) *stack.Stack {
	reg := material.NewRegistry()
	vac, err := reg.Get(material.VacuumName)
	if err != nil {
		t.Fatalf("vacuum lookup: %v", err)
	}
	var layers []*layer.Layer
	for i := 0; i < n; i++ {
		l := layer.New("L", thickness, vac)
		l.Solver = &eig.Homogeneous{Epsilon: 1, Mu: 1}
		layers = append(layers, l)
	}
	s, err := stack.New(layers)
	if err != nil {
		t.Fatalf("stack.New: %v", err)
	}
	s.Ctx = eig.Context{Kx: []float64{0}, Ky: []float64{0}, Omega: complex(1.0, 0)}
	// g = 1 harmonic, so each amplitude vector has 2g = 2 entries: index 0
	// is the s-polarised (TE) channel, index 1 is p-polarised (TM).
	s.Ai = []complex128{1, 0}
	s.Bo = []complex128{0, 0}
	return s
}

func TestVacuumStackNoReflection(t *testing.T) {
	chk.PrintTitle("vacuum stack: zero reflection, unit-magnitude transmission")
	s := buildVacuumStack(t, 4, 0.5)
	if err := CalcBiAo(s); err != nil {
		t.Fatalf("CalcBiAo: %v", err)
	}
	if cmplx.Abs(s.Bi[0]) > 1e-9 {
		t.Fatalf("expected zero reflection in an all-vacuum stack, got Bi=%v", s.Bi[0])
	}
	// the two interior layers (the half-spaces count as zero thickness)
	// give the propagation phase exp(i q (0.5+0.5)) with q = omega = 1.
	want := cmplx.Exp(complex(0, 2*0.5))
	if cmplx.Abs(s.Ao[0]-want) > 1e-9 {
		t.Fatalf("expected transmission %v in an all-vacuum stack, got Ao=%v", want, s.Ao[0])
	}
}

func TestInteriorLayerAmplitudesMatchPropagation(t *testing.T) {
	chk.PrintTitle("vacuum stack: interior layer has no backward wave and a nonzero forward wave")
	s := buildVacuumStack(t, 3, 0.5)
	if err := CalcAlBlLayer(s, 1); err != nil {
		t.Fatalf("CalcAlBlLayer: %v", err)
	}
	l := s.Layers[1]
	if cmplx.Abs(l.Bl[0]) > 1e-9 {
		t.Fatalf("expected no backward wave in an all-vacuum stack, got Bl=%v", l.Bl[0])
	}
	if cmplx.Abs(l.Al[0]) < 1e-9 {
		t.Fatalf("expected a nonzero forward wave, got Al=%v", l.Al[0])
	}
}

func TestEndpointAmplitudesMatchGlobal(t *testing.T) {
	chk.PrintTitle("endpoint layers reuse the global amplitudes directly")
	s := buildVacuumStack(t, 3, 0.5)
	if err := CalcAlBlLayer(s, 0); err != nil {
		t.Fatalf("CalcAlBlLayer(0): %v", err)
	}
	if err := CalcAlBlLayer(s, 2); err != nil {
		t.Fatalf("CalcAlBlLayer(2): %v", err)
	}
	if s.Layers[0].Al[0] != s.Ai[0] {
		t.Fatalf("incident layer Al must equal global Ai")
	}
	if s.Layers[2].Al[0] != s.Ao[0] {
		t.Fatalf("output layer Al must equal global Ao")
	}
}
