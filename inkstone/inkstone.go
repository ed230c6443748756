// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inkstone is the user-facing facade (§6.1): it wires the lattice,
// materials registry, layer stack, excitation and channel-normalization
// settings together and drives the lazy solve() pipeline (region
// classification -> recalculation planning -> S-matrix assembly ->
// back-solve) that the rest of this module implements.
package inkstone

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fermi2018/inkstone/lattice"
	"github.com/fermi2018/inkstone/layer"
	"github.com/fermi2018/inkstone/material"
	"github.com/fermi2018/inkstone/stack"
)

// Normalization and PolarizationBasis enumerate channels_choices (§6.1);
// "ac" (admittance-corrected) normalization is accepted but not yet
// implemented differently from "physical" since no caller in this module
// exercises the distinction.
const (
	NormalizationPhysical = "physical"
	NormalizationAC       = "ac"

	PolarizationBasisPhysical = "physical"
	PolarizationBasisAC       = "ac"
)

// Inkstone is one simulation: a lattice, a harmonic truncation, a
// materials registry, an ordered layer stack and an excitation. Two
// instances are independent (§5).
type Inkstone struct {
	materials *material.Registry
	layers    []*layer.Layer
	byName    map[string]*layer.Layer

	lattice lattice.Lattice
	numG    int
	omega   complex128

	excitation excitation

	normalization      string
	polarizationBasis  string

	stack  *stack.Stack
	solved bool
}

type excitation struct {
	thetaRad, phiRad     float64
	sAmp, pAmp           []complex128
	orders               []lattice.Order
	sAmpBack, pAmpBack   []complex128
	ordersBack           []lattice.Order
	set                  bool
}

// New returns an unconfigured simulation: callers must set lattice, num_g,
// frequency and excitation, and add at least two layers (incident and
// output half-spaces) before the first query.
func New() *Inkstone {
	return &Inkstone{
		materials:         material.NewRegistry(),
		byName:            make(map[string]*layer.Layer),
		normalization:     NormalizationPhysical,
		polarizationBasis: PolarizationBasisPhysical,
	}
}

// SetLattice1D configures a 1D lattice of the given period (§6.1
// set_lattice scalar form).
func (ik *Inkstone) SetLattice1D(period float64) {
	ik.lattice = lattice.New1D(period)
	ik.invalidateContext()
}

// SetLattice2D configures a 2D lattice spanned by vec1, vec2 (§6.1
// set_lattice vector form).
func (ik *Inkstone) SetLattice2D(vec1, vec2 [2]float64) {
	ik.lattice = lattice.New2D(vec1, vec2)
	ik.invalidateContext()
}

// SetNumG sets the retained-harmonic count; lattice.Harmonics returns
// exactly this many orders.
func (ik *Inkstone) SetNumG(g int) {
	ik.numG = g
	ik.invalidateContext()
}

// SetFrequency sets omega = 2*pi*f (§6.1 set_frequency). Mirrors the
// compare-before-write fix noted for SetOmega below, for symmetry.
func (ik *Inkstone) SetFrequency(f float64) {
	ik.SetOmega(complex(2*math.Pi*f, 0))
}

// SetOmega sets the angular frequency directly, real or complex (§6.1
// set_omega). The source material's omega setter wrote the new value and
// then compared against it, making the dirty-flag path unreachable (§9);
// here the comparison happens before the write, as the frequency setter
// already does, so a no-op SetOmega call is genuinely a no-op.
func (ik *Inkstone) SetOmega(omega complex128) {
	if omega == ik.omega {
		return
	}
	ik.omega = omega
	ik.invalidateContext()
}

// SetExcitation configures a general multi-plane-wave excitation (§6.1):
// theta/phi in degrees, amplitudes and orders as parallel slices. A nil
// back-side slice means no illumination from the output half-space.
func (ik *Inkstone) SetExcitation(thetaDeg, phiDeg float64, sAmp, pAmp []complex128, orders []lattice.Order, sAmpBack, pAmpBack []complex128, ordersBack []lattice.Order) error {
	if len(sAmp) != len(pAmp) || len(sAmp) != len(orders) {
		return chk.Err("inkstone: SetExcitation: sAmp, pAmp and orders must have the same length")
	}
	if len(sAmpBack) != len(pAmpBack) || len(sAmpBack) != len(ordersBack) {
		return chk.Err("inkstone: SetExcitation: sAmpBack, pAmpBack and ordersBack must have the same length")
	}
	ik.excitation = excitation{
		thetaRad: thetaDeg * math.Pi / 180, phiRad: phiDeg * math.Pi / 180,
		sAmp: sAmp, pAmp: pAmp, orders: orders,
		sAmpBack: sAmpBack, pAmpBack: pAmpBack, ordersBack: ordersBack,
		set: true,
	}
	ik.invalidateAmplitudes()
	return nil
}

// SetExcitationPlanar is a convenience wrapper over SetExcitation for the
// common single plane-wave, zeroth-order case (§6.1 "supplemented
// features"): normal or oblique incidence with one s- and one p-amplitude,
// no illumination from the output side.
func (ik *Inkstone) SetExcitationPlanar(thetaDeg, phiDeg float64, sAmp, pAmp complex128) error {
	return ik.SetExcitation(thetaDeg, phiDeg,
		[]complex128{sAmp}, []complex128{pAmp}, []lattice.Order{{M: 0, N: 0}},
		nil, nil, nil)
}

// ChannelsChoices sets the normalization and polarization basis used by
// channel-indexed queries (§6.1 channels_choices).
func (ik *Inkstone) ChannelsChoices(normalization, polarizationBasis string) error {
	if normalization != NormalizationPhysical && normalization != NormalizationAC {
		return chk.Err("inkstone: ChannelsChoices: unknown normalization %q", normalization)
	}
	if polarizationBasis != PolarizationBasisPhysical && polarizationBasis != PolarizationBasisAC {
		return chk.Err("inkstone: ChannelsChoices: unknown polarization basis %q", polarizationBasis)
	}
	ik.normalization = normalization
	ik.polarizationBasis = polarizationBasis
	return nil
}

func (ik *Inkstone) invalidateContext() {
	ik.solved = false
	if ik.stack != nil {
		ik.stack.Vacuum = nil
		for _, l := range ik.layers {
			l.MarkModified()
		}
		ik.stack.NeedRecalcSM = true
		ik.stack.NeedRecalcBiAo = true
	}
}

func (ik *Inkstone) invalidateAmplitudes() {
	ik.solved = false
	if ik.stack != nil {
		ik.stack.NeedRecalcBiAo = true
		for _, l := range ik.layers {
			l.NeedRecalcAlBl = true
		}
	}
}

// harmonics returns the retained reciprocal-lattice orders for the current
// lattice/num_g configuration.
func (ik *Inkstone) harmonics() []lattice.Order {
	if ik.numG < 1 {
		io.Pfyel("warning: num_g not set, defaulting to 1\n")
		return []lattice.Order{{M: 0, N: 0}}
	}
	return ik.lattice.Harmonics(ik.numG)
}
