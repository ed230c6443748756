// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import (
	"github.com/cpmech/gosl/chk"
	"github.com/fermi2018/inkstone/eig"
	"github.com/fermi2018/inkstone/layer"
	"github.com/fermi2018/inkstone/rsp"
)

// Stack is the ordered sequence of layers (§3 "Stack"): element 0 is the
// incident half-space, element N-1 the output half-space, N >= 2.
type Stack struct {
	Layers []*layer.Layer
	Cache  *Cache

	// global flags (I4): set whenever any cache mutation invalidates the
	// assembled S-matrix.
	NeedRecalcSM   bool
	NeedRecalcBiAo bool

	// global S-matrix, valid once NeedRecalcSM is false (I2). nil means
	// "never solved".
	SM *rsp.SMatrix

	// excitation (§4.9): Ai is the incident-side forward amplitude (set by
	// set_excitation), Bo the output-side backward amplitude (zero unless
	// illuminated from both ends).
	Ai, Bo []complex128

	// global amplitudes (§3 "Global amplitudes"), valid once
	// NeedRecalcBiAo is false.
	Bi, Ao []complex128

	// Ctx is the shared harmonic/frequency context (set by the inkstone
	// facade from set_lattice/set_num_g/set_frequency); Vacuum is the
	// reference modal basis (free space) used to match every layer's own
	// modal basis during per-layer S-matrix construction (layer.ComputeSM),
	// cached here since it only depends on Ctx.
	Ctx    eig.Context
	Vacuum *eig.Modes
}

// VacuumReference returns the cached free-space reference modal basis,
// computing it on first use (or after Ctx changes, once the caller clears
// it).
func (s *Stack) VacuumReference() (*eig.Modes, error) {
	if s.Vacuum != nil {
		return s.Vacuum, nil
	}
	solver := &eig.Homogeneous{Epsilon: 1, Mu: 1}
	modes, err := solver.Solve(s.Ctx)
	if err != nil {
		return nil, err
	}
	s.Vacuum = modes
	return modes, nil
}

// New returns a stack from an ordered layer list; the stack starts fully
// dirty. It does not classify regions or zero the end layers' thickness:
// assembly.DetermineRegions does both on the next assembly (I5).
func New(layers []*layer.Layer) (*Stack, error) {
	if len(layers) < 2 {
		return nil, chk.Err("stack: New: a stack needs at least 2 layers (incident and output half-spaces), got %d", len(layers))
	}
	s := &Stack{
		Layers:         layers,
		Cache:          NewCache(len(layers)),
		NeedRecalcSM:   true,
		NeedRecalcBiAo: true,
	}
	return s, nil
}

// N returns the layer count.
func (s *Stack) N() int { return len(s.Layers) }

// AppendLayer appends a new last layer (the new output half-space),
// marking the stack for region-reclassification (the old output
// half-space becomes interior).
func (s *Stack) AppendLayer(l *layer.Layer) {
	// the previous last layer is no longer the output half-space
	if n := len(s.Layers); n > 0 {
		s.Layers[n-1].IfMod = true
		s.Layers[n-1].State = layer.Fresh
	}
	s.Layers = append(s.Layers, l)
	s.Cache.Csms = append(s.Cache.Csms, nil)
	s.NeedRecalcSM = true
	s.NeedRecalcBiAo = true
}
