// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layer implements the Layer handle (§3 "Layer", §4.2, §4.12): the
// opaque-to-assembly modal data, per-layer/cumulative S-matrix caches, and
// the dirty-flag state machine that the incremental assembly engine reads
// and clears.
package layer

import (
	"github.com/fermi2018/inkstone/eig"
	"github.com/fermi2018/inkstone/material"
	"github.com/fermi2018/inkstone/rsp"
)

// Region classifies a layer's position in the stack (§3, §4.4).
type Region int

const (
	Interior Region = iota
	Incident
	Output
)

// State is the per-layer lifecycle (§4.12): Fresh -> Solved -> Cumulated ->
// Resolved, with if_mod resetting to Fresh, if_t_change resetting to
// Solved, and a neighbour's change resetting to Cumulated.
type State int

const (
	Fresh State = iota
	Solved
	Cumulated
	Resolved
)

// Layer is one element of the Stack (§3). Modal data is populated by the
// external eigensolver on solve(); caches are owned exclusively by this
// layer or by the Stack's cumulative-product cache (stack.Cache).
type Layer struct {
	Name      string
	Thickness float64
	Material  *material.Material
	Region    Region

	// dirty flags (§3, §9)
	IfMod         bool // material/geometry changed: re-run eigenproblem
	IfTChange     bool // thickness-only change: cheap, phase factor only
	NeedRecalcAlBl bool

	State State

	// modal data, populated by the external eigensolver (package eig)
	Modes  *eig.Modes
	Solver eig.Solver

	// caches
	SM    *rsp.SMatrix // per-layer S-matrix
	CSM   *rsp.SMatrix // cumulative, incident -> this layer
	CSMR  *rsp.SMatrix // cumulative, this layer -> output
	Al    []complex128 // forward modal amplitudes
	Bl    []complex128 // backward modal amplitudes

	// observers of a shared original, populated by add_layer_copy (§9)
	copies []*Layer
}

// New returns a fresh, dirty interior layer. Region is assigned later by
// determine_regions (§4.4).
func New(name string, thickness float64, bg *material.Material) *Layer {
	l := &Layer{
		Name:      name,
		Thickness: thickness,
		Material:  bg,
		Region:    Interior,
		IfMod:     true,
		State:     Fresh,
	}
	if bg != nil {
		bg.Observe(l)
	}
	return l
}

// NewCopy returns a layer with original's background material but
// independent thickness and caches (§6.1 add_layer_copy, §9). It does not
// share original's Modes value and sets no Solver: the copy's modal data
// is computed separately by whatever Solver the caller attaches.
// MarkModified on original (material-driven via OnMaterialChanged, or a
// pattern change) sets IfMod on every copy; a thickness change of original
// (MarkThicknessChanged) does not reach the copies.
func NewCopy(name string, original *Layer, thickness float64) *Layer {
	l := &Layer{
		Name:      name,
		Thickness: thickness,
		Material:  original.Material,
		Region:    Interior,
		IfMod:     true,
		State:     Fresh,
	}
	original.copies = append(original.copies, l)
	return l
}

// OnMaterialChanged implements material.Observer: mutating this layer's
// material invalidates it and, transitively, every add_layer_copy of it.
func (l *Layer) OnMaterialChanged() {
	l.MarkModified()
}

// MarkModified sets IfMod (coarse invalidation: eigenproblem must re-run)
// and propagates to every layer created via add_layer_copy from this one,
// per §9.
func (l *Layer) MarkModified() {
	l.IfMod = true
	l.State = Fresh
	for _, c := range l.copies {
		c.MarkModified()
	}
}

// MarkThicknessChanged sets IfTChange (cheap invalidation: only the phase
// factor in the per-layer S-matrix needs recomputation, modal data stays).
func (l *Layer) MarkThicknessChanged() {
	l.IfTChange = true
	if l.State > Solved {
		l.State = Solved
	}
}

// IsVacuum reports whether the layer's background material is vacuum.
func (l *Layer) IsVacuum() bool {
	return l.Material != nil && l.Material.IsVacuum()
}

// IsDirty reports whether this layer requires any recomputation (§4.5
// determine_recalc's layers_mod membership test).
func (l *Layer) IsDirty() bool {
	return l.IfMod || l.IfTChange
}

// ClearDirty clears both mutation flags after a layer has been recomputed.
func (l *Layer) ClearDirty() {
	l.IfMod = false
	l.IfTChange = false
}

// ResetCaches drops this layer's own cached matrices and amplitudes,
// forcing a fresh solve on next use (I3, I4).
func (l *Layer) ResetCaches() {
	l.SM = nil
	l.CSM = nil
	l.CSMR = nil
	l.Al = nil
	l.Bl = nil
	l.NeedRecalcAlBl = true
}
