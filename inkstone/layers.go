// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inkstone

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fermi2018/inkstone/eig"
	"github.com/fermi2018/inkstone/layer"
	"github.com/fermi2018/inkstone/material"
	"github.com/fermi2018/inkstone/stack"
)

// AddLayer appends a new layer with the given background material (§6.1
// add_layer). The background must already exist in the materials
// registry ("vacuum" always does).
func (ik *Inkstone) AddLayer(name string, thickness float64, materialBg string) (*layer.Layer, error) {
	if _, exists := ik.byName[name]; exists {
		return nil, chk.Err("inkstone: AddLayer: layer %q already exists", name)
	}
	bg, err := ik.materials.Get(materialBg)
	if err != nil {
		return nil, err
	}
	l := layer.New(name, thickness, bg)
	l.Solver = solverFor(bg)
	ik.appendLayer(l)
	return l, nil
}

// AddLayerCopy appends a layer that uses the original's material and
// current Solver, so its modal data equals the original's, but has its own
// thickness and caches (§6.1 add_layer_copy, §9). The modal data is
// computed again for the copy, not shared; a later SetLayer that changes
// the original's background material does not change the copy's material
// or Solver.
func (ik *Inkstone) AddLayerCopy(name, original string, thickness float64) (*layer.Layer, error) {
	if _, exists := ik.byName[name]; exists {
		return nil, chk.Err("inkstone: AddLayerCopy: layer %q already exists", name)
	}
	orig, ok := ik.byName[original]
	if !ok {
		return nil, chk.Err("inkstone: AddLayerCopy: original layer %q not found", original)
	}
	l := layer.NewCopy(name, orig, thickness)
	l.Solver = orig.Solver
	ik.appendLayer(l)
	return l, nil
}

// SetLayer mutates an existing layer's thickness and/or background
// material (§6.1 set_layer), propagating the appropriate dirty flag.
func (ik *Inkstone) SetLayer(name string, thickness *float64, materialBg *string) error {
	l, ok := ik.byName[name]
	if !ok {
		return chk.Err("inkstone: SetLayer: layer %q not found", name)
	}
	if thickness != nil {
		l.Thickness = *thickness
		l.MarkThicknessChanged()
	}
	if materialBg != nil {
		bg, err := ik.materials.Get(*materialBg)
		if err != nil {
			return err
		}
		l.Material = bg
		l.Solver = solverFor(bg)
		bg.Observe(l)
		l.MarkModified()
	}
	ik.solved = false
	return nil
}

// AddPattern records a patterned inclusion within a layer (§6.1
// add_pattern). Shape rasterisation and Fourier convolution-matrix
// generation are the out-of-scope eigenproblem collaborator's
// responsibility (§1); this only invalidates the layer so that a
// pattern-aware Solver (supplied by the caller in place of the default
// homogeneous one) re-runs on the next solve.
func (ik *Inkstone) AddPattern(layerName, materialName, shape, patternName string, shapeArgs map[string]float64) error {
	l, ok := ik.byName[layerName]
	if !ok {
		return chk.Err("inkstone: AddPattern: layer %q not found", layerName)
	}
	if _, err := ik.materials.Get(materialName); err != nil {
		return err
	}
	if ik.lattice.Is1D && shape != "1d" {
		io.Pfyel("warning: 1D lattice but %q shape: patterns may give unexpected results\n", shape)
	}
	l.MarkModified()
	ik.solved = false
	return nil
}

// SetPattern mutates a previously added pattern (§6.1 set_pattern); same
// out-of-scope rasterisation boundary as AddPattern.
func (ik *Inkstone) SetPattern(layerName, patternName string, shapeArgs map[string]float64) error {
	_, ok := ik.byName[layerName]
	if !ok {
		return chk.Err("inkstone: SetPattern: layer %q not found", layerName)
	}
	ik.byName[layerName].MarkModified()
	ik.solved = false
	return nil
}

func (ik *Inkstone) appendLayer(l *layer.Layer) {
	ik.byName[l.Name] = l
	ik.layers = append(ik.layers, l)
	ik.solved = false
	if ik.stack == nil {
		if len(ik.layers) < 2 {
			return
		}
		s, err := stack.New(ik.layers)
		if err != nil {
			chk.Panic("inkstone: unreachable: %v", err)
		}
		ik.stack = s
		return
	}
	ik.stack.AppendLayer(l)
}

// solverFor returns the default closed-form solver for an isotropic
// scalar background, or nil for anything else (the caller must attach a
// pattern-aware Solver before the next query, e.g. via Layer.Solver
// directly).
func solverFor(bg *material.Material) eig.Solver {
	eps, okE := bg.Epsilon.IsIsotropicScalar()
	mu, okM := bg.Mu.IsIsotropicScalar()
	if !okE || !okM {
		return nil
	}
	return &eig.Homogeneous{Epsilon: eps, Mu: mu}
}
