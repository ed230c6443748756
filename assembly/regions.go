// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly implements the incremental assembly engine (§4.4-§4.7):
// region classification, the recalculation planner, and the global
// S-matrix builder that minimally extends or invalidates the stack's
// cumulative-product cache after mutations.
package assembly

import (
	"github.com/cpmech/gosl/io"
	"github.com/fermi2018/inkstone/layer"
	"github.com/fermi2018/inkstone/stack"
)

// DetermineRegions classifies every layer (§4.4): index 0 is Incident,
// N-1 is Output, everything else Interior. A region change forces full
// invalidation of the reclassified layer; nonzero thickness on an end
// layer is warned about once and then ignored (I5).
func DetermineRegions(s *stack.Stack) {
	n := s.N()
	for i, l := range s.Layers {
		want := layer.Interior
		switch i {
		case 0:
			want = layer.Incident
		case n - 1:
			want = layer.Output
		}
		if l.Region != want {
			l.Region = want
			l.MarkModified()
		}
		if want != layer.Interior && l.Thickness != 0 {
			io.Pfyel("warning: nonzero thickness on end layer %q is ignored, treated as zero\n", l.Name)
			l.Thickness = 0
		}
	}
}

// EffectiveThickness returns a layer's thickness for assembly purposes,
// enforcing I5 regardless of what the user set on a half-space layer.
func EffectiveThickness(l *layer.Layer) float64 {
	if l.Region != layer.Interior {
		return 0
	}
	return l.Thickness
}
