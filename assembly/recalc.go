// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"github.com/fermi2018/inkstone/layer"
	"github.com/fermi2018/inkstone/stack"
)

// DetermineRecalc implements §4.5: collects layers_mod = {i : if_mod v
// if_t_change}, trims every cache entry whose span would be invalidated by
// a dirty layer (I3), and propagates the global recalc flags (I4).
//
// Returns layers_mod in increasing order.
func DetermineRecalc(s *stack.Stack) []int {
	var mod []int
	for i, l := range s.Layers {
		if l.IsDirty() {
			mod = append(mod, i)
		}
	}
	if len(mod) == 0 {
		return mod
	}

	for _, k := range mod {
		s.Cache.TrimSpansCovering(k)
	}
	kMax := mod[len(mod)-1]
	s.Cache.TrimCsmsr(kMax)

	kMin := mod[0]
	for m := kMin; m < s.N(); m++ {
		s.Layers[m].CSM = nil
	}
	for m := 0; m < s.N(); m++ {
		if m < kMax {
			s.Layers[m].CSMR = nil
		}
	}

	s.NeedRecalcSM = true
	s.NeedRecalcBiAo = true
	for _, l := range s.Layers {
		l.NeedRecalcAlBl = true
		if l.State == layer.Resolved {
			l.State = layer.Cumulated
		}
	}
	return mod
}
