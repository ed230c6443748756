// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"github.com/cpmech/gosl/chk"
	"github.com/fermi2018/inkstone/eig"
	"github.com/fermi2018/inkstone/layer"
	"github.com/fermi2018/inkstone/rsp"
	"github.com/fermi2018/inkstone/stack"
)

// CalcCsmLayer ensures the incident-anchored chain covers index i and
// returns csm (the cumulative S-matrix from the incident half-space up to
// and including layer i), §4.7. CalcSM always walks the whole stack, so in
// practice this only needs to trigger a full assembly if one hasn't run
// yet (e.g. before the first solve()).
func CalcCsmLayer(s *stack.Stack, i int) (*rsp.SMatrix, error) {
	if i < 0 || i >= s.N() {
		return nil, chk.Err("assembly: CalcCsmLayer: index %d out of range [0,%d)", i, s.N())
	}
	if s.Layers[i].CSM == nil || s.NeedRecalcSM {
		if err := CalcSM(s); err != nil {
			return nil, err
		}
	}
	if s.Layers[i].CSM == nil {
		return nil, chk.Err("assembly: CalcCsmLayer: csm for layer %d unavailable after assembly", i)
	}
	return s.Layers[i].CSM, nil
}

// CalcCsmrLayer ensures csmsr covers anchor i (the cumulative S-matrix from
// layer i to the output half-space) and returns it, extending the
// output-anchored chain right-to-left from whatever is already cached
// (§4.7). Seeds the chain from the output half-space on first call.
func CalcCsmrLayer(s *stack.Stack, i int) (*rsp.SMatrix, error) {
	n := s.N()
	if i < 0 || i >= n {
		return nil, chk.Err("assembly: CalcCsmrLayer: index %d out of range [0,%d)", i, n)
	}
	if e, ok := s.Cache.FindCsmsr(i); ok {
		return e.SM, nil
	}

	ref, err := s.VacuumReference()
	if err != nil {
		return nil, err
	}

	frontier, composed, err := resumeCsmsr(s, ref)
	if err != nil {
		return nil, err
	}

	for k := frontier - 1; k >= i; k-- {
		l := s.Layers[k]
		if err := ensureLayerSolved(l, s); err != nil {
			return nil, err
		}
		t := EffectiveThickness(l)
		sm, err := layer.ComputeSM(l.Modes, ref, t)
		if err != nil {
			return nil, &rsp.NumericalSingularity{Span: [2]int{k, n - 1}, Err: err}
		}
		l.SM = sm

		var next *rsp.SMatrix
		if k == 0 {
			next, err = rsp.RspIn(sm, composed, [2]int{k, n - 1})
		} else {
			next, err = rsp.Rsp(sm, composed, [2]int{k, n - 1})
		}
		if err != nil {
			return nil, err
		}
		composed = next
		s.Cache.ExtendCsmsr(k, composed, n)
		l.CSMR = composed
	}
	return composed, nil
}

// resumeCsmsr seeds the output-anchored chain from the output half-space if
// empty, or returns the current right-to-left frontier.
func resumeCsmsr(s *stack.Stack, ref *eig.Modes) (frontier int, composed *rsp.SMatrix, err error) {
	n := s.N()
	if last, ok := s.Cache.LastCsmsr(); ok {
		return last.Anchor, last.SM, nil
	}
	last := s.Layers[n-1]
	if err := ensureLayerSolved(last, s); err != nil {
		return 0, nil, err
	}
	t := EffectiveThickness(last)
	sm, err := layer.ComputeSM(last.Modes, ref, t)
	if err != nil {
		return 0, nil, &rsp.NumericalSingularity{Span: [2]int{n - 1, n - 1}, Err: err}
	}
	last.SM = sm
	s.Cache.ExtendCsmsr(n-1, sm, n)
	last.CSMR = sm
	return n - 1, sm, nil
}
