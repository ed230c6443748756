// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package amplitude implements the back-solve (§4.8, §4.9): the global
// reflected/transmitted amplitudes from the assembled S-matrix, and the
// per-layer forward/backward modal amplitudes used by the field derivators.
package amplitude

import (
	"github.com/fermi2018/inkstone/assembly"
	"github.com/fermi2018/inkstone/stack"
	"gonum.org/v1/gonum/cmplxs"
)

// CalcBiAo implements calc_bi_ao (§4.9): the global reflected amplitude at
// the incident half-space and transmitted amplitude at the output
// half-space, from the assembled global S-matrix and the excitation
// Ai/Bo. A no-op if nothing is dirty (P3).
func CalcBiAo(s *stack.Stack) error {
	if !s.NeedRecalcBiAo && s.Bi != nil && s.Ao != nil {
		return nil
	}
	if err := assembly.CalcSM(s); err != nil {
		return err
	}
	sm := s.SM
	bo := s.Bo
	if bo == nil {
		_, cols := sm.S12.Dims()
		bo = make([]complex128, cols)
	}
	bi := sm.S11.MulVec(s.Ai)
	s.Bi = cmplxs.AddTo(make([]complex128, len(bi)), bi, sm.S12.MulVec(bo))
	ao := sm.S21.MulVec(s.Ai)
	s.Ao = cmplxs.AddTo(make([]complex128, len(ao)), ao, sm.S22.MulVec(bo))
	s.NeedRecalcBiAo = false
	return nil
}
