// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amplitude

import (
	"github.com/fermi2018/inkstone/assembly"
	"github.com/fermi2018/inkstone/cla"
	"github.com/fermi2018/inkstone/layer"
	"github.com/fermi2018/inkstone/stack"
	"gonum.org/v1/gonum/cmplxs"
)

// CalcAlBlLayer implements calc_al_bl_layer(i) (§4.8): the forward/backward
// modal amplitude vectors inside layer i, from the global excitation and
// the cumulative S-matrices adjacent to the layer.
//
// The incident and output half-spaces read directly off the global
// amplitudes. Every interior layer averages two Redheffer-based estimates
// of each amplitude (one built from the matrix directly, one from its
// inverse ordering) via the layer's own im = (a0, b0) auxiliary matrices,
// which is more stable than either estimate alone.
//
// This implementation always multiplies by the half-space's own S-matrix
// directly rather than caching its LU factorisation for the non-vacuum
// incident/output case (§9 design note); correct, just not the fastest
// path for repeated back-solves against the same half-space.
func CalcAlBlLayer(s *stack.Stack, i int) error {
	n := s.N()
	l := s.Layers[i]
	if !l.NeedRecalcAlBl && l.Al != nil {
		return nil
	}
	if err := CalcBiAo(s); err != nil {
		return err
	}

	if i == 0 {
		l.Al = clone(s.Ai)
		l.Bl = clone(s.Bi)
		l.NeedRecalcAlBl = false
		return nil
	}
	if i == n-1 {
		l.Al = clone(s.Ao)
		l.Bl = clone(bo(s))
		l.NeedRecalcAlBl = false
		return nil
	}

	csmPrev, err := assembly.CalcCsmLayer(s, i-1)
	if err != nil {
		return err
	}
	csmHere, err := assembly.CalcCsmLayer(s, i)
	if err != nil {
		return err
	}
	csmrHere, err := assembly.CalcCsmrLayer(s, i)
	if err != nil {
		return err
	}
	csmrNext, err := assembly.CalcCsmrLayer(s, i+1)
	if err != nil {
		return err
	}

	bN := bo(s)
	a0, b0 := l.Modes.Im[0], l.Modes.Im[1]

	al, err := averagedBackSolve(csmPrev.S21.MulVec(s.Ai), csmrHere.S12.MulVec(bN), csmPrev.S22, csmrHere.S11, b0, a0)
	if err != nil {
		return err
	}
	bl, err := averagedBackSolve(csmHere.S21.MulVec(s.Ai), csmrNext.S12.MulVec(bN), csmHere.S22, csmrNext.S11, a0, b0)
	if err != nil {
		return err
	}

	l.Al = al
	l.Bl = bl
	l.NeedRecalcAlBl = false
	l.State = layer.Resolved
	return nil
}

// averagedBackSolve implements the pair of symmetric estimates in §4.8:
//
//	term_rl = weightRL . (I - Sright11 . Sleft22)^-1 . (Sright11 . sa + sb)
//	term_lr = weightLR . (I - Sleft22 . Sright11)^-1 . (sa + Sleft22 . sb)
//	result  = 1/2 . (term_rl + term_lr)
//
// For al, weightRL/weightLR are (b0, a0); for bl they are swapped (a0, b0),
// matching the two mirrored expressions in the spec.
func averagedBackSolve(sa, sb []complex128, sleft22, sright11, weightRL, weightLR *cla.Matrix) ([]complex128, error) {
	g, _ := sleft22.Dims()
	i := cla.Identity(g)

	mRL := i.Add(cla.Mul(sright11, sleft22).Scale(-1))
	srSa := sright11.MulVec(sa)
	rhsRL := cmplxs.AddTo(make([]complex128, len(srSa)), srSa, sb)
	xRL, err := cla.SolveVec(mRL, rhsRL)
	if err != nil {
		return nil, err
	}
	termRL := weightRL.MulVec(xRL)

	mLR := i.Add(cla.Mul(sleft22, sright11).Scale(-1))
	rhsLR := cmplxs.AddTo(make([]complex128, len(sa)), sa, sleft22.MulVec(sb))
	xLR, err := cla.SolveVec(mLR, rhsLR)
	if err != nil {
		return nil, err
	}
	termLR := weightLR.MulVec(xLR)

	sum := cmplxs.AddTo(make([]complex128, len(termRL)), termRL, termLR)
	return cmplxs.ScaleTo(make([]complex128, len(sum)), 0.5, sum), nil
}

func bo(s *stack.Stack) []complex128 {
	if s.Bo != nil {
		return s.Bo
	}
	return make([]complex128, len(s.Ai))
}

func clone(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	copy(out, v)
	return out
}
