// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rsp

import (
	"fmt"

	"github.com/fermi2018/inkstone/cla"
)

// NumericalSingularity wraps cla.ErrSingular with the layer span where the
// Redheffer composition failed, so callers can report which part of the
// stack hit the evanescent-coupling resonance (§4.1).
type NumericalSingularity struct {
	Span [2]int
	Err  error
}

func (e *NumericalSingularity) Error() string {
	return fmt.Sprintf("rsp: numerical singularity composing span [%d,%d]: %v", e.Span[0], e.Span[1], e.Err)
}

func (e *NumericalSingularity) Unwrap() error { return e.Err }

// Rsp computes the generic Redheffer star product C = A*B (§4.1):
//
//	T1 = (I - A22 B11)^-1
//	T2 = (I - B11 A22)^-1
//	C11 = A11 + A12 T2 B11 A21
//	C12 = A12 T2 B12
//	C21 = B21 T1 A21
//	C22 = B22 + B21 T1 A22 B12
//
// span identifies the layer indices [i,j] being composed, attached to any
// NumericalSingularity so the caller can surface it.
func Rsp(a, b *SMatrix, span [2]int) (*SMatrix, error) {
	n := a.NumG() * 2
	i := cla.Identity(n)

	aInvArg := i.Add(cla.Mul(a.S22, b.S11).Scale(-1))
	t1, err := cla.Inverse(aInvArg)
	if err != nil {
		return nil, &NumericalSingularity{Span: span, Err: err}
	}
	bInvArg := i.Add(cla.Mul(b.S11, a.S22).Scale(-1))
	t2, err := cla.Inverse(bInvArg)
	if err != nil {
		return nil, &NumericalSingularity{Span: span, Err: err}
	}

	c11 := a.S11.Add(cla.Mul(cla.Mul(cla.Mul(a.S12, t2), b.S11), a.S21))
	c12 := cla.Mul(cla.Mul(a.S12, t2), b.S12)
	c21 := cla.Mul(cla.Mul(b.S21, t1), a.S21)
	c22 := b.S22.Add(cla.Mul(cla.Mul(cla.Mul(b.S21, t1), a.S22), b.S12))

	return &SMatrix{S11: c11, S12: c12, S21: c21, S22: c22}, nil
}

// RspIn is semantically identical to Rsp but documents that A is an incident
// half-space S-matrix (A11 = 0 in the standard RCWA half-space basis, so
// C11 simplifies to A12 T2 B11 A21). It is kept as a distinct entry point so
// a future implementer may specialise it without touching call sites; for
// now it defers to Rsp (general form), matching the spec's requirement that
// it be "semantically identical to rsp".
func RspIn(a, b *SMatrix, span [2]int) (*SMatrix, error) {
	return Rsp(a, b, span)
}

// RspOut is the symmetric case for an output half-space B (B22 = 0).
func RspOut(a, b *SMatrix, span [2]int) (*SMatrix, error) {
	return Rsp(a, b, span)
}
