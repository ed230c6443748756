// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"math/cmplx"

	"github.com/fermi2018/inkstone/cla"
	"github.com/fermi2018/inkstone/eig"
	"github.com/fermi2018/inkstone/rsp"
)

// ComputeSM builds the per-layer S-matrix (§4.2 "Layer per-layer S-matrix
// contract") from this layer's modal data m, expressed against a shared
// reference basis ref (the vacuum/free-space modal basis computed once per
// solve, §4.6 step 1 and the "canonical vacuum half-space sm" of step 5).
// Using a common reference basis for every layer is what lets Redheffer
// composition (package rsp) stitch together layers whose own modal bases
// differ, following the enhanced transmittance matrix construction:
//
//	A = W^-1 W0 + V^-1 V0
//	B = W^-1 W0 - V^-1 V0
//	X = diag(exp(i q t))
//	D = A - X B A^-1 X B
//	S11 = S22 = D^-1 (X B A^-1 X A - B)
//	S12 = S21 = D^-1 X (A - B A^-1 B)
//
// where W, V are this layer's (phi, psi) and W0, V0 are the reference's.
// Plugging m == ref and t == 0 collapses this to {0, I, I, 0}, matching the
// vacuum-stack identity of P7.
func ComputeSM(m, ref *eig.Modes, thickness float64) (*rsp.SMatrix, error) {
	wInv, err := cla.Inverse(m.Phi)
	if err != nil {
		return nil, err
	}
	vInv, err := cla.Inverse(m.Psi)
	if err != nil {
		return nil, err
	}
	wInvW0 := cla.Mul(wInv, ref.Phi)
	vInvV0 := cla.Mul(vInv, ref.Psi)
	a := wInvW0.Add(vInvV0)
	b := wInvW0.Add(vInvV0.Scale(-1))

	x := cla.Diag(phaseFactors(m.Q, thickness))

	aInv, err := cla.Inverse(a)
	if err != nil {
		return nil, err
	}

	xb := cla.Mul(x, b)
	xbaInv := cla.Mul(xb, aInv)
	d := a.Add(cla.Mul(xbaInv, cla.Mul(x, b)).Scale(-1))
	dInv, err := cla.Inverse(d)
	if err != nil {
		return nil, err
	}

	s11 := cla.Mul(dInv, cla.Mul(xbaInv, cla.Mul(x, a)).Add(b.Scale(-1)))
	bAinvB := cla.Mul(b, cla.Mul(aInv, b))
	s12 := cla.Mul(dInv, cla.Mul(x, a.Add(bAinvB.Scale(-1))))

	return &rsp.SMatrix{S11: s11, S12: s12, S21: s12, S22: s11}, nil
}

// phaseFactors returns exp(i q_k thickness) for each modal wavenumber.
func phaseFactors(q []complex128, thickness float64) []complex128 {
	out := make([]complex128, len(q))
	for k, qk := range q {
		out[k] = cmplx.Exp(1i * qk * complex(thickness, 0))
	}
	return out
}
