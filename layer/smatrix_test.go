// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/fermi2018/inkstone/eig"
)

func TestComputeSMVacuumSelfCoupling(tst *testing.T) {

	chk.PrintTitle("ComputeSMVacuumSelfCoupling. vacuum-on-vacuum matches P7")

	solver := &eig.Homogeneous{Epsilon: 1, Mu: 1}
	ctx := eig.Context{Kx: []float64{0, 1.2}, Ky: []float64{0, 0.3}, Omega: complex(2.1, 0)}
	modes, err := solver.Solve(ctx)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}

	thickness := 1.7
	sm, err := ComputeSM(modes, modes, thickness)
	if err != nil {
		tst.Fatalf("ComputeSM failed: %v", err)
	}

	n, _ := sm.S11.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if cmplx.Abs(sm.S11.At(i, j)) > 1e-8 {
				tst.Errorf("S11[%d][%d] = %v, want 0", i, j, sm.S11.At(i, j))
			}
			if cmplx.Abs(sm.S22.At(i, j)) > 1e-8 {
				tst.Errorf("S22[%d][%d] = %v, want 0", i, j, sm.S22.At(i, j))
			}
		}
		want := cmplx.Exp(1i * modes.Q[i] * complex(thickness, 0))
		if cmplx.Abs(sm.S12.At(i, i)-want) > 1e-8 {
			tst.Errorf("S12[%d][%d] = %v, want %v", i, i, sm.S12.At(i, i), want)
		}
	}
}
