// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rsp

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/fermi2018/inkstone/cla"
)

// randSMatrix builds a small-signal S-matrix: off-diagonal blocks dominate
// so that (I - A22 B11) stays well conditioned, keeping the associativity
// check (P6) away from accidental singularities.
func randSMatrix(n int, rng *rand.Rand) *SMatrix {
	blk := func(scale float64) *cla.Matrix {
		m := cla.NewMatrix(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				m.Set(i, j, complex(scale*(rng.Float64()-0.5), scale*(rng.Float64()-0.5)))
			}
		}
		return m
	}
	return &SMatrix{
		S11: blk(0.1),
		S12: blk(0.9),
		S21: blk(0.9),
		S22: blk(0.1),
	}
}

func smatAbsDiff(a, b *SMatrix) float64 {
	max := 0.0
	for _, pair := range [][2]*cla.Matrix{{a.S11, b.S11}, {a.S12, b.S12}, {a.S21, b.S21}, {a.S22, b.S22}} {
		r, c := pair[0].Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				d := cmplx.Abs(pair[0].At(i, j) - pair[1].At(i, j))
				if d > max {
					max = d
				}
			}
		}
	}
	return max
}

func TestRspAssociativity(tst *testing.T) {

	chk.PrintTitle("RspAssociativity. rsp(rsp(A,B),C) == rsp(A,rsp(B,C))  [P6]")

	rng := rand.New(rand.NewSource(1))
	n := 3
	a := randSMatrix(n, rng)
	b := randSMatrix(n, rng)
	c := randSMatrix(n, rng)

	ab, err := Rsp(a, b, [2]int{0, 1})
	if err != nil {
		tst.Fatalf("rsp(A,B) failed: %v", err)
	}
	left, err := Rsp(ab, c, [2]int{0, 2})
	if err != nil {
		tst.Fatalf("rsp(rsp(A,B),C) failed: %v", err)
	}

	bc, err := Rsp(b, c, [2]int{1, 2})
	if err != nil {
		tst.Fatalf("rsp(B,C) failed: %v", err)
	}
	right, err := Rsp(a, bc, [2]int{0, 2})
	if err != nil {
		tst.Fatalf("rsp(A,rsp(B,C)) failed: %v", err)
	}

	if d := smatAbsDiff(left, right); d > 1e-8 {
		tst.Errorf("associativity mismatch: max abs diff = %v", d)
	}
}

func TestRspVacuumIdentity(tst *testing.T) {

	chk.PrintTitle("RspVacuumIdentity. composing with zero-coupling S-matrix is identity-like")

	n := 2
	zero := cla.NewMatrix(n, n, nil)
	ident := cla.Identity(n)
	vacuum := &SMatrix{S11: zero, S12: ident, S21: ident, S22: zero}

	c, err := Rsp(vacuum, vacuum, [2]int{0, 1})
	if err != nil {
		tst.Fatalf("rsp failed: %v", err)
	}
	r, cc := c.S11.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cc; j++ {
			if cmplx.Abs(c.S11.At(i, j)) > 1e-12 {
				tst.Errorf("S11[%d][%d] = %v, want 0", i, j, c.S11.At(i, j))
			}
			if cmplx.Abs(c.S22.At(i, j)) > 1e-12 {
				tst.Errorf("S22[%d][%d] = %v, want 0", i, j, c.S22.At(i, j))
			}
		}
	}
}
