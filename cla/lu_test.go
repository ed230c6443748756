// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cla

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestSolveIdentity(tst *testing.T) {

	chk.PrintTitle("SolveIdentity. A x = b with A = I")

	n := 4
	a := Identity(n)
	b := []complex128{1 + 1i, 2, 3i, -4}
	x, err := SolveVec(a, b)
	if err != nil {
		tst.Fatalf("SolveVec failed: %v", err)
	}
	for i := 0; i < n; i++ {
		if cmplx.Abs(x[i]-b[i]) > 1e-12 {
			tst.Errorf("x[%d]=%v, want %v", i, x[i], b[i])
		}
	}
}

func TestSolveRoundTrip(tst *testing.T) {

	chk.PrintTitle("SolveRoundTrip. Solve(A,b) then Mul(A,x) recovers b")

	a := NewMatrix(3, 3, []complex128{
		2, 1i, 0,
		0, 3, 1,
		1, 0, 4 + 1i,
	})
	b := []complex128{1, 2i, 3}
	x, err := SolveVec(a, b)
	if err != nil {
		tst.Fatalf("SolveVec failed: %v", err)
	}
	got := a.MulVec(x)
	for i := range b {
		if cmplx.Abs(got[i]-b[i]) > 1e-9 {
			tst.Errorf("A*x [%d] = %v, want %v", i, got[i], b[i])
		}
	}
}

func TestInverseSingular(tst *testing.T) {

	chk.PrintTitle("InverseSingular. singular matrix reports ErrSingular")

	a := NewMatrix(2, 2, []complex128{1, 1, 1, 1})
	_, err := Inverse(a)
	if err == nil {
		tst.Fatalf("expected ErrSingular, got nil")
	}
	if _, ok := err.(*ErrSingular); !ok {
		tst.Fatalf("expected *ErrSingular, got %T", err)
	}
}

func TestSignLogDetVacuum(tst *testing.T) {

	chk.PrintTitle("SignLogDetVacuum. det(I) = 1")

	n := 5
	sign, logAbsDet, err := SignLogDet(Identity(n))
	if err != nil {
		tst.Fatalf("SignLogDet failed: %v", err)
	}
	if cmplx.Abs(sign-1) > 1e-12 {
		tst.Errorf("sign = %v, want 1", sign)
	}
	if logAbsDet > 1e-12 || logAbsDet < -1e-12 {
		tst.Errorf("logAbsDet = %v, want 0", logAbsDet)
	}
}
