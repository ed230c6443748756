// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chkc extends gosl/chk's Scalar/Vector/Matrix comparison family to
// complex128 values, mirroring chk's (t, msg, tol, val, correct) calling
// convention and failure-reporting style for the tests in this module.
package chkc

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/fermi2018/inkstone/cla"
)

// Scalar fails the test if |val-correct| > tol.
func Scalar(tst *testing.T, msg string, tol float64, val, correct complex128) {
	if cmplx.Abs(val-correct) > tol {
		tst.Errorf("%s: values are different. %v != %v (tol=%v)", msg, val, correct, tol)
	}
}

// Vector fails the test if any entry of val differs from the matching entry
// of correct by more than tol, or if the lengths differ.
func Vector(tst *testing.T, msg string, tol float64, val, correct []complex128) {
	if len(val) != len(correct) {
		tst.Errorf("%s: vectors have different lengths: %d != %d", msg, len(val), len(correct))
		return
	}
	for i := range val {
		if cmplx.Abs(val[i]-correct[i]) > tol {
			tst.Errorf("%s: vectors differ at [%d]. %v != %v (tol=%v)", msg, i, val[i], correct[i], tol)
		}
	}
}

// Matrix fails the test if any entry of val differs from the matching entry
// of correct by more than tol.
func Matrix(tst *testing.T, msg string, tol float64, val, correct *cla.Matrix) {
	vr, vc := val.Dims()
	cr, cc := correct.Dims()
	if vr != cr || vc != cc {
		tst.Errorf("%s: matrices have different dimensions: (%d,%d) != (%d,%d)", msg, vr, vc, cr, cc)
		return
	}
	for i := 0; i < vr; i++ {
		for j := 0; j < vc; j++ {
			if cmplx.Abs(val.At(i, j)-correct.At(i, j)) > tol {
				tst.Errorf("%s: matrices differ at [%d,%d]. %v != %v (tol=%v)", msg, i, j, val.At(i, j), correct.At(i, j), tol)
			}
		}
	}
}

// PrintOk prints a green confirmation line in gosl/io's colored-output
// style, used after a manual (non-chk.*) comparison block passes.
func PrintOk(format string, args ...interface{}) {
	io.Pfgreen(format+"\n", args...)
}
