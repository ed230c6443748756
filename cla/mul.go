// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cla

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// Mul returns a*b using the complex128 BLAS-3 Gemm routine, mirroring the
// way gofem hands dense blocks to gosl/la rather than looping by hand.
func Mul(a, b *Matrix) *Matrix {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic("cla: Mul: inner dimensions do not match")
	}
	ga := cblas128.General{Rows: ar, Cols: ac, Stride: ac, Data: toRowMajor(a)}
	gb := cblas128.General{Rows: br, Cols: bc, Stride: bc, Data: toRowMajor(b)}
	gc := cblas128.General{Rows: ar, Cols: bc, Stride: bc, Data: make([]complex128, ar*bc)}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, ga, gb, 0, gc)
	out := NewMatrix(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			out.Set(i, j, gc.Data[i*bc+j])
		}
	}
	return out
}

func toRowMajor(m *Matrix) []complex128 {
	r, c := m.Dims()
	out := make([]complex128, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i*c+j] = m.At(i, j)
		}
	}
	return out
}
