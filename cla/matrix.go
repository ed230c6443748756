// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cla implements the dense complex linear algebra this module needs:
// allocation, multiplication, LU factorisation/solve, inversion and
// sign-log-determinant. gosl/la only allocates real dense matrices and this
// gonum snapshot has no complex128 LAPACK, so cla fills the gap, following
// gosl/la's allocation style (MatAlloc) and gonum/mat's Dims/At/Set storage
// conventions.
package cla

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense complex128 matrix backed by mat.CDense.
type Matrix struct {
	d *mat.CDense
}

// NewMatrix allocates a r x c matrix. If data is nil the matrix is zeroed.
func NewMatrix(r, c int, data []complex128) *Matrix {
	return &Matrix{d: mat.NewCDense(r, c, data)}
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	o := NewMatrix(n, n, nil)
	for i := 0; i < n; i++ {
		o.Set(i, i, 1)
	}
	return o
}

// Dims returns the row and column count.
func (o *Matrix) Dims() (r, c int) { return o.d.Dims() }

// At returns the (i,j) entry.
func (o *Matrix) At(i, j int) complex128 { return o.d.At(i, j) }

// Set assigns the (i,j) entry.
func (o *Matrix) Set(i, j int, v complex128) { o.d.Set(i, j, v) }

// Clone returns a deep copy.
func (o *Matrix) Clone() *Matrix {
	r, c := o.Dims()
	out := NewMatrix(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, o.At(i, j))
		}
	}
	return out
}

// Add returns o + b, element-wise. Panics on mismatched dimensions.
func (o *Matrix) Add(b *Matrix) *Matrix {
	r, c := o.Dims()
	br, bc := b.Dims()
	if r != br || c != bc {
		chk.Panic("cla: Add: dimensions do not match: (%d,%d) vs (%d,%d)", r, c, br, bc)
	}
	out := NewMatrix(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, o.At(i, j)+b.At(i, j))
		}
	}
	return out
}

// Scale returns s*o.
func (o *Matrix) Scale(s complex128) *Matrix {
	r, c := o.Dims()
	out := NewMatrix(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, s*o.At(i, j))
		}
	}
	return out
}

// Col returns column j as a fresh slice.
func (o *Matrix) Col(j int) []complex128 {
	r, _ := o.Dims()
	out := make([]complex128, r)
	for i := 0; i < r; i++ {
		out[i] = o.At(i, j)
	}
	return out
}

// MulVec returns o * v.
func (o *Matrix) MulVec(v []complex128) []complex128 {
	r, c := o.Dims()
	if len(v) != c {
		chk.Panic("cla: MulVec: length mismatch: matrix has %d columns, vector has %d entries", c, len(v))
	}
	out := make([]complex128, r)
	for i := 0; i < r; i++ {
		var sum complex128
		for k := 0; k < c; k++ {
			sum += o.At(i, k) * v[k]
		}
		out[i] = sum
	}
	return out
}

// Diag builds a diagonal matrix from v.
func Diag(v []complex128) *Matrix {
	n := len(v)
	out := NewMatrix(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, v[i])
	}
	return out
}
