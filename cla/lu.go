// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cla

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ErrSingular is returned by Solve/Inverse when the matrix has no LU
// factorisation with the requested pivoting tolerance. In the Redheffer
// kernel this signals an evanescent-coupling resonance (§4.1 of the spec):
// physical, not a bug, so it is returned rather than panicked.
type ErrSingular struct {
	Size int
}

func (e *ErrSingular) Error() string {
	return fmt.Sprintf("cla: matrix of size %d is numerically singular", e.Size)
}

// lu holds an in-place LU decomposition with partial pivoting, complex128
// analogue of the Getrf/Getrs split gonum/lapack64 exposes for float64 (this
// gonum snapshot has no Zgetrf, so it is implemented here).
type lu struct {
	a    *Matrix // overwritten with L (unit diagonal, implicit) and U
	ipiv []int
	n    int
}

const pivotTol = 1e-300

func factorize(m *Matrix) (*lu, error) {
	r, c := m.Dims()
	if r != c {
		panic("cla: factorize: matrix must be square")
	}
	n := r
	a := m.Clone()
	ipiv := make([]int, n)
	for k := 0; k < n; k++ {
		// partial pivot: largest magnitude in column k, rows k..n-1
		piv := k
		best := cmplx.Abs(a.At(k, k))
		for i := k + 1; i < n; i++ {
			v := cmplx.Abs(a.At(i, k))
			if v > best {
				best = v
				piv = i
			}
		}
		ipiv[k] = piv
		if best < pivotTol || math.IsNaN(best) {
			return nil, &ErrSingular{Size: n}
		}
		if piv != k {
			swapRows(a, k, piv)
		}
		pivotVal := a.At(k, k)
		for i := k + 1; i < n; i++ {
			factor := a.At(i, k) / pivotVal
			a.Set(i, k, factor)
			for j := k + 1; j < n; j++ {
				a.Set(i, j, a.At(i, j)-factor*a.At(k, j))
			}
		}
	}
	return &lu{a: a, ipiv: ipiv, n: n}, nil
}

func swapRows(a *Matrix, i, j int) {
	if i == j {
		return
	}
	_, c := a.Dims()
	for k := 0; k < c; k++ {
		vi := a.At(i, k)
		vj := a.At(j, k)
		a.Set(i, k, vj)
		a.Set(j, k, vi)
	}
}

// solveVec solves A x = b given the factorisation of A.
func (f *lu) solveVec(b []complex128) []complex128 {
	n := f.n
	x := make([]complex128, n)
	copy(x, b)
	for k := 0; k < n; k++ {
		if f.ipiv[k] != k {
			x[k], x[f.ipiv[k]] = x[f.ipiv[k]], x[k]
		}
	}
	// forward substitution, unit lower triangular
	for i := 0; i < n; i++ {
		var sum complex128
		for j := 0; j < i; j++ {
			sum += f.a.At(i, j) * x[j]
		}
		x[i] -= sum
	}
	// back substitution, upper triangular
	for i := n - 1; i >= 0; i-- {
		var sum complex128
		for j := i + 1; j < n; j++ {
			sum += f.a.At(i, j) * x[j]
		}
		x[i] = (x[i] - sum) / f.a.At(i, i)
	}
	return x
}

// Solve returns the solution X of A X = B for matrices A (n x n) and B (n x m).
func Solve(a, b *Matrix) (*Matrix, error) {
	f, err := factorize(a)
	if err != nil {
		return nil, err
	}
	br, bc := b.Dims()
	if br != f.n {
		panic("cla: Solve: row count of B must match A")
	}
	out := NewMatrix(br, bc, nil)
	for j := 0; j < bc; j++ {
		x := f.solveVec(b.Col(j))
		for i := 0; i < br; i++ {
			out.Set(i, j, x[i])
		}
	}
	return out, nil
}

// SolveVec returns the solution x of A x = b for a single right-hand side.
func SolveVec(a *Matrix, b []complex128) ([]complex128, error) {
	f, err := factorize(a)
	if err != nil {
		return nil, err
	}
	return f.solveVec(b), nil
}

// Inverse returns A^-1. Equivalent to Solve(a, Identity(n)) but named for
// readability at call sites that want a matrix inverse outright (the
// Redheffer kernel's T1, T2).
func Inverse(a *Matrix) (*Matrix, error) {
	n, _ := a.Dims()
	return Solve(a, Identity(n))
}

// SignLogDet returns the sign (as a unit complex number for complex
// matrices, real ±1 encoded as complex(±1,0) for real-valued ones) and the
// natural log of |det(A)|, overflow-safe by construction since it never
// forms det(A) directly (§4.11).
func SignLogDet(a *Matrix) (sign complex128, logAbsDet float64, err error) {
	f, ferr := factorize(a)
	if ferr != nil {
		if _, ok := ferr.(*ErrSingular); ok {
			// a singular matrix has det 0: ln|det| = -Inf, sign undefined (0)
			return 0, math.Inf(-1), nil
		}
		return 0, 0, ferr
	}
	sign = complex(1, 0)
	logAbsDet = 0
	n := f.n
	parity := 1
	for k := 0; k < n; k++ {
		if f.ipiv[k] != k {
			parity = -parity
		}
		d := f.a.At(k, k)
		mag := cmplx.Abs(d)
		logAbsDet += math.Log(mag)
		sign *= d / complex(mag, 0)
	}
	sign *= complex(float64(parity), 0)
	return sign, logAbsDet, nil
}
