// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/fourier"
)

// Synthesize evaluates the plane-wave superposition of a Fourier component
// array at real-space point (x,y): Σ_m F_m exp(i(kx_m x + ky_m y)) (§4.10).
// forH applies the conventional -i factor used for magnetic-field
// synthesis.
func Synthesize(f []complex128, kx, ky []float64, x, y float64, forH bool) complex128 {
	var sum complex128
	for m := range f {
		phase := kx[m]*x + ky[m]*y
		sum += f[m] * cmplx.Exp(complex(0, phase))
	}
	if forH {
		sum *= -1i
	}
	return sum
}

// SynthesizeGrid evaluates Synthesize over every point of an (x,y) grid by
// direct plane-wave summation. The fallback path for any grid/incidence
// combination SynthesizeGridFast cannot accelerate.
func SynthesizeGrid(f []complex128, kx, ky []float64, xs, ys []float64, forH bool) [][]complex128 {
	out := make([][]complex128, len(ys))
	for j, y := range ys {
		row := make([]complex128, len(xs))
		for i, x := range xs {
			row[i] = Synthesize(f, kx, ky, x, y, forH)
		}
		out[j] = row
	}
	return out
}

// commensurateGridSize reports whether xs is a uniformly spaced grid that
// spans exactly one period of a 1D lattice, returning the DFT length to
// use for SynthesizeGridFast.
func commensurateGridSize(period float64, xs []float64) (n int, ok bool) {
	if len(xs) < 2 || period <= 0 {
		return 0, false
	}
	step := xs[1] - xs[0]
	if step <= 0 {
		return 0, false
	}
	for i := 1; i < len(xs); i++ {
		if math.Abs((xs[i]-xs[i-1])-step) > 1e-9*step {
			return 0, false
		}
	}
	span := float64(len(xs)) * step
	if math.Abs(span-period) > 1e-6*period {
		return 0, false
	}
	return len(xs), true
}

// SynthesizeGridFast synthesizes a real-space row via an inverse FFT
// instead of direct plane-wave summation, applicable only for a 1D
// lattice at normal incidence (kx0=ky0=0, so every order has ky=0 and the
// field is y-invariant) sampled on a grid commensurate with the lattice
// period. orderM holds the harmonic order (not the index) backing each
// entry of f, used to place it in its DFT bin. Falls back to
// SynthesizeGrid whenever any of these conditions fail.
func SynthesizeGridFast(f []complex128, orderM []int, period, kx0, ky0 float64, kx, ky, xs, ys []float64, forH bool) [][]complex128 {
	if kx0 != 0 || ky0 != 0 {
		return SynthesizeGrid(f, kx, ky, xs, ys, forH)
	}
	for _, kym := range ky {
		if kym != 0 {
			return SynthesizeGrid(f, kx, ky, xs, ys, forH)
		}
	}
	n, ok := commensurateGridSize(period, xs)
	if !ok {
		return SynthesizeGrid(f, kx, ky, xs, ys, forH)
	}

	bins := make([]complex128, n)
	x0 := xs[0]
	for i, m := range orderM {
		bin := ((m % n) + n) % n
		// Synthesize's phase convention is exp(i*kx*x) with absolute x, so
		// an offset grid origin needs its own phase correction here.
		bins[bin] += f[i] * cmplx.Exp(complex(0, float64(m)*2*math.Pi*x0/period))
	}
	row := fourier.NewCmplxFFT(n).IFFT(nil, bins)
	if forH {
		for i := range row {
			row[i] *= -1i
		}
	}
	out := make([][]complex128, len(ys))
	for j := range ys {
		out[j] = append([]complex128(nil), row...)
	}
	return out
}
