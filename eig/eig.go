// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eig defines the external-collaborator interface for the per-layer
// eigenproblem (§1 "Out of scope"): producing modal eigenvectors/eigenvalues
// (φ, ψ, q) plus the auxiliary matrices the back-solve and field derivators
// need. The core (assembly, cache, back-solve) only ever consumes a *Modes
// value; how one gets built for a patterned, anisotropic layer is this
// package's caller's problem.
//
// Homogeneous supplies one concrete, closed-form Solver for isotropic
// unpatterned layers (including vacuum), so the rest of the module is
// runnable and testable without a full numerical mode solver plugged in.
package eig

import "github.com/fermi2018/inkstone/cla"

// Context carries everything an eigensolver needs: the in-plane wavevector
// components of the G retained harmonics (constructed by the out-of-scope
// reciprocal-lattice truncation collaborator) and the layer's frequency.
type Context struct {
	Kx, Ky []float64 // length G, one entry per retained harmonic
	Omega  complex128
}

// NumG returns the harmonic count implied by the context.
func (c Context) NumG() int { return len(c.Kx) }

// Modes is the modal data a layer's eigensolver produces (§3 "Layer").
type Modes struct {
	Phi, Psi  *cla.Matrix   // 2G x 2G: mode amplitude -> (Ex,Ey) / (Hx,Hy) Fourier components
	Q         []complex128  // length 2G: modal z-wavenumbers
	Im        [2]*cla.Matrix // (al0, bl0), 2G x 2G, consumed by the back-solve (§4.8)
	EpsZzInv  *cla.Matrix   // G x G: convolution matrix of 1/eps_zz, for E_z reconstruction
	MuZzInv   *cla.Matrix   // G x G: convolution matrix of 1/mu_zz, for H_z reconstruction
	RadCha    []int         // Fourier indices whose q is real (radiative channels)
}

// Solver is the external-collaborator interface: given the harmonics and
// frequency (and, for a real implementation, the layer's pattern and
// convolution matrices — omitted here since pattern rasterisation is out of
// scope, §1), produce the modal data for one layer.
type Solver interface {
	Solve(ctx Context) (*Modes, error)
}
