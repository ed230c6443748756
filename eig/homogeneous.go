// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"github.com/fermi2018/inkstone/cla"
)

// Homogeneous solves the modal basis of an unpatterned, isotropic layer in
// closed form: in a homogeneous medium the RCWA eigenproblem decouples per
// harmonic into an s (TE) and a p (TM) polarisation, each with its own
// transverse unit vector and admittance, so no matrix eigendecomposition is
// needed. This is the "runnable without a real eigensolver plugged in"
// fallback the module needs for the vacuum/simple-slab scenarios (§8
// scenarios 1-2); patterned or anisotropic layers must supply their own
// Solver.
type Homogeneous struct {
	Epsilon, Mu complex128 // isotropic scalar epsilon, mu
}

var _ Solver = (*Homogeneous)(nil)

// Solve implements Solver.
func (o *Homogeneous) Solve(ctx Context) (*Modes, error) {
	g := ctx.NumG()
	if g == 0 {
		return nil, chk.Err("eig: Homogeneous.Solve: context has zero harmonics")
	}
	n := 2 * g
	phi := cla.NewMatrix(n, n, nil)
	psi := cla.NewMatrix(n, n, nil)
	q := make([]complex128, n)
	var radCha []int

	// im = (al0, bl0) = (A, B) of layer.ComputeSM taken against the vacuum
	// reference basis (stack.VacuumReference): phi does not depend on
	// epsilon/mu, so W^-1 W0 = I, and V^-1 V0 is diagonal with the ratio of
	// vacuum to layer admittance per mode. For vacuum this is (2I, 0).
	al0 := cla.NewMatrix(n, n, nil)
	bl0 := cla.NewMatrix(n, n, nil)

	for m := 0; m < g; m++ {
		kx := complex(ctx.Kx[m], 0)
		ky := complex(ctx.Ky[m], 0)
		kt2 := kx*kx + ky*ky
		kt := cmplx.Sqrt(kt2)

		// transverse unit vectors: p-hat along the in-plane wavevector,
		// s-hat perpendicular to it (p,s,z right-handed); at normal
		// incidence (kt=0) the direction is conventionally x/y.
		var px, py, sx, sy complex128
		if cmplx.Abs(kt) < 1e-14 {
			px, py = 1, 0
			sx, sy = 0, 1
		} else {
			px, py = kx/kt, ky/kt
			sx, sy = -py, px
		}

		qm := branchSqrt(o.Epsilon*o.Mu*ctx.Omega*ctx.Omega - kt2)
		q0 := branchSqrt(ctx.Omega*ctx.Omega - kt2) // vacuum reference
		q[m] = qm
		q[g+m] = qm
		if isRadiative(qm) {
			radCha = append(radCha, m)
		}

		// psi stores i*H (the convention field.AtDepth's z-component
		// recovery, field.Synthesize's -i factor and field.PowerFlux
		// assume), hence the factor 1i in both admittances below.

		// TE (s-polarised) mode: E along s-hat, H along -p-hat with
		// admittance q/(omega*mu).
		phi.Set(m, m, sx)
		phi.Set(g+m, m, sy)
		yTE := -1i * qm / (ctx.Omega * o.Mu)
		psi.Set(m, m, yTE*px)
		psi.Set(g+m, m, yTE*py)

		// TM (p-polarised) mode: E along p-hat, H along s-hat with
		// admittance omega*eps/q.
		phi.Set(m, g+m, px)
		phi.Set(g+m, g+m, py)
		yTM := 1i * o.Epsilon * ctx.Omega / qm
		psi.Set(m, g+m, yTM*sx)
		psi.Set(g+m, g+m, yTM*sy)

		rTE := o.Mu * q0 / qm        // vacuum/layer TE admittance
		rTM := qm / (o.Epsilon * q0) // vacuum/layer TM admittance
		al0.Set(m, m, 1+rTE)
		bl0.Set(m, m, 1-rTE)
		al0.Set(g+m, g+m, 1+rTM)
		bl0.Set(g+m, g+m, 1-rTM)
	}

	epsZzInv := cla.NewMatrix(g, g, nil)
	muZzInv := cla.NewMatrix(g, g, nil)
	for m := 0; m < g; m++ {
		epsZzInv.Set(m, m, 1/o.Epsilon)
		muZzInv.Set(m, m, 1/o.Mu)
	}

	return &Modes{
		Phi: phi, Psi: psi, Q: q,
		Im:       [2]*cla.Matrix{al0, bl0},
		EpsZzInv: epsZzInv,
		MuZzInv:  muZzInv,
		RadCha:   radCha,
	}, nil
}

// branchSqrt picks the RCWA-conventional branch of sqrt(z): propagating
// waves decay going away from the source, so Im(q) >= 0; ties (purely real
// q, i.e. radiative channels) are broken to the non-negative real root.
func branchSqrt(z complex128) complex128 {
	w := cmplx.Sqrt(z)
	if imag(w) < 0 || (imag(w) == 0 && real(w) < 0) {
		w = -w
	}
	return w
}

// isRadiative reports whether a modal z-wavenumber corresponds to a
// propagating (real, lossless) channel.
func isRadiative(q complex128) bool {
	const tol = 1e-9
	return cmplx.Abs(imag(q)) < tol && real(q) > 0
}
