// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Flux holds the order-summed (or per-order, when computed from a single
// harmonic's components) forward/backward Poynting z-flux (§4.10).
type Flux struct {
	SF, SB float64
}

// PowerFlux computes the order-summed forward/backward z-flux by reducing
// each harmonic's PowerFluxOrder with a real-valued sum.
func PowerFlux(c *Components) Flux {
	g := len(c.ExF)
	sf := make([]float64, g)
	sb := make([]float64, g)
	for m := 0; m < g; m++ {
		order := PowerFluxOrder(c, m)
		sf[m] = order.SF
		sb[m] = order.SB
	}
	return Flux{SF: floats.Sum(sf), SB: floats.Sum(sb)}
}

// PowerFluxOrder restricts PowerFlux's summation to a single Fourier order
// index m (§6.1 get_power_flux_by_order), per the spec's symmetric
// cross-term formula:
//
//	s_f = -i/4 . ( Ex*.Hyf - Ey*.Hxf - Hyf*.Ex + Hxf*.Ey )
//	s_b = -i/4 . ( Ex*.Hyb - Ey*.Hxb - Hyb*.Ex + Hxb*.Ey )
//
// The real part is the physical flux.
func PowerFluxOrder(c *Components, m int) Flux {
	ex := c.ExF[m] + c.ExB[m]
	ey := c.EyF[m] + c.EyB[m]
	return Flux{
		SF: real(crossTerm(ex, ey, c.HxF[m], c.HyF[m])),
		SB: real(crossTerm(ex, ey, c.HxB[m], c.HyB[m])),
	}
}

func crossTerm(ex, ey, hx, hy complex128) complex128 {
	return complex(0, -0.25) * (cmplx.Conj(ex)*hy - cmplx.Conj(ey)*hx - cmplx.Conj(hy)*ex + cmplx.Conj(hx)*ey)
}
