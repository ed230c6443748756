// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lattice provides a minimal, concrete stand-in for the
// reciprocal-lattice truncation collaborator that §1 of the design
// declares out of scope: given a real-space lattice and a target harmonic
// count, it enumerates the retained (m, n) orders and the in-plane
// wavevector (Kx, Ky) of each: consecutive orders around m = 0 for a 1D
// lattice, and for a 2D lattice the orders of smallest reciprocal-vector
// magnitude (the usual "circular" truncation). A real implementation
// would also need Gibbs-correct convolution matrices for patterned
// layers; this package only produces the plane-wave basis itself, which
// is what eig.Context needs.
package lattice

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Order is one retained reciprocal-lattice harmonic.
type Order struct {
	M, N int
}

// Lattice is a real-space 1D or 2D periodicity.
type Lattice struct {
	Vec1, Vec2 [2]float64
	Is1D       bool
}

// New1D returns a 1D lattice of the given period along x.
func New1D(period float64) Lattice {
	return Lattice{Vec1: [2]float64{period, 0}, Is1D: true}
}

// New2D returns a 2D lattice spanned by vec1, vec2.
func New2D(vec1, vec2 [2]float64) Lattice {
	return Lattice{Vec1: vec1, Vec2: vec2}
}

// reciprocal returns the 2D reciprocal lattice vectors b1, b2 such that
// a_i . b_j = 2*pi*delta_ij.
func (l Lattice) reciprocal() (b1, b2 [2]float64) {
	if l.Is1D {
		period := math.Hypot(l.Vec1[0], l.Vec1[1])
		return [2]float64{2 * math.Pi / period, 0}, [2]float64{0, 0}
	}
	a1, a2 := l.Vec1, l.Vec2
	cross := a1[0]*a2[1] - a1[1]*a2[0]
	if math.Abs(cross) < 1e-300 {
		chk.Panic("lattice: Vec1 and Vec2 must not be parallel")
	}
	f := 2 * math.Pi / cross
	b1 = [2]float64{f * a2[1], -f * a2[0]}
	b2 = [2]float64{-f * a1[1], f * a1[0]}
	return
}

// Harmonics returns exactly numG retained orders (numG < 1 counts as 1).
// For a 1D lattice these are the consecutive orders starting at
// m = -(numG-1)/2 (integer division), in increasing m. For a 2D lattice
// they are the numG orders of smallest |m*b1 + n*b2|, sorted by increasing
// magnitude; ties at the truncation boundary are cut, not kept, and orders
// of equal magnitude come in no defined order.
func (l Lattice) Harmonics(numG int) []Order {
	if numG < 1 {
		numG = 1
	}
	if l.Is1D {
		half := (numG - 1) / 2
		var out []Order
		for m := -half; m <= numG-1-half; m++ {
			out = append(out, Order{M: m})
		}
		return out
	}

	b1, b2 := l.reciprocal()
	bound := int(math.Ceil(math.Sqrt(float64(numG)))) + 2
	type cand struct {
		o   Order
		mag float64
	}
	var cands []cand
	for m := -bound; m <= bound; m++ {
		for n := -bound; n <= bound; n++ {
			kx := float64(m)*b1[0] + float64(n)*b2[0]
			ky := float64(m)*b1[1] + float64(n)*b2[1]
			cands = append(cands, cand{Order{M: m, N: n}, math.Hypot(kx, ky)})
		}
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].mag < cands[j].mag })
	if len(cands) > numG {
		cands = cands[:numG]
	}
	out := make([]Order, len(cands))
	for i, c := range cands {
		out[i] = c.o
	}
	return out
}

// Kxy returns the in-plane wavevector of order o given the incident
// zeroth-order wavevector (kx0, ky0).
func (l Lattice) Kxy(o Order, kx0, ky0 float64) (kx, ky float64) {
	if l.Is1D {
		b1, _ := l.reciprocal()
		return kx0 + float64(o.M)*b1[0], ky0
	}
	b1, b2 := l.reciprocal()
	kx = kx0 + float64(o.M)*b1[0] + float64(o.N)*b2[0]
	ky = ky0 + float64(o.M)*b1[1] + float64(o.N)*b2[1]
	return
}
