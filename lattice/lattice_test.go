// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestHarmonics1DCount(t *testing.T) {
	chk.PrintTitle("1D lattice: harmonic count and the zeroth order retained")
	l := New1D(1.0)
	orders := l.Harmonics(9)
	if len(orders) != 9 {
		t.Fatalf("expected 9 orders, got %d", len(orders))
	}
	found0 := false
	for _, o := range orders {
		if o.M == 0 {
			found0 = true
		}
	}
	if !found0 {
		t.Fatalf("expected the zeroth order to be retained")
	}
}

func TestHarmonics2DIncludesOrigin(t *testing.T) {
	chk.PrintTitle("2D lattice: the zeroth order is always closest to the origin")
	l := New2D([2]float64{1, 0}, [2]float64{0, 1})
	orders := l.Harmonics(9)
	if orders[0].M != 0 || orders[0].N != 0 {
		t.Fatalf("expected (0,0) to be the lowest-magnitude order, got %+v", orders[0])
	}
}

func TestKxyZerothOrderIsIncidentWavevector(t *testing.T) {
	chk.PrintTitle("zeroth order reproduces the incident in-plane wavevector")
	l := New1D(1.0)
	kx, ky := l.Kxy(Order{M: 0}, 0.3, 0.1)
	if kx != 0.3 || ky != 0.1 {
		t.Fatalf("expected (0.3,0.1), got (%v,%v)", kx, ky)
	}
}
