// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

type fakeObserver struct{ notified int }

func (o *fakeObserver) OnMaterialChanged() { o.notified++ }

func TestVacuumReservedAndNotRedefinable(tst *testing.T) {

	chk.PrintTitle("VacuumReservedAndNotRedefinable")

	r := NewRegistry()
	vac, err := r.Get(VacuumName)
	if err != nil {
		tst.Fatalf("vacuum should exist by default: %v", err)
	}
	if !vac.IsVacuum() {
		tst.Errorf("expected IsVacuum() true")
	}
	if _, ok := vac.Epsilon.IsIsotropicScalar(); !ok {
		tst.Errorf("expected vacuum epsilon to be scalar")
	}

	got, err := r.Add(VacuumName, Scalar(4), Scalar(1))
	if err != nil {
		tst.Fatalf("redefining vacuum must be ignored, not error: %v", err)
	}
	if v, _ := got.Epsilon.IsIsotropicScalar(); v != 1 {
		tst.Errorf("vacuum epsilon should remain 1, got %v", v)
	}
}

func TestSetMaterialNotifiesObservers(tst *testing.T) {

	chk.PrintTitle("SetMaterialNotifiesObservers")

	r := NewRegistry()
	m, err := r.Add("silicon", Scalar(12), Scalar(1))
	if err != nil {
		tst.Fatalf("Add failed: %v", err)
	}
	obsA := &fakeObserver{}
	obsB := &fakeObserver{}
	m.Observe(obsA)
	m.Observe(obsB)

	newEps := Scalar(13)
	if err := r.Set("silicon", &newEps, nil); err != nil {
		tst.Fatalf("Set failed: %v", err)
	}
	if obsA.notified != 1 || obsB.notified != 1 {
		tst.Errorf("expected both observers notified once, got %d,%d", obsA.notified, obsB.notified)
	}
	if v, _ := m.Epsilon.IsIsotropicScalar(); v != 13 {
		tst.Errorf("epsilon not updated, got %v", v)
	}
}

func TestGetMissingMaterial(tst *testing.T) {

	chk.PrintTitle("GetMissingMaterial")

	r := NewRegistry()
	_, err := r.Get("unobtainium")
	if err == nil {
		tst.Fatalf("expected error for missing material")
	}
}
