// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material implements the materials registry (§6.1 add_material /
// set_material), generalising gofem/mdl/generic's name-to-model registry to
// a name-to-*Material map with observer propagation: mutating a material
// must mark every layer that references it dirty (§9 "state propagation
// across shared modal data").
package material

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Tensor is a 3x3 complex permittivity or permeability tensor.
type Tensor [3][3]complex128

// Scalar returns an isotropic tensor with value v on the diagonal.
func Scalar(v complex128) Tensor {
	return Tensor{
		{v, 0, 0},
		{0, v, 0},
		{0, 0, v},
	}
}

// Diagonal returns a diagonal (biaxial) tensor.
func Diagonal(xx, yy, zz complex128) Tensor {
	return Tensor{
		{xx, 0, 0},
		{0, yy, 0},
		{0, 0, zz},
	}
}

// IsIsotropicScalar reports whether the tensor is a uniform scalar times I,
// the case the closed-form eig.Homogeneous solver requires.
func (t Tensor) IsIsotropicScalar() (complex128, bool) {
	v := t[0][0]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex(0, 0)
			if i == j {
				want = v
			}
			if t[i][j] != want {
				return 0, false
			}
		}
	}
	return v, true
}

// VacuumName is the reserved material name; redefining it is ignored with a
// warning (§6.2).
const VacuumName = "vacuum"

// Observer is notified when a material it depends on mutates. Layers that
// reference a material (directly or via add_layer_copy's shared original)
// register themselves as observers.
type Observer interface {
	OnMaterialChanged()
}

// Material holds the anisotropic dielectric/magnetic tensors of a
// background or inclusion medium, plus the observer list that
// set_material must notify (§9).
type Material struct {
	Name      string
	Epsilon   Tensor
	Mu        Tensor
	observers []Observer
}

// IsVacuum reports whether this is the reserved vacuum material.
func (m *Material) IsVacuum() bool { return m.Name == VacuumName }

// Observe registers o to be notified of future mutations of m.
func (m *Material) Observe(o Observer) {
	m.observers = append(m.observers, o)
}

func (m *Material) notify() {
	for _, o := range m.observers {
		o.OnMaterialChanged()
	}
}

// Registry is the name -> *Material database for one simulation, with
// "vacuum" pre-registered and protected.
type Registry struct {
	byName map[string]*Material
}

// NewRegistry returns a registry with the reserved vacuum material seeded.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]*Material)}
	r.byName[VacuumName] = &Material{
		Name:    VacuumName,
		Epsilon: Scalar(1),
		Mu:      Scalar(1),
	}
	return r
}

// Add registers a new material (§6.1 add_material). Redefining "vacuum" is
// ignored with a warning rather than failing, per §6.2.
func (r *Registry) Add(name string, epsilon, mu Tensor) (*Material, error) {
	if name == VacuumName {
		io.Pfyel("warning: redefining reserved material %q is ignored\n", VacuumName)
		return r.byName[VacuumName], nil
	}
	if _, exists := r.byName[name]; exists {
		return nil, chk.Err("material %q already exists", name)
	}
	m := &Material{Name: name, Epsilon: epsilon, Mu: mu}
	r.byName[name] = m
	return m, nil
}

// Get looks up a material by name (NotFound, §7: returned as an error; the
// inkstone facade passes it on to its caller as an error, without a
// warning).
func (r *Registry) Get(name string) (*Material, error) {
	m, ok := r.byName[name]
	if !ok {
		return nil, chk.Err("material %q not found", name)
	}
	return m, nil
}

// Set mutates an existing material's tensors and notifies every observer
// (§6.1 set_material, §9 propagation), except for "vacuum" which cannot be
// mutated.
func (r *Registry) Set(name string, epsilon, mu *Tensor) error {
	if name == VacuumName {
		io.Pfyel("warning: mutating reserved material %q is ignored\n", VacuumName)
		return nil
	}
	m, err := r.Get(name)
	if err != nil {
		return err
	}
	if epsilon != nil {
		m.Epsilon = *epsilon
	}
	if mu != nil {
		m.Mu = *mu
	}
	m.notify()
	return nil
}
