// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inkstone

import "github.com/fermi2018/inkstone/material"

// AddMaterial registers a new material (§6.1 add_material). Redefining
// "vacuum" is ignored with a warning, not an error (§6.2).
func (ik *Inkstone) AddMaterial(name string, epsilon, mu material.Tensor) (*material.Material, error) {
	return ik.materials.Add(name, epsilon, mu)
}

// SetMaterial mutates an existing material's tensors (§6.1 set_material),
// propagating if_mod to every layer that references it.
func (ik *Inkstone) SetMaterial(name string, epsilon, mu *material.Tensor) error {
	return ik.materials.Set(name, epsilon, mu)
}
