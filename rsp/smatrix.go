// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rsp implements the Redheffer star-product algebra (§4.1): the
// stable composition law for scattering matrices of abutted regions, used
// in place of transfer-matrix products which blow up for evanescent modes.
package rsp

import "github.com/fermi2018/inkstone/cla"

// SMatrix is the 4-block complex scattering matrix relating outgoing wave
// amplitudes at both ends of a region to the incoming ones:
// [b_left; a_right] = S . [a_left; b_right].
type SMatrix struct {
	S11, S12, S21, S22 *cla.Matrix
}

// NumG returns the number of retained harmonics implied by the block size.
func (s *SMatrix) NumG() int {
	r, _ := s.S11.Dims()
	return r / 2
}
