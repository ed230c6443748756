// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inkstone

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fermi2018/inkstone/amplitude"
	"github.com/fermi2018/inkstone/field"
	"github.com/fermi2018/inkstone/layer"
	"gonum.org/v1/gonum/cmplxs"
)

// Amplitudes holds the Fourier-basis forward/backward field components
// returned by GetAmplitudesByOrder (§6.1), restricted to the requested
// orders.
type Amplitudes struct {
	ExF, EyF, EzF, HxF, HyF, HzF []complex128
	ExB, EyB, EzB, HxB, HyB, HzB []complex128
}

func (ik *Inkstone) resolveLayer(name string) (*layer.Layer, int, error) {
	l, ok := ik.byName[name]
	if !ok {
		io.Pfyel("warning: layer %q not found\n", name)
		return nil, -1, chk.Err("inkstone: layer %q not found", name)
	}
	for i, x := range ik.layers {
		if x == l {
			return l, i, nil
		}
	}
	return l, -1, nil
}

// componentsAt runs solve() if needed, the layer's al/bl back-solve, and
// returns its Fourier field components at depth z. Warns (§6.2) rather
// than failing if z falls outside [0, thickness].
func (ik *Inkstone) componentsAt(name string, z float64) (*field.Components, error) {
	l, i, err := ik.resolveLayer(name)
	if err != nil {
		return nil, err
	}
	if err := ik.solve(); err != nil {
		return nil, err
	}
	if err := amplitude.CalcAlBlLayer(ik.stack, i); err != nil {
		return nil, err
	}
	if z < 0 || z > l.Thickness {
		io.Pfyel("warning: requesting fields of layer %q at a position outside the layer: fields may diverge\n", name)
	}
	return field.AtDepth(l, ik.stack.Ctx, z)
}

// GetAmplitudesByOrder implements §6.1 get_amplitudes_by_order: the
// Fourier-basis forward/backward field components at depth z, restricted
// to the given harmonic order indices (indices into the retained-harmonic
// list, not (m,n) pairs).
func (ik *Inkstone) GetAmplitudesByOrder(name string, z float64, orderIdx []int) (*Amplitudes, error) {
	c, err := ik.componentsAt(name, z)
	if err != nil {
		return nil, err
	}
	pick := func(v []complex128) []complex128 {
		out := make([]complex128, len(orderIdx))
		for i, idx := range orderIdx {
			out[i] = v[idx]
		}
		return out
	}
	return &Amplitudes{
		ExF: pick(c.ExF), EyF: pick(c.EyF), EzF: pick(c.EzF),
		HxF: pick(c.HxF), HyF: pick(c.HyF), HzF: pick(c.HzF),
		ExB: pick(c.ExB), EyB: pick(c.EyB), EzB: pick(c.EzB),
		HxB: pick(c.HxB), HyB: pick(c.HyB), HzB: pick(c.HzB),
	}, nil
}

// GetLayerFieldsListPoints implements §6.1: real-space (Ex,Ey,Ez,Hx,Hy,Hz)
// at a list of (x,y) points, one z per point, within one named layer.
func (ik *Inkstone) GetLayerFieldsListPoints(name string, xy [][2]float64, z []float64) ([][6]complex128, error) {
	if len(xy) != len(z) {
		return nil, chk.Err("inkstone: GetLayerFieldsListPoints: xy and z must have the same length")
	}
	out := make([][6]complex128, len(xy))
	for i := range xy {
		c, err := ik.componentsAt(name, z[i])
		if err != nil {
			return nil, err
		}
		out[i] = synthesizePoint(ik, c, xy[i][0], xy[i][1])
	}
	return out, nil
}

// GetLayerFields implements §6.1: real-space fields over the outer
// product of x_range, y_range, z_range within one named layer, shaped
// (ny, nx, nz) per component. Each z-depth's grid is synthesized in one
// batched pass (field.SynthesizeGridFast when the grid is commensurate
// with a 1D lattice at normal incidence, field.SynthesizeGrid otherwise)
// rather than point by point.
func (ik *Inkstone) GetLayerFields(name string, xRange, yRange, zRange []float64) ([][][][6]complex128, error) {
	ny, nx, nz := len(yRange), len(xRange), len(zRange)
	out := make([][][][6]complex128, ny)
	for jy := 0; jy < ny; jy++ {
		out[jy] = make([][][6]complex128, nx)
		for ix := 0; ix < nx; ix++ {
			out[jy][ix] = make([][6]complex128, nz)
		}
	}
	orderM := ik.orderMs()
	period, kx0, ky0 := ik.gridSynthesisParams()
	for iz, z := range zRange {
		c, err := ik.componentsAt(name, z)
		if err != nil {
			return nil, err
		}
		grid := synthesizeGrid6(ik, c, orderM, period, kx0, ky0, xRange, yRange)
		for jy := 0; jy < ny; jy++ {
			for ix := 0; ix < nx; ix++ {
				out[jy][ix][iz] = grid[jy][ix]
			}
		}
	}
	return out, nil
}

// orderMs returns the harmonic order index (the M of each retained
// lattice.Order, not the slice index) backing each entry of ik.stack.Ctx's
// Kx/Ky, in the same order, for use by field.SynthesizeGridFast.
func (ik *Inkstone) orderMs() []int {
	orders := ik.harmonics()
	out := make([]int, len(orders))
	for i, o := range orders {
		out[i] = o.M
	}
	return out
}

// gridSynthesisParams returns the 1D lattice period (0 if the lattice is
// 2D, which disables the fast grid path) and the incident zeroth-order
// wavevector.
func (ik *Inkstone) gridSynthesisParams() (period, kx0, ky0 float64) {
	kx0, ky0 = ik.incidentKxKy()
	if ik.lattice.Is1D {
		period = ik.lattice.Vec1[0]
	}
	return
}

// synthesizeGrid6 batches the six real-space field components over one
// (x,y) grid at a single depth.
func synthesizeGrid6(ik *Inkstone, c *field.Components, orderM []int, period, kx0, ky0 float64, xs, ys []float64) [][][6]complex128 {
	kx, ky := ik.stack.Ctx.Kx, ik.stack.Ctx.Ky
	combine := func(f, b []complex128, forH bool) [][]complex128 {
		sum := cmplxs.AddTo(make([]complex128, len(f)), f, b)
		if period > 0 {
			return field.SynthesizeGridFast(sum, orderM, period, kx0, ky0, kx, ky, xs, ys, forH)
		}
		return field.SynthesizeGrid(sum, kx, ky, xs, ys, forH)
	}
	ex := combine(c.ExF, c.ExB, false)
	ey := combine(c.EyF, c.EyB, false)
	ez := combine(c.EzF, c.EzB, false)
	hx := combine(c.HxF, c.HxB, true)
	hy := combine(c.HyF, c.HyB, true)
	hz := combine(c.HzF, c.HzB, true)

	ny, nx := len(ys), len(xs)
	out := make([][][6]complex128, ny)
	for jy := 0; jy < ny; jy++ {
		out[jy] = make([][6]complex128, nx)
		for ix := 0; ix < nx; ix++ {
			out[jy][ix] = [6]complex128{ex[jy][ix], ey[jy][ix], ez[jy][ix], hx[jy][ix], hy[jy][ix], hz[jy][ix]}
		}
	}
	return out
}

func synthesizePoint(ik *Inkstone, c *field.Components, x, y float64) [6]complex128 {
	kx, ky := ik.stack.Ctx.Kx, ik.stack.Ctx.Ky
	sumE := func(f, b []complex128) complex128 {
		return field.Synthesize(cmplxs.AddTo(make([]complex128, len(f)), f, b), kx, ky, x, y, false)
	}
	sumH := func(f, b []complex128) complex128 {
		return field.Synthesize(cmplxs.AddTo(make([]complex128, len(f)), f, b), kx, ky, x, y, true)
	}
	return [6]complex128{
		sumE(c.ExF, c.ExB), sumE(c.EyF, c.EyB), sumE(c.EzF, c.EzB),
		sumH(c.HxF, c.HxB), sumH(c.HyF, c.HyB), sumH(c.HzF, c.HzB),
	}
}

// layerAtGlobalZ finds which layer a global z (measured from the top of
// the incident half-space, thickness 0) falls into, and the local z
// within that layer, by binary search over cumulative thickness (§6.1
// get_fields "layer boundaries are located by cumulative-thickness binary
// search").
func (ik *Inkstone) layerAtGlobalZ(z float64) (name string, localZ float64) {
	cum := make([]float64, len(ik.layers)+1)
	for i, l := range ik.layers {
		t := l.Thickness
		if i == 0 || i == len(ik.layers)-1 {
			t = 0
		}
		cum[i+1] = cum[i] + t
	}
	idx := sort.Search(len(cum)-1, func(i int) bool { return cum[i+1] >= z })
	if idx >= len(ik.layers) {
		idx = len(ik.layers) - 1
	}
	return ik.layers[idx].Name, z - cum[idx]
}

// GetFieldsListPoints implements §6.1 get_fields_list_points: like
// GetLayerFieldsListPoints but z is interpreted globally across the whole
// stack.
func (ik *Inkstone) GetFieldsListPoints(xy [][2]float64, z []float64) ([][6]complex128, error) {
	out := make([][6]complex128, len(xy))
	for i := range xy {
		name, lz := ik.layerAtGlobalZ(z[i])
		c, err := ik.componentsAt(name, lz)
		if err != nil {
			return nil, err
		}
		out[i] = synthesizePoint(ik, c, xy[i][0], xy[i][1])
	}
	return out, nil
}

// GetFields implements §6.1 get_fields: like GetLayerFields, across the
// whole stack with globally interpreted z.
func (ik *Inkstone) GetFields(xRange, yRange, zRange []float64) ([][][][6]complex128, error) {
	ny, nx, nz := len(yRange), len(xRange), len(zRange)
	out := make([][][][6]complex128, ny)
	for jy := 0; jy < ny; jy++ {
		out[jy] = make([][][6]complex128, nx)
		for ix := 0; ix < nx; ix++ {
			out[jy][ix] = make([][6]complex128, nz)
		}
	}
	orderM := ik.orderMs()
	period, kx0, ky0 := ik.gridSynthesisParams()
	for iz, z := range zRange {
		name, lz := ik.layerAtGlobalZ(z)
		c, err := ik.componentsAt(name, lz)
		if err != nil {
			return nil, err
		}
		grid := synthesizeGrid6(ik, c, orderM, period, kx0, ky0, xRange, yRange)
		for jy := 0; jy < ny; jy++ {
			for ix := 0; ix < nx; ix++ {
				out[jy][ix][iz] = grid[jy][ix]
			}
		}
	}
	return out, nil
}

// GetPowerFlux implements §6.1 get_power_flux: order-summed forward and
// backward z-flux at depth z within a named layer.
func (ik *Inkstone) GetPowerFlux(name string, z float64) (sf, sb float64, err error) {
	c, err := ik.componentsAt(name, z)
	if err != nil {
		return 0, 0, err
	}
	flux := field.PowerFlux(c)
	return flux.SF, flux.SB, nil
}

// GetPowerFluxByOrder implements §6.1 get_power_flux_by_order: per-order
// forward and backward z-flux at depth z.
func (ik *Inkstone) GetPowerFluxByOrder(name string, orderIdx int, z float64) (sf, sb float64, err error) {
	c, err := ik.componentsAt(name, z)
	if err != nil {
		return 0, 0, err
	}
	flux := field.PowerFluxOrder(c, orderIdx)
	return flux.SF, flux.SB, nil
}

// GetSMatrixDet implements §6.1 get_smatrix_det: sign and ln|det| of the
// assembled S-matrix restricted to the requested channel subset (§4.11).
func (ik *Inkstone) GetSMatrixDet(sel field.ChannelSelection) (sign complex128, logAbsDet float64, err error) {
	if err := ik.solve(); err != nil {
		return 0, 0, err
	}
	incident := ik.layers[0]
	output := ik.layers[len(ik.layers)-1]
	return field.GetSMatrixDet(ik.stack.SM, sel, incident.Modes.RadCha, output.Modes.RadCha)
}
