// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack implements the cumulative-product cache (§3, §4.3): the
// two-level structure of per-anchor ordered partial products that lets the
// assembly engine (package assembly) amortise edits instead of rebuilding
// the whole stack's S-matrix from scratch.
package stack

import "github.com/fermi2018/inkstone/rsp"

// Entry is one cached partial product (anchor, end, S[anchor..end]), §4.3.
type Entry struct {
	Anchor int
	End    int
	SM     *rsp.SMatrix
}

// Cache holds both cumulative-product lists: Csms[i] is the ordered list of
// partials anchored at i with strictly increasing End (incident-anchored,
// §3); Csmsr is the mirror list anchored at N-1, with strictly decreasing
// Anchor (output-anchored).
type Cache struct {
	Csms  [][]Entry
	Csmsr []Entry
}

// NewCache returns an empty cache sized for n layers.
func NewCache(n int) *Cache {
	return &Cache{Csms: make([][]Entry, n)}
}

// LastCsms returns the last (highest-End) entry for anchor i, or ok=false if
// none is cached.
func (c *Cache) LastCsms(i int) (Entry, bool) {
	list := c.Csms[i]
	if len(list) == 0 {
		return Entry{}, false
	}
	return list[len(list)-1], true
}

// FindCsmsEndingAtMost returns the cached entry for anchor i with the
// largest End <= limit, the lookup behind §4.7's "start from the largest
// existing end_j <= i" rule. assembly.CalcCsmLayer does not call it: it
// reads the csm cached on each layer instead.
func (c *Cache) FindCsmsEndingAtMost(i, limit int) (Entry, bool) {
	list := c.Csms[i]
	best := -1
	var out Entry
	for _, e := range list {
		if e.End <= limit && e.End > best {
			best = e.End
			out = e
		}
	}
	return out, best >= 0
}

// ExtendCsms appends a new partial product ending at newEnd, provided it is
// strictly greater than the anchor's current last End (§4.3 extend_csms).
func (c *Cache) ExtendCsms(anchor, newEnd int, sm *rsp.SMatrix) {
	if last, ok := c.LastCsms(anchor); ok && newEnd <= last.End {
		panic("stack: ExtendCsms: newEnd must be strictly greater than the last cached End")
	}
	c.Csms[anchor] = append(c.Csms[anchor], Entry{Anchor: anchor, End: newEnd, SM: sm})
}

// TrimCsms drops every entry for anchor i whose End >= jThreshold (§4.3).
func (c *Cache) TrimCsms(i, jThreshold int) {
	list := c.Csms[i]
	kept := list[:0]
	for _, e := range list {
		if e.End < jThreshold {
			kept = append(kept, e)
		}
	}
	c.Csms[i] = kept
}

// LastCsmsr returns the entry with the smallest Anchor (the most-recently
// extended, right-to-left) in the output-anchored mirror list.
func (c *Cache) LastCsmsr() (Entry, bool) {
	if len(c.Csmsr) == 0 {
		return Entry{}, false
	}
	return c.Csmsr[len(c.Csmsr)-1], true
}

// FindCsmsr returns the cached entry anchored exactly at i, if any.
func (c *Cache) FindCsmsr(i int) (Entry, bool) {
	for _, e := range c.Csmsr {
		if e.Anchor == i {
			return e, true
		}
	}
	return Entry{}, false
}

// ExtendCsmsr pushes a new entry anchored at anchor (strictly less than the
// current smallest anchor) onto the mirror list.
func (c *Cache) ExtendCsmsr(anchor int, sm *rsp.SMatrix, n int) {
	if last, ok := c.LastCsmsr(); ok && anchor >= last.Anchor {
		panic("stack: ExtendCsmsr: anchor must be strictly less than the last cached Anchor")
	}
	c.Csmsr = append(c.Csmsr, Entry{Anchor: anchor, End: n - 1, SM: sm})
}

// TrimCsmsr drops every entry whose Anchor <= anchorMax (§4.5: "in csmsr,
// drop entries whose anchor i <= k_max").
func (c *Cache) TrimCsmsr(anchorMax int) {
	kept := c.Csmsr[:0]
	for _, e := range c.Csmsr {
		if e.Anchor > anchorMax {
			kept = append(kept, e)
		}
	}
	c.Csmsr = kept
}

// TrimSpansCovering drops every Csms entry whose span [Anchor,End] covers k
// (Anchor <= k <= End), implementing the I3/§4.5 "drop entries whose span
// passes through k" rule for a single dirty index.
func (c *Cache) TrimSpansCovering(k int) {
	for i := range c.Csms {
		if i > k {
			continue
		}
		c.TrimCsms(i, k)
	}
}
