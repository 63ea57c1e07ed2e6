// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package load implements the surface surcharge models (distributed
// and line loads) shared by a single "per-slice additive force"
// contract, per the §9 design note on scalar polymorphism over loads.
package load

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Load is any surface surcharge contributing an additive force to a
// slice of the given width, centred between stripLeft and stripRight.
type Load interface {
	Contribution(stripLeft, stripRight float64) float64
}

// UDL is a uniformly distributed surface pressure.
type UDL struct {
	Magnitude     float64 // p, kPa, >= 0
	Offset        float64 // offset from crest, m, >= 0
	Length        float64 // load length, m; 0 means "extends to the left outer boundary"
	DynamicOffset bool
	Color         string

	// Left, Right are derived crest-surface x coordinates, updated by
	// UpdateCoordinates whenever the boundary changes.
	Left, Right float64
}

// NewUDL validates and builds a UDL.
func NewUDL(magnitude, offset, length float64, dynamicOffset bool) (*UDL, error) {
	if magnitude < 0 {
		return nil, chk.Err("the value for 'load magnitude' should be >= 0, not %v", magnitude)
	}
	if offset < 0 {
		return nil, chk.Err("the value for 'load offset' should be >= 0, not %v", offset)
	}
	if length < 0 {
		return nil, chk.Err("the value for 'length' should be >= 0, not %v", length)
	}
	return &UDL{Magnitude: magnitude, Offset: offset, Length: length, DynamicOffset: dynamicOffset}, nil
}

// UpdateCoordinates recomputes Left/Right from the crest x-coordinate.
func (u *UDL) UpdateCoordinates(crestX float64) {
	right := crestX - u.Offset
	left := 0.0
	if u.Length > 0 {
		left = math.Max(0, right-u.Length)
	}
	u.Left, u.Right = left, right
}

// Contribution implements spec.md §4.L's four-case strip overlap rule.
func (u *UDL) Contribution(stripLeft, stripRight float64) float64 {
	switch {
	case u.Left <= stripLeft && u.Right >= stripRight:
		return (stripRight - stripLeft) * u.Magnitude
	case stripLeft <= u.Left && stripRight >= u.Left:
		return (stripRight - u.Left) * u.Magnitude
	case stripLeft <= u.Right && stripRight >= u.Right:
		return (u.Right - stripLeft) * u.Magnitude
	default:
		return 0
	}
}

// LineLoad is a concentrated surface line load.
type LineLoad struct {
	Magnitude     float64 // q, kN/m, >= 0
	Offset        float64 // offset from crest, m, >= 0
	DynamicOffset bool

	// Coord is the derived crest-surface x coordinate, updated by
	// UpdateCoordinates whenever the boundary changes.
	Coord float64
}

// NewLineLoad validates and builds a LineLoad.
func NewLineLoad(magnitude, offset float64, dynamicOffset bool) (*LineLoad, error) {
	if magnitude < 0 {
		return nil, chk.Err("the value for 'load magnitude' should be >= 0, not %v", magnitude)
	}
	if offset < 0 {
		return nil, chk.Err("the value for 'load offset' should be >= 0, not %v", offset)
	}
	return &LineLoad{Magnitude: magnitude, Offset: offset, DynamicOffset: dynamicOffset}, nil
}

// UpdateCoordinates recomputes Coord from the crest x-coordinate.
func (l *LineLoad) UpdateCoordinates(crestX float64) {
	l.Coord = math.Max(0, crestX-l.Offset)
}

// Contribution adds q exactly once per strip: the half-open interval
// avoids double-counting a line load sitting exactly on a slice
// boundary.
func (l *LineLoad) Contribution(stripLeft, stripRight float64) float64 {
	if stripLeft <= l.Coord && l.Coord < stripRight {
		return l.Magnitude
	}
	return 0
}
