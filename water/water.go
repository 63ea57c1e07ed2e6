// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package water implements the (simplified, conservative) phreatic
// surface used for pore-pressure reduction: horizontal at RL_w left of
// the toe, following the ground surface elsewhere.
package water

import "github.com/cpmech/gosl/chk"

// GravityUnitWeight is the unit weight of water, kN/m³ (9.81).
const GravityUnitWeight = 9.81

// Table is an optional water table elevation.
type Table struct {
	RL float64 // elevation, clamped into [0, crestY] at construction
}

// New validates depth (measured down from the crest) and builds the
// water table, mirroring set_water_table.
func New(depthFromCrest, crestY float64) (*Table, error) {
	if depthFromCrest < 0 {
		return nil, chk.Err("the value for 'water depth' should be >= 0, not %v", depthFromCrest)
	}
	rl := crestY - depthFromCrest
	if rl < 0 {
		rl = 0
	}
	return &Table{RL: rl}, nil
}

// HeadFactor resolves the §4.W effective head-reduction multiplier: H
// (the option) when the slice centre lies between the point where the
// water table meets the ground surface and the toe, 1 elsewhere.
func HeadFactor(sliceCenterX, waterMeetsGroundX, toeX, optionH float64) float64 {
	if waterMeetsGroundX < sliceCenterX && sliceCenterX < toeX {
		return optionH
	}
	return 1
}

// PoreForce computes U for a slice with inclined/horizontal base length
// ell, base elevation yBottom, top elevation yTop, per spec.md §4.W.
// Returns 0 if t is nil (no water table set).
func (t *Table) PoreForce(yTop, yBottom, ell, headFactor float64) float64 {
	if t == nil {
		return 0
	}
	head := t.RL
	if yTop < head {
		head = yTop
	}
	head -= yBottom
	if head < 0 {
		head = 0
	}
	return head * GravityUnitWeight * ell * headFactor
}
