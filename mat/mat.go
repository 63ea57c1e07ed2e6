// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat implements the layered soil-strata stack: materials
// ordered by depth, per-depth property lookup, and per-column weight
// integration across layer boundaries.
package mat

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// palette cycles deterministic display colours for materials without a
// user-assigned one, mirroring the original model's MATERIAL_COLORS.
var palette = []string{
	"#efa59c", "#77e1ca", "#cdacfc", "#f2c6a7", "#7edff4",
	"#f2a8c3", "#cde9ba", "#f2c1fa", "#f1dba3", "#a3acf7",
}

// Material is one geological unit.
type Material struct {
	UnitWeight     float64 // γ, kN/m³, 1 <= γ <= 50
	FrictionAngle  float64 // φ, degrees, >= 0
	Cohesion       float64 // c, kPa, >= 0
	DepthToBottom  float64 // d, m, >= 0 from the crest downward
	Name           string
	Color          string
	UserColor      string // the caller-supplied color, if any, kept separate from the assigned one

	// RL is the absolute elevation of the layer's bottom; assigned by
	// Stack.Add once the crest elevation is known.
	RL float64
}

// NewMaterial validates and builds a Material, applying the same
// sign-folding the original does for negative cohesion/depth inputs.
func NewMaterial(unitWeight, frictionAngle, cohesion, depthToBottom float64, name, color string) (*Material, error) {
	if unitWeight < 1 || unitWeight > 50 {
		return nil, chk.Err("the value for 'unit_weight' should be in [1, 50], not %v", unitWeight)
	}
	if frictionAngle < 0 {
		return nil, chk.Err("the value for 'friction_angle' should be >= 0, not %v", frictionAngle)
	}
	m := &Material{
		UnitWeight:    unitWeight,
		FrictionAngle: frictionAngle,
		Cohesion:      abs(cohesion),
		DepthToBottom: abs(depthToBottom),
		Name:          name,
		Color:         color,
		UserColor:     color,
	}
	return m, nil
}

// NewMaterialFromPrms builds a Material from a named parameter list, the
// same fun.Prms convention the teacher's constitutive models use for
// Init(ndim, pstress, prms) — for callers (e.g. a file-format decoder)
// that hand the evaluator a flexible parameter bag rather than fixed
// positional arguments. Recognised names: "gam", "phi", "c", "dtb".
func NewMaterialFromPrms(prms fun.Prms, name, color string) (*Material, error) {
	var unitWeight, frictionAngle, cohesion, depthToBottom float64
	for _, p := range prms {
		switch p.N {
		case "gam":
			unitWeight = p.V
		case "phi":
			frictionAngle = p.V
		case "c":
			cohesion = p.V
		case "dtb":
			depthToBottom = p.V
		}
	}
	return NewMaterial(unitWeight, frictionAngle, cohesion, depthToBottom, name, color)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Stack holds materials sorted ascending by DepthToBottom, partitioning
// depth into layers whose bottom RL = crestY - DepthToBottom.
type Stack struct {
	Layers []*Material
}

// Add appends materials, re-sorts the whole stack by depth, assigns RL
// and a display colour to each, and rejects duplicate depths.
func (o *Stack) Add(crestY float64, materials ...*Material) error {
	all := append(append([]*Material{}, o.Layers...), materials...)
	sort.Slice(all, func(i, j int) bool { return all[i].DepthToBottom < all[j].DepthToBottom })

	seen := make(map[float64]bool, len(all))
	for _, m := range all {
		if seen[m.DepthToBottom] {
			return chk.Err("the same material depth has been input twice: %v", m.DepthToBottom)
		}
		seen[m.DepthToBottom] = true
	}

	for i, m := range all {
		m.RL = crestY - m.DepthToBottom
		if m.UserColor != "" {
			m.Color = m.UserColor
		} else {
			m.Color = palette[i%len(palette)]
		}
	}
	o.Layers = all
	return nil
}

// Remove drops the material at the given depth, if present.
func (o *Stack) Remove(depth float64) {
	for i, m := range o.Layers {
		if m.DepthToBottom == depth {
			o.Layers = append(o.Layers[:i], o.Layers[i+1:]...)
			return
		}
	}
}

// RemoveAll clears the stack.
func (o *Stack) RemoveAll() {
	o.Layers = nil
}

// DeepestDepth returns the deepest assigned DepthToBottom, or 0 if the
// stack is empty.
func (o *Stack) DeepestDepth() float64 {
	d := 0.0
	for _, m := range o.Layers {
		if m.DepthToBottom > d {
			d = m.DepthToBottom
		}
	}
	return d
}

// At returns the material whose layer contains elevation y: the
// shallowest layer with RL < y, or the deepest layer if y is below all
// of them. Panics if the stack is empty — callers must guarantee at
// least one material is assigned before analysis.
func (o *Stack) At(y float64) *Material {
	if len(o.Layers) == 0 {
		chk.Panic("mat: Stack.At called with no materials assigned")
	}
	for _, m := range o.Layers {
		if m.RL < y {
			return m
		}
	}
	return o.Layers[len(o.Layers)-1]
}

// StripWeight walks the layers from shallowest to deepest, accumulating
// γ·b·Δy contributions for a vertical strip of width b spanning from
// yTop down to yBottom, honouring partial overlap at layer boundaries.
func (o *Stack) StripWeight(b, yTop, yBottom float64) float64 {
	if len(o.Layers) == 0 {
		chk.Panic("mat: Stack.StripWeight called with no materials assigned")
	}
	W := 0.0
	top := yTop
	for _, m := range o.Layers {
		switch {
		case m.RL >= yTop:
			continue
		case m.RL > yBottom:
			W += b * m.UnitWeight * (top - m.RL)
			top = m.RL
		default:
			W += b * m.UnitWeight * (top - yBottom)
			top = m.RL
			return addBottomRemainder(W, b, top, yBottom, o.Layers[len(o.Layers)-1])
		}
	}
	return addBottomRemainder(W, b, top, yBottom, o.Layers[len(o.Layers)-1])
}

func addBottomRemainder(W, b, top, yBottom float64, deepest *Material) float64 {
	if top > yBottom {
		W += b * deepest.UnitWeight * (top - yBottom)
	}
	return W
}
