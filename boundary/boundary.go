// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boundary builds the trapezoidal outer-boundary polygon for a
// two-dimensional slope profile and the admissible search-limit bands
// on it, following the sizing rules of the original slope model.
package boundary

import (
	"math"

	"github.com/cpmech/goslope/geom"
	"github.com/cpmech/gosl/chk"
)

// Boundary is the seven-vertex trapezoidal outer profile described in
// spec.md §3. Vertices runs bottom-left, top-left, crest, toe,
// bottom-right-top, bottom-right, back to origin.
type Boundary struct {
	Height float64 // slope height, m
	Length float64 // slope horizontal length, m
	Angle  float64 // slope angle, rad (0 if unset/derived)

	Gradient float64 // Height/Length

	Top geom.Point // crest coordinate
	Bot geom.Point // toe coordinate

	ExternalLength float64
	ExternalHeight float64

	Vertices []geom.Point
}

// MinExtOptions carries the lower bounds on the outer-boundary extent
// (spec.md §3's MIN_EXT_L / MIN_EXT_H), updated independently of the
// boundary geometry itself via (*slope.Slope).UpdateBoundaryOptions.
type MinExtOptions struct {
	MinExtL float64
	MinExtH float64
}

// DefaultMinExtOptions mirrors the original model's defaults.
func DefaultMinExtOptions() MinExtOptions {
	return MinExtOptions{MinExtL: 10, MinExtH: 6}
}

// Build constructs the outer boundary from height plus either angle
// (degrees) or length. Exactly one of angle or length must be supplied;
// a nil angle AND nil length is only valid if angle defaults to 30.
// deepestMaterialDepth extends ExternalHeight to contain the deepest
// assigned material stratum (spec.md §3).
func Build(height float64, angleDeg, length *float64, opt MinExtOptions, deepestMaterialDepth float64) (*Boundary, error) {
	if height <= 0 {
		return nil, chk.Err("the value for 'height' should be > 0, not %v", height)
	}
	if angleDeg != nil {
		if *angleDeg <= 0 || *angleDeg > 90 {
			return nil, chk.Err("the value for 'angle' should be in (0, 90], not %v", *angleDeg)
		}
	}
	if length != nil && *length < 0 {
		return nil, chk.Err("the value for 'length' should be >= 0, not %v", *length)
	}

	var L float64
	switch {
	case length != nil:
		L = *length
	case angleDeg != nil:
		L = height / math.Tan(*angleDeg*math.Pi/180)
	default:
		a := 30.0
		angleDeg = &a
		L = height / math.Tan(a*math.Pi/180)
	}
	if L < 0.001 {
		L = 0.001 // guards division by zero downstream (vertical face)
	}

	totH := math.Max(3*height, opt.MinExtH)
	totH = math.Max(totH, 5*L/2)
	totH = math.Max(totH, deepestMaterialDepth)

	totL := math.Max(5*L, opt.MinExtL)
	totL = math.Max(totL, 4*height)

	dx := (totL - L) / 2
	top := geom.Point{X: dx, Y: totH}
	bot := geom.Point{X: dx + L, Y: totH - height}

	b := &Boundary{
		Height:         height,
		Length:         L,
		Gradient:       height / L,
		Top:            top,
		Bot:            bot,
		ExternalLength: totL,
		ExternalHeight: totH,
		Vertices: []geom.Point{
			{X: 0, Y: 0},
			{X: 0, Y: totH},
			top,
			bot,
			{X: totL, Y: bot.Y},
			{X: totL, Y: 0},
			{X: 0, Y: 0},
		},
	}
	if angleDeg != nil {
		b.Angle = *angleDeg * math.Pi / 180
	}
	return b, nil
}

// LineYAtX implements spec.md §4.G's line_y_at_x: crest elevation left
// of the crest, toe elevation right of the toe, linear interpolation on
// the slope face between. Returns (0, false) when x is out of domain.
func (b *Boundary) LineYAtX(x float64) (float64, bool) {
	if x < 0 || x > b.ExternalLength {
		return 0, false
	}
	if x <= b.Top.X {
		return b.Top.Y, true
	}
	if x >= b.Bot.X {
		return b.Bot.Y, true
	}
	return b.Top.Y - (x-b.Top.X)*b.Gradient, true
}

// LineXAtY implements spec.md §4.G's line_x_at_y: the inverse on the
// slope face, ExternalLength for y below the toe, crest X for y at or
// above the crest.
func (b *Boundary) LineXAtY(y float64) float64 {
	if y < b.Bot.Y {
		return b.ExternalLength
	}
	if y >= b.Top.Y {
		return b.Top.X
	}
	return b.Top.X + (b.Top.Y-y)/b.Gradient
}

// CircleBoundaryIntersections returns the points, sorted by x, at which
// c meets the outer profile, per spec.md §4.G: the leftmost candidate
// restricted to the top segment (x <= Top.X), the rightmost restricted
// to the bottom segment (x >= Bot.X), and any point strictly between
// must lie on the slope face. Points within IntersectionDedupTol of
// each other in x are treated as one. Returns nil if fewer than two
// distinct points are found.
const IntersectionDedupTol = 0.01

func (b *Boundary) CircleBoundaryIntersections(c geom.Circle) []geom.Point {
	var pts []geom.Point

	top := geom.LineCircleIntersection(geom.Point{X: 0, Y: b.Top.Y}, b.Top, c)
	if len(top) > 0 {
		left := top[0]
		for _, p := range top[1:] {
			if p.X < left.X {
				left = p
			}
		}
		if left.X >= 0 && left.X <= b.Top.X {
			pts = append(pts, left)
		}
	}

	bot := geom.LineCircleIntersection(b.Bot, geom.Point{X: b.ExternalLength, Y: b.Bot.Y}, c)
	if len(bot) > 0 {
		right := bot[0]
		for _, p := range bot[1:] {
			if p.X > right.X {
				right = p
			}
		}
		if right.X >= b.Bot.X && right.X <= b.ExternalLength {
			pts = append(pts, right)
		}
	}

	mid := geom.LineCircleIntersection(b.Top, b.Bot, c)
	for _, p := range mid {
		if p.X >= b.Top.X && p.X <= b.Bot.X {
			pts = append(pts, p)
		}
	}

	// sort by x (insertion sort: at most 4 points)
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && pts[j].X < pts[j-1].X; j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}

	var uniq []geom.Point
	prevX := -1.0
	for _, p := range pts {
		if math.Abs(p.X-prevX) > IntersectionDedupTol {
			uniq = append(uniq, p)
		}
		prevX = p.X
	}
	if len(uniq) < 2 {
		return nil
	}
	return uniq
}

// Limits is the admissible entry/exit search band (spec.md §3's
// AnalysisLimits): LeftOuter <= LeftInner <= crest.X <= toe.X <=
// RightInner <= RightOuter <= ExternalLength.
type Limits struct {
	LeftOuter, LeftInner, RightInner, RightOuter float64
}

// DefaultLimits returns the "no limit" band: the full top platform for
// entry, the full bottom platform for exit.
func (b *Boundary) DefaultLimits() Limits {
	return Limits{
		LeftOuter:  0,
		LeftInner:  b.Top.X,
		RightInner: b.Bot.X,
		RightOuter: b.ExternalLength,
	}
}

// NewLimits validates and builds a Limits band against b, mirroring
// set_analysis_limits's ordering and clamping rules.
func (b *Boundary) NewLimits(leftOuter, leftInner, rightInner, rightOuter float64) (Limits, error) {
	if leftOuter < 0 {
		return Limits{}, chk.Err("the value for 'left_outer' should be >= 0, not %v", leftOuter)
	}
	if rightOuter < 0 {
		return Limits{}, chk.Err("the value for 'right_outer' should be >= 0, not %v", rightOuter)
	}
	leftOuter = math.Max(leftOuter, 0)
	leftInner = math.Min(leftInner, b.Top.X)
	rightOuter = math.Min(rightOuter, b.ExternalLength)
	rightInner = math.Max(rightInner, b.Bot.X)

	if leftOuter >= leftInner || rightInner >= rightOuter {
		return Limits{}, chk.Err("limits out of order or conflicting, check input for analysis limits")
	}
	return Limits{LeftOuter: leftOuter, LeftInner: leftInner, RightInner: rightInner, RightOuter: rightOuter}, nil
}
