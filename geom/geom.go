// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the closed-form point/circle/line primitives
// needed by the slope stability evaluator: segment-circle intersection
// and circle sampling. It deliberately avoids a general polygon-geometry
// library (see DESIGN.md) since everything the evaluator needs reduces
// to the shifted-origin circle/line discriminant.
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Circle is a trial circle: centre (Cx,Cy) and Radius.
type Circle struct {
	Cx, Cy, Radius float64
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Mid returns the midpoint of p and q.
func Mid(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// RadiusFromChord solves the intersecting-chords identity
//
//	halfChord² = chordToEdge * (R + (R - chordToEdge))
//
// for R, given the chord-to-edge distance and halfChord² (named C to
// match the teacher's derivation).
func RadiusFromChord(chordToEdge, C float64) float64 {
	return (C + chordToEdge*chordToEdge) / (2 * chordToEdge)
}

// CentreFromChord returns the circle centre offset from the chord
// midpoint by chordToCentre along the normal implied by the chord's
// inclination beta (radians).
func CentreFromChord(beta float64, chordMid Point, chordToCentre float64) Point {
	dy := math.Cos(beta) * chordToCentre
	dx := math.Sin(beta) * chordToCentre
	return Point{chordMid.X + dx, chordMid.Y + dy}
}

// LineCircleIntersection returns the 0, 1 or 2 points where the
// infinite line through p1,p2 intersects the circle (c, r), using the
// shifted-origin discriminant method (see
// https://mathworld.wolfram.com/Circle-LineIntersection.html).
func LineCircleIntersection(p1, p2 Point, c Circle) []Point {
	x1, y1 := p1.X-c.Cx, p1.Y-c.Cy
	x2, y2 := p2.X-c.Cx, p2.Y-c.Cy

	dx := x2 - x1
	dy := y2 - y1
	dr := math.Hypot(dx, dy)
	if dr == 0 {
		chk.Panic("LineCircleIntersection: p1 and p2 must be distinct points")
	}

	D := x1*y2 - x2*y1
	disc := c.Radius*c.Radius*dr*dr - D*D
	if disc < 0 {
		return nil
	}

	sign := 1.0
	if dy < 0 {
		sign = -1.0
	}
	sqrtDisc := math.Sqrt(disc)

	xA := (D*dy+sign*dx*sqrtDisc)/(dr*dr) + c.Cx
	xB := (D*dy-sign*dx*sqrtDisc)/(dr*dr) + c.Cx
	yA := (-(D*dx)+math.Abs(dy)*sqrtDisc)/(dr*dr) + c.Cy
	yB := (-(D*dx)-math.Abs(dy)*sqrtDisc)/(dr*dr) + c.Cy

	if disc == 0 {
		return []Point{{xA, yA}}
	}
	return []Point{{xA, yA}, {xB, yB}}
}

// Sample returns n coordinates along the lower half (the failure side)
// of the circle's circumference, for consumption by an external
// renderer. Pure geometry; no plotting performed here.
func (c Circle) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n)
	step := 179.0 / float64(n)
	for i := 0; i < n; i++ {
		alpha := 1 + float64(i)*step
		rad := alpha * math.Pi / 180
		pts = append(pts, Point{
			X: c.Cx - math.Cos(rad)*c.Radius,
			Y: c.Cy - math.Sin(rad)*c.Radius,
		})
	}
	return pts
}
