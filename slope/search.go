// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slope

import (
	"math"

	"github.com/cpmech/goslope/geom"
	"github.com/cpmech/gosl/utl"
)

// generateSearch implements spec.md §4.S Mode A: entry/exit point
// enumeration over the analysis limits, each pair expanded into a
// radius family.
func (o *Slope) generateSearch() []TrialSurface {
	iterations := o.analysisOptions.Iterations
	numCircles := maxInt(5, iterations/1000)

	pointCombos := float64(iterations) / float64(numCircles)
	numTop := int(math.Sqrt(pointCombos))
	numBot := numTop
	for numTop*numBot*numCircles < iterations {
		numBot++
	}
	numTop -= len(o.lineLoads) + len(o.udls)
	if numTop < 2 {
		numTop = 2
	}
	if numBot < 1 {
		numBot = 1
	}

	l := o.limits
	leftCoords := make([]geom.Point, 0, numTop+len(o.lineLoads)+len(o.udls))
	for _, x := range utl.LinSpace(l.LeftOuter, l.LeftInner, numTop) {
		leftCoords = append(leftCoords, geom.Point{X: x, Y: o.boundary.Top.Y})
	}
	// reserve entry points adjacent to each load's left edge (§4.S),
	// sampling near the discontinuity the load introduces.
	for _, ll := range o.lineLoads {
		leftCoords = append(leftCoords, geom.Point{X: ll.Coord - 0.001, Y: o.boundary.Top.Y})
	}
	for _, u := range o.udls {
		leftCoords = append(leftCoords, geom.Point{X: u.Left - 0.001, Y: o.boundary.Top.Y})
	}

	rightCoords := make([]geom.Point, 0, numBot)
	for n := 1; n <= numBot; n++ {
		x := l.RightInner + (float64(n)/float64(numBot))*(l.RightOuter-l.RightInner)
		y, _ := o.boundary.LineYAtX(x)
		rightCoords = append(rightCoords, geom.Point{X: x, Y: y})
	}

	var search []TrialSurface
	for _, lc := range leftCoords {
		for _, rc := range rightCoords {
			if geom.Dist(lc, rc) > o.analysisOptions.MinFailureDistance {
				search = append(search, o.generatePlanes(lc, rc, numCircles)...)
			}
		}
	}
	return search
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// generatePlanes implements spec.md §4.S's radius family generation:
// starting from a near-vertical-entry circle, shrink the chord-to-edge
// distance across numCircles steps via the intersecting-chords
// identity.
//
// Per the §9 open question, a radius that fails to meet the boundary in
// two points BREAKS the family rather than skipping just that radius —
// this under-samples the family (a `continue` would find more
// candidates) but matches the source's existing behaviour, which is
// preserved here rather than "fixed".
func (o *Slope) generatePlanes(lc, rc geom.Point, numCircles int) []TrialSurface {
	beta := math.Atan((lc.Y - rc.Y) / (rc.X - lc.X))
	halfChord := geom.Dist(lc, rc) / 2

	startRadius := halfChord/math.Cos(beta)*1.1
	startChordToCentre := math.Sqrt(startRadius*startRadius - halfChord*halfChord)
	startChordToEdge := startRadius - startChordToCentre

	C := halfChord * halfChord
	mid := geom.Mid(lc, rc)

	var out []TrialSurface
	for i := 0; i < numCircles; i++ {
		chordToEdge := startChordToEdge * float64(numCircles-i) / float64(numCircles)
		radius := geom.RadiusFromChord(chordToEdge, C)
		centre := geom.CentreFromChord(beta, mid, radius-chordToEdge)

		circ := geom.Circle{Cx: centre.X, Cy: centre.Y, Radius: radius}
		pts := o.boundary.CircleBoundaryIntersections(circ)
		if len(pts) < 2 {
			break
		}

		out = append(out, TrialSurface{
			Cx: centre.X, Cy: centre.Y, Radius: radius,
			LC: pts[0], RC: pts[len(pts)-1], ChordKnown: true,
		})
	}
	return out
}
