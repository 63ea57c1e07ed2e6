// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slope

import (
	"math"

	"github.com/cpmech/goslope/water"
	"github.com/cpmech/gosl/fun"
)

// sliceState is the per-slice geometry shared by the Ordinary seed and
// the Bishop iteration (spec.md §4.E step 2).
type sliceState struct {
	yBottom, yTop float64
	alpha         float64
	inclinedLen   float64 // b / cos(alpha)
	weight        float64 // W, including strip self-weight + surcharges
	cohesion      float64
	frictionRad   float64
}

// sliceAt computes the slice centred at sx for a trial circle, or
// ok==false if the top of the strip is out of the boundary's domain
// (spec.md §7's OutOfBounds, surfaced here as a non-result).
func (o *Slope) sliceAt(sx, cx, cy, radius, b float64) (sliceState, bool) {
	dxSq := radius*radius - (sx-cx)*(sx-cx)
	if dxSq < 0 {
		return sliceState{}, false
	}
	yBottom := cy - math.Sqrt(dxSq)

	yTop, ok := o.boundary.LineYAtX(sx)
	if !ok {
		return sliceState{}, false
	}
	if yTop < yBottom {
		yTop = yBottom
	}

	dy := cy - yBottom
	dx := cx - sx
	alpha := math.Atan(dx / dy)

	weight := o.materials.StripWeight(b, yTop, yBottom)
	for _, u := range o.udls {
		weight += u.Contribution(sx-b/2, sx+b/2)
	}
	for _, l := range o.lineLoads {
		weight += l.Contribution(sx-b/2, sx+b/2)
	}

	m := o.materials.At(yBottom)

	return sliceState{
		yBottom:     yBottom,
		yTop:        yTop,
		alpha:       alpha,
		inclinedLen: b / math.Cos(alpha),
		weight:      weight,
		cohesion:    m.Cohesion,
		frictionRad: m.FrictionAngle * math.Pi / 180,
	}, true
}

// headFactorAt resolves the effective pore-pressure head factor at a
// slice centre, per spec.md §4.W.
func (o *Slope) headFactorAt(sx float64) float64 {
	if o.water == nil {
		return 1
	}
	waterMeetsGroundX := o.boundary.LineXAtY(o.water.RL)
	h := o.waterOptions.Resolve(math.Atan(o.boundary.Gradient))
	return water.HeadFactor(sx, waterMeetsGroundX, o.boundary.Bot.X, h)
}

// evaluate runs the Ordinary seed followed by Bishop's fixed-point
// iteration for one trial circle, implementing spec.md §4.E in full.
func (o *Slope) evaluate(t TrialSurface) TrialSurface {
	lc, rc := t.LC, t.RC
	if !t.ChordKnown {
		pts := o.boundary.CircleBoundaryIntersections(t.Circle())
		if len(pts) < 2 {
			return t
		}
		lc, rc = pts[0], pts[len(pts)-1]
		t.LC, t.RC = lc, rc
		t.ChordKnown = true
	}

	n := o.analysisOptions.Slices
	b := (rc.X - lc.X) / float64(n)
	if b < 1e-6 {
		return t
	}

	fos0, ok := o.ordinarySeed(t.Cx, t.Cy, t.Radius, lc.X, b, n)
	if !ok {
		return t
	}

	fos, ok := o.bishopIterate(t.Cx, t.Cy, t.Radius, lc.X, b, n, fos0)
	if !ok {
		return t
	}

	t.FOS = fos
	t.HasFOS = true
	return t
}

// ordinarySeed implements the Fellenius/Ordinary method used to seed
// Bishop's iteration.
func (o *Slope) ordinarySeed(cx, cy, radius, lcX, b float64, n int) (float64, bool) {
	var resisting, pushing float64
	sx := lcX + b/2
	for i := 0; i < n; i++ {
		s, ok := o.sliceAt(sx, cx, cy, radius, b)
		if !ok {
			return 0, false
		}

		h := o.headFactorAt(sx)
		U := o.water.PoreForce(s.yTop, s.yBottom, s.inclinedLen, h)

		resisting += s.cohesion*s.inclinedLen + fun.Ramp(s.weight*math.Cos(s.alpha)-U)*math.Tan(s.frictionRad)
		pushing += s.weight * math.Sin(s.alpha)

		sx += b
	}
	if pushing <= 0 {
		return 0, false
	}
	return resisting / pushing, true
}

// bishopIterate runs the fixed-point iteration of spec.md §4.E step 3,
// seeded with fosPrev, returning the best available FOS once converged
// or once MaxIterations is exhausted.
func (o *Slope) bishopIterate(cx, cy, radius, lcX, b float64, n int, fosPrev float64) (float64, bool) {
	tol := o.analysisOptions.Tolerance
	for iter := 0; iter < o.analysisOptions.MaxIterations; iter++ {
		var resisting, pushing float64
		sx := lcX + b/2
		for i := 0; i < n; i++ {
			s, ok := o.sliceAt(sx, cx, cy, radius, b)
			if !ok {
				return 0, false
			}

			h := o.headFactorAt(sx)
			// Bishop convention: pore force here uses b, the
			// horizontal width, not the inclined length (§9).
			Ub := o.water.PoreForce(s.yTop, s.yBottom, b, h)

			mAlpha := math.Cos(s.alpha) + math.Sin(s.alpha)*math.Tan(s.frictionRad)/fosPrev
			resisting += (s.cohesion*b + (s.weight-Ub)*math.Tan(s.frictionRad)) / mAlpha
			pushing += s.weight * math.Sin(s.alpha)

			sx += b
		}
		if pushing <= 0 || resisting < 0 {
			return 0, false
		}

		fos := resisting / pushing
		if math.Abs(fosPrev-fos) < tol {
			return fos, true
		}
		fosPrev = fos
	}
	return fosPrev, true
}
