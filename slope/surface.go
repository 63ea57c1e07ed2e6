// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slope

import "github.com/cpmech/goslope/geom"

// TrialSurface is one candidate circular slip surface: its circle,
// chord endpoints, and (if evaluated successfully) FOS.
type TrialSurface struct {
	Cx, Cy, Radius float64
	LC, RC         geom.Point
	ChordKnown     bool // true once LC/RC have been set from a boundary intersection
	FOS            float64
	HasFOS         bool
}

func (t TrialSurface) Circle() geom.Circle {
	return geom.Circle{Cx: t.Cx, Cy: t.Cy, Radius: t.Radius}
}
