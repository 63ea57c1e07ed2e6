// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slope implements the slope stability analysis core: a Slope
// container owning geometry, materials, loads, water, search limits
// and options; the circular-slip-surface search generator; the
// Bishop's-Simplified evaluator; the dynamic-load search; and the
// sorted result ledger. See SPEC_FULL.md for the full component
// breakdown.
package slope

import (
	"runtime"
	"sync"

	"github.com/cpmech/goslope/boundary"
	"github.com/cpmech/goslope/geom"
	"github.com/cpmech/goslope/load"
	"github.com/cpmech/goslope/mat"
	"github.com/cpmech/goslope/water"
	"github.com/cpmech/gosl/io"
)

// Slope is the public container for a two-dimensional slope stability
// model, mirroring the original Slope class's instance attributes.
type Slope struct {
	boundary  *boundary.Boundary
	minExt    boundary.MinExtOptions
	materials mat.Stack
	udls      []*load.UDL
	lineLoads []*load.LineLoad
	water     *water.Table

	limits boundary.Limits

	analysisOptions AnalysisOptions
	waterOptions    WaterOptions

	individualPlanes []TrialSurface
	ledger           ledger

	dynamicResults map[float64]float64

	// Verbose, when true, logs search/analysis progress via gosl/io,
	// the same "DJANGO_DEBUG" style toggle the original model used to
	// gate its print() calls.
	Verbose bool
}

// NewSlope builds a slope from height plus either angleDeg or length
// (exactly one must be non-nil; both nil defaults angle to 30°), per
// spec.md §6's make_slope constructor.
func NewSlope(height float64, angleDeg, length *float64) (*Slope, error) {
	o := &Slope{
		minExt:          boundary.DefaultMinExtOptions(),
		analysisOptions: DefaultAnalysisOptions(),
		waterOptions:    DefaultWaterOptions(),
		dynamicResults:  map[float64]float64{},
	}
	if err := o.SetExternalBoundary(height, angleDeg, length); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Slope) resetResults() {
	o.ledger.reset()
}

// SetExternalBoundary (re)builds the outer boundary, re-derives load
// coordinates and material RLs, resets analysis limits to "no limit",
// and invalidates cached results.
func (o *Slope) SetExternalBoundary(height float64, angleDeg, length *float64) error {
	b, err := boundary.Build(height, angleDeg, length, o.minExt, o.materials.DeepestDepth())
	if err != nil {
		return err
	}
	o.boundary = b
	if len(o.materials.Layers) > 0 {
		if err := o.materials.Add(b.Top.Y); err != nil {
			return err
		}
	}
	o.updateLoadCoordinates()
	o.limits = b.DefaultLimits()
	o.resetResults()
	return nil
}

func (o *Slope) updateLoadCoordinates() {
	for _, u := range o.udls {
		u.UpdateCoordinates(o.boundary.Top.X)
	}
	for _, l := range o.lineLoads {
		l.UpdateCoordinates(o.boundary.Top.X)
	}
}

// SetMaterials appends materials to the stack (sorted overall by
// depth), extends the boundary if a layer is deeper than the current
// model, and errors on duplicate depths.
func (o *Slope) SetMaterials(materials ...*mat.Material) error {
	if err := o.materials.Add(o.boundary.Top.Y, materials...); err != nil {
		return err
	}
	if o.materials.DeepestDepth() > o.boundary.ExternalHeight {
		o.minExt.MinExtH = o.materials.DeepestDepth()
		if err := o.SetExternalBoundary(o.boundary.Height, nil, f64(o.boundary.Length)); err != nil {
			return err
		}
	}
	o.resetResults()
	return nil
}

// RemoveMaterial drops the material at depth, or clears all when
// removeAll is true.
func (o *Slope) RemoveMaterial(depth float64, removeAll bool) {
	if removeAll {
		o.materials.RemoveAll()
	} else {
		o.materials.Remove(depth)
	}
	o.resetResults()
}

// SetUDLs appends UDLs to the model, deriving their crest coordinates.
func (o *Slope) SetUDLs(udls ...*load.UDL) {
	for _, u := range udls {
		if u.Magnitude > 0 {
			o.udls = append(o.udls, u)
		}
	}
	o.updateLoadCoordinates()
	o.resetResults()
}

// RemoveUDLs removes matching UDLs, or all of them when removeAll.
func (o *Slope) RemoveUDLs(udls []*load.UDL, removeAll bool) {
	if removeAll {
		o.udls = nil
	} else {
		for _, u := range udls {
			for i, check := range o.udls {
				if check.Offset == u.Offset && check.Magnitude == u.Magnitude && check.Length == u.Length {
					o.udls = append(o.udls[:i], o.udls[i+1:]...)
					break
				}
			}
		}
	}
	o.resetResults()
}

// SetLineLoads appends line loads to the model, deriving their crest
// coordinates.
func (o *Slope) SetLineLoads(lls ...*load.LineLoad) {
	for _, l := range lls {
		if l.Magnitude > 0 {
			o.lineLoads = append(o.lineLoads, l)
		}
	}
	o.updateLoadCoordinates()
	o.resetResults()
}

// RemoveLineLoads removes matching line loads, or all when removeAll.
func (o *Slope) RemoveLineLoads(lls []*load.LineLoad, removeAll bool) {
	if removeAll {
		o.lineLoads = nil
	} else {
		for _, l := range lls {
			for i, check := range o.lineLoads {
				if check.Offset == l.Offset && check.Magnitude == l.Magnitude {
					o.lineLoads = append(o.lineLoads[:i], o.lineLoads[i+1:]...)
					break
				}
			}
		}
	}
	o.resetResults()
}

// SetWaterTable sets the phreatic surface depth below the crest.
func (o *Slope) SetWaterTable(depthFromCrest float64) error {
	t, err := water.New(depthFromCrest, o.boundary.Top.Y)
	if err != nil {
		return err
	}
	o.water = t
	o.resetResults()
	return nil
}

// RemoveWaterTable clears the phreatic surface.
func (o *Slope) RemoveWaterTable() {
	o.water = nil
	o.resetResults()
}

// UpdateWaterAnalysisOptions sets the pore-pressure head-factor mode.
func (o *Slope) UpdateWaterAnalysisOptions(auto bool, h float64) {
	o.waterOptions = WaterOptions{Auto: auto, H: h}
	o.resetResults()
}

// UpdateAnalysisOptions merges non-zero fields of patch into the
// current analysis options.
func (o *Slope) UpdateAnalysisOptions(patch AnalysisOptions) {
	o.analysisOptions.Update(patch)
	o.resetResults()
}

// UpdateBoundaryOptions updates the minimum external-boundary extent
// and rebuilds the boundary if one already exists.
func (o *Slope) UpdateBoundaryOptions(minExtL, minExtH float64) error {
	if minExtH > 0 {
		o.minExt.MinExtH = minExtH
	}
	if minExtL > 0 {
		o.minExt.MinExtL = minExtL
	}
	if o.boundary != nil {
		if err := o.SetExternalBoundary(o.boundary.Height, nil, f64(o.boundary.Length)); err != nil {
			return err
		}
	}
	o.resetResults()
	return nil
}

// RemoveAnalysisLimits resets the search limits to "no limit".
func (o *Slope) RemoveAnalysisLimits() {
	o.limits = o.boundary.DefaultLimits()
	o.resetResults()
}

// SetAnalysisLimits sets the admissible entry/exit search band.
func (o *Slope) SetAnalysisLimits(leftOuter, leftInner, rightInner, rightOuter float64) error {
	lims, err := o.boundary.NewLimits(leftOuter, leftInner, rightInner, rightOuter)
	if err != nil {
		return err
	}
	o.limits = lims
	o.resetResults()
	return nil
}

// AddSingleEntryExitPlane expands one explicit (entry_x, exit_x) pair
// into a radius family of up to numCircles trial surfaces (the family
// stops at the first radius that does not meet the boundary twice),
// added to the individual-planes override set (spec.md §4.S Mode B).
func (o *Slope) AddSingleEntryExitPlane(entryX, exitX float64, numCircles int) {
	entryY, _ := o.boundary.LineYAtX(entryX)
	exitY, _ := o.boundary.LineYAtX(exitX)
	planes := o.generatePlanes(geom.Point{X: entryX, Y: entryY}, geom.Point{X: exitX, Y: exitY}, numCircles)
	o.individualPlanes = append(o.individualPlanes, planes...)
	o.resetResults()
}

// AddSingleCircularPlane registers one explicit circle as an
// individual plane, if it meets the boundary in at least two points.
func (o *Slope) AddSingleCircularPlane(cx, cy, radius float64) {
	t := TrialSurface{Cx: cx, Cy: cy, Radius: radius}
	pts := o.boundary.CircleBoundaryIntersections(t.Circle())
	if len(pts) < 2 {
		return
	}
	t.LC, t.RC, t.ChordKnown = pts[0], pts[len(pts)-1], true
	o.individualPlanes = append(o.individualPlanes, t)
	o.resetResults()
}

// RemoveIndividualPlanes clears the Mode B override set, re-enabling
// Mode A enumeration on the next AnalyseSlope.
func (o *Slope) RemoveIndividualPlanes() {
	o.individualPlanes = nil
	o.resetResults()
}

// AnalyseSlope populates the result ledger: Mode B planes if any are
// registered, otherwise Mode A enumeration over the analysis limits.
// Evaluation is parallelised across AnalysisOptions.Workers goroutines
// (or runtime.GOMAXPROCS(0) if unset); maxFOS, if non-nil and > 0,
// drops surfaces above it from the final ledger.
func (o *Slope) AnalyseSlope(maxFOS *float64) {
	var candidates []TrialSurface
	if len(o.individualPlanes) > 0 {
		candidates = o.individualPlanes
	} else {
		candidates = o.generateSearch()
	}

	if o.Verbose {
		io.Pforan("slope: evaluating %d candidate surfaces\n", len(candidates))
	}

	workers := o.analysisOptions.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers < 1 {
		workers = 1
	}

	o.ledger.reset()

	jobs := make(chan TrialSurface)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				o.ledger.append(o.evaluate(t))
			}
		}()
	}
	for _, t := range candidates {
		jobs <- t
	}
	close(jobs)
	wg.Wait()

	fosCap := 0.0
	if maxFOS != nil {
		fosCap = *maxFOS
	}
	o.ledger.finalize(fosCap)

	if o.Verbose {
		n, err := o.MinFOS()
		if err == nil {
			io.Pforan("slope: critical FOS = %.4f over %d valid surfaces\n", n, len(o.ledger.surfaces))
		}
	}
}

// MinFOS returns the critical factor of safety, or an error if the
// ledger is empty (spec.md §7's NoValidSurface).
func (o *Slope) MinFOS() (float64, error) {
	s, err := o.ledger.min()
	if err != nil {
		return 0, err
	}
	return s.FOS, nil
}

// MinFOSCircle returns the critical surface's circle.
func (o *Slope) MinFOSCircle() (cx, cy, radius float64, err error) {
	s, err := o.ledger.min()
	if err != nil {
		return 0, 0, 0, err
	}
	return s.Cx, s.Cy, s.Radius, nil
}

// MinFOSEndPoints returns the critical surface's chord endpoints.
func (o *Slope) MinFOSEndPoints() (lc, rc [2]float64, err error) {
	s, err := o.ledger.min()
	if err != nil {
		return lc, rc, err
	}
	return [2]float64{s.LC.X, s.LC.Y}, [2]float64{s.RC.X, s.RC.Y}, nil
}

// Boundary exposes the current outer boundary (read-only use by
// callers that need crest/toe coordinates for their own rendering).
func (o *Slope) Boundary() *boundary.Boundary { return o.boundary }

// String implements fmt.Stringer, modelled on the teacher's io.Sf-based
// Stringers.
func (o *Slope) String() string {
	if o.boundary == nil {
		return "Slope: <unset>"
	}
	return io.Sf("Slope: %.3gV : %.3gH", o.boundary.Height, o.boundary.Length)
}

func f64(v float64) *float64 { return &v }
