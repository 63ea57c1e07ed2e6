// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slope

import "math"

// AnalysisOptions controls the trial-surface search and the Bishop
// iteration, per spec.md §3's Options.
type AnalysisOptions struct {
	Slices             int     // slices per trial circle, [10, 500]
	Iterations         int     // target trial-surface count, [500, 100000]
	MinFailureDistance float64 // minimum entry/exit chord length, m, >= 0
	Tolerance          float64 // Bishop convergence tolerance on FOS
	MaxIterations      int     // Bishop iteration cap
	Workers            int     // evaluation worker count; 0 means runtime.GOMAXPROCS(0)
}

// DefaultAnalysisOptions mirrors the original model's constructor
// defaults.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		Slices:        25,
		Iterations:    1000,
		Tolerance:     0.005,
		MaxIterations: 15,
	}
}

// Update applies any non-zero fields of patch, clamping into range,
// mirroring update_analysis_options's "if set, clamp; else leave
// unchanged" semantics.
func (o *AnalysisOptions) Update(patch AnalysisOptions) {
	if patch.Slices != 0 {
		o.Slices = clampInt(patch.Slices, 10, 500)
	}
	if patch.Iterations != 0 {
		o.Iterations = clampInt(patch.Iterations, 500, 100000)
	}
	if patch.MinFailureDistance != 0 {
		o.MinFailureDistance = patch.MinFailureDistance
	}
	if patch.Tolerance != 0 {
		o.Tolerance = patch.Tolerance
	}
	if patch.MaxIterations != 0 {
		o.MaxIterations = patch.MaxIterations
	}
	if patch.Workers != 0 {
		o.Workers = patch.Workers
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WaterOptions controls the pore-pressure head-reduction factor.
type WaterOptions struct {
	Auto bool
	H    float64
}

// DefaultWaterOptions mirrors the original's auto=true default.
func DefaultWaterOptions() WaterOptions {
	return WaterOptions{Auto: true}
}

// Resolve returns the effective H, computing cos²(atan(gradient)) when
// Auto is set. Callers pass atan(boundary.Gradient), not the slope's
// nominal construction angle, since a boundary may have been built from
// length rather than angle.
func (o WaterOptions) Resolve(slopeAngleRad float64) float64 {
	if o.Auto {
		c := math.Cos(slopeAngleRad)
		return c * c
	}
	h := o.H
	if h > 1 {
		h = 1
	}
	if h < 0 {
		h = 0
	}
	return h
}
