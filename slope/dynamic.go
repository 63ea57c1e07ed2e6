// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slope

import (
	"math"
	"sort"
)

// DynamicResult pairs an offset with its resulting minimum FOS.
type DynamicResult struct {
	Offset float64
	FOS    float64
}

// AnalyseDynamic implements spec.md §4.D: bisects the shared offset of
// every dynamic-offset load until the critical FOS is bracketed, or
// returns early if the slope is already safe/unsafe across the whole
// range.
func (o *Slope) AnalyseDynamic(targetFOS float64) {
	o.dynamicResults = make(map[float64]float64)

	right := 0.0
	left := o.boundary.Length - 0.01

	o.setDynamicOffset(right)
	o.AnalyseSlope(nil)
	fos, err := o.MinFOS()
	if err == nil {
		o.dynamicResults[right] = fos
	}
	if fos > targetFOS {
		return
	}

	o.setDynamicOffset(left)
	o.AnalyseSlope(nil)
	fos, err = o.MinFOS()
	if err == nil {
		o.dynamicResults[left] = fos
	}
	if fos < targetFOS {
		return
	}

	previousFOS := 0.0
	for i := 0; i < 10; i++ {
		leftFOS := o.dynamicResults[left]
		rightFOS := o.dynamicResults[right]

		m := (leftFOS - rightFOS) / (left - right)
		midpoint := right + (targetFOS-rightFOS)/m

		o.setDynamicOffset(midpoint)
		o.AnalyseSlope(nil)
		fos, err = o.MinFOS()
		if err != nil {
			break
		}
		o.dynamicResults[midpoint] = fos

		if previousFOS != fos {
			if (math.Abs(previousFOS-fos) <= 0.01 || math.Abs(fos-targetFOS) <= 0.01) && round3(fos) >= targetFOS {
				break
			}
		}

		if fos < targetFOS {
			right = midpoint
		} else {
			left = midpoint
		}
		previousFOS = fos
	}
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// setDynamicOffset moves every dynamic-offset UDL/LineLoad to offset,
// leaving static loads untouched, per spec.md §4.D.
func (o *Slope) setDynamicOffset(offset float64) {
	for _, u := range o.udls {
		if u.DynamicOffset {
			u.Offset = offset
		}
		u.UpdateCoordinates(o.boundary.Top.X)
	}
	for _, l := range o.lineLoads {
		if l.DynamicOffset {
			l.Offset = offset
		}
		l.UpdateCoordinates(o.boundary.Top.X)
	}
	o.resetResults()
}

// DynamicResults returns the (offset, FOS) pairs recorded by the last
// AnalyseDynamic call, sorted ascending by FOS, per spec.md §6's
// "mapping from offset to FOS sorted by FOS".
func (o *Slope) DynamicResults() []DynamicResult {
	out := make([]DynamicResult, 0, len(o.dynamicResults))
	for offset, fos := range o.dynamicResults {
		out = append(out, DynamicResult{Offset: offset, FOS: fos})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FOS < out[j].FOS })
	return out
}
