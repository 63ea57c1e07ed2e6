// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slope

import (
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
)

// ledger is the owned result cache (spec.md §3's SearchResult / §9's
// "global state on the slope object", modelled explicitly rather than
// relying on constructor side effects). Mutation of any input clears
// it; evaluation appends to it under mu, which is the only shared
// mutable state touched by the (optionally parallel) per-surface
// evaluation in §5.
type ledger struct {
	mu       sync.Mutex
	surfaces []TrialSurface
}

func (l *ledger) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.surfaces = nil
}

// append records a surface if it carries a finite FOS; infeasible
// surfaces (HasFOS == false) are swallowed here per §7's propagation
// policy.
func (l *ledger) append(t TrialSurface) {
	if !t.HasFOS {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.surfaces = append(l.surfaces, t)
}

// finalize sorts the ledger ascending by FOS and, if maxFOS > 0, drops
// surfaces above it.
func (l *ledger) finalize(maxFOS float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	sort.Slice(l.surfaces, func(i, j int) bool { return l.surfaces[i].FOS < l.surfaces[j].FOS })
	if maxFOS > 0 {
		kept := l.surfaces[:0]
		for _, s := range l.surfaces {
			if s.FOS <= maxFOS {
				kept = append(kept, s)
			}
		}
		l.surfaces = kept
	}
}

func (l *ledger) empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.surfaces) == 0
}

func (l *ledger) min() (TrialSurface, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.surfaces) == 0 {
		return TrialSurface{}, chk.Err("no valid surface: run AnalyseSlope (or AnalyseDynamic) first")
	}
	return l.surfaces[0], nil
}
