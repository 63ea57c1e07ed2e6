// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slope

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// TestRampClampDerivative guards the §9 "sign of α" open question: the
// Ramp clamp used on the normal-force term in ordinarySeed must stay
// differentiable away from its kink, so a finite-difference derivative
// of Ramp matches its analytical derivative, Heav, everywhere the slope
// evaluator actually samples it.
func TestRampClampDerivative(tst *testing.T) {

	chk.PrintTitle("Ramp clamp derivative: fun.Heav vs num.DerivCentral")

	tol := 1e-6
	for _, x := range []float64{-3, -0.5, 0.5, 1, 2.5} {
		dana := fun.Heav(x)
		dnum, err := num.DerivCentral(func(v float64, args ...interface{}) float64 {
			return fun.Ramp(v)
		}, x, 1e-3)
		if err != nil {
			tst.Errorf("DerivCentral failed at x=%v:\n%v", x, err)
			continue
		}
		io.Pforan("x=%v dana=%v dnum=%v\n", x, dana, dnum)
		chk.AnaNum(tst, io.Sf("dRamp/dx @ x=%v", x), tol, dana, dnum, chk.Verbose)
	}
}
