// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func TestUDLContributionCases(tst *testing.T) {

	chk.PrintTitle("UDL.Contribution: overlap cases")

	u, err := NewUDL(10, 2, 4, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	u.UpdateCoordinates(20) // crest at x=20 -> Right=18, Left=14
	io.Pforan("udl = %+v\n", u)

	// strip fully inside the load
	chk.Scalar(tst, "fully inside", 1e-12, u.Contribution(15, 16), 10)

	// strip straddling the left edge
	chk.Scalar(tst, "left edge", 1e-12, u.Contribution(13, 15), 10*(15-14))

	// strip straddling the right edge
	chk.Scalar(tst, "right edge", 1e-12, u.Contribution(17, 19), 10*(18-17))

	// strip entirely outside
	chk.Scalar(tst, "outside", 1e-12, u.Contribution(0, 1), 0)
}

func TestUDLZeroLengthExtendsLeft(tst *testing.T) {

	chk.PrintTitle("UDL.Contribution: zero length extends to x=0")

	u, err := NewUDL(5, 0, 0, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	u.UpdateCoordinates(20)
	chk.Scalar(tst, "left", 1e-12, u.Left, 0)
	chk.Scalar(tst, "right", 1e-12, u.Right, 20)
}

func TestLineLoadHalfOpenContribution(tst *testing.T) {

	chk.PrintTitle("LineLoad.Contribution: half-open strip boundary")

	l, err := NewLineLoad(50, 5, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	l.UpdateCoordinates(20) // Coord = 15
	io.Pforan("lineload = %+v\n", l)

	// coord sits exactly on the left edge of one strip: counted once
	chk.Scalar(tst, "on left edge", 1e-12, l.Contribution(15, 16), 50)
	chk.Scalar(tst, "on right edge of neighbour", 1e-12, l.Contribution(14, 15), 0)
	chk.Scalar(tst, "outside", 1e-12, l.Contribution(0, 1), 0)
}

func TestNewLoadValidation(tst *testing.T) {

	chk.PrintTitle("NewUDL / NewLineLoad: validation")

	if _, err := NewUDL(-1, 0, 0, false); err == nil {
		tst.Errorf("expected error for negative magnitude")
	}
	if _, err := NewLineLoad(5, -1, false); err == nil {
		tst.Errorf("expected error for negative offset")
	}
}
