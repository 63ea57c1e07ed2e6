// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import (
	"testing"

	"github.com/cpmech/goslope/geom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func TestBuildFromAngle(tst *testing.T) {

	chk.PrintTitle("Build: from angle")

	angle := 30.0
	b, err := Build(10, &angle, nil, DefaultMinExtOptions(), 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%+v\n", b)
	chk.Scalar(tst, "length", 1e-9, b.Length, 10/tan30())
	chk.Scalar(tst, "gradient", 1e-9, b.Gradient, 10/b.Length)
}

func tan30() float64 {
	return 0.5773502691896257
}

func TestBuildInvalidHeight(tst *testing.T) {

	chk.PrintTitle("Build: invalid height rejected")

	_, err := Build(0, nil, nil, DefaultMinExtOptions(), 0)
	if err == nil {
		tst.Errorf("expected error for height <= 0")
	}
}

func TestBuildInvalidAngle(tst *testing.T) {

	chk.PrintTitle("Build: invalid angle rejected")

	bad := 95.0
	_, err := Build(10, &bad, nil, DefaultMinExtOptions(), 0)
	if err == nil {
		tst.Errorf("expected error for angle > 90")
	}
}

func TestLineYAtXLineXAtY(tst *testing.T) {

	chk.PrintTitle("LineYAtX / LineXAtY round-trip on the slope face")

	angle := 45.0
	b, err := Build(10, &angle, nil, DefaultMinExtOptions(), 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	yCrest, ok := b.LineYAtX(b.Top.X)
	chk.Scalar(tst, "y@crest", 1e-9, yCrest, b.Top.Y)
	if !ok {
		tst.Errorf("expected in-domain at crest")
	}

	yToe, ok := b.LineYAtX(b.Bot.X)
	chk.Scalar(tst, "y@toe", 1e-9, yToe, b.Bot.Y)
	if !ok {
		tst.Errorf("expected in-domain at toe")
	}

	_, ok = b.LineYAtX(-1)
	if ok {
		tst.Errorf("expected out-of-domain for x < 0")
	}

	xCrest := b.LineXAtY(b.Top.Y)
	chk.Scalar(tst, "x@crestY", 1e-9, xCrest, b.Top.X)

	xBelowToe := b.LineXAtY(b.Bot.Y - 1)
	chk.Scalar(tst, "x@belowToe", 1e-9, xBelowToe, b.ExternalLength)
}

func TestCircleBoundaryIntersections(tst *testing.T) {

	chk.PrintTitle("CircleBoundaryIntersections: toe circle meets slope face and bottom platform")

	angle := 30.0
	b, err := Build(10, &angle, nil, DefaultMinExtOptions(), 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	c := geom.Circle{Cx: b.Bot.X, Cy: b.Bot.Y + 5, Radius: 8}
	pts := b.CircleBoundaryIntersections(c)
	io.Pforan("pts = %v\n", pts)
	if len(pts) < 2 {
		tst.Errorf("expected at least 2 intersection points, got %d", len(pts))
		return
	}
	if pts[0].X > pts[len(pts)-1].X {
		tst.Errorf("expected points sorted ascending by x")
	}
}

func TestDefaultLimitsOrdering(tst *testing.T) {

	chk.PrintTitle("DefaultLimits: respects crest <= toe invariant")

	angle := 30.0
	b, err := Build(10, &angle, nil, DefaultMinExtOptions(), 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	l := b.DefaultLimits()
	if !(l.LeftOuter <= l.LeftInner && l.LeftInner <= b.Top.X && b.Top.X <= b.Bot.X && b.Bot.X <= l.RightInner && l.RightInner <= l.RightOuter) {
		tst.Errorf("default limits violate ordering invariant: %+v (crest=%v toe=%v)", l, b.Top.X, b.Bot.X)
	}
}

func TestNewLimitsRejectsBadOrdering(tst *testing.T) {

	chk.PrintTitle("NewLimits: rejects conflicting band")

	angle := 30.0
	b, err := Build(10, &angle, nil, DefaultMinExtOptions(), 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	_, err = b.NewLimits(5, 5, b.Bot.X, b.Bot.X)
	if err == nil {
		tst.Errorf("expected error for left_outer == left_inner")
	}
}
