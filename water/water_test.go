// Copyright 2026 The Goslope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package water

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func TestNewClampsRL(tst *testing.T) {

	chk.PrintTitle("New: clamps RL >= 0")

	t1, err := New(2, 10)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%+v\n", t1)
	chk.Scalar(tst, "RL", 1e-15, t1.RL, 8)

	t2, err := New(100, 10)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "RL clamped", 1e-15, t2.RL, 0)

	if _, err := New(-1, 10); err == nil {
		tst.Errorf("expected error for negative depth")
	}
}

func TestHeadFactor(tst *testing.T) {

	chk.PrintTitle("HeadFactor: band between water-meets-ground and toe")

	chk.Scalar(tst, "inside band", 1e-15, HeadFactor(5, 2, 10, 0.7), 0.7)
	chk.Scalar(tst, "left of band", 1e-15, HeadFactor(1, 2, 10, 0.7), 1)
	chk.Scalar(tst, "at or past toe", 1e-15, HeadFactor(10, 2, 10, 0.7), 1)
}

func TestPoreForceNilTable(tst *testing.T) {

	chk.PrintTitle("PoreForce: nil table returns zero")

	var t1 *Table
	chk.Scalar(tst, "U", 1e-15, t1.PoreForce(10, 5, 1, 1), 0)
}

func TestPoreForceSubmergedSlice(tst *testing.T) {

	chk.PrintTitle("PoreForce: fully submerged slice base")

	t1, err := New(2, 10) // RL = 8
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	// slice from yTop=9 (above water table) to yBottom=4: head = RL(8) - yBottom(4) = 4
	U := t1.PoreForce(9, 4, 1, 1)
	io.Pforan("U = %v\n", U)
	chk.Scalar(tst, "U", 1e-9, U, 4*GravityUnitWeight*1)
}

func TestPoreForceDrySlice(tst *testing.T) {

	chk.PrintTitle("PoreForce: slice entirely above the water table")

	t1, err := New(2, 10) // RL = 8
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	U := t1.PoreForce(10, 9, 1, 1)
	chk.Scalar(tst, "U", 1e-15, U, 0)
}
