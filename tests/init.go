// Copyright 2016 The Gopsychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements helpers to run process scenarios end to end
package tests

import (
	"testing"

	"github.com/cpmech/gopsychro/inp"
	"github.com/cpmech/gopsychro/mdl/air"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// ReadFlow reads a scenario file and builds its inlet stream
func ReadFlow(tst *testing.T, path string) (*inp.Scenario, *air.Flow) {
	sc, err := inp.Read(path)
	if err != nil {
		tst.Fatalf("cannot read scenario: %v\n", err)
	}
	flw, err := sc.Flow()
	if err != nil {
		tst.Fatalf("cannot build inlet stream: %v\n", err)
	}
	return sc, flw
}
