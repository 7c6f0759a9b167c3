// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim, err := ReadSim("data/batch1.sim", false)
	if err != nil {
		tst.Errorf("cannot read simulation file:\n%v", err)
		return
	}
	io.Pforan("sim = %+v\n", sim)

	// global data
	if sim.Key != "batch1" {
		tst.Errorf("Key is incorrect: %q", sim.Key)
	}
	if sim.DirOut != "/tmp/batchads/batch1" {
		tst.Errorf("DirOut is incorrect: %q", sim.DirOut)
	}

	// process conditions
	if sim.Batch.Mat != "iexA" {
		tst.Errorf("Batch.Mat is incorrect: %q", sim.Batch.Mat)
	}
	if sim.Batch.Balance != "volumes" {
		tst.Errorf("Batch.Balance is incorrect: %q", sim.Batch.Balance)
	}
	chk.Scalar(tst, "c0", 1e-17, sim.Batch.C0, 20)
	chk.Scalar(tst, "vresin", 1e-17, sim.Batch.Vresin, 0.35)
	chk.Scalar(tst, "vsol", 1e-17, sim.Batch.Vsol, 5.0)
	chk.Scalar(tst, "tend", 1e-17, sim.Batch.Tend, 20)

	// defaults
	chk.IntAssert(sim.Batch.Npts, 300)
	if sim.Solver.Itg != "radau5" {
		tst.Errorf("Solver.Itg default is incorrect: %q", sim.Solver.Itg)
	}
	chk.Scalar(tst, "atol", 1e-17, sim.Solver.Atol, 1e-8)
	chk.Scalar(tst, "rtol", 1e-17, sim.Solver.Rtol, 1e-8)

	// checks must pass
	if err := sim.Batch.Check(); err != nil {
		tst.Errorf("Batch.Check failed:\n%v", err)
	}
	if err := sim.Solver.Check(); err != nil {
		tst.Errorf("Solver.Check failed:\n%v", err)
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. invalid process conditions")

	check := func(dat *BatchData, name string) {
		err := dat.Check()
		if err == nil {
			tst.Errorf("Check must fail for %q", name)
			return
		}
		e, ok := err.(*InvalidParameterError)
		if !ok {
			tst.Errorf("error must be *InvalidParameterError: %v", err)
			return
		}
		io.Pforan("%v\n", e)
		if e.Name != name {
			tst.Errorf("error names wrong parameter: %q != %q", e.Name, name)
		}
	}

	check(&BatchData{Mat: "iexA", C0: 20, Tend: 0, Npts: 300}, "tend")
	check(&BatchData{Mat: "iexA", C0: 20, Tend: -1, Npts: 300}, "tend")
	check(&BatchData{Mat: "iexA", C0: -0.5, Tend: 20, Npts: 300}, "c0")
	check(&BatchData{Mat: "iexA", C0: 20, Tend: 20, Npts: 1}, "npts")

	// missing material is a schema error, not a domain error
	err := (&BatchData{C0: 20, Tend: 20, Npts: 300}).Check()
	if err == nil {
		tst.Errorf("Check must fail when material name is missing")
	}
	if _, ok := err.(*InvalidParameterError); ok {
		tst.Errorf("missing material must not be an InvalidParameterError")
	}

	// solver data
	serr := (&SolverData{Itg: "radau5", Atol: 0, Rtol: 1e-8}).Check()
	if e, ok := serr.(*InvalidParameterError); !ok || e.Name != "atol" {
		tst.Errorf("atol check failed: %v", serr)
	}
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. missing files")

	if _, err := ReadSim("data/nonexistent.sim", false); err == nil {
		tst.Errorf("ReadSim must fail for nonexistent file")
	}
	if _, err := ReadMat("data", "nonexistent.mat"); err == nil {
		tst.Errorf("ReadMat must fail for nonexistent file")
	}
}
