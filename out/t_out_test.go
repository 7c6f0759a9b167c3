// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/mjmahoneyCU/batch-adsorption/batch"
	"github.com/mjmahoneyCU/batch-adsorption/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// startsim runs a simulation fixture and starts the output handling
func startsim(tst *testing.T, fn string) bool {
	sim, err := inp.ReadSim("data/"+fn, false)
	if err != nil {
		tst.Errorf("cannot read simulation file: %v", err)
		return false
	}
	sol, err := batch.NewSolver(sim)
	if err != nil {
		tst.Errorf("solver allocation failed: %v", err)
		return false
	}
	res, err := sol.Run()
	if err != nil {
		tst.Errorf("run failed: %v", err)
		return false
	}
	Start(sim, res)
	return true
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. series access")

	if !startsim(tst, "scen1.sim") {
		return
	}
	t := GetRes("t")
	c := GetRes("c")
	q := GetRes("q")
	chk.IntAssert(len(t), 300)
	chk.IntAssert(len(c), 300)
	chk.IntAssert(len(q), 300)
	chk.Scalar(tst, "c(0)", 1e-17, c[0], 20)
	chk.Scalar(tst, "q(0)", 1e-17, q[0], 0)

	// bound mass is not available with a fixed-volumes balance
	func() {
		defer func() {
			if recover() == nil {
				tst.Errorf("panic expected for the mb series")
			}
		}()
		GetRes("mb")
	}()

	// unknown keys panic too
	func() {
		defer func() {
			if recover() == nil {
				tst.Errorf("panic expected for unknown series key")
			}
		}()
		GetRes("pressure")
	}()

	// the porosity balance reports the bound mass
	if !startsim(tst, "scen3.sim") {
		return
	}
	mb := GetRes("mb")
	chk.IntAssert(len(mb), 300)
	chk.Scalar(tst, "mb(0)", 1e-17, mb[0], 0)

	// final state summary
	Report()
	Table(10)
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. subplots")

	if !startsim(tst, "scen3.sim") {
		return
	}

	Splot("concentration decay")
	Plot("t", "c", "iexB", plt.Fmt{C: "b", Ls: "-"})
	SplotConfig("h", "mol/L", 1, 1)

	Splot("resin loading")
	Plot("t", "q", "iexB", plt.Fmt{C: "r", Ls: "-"})
	Plot("t", "mb", "bound", plt.Fmt{C: "g", Ls: "--"})

	chk.IntAssert(len(Splots), 2)
	chk.IntAssert(len(Splots[0].Data), 1)
	chk.IntAssert(len(Splots[1].Data), 2)

	e := Splots[0].Data[0]
	if e.Xlbl != "t" || e.Ylbl != "c" {
		tst.Errorf("wrong axis keys: %q, %q", e.Xlbl, e.Ylbl)
		return
	}
	if Splots[0].Xlbl != "$t$ [h]" || Splots[0].Ylbl != "$c$ [mol/L]" {
		tst.Errorf("wrong axis labels: %q, %q", Splots[0].Xlbl, Splots[0].Ylbl)
		return
	}
	chk.Vector(tst, "x-series", 1e-17, e.X, R.T)
	chk.Vector(tst, "y-series", 1e-17, e.Y, R.C)

	// slice handles work as well
	Splot("custom")
	Plot([]float64{0, 1, 2}, []float64{0, 2, 4}, "line", plt.Fmt{C: "k"})
	chk.IntAssert(len(Splots), 3)

	if chk.Verbose {
		Draw("/tmp/batchads", "t_out02.png", false, nil)
	}
}

func Test_out03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out03. csv export")

	if !startsim(tst, "scen3.sim") {
		return
	}
	err := SaveCsv("/tmp/batchads", "t_out03.csv", chk.Verbose)
	if err != nil {
		tst.Errorf("cannot save csv file: %v", err)
		return
	}
	b, err := io.ReadFile("/tmp/batchads/t_out03.csv")
	if err != nil {
		tst.Errorf("cannot read csv file back: %v", err)
		return
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	chk.IntAssert(len(lines), 301)
	if lines[0] != "t,c,q,mb" {
		tst.Errorf("wrong header: %q", lines[0])
		return
	}
	if lines[1] != "0,20,0,0" {
		tst.Errorf("wrong first row: %q", lines[1])
		return
	}

	// the volumes balance has no mb column
	if !startsim(tst, "scen1.sim") {
		return
	}
	err = SaveCsv("/tmp/batchads", "t_out03b.csv", chk.Verbose)
	if err != nil {
		tst.Errorf("cannot save csv file: %v", err)
		return
	}
	b, err = io.ReadFile("/tmp/batchads/t_out03b.csv")
	if err != nil {
		tst.Errorf("cannot read csv file back: %v", err)
		return
	}
	lines = strings.Split(strings.TrimSpace(string(b)), "\n")
	if lines[0] != "t,c,q" {
		tst.Errorf("wrong header: %q", lines[0])
	}
}
