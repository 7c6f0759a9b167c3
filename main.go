// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/mjmahoneyCU/batch-adsorption/batch"
	"github.com/mjmahoneyCU/batch-adsorption/inp"
	"github.com/mjmahoneyCU/batch-adsorption/misotherm"
	"github.com/mjmahoneyCU/batch-adsorption/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
		inp.FlushLog()
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveCsv := io.ArgToBool(3, true)
	savePlot := io.ArgToBool(4, false)

	// message
	if verbose {
		io.PfWhite("\nBatchAds -- Batch Adsorption Kinetics\n\n")
		io.Pf("Copyright 2017 The Batchads Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"save time series file", "saveCsv", saveCsv,
			"save time series plot", "savePlot", savePlot,
		))
	}

	// profiling?
	defer utl.DoProf(false)()

	// simulation data
	sim, err := inp.ReadSim(fnamepath, erasePrev)
	if err != nil {
		chk.Panic("cannot read simulation data:\n%v", err)
	}
	err = inp.InitLogFile(sim.DirOut, sim.Key)
	if err != nil {
		chk.Panic("cannot create log file:\n%v", err)
	}

	// run simulation
	sol, err := batch.NewSolver(sim)
	if err != nil {
		chk.Panic("cannot allocate solver:\n%v", err)
	}
	sol.Verbose = verbose
	res, err := sol.Run()
	if err != nil {
		chk.Panic("run failed:\n%v", err)
	}
	misotherm.LogModels()

	// results
	out.Start(sim, res)
	if verbose {
		out.Report()
	}
	if saveCsv {
		err = out.SaveCsv(sim.DirOut, sim.Key+".csv", verbose)
		if err != nil {
			chk.Panic("cannot save results:\n%v", err)
		}
	}
	if savePlot {
		out.Splot("liquid concentration")
		out.Plot("t", "c", sim.Batch.Mat, plt.Fmt{C: "b", Ls: "-"})
		out.Splot("resin loading")
		out.Plot("t", "q", sim.Batch.Mat, plt.Fmt{C: "r", Ls: "-"})
		out.Draw(sim.DirOut, sim.Key+".png", false, nil)
	}
}
