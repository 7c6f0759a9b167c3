// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/mjmahoneyCU/batch-adsorption/inp"
	"github.com/mjmahoneyCU/batch-adsorption/sweep"
)

func main() {

	// input data
	simfn := "batch1.sim"
	klo := 0.2
	khi := 2.0
	n := 9
	nwrk := 0

	// parse flags
	flag.Parse()
	if len(flag.Args()) > 0 {
		simfn = flag.Arg(0)
	}
	if len(flag.Args()) > 1 {
		klo = io.Atof(flag.Arg(1))
	}
	if len(flag.Args()) > 2 {
		khi = io.Atof(flag.Arg(2))
	}
	if len(flag.Args()) > 3 {
		n = io.Atoi(flag.Arg(3))
	}
	if len(flag.Args()) > 4 {
		nwrk = io.Atoi(flag.Arg(4))
	}

	// check extension
	if io.FnExt(simfn) == "" {
		simfn += ".sim"
	}

	// print input data
	io.Pf("\nInput data\n")
	io.Pf("==========\n")
	io.Pf("  simfn = %30s // simulation filename\n", simfn)
	io.Pf("  klo   = %30v // lowest rate coefficient\n", klo)
	io.Pf("  khi   = %30v // highest rate coefficient\n", khi)
	io.Pf("  n     = %30v // number of samples\n", n)
	io.Pf("  nwrk  = %30v // concurrent runs (0: GOMAXPROCS)\n", nwrk)
	io.Pf("\n")

	// generator re-reads the input file with a trial rate coefficient
	gen := func(x []float64) (*inp.Simulation, error) {
		sim, err := inp.ReadSim(simfn, false)
		if err != nil {
			return nil, err
		}
		mat := sim.Mdb.Get(sim.Batch.Mat)
		if mat == nil {
			return nil, chk.Err("cannot find material %q", sim.Batch.Mat)
		}
		prm := mat.Prms.Find("k")
		if prm == nil {
			prm = mat.Prms.Find("ka")
		}
		if prm == nil {
			return nil, chk.Err("material %q has no rate coefficient", mat.Name)
		}
		prm.V = x[0]
		return sim, nil
	}

	// run study
	finals, err := sweep.Range(gen, klo, khi, n, nwrk)
	if err != nil {
		io.PfRed("study failed\n%v\n", err)
		return
	}

	// results table
	io.Pf("\n%14s%14s%14s\n", "k", "c_final", "q_final")
	ks := make([]float64, n)
	cs := make([]float64, n)
	qs := make([]float64, n)
	for i, f := range finals {
		ks[i], cs[i], qs[i] = f.X, f.C, f.Q
		io.Pf("%14.6e%14.6e%14.6e\n", f.X, f.C, f.Q)
	}

	// save results
	sim, err := inp.ReadSim(simfn, false)
	if err != nil {
		io.PfRed("cannot load simulation\n%v\n", err)
		return
	}
	type Results struct{ K, C, Q []float64 }
	res := Results{ks, cs, qs}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	err = enc.Encode(&res)
	if err != nil {
		io.PfRed("cannot encode results\n")
		return
	}
	os.MkdirAll(sim.DirOut, 0777)
	fn := path.Join(sim.DirOut, sim.Key+"_ratestudy.dat")
	io.WriteFile(fn, &buf)
	io.Pf("file <%s> written\n", fn)

	// show figure
	plt.Plot(ks, cs, "'bo-', label='final c', clip_on=0")
	plt.Gll("$k$", "$c$", "")
	plt.Show()
}
