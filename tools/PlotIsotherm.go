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

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/mjmahoneyCU/batch-adsorption/ana"
	"github.com/mjmahoneyCU/batch-adsorption/batch"
	"github.com/mjmahoneyCU/batch-adsorption/inp"
	"github.com/mjmahoneyCU/batch-adsorption/misotherm"
)

func main() {

	// input data
	simfn := "batch1.sim"
	cmax := 30.0
	npts := 101

	// parse flags
	flag.Parse()
	if len(flag.Args()) > 0 {
		simfn = flag.Arg(0)
	}
	if len(flag.Args()) > 1 {
		cmax = io.Atof(flag.Arg(1))
	}
	if len(flag.Args()) > 2 {
		npts = io.Atoi(flag.Arg(2))
	}

	// check extension
	if io.FnExt(simfn) == "" {
		simfn += ".sim"
	}

	// print input data
	io.Pf("\nInput data\n")
	io.Pf("==========\n")
	io.Pf("  simfn = %30s // simulation filename\n", simfn)
	io.Pf("  cmax  = %30v // max concentration\n", cmax)
	io.Pf("  npts  = %30v // number of points\n", npts)
	io.Pf("\n")

	// load simulation
	sim, err := inp.ReadSim(simfn, false)
	if err != nil {
		io.PfRed("cannot load simulation\n%v\n", err)
		return
	}

	// get material data
	mat := sim.Mdb.Get(sim.Batch.Mat)
	if mat == nil {
		io.PfRed("cannot get material\n")
		return
	}
	io.Pforan("mat = %v\n", mat)

	// get and initialise model
	mdl := misotherm.GetModel(sim.Key, mat.Name, mat.Model, false)
	if mdl == nil {
		io.PfRed("cannot allocate model\n")
		return
	}
	err = mdl.Init(mat.Prms)
	if err != nil {
		io.PfRed("cannot initialise model\n%v\n", err)
		return
	}

	// isotherm curve
	cc := utl.LinSpace(0, cmax, npts)
	qq := make([]float64, npts)
	for i := 0; i < npts; i++ {
		qq[i] = mdl.Qeq(cc[i])
	}
	plt.Plot(cc, qq, io.Sf("'b-', label='%s', clip_on=0", mat.Name))

	// operating line and rest state
	bal, err := batch.NewBalance(&sim.Batch)
	if err != nil {
		io.PfRed("cannot build balance\n%v\n", err)
		return
	}
	R, c0 := bal.Ratio(), sim.Batch.C0
	oc := utl.LinSpace(0, c0, npts)
	oq := make([]float64, npts)
	for i := 0; i < npts; i++ {
		oq[i] = (c0 - oc[i]) / R
	}
	plt.Plot(oc, oq, "'k--', label='operating line', clip_on=0")

	var eq ana.Equilibrium
	eq.Init(mdl, R, c0)
	ceq := eq.Ceq()
	plt.PlotOne(ceq, mdl.Qeq(ceq), "'ro', label='rest state', clip_on=0")
	io.Pf("equilibrium liquid concentration = %v\n", ceq)
	io.Pf("equilibrium resin loading        = %v\n", mdl.Qeq(ceq))

	// save results
	type Results struct{ C, Q []float64 }
	res := Results{cc, qq}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	err = enc.Encode(&res)
	if err != nil {
		io.PfRed("cannot encode results\n")
		return
	}
	os.MkdirAll(sim.DirOut, 0777)
	fn := path.Join(sim.DirOut, mat.Name+".dat")
	io.WriteFile(fn, &buf)
	io.Pf("file <%s> written\n", fn)

	// show figure
	plt.Cross()
	plt.Gll("$c$", "$q_{eq}$", "")
	plt.Show()
}
