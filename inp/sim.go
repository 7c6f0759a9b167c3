// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) JSON files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/batchads
}

// BatchData holds the batch process conditions
type BatchData struct {
	Mat     string  `json:"mat"`     // material (resin) name in database
	Balance string  `json:"balance"` // phase balance kind: "volumes" or "porosity"
	C0      float64 `json:"c0"`      // initial liquid concentration
	Vresin  float64 `json:"vresin"`  // volume of resin (balance="volumes")
	Vsol    float64 `json:"vsol"`    // volume of solution (balance="volumes")
	Eps     float64 `json:"eps"`     // bed porosity (balance="porosity")
	Tend    float64 `json:"tend"`    // final time
	Npts    int     `json:"npts"`    // number of evenly spaced output samples
}

// SolverData holds ODE solver data
type SolverData struct {
	Itg  string  `json:"itg"`  // integrator name; e.g. "radau5"
	Atol float64 `json:"atol"` // absolute tolerance
	Rtol float64 `json:"rtol"` // relative tolerance
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data       `json:"data"`   // global simulation data
	Batch  BatchData  `json:"batch"`  // process conditions
	Solver SolverData `json:"solver"` // ODE solver data

	// derived
	Key    string // simulation key; e.g. mysim.sim => mysim
	DirOut string // directory to save results
	Mdb    *MatDb // materials database
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, erasePrev bool) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("sim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Batch.SetDefault()
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("sim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/batchads/" + o.Key
	}

	// create directory and erase previous simulation results
	if erasePrev {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("sim: cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// read materials database
	if o.Data.Matfile != "" {
		o.Mdb, err = ReadMat(dir, o.Data.Matfile)
		if err != nil {
			return nil, err
		}
	}
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets default values
func (o *BatchData) SetDefault() {
	o.Balance = "volumes"
	o.Npts = 300
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Itg = "radau5"
	o.Atol = 1e-8
	o.Rtol = 1e-8
}

// Check validates the process conditions. Phase geometry values (volumes,
// porosity) are validated by the corresponding balance in package batch.
func (o *BatchData) Check() error {
	if o.Mat == "" {
		return chk.Err("batch data: material name is missing")
	}
	if o.C0 < 0 {
		return Invalid("c0", o.C0, "initial concentration cannot be negative")
	}
	if o.Tend <= 0 {
		return Invalid("tend", o.Tend, "final time must be positive")
	}
	if o.Npts < 2 {
		return Invalid("npts", float64(o.Npts), "at least two output samples are required")
	}
	return nil
}

// Check validates the solver data
func (o *SolverData) Check() error {
	if o.Atol <= 0 {
		return Invalid("atol", o.Atol, "absolute tolerance must be positive")
	}
	if o.Rtol <= 0 {
		return Invalid("rtol", o.Rtol, "relative tolerance must be positive")
	}
	return nil
}
