// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Material holds material data: the isotherm model of a resin and its
// constants, including the lumped mass-transfer rate coefficient "k" (or "ka")
type Material struct {
	Name  string   `json:"name"`  // name of material
	Desc  string   `json:"desc"`  // description of material
	Model string   `json:"model"` // isotherm model name; e.g. "langmuir"
	Prms  fun.Prms `json:"prms"`  // prms holds all model parameters
}

// MatsData holds a set of materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("mat: cannot read materials file %q", fn)
	}

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("mat: cannot unmarshal materials file %q:\n%v", fn, err)
	}
	return
}

// Get returns a material by name
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// RateCoef returns the lumped mass-transfer rate coefficient of a material,
// held by a parameter named "k" or "ka"
func (o Material) RateCoef() (k float64, err error) {
	prm := o.Prms.Find("k")
	if prm == nil {
		prm = o.Prms.Find("ka")
	}
	if prm == nil {
		return 0, chk.Err("mat: material %q misses rate coefficient \"k\" (or \"ka\")", o.Name)
	}
	return prm.V, nil
}

// Check verifies the material constants; all of them must be positive
func (o Material) Check() error {
	for _, p := range o.Prms {
		if p.V <= 0 {
			return Invalid(p.N, p.V, io.Sf("material %q: constant must be positive", o.Name))
		}
	}
	return nil
}
