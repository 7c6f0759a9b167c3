// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package misotherm implements adsorption isotherm models; i.e. equilibrium
// relations between the liquid concentration c and the resin loading qeq
package misotherm

import (
	"log"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Model defines the interface for adsorption isotherm models
//
//   Qeq    -- equilibrium resin loading for a given liquid concentration
//   DqeqDc -- slope of the isotherm
//
// The kinetic rate coefficients "k" and "ka" belong to the uptake kinetics,
// not to the isotherm; models must accept and skip them.
type Model interface {
	Init(prms fun.Prms) error // initialises model
	GetPrms() fun.Prms        // gets (an example) of parameters
	Qeq(c float64) float64    // computes qeq = f(c)
	DqeqDc(c float64) float64 // computes dqeq/dc
}

// New returns a new isotherm model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("isotherm model %q is not available in misotherm database", name)
	}
	return allocator(), nil
}

// GetModel returns (existent or new) isotherm model
//  simfnk    -- unique simulation filename key
//  matname   -- name of material
//  modelname -- model name
//  getnew    -- force a new allocation; i.e. do not use any model stored in database
//  Note: returns nil on errors
func GetModel(simfnk, matname, modelname string, getnew bool) Model {

	// get new model, regardless of whether it exists in database or not
	if getnew {
		m, err := New(modelname)
		if err != nil {
			return nil
		}
		return m
	}

	// search database
	key := io.Sf("%s_%s", simfnk, matname)
	cmu.Lock()
	defer cmu.Unlock()
	if m, ok := _models[key]; ok {
		return m
	}

	// if not found, get new
	m, err := New(modelname)
	if err != nil {
		return nil
	}
	_models[key] = m
	return m
}

// LogModels prints to log information on allocated models
func LogModels() {
	l := "misotherm: allocated:"
	cmu.Lock()
	for key := range _models {
		l += " " + io.Sf("%q", key)
	}
	cmu.Unlock()
	log.Println(l)
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// _models holds pre-allocated models. cmu guards it because parameter
// studies allocate models from many goroutines.
var (
	cmu     sync.Mutex
	_models = map[string]Model{}
)
