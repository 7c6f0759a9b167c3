// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"github.com/cpmech/gosl/chk"

	"github.com/mjmahoneyCU/batch-adsorption/inp"
)

// Balance defines the liquid-solid phase balance of the vessel. Ratio returns
// R, the ratio of adsorbing phase volume to liquid phase volume; the liquid
// concentration then obeys dc/dt = -R dq/dt and the conserved quantity is
//
//   c + R q = c0
//
type Balance interface {
	Ratio() float64 // solid to liquid phase-volume ratio
	Check() error   // validates data
}

// ColumnBased is a subset of Balance for vessels described by a bed porosity.
// SolidFrac returns the solid volume fraction, used to report the bound mass
// per unit of total bed volume.
type ColumnBased interface {
	SolidFrac() float64
}

// FixedVolumes implements the balance for a vessel holding a known volume of
// resin immersed in a known volume of solution
type FixedVolumes struct {
	Vresin float64 // volume of resin
	Vsol   float64 // volume of solution
}

// Ratio returns the phase-volume ratio
func (o FixedVolumes) Ratio() float64 { return o.Vresin / o.Vsol }

// Check validates data
func (o FixedVolumes) Check() error {
	if o.Vresin <= 0 {
		return inp.Invalid("vresin", o.Vresin, "resin volume must be positive")
	}
	if o.Vsol <= 0 {
		return inp.Invalid("vsol", o.Vsol, "solution volume must be positive")
	}
	return nil
}

// BedPorosity implements the balance for a packed bed described by its
// porosity; i.e. the liquid volume fraction
type BedPorosity struct {
	Eps float64 // bed porosity
}

// Ratio returns the phase-volume ratio
func (o BedPorosity) Ratio() float64 { return (1.0 - o.Eps) / o.Eps }

// SolidFrac returns the solid volume fraction
func (o BedPorosity) SolidFrac() float64 { return 1.0 - o.Eps }

// Check validates data
func (o BedPorosity) Check() error {
	if o.Eps <= 0 || o.Eps >= 1 {
		return inp.Invalid("eps", o.Eps, "porosity must be greater than zero and smaller than one")
	}
	return nil
}

// NewBalance returns a balance according to the kind keyword in the input data
func NewBalance(dat *inp.BatchData) (Balance, error) {
	switch dat.Balance {
	case "volumes":
		return FixedVolumes{dat.Vresin, dat.Vsol}, nil
	case "porosity":
		return BedPorosity{dat.Eps}, nil
	}
	return nil, chk.Err("batch: cannot find balance kind %q. e.g. {volumes, porosity}", dat.Balance)
}
