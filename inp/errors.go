// Copyright 2017 The Batchads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/io"

// InvalidParameterError indicates an input value outside its physical domain.
// Values are never adjusted silently; callers must fix the input and run again.
type InvalidParameterError struct {
	Name   string  // parameter name; e.g. "tend"
	Value  float64 // offending value
	Reason string  // explanation; e.g. "final time must be positive"
}

// Error returns the error message
func (e *InvalidParameterError) Error() string {
	return io.Sf("invalid parameter: %s = %v: %s", e.Name, e.Value, e.Reason)
}

// Invalid returns a new InvalidParameterError
func Invalid(name string, value float64, reason string) *InvalidParameterError {
	return &InvalidParameterError{name, value, reason}
}
