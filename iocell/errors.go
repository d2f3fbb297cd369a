// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every *ConfigError
	ErrInvalidConfig = errors.New("iocell: invalid configuration")

	// ErrNumerical is matched by every *NumericalError
	ErrNumerical = errors.New("iocell: non-finite value")

	// ErrNotReady is returned by Run when the simulation has already been run
	ErrNotReady = errors.New("iocell: simulation already run, call Init first")
)

// ConfigError reports an invalid run configuration or parameter name
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("iocell: invalid config: %s = %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// NumericalError reports the first non-finite current, rate or state value
// met in a strict run
type NumericalError struct {

	// compartment being updated
	Compartment Compartments

	// name of the non-finite quantity
	Var string

	// phase of the run
	Phase Phases

	// total micro-step count, 0 = first step of the run
	Step int

	// simulation clock at the start of the step, msec
	Time float64
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("iocell: non-finite %s in %v at step %d (%v, t = %g ms)", e.Var, e.Compartment, e.Step, e.Phase, e.Time)
}

func (e *NumericalError) Unwrap() error { return ErrNumerical }
