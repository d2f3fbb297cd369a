// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

import "github.com/goki/ki/kit"

// iocell.Time contains the clock and step counters for one run
type Time struct {

	// accumulated simulation time in msec, starting at 0 at the
	// beginning of the transient and incremented by Run.Delta every micro-step.
	T float64

	// micro-step counter within the current phase
	Step int

	// total micro-step count since the last Reset
	StepTot int

	// current recording epoch: one trace row is written per epoch.
	Epoch int

	// current phase of the run
	Phase Phases
}

// Reset resets the clock and counters all back to zero, ready for a new run
func (tm *Time) Reset() {
	tm.T = 0
	tm.Step = 0
	tm.StepTot = 0
	tm.Epoch = 0
	tm.Phase = Ready
}

// PhaseStart starts a new phase, resetting the within-phase counters
func (tm *Time) PhaseStart(ph Phases) {
	tm.Phase = ph
	tm.Step = 0
	tm.Epoch = 0
}

// StepInc increments at the micro-step level
func (tm *Time) StepInc(dt float64) {
	tm.Step++
	tm.StepTot++
	tm.T += dt
}

//////////////////////////////////////////////////////////////////////////////////////
//  Phases

// Phases are the successive phases of a run.  A run goes through them in
// order and never re-enters one.
type Phases int32

//go:generate stringer -type=Phases

var KiT_Phases = kit.Enums.AddEnum(PhasesN, kit.NotBitFlag, nil)

func (ev Phases) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Phases) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Ready is the state after Init, before anything has run
	Ready Phases = iota

	// Transient is the initial period that is simulated but not recorded
	Transient

	// Recording is the period written into the trace
	Recording

	// Done is reached when the run has finished
	Done

	PhasesN
)

//////////////////////////////////////////////////////////////////////////////////////
//  Compartments

// Compartments are the three compartments of the cell
type Compartments int32

//go:generate stringer -type=Compartments

var KiT_Compartments = kit.Enums.AddEnum(CompartmentsN, kit.NotBitFlag, nil)

func (ev Compartments) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Compartments) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	Soma Compartments = iota
	Axon
	Dend

	CompartmentsN
)
