// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

import (
	"github.com/emer/iocell/noise"
)

// Sim runs one simulation of a cell: an unrecorded transient followed by
// the recorded epochs.  Each Sim owns its own State, Time and noise Source,
// so separate Sims can run concurrently as long as they do not share Params.
type Sim struct {

	// parameters, updated by NewSim
	Params *Params

	// current cell state
	State State

	// clock and counters
	Time Time

	// noise samples, one per dendrite update when Stim.NoiseAmp != 0
	Noise noise.Source
}

// NewSim returns a new Sim for given params, initialized and ready to Run.
// src may be nil when Stim.NoiseAmp is 0.  Returns a *ConfigError if the
// run configuration is invalid.
func NewSim(p *Params, src noise.Source) (*Sim, error) {
	src, err := configure(p, src)
	if err != nil {
		return nil, err
	}
	sm := &Sim{Params: p, Noise: src}
	sm.Init()
	return sm, nil
}

// configure updates the derived params and validates them, returning the
// noise source to use: Zero for a nil src without noise.
func configure(p *Params, src noise.Source) (noise.Source, error) {
	p.Update()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		if p.Stim.NoiseAmp != 0 {
			return nil, &ConfigError{Field: "I_noise_amp", Value: p.Stim.NoiseAmp, Reason: "requires a noise source"}
		}
		src = noise.Zero{}
	}
	return src, nil
}

// Init sets the state to the fixed initial conditions and resets the clock
func (sm *Sim) Init() {
	sm.State.Init()
	sm.Time.Reset()
}

// Step runs one micro-step of all three compartments.  The soma reads the
// axon and dendrite voltages from the start of the step.  The axon and
// dendrite read the start-of-step soma voltage, or the updated one if
// Run.Sequential.  If rec is non-nil the step's currents and pre-step
// voltages are written to it.  In a Strict run, a non-finite value stops
// the step with a *NumericalError.
func (sm *Sim) Step(rec []float64) error {
	p := sm.Params
	st := &sm.State
	vSoma, vAxon, vDend := st.Soma.V, st.Axon.V, st.Dend.V
	strict := p.Run.Strict

	if bad := p.StepSoma(&st.Soma, vAxon, vDend, rec); bad != "" && strict {
		return sm.numErr(Soma, bad)
	}
	if p.Run.Sequential {
		vSoma = st.Soma.V
	}
	if bad := p.StepAxon(&st.Axon, vSoma, rec); bad != "" && strict {
		return sm.numErr(Axon, bad)
	}
	n := 0.0
	if p.Stim.NoiseAmp != 0 {
		n = sm.Noise.NormFloat64()
	}
	if bad := p.StepDend(&st.Dend, vSoma, sm.Time.T, n, rec); bad != "" && strict {
		return sm.numErr(Dend, bad)
	}
	sm.Time.StepInc(p.Run.Delta)
	return nil
}

func (sm *Sim) numErr(cp Compartments, nm string) error {
	return &NumericalError{Compartment: cp, Var: nm, Phase: sm.Time.Phase, Step: sm.Time.StepTot, Time: sm.Time.T}
}

// Run runs the transient and recording phases from the current state,
// returning the recorded Trace.  The time column holds the clock at the
// end of each epoch, less the transient duration unless Run.AbsTime.
// Run can only be called once after Init: otherwise it returns ErrNotReady.
// Params edited since NewSim are updated and validated again, returning a
// *ConfigError before any step if invalid.  On a numerical error no Trace
// is returned.
func (sm *Sim) Run() (*Trace, error) {
	if sm.Time.Phase != Ready {
		return nil, ErrNotReady
	}
	src, err := configure(sm.Params, sm.Noise)
	if err != nil {
		return nil, err
	}
	sm.Noise = src
	rp := &sm.Params.Run
	nskip := rp.NSkip()
	nepochs := rp.NEpochs()
	tr := NewTrace(nepochs)

	sm.Time.PhaseStart(Transient)
	for i := 0; i < nskip; i++ {
		if err := sm.Step(nil); err != nil {
			return nil, err
		}
	}

	sm.Time.PhaseStart(Recording)
	for ep := 0; ep < nepochs; ep++ {
		sm.Time.Epoch = ep
		row := tr.Row(ep)
		for i := 0; i < rp.RecordEvery; i++ {
			if err := sm.Step(row); err != nil {
				return nil, err
			}
		}
		if rp.AbsTime {
			row[TimeMs] = sm.Time.T
		} else {
			row[TimeMs] = sm.Time.T - sm.Params.SkipMs
		}
	}
	sm.Time.Phase = Done
	return tr, nil
}

// Simulate runs a complete simulation with given params and noise source
// (nil if no noise), returning the recorded Trace
func Simulate(p *Params, src noise.Source) (*Trace, error) {
	sm, err := NewSim(p, src)
	if err != nil {
		return nil, err
	}
	return sm.Run()
}
