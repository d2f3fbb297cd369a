// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

import (
	"math"

	"github.com/c2h5oh/datasize"
	"github.com/emer/iocell/chans"
)

///////////////////////////////////////////////////////////////////////
//  params.go contains the cell and run parameters

// Params contains all the parameters of the three-compartment cell and
// of one simulation run.  Nothing is checked for biological plausibility:
// negative conductances etc are accepted and simply give odd trajectories.
// Update must be called after any changes.
type Params struct {

	// internal conductance coupling the compartments (g_int)
	Gint float64 `def:"0.13"`

	// surface ratio soma / dendrite (p1), expected in (0,1)
	P1 float64 `def:"0.25"`

	// surface ratio axon hillock / soma (p2), expected in (0,1)
	P2 float64 `def:"0.15"`

	// inverse membrane capacitance 1/C_m, in cm^2/uF
	S float64 `def:"1"`

	// reversal potentials, shared by all compartments
	Erev chans.Erev `display:"inline"`

	// soma conductances and channel kinetics
	Soma SomaParams `display:"inline"`

	// axon hillock conductances and channel kinetics
	Axon AxonParams `display:"inline"`

	// dendrite conductances and channel kinetics
	Dend DendParams `display:"inline"`

	// injected currents into the dendrite
	Stim StimParams `display:"inline"`

	// integration step, run length, transient and recording
	Run RunParams `display:"inline"`

	// g_int / p1 -- soma coupling to dendrite
	GSomaDend float64 `edit:"-" json:"-" toml:"-"`

	// g_int / (1 - p2) -- soma coupling to axon
	GSomaAxon float64 `edit:"-" json:"-" toml:"-"`

	// g_int / p2 -- axon coupling to soma
	GAxonSoma float64 `edit:"-" json:"-" toml:"-"`

	// g_int / (1 - p1) -- dendrite coupling to soma
	GDendSoma float64 `edit:"-" json:"-" toml:"-"`

	// start of the pulse window on the post-transient clock, msec: 200 * SimSeconds
	PulseStart float64 `edit:"-" json:"-" toml:"-"`

	// end of the pulse window on the post-transient clock, msec: 210 * SimSeconds
	PulseEnd float64 `edit:"-" json:"-" toml:"-"`

	// transient duration in msec: 1000 * Skip
	SkipMs float64 `edit:"-" json:"-" toml:"-"`
}

func (p *Params) Defaults() {
	p.Gint = 0.13
	p.P1 = 0.25
	p.P2 = 0.15
	p.S = 1
	p.Erev.Defaults()
	p.Soma.Defaults()
	p.Axon.Defaults()
	p.Dend.Defaults()
	p.Stim.Defaults()
	p.Run.Defaults()
	p.Update()
}

// Update must be called after any changes to parameters
func (p *Params) Update() {
	p.GSomaDend = p.Gint / p.P1
	p.GSomaAxon = p.Gint / (1 - p.P2)
	p.GAxonSoma = p.Gint / p.P2
	p.GDendSoma = p.Gint / (1 - p.P1)
	// note: the pulse window scales with the requested run length
	p.PulseStart = 200 * p.Run.SimSeconds
	p.PulseEnd = 210 * p.Run.SimSeconds
	p.SkipMs = 1000 * p.Run.Skip
}

// Validate checks the run configuration, returning a *ConfigError
// for the first problem found.  Cell parameters are not checked.
func (p *Params) Validate() error {
	return p.Run.Validate()
}

//////////////////////////////////////////////////////////////////////////////////////
//  SomaParams

// SomaParams are the soma conductances and channel kinetics
type SomaParams struct {

	// leak conductance (g_ls)
	Gl float64 `def:"0.016"`

	// low-threshold calcium, CaV3.1 (g_CaL)
	GCaL float64 `def:"1.1"`

	// sodium, Nav1.6 (g_Na_s)
	GNa float64 `def:"150"`

	// delayed rectifier potassium, Kv4.3 (g_Kdr_s)
	GKdr float64 `def:"9"`

	// fast potassium, Kv3.4 (g_K_s)
	GK float64 `def:"5"`

	// low-threshold calcium kinetics
	CaL chans.CaLParams `display:"no-inline"`

	// sodium kinetics
	Na chans.NaParams `display:"no-inline"`

	// delayed rectifier kinetics
	Kdr chans.KdrParams `display:"no-inline"`

	// fast potassium kinetics
	K chans.KvParams `display:"no-inline"`
}

func (sp *SomaParams) Defaults() {
	sp.Gl = 0.016
	sp.GCaL = 1.1
	sp.GNa = 150
	sp.GKdr = 9
	sp.GK = 5
	sp.CaL.Defaults()
	sp.Na.Defaults()
	sp.Kdr.Defaults()
	sp.K.Defaults()
}

//////////////////////////////////////////////////////////////////////////////////////
//  AxonParams

// AxonParams are the axon hillock conductances and channel kinetics
type AxonParams struct {

	// leak conductance (g_la)
	Gl float64 `def:"0.016"`

	// sodium (g_Na_a)
	GNa float64 `def:"240"`

	// potassium (g_K_a)
	GK float64 `def:"240"`

	// sodium kinetics
	Na chans.NaParams `display:"no-inline"`

	// potassium kinetics
	K chans.KvParams `display:"no-inline"`
}

func (ap *AxonParams) Defaults() {
	ap.Gl = 0.016
	ap.GNa = 240
	ap.GK = 240
	ap.Na.SetAxon()
	ap.K.Defaults()
}

//////////////////////////////////////////////////////////////////////////////////////
//  DendParams

// DendParams are the dendrite conductances, channel kinetics and calcium pool
type DendParams struct {

	// leak conductance (g_ld)
	Gl float64 `def:"0.01532"`

	// high-threshold calcium, CaV2.1 (g_CaH)
	GCaH float64 `def:"4.5"`

	// calcium-dependent potassium, KCa1.1 / BK (g_K_Ca)
	GKCa float64 `def:"35"`

	// h current, HCN (g_h)
	Gh float64 `def:"0.12"`

	// high-threshold calcium kinetics
	CaH chans.CaHParams `display:"no-inline"`

	// calcium-dependent potassium kinetics
	KCa chans.KCaParams `display:"no-inline"`

	// h current kinetics
	H chans.HParams `display:"no-inline"`

	// intracellular calcium pool
	Ca chans.CaPoolParams `display:"no-inline"`
}

func (dp *DendParams) Defaults() {
	dp.Gl = 0.01532
	dp.GCaH = 4.5
	dp.GKCa = 35
	dp.Gh = 0.12
	dp.CaH.Defaults()
	dp.KCa.Defaults()
	dp.H.Defaults()
	dp.Ca.Defaults()
}

//////////////////////////////////////////////////////////////////////////////////////
//  StimParams

// StimParams are the currents injected into the dendrite
type StimParams struct {

	// constant applied current (I_app)
	App float64 `def:"0"`

	// pulse current, on only inside the pulse window (I_pulse10ms)
	Pulse float64 `def:"0"`

	// noise amplitude: the noise current is 5 * NoiseAmp * a standard normal sample (I_noise_amp)
	NoiseAmp float64 `def:"0"`
}

func (sp *StimParams) Defaults() {
	sp.App = 0
	sp.Pulse = 0
	sp.NoiseAmp = 0
}

//////////////////////////////////////////////////////////////////////////////////////
//  RunParams

// RunParams are the integration and recording parameters of one run
type RunParams struct {

	// initial transient to simulate and discard, in seconds
	Skip float64 `def:"0" min:"0"`

	// recorded simulation length, in seconds
	SimSeconds float64 `def:"10" min:"0"`

	// integration step, in msec
	Delta float64 `def:"0.025" min:"0"`

	// number of micro-steps per recorded row
	RecordEvery int `def:"20" min:"1"`

	// abort the run with a *NumericalError on the first non-finite current, rate or state
	// value -- otherwise NaN / Inf propagate silently through the rest of the run
	Strict bool `def:"true"`

	// axon and dendrite read the soma voltage already updated in the same micro-step,
	// instead of the voltage from the start of the micro-step
	Sequential bool `def:"false"`

	// record the absolute clock, including the transient, in the time column
	AbsTime bool `def:"false"`

	// maximum trace buffer size -- 0 = no limit
	MaxTrace datasize.ByteSize `def:"1GB"`
}

func (rp *RunParams) Defaults() {
	rp.Skip = 0
	rp.SimSeconds = 10
	rp.Delta = 0.025
	rp.RecordEvery = 20
	rp.Strict = true
	rp.Sequential = false
	rp.AbsTime = false
	rp.MaxTrace = datasize.GB
}

// NSkip returns the number of micro-steps in the transient phase
func (rp *RunParams) NSkip() int {
	return int(1000*rp.Skip/rp.Delta + 0.5)
}

// NEpochs returns the number of recorded rows
func (rp *RunParams) NEpochs() int {
	return int(rp.SimSeconds*1000/rp.Delta/float64(rp.RecordEvery) + .5)
}

// TraceBytes returns the size of the trace buffer for NEpochs rows
func (rp *RunParams) TraceBytes() datasize.ByteSize {
	return datasize.ByteSize(rp.NEpochs()) * datasize.ByteSize(NCols) * 8
}

// maxSteps bounds the step counts so they convert to int exactly
const maxSteps = 1 << 53

// Validate checks the run params, returning a *ConfigError for the first problem
func (rp *RunParams) Validate() error {
	switch {
	case !isFinite(rp.Delta) || rp.Delta <= 0:
		return &ConfigError{Field: "delta", Value: rp.Delta, Reason: "must be finite and > 0"}
	case !isFinite(rp.SimSeconds) || rp.SimSeconds <= 0:
		return &ConfigError{Field: "sim_seconds", Value: rp.SimSeconds, Reason: "must be finite and > 0"}
	case !isFinite(rp.Skip) || rp.Skip < 0:
		return &ConfigError{Field: "skip_initial_transient_seconds", Value: rp.Skip, Reason: "must be finite and >= 0"}
	case rp.RecordEvery <= 0:
		return &ConfigError{Field: "record_every", Value: float64(rp.RecordEvery), Reason: "must be > 0"}
	}
	if ns := 1000*rp.Skip/rp.Delta + 0.5; ns >= maxSteps {
		return &ConfigError{Field: "skip_initial_transient_seconds", Value: rp.Skip, Reason: "too many transient steps"}
	}
	ne := rp.SimSeconds*1000/rp.Delta/float64(rp.RecordEvery) + .5
	if ne < 1 {
		return &ConfigError{Field: "sim_seconds", Value: rp.SimSeconds, Reason: "gives no recorded epochs for this delta and record_every"}
	}
	if ne*float64(rp.RecordEvery) >= maxSteps {
		return &ConfigError{Field: "sim_seconds", Value: rp.SimSeconds, Reason: "too many recorded steps"}
	}
	if rp.MaxTrace > 0 && rp.TraceBytes() > rp.MaxTrace {
		return &ConfigError{Field: "sim_seconds", Value: rp.SimSeconds,
			Reason: "trace of " + rp.TraceBytes().HumanReadable() + " exceeds MaxTrace " + rp.MaxTrace.HumanReadable()}
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
