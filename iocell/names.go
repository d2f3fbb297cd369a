// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iocell

import "math"

// ParamNames are the names accepted by Params.Set and Params.Get,
// in their conventional order
var ParamNames = []string{
	"g_int", "p1", "p2", "g_CaL", "g_h", "g_K_Ca", "g_ld", "g_la", "g_ls", "S",
	"g_Na_s", "g_Kdr_s", "g_K_s", "g_CaH", "g_Na_a", "g_K_a",
	"V_Na", "V_K", "V_Ca", "V_h", "V_l",
	"I_app", "I_pulse10ms", "I_noise_amp",
	"skip_initial_transient_seconds", "sim_seconds", "delta", "record_every",
}

// field returns a pointer to the float64 param with given name, nil if none
func (p *Params) field(name string) *float64 {
	switch name {
	case "g_int":
		return &p.Gint
	case "p1":
		return &p.P1
	case "p2":
		return &p.P2
	case "g_CaL":
		return &p.Soma.GCaL
	case "g_h":
		return &p.Dend.Gh
	case "g_K_Ca":
		return &p.Dend.GKCa
	case "g_ld":
		return &p.Dend.Gl
	case "g_la":
		return &p.Axon.Gl
	case "g_ls":
		return &p.Soma.Gl
	case "S":
		return &p.S
	case "g_Na_s":
		return &p.Soma.GNa
	case "g_Kdr_s":
		return &p.Soma.GKdr
	case "g_K_s":
		return &p.Soma.GK
	case "g_CaH":
		return &p.Dend.GCaH
	case "g_Na_a":
		return &p.Axon.GNa
	case "g_K_a":
		return &p.Axon.GK
	case "V_Na":
		return &p.Erev.Na
	case "V_K":
		return &p.Erev.K
	case "V_Ca":
		return &p.Erev.Ca
	case "V_h":
		return &p.Erev.H
	case "V_l":
		return &p.Erev.L
	case "I_app":
		return &p.Stim.App
	case "I_pulse10ms":
		return &p.Stim.Pulse
	case "I_noise_amp":
		return &p.Stim.NoiseAmp
	case "skip_initial_transient_seconds":
		return &p.Run.Skip
	case "sim_seconds":
		return &p.Run.SimSeconds
	case "delta":
		return &p.Run.Delta
	}
	return nil
}

// Set sets the param of given name and calls Update.
// Returns a *ConfigError for an unknown name or a non-integer record_every.
func (p *Params) Set(name string, val float64) error {
	if name == "record_every" {
		if val != math.Trunc(val) || math.Abs(val) > math.MaxInt32 {
			return &ConfigError{Field: name, Value: val, Reason: "must be an integer"}
		}
		p.Run.RecordEvery = int(val)
		p.Update()
		return nil
	}
	f := p.field(name)
	if f == nil {
		return &ConfigError{Field: name, Value: val, Reason: "unknown parameter"}
	}
	*f = val
	p.Update()
	return nil
}

// Get returns the param of given name, or a *ConfigError for an unknown name
func (p *Params) Get(name string) (float64, error) {
	if name == "record_every" {
		return float64(p.Run.RecordEvery), nil
	}
	f := p.field(name)
	if f == nil {
		return 0, &ConfigError{Field: name, Value: math.NaN(), Reason: "unknown parameter"}
	}
	return *f, nil
}
