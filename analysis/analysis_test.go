// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"math"
	"testing"

	"github.com/emer/iocell/iocell"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-9

func TestPeaks(t *testing.T) {
	tsts := []struct {
		x   []float64
		cor []int
	}{
		{[]float64{0, 1, 0, 2, 0}, []int{1, 3}},
		{[]float64{0, 1, 1, 1, 0}, []int{2}},
		{[]float64{0, 1, 1, 0}, []int{1}},
		{[]float64{0, 1, 1, 2, 0}, []int{3}},
		{[]float64{3, 2, 1, 2, 3}, nil},
		{[]float64{0, 1, 1}, nil},
		{[]float64{1}, nil},
		{nil, nil},
	}
	for _, ts := range tsts {
		pk := Peaks(ts.x)
		if len(pk) != len(ts.cor) {
			t.Errorf("x: %v peaks: %v, cor: %v\n", ts.x, pk, ts.cor)
			continue
		}
		for i := range pk {
			if pk[i] != ts.cor[i] {
				t.Errorf("x: %v peaks: %v, cor: %v\n", ts.x, pk, ts.cor)
				break
			}
		}
	}
}

func sine(n int, dt, hz, amp float64) (tm, v []float64) {
	tm = make([]float64, n)
	v = make([]float64, n)
	for i := range tm {
		tm[i] = float64(i+1) * dt
		v[i] = -60 + amp*math.Sin(2*math.Pi*hz*tm[i]/1000)
	}
	return
}

func TestFrequency(t *testing.T) {
	// 10 Hz sampled every 0.5 msec: peaks exactly every 100 msec
	tm, v := sine(2000, 0.5, 10, 5)
	if f := Frequency(tm, v); math.Abs(f-10) > 1e-6 {
		t.Errorf("frequency: %v, cor: 10\n", f)
	}
	// two peaks are not enough
	tm, v = sine(400, 0.5, 10, 5)
	if f := Frequency(tm, v); f != 0 {
		t.Errorf("frequency with 2 peaks: %v, cor: 0\n", f)
	}
	flat := make([]float64, len(tm))
	if f := Frequency(tm, flat); f != 0 {
		t.Errorf("flat frequency: %v, cor: 0\n", f)
	}
}

func TestAmplitude(t *testing.T) {
	if a := Amplitude([]float64{-70, -55, -62, -48, -66}); math.Abs(a-22) > difTol {
		t.Errorf("amplitude: %v, cor: 22\n", a)
	}
	if a := Amplitude(nil); a != 0 {
		t.Errorf("empty amplitude: %v, cor: 0\n", a)
	}
	if a := Amplitude([]float64{-60}); a != 0 {
		t.Errorf("single amplitude: %v, cor: 0\n", a)
	}
	for _, v := range [][]float64{{math.NaN(), -60, -50}, {-60, math.NaN(), -50}, {-60, -50, math.NaN()}} {
		if a := Amplitude(v); !math.IsNaN(a) {
			t.Errorf("v: %v amplitude: %v, cor: NaN\n", v, a)
		}
	}
}

func TestSummarize(t *testing.T) {
	tr := iocell.NewTrace(2000)
	tm, v := sine(2000, 0.5, 10, 5)
	for i := range tm {
		row := tr.Row(i)
		row[iocell.TimeMs] = tm[i]
		row[iocell.SomaV] = v[i]
	}
	sm := Summarize(tr, iocell.SomaV)
	if sm.NPeaks != 10 {
		t.Errorf("NPeaks: %v, cor: 10\n", sm.NPeaks)
	}
	if math.Abs(sm.Freq-10) > 1e-6 {
		t.Errorf("Freq: %v, cor: 10\n", sm.Freq)
	}
	if math.Abs(sm.Amp-10) > 1e-6 {
		t.Errorf("Amp: %v, cor: 10\n", sm.Amp)
	}
}

func TestAppliedCurrentSweep(t *testing.T) {
	// with more applied current the dendrite oscillation shrinks and the
	// soma oscillates faster: about 13.1, 7.4, 0.006 mV and 8.1, 9.3, 11.3 Hz
	var amps, freqs []float64
	for _, app := range []float64{0, 0.5, 1} {
		p := &iocell.Params{}
		p.Defaults()
		p.Run.Skip = 1
		p.Run.SimSeconds = 1
		p.Stim.App = app
		tr, err := iocell.Simulate(p, nil)
		if err != nil {
			t.Fatal(err)
		}
		amps = append(amps, Summarize(tr, iocell.DendV).Amp)
		freqs = append(freqs, Summarize(tr, iocell.SomaV).Freq)
	}
	for i := 1; i < len(amps); i++ {
		if !(amps[i] < amps[i-1]) {
			t.Errorf("dendrite amplitude should fall with I_app: %v\n", amps)
		}
		if !(freqs[i] > freqs[i-1]) {
			t.Errorf("soma frequency should rise with I_app: %v\n", freqs)
		}
	}
	if !(amps[0] > 10 && amps[2] < 1) {
		t.Errorf("dendrite amplitudes: %v\n", amps)
	}
}
