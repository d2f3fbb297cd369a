// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package analysis computes summary measures of a recorded trace: the
oscillation frequency from the intervals between voltage peaks, and the
peak-to-peak amplitude.
*/
package analysis

import (
	"math"

	"github.com/emer/etable/v2/minmax"
	"github.com/emer/iocell/iocell"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Peaks returns the indexes of the local maxima of x: points strictly
// greater than their left neighbor and greater than the next differing
// point on their right.  A flat top is reported once, at its middle
// (rounded down).  The first and last points are never peaks.
func Peaks(x []float64) []int {
	var idx []int
	n := len(x)
	for i := 1; i < n-1; i++ {
		if !(x[i-1] < x[i]) {
			continue
		}
		ahead := i + 1
		for ahead < n-1 && x[ahead] == x[i] {
			ahead++
		}
		if x[ahead] < x[i] {
			idx = append(idx, (i+ahead-1)/2)
			i = ahead
		}
	}
	return idx
}

// Frequency returns the oscillation frequency in Hz of voltage v sampled at
// times t (msec): 1 / mean inter-peak interval.  Returns 0 unless there are
// more than two peaks and the mean interval is positive.
func Frequency(t, v []float64) float64 {
	return freqFmPeaks(t, Peaks(v))
}

func freqFmPeaks(t []float64, pk []int) float64 {
	if len(pk) <= 2 {
		return 0
	}
	dif := make([]float64, len(pk)-1)
	for i := range dif {
		dif[i] = t[pk[i+1]] - t[pk[i]]
	}
	period := stat.Mean(dif, nil) / 1000
	if period > 0 {
		return 1 / period
	}
	return 0
}

// Amplitude returns the peak-to-peak range max - min of v, 0 if v is empty
// and NaN if any value is NaN.
func Amplitude(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	if floats.HasNaN(v) {
		return math.NaN()
	}
	var mm minmax.F64
	mm.SetInfinity()
	for _, x := range v {
		mm.FitValInRange(x)
	}
	return mm.Range()
}

// Summary are the summary measures of one trace column
type Summary struct {

	// oscillation frequency, Hz
	Freq float64

	// peak-to-peak amplitude, mV
	Amp float64

	// number of peaks found
	NPeaks int
}

// Summarize returns the Summary of column c of the trace, using its time column
func Summarize(tr *iocell.Trace, c iocell.Col) Summary {
	v := tr.Col(c)
	pk := Peaks(v)
	return Summary{Freq: freqFmPeaks(tr.Col(iocell.TimeMs), pk), Amp: Amplitude(v), NPeaks: len(pk)}
}
