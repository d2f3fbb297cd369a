// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package noise provides the sources of standard-normal samples that drive the
dendrite noise current.  A Source is owned by one simulation run and is asked
for exactly one sample per dendrite update when the noise amplitude is non-zero,
so a seeded or fixed-sequence source makes a noisy run reproducible.
*/
package noise

import (
	"fmt"

	"github.com/goki/ki/kit"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source supplies independent standard-normal (mean 0, variance 1) samples.
type Source interface {
	NormFloat64() float64
}

// Zero is a Source that always returns 0
type Zero struct{}

func (Zero) NormFloat64() float64 { return 0 }

// Func adapts a plain function to a Source
type Func func() float64

func (f Func) NormFloat64() float64 { return f() }

// Seq is a Source that cycles through a fixed sequence of values.
// An empty sequence returns 0.
type Seq struct {
	Vals []float64
	idx  int
}

// NewSeq returns a new Seq cycling through given values
func NewSeq(vals ...float64) *Seq {
	return &Seq{Vals: vals}
}

func (sq *Seq) NormFloat64() float64 {
	if len(sq.Vals) == 0 {
		return 0
	}
	v := sq.Vals[sq.idx]
	sq.idx = (sq.idx + 1) % len(sq.Vals)
	return v
}

// Reset restarts the sequence from the first value
func (sq *Seq) Reset() {
	sq.idx = 0
}

// Gauss is a Source drawing from a seeded unit normal distribution.
// Two Gauss sources with the same seed produce the same samples.
type Gauss struct {
	dist distuv.Normal
}

// NewGauss returns a new Gauss source with given seed
func NewGauss(seed uint64) *Gauss {
	return &Gauss{dist: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}}
}

func (gs *Gauss) NormFloat64() float64 {
	return gs.dist.Rand()
}

//////////////////////////////////////////////////////////////////////////////////////
//  Kind

// Kind are the different kinds of noise Source that can be configured
type Kind int32

//go:generate stringer -type=Kind

var KiT_Kind = kit.Enums.AddEnum(KindN, kit.NotBitFlag, nil)

func (ev Kind) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Kind) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

func (ev Kind) MarshalText() ([]byte, error)  { return []byte(ev.String()), nil }
func (ev *Kind) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

// FromString sets the kind from its name
func (ev *Kind) FromString(s string) error {
	for k := Off; k < KindN; k++ {
		if k.String() == s {
			*ev = k
			return nil
		}
	}
	return fmt.Errorf("noise.Kind: %q is not a valid kind", s)
}

// The noise source kinds
const (
	// Off gives a Zero source
	Off Kind = iota

	// Gaussian gives a seeded Gauss source
	Gaussian

	// Sequence gives a Seq source cycling through Params.Seq
	Sequence

	KindN
)

// Params select the noise Source used for a run
type Params struct {

	// which kind of source to use
	Kind Kind `def:"Gaussian"`

	// random seed for the Gaussian kind
	Seed uint64 `def:"1"`

	// values cycled through by the Sequence kind
	Seq []float64
}

func (np *Params) Defaults() {
	np.Kind = Gaussian
	np.Seed = 1
}

// New returns a new Source according to the params.
// Each call returns an independent Source, starting from the beginning
// of its sequence.
func (np *Params) New() Source {
	switch np.Kind {
	case Gaussian:
		return NewGauss(np.Seed)
	case Sequence:
		vals := make([]float64, len(np.Seq))
		copy(vals, np.Seq)
		return NewSeq(vals...)
	default:
		return Zero{}
	}
}
