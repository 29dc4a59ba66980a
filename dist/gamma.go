// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/decred/dcrrand/rngcore"
)

// gammaKind selects the algorithm used by a Gamma distribution.
type gammaKind uint8

const (
	gammaOne gammaKind = iota
	gammaSmallShape
	gammaLargeShape
)

// gammaLarge is the Marsaglia-Tsang method for shapes of at least one.
type gammaLarge struct {
	scale, c, d float64
}

func newGammaLarge(shape, scale float64) gammaLarge {
	d := shape - 1.0/3
	return gammaLarge{scale: scale, c: 1 / math.Sqrt(9*d), d: d}
}

func (g gammaLarge) sample(src rngcore.Source) float64 {
	for {
		x := StandardNormal(src)
		vCbrt := 1 + g.c*x
		if vCbrt <= 0 {
			continue
		}
		v := vCbrt * vCbrt * vCbrt
		u := Float64Open(src)
		xSqr := x * x
		if u < 1-0.0331*xSqr*xSqr ||
			math.Log(u) < 0.5*xSqr+g.d*(1-v+math.Log(v)) {

			return g.d * v * g.scale
		}
	}
}

// Gamma is the gamma distribution with the given shape and scale.
type Gamma struct {
	kind     gammaKind
	scale    float64
	invShape float64
	large    gammaLarge
}

// NewGamma returns a gamma distribution.  An error with ErrInvalidParam is
// returned unless both shape and scale are positive and finite.
//
// A shape of one is the exponential distribution.  Smaller shapes sample the
// distribution with the shape increased by one and scale the result by
// u^(1/shape) for a uniform u.
func NewGamma(shape, scale float64) (Gamma, error) {
	if !isFinite(shape) || shape <= 0 || !isFinite(scale) || scale <= 0 {
		str := fmt.Sprintf("invalid gamma parameters shape %v, scale %v",
			shape, scale)
		return Gamma{}, makeError(ErrInvalidParam, str)
	}
	switch {
	case shape == 1:
		return Gamma{kind: gammaOne, scale: scale}, nil
	case shape < 1:
		return Gamma{
			kind:     gammaSmallShape,
			invShape: 1 / shape,
			large:    newGammaLarge(shape+1, scale),
		}, nil
	}
	return Gamma{kind: gammaLargeShape, large: newGammaLarge(shape, scale)}, nil
}

// Sample returns a sample from the distribution.
func (g Gamma) Sample(src rngcore.Source) float64 {
	switch g.kind {
	case gammaOne:
		return StandardExp(src) * g.scale
	case gammaSmallShape:
		u := Float64Open(src)
		return g.large.sample(src) * math.Pow(u, g.invShape)
	}
	return g.large.sample(src)
}

// ChiSquared is the chi-squared distribution with k degrees of freedom.
type ChiSquared struct {
	k     float64
	gamma Gamma
}

// NewChiSquared returns a chi-squared distribution.  An error with
// ErrInvalidParam is returned unless k is positive and finite.
func NewChiSquared(k float64) (ChiSquared, error) {
	if !isFinite(k) || k <= 0 {
		str := fmt.Sprintf("chi-squared degrees of freedom %v is not "+
			"positive", k)
		return ChiSquared{}, makeError(ErrInvalidParam, str)
	}
	if k == 1 {
		return ChiSquared{k: 1}, nil
	}
	gamma, err := NewGamma(k/2, 2)
	if err != nil {
		return ChiSquared{}, err
	}
	return ChiSquared{k: k, gamma: gamma}, nil
}

// Sample returns a sample from the distribution.
func (c ChiSquared) Sample(src rngcore.Source) float64 {
	if c.k == 1 {
		n := StandardNormal(src)
		return n * n
	}
	return c.gamma.Sample(src)
}

// StudentT is Student's t distribution with n degrees of freedom.
type StudentT struct {
	n   float64
	chi ChiSquared
}

// NewStudentT returns a t distribution.  An error with ErrInvalidParam is
// returned unless n is positive and finite.
func NewStudentT(n float64) (StudentT, error) {
	chi, err := NewChiSquared(n)
	if err != nil {
		return StudentT{}, err
	}
	return StudentT{n: n, chi: chi}, nil
}

// Sample returns a sample from the distribution.
func (s StudentT) Sample(src rngcore.Source) float64 {
	norm := StandardNormal(src)
	return norm * math.Sqrt(s.n/s.chi.Sample(src))
}

// FisherF is the F distribution with m and n degrees of freedom.
type FisherF struct {
	numer, denom ChiSquared
	dofRatio     float64
}

// NewFisherF returns an F distribution.  An error with ErrInvalidParam is
// returned unless m and n are positive and finite.
func NewFisherF(m, n float64) (FisherF, error) {
	numer, err := NewChiSquared(m)
	if err != nil {
		return FisherF{}, err
	}
	denom, err := NewChiSquared(n)
	if err != nil {
		return FisherF{}, err
	}
	return FisherF{numer: numer, denom: denom, dofRatio: n / m}, nil
}

// Sample returns a sample from the distribution.
func (f FisherF) Sample(src rngcore.Source) float64 {
	return f.numer.Sample(src) / f.denom.Sample(src) * f.dofRatio
}
