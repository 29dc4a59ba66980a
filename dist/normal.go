// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/decred/dcrrand/rngcore"
)

// isFinite returns whether v is neither infinite nor NaN.
func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// StandardNormal returns a sample from the normal distribution with mean 0 and
// standard deviation 1.
func StandardNormal(src rngcore.Source) float64 {
	return ziggurat(src, true, zigNorm, normPDF, normZeroCase)
}

// StandardExp returns a sample from the exponential distribution with rate 1.
func StandardExp(src rngcore.Source) float64 {
	return ziggurat(src, false, zigExp, expPDF, expZeroCase)
}

// Normal is the normal distribution N(mean, stddev^2).
type Normal struct {
	mean, stddev float64
}

// NewNormal returns a normal distribution.  An error with ErrInvalidParam is
// returned when the mean is not finite or the standard deviation is negative
// or not finite.
func NewNormal(mean, stddev float64) (Normal, error) {
	if !isFinite(mean) || !isFinite(stddev) || stddev < 0 {
		str := fmt.Sprintf("invalid normal parameters mean %v, stddev %v",
			mean, stddev)
		return Normal{}, makeError(ErrInvalidParam, str)
	}
	return Normal{mean: mean, stddev: stddev}, nil
}

// Mean returns the mean of the distribution.
func (n Normal) Mean() float64 {
	return n.mean
}

// StdDev returns the standard deviation of the distribution.
func (n Normal) StdDev() float64 {
	return n.stddev
}

// Sample returns a sample from the distribution.
func (n Normal) Sample(src rngcore.Source) float64 {
	return n.mean + n.stddev*StandardNormal(src)
}

// LogNormal is the distribution of exp(X) where X is normally distributed.
type LogNormal struct {
	norm Normal
}

// NewLogNormal returns a log-normal distribution where mu and sigma are the
// mean and standard deviation of the logarithm of the samples.
func NewLogNormal(mu, sigma float64) (LogNormal, error) {
	norm, err := NewNormal(mu, sigma)
	if err != nil {
		return LogNormal{}, err
	}
	return LogNormal{norm: norm}, nil
}

// Sample returns a sample from the distribution.
func (l LogNormal) Sample(src rngcore.Source) float64 {
	return math.Exp(l.norm.Sample(src))
}

// Exp is the exponential distribution with rate lambda.
type Exp struct {
	invLambda float64
}

// NewExp returns an exponential distribution with rate lambda.  An error with
// ErrInvalidParam is returned unless lambda is positive.  An infinite rate
// always samples zero.
func NewExp(lambda float64) (Exp, error) {
	if math.IsNaN(lambda) || lambda <= 0 {
		str := fmt.Sprintf("exponential rate %v is not positive", lambda)
		return Exp{}, makeError(ErrInvalidParam, str)
	}
	return Exp{invLambda: 1 / lambda}, nil
}

// Sample returns a sample from the distribution.
func (e Exp) Sample(src rngcore.Source) float64 {
	return StandardExp(src) * e.invLambda
}
