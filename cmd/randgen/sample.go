// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/decred/dcrrand/dist"
	"github.com/decred/dcrrand/rngcore"
)

// sampler formats one sample drawn from a source.
type sampler func(src rngcore.Source) string

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// floatSampler adapts a float64 distribution.
func floatSampler[D interface {
	Sample(rngcore.Source) float64
}](d D, err error) (sampler, error) {
	if err != nil {
		return nil, err
	}
	return func(src rngcore.Source) string {
		return formatFloat(d.Sample(src))
	}, nil
}

// params returns the distribution parameters padded with the defaults.  An
// error is returned when more parameters are given than the distribution
// takes or a required parameter is missing, marked by a NaN default.
func params(name string, given []float64, defaults ...float64) ([]float64, error) {
	if len(given) > len(defaults) {
		return nil, fmt.Errorf("%s takes at most %d parameters, got %d",
			name, len(defaults), len(given))
	}
	p := append([]float64(nil), given...)
	for i := len(given); i < len(defaults); i++ {
		if math.IsNaN(defaults[i]) {
			return nil, fmt.Errorf("%s requires parameter %d", name, i+1)
		}
		p = append(p, defaults[i])
	}
	return p, nil
}

// toInt64 converts an integer-valued parameter.
func toInt64(name string, v float64) (int64, error) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, fmt.Errorf("%s parameter %v is not an integer", name, v)
	}
	return int64(v), nil
}

// newSampler returns the sampler for the named distribution.
func newSampler(name string, given []float64) (sampler, error) {
	required := math.NaN()

	switch name {
	case "uniform":
		p, err := params(name, given, required, required)
		if err != nil {
			return nil, err
		}
		low, err := toInt64(name, p[0])
		if err != nil {
			return nil, err
		}
		high, err := toInt64(name, p[1])
		if err != nil {
			return nil, err
		}
		u, err := dist.NewUniform(low, high)
		if err != nil {
			return nil, err
		}
		return func(src rngcore.Source) string {
			return strconv.FormatInt(u.Sample(src), 10)
		}, nil

	case "float":
		p, err := params(name, given, 0, 1)
		if err != nil {
			return nil, err
		}
		d, err := dist.NewUniformFloat(p[0], p[1])
		return floatSampler(d, err)

	case "normal":
		p, err := params(name, given, 0, 1)
		if err != nil {
			return nil, err
		}
		d, err := dist.NewNormal(p[0], p[1])
		return floatSampler(d, err)

	case "lognormal":
		p, err := params(name, given, 0, 1)
		if err != nil {
			return nil, err
		}
		d, err := dist.NewLogNormal(p[0], p[1])
		return floatSampler(d, err)

	case "exp":
		p, err := params(name, given, 1)
		if err != nil {
			return nil, err
		}
		d, err := dist.NewExp(p[0])
		return floatSampler(d, err)

	case "gamma":
		p, err := params(name, given, required, 1)
		if err != nil {
			return nil, err
		}
		d, err := dist.NewGamma(p[0], p[1])
		return floatSampler(d, err)

	case "chisquared":
		p, err := params(name, given, required)
		if err != nil {
			return nil, err
		}
		d, err := dist.NewChiSquared(p[0])
		return floatSampler(d, err)

	case "studentt":
		p, err := params(name, given, required)
		if err != nil {
			return nil, err
		}
		d, err := dist.NewStudentT(p[0])
		return floatSampler(d, err)

	case "fisherf":
		p, err := params(name, given, required, required)
		if err != nil {
			return nil, err
		}
		d, err := dist.NewFisherF(p[0], p[1])
		return floatSampler(d, err)

	case "bernoulli":
		p, err := params(name, given, 0.5)
		if err != nil {
			return nil, err
		}
		b, err := dist.NewBernoulli(p[0])
		if err != nil {
			return nil, err
		}
		return func(src rngcore.Source) string {
			return strconv.FormatBool(b.Sample(src))
		}, nil

	case "weighted":
		weights := make([]uint32, len(given))
		for i, v := range given {
			w, err := toInt64(name, v)
			if err != nil {
				return nil, err
			}
			if w < 0 || w > math.MaxUint32 {
				return nil, fmt.Errorf("weight %d is out of range", w)
			}
			weights[i] = uint32(w)
		}
		w, err := dist.NewWeightedIndex(weights)
		if err != nil {
			return nil, err
		}
		return func(src rngcore.Source) string {
			return strconv.Itoa(w.Sample(src))
		}, nil

	case "alnum":
		if _, err := params(name, given); err != nil {
			return nil, err
		}
		return func(src rngcore.Source) string {
			return string(dist.Alphanumeric(src))
		}, nil

	case "rune":
		if _, err := params(name, given); err != nil {
			return nil, err
		}
		return func(src rngcore.Source) string {
			return string(dist.Rune(src))
		}, nil
	}

	return nil, fmt.Errorf("unknown distribution %q", name)
}
