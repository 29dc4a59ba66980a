// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrrand/rngcore/mock"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestZigguratTables ensures the computed layers are monotonic and every
// layer above the base has the same area.
func TestZigguratTables(t *testing.T) {
	tables := []struct {
		name string
		t    *zigTable
		v    float64
	}{
		{"normal", zigNorm, zigNormV},
		{"exponential", zigExp, zigExpV},
	}

	for _, test := range tables {
		tbl := test.t
		if tbl.x[zigLayers] != 0 || tbl.f[zigLayers] != 1 {
			t.Errorf("%q: unexpected top layer (%v, %v)", test.name,
				tbl.x[zigLayers], tbl.f[zigLayers])
			continue
		}
		for i := 1; i < zigLayers; i++ {
			if tbl.x[i+1] >= tbl.x[i] || tbl.f[i+1] <= tbl.f[i] {
				t.Errorf("%q: layer %d is not monotonic: %s", test.name, i,
					spew.Sdump(tbl.x[i:i+2], tbl.f[i:i+2]))
				break
			}
		}
		for i := 1; i < zigLayers-2; i++ {
			area := tbl.x[i] * (tbl.f[i+1] - tbl.f[i])
			if math.Abs(area-test.v)/test.v > 1e-6 {
				t.Errorf("%q: layer %d area %v, want %v", test.name, i,
					area, test.v)
				break
			}
		}
	}
}

// TestZigguratTails ensures the base layer falls through to the tail
// algorithms, which only produce values beyond the start of the tail.
func TestZigguratTails(t *testing.T) {
	// Layer 0 with a float near one lands outside of the base rectangle.
	// The following near-one uniform keeps the tail loop short.
	const nearOne = 0xffffffffffffff00

	if v := StandardNormal(mock.NewSequenceSource(nearOne)); v < zigNormR {
		t.Errorf("positive normal tail sample %v below %v", v, zigNormR)
	}
	if v := StandardNormal(mock.NewSequenceSource(0, nearOne)); v > -zigNormR {
		t.Errorf("negative normal tail sample %v above %v", v, -zigNormR)
	}
	if v := StandardExp(mock.NewSequenceSource(nearOne)); v < zigExpR {
		t.Errorf("exponential tail sample %v below %v", v, zigExpR)
	}
}

// TestStandardNormal ensures the moments of the normal ziggurat match the
// standard normal distribution and the samples pass a binned goodness of fit
// test.
func TestStandardNormal(t *testing.T) {
	const n = 1000000
	src := testSource(10)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = StandardNormal(src)
	}

	mean, stddev := stat.MeanStdDev(samples, nil)
	if math.Abs(mean) > 0.01 {
		t.Errorf("unexpected mean %v", mean)
	}
	if math.Abs(stddev-1) > 0.01 {
		t.Errorf("unexpected standard deviation %v", stddev)
	}
	if skew := stat.Skew(samples, nil); math.Abs(skew) > 0.02 {
		t.Errorf("unexpected skewness %v", skew)
	}

	checkBinnedFit(t, "normal", samples, distuv.UnitNormal)
}

// TestStandardExp ensures the exponential ziggurat produces non-negative
// samples whose moments and distribution match the exponential distribution.
func TestStandardExp(t *testing.T) {
	const n = 1000000
	src := testSource(11)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = StandardExp(src)
		if samples[i] < 0 {
			t.Fatalf("negative sample %v", samples[i])
		}
	}
	mean := stat.Mean(samples, nil)
	if math.Abs(mean-1) > 0.01 {
		t.Errorf("unexpected mean %v", mean)
	}
	checkBinnedFit(t, "exponential", samples, distuv.Exponential{Rate: 1})
}

// quantiler is a distribution with a quantile function.
type quantiler interface {
	Quantile(p float64) float64
}

// checkBinnedFit bins samples into 20 equally probable bins of the reference
// distribution and runs a chi-squared test on the counts.
func checkBinnedFit(t *testing.T, name string, samples []float64,
	ref quantiler) {

	t.Helper()

	const bins = 20
	edges := make([]float64, bins-1)
	for i := range edges {
		edges[i] = ref.Quantile(float64(i+1) / bins)
	}
	counts := make([]int, bins)
	for _, v := range samples {
		b := 0
		for b < len(edges) && v >= edges[b] {
			b++
		}
		counts[b]++
	}
	checkChiSquared(t, name, counts, equalExpected(bins, len(samples)),
		0.001)
}

// TestNormalParams ensures parameters are validated and applied.
func TestNormalParams(t *testing.T) {
	tests := []struct {
		name    string
		mean    float64
		stddev  float64
		wantErr error
	}{
		{"valid", 10, 2, nil},
		{"zero stddev", 10, 0, nil},
		{"negative stddev", 0, -1, ErrInvalidParam},
		{"nan mean", math.NaN(), 1, ErrInvalidParam},
		{"infinite stddev", 0, math.Inf(1), ErrInvalidParam},
	}
	for _, test := range tests {
		_, err := NewNormal(test.mean, test.stddev)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%q: mismatched err -- got %v, want %v", test.name,
				err, test.wantErr)
		}
		_, err = NewLogNormal(test.mean, test.stddev)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%q: log-normal mismatched err -- got %v, want %v",
				test.name, err, test.wantErr)
		}
	}

	src := testSource(12)
	norm := Must(NewNormal(10, 2))
	samples := make([]float64, 200000)
	for i := range samples {
		samples[i] = norm.Sample(src)
	}
	mean, stddev := stat.MeanStdDev(samples, nil)
	if math.Abs(mean-10) > 0.05 || math.Abs(stddev-2) > 0.05 {
		t.Errorf("unexpected moments (%v, %v)", mean, stddev)
	}

	constant := Must(NewNormal(3, 0))
	if v := constant.Sample(src); v != 3 {
		t.Errorf("zero stddev sample %v, want 3", v)
	}

	logNorm := Must(NewLogNormal(0, 0.5))
	for i := range samples {
		samples[i] = math.Log(logNorm.Sample(src))
	}
	mean, stddev = stat.MeanStdDev(samples, nil)
	if math.Abs(mean) > 0.05 || math.Abs(stddev-0.5) > 0.05 {
		t.Errorf("unexpected log-normal moments (%v, %v)", mean, stddev)
	}
}

// TestExpParams ensures the rate is validated and applied.
func TestExpParams(t *testing.T) {
	for _, lambda := range []float64{0, -1, math.NaN()} {
		if _, err := NewExp(lambda); !errors.Is(err, ErrInvalidParam) {
			t.Errorf("lambda %v: unexpected error %v", lambda, err)
		}
	}

	src := testSource(13)
	exp := Must(NewExp(4))
	samples := make([]float64, 200000)
	for i := range samples {
		samples[i] = exp.Sample(src)
		if samples[i] < 0 {
			t.Fatalf("negative sample %v", samples[i])
		}
	}
	if mean := stat.Mean(samples, nil); math.Abs(mean-0.25) > 0.005 {
		t.Errorf("unexpected mean %v", mean)
	}

	inf := Must(NewExp(math.Inf(1)))
	if v := inf.Sample(src); v != 0 {
		t.Errorf("infinite rate sample %v, want 0", v)
	}
}
