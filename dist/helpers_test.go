// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/decred/dcrrand/chacha"
	"gonum.org/v1/gonum/stat/distuv"
)

// testSource returns a deterministic generator for statistical tests.
func testSource(seed uint64) *chacha.Source {
	return chacha.FromUint64(seed)
}

// checkChiSquared fails the test when the observed counts deviate from the
// expected counts more than a chi-squared test at the given significance level
// permits.
func checkChiSquared(t *testing.T, name string, observed []int,
	expected []float64, alpha float64) {

	t.Helper()

	var stat float64
	for i, o := range observed {
		d := float64(o) - expected[i]
		stat += d * d / expected[i]
	}
	dof := float64(len(observed) - 1)
	critical := distuv.ChiSquared{K: dof}.Quantile(1 - alpha)
	if stat > critical {
		t.Errorf("%s: chi-squared statistic %.2f exceeds critical value "+
			"%.2f (%v degrees of freedom)", name, stat, critical, dof)
	}
}

// equalExpected returns n expected counts of total/n each.
func equalExpected(n, total int) []float64 {
	e := make([]float64, n)
	for i := range e {
		e[i] = float64(total) / float64(n)
	}
	return e
}
