// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/decred/dcrrand/rngcore"
)

const (
	// zigLayers is the number of layers of the ziggurats.  A layer is
	// selected by the low 8 bits of a word.
	zigLayers = 256

	// zigNormR is the start of the tail of the normal ziggurat and zigNormV
	// is the area of each of its layers.
	zigNormR = 3.6541528853610088
	zigNormV = 0.00492867323399

	// zigExpR is the start of the tail of the exponential ziggurat and
	// zigExpV is the area of each of its layers.
	zigExpR = 7.69711747013104972
	zigExpV = 0.0039496598225815571993
)

// zigTable holds the right edges x and the unnormalized density f at those
// edges for each layer.  x[0] is the width of a rectangle with the same area
// as the base layer including its tail, x[zigLayers] is zero and
// f[zigLayers] is one.
type zigTable struct {
	x [zigLayers + 1]float64
	f [zigLayers + 1]float64
}

// newZigTable computes the layer edges for a decreasing density pdf with
// inverse pdfInv, tail start r, and layer area v.
func newZigTable(r, v float64, pdf, pdfInv func(float64) float64) *zigTable {
	var t zigTable
	t.x[0] = v / pdf(r)
	t.x[1] = r
	for i := 1; i < zigLayers-1; i++ {
		y := v/t.x[i] + pdf(t.x[i])
		if y >= 1 {
			t.x[i+1] = 0
			continue
		}
		t.x[i+1] = pdfInv(y)
	}
	t.x[zigLayers] = 0
	for i := 0; i < zigLayers; i++ {
		t.f[i] = pdf(t.x[i])
	}
	t.f[zigLayers] = 1
	return &t
}

func normPDF(x float64) float64    { return math.Exp(-x * x / 2) }
func normPDFInv(y float64) float64 { return math.Sqrt(-2 * math.Log(y)) }
func expPDF(x float64) float64     { return math.Exp(-x) }
func expPDFInv(y float64) float64  { return -math.Log(y) }

var (
	zigNorm = newZigTable(zigNormR, zigNormV, normPDF, normPDFInv)
	zigExp  = newZigTable(zigExpR, zigExpV, expPDF, expPDFInv)
)

// normZeroCase samples the tail of the normal distribution beyond zigNormR on
// the side given by the sign of u.
func normZeroCase(src rngcore.Source, u float64) float64 {
	var x float64
	for {
		x = math.Log(Float64Open(src)) / zigNormR
		y := math.Log(Float64Open(src))
		if -2*y >= x*x {
			break
		}
	}
	if u < 0 {
		return x - zigNormR
	}
	return zigNormR - x
}

// expZeroCase samples the tail of the exponential distribution beyond
// zigExpR.
func expZeroCase(src rngcore.Source, _ float64) float64 {
	return zigExpR - math.Log(Float64Open(src))
}

// ziggurat draws from the distribution described by the table.  A symmetric
// distribution is sampled on both sides of zero.
func ziggurat(src rngcore.Source, symmetric bool, t *zigTable,
	pdf func(float64) float64,
	zeroCase func(rngcore.Source, float64) float64) float64 {

	for {
		bits := src.Uint64()
		i := int(bits & 0xff)

		// The remaining bits form the float, so they are independent of the
		// layer.
		var u float64
		if symmetric {
			u = 2*(float64(bits>>12)*0x1p-52) - 1
		} else {
			u = float64(bits>>11) * 0x1p-53
		}

		x := u * t.x[i]
		if math.Abs(x) < t.x[i+1] {
			return x
		}
		if i == 0 {
			return zeroCase(src, u)
		}
		if t.f[i+1]+(t.f[i]-t.f[i+1])*Float64(src) < pdf(x) {
			return x
		}
	}
}
