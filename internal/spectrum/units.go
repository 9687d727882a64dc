package spectrum

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

const (
	hzPerKHz      = 1000.0
	mVPerV        = 1000.0
	decibelFactor = 20.0

	// MinMagnitude is the smallest magnitude converted to decibels. Zero
	// samples are clamped to it, so silence plots at DecibelFloor rather
	// than -Inf.
	MinMagnitude = 1e-10
)

// DecibelFloor is the level of a zero sample, -200 dB
var DecibelFloor = decibelFactor * math.Log10(MinMagnitude)

// HzToKHz returns a copy of x converted from Hz to kHz, 30 Hz maps exactly to 0.03.
func HzToKHz(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v / hzPerKHz
	}
	return out
}

// Magnitudes returns |s| for every sample
func Magnitudes(samples []complex128) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = cmplx.Abs(s)
	}
	return out
}

// Decibels converts linear magnitudes to 20*log10(|s|), clamped at DecibelFloor
func Decibels(samples []complex128) []float64 {
	out := Magnitudes(samples)
	for i, m := range out {
		out[i] = decibelFactor * math.Log10(math.Max(m, MinMagnitude))
	}
	return out
}

// Millivolts converts volt magnitudes to millivolts
func Millivolts(samples []complex128) []float64 {
	out := Magnitudes(samples)
	floats.Scale(mVPerV, out)
	return out
}
