package spectrum

import (
	"github.com/roman-kulish/sdfplot/internal/render"
)

const (
	GenericMode Mode = "generic"
	FFTMode     Mode = "fft"
)

// Mode selects how a measurement is presented
type Mode string

// Trace is a measurement prepared for plotting: both axes unit-converted,
// index aligned, together with the plot layout for its mode.
type Trace struct {
	Mode   Mode
	X      []float64 // Frequency in kHz
	Y      []float64 // dB for GenericMode, mVrms for FFTMode
	Config render.PlotConfig
}

// Span returns the lowest and highest frequency of the trace in kHz
func (t *Trace) Span() (lo, hi float64) {
	if len(t.X) == 0 {
		return 0, 0
	}
	return t.X[0], t.X[len(t.X)-1]
}
