package spectrum

import (
	"fmt"

	"github.com/roman-kulish/sdfplot/internal/render"
	"github.com/roman-kulish/sdfplot/internal/sdf"
)

const (
	frequencyLabel = "Frequency (kHz)"
	decibelLabel   = "Amplitude (dB)"
	millivoltLabel = "Amplitude (mVrms)"

	tickFormat = "%g"
	fontSize   = 10
)

// Axis limits per presentation mode
var (
	ResponseXLimits = [2]float64{0.02, 20}     // kHz
	ResponseYLimits = [2]float64{-30, 20}      // dB
	FFTXLimits      = [2]float64{0, 12.8}      // kHz
	FFTYLimits      = [2]float64{0.00001, 100} // mVrms
)

var gridConfig = render.Grid{Major: true, Minor: true, Below: true}

// ModeOf returns the presentation for a measurement type. Anything that is
// not an FFT measurement is shown as a generic frequency response.
func ModeOf(t sdf.MeasurementType) Mode {
	if t == sdf.FFTMeasurement {
		return FFTMode
	}
	return GenericMode
}

// Present turns a validated measurement into a plot-ready trace.
func Present(hdr *sdf.Header, samples []complex128) (*Trace, error) {
	axis, err := AxisFor(hdr)
	if err != nil {
		return nil, err
	}
	if len(axis) != len(samples) {
		return nil, fmt.Errorf("%w: axis has %d points, samples %d", sdf.ErrPointCountMismatch, len(axis), len(samples))
	}

	var trace *Trace
	switch ModeOf(hdr.MeasHeader.MeasType) {
	case FFTMode:
		start, stop := hdr.MeasHeader.StartFreqIndex, hdr.MeasHeader.StopFreqIndex
		if trace, err = presentFFT(axis, samples, start, stop); err != nil {
			return nil, err
		}
	default:
		trace = presentResponse(axis, samples)
	}

	trace.Config.Title = hdr.MeasHeader.Title
	return trace, nil
}

func presentResponse(axis []float64, samples []complex128) *Trace {
	return &Trace{
		Mode: GenericMode,
		X:    HzToKHz(axis),
		Y:    Decibels(samples),
		Config: render.PlotConfig{
			X: render.Axis{
				Label:      frequencyLabel,
				Scale:      render.LogScale,
				Min:        ResponseXLimits[0],
				Max:        ResponseXLimits[1],
				Ticks:      ResponseTicks(),
				TickFormat: tickFormat,
			},
			Y: render.Axis{
				Label:      decibelLabel,
				Scale:      render.LinearScale,
				Min:        ResponseYLimits[0],
				Max:        ResponseYLimits[1],
				TickFormat: tickFormat,
			},
			Grid:     gridConfig,
			FontSize: fontSize,
		},
	}
}

// presentFFT keeps the alias protected region [start, stop] only
func presentFFT(axis []float64, samples []complex128, start, stop int) (*Trace, error) {
	if start < 0 || start > stop || stop >= len(axis) {
		return nil, fmt.Errorf("%w: [%d, %d] with %d points", sdf.ErrFrequencyIndex, start, stop, len(axis))
	}

	return &Trace{
		Mode: FFTMode,
		X:    HzToKHz(axis[start : stop+1]),
		Y:    Millivolts(samples[start : stop+1]),
		Config: render.PlotConfig{
			X: render.Axis{
				Label: frequencyLabel,
				Scale: render.LinearScale,
				Min:   FFTXLimits[0],
				Max:   FFTXLimits[1],
			},
			Y: render.Axis{
				Label: millivoltLabel,
				Scale: render.LogScale,
				Min:   FFTYLimits[0],
				Max:   FFTYLimits[1],
			},
			Grid:     gridConfig,
			FontSize: fontSize,
		},
	}, nil
}
