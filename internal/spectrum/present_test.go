package spectrum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman-kulish/sdfplot/internal/render"
	"github.com/roman-kulish/sdfplot/internal/sdf"
)

func linearHeader(measType sdf.MeasurementType, x0, delta float64, n int) *sdf.Header {
	return &sdf.Header{
		MeasHeader: sdf.MeasurementHeader{MeasType: measType},
		DataHeaders: []sdf.DataHeader{{
			AbscissaFirstX: x0,
			AbscissaDeltaX: delta,
			NumPoints:      n,
			XResolution:    sdf.Linear,
		}},
	}
}

func TestPresent_Response(t *testing.T) {
	hdr := linearHeader("Frequency response", 0, 10, 5)
	hdr.MeasHeader.Title = "FRTONMID"

	trace, err := Present(hdr, []complex128{1, 1, 1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, GenericMode, trace.Mode)
	assert.Equal(t, []float64{0.0, 0.01, 0.02, 0.03, 0.04}, trace.X)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, trace.Y)

	cfg := trace.Config
	assert.Equal(t, "FRTONMID", cfg.Title)
	assert.Equal(t, render.LogScale, cfg.X.Scale)
	assert.Equal(t, render.LinearScale, cfg.Y.Scale)
	assert.Equal(t, 0.02, cfg.X.Min)
	assert.Equal(t, 20.0, cfg.X.Max)
	assert.Equal(t, -30.0, cfg.Y.Min)
	assert.Equal(t, 20.0, cfg.Y.Max)
	assert.Equal(t, "Frequency (kHz)", cfg.X.Label)
	assert.Equal(t, "Amplitude (dB)", cfg.Y.Label)
	assert.Equal(t, "%g", cfg.X.TickFormat)
	assert.Equal(t, "%g", cfg.Y.TickFormat)
	assert.Equal(t, ResponseTicks(), cfg.X.Ticks)
	assert.Nil(t, cfg.Y.Ticks)
	assert.Equal(t, render.Grid{Major: true, Minor: true, Below: true}, cfg.Grid)
	assert.Equal(t, 10.0, cfg.FontSize)
}

func TestPresent_UnknownTypeFallsBackToResponse(t *testing.T) {
	for _, measType := range []sdf.MeasurementType{"", "Swept sine", "fft measurement", "Order track"} {
		trace, err := Present(linearHeader(measType, 0, 1, 2), []complex128{1, 10})
		require.NoError(t, err)
		assert.Equal(t, GenericMode, trace.Mode, "meas_type %q", measType)
	}
}

func TestPresent_FFT(t *testing.T) {
	hdr := linearHeader(sdf.FFTMeasurement, 0, 1000, 5)
	hdr.MeasHeader.StartFreqIndex = 1
	hdr.MeasHeader.StopFreqIndex = 3

	trace, err := Present(hdr, []complex128{0, 0.001, 0.002, 0.003, 0})
	require.NoError(t, err)

	assert.Equal(t, FFTMode, trace.Mode)
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, trace.X)
	assert.InDeltaSlice(t, []float64{1.0, 2.0, 3.0}, trace.Y, 1e-12)

	cfg := trace.Config
	assert.Equal(t, render.LinearScale, cfg.X.Scale)
	assert.Equal(t, render.LogScale, cfg.Y.Scale)
	assert.Equal(t, 0.0, cfg.X.Min)
	assert.Equal(t, 12.8, cfg.X.Max)
	assert.Equal(t, 0.00001, cfg.Y.Min)
	assert.Equal(t, 100.0, cfg.Y.Max)
	assert.Equal(t, "Frequency (kHz)", cfg.X.Label)
	assert.Equal(t, "Amplitude (mVrms)", cfg.Y.Label)
	assert.Nil(t, cfg.X.Ticks)
	assert.Nil(t, cfg.Y.Ticks)
	assert.True(t, cfg.Grid.Major)
	assert.True(t, cfg.Grid.Minor)
}

func TestPresent_FFTSlice(t *testing.T) {
	hdr := linearHeader(sdf.FFTMeasurement, 0, 250, 10)
	hdr.MeasHeader.StartFreqIndex = 2
	hdr.MeasHeader.StopFreqIndex = 5

	samples := make([]complex128, 10)
	for i := range samples {
		samples[i] = complex(float64(i+1)/1000, 0)
	}

	full, err := AxisFor(hdr)
	require.NoError(t, err)

	trace, err := Present(hdr, samples)
	require.NoError(t, err)

	require.Len(t, trace.X, 4)
	assert.Equal(t, HzToKHz(full[2:6]), trace.X)
	assert.InDeltaSlice(t, []float64{3, 4, 5, 6}, trace.Y, 1e-12)

	lo, hi := trace.Span()
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 1.25, hi)
}

func TestPresent_FFTBadRange(t *testing.T) {
	hdr := linearHeader(sdf.FFTMeasurement, 0, 1000, 5)
	hdr.MeasHeader.StartFreqIndex = 2
	hdr.MeasHeader.StopFreqIndex = 5

	_, err := Present(hdr, make([]complex128, 5))
	assert.ErrorIs(t, err, sdf.ErrFrequencyIndex)
}

func TestPresent_Errors(t *testing.T) {
	hdr := linearHeader("Frequency response", 0, 10, 3)
	hdr.DataHeaders[0].XResolution = "Octave"

	_, err := Present(hdr, make([]complex128, 3))
	var unsupported *UnsupportedResolutionTypeError
	assert.True(t, errors.As(err, &unsupported))

	_, err = Present(linearHeader("Frequency response", 0, 10, 3), make([]complex128, 2))
	assert.ErrorIs(t, err, sdf.ErrPointCountMismatch)
}

func TestPresent_NoDataHeader(t *testing.T) {
	hdr := &sdf.Header{MeasHeader: sdf.MeasurementHeader{MeasType: "Frequency response"}}

	_, err := Present(hdr, []complex128{1})
	assert.ErrorIs(t, err, sdf.ErrNoDataHeader)

	_, err = AxisFor(hdr)
	assert.ErrorIs(t, err, sdf.ErrNoDataHeader)
}

func TestPresent_Empty(t *testing.T) {
	trace, err := Present(linearHeader("Frequency response", 0, 10, 0), nil)
	require.NoError(t, err)
	assert.Empty(t, trace.X)
	assert.Empty(t, trace.Y)

	lo, hi := trace.Span()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestModeOf(t *testing.T) {
	assert.Equal(t, FFTMode, ModeOf(sdf.FFTMeasurement))
	assert.Equal(t, GenericMode, ModeOf("Frequency response"))
	assert.Equal(t, GenericMode, ModeOf(""))
}

func TestResponseTicks(t *testing.T) {
	require.Len(t, responseTickLabels, len(responseTickValues))

	ticks := ResponseTicks()
	require.Len(t, ticks, 32)
	assert.Equal(t, render.Tick{Value: 0.1, Label: "0.1"}, ticks[0])
	assert.Equal(t, render.Tick{Value: 10, Label: "10"}, ticks[2])
	assert.Equal(t, render.Tick{Value: 0.01, Minor: true}, ticks[3])
	assert.Equal(t, render.Tick{Value: 0.03, Label: "0.03", Minor: true}, ticks[5])
	assert.Equal(t, render.Tick{Value: 20, Label: "20", Minor: true}, ticks[len(ticks)-1])

	catalog := ticks[3:]
	for i := 1; i < len(catalog); i++ {
		assert.Greater(t, catalog[i].Value, catalog[i-1].Value)
	}
}

func TestResponseTicks_OnlyDecadesAreMajor(t *testing.T) {
	var major, labeledMinor []float64
	for _, tk := range ResponseTicks() {
		switch {
		case !tk.Minor:
			major = append(major, tk.Value)
		case tk.Label != "":
			labeledMinor = append(labeledMinor, tk.Value)
		}
	}

	assert.Equal(t, []float64{0.1, 1, 10}, major)
	assert.Equal(t, []float64{0.03, 0.07, 0.1, 0.3, 0.5, 0.7, 1, 2, 3, 4, 5, 6, 8, 10, 20}, labeledMinor)
}
