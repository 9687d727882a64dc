package sdf

import (
	"errors"
	"fmt"
)

const (
	Linear      ResolutionType = "Linear"
	Logarithmic ResolutionType = "Logarithmic"

	// FFTMeasurement is the only measurement type with its own presentation,
	// everything else is treated as a generic frequency response.
	FFTMeasurement MeasurementType = "FFT measurement"
)

var (
	// ErrNoDataHeader is returned when the header has no per-trace records
	ErrNoDataHeader = errors.New("header has no data_hdr records")

	// ErrPointCountMismatch is returned when the sample count differs from num_points
	ErrPointCountMismatch = errors.New("sample count does not match num_points")

	// ErrFrequencyIndex is returned when the FFT valid region is out of bounds
	ErrFrequencyIndex = errors.New("invalid FFT frequency index range")
)

// ResolutionType is the spacing of the abscissa points
type ResolutionType string

func (r ResolutionType) String() string {
	return string(r)
}

type MeasurementType string

func (m MeasurementType) String() string {
	return string(m)
}

// Header is the decoded header record of a single measurement file.
type Header struct {
	MeasHeader  MeasurementHeader `yaml:"meas_hdr"`
	DataHeaders []DataHeader      `yaml:"data_hdr"`
}

// MeasurementHeader carries per-measurement metadata
type MeasurementHeader struct {
	MeasType       MeasurementType `yaml:"meas_type"`
	Title          string          `yaml:"meas_title,omitempty"`
	StartFreqIndex int             `yaml:"start_freq_index"` // FFT only, inclusive
	StopFreqIndex  int             `yaml:"stop_freq_index"`  // FFT only, inclusive
}

// DataHeader describes the abscissa of one trace
type DataHeader struct {
	AbscissaFirstX float64        `yaml:"abscissa_first_x"` // Hz
	AbscissaDeltaX float64        `yaml:"abscissa_delta_x"` // Hz for Linear, ratio for Logarithmic
	NumPoints      int            `yaml:"num_points"`
	XResolution    ResolutionType `yaml:"x_resolution_type"`
	YUnit          string         `yaml:"y_unit,omitempty"`
}

// IsFFT reports whether the measurement uses the FFT presentation.
func (h *Header) IsFFT() bool {
	return h.MeasHeader.MeasType == FFTMeasurement
}

// Data returns the first trace header. Validate must have passed.
func (h *Header) Data() DataHeader {
	return h.DataHeaders[0]
}

// Validate checks the invariants the rest of the pipeline relies on.
// The resolution type is left to the axis builder.
func (h *Header) Validate() error {
	if len(h.DataHeaders) == 0 {
		return ErrNoDataHeader
	}

	n := h.DataHeaders[0].NumPoints
	if n < 0 {
		return fmt.Errorf("num_points must not be negative, got %d", n)
	}

	if h.IsFFT() {
		start, stop := h.MeasHeader.StartFreqIndex, h.MeasHeader.StopFreqIndex
		if start < 0 || start > stop || stop > n-1 {
			return fmt.Errorf("%w: [%d, %d] with %d points", ErrFrequencyIndex, start, stop, n)
		}
	}

	return nil
}
