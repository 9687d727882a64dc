package spectrum

import (
	"fmt"
	"math"

	"github.com/roman-kulish/sdfplot/internal/sdf"
)

// UnsupportedResolutionTypeError is returned for an x_resolution_type
// other than Linear or Logarithmic
type UnsupportedResolutionTypeError struct {
	Value sdf.ResolutionType
}

func (e *UnsupportedResolutionTypeError) Error() string {
	return fmt.Sprintf("unsupported x_resolution_type '%s'", e.Value)
}

// BuildAxis returns the n abscissa values described by a data header.
//
//	Linear:      x[i] = x0 + delta*i
//	Logarithmic: x[i] = x0 * delta^i
func BuildAxis(x0, delta float64, n int, mode sdf.ResolutionType) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("number of points must not be negative, got %d", n)
	}

	var point func(i float64) float64
	switch mode {
	case sdf.Linear:
		point = func(i float64) float64 { return x0 + delta*i }
	case sdf.Logarithmic:
		point = func(i float64) float64 { return x0 * math.Pow(delta, i) }
	default:
		return nil, &UnsupportedResolutionTypeError{Value: mode}
	}

	axis := make([]float64, n)
	for i := range axis {
		axis[i] = point(float64(i))
	}
	return axis, nil
}

// AxisFor builds the axis of the first trace of hdr
func AxisFor(hdr *sdf.Header) ([]float64, error) {
	if len(hdr.DataHeaders) == 0 {
		return nil, sdf.ErrNoDataHeader
	}

	data := hdr.Data()
	return BuildAxis(data.AbscissaFirstX, data.AbscissaDeltaX, data.NumPoints, data.XResolution)
}
