package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultWidth    = 6.4 * vg.Inch
	DefaultHeight   = 4.8 * vg.Inch
	DefaultFontSize = 10.0

	// x-small, two 1.2 steps below the base font size
	tickLabelScale = 1 / 1.44
)

var traceColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Renderer creates figures configured for a single trace
type Renderer interface {
	NewFigure(cfg PlotConfig) (Figure, error)
}

// Figure is an exclusively owned drawing surface. Close must be called
// once the figure is no longer needed, also after a failed Plot or Save.
type Figure interface {
	Plot(x, y []float64) error
	Save(path string) error
	Close() error
}

// Gonum renders figures with gonum.org/v1/plot. The output format is picked
// from the file extension (pdf, png, svg, eps, jpg, tif).
type Gonum struct {
	Width, Height vg.Length
}

// NewGonum returns a renderer producing figures of the default size
func NewGonum() *Gonum {
	return &Gonum{Width: DefaultWidth, Height: DefaultHeight}
}

func (g *Gonum) NewFigure(cfg PlotConfig) (Figure, error) {
	if cfg.FontSize == 0 {
		cfg.FontSize = DefaultFontSize
	}
	for _, a := range []Axis{cfg.X, cfg.Y} {
		if a.Scale == LogScale && a.Max > a.Min && a.Min <= 0 {
			return nil, &Error{Op: "plot", Err: fmt.Errorf("log axis '%s' needs positive limits, got [%g, %g]", a.Label, a.Min, a.Max)}
		}
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(cfg.FontSize)

	configureAxis(&p.X, cfg.X, cfg.FontSize)
	configureAxis(&p.Y, cfg.Y, cfg.FontSize)

	width, height := g.Width, g.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}

	return &gonumFigure{
		plot:   p,
		config: cfg,
		width:  width,
		height: height,
	}, nil
}

func configureAxis(axis *plot.Axis, cfg Axis, fontSize float64) {
	axis.Label.Text = cfg.Label
	axis.Label.TextStyle.Font.Size = vg.Points(fontSize)
	axis.Tick.Label.Font.Size = vg.Points(fontSize * tickLabelScale)
	axis.Scale = axisScale(cfg.Scale)
	axis.Tick.Marker = axisTicker(cfg)
}

type gonumFigure struct {
	plot          *plot.Plot
	config        PlotConfig
	width, height vg.Length
}

func (f *gonumFigure) Plot(x, y []float64) error {
	if f.plot == nil {
		return ErrFigureClosed
	}
	if len(x) != len(y) {
		return &Error{Op: "plot", Err: fmt.Errorf("x has %d points, y has %d", len(x), len(y))}
	}

	pts := f.visiblePoints(x, y)

	var line *plotter.Line
	if len(pts) > 0 {
		var err error
		if line, err = plotter.NewLine(pts); err != nil {
			return &Error{Op: "plot", Err: err}
		}
		line.LineStyle.Color = traceColor
		line.LineStyle.Width = vg.Points(1.5)
	}

	grid := f.gridPlotters()
	if f.config.Grid.Below {
		f.plot.Add(grid...)
	}
	if line != nil {
		f.plot.Add(line)
	}
	if !f.config.Grid.Below {
		f.plot.Add(grid...)
	}

	// Add widens the ranges to the data, configured limits win
	applyLimits(&f.plot.X, f.config.X)
	applyLimits(&f.plot.Y, f.config.Y)

	return nil
}

// visiblePoints drops non-finite points and points that cannot be placed on
// a log axis.
func (f *gonumFigure) visiblePoints(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			continue
		}
		if (f.config.X.Scale == LogScale && x[i] <= 0) || (f.config.Y.Scale == LogScale && y[i] <= 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	return pts
}

func (f *gonumFigure) gridPlotters() []plot.Plotter {
	var grid []plot.Plotter
	if f.config.Grid.Major {
		grid = append(grid, newGridLines(false, f.config))
	}
	if f.config.Grid.Minor {
		grid = append(grid, newGridLines(true, f.config))
	}
	return grid
}

func applyLimits(axis *plot.Axis, cfg Axis) {
	if cfg.Max > cfg.Min {
		axis.Min = cfg.Min
		axis.Max = cfg.Max
	}
}

func (f *gonumFigure) Save(path string) error {
	if f.plot == nil {
		return ErrFigureClosed
	}
	if err := f.plot.Save(f.width, f.height, path); err != nil {
		return &Error{Op: "save", Path: path, Err: err}
	}
	return nil
}

func (f *gonumFigure) Close() error {
	f.plot = nil
	return nil
}

// IsRenderError reports whether err came from the plotting backend
func IsRenderError(err error) bool {
	var renderErr *Error
	return errors.As(err, &renderErr) || errors.Is(err, ErrFigureClosed)
}
