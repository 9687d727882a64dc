package render

import (
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	majorGridStyle = draw.LineStyle{
		Color: colornames.Gray,
		Width: vg.Points(0.5),
	}
	minorGridStyle = draw.LineStyle{
		Color:  colornames.Gray,
		Width:  vg.Points(0.25),
		Dashes: []vg.Length{vg.Points(3), vg.Points(2)},
	}
)

// gridLines draws lines across the data area at either the major or the
// minor ticks of both axes. Explicit axis ticks are split by their Minor
// flag, backend ticks by whether they carry a label. Ticks outside the
// axis limits are skipped.
type gridLines struct {
	minor bool
	style draw.LineStyle
	x, y  []Tick
}

func newGridLines(minor bool, cfg PlotConfig) *gridLines {
	g := &gridLines{minor: minor, style: majorGridStyle, x: cfg.X.Ticks, y: cfg.Y.Ticks}
	if minor {
		g.style = minorGridStyle
	}
	return g
}

// positions returns the data values of the lines drawn along one axis
func (g *gridLines) positions(ticks []Tick, axis *plot.Axis) []float64 {
	var values []float64
	if ticks != nil {
		major := majorValues(ticks)
		for _, t := range ticks {
			if t.Minor != g.minor {
				continue
			}
			if _, ok := major[t.Value]; ok && t.Minor {
				continue
			}
			values = append(values, t.Value)
		}
	} else {
		for _, tk := range axis.Tick.Marker.Ticks(axis.Min, axis.Max) {
			if tk.IsMinor() == g.minor {
				values = append(values, tk.Value)
			}
		}
	}

	visible := values[:0]
	for _, v := range values {
		if v >= axis.Min && v <= axis.Max {
			visible = append(visible, v)
		}
	}
	return visible
}

func (g *gridLines) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, v := range g.positions(g.x, &plt.X) {
		x := trX(v)
		if !c.ContainsX(x) {
			continue
		}
		c.StrokeLine2(g.style, x, c.Min.Y, x, c.Max.Y)
	}

	for _, v := range g.positions(g.y, &plt.Y) {
		y := trY(v)
		if !c.ContainsY(y) {
			continue
		}
		c.StrokeLine2(g.style, c.Min.X, y, c.Max.X, y)
	}
}
