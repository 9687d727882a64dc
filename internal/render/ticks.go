package render

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
)

// significant digits kept when labeling ticks, hides float noise like 0.30000000000000004
const tickLabelDigits = 12

// printfTicks relabels the major ticks of another ticker with a printf verb
type printfTicks struct {
	plot.Ticker
	format string
}

func (t printfTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		ticks[i].Label = FormatTick(t.format, ticks[i].Value)
	}
	return ticks
}

// FormatTick formats a tick value, trimming representation noise first.
func FormatTick(format string, v float64) string {
	if r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', tickLabelDigits, 64), 64); err == nil {
		v = r
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return fmt.Sprintf(format, v)
}

func axisTicker(a Axis) plot.Ticker {
	if a.Ticks != nil {
		major := majorValues(a.Ticks)
		ticks := make(plot.ConstantTicks, 0, len(a.Ticks))
		for _, t := range a.Ticks {
			if _, ok := major[t.Value]; ok && t.Minor {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: t.Value, Label: t.Label})
		}
		return ticks
	}

	var ticker plot.Ticker = plot.DefaultTicks{}
	if a.Scale == LogScale {
		ticker = plot.LogTicks{Prec: -1}
	}
	if a.TickFormat != "" {
		ticker = printfTicks{Ticker: ticker, format: a.TickFormat}
	}
	return ticker
}

func majorValues(ticks []Tick) map[float64]struct{} {
	major := make(map[float64]struct{}, len(ticks))
	for _, t := range ticks {
		if !t.Minor {
			major[t.Value] = struct{}{}
		}
	}
	return major
}

func axisScale(s Scale) plot.Normalizer {
	if s == LogScale {
		return plot.LogScale{}
	}
	return plot.LinearScale{}
}
