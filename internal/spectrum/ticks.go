package spectrum

import "github.com/roman-kulish/sdfplot/internal/render"

// Frequency tick catalog for the audio band, in kHz. The catalog is the
// minor tick set, only some entries are labeled so the log axis stays
// readable. Decades inside the x limits are the major ticks.
var (
	responseMajorTickValues = []float64{0.1, 1, 10}

	responseTickValues = []float64{
		0.01, 0.02, 0.03, 0.04, 0.05, 0.06, 0.07, 0.08, 0.09,
		0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9,
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 20,
	}
	responseTickLabels = []string{
		"", "", "0.03", "", "", "", "0.07", "", "",
		"0.1", "", "0.3", "", "0.5", "", "0.7", "", "",
		"1", "2", "3", "4", "5", "6", "", "8", "",
		"10", "20",
	}
)

// ResponseTicks returns the x-axis ticks used for frequency response plots:
// the major decades first, then the minor catalog.
func ResponseTicks() []render.Tick {
	ticks := make([]render.Tick, 0, len(responseMajorTickValues)+len(responseTickValues))
	for _, v := range responseMajorTickValues {
		ticks = append(ticks, render.Tick{Value: v, Label: render.FormatTick(tickFormat, v)})
	}
	for i, v := range responseTickValues {
		ticks = append(ticks, render.Tick{Value: v, Label: responseTickLabels[i], Minor: true})
	}
	return ticks
}
