package render

const (
	LinearScale Scale = iota
	LogScale
)

// Scale is the axis scale type
type Scale int

func (s Scale) String() string {
	switch s {
	case LinearScale:
		return "linear"
	case LogScale:
		return "log"
	default:
		return "unknown"
	}
}

// Tick is a tick position with its label. Minor ticks may carry a label too,
// a major tick at the same value takes precedence.
type Tick struct {
	Value float64
	Label string
	Minor bool
}

// Axis holds the configuration of a single plot axis
type Axis struct {
	Label string
	Scale Scale
	Min   float64
	Max   float64

	// Ticks overrides the tick placement. Nil keeps the backend default.
	Ticks []Tick

	// TickFormat is a printf verb applied to labeled ticks, e.g. "%g".
	// Empty keeps the backend labels.
	TickFormat string
}

// Grid controls gridline visibility
type Grid struct {
	Major bool // solid lines on major ticks
	Minor bool // dashed lines on minor ticks
	Below bool // draw gridlines under the data
}

// PlotConfig is everything a Figure needs to lay out a single trace
type PlotConfig struct {
	Title    string
	X, Y     Axis
	Grid     Grid
	FontSize float64 // points
}
