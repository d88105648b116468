package chart

import "math"

// Line chart defaults, in canvas units.
const (
	DefaultLineChartWidth = 600.0
	DefaultLinePadding    = 40.0
)

// maxTicks bounds the number of axis labels on a line chart.
const maxTicks = 6

// Point is one vertex of a line chart polyline.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Datum Datum   `json:"datum"`
}

// Tick is an x-axis label anchored at a point of the series.
type Tick struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Label string  `json:"label"`
}

// LineResult is the geometry of a line chart on a ChartWidth x height canvas.
type LineResult struct {
	Points      []Point      `json:"points"`
	PathData    string       `json:"path"`
	Ticks       []Tick       `json:"ticks,omitempty"`
	MinValue    float64      `json:"min_value"`
	MaxValue    float64      `json:"max_value"`
	Flat        bool         `json:"flat,omitempty"`
	ChartWidth  float64      `json:"chart_width"`
	ChartHeight float64      `json:"chart_height"`
	Padding     float64      `json:"padding"`
	NoData      NoDataReason `json:"no_data,omitempty"`
}

// Empty reports whether there is nothing to draw.
func (r LineResult) Empty() bool { return r.NoData != NoDataNone }

// LineOption configures [Line].
type LineOption func(*lineConfig)

type lineConfig struct {
	width   float64
	padding float64
}

// WithLineChartWidth overrides [DefaultLineChartWidth].
func WithLineChartWidth(w float64) LineOption { return func(c *lineConfig) { c.width = w } }

// WithLinePadding overrides [DefaultLinePadding].
func WithLinePadding(p float64) LineOption { return func(c *lineConfig) { c.padding = p } }

// Line lays out an ordered series as a straight-segment polyline.
//
// Points are spaced evenly across the plotting width in input order; a single
// point sits at the left padding. The y axis is inverted so larger values are
// higher on screen, and the series minimum and maximum touch the bottom and
// top of the plotting area. Labels are optional and only feed the axis ticks,
// which are emitted for every ceil(n/6)-th point.
//
// A series whose values are all equal has no range to scale by. It is drawn
// as a horizontal line along the top of the plotting area and marked Flat.
//
// Line reports [NoDataEmpty] when no non-negative, finite value remains and
// [NoDataDegenerate] when the canvas leaves no plotting area.
func Line(data []Datum, height float64, opts ...LineOption) LineResult {
	cfg := lineConfig{width: DefaultLineChartWidth, padding: DefaultLinePadding}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := Validate(data, false)
	if v.Empty {
		return LineResult{NoData: NoDataEmpty}
	}

	minValue, maxValue := math.Inf(1), math.Inf(-1)
	for _, d := range v.Valid {
		minValue = math.Min(minValue, d.Value)
		maxValue = math.Max(maxValue, d.Value)
	}

	chartHeight := height - 2*cfg.padding
	plotWidth := cfg.width - 2*cfg.padding
	if !(chartHeight > 0) || !(plotWidth > 0) || math.IsInf(chartHeight, 0) || math.IsInf(plotWidth, 0) {
		return LineResult{MinValue: minValue, MaxValue: maxValue, NoData: NoDataDegenerate}
	}

	res := LineResult{
		Points:      make([]Point, 0, len(v.Valid)),
		MinValue:    minValue,
		MaxValue:    maxValue,
		ChartWidth:  cfg.width,
		ChartHeight: chartHeight,
		Padding:     cfg.padding,
	}

	valueRange := maxValue - minValue
	if valueRange == 0 {
		valueRange = 1
		res.Flat = true
	}

	n := len(v.Valid)
	var p pathBuilder
	for i, d := range v.Valid {
		x := cfg.padding
		if n > 1 {
			x += float64(i) / float64(n-1) * plotWidth
		}
		y := cfg.padding + (maxValue-d.Value)/valueRange*chartHeight
		res.Points = append(res.Points, Point{X: x, Y: y, Datum: d})
		if i == 0 {
			p.moveTo(x, y)
		} else {
			p.lineTo(x, y)
		}
	}
	res.PathData = p.String()
	res.Ticks = sampleTicks(res.Points)
	return res
}

// TickStep is the stride between labelled points for a series of n points.
func TickStep(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + maxTicks - 1) / maxTicks
}

func sampleTicks(points []Point) []Tick {
	step := TickStep(len(points))
	ticks := make([]Tick, 0, maxTicks)
	for i := 0; i < len(points); i += step {
		ticks = append(ticks, Tick{Index: i, X: points[i].X, Label: points[i].Datum.Label})
	}
	return ticks
}
