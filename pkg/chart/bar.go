package chart

import "math"

// Bar chart defaults, in canvas units.
const (
	DefaultBarChartWidth = 400.0
	DefaultBarPadding    = 40.0
)

// Share of each slot taken by the bar; the rest is the gap between bars.
const (
	barFill = 0.8
	barGap  = 0.2
)

// Bar is one rectangle of a bar chart. (X, Y) is the top-left corner.
type Bar struct {
	Datum  Datum   `json:"datum"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
}

// BarResult is the geometry of a bar chart on a ChartWidth x height canvas.
type BarResult struct {
	Bars        []Bar        `json:"bars"`
	MaxValue    float64      `json:"max_value"`
	ChartWidth  float64      `json:"chart_width"`
	ChartHeight float64      `json:"chart_height"`
	Padding     float64      `json:"padding"`
	BarWidth    float64      `json:"bar_width"`
	BarSpacing  float64      `json:"bar_spacing"`
	Baseline    float64      `json:"baseline"`
	NoData      NoDataReason `json:"no_data,omitempty"`
}

// Empty reports whether there is nothing to draw.
func (r BarResult) Empty() bool { return r.NoData != NoDataNone }

// BarOption configures [Bars].
type BarOption func(*barConfig)

type barConfig struct {
	width   float64
	padding float64
}

// WithBarChartWidth overrides [DefaultBarChartWidth].
func WithBarChartWidth(w float64) BarOption { return func(c *barConfig) { c.width = w } }

// WithBarPadding overrides [DefaultBarPadding].
func WithBarPadding(p float64) BarOption { return func(c *barConfig) { c.padding = p } }

// Bars lays out data as vertical bars growing up from a common baseline.
//
// The plotting width is split into one slot per bar; each bar fills 80% of
// its slot and the remaining 20% is shared gap, so the overall layout width
// does not depend on the number of bars. Bar heights scale with
// value/max so the largest bar spans the whole plotting height. Zero values
// give zero-height bars.
//
// Bars reports [NoDataEmpty] when no labelled, non-negative, finite value
// remains, and [NoDataDegenerate] when the maximum is zero or the canvas
// leaves no plotting area.
func Bars(data []Datum, height float64, colors []string, opts ...BarOption) BarResult {
	cfg := barConfig{width: DefaultBarChartWidth, padding: DefaultBarPadding}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := Validate(data, true)
	if v.Empty {
		return BarResult{NoData: NoDataEmpty}
	}

	maxValue := 0.0
	for _, d := range v.Valid {
		maxValue = math.Max(maxValue, d.Value)
	}
	if maxValue == 0 || math.IsInf(maxValue, 0) || math.IsNaN(maxValue) {
		return BarResult{MaxValue: maxValue, NoData: NoDataDegenerate}
	}

	chartHeight := height - 2*cfg.padding
	plotWidth := cfg.width - 2*cfg.padding
	if !(chartHeight > 0) || !(plotWidth > 0) || math.IsInf(chartHeight, 0) || math.IsInf(plotWidth, 0) {
		return BarResult{MaxValue: maxValue, NoData: NoDataDegenerate}
	}

	n := float64(len(v.Valid))
	slot := plotWidth / n
	res := BarResult{
		Bars:        make([]Bar, 0, len(v.Valid)),
		MaxValue:    maxValue,
		ChartWidth:  cfg.width,
		ChartHeight: chartHeight,
		Padding:     cfg.padding,
		BarWidth:    slot * barFill,
		BarSpacing:  slot * barGap,
		Baseline:    height - cfg.padding,
	}

	colorsCur := NewCursor(colors)
	for i, d := range v.Valid {
		h := d.Value / maxValue * chartHeight
		res.Bars = append(res.Bars, Bar{
			Datum:  d,
			X:      cfg.padding + float64(i)*(res.BarWidth+res.BarSpacing) + res.BarSpacing/2,
			Y:      res.Baseline - h,
			Width:  res.BarWidth,
			Height: h,
			Color:  colorsCur.Next(),
		})
	}
	return res
}
