package chart

import (
	"fmt"
	"strings"
)

// Kind identifies a chart type.
type Kind string

// Supported chart kinds.
const (
	KindPie  Kind = "pie"
	KindBar  Kind = "bar"
	KindLine Kind = "line"
)

// Kinds lists the supported chart kinds in display order.
var Kinds = []Kind{KindPie, KindBar, KindLine}

// ParseKind converts a case-insensitive name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindPie, KindBar, KindLine:
		return k, nil
	}
	return "", fmt.Errorf("unknown chart kind %q (must be pie, bar or line)", s)
}

// RequiresLabels reports whether the kind drops unlabelled entries.
func (k Kind) RequiresLabels() bool { return k == KindPie || k == KindBar }

// Geometry is the result of one transformer together with its canvas size.
// Exactly one of Pie, Bar and Line is set, matching Kind.
type Geometry struct {
	Kind   Kind        `json:"kind"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Pie    *PieResult  `json:"pie,omitempty"`
	Bar    *BarResult  `json:"bar,omitempty"`
	Line   *LineResult `json:"line,omitempty"`
}

// NoData returns the no-data reason of the wrapped result.
func (g Geometry) NoData() NoDataReason {
	switch {
	case g.Pie != nil:
		return g.Pie.NoData
	case g.Bar != nil:
		return g.Bar.NoData
	case g.Line != nil:
		return g.Line.NoData
	}
	return NoDataEmpty
}

// Empty reports whether there is nothing to draw.
func (g Geometry) Empty() bool { return g.NoData() != NoDataNone }

// Len returns the number of drawn elements (slices, bars or points).
func (g Geometry) Len() int {
	switch {
	case g.Pie != nil:
		return len(g.Pie.Slices)
	case g.Bar != nil:
		return len(g.Bar.Bars)
	case g.Line != nil:
		return len(g.Line.Points)
	}
	return 0
}

// Spec holds every sizing input of the three transformers.
// Zero values select the package defaults.
type Spec struct {
	Kind       Kind     `json:"kind"`
	Size       float64  `json:"size,omitempty"`        // pie canvas edge
	Height     float64  `json:"height,omitempty"`      // bar and line canvas height
	ChartWidth float64  `json:"chart_width,omitempty"` // bar and line canvas width
	Padding    *float64 `json:"padding,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Donut      bool     `json:"donut,omitempty"`
}

// Compute dispatches to [Pie], [Bars] or [Line] according to s.Kind.
// An unknown kind yields an empty geometry with NoDataEmpty.
func Compute(data []Datum, s Spec) Geometry {
	switch s.Kind {
	case KindPie:
		var opts []PieOption
		if s.Padding != nil {
			opts = append(opts, WithPiePadding(*s.Padding))
		}
		if s.Donut {
			opts = append(opts, WithDonut())
		}
		r := Pie(data, s.Size, s.Colors, opts...)
		return Geometry{Kind: KindPie, Width: s.Size, Height: s.Size, Pie: &r}
	case KindBar:
		w := s.ChartWidth
		if w == 0 {
			w = DefaultBarChartWidth
		}
		opts := []BarOption{WithBarChartWidth(w)}
		if s.Padding != nil {
			opts = append(opts, WithBarPadding(*s.Padding))
		}
		r := Bars(data, s.Height, s.Colors, opts...)
		return Geometry{Kind: KindBar, Width: w, Height: s.Height, Bar: &r}
	case KindLine:
		w := s.ChartWidth
		if w == 0 {
			w = DefaultLineChartWidth
		}
		opts := []LineOption{WithLineChartWidth(w)}
		if s.Padding != nil {
			opts = append(opts, WithLinePadding(*s.Padding))
		}
		r := Line(data, s.Height, opts...)
		return Geometry{Kind: KindLine, Width: w, Height: s.Height, Line: &r}
	}
	return Geometry{Kind: s.Kind}
}
