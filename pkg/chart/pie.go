package chart

import "math"

// DefaultPiePadding is the gap between the pie and the edge of its canvas.
const DefaultPiePadding = 10.0

// donutRatio is the inner radius of the donut hole relative to the pie radius.
const donutRatio = 0.5

// pieStartAngle puts the first wedge at 12 o'clock.
const pieStartAngle = -90.0

// Slice is one wedge of a pie chart. Angles are in degrees, clockwise from
// the positive x axis in screen coordinates.
type Slice struct {
	Datum      Datum   `json:"datum"`
	PathData   string  `json:"path"`
	Color      string  `json:"color"`
	Percentage float64 `json:"percentage"`
	StartAngle float64 `json:"start_angle"`
	SweepAngle float64 `json:"sweep_angle"`
	MidAngle   float64 `json:"mid_angle"`
	LargeArc   int     `json:"large_arc"`
}

// Circle is a circle in canvas coordinates.
type Circle struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
}

// PieResult is the geometry of a pie chart on a size x size canvas.
type PieResult struct {
	Slices  []Slice      `json:"slices"`
	Total   float64      `json:"total"`
	CenterX float64      `json:"cx"`
	CenterY float64      `json:"cy"`
	Radius  float64      `json:"radius"`
	Donut   *Circle      `json:"donut,omitempty"`
	NoData  NoDataReason `json:"no_data,omitempty"`
}

// Empty reports whether there is nothing to draw.
func (r PieResult) Empty() bool { return r.NoData != NoDataNone }

// LabelPoint returns the point on the slice bisector at distance dist from
// the centre (cx, cy).
func (s Slice) LabelPoint(cx, cy, dist float64) (x, y float64) {
	return polar(cx, cy, dist, s.MidAngle)
}

// PieOption configures [Pie].
type PieOption func(*pieConfig)

type pieConfig struct {
	padding float64
	donut   bool
}

// WithPiePadding overrides [DefaultPiePadding].
func WithPiePadding(p float64) PieOption { return func(c *pieConfig) { c.padding = p } }

// WithDonut adds a concentric hole of half the pie radius.
func WithDonut() PieOption { return func(c *pieConfig) { c.donut = true } }

// Pie lays out data as wedges of a circle centred on a size x size canvas.
//
// Wedges follow the validated data in order, starting at 12 o'clock and
// running clockwise. Each wedge path moves to the centre, draws a line to the
// start of its arc, arcs to the end and closes, so it fills from the centre.
// The large-arc flag is 1 exactly when a wedge sweeps more than 180 degrees.
// Percentages are rounded to one decimal.
//
// Pie reports [NoDataEmpty] when no labelled, non-negative, finite value
// remains, and [NoDataDegenerate] when the values sum to zero or the canvas
// is too small for the padding.
func Pie(data []Datum, size float64, colors []string, opts ...PieOption) PieResult {
	cfg := pieConfig{padding: DefaultPiePadding}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := Validate(data, true)
	if v.Empty {
		return PieResult{NoData: NoDataEmpty}
	}

	var total float64
	for _, d := range v.Valid {
		total += d.Value
	}
	if total == 0 || math.IsInf(total, 0) {
		return PieResult{Total: total, NoData: NoDataDegenerate}
	}

	cx, cy := size/2, size/2
	radius := size/2 - cfg.padding
	if !(radius > 0) || math.IsInf(radius, 0) {
		return PieResult{Total: total, NoData: NoDataDegenerate}
	}

	res := PieResult{
		Slices:  make([]Slice, 0, len(v.Valid)),
		Total:   total,
		CenterX: cx,
		CenterY: cy,
		Radius:  radius,
	}
	if cfg.donut {
		res.Donut = &Circle{CX: cx, CY: cy, R: radius * donutRatio}
	}

	colorsCur := NewCursor(colors)
	angle := pieStartAngle
	for _, d := range v.Valid {
		share := d.Value / total
		sweep := share * 360
		end := angle + sweep

		x1, y1 := polar(cx, cy, radius, angle)
		x2, y2 := polar(cx, cy, radius, end)
		large := 0
		if sweep > 180 {
			large = 1
		}

		var p pathBuilder
		p.moveTo(cx, cy).lineTo(x1, y1).arcTo(radius, radius, 0, large, 1, x2, y2).close()

		res.Slices = append(res.Slices, Slice{
			Datum:      d,
			PathData:   p.String(),
			Color:      colorsCur.Next(),
			Percentage: round1(share * 100),
			StartAngle: angle,
			SweepAngle: sweep,
			MidAngle:   angle + sweep/2,
			LargeArc:   large,
		})
		angle = end
	}
	return res
}

func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
