package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/chartgeom/pkg/chart"
)

const (
	titleBand       = 28.0
	titleFontSize   = 16.0
	labelFontSize   = 11.0
	placeholderSize = 200.0
	fontFamily      = "system-ui, -apple-system, Segoe UI, sans-serif"
	textColor       = "#37474F"
	axisColor       = "#B0BEC5"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title      string
	background string
	labels     bool
}

// WithTitle draws a title band above the chart.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// WithBackground fills the canvas with color. Donut holes use it too.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithLabels draws slice percentages, bar values and line tick labels.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG draws g as a standalone SVG document.
func RenderSVG(g chart.Geometry, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := g.Width, g.Height
	if w <= 0 || h <= 0 {
		w, h = placeholderSize, placeholderSize
	}
	top := 0.0
	if r.title != "" {
		top = titleBand
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" font-family="%s">`+"\n",
		num(w), num(h+top), num(w), num(h+top), fontFamily)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.background))
	}
	if r.title != "" {
		fmt.Fprintf(&buf, `  <text class="title" x="%s" y="%s" text-anchor="middle" font-size="%s" font-weight="600" fill="%s">%s</text>`+"\n",
			num(w/2), num(titleBand*0.7), num(titleFontSize), textColor, escapeXML(r.title))
		fmt.Fprintf(&buf, `  <g transform="translate(0 %s)">`+"\n", num(top))
	} else {
		buf.WriteString("  <g>\n")
	}

	switch {
	case g.Empty():
		renderPlaceholder(&buf, w, h, g.NoData())
	case g.Pie != nil:
		renderPie(&buf, &r, g.Pie)
	case g.Bar != nil:
		renderBars(&buf, &r, g.Bar)
	case g.Line != nil:
		renderLine(&buf, &r, g.Line)
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func renderPlaceholder(buf *bytes.Buffer, w, h float64, reason chart.NoDataReason) {
	msg := "No data"
	if reason == chart.NoDataDegenerate {
		msg = "Nothing to draw"
	}
	inset := min(w, h) * 0.05
	fmt.Fprintf(buf, `    <rect class="no-data" x="%s" y="%s" width="%s" height="%s" rx="6" fill="none" stroke="%s" stroke-dasharray="6 4"/>`+"\n",
		num(inset), num(inset), num(w-2*inset), num(h-2*inset), axisColor)
	fmt.Fprintf(buf, `    <text class="no-data" data-reason="%s" x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-size="%s" fill="%s">%s</text>`+"\n",
		reason, num(w/2), num(h/2), num(labelFontSize+2), textColor, msg)
}

func renderPie(buf *bytes.Buffer, r *svgRenderer, p *chart.PieResult) {
	stroke := r.background
	if stroke == "" {
		stroke = "#FFFFFF"
	}
	for i, s := range p.Slices {
		if s.SweepAngle >= 360 {
			// a full-turn arc has coincident endpoints and paints nothing
			fmt.Fprintf(buf, `    <circle class="slice" id="slice-%d" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="1" data-label="%s" data-value="%s"/>`+"\n",
				i, num(p.CenterX), num(p.CenterY), num(p.Radius), escapeXML(s.Color), escapeXML(stroke), escapeXML(s.Datum.Label), num(s.Datum.Value))
			continue
		}
		fmt.Fprintf(buf, `    <path class="slice" id="slice-%d" d="%s" fill="%s" stroke="%s" stroke-width="1" data-label="%s" data-value="%s"/>`+"\n",
			i, s.PathData, escapeXML(s.Color), escapeXML(stroke), escapeXML(s.Datum.Label), num(s.Datum.Value))
	}
	if p.Donut != nil {
		fmt.Fprintf(buf, `    <circle class="donut-hole" cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			num(p.Donut.CX), num(p.Donut.CY), num(p.Donut.R), escapeXML(stroke))
	}
	if !r.labels {
		return
	}

	dist := p.Radius * 0.65
	if p.Donut != nil {
		dist = (p.Radius + p.Donut.R) / 2
	}
	for _, s := range p.Slices {
		// slivers have no room for a label
		if s.Percentage < 4 {
			continue
		}
		x, y := s.LabelPoint(p.CenterX, p.CenterY, dist)
		fmt.Fprintf(buf, `    <text class="slice-label" x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-size="%s" fill="#FFFFFF">%s%%</text>`+"\n",
			num(x), num(y), num(labelFontSize), num(s.Percentage))
	}
}

func renderBars(buf *bytes.Buffer, r *svgRenderer, b *chart.BarResult) {
	fmt.Fprintf(buf, `    <line class="baseline" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
		num(b.Padding), num(b.Baseline), num(b.ChartWidth-b.Padding), num(b.Baseline), axisColor)
	for i, bar := range b.Bars {
		fmt.Fprintf(buf, `    <rect class="bar" id="bar-%d" x="%s" y="%s" width="%s" height="%s" fill="%s" data-label="%s" data-value="%s"/>`+"\n",
			i, num(bar.X), num(bar.Y), num(bar.Width), num(bar.Height), escapeXML(bar.Color), escapeXML(bar.Datum.Label), num(bar.Datum.Value))
	}
	if !r.labels {
		return
	}
	for _, bar := range b.Bars {
		cx := bar.X + bar.Width/2
		fmt.Fprintf(buf, `    <text class="bar-value" x="%s" y="%s" text-anchor="middle" font-size="%s" fill="%s">%s</text>`+"\n",
			num(cx), num(bar.Y-4), num(labelFontSize), textColor, num(bar.Datum.Value))
		fmt.Fprintf(buf, `    <text class="bar-label" x="%s" y="%s" text-anchor="middle" font-size="%s" fill="%s">%s</text>`+"\n",
			num(cx), num(b.Baseline+labelFontSize+4), num(labelFontSize), textColor, escapeXML(bar.Datum.Label))
	}
}

func renderLine(buf *bytes.Buffer, r *svgRenderer, l *chart.LineResult) {
	color := chart.DefaultPalette.At(0)
	baseline := l.Padding + l.ChartHeight
	fmt.Fprintf(buf, `    <line class="baseline" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
		num(l.Padding), num(baseline), num(l.ChartWidth-l.Padding), num(baseline), axisColor)
	fmt.Fprintf(buf, `    <path class="series" d="%s" fill="none" stroke="%s" stroke-width="2" stroke-linejoin="round" stroke-linecap="round"/>`+"\n",
		l.PathData, color)
	for i, p := range l.Points {
		fmt.Fprintf(buf, `    <circle class="point" id="point-%d" cx="%s" cy="%s" r="3" fill="%s" data-label="%s" data-value="%s"/>`+"\n",
			i, num(p.X), num(p.Y), color, escapeXML(p.Datum.Label), num(p.Datum.Value))
	}
	if !r.labels {
		return
	}
	for _, t := range l.Ticks {
		fmt.Fprintf(buf, `    <text class="tick" x="%s" y="%s" text-anchor="middle" font-size="%s" fill="%s">%s</text>`+"\n",
			num(t.X), num(baseline+labelFontSize+4), num(labelFontSize), textColor, escapeXML(t.Label))
	}
}

var num = chart.FormatNumber

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
