package render

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

var sales = []chart.Datum{
	{Label: "Fruit", Value: 25},
	{Label: "Dairy & Eggs", Value: 75},
}

func wellFormed(t *testing.T, svg []byte) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(string(svg)))
	for {
		_, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return
			}
			t.Fatalf("SVG is not well-formed XML: %v\n%s", err, svg)
		}
	}
}

func TestRenderSVGPie(t *testing.T) {
	g := chart.Compute(sales, chart.Spec{Kind: chart.KindPie, Size: 200, Donut: true})
	svg := RenderSVG(g, WithLabels(), WithBackground("#FAFAFA"))
	wellFormed(t, svg)

	s := string(svg)
	if got := strings.Count(s, `class="slice"`); got != 2 {
		t.Errorf("slice count = %d, want 2", got)
	}
	for _, want := range []string{
		`d="M 100 100 L 100 10 A 90 90 0 0 1 190 100 Z"`,
		`class="donut-hole"`,
		`Dairy &amp; Eggs`,
		`75%`,
		`fill="#FAFAFA"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderSVGNumbersMatchPathData(t *testing.T) {
	g := chart.Compute(sales, chart.Spec{Kind: chart.KindPie, Size: 201.337, Donut: true})
	s := string(RenderSVG(g))

	centre := chart.FormatNumber(g.Pie.CenterX)
	if centre != "100.67" {
		t.Fatalf("centre = %s, want 100.67", centre)
	}
	if !strings.Contains(g.Pie.Slices[0].PathData, "M "+centre+" "+centre+" ") {
		t.Errorf("path data %q does not start at the centre %s", g.Pie.Slices[0].PathData, centre)
	}
	if want := `cx="` + centre + `" cy="` + centre + `" r="45.33"`; !strings.Contains(s, want) {
		t.Errorf("donut hole missing %s", want)
	}
}

func TestRenderSVGPieSingleSlice(t *testing.T) {
	g := chart.Compute([]chart.Datum{{Label: "only", Value: 5}}, chart.Spec{Kind: chart.KindPie, Size: 200})
	svg := RenderSVG(g)
	wellFormed(t, svg)

	s := string(svg)
	if !strings.Contains(s, `<circle class="slice" id="slice-0" cx="100" cy="100" r="90"`) {
		t.Errorf("single slice should be drawn as a full disc\n%s", s)
	}
	if strings.Contains(s, `<path class="slice"`) {
		t.Errorf("single slice should not emit an arc path\n%s", s)
	}
}

func TestRenderSVGBars(t *testing.T) {
	g := chart.Compute([]chart.Datum{{Label: "a", Value: 10}, {Label: "b", Value: 20}},
		chart.Spec{Kind: chart.KindBar, Height: 200})
	svg := RenderSVG(g, WithLabels())
	wellFormed(t, svg)

	s := string(svg)
	for _, want := range []string{
		`<rect class="bar" id="bar-0" x="56" y="100" width="128" height="60"`,
		`<rect class="bar" id="bar-1" x="216" y="40" width="128" height="120"`,
		`class="bar-label"`,
		`viewBox="0 0 400 200"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG missing %q\n%s", want, s)
		}
	}
}

func TestRenderSVGLine(t *testing.T) {
	g := chart.Compute([]chart.Datum{{Value: 0}, {Value: 10}}, chart.Spec{Kind: chart.KindLine, Height: 200})
	svg := RenderSVG(g)
	wellFormed(t, svg)

	s := string(svg)
	if !strings.Contains(s, `d="M 40 160 L 560 40"`) {
		t.Errorf("SVG missing series path\n%s", s)
	}
	if got := strings.Count(s, `class="point"`); got != 2 {
		t.Errorf("point count = %d, want 2", got)
	}
	if strings.Contains(s, `class="tick"`) {
		t.Error("ticks should only be drawn WithLabels")
	}
}

func TestRenderSVGPlaceholder(t *testing.T) {
	tests := []struct {
		name   string
		g      chart.Geometry
		reason string
		msg    string
	}{
		{
			name:   "empty pie",
			g:      chart.Compute(nil, chart.Spec{Kind: chart.KindPie, Size: 200}),
			reason: "no data",
			msg:    "No data",
		},
		{
			name:   "all-zero bars",
			g:      chart.Compute([]chart.Datum{{Label: "a", Value: 0}}, chart.Spec{Kind: chart.KindBar, Height: 200}),
			reason: "degenerate",
			msg:    "Nothing to draw",
		},
		{
			name:   "unsized geometry",
			g:      chart.Geometry{Kind: chart.KindLine},
			reason: "no data",
			msg:    "No data",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := RenderSVG(tt.g)
			wellFormed(t, svg)
			s := string(svg)
			if !strings.Contains(s, `data-reason="`+tt.reason+`"`) || !strings.Contains(s, tt.msg) {
				t.Errorf("placeholder missing reason %q / message %q:\n%s", tt.reason, tt.msg, s)
			}
		})
	}
}

func TestRenderSVGTitle(t *testing.T) {
	g := chart.Compute(sales, chart.Spec{Kind: chart.KindPie, Size: 200})
	s := string(RenderSVG(g, WithTitle("Q1 <share>")))
	if !strings.Contains(s, `viewBox="0 0 200 228"`) {
		t.Errorf("title band should extend the canvas:\n%s", s)
	}
	if !strings.Contains(s, "Q1 &lt;share&gt;") {
		t.Error("title should be escaped")
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	g := chart.Compute(sales, chart.Spec{Kind: chart.KindPie, Size: 200})
	data, err := RenderJSON(g, WithJSONTitle("share"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"kind": "pie"`, `"title": "share"`, `"count": 2`, `"slices"`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON missing %s\n%s", want, s)
		}
	}
	if strings.Contains(s, `"no_data"`) {
		t.Error("drawable geometry should omit no_data")
	}

	back, err := ReadJSON(data)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if back.Kind != chart.KindPie || back.Pie == nil || len(back.Pie.Slices) != 2 {
		t.Errorf("ReadJSON() = %+v", back)
	}
	if back.Pie.Slices[1].PathData != g.Pie.Slices[1].PathData {
		t.Errorf("path = %q, want %q", back.Pie.Slices[1].PathData, g.Pie.Slices[1].PathData)
	}
}

func TestRenderJSONNoData(t *testing.T) {
	g := chart.Compute([]chart.Datum{{Label: "a", Value: 0}}, chart.Spec{Kind: chart.KindPie, Size: 200})
	data, err := RenderJSON(g)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"no_data": "degenerate"`) {
		t.Errorf("JSON should carry the no-data reason:\n%s", data)
	}
	back, err := ReadJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.NoData() != chart.NoDataDegenerate {
		t.Errorf("NoData() = %v, want degenerate", back.NoData())
	}
}

func TestRenderDispatch(t *testing.T) {
	g := chart.Compute(sales, chart.Spec{Kind: chart.KindPie, Size: 120})

	svg, err := Render(g, FormatSVG, Options{Title: "t"})
	if err != nil || !strings.HasPrefix(string(svg), "<svg") {
		t.Errorf("Render(svg) = %.40q, %v", svg, err)
	}
	js, err := Render(g, FormatJSON, Options{})
	if err != nil || !strings.HasPrefix(string(js), "{") {
		t.Errorf("Render(json) = %.40q, %v", js, err)
	}
	if _, err := Render(g, "gif", Options{}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(gif) error = %v, want INVALID_FORMAT", err)
	}
}

func TestConvertMissingTool(t *testing.T) {
	old := converter
	converter = "chartgeom-no-such-converter"
	defer func() { converter = old }()

	if _, err := ToPNG([]byte("<svg/>"), 2); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want UNSUPPORTED", err)
	}
	if _, err := ToPDF([]byte("<svg/>")); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "100"},
		{12.5, "12.5"},
		{1.005, "1"},
		{0.333333, "0.33"},
		{-0.001, "0"},
		{-2.25, "-2.25"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
