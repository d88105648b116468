package render

import (
	"encoding/json"

	"github.com/matzehuels/chartgeom/pkg/chart"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title string
}

// WithJSONTitle records a title in the output.
func WithJSONTitle(s string) JSONOption { return func(r *jsonRenderer) { r.title = s } }

type jsonOutput struct {
	Title  string `json:"title,omitempty"`
	NoData string `json:"no_data,omitempty"`
	Count  int    `json:"count"`
	chart.Geometry
}

// RenderJSON exports g as indented JSON. The top-level no_data field
// repeats the reason of the wrapped result so clients need not look inside
// it.
func RenderJSON(g chart.Geometry, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{
		Title:    r.title,
		NoData:   g.NoData().String(),
		Count:    g.Len(),
		Geometry: g,
	}
	return json.MarshalIndent(out, "", "  ")
}

// ReadJSON decodes output of [RenderJSON] back into geometry.
func ReadJSON(data []byte) (chart.Geometry, error) {
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return chart.Geometry{}, err
	}
	return out.Geometry, nil
}
