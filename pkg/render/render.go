package render

import (
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// DefaultPNGScale renders PNGs at 2x.
const DefaultPNGScale = 2.0

// Options holds the presentation settings shared by every format.
type Options struct {
	Title      string
	Background string
	Labels     bool
}

func (o Options) svgOptions() []SVGOption {
	var opts []SVGOption
	if o.Title != "" {
		opts = append(opts, WithTitle(o.Title))
	}
	if o.Background != "" {
		opts = append(opts, WithBackground(o.Background))
	}
	if o.Labels {
		opts = append(opts, WithLabels())
	}
	return opts
}

// Render produces g in the named format.
func Render(g chart.Geometry, format string, o Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(g, o.svgOptions()...), nil
	case FormatJSON:
		return RenderJSON(g, WithJSONTitle(o.Title))
	case FormatPNG:
		return ToPNG(RenderSVG(g, o.svgOptions()...), DefaultPNGScale)
	case FormatPDF:
		return ToPDF(RenderSVG(g, o.svgOptions()...))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, png, pdf)", format)
}
