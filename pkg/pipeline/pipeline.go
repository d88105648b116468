// Package pipeline provides the compute → render pipeline shared by the
// chartgeom CLI and HTTP API.
//
// Centralizing option defaults, validation, and caching here keeps both
// entry points producing identical geometry and artifacts for identical
// requests.
//
// # Stages
//
//  1. Compute: validate the dataset and derive pie, bar, or line geometry
//  2. Render: produce SVG, JSON, PNG, or PDF artifacts from the geometry
//
// Each stage is memoized through a [cache.Cache]: geometry is keyed on the
// data hash plus every sizing option, artifacts on the geometry hash plus
// the presentation options.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, data, pipeline.Options{
//	    Kind:    chart.KindPie,
//	    Formats: []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"math"
	"time"

	"github.com/matzehuels/chartgeom/pkg/cache"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
	"github.com/matzehuels/chartgeom/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSize is the default pie canvas edge in pixels.
	DefaultSize = 240.0

	// DefaultHeight is the default bar and line canvas height in pixels.
	DefaultHeight = 300.0
)

// Format constants for output formats.
const (
	FormatSVG  = render.FormatSVG
	FormatJSON = render.FormatJSON
	FormatPNG  = render.FormatPNG
	FormatPDF  = render.FormatPDF
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run. It decodes from API request bodies
// and is filled from flags by the CLI.
type Options struct {
	// Compute options
	Kind    chart.Kind `json:"kind"`
	Size    float64    `json:"size,omitempty"`   // pie
	Height  float64    `json:"height,omitempty"` // bar, line
	Width   float64    `json:"width,omitempty"`  // bar, line; 0 selects the chart default
	Padding *float64   `json:"padding,omitempty"`
	Colors  []string   `json:"colors,omitempty"`
	Donut   bool       `json:"donut,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Title      string   `json:"title,omitempty"`
	Background string   `json:"background,omitempty"`
	Labels     bool     `json:"labels,omitempty"`

	// Strict turns a no-data result into an ErrCodeNoData error.
	Strict bool `json:"strict,omitempty"`
	// Refresh bypasses cache lookups; results are still written back.
	Refresh bool `json:"refresh,omitempty"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Geometry chart.Geometry

	// GeometryHash is the content hash of the geometry JSON.
	GeometryHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records     int // entries handed to the engine
	Elements    int // slices, bars, or points drawn
	ComputeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ComputeHit bool
	RenderHit  bool // all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero-valued sizes and formats.
func (o *Options) SetDefaults() {
	switch o.Kind {
	case chart.KindPie:
		if o.Size == 0 {
			o.Size = DefaultSize
		}
	case chart.KindBar, chart.KindLine:
		if o.Height == 0 {
			o.Height = DefaultHeight
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
}

// Validate checks the options without modifying them.
func (o *Options) Validate() error {
	// callers normalize with chart.ParseKind; Options are case-sensitive
	if k, err := chart.ParseKind(string(o.Kind)); err != nil || k != o.Kind {
		return errors.New(errors.ErrCodeInvalidChartType, "invalid chart type: %q (must be pie, bar or line)", o.Kind)
	}
	dims := []struct {
		name string
		v    float64
	}{{"size", o.Size}, {"height", o.Height}, {"width", o.Width}}
	for _, d := range dims {
		if !validDimension(d.v) {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be a finite, non-negative number (got %v)", d.name, d.v)
		}
	}
	if o.Padding != nil && !validDimension(*o.Padding) {
		return errors.New(errors.ErrCodeInvalidInput, "padding must be a finite, non-negative number (got %v)", *o.Padding)
	}
	for _, c := range o.Colors {
		if err := errors.ValidateColor(c); err != nil {
			return err
		}
	}
	if o.Background != "" {
		if err := errors.ValidateColor(o.Background); err != nil {
			return err
		}
	}
	return errors.ValidateFormats(o.Formats)
}

// ValidateAndSetDefaults applies defaults, then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

func validDimension(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Spec returns the engine inputs.
func (o *Options) Spec() chart.Spec {
	return chart.Spec{
		Kind:       o.Kind,
		Size:       o.Size,
		Height:     o.Height,
		ChartWidth: o.Width,
		Padding:    o.Padding,
		Colors:     o.Colors,
		Donut:      o.Donut,
	}
}

// RenderOptions returns the presentation settings for the render sinks.
func (o *Options) RenderOptions() render.Options {
	return render.Options{Title: o.Title, Background: o.Background, Labels: o.Labels}
}

// GeometryKeyOpts returns cache key options for geometry computation.
func (o *Options) GeometryKeyOpts() cache.GeometryKeyOpts {
	return cache.GeometryKeyOpts{
		Kind:       string(o.Kind),
		Size:       o.Size,
		Height:     o.Height,
		ChartWidth: o.Width,
		Padding:    o.Padding,
		Colors:     o.Colors,
		Donut:      o.Donut,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Title:      o.Title,
		Background: o.Background,
		Labels:     o.Labels,
	}
}
