// Package pkg provides the core libraries for chartgeom chart geometry.
//
// # Overview
//
// Chartgeom turns labelled numeric series into drawable geometry: pie
// wedges, bar rectangles and line polylines. Every chart kind shares one
// input validator, so entries with missing labels or non-finite values are
// filtered the same way everywhere. Empty or degenerate input never fails;
// it yields a geometry with a no-data reason.
//
// # Architecture
//
// The typical data flow:
//
//	Dataset file (JSON, TOML, YAML) or API request
//	         ↓
//	    [dataset] package (decode named datasets)
//	         ↓
//	    [chart] package (validate, then Pie / Bars / Line)
//	         ↓
//	    [render] package (SVG, JSON, PNG, PDF)
//
// [pipeline] runs compute and render through a [cache] for both the CLI and
// the HTTP [api].
//
// # Quick Start
//
//	import "github.com/matzehuels/chartgeom/pkg/chart"
//
//	data := []chart.Datum{{Label: "Fruit", Value: 30}, {Label: "Vegetables", Value: 70}}
//	g := chart.Compute(data, chart.Spec{Kind: chart.KindPie, Size: 240})
//	for _, s := range g.Pie.Slices {
//	    fmt.Println(s.Datum.Label, s.Percentage, s.PathData)
//	}
//
// # Main Packages
//
// [chart] - The geometry engine: [chart.Validate], [chart.Pie], [chart.Bars],
// [chart.Line] and the [chart.Compute] dispatcher. Pure functions with no I/O.
//
// [dataset] - Dashboard files holding one or more named datasets.
//
// [render] - SVG and JSON renderers plus SVG to PDF/PNG conversion.
//
// [pipeline] - Option defaults, validation and cached compute → render runs.
//
// [cache] - File, Redis and MongoDB cache backends with content-hash keys.
//
// [api] - chi-based HTTP API exposing the pipeline.
//
// [observability] - Hooks for compute, cache and HTTP events.
//
// [errors] - Error codes shared by the CLI and API.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./pkg/...
//	go test -run Example ./pkg/chart
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/chart
// [dataset]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/dataset
// [render]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/cache
// [api]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/api
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/buildinfo
package pkg
