// Package chart turns labelled values into drawable chart geometry.
//
// # Overview
//
// The admin dashboards show three kinds of charts: pie, bar and line. This
// package computes everything a renderer needs to draw them (arc paths, bar
// rectangles, polyline points, percentages and scaling) and nothing else.
// It has no knowledge of SVG documents, canvases or terminals; the [render]
// package and external front-ends paint the results.
//
// All functions are pure. They never log, never return errors and never
// panic on malformed input, so rendering code can call them unconditionally:
//
//	res := chart.Pie(data, 200, []string{"#2E7D32", "#F9A825"})
//	if res.Empty() {
//	    // draw a placeholder for res.NoData
//	}
//	for _, s := range res.Slices {
//	    fmt.Printf("<path d=%q fill=%q/>\n", s.PathData, s.Color)
//	}
//
// # Validation
//
// Every transformer starts with [Validate]: entries whose value is NaN,
// infinite or negative are dropped, as are entries without a label when the
// chart needs one (pie and bar). Loosely typed input, such as the result of
// decoding JSON into any, goes through [Coerce] first.
//
// # No-data results
//
// Instead of failing, a transformer reports why nothing can be drawn through
// [NoDataReason]:
//
//   - [NoDataEmpty]: no entry survived validation.
//   - [NoDataDegenerate]: entries exist but the aggregate used for scaling
//     (pie total, bar maximum) is zero, or the canvas leaves no room to draw.
//
// A flat line series is not a no-data result: it is drawn as a horizontal
// line and flagged through [LineResult.Flat].
//
// # Colors
//
// Pie slices and bars take their colors from a [Palette], reused cyclically
// when the dataset is longer than the palette.
//
// [render]: github.com/matzehuels/chartgeom/pkg/render
package chart
