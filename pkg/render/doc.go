// Package render turns computed chart geometry into output artifacts.
//
// # Formats
//
//   - SVG: [RenderSVG] draws pie, bar and line geometry, or a placeholder
//     when the geometry carries a no-data reason
//   - JSON: [RenderJSON] exports the geometry for client-side drawing
//   - PDF and PNG: [ToPDF] and [ToPNG] convert SVG with the external
//     rsvg-convert tool (from librsvg)
//
// [Render] dispatches on a format name and is what the pipeline calls:
//
//	g := chart.Compute(data, chart.Spec{Kind: chart.KindPie, Size: 240})
//	svg := render.RenderSVG(g, render.WithTitle("Category share"))
//	png, err := render.ToPNG(svg, 2.0)
package render
