package chart_test

import (
	"fmt"

	"github.com/matzehuels/chartgeom/pkg/chart"
)

func ExamplePie() {
	data := []chart.Datum{
		{Label: "Leafy greens", Value: 25},
		{Label: "Root vegetables", Value: 75},
	}
	res := chart.Pie(data, 200, []string{"#2E7D32", "#EF6C00"})
	for _, s := range res.Slices {
		fmt.Printf("%s %.1f%% %s\n", s.Datum.Label, s.Percentage, s.PathData)
	}
	// Output:
	// Leafy greens 25.0% M 100 100 L 100 10 A 90 90 0 0 1 190 100 Z
	// Root vegetables 75.0% M 100 100 L 190 100 A 90 90 0 1 1 100 10 Z
}

func ExampleBars() {
	data := []chart.Datum{
		{Label: "Farm A", Value: 10},
		{Label: "Farm B", Value: 20},
	}
	res := chart.Bars(data, 200, nil)
	for _, b := range res.Bars {
		fmt.Printf("%s x=%.0f y=%.0f h=%.0f\n", b.Datum.Label, b.X, b.Y, b.Height)
	}
	// Output:
	// Farm A x=56 y=100 h=60
	// Farm B x=216 y=40 h=120
}

func ExampleLine() {
	res := chart.Line([]chart.Datum{{Value: 0}, {Value: 10}}, 200)
	fmt.Println(res.PathData)
	// Output:
	// M 40 160 L 560 40
}

func ExamplePie_noData() {
	res := chart.Pie([]chart.Datum{{Label: "a", Value: 0}}, 200, nil)
	fmt.Println(res.Empty(), res.NoData)
	// Output:
	// true degenerate
}
