package chart

import (
	"math"
	"reflect"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestPieTwoSlices(t *testing.T) {
	data := []Datum{{Label: "A", Value: 25}, {Label: "B", Value: 75}}
	res := Pie(data, 200, []string{"#000", "#fff"})

	if res.Empty() {
		t.Fatalf("Pie() returned no data: %v", res.NoData)
	}
	if res.Total != 100 {
		t.Errorf("Total = %v, want 100", res.Total)
	}
	if len(res.Slices) != 2 {
		t.Fatalf("len(Slices) = %d, want 2", len(res.Slices))
	}

	a, b := res.Slices[0], res.Slices[1]
	if a.Percentage != 25.0 || b.Percentage != 75.0 {
		t.Errorf("Percentages = %v, %v; want 25, 75", a.Percentage, b.Percentage)
	}
	if !approx(a.SweepAngle, 90) || a.LargeArc != 0 {
		t.Errorf("first slice sweep=%v flag=%d, want 90 and 0", a.SweepAngle, a.LargeArc)
	}
	if !approx(b.SweepAngle, 270) || b.LargeArc != 1 {
		t.Errorf("second slice sweep=%v flag=%d, want 270 and 1", b.SweepAngle, b.LargeArc)
	}
	if a.Color != "#000" || b.Color != "#fff" {
		t.Errorf("Colors = %q, %q", a.Color, b.Color)
	}

	wantA := "M 100 100 L 100 10 A 90 90 0 0 1 190 100 Z"
	if a.PathData != wantA {
		t.Errorf("first PathData = %q, want %q", a.PathData, wantA)
	}
	wantB := "M 100 100 L 190 100 A 90 90 0 1 1 100 10 Z"
	if b.PathData != wantB {
		t.Errorf("second PathData = %q, want %q", b.PathData, wantB)
	}
}

func TestPieStartsAtTwelveOClock(t *testing.T) {
	res := Pie([]Datum{{Label: "a", Value: 1}, {Label: "b", Value: 1}}, 100, nil)
	if res.Slices[0].StartAngle != -90 {
		t.Errorf("StartAngle = %v, want -90", res.Slices[0].StartAngle)
	}
	if !approx(res.Slices[0].MidAngle, 0) {
		t.Errorf("MidAngle = %v, want 0", res.Slices[0].MidAngle)
	}
	if !approx(res.Slices[1].StartAngle, 90) || !approx(res.Slices[1].MidAngle, 180) {
		t.Errorf("second slice start=%v mid=%v, want 90 and 180", res.Slices[1].StartAngle, res.Slices[1].MidAngle)
	}
}

func TestPieSingleSliceIsFullCircle(t *testing.T) {
	res := Pie([]Datum{{Label: "only", Value: 5}}, 200, nil)
	if len(res.Slices) != 1 {
		t.Fatalf("len(Slices) = %d, want 1", len(res.Slices))
	}
	s := res.Slices[0]
	if !approx(s.SweepAngle, 360) {
		t.Errorf("SweepAngle = %v, want 360", s.SweepAngle)
	}
	if s.LargeArc != 1 {
		t.Errorf("LargeArc = %d, want 1", s.LargeArc)
	}
	if s.Percentage != 100 {
		t.Errorf("Percentage = %v, want 100", s.Percentage)
	}
}

func TestPieLargeArcFlag(t *testing.T) {
	tests := []struct {
		name  string
		big   float64
		small float64
		want  [2]int
	}{
		{"dominant first", 99, 1, [2]int{1, 0}},
		{"exact half", 50, 50, [2]int{0, 0}},
		{"just over half", 50.1, 49.9, [2]int{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Pie([]Datum{{Label: "x", Value: tt.big}, {Label: "y", Value: tt.small}}, 200, nil)
			got := [2]int{res.Slices[0].LargeArc, res.Slices[1].LargeArc}
			if got != tt.want {
				t.Errorf("flags = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPiePercentageConservation(t *testing.T) {
	datasets := [][]float64{
		{1, 1, 1},
		{1, 2, 3, 4, 5, 6, 7},
		{0.3, 17, 4.4, 9, 123, 0.01},
		{33, 33, 34},
	}
	for _, values := range datasets {
		data := make([]Datum, len(values))
		for i, v := range values {
			data[i] = Datum{Label: "d", Value: v}
		}
		res := Pie(data, 300, nil)
		var sum float64
		for _, s := range res.Slices {
			sum += s.Percentage
		}
		if tol := float64(len(values)) * 0.1; math.Abs(sum-100) > tol+eps {
			t.Errorf("sum of percentages for %v = %v, want 100 ± %v", values, sum, tol)
		}
	}
}

func TestPieNoData(t *testing.T) {
	tests := []struct {
		name string
		data []Datum
		size float64
		want NoDataReason
	}{
		{"empty", []Datum{}, 200, NoDataEmpty},
		{"nil", nil, 200, NoDataEmpty},
		{"unlabelled", []Datum{{Value: 3}}, 200, NoDataEmpty},
		{"all zero", []Datum{{Label: "a"}, {Label: "b"}}, 200, NoDataDegenerate},
		{"canvas smaller than padding", []Datum{{Label: "a", Value: 1}}, 10, NoDataDegenerate},
		{"NaN size", []Datum{{Label: "a", Value: 1}}, math.NaN(), NoDataDegenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Pie(tt.data, tt.size, nil)
			if res.NoData != tt.want {
				t.Errorf("NoData = %v, want %v", res.NoData, tt.want)
			}
			if len(res.Slices) != 0 {
				t.Errorf("len(Slices) = %d, want 0", len(res.Slices))
			}
		})
	}
}

func TestPieDonut(t *testing.T) {
	data := []Datum{{Label: "a", Value: 1}, {Label: "b", Value: 3}}
	plain := Pie(data, 200, nil)
	donut := Pie(data, 200, nil, WithDonut())

	if plain.Donut != nil {
		t.Error("Donut should be nil without WithDonut")
	}
	if donut.Donut == nil {
		t.Fatal("Donut should be set with WithDonut")
	}
	if donut.Donut.R != donut.Radius*0.5 || donut.Donut.CX != 100 || donut.Donut.CY != 100 {
		t.Errorf("Donut = %+v, want centre (100,100) radius %v", *donut.Donut, donut.Radius*0.5)
	}
	if !reflect.DeepEqual(plain.Slices, donut.Slices) {
		t.Error("donut hole should not change slice geometry")
	}
}

func TestPiePadding(t *testing.T) {
	res := Pie([]Datum{{Label: "a", Value: 1}}, 200, nil, WithPiePadding(0))
	if res.Radius != 100 {
		t.Errorf("Radius = %v, want 100", res.Radius)
	}
}

func TestPieColorCycling(t *testing.T) {
	colors := []string{"#1", "#2", "#3"}
	data := make([]Datum, 7)
	for i := range data {
		data[i] = Datum{Label: "x", Value: float64(i + 1)}
	}
	res := Pie(data, 200, colors)
	for i, s := range res.Slices {
		if s.Color != colors[i%3] {
			t.Errorf("Slices[%d].Color = %q, want %q", i, s.Color, colors[i%3])
		}
	}
}

func TestPieIdempotent(t *testing.T) {
	data := []Datum{{Label: "a", Value: 3}, {Label: "b", Value: 9}, {Label: "c", Value: 1}}
	first := Pie(data, 240, []string{"#a"}, WithDonut())
	second := Pie(data, 240, []string{"#a"}, WithDonut())
	if !reflect.DeepEqual(first, second) {
		t.Error("Pie() should be deterministic")
	}
}

func TestSliceLabelPoint(t *testing.T) {
	res := Pie([]Datum{{Label: "a", Value: 1}, {Label: "b", Value: 1}}, 200, nil)
	x, y := res.Slices[0].LabelPoint(res.CenterX, res.CenterY, 50)
	if !approx(x, 150) || !approx(y, 100) {
		t.Errorf("LabelPoint() = (%v, %v), want (150, 100)", x, y)
	}
}
