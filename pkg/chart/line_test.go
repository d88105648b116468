package chart

import (
	"math"
	"reflect"
	"testing"
)

func TestLineEndpoints(t *testing.T) {
	res := Line([]Datum{{Value: 0}, {Value: 10}}, 200)
	if res.Empty() {
		t.Fatalf("Line() returned no data: %v", res.NoData)
	}
	if len(res.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(res.Points))
	}

	p0, p1 := res.Points[0], res.Points[1]
	bottom := res.Padding + res.ChartHeight
	if p0.X != 40 || p0.Y != bottom {
		t.Errorf("Points[0] = (%v, %v), want (40, %v)", p0.X, p0.Y, bottom)
	}
	if p1.X != 560 || p1.Y != res.Padding {
		t.Errorf("Points[1] = (%v, %v), want (560, %v)", p1.X, p1.Y, res.Padding)
	}
	if want := "M 40 160 L 560 40"; res.PathData != want {
		t.Errorf("PathData = %q, want %q", res.PathData, want)
	}
}

func TestLineEvenSpacing(t *testing.T) {
	data := []Datum{{Value: 4}, {Value: 1}, {Value: 7}, {Value: 3}, {Value: 5}}
	res := Line(data, 300)
	step := res.Points[1].X - res.Points[0].X
	for i := 1; i < len(res.Points); i++ {
		if d := res.Points[i].X - res.Points[i-1].X; !approx(d, step) || d <= 0 {
			t.Errorf("x step %d = %v, want %v", i, d, step)
		}
		if res.Points[i].Datum != data[i] {
			t.Errorf("Points[%d].Datum = %+v, want %+v", i, res.Points[i].Datum, data[i])
		}
	}
	if res.MinValue != 1 || res.MaxValue != 7 {
		t.Errorf("MinValue, MaxValue = %v, %v; want 1, 7", res.MinValue, res.MaxValue)
	}
	// Larger values sit higher on screen.
	if !(res.Points[2].Y < res.Points[0].Y && res.Points[0].Y < res.Points[1].Y) {
		t.Errorf("y ordering wrong: %v %v %v", res.Points[0].Y, res.Points[1].Y, res.Points[2].Y)
	}
}

func TestLineSinglePoint(t *testing.T) {
	res := Line([]Datum{{Label: "mon", Value: 8}}, 200)
	if len(res.Points) != 1 {
		t.Fatalf("len(Points) = %d, want 1", len(res.Points))
	}
	p := res.Points[0]
	if p.X != DefaultLinePadding || math.IsNaN(p.Y) {
		t.Errorf("Points[0] = (%v, %v), want x = %v", p.X, p.Y, DefaultLinePadding)
	}
	if !res.Flat {
		t.Error("single point series should be flat")
	}
	if res.PathData != "M 40 40" {
		t.Errorf("PathData = %q, want %q", res.PathData, "M 40 40")
	}
}

func TestLineFlatSeries(t *testing.T) {
	res := Line([]Datum{{Value: 5}, {Value: 5}, {Value: 5}}, 200)
	if res.Empty() {
		t.Fatal("flat series should still be drawable")
	}
	if !res.Flat {
		t.Error("Flat = false, want true")
	}
	for i, p := range res.Points {
		if p.Y != res.Points[0].Y {
			t.Errorf("Points[%d].Y = %v, want %v", i, p.Y, res.Points[0].Y)
		}
	}
}

func TestLineLabelsOptional(t *testing.T) {
	res := Line([]Datum{{Label: "", Value: 1}, {Label: "tue", Value: 2}}, 200)
	if len(res.Points) != 2 {
		t.Errorf("len(Points) = %d, want 2", len(res.Points))
	}
}

func TestLineNoData(t *testing.T) {
	tests := []struct {
		name   string
		data   []Datum
		height float64
		want   NoDataReason
	}{
		{"NaN", []Datum{{Value: math.NaN()}}, 200, NoDataEmpty},
		{"nil", nil, 200, NoDataEmpty},
		{"infinite", []Datum{{Value: math.Inf(1)}}, 200, NoDataEmpty},
		{"too short", []Datum{{Value: 1}}, 50, NoDataDegenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Line(tt.data, tt.height)
			if res.NoData != tt.want {
				t.Errorf("NoData = %v, want %v", res.NoData, tt.want)
			}
			if res.PathData != "" || len(res.Points) != 0 {
				t.Errorf("no-data result carries geometry: %+v", res)
			}
		})
	}
}

func TestTickStep(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 1}, {1, 1}, {6, 1}, {7, 2}, {12, 2}, {13, 3}, {30, 5}, {31, 6},
	}
	for _, tt := range tests {
		if got := TickStep(tt.n); got != tt.want {
			t.Errorf("TickStep(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestLineTicks(t *testing.T) {
	data := make([]Datum, 14)
	for i := range data {
		data[i] = Datum{Label: string(rune('a' + i)), Value: float64(i)}
	}
	res := Line(data, 200)
	wantIdx := []int{0, 3, 6, 9, 12}
	if len(res.Ticks) != len(wantIdx) {
		t.Fatalf("len(Ticks) = %d, want %d", len(res.Ticks), len(wantIdx))
	}
	for i, idx := range wantIdx {
		tk := res.Ticks[i]
		if tk.Index != idx || tk.Label != data[idx].Label || tk.X != res.Points[idx].X {
			t.Errorf("Ticks[%d] = %+v, want index %d", i, tk, idx)
		}
	}
}

func TestLineIdempotent(t *testing.T) {
	data := []Datum{{Value: 3}, {Value: 9}, {Value: 1}}
	if !reflect.DeepEqual(Line(data, 200), Line(data, 200)) {
		t.Error("Line() should be deterministic")
	}
}
