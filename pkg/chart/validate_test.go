package chart

import (
	"encoding/json"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		data         []Datum
		requireLabel bool
		wantLabels   []string
		wantEmpty    bool
	}{
		{
			name:      "nil input",
			data:      nil,
			wantEmpty: true,
		},
		{
			name:      "empty input",
			data:      []Datum{},
			wantEmpty: true,
		},
		{
			name: "drops NaN infinite and negative values",
			data: []Datum{
				{Label: "nan", Value: math.NaN()},
				{Label: "inf", Value: math.Inf(1)},
				{Label: "-inf", Value: math.Inf(-1)},
				{Label: "neg", Value: -1},
				{Label: "ok", Value: 3},
				{Label: "zero", Value: 0},
			},
			wantLabels: []string{"ok", "zero"},
		},
		{
			name:         "drops unlabelled when labels required",
			data:         []Datum{{Label: "", Value: 1}, {Label: "b", Value: 2}},
			requireLabel: true,
			wantLabels:   []string{"b"},
		},
		{
			name:       "keeps unlabelled when labels optional",
			data:       []Datum{{Label: "", Value: 1}, {Label: "b", Value: 2}},
			wantLabels: []string{"", "b"},
		},
		{
			name:         "all dropped",
			data:         []Datum{{Label: "x", Value: -5}, {Value: 2}},
			requireLabel: true,
			wantEmpty:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.data, tt.requireLabel)
			if got.Empty != tt.wantEmpty {
				t.Fatalf("Empty = %v, want %v", got.Empty, tt.wantEmpty)
			}
			if len(got.Valid) != len(tt.wantLabels) {
				t.Fatalf("len(Valid) = %d, want %d", len(got.Valid), len(tt.wantLabels))
			}
			for i, l := range tt.wantLabels {
				if got.Valid[i].Label != l {
					t.Errorf("Valid[%d].Label = %q, want %q", i, got.Valid[i].Label, l)
				}
			}
		})
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	data := []Datum{{Label: "a", Value: -1}, {Label: "b", Value: 2}}
	_ = Validate(data, true)
	if data[0].Value != -1 || data[1].Label != "b" || len(data) != 2 {
		t.Errorf("Validate() modified its input: %+v", data)
	}
}

func TestCoerce(t *testing.T) {
	var raw any
	if err := json.Unmarshal([]byte(`[
		{"label": "carrots", "value": 12},
		null,
		{"label": "kale", "value": "7"},
		{"label": "beets"},
		42,
		{"label": 2024, "value": 1.5},
		{"value": 3}
	]`), &raw); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	got := Coerce(raw)
	want := []Datum{
		{Label: "carrots", Value: 12},
		{Label: "2024", Value: 1.5},
		{Label: "", Value: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("Coerce() returned %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Coerce()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCoerceShapes(t *testing.T) {
	d := &Datum{Label: "a", Value: 1}
	tests := []struct {
		name string
		raw  any
		want int
	}{
		{"nil", nil, 0},
		{"not a list", map[string]any{"label": "a", "value": 1}, 0},
		{"string", "pie", 0},
		{"typed slice", []Datum{{Label: "a", Value: 1}}, 1},
		{"pointer slice with nil", []*Datum{d, nil}, 1},
		{"map slice", []map[string]any{{"label": "a", "value": int64(4)}, nil}, 1},
		{"mixed any slice", []any{*d, d, (*Datum)(nil), "x", map[string]any{"value": uint8(2)}}, 3},
		{"json number", []any{map[string]any{"label": "a", "value": json.Number("2.5")}}, 1},
		{"bad json number", []any{map[string]any{"label": "a", "value": json.Number("x")}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coerce(tt.raw); len(got) != tt.want {
				t.Errorf("len(Coerce()) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestValidateAny(t *testing.T) {
	raw := []any{
		map[string]any{"label": "a", "value": math.NaN()},
		map[string]any{"label": "", "value": 1.0},
	}
	if got := ValidateAny(raw, true); !got.Empty {
		t.Errorf("ValidateAny() = %+v, want empty", got)
	}
	if got := ValidateAny(raw, false); got.Empty || len(got.Valid) != 1 {
		t.Errorf("ValidateAny(requireLabel=false) = %+v, want one entry", got)
	}
}
