package chart

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{100.00000000000001, "100"},
		{12.5, "12.5"},
		{1.234, "1.23"},
		{1.235001, "1.24"},
		{-0.0001, "0"},
		{-3.1, "-3.1"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPathBuilder(t *testing.T) {
	var p pathBuilder
	p.moveTo(1, 2).lineTo(3, 4).arcTo(5, 5, 0, 1, 1, 6, 7).close()
	want := "M 1 2 L 3 4 A 5 5 0 1 1 6 7 Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
