package chart

import "testing"

func TestPaletteAt(t *testing.T) {
	p := Palette{"#a", "#b", "#c"}
	want := []string{"#a", "#b", "#c", "#a", "#b", "#c", "#a"}
	for i, w := range want {
		if got := p.At(i); got != w {
			t.Errorf("At(%d) = %q, want %q", i, got, w)
		}
	}
	if got := p.At(-1); got != "#c" {
		t.Errorf("At(-1) = %q, want %q", got, "#c")
	}
}

func TestPaletteEmptyFallsBackToDefault(t *testing.T) {
	var p Palette
	for i := 0; i < len(DefaultPalette)+1; i++ {
		if got, want := p.At(i), DefaultPalette[i%len(DefaultPalette)]; got != want {
			t.Errorf("At(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor([]string{"red", "green"})
	got := []string{c.Next(), c.Next(), c.Next()}
	want := []string{"red", "green", "red"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Next() #%d = %q, want %q", i, got[i], want[i])
		}
	}
	if c.Index() != 3 {
		t.Errorf("Index() = %d, want 3", c.Index())
	}
}
