package chart

// DefaultPalette is used when a caller supplies no colors. The order follows
// the marketplace brand sheet: leaf greens first, then harvest tones.
var DefaultPalette = Palette{
	"#2E7D32", "#F9A825", "#EF6C00", "#66BB6A",
	"#8D6E63", "#C0CA33", "#26A69A", "#D84315",
}

// Palette is an ordered list of colors reused cyclically.
type Palette []string

// At returns the color for the i-th drawn element: p[i % len(p)].
// An empty palette falls back to [DefaultPalette]; negative indices wrap.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		p = DefaultPalette
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Cursor hands out palette colors in drawing order.
type Cursor struct {
	palette Palette
	next    int
}

// NewCursor returns a cursor positioned at the first color of colors.
func NewCursor(colors []string) *Cursor {
	return &Cursor{palette: Palette(colors)}
}

// Next returns the current color and advances the cursor.
func (c *Cursor) Next() string {
	col := c.palette.At(c.next)
	c.next++
	return col
}

// Index reports how many colors have been handed out.
func (c *Cursor) Index() int { return c.next }
