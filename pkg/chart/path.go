package chart

import (
	"strconv"
	"strings"
)

// pathBuilder emits SVG path commands separated by single spaces.
type pathBuilder struct {
	sb strings.Builder
}

func (p *pathBuilder) cmd(c byte, args ...float64) *pathBuilder {
	if p.sb.Len() > 0 {
		p.sb.WriteByte(' ')
	}
	p.sb.WriteByte(c)
	for _, a := range args {
		p.sb.WriteByte(' ')
		p.sb.WriteString(FormatNumber(a))
	}
	return p
}

func (p *pathBuilder) moveTo(x, y float64) *pathBuilder { return p.cmd('M', x, y) }
func (p *pathBuilder) lineTo(x, y float64) *pathBuilder { return p.cmd('L', x, y) }

// arcTo appends an elliptical arc; largeArc and sweep are 0 or 1.
func (p *pathBuilder) arcTo(rx, ry, rotation float64, largeArc, sweep int, x, y float64) *pathBuilder {
	return p.cmd('A', rx, ry, rotation, float64(largeArc), float64(sweep), x, y)
}

func (p *pathBuilder) close() *pathBuilder { return p.cmd('Z') }

func (p *pathBuilder) String() string { return p.sb.String() }

// FormatNumber prints v with at most two decimals and no trailing zeros.
// Path data and every renderer use it, so coordinates always agree.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
