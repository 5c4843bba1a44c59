// Package pretty draws ASCII alignment blocks for the text output.
package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"rescore/internal/engine"
)

// Options control the ASCII rendering.
type Options struct {
	// Residues per line. If <=0, use default (60).
	Width int

	// Glyphs
	ExactGlyph   string // identical residues, default "|"
	PartialGlyph string // different residues with a positive score, default "+"
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	Width:        60,
	ExactGlyph:   "|",
	PartialGlyph: "+",
}

const linePrefix = "# "

func (o Options) ExactGlyphOrDefault() string {
	if o.ExactGlyph != "" {
		return o.ExactGlyph
	}
	return DefaultOptions.ExactGlyph
}

func (o Options) PartialGlyphOrDefault() string {
	if o.PartialGlyph != "" {
		return o.PartialGlyph
	}
	return DefaultOptions.PartialGlyph
}

// matchLine puts a glyph under every column; non-positive columns stay blank.
func matchLine(s *engine.Segment, from, to int, exactGlyph, partialGlyph string) string {
	var b strings.Builder
	b.Grow(to - from)
	for i := from; i < to; i++ {
		switch {
		case s.Query[i] == s.Target[i]:
			b.WriteString(exactGlyph)
		case i < len(s.Scores) && s.Scores[i] > 0:
			b.WriteString(partialGlyph)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// RenderHitWithOptions prints the query/target block for h, wrapped at
// opt.Width columns. Coordinates are 1-based and inclusive.
func RenderHitWithOptions(h engine.Hit, opt Options) string {
	s := h.Segment
	if s == nil || s.Query == "" || len(s.Query) != len(s.Target) {
		return linePrefix + "(pretty not available: no segment)\n#\n"
	}
	width := opt.Width
	if width <= 0 {
		width = DefaultOptions.Width
	}
	n := len(s.Query)
	pad := len(strconv.Itoa(max(s.QueryStart, s.TargetStart) + n))
	indent := strings.Repeat(" ", len("Query  ")+pad+1)

	var b strings.Builder
	for off := 0; off < n; off += width {
		end := min(off+width, n)
		fmt.Fprintf(&b, "%sQuery  %*d %s %d\n", linePrefix, pad, s.QueryStart+off+1, s.Query[off:end], s.QueryStart+end)
		fmt.Fprintf(&b, "%s%s%s\n", linePrefix, indent,
			matchLine(s, off, end, opt.ExactGlyphOrDefault(), opt.PartialGlyphOrDefault()))
		fmt.Fprintf(&b, "%sSbjct  %*d %s %d\n", linePrefix, pad, s.TargetStart+off+1, s.Target[off:end], s.TargetStart+end)
		b.WriteString("#\n")
	}
	return b.String()
}
