package render

import (
	"image/color"
	"strings"
	"unicode/utf8"
)

// Wrap breaks s into lines no wider than width, breaking at spaces and
// splitting words that do not fit on a line of their own. Nothing fits a
// width of zero or less, so no lines are returned.
func Wrap(s string, width float64, m Metrics) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, width, m)...)
	}
	return lines
}

func wrapParagraph(p string, width float64, m Metrics) []string {
	var lines []string
	line := ""
	for _, w := range strings.Fields(p) {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if m.TextWidth(candidate) <= width {
			line = candidate
			continue
		}

		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		for w != "" && m.TextWidth(w) > width {
			cut := fitPrefix(w, width, m)
			lines = append(lines, w[:cut])
			w = w[cut:]
		}
		line = w
	}

	if line != "" || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}

// fitPrefix returns the byte length of the longest prefix of w that fits,
// and at least one rune so wrapping always progresses
func fitPrefix(w string, width float64, m Metrics) int {
	cut := 0
	for i := 0; i < len(w); {
		_, size := utf8.DecodeRuneInString(w[i:])
		next := i + size
		if m.TextWidth(w[:next]) > width {
			break
		}
		cut = next
		i = next
	}
	if cut == 0 {
		_, cut = utf8.DecodeRuneInString(w)
	}
	return cut
}

// TextBox draws s word-wrapped inside r. Lines that would overflow the
// bottom of r are dropped. Returns the number of lines drawn.
func (l *List) TextBox(m Metrics, s string, r Rect, c color.RGBA) int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	lineH := m.LineHeight()
	drawn := 0
	for i, line := range Wrap(s, r.W, m) {
		y := r.Y + float64(i)*lineH
		if y+lineH > r.Y+r.H {
			break
		}
		if line != "" {
			l.Text(line, r.X, y, c)
		}
		drawn++
	}
	return drawn
}
