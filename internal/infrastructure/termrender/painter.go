// Package termrender paints render.List display lists on a terminal and
// turns terminal key events into input.State.
//
// One screen unit is one cell and a line is one cell high.
package termrender

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/gamesnippets/internal/application/render"
)

// Metrics measures text in cells
type Metrics struct{}

// TextWidth returns the number of cells s covers
func (Metrics) TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

// LineHeight is one cell
func (Metrics) LineHeight() float64 {
	return 1
}

// Painter draws display lists on a tcell screen
type Painter struct {
	screen tcell.Screen
}

// NewPainter creates a painter for screen
func NewPainter(screen tcell.Screen) *Painter {
	return &Painter{screen: screen}
}

// Size returns the screen size in cells
func (p *Painter) Size() (int, int) {
	return p.screen.Size()
}

// Paint replays the list and shows the result
func (p *Painter) Paint(l *render.List) {
	for _, c := range l.Commands() {
		switch c.Op {
		case render.OpClear:
			p.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c.Color)))
		case render.OpFillRect:
			p.fill(c.Rect, toColor(c.Color))
		case render.OpStrokeRect:
			p.stroke(c.Rect, toColor(c.Color))
		case render.OpText:
			p.text(c.Text, cell(c.X), cell(c.Y), toColor(c.Color))
		}
	}
	p.screen.Show()
}

func (p *Painter) fill(r render.Rect, bg tcell.Color) {
	x0, y0, x1, y1 := cells(r)
	st := tcell.StyleDefault.Background(bg)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (p *Painter) stroke(r render.Rect, fg tcell.Color) {
	x0, y0, x1, y1 := cells(r)
	if x1 < x0 || y1 < y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		p.put(x, y0, tcell.RuneHLine, fg)
		p.put(x, y1, tcell.RuneHLine, fg)
	}
	for y := y0 + 1; y < y1; y++ {
		p.put(x0, y, tcell.RuneVLine, fg)
		p.put(x1, y, tcell.RuneVLine, fg)
	}
	p.put(x0, y0, tcell.RuneULCorner, fg)
	p.put(x1, y0, tcell.RuneURCorner, fg)
	p.put(x0, y1, tcell.RuneLLCorner, fg)
	p.put(x1, y1, tcell.RuneLRCorner, fg)
}

func (p *Painter) text(s string, x, y int, fg tcell.Color) {
	for _, r := range s {
		p.put(x, y, r, fg)
		x++
	}
}

// put draws r in fg, keeping the cell's background
func (p *Painter) put(x, y int, r rune, fg tcell.Color) {
	_, _, st, _ := p.screen.GetContent(x, y)
	p.screen.SetContent(x, y, r, nil, st.Foreground(fg))
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func cell(v float64) int {
	return int(math.Round(v))
}

// cells returns the inclusive cell bounds covered by r
func cells(r render.Rect) (x0, y0, x1, y1 int) {
	return cell(r.X), cell(r.Y), cell(r.X+r.W) - 1, cell(r.Y+r.H) - 1
}
