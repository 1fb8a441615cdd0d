// Package render records immediate-mode draw calls made by a scene during
// Update so a frontend can paint them later in its own draw pass.
package render

import "image/color"

// Rect is an axis-aligned rectangle in screen units
type Rect struct {
	X, Y, W, H float64
}

// Inset shrinks the rectangle by d on every side
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Offset moves the rectangle
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Op is the kind of a draw command
type Op int

const (
	OpClear Op = iota
	OpFillRect
	OpStrokeRect
	OpText
)

// Command is one recorded draw call
type Command struct {
	Op        Op
	Rect      Rect    // FillRect, StrokeRect
	Thickness float64 // StrokeRect
	X, Y      float64 // Text origin (top-left)
	Text      string
	Color     color.RGBA
}

// Metrics measures text for the active frontend
type Metrics interface {
	// TextWidth returns the advance of s in screen units
	TextWidth(s string) float64
	// LineHeight returns the distance between two baselines
	LineHeight() float64
}

// List is a per-frame display list
type List struct {
	commands []Command
}

// NewList creates an empty display list
func NewList() *List {
	return &List{commands: make([]Command, 0, 64)}
}

// Reset drops all commands, keeping capacity
func (l *List) Reset() {
	l.commands = l.commands[:0]
}

// Commands returns the recorded commands in order
func (l *List) Commands() []Command {
	return l.commands
}

// Len returns the number of recorded commands
func (l *List) Len() int {
	return len(l.commands)
}

// Clear fills the whole screen
func (l *List) Clear(c color.RGBA) {
	l.commands = append(l.commands, Command{Op: OpClear, Color: c})
}

// FillRect draws a filled rectangle
func (l *List) FillRect(r Rect, c color.RGBA) {
	l.commands = append(l.commands, Command{Op: OpFillRect, Rect: r, Color: c})
}

// StrokeRect draws a rectangle outline of the given thickness, inside r
func (l *List) StrokeRect(r Rect, thickness float64, c color.RGBA) {
	l.commands = append(l.commands, Command{Op: OpStrokeRect, Rect: r, Thickness: thickness, Color: c})
}

// Text draws a single line of text with its top-left corner at (x, y)
func (l *List) Text(s string, x, y float64, c color.RGBA) {
	l.commands = append(l.commands, Command{Op: OpText, X: x, Y: y, Text: s, Color: c})
}
