// Package gfx renders the farm world into a terminal cell buffer using
// half-block compositing: two vertically adjacent source pixels share one
// character cell, the top mapped to the glyph's foreground and the bottom to
// its background.
package gfx

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moonacre/lunafarm/internal/core"
)

// Half-block glyphs. UpperHalf paints the cell's top pixel as foreground;
// LowerHalf paints the bottom pixel as foreground.
const (
	UpperHalf = '▀'
	LowerHalf = '▄'
)

// Cell is one terminal cell: a glyph plus foreground/background colors.
// A color with zero alpha means "terminal default".
type Cell struct {
	Rune rune
	Fg   core.RGBA
	Bg   core.RGBA
}

// blank is the untouched cell value.
var blank = Cell{Rune: ' '}

// Buffer is an addressable grid of terminal cells with dirty tracking.
// Erase resets only the cells written since the previous erase, so an
// unchanged frame region costs nothing; Clear resets everything and requests
// a full terminal repaint.
type Buffer struct {
	width  int
	height int
	cells  []Cell
	dirty  []bool

	forceRedraw bool
}

// NewBuffer creates a cell buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: width, height: height}
	b.allocate()
	return b
}

func (b *Buffer) allocate() {
	b.cells = make([]Cell, b.width*b.height)
	b.dirty = make([]bool, b.width*b.height)
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// Resize reallocates the buffer. Content is discarded; the next frame
// redraws everything anyway.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height
	b.allocate()
	b.forceRedraw = true
}

// Clear resets every cell and requests a full repaint on the next flush.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
		b.dirty[i] = false
	}
	b.forceRedraw = true
}

// Erase resets only the cells marked dirty by the previous frame's writes,
// leaving the rest untouched for incremental redraw.
func (b *Buffer) Erase() {
	for i, d := range b.dirty {
		if d {
			b.cells[i] = blank
			b.dirty[i] = false
		}
	}
}

// TakeForceRedraw returns and clears the full-repaint request flag.
func (b *Buffer) TakeForceRedraw() bool {
	f := b.forceRedraw
	b.forceRedraw = false
	return f
}

// Put writes a cell. Out-of-bounds coordinates are silently clipped.
func (b *Buffer) Put(x, y int, c Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.width + x
	b.cells[i] = c
	b.dirty[i] = true
}

// Get reads a cell. The second return is false outside the bounds.
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return blank, false
	}
	return b.cells[y*b.width+x], true
}

// String serializes the buffer to a styled frame string, grouping runs of
// identically colored cells to keep escape-sequence overhead down.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height*2 + b.height)

	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < b.width {
			start := b.cells[y*b.width+x]
			var run strings.Builder
			for x < b.width {
				c := b.cells[y*b.width+x]
				if c.Fg != start.Fg || c.Bg != start.Bg {
					break
				}
				run.WriteRune(c.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

// styleFor builds the lipgloss style for a cell's color pair.
func styleFor(c Cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.Fg.Opaque() {
		st = st.Foreground(lipgloss.Color(hex(c.Fg)))
	}
	if c.Bg.Opaque() {
		st = st.Background(lipgloss.Color(hex(c.Bg)))
	}
	return st
}

func hex(c core.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
