package gfx

import (
	"sort"
	"strconv"

	"github.com/moonacre/lunafarm/internal/assets"
	"github.com/moonacre/lunafarm/internal/core"
	"github.com/moonacre/lunafarm/internal/world"
)

// Overlay text colors: white on dark blue.
var (
	overlayFg = core.RGB(255, 255, 255)
	overlayBg = core.RGB(0, 0, 95)
)

// HelpText is the control hint line drawn along the bottom edge.
const HelpText = "arrows/hjkl: move | q: quit | space: pickup | u: use | ?: hide help "

// noMessages is shown when the terminal is open but the current message has
// already been read.
const noMessages = "No new messages."

// Compositor draws a depth-sorted, alpha-blended frame of the world into a
// cell buffer. It only ever reads the world; the result is indistinguishable
// from re-rendering the same input from scratch.
type Compositor struct {
	store *assets.Store

	// Debug overlays frame numbers on tools and crops while help is shown.
	Debug bool
}

// NewCompositor creates a compositor over the given asset store.
func NewCompositor(store *assets.Store) *Compositor {
	return &Compositor{store: store}
}

// drawItem is one (Position, Sprite) pair collected for depth sorting.
type drawItem struct {
	pos world.Position
	sp  world.Sprite
}

// Render composes one frame: erase or full clear, sprites in ascending depth
// order, then UI overlays on top regardless of depth.
func (c *Compositor) Render(buf *Buffer, wd *world.World) {
	if wd.Flags.ClearScreen {
		buf.Clear()
	} else {
		buf.Erase()
	}

	items := make([]drawItem, 0, wd.Count())
	wd.EachSpritePos(func(_ world.Handle, sp *world.Sprite, p *world.Position) bool {
		items = append(items, drawItem{pos: *p, sp: *sp})
		return true
	})
	// Stable: equal depths keep traversal order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].pos.Z < items[j].pos.Z
	})

	type debugMark struct {
		x, y  int
		label string
	}
	var debugMarks []debugMark

	for i := range items {
		it := &items[i]
		if it.sp.Hidden {
			continue
		}
		c.drawSprite(buf, c.store.ByIndex(it.sp.Sheet), &it.sp, it.pos)

		if c.Debug && (it.sp.Class == world.ClassTool || it.sp.Class == world.ClassCrop) {
			debugMarks = append(debugMarks, debugMark{
				x:     it.pos.X,
				y:     it.pos.Y,
				label: strconv.Itoa(it.sp.Frame),
			})
		}
	}

	if wd.Flags.ShowTerminal {
		message := wd.Flags.CurrentMessage()
		if wd.Flags.MessageRead || message == "" {
			message = noMessages
		}
		drawText(buf, message, 1, 0)
	}

	if wd.Flags.ShowHelp {
		drawText(buf, HelpText, 0, buf.Height()-1)
		if c.Debug {
			for _, m := range debugMarks {
				drawText(buf, m.label, m.x, m.y)
			}
		}
	}
}

// drawSprite blends one sprite's active frame into the buffer, two source
// pixel rows per destination cell.
func (c *Compositor) drawSprite(buf *Buffer, sheet *assets.Sheet, sp *world.Sprite, pos world.Position) {
	frame := sheet.Frames[sp.Frame]
	rows := sampleRegion(sheet, frame.Bounds, sp.Flip)

	for y := 0; y < len(rows); y += 2 {
		scrY := pos.Y + y/2
		if scrY < 0 || scrY >= buf.Height() {
			continue
		}
		row := rows[y]
		for x := 0; x < len(row); x++ {
			scrX := pos.X + x
			if scrX < 0 || scrX >= buf.Width() {
				continue
			}

			top := row[x]
			bottom := core.RGBA{}
			if y+1 < len(rows) {
				bottom = rows[y+1][x]
			}

			if sp.Highlight {
				if top.IsOutline() {
					top = core.HighlightColor
					top.A = row[x].A
				}
				if bottom.IsOutline() {
					a := bottom.A
					bottom = core.HighlightColor
					bottom.A = a
				}
			}

			blendCell(buf, scrX, scrY, top, bottom)
		}
	}
}

// sampleRegion reads a rectangular pixel region from the sheet, reversing
// columns when the sprite is flipped horizontally.
func sampleRegion(sheet *assets.Sheet, bounds core.Rect, flip bool) [][]core.RGBA {
	rows := make([][]core.RGBA, 0, bounds.H)
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		row := make([]core.RGBA, 0, bounds.W)
		if flip {
			for x := bounds.Right() - 1; x >= bounds.X; x-- {
				row = append(row, sheet.Pixel(x, y))
			}
		} else {
			for x := bounds.X; x < bounds.Right(); x++ {
				row = append(row, sheet.Pixel(x, y))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// blendCell composes a top/bottom pixel pair onto one destination cell. The
// cell's prior content recovers an underlying color pair when its glyph is a
// half-block; otherwise the pair's own colors serve as the underlay. A fully
// transparent pair leaves the cell byte-identical.
func blendCell(buf *Buffer, x, y int, top, bottom core.RGBA) {
	under1, under2 := top, bottom
	if prev, ok := buf.Get(x, y); ok {
		switch prev.Rune {
		case UpperHalf:
			under1 = prev.Fg
			under2 = prev.Bg
		case LowerHalf:
			under1 = prev.Bg
			under2 = prev.Fg
		}
	}

	switch {
	case top.Opaque():
		bg := under2
		if bottom.Opaque() {
			bg = bottom
		}
		buf.Put(x, y, Cell{Rune: UpperHalf, Fg: top, Bg: bg})
	case bottom.Opaque():
		buf.Put(x, y, Cell{Rune: LowerHalf, Fg: bottom, Bg: under1})
	}
}

// drawText writes overlay text starting at (startX, startY). Text wraps only
// on explicit newlines and stops entirely once a glyph would pass the right
// edge; cells are overwritten outright, not blended.
func drawText(buf *Buffer, text string, startX, startY int) {
	x, y := startX, startY
	for _, ch := range text {
		if x > buf.Width()-1 {
			break
		}
		if ch == '\n' {
			y++
			x = startX
			continue
		}
		buf.Put(x, y, Cell{Rune: ch, Fg: overlayFg, Bg: overlayBg})
		x++
	}
}
