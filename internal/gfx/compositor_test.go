package gfx

import (
	"testing"

	"github.com/moonacre/lunafarm/internal/assets"
	"github.com/moonacre/lunafarm/internal/core"
	"github.com/moonacre/lunafarm/internal/world"
)

// pixelSheet builds a one-frame sheet from an explicit pixel grid.
func pixelSheet(name string, pixels [][]core.RGBA) *assets.Sheet {
	h := len(pixels)
	w := 0
	if h > 0 {
		w = len(pixels[0])
	}
	return &assets.Sheet{
		Name: name,
		Frames: []assets.Frame{{
			Bounds:   core.NewRect(0, 0, w, h),
			Duration: 100,
			SourceW:  w,
			SourceH:  h,
		}},
		Pixels: pixels,
	}
}

func TestBlendOpaquePair(t *testing.T) {
	b := NewBuffer(2, 2)
	top := core.RGB(10, 20, 30)
	bottom := core.RGB(40, 50, 60)

	blendCell(b, 0, 0, top, bottom)

	got, _ := b.Get(0, 0)
	if got.Rune != UpperHalf || got.Fg != top || got.Bg != bottom {
		t.Errorf("cell = %+v, expected upper-half with fg=top bg=bottom", got)
	}
}

func TestBlendHalfTransparentPairs(t *testing.T) {
	top := core.RGB(10, 20, 30)
	bottom := core.RGB(40, 50, 60)

	// Opaque top over an untouched cell: the background stays default.
	b := NewBuffer(2, 2)
	blendCell(b, 0, 0, top, core.RGBA{})
	got, _ := b.Get(0, 0)
	if got.Rune != UpperHalf || got.Fg != top || got.Bg.Opaque() {
		t.Errorf("top-only cell = %+v, expected upper-half over default bg", got)
	}

	// Opaque bottom only: the lower-half glyph carries the color.
	blendCell(b, 1, 0, core.RGBA{}, bottom)
	got, _ = b.Get(1, 0)
	if got.Rune != LowerHalf || got.Fg != bottom || got.Bg.Opaque() {
		t.Errorf("bottom-only cell = %+v, expected lower-half over default bg", got)
	}
}

func TestBlendTransparentPairLeavesCellUntouched(t *testing.T) {
	b := NewBuffer(2, 2)
	before := Cell{Rune: UpperHalf, Fg: core.RGB(1, 1, 1), Bg: core.RGB(2, 2, 2)}
	b.Put(0, 0, before)

	blendCell(b, 0, 0, core.RGBA{}, core.RGBA{})

	got, _ := b.Get(0, 0)
	if got != before {
		t.Errorf("cell changed by a fully transparent pair: %+v", got)
	}
}

func TestBlendRecoversUnderlay(t *testing.T) {
	b := NewBuffer(2, 2)
	underTop := core.RGB(100, 0, 0)
	underBottom := core.RGB(0, 100, 0)
	blendCell(b, 0, 0, underTop, underBottom)

	// A sprite covering only the top pixel keeps the prior bottom color
	// visible in the cell background.
	newTop := core.RGB(0, 0, 200)
	blendCell(b, 0, 0, newTop, core.RGBA{})

	got, _ := b.Get(0, 0)
	if got.Rune != UpperHalf || got.Fg != newTop || got.Bg != underBottom {
		t.Errorf("cell = %+v, expected new top over recovered bottom %v", got, underBottom)
	}

	// And vice versa: a bottom-only sprite keeps the prior top color.
	blendCell(b, 1, 0, underTop, underBottom)
	newBottom := core.RGB(200, 200, 0)
	blendCell(b, 1, 0, core.RGBA{}, newBottom)

	got, _ = b.Get(1, 0)
	if got.Rune != LowerHalf || got.Fg != newBottom || got.Bg != underTop {
		t.Errorf("cell = %+v, expected new bottom over recovered top %v", got, underTop)
	}
}

func TestDrawSpriteFlipReversesColumns(t *testing.T) {
	left := core.RGB(10, 0, 0)
	right := core.RGB(0, 10, 0)
	sheet := pixelSheet("two-tone", [][]core.RGBA{
		{left, right},
		{left, right},
	})

	var comp Compositor
	b := NewBuffer(4, 2)
	sp := world.Sprite{Flip: true}
	comp.drawSprite(b, sheet, &sp, world.Position{})

	got, _ := b.Get(0, 0)
	if got.Fg != right {
		t.Errorf("flipped sprite column 0 fg = %v, expected %v", got.Fg, right)
	}
	got, _ = b.Get(1, 0)
	if got.Fg != left {
		t.Errorf("flipped sprite column 1 fg = %v, expected %v", got.Fg, left)
	}
}

func TestDrawSpriteHighlightRemapsOutline(t *testing.T) {
	outline := core.RGBA{A: 255} // pure black, opaque
	body := core.RGB(50, 50, 50)
	sheet := pixelSheet("outlined", [][]core.RGBA{
		{outline},
		{body},
	})

	var comp Compositor
	b := NewBuffer(2, 2)
	sp := world.Sprite{Highlight: true}
	comp.drawSprite(b, sheet, &sp, world.Position{})

	got, _ := b.Get(0, 0)
	if got.Fg != core.HighlightColor {
		t.Errorf("outline fg = %v while highlighted, expected %v", got.Fg, core.HighlightColor)
	}
	if got.Bg != body {
		t.Errorf("body bg = %v while highlighted, expected unchanged %v", got.Bg, body)
	}
}

func TestDrawSpriteClipsAtEdges(t *testing.T) {
	c := core.RGB(1, 2, 3)
	sheet := pixelSheet("solid", [][]core.RGBA{
		{c, c},
		{c, c},
	})

	var comp Compositor
	b := NewBuffer(2, 2)
	// Partially off every edge; must not panic and must only write inside.
	for _, pos := range []world.Position{{X: -1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -1}} {
		sp := world.Sprite{}
		comp.drawSprite(b, sheet, &sp, pos)
	}
	if got, _ := b.Get(0, 0); got.Rune == 0 {
		t.Error("in-bounds cell never written")
	}
}

func TestDrawTextNewlineAndRightEdge(t *testing.T) {
	b := NewBuffer(5, 3)
	drawText(b, "ab\ncd", 1, 0)

	got, _ := b.Get(1, 0)
	if got.Rune != 'a' {
		t.Errorf("cell (1, 0) = %q, expected 'a'", got.Rune)
	}
	// Newline returns to the starting column, not column zero.
	got, _ = b.Get(1, 1)
	if got.Rune != 'c' {
		t.Errorf("cell (1, 1) = %q, expected 'c'", got.Rune)
	}
	got, _ = b.Get(0, 1)
	if got.Rune != ' ' {
		t.Errorf("cell (0, 1) = %q, expected blank", got.Rune)
	}

	// Text stops at the right edge.
	drawText(b, "abcdefgh", 3, 2)
	got, _ = b.Get(4, 2)
	if got.Rune != 'b' {
		t.Errorf("cell (4, 2) = %q, expected 'b'", got.Rune)
	}
}

func TestRenderDrawsHelpAndTerminalMessage(t *testing.T) {
	store := assets.Builtin()
	comp := NewCompositor(store)
	wd := world.New([]string{"hail"})
	wd.Flags.ShowTerminal = true

	b := NewBuffer(20, 5)
	comp.Render(b, wd)

	// The message renders one column in from the left on the top row.
	for i, want := range "hail" {
		got, _ := b.Get(1+i, 0)
		if got.Rune != want {
			t.Errorf("cell (%d, 0) = %q, expected %q", 1+i, got.Rune, want)
		}
	}

	// The help line renders along the bottom row.
	got, _ := b.Get(0, 4)
	if got.Rune != rune(HelpText[0]) {
		t.Errorf("cell (0, 4) = %q, expected help text", got.Rune)
	}

	// Once read, the terminal shows the no-messages notice instead.
	wd.Flags.MessageRead = true
	comp.Render(b, wd)
	for i, want := range noMessages[:4] {
		got, _ := b.Get(1+i, 0)
		if got.Rune != want {
			t.Errorf("cell (%d, 0) = %q after read, expected %q", 1+i, got.Rune, want)
		}
	}
}

func TestRenderDepthOrder(t *testing.T) {
	lowColor := core.RGB(9, 0, 0)
	highColor := core.RGB(0, 9, 0)
	low := pixelSheet("low", [][]core.RGBA{{lowColor}, {lowColor}})
	high := pixelSheet("high", [][]core.RGBA{{highColor}, {highColor}})
	store := assets.NewStore([]*assets.Sheet{low, high})

	comp := NewCompositor(store)
	wd := world.New(nil)
	wd.Flags.ShowHelp = false
	wd.Flags.ShowTransition = false
	// Spawn the deeper sprite second; depth sorting must still put it under.
	wd.Spawn(world.SpawnSpec{
		Sprite: world.Sprite{Sheet: 1},
		Pos:    world.Position{X: 0, Y: 0, Z: world.DepthTools},
	})
	wd.Spawn(world.SpawnSpec{
		Sprite: world.Sprite{Sheet: 0},
		Pos:    world.Position{X: 0, Y: 0, Z: world.DepthGround},
	})

	b := NewBuffer(2, 2)
	comp.Render(b, wd)

	got, _ := b.Get(0, 0)
	if got.Fg != highColor {
		t.Errorf("top cell fg = %v, expected the higher-depth sprite color %v", got.Fg, highColor)
	}
}

func TestRenderSkipsHiddenSprites(t *testing.T) {
	c := core.RGB(7, 7, 7)
	sheet := pixelSheet("solid", [][]core.RGBA{{c}, {c}})
	store := assets.NewStore([]*assets.Sheet{sheet})

	comp := NewCompositor(store)
	wd := world.New(nil)
	wd.Flags.ShowHelp = false
	wd.Spawn(world.SpawnSpec{
		Sprite: world.Sprite{Sheet: 0, Hidden: true},
		Pos:    world.Position{X: 0, Y: 0, Z: world.DepthTools},
	})

	b := NewBuffer(2, 2)
	comp.Render(b, wd)

	got, _ := b.Get(0, 0)
	if got.Rune != ' ' {
		t.Errorf("hidden sprite drew glyph %q", got.Rune)
	}
}
