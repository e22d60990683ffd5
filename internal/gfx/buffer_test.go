package gfx

import (
	"testing"

	"github.com/moonacre/lunafarm/internal/core"
)

func TestPutAndGetClip(t *testing.T) {
	b := NewBuffer(4, 3)

	c := Cell{Rune: 'x', Fg: core.RGB(1, 2, 3)}
	b.Put(1, 1, c)
	got, ok := b.Get(1, 1)
	if !ok || got != c {
		t.Errorf("Get(1, 1) = %+v, %v; expected the written cell", got, ok)
	}

	// Out-of-bounds writes are dropped, not panics.
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		b.Put(pt[0], pt[1], c)
		if _, ok := b.Get(pt[0], pt[1]); ok {
			t.Errorf("Get(%d, %d) ok = true outside bounds", pt[0], pt[1])
		}
	}
}

func TestEraseResetsOnlyWrittenCells(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Put(0, 0, Cell{Rune: 'a'})
	b.Put(3, 1, Cell{Rune: 'b'})

	b.Erase()

	for _, pt := range [][2]int{{0, 0}, {3, 1}} {
		got, _ := b.Get(pt[0], pt[1])
		if got.Rune != ' ' {
			t.Errorf("cell (%d, %d) = %q after Erase, expected blank", pt[0], pt[1], got.Rune)
		}
	}

	// Erase does not request a full repaint.
	if b.TakeForceRedraw() {
		t.Error("Erase set the force-redraw flag")
	}
}

func TestClearRequestsFullRepaint(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Put(2, 0, Cell{Rune: 'a'})

	b.Clear()
	if got, _ := b.Get(2, 0); got.Rune != ' ' {
		t.Errorf("cell = %q after Clear, expected blank", got.Rune)
	}
	if !b.TakeForceRedraw() {
		t.Error("Clear did not set the force-redraw flag")
	}
	// The flag is consumed by the read.
	if b.TakeForceRedraw() {
		t.Error("force-redraw flag survived TakeForceRedraw")
	}
}

func TestResizeDiscardsAndForcesRedraw(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Put(0, 0, Cell{Rune: 'a'})

	b.Resize(6, 5)
	if b.Width() != 6 || b.Height() != 5 {
		t.Errorf("size = %dx%d after Resize, expected 6x5", b.Width(), b.Height())
	}
	if got, _ := b.Get(0, 0); got.Rune != ' ' {
		t.Errorf("cell = %q after Resize, expected blank", got.Rune)
	}
	if !b.TakeForceRedraw() {
		t.Error("Resize did not set the force-redraw flag")
	}

	// Resizing to the same dimensions is a no-op.
	b.Put(0, 0, Cell{Rune: 'z'})
	b.Resize(6, 5)
	if got, _ := b.Get(0, 0); got.Rune != 'z' {
		t.Error("no-op Resize discarded content")
	}
}

func TestStringEmitsAllRows(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Put(0, 0, Cell{Rune: 'a'})
	b.Put(1, 1, Cell{Rune: 'b'})

	got := b.String()
	lines := 1
	for _, r := range got {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("String() has %d lines, expected 2", lines)
	}
}
