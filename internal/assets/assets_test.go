package assets

import "testing"

func TestBuiltinCoversAllSheetNames(t *testing.T) {
	store := Builtin()

	if store.Count() != len(SheetNames) {
		t.Fatalf("builtin store has %d sheets, expected %d", store.Count(), len(SheetNames))
	}

	for i, name := range SheetNames {
		sheet, err := store.ByName(name)
		if err != nil {
			t.Fatalf("missing builtin sheet %q: %v", name, err)
		}
		if sheet.Index != i {
			t.Errorf("sheet %q at index %d, expected %d", name, sheet.Index, i)
		}
		if sheet.FrameCount() == 0 {
			t.Errorf("sheet %q has no frames", name)
		}
		for f, frame := range sheet.Frames {
			if frame.Duration <= 0 {
				t.Errorf("sheet %q frame %d has duration %d", name, f, frame.Duration)
			}
		}
	}
}

func TestStoreLookups(t *testing.T) {
	store := Builtin()

	idx, err := store.IndexByName("grass")
	if err != nil {
		t.Fatalf("IndexByName(grass): %v", err)
	}
	if store.ByIndex(idx).Name != "grass" {
		t.Errorf("ByIndex(%d).Name = %q, expected grass", idx, store.ByIndex(idx).Name)
	}

	if _, err := store.ByName("no-such-sheet"); err == nil {
		t.Error("ByName(no-such-sheet) did not return an error")
	}
	if _, err := store.IndexByName("no-such-sheet"); err == nil {
		t.Error("IndexByName(no-such-sheet) did not return an error")
	}
}

func TestMustIndexPanicsOnUnknownName(t *testing.T) {
	store := Builtin()

	defer func() {
		if recover() == nil {
			t.Error("MustIndex(no-such-sheet) did not panic")
		}
	}()
	store.MustIndex("no-such-sheet")
}

func TestSheetPixelOutOfBounds(t *testing.T) {
	store := Builtin()
	sheet, err := store.ByName("tile-dirt")
	if err != nil {
		t.Fatal(err)
	}

	// Out-of-range reads return transparent rather than panicking.
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {100000, 0}, {0, 100000}} {
		px := sheet.Pixel(pt[0], pt[1])
		if px.A != 0 {
			t.Errorf("Pixel(%d, %d).A = %d, expected 0", pt[0], pt[1], px.A)
		}
	}
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	store, usedBuiltin, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if !usedBuiltin {
		t.Error("Load(\"\") did not report builtin fallback")
	}
	if store.Count() != len(SheetNames) {
		t.Errorf("fallback store has %d sheets, expected %d", store.Count(), len(SheetNames))
	}

	// A nonexistent directory also falls back rather than failing.
	store, usedBuiltin, err = Load("testdata/definitely-not-here")
	if err != nil {
		t.Fatalf("Load(missing dir): %v", err)
	}
	if !usedBuiltin || store == nil {
		t.Error("Load(missing dir) did not fall back to builtin")
	}
}

func TestBuiltinCropSheetsShareGeometry(t *testing.T) {
	store := Builtin()

	empty, _ := store.ByName("crop-empty")
	leaf, _ := store.ByName("crop-leaf")
	flower, _ := store.ByName("crop-flower")

	// Seeding swaps the sheet index while keeping the frame, so the three
	// crop sheets must agree on frame count.
	if empty.FrameCount() != leaf.FrameCount() || leaf.FrameCount() != flower.FrameCount() {
		t.Errorf("crop sheets disagree on frame count: empty=%d leaf=%d flower=%d",
			empty.FrameCount(), leaf.FrameCount(), flower.FrameCount())
	}
}
