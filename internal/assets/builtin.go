package assets

import (
	"github.com/moonacre/lunafarm/internal/core"
)

// builtinSpec drives procedural generation of a stand-in sheet when no asset
// directory is available. Frames are laid out horizontally in one image.
type builtinSpec struct {
	name     string
	w, h     int
	frames   int
	duration int64
	body     core.RGBA
	alt      core.RGBA // Used on odd frames for a simple two-phase look
	outlined bool
}

var builtinSpecs = []builtinSpec{
	{name: "character-00", w: 10, h: 8, frames: 4, duration: 120, body: core.RGB(224, 176, 128), alt: core.RGB(200, 152, 112), outlined: true},
	{name: "character-01", w: 10, h: 8, frames: 4, duration: 120, body: core.RGB(168, 128, 224), alt: core.RGB(144, 104, 200), outlined: true},
	{name: "tile-dirt", w: 8, h: 4, frames: 4, duration: 400, body: core.RGB(96, 64, 32), alt: core.RGB(88, 56, 28)},
	// Grass carries 8 frames so a watered tuft (frame += 4) still indexes a
	// valid frame, same as the crop sheets.
	{name: "grass", w: 8, h: 4, frames: 8, duration: 300, body: core.RGB(56, 160, 64), alt: core.RGB(48, 144, 56)},
	{name: "tool-shovel", w: 6, h: 6, frames: 2, duration: 200, body: core.RGB(176, 176, 184), alt: core.RGB(152, 152, 160), outlined: true},
	{name: "tool-watercan", w: 6, h: 6, frames: 2, duration: 200, body: core.RGB(80, 128, 208), alt: core.RGB(64, 112, 192), outlined: true},
	{name: "tool-packet", w: 6, h: 6, frames: 2, duration: 200, body: core.RGB(216, 184, 96), alt: core.RGB(200, 168, 80), outlined: true},
	{name: "tool-packet2", w: 6, h: 6, frames: 2, duration: 200, body: core.RGB(216, 112, 168), alt: core.RGB(200, 96, 152), outlined: true},
	{name: "crop-empty", w: 6, h: 6, frames: 8, duration: 250, body: core.RGB(128, 96, 56), alt: core.RGB(88, 72, 48), outlined: true},
	{name: "crop-leaf", w: 6, h: 6, frames: 8, duration: 250, body: core.RGB(88, 192, 80), alt: core.RGB(56, 144, 96), outlined: true},
	{name: "crop-flower", w: 6, h: 6, frames: 8, duration: 250, body: core.RGB(232, 120, 144), alt: core.RGB(192, 96, 160), outlined: true},
	{name: "cryopod", w: 8, h: 10, frames: 4, duration: 300, body: core.RGB(120, 208, 224), alt: core.RGB(96, 184, 208), outlined: true},
	{name: "terminal", w: 6, h: 8, frames: 3, duration: 250, body: core.RGB(64, 96, 88), alt: core.RGB(80, 200, 136), outlined: true},
	{name: "transition", w: 16, h: 8, frames: 6, duration: 80, body: core.RGB(8, 8, 24), alt: core.RGB(16, 16, 40)},
	{name: "particle-dirt", w: 6, h: 6, frames: 4, duration: 100, body: core.RGB(120, 88, 48), alt: core.RGB(96, 72, 40)},
	{name: "particle-water", w: 6, h: 6, frames: 4, duration: 100, body: core.RGB(104, 160, 232), alt: core.RGB(136, 192, 248)},
	{name: "particle-heart", w: 6, h: 6, frames: 4, duration: 100, body: core.RGB(240, 80, 112), alt: core.RGB(255, 120, 144)},
}

// Builtin returns a complete procedural sheet set covering every name in
// SheetNames. It keeps the game runnable without asset files on disk.
func Builtin() *Store {
	sheets := make([]*Sheet, 0, len(builtinSpecs))
	for _, spec := range builtinSpecs {
		sheets = append(sheets, generateSheet(spec))
	}
	return NewStore(sheets)
}

func generateSheet(spec builtinSpec) *Sheet {
	pixels := make([][]core.RGBA, spec.h)
	for y := range pixels {
		pixels[y] = make([]core.RGBA, spec.w*spec.frames)
	}

	frames := make([]Frame, spec.frames)
	for f := 0; f < spec.frames; f++ {
		frames[f] = Frame{
			Bounds:   core.NewRect(f*spec.w, 0, spec.w, spec.h),
			Duration: spec.duration,
			SourceW:  spec.w,
			SourceH:  spec.h,
		}
		paintFrame(pixels, spec, f)
	}

	return &Sheet{
		Name:   spec.name,
		Frames: frames,
		Pixels: pixels,
	}
}

// paintFrame fills one frame slot: a colored body with an optional black
// outline, insetting alternate frames by one pixel for a two-phase wobble.
func paintFrame(pixels [][]core.RGBA, spec builtinSpec, f int) {
	x0 := f * spec.w
	inset := 0
	if spec.outlined && f%2 == 1 {
		inset = 1
	}
	body := spec.body
	if f%2 == 1 {
		body = spec.alt
	}
	for y := inset; y < spec.h-inset; y++ {
		for x := inset; x < spec.w-inset; x++ {
			edge := y == inset || y == spec.h-1-inset || x == inset || x == spec.w-1-inset
			switch {
			case edge && spec.outlined:
				pixels[y][x0+x] = core.RGB(0, 0, 0)
			default:
				pixels[y][x0+x] = body
			}
		}
	}
}
