// Package assets loads and indexes sprite sheets: an aseprite-style JSON
// descriptor paired with a PNG image, exposed as per-frame bounding boxes,
// frame durations, and a row-major RGBA pixel grid for sampling.
package assets

import (
	"github.com/moonacre/lunafarm/internal/core"
)

// Frame describes one animation frame of a sheet.
type Frame struct {
	Bounds   core.Rect // Source bounding box within the sheet image
	Duration int64     // Display duration in milliseconds
	SourceW  int       // Declared source width, used for visual-center math
	SourceH  int       // Declared source height
}

// Sheet is a loaded sprite sheet: ordered frames plus the pixel grid they
// index into.
type Sheet struct {
	Name   string
	Index  int
	Frames []Frame
	Pixels [][]core.RGBA // Row-major; Pixels[y][x]
}

// FrameCount returns the number of animation frames.
func (s *Sheet) FrameCount() int {
	return len(s.Frames)
}

// LastFrame returns the index of the final animation frame.
func (s *Sheet) LastFrame() int {
	return len(s.Frames) - 1
}

// Pixel samples the sheet image. Out-of-range coordinates return a fully
// transparent pixel.
func (s *Sheet) Pixel(x, y int) core.RGBA {
	if y < 0 || y >= len(s.Pixels) {
		return core.RGBA{}
	}
	row := s.Pixels[y]
	if x < 0 || x >= len(row) {
		return core.RGBA{}
	}
	return row[x]
}

// SourceSize returns the declared source dimensions of the first frame.
// Interaction-distance searches use these to find a sprite's visual center.
func (s *Sheet) SourceSize() (w, h int) {
	if len(s.Frames) == 0 {
		return 0, 0
	}
	return s.Frames[0].SourceW, s.Frames[0].SourceH
}
