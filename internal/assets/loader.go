package assets

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/moonacre/lunafarm/internal/core"
)

// Descriptor JSON layout as emitted by aseprite's sheet export.

type descriptorXYWH struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type descriptorWH struct {
	W int `json:"w"`
	H int `json:"h"`
}

type descriptorFrame struct {
	Filename         string         `json:"filename"`
	Frame            descriptorXYWH `json:"frame"`
	Rotated          bool           `json:"rotated"`
	Trimmed          bool           `json:"trimmed"`
	SpriteSourceSize descriptorXYWH `json:"spriteSourceSize"`
	SourceSize       descriptorWH   `json:"sourceSize"`
	Duration         int64          `json:"duration"`
}

type descriptorMeta struct {
	App     string       `json:"app"`
	Version string       `json:"version"`
	Image   string       `json:"image"`
	Format  string       `json:"format"`
	Size    descriptorWH `json:"size"`
	Scale   string       `json:"scale"`
}

type descriptor struct {
	Frames []descriptorFrame `json:"frames"`
	Meta   descriptorMeta    `json:"meta"`
}

// LoadDir loads every sheet named in SheetNames from dir, expecting
// <name>.json descriptors whose meta.image names a PNG in the same directory.
// Any missing or malformed file is fatal at load time.
func LoadDir(dir string) (*Store, error) {
	sheets := make([]*Sheet, 0, len(SheetNames))
	for _, name := range SheetNames {
		sheet, err := loadSheet(dir, name)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return NewStore(sheets), nil
}

func loadSheet(dir, name string) (*Sheet, error) {
	jsonPath := filepath.Join(dir, name+".json")
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("assets: reading descriptor %s: %w", jsonPath, err)
	}

	var desc descriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("assets: parsing descriptor %s: %w", jsonPath, err)
	}
	if len(desc.Frames) == 0 {
		return nil, fmt.Errorf("assets: descriptor %s declares no frames", jsonPath)
	}

	imagePath := filepath.Join(dir, desc.Meta.Image)
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("assets: opening image %s: %w", imagePath, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decoding image %s: %w", imagePath, err)
	}

	frames := make([]Frame, len(desc.Frames))
	for i, df := range desc.Frames {
		frames[i] = Frame{
			Bounds:   core.NewRect(df.Frame.X, df.Frame.Y, df.Frame.W, df.Frame.H),
			Duration: df.Duration,
			SourceW:  df.SourceSize.W,
			SourceH:  df.SourceSize.H,
		}
	}

	return &Sheet{
		Name:   sheetNameFromImage(desc.Meta.Image, name),
		Frames: frames,
		Pixels: pixelGrid(img),
	}, nil
}

// sheetNameFromImage derives the logical sheet name from the image filename,
// falling back to the descriptor name when the image name has no extension.
func sheetNameFromImage(imageName, fallback string) string {
	base := filepath.Base(imageName)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return fallback
}

// pixelGrid converts a decoded image into a row-major straight-alpha grid.
func pixelGrid(img image.Image) [][]core.RGBA {
	b := img.Bounds()
	rows := make([][]core.RGBA, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([]core.RGBA, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a == 0 {
				row[x] = core.RGBA{}
				continue
			}
			// Undo alpha premultiplication from image.Color.RGBA.
			row[x] = core.RGBA{
				R: uint8((r * 0xffff / a) >> 8),
				G: uint8((g * 0xffff / a) >> 8),
				B: uint8((bl * 0xffff / a) >> 8),
				A: uint8(a >> 8),
			}
		}
		rows[y] = row
	}
	return rows
}

// Load opens the sheet set from dir when it exists, otherwise falls back to
// the builtin procedural set. Returns the store and whether the builtin set
// was used.
func Load(dir string) (*Store, bool, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			st, err := LoadDir(dir)
			if err != nil {
				return nil, false, err
			}
			return st, false, nil
		} else if !os.IsNotExist(err) {
			return nil, false, fmt.Errorf("assets: checking %s: %w", dir, err)
		}
	}
	return Builtin(), true, nil
}
