package farm

import (
	"github.com/moonacre/lunafarm/internal/world"
)

// Fixed scene positions. The dirt field and overlays tile to fit the screen;
// the set dressing below sits at hand-placed spots near the top left.
const (
	podX, podY           = 1, 0
	terminalX, terminalY = 11, 2
	playerX              = 5
	shovelX              = 2
	watercanX            = 8
	packetX              = 8
)

// generate builds the initial scene: tiled dirt, scattered grass, the
// startup transition overlays, the cryopod and terminal, the player, and the
// three starting tools. Width and height are in cells.
func (g *Game) generate(width, height int) {
	wd := g.wd
	st := g.store

	dirt := st.MustIndex("tile-dirt")
	grass := st.MustIndex("grass")
	transition := st.MustIndex("transition")

	dirtSheet := st.ByIndex(dirt)
	grassSheet := st.ByIndex(grass)
	dirtW := dirtSheet.Frames[0].SourceW
	dirtRows := dirtSheet.Frames[0].SourceH / 2
	grassH := grassSheet.Frames[0].SourceH

	// Dirt tiles the whole field. Tiles sprout grass with 1-in-4 odds, but
	// keep clear of the right and bottom edges so tufts never clip the
	// screen border.
	for y := 0; y < height; y += dirtRows {
		for x := 0; x < width; x += dirtW {
			wd.Spawn(world.SpawnSpec{
				Sprite: world.Sprite{
					Sheet: dirt,
					Frame: g.rng.Intn(dirtSheet.FrameCount()),
					Flip:  g.rng.Intn(2) == 0,
					Class: world.ClassBackground,
				},
				Pos: world.Position{X: x, Y: y, Z: world.DepthGround},
			})

			open := x+dirtW < width && y+grassH < height
			if open && g.rng.Intn(4) == 0 {
				id := wd.NewSpriteID()
				wd.Spawn(world.SpawnSpec{
					Sprite: world.Sprite{
						ID:        id,
						Sheet:     grass,
						Frame:     g.rng.Intn(grassSheet.FrameCount()),
						Flip:      g.rng.Intn(2) == 0,
						Animating: true,
						Class:     world.ClassCrop,
					},
					Pos:  world.Position{X: x, Y: y, Z: world.DepthGrass + id},
					Item: &world.Interactible{Kind: world.ItemGrass},
				})
			}
		}
	}

	// Transition overlays tile the screen and play once at startup.
	transSheet := st.ByIndex(transition)
	transW := transSheet.Frames[0].SourceW
	transRows := transSheet.Frames[0].SourceH / 2
	for y := 0; y < height; y += transRows {
		for x := 0; x < width; x += transW {
			wd.Spawn(world.SpawnSpec{
				Sprite: world.Sprite{
					Sheet:     transition,
					Animating: true,
					Class:     world.ClassOverlay,
				},
				Pos: world.Position{X: x, Y: y, Z: world.DepthOverlay},
			})
		}
	}

	// The cryopod and terminal draw beneath the player but above crops, so
	// their ids subtract from the player band.
	podID := wd.NewSpriteID()
	wd.Spawn(world.SpawnSpec{
		Sprite: world.Sprite{
			ID:        podID,
			Sheet:     st.MustIndex("cryopod"),
			Animating: true,
			Class:     world.ClassTool,
		},
		Pos:  world.Position{X: podX, Y: podY, Z: world.DepthPlayer - podID},
		Item: &world.Interactible{Kind: world.ItemPod},
	})

	termID := wd.NewSpriteID()
	wd.Spawn(world.SpawnSpec{
		Sprite: world.Sprite{
			ID:    termID,
			Sheet: st.MustIndex("terminal"),
			Flip:  true,
			Class: world.ClassTool,
		},
		Pos:  world.Position{X: terminalX, Y: terminalY, Z: world.DepthPlayer - termID},
		Item: &world.Interactible{Kind: world.ItemTerminal},
	})

	playerID := wd.NewSpriteID()
	wd.Spawn(world.SpawnSpec{
		Sprite: world.Sprite{
			ID:    playerID,
			Sheet: st.MustIndex("character-00"),
			Class: world.ClassPlayer,
		},
		Pos: world.Position{X: playerX, Y: height/2 - 2, Z: world.DepthPlayer + playerID},
	})

	g.spawnTool(st.MustIndex("tool-shovel"), world.ItemShovel, shovelX, height-7)
	g.spawnTool(st.MustIndex("tool-watercan"), world.ItemWatercan, watercanX, height-8)
	g.spawnTool(st.MustIndex("tool-packet"), world.ItemPacket, packetX, height-4)
}

// spawnTool places a pickup tool in the scene.
func (g *Game) spawnTool(sheet int, kind world.ItemKind, x, y int) {
	id := g.wd.NewSpriteID()
	g.wd.Spawn(world.SpawnSpec{
		Sprite: world.Sprite{
			ID:    id,
			Sheet: sheet,
			Class: world.ClassTool,
		},
		Pos:  world.Position{X: x, Y: y, Z: world.DepthTools + id},
		Item: &world.Interactible{Kind: kind, HoldToUse: true},
	})
}
