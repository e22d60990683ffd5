package sim

import (
	"github.com/moonacre/lunafarm/internal/world"
)

// applyAction walks every interactible and applies the tick's resolved
// action. Grow applies across all crops; the other kinds target a single
// sprite by interaction id. The terminal's idle animation is also maintained
// here, tied to the read flag.
func (s *System) applyAction(wd *world.World, act action) {
	wd.EachInteractible(func(h world.Handle, it *world.Interactible, sp *world.Sprite, p *world.Position) bool {
		if it.Kind == world.ItemTerminal {
			if wd.Flags.MessageRead {
				sp.Frame = 0
				sp.Animating = false
			} else {
				sp.Animating = true
			}
			return true
		}

		// Grow advances every watered crop by one stage. Watered state lives
		// in frames 4..7; growing maps it back to the next dry frame, and a
		// crop that tops out is replaced by freshly seeded grass.
		if act.kind == actGrow && it.Kind == world.ItemCrop {
			switch {
			case sp.Frame < 4:
				// Not watered; skip.
			case sp.Frame < 7:
				sp.Frame = sp.Frame - 4 + 1
			case sp.Frame == 7:
				wd.QueueRemove(h)
				s.spawnGrass(wd, p.X, p.Y)
			}
		}

		if act.id != sp.ID {
			return true
		}

		switch act.kind {
		case actWater:
			if sp.Frame < 4 {
				sp.Frame += 4
			}
		case actSeed:
			if sp.Sheet == s.sheetCropEmpty {
				sp.Frame = 0
				sp.Sheet = s.sheetCropLeaf
			}
		case actSeed2:
			if sp.Sheet == s.sheetCropEmpty {
				sp.Frame = 0
				sp.Sheet = s.sheetCropFlower
			}
		case actDelete:
			wd.QueueRemove(h)
		}
		return true
	})
}

// spawnGrass queues an animated grass tuft with a random starting frame and
// facing, replacing a fully grown crop.
func (s *System) spawnGrass(wd *world.World, x, y int) {
	id := wd.NewSpriteID()
	frames := s.store.ByIndex(s.sheetGrass).FrameCount()
	wd.QueueSpawn(world.SpawnSpec{
		Sprite: world.Sprite{
			ID:        id,
			Sheet:     s.sheetGrass,
			Flip:      s.rng.Intn(2) == 0,
			Frame:     s.rng.Intn(frames),
			Animating: true,
			Class:     world.ClassCrop,
		},
		Pos:  world.Position{X: x, Y: y, Z: world.DepthCrops + id},
		Item: &world.Interactible{Kind: world.ItemGrass},
	})
}
