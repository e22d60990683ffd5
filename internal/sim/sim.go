// Package sim implements the per-tick simulation over the farm world: player
// movement, tool pickup and use, crop growth, NPC wandering, sprite
// animation, and the narrative stage machine. The renderer never runs until
// an update and its structural flush have completed.
package sim

import (
	"math/rand"

	"github.com/moonacre/lunafarm/internal/assets"
	"github.com/moonacre/lunafarm/internal/core"
	"github.com/moonacre/lunafarm/internal/world"
)

// Tuning collects the gameplay constants that are loadable from config.
type Tuning struct {
	PickupDistance int   // Max distance for tool pickup and highlight
	CropDistance   int   // Tighter threshold for acting on crops
	IdleResetMs    int64 // Idle time before the player animation rests
	NpcMoveWaitMs  int64 // NPC per-step gate
	NpcPauseMs     int64 // NPC pause at its target before repicking
}

// DefaultTuning returns the stock gameplay constants.
func DefaultTuning() Tuning {
	return Tuning{
		PickupDistance: 4,
		CropDistance:   2,
		IdleResetMs:    400,
		NpcMoveWaitMs:  200,
		NpcPauseMs:     2000,
	}
}

// System runs one simulation step per tick. It owns no entity state; all
// mutations land in the world passed to Update.
type System struct {
	store  *assets.Store
	tuning Tuning
	rng    *rand.Rand

	width  int
	height int

	// Sheet indexes resolved once at construction. A miss here is a content
	// bug and panics via MustIndex.
	sheetGrass         int
	sheetCropEmpty     int
	sheetCropLeaf      int
	sheetCropFlower    int
	sheetToolPacket2   int
	sheetCharacter01   int
	sheetParticleDirt  int
	sheetParticleWater int
	sheetParticleHeart int
}

// NewSystem builds a simulation system bound to an asset store and playfield
// size.
func NewSystem(store *assets.Store, tuning Tuning, rng *rand.Rand, width, height int) *System {
	return &System{
		store:              store,
		tuning:             tuning,
		rng:                rng,
		width:              width,
		height:             height,
		sheetGrass:         store.MustIndex("grass"),
		sheetCropEmpty:     store.MustIndex("crop-empty"),
		sheetCropLeaf:      store.MustIndex("crop-leaf"),
		sheetCropFlower:    store.MustIndex("crop-flower"),
		sheetToolPacket2:   store.MustIndex("tool-packet2"),
		sheetCharacter01:   store.MustIndex("character-01"),
		sheetParticleDirt:  store.MustIndex("particle-dirt"),
		sheetParticleWater: store.MustIndex("particle-water"),
		sheetParticleHeart: store.MustIndex("particle-heart"),
	}
}

// Resize updates the playfield bounds after a terminal resize.
func (s *System) Resize(width, height int) {
	s.width = width
	s.height = height
}

// actionKind is the contextual resolution of an Action command.
type actionKind int

const (
	actNone actionKind = iota
	actDelete
	actWater
	actSeed
	actSeed2
	actGrow
)

// action targets a single sprite by interaction id, except Grow which applies
// world-wide.
type action struct {
	id   int
	kind actionKind
}

// Update advances the world by one tick. Structural changes (spawns and
// removals) are queued on the world; the caller flushes them before
// rendering.
func (s *System) Update(wd *world.World, in core.TickInput) {
	playerPos, playerFlip := playerLocate(wd)
	playerCenter := world.Position{X: playerPos.X + 4, Y: playerPos.Y + 2}

	nearestTool := s.nearestOfClass(wd, playerCenter.X, playerCenter.Y, world.ClassTool)

	// Crops are worked at an offset in front of the player.
	cropX := playerCenter.X
	if playerFlip {
		cropX -= 9
	}
	cropY := playerCenter.Y
	nearestCrop := s.nearestOfClass(wd, cropX+4, cropY+2, world.ClassCrop)

	s.trackHeldItem(wd, in, playerPos, playerFlip, nearestTool)
	s.moveNpcs(wd, in.Now)

	act := s.updateSprites(wd, in, nearestTool, nearestCrop, cropX, cropY, playerCenter)

	// The transition request lasts exactly one tick; overlays saw it above.
	if wd.Flags.ShowTransition {
		wd.Flags.ShowTransition = false
	}

	if act.kind == actGrow {
		wd.Flags.ShowTransition = true
		wd.EachSpritePos(func(_ world.Handle, sp *world.Sprite, _ *world.Position) bool {
			if sp.Class == world.ClassOverlay {
				sp.Frame = 0
			}
			return true
		})
		s.advanceNarrative(wd, in.Now)
	}

	s.cleanupParticles(wd)
	s.applyAction(wd, act)
}

// playerLocate finds the player sprite and records its position and facing.
func playerLocate(wd *world.World) (world.Position, bool) {
	var pos world.Position
	var flip bool
	wd.EachSpritePos(func(_ world.Handle, sp *world.Sprite, p *world.Position) bool {
		if sp.Class != world.ClassPlayer {
			return true
		}
		pos = *p
		flip = sp.Flip
		return false
	})
	return pos, flip
}

// trackHeldItem pins the held interactible to the player, clears highlights,
// and re-highlights the nearest eligible tool when nothing is held.
func (s *System) trackHeldItem(wd *world.World, in core.TickInput, playerPos world.Position, playerFlip bool, nearestTool Nearest) {
	holding := wd.Flags.Holding
	wd.EachInteractible(func(_ world.Handle, it *world.Interactible, sp *world.Sprite, p *world.Position) bool {
		sp.Highlight = false

		if holding != world.ItemNone && holding == it.Kind {
			sp.Flip = playerFlip

			wideOffset := 0
			if it.Kind == world.ItemPod || it.Kind == world.ItemNpc {
				wideOffset = -3
			}
			actionOffset := 0
			if in.Command == core.CmdAction {
				actionOffset = 1
			}
			smallOffset := 0
			switch holding {
			case world.ItemWatercan, world.ItemTerminal:
				smallOffset = 1
			case world.ItemPacket, world.ItemPacket2:
				smallOffset = 2
			}

			p.Y = playerPos.Y + smallOffset + actionOffset + wideOffset
			if p.Y < -2 {
				p.Y = -2
			}

			flipOffset := 5
			if playerFlip {
				flipOffset = -3
			}
			p.X = playerPos.X + flipOffset + wideOffset
			if p.X < 0 {
				p.X = 0
			}
			return false
		}

		if holding == world.ItemNone && nearestTool.ID == sp.ID && nearestTool.Dist < s.tuning.PickupDistance {
			sp.Highlight = true
		}
		return true
	})
}

// updateSprites runs the overlay/animation clock for every sprite and
// resolves the player's input, returning the contextual action for this tick.
func (s *System) updateSprites(wd *world.World, in core.TickInput, nearestTool, nearestCrop Nearest, cropX, cropY int, playerCenter world.Position) action {
	act := action{}
	wd.EachSpritePos(func(_ world.Handle, sp *world.Sprite, p *world.Position) bool {
		sheet := s.store.ByIndex(sp.Sheet)

		// Overlay sprites replay on a transition request and park on their
		// final frame otherwise.
		if sp.Class == world.ClassOverlay {
			if wd.Flags.ShowTransition {
				sp.Animating = true
			} else if sp.Frame == sheet.LastFrame() {
				sp.Animating = false
			}
		}

		frameWait := sheet.Frames[sp.Frame].Duration
		if sp.Animating && sp.LastAnimate+frameWait < in.Now {
			sp.LastAnimate = in.Now
			sp.Frame = (sp.Frame + 1) % sheet.FrameCount()
		}

		if sp.Class != world.ClassPlayer {
			return true
		}

		dx, dy := in.Command.Impulse()
		switch in.Command {
		case core.CmdPickup:
			if wd.Flags.Holding == world.ItemNone &&
				nearestTool.Kind != world.ItemNone &&
				nearestTool.Dist < s.tuning.PickupDistance {
				wd.Flags.Holding = nearestTool.Kind
			} else if wd.Flags.Holding != world.ItemNone {
				wd.Flags.Holding = world.ItemNone
			}
		case core.CmdAction:
			act = s.resolveAction(wd, nearestTool, nearestCrop, cropX, cropY, playerCenter)
		case core.CmdToggleHelp:
			wd.Flags.ShowHelp = !wd.Flags.ShowHelp
		case core.CmdClear:
			wd.Flags.ClearScreen = true
		case core.CmdNone:
			// The player sprite rests after a short idle period.
			if sp.LastMove+s.tuning.IdleResetMs < in.Now {
				sp.Animating = false
				sp.Frame = 0
			}
			wd.Flags.ClearScreen = false
		}

		if dx != 0 || dy != 0 {
			if wd.Flags.ShowTerminal {
				wd.Flags.ShowTerminal = false
			}
			if dx < 0 {
				sp.Flip = true
			} else if dx > 0 {
				sp.Flip = false
			}
			sp.Animating = true
			// Movement cadence is coupled to animation cadence.
			if sp.LastMove+frameWait/2 < in.Now {
				sp.LastMove = in.Now
				p.X = core.Clamp(p.X+dx, 0, s.width-10)
				p.Y = core.Clamp(p.Y+dy, -2, s.height-5)
			}
		}
		return true
	})
	return act
}

// resolveAction maps the Action command onto the held item and nearby
// interactibles.
func (s *System) resolveAction(wd *world.World, nearestTool, nearestCrop Nearest, cropX, cropY int, playerCenter world.Position) action {
	switch {
	case wd.Flags.Holding == world.ItemNone && nearestTool.Kind == world.ItemPod:
		return action{kind: actGrow}

	case wd.Flags.Holding == world.ItemNone && nearestTool.Kind == world.ItemTerminal:
		if wd.Flags.ShowTerminal {
			wd.Flags.ShowTerminal = false
			wd.Flags.MessageRead = true
		} else if nearestTool.Dist <= s.tuning.PickupDistance {
			wd.Flags.ShowTerminal = true
		}

	case wd.Flags.Holding == world.ItemShovel:
		s.spawnParticle(wd, s.sheetParticleDirt, cropX, cropY)
		if nearestCrop.Dist < s.tuning.CropDistance {
			return action{id: nearestCrop.ID, kind: actDelete}
		}
		s.spawnEmptyCrop(wd, cropX, cropY)

	case wd.Flags.Holding == world.ItemWatercan:
		s.spawnParticle(wd, s.sheetParticleWater, cropX, cropY)
		if nearestCrop.Dist < s.tuning.CropDistance {
			return action{id: nearestCrop.ID, kind: actWater}
		}

	case wd.Flags.Holding == world.ItemPacket:
		if nearestCrop.Dist < s.tuning.CropDistance {
			return action{id: nearestCrop.ID, kind: actSeed}
		}

	case wd.Flags.Holding == world.ItemPacket2:
		if nearestCrop.Dist < s.tuning.CropDistance {
			return action{id: nearestCrop.ID, kind: actSeed2}
		}

	case (wd.Flags.Holding == world.ItemNone || wd.Flags.Holding == world.ItemNpc) &&
		nearestTool.Kind == world.ItemNpc:
		s.spawnParticle(wd, s.sheetParticleHeart, playerCenter.X, playerCenter.Y-2)
	}
	return action{}
}

// cleanupParticles queues removal of particles that finished animating.
func (s *System) cleanupParticles(wd *world.World) {
	wd.EachSpritePos(func(h world.Handle, sp *world.Sprite, _ *world.Position) bool {
		if sp.Class != world.ClassParticle {
			return true
		}
		if sp.Frame == s.store.ByIndex(sp.Sheet).LastFrame() {
			wd.QueueRemove(h)
		}
		return true
	})
}

// spawnParticle queues a transient particle at a scene position.
func (s *System) spawnParticle(wd *world.World, sheet, x, y int) {
	id := wd.NewSpriteID()
	wd.QueueSpawn(world.SpawnSpec{
		Sprite: world.Sprite{
			ID:        id,
			Sheet:     sheet,
			Class:     world.ClassParticle,
			Animating: true,
		},
		Pos: world.Position{X: x, Y: y, Z: world.DepthOverlay + id},
	})
}

// spawnEmptyCrop queues a freshly dug, unseeded crop plot.
func (s *System) spawnEmptyCrop(wd *world.World, x, y int) {
	id := wd.NewSpriteID()
	wd.QueueSpawn(world.SpawnSpec{
		Sprite: world.Sprite{
			ID:    id,
			Sheet: s.sheetCropEmpty,
			Flip:  s.rng.Intn(2) == 0,
			Class: world.ClassCrop,
		},
		Pos:  world.Position{X: x, Y: y, Z: world.DepthCrops + id},
		Item: &world.Interactible{Kind: world.ItemCrop},
	})
}
