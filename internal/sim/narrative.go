package sim

import (
	"github.com/moonacre/lunafarm/internal/world"
)

// advanceNarrative evaluates the current stage's predicate after a Grow
// action (the sleep/day-advance). A satisfied predicate advances the stage by
// exactly one and clears the read flag; some transitions also spawn content.
// The index never decreases and never skips.
func (s *System) advanceNarrative(wd *world.World, now int64) {
	switch wd.Flags.MessageIndex {
	case 0:
		// Introductory message progresses once read.
		if wd.Flags.MessageRead {
			wd.Flags.AdvanceMessage()
		}
	case 1:
		// "Water your crops" progresses once any crop has been watered.
		if s.cropFrameAdvanced(wd) {
			wd.Flags.AdvanceMessage()
		}
	case 2:
		// First letter progresses once read, and leaves the second seed
		// packet in the field.
		if wd.Flags.MessageRead {
			wd.Flags.AdvanceMessage()
			s.spawnPacket2(wd)
		}
	case 3:
		// Progresses once a flower crop has been planted and the letter read.
		if wd.Flags.MessageRead && s.flowerCropAt(wd, anyFrame) {
			wd.Flags.AdvanceMessage()
		}
	case 4:
		// Progresses once a flower crop grows past its first stage.
		if wd.Flags.MessageRead && s.flowerCropAt(wd, 2, 5) {
			wd.Flags.AdvanceMessage()
		}
	case 5:
		if wd.Flags.MessageRead {
			wd.Flags.AdvanceMessage()
		}
	case 6:
		// Progresses once a flower blooms.
		if wd.Flags.MessageRead && s.flowerCropAt(wd, 3, 6) {
			wd.Flags.AdvanceMessage()
		}
	case 7:
		// Progresses once read, and the visitor arrives.
		if wd.Flags.MessageRead {
			wd.Flags.AdvanceMessage()
			s.spawnVisitor(wd, now)
		}
	case 8:
		if wd.Flags.MessageRead {
			wd.Flags.AdvanceMessage()
		}
	}
}

// cropFrameAdvanced reports whether any crop has moved past its initial
// frame.
func (s *System) cropFrameAdvanced(wd *world.World) bool {
	found := false
	wd.EachItemSprite(func(_ world.Handle, it *world.Interactible, sp *world.Sprite) bool {
		if it.Kind == world.ItemCrop && sp.Frame > 0 {
			found = true
			return false
		}
		return true
	})
	return found
}

// anyFrame matches every frame in flowerCropAt.
const anyFrame = -1

// flowerCropAt reports whether a flower crop exists at one of the given
// frames (or at all, with anyFrame).
func (s *System) flowerCropAt(wd *world.World, frames ...int) bool {
	found := false
	wd.EachItemSprite(func(_ world.Handle, it *world.Interactible, sp *world.Sprite) bool {
		if it.Kind != world.ItemCrop || sp.Sheet != s.sheetCropFlower {
			return true
		}
		for _, f := range frames {
			if f == anyFrame || sp.Frame == f {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// spawnPacket2 queues the second seed packet in the middle of the field.
func (s *System) spawnPacket2(wd *world.World) {
	id := wd.NewSpriteID()
	wd.QueueSpawn(world.SpawnSpec{
		Sprite: world.Sprite{
			ID:    id,
			Sheet: s.sheetToolPacket2,
			Class: world.ClassTool,
		},
		Pos:  world.Position{X: s.width / 2, Y: s.height / 2, Z: world.DepthTools + id},
		Item: &world.Interactible{Kind: world.ItemPacket2, HoldToUse: true},
	})
}

// spawnVisitor queues the NPC at the top of the field, walking toward its
// center.
func (s *System) spawnVisitor(wd *world.World, now int64) {
	id := wd.NewSpriteID()
	wd.QueueSpawn(world.SpawnSpec{
		Sprite: world.Sprite{
			ID:    id,
			Sheet: s.sheetCharacter01,
			Class: world.ClassTool,
		},
		Pos:  world.Position{X: s.width / 2, Y: 0, Z: world.DepthPlayer + id},
		Item: &world.Interactible{Kind: world.ItemNpc},
		Npc: &world.Npc{
			TargetX:  s.width / 2,
			TargetY:  s.height / 2,
			LastMove: now,
			MoveWait: s.tuning.NpcMoveWaitMs,
			PauseFor: s.tuning.NpcPauseMs,
		},
	})
}
