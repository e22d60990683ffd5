package sim

import (
	"github.com/moonacre/lunafarm/internal/core"
	"github.com/moonacre/lunafarm/internal/world"
)

// moveNpcs advances every NPC's wander machine: step one cell per non-equal
// axis when the step gate allows, rest at the target, and pick a new random
// target once the pause elapses. A held NPC does not move and pins its frame.
func (s *System) moveNpcs(wd *world.World, now int64) {
	wd.EachNpc(func(_ world.Handle, n *world.Npc, sp *world.Sprite, p *world.Position) bool {
		if wd.Flags.Holding == world.ItemNpc {
			sp.Animating = false
			sp.Frame = 1
			return true
		}

		if n.LastMove+n.MoveWait >= now {
			return true
		}

		if p.X != n.TargetX {
			sp.Animating = true
			if p.X < n.TargetX {
				sp.Flip = false
				p.X++
			} else {
				sp.Flip = true
				p.X--
			}
			n.LastMove = now
		}
		if p.Y != n.TargetY {
			sp.Animating = true
			if p.Y < n.TargetY {
				p.Y++
			} else {
				p.Y--
			}
			n.LastMove = now
		}

		if p.X == n.TargetX && p.Y == n.TargetY {
			sp.Animating = false
			sp.Frame = 0
			if n.LastMove+n.PauseFor < now {
				n.TargetX = 8 + s.rng.Intn(core.Max(1, s.width-16))
				n.TargetY = 4 + s.rng.Intn(core.Max(1, s.height-8))
			}
		}
		return true
	})
}
