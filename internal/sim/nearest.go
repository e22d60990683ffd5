package sim

import (
	"github.com/moonacre/lunafarm/internal/core"
	"github.com/moonacre/lunafarm/internal/world"
)

// noCandidate is the sentinel distance returned when the search finds
// nothing; it exceeds every interaction threshold.
const noCandidate = 100

// Nearest is the result of a nearest-of-class search. A Dist of noCandidate
// (with zero ID and ItemNone kind) means no qualifying candidate.
type Nearest struct {
	ID   int
	Dist int
	Kind world.ItemKind
}

// Found reports whether any candidate was closer than the sentinel.
func (n Nearest) Found() bool {
	return n.Dist < noCandidate
}

// nearestOfClass scans interactible entities of the given sprite class and
// returns the one whose visual center is closest to the reference point.
// The center is the position plus half the declared source width and a
// quarter of the source height, since each cell row covers two source pixel
// rows. Ties keep the first candidate in traversal order.
func (s *System) nearestOfClass(wd *world.World, fromX, fromY int, class world.SpriteClass) Nearest {
	best := Nearest{Dist: noCandidate}
	wd.EachInteractible(func(_ world.Handle, it *world.Interactible, sp *world.Sprite, p *world.Position) bool {
		if sp.Class != class {
			return true
		}
		sw, sh := s.store.ByIndex(sp.Sheet).SourceSize()
		cx := p.X + sw/2
		cy := p.Y + sh/4
		d := core.Dist(cx, cy, fromX, fromY)
		if d < best.Dist {
			best = Nearest{ID: sp.ID, Dist: d, Kind: it.Kind}
		}
		return true
	})
	return best
}
