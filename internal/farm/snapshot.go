package farm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/moonacre/lunafarm/internal/world"
)

// Snapshot renders the full world state as a stable, human-diffable string.
// Two games stepped identically from the same seed produce identical
// snapshots, which is what the determinism tests assert.
func (g *Game) Snapshot() string {
	type entry struct {
		key  string
		line string
	}

	var entries []entry
	g.wd.EachSpritePos(func(h world.Handle, sp *world.Sprite, p *world.Position) bool {
		line := fmt.Sprintf("sheet=%d id=%d frame=%d flip=%t anim=%t class=%s pos=(%d,%d,%d)",
			sp.Sheet, sp.ID, sp.Frame, sp.Flip, sp.Animating, sp.Class, p.X, p.Y, p.Z)
		if it := g.wd.Item(h); it != nil {
			line += fmt.Sprintf(" item=%s", it.Kind)
		}
		if n := g.wd.Npc(h); n != nil {
			line += fmt.Sprintf(" npc=(%d,%d)", n.TargetX, n.TargetY)
		}
		entries = append(entries, entry{
			key:  fmt.Sprintf("%012d/%06d/%06d", p.Z, sp.ID, h.Index),
			line: line,
		})
		return true
	})

	// Iteration order is dense-index order, which can differ after slot
	// reuse; sort by depth and id so the snapshot is order-independent.
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	var b strings.Builder
	f := g.wd.Flags
	fmt.Fprintf(&b, "flags holding=%s help=%t terminal=%t msg=%d read=%t\n",
		f.Holding, f.ShowHelp, f.ShowTerminal, f.MessageIndex, f.MessageRead)
	for _, e := range entries {
		b.WriteString(e.line)
		b.WriteByte('\n')
	}
	return b.String()
}
