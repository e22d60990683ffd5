package world

// Handle identifies an entity: a dense table index plus a generation counter
// so stale handles to recycled slots can be detected.
type Handle struct {
	Index int
	Gen   uint32
}

// NoHandle is the zero-value-adjacent "no entity" handle.
var NoHandle = Handle{Index: -1}

// SpawnSpec describes a deferred entity creation: a sprite and position,
// plus optional interactible and NPC components.
type SpawnSpec struct {
	Sprite Sprite
	Pos    Position
	Item   *Interactible
	Npc    *Npc
}

// mutation is one queued structural change. Exactly one of remove/spawn is
// set.
type mutation struct {
	remove Handle
	spawn  *SpawnSpec
}

// World owns the component tables and the deferred mutation queue. It is
// mutated only inside a tick; structural changes queue up and take effect
// atomically at Flush, between simulation and rendering.
type World struct {
	gens  []uint32
	alive []bool
	free  []int

	positions []Position
	hasPos    []bool
	sprites   []Sprite
	hasSprite []bool
	items     []Interactible
	hasItem   []bool
	npcs      []Npc
	hasNpc    []bool

	nextID  int
	pending []mutation

	Flags Flags
}

// New creates an empty world with the given narrative messages.
func New(messages []string) *World {
	return &World{Flags: NewFlags(messages)}
}

// NewSpriteID reserves the next interaction id. Ids start at 1; zero is
// reserved for "not targetable".
func (w *World) NewSpriteID() int {
	w.nextID++
	return w.nextID
}

// Spawn creates an entity immediately. Used during world initialization;
// within a tick, use QueueSpawn instead so iteration stays valid.
func (w *World) Spawn(spec SpawnSpec) Handle {
	idx := w.allocate()
	w.sprites[idx] = spec.Sprite
	w.hasSprite[idx] = true
	w.positions[idx] = spec.Pos
	w.hasPos[idx] = true
	if spec.Item != nil {
		w.items[idx] = *spec.Item
		w.hasItem[idx] = true
	}
	if spec.Npc != nil {
		w.npcs[idx] = *spec.Npc
		w.hasNpc[idx] = true
	}
	return Handle{Index: idx, Gen: w.gens[idx]}
}

func (w *World) allocate() int {
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[idx] = true
		return idx
	}
	w.gens = append(w.gens, 0)
	w.alive = append(w.alive, true)
	w.positions = append(w.positions, Position{})
	w.hasPos = append(w.hasPos, false)
	w.sprites = append(w.sprites, Sprite{})
	w.hasSprite = append(w.hasSprite, false)
	w.items = append(w.items, Interactible{})
	w.hasItem = append(w.hasItem, false)
	w.npcs = append(w.npcs, Npc{})
	w.hasNpc = append(w.hasNpc, false)
	return len(w.gens) - 1
}

// QueueSpawn defers an entity creation to the next Flush.
func (w *World) QueueSpawn(spec SpawnSpec) {
	s := spec
	w.pending = append(w.pending, mutation{remove: NoHandle, spawn: &s})
}

// QueueRemove defers an entity removal to the next Flush.
func (w *World) QueueRemove(h Handle) {
	w.pending = append(w.pending, mutation{remove: h})
}

// PendingMutations returns the number of queued structural changes.
func (w *World) PendingMutations() int {
	return len(w.pending)
}

// Flush applies all queued removals and creations in order, atomically from
// the point of view of iteration: nothing structural happens mid-tick.
func (w *World) Flush() {
	queue := w.pending
	w.pending = nil
	for _, m := range queue {
		if m.spawn != nil {
			w.Spawn(*m.spawn)
			continue
		}
		w.destroy(m.remove)
	}
}

func (w *World) destroy(h Handle) {
	if !w.Valid(h) {
		return
	}
	idx := h.Index
	w.alive[idx] = false
	w.hasPos[idx] = false
	w.hasSprite[idx] = false
	w.hasItem[idx] = false
	w.hasNpc[idx] = false
	w.gens[idx]++
	w.free = append(w.free, idx)
}

// Valid reports whether the handle refers to a live entity of the same
// generation.
func (w *World) Valid(h Handle) bool {
	return h.Index >= 0 && h.Index < len(w.alive) && w.alive[h.Index] && w.gens[h.Index] == h.Gen
}

// Count returns the number of live entities.
func (w *World) Count() int {
	n := 0
	for _, a := range w.alive {
		if a {
			n++
		}
	}
	return n
}

// Sprite returns the entity's sprite record, or nil.
func (w *World) Sprite(h Handle) *Sprite {
	if !w.Valid(h) || !w.hasSprite[h.Index] {
		return nil
	}
	return &w.sprites[h.Index]
}

// Position returns the entity's position record, or nil.
func (w *World) Position(h Handle) *Position {
	if !w.Valid(h) || !w.hasPos[h.Index] {
		return nil
	}
	return &w.positions[h.Index]
}

// Item returns the entity's interactible record, or nil.
func (w *World) Item(h Handle) *Interactible {
	if !w.Valid(h) || !w.hasItem[h.Index] {
		return nil
	}
	return &w.items[h.Index]
}

// Npc returns the entity's NPC record, or nil.
func (w *World) Npc(h Handle) *Npc {
	if !w.Valid(h) || !w.hasNpc[h.Index] {
		return nil
	}
	return &w.npcs[h.Index]
}

// EachSpritePos visits every entity holding both a Sprite and a Position, in
// dense index order. The callback returns false to stop early. This traversal
// order is what makes nearest-search tie-breaks deterministic.
func (w *World) EachSpritePos(fn func(h Handle, s *Sprite, p *Position) bool) {
	for i := range w.alive {
		if !w.alive[i] || !w.hasSprite[i] || !w.hasPos[i] {
			continue
		}
		if !fn(Handle{Index: i, Gen: w.gens[i]}, &w.sprites[i], &w.positions[i]) {
			return
		}
	}
}

// EachInteractible visits every entity holding Interactible+Sprite+Position.
func (w *World) EachInteractible(fn func(h Handle, it *Interactible, s *Sprite, p *Position) bool) {
	for i := range w.alive {
		if !w.alive[i] || !w.hasItem[i] || !w.hasSprite[i] || !w.hasPos[i] {
			continue
		}
		if !fn(Handle{Index: i, Gen: w.gens[i]}, &w.items[i], &w.sprites[i], &w.positions[i]) {
			return
		}
	}
}

// EachItemSprite visits every entity holding Interactible+Sprite.
func (w *World) EachItemSprite(fn func(h Handle, it *Interactible, s *Sprite) bool) {
	for i := range w.alive {
		if !w.alive[i] || !w.hasItem[i] || !w.hasSprite[i] {
			continue
		}
		if !fn(Handle{Index: i, Gen: w.gens[i]}, &w.items[i], &w.sprites[i]) {
			return
		}
	}
}

// EachNpc visits every entity holding Npc+Sprite+Position.
func (w *World) EachNpc(fn func(h Handle, n *Npc, s *Sprite, p *Position) bool) {
	for i := range w.alive {
		if !w.alive[i] || !w.hasNpc[i] || !w.hasSprite[i] || !w.hasPos[i] {
			continue
		}
		if !fn(Handle{Index: i, Gen: w.gens[i]}, &w.npcs[i], &w.sprites[i], &w.positions[i]) {
			return
		}
	}
}
