package world

import "testing"

func TestSpawnAndAccessors(t *testing.T) {
	wd := New(nil)

	h := wd.Spawn(SpawnSpec{
		Sprite: Sprite{ID: 1, Sheet: 3, Class: ClassTool},
		Pos:    Position{X: 5, Y: 7, Z: DepthTools + 1},
		Item:   &Interactible{Kind: ItemShovel, HoldToUse: true},
	})

	if !wd.Valid(h) {
		t.Fatal("spawned handle is not valid")
	}
	if wd.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", wd.Count())
	}

	sp := wd.Sprite(h)
	if sp == nil || sp.Sheet != 3 || sp.Class != ClassTool {
		t.Errorf("Sprite(h) = %+v, expected sheet 3 class Tool", sp)
	}
	p := wd.Position(h)
	if p == nil || p.X != 5 || p.Y != 7 {
		t.Errorf("Position(h) = %+v, expected (5, 7)", p)
	}
	it := wd.Item(h)
	if it == nil || it.Kind != ItemShovel || !it.HoldToUse {
		t.Errorf("Item(h) = %+v, expected hold-to-use shovel", it)
	}
	if wd.Npc(h) != nil {
		t.Error("Npc(h) != nil for a non-NPC entity")
	}
}

func TestQueuedMutationsApplyOnFlush(t *testing.T) {
	wd := New(nil)
	h := wd.Spawn(SpawnSpec{
		Sprite: Sprite{Class: ClassParticle},
		Pos:    Position{},
	})

	wd.QueueRemove(h)
	wd.QueueSpawn(SpawnSpec{
		Sprite: Sprite{Class: ClassCrop},
		Pos:    Position{X: 1},
	})

	// Nothing structural happens until the flush.
	if !wd.Valid(h) {
		t.Fatal("queued removal applied before Flush")
	}
	if wd.Count() != 1 {
		t.Fatalf("Count() = %d before Flush, expected 1", wd.Count())
	}
	if wd.PendingMutations() != 2 {
		t.Fatalf("PendingMutations() = %d, expected 2", wd.PendingMutations())
	}

	wd.Flush()

	if wd.Valid(h) {
		t.Error("removed handle still valid after Flush")
	}
	if wd.Count() != 1 {
		t.Errorf("Count() = %d after Flush, expected 1", wd.Count())
	}
	if wd.PendingMutations() != 0 {
		t.Errorf("PendingMutations() = %d after Flush, expected 0", wd.PendingMutations())
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	wd := New(nil)
	h1 := wd.Spawn(SpawnSpec{Sprite: Sprite{Class: ClassParticle}})

	wd.QueueRemove(h1)
	wd.Flush()

	// The freed slot is reused; the old handle must stay dead.
	h2 := wd.Spawn(SpawnSpec{Sprite: Sprite{Class: ClassCrop}})
	if h2.Index != h1.Index {
		t.Fatalf("expected slot reuse, got index %d vs %d", h2.Index, h1.Index)
	}
	if wd.Valid(h1) {
		t.Error("stale handle reports valid after slot reuse")
	}
	if !wd.Valid(h2) {
		t.Error("fresh handle reports invalid")
	}
	if wd.Sprite(h1) != nil {
		t.Error("stale handle still resolves a sprite")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	wd := New(nil)
	h := wd.Spawn(SpawnSpec{Sprite: Sprite{Class: ClassParticle}})

	// Double-queued removals of the same handle must not corrupt the free
	// list or destroy the slot's next occupant.
	wd.QueueRemove(h)
	wd.QueueRemove(h)
	wd.Flush()

	h2 := wd.Spawn(SpawnSpec{Sprite: Sprite{Class: ClassCrop}})
	if !wd.Valid(h2) {
		t.Error("entity spawned after double removal is invalid")
	}
	if wd.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", wd.Count())
	}
}

func TestNewSpriteIDMonotonic(t *testing.T) {
	wd := New(nil)
	prev := 0
	for i := 0; i < 10; i++ {
		id := wd.NewSpriteID()
		if id <= prev {
			t.Fatalf("NewSpriteID() = %d after %d, expected strictly increasing", id, prev)
		}
		prev = id
	}
}

func TestIterationStopsOnFalse(t *testing.T) {
	wd := New(nil)
	for i := 0; i < 5; i++ {
		wd.Spawn(SpawnSpec{Sprite: Sprite{Class: ClassCrop}})
	}

	visited := 0
	wd.EachSpritePos(func(Handle, *Sprite, *Position) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("visited %d entities, expected iteration to stop at 2", visited)
	}
}

func TestFlagsNarrativeProgression(t *testing.T) {
	messages := []string{"first", "second", "last"}
	f := NewFlags(messages)

	if !f.ShowHelp || !f.ShowTransition {
		t.Error("initial flags should show help and play the transition")
	}
	if f.CurrentMessage() != "first" {
		t.Errorf("CurrentMessage() = %q, expected first", f.CurrentMessage())
	}
	if f.Completed() {
		t.Error("Completed() = true at stage 0")
	}

	f.MessageRead = true
	f.AdvanceMessage()
	if f.MessageIndex != 1 || f.MessageRead {
		t.Errorf("after advance: index=%d read=%t, expected 1/false", f.MessageIndex, f.MessageRead)
	}

	f.AdvanceMessage()
	if !f.Completed() {
		t.Error("Completed() = false at the final message")
	}
	if f.CurrentMessage() != "last" {
		t.Errorf("CurrentMessage() = %q, expected last", f.CurrentMessage())
	}

	// Past the end the message is empty but completion holds.
	f.AdvanceMessage()
	if f.CurrentMessage() != "" {
		t.Errorf("CurrentMessage() past the end = %q, expected empty", f.CurrentMessage())
	}
	if !f.Completed() {
		t.Error("Completed() = false past the end")
	}
}
