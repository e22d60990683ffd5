// Package world holds the component store for the farm scene: typed tables
// of Position/Sprite/Interactible/Npc records indexed by entity handles, the
// global game flags, and a deferred command buffer for structural changes.
package world

// SpriteClass categorizes sprites for simulation and draw-order purposes.
type SpriteClass int

const (
	ClassBackground SpriteClass = iota
	ClassOverlay
	ClassPlayer
	ClassTool
	ClassCrop
	ClassParticle
)

// String returns a human-readable name for the class.
func (c SpriteClass) String() string {
	switch c {
	case ClassBackground:
		return "Background"
	case ClassOverlay:
		return "Overlay"
	case ClassPlayer:
		return "Player"
	case ClassTool:
		return "Tool"
	case ClassCrop:
		return "Crop"
	case ClassParticle:
		return "Particle"
	default:
		return "Unknown"
	}
}

// ItemKind tags an interactible entity with what it is to the player.
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemGrass
	ItemPod
	ItemTerminal
	ItemShovel
	ItemWatercan
	ItemPacket
	ItemPacket2
	ItemCrop
	ItemNpc
)

// String returns a human-readable name for the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemNone:
		return "None"
	case ItemGrass:
		return "Grass"
	case ItemPod:
		return "Pod"
	case ItemTerminal:
		return "Terminal"
	case ItemShovel:
		return "Shovel"
	case ItemWatercan:
		return "Watercan"
	case ItemPacket:
		return "Packet"
	case ItemPacket2:
		return "Packet2"
	case ItemCrop:
		return "Crop"
	case ItemNpc:
		return "Npc"
	default:
		return "Unknown"
	}
}

// Position places an entity in the scene. X is a terminal column, Y a cell
// row, and Z a pure depth sort key with no spatial meaning.
type Position struct {
	X, Y, Z int
}

// Depth bands for Z. Dynamic entities add their sprite id to the band base so
// later spawns draw above earlier ones within a band.
const (
	DepthGround  = 0
	DepthCrops   = 100_000
	DepthGrass   = 200_000
	DepthPlayer  = 300_000
	DepthTools   = 400_000
	DepthOverlay = 500_000
)

// Sprite is the visual and timing state of an entity. ID is a separate,
// author-assigned identifier used to target interactions; zero means the
// sprite cannot be targeted.
type Sprite struct {
	ID          int
	Sheet       int // Index into the asset store
	Frame       int
	Flip        bool
	Animating   bool
	LastAnimate int64
	LastMove    int64
	Class       SpriteClass
	Highlight   bool
	Hidden      bool
	Delete      bool
}

// Interactible marks an entity the player can pick up or act on.
// HoldToUse distinguishes press-and-hold tools from toggles; it is declared
// on all tools but only partially consumed by the simulation.
type Interactible struct {
	Kind      ItemKind
	HoldToUse bool
}

// Npc is the wander state of a non-player character: a movement target, a
// per-step gate, and a pause duration once the target is reached.
type Npc struct {
	TargetX, TargetY int
	LastMove         int64
	MoveWait         int64 // Minimum ms between steps
	PauseFor         int64 // Ms to idle at the target before repicking
}
