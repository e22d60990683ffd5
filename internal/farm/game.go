// Package farm implements the lunar farming simulation: a small scene of
// dirt, grass, tools, and crops the player tends while a staged message
// sequence plays out on the farm terminal.
package farm

import (
	"math/rand"

	"github.com/moonacre/lunafarm/internal/assets"
	"github.com/moonacre/lunafarm/internal/config"
	"github.com/moonacre/lunafarm/internal/core"
	"github.com/moonacre/lunafarm/internal/gfx"
	"github.com/moonacre/lunafarm/internal/registry"
	"github.com/moonacre/lunafarm/internal/sim"
	"github.com/moonacre/lunafarm/internal/world"
)

// configPath stores the custom config path set via CLI
var configPath string

// assetDir stores the sprite sheet directory set via CLI; empty means use
// the builtin procedural sheets.
var assetDir string

// debugOverlay enables frame-number draw marks set via CLI
var debugOverlay bool

// sharedStore, when set, is used instead of loading sheets from disk.
var sharedStore *assets.Store

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetAssetDir sets the sprite sheet directory for loading.
func SetAssetDir(dir string) {
	assetDir = dir
}

// SetDebug enables the renderer's debug overlay.
func SetDebug(on bool) {
	debugOverlay = on
}

// SetStore installs a preloaded asset store for all future instances.
func SetStore(st *assets.Store) {
	sharedStore = st
}

// Game implements the farm simulation behind the registry.Game interface.
type Game struct {
	cfg      core.RuntimeConfig
	store    *assets.Store
	wd       *world.World
	sys      *sim.System
	comp     *gfx.Compositor
	rng      *rand.Rand
	tuning   sim.Tuning
	messages []string
}

// New creates a new farm game instance.
func New() *Game {
	return &Game{}
}

// NewWithStore creates a farm game bound to a preloaded asset store,
// bypassing the disk loader.
func NewWithStore(store *assets.Store) *Game {
	return &Game{store: store}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "farm"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Luna Farm"
}

// Reset initializes or restarts the farm. The world is rebuilt from the
// configured seed; the asset store and config load once and persist across
// resets.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	if g.store == nil {
		if sharedStore != nil {
			g.store = sharedStore
		} else {
			st, _, err := assets.Load(assetDir)
			if err != nil {
				st = assets.Builtin()
			}
			g.store = st
		}
	}

	fcfg, err := config.Load(configPath)
	if err != nil {
		fcfg = config.Default()
	}
	g.tuning = fcfg.Tuning()
	g.messages = fcfg.Messages

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.wd = world.New(g.messages)
	g.sys = sim.NewSystem(g.store, g.tuning, g.rng, cfg.ScreenW, cfg.ScreenH)
	g.comp = gfx.NewCompositor(g.store)
	g.comp.Debug = debugOverlay

	g.generate(cfg.ScreenW, cfg.ScreenH)
}

// Step advances the simulation by one tick and flushes queued structural
// changes before returning, so the renderer never sees a half-applied tick.
func (g *Game) Step(in core.TickInput) core.StepResult {
	g.sys.Update(g.wd, in)
	g.wd.Flush()
	return core.StepResult{State: g.State()}
}

// Render draws the current scene into the cell buffer.
func (g *Game) Render(dst *gfx.Buffer) {
	g.comp.Render(dst, g.wd)
}

// State returns the narrative progress.
func (g *Game) State() core.GameState {
	return core.GameState{
		Stage:     g.wd.Flags.MessageIndex,
		Completed: g.wd.Flags.Completed(),
	}
}

// Resize adjusts the playfield bounds without resetting the world.
func (g *Game) Resize(width, height int) {
	g.sys.Resize(width, height)
}

// World exposes the entity store for tests and tooling.
func (g *Game) World() *world.World {
	return g.wd
}

// Register the game with the registry
func init() {
	registry.Register("farm", func() registry.Game {
		return New()
	})
}
