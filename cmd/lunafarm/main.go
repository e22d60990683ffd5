// lunafarm is a terminal farming game rendered with half-block pixels.
//
// Usage:
//
//	lunafarm [game]          - Play a registered game (default: the farm)
//	lunafarm sheets          - List loaded sprite sheets
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible worldgen
//	--assets <dir>    - Load Aseprite sheet exports from a directory
//	--config <path>   - Path to custom tuning/narrative YAML
//	--debug           - Draw frame-number marks over tools and crops
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/moonacre/lunafarm/internal/assets"
	"github.com/moonacre/lunafarm/internal/core"
	"github.com/moonacre/lunafarm/internal/farm"
	"github.com/moonacre/lunafarm/internal/platform/tui"
	"github.com/moonacre/lunafarm/internal/registry"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagAssets string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lunafarm",
	Short: "Tend a small farm on the moon, in your terminal",
	Long: `lunafarm is a terminal farming game. Walk around the field, pick up
tools, dig plots, plant seeds, and water your crops while working through
the messages on the farm terminal.

Controls:
  Arrows/hjkl       - Move (hold shift to dash)
  Space             - Pick up / put down the nearest tool
  u                 - Use the held tool
  ?                 - Toggle help
  Ctrl+L            - Redraw the screen
  Q/Ctrl+C          - Quit

Examples:
  lunafarm
  lunafarm --seed 42
  lunafarm --assets ./sprites --fps 60
  lunafarm --config ./my-farm.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFarm,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory of Aseprite sheet exports (empty = builtin sheets)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning/narrative YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw frame-number marks over tools and crops")

	rootCmd.AddCommand(sheetsCmd)
}

// loadStore loads sprite sheets from the --assets directory, falling back to
// the builtin procedural set.
func loadStore() *assets.Store {
	store, usedBuiltin, err := assets.Load(flagAssets)
	if err != nil {
		log.Error("failed to load sprite sheets", "dir", flagAssets, "err", err)
		os.Exit(1)
	}
	if usedBuiltin && flagAssets != "" {
		log.Warn("sheet directory incomplete, using builtin sheets", "dir", flagAssets)
	}
	return store
}

func runFarm(cmd *cobra.Command, args []string) error {
	id := "farm"
	if len(args) == 1 {
		id = args[0]
	}
	if !registry.Exists(id) {
		var ids []string
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
		return fmt.Errorf("unknown game %q, registered games: %s", id, strings.Join(ids, ", "))
	}

	farm.SetStore(loadStore())
	farm.SetConfigPath(flagConfig)
	farm.SetDebug(flagDebug)

	// Terminal size determines the field size at generation time.
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// A pace below one tick per second is unusable and would zero the tick
	// interval.
	if flagFPS < 1 {
		flagFPS = 1
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	return tui.Run(game, cfg)
}
