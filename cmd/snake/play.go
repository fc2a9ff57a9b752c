package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or pick one from a menu.

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause (then C continue, R restart, Q quit)
  M            - Mute music
  Y/N          - Answer start and game over prompts
  Ctrl+C       - Exit at any time

The pro variant plays background_music.mp3 and draws
background_image.jpg when they exist (see 'snake config').

Examples:
  snake play
  snake play classic
  snake play pro --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		closeLog()
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	id := ""
	if len(args) == 1 {
		id = args[0]
	} else {
		id, err = tui.RunPicker(width, height)
		if err != nil {
			logger.Error("picker failed", "error", err)
			closeLog()
			os.Exit(1)
		}
		if id == "" {
			return
		}
	}

	variant, ok := session.Lookup(id, cfg)
	if !ok || !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		closeLog()
		os.Exit(1)
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.MenuFPS,
		Seed:     flagSeed,
	}
	env := registry.Env{Runtime: runtime, Config: cfg}

	// Only the pro variant decorates the board
	if variant.Style == session.StylePro {
		cols, rows := variant.Rules.GridSize()
		bundle := assets.Load(cfg.Assets, cols, rows, true, logger)
		defer bundle.Close()

		env.Backdrop = bundle.Backdrop
		if bundle.Music != nil {
			env.Audio = bundle.Music
		}
	}

	game, err := registry.Create(id, env)
	if err != nil {
		logger.Error("cannot create game", "variant", id, "error", err)
		closeLog()
		os.Exit(1)
	}

	logger.Debug("starting game", "variant", id, "seed", runtime.Seed, "screen", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(game, runtime); err != nil {
		logger.Error("display failed", "error", err)
		closeLog()
		os.Exit(1)
	}
	logger.Debug("game finished", "score", game.State().Score)
}
