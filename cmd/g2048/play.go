package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/g2048/internal/config"
	"github.com/vovakirdan/g2048/internal/core"
	"github.com/vovakirdan/g2048/internal/games/t2048"
	"github.com/vovakirdan/g2048/internal/platform/tui"
)

var (
	flagBoard string
	flagSeed  int64
	flagFPS   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in the terminal",
	Long: `Start a game of 2048 in the terminal.

Controls:
  Arrows/WASD/HJKL - Slide tiles (starts the game while idle)
  Enter/Space      - Start or restart
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

A starting board can be loaded from YAML; Restart returns to it:

  board:
    - [2, 0, 0, 0]
    - [0, 0, 0, 0]
    - [0, 0, 0, 0]
    - [0, 0, 0, 2]

Examples:
  g2048 play
  g2048 play --seed 42
  g2048 play --board ./board.yaml --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Path to a starting board YAML")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, default from config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	initial, err := loadInitialBoard(flagBoard)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TUI.FPS,
		Seed:     flagSeed,
	}
	if cmd.Flags().Changed("fps") {
		rc.TickRate = flagFPS
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	engine := t2048.New(initial, t2048.WithSeed(rc.Seed))
	logger.Debug("starting game", "seed", rc.Seed, "fps", rc.TickRate, "board", flagBoard)

	if err := tui.Run(engine, rc, cfg.TUI); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

// loadInitialBoard reads --board. A grid of the wrong shape is reported and
// the game starts from the empty board instead.
func loadInitialBoard(path string) ([][]int, error) {
	if path == "" {
		return nil, nil
	}
	rows, err := config.LoadBoard(path)
	if err != nil {
		return nil, err
	}
	if _, ok := t2048.BoardFromRows(rows); !ok {
		logger.Warn("board must be 4x4, starting from an empty board", "path", path)
		return nil, nil
	}
	return rows, nil
}
