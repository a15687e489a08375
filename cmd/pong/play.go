package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Enter/Space  - Start
  Up/Down      - Move your paddle
  Q/Esc/Ctrl+C - Quit

Logs go to log.file only, since the game owns the screen.

Examples:
  pong play
  pong play --fps 30
  pong play --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := logging.New(cfg.Log, nil)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()
	logger.Debug("config loaded", "source", source)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.OptionsFromConfig(cfg, cfg.Runtime(width, height), logger)
	if err := tui.Run(opts); err != nil {
		closer.Close()
		fail("%v", err)
	}
}
