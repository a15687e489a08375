package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 700x600 window (times window.scale) and play there.

Controls:
  Enter/Space/Click  - Start
  Up/Down            - Move your paddle
  Esc/Q              - Quit

Examples:
  pong window
  pong window --seed 42`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()
	logger.Debug("config loaded", "source", source)

	if err := desktop.Run(desktop.OptionsFromConfig(cfg, logger)); err != nil {
		closer.Close()
		fail("%v", err)
	}
}
