package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Write the built-in configuration YAML to stdout. Save it as
~/.pong/config.yaml or ./configs/pong.yaml and edit the keys you need.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fail("%v", err)
	}
}
