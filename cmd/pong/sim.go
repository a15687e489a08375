package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/sim"
)

var (
	flagFrames int
	flagTrack  bool
	flagDump   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless and print a tally",
	Long: `Step the game without a display at a virtual fixed frame rate and
print what happened: serves per side, returns, smashes and wall bounces.

With --track a scripted player holds up/down toward the ball instead of
leaving the left paddle idle. With --dump the last frame is printed as text.

Examples:
  pong sim
  pong sim --frames 36000 --seed 42 --track
  pong sim --frames 120 --dump`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simCmd.Flags().BoolVar(&flagTrack, "track", false, "Let a scripted player chase the ball")
	simCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the last frame as text")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	if flagFrames < 0 {
		fail("--frames must not be negative, got %d", flagFrames)
	}

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()
	logger.Debug("config loaded", "source", source)

	seed := cfg.Loop.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	result := sim.Run(sim.Options{
		Seed:     seed,
		Frames:   flagFrames,
		TickRate: cfg.Loop.TickRate,
		Track:    flagTrack,
	})
	logger.Info("simulation finished", "frames", flagFrames, "track", flagTrack, "took", time.Since(start))

	if flagDump {
		fmt.Println(sim.Dump(result, 70, 30))
		fmt.Println()
	}
	fmt.Println("Simulation tally:")
	fmt.Println()
	sim.Report(os.Stdout, result)
}
