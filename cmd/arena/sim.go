package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arena/internal/arena"
	"github.com/vovakirdan/brick-arena/internal/config"
	"github.com/vovakirdan/brick-arena/internal/level"
	"github.com/vovakirdan/brick-arena/internal/sim"
	"github.com/vovakirdan/brick-arena/internal/storage"
)

var (
	flagSimDuration   time.Duration
	flagSimAutopilot  bool
	flagSimSeed       int64
	flagSimHold       int
	flagSimDifficulty string
	flagSimSave       bool
)

var simCmd = &cobra.Command{
	Use:   "sim [level]",
	Short: "Run a level headlessly and print the outcome",
	Long: `Runs the simulation without a terminal UI until the level is won,
lost or the time budget is spent. The same level, config and driver always
produce the same snapshot hash.

Drivers:
  (default)     - Paddle never moves
  --autopilot   - Paddle follows the lowest ball
  --seed N      - Paddle steers randomly from seed N

Examples:
  arena sim classic --autopilot
  arena sim ogp --seed 42 --duration 2m
  arena sim mixed --autopilot --save=false`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 10*time.Minute, "Simulated time budget")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Steer the paddle towards the lowest ball")
	simCmd.Flags().Int64Var(&flagSimSeed, "seed", 0, "Steer randomly from this seed (0 disables)")
	simCmd.Flags().IntVar(&flagSimHold, "hold", 10, "Frames a random steering choice is held")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "normal", "Difficulty: easy, normal, hard")
	simCmd.Flags().BoolVar(&flagSimSave, "save", true, "Record the run in the database")
}

func runSim(_ *cobra.Command, args []string) {
	logger := newLogger()
	cfg, preset := loadArenaConfig(flagSimDifficulty)
	config.ApplyPreset(&cfg, preset)

	id := levelID(args)
	if id == "" {
		id = level.DefaultID
	}
	l := findLevel(id, logger)

	state, err := level.Build(l, cfg, arena.WithLogger(logger))
	if err != nil {
		exitf("cannot build level %q: %v", l.ID, err)
	}

	var driver sim.Driver = sim.Idle
	switch {
	case flagSimAutopilot:
		driver = sim.Autopilot{}
	case flagSimSeed != 0:
		driver = sim.NewRandomSteering(flagSimSeed, flagSimHold)
	}

	started := time.Now()
	res := sim.Run(state, sim.Options{
		FrameMS:  cfg.Simulation.FrameMS,
		Duration: flagSimDuration.Milliseconds(),
		Driver:   driver,
	})
	logger.Debug("simulation done", "level", l.ID, "frames", res.Frames, "wall", time.Since(started))

	fmt.Printf("Level:     %s (%s)\n", l.Name, l.ID)
	fmt.Printf("Outcome:   %s\n", res.Outcome())
	fmt.Printf("Simulated: %.3fs in %d frames\n", float64(res.Elapsed)/1000, res.Frames)
	fmt.Printf("Bricks:    %d destroyed, %d remaining\n", res.BricksDestroyed(), res.BricksRemaining)
	fmt.Printf("Hash:      %016x\n", res.Hash)

	if !flagSimSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, run not saved", "error", err)
		return
	}
	defer store.Close()

	run, err := store.SaveRun(storage.Run{
		LevelID:         l.ID,
		Player:          "sim",
		Difficulty:      string(preset),
		Outcome:         storage.Outcome(res.Outcome()),
		SimMS:           res.Elapsed,
		BricksDestroyed: res.BricksDestroyed(),
		BricksRemaining: res.BricksRemaining,
		SnapshotHash:    res.Hash,
	})
	if err != nil {
		exitf("cannot save run: %v", err)
	}
	fmt.Printf("Saved:     %s\n", run.ID)
}
