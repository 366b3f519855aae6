package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-arena/internal/level"
	"github.com/vovakirdan/brick-arena/internal/platform/tui"
	"github.com/vovakirdan/brick-arena/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level in the terminal",
	Long: `Opens the level menu, or starts the given level right away.
The level may also be set with the ARENA_LEVEL environment variable.

Controls:
  a/d or arrows  - Steer the paddle
  s              - Stop the paddle
  p or space     - Pause
  r              - Restart
  esc            - Back to menu
  q              - Quit`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) {
	logger, closeLog := playLogger()
	defer closeLog()

	cfg, preset := loadArenaConfig(flagDifficulty)

	levels, err := level.Catalog(flagLevelsDir, logger)
	if err != nil {
		exitf("cannot load levels: %v", err)
	}

	var start *level.Level
	if id := levelID(args); id != "" {
		l := findLevel(id, logger)
		start = &l
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	err = tui.Run(tui.SessionOptions{
		Levels:     levels,
		Arena:      cfg,
		Difficulty: preset,
		Runtime:    tui.RuntimeFor(cfg, width, height),
		Store:      store,
		Logger:     logger,
		Start:      start,
	})
	if err != nil {
		exitf("%v", err)
	}
}

// playLogger writes to ~/.arena/arena.log while the alt screen owns the
// terminal. When the file cannot be opened logs are dropped.
func playLogger() (*log.Logger, func()) {
	discard := log.New(io.Discard)
	home, err := os.UserHomeDir()
	if err != nil {
		return discard, func() {}
	}
	dir := filepath.Join(home, ".arena")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "arena.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, func() { f.Close() }
}
