// arena is a terminal brick breaker built on a deterministic fixed-point
// simulation.
//
// Usage:
//
//	arena levels             - List available levels
//	arena play [level]       - Play a level (or pick one from the menu)
//	arena sim [level]        - Run a level headlessly and print the outcome
//	arena runs [level]       - Show recorded runs
//	arena serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.arena/runs.db)
//	--config <path>     - Use a specific arena.yaml
//	--dir <path>        - Load extra levels from a directory
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arena/internal/config"
	"github.com/vovakirdan/brick-arena/internal/level"
)

// levelEnv names the level played when none is given on the command line.
const levelEnv = "ARENA_LEVEL"

var (
	// Global flags
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Brick Arena - a deterministic brick breaker for your terminal",
	Long: `Brick Arena is a brick breaker whose simulation runs on integer
fixed-point geometry, so every run can be replayed exactly.

Available commands:
  levels   - Show all available levels
  play     - Play a level in the terminal
  sim      - Run a level headlessly
  runs     - View recorded runs
  serve    - Start SSH server for remote play

Examples:
  arena levels
  arena play classic
  arena sim ogp --autopilot --duration 2m
  arena serve --ssh :2222
  arena runs classic`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "dir", "", "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// exitf prints an error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the stderr logger for non-interactive commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
	})
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// loadArenaConfig loads the config and applies a difficulty preset.
func loadArenaConfig(difficulty string) (config.ArenaConfig, config.DifficultyPreset) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		exitf("%v", err)
	}
	return cfg, preset
}

// levelID returns the level named on the command line, falling back to
// the ARENA_LEVEL environment variable.
func levelID(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return os.Getenv(levelEnv)
}

// findLevel resolves a level ID or exits with a hint.
func findLevel(id string, logger *log.Logger) level.Level {
	l, err := level.Find(id, flagLevelsDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arena levels' to see available levels.")
		os.Exit(1)
	}
	return l
}
