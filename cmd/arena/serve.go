package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arena/internal/level"
	"github.com/vovakirdan/brick-arena/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Starts an SSH server so players can connect and play remotely.
Every connection gets its own menu and arena. Runs are recorded under the
SSH user name.

Examples:
  arena serve                    - Start on default port 23234
  arena serve --ssh :2222        - Start on port 2222
  arena serve --host-key ./key   - Use custom host key

Players connect with:
  ssh -p 23234 localhost`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg, _ := loadArenaConfig("normal")

	levels, err := level.Catalog(flagLevelsDir, logger)
	if err != nil {
		exitf("cannot load levels: %v", err)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = flagDBPath
	srvCfg.IdleTimeout = flagIdleTimeout
	srvCfg.Levels = levels
	srvCfg.Arena = cfg
	srvCfg.Logger = logger.WithPrefix("arena-ssh")

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		exitf("%v", err)
	}

	fmt.Printf("Brick Arena SSH server listening on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitf("%v", err)
	}
}
