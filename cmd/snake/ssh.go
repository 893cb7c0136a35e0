package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake ssh                           # Listen on :23234 with auto-generated key
  snake ssh --addr :2222              # Listen on port 2222
  snake ssh --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runSSH,
}

func init() {
	sshCmd.Flags().StringVar(&flagSSHAddr, "addr", "", "SSH server address (host:port)")
	sshCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	sshCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runSSH(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cmd.Flags().Changed("addr") {
		cfg.SSH.Addr = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.SSH.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger, err := newLogger(cfg.Log.Level, "snake-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hostKey, err := config.ExpandHome(cfg.SSH.HostKey)
	if err != nil {
		logger.Fatal("cannot resolve host key", "err", err)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Addr,
		HostKeyPath: hostKey,
		IdleTimeout: cfg.SSH.IdleTimeout(),
		Game:        cfg.Snake(),
		Seed:        cfg.Game.Seed,
	}, logger)
	if err != nil {
		logger.Fatal("cannot create server", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("press Ctrl+C to stop")
	if err := server.ListenAndServe(ctx); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
