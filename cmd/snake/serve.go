package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/devserver"
)

var (
	flagHTTPAddr string
	flagRoot     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser front end",
	Long: `Serve the static browser front end and a WebSocket game endpoint.

Every browser tab that connects to /ws plays its own game on the server.

Examples:
  snake serve                      # Listen on :5173, serve ./web
  snake serve --addr :8080
  snake serve --root ./dist`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHTTPAddr, "addr", "", "HTTP server address (host:port)")
	serveCmd.Flags().StringVar(&flagRoot, "root", "", "Directory to serve static files from")
}

func runServe(cmd *cobra.Command, _ []string) {
	if cmd.Flags().Changed("root") && flagRoot == "" {
		fmt.Fprintln(os.Stderr, "Error: --root must not be empty")
		os.Exit(1)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = flagHTTPAddr
	}
	if cmd.Flags().Changed("root") {
		cfg.Server.Root = flagRoot
	}

	logger, err := newLogger(cfg.Log.Level, "snake-http")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server := devserver.New(devserver.Config{
		Addr: cfg.Server.Addr,
		Root: cfg.Server.Root,
		Game: cfg.Snake(),
		Seed: cfg.Game.Seed,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
