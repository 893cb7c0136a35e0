// snake is a grid snake game for the terminal, SSH and the browser.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake ssh                - Start SSH server for remote play
//	snake serve              - Serve the browser front end
//	snake version            - Print the version
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--width, --height   - Board size in cells
//	--tick <duration>   - Time between moves (e.g. 120ms)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagWidth    int
	flagHeight   int
	flagTick     time.Duration
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game",
	Long: `Snake is the classic grid game: steer the snake, eat food, grow,
and avoid the walls and your own tail.

Available commands:
  play     - Play in this terminal
  ssh      - Start SSH server for remote play
  serve    - Serve the browser front end over HTTP
  version  - Print the version

Examples:
  snake play
  snake play --width 24 --height 16 --tick 100ms
  snake ssh --addr :2222
  snake serve --addr :5173 --root ./web`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in cells")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in cells")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Time between moves")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies the global flags the user set.
func loadConfig(cmd *cobra.Command) (config.File, error) {
	path, err := config.ExpandHome(flagConfig)
	if err != nil {
		return config.File{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.File{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("width") {
		cfg.Game.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Game.Height = flagHeight
	}
	if flags.Changed("tick") {
		cfg.Game.TickMS = int(flagTick / time.Millisecond)
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.File{}, err
	}
	return cfg, nil
}

// newLogger builds the stderr logger used by the servers.
func newLogger(level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}
