// Package config provides YAML-based configuration loading for the snake
// binary: board size and tick rate, plus the dev server and SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// File is the full configuration file.
type File struct {
	Game   GameConfig   `yaml:"game"`
	Server ServerConfig `yaml:"server"`
	SSH    SSHConfig    `yaml:"ssh"`
	Log    LogConfig    `yaml:"log"`
}

// GameConfig defines the board and tick rate.
type GameConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	TickMS int   `yaml:"tick_ms"`
	Seed   int64 `yaml:"seed"` // 0 = seed from the clock
}

// ServerConfig defines the static dev server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	Root string `yaml:"root"`
}

// SSHConfig defines the SSH game server.
type SSHConfig struct {
	Addr               string `yaml:"addr"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Tick returns the tick interval as a duration.
func (g GameConfig) Tick() time.Duration {
	return time.Duration(g.TickMS) * time.Millisecond
}

// Snake converts the game section to an engine config.
func (f File) Snake() snake.Config {
	return snake.NewConfig(snake.Config{
		Width:  f.Game.Width,
		Height: f.Game.Height,
		Tick:   f.Game.Tick(),
	})
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate checks values the engine assumes but does not verify.
func (f File) Validate() error {
	g := f.Game
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalid, g.Width, g.Height)
	}
	if g.Width*g.Height < snake.InitialLength {
		return fmt.Errorf("%w: board %dx%d cannot hold a snake of length %d",
			ErrInvalid, g.Width, g.Height, snake.InitialLength)
	}
	// The initial snake trails two cells left of the center.
	if g.Width/2 < snake.InitialLength-1 {
		return fmt.Errorf("%w: board width %d is too narrow for the starting snake", ErrInvalid, g.Width)
	}
	if g.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, g.TickMS)
	}
	if f.Server.Root == "" {
		return fmt.Errorf("%w: server.root is empty", ErrInvalid)
	}
	if f.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout_minutes must not be negative", ErrInvalid)
	}
	return nil
}
