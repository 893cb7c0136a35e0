package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() File {
	return File{
		Game: GameConfig{
			Width:  snake.DefaultWidth,
			Height: snake.DefaultHeight,
			TickMS: int(snake.DefaultTick.Milliseconds()),
		},
		Server: ServerConfig{
			Addr: ":5173",
			Root: "web",
		},
		SSH: SSHConfig{
			Addr:               ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default file, suitable as a template.
func DefaultYAML() []byte {
	return defaultYAML
}
