// Package session holds the "current" game for a single player and routes
// semantic input actions to the engine. The engine itself is stateless; a
// Session is the variable the tick driver and the input dispatcher swap.
//
// A Session is not safe for concurrent use. Front ends that call it from more
// than one goroutine must serialize access themselves.
package session

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Session is one player's running game.
type Session struct {
	cfg   snake.Config
	rng   snake.RNG
	state snake.State
	tick  uint64
}

// New starts a game. A nil rng is replaced with a time-seeded source.
func New(cfg snake.Config, rng snake.RNG) *Session {
	if rng == nil {
		rng = snake.NewRNG(0)
	}
	return &Session{
		cfg:   cfg,
		rng:   rng,
		state: snake.InitialState(cfg, rng),
	}
}

// Config returns the board configuration.
func (s *Session) Config() snake.Config {
	return s.cfg
}

// State returns the current state.
func (s *Session) State() snake.State {
	return s.state
}

// Ticks returns how many ticks have run since the last restart.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Tick advances the game by one step and returns the new state.
func (s *Session) Tick() snake.State {
	s.state = snake.Advance(s.state, s.cfg, s.rng)
	s.tick++
	return s.state
}

// Apply dispatches an input action. Quit and unknown actions are ignored;
// quitting is the front end's business.
func (s *Session) Apply(a core.Action) snake.State {
	switch a {
	case core.ActionUp:
		s.state = snake.SetDirection(s.state, snake.DirUp)
	case core.ActionDown:
		s.state = snake.SetDirection(s.state, snake.DirDown)
	case core.ActionLeft:
		s.state = snake.SetDirection(s.state, snake.DirLeft)
	case core.ActionRight:
		s.state = snake.SetDirection(s.state, snake.DirRight)
	case core.ActionPause:
		s.state = snake.TogglePause(s.state)
	case core.ActionRestart:
		s.state = snake.Restart(s.cfg, s.rng)
		s.tick = 0
	}
	return s.state
}

// Snapshot captures the current state for rendering elsewhere.
func (s *Session) Snapshot() snake.Snapshot {
	return s.state.Snapshot(s.cfg, s.tick)
}

// SeededRNG returns the food source for the n-th session of a server.
// A zero base seeds every session from the clock; otherwise session n uses
// base+n so concurrent players get distinct but reproducible games.
func SeededRNG(base, n int64) snake.RNG {
	if base == 0 {
		return snake.NewRNG(0)
	}
	return snake.NewRNG(base + n)
}
