// Package snake implements the grid snake engine.
// Every operation takes a State value and returns a new one; nothing here
// performs I/O or keeps state between calls, so the platform layer owns the
// "current" state and swaps it after each call.
package snake

import "time"

// Default board and timing values.
const (
	DefaultWidth  = 16
	DefaultHeight = 16
	DefaultTick   = 160 * time.Millisecond

	// InitialLength is the length of a freshly spawned snake.
	InitialLength = 3
)

// Config holds the board dimensions and tick interval.
// Width*Height must be at least InitialLength for a playable game; the engine
// does not check this.
type Config struct {
	Width  int
	Height int
	Tick   time.Duration
}

// NewConfig returns the default configuration with any non-zero field of
// overrides applied on top.
func NewConfig(overrides Config) Config {
	cfg := Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Tick:   DefaultTick,
	}
	if overrides.Width != 0 {
		cfg.Width = overrides.Width
	}
	if overrides.Height != 0 {
		cfg.Height = overrides.Height
	}
	if overrides.Tick != 0 {
		cfg.Tick = overrides.Tick
	}
	return cfg
}

// Cells returns the number of cells on the board.
func (c Config) Cells() int {
	return c.Width * c.Height
}

// Status is the lifecycle state of a game.
type Status string

const (
	StatusRunning  Status = "running"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "gameover"
	StatusWon      Status = "won"
)

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusWon
}

// State is a single immutable game snapshot.
type State struct {
	Snake     []Point // head first
	Direction Direction
	Pending   Direction // applied on the next tick; DirNone when unset
	Food      Point
	HasFood   bool
	Score     int
	Status    Status
}

// Head returns the first segment of the snake.
func (s State) Head() Point {
	return s.Snake[0]
}

// Effective returns the direction the next tick will move in.
func (s State) Effective() Direction {
	if s.Pending.Valid() {
		return s.Pending
	}
	return s.Direction
}

// initialSnake lays out a horizontal snake with its head at the board center.
func initialSnake(cfg Config) []Point {
	cx := cfg.Width / 2
	cy := cfg.Height / 2
	return []Point{
		{X: cx, Y: cy},
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
}

// InitialState builds a new running game. A nil rng uses a time-seeded source.
func InitialState(cfg Config, rng RNG) State {
	if rng == nil {
		rng = NewRNG(0)
	}
	body := initialSnake(cfg)
	food, ok := PlaceFood(cfg, body, rng)
	return State{
		Snake:     body,
		Direction: DirRight,
		Pending:   DirRight,
		Food:      food,
		HasFood:   ok,
		Score:     0,
		Status:    StatusRunning,
	}
}

// Restart discards the previous game and starts a fresh one.
func Restart(cfg Config, rng RNG) State {
	return InitialState(cfg, rng)
}

// SetDirection queues a turn for the next tick.
// Input is dropped while the game is not running, for unknown directions and
// for a direct reversal of the effective direction.
func SetDirection(state State, dir Direction) State {
	if state.Status != StatusRunning {
		return state
	}
	if !dir.Valid() {
		return state
	}
	if state.Effective().Opposite() == dir {
		return state
	}
	next := state
	next.Pending = dir
	return next
}

// TogglePause switches between running and paused.
func TogglePause(state State) State {
	next := state
	switch state.Status {
	case StatusRunning:
		next.Status = StatusPaused
	case StatusPaused:
		next.Status = StatusRunning
	default:
		return state
	}
	return next
}

// Advance runs one tick. A nil rng uses a time-seeded source when food has to
// be placed.
func Advance(state State, cfg Config, rng RNG) State {
	if state.Status != StatusRunning {
		return state
	}

	dir := state.Effective()
	head := state.Head().Add(dir.Delta())

	if HitsWall(head, cfg) {
		return gameOver(state, dir)
	}

	growing := state.HasFood && head.Equal(state.Food)

	// The tail moves out of the way this tick unless the snake grows.
	occupied := state.Snake
	if !growing {
		occupied = state.Snake[:len(state.Snake)-1]
	}
	if Occupies(head, occupied) {
		return gameOver(state, dir)
	}

	keep := len(state.Snake)
	if !growing {
		keep--
	}
	body := make([]Point, 0, keep+1)
	body = append(body, head)
	body = append(body, state.Snake[:keep]...)

	next := state
	next.Snake = body
	next.Direction = dir
	next.Pending = dir
	if growing {
		next.Score++
	}

	if len(body) == cfg.Cells() {
		next.Status = StatusWon
		next.Food = Point{}
		next.HasFood = false
		return next
	}

	if growing {
		if rng == nil {
			rng = NewRNG(0)
		}
		next.Food, next.HasFood = PlaceFood(cfg, body, rng)
	}
	return next
}

// gameOver ends the game without moving the snake.
func gameOver(state State, dir Direction) State {
	next := state
	next.Direction = dir
	next.Status = StatusGameOver
	return next
}

// HitsWall reports whether p lies outside the board.
func HitsWall(p Point, cfg Config) bool {
	return p.X < 0 || p.Y < 0 || p.X >= cfg.Width || p.Y >= cfg.Height
}

// Occupies reports whether any segment equals p.
func Occupies(p Point, segments []Point) bool {
	for _, seg := range segments {
		if seg.Equal(p) {
			return true
		}
	}
	return false
}
