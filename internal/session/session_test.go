package session

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newTestSession() *Session {
	return New(snake.NewConfig(snake.Config{Width: 8, Height: 8}), snake.NewSequence(0))
}

func TestNewSession(t *testing.T) {
	s := newTestSession()

	if s.State().Status != snake.StatusRunning {
		t.Errorf("Expected running, got %s", s.State().Status)
	}
	if s.Ticks() != 0 {
		t.Errorf("Expected 0 ticks, got %d", s.Ticks())
	}
	if s.State().Head() != (snake.Point{X: 4, Y: 4}) {
		t.Errorf("Head = %v, expected (4,4)", s.State().Head())
	}
}

func TestTickMovesSnake(t *testing.T) {
	s := newTestSession()

	s.Tick()
	s.Tick()

	if s.State().Head() != (snake.Point{X: 6, Y: 4}) {
		t.Errorf("Head = %v, expected (6,4)", s.State().Head())
	}
	if s.Ticks() != 2 {
		t.Errorf("Ticks = %d, expected 2", s.Ticks())
	}
}

func TestApplyDirections(t *testing.T) {
	tests := []struct {
		action core.Action
		want   snake.Direction
	}{
		{core.ActionUp, snake.DirUp},
		{core.ActionDown, snake.DirDown},
		{core.ActionRight, snake.DirRight},
		{core.ActionLeft, snake.DirRight}, // reversal is dropped
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			s := newTestSession()
			if got := s.Apply(tc.action).Pending; got != tc.want {
				t.Errorf("Pending = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestApplyPause(t *testing.T) {
	s := newTestSession()

	s.Apply(core.ActionPause)
	before := s.State()
	s.Tick()
	if !reflect.DeepEqual(s.State(), before) {
		t.Error("Paused game should not advance")
	}

	s.Apply(core.ActionPause)
	if s.State().Status != snake.StatusRunning {
		t.Errorf("Expected running after second pause, got %s", s.State().Status)
	}
}

func TestApplyRestart(t *testing.T) {
	s := newTestSession()
	for range 10 {
		s.Tick() // runs into the right wall
	}
	if s.State().Status != snake.StatusGameOver {
		t.Fatalf("Expected gameover, got %s", s.State().Status)
	}

	s.Apply(core.ActionRestart)
	if s.State().Status != snake.StatusRunning {
		t.Errorf("Expected running after restart, got %s", s.State().Status)
	}
	if s.Ticks() != 0 {
		t.Errorf("Restart should reset the tick counter, got %d", s.Ticks())
	}
}

func TestApplyIgnoredActions(t *testing.T) {
	s := newTestSession()
	before := s.State()

	s.Apply(core.ActionQuit)
	s.Apply(core.ActionNone)

	if !reflect.DeepEqual(s.State(), before) {
		t.Error("Quit and None should not change the game")
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSession()
	s.Tick()

	snap := s.Snapshot()
	if snap.Tick != 1 || snap.Width != 8 || snap.Height != 8 {
		t.Errorf("Unexpected snapshot header: %+v", snap)
	}
	if len(snap.Snake) != 3 || snap.Snake[0] != (snake.Point{X: 5, Y: 4}) {
		t.Errorf("Unexpected snake: %v", snap.Snake)
	}
}

func TestSeededRNG(t *testing.T) {
	a := SeededRNG(42, 1)
	b := SeededRNG(42, 1)
	c := SeededRNG(42, 2)

	first := a.Float64()
	if got := b.Float64(); got != first {
		t.Errorf("Same seed and session should repeat: %v vs %v", first, got)
	}
	if got := c.Float64(); got == first {
		t.Error("Different sessions should not share a sequence")
	}
	if SeededRNG(0, 1) == nil {
		t.Error("Zero base should still return a source")
	}
}
