package snake

// Snapshot is a render-ready copy of a State, used for streaming to
// clients and for determinism checks.
type Snapshot struct {
	Tick      uint64    `json:"tick"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Snake     []Point   `json:"snake"`
	Food      *Point    `json:"food"` // nil when the board is full
	Score     int       `json:"score"`
	Status    Status    `json:"status"`
	Direction Direction `json:"direction"`
}

// Snapshot captures state at the given tick. The snake is copied so the
// snapshot can outlive further engine calls.
func (s State) Snapshot(cfg Config, tick uint64) Snapshot {
	snap := Snapshot{
		Tick:      tick,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Snake:     append([]Point(nil), s.Snake...),
		Score:     s.Score,
		Status:    s.Status,
		Direction: s.Direction,
	}
	if s.HasFood {
		food := s.Food
		snap.Food = &food
	}
	return snap
}
