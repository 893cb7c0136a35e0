package snake

// PlaceFood picks a uniformly random empty cell.
// Empty cells are enumerated row by row (y outer, x inner), and the cell at
// index floor(rng*count) is chosen, so the same occupancy and the same rng
// output always give the same cell. It reports false when the board is full.
func PlaceFood(cfg Config, body []Point, rng RNG) (Point, bool) {
	occupied := make(map[uint64]struct{}, len(body))
	for _, seg := range body {
		occupied[seg.Key()] = struct{}{}
	}

	empty := make([]Point, 0, max(cfg.Cells()-len(body), 0))
	for y := range cfg.Height {
		for x := range cfg.Width {
			p := Point{X: x, Y: y}
			if _, taken := occupied[p.Key()]; !taken {
				empty = append(empty, p)
			}
		}
	}

	if len(empty) == 0 {
		return Point{}, false
	}

	idx := int(rng.Float64() * float64(len(empty)))
	// Guard against sources that return exactly 1 or negative values.
	idx = min(max(idx, 0), len(empty)-1)
	return empty[idx], true
}
