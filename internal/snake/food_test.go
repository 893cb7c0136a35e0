package snake

import "testing"

func TestPlaceFoodDeterministic(t *testing.T) {
	cfg := NewConfig(Config{Width: 3, Height: 2})
	body := pts(0, 0, 1, 0, 2, 0, 0, 1)

	first, ok := PlaceFood(cfg, body, NewSequence(0))
	if !ok || first != (Point{X: 1, Y: 1}) {
		t.Errorf("rng 0 picked %v, expected (1,1)", first)
	}

	last, ok := PlaceFood(cfg, body, NewSequence(0.999))
	if !ok || last != (Point{X: 2, Y: 1}) {
		t.Errorf("rng 0.999 picked %v, expected (2,1)", last)
	}

	for range 10 {
		again, _ := PlaceFood(cfg, body, NewSequence(0.999))
		if again != last {
			t.Fatalf("Same inputs gave %v then %v", last, again)
		}
	}
}

func TestPlaceFoodRowMajorOrder(t *testing.T) {
	cfg := NewConfig(Config{Width: 4, Height: 3})
	body := pts(1, 1)

	// 11 empty cells; index 4 is the first cell of row 1.
	got, _ := PlaceFood(cfg, body, NewSequence(4.0/11.0+0.01))
	if got != (Point{X: 0, Y: 1}) {
		t.Errorf("Got %v, expected (0,1)", got)
	}

	// index 5 skips the occupied (1,1).
	got, _ = PlaceFood(cfg, body, NewSequence(5.0/11.0+0.01))
	if got != (Point{X: 2, Y: 1}) {
		t.Errorf("Got %v, expected (2,1)", got)
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	cfg := NewConfig(Config{Width: 2, Height: 2})
	body := pts(0, 0, 1, 0, 1, 1, 0, 1)

	if p, ok := PlaceFood(cfg, body, NewSequence(0.5)); ok {
		t.Errorf("Expected no food on a full board, got %v", p)
	}
}

func TestPlaceFoodOutOfContractRNG(t *testing.T) {
	cfg := NewConfig(Config{Width: 3, Height: 1})

	if p, ok := PlaceFood(cfg, nil, RNGFunc(func() float64 { return 1 })); !ok || p != (Point{X: 2, Y: 0}) {
		t.Errorf("rng 1 picked %v, expected last cell", p)
	}
	if p, ok := PlaceFood(cfg, nil, RNGFunc(func() float64 { return -0.5 })); !ok || p != (Point{X: 0, Y: 0}) {
		t.Errorf("negative rng picked %v, expected first cell", p)
	}
}

func TestPlaceFoodNeverOnSnake(t *testing.T) {
	cfg := NewConfig(Config{Width: 10, Height: 8})
	body := pts(5, 4, 4, 4, 3, 4, 3, 5, 3, 6)
	rng := NewRNG(999)

	for range 200 {
		p, ok := PlaceFood(cfg, body, rng)
		if !ok {
			t.Fatal("Expected food to be placed")
		}
		if Occupies(p, body) {
			t.Errorf("Food spawned on snake at %v", p)
		}
		if HitsWall(p, cfg) {
			t.Errorf("Food spawned out of bounds at %v", p)
		}
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence(0.1, 0.7)
	for i, want := range []float64{0.1, 0.7, 0.7, 0.7} {
		if got := seq.Float64(); got != want {
			t.Errorf("call %d: got %v, expected %v", i, got, want)
		}
	}

	if got := NewSequence().Float64(); got != 0 {
		t.Errorf("Empty sequence returned %v", got)
	}
}
