package snake

import (
	"fmt"
	"strings"
)

// Point is a board coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Equal reports whether both coordinates match.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// Key packs the coordinate into a single value usable as a map key.
// Distinct coordinates always yield distinct keys.
func (p Point) Key() uint64 {
	return uint64(uint32(int32(p.X)))<<32 | uint64(uint32(int32(p.Y)))
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the reverse direction, or DirNone for an invalid one.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Delta returns the unit step for d. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	default:
		return "NONE"
	}
}

// ParseDirection accepts the names produced by String, case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UP":
		return DirUp, true
	case "DOWN":
		return DirDown, true
	case "LEFT":
		return DirLeft, true
	case "RIGHT":
		return DirRight, true
	}
	return DirNone, false
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name. "NONE" decodes to DirNone.
func (d *Direction) UnmarshalText(text []byte) error {
	if strings.EqualFold(strings.TrimSpace(string(text)), "NONE") {
		*d = DirNone
		return nil
	}
	dir, ok := ParseDirection(string(text))
	if !ok {
		return fmt.Errorf("unknown direction %q", text)
	}
	*d = dir
	return nil
}
