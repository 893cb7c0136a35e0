package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// cellWidth is the number of terminal columns per board cell. Terminal
// glyphs are roughly twice as tall as wide, so two columns look square.
const cellWidth = 2

// hudHeight is the number of rows above the board frame.
const hudHeight = 1

// segmentRole is how a snake segment is drawn.
type segmentRole int

const (
	roleHead segmentRole = iota
	roleBody
	roleTail
)

// roleOf derives the role from the segment's position in the snake.
func roleOf(i, n int) segmentRole {
	switch {
	case i == 0:
		return roleHead
	case i == n-1:
		return roleTail
	default:
		return roleBody
	}
}

// link is the direction from one segment to an adjacent one.
type link uint8

const (
	linkUp link = 1 << iota
	linkDown
	linkLeft
	linkRight
)

func linkTo(from, to snake.Point) link {
	switch to.Sub(from) {
	case snake.DirUp.Delta():
		return linkUp
	case snake.DirDown.Delta():
		return linkDown
	case snake.DirLeft.Delta():
		return linkLeft
	case snake.DirRight.Delta():
		return linkRight
	}
	return 0
}

var headGlyphs = map[snake.Direction]rune{
	snake.DirUp:    '▲',
	snake.DirDown:  '▼',
	snake.DirLeft:  '◀',
	snake.DirRight: '▶',
}

var bodyGlyphs = map[link]rune{
	linkLeft | linkRight: '═',
	linkUp | linkDown:    '║',
	linkDown | linkRight: '╔',
	linkDown | linkLeft:  '╗',
	linkUp | linkRight:   '╚',
	linkUp | linkLeft:    '╝',
}

// segmentGlyph returns the two columns used to draw segment i.
// The head points in dir; body pieces join their neighbours; the second
// column continues the line when the segment links to its right.
func segmentGlyph(body []snake.Point, i int, dir snake.Direction) [cellWidth]rune {
	seg := body[i]
	var links link
	if i > 0 {
		links |= linkTo(seg, body[i-1])
	}
	if i < len(body)-1 {
		links |= linkTo(seg, body[i+1])
	}

	var first rune
	switch roleOf(i, len(body)) {
	case roleHead:
		first = headGlyphs[dir]
		if first == 0 {
			first = '■'
		}
	case roleTail:
		first = '•'
	default:
		first = bodyGlyphs[links]
		if first == 0 {
			first = '█' // neighbours not adjacent
		}
	}

	second := ' '
	if links&linkRight != 0 {
		second = '═'
	}
	return [cellWidth]rune{first, second}
}

func segmentColor(role segmentRole) core.Color {
	if role == roleHead {
		return core.ColorBrightGreen
	}
	return core.ColorGreen
}

// statusText is the HUD label for a status.
func statusText(s snake.Status) string {
	switch s {
	case snake.StatusPaused:
		return "Paused"
	case snake.StatusGameOver:
		return "Game Over"
	case snake.StatusWon:
		return "You Win"
	default:
		return "Running"
	}
}

// boardFrame returns the frame around the board, centered horizontally.
func boardFrame(dst *core.Screen, cfg snake.Config) core.Rect {
	w := cfg.Width*cellWidth + 2
	h := cfg.Height + 2
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

// fits reports whether the board and HUD fit on the screen.
func fits(dst *core.Screen, cfg snake.Config) bool {
	return dst.Width() >= cfg.Width*cellWidth+2 && dst.Height() >= cfg.Height+2+hudHeight
}

// RenderBoard draws the HUD, the board and any status overlay.
func RenderBoard(dst *core.Screen, state snake.State, cfg snake.Config) {
	dst.Clear()

	if !fits(dst, cfg) {
		renderOverlay(dst, dst.Bounds(), core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	frame := boardFrame(dst, cfg)
	hud := fmt.Sprintf("Snake  Score: %d  %s", state.Score, statusText(state.Status))
	dst.DrawTextColored(frame.X, 0, hud, core.ColorDefault)
	dst.DrawBox(frame, core.ColorGray)

	cellX := func(p snake.Point) int { return frame.X + 1 + p.X*cellWidth }
	cellY := func(p snake.Point) int { return frame.Y + 1 + p.Y }

	if state.HasFood {
		dst.SetColored(cellX(state.Food), cellY(state.Food), '●', core.ColorBrightRed)
	}

	for i, seg := range state.Snake {
		if snake.HitsWall(seg, cfg) {
			continue
		}
		glyph := segmentGlyph(state.Snake, i, state.Direction)
		color := segmentColor(roleOf(i, len(state.Snake)))
		for c, r := range glyph {
			dst.SetColored(cellX(seg)+c, cellY(seg), r, color)
		}
	}

	switch state.Status {
	case snake.StatusPaused:
		renderOverlay(dst, frame, core.ColorCyan, "Paused", "Press space to continue")
	case snake.StatusGameOver:
		renderOverlay(dst, frame, core.ColorRed, "Game Over", fmt.Sprintf("Score: %d  R to restart", state.Score))
	case snake.StatusWon:
		renderOverlay(dst, frame, core.ColorBrightYellow, "You Win!", fmt.Sprintf("Final Score: %d", state.Score))
	}
}

// renderOverlay draws a two-line message box centered in area.
func renderOverlay(dst *core.Screen, area core.Rect, c core.Color, line1, line2 string) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	box := area.Centered(textW+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	drawCentered(dst, box, box.Y+1, line1, c)
	drawCentered(dst, box, box.Y+3, line2, core.ColorDefault)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, c)
}
