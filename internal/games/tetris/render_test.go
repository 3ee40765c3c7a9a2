package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// On an 80x24 screen a 10x20 board sits at (28, 2) inside a frame at (27, 1).
const (
	boardX = 28
	boardY = 2
)

func render(g *Game) *core.Screen {
	s := core.NewScreen(80, 24)
	g.Render(s)
	return s
}

func TestRenderFrameAndPanes(t *testing.T) {
	g := newSpawnedGame(t, engine.ShapeT, 0)
	s := render(g)

	assert.Equal(t, '┌', s.Get(boardX-1, boardY-1))
	assert.Equal(t, '┘', s.Get(boardX+10, boardY+20))
	assert.Contains(t, s.Row(2), titleText)
	assert.Contains(t, s.Row(5), "Next")
	assert.Contains(t, s.Row(13), "Level: 00001")
	assert.Contains(t, s.Row(14), "Score: 00000")
	assert.Contains(t, s.Row(15), "Lines: 00000")

	// T preview in the inner area of the preview pane at (42, 6).
	cell := s.GetCell(43, 6)
	assert.Equal(t, engine.ShapeT.Glyph(), cell.Rune)
	assert.Equal(t, engine.ShapeT.Color(), cell.Color)
}

func TestRenderDropTrail(t *testing.T) {
	g := newSpawnedGame(t, engine.ShapeT, 0)
	g.Step(core.NewInputFrame()) // T at (3, -1), bottom row on row 0
	s := render(g)

	for _, x := range []int{3, 4, 5} {
		assert.Equal(t, engine.ShapeT.Glyph(), s.Get(boardX+x, boardY), "column %d", x)
		assert.Equal(t, '-', s.Get(boardX+x, boardY+1), "column %d", x)
	}
	for y := 1; y < 20; y++ {
		assert.Equal(t, '-', s.Get(boardX+4, boardY+y), "row %d", y)
	}
	assert.Equal(t, ' ', s.Get(boardX+6, boardY+10))
}

func TestRenderSettledCells(t *testing.T) {
	g := newSpawnedGame(t, engine.ShapeT, 0)
	g.Step(frameWith(core.ActionDrop))
	s := render(g)

	cell := s.GetCell(boardX+4, boardY+18)
	assert.Equal(t, engine.ShapeT.Glyph(), cell.Rune)
	assert.Equal(t, engine.ShapeT.Color(), cell.Color)
	assert.Equal(t, ' ', s.Get(boardX+3, boardY+18))
}

func TestRenderPauseBanner(t *testing.T) {
	g := newSpawnedGame(t, engine.ShapeT, 0)
	g.Step(frameWith(core.ActionPause))

	s := render(g)
	assert.Contains(t, s.Row(boardY+10), "PAUSE")

	// The banner blinks off for the next half second.
	for range 4 {
		g.Step(core.NewInputFrame())
	}
	s = render(g)
	assert.NotContains(t, s.Row(boardY+10), "PAUSE")
}

func TestRenderSpeedLabel(t *testing.T) {
	g := newSpawnedGame(t, engine.ShapeT, 0)
	g.Step(frameWith(core.ActionSpeedDown))

	s := render(g)
	assert.Contains(t, s.Row(17), "Speed x1/2")
}

func TestRenderGameOver(t *testing.T) {
	g := newSpawnedGame(t, engine.ShapeI, 0)
	g.Step(frameWith(core.ActionBack))

	s := render(g)
	assert.Contains(t, s.String(), "Game Over")
}

func TestRenderTooSmall(t *testing.T) {
	g := newSpawnedGame(t, engine.ShapeT, 0)
	s := core.NewScreen(30, 10)
	g.Render(s)

	out := s.String()
	assert.Contains(t, out, "Window too small")
	assert.False(t, strings.ContainsRune(out, '┌'))
}
