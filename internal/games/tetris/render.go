package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

const (
	titleText  = "TETRIS"
	paneGap    = 2
	previewW   = 6
	previewH   = 6
	scoreW     = 14
	scoreH     = 5
	trailRune  = '-'
	titlePaneH = 3
)

// layout holds the screen rectangles of one frame.
type layout struct {
	board   core.Rect // playfield cells, without the frame
	frame   core.Rect
	title   core.Rect
	preview core.Rect
	score   core.Rect
}

// computeLayout places the board left of center and stacks the side panes to its right.
func (g *Game) computeLayout(screenW, screenH int) layout {
	w, h := g.state.Width(), g.state.Height()
	left := max(screenW/2-w-2, 1)
	top := max((screenH-h)/2, 1)

	var l layout
	l.board = core.NewRect(left, top, w, h)
	l.frame = core.NewRect(left-1, top-1, w+2, h+2)
	l.title = core.NewRect(l.frame.Right()+paneGap, l.frame.Y, len(titleText)+4, titlePaneH)
	l.preview = core.NewRect(l.title.X, l.title.Bottom()+1, previewW, previewH)
	l.score = core.NewRect(l.title.X, l.preview.Bottom()+1, scoreW, scoreH)
	return l
}

// fits reports whether every pane is on screen.
func (l layout) fits(screenW, screenH int) bool {
	return l.score.Right() <= screenW &&
		l.frame.Bottom() <= screenH &&
		l.score.Bottom()+1 <= screenH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l := g.computeLayout(dst.Width(), dst.Height())
	if !l.fits(dst.Width(), dst.Height()) {
		renderTooSmall(dst)
		return
	}

	dst.DrawBox(l.frame, core.ColorWhite)
	g.renderActive(dst, l.board)
	g.renderSettled(dst, l.board)
	g.renderPanes(dst, l)
	g.renderOverlay(dst, l.board)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	dst.DrawTextCentered(area, y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(area, y+1, "Please resize terminal", core.ColorGray)
}

// renderActive draws the falling piece with a trail down to the floor.
func (g *Game) renderActive(dst *core.Screen, board core.Rect) {
	p, pos, ok := g.state.ActivePiece()
	if !ok {
		return
	}
	cells := p.Cells()
	for _, c := range cells {
		x, y := pos.X+c.X, pos.Y+c.Y
		for ty := max(y, 0); ty < board.H; ty++ {
			dst.SetCell(board.X+x, board.Y+ty, trailRune, core.ColorGray)
		}
	}
	drawPiece(dst, board, p, pos, p.Shape.Color())
}

func (g *Game) renderSettled(dst *core.Screen, board core.Rect) {
	g.state.ForEachSettledCell(func(s engine.Shape, pos engine.Vec2) {
		dst.SetCell(board.X+pos.X, board.Y+pos.Y, s.Glyph(), s.Color())
	})
}

// drawPiece draws the piece cells that fall inside the board.
func drawPiece(dst *core.Screen, board core.Rect, p engine.Piece, pos engine.Vec2, c core.Color) {
	for _, cell := range p.Cells() {
		x, y := pos.X+cell.X, pos.Y+cell.Y
		if !board.Contains(board.X+x, board.Y+y) {
			continue
		}
		dst.SetCell(board.X+x, board.Y+y, p.Shape.Glyph(), c)
	}
}

func (g *Game) renderPanes(dst *core.Screen, l layout) {
	dst.DrawBox(l.title, core.ColorWhite)
	dst.DrawTextCentered(l.title, l.title.Y+1, titleText, core.ColorBrightYellow)

	dst.DrawBox(l.preview, core.ColorWhite)
	dst.DrawText(l.preview.X+1, l.preview.Y, "Next")
	next := g.state.PreviewPiece()
	inner := l.preview.Inset(1)
	drawPiece(dst, inner, next, engine.Vec2{}, next.Shape.Color())

	dst.DrawBox(l.score, core.ColorWhite)
	dst.DrawText(l.score.X+2, l.score.Y+1, fmt.Sprintf("Level: %05d", g.state.Level()))
	dst.DrawText(l.score.X+2, l.score.Y+2, fmt.Sprintf("Score: %05d", g.state.Score()))
	dst.DrawText(l.score.X+2, l.score.Y+3, fmt.Sprintf("Lines: %05d", g.state.Lines()))

	if g.speedShift != 0 {
		dst.DrawTextColor(l.score.X, l.score.Bottom(), speedLabel(g.speedShift), core.ColorCyan)
	}
}

func speedLabel(shift int) string {
	if shift > 0 {
		return fmt.Sprintf("Speed x%d", 1<<shift)
	}
	return fmt.Sprintf("Speed x1/%d", 1<<-shift)
}

// renderOverlay draws the topped-out piece and the blinking status banner.
func (g *Game) renderOverlay(dst *core.Screen, board core.Rect) {
	var banner string
	switch {
	case g.state.IsGameOver() || g.forfeited:
		if p, pos, ok := g.state.ToppedOut(); ok {
			drawPiece(dst, board, p, pos, core.ColorGray)
		}
		banner = "Game Over"
	case g.paused:
		banner = "PAUSE"
	default:
		return
	}
	if g.blinkOn() {
		dst.DrawTextCentered(board, board.Y+board.H/2, banner, core.ColorRed)
	}
}

// blinkOn toggles twice per second.
func (g *Game) blinkOn() bool {
	half := uint64(max(g.cfg.TickRate/2, 1))
	return (g.tick/half)%2 == 0
}
