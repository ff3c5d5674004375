package bubbles

import (
	"fmt"
	"math"
	"strings"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/core"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
)

const (
	minScreenW = 40
	minScreenH = 16
	barWidth   = 10

	runeBubble   = '●'
	runeShot     = '◉'
	runeGuide    = '·'
	runeLanding  = '◌'
	runeOverflow = '┄'
	runeLauncher = '▲'
)

// bubbleColors maps engine colors to screen colors.
var bubbleColors = [engine.PaletteSize]core.Color{
	core.ColorRed, core.ColorBlue, core.ColorGreen, core.ColorYellow,
	core.ColorOrange, core.ColorPink, core.ColorCyan, core.ColorPurple,
}

// ScreenColor returns the screen color used for an engine color.
func ScreenColor(c engine.Color) core.Color {
	if !c.Valid() {
		return core.ColorWhite
	}
	return bubbleColors[c]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	g.tooSmall = w < minScreenW || h < minScreenH
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// HUD on the first row, field box below, status on the last row
	box := core.NewRect(0, 1, w, h-2)
	g.view = g.viewport(box.Inset(1))

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)
	dst.DrawBox(box, core.ColorGray)
	g.renderOverflowLine(dst)

	if g.showGuide && !snap.InFlight && !snap.Cleared && !snap.Overflowed {
		g.renderGuide(dst)
	}

	for _, b := range snap.Bubbles {
		g.plot(dst, b.Pos, runeBubble, ScreenColor(b.Color))
	}
	if snap.InFlight {
		g.plot(dst, snap.Projectile.Pos, runeShot, ScreenColor(snap.Projectile.Color))
	}

	g.renderLauncher(dst, snap)
	g.renderPopups(dst)
	g.renderStatus(dst, h-1)
	g.renderOverlays(dst, snap)
}

// viewport maps the playable part of the field onto the given cells.
func (g *Game) viewport(area core.Rect) core.Viewport {
	cfg := g.session.Engine().Config()
	return core.Viewport{
		Area:   area,
		MinX:   cfg.WallMargin,
		MinY:   cfg.Ceiling,
		FieldW: cfg.Width - 2*cfg.WallMargin,
		FieldH: cfg.Height - cfg.Ceiling,
	}
}

// plot draws a rune at a field position if it falls inside the field box.
func (g *Game) plot(dst *core.Screen, p engine.Vec, r rune, c core.Color) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return
	}
	x, y := g.view.ToCell(p.X, p.Y)
	if g.view.Area.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
}

// renderHUD draws score, level, remaining bubbles and the level progress bar.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	left := fmt.Sprintf("Score: %d  Level: %d  Bubbles: %d", snap.Score, snap.Level, snap.Remaining)
	dst.DrawText(1, 0, left)

	filled := int(math.Round(snap.Progress * barWidth))
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
	x := dst.Width() - len([]rune(bar)) - 1
	if x > len(left)+2 {
		dst.DrawTextColored(x, 0, bar, core.ColorGreen)
	}
}

// renderOverflowLine marks the height at which the round is lost.
func (g *Game) renderOverflowLine(dst *core.Screen) {
	_, y := g.view.ToCell(0, g.session.Engine().Config().OverflowY)
	for x := g.view.Area.X; x < g.view.Area.Right(); x += 2 {
		dst.SetColored(x, y, runeOverflow, core.ColorGray)
	}
}

// renderGuide draws the predicted path and landing cell.
func (g *Game) renderGuide(dst *core.Screen) {
	aim := g.Aim()
	for _, p := range g.session.Trajectory(aim) {
		g.plot(dst, p, runeGuide, core.ColorGray)
	}
	if cell, ok := g.session.Landing(aim); ok {
		pos := g.session.Engine().Geometry().ToPosition(cell)
		g.plot(dst, pos, runeLanding, ScreenColor(g.session.State().Current.Color))
	}
}

// renderLauncher draws the loaded bubble and the preview.
func (g *Game) renderLauncher(dst *core.Screen, snap engine.Snapshot) {
	eng := g.session.Engine()
	x, y := g.view.ToCell(eng.Launcher().X, eng.Launcher().Y)
	if !snap.InFlight {
		dst.SetColored(x, y, runeBubble, ScreenColor(snap.Current))
	}
	dst.SetColored(x, y+1, runeLauncher, core.ColorWhite)

	px, py := g.view.ToCell(eng.Preview().X, eng.Preview().Y)
	dst.SetColored(px, py, runeBubble, ScreenColor(snap.Next))
	dst.DrawTextColored(px+2, py, "next", core.ColorGray)
}

// renderPopups draws floating score labels, rising as they age.
func (g *Game) renderPopups(dst *core.Screen) {
	rise := g.cfg.Display.PopupRise
	for _, p := range g.session.Popups() {
		color := core.ColorGold
		if p.Kind == engine.EventDrop {
			color = core.ColorCyan
		}
		pos := engine.V(p.At.X, p.At.Y-float64(p.Age)*rise)
		x, y := g.view.ToCell(pos.X, pos.Y)
		if y < g.view.Area.Y {
			continue
		}
		dst.DrawTextColored(x, y, fmt.Sprintf("+%d", p.Points), color)
	}
}

// renderStatus draws the control hint on the given row.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	status := "←/→ aim  space fire  g guide  p pause"
	if g.source == aimPointer {
		status = "mouse aim  click fire  g guide  p pause"
	}
	dst.DrawTextColored(1, y, status, core.ColorGray)
}

// renderOverlays draws pause and end-of-round messages over the field.
func (g *Game) renderOverlays(dst *core.Screen, snap engine.Snapshot) {
	mid := g.view.Area.Y + g.view.Area.H/2

	switch {
	case snap.Overflowed:
		dst.DrawTextCentered(mid-1, " GAME OVER ", core.ColorRed)
		dst.DrawTextCentered(mid, fmt.Sprintf(" Final score: %d ", snap.Score), core.ColorWhite)
		dst.DrawTextCentered(mid+1, " Press SPACE or click to restart ", core.ColorGray)
	case snap.Cleared:
		dst.DrawTextCentered(mid-1, fmt.Sprintf(" LEVEL %d CLEARED ", snap.Level), core.ColorGold)
		dst.DrawTextCentered(mid, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)
		dst.DrawTextCentered(mid+1, " Press SPACE or click for the next level ", core.ColorGray)
	case g.paused:
		dst.DrawTextCentered(mid, " PAUSED ", core.ColorYellow)
		dst.DrawTextCentered(mid+1, " Press P to resume ", core.ColorGray)
	}
}
